package plot

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Raster is an image in the renderer pixel format: rows stored bottom to top,
// each pixel one uint32 whose bytes in memory order are R, G, B, A.
type Raster struct {
	Width  int
	Height int
	Pix    []uint32
}

// packRGBA packs the channels so the little endian memory order is R, G, B, A
func packRGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// ToRaster converts img to the renderer pixel format.  The image is flipped
// vertically and alpha forced to opaque.
func ToRaster(img image.Image) *Raster {

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rst := &Raster{
		Width:  w,
		Height: h,
		Pix:    make([]uint32, w*h),
	}

	for y := 0; y < h; y++ {

		// first row of the raster is the bottom row of the image
		row := (h - 1 - y) * w

		for x := 0; x < w; x++ {
			r, g, b := storedRGB(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			rst.Pix[row+x] = packRGBA(r, g, b, 255)
		}
	}

	return rst
}

// storedRGB returns the color channels as the image stores them.  Alpha is
// dropped without scaling the channels.
func storedRGB(c color.Color) (r, g, b uint8) {

	switch v := c.(type) {
	case color.RGBA:
		return v.R, v.G, v.B
	case color.NRGBA:
		return v.R, v.G, v.B
	}

	r32, g32, b32, _ := c.RGBA()

	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

// MatToRaster converts a BGR GoCV Mat to the renderer pixel format
func MatToRaster(img gocv.Mat) (*Raster, error) {

	if img.Empty() {
		return nil, ErrEmptyImage
	}

	// ToImage reads 3 channel Mats as BGR and returns RGBA
	goImg, err := img.ToImage()

	if err != nil {
		return nil, errors.Wrap(err, "error converting Mat to image")
	}

	return ToRaster(goImg), nil
}

// Image converts the raster back to a top to bottom RGBA image
func (r *Raster) Image() *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))

	for y := 0; y < r.Height; y++ {

		row := (r.Height - 1 - y) * r.Width

		for x := 0; x < r.Width; x++ {
			p := r.Pix[row+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p),
				G: uint8(p >> 8),
				B: uint8(p >> 16),
				A: uint8(p >> 24),
			})
		}
	}

	return img
}
