package render

import (
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"math"
)

// Alignment of a label along the top edge of its box
type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

const (
	// referenceSize is the longer image side the DefaultFont is sized for
	referenceSize = 640
	// minScale keeps labels on thumbnails readable
	minScale = 0.3
)

// Font holds the Hershey font settings box labels are drawn with
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding between the label text and its background box
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	Alignment Alignment
}

// DefaultFont returns white labels sized for 640 pixel images
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}

// ForImage returns a copy of f scaled for an image whose longer side is size
// pixels, so labels keep the same proportion on thumbnails and large photos.
// Thickness and padding never drop below one pixel, nor the scale below 0.3.
func (f Font) ForImage(size int) Font {

	if size <= 0 {
		return f
	}

	ratio := float64(size) / referenceSize

	scaleInt := func(v int) int {
		return int(math.Max(1, math.Round(float64(v)*ratio)))
	}

	f.Scale = math.Max(minScale, f.Scale*ratio)
	f.Thickness = scaleInt(f.Thickness)
	f.LeftPad = scaleInt(f.LeftPad)
	f.RightPad = scaleInt(f.RightPad)
	f.TopPad = scaleInt(f.TopPad)
	f.BottomPad = scaleInt(f.BottomPad)

	return f
}

// measure returns the size of text drawn with f
func (f Font) measure(text string) image.Point {
	return gocv.GetTextSize(text, f.Face, f.Scale, f.Thickness)
}

// labelHeight is the height of a label background holding text of textSize
func (f Font) labelHeight(textSize image.Point) int {
	return textSize.Y + f.TopPad + f.BottomPad
}
