// Package preprocess scales record images and their annotations for
// thumbnail display.
package preprocess

import (
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// Resizer defines the struct used for letterbox resizing a record image
// into a fixed size thumbnail
type Resizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width to scale to
	destWidth int
	// destHeight is the height to scale to
	destHeight int
	// tempMat is a Mat used during the resize process
	tempMat gocv.Mat
	// letterbox parameters used in scaling
	xPad  int
	yPad  int
	scale float64
	// resize dimensions
	resizeW int
	resizeH int
}

// NewResizer returns a resizer scaling srcWidth x srcHeight images into
// destWidth x destHeight thumbnails
func NewResizer(srcWidth, srcHeight, destWidth, destHeight int) *Resizer {
	r := &Resizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
		tempMat:    gocv.NewMat(),
	}

	// precalculate scaling dimensions
	r.preCalc()

	return r
}

// Close frees memory allocated during resize process
func (r *Resizer) Close() error {
	return r.tempMat.Close()
}

// preCalc the scaling factors for source and destination Mats
func (r *Resizer) preCalc() {

	r.resizeW = r.destWidth
	r.resizeH = r.destHeight

	scaleW := float64(r.destWidth) / float64(r.srcWidth)
	scaleH := float64(r.destHeight) / float64(r.srcHeight)
	r.scale = scaleH

	if scaleW < scaleH {
		r.scale = scaleW
		r.resizeH = int(float64(r.srcHeight) * r.scale)
	} else {
		r.resizeW = int(float64(r.srcWidth) * r.scale)
	}

	r.yPad = (r.destHeight - r.resizeH) / 2 // padding height / 2
	r.xPad = (r.destWidth - r.resizeW) / 2  // padding width / 2
}

// LetterBoxResize resizes the image to the thumbnail dimensions whilst
// maintaining image aspect.  Color is that used for letter box padding.
func (r *Resizer) LetterBoxResize(src gocv.Mat, dest *gocv.Mat, color color.RGBA) {

	gocv.Resize(src, &r.tempMat, image.Pt(r.resizeW, r.resizeH),
		0, 0, gocv.InterpolationArea)

	gocv.CopyMakeBorder(r.tempMat, dest, r.yPad, r.destHeight-r.resizeH-r.yPad,
		r.xPad, r.destWidth-r.resizeW-r.xPad, gocv.BorderConstant, color)
}

// ScalePoint maps a point of the source image into the thumbnail
func (r *Resizer) ScalePoint(pt image.Point) image.Point {
	return image.Pt(
		int(float64(pt.X)*r.scale)+r.xPad,
		int(float64(pt.Y)*r.scale)+r.yPad,
	)
}

// ScaleRecord returns a copy of rec with its size and every annotation
// mapped into the thumbnail
func (r *Resizer) ScaleRecord(rec annotation.Record) annotation.Record {

	out := rec
	out.Width = r.destWidth
	out.Height = r.destHeight
	out.Objects = make([]annotation.Object, len(rec.Objects))

	for i, obj := range rec.Objects {

		tl := r.ScalePoint(image.Pt(obj.Box.Left, obj.Box.Top))
		br := r.ScalePoint(image.Pt(obj.Box.Right, obj.Box.Bottom))

		obj.Box = annotation.BoxRect{Left: tl.X, Top: tl.Y, Right: br.X, Bottom: br.Y}

		if obj.Polygon != nil {
			poly := make(annotation.Polygon, len(obj.Polygon))
			for j, pt := range obj.Polygon {
				poly[j] = r.ScalePoint(pt)
			}
			obj.Polygon = poly
		}

		if obj.KeyPoints != nil {
			kps := make([]annotation.KeyPoint, len(obj.KeyPoints))
			for j, kp := range obj.KeyPoints {
				pt := r.ScalePoint(image.Pt(kp.X, kp.Y))
				kps[j] = annotation.KeyPoint{X: pt.X, Y: pt.Y, Visible: kp.Visible}
			}
			obj.KeyPoints = kps
		}

		out.Objects[i] = obj
	}

	return out
}

// ScaleFactor returns the scale factor used in letterbox resize
func (r *Resizer) ScaleFactor() float64 {
	return r.scale
}

// XPad returns the x padding used in letterbox resize
func (r *Resizer) XPad() int {
	return r.xPad
}

// YPad returns the y padding used in letterbox resize
func (r *Resizer) YPad() int {
	return r.yPad
}
