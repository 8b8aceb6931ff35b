// Package render draws annotated records onto images using GoCV.
package render

import (
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
)

// Options selects which parts of a record's annotations are drawn
type Options struct {
	DisplayLabel     bool
	DisplayBBox      bool
	DisplayMask      bool
	DisplayKeyPoints bool
	// LineThickness of boxes, outlines and skeleton lines
	LineThickness int
	// MaskAlpha is the opacity of the mask fill between 0 and 1
	MaskAlpha float64
	// MaskOutline is how many pixels outside the mask its outline is drawn,
	// 0 draws no outline
	MaskOutline int
	Font        Font
}

// DefaultOptions returns the default drawing options, labels only
func DefaultOptions() Options {
	return Options{
		DisplayLabel:  true,
		LineThickness: 2,
		MaskAlpha:     0.5,
		MaskOutline:   2,
		Font:          DefaultFont(),
	}
}

// Record draws the annotations of rec onto img, which must be the record's
// BGR image.  Masks are drawn first, then keypoints, boxes and labels.
func Record(img *gocv.Mat, rec annotation.Record, classes *annotation.ClassMap,
	opts Options) error {

	if opts.DisplayMask {
		ObjectMasks(img, rec.Objects, opts.MaskAlpha, opts.MaskOutline, opts.LineThickness)
	}

	if opts.DisplayKeyPoints {
		ObjectKeyPoints(img, rec.Objects, opts.LineThickness)
	}

	if opts.DisplayBBox || opts.DisplayLabel {
		return ObjectBoxes(img, rec.Objects, classes, opts.Font, opts.LineThickness,
			opts.DisplayBBox, opts.DisplayLabel)
	}

	return nil
}
