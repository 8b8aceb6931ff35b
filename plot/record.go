package plot

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/render"
	"gocv.io/x/gocv"
	"path/filepath"
)

// RecordOptions configures DrawRecord
type RecordOptions struct {
	render.Options
	// ImageDir is prefixed to relative record file paths
	ImageDir string
	// Width and Height of the figure, zero keeps the image size or aspect
	Width  int
	Height int
}

// DefaultRecordOptions returns options drawing labels at image size
func DefaultRecordOptions() RecordOptions {
	return RecordOptions{Options: render.DefaultOptions()}
}

// DrawRecord reads the image of rec, draws its annotations and returns the
// figure showing it
func DrawRecord(rec annotation.Record, classes *annotation.ClassMap,
	opts RecordOptions) (*Figure, error) {

	file := rec.Filepath

	if opts.ImageDir != "" && !filepath.IsAbs(file) {
		file = filepath.Join(opts.ImageDir, file)
	}

	img := gocv.IMRead(file, gocv.IMReadColor)
	defer img.Close()

	if img.Empty() {
		return nil, errors.Wrapf(ErrEmptyImage, "error reading image from %s", file)
	}

	return DrawRecordMat(img, rec, classes, opts)
}

// DrawRecordMat draws the annotations of rec onto a copy of img, the
// record's BGR image, and returns the figure showing it
func DrawRecordMat(img gocv.Mat, rec annotation.Record,
	classes *annotation.ClassMap, opts RecordOptions) (*Figure, error) {

	if img.Empty() {
		return nil, ErrEmptyImage
	}

	canvas := img.Clone()
	defer canvas.Close()

	if err := render.Record(&canvas, rec, classes, opts.Options); err != nil {
		return nil, errors.Wrapf(err, "error drawing record %d", rec.ID)
	}

	rst, err := MatToRaster(canvas)

	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("record %d", rec.ID)

	if rec.Filepath != "" {
		title = filepath.Base(rec.Filepath)
	}

	return ImageFigure(title, rst, opts.Width, opts.Height), nil
}
