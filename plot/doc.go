/*
Package plot builds displayable figures for the dashboard: an annotated
record image or the heatmap of a label mixing matrix.

Figures are backend neutral descriptions.  A Backend shows them, the
PNGBackend writes them to image files.
*/
package plot

import "github.com/pkg/errors"

var (
	// ErrEmptyImage is returned when a record image can not be read
	ErrEmptyImage = errors.New("empty image")
	// ErrEmptyFigure is returned when a figure has nothing to render
	ErrEmptyFigure = errors.New("figure has no image or heatmap")
)
