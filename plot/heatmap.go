package plot

import (
	"github.com/swdee/go-annodash/stats"
)

// HeatmapData is a two dimensional categorical grid of values
type HeatmapData struct {
	// Rows and Cols are the category names along each axis
	Rows  []string
	Cols  []string
	Cells []stats.MixingCell
	Max   float64

	// values indexes Cells by row and column, built on the first Value call
	values map[[2]string]float64
}

// Value returns the value of a cell, 0 when missing.  Cells must not change
// after the first call.
func (h *HeatmapData) Value(row, col string) float64 {

	if h.values == nil {
		h.values = make(map[[2]string]float64, len(h.Cells))

		for _, c := range h.Cells {
			h.values[[2]string{c.Row, c.Col}] = c.Value
		}
	}

	return h.values[[2]string{row, col}]
}

// Heatmap returns the figure of a mixing matrix with cellSize pixel cells
func Heatmap(title string, mix *stats.Mixing, cellSize int) *Figure {

	n := len(mix.Labels)

	return &Figure{
		Title:  title,
		Width:  n * cellSize,
		Height: n * cellSize,
		XRange: [2]float64{0, float64(n)},
		YRange: [2]float64{float64(n), 0},
		Tools:  append([]string(nil), DefaultTools...),
		Heatmap: &HeatmapData{
			Rows:  append([]string(nil), mix.Labels...),
			Cols:  append([]string(nil), mix.Labels...),
			Cells: mix.Cells(),
			Max:   mix.Max(),
		},
	}
}
