package stats

import (
	"github.com/swdee/go-annodash/annotation"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"sort"
)

// Summary describes the distribution of one measurement
type Summary struct {
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// BoxStats summarises the bounding box sizes of a set of objects
type BoxStats struct {
	Count  int
	Width  Summary
	Height Summary
	Area   Summary
	// Aspect is width divided by height, boxes with no height are skipped
	Aspect Summary
}

// Boxes computes the bounding box size statistics of rows
func Boxes(rows []annotation.ObjectRow) (BoxStats, error) {

	if len(rows) == 0 {
		return BoxStats{}, ErrNoData
	}

	widths := make([]float64, 0, len(rows))
	heights := make([]float64, 0, len(rows))
	areas := make([]float64, 0, len(rows))
	aspects := make([]float64, 0, len(rows))

	for _, row := range rows {
		w := float64(row.Box.Width())
		h := float64(row.Box.Height())

		widths = append(widths, w)
		heights = append(heights, h)
		areas = append(areas, w*h)

		if h > 0 {
			aspects = append(aspects, w/h)
		}
	}

	return BoxStats{
		Count:  len(rows),
		Width:  summarize(widths),
		Height: summarize(heights),
		Area:   summarize(areas),
		Aspect: summarize(aspects),
	}, nil
}

// Describe returns the Summary of the values in x, x is not modified
func Describe(x []float64) (Summary, error) {

	if len(x) == 0 {
		return Summary{}, ErrNoData
	}

	return summarize(append([]float64(nil), x...)), nil
}

// summarize returns the Summary of x, the zero Summary when x is empty.  x
// is sorted in place.
func summarize(x []float64) Summary {

	if len(x) == 0 {
		return Summary{}
	}

	sort.Float64s(x)

	mean, std := stat.MeanStdDev(x, nil)

	if len(x) == 1 {
		std = 0
	}

	return Summary{
		Mean:   mean,
		Std:    std,
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
	}
}
