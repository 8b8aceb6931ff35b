package stats

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-annodash/annotation"
	"gonum.org/v1/gonum/mat"
	"math"
	"testing"
	"time"
)

type labelRow struct {
	image string
	label string
}

func TestMixingMatrix(t *testing.T) {

	rows := []labelRow{
		{"a.jpg", "person"},
		{"a.jpg", "person"},
		{"a.jpg", "car"},
		{"b.jpg", "car"},
		{"b.jpg", "dog"},
		{"c.jpg", "dog"},
	}

	mix, err := MixingMatrix(rows,
		func(r labelRow) string { return r.image },
		func(r labelRow) string { return r.label })

	require.NoError(t, err)
	assert.Equal(t, []string{"car", "dog", "person"}, mix.Labels)

	want := mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 0, 0,
		1, 0, 1,
	})

	assert.True(t, mat.Equal(want, mix.Matrix), "got\n%v", mat.Formatted(mix.Matrix))

	assert.Equal(t, 1.0, mix.Value("person", "person"))
	assert.Equal(t, 1.0, mix.Value("car", "dog"))
	assert.Equal(t, 0.0, mix.Value("car", "horse"))
	assert.Equal(t, 1.0, mix.Max())

	idx, ok := mix.Index("person")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	cells := mix.Cells()
	require.Len(t, cells, 9)
	assert.Equal(t, MixingCell{Value: 0, Row: "car", Col: "car"}, cells[0])
	assert.Equal(t, MixingCell{Value: 1, Row: "car", Col: "dog"}, cells[1])
	assert.Equal(t, MixingCell{Value: 1, Row: "person", Col: "person"}, cells[8])
}

func TestMixingMatrixEmpty(t *testing.T) {

	_, err := MixingMatrix([]labelRow{},
		func(r labelRow) string { return r.image },
		func(r labelRow) string { return r.label })

	assert.ErrorIs(t, err, ErrNoData)
}

func TestDateRange(t *testing.T) {

	loc := time.UTC

	tests := []struct {
		name    string
		dates   []time.Time
		wantMin time.Time
		wantMax time.Time
	}{
		{
			name: "spread",
			dates: []time.Time{
				time.Date(2021, 3, 5, 13, 4, 5, 6, loc),
				time.Date(2021, 3, 1, 23, 59, 0, 0, loc),
				time.Date(2021, 3, 3, 0, 0, 0, 0, loc),
			},
			wantMin: time.Date(2021, 3, 1, 0, 0, 0, 0, loc),
			wantMax: time.Date(2021, 3, 5, 0, 0, 0, 0, loc),
		},
		{
			name: "same day",
			dates: []time.Time{
				time.Date(2021, 3, 5, 8, 0, 0, 0, loc),
				time.Date(2021, 3, 5, 18, 0, 0, 0, loc),
			},
			wantMin: time.Date(2021, 3, 5, 0, 0, 0, 0, loc),
			wantMax: time.Date(2021, 3, 6, 0, 0, 0, 0, loc),
		},
		{
			name:    "end of month",
			dates:   []time.Time{time.Date(2021, 1, 31, 12, 0, 0, 0, loc)},
			wantMin: time.Date(2021, 1, 31, 0, 0, 0, 0, loc),
			wantMax: time.Date(2021, 2, 1, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotMin, gotMax, err := DateRange(tc.dates)
			require.NoError(t, err)
			assert.True(t, tc.wantMin.Equal(gotMin), "min %v", gotMin)
			assert.True(t, tc.wantMax.Equal(gotMax), "max %v", gotMax)
		})
	}

	_, _, err := DateRange(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBoxes(t *testing.T) {

	rows := []annotation.ObjectRow{
		{Box: annotation.BoxRect{Left: 0, Right: 10, Top: 0, Bottom: 10}},
		{Box: annotation.BoxRect{Left: 0, Right: 20, Top: 0, Bottom: 10}},
		{Box: annotation.BoxRect{Left: 0, Right: 30, Top: 0, Bottom: 0}},
	}

	bs, err := Boxes(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, bs.Count)
	assert.InDelta(t, 20, bs.Width.Mean, 1e-9)
	assert.InDelta(t, 10, bs.Width.Std, 1e-9)
	assert.Equal(t, 10.0, bs.Width.Min)
	assert.Equal(t, 30.0, bs.Width.Max)
	assert.Equal(t, 20.0, bs.Width.Median)
	assert.InDelta(t, 100, bs.Area.Mean, 1e-9)
	assert.InDelta(t, 1.5, bs.Aspect.Mean, 1e-9)

	single, err := Boxes(rows[:1])
	require.NoError(t, err)
	assert.False(t, math.IsNaN(single.Width.Std))

	_, err = Boxes(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDescribe(t *testing.T) {

	x := []float64{3, 1, 2}

	s, err := Describe(x)
	require.NoError(t, err)

	assert.Equal(t, Summary{Mean: 2, Std: 1, Min: 1, Max: 3, Median: 2}, s)
	assert.Equal(t, []float64{3, 1, 2}, x, "input must not be sorted in place")

	_, err = Describe(nil)
	assert.ErrorIs(t, err, ErrNoData)
}
