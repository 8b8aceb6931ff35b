package plot

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/stats"
	"gocv.io/x/gocv"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestToRaster(t *testing.T) {

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 4, G: 5, B: 6, A: 255})
	img.SetRGBA(0, 1, color.RGBA{R: 7, G: 8, B: 9, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 11, B: 12, A: 128})

	rst := ToRaster(img)

	require.Equal(t, 2, rst.Width)
	require.Equal(t, 2, rst.Height)

	// bottom image row comes first, bytes R, G, B, 255 in little endian order
	assert.Equal(t, []uint32{
		0xFF090807, 0xFF0C0B0A,
		0xFF030201, 0xFF060504,
	}, rst.Pix[:4])

	back := rst.Image()
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, back.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 7, G: 8, B: 9, A: 255}, back.RGBAAt(0, 1))
}

func TestToRasterKeepsTranslucentChannels(t *testing.T) {

	tests := []struct {
		name string
		img  image.Image
		want uint32
	}{
		{"premultiplied", func() image.Image {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.SetRGBA(0, 0, color.RGBA{R: 10, G: 11, B: 12, A: 128})
			return img
		}(), 0xFF0C0B0A},
		{"non premultiplied", func() image.Image {
			img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 11, B: 12, A: 128})
			return img
		}(), 0xFF0C0B0A},
		{"gray", func() image.Image {
			img := image.NewGray(image.Rect(0, 0, 1, 1))
			img.SetGray(0, 0, color.Gray{Y: 10})
			return img
		}(), 0xFF0A0A0A},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rst := ToRaster(tc.img)
			require.Len(t, rst.Pix, 1)
			assert.Equal(t, tc.want, rst.Pix[0])
		})
	}
}

func TestFigureSize(t *testing.T) {

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"image size", 0, 0, 640, 480},
		{"height only", 0, 240, 320, 240},
		{"width only", 320, 0, 320, 240},
		{"both", 100, 100, 100, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FigureSize(640, 480, tc.width, tc.height)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestDrawRecordMat(t *testing.T) {

	img := gocv.Zeros(120, 160, gocv.MatTypeCV8UC3)
	defer img.Close()

	rec := annotation.Record{
		ID:       3,
		Filepath: "images/0003.jpg",
		Objects: []annotation.Object{
			{Class: 0, Box: annotation.BoxRect{Left: 20, Top: 40, Right: 80, Bottom: 100}},
		},
	}

	opts := DefaultRecordOptions()
	opts.DisplayBBox = true
	opts.Width = 80

	fig, err := DrawRecordMat(img, rec, annotation.NewClassMap("person"), opts)
	require.NoError(t, err)

	assert.Equal(t, "0003.jpg", fig.Title)
	assert.Equal(t, 80, fig.Width)
	assert.Equal(t, 60, fig.Height)
	assert.Equal(t, [2]float64{0, 160}, fig.XRange)
	assert.Equal(t, [2]float64{120, 0}, fig.YRange)
	assert.True(t, fig.XAxisAbove)
	assert.Equal(t, DefaultTools, fig.Tools)
	require.NotNil(t, fig.Image)
	assert.Equal(t, 160*120, len(fig.Image.Pix))

	// the source Mat is not drawn on
	v := img.GetVecbAt(40, 20)
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{v[0], v[1], v[2]})
}

func TestDrawRecordMissingImage(t *testing.T) {

	rec := annotation.Record{Filepath: "does-not-exist.jpg"}

	_, err := DrawRecord(rec, annotation.NewClassMap(), DefaultRecordOptions())

	assert.ErrorIs(t, err, ErrEmptyImage)
}

func testMixing(t *testing.T) *stats.Mixing {

	type row struct{ img, label string }

	mix, err := stats.MixingMatrix([]row{{"a", "car"}, {"a", "dog"}, {"b", "dog"}, {"b", "dog"}},
		func(r row) string { return r.img },
		func(r row) string { return r.label })

	require.NoError(t, err)

	return mix
}

func TestHeatmap(t *testing.T) {

	fig := Heatmap("class mixing", testMixing(t), 40)

	assert.Equal(t, 80, fig.Width)
	assert.Equal(t, 80, fig.Height)
	require.NotNil(t, fig.Heatmap)
	assert.Equal(t, []string{"car", "dog"}, fig.Heatmap.Rows)
	assert.Equal(t, 1.0, fig.Heatmap.Value("dog", "car"))
	assert.Equal(t, 1.0, fig.Heatmap.Value("dog", "dog"))
	assert.Equal(t, 0.0, fig.Heatmap.Value("car", "car"))
	assert.Equal(t, 1.0, fig.Heatmap.Max)
}

func TestHeatmapDataValue(t *testing.T) {

	hm := &HeatmapData{
		Rows: []string{"a", "b"},
		Cols: []string{"a", "b"},
		Cells: []stats.MixingCell{
			{Value: 2, Row: "a", Col: "b"},
			{Value: 3, Row: "b", Col: "a"},
		},
	}

	tests := []struct {
		row, col string
		want     float64
	}{
		{"a", "b", 2},
		{"b", "a", 3},
		{"a", "a", 0},
		{"x", "a", 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, hm.Value(tc.row, tc.col), "%s/%s", tc.row, tc.col)
	}

	assert.Len(t, hm.values, 2)
}

func TestPNGBackend(t *testing.T) {

	dir := filepath.Join(t.TempDir(), "figures")

	backend, err := NewPNGBackend(dir, nil)
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	imgFig := ImageFigure("Record 1", ToRaster(src), 8, 0)

	require.NoError(t, backend.Show(imgFig))
	require.NoError(t, backend.Show(Heatmap("class mixing", testMixing(t), 40)))

	for _, name := range []string{"001_record_1.png", "002_class_mixing.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0))
	}

	rendered, err := backend.Render(imgFig)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), rendered.Bounds())

	_, err = backend.Render(&Figure{Title: "empty"})
	assert.ErrorIs(t, err, ErrEmptyFigure)
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, heatLow, heatColor(0, 4))
	assert.Equal(t, heatHigh, heatColor(4, 4))
	assert.Equal(t, heatLow, heatColor(3, 0))
}
