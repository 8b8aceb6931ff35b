package render

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
	"image"
	"testing"
)

func testRecord() annotation.Record {

	pose := make([]annotation.KeyPoint, keyPointsTotal)

	for i := range pose {
		pose[i] = annotation.KeyPoint{X: 60 + i, Y: 60 + i, Visible: true}
	}

	return annotation.Record{
		ID:     1,
		Width:  200,
		Height: 150,
		Objects: []annotation.Object{
			{Class: 0, Box: annotation.BoxRect{Left: 10, Top: 40, Right: 90, Bottom: 120}, Score: 1},
			{Class: 1, Box: annotation.BoxRect{Left: 120, Top: 20, Right: 180, Bottom: 80}, Score: 0.5,
				Polygon: annotation.Polygon{{120, 20}, {180, 20}, {180, 80}, {120, 80}}},
			{Class: 0, KeyPoints: pose},
		},
	}
}

func pixel(img gocv.Mat, pt image.Point) [3]uint8 {
	v := img.GetVecbAt(pt.Y, pt.X)
	return [3]uint8{v[0], v[1], v[2]}
}

func TestRecordDrawsBoxes(t *testing.T) {

	img := gocv.Zeros(150, 200, gocv.MatTypeCV8UC3)
	defer img.Close()

	classes := annotation.NewClassMap("person", "car")
	opts := DefaultOptions()
	opts.DisplayBBox = true
	opts.DisplayLabel = false
	opts.LineThickness = 1

	require.NoError(t, Record(&img, testRecord(), classes, opts))

	// a box edge pixel is painted in the class color, BGR order
	clr := ClassColor(0)
	assert.Equal(t, [3]uint8{clr.B, clr.G, clr.R}, pixel(img, image.Pt(50, 40)))

	// the inside of the box is untouched
	assert.Equal(t, [3]uint8{0, 0, 0}, pixel(img, image.Pt(50, 80)))
}

func TestRecordDrawsMasks(t *testing.T) {

	img := gocv.Zeros(150, 200, gocv.MatTypeCV8UC3)
	defer img.Close()

	classes := annotation.NewClassMap("person", "car")
	opts := DefaultOptions()
	opts.DisplayLabel = false
	opts.DisplayMask = true
	opts.MaskAlpha = 1
	opts.MaskOutline = 0

	require.NoError(t, Record(&img, testRecord(), classes, opts))

	clr := ClassColor(1)
	assert.Equal(t, [3]uint8{clr.B, clr.G, clr.R}, pixel(img, image.Pt(150, 50)))
	assert.Equal(t, [3]uint8{0, 0, 0}, pixel(img, image.Pt(5, 5)))
}

func TestRecordUnknownClassLabel(t *testing.T) {

	img := gocv.Zeros(150, 200, gocv.MatTypeCV8UC3)
	defer img.Close()

	// the class map is missing the "car" class
	classes := annotation.NewClassMap("person")

	err := Record(&img, testRecord(), classes, DefaultOptions())

	assert.ErrorIs(t, err, annotation.ErrUnknownClass)
}

func TestRecordAllLayers(t *testing.T) {

	img := gocv.Zeros(150, 200, gocv.MatTypeCV8UC3)
	defer img.Close()

	classes := annotation.NewClassMap("person", "car")
	opts := Options{
		DisplayLabel:     true,
		DisplayBBox:      true,
		DisplayMask:      true,
		DisplayKeyPoints: true,
		LineThickness:    2,
		MaskAlpha:        0.4,
		MaskOutline:      3,
		Font:             DefaultFont(),
	}

	require.NoError(t, Record(&img, testRecord(), classes, opts))

	gray := gocv.NewMat()
	defer gray.Close()

	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	assert.Greater(t, gocv.CountNonZero(gray), 0)

	// the box label sits above the box
	clr := ClassColor(0)
	assert.Equal(t, [3]uint8{clr.B, clr.G, clr.R}, pixel(img, image.Pt(11, 39)))
}

func TestLabelText(t *testing.T) {

	classes := annotation.NewClassMap("person")

	text, err := labelText(annotation.Object{Class: 0, Score: 1}, classes)
	require.NoError(t, err)
	assert.Equal(t, "person", text)

	text, err = labelText(annotation.Object{Class: 0, Score: 0.25}, classes)
	require.NoError(t, err)
	assert.Equal(t, "person 0.25", text)
}

func TestClassColor(t *testing.T) {
	assert.Equal(t, classColors[0], ClassColor(len(classColors)))
	assert.Equal(t, classColors[3], ClassColor(-3))
}

func TestFontForImage(t *testing.T) {

	def := DefaultFont()

	assert.Equal(t, def, def.ForImage(0))
	assert.Equal(t, def, def.ForImage(referenceSize))

	big := def.ForImage(1280)
	assert.InDelta(t, 1.0, big.Scale, 1e-9)
	assert.Equal(t, 2, big.Thickness)
	assert.Equal(t, 8, big.LeftPad)
	assert.Equal(t, 12, big.BottomPad)

	small := def.ForImage(160)
	assert.InDelta(t, minScale, small.Scale, 1e-9)
	assert.Equal(t, 1, small.Thickness)
	assert.Equal(t, 1, small.LeftPad)
	assert.Equal(t, 2, small.BottomPad)
	assert.Equal(t, def.Color, small.Color)
}
