package plot

import (
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Backend shows figures
type Backend interface {
	Show(fig *Figure) error
}

const (
	// fontSize of heatmap labels in points
	fontSize = 12
	// labelPad is the space around heatmap axis labels
	labelPad = 6
)

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	textColor  = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	// heatLow and heatHigh are the colors of the smallest and largest
	// heatmap values
	heatLow  = color.RGBA{R: 247, G: 251, B: 255, A: 255}
	heatHigh = color.RGBA{R: 8, G: 48, B: 107, A: 255}
)

// PNGBackend renders figures to PNG files in a directory
type PNGBackend struct {
	dir      string
	fontFace font.Face
	log      *slog.Logger
	count    int
}

// NewPNGBackend returns a backend writing figures into dir, creating it
// when needed.  A nil logger uses slog.Default().
func NewPNGBackend(dir string, logger *slog.Logger) (*PNGBackend, error) {

	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "error creating figure directory")
	}

	f, err := opentype.Parse(goregular.TTF)

	if err != nil {
		return nil, errors.Wrap(err, "error parsing font")
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, errors.Wrap(err, "error creating font face")
	}

	return &PNGBackend{dir: dir, fontFace: face, log: logger}, nil
}

// Show renders fig and writes it to the next numbered PNG file
func (p *PNGBackend) Show(fig *Figure) error {

	img, err := p.Render(fig)

	if err != nil {
		return err
	}

	p.count++
	file := filepath.Join(p.dir, fmt.Sprintf("%03d_%s.png", p.count, slug(fig.Title)))

	f, err := os.Create(file)

	if err != nil {
		return errors.Wrap(err, "error creating figure file")
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "error encoding figure %s", file)
	}

	p.log.Info("figure written", "file", file, "width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return nil
}

// Render draws fig into an image
func (p *PNGBackend) Render(fig *Figure) (*image.RGBA, error) {

	switch {
	case fig.Image != nil:
		return p.renderImage(fig), nil

	case fig.Heatmap != nil:
		return p.renderHeatmap(fig), nil
	}

	return nil, errors.Wrapf(ErrEmptyFigure, "figure %q", fig.Title)
}

// renderImage scales the raster to the figure size
func (p *PNGBackend) renderImage(fig *Figure) *image.RGBA {

	src := fig.Image.Image()

	if fig.Width == src.Bounds().Dx() && fig.Height == src.Bounds().Dy() {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, fig.Width, fig.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst
}

// renderHeatmap paints the heatmap cells with row labels on the left and
// column labels above
func (p *PNGBackend) renderHeatmap(fig *Figure) *image.RGBA {

	hm := fig.Heatmap
	lineH := p.fontFace.Metrics().Height.Ceil()

	labelW := 0

	for _, name := range hm.Rows {
		if w := font.MeasureString(p.fontFace, name).Ceil(); w > labelW {
			labelW = w
		}
	}

	left := labelW + 2*labelPad
	top := 2*lineH + 3*labelPad

	cellW, cellH := 0, 0

	if len(hm.Cols) > 0 {
		cellW = fig.Width / len(hm.Cols)
	}

	if len(hm.Rows) > 0 {
		cellH = fig.Height / len(hm.Rows)
	}

	img := image.NewRGBA(image.Rect(0, 0, left+fig.Width, top+fig.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	// title
	p.drawText(img, fig.Title, labelPad, labelPad+lineH, textColor)

	// column labels
	for j, name := range hm.Cols {
		w := font.MeasureString(p.fontFace, name).Ceil()
		x := left + j*cellW + (cellW-w)/2
		p.drawText(img, name, x, top-labelPad, textColor)
	}

	for i, row := range hm.Rows {

		y := top + i*cellH

		// row label
		p.drawText(img, row, labelPad, y+(cellH+lineH)/2, textColor)

		for j, col := range hm.Cols {

			v := hm.Value(row, col)
			clr := heatColor(v, hm.Max)
			cell := image.Rect(left+j*cellW, y, left+(j+1)*cellW, y+cellH)

			draw.Draw(img, cell, &image.Uniform{C: clr}, image.Point{}, draw.Src)

			// value text in a contrasting color
			txtClr := textColor

			if v > hm.Max/2 {
				txtClr = background
			}

			text := fmt.Sprintf("%g", v)
			w := font.MeasureString(p.fontFace, text).Ceil()
			p.drawText(img, text, cell.Min.X+(cellW-w)/2, cell.Min.Y+(cellH+lineH)/2, txtClr)
		}
	}

	return img
}

// drawText writes text with its baseline at y
func (p *PNGBackend) drawText(img *image.RGBA, text string, x, y int, clr color.Color) {
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: p.fontFace,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)
}

// heatColor interpolates between heatLow and heatHigh
func heatColor(v, maxV float64) color.RGBA {

	t := 0.0

	if maxV > 0 {
		t = v / maxV
	}

	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}

	return color.RGBA{
		R: lerp(heatLow.R, heatHigh.R),
		G: lerp(heatLow.G, heatHigh.G),
		B: lerp(heatLow.B, heatHigh.B),
		A: 255,
	}
}

// slug turns a figure title into a file name
func slug(title string) string {

	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '-' {
			return unicode.ToLower(r)
		}
		return '_'
	}, title)

	if s == "" {
		return "figure"
	}

	return s
}
