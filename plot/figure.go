package plot

// DefaultTools are the interactive tools a figure offers when shown by an
// interactive backend
var DefaultTools = []string{"reset", "wheel_zoom", "box_zoom", "save", "pan"}

// Figure is a backend neutral description of one plot
type Figure struct {
	Title string
	// Width and Height of the plot area in pixels
	Width  int
	Height int
	// XRange and YRange are the data ranges shown along each axis.  Image
	// figures use a reversed y range so the origin is top left.
	XRange [2]float64
	YRange [2]float64
	// XAxisAbove places the x axis at the top of the plot
	XAxisAbove bool
	Grid       bool
	Tools      []string

	// Image is set for image figures
	Image *Raster
	// Heatmap is set for heatmap figures
	Heatmap *HeatmapData
}

// FigureSize returns the plot dimensions for an image of imgW x imgH.  When
// only one of width or height is given the other is derived so the image
// aspect ratio is retained; a zero value means not given.
func FigureSize(imgW, imgH, width, height int) (int, int) {

	switch {
	case width == 0 && height != 0:
		return int(float64(imgW) / float64(imgH) * float64(height)), height

	case height == 0 && width != 0:
		return width, int(float64(imgH) / float64(imgW) * float64(width))

	default:
		plotW, plotH := imgW, imgH

		if width != 0 {
			plotW = width
		}

		if height != 0 {
			plotH = height
		}

		return plotW, plotH
	}
}

// ImageFigure wraps a raster in a figure sized with FigureSize
func ImageFigure(title string, rst *Raster, width, height int) *Figure {

	plotW, plotH := FigureSize(rst.Width, rst.Height, width, height)

	return &Figure{
		Title:      title,
		Width:      plotW,
		Height:     plotH,
		XRange:     [2]float64{0, float64(rst.Width)},
		YRange:     [2]float64{float64(rst.Height), 0},
		XAxisAbove: true,
		Grid:       false,
		Tools:      append([]string(nil), DefaultTools...),
		Image:      rst,
	}
}
