package annotation

import (
	clipper "github.com/ctessum/go.clipper"
	"image"
	"math"
)

// Polygon is the outline of a segmentation mask
type Polygon []image.Point

// Area returns the enclosed area using the shoelace formula
func (p Polygon) Area() float64 {

	ptsNum := len(p)

	if ptsNum < 3 {
		return 0
	}

	area := 0.0

	for i := 0; i < ptsNum; i++ {
		next := p[(i+1)%ptsNum]
		area += float64(p[i].X*next.Y - p[i].Y*next.X)
	}

	return math.Abs(area / 2.0)
}

// Bounds returns the bounding box of the polygon
func (p Polygon) Bounds() BoxRect {

	if len(p) == 0 {
		return BoxRect{}
	}

	box := BoxRect{Left: p[0].X, Right: p[0].X, Top: p[0].Y, Bottom: p[0].Y}

	for _, pt := range p[1:] {
		box.Left = min(box.Left, pt.X)
		box.Right = max(box.Right, pt.X)
		box.Top = min(box.Top, pt.Y)
		box.Bottom = max(box.Bottom, pt.Y)
	}

	return box
}

// Expand offsets the polygon outwards by distance pixels with rounded
// corners.  A negative distance shrinks it.  When the offset collapses the
// polygon an empty Polygon is returned.
func (p Polygon) Expand(distance float64) Polygon {

	if len(p) < 3 {
		return nil
	}

	// convert the points to Clipper Path
	var path clipper.Path

	for _, pt := range p {
		path = append(path, &clipper.IntPoint{X: clipper.CInt(pt.X), Y: clipper.CInt(pt.Y)})
	}

	// create a ClipperOffset object and add the path
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(distance)

	if len(solution) == 0 {
		return nil
	}

	// an outward offset of a simple polygon gives a single outline, keep the
	// largest in case of degenerate input
	best := Polygon{}

	for _, sol := range solution {

		poly := make(Polygon, 0, len(sol))

		for _, pt := range sol {
			poly = append(poly, image.Pt(int(pt.X), int(pt.Y)))
		}

		if poly.Area() > best.Area() {
			best = poly
		}
	}

	return best
}
