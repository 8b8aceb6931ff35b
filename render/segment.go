package render

import (
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
	"image"
)

// ObjectMasks fills the segmentation polygons of the objects as a
// transparent overlay on the image.  When outline is greater than zero each
// mask also gets an outline offset that many pixels outside the polygon.
func ObjectMasks(img *gocv.Mat, objects []annotation.Object, alpha float64,
	outline int, lineThickness int) {

	overlay := img.Clone()
	defer overlay.Close()

	drawn := false

	for _, obj := range objects {

		if len(obj.Polygon) < 3 {
			continue
		}

		pts := gocv.NewPointsVectorFromPoints([][]image.Point{obj.Polygon})
		gocv.FillPoly(&overlay, pts, ClassColor(obj.Class))
		pts.Close()

		drawn = true
	}

	if !drawn {
		return
	}

	// blend the filled polygons back onto the source image
	gocv.AddWeighted(overlay, alpha, *img, 1-alpha, 0, img)

	if outline <= 0 {
		return
	}

	for _, obj := range objects {

		halo := obj.Polygon.Expand(float64(outline))

		if len(halo) < 3 {
			continue
		}

		pts := gocv.NewPointsVectorFromPoints([][]image.Point{halo})
		gocv.Polylines(img, pts, true, ClassColor(obj.Class), lineThickness)
		pts.Close()
	}
}
