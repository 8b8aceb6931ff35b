package render

import (
	"fmt"
	"github.com/swdee/go-annodash/annotation"
	"gocv.io/x/gocv"
	"image"
	"image/color"
)

// boxLabel defines where an object label should be rendered on the source
// image
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// ObjectBoxes renders the bounding boxes around the annotated objects.  When
// withLabels is set the class label is written above each box.
func ObjectBoxes(img *gocv.Mat, objects []annotation.Object,
	classes *annotation.ClassMap, font Font, lineThickness int,
	withBoxes, withLabels bool) error {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(objects))

	for _, obj := range objects {

		useClr := ClassColor(obj.Class)

		if withBoxes {
			gocv.Rectangle(img, obj.Box.Rect(), useClr, lineThickness)
		}

		if !withLabels {
			continue
		}

		text, err := labelText(obj, classes)

		if err != nil {
			return err
		}

		boxLabels = append(boxLabels, placeLabel(text, obj.Box, useClr, font, lineThickness))
	}

	// draw all precalculated box labels so they are the top most layer on the
	// image and don't get overlapped with mask outlines
	drawLabels(img, boxLabels, font)

	return nil
}

// labelText returns the text rendered for an object, the score is only
// shown for predictions
func labelText(obj annotation.Object, classes *annotation.ClassMap) (string, error) {

	name, err := classes.Name(obj.Class)

	if err != nil {
		return "", err
	}

	if obj.Score > 0 && obj.Score < 1 {
		return fmt.Sprintf("%s %.2f", name, obj.Score), nil
	}

	return name, nil
}

// placeLabel calculates where the label of a box goes
func placeLabel(text string, box annotation.BoxRect, clr color.RGBA,
	font Font, lineThickness int) boxLabel {

	textSize := font.measure(text)
	height := font.labelHeight(textSize)

	// Calculate the alignment of text label
	var centerX int

	switch font.Alignment {
	case Center:
		centerX = (box.Left + box.Right) / 2

	case Right:
		centerX = box.Right - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

	case Left:
		fallthrough
	default:
		centerX = box.Left + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
	}

	// labels of boxes touching the top edge go inside the box
	top := box.Top

	if top-height < 0 {
		top = box.Top + height
	}

	return boxLabel{
		rect: image.Rect(centerX-textSize.X/2-font.LeftPad, top-height,
			centerX+textSize.X/2+font.RightPad, top),
		clr:     clr,
		text:    text,
		textPos: image.Pt(centerX-textSize.X/2, top-font.BottomPad),
	}
}

// drawLabels paints the label boxes and their text
func drawLabels(img *gocv.Mat, labels []boxLabel, font Font) {
	for _, box := range labels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
