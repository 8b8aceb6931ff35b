package annotation

import (
	"image"
	"time"
)

// BoxRect are the dimensions of the bounding box of an annotated object
type BoxRect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Width of the box
func (b BoxRect) Width() int {
	return b.Right - b.Left
}

// Height of the box
func (b BoxRect) Height() int {
	return b.Bottom - b.Top
}

// Area of the box in pixels
func (b BoxRect) Area() int {
	return b.Width() * b.Height()
}

// Rect returns the box as an image.Rectangle
func (b BoxRect) Rect() image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right, b.Bottom)
}

// KeyPoint is a single labelled point of an object, such as a pose joint
type KeyPoint struct {
	X       int
	Y       int
	Visible bool
}

// Object defines the attributes of a single annotated object
type Object struct {
	// Class is the index of the object's label in the ClassMap
	Class int
	// Box is the bounding box of the object location
	Box BoxRect
	// Score is the confidence of the annotation, 1 for ground truth
	Score float32
	// Polygon is the optional segmentation outline of the object
	Polygon Polygon
	// KeyPoints are optional object keypoints
	KeyPoints []KeyPoint
}

// Record is one annotated image
type Record struct {
	// ID is a unique ID assigned to the record
	ID       int64
	Filepath string
	Width    int
	Height   int
	// Created is when the image was captured or added to the dataset
	Created time.Time
	Objects []Object
}

// Classes returns the distinct class ids present in the record in order of
// first appearance
func (r Record) Classes() []int {

	seen := make(map[int]bool)
	var classes []int

	for _, obj := range r.Objects {
		if !seen[obj.Class] {
			seen[obj.Class] = true
			classes = append(classes, obj.Class)
		}
	}

	return classes
}
