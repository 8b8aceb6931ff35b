// Package annotation defines the annotated image records explored by the
// dashboard: images with their bounding boxes, segmentation polygons and
// keypoints, plus the class map translating class ids to label names.
package annotation
