/*
go-annodash provides the building blocks of a data exploration dashboard for
object detection and segmentation datasets.

A DetectionDataset wraps annotated records and exposes descriptive statistics
(class counts, box sizes, class mixing, date range) that are computed on first
access and cached until the dataset is reset.  Mutable collections in package
observe notify listeners so dashboard panels can refresh, and package plot
renders annotated records and mixing matrices as figures.

See the example/dashboard program for usage.
*/
package annodash
