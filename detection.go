package annodash

import (
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/dataset"
	"github.com/swdee/go-annodash/stats"
	"sort"
	"time"
)

// DetectionData is the base data of a DetectionDataset
type DetectionData struct {
	Records []annotation.Record
	Classes *annotation.ClassMap
}

// ClassCount is the number of objects and images of one class
type ClassCount struct {
	Class   int
	Label   string
	Objects int
	Images  int
}

// DateSpan is the day range the records were created in
type DateSpan struct {
	Min time.Time
	Max time.Time
}

// detectionSchema holds the statistics shared by all detection datasets
type detectionSchema struct {
	schema          *dataset.Schema[DetectionData]
	rows            *dataset.Stat[DetectionData, []annotation.ObjectRow]
	imageCount      *dataset.Stat[DetectionData, int]
	objectCount     *dataset.Stat[DetectionData, int]
	classCounts     *dataset.Stat[DetectionData, []ClassCount]
	objectsPerImage *dataset.Stat[DetectionData, stats.Summary]
	boxStats        *dataset.Stat[DetectionData, stats.BoxStats]
	mixing          *dataset.Stat[DetectionData, *stats.Mixing]
	dates           *dataset.Stat[DetectionData, DateSpan]
}

var detection = newDetectionSchema()

func newDetectionSchema() *detectionSchema {

	s := &detectionSchema{}
	b := dataset.NewSchemaBuilder[DetectionData]("detection")

	s.rows = dataset.Define(b, "object_rows",
		func(ds *dataset.Dataset[DetectionData]) ([]annotation.ObjectRow, error) {
			return annotation.Rows(ds.BaseData().Records, ds.BaseData().Classes)
		})

	s.imageCount = dataset.Define(b, "image_count",
		func(ds *dataset.Dataset[DetectionData]) (int, error) {
			return len(ds.BaseData().Records), nil
		})

	s.objectCount = dataset.Define(b, "object_count",
		func(ds *dataset.Dataset[DetectionData]) (int, error) {
			rows, err := s.rows.Get(ds)
			return len(rows), err
		})

	s.classCounts = dataset.Define(b, "class_counts", s.calcClassCounts)

	s.objectsPerImage = dataset.Define(b, "objects_per_image",
		func(ds *dataset.Dataset[DetectionData]) (stats.Summary, error) {
			recs := ds.BaseData().Records
			counts := make([]float64, len(recs))
			for i, rec := range recs {
				counts[i] = float64(len(rec.Objects))
			}
			return stats.Describe(counts)
		})

	s.boxStats = dataset.Define(b, "box_stats",
		func(ds *dataset.Dataset[DetectionData]) (stats.BoxStats, error) {
			rows, err := s.rows.Get(ds)
			if err != nil {
				return stats.BoxStats{}, err
			}
			return stats.Boxes(rows)
		})

	s.mixing = dataset.Define(b, "class_mixing",
		func(ds *dataset.Dataset[DetectionData]) (*stats.Mixing, error) {
			rows, err := s.rows.Get(ds)
			if err != nil {
				return nil, err
			}
			return stats.MixingMatrix(rows,
				func(r annotation.ObjectRow) int { return r.Record },
				func(r annotation.ObjectRow) string { return r.Label })
		})

	s.dates = dataset.Define(b, "date_range",
		func(ds *dataset.Dataset[DetectionData]) (DateSpan, error) {
			recs := ds.BaseData().Records
			dates := make([]time.Time, 0, len(recs))
			for _, rec := range recs {
				if !rec.Created.IsZero() {
					dates = append(dates, rec.Created)
				}
			}
			minDate, maxDate, err := stats.DateRange(dates)
			return DateSpan{Min: minDate, Max: maxDate}, err
		})

	s.schema = b.Build()

	return s
}

// calcClassCounts counts objects and images per class, ordered by object
// count then label
func (s *detectionSchema) calcClassCounts(ds *dataset.Dataset[DetectionData]) ([]ClassCount, error) {

	rows, err := s.rows.Get(ds)

	if err != nil {
		return nil, err
	}

	byClass := make(map[int]*ClassCount)
	images := make(map[int]map[int]bool)

	for _, row := range rows {

		cc, ok := byClass[row.Class]

		if !ok {
			cc = &ClassCount{Class: row.Class, Label: row.Label}
			byClass[row.Class] = cc
			images[row.Class] = make(map[int]bool)
		}

		cc.Objects++
		images[row.Class][row.Record] = true
	}

	counts := make([]ClassCount, 0, len(byClass))

	for class, cc := range byClass {
		cc.Images = len(images[class])
		counts = append(counts, *cc)
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Objects != counts[j].Objects {
			return counts[i].Objects > counts[j].Objects
		}
		return counts[i].Label < counts[j].Label
	})

	return counts, nil
}

// DetectionDataset is an object detection dataset with lazily computed
// statistics
type DetectionDataset struct {
	*dataset.Dataset[DetectionData]
}

// NewDetectionDataset returns a dataset over records whose class ids are
// resolved through classes.  A nil classes is an empty class map.
func NewDetectionDataset(records []annotation.Record, classes *annotation.ClassMap,
	opts ...dataset.Option) *DetectionDataset {

	if classes == nil {
		classes = annotation.NewClassMap()
	}

	return &DetectionDataset{
		Dataset: detection.schema.New(DetectionData{Records: records, Classes: classes}, opts...),
	}
}

// DetectionStats returns the names of the statistics of a DetectionDataset
func DetectionStats() []string {
	return detection.schema.Slots()
}

// Records returns the dataset records
func (d *DetectionDataset) Records() []annotation.Record {
	return d.BaseData().Records
}

// Classes returns the dataset class map
func (d *DetectionDataset) Classes() *annotation.ClassMap {
	return d.BaseData().Classes
}

// Rows returns one row per annotated object
func (d *DetectionDataset) Rows() ([]annotation.ObjectRow, error) {
	return detection.rows.Get(d.Dataset)
}

// ImageCount returns the number of records
func (d *DetectionDataset) ImageCount() (int, error) {
	return detection.imageCount.Get(d.Dataset)
}

// ObjectCount returns the number of annotated objects
func (d *DetectionDataset) ObjectCount() (int, error) {
	return detection.objectCount.Get(d.Dataset)
}

// ClassCounts returns the object and image counts of each class present
func (d *DetectionDataset) ClassCounts() ([]ClassCount, error) {
	return detection.classCounts.Get(d.Dataset)
}

// ObjectsPerImage summarises the number of objects per record
func (d *DetectionDataset) ObjectsPerImage() (stats.Summary, error) {
	return detection.objectsPerImage.Get(d.Dataset)
}

// BoxStats summarises the bounding box sizes
func (d *DetectionDataset) BoxStats() (stats.BoxStats, error) {
	return detection.boxStats.Get(d.Dataset)
}

// ClassMixing returns the class mixing matrix over the images
func (d *DetectionDataset) ClassMixing() (*stats.Mixing, error) {
	return detection.mixing.Get(d.Dataset)
}

// DateRange returns the day range the records were created in
func (d *DetectionDataset) DateRange() (DateSpan, error) {
	return detection.dates.Get(d.Dataset)
}

// Filter returns a new dataset holding only the objects whose label is one
// of labels.  Records left without objects are dropped.  An empty labels
// list keeps everything.
func (d *DetectionDataset) Filter(labels []string) *DetectionDataset {

	opts := []dataset.Option{}

	if name, ok := d.Name.Get(); ok {
		opts = append(opts, dataset.WithName(name))
	}

	if desc, ok := d.Description.Get(); ok {
		opts = append(opts, dataset.WithDescription(desc))
	}

	if len(labels) == 0 {
		return NewDetectionDataset(d.Records(), d.Classes(), opts...)
	}

	keep := make(map[int]bool, len(labels))

	for _, label := range labels {
		if id, ok := d.Classes().ID(label); ok {
			keep[id] = true
		}
	}

	var records []annotation.Record

	for _, rec := range d.Records() {

		var objs []annotation.Object

		for _, obj := range rec.Objects {
			if keep[obj.Class] {
				objs = append(objs, obj)
			}
		}

		if len(objs) == 0 {
			continue
		}

		rec.Objects = objs
		records = append(records, rec)
	}

	return NewDetectionDataset(records, d.Classes(), opts...)
}
