package annotation

import "time"

// ObjectRow is the flattened, one row per object, view of a set of records
// that the dataset statistics are computed from
type ObjectRow struct {
	// Record is the position of the object's record in the input slice and
	// identifies the image even when record ids repeat
	Record   int
	RecordID int64
	Filepath string
	Created  time.Time
	Class    int
	Label    string
	Box      BoxRect
	Score    float32
	// MaskArea is the polygon area, 0 when the object has no polygon
	MaskArea float64
}

// Rows flattens records into one row per object
func Rows(records []Record, classes *ClassMap) ([]ObjectRow, error) {

	var rows []ObjectRow

	for i, rec := range records {
		for _, obj := range rec.Objects {

			label, err := classes.Name(obj.Class)

			if err != nil {
				return nil, err
			}

			rows = append(rows, ObjectRow{
				Record:   i,
				RecordID: rec.ID,
				Filepath: rec.Filepath,
				Created:  rec.Created,
				Class:    obj.Class,
				Label:    label,
				Box:      obj.Box,
				Score:    obj.Score,
				MaskArea: obj.Polygon.Area(),
			})
		}
	}

	return rows, nil
}
