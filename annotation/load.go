package annotation

import (
	"encoding/json"
	"github.com/pkg/errors"
	"image"
	"io"
	"os"
	"time"
)

// ErrDuplicateRecord is returned when two records of a file share an id
var ErrDuplicateRecord = errors.New("duplicate record id")

// recordsFile is the on disk JSON layout of an annotation file
type recordsFile struct {
	Records []recordJSON `json:"records"`
}

type recordJSON struct {
	ID       int64        `json:"id"`
	Filepath string       `json:"filepath"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Created  time.Time    `json:"created"`
	Objects  []objectJSON `json:"objects"`
}

type objectJSON struct {
	Label string `json:"label"`
	// BBox is [left, top, right, bottom]
	BBox      [4]int   `json:"bbox"`
	Score     *float32 `json:"score,omitempty"`
	Polygon   [][2]int `json:"polygon,omitempty"`
	KeyPoints [][3]int `json:"keypoints,omitempty"`
}

// LoadRecords reads the annotation records from a JSON file.  Labels not yet
// in classes are added to it.  Records without an id are numbered after the
// highest id in the file, a repeated id returns ErrDuplicateRecord.
func LoadRecords(file string, classes *ClassMap) ([]Record, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, errors.Wrap(err, "error opening records")
	}

	defer f.Close()

	recs, err := DecodeRecords(f, classes)

	if err != nil {
		return nil, errors.Wrapf(err, "error reading records %s", file)
	}

	return recs, nil
}

// DecodeRecords reads JSON annotation records from r
func DecodeRecords(r io.Reader, classes *ClassMap) ([]Record, error) {

	var rf recordsFile

	if err := json.NewDecoder(r).Decode(&rf); err != nil {
		return nil, errors.Wrap(err, "error decoding records")
	}

	idGen := NewIDGenerator()
	seen := make(map[int64]string, len(rf.Records))

	for _, rj := range rf.Records {

		if rj.ID == 0 {
			continue
		}

		if file, ok := seen[rj.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateRecord, "id %d used by %s and %s",
				rj.ID, file, rj.Filepath)
		}

		seen[rj.ID] = rj.Filepath
		idGen.Observe(rj.ID)
	}

	recs := make([]Record, 0, len(rf.Records))

	for _, rj := range rf.Records {

		rec := Record{
			ID:       rj.ID,
			Filepath: rj.Filepath,
			Width:    rj.Width,
			Height:   rj.Height,
			Created:  rj.Created,
			Objects:  make([]Object, 0, len(rj.Objects)),
		}

		if rec.ID == 0 {
			rec.ID = idGen.GetNext()
		}

		for _, oj := range rj.Objects {

			if oj.Label == "" {
				return nil, errors.Errorf("record %d (%s) has an object without label",
					rec.ID, rec.Filepath)
			}

			obj := Object{
				Class: classes.Add(oj.Label),
				Box: BoxRect{
					Left:   oj.BBox[0],
					Top:    oj.BBox[1],
					Right:  oj.BBox[2],
					Bottom: oj.BBox[3],
				},
				Score: 1,
			}

			if oj.Score != nil {
				obj.Score = *oj.Score
			}

			for _, pt := range oj.Polygon {
				obj.Polygon = append(obj.Polygon, image.Pt(pt[0], pt[1]))
			}

			for _, kp := range oj.KeyPoints {
				obj.KeyPoints = append(obj.KeyPoints, KeyPoint{X: kp[0], Y: kp[1], Visible: kp[2] != 0})
			}

			rec.Objects = append(rec.Objects, obj)
		}

		recs = append(recs, rec)
	}

	return recs, nil
}
