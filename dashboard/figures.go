package dashboard

import (
	"github.com/pkg/errors"
	"github.com/swdee/go-annodash"
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/plot"
	"github.com/swdee/go-annodash/preprocess"
	"github.com/swdee/go-annodash/stats"
	"gocv.io/x/gocv"
	"image/color"
	"log/slog"
	"path/filepath"
)

// MixingPanel shows the class mixing heatmap of the dataset
type MixingPanel struct {
	backend  plot.Backend
	cellSize int
	log      *slog.Logger
}

// NewMixingPanel returns a panel showing heatmaps with cellSize pixel cells
func NewMixingPanel(backend plot.Backend, cellSize int, logger *slog.Logger) *MixingPanel {

	if logger == nil {
		logger = slog.Default()
	}

	return &MixingPanel{backend: backend, cellSize: cellSize, log: logger}
}

func (p *MixingPanel) Name() string {
	return "class mixing"
}

// Refresh shows the class mixing of ds.  A dataset without objects has no
// mixing and shows nothing.
func (p *MixingPanel) Refresh(ds *annodash.DetectionDataset) error {

	mix, err := ds.ClassMixing()

	if errors.Is(err, stats.ErrNoData) {
		p.log.Warn("no objects to compute class mixing", "dataset", ds.Name.String())
		return nil
	}

	if err != nil {
		return err
	}

	return p.backend.Show(plot.Heatmap("class mixing", mix, p.cellSize))
}

// GalleryPanel shows letterboxed thumbnails of the first records with their
// annotations drawn
type GalleryPanel struct {
	// OnRecord is called after each record is shown
	OnRecord func(rec annotation.Record)

	backend plot.Backend
	opts    plot.RecordOptions
	size    int
	limit   int
	log     *slog.Logger
}

// padColor is the letterbox padding of thumbnails
var padColor = color.RGBA{R: 114, G: 114, B: 114, A: 255}

// NewGalleryPanel returns a panel showing up to limit records as size x size
// thumbnails, a limit of 0 shows every record
func NewGalleryPanel(backend plot.Backend, opts plot.RecordOptions, size, limit int,
	logger *slog.Logger) *GalleryPanel {

	if logger == nil {
		logger = slog.Default()
	}

	return &GalleryPanel{backend: backend, opts: opts, size: size, limit: limit, log: logger}
}

func (p *GalleryPanel) Name() string {
	return "gallery"
}

// Records returns the records the gallery shows for ds
func (p *GalleryPanel) Records(ds *annodash.DetectionDataset) []annotation.Record {

	recs := ds.Records()

	if p.limit > 0 && len(recs) > p.limit {
		recs = recs[:p.limit]
	}

	return recs
}

// Refresh shows the thumbnails of ds.  Records whose image can not be read
// are skipped with a warning.
func (p *GalleryPanel) Refresh(ds *annodash.DetectionDataset) error {

	for _, rec := range p.Records(ds) {

		fig, err := p.thumbnail(rec, ds.Classes())

		if errors.Is(err, plot.ErrEmptyImage) {
			p.log.Warn("skipping record", "id", rec.ID, "file", rec.Filepath, "error", err)
			continue
		}

		if err != nil {
			return err
		}

		if err := p.backend.Show(fig); err != nil {
			return err
		}

		if p.OnRecord != nil {
			p.OnRecord(rec)
		}
	}

	return nil
}

// thumbnail draws the letterboxed record
func (p *GalleryPanel) thumbnail(rec annotation.Record, classes *annotation.ClassMap) (*plot.Figure, error) {

	file := rec.Filepath

	if p.opts.ImageDir != "" && !filepath.IsAbs(file) {
		file = filepath.Join(p.opts.ImageDir, file)
	}

	img := gocv.IMRead(file, gocv.IMReadColor)
	defer img.Close()

	if img.Empty() {
		return nil, errors.Wrapf(plot.ErrEmptyImage, "error reading image from %s", file)
	}

	resizer := preprocess.NewResizer(img.Cols(), img.Rows(), p.size, p.size)
	defer resizer.Close()

	thumb := gocv.NewMat()
	defer thumb.Close()

	resizer.LetterBoxResize(img, &thumb, padColor)

	opts := p.opts
	opts.Width, opts.Height = 0, 0
	opts.Font = opts.Font.ForImage(p.size)

	return plot.DrawRecordMat(thumb, resizer.ScaleRecord(rec), classes, opts)
}
