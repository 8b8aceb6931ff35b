package dashboard

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-annodash"
	"github.com/swdee/go-annodash/annotation"
	"github.com/swdee/go-annodash/dataset"
	"github.com/swdee/go-annodash/plot"
	"io"
	"log/slog"
	"testing"
	"time"
)

// countPanel records the datasets it was refreshed with
type countPanel struct {
	views []*annodash.DetectionDataset
	err   error
}

func (c *countPanel) Name() string {
	return "count"
}

func (c *countPanel) Refresh(ds *annodash.DetectionDataset) error {
	c.views = append(c.views, ds)
	return c.err
}

// memBackend keeps shown figures in memory
type memBackend struct {
	figures []*plot.Figure
}

func (m *memBackend) Show(fig *plot.Figure) error {
	m.figures = append(m.figures, fig)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func box(l, t, r, b int) annotation.BoxRect {
	return annotation.BoxRect{Left: l, Top: t, Right: r, Bottom: b}
}

func testDataset() *annodash.DetectionDataset {

	classes := annotation.NewClassMap("person", "car", "dog")
	created := time.Date(2022, 7, 14, 10, 30, 0, 0, time.UTC)

	records := []annotation.Record{
		{ID: 1, Filepath: "missing/a.jpg", Created: created, Objects: []annotation.Object{
			{Class: 0, Box: box(0, 0, 10, 20), Score: 1},
			{Class: 1, Box: box(5, 5, 45, 25), Score: 1},
		}},
		{ID: 2, Filepath: "missing/b.jpg", Created: created.AddDate(0, 0, 2), Objects: []annotation.Object{
			{Class: 1, Box: box(0, 0, 20, 10), Score: 1},
			{Class: 2, Box: box(0, 0, 10, 10), Score: 1},
		}},
	}

	return annodash.NewDetectionDataset(records, classes, dataset.WithName("street"))
}

func TestSelectionRefreshesPanels(t *testing.T) {

	ds := testDataset()
	panel := &countPanel{}
	d := New(ds, quietLogger(), panel)

	assert.Same(t, ds, d.View())

	require.NoError(t, d.Selection.Append("dog"))
	require.Len(t, panel.views, 1)

	view := panel.views[0]
	assert.Same(t, view, d.View())
	assert.NotSame(t, ds, view)

	n, err := view.ObjectCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = view.ImageCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, d.Selection.Append("car"))
	require.Len(t, panel.views, 2)

	n, err = d.View().ObjectCount()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// popping the last selected classes shows the full dataset again
	_, err = d.Selection.Pop()
	require.NoError(t, err)
	_, err = d.Selection.Pop()
	require.NoError(t, err)

	require.Len(t, panel.views, 4)
	assert.Same(t, ds, d.View())
	assert.Equal(t, "street", d.View().Name.String())
}

func TestSelectionPanelError(t *testing.T) {

	fail := errors.New("panel failed")
	first := &countPanel{err: fail}
	second := &countPanel{}

	d := New(testDataset(), quietLogger(), first)
	d.AddPanel(second)

	err := d.Selection.Append("person")
	require.ErrorIs(t, err, fail)

	// the selection change is kept, only later panels are skipped
	assert.Equal(t, []string{"person"}, d.Selection.Items())
	assert.Len(t, first.views, 1)
	assert.Empty(t, second.views)
}

func TestDashboardReset(t *testing.T) {

	ds := testDataset()
	d := New(ds, quietLogger())

	require.NoError(t, d.Selection.Append("car"))

	_, err := ds.ObjectCount()
	require.NoError(t, err)
	_, err = d.View().ClassCounts()
	require.NoError(t, err)

	assert.True(t, ds.Computed("object_count"))
	assert.True(t, d.View().Computed("class_counts"))

	require.NoError(t, d.Reset("ignored"))

	for _, name := range annodash.DetectionStats() {
		assert.False(t, ds.Computed(name), name)
		assert.False(t, d.View().Computed(name), name)
	}
}

func TestSummaryPanel(t *testing.T) {

	var buf bytes.Buffer
	ds := testDataset()
	ds.Description.SetString("july capture")

	require.NoError(t, NewSummaryPanel(&buf).Refresh(ds))

	out := buf.String()
	assert.Contains(t, out, "street\n")
	assert.Contains(t, out, "july capture\n")
	assert.Regexp(t, `images:\s+2\n`, out)
	assert.Regexp(t, `objects:\s+4\n`, out)
	assert.Contains(t, out, "2022-07-14 to 2022-07-16")
	assert.Regexp(t, `car\s+2\s+2\n`, out)
	assert.Regexp(t, `dog\s+1\s+1\n`, out)
}

func TestSummaryPanelEmpty(t *testing.T) {

	var buf bytes.Buffer
	ds := annodash.NewDetectionDataset(nil, annotation.NewClassMap())

	require.NoError(t, NewSummaryPanel(&buf).Refresh(ds))

	out := buf.String()
	assert.Contains(t, out, "dataset\n")
	assert.Regexp(t, `images:\s+0\n`, out)
	assert.NotContains(t, out, "dates:")
	assert.NotContains(t, out, "class")
}

func TestMixingPanel(t *testing.T) {

	backend := &memBackend{}
	panel := NewMixingPanel(backend, 20, quietLogger())

	require.NoError(t, panel.Refresh(testDataset()))
	require.Len(t, backend.figures, 1)
	require.NotNil(t, backend.figures[0].Heatmap)
	assert.Equal(t, []string{"car", "dog", "person"}, backend.figures[0].Heatmap.Rows)

	// no objects shows nothing
	empty := annodash.NewDetectionDataset(nil, annotation.NewClassMap())
	require.NoError(t, panel.Refresh(empty))
	assert.Len(t, backend.figures, 1)
}

func TestGalleryPanel(t *testing.T) {

	backend := &memBackend{}
	panel := NewGalleryPanel(backend, plot.DefaultRecordOptions(), 64, 1, quietLogger())

	shown := 0
	panel.OnRecord = func(annotation.Record) { shown++ }

	ds := testDataset()

	recs := panel.Records(ds)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(1), recs[0].ID)

	// unreadable images are skipped
	require.NoError(t, panel.Refresh(ds))
	assert.Empty(t, backend.figures)
	assert.Equal(t, 0, shown)
}
