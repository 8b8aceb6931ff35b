// Package dashboard wires a detection dataset, an observable class selection
// and the panels displaying the dataset together.
package dashboard

import (
	"github.com/pkg/errors"
	"github.com/swdee/go-annodash"
	"github.com/swdee/go-annodash/observe"
	"log/slog"
)

// Panel displays some view of a dataset
type Panel interface {
	Name() string
	Refresh(ds *annodash.DetectionDataset) error
}

// Dashboard holds the full dataset and the view selected by the class
// selection.  Every change of the selection rebuilds the view and refreshes
// the panels.  It is not safe for concurrent use.
type Dashboard struct {
	// Selection is the list of class labels shown, empty shows all classes
	Selection *observe.List[string]

	full   *annodash.DetectionDataset
	view   *annodash.DetectionDataset
	panels []Panel
	log    *slog.Logger
}

// New returns a dashboard over ds.  A nil logger uses slog.Default().
func New(ds *annodash.DetectionDataset, logger *slog.Logger, panels ...Panel) *Dashboard {

	if logger == nil {
		logger = slog.Default()
	}

	d := &Dashboard{
		Selection: observe.NewList[string](),
		full:      ds,
		view:      ds,
		panels:    panels,
		log:       logger,
	}

	d.Selection.RegisterListener(d.onSelection)

	return d
}

// Dataset returns the full dataset
func (d *Dashboard) Dataset() *annodash.DetectionDataset {
	return d.full
}

// View returns the dataset filtered by the current selection
func (d *Dashboard) View() *annodash.DetectionDataset {
	return d.view
}

// AddPanel appends a panel, it is refreshed on the next change
func (d *Dashboard) AddPanel(p Panel) {
	d.panels = append(d.panels, p)
}

// Refresh redraws every panel from the current view.  The first failing
// panel stops the refresh.
func (d *Dashboard) Refresh() error {

	for _, p := range d.panels {

		d.log.Debug("refreshing panel", "panel", p.Name())

		if err := p.Refresh(d.view); err != nil {
			return errors.Wrapf(err, "panel %s", p.Name())
		}
	}

	return nil
}

// Reset discards every cached statistic of the full dataset and the view
// then refreshes the panels.  It takes the changed value so it can be used
// as a widget callback; the value is ignored.
func (d *Dashboard) Reset(newData any) error {

	d.full.ResetInferredData(newData)

	if d.view != d.full {
		d.view.ResetInferredData(newData)
	}

	d.log.Info("dataset statistics reset", "dataset", d.full.Name.String())

	return d.Refresh()
}

// onSelection rebuilds the view after the selection changed
func (d *Dashboard) onSelection(sel *observe.List[string]) error {

	labels := sel.Items()

	if len(labels) == 0 {
		d.view = d.full
	} else {
		d.view = d.full.Filter(labels)
	}

	d.log.Info("selection changed", "classes", labels, "records", len(d.view.Records()))

	return d.Refresh()
}
