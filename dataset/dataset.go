package dataset

import "github.com/swdee/go-annodash/observe"

// Dataset owns the base data of a dataset and the cached values of its
// schema's statistics
type Dataset[D any] struct {
	// Name and Description are display metadata
	Name        StringSlot
	Description StringSlot

	schema *Schema[D]
	base   D
	cells  []cell
}

// cell is the cache of one statistic for one dataset
type cell struct {
	value any
	set   bool
}

func (c *cell) reset() {
	c.value = nil
	c.set = false
}

// options collects the optional values passed to Schema.New
type options struct {
	name        StringSlot
	description StringSlot
}

// Option configures a dataset on creation
type Option func(o *options)

// WithName sets the dataset display name
func WithName(name string) Option {
	return func(o *options) {
		o.name.SetString(name)
	}
}

// WithDescription sets the dataset description
func WithDescription(desc string) Option {
	return func(o *options) {
		o.description.SetString(desc)
	}
}

// BaseData returns the data the statistics are computed from
func (d *Dataset[D]) BaseData() D {
	return d.base
}

// Schema returns the schema the dataset was created from
func (d *Dataset[D]) Schema() *Schema[D] {
	return d.schema
}

// Computed reports whether the named statistic currently holds a cached
// value.  Unknown names report false.
func (d *Dataset[D]) Computed(name string) bool {

	for i, slot := range d.schema.slots {
		if slot == name {
			return d.cells[i].set
		}
	}

	return false
}

// ResetInferredData clears the cached value of every statistic of the schema
// so each is recomputed on its next read.  The base data, name and description
// are untouched.
//
// newData is accepted so the method can be used directly as a reset callback
// by widgets that pass the changed value; it is ignored and does not replace
// the base data.
func (d *Dataset[D]) ResetInferredData(newData any) {
	for i := range d.cells {
		d.cells[i].reset()
	}
}

// ResetOn registers a listener on list that resets the inferred data of ds
// whenever the list changes
func ResetOn[D any, T comparable](ds *Dataset[D], list *observe.List[T]) {
	list.RegisterListener(func(l *observe.List[T]) error {
		ds.ResetInferredData(l)
		return nil
	})
}
