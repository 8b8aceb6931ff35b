package dataset

import "github.com/pkg/errors"

// Stat is a named, lazily computed statistic of a dataset.  The definition is
// shared by all datasets of a schema, the cached value lives in each dataset.
type Stat[D, V any] struct {
	name   string
	index  int
	schema *Schema[D]
	calc   func(ds *Dataset[D]) (V, error)
}

// Name returns the statistic name
func (s *Stat[D, V]) Name() string {
	return s.name
}

// Get returns the cached value for ds, computing and caching it first when
// the cell is empty.  Errors from the computation are returned unchanged and
// leave the cell empty, so a later Get retries.
func (s *Stat[D, V]) Get(ds *Dataset[D]) (V, error) {

	var zero V

	c, err := s.cell(ds)

	if err != nil {
		return zero, err
	}

	if c.set {
		value, _ := c.value.(V)
		return value, nil
	}

	value, err := s.calc(ds)

	if err != nil {
		return zero, err
	}

	c.value = value
	c.set = true

	return value, nil
}

// Set writes to the statistic from outside.  Only nil is accepted, which
// clears the cached value; anything else returns ErrInvalidAssignment.
func (s *Stat[D, V]) Set(ds *Dataset[D], value *V) error {

	if value != nil {
		return errors.Wrapf(ErrInvalidAssignment, "statistic %q", s.name)
	}

	return s.Invalidate(ds)
}

// Invalidate clears the cached value so the next Get recomputes it
func (s *Stat[D, V]) Invalidate(ds *Dataset[D]) error {

	c, err := s.cell(ds)

	if err != nil {
		return err
	}

	c.reset()
	return nil
}

// Computed reports whether ds currently holds a cached value
func (s *Stat[D, V]) Computed(ds *Dataset[D]) bool {

	c, err := s.cell(ds)

	if err != nil {
		return false
	}

	return c.set
}

// cell returns the cache cell of this statistic in ds
func (s *Stat[D, V]) cell(ds *Dataset[D]) (*cell, error) {

	if ds.schema != s.schema {
		return nil, errors.Wrapf(ErrForeignDataset, "statistic %q of schema %q",
			s.name, s.schema.name)
	}

	return &ds.cells[s.index], nil
}
