package dataset

import (
	"fmt"
	"github.com/pkg/errors"
)

// SchemaBuilder collects the statistics defined for one kind of dataset
type SchemaBuilder[D any] struct {
	schema *Schema[D]
	names  map[string]bool
}

// Schema is the frozen, ordered list of statistics shared by every dataset
// it creates
type Schema[D any] struct {
	name  string
	slots []string
	built bool
}

// NewSchemaBuilder returns an empty builder for a schema called name
func NewSchemaBuilder[D any](name string) *SchemaBuilder[D] {
	return &SchemaBuilder[D]{
		schema: &Schema[D]{name: name},
		names:  make(map[string]bool),
	}
}

// Define registers a computed statistic called name on the builder.  The
// calc function receives the dataset being read and is called only when the
// dataset holds no cached value for the statistic.
//
// Define panics if the name is already taken or the builder has been built,
// statistics are program declarations rather than runtime data.
func Define[D, V any](b *SchemaBuilder[D], name string,
	calc func(ds *Dataset[D]) (V, error)) *Stat[D, V] {

	if b.schema.built {
		panic(fmt.Sprintf("dataset: schema %q already built, cannot define %q",
			b.schema.name, name))
	}

	if b.names[name] {
		panic(errors.Wrapf(ErrDuplicateSlot, "schema %q statistic %q",
			b.schema.name, name).Error())
	}

	b.names[name] = true
	b.schema.slots = append(b.schema.slots, name)

	return &Stat[D, V]{
		name:   name,
		index:  len(b.schema.slots) - 1,
		schema: b.schema,
		calc:   calc,
	}
}

// Build freezes the builder and returns the schema
func (b *SchemaBuilder[D]) Build() *Schema[D] {
	b.schema.built = true
	return b.schema
}

// Name returns the schema name
func (s *Schema[D]) Name() string {
	return s.name
}

// Slots returns the statistic names in definition order
func (s *Schema[D]) Slots() []string {
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

// New creates a dataset owning base.  The base data is neither copied nor
// validated.
func (s *Schema[D]) New(base D, opts ...Option) *Dataset[D] {

	ds := &Dataset[D]{
		schema: s,
		base:   base,
		cells:  make([]cell, len(s.slots)),
	}

	var o options

	for _, opt := range opts {
		opt(&o)
	}

	ds.Name = o.name
	ds.Description = o.description

	return ds
}
