package dataset

import "github.com/pkg/errors"

var (
	// ErrInvalidAssignment is returned when a value other than nil is written
	// to a computed statistic
	ErrInvalidAssignment = errors.New("computed statistic can only be set to nil")
	// ErrForeignDataset is returned when a Stat is used with a dataset created
	// from a different schema
	ErrForeignDataset = errors.New("dataset was not created from the statistic's schema")
	// ErrDuplicateSlot is raised when two statistics with the same name are
	// defined on one schema
	ErrDuplicateSlot = errors.New("duplicate statistic name")
)
