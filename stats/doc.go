// Package stats computes the descriptive statistics shown on the dashboard
// from flattened annotation rows: label co-occurrence (mixing) matrices,
// date ranges and bounding box size summaries.
package stats

import "github.com/pkg/errors"

// ErrNoData is returned when a statistic is requested over no input
var ErrNoData = errors.New("no data")
