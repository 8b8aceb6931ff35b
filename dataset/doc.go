/*
Package dataset provides datasets with lazily computed, cached descriptive
statistics.

A SchemaBuilder collects named statistic definitions (Stat) once, typically
at package initialisation.  Build freezes them into a Schema which then
creates Dataset instances.  Each dataset holds one cache cell per statistic;
a cell is filled on first read and cleared either per statistic with
Invalidate/Set(nil) or for all statistics with ResetInferredData.

	b := dataset.NewSchemaBuilder[[]float64]("scores")
	mean := dataset.Define(b, "mean", func(ds *dataset.Dataset[[]float64]) (float64, error) {
		return stat.Mean(ds.BaseData(), nil), nil
	})
	schema := b.Build()

	ds := schema.New([]float64{1, 2, 3})
	v, err := mean.Get(ds) // computed once and cached

Datasets are not safe for concurrent use.
*/
package dataset
