// Package core has the main logic for haulstat.
package core

import (
	"context"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
)

// Engine exposes every statistics view over a cached dataset. All views
// follow the same pipeline: fetch the dataset through the cache, validate
// that the columns the view needs are present, apply the filter and run the
// aggregation.
type Engine struct {
	cache *DatasetCache
}

// NewEngine builds an Engine reading sources from dir through loader.
func NewEngine(loader contract.RowLoader, dir string) *Engine {
	return &Engine{cache: NewDatasetCache(loader, dir)}
}

// CyclesByMonth counts haulage cycles per calendar month.
func (e *Engine) CyclesByMonth(ctx context.Context, f schema.FilterSpec) ([]schema.MonthlyCount, error) {
	records, err := e.prepare(ctx, f, schema.ColStartTime)
	if err != nil {
		return nil, err
	}
	return countByMonth(records), nil
}

// CyclesByInputType counts haulage cycles per month and input type.
func (e *Engine) CyclesByInputType(ctx context.Context, f schema.FilterSpec) ([]schema.CategoryCount, error) {
	records, err := e.prepare(ctx, f, schema.ColStartTime, schema.ColInputType)
	if err != nil {
		return nil, err
	}
	return countByMonthAndDimension(records, schema.InputTypeDim), nil
}

// ProductionBy sums hauled mass per month and category along dim,
// consolidating everything outside the top categories under a single label.
func (e *Engine) ProductionBy(ctx context.Context, f schema.FilterSpec, dim schema.Dimension) ([]schema.ProductionRow, error) {
	col, ok := schema.DimensionColumns[dim]
	if !ok {
		return nil, &SchemaError{Column: schema.Column(dim)}
	}
	records, err := e.prepare(ctx, f, schema.ColStartTime, schema.ColMass, schema.ColInputType, col)
	if err != nil {
		return nil, err
	}
	return productionByDimension(records, dim), nil
}

// MonthlyProductivity computes monthly tonnage and the mean of daily
// tonnes-per-hour rates, with month-over-month growth percentages.
func (e *Engine) MonthlyProductivity(ctx context.Context, f schema.FilterSpec) ([]schema.ProductivityRow, error) {
	records, err := e.prepare(ctx, f, schema.ColStartTime, schema.ColMass, schema.ColInputType)
	if err != nil {
		return nil, err
	}
	return monthlyProductivity(records), nil
}

// EquipmentDaily computes per-loading-equipment daily productivity.
func (e *Engine) EquipmentDaily(ctx context.Context, f schema.FilterSpec) ([]schema.EquipmentDayRow, error) {
	records, err := e.prepare(ctx, f, schema.ColStartTime, schema.ColMass, schema.ColLoadingTag)
	if err != nil {
		return nil, err
	}
	return equipmentDailyProductivity(records), nil
}

// DistinctValues lists the distinct usable values along dim, sorted.
// The values view keeps rows without a parseable start timestamp unless a
// date bound is set, so a value carried only by such rows still shows up.
func (e *Engine) DistinctValues(ctx context.Context, f schema.FilterSpec, dim schema.Dimension) ([]string, error) {
	col, ok := schema.DimensionColumns[dim]
	if !ok {
		return nil, &SchemaError{Column: schema.Column(dim)}
	}
	ds, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(ds, col); err != nil {
		return nil, err
	}
	if err := requireColumns(ds, filterColumns(&f)...); err != nil {
		return nil, err
	}
	return distinctValues(applyValueFilter(ds, &f), dim), nil
}

// Dataset returns the cached dataset, reloading it when stale.
func (e *Engine) Dataset(ctx context.Context) (*schema.Dataset, error) {
	return e.cache.Get(ctx)
}

// ClearCache drops any cached dataset.
func (e *Engine) ClearCache() schema.CacheClearResult {
	return e.cache.Clear()
}

// CacheStatus reports the cache state without triggering a reload.
func (e *Engine) CacheStatus() (schema.CacheStatus, error) {
	return e.cache.Status()
}

// prepare runs the shared front half of every view: dataset fetch, column
// validation for both the view and the active filter, then the row filter.
func (e *Engine) prepare(ctx context.Context, f schema.FilterSpec, cols ...schema.Column) ([]schema.Record, error) {
	ds, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireColumns(ds, cols...); err != nil {
		return nil, err
	}
	if err := requireColumns(ds, filterColumns(&f)...); err != nil {
		return nil, err
	}
	return applyFilter(ds, &f), nil
}

func requireColumns(ds *schema.Dataset, cols ...schema.Column) error {
	for _, col := range cols {
		if !ds.HasColumn(col) {
			return &SchemaError{Column: col}
		}
	}
	return nil
}
