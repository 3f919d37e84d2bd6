package core

import (
	"context"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/internal/outwriter"
	"github.com/oreops/haulstat/internal/parquet"
	"github.com/oreops/haulstat/schema"
)

// ExecuteCyclesByMonth runs the cycles-by-month view and prints results.
// It serves as the main entry point for the 'cycles' command.
func ExecuteCyclesByMonth(ctx context.Context, cfg *contract.Config, engine *Engine) error {
	rows, err := engine.CyclesByMonth(ctx, cfg.Filter)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.WriteMonthlyCountsParquet(rows, cfg.OutputFile)
	}
	return outwriter.NewOutWriter().WriteRows(ProjectMonthlyCounts(rows), cfg)
}

// ExecuteCyclesByInputType runs the cycles-by-input-type view and prints results.
// It serves as the main entry point for the 'cycles inputs' command.
func ExecuteCyclesByInputType(ctx context.Context, cfg *contract.Config, engine *Engine) error {
	rows, err := engine.CyclesByInputType(ctx, cfg.Filter)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.WriteCategoryCountsParquet(rows, cfg.OutputFile)
	}
	return outwriter.NewOutWriter().WriteRows(ProjectCategoryCounts(rows), cfg)
}

// ExecuteProduction runs a top-N consolidated production view and prints results.
// It serves as the main entry point for the 'production' subcommands.
func ExecuteProduction(ctx context.Context, cfg *contract.Config, engine *Engine, dim schema.Dimension) error {
	rows, err := engine.ProductionBy(ctx, cfg.Filter, dim)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.WriteProductionParquet(rows, cfg.OutputFile)
	}
	return outwriter.NewOutWriter().WriteRows(ProjectProduction(rows), cfg)
}

// ExecuteProductivity runs the monthly productivity view and prints results.
// It serves as the main entry point for the 'productivity' command.
func ExecuteProductivity(ctx context.Context, cfg *contract.Config, engine *Engine) error {
	rows, err := engine.MonthlyProductivity(ctx, cfg.Filter)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.WriteProductivityParquet(rows, cfg.OutputFile)
	}
	return outwriter.NewOutWriter().WriteRows(ProjectProductivity(rows), cfg)
}

// ExecuteEquipmentDaily runs the per-equipment daily view and prints results.
// It serves as the main entry point for the 'equipment' command.
func ExecuteEquipmentDaily(ctx context.Context, cfg *contract.Config, engine *Engine) error {
	rows, err := engine.EquipmentDaily(ctx, cfg.Filter)
	if err != nil {
		return err
	}
	if cfg.Output == schema.ParquetOut {
		return parquet.WriteEquipmentDaysParquet(rows, cfg.OutputFile)
	}
	return outwriter.NewOutWriter().WriteRows(ProjectEquipmentDays(rows), cfg)
}

// ExecuteDistinctValues lists the distinct values of a dimension and prints results.
// It serves as the main entry point for the 'values' command.
func ExecuteDistinctValues(ctx context.Context, cfg *contract.Config, engine *Engine, dim schema.Dimension) error {
	values, err := engine.DistinctValues(ctx, cfg.Filter, dim)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteValues(dim, values, cfg)
}

// ExecuteCacheStatus prints the dataset cache diagnostic.
func ExecuteCacheStatus(cfg *contract.Config, engine *Engine) error {
	status, err := engine.CacheStatus()
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteCacheStatus(status, cfg)
}

// ExecuteCacheClear drops the cached dataset and prints the outcome.
func ExecuteCacheClear(cfg *contract.Config, engine *Engine) error {
	return outwriter.NewOutWriter().WriteCacheClear(engine.ClearCache(), cfg)
}
