// Package parquet provides data structures and functions for exporting
// haulage statistics to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/oreops/haulstat/schema"
	"github.com/parquet-go/parquet-go"
)

// MonthlyCount represents one month of the cycle count view.
type MonthlyCount struct {
	// Period is the calendar month, "YYYY-MM"
	Period string `parquet:"period,snappy"`

	// Count is the number of cycles started in the month
	Count int64 `parquet:"count,snappy"`
}

// CategoryCount represents one month and category of the cycle count view.
type CategoryCount struct {
	// Period is the calendar month, "YYYY-MM"
	Period string `parquet:"period,snappy"`

	// Category is the input type the cycles are grouped under
	Category string `parquet:"category,snappy"`

	// Count is the number of cycles in the group
	Count int64 `parquet:"count,snappy"`
}

// Production represents one row of a top-N consolidated production view.
type Production struct {
	// Period is the calendar month, "YYYY-MM"
	Period string `parquet:"period,snappy"`

	// Category is a top-N dimension value or the catch-all label
	Category string `parquet:"category,snappy"`

	// TotalMass is the summed hauled mass in kilograms
	TotalMass float64 `parquet:"total_mass,snappy"`

	// Count is the number of cycles contributing to the sum
	Count int64 `parquet:"count,snappy"`
}

// Productivity represents one month of the productivity view.
type Productivity struct {
	// Period is the calendar month, "YYYY-MM"
	Period string `parquet:"period,snappy"`

	// TotalTonnes is the hauled mass in tonnes over the month
	TotalTonnes float64 `parquet:"total_tonnes,snappy"`

	// AvgTonnesPerHour is the mean of the month's daily rates
	AvgTonnesPerHour float64 `parquet:"avg_tonnes_per_hour,snappy"`

	// OperationalHours is the sum of distinct operating hours over the month
	OperationalHours int64 `parquet:"operational_hours,snappy"`

	// TotalCycles is the number of cycles in the month
	TotalCycles int64 `parquet:"total_cycles,snappy"`

	// GrowthTonnesPct is month-over-month tonnage growth, 0 for the first period
	GrowthTonnesPct float64 `parquet:"growth_tonnes_pct,snappy"`

	// GrowthRatePct is month-over-month rate growth, 0 for the first period
	GrowthRatePct float64 `parquet:"growth_rate_pct,snappy"`
}

// EquipmentDay represents one equipment-day of the equipment view.
type EquipmentDay struct {
	// Day is the calendar day, "YYYY-MM-DD"
	Day string `parquet:"day,snappy"`

	// Equipment is the loading equipment tag
	Equipment string `parquet:"equipment,snappy"`

	// TotalTonnes is the hauled mass in tonnes for the equipment-day
	TotalTonnes float64 `parquet:"total_tonnes,snappy"`

	// OperationalHours is the number of distinct hours with at least one cycle
	OperationalHours int64 `parquet:"operational_hours,snappy"`

	// TonnesPerHour is TotalTonnes divided by OperationalHours
	TonnesPerHour float64 `parquet:"tonnes_per_hour,snappy"`

	// TotalCycles is the number of cycles for the equipment-day
	TotalCycles int64 `parquet:"total_cycles,snappy"`

	// CyclesPerHour is TotalCycles divided by OperationalHours
	CyclesPerHour float64 `parquet:"cycles_per_hour,snappy"`
}

// WriteMonthlyCountsParquet writes the cycles-by-month view to a Parquet file.
func WriteMonthlyCountsParquet(rows []schema.MonthlyCount, outputPath string) error {
	data := make([]MonthlyCount, len(rows))
	for i, r := range rows {
		data[i] = MonthlyCount{Period: r.Period, Count: int64(r.Count)}
	}
	return writeParquet(data, outputPath)
}

// WriteCategoryCountsParquet writes the cycles-by-input-type view to a Parquet file.
func WriteCategoryCountsParquet(rows []schema.CategoryCount, outputPath string) error {
	data := make([]CategoryCount, len(rows))
	for i, r := range rows {
		data[i] = CategoryCount{Period: r.Period, Category: r.Category, Count: int64(r.Count)}
	}
	return writeParquet(data, outputPath)
}

// WriteProductionParquet writes a production view to a Parquet file.
func WriteProductionParquet(rows []schema.ProductionRow, outputPath string) error {
	data := make([]Production, len(rows))
	for i, r := range rows {
		data[i] = Production{
			Period:    r.Period,
			Category:  r.Category,
			TotalMass: r.TotalMass,
			Count:     int64(r.Count),
		}
	}
	return writeParquet(data, outputPath)
}

// WriteProductivityParquet writes the monthly productivity view to a Parquet file.
func WriteProductivityParquet(rows []schema.ProductivityRow, outputPath string) error {
	data := make([]Productivity, len(rows))
	for i, r := range rows {
		data[i] = Productivity{
			Period:           r.Period,
			TotalTonnes:      r.TotalTonnes,
			AvgTonnesPerHour: r.AvgTonnesPerHour,
			OperationalHours: int64(r.OperationalHours),
			TotalCycles:      int64(r.TotalCycles),
			GrowthTonnesPct:  r.GrowthTonnesPct,
			GrowthRatePct:    r.GrowthRatePct,
		}
	}
	return writeParquet(data, outputPath)
}

// WriteEquipmentDaysParquet writes the equipment daily view to a Parquet file.
func WriteEquipmentDaysParquet(rows []schema.EquipmentDayRow, outputPath string) error {
	data := make([]EquipmentDay, len(rows))
	for i, r := range rows {
		data[i] = EquipmentDay{
			Day:              r.Day,
			Equipment:        r.Equipment,
			TotalTonnes:      r.TotalTonnes,
			OperationalHours: int64(r.OperationalHours),
			TonnesPerHour:    r.TonnesPerHour,
			TotalCycles:      int64(r.TotalCycles),
			CyclesPerHour:    r.CyclesPerHour,
		}
	}
	return writeParquet(data, outputPath)
}

// writeParquet writes a slice of tagged structs to a Parquet file.
// The schema is derived from the struct tags by the writer.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
