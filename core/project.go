package core

import (
	"github.com/oreops/haulstat/schema"
)

// The projector converts typed aggregation rows into ordered
// attribute-value records for the boundary layer to serialize. Field order
// and rounding are fixed per view so that output stays stable regardless of
// floating-point summation order: 2 decimals for mass, tonnes, t/h rates
// and growth percentages, 1 decimal for cycles/h.

// ProjectMonthlyCounts projects the cycles-by-month view.
func ProjectMonthlyCounts(rows []schema.MonthlyCount) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Row{
			{Key: "period", Value: r.Period},
			{Key: "count", Value: r.Count},
		})
	}
	return out
}

// ProjectCategoryCounts projects the cycles-by-month-by-category view.
func ProjectCategoryCounts(rows []schema.CategoryCount) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Row{
			{Key: "period", Value: r.Period},
			{Key: "category", Value: r.Category},
			{Key: "count", Value: r.Count},
		})
	}
	return out
}

// ProjectProduction projects a top-N consolidated production view.
func ProjectProduction(rows []schema.ProductionRow) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Row{
			{Key: "period", Value: r.Period},
			{Key: "category", Value: r.Category},
			{Key: "total_mass", Value: round2(r.TotalMass)},
			{Key: "count", Value: r.Count},
		})
	}
	return out
}

// ProjectProductivity projects the monthly productivity view.
func ProjectProductivity(rows []schema.ProductivityRow) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Row{
			{Key: "period", Value: r.Period},
			{Key: "total_tonnes", Value: round2(r.TotalTonnes)},
			{Key: "avg_tonnes_per_hour", Value: round2(r.AvgTonnesPerHour)},
			{Key: "operational_hours", Value: r.OperationalHours},
			{Key: "total_cycles", Value: r.TotalCycles},
			{Key: "growth_tonnes_pct", Value: round2(r.GrowthTonnesPct)},
			{Key: "growth_rate_pct", Value: round2(r.GrowthRatePct)},
		})
	}
	return out
}

// ProjectEquipmentDays projects the per-equipment daily productivity view.
func ProjectEquipmentDays(rows []schema.EquipmentDayRow) []schema.Row {
	out := make([]schema.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, schema.Row{
			{Key: "day", Value: r.Day},
			{Key: "equipment", Value: r.Equipment},
			{Key: "total_tonnes", Value: round2(r.TotalTonnes)},
			{Key: "operational_hours", Value: r.OperationalHours},
			{Key: "tonnes_per_hour", Value: round2(r.TonnesPerHour)},
			{Key: "total_cycles", Value: r.TotalCycles},
			{Key: "cycles_per_hour", Value: round1(r.CyclesPerHour)},
		})
	}
	return out
}
