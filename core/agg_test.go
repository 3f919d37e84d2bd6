package core

import (
	"testing"
	"time"

	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycleAt(month time.Month, day int, mass float64, material string) schema.Record {
	return schema.Record{
		StartTime: time.Date(2024, month, day, 10, 0, 0, 0, time.UTC),
		InputType: "Minerio",
		Mass:      massOf(mass),
		Material:  material,
	}
}

// TestCountByMonth tests monthly cycle counting.
func TestCountByMonth(t *testing.T) {
	records := []schema.Record{
		cycleAt(time.January, 1, 100, "A"),
		cycleAt(time.January, 20, 100, "A"),
		cycleAt(time.March, 3, 100, "A"),
	}

	got := countByMonth(records)
	require.Len(t, got, 2)
	assert.Equal(t, schema.MonthlyCount{Period: "2024-01", Count: 2}, got[0])
	assert.Equal(t, schema.MonthlyCount{Period: "2024-03", Count: 1}, got[1])
}

// TestCountByMonthAndDimension tests the per-category split.
func TestCountByMonthAndDimension(t *testing.T) {
	records := []schema.Record{
		{StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), InputType: "Minerio"},
		{StartTime: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), InputType: "Minerio"},
		{StartTime: time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), InputType: "Esteril"},
		{StartTime: time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC)}, // null category dropped
	}

	got := countByMonthAndDimension(records, schema.InputTypeDim)
	require.Len(t, got, 2)
	assert.Equal(t, schema.CategoryCount{Period: "2024-01", Category: "Esteril", Count: 1}, got[0])
	assert.Equal(t, schema.CategoryCount{Period: "2024-01", Category: "Minerio", Count: 2}, got[1])
}

// TestProductionByDimension tests top-N consolidation over the whole range.
func TestProductionByDimension(t *testing.T) {
	// Material ranking over the full set: A=500, B=300, C=100.
	records := []schema.Record{
		cycleAt(time.January, 1, 200, "A"),
		cycleAt(time.January, 2, 300, "A"),
		cycleAt(time.January, 3, 300, "B"),
		cycleAt(time.January, 4, 100, "C"),
		cycleAt(time.February, 1, 50, "C"),
	}

	t.Run("global ranking with consolidation", func(t *testing.T) {
		// Re-run the same masses along the activity dimension, whose top-N
		// is 2: only A and B stay, C collapses to Outros in every month it
		// appears.
		activities := make([]schema.Record, len(records))
		for i, r := range records {
			r.ActivityType = r.Material
			r.Material = ""
			activities[i] = r
		}
		got := productionByDimension(activities, schema.ActivityDim)
		byKey := make(map[string]schema.ProductionRow)
		for _, row := range got {
			byKey[row.Period+"/"+row.Category] = row
		}
		assert.Equal(t, 500.0, byKey["2024-01/A"].TotalMass)
		assert.Equal(t, 300.0, byKey["2024-01/B"].TotalMass)
		assert.Equal(t, 100.0, byKey["2024-01/"+schema.OtherLabel].TotalMass)
		assert.Equal(t, 50.0, byKey["2024-02/"+schema.OtherLabel].TotalMass)
	})

	t.Run("mass partition is preserved", func(t *testing.T) {
		got := productionByDimension(records, schema.MaterialDim)
		var total float64
		for _, row := range got {
			total += row.TotalMass
		}
		assert.InDelta(t, 950.0, total, 1e-9)
	})

	t.Run("rows without mass or input type are excluded", func(t *testing.T) {
		extra := append(records,
			schema.Record{StartTime: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), Material: "A", InputType: "Minerio"},
			schema.Record{StartTime: time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC), Material: "A", Mass: massOf(999)},
		)
		got := productionByDimension(extra, schema.MaterialDim)
		var total float64
		for _, row := range got {
			total += row.TotalMass
		}
		assert.InDelta(t, 950.0, total, 1e-9)
	})

	t.Run("tie on totals breaks by name", func(t *testing.T) {
		tied := []schema.Record{
			cycleAt(time.January, 1, 100, "Z"),
			cycleAt(time.January, 2, 100, "A"),
			cycleAt(time.January, 3, 100, "M"),
		}
		top := topCategories(tied, schema.MaterialDim, 2)
		assert.True(t, top["A"])
		assert.True(t, top["M"])
		assert.False(t, top["Z"])
	})
}

// TestProductionPlaceholders tests fleet placeholder exclusion.
func TestProductionPlaceholders(t *testing.T) {
	records := []schema.Record{
		{StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), InputType: "Minerio", Mass: massOf(100), TransportFleet: "CAT-777"},
		{StartTime: time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), InputType: "Minerio", Mass: massOf(100), TransportFleet: "-"},
		{StartTime: time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC), InputType: "Minerio", Mass: massOf(100), TransportFleet: "  "},
	}

	got := productionByDimension(records, schema.TransportFleetDim)
	require.Len(t, got, 1)
	assert.Equal(t, "CAT-777", got[0].Category)
	assert.Equal(t, 100.0, got[0].TotalMass)
}

// TestValidCategory tests placeholder handling per dimension.
func TestValidCategory(t *testing.T) {
	assert.False(t, validCategory("", schema.MaterialDim))
	assert.True(t, validCategory("-", schema.MaterialDim))
	assert.False(t, validCategory("-", schema.LoadingTagDim))
	assert.False(t, validCategory("   ", schema.TransportFleetDim))
	assert.True(t, validCategory("CAT-777", schema.TransportFleetDim))
}

// TestDistinctValues tests sorted distinct enumeration.
func TestDistinctValues(t *testing.T) {
	records := []schema.Record{
		{LoadingTag: "EX-042"},
		{LoadingTag: "EX-041"},
		{LoadingTag: "EX-041"},
		{LoadingTag: "-"},
		{LoadingTag: ""},
	}

	got := distinctValues(records, schema.LoadingTagDim)
	assert.Equal(t, []string{"EX-041", "EX-042"}, got)
}
