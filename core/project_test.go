package core

import (
	"encoding/json"
	"testing"

	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectProductivity tests attribute order and rounding.
func TestProjectProductivity(t *testing.T) {
	rows := ProjectProductivity([]schema.ProductivityRow{{
		Period:           "2024-01",
		TotalTonnes:      1234.5678,
		AvgTonnesPerHour: 3.14159,
		OperationalHours: 120,
		TotalCycles:      450,
		GrowthTonnesPct:  12.3456,
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"period", "total_tonnes", "avg_tonnes_per_hour",
		"operational_hours", "total_cycles",
		"growth_tonnes_pct", "growth_rate_pct",
	}, rows[0].Keys())
	assert.Equal(t, 1234.57, rows[0][1].Value)
	assert.Equal(t, 3.14, rows[0][2].Value)
	assert.Equal(t, 12.35, rows[0][5].Value)
}

// TestProjectEquipmentDays tests cycles-per-hour rounding to one decimal.
func TestProjectEquipmentDays(t *testing.T) {
	rows := ProjectEquipmentDays([]schema.EquipmentDayRow{{
		Day:           "2024-01-05",
		Equipment:     "EX-041",
		TonnesPerHour: 2.999,
		CyclesPerHour: 1.666,
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, 3.0, rows[0][4].Value)
	assert.Equal(t, 1.7, rows[0][6].Value)
}

// TestRowJSONOrder tests that marshaled rows keep projector order.
func TestRowJSONOrder(t *testing.T) {
	rows := ProjectMonthlyCounts([]schema.MonthlyCount{{Period: "2024-01", Count: 42}})

	data, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"period":"2024-01","count":42}]`, string(data))
	// Key order itself is part of the contract, not only the content.
	assert.Equal(t, `[{"period":"2024-01","count":42}]`, string(data))
}
