package parquet

import (
	"os"
	"path/filepath"
	"testing"

	hschema "github.com/oreops/haulstat/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductivityStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	schema := parquet.SchemaOf(new(Productivity))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"period",
		"total_tonnes",
		"avg_tonnes_per_hour",
		"operational_hours",
		"total_cycles",
		"growth_tonnes_pct",
		"growth_rate_pct",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestEquipmentDayStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(EquipmentDay))
	require.NotNil(t, schema)

	expectedColumns := []string{
		"day",
		"equipment",
		"total_tonnes",
		"operational_hours",
		"tonnes_per_hour",
		"total_cycles",
		"cycles_per_hour",
	}

	for _, colName := range expectedColumns {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteProductionParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "production.parquet")

	rows := []hschema.ProductionRow{
		{Period: "2024-01", Category: "Hematita", TotalMass: 1500.5, Count: 12},
		{Period: "2024-01", Category: hschema.OtherLabel, TotalMass: 90.0, Count: 3},
	}
	require.NoError(t, WriteProductionParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Read the file back and verify content integrity.
	f, err := os.Open(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	readBack, err := parquet.Read[Production](f, info.Size())
	require.NoError(t, err)
	require.Len(t, readBack, 2)
	assert.Equal(t, "Hematita", readBack[0].Category)
	assert.Equal(t, 1500.5, readBack[0].TotalMass)
	assert.Equal(t, int64(3), readBack[1].Count)
}

func TestWriteMonthlyCountsParquetEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "counts.parquet")

	require.NoError(t, WriteMonthlyCountsParquet(nil, outputPath))

	_, err := os.Stat(outputPath)
	assert.NoError(t, err)
}
