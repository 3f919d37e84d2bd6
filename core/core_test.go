package core

import (
	"context"
	"testing"
	"time"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineOver(t *testing.T, rs *schema.RowSet) *Engine {
	t.Helper()
	loader := &contract.MockRowLoader{}
	files := []schema.SourceFile{sourceFile("d/a.csv", 10)}
	loader.On("ListSources", "d").Return(files, nil)
	loader.On("LoadRows", context.Background(), "d/a.csv").Return(rs, nil)
	return NewEngine(loader, "d")
}

// TestEngineSchemaValidation tests up-front column checks.
func TestEngineSchemaValidation(t *testing.T) {
	ctx := context.Background()
	rs := &schema.RowSet{
		Records: []schema.Record{{StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}},
		Columns: map[schema.Column]bool{schema.ColStartTime: true},
	}
	engine := engineOver(t, rs)

	t.Run("view with satisfied columns works", func(t *testing.T) {
		rows, err := engine.CyclesByMonth(ctx, schema.FilterSpec{})
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("missing view column is a schema error", func(t *testing.T) {
		_, err := engine.CyclesByInputType(ctx, schema.FilterSpec{})
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, schema.ColInputType, schemaErr.Column)
	})

	t.Run("missing filter column is a schema error", func(t *testing.T) {
		f := schema.FilterSpec{LoadingTags: []string{"EX-041"}}
		_, err := engine.CyclesByMonth(ctx, f)
		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, schema.ColLoadingTag, schemaErr.Column)
	})

	t.Run("unknown production dimension is a schema error", func(t *testing.T) {
		_, err := engine.ProductionBy(ctx, schema.FilterSpec{}, schema.Dimension("bogus"))
		var schemaErr *SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})
}

// TestEngineEmptyResult tests that a filter matching nothing is not an error.
func TestEngineEmptyResult(t *testing.T) {
	ctx := context.Background()
	rs := &schema.RowSet{
		Records: []schema.Record{{
			StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			InputType: "Minerio",
		}},
		Columns: map[schema.Column]bool{
			schema.ColStartTime: true,
			schema.ColInputType: true,
		},
	}
	engine := engineOver(t, rs)

	f := schema.FilterSpec{InputTypes: []string{"nothing-matches"}}
	rows, err := engine.CyclesByMonth(ctx, f)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

// TestEngineProductionPipeline tests the full view pipeline end to end.
func TestEngineProductionPipeline(t *testing.T) {
	ctx := context.Background()
	rs := &schema.RowSet{
		Records: []schema.Record{
			cycleAt(time.January, 1, 400, "A"),
			cycleAt(time.January, 2, 100, "B"),
		},
		Columns: map[schema.Column]bool{
			schema.ColStartTime: true,
			schema.ColInputType: true,
			schema.ColMass:      true,
			schema.ColMaterial:  true,
		},
	}
	engine := engineOver(t, rs)

	rows, err := engine.ProductionBy(ctx, schema.FilterSpec{}, schema.MaterialDim)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Category)
	assert.Equal(t, 400.0, rows[0].TotalMass)
}

// TestEngineDistinctValuesUntimedRows tests that value enumeration does not
// lose a value whose only rows lack a parseable start timestamp.
func TestEngineDistinctValuesUntimedRows(t *testing.T) {
	ctx := context.Background()
	rs := &schema.RowSet{
		Records: []schema.Record{
			{
				StartTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
				InputType: "Minerio",
			},
			{InputType: "Sulfetado"}, // unparseable timestamp
		},
		Columns: map[schema.Column]bool{
			schema.ColStartTime: true,
			schema.ColInputType: true,
		},
	}
	engine := engineOver(t, rs)

	t.Run("no date bound keeps untimed values", func(t *testing.T) {
		values, err := engine.DistinctValues(ctx, schema.FilterSpec{}, schema.InputTypeDim)
		require.NoError(t, err)
		assert.Equal(t, []string{"Minerio", "Sulfetado"}, values)
	})

	t.Run("date bound excludes untimed values", func(t *testing.T) {
		f := schema.FilterSpec{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		values, err := engine.DistinctValues(ctx, f, schema.InputTypeDim)
		require.NoError(t, err)
		assert.Equal(t, []string{"Minerio"}, values)
	})
}
