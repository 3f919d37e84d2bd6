package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordField(t *testing.T) {
	r := Record{
		InputType:      "Minerio",
		ActivityType:   "Lavra",
		Material:       "Hematita",
		MaterialSpec:   "ROM",
		LoadingTag:     "EX-041",
		LoadingFleet:   "Escavadeiras",
		TransportFleet: "CAT-777",
	}

	assert.Equal(t, "Minerio", r.Field(InputTypeDim))
	assert.Equal(t, "Lavra", r.Field(ActivityDim))
	assert.Equal(t, "Hematita", r.Field(MaterialDim))
	assert.Equal(t, "ROM", r.Field(MaterialSpecDim))
	assert.Equal(t, "EX-041", r.Field(LoadingTagDim))
	assert.Equal(t, "Escavadeiras", r.Field(LoadingFleetDim))
	assert.Equal(t, "CAT-777", r.Field(TransportFleetDim))
	assert.Equal(t, "", r.Field(Dimension("bogus")))
}

func TestFilterSpecIsZero(t *testing.T) {
	assert.True(t, (&FilterSpec{}).IsZero())
	assert.False(t, (&FilterSpec{Start: time.Now()}).IsZero())
	assert.False(t, (&FilterSpec{InputTypes: []string{"Minerio"}}).IsZero())
}

func TestRowMarshalJSON(t *testing.T) {
	row := Row{
		{Key: "period", Value: "2024-01"},
		{Key: "total_mass", Value: 12.5},
		{Key: "count", Value: 3},
	}

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"period":"2024-01","total_mass":12.5,"count":3}`, string(data))
	assert.Equal(t, []string{"period", "total_mass", "count"}, row.Keys())
}

func TestDimensionColumnsCoverAllDimensions(t *testing.T) {
	for dim := range ValidDimensions {
		_, ok := DimensionColumns[dim]
		assert.True(t, ok, "dimension %s should map to a column", dim)
	}
}

func TestProductionTopN(t *testing.T) {
	assert.Equal(t, 2, ProductionTopN[ActivityDim])
	assert.Equal(t, 3, ProductionTopN[MaterialDim])
	// The cycle dimension used for counting is not a production view.
	_, ok := ProductionTopN[InputTypeDim]
	assert.False(t, ok)
}
