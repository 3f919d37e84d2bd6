package outwriter

import (
	"bytes"
	"testing"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: contract.DefaultPrecision,
		Width:     120,
	}
}

func sampleRows() []schema.Row {
	return []schema.Row{
		{
			{Key: "period", Value: "2024-01"},
			{Key: "category", Value: "Hematita"},
			{Key: "total_mass", Value: 1234.5},
			{Key: "count", Value: 42},
		},
		{
			{Key: "period", Value: "2024-01"},
			{Key: "category", Value: schema.OtherLabel},
			{Key: "total_mass", Value: 10.0},
			{Key: "count", Value: 3},
		},
	}
}

func TestWriteRowTable(t *testing.T) {
	var buf bytes.Buffer
	formatCell := createFormatter(2)

	err := writeRowTable(sampleRows(), testConfig(), formatCell, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Hematita")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, schema.OtherLabel)
	assert.Contains(t, out, "Showing 2 row(s)")
}

func TestWriteRowTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	formatCell := createFormatter(2)

	err := writeRowTable(nil, testConfig(), formatCell, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No rows to display")
}

func TestWriteJSONRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleRows()))

	out := buf.String()
	// Attribute order from the projector survives serialization.
	assert.Contains(t, out, `"period": "2024-01"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"period"`)), bytes.Index(buf.Bytes(), []byte(`"count"`)))
	assert.Contains(t, out, `"count": 42`)
}

func TestCreateFormatter(t *testing.T) {
	formatCell := createFormatter(2)

	assert.Equal(t, "3.14", formatCell(3.14159))
	assert.Equal(t, "42", formatCell(42))
	assert.Equal(t, "abc", formatCell("abc"))
	assert.Equal(t, "true", formatCell(true))
}

func TestGetMaxTableValueWidth(t *testing.T) {
	narrow := testConfig()
	narrow.Width = 40
	assert.Equal(t, 12, getMaxTableValueWidth(narrow))

	wide := testConfig()
	wide.Width = 500
	assert.Equal(t, 50, getMaxTableValueWidth(wide))

	mid := testConfig()
	mid.Width = 80
	assert.Equal(t, 35, getMaxTableValueWidth(mid))
}
