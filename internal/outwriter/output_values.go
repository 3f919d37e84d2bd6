package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteValueResults outputs the distinct values of a dimension, dispatching
// based on the output format configured.
func WriteValueResults(dim schema.Dimension, values []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"dimension": string(dim),
				"values":    values,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{string(dim)}, func(csvWriter *csv.Writer) error {
				for _, v := range values {
					if err := csvWriter.Write([]string{v}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeValueTable(dim, values, w)
		}, "Wrote table")
	}
}

// writeValueTable generates and writes the human-readable value listing.
func writeValueTable(dim schema.Dimension, values []string, writer io.Writer) error {
	if len(values) == 0 {
		_, err := fmt.Fprintf(writer, "No values found for %s\n", dim)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", string(dim)})

	var data [][]string
	for i, v := range values {
		data = append(data, []string{fmt.Sprintf("%d", i+1), contract.TruncateValue(v, 50)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d distinct value(s)\n", len(values))
	return err
}
