package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRowResults outputs projected view rows, dispatching based on the
// output format configured. Every statistics view flows through here, since
// the projector already fixed the attribute order and rounding per view.
func WriteRowResults(rows []schema.Row, cfg *contract.Config) error {
	formatCell := createFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRowJSONResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRowCSVResults(rows, cfg, formatCell); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRowTable(rows, cfg, formatCell, w)
		}, "Wrote table")
	}
	return nil
}

// writeRowJSONResults handles opening the file and calling the JSON writer.
func writeRowJSONResults(rows []schema.Row, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON")
}

// writeRowCSVResults handles opening the file and calling the CSV writer.
func writeRowCSVResults(rows []schema.Row, cfg *contract.Config, formatCell func(any) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if len(rows) == 0 {
			return nil
		}
		return writeCSVWithHeader(w, rows[0].Keys(), func(csvWriter *csv.Writer) error {
			for _, row := range rows {
				rec := make([]string, len(row))
				for i, attr := range row {
					rec[i] = formatCell(attr.Value)
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRowTable generates and writes the human-readable table.
func writeRowTable(rows []schema.Row, cfg *contract.Config, formatCell func(any) string, writer io.Writer) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(writer, "No rows to display")
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers from the projected attribute order
	table.Header(rows[0].Keys())

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxValueWidth := getMaxTableValueWidth(cfg)
	var data [][]string
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, attr := range row {
			cell := formatCell(attr.Value)
			if isValueColumn(attr.Key) {
				cell = contract.TruncateValue(cell, maxValueWidth)
			}
			cells[i] = cell
		}
		data = append(data, cells)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d row(s)\n", len(rows))
	return err
}
