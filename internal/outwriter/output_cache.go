package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteCacheStatusResult outputs the dataset cache diagnostic, dispatching
// based on the output format configured.
func WriteCacheStatusResult(status schema.CacheStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"state", "cached_fingerprint", "current_fingerprint", "loaded_at", "records", "sources"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				return csvWriter.Write([]string{
					contract.GetPlainValidityLabel(status.HasDataset, status.Valid),
					status.CachedFingerprint,
					status.CurrentFingerprint,
					formatLoadedAt(status.LoadedAt),
					strconv.Itoa(status.Records),
					strconv.Itoa(status.Sources),
				})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCacheStatusTable(status, cfg, w)
		}, "Wrote table")
	}
}

// writeCacheStatusTable generates and writes the human-readable diagnostic.
func writeCacheStatusTable(status schema.CacheStatus, cfg *contract.Config, writer io.Writer) error {
	label := contract.GetPlainValidityLabel(status.HasDataset, status.Valid)
	if cfg.UseColors {
		label = contract.GetColorValidityLabel(status.HasDataset, status.Valid)
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Field", "Value"})

	data := [][]string{
		{"State", label},
		{"Cached fingerprint", shortFingerprint(status.CachedFingerprint)},
		{"Current fingerprint", shortFingerprint(status.CurrentFingerprint)},
		{"Loaded at", formatLoadedAt(status.LoadedAt)},
		{"Records", strconv.Itoa(status.Records)},
		{"Sources", strconv.Itoa(status.Sources)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WriteCacheClearResult outputs the outcome of a cache eviction.
func WriteCacheClearResult(result schema.CacheClearResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if result.HadData {
				_, err := fmt.Fprintln(w, "Cache cleared")
				return err
			}
			_, err := fmt.Fprintln(w, "Cache was already empty")
			return err
		}, "Wrote result")
	}
}

// shortFingerprint abbreviates a fingerprint hash for table display.
func shortFingerprint(fp string) string {
	if fp == "" {
		return "-"
	}
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}

func formatLoadedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
