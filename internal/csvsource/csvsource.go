// Package csvsource loads haulage cycle records from CSV exports.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
)

// timestampLayouts are tried in order when parsing the start timestamp.
// Exports come from different tools, so both T-separated and space-separated
// forms show up, with and without seconds.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
}

// Loader reads CicloDetalhado CSV exports from disk.
type Loader struct{}

var _ contract.RowLoader = Loader{}

// NewLoader builds a CSV source loader.
func NewLoader() Loader {
	return Loader{}
}

// ListSources enumerates the eligible source files under dir, sorted by
// path. Editor lock artifacts and non-CSV files are skipped. A missing
// directory yields an empty list rather than an error, so that a fresh
// checkout behaves like an empty dataset directory.
func (Loader) ListSources(dir string) ([]schema.SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.SourceFile{}, nil
		}
		return nil, err
	}

	files := make([]schema.SourceFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, schema.TempFilePrefix) {
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), schema.SourceExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// File disappeared between ReadDir and Info.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		files = append(files, schema.SourceFile{
			Path:    filepath.Join(dir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// LoadRows parses one CSV export into records. The header row maps columns
// by name, so column order does not matter and unknown columns are ignored.
// Unparseable timestamps and masses become null values instead of errors,
// matching how the original exports mix clean and hand-edited rows.
func (Loader) LoadRows(ctx context.Context, path string) (*schema.RowSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &schema.RowSet{Columns: map[schema.Column]bool{}}, nil
		}
		return nil, err
	}

	index := headerIndex(header)
	columns := make(map[schema.Column]bool, len(index))
	for col := range index {
		columns[col] = true
	}

	set := &schema.RowSet{Columns: columns}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		set.Records = append(set.Records, parseRecord(fields, index))
	}
	return set, nil
}

// headerIndex maps each recognized column to its position in the header.
func headerIndex(header []string) map[schema.Column]int {
	index := make(map[schema.Column]int, len(schema.KnownColumns))
	for pos, name := range header {
		name = strings.TrimSpace(name)
		for _, col := range schema.KnownColumns {
			if name == string(col) {
				index[col] = pos
				break
			}
		}
	}
	return index
}

func parseRecord(fields []string, index map[schema.Column]int) schema.Record {
	return schema.Record{
		StartTime:      parseTimestamp(cell(fields, index, schema.ColStartTime)),
		InputType:      cell(fields, index, schema.ColInputType),
		ActivityType:   cell(fields, index, schema.ColActivity),
		Material:       cell(fields, index, schema.ColMaterial),
		MaterialSpec:   cell(fields, index, schema.ColMaterialSpec),
		LoadingTag:     cell(fields, index, schema.ColLoadingTag),
		LoadingFleet:   cell(fields, index, schema.ColLoadingFleet),
		TransportFleet: cell(fields, index, schema.ColTransportFleet),
		Mass:           parseMass(cell(fields, index, schema.ColMass)),
	}
}

// cell reads a column's value from a row, returning "" when the column is
// absent or the row is short.
func cell(fields []string, index map[schema.Column]int, col schema.Column) string {
	pos, ok := index[col]
	if !ok || pos >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[pos])
}

// parseTimestamp returns the zero time when no layout matches, which the
// filter later treats as a missing timestamp.
func parseTimestamp(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseMass returns nil for blank or unparseable masses. Exports use either
// a dot or a comma as the decimal separator.
func parseMass(value string) *float64 {
	if value == "" {
		return nil
	}
	value = strings.ReplaceAll(value, ",", ".")
	mass, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &mass
}
