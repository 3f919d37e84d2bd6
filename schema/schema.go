// Package schema has configs, models and constants for all parts of haulstat.
package schema

import "time"

// Record represents a single haulage-cycle event loaded from a source file.
// StartTime is the only field every aggregation depends on; a zero StartTime
// marks a row whose timestamp was missing or unparseable. Optional string
// fields use "" as the null value and Mass uses a nil pointer.
type Record struct {
	StartTime      time.Time // Cycle start timestamp (zero = missing/unparseable)
	InputType      string    // Input type category
	Mass           *float64  // Transported mass in kilograms
	ActivityType   string    // Activity type category
	Material       string    // Material
	MaterialSpec   string    // Material specification
	LoadingTag     string    // Loading equipment tag
	LoadingFleet   string    // Loading fleet
	TransportFleet string    // Transport fleet
}

// Field returns the categorical value of the record for the given dimension.
// A missing value is returned as "".
func (r *Record) Field(dim Dimension) string {
	switch dim {
	case InputTypeDim:
		return r.InputType
	case ActivityDim:
		return r.ActivityType
	case MaterialDim:
		return r.Material
	case MaterialSpecDim:
		return r.MaterialSpec
	case LoadingTagDim:
		return r.LoadingTag
	case LoadingFleetDim:
		return r.LoadingFleet
	case TransportFleetDim:
		return r.TransportFleet
	default:
		return ""
	}
}

// SourceFile identifies one eligible source file on disk. The triple of
// path, size and modification time is the whole identity used for cache
// invalidation; file content is never hashed.
type SourceFile struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// RowSet is the result of loading a single source file: the parsed records
// plus the set of known columns that were present in the file header.
type RowSet struct {
	Records []Record
	Columns map[Column]bool
}

// Dataset is the in-memory collection of all records from all source files,
// in file-enumeration order, annotated with the fingerprint it was built
// from. A Dataset is immutable once built; filters derive copies.
type Dataset struct {
	Records     []Record
	Columns     map[Column]bool
	Fingerprint string
	LoadedAt    time.Time
	Sources     int
}

// HasColumn reports whether the column was present in at least one source file.
func (d *Dataset) HasColumn(col Column) bool {
	return d.Columns[col]
}

// FilterSpec narrows a dataset before aggregation. Zero-value time bounds
// and empty slices mean "no constraint". Both date bounds are inclusive.
type FilterSpec struct {
	Start           time.Time
	End             time.Time
	InputTypes      []string
	TransportFleets []string
	LoadingFleets   []string
	LoadingTags     []string
}

// IsZero reports whether the spec applies no constraint at all.
func (f *FilterSpec) IsZero() bool {
	return f.Start.IsZero() && f.End.IsZero() &&
		len(f.InputTypes) == 0 && len(f.TransportFleets) == 0 &&
		len(f.LoadingFleets) == 0 && len(f.LoadingTags) == 0
}
