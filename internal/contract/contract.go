// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/oreops/haulstat/schema"
)

// RowLoader defines the operations the engine needs from a source-file
// reader. This keeps spreadsheet parsing out of the core and allows the
// dataset cache to be tested without touching real files.
type RowLoader interface {
	// ListSources enumerates the eligible source files of the data
	// directory, sorted by path, with temp artifacts excluded. A missing
	// directory yields an empty slice, not an error; the emptiness is
	// surfaced later as a "no source data" condition.
	ListSources(dir string) ([]schema.SourceFile, error)

	// LoadRows reads one source file into a row set. Any parse failure
	// fails the whole file; partial row sets are never returned.
	LoadRows(ctx context.Context, path string) (*schema.RowSet, error)
}
