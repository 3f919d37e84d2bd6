package core

import (
	"errors"
	"fmt"

	"github.com/oreops/haulstat/schema"
)

// ErrNoSourceData signals that the data directory held zero eligible source
// files at reload time. Returning an empty dataset instead would mask a
// misconfigured directory, so the reload fails loudly.
var ErrNoSourceData = errors.New("no valid source files found in data directory")

// ConfigError marks a failure caused by the runtime environment rather than
// the data itself, such as an empty or missing source directory.
type ConfigError struct {
	Dir string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %q: %v", e.Dir, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SchemaError marks an aggregation whose required column is absent from the
// loaded dataset. It is raised before any grouping work begins.
type SchemaError struct {
	Column schema.Column
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in loaded data", string(e.Column))
}

// LoadError marks a source file that failed to parse. A single LoadError
// aborts the whole reload; partial datasets are never cached.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
