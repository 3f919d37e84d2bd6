// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/oreops/haulstat/internal/contract"
	"github.com/oreops/haulstat/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRows prints projected view rows using the configured output format.
func (ow *OutWriter) WriteRows(rows []schema.Row, cfg *contract.Config) error {
	return WriteRowResults(rows, cfg)
}

// WriteValues prints distinct dimension values using the configured output format.
func (ow *OutWriter) WriteValues(dim schema.Dimension, values []string, cfg *contract.Config) error {
	return WriteValueResults(dim, values, cfg)
}

// WriteCacheStatus prints the dataset cache diagnostic.
func (ow *OutWriter) WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return WriteCacheStatusResult(status, cfg)
}

// WriteCacheClear prints the outcome of a cache eviction.
func (ow *OutWriter) WriteCacheClear(result schema.CacheClearResult, cfg *contract.Config) error {
	return WriteCacheClearResult(result, cfg)
}

// getMaxTableValueWidth calculates the maximum width for category and
// equipment values in table output based on terminal width.
func getMaxTableValueWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the period and numeric columns with borders/padding
	baseWidth := 45

	// Calculate available space for the value column
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable value width
		return 12
	}
	if available > 50 {
		// Maximum value width to keep tables compact
		return 50
	}
	return available
}
