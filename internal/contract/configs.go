package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/oreops/haulstat/schema"
)

// Default values for configuration.
const (
	DefaultDataDir   = "CicloDetalhado"
	DefaultPrecision = 2
	MinPrecision     = 1
	MaxPrecision     = 4
)

// DateFormat is the day-level date representation used in output.
const DateFormat = "2006-01-02"

// DateTimeFormat is the default timestamp representation used in output.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a haulstat invocation.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string            // Directory holding the source exports (positional arg)
	Filter     schema.FilterSpec // Validated filter derived from flag inputs
	Output     schema.OutputMode // Output format: text, csv, json, parquet
	OutputFile string            // Optional path to write output to
	Precision  int               // Decimal precision for numeric table columns
	Width      int               // Terminal width override (0 = auto-detect)
	UseColors  bool              // Enable colored labels in table output
}

// Clone returns a copy of the config so per-request overrides (MCP tools)
// never mutate the base configuration.
func (c *Config) Clone() *Config {
	dup := *c
	dup.Filter.InputTypes = append([]string(nil), c.Filter.InputTypes...)
	dup.Filter.TransportFleets = append([]string(nil), c.Filter.TransportFleets...)
	dup.Filter.LoadingFleets = append([]string(nil), c.Filter.LoadingFleets...)
	dup.Filter.LoadingTags = append([]string(nil), c.Filter.LoadingTags...)
	return &dup
}

// ConfigRawInput holds the raw, unvalidated inputs from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	DataDirStr         string `mapstructure:"-"` // Positional argument, not bound to Viper
	StartStr           string `mapstructure:"start"`
	EndStr             string `mapstructure:"end"`
	InputTypesStr      string `mapstructure:"input-types"`
	TransportFleetsStr string `mapstructure:"transport-fleets"`
	LoadingFleetsStr   string `mapstructure:"loading-fleets"`
	LoadingTagsStr     string `mapstructure:"loading-tags"`
	Output             string `mapstructure:"output"`
	OutputFile         string `mapstructure:"output-file"`
	Precision          int    `mapstructure:"precision"`
	Width              int    `mapstructure:"width"`
	Color              string `mapstructure:"color"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Data directory ---
	// A missing or empty directory is not rejected here: enumeration of an
	// absent directory yields zero files and a reload surfaces that as a
	// "no source data" condition at the point of use.
	cfg.DataDir = input.DataDirStr
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	// --- 2. Precision Validation ---
	if input.Precision < MinPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d (received %d)", MinPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 4. Date Range Parsing and Validation ---
	cfg.Filter.Start = time.Time{}
	cfg.Filter.End = time.Time{}
	if input.StartStr != "" {
		t, err := ParseFilterTime(input.StartStr)
		if err != nil {
			return fmt.Errorf("invalid start date '%s': %w", input.StartStr, err)
		}
		cfg.Filter.Start = t
	}
	if input.EndStr != "" {
		t, err := ParseFilterTime(input.EndStr)
		if err != nil {
			return fmt.Errorf("invalid end date '%s': %w", input.EndStr, err)
		}
		cfg.Filter.End = t
	}
	if !cfg.Filter.Start.IsZero() && !cfg.Filter.End.IsZero() && cfg.Filter.Start.After(cfg.Filter.End) {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)",
			cfg.Filter.Start.Format(DateFormat), cfg.Filter.End.Format(DateFormat))
	}

	// --- 5. Categorical Inclusion Lists ---
	cfg.Filter.InputTypes = SplitCommaList(input.InputTypesStr)
	cfg.Filter.TransportFleets = SplitCommaList(input.TransportFleetsStr)
	cfg.Filter.LoadingFleets = SplitCommaList(input.LoadingFleetsStr)
	cfg.Filter.LoadingTags = SplitCommaList(input.LoadingTagsStr)

	// --- 6. Width and Color ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// SplitCommaList splits a comma-separated flag value into its non-empty,
// trimmed parts. An empty input yields nil.
func SplitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
