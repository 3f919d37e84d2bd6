package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Cache validity label constants.
const (
	ValidValue = "valid"
	StaleValue = "stale"
	EmptyValue = "empty"
)

// Color variables for console output.
var (
	ValidColor = color.New(color.FgGreen, color.Bold)  // cached data matches the files on disk
	StaleColor = color.New(color.FgYellow, color.Bold) // cached data is out of date
	EmptyColor = color.New(color.FgCyan)               // nothing cached yet
)

// GetPlainValidityLabel returns a plain text label for the cache state.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainValidityLabel(hasDataset, valid bool) string {
	switch {
	case !hasDataset:
		return EmptyValue
	case valid:
		return ValidValue
	default:
		return StaleValue
	}
}

// GetColorValidityLabel returns a colored validity label for console output.
func GetColorValidityLabel(hasDataset, valid bool) string {
	text := GetPlainValidityLabel(hasDataset, valid)
	switch text {
	case ValidValue:
		return ValidColor.Sprint(text)
	case StaleValue:
		return StaleColor.Sprint(text)
	default:
		return EmptyColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path falls back to os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateValue truncates a category or equipment value to a maximum width
// with an ellipsis suffix. Requires maxWidth > 3 so there is room for both
// the ellipsis and at least one character of content.
func TruncateValue(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogInfo logs a progress notice to stderr, keeping stdout free for data.
func LogInfo(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
}
