package contract

import (
	"fmt"
	"strings"
	"time"
)

// filterTimeLayouts lists the accepted timestamp formats for --start/--end,
// most specific first. Date-only values parse to midnight, which keeps the
// lower bound inclusive of the whole day and matches the original dashboard.
var filterTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseFilterTime converts a user-supplied date or timestamp string into a
// time.Time using the first layout that matches.
func ParseFilterTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range filterTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s (expected YYYY-MM-DD or RFC3339)", s)
}
