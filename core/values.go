package core

import (
	"sort"

	"github.com/oreops/haulstat/schema"
)

// distinctValues returns the sorted distinct non-null values of a dimension
// across the whole dataset. Fleet and tag dimensions additionally exclude
// placeholder values, matching what the dashboard offered in its filter
// dropdowns.
func distinctValues(records []schema.Record, dim schema.Dimension) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		v := r.Field(dim)
		if !validCategory(v, dim) {
			continue
		}
		seen[v] = true
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
