package core

import (
	"sort"
	"strings"

	"github.com/oreops/haulstat/schema"
)

// countByMonth groups filtered records by calendar month and counts them.
// Rows are assumed to carry a valid start timestamp (the filter guarantees
// it). Output is sorted ascending by period.
func countByMonth(records []schema.Record) []schema.MonthlyCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[monthKey(r.StartTime)]++
	}

	out := make([]schema.MonthlyCount, 0, len(counts))
	for period, n := range counts {
		out = append(out, schema.MonthlyCount{Period: period, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// countByMonthAndDimension groups records by (month, category) and counts
// them. Rows with a null category are dropped first. Output is sorted by
// period, then category.
func countByMonthAndDimension(records []schema.Record, dim schema.Dimension) []schema.CategoryCount {
	type key struct {
		period   string
		category string
	}
	counts := make(map[key]int)
	for _, r := range records {
		category := r.Field(dim)
		if category == "" {
			continue
		}
		counts[key{monthKey(r.StartTime), category}]++
	}

	out := make([]schema.CategoryCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, schema.CategoryCount{Period: k.period, Category: k.category, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// productionByDimension sums mass per (month, category) after consolidating
// all but the top-N categories into schema.OtherLabel. Ranking runs over
// category totals of the entire filtered set, not per month, so a category
// is labeled top-N or Other consistently across every month of the result.
// Do not fold the two passes into one that ranks per month: that would make
// chart legends unstable across periods, which is exactly what this view
// exists to avoid.
//
// Rows with a null category, null mass, or null input type are dropped, as
// are placeholder values for the fleet dimensions.
func productionByDimension(records []schema.Record, dim schema.Dimension) []schema.ProductionRow {
	topN := schema.ProductionTopN[dim]
	eligible := make([]schema.Record, 0, len(records))
	for _, r := range records {
		if r.Mass == nil || r.InputType == "" {
			continue
		}
		if !validCategory(r.Field(dim), dim) {
			continue
		}
		eligible = append(eligible, r)
	}

	// Pass 1: rank categories by total mass across the whole filtered set.
	top := topCategories(eligible, dim, topN)

	// Pass 2: re-tag and group by (month, consolidated category).
	type key struct {
		period   string
		category string
	}
	type bucket struct {
		mass  float64
		count int
	}
	groups := make(map[key]*bucket)
	for _, r := range eligible {
		category := r.Field(dim)
		if !top[category] {
			category = schema.OtherLabel
		}
		k := key{monthKey(r.StartTime), category}
		b := groups[k]
		if b == nil {
			b = &bucket{}
			groups[k] = b
		}
		b.mass += *r.Mass
		b.count++
	}

	out := make([]schema.ProductionRow, 0, len(groups))
	for k, b := range groups {
		out = append(out, schema.ProductionRow{
			Period:    k.period,
			Category:  k.category,
			TotalMass: b.mass,
			Count:     b.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// topCategories returns the set of the n categories with the highest total
// mass. Ties break by category name ascending so the result is
// deterministic regardless of map iteration order.
func topCategories(records []schema.Record, dim schema.Dimension, n int) map[string]bool {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.Field(dim)] += *r.Mass
	}

	categories := make([]string, 0, len(totals))
	for c := range totals {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if totals[categories[i]] != totals[categories[j]] {
			return totals[categories[i]] > totals[categories[j]]
		}
		return categories[i] < categories[j]
	})

	top := make(map[string]bool, n)
	for i, c := range categories {
		if i >= n {
			break
		}
		top[c] = true
	}
	return top
}

// validCategory reports whether a categorical value is usable for grouping.
// Fleet and tag dimensions additionally reject the "-" placeholder and
// blank-after-trim values.
func validCategory(value string, dim schema.Dimension) bool {
	if value == "" {
		return false
	}
	if schema.PlaceholderDimensions[dim] {
		return !isPlaceholder(value)
	}
	return true
}

// isPlaceholder reports whether a fleet or tag value is the "-" marker or
// blank after trimming.
func isPlaceholder(value string) bool {
	return value == schema.PlaceholderValue || strings.TrimSpace(value) == ""
}
