package core

import (
	"github.com/oreops/haulstat/schema"
)

// filterColumns maps each categorical filter of a FilterSpec to the column
// it reads, for up-front schema validation.
func filterColumns(f *schema.FilterSpec) []schema.Column {
	var cols []schema.Column
	if len(f.InputTypes) > 0 {
		cols = append(cols, schema.ColInputType)
	}
	if len(f.TransportFleets) > 0 {
		cols = append(cols, schema.ColTransportFleet)
	}
	if len(f.LoadingFleets) > 0 {
		cols = append(cols, schema.ColLoadingFleet)
	}
	if len(f.LoadingTags) > 0 {
		cols = append(cols, schema.ColLoadingTag)
	}
	return cols
}

// applyFilter narrows the dataset's records to those matching the spec.
// Rows without a parseable start timestamp are always dropped; date bounds
// are inclusive on both ends; each non-empty categorical set keeps only
// member rows, which also drops rows whose value for that field is null.
// The dataset itself is never mutated. An empty result is a normal outcome.
func applyFilter(ds *schema.Dataset, f *schema.FilterSpec) []schema.Record {
	return filterRecords(ds, f, false)
}

// applyValueFilter narrows records for value enumeration. Unlike applyFilter
// it keeps rows without a parseable start timestamp as long as no date bound
// is active: a categorical value carried only by timestamp-less rows is
// still a real value of the dimension.
func applyValueFilter(ds *schema.Dataset, f *schema.FilterSpec) []schema.Record {
	return filterRecords(ds, f, true)
}

func filterRecords(ds *schema.Dataset, f *schema.FilterSpec, keepUntimed bool) []schema.Record {
	inputTypes := toSet(f.InputTypes)
	transportFleets := toSet(f.TransportFleets)
	loadingFleets := toSet(f.LoadingFleets)
	loadingTags := toSet(f.LoadingTags)

	dateBound := !f.Start.IsZero() || !f.End.IsZero()

	out := make([]schema.Record, 0, len(ds.Records))
	for _, r := range ds.Records {
		if r.StartTime.IsZero() {
			if !keepUntimed || dateBound {
				continue
			}
		} else {
			if !f.Start.IsZero() && r.StartTime.Before(f.Start) {
				continue
			}
			if !f.End.IsZero() && r.StartTime.After(f.End) {
				continue
			}
		}
		if inputTypes != nil && !inputTypes[r.InputType] {
			continue
		}
		if transportFleets != nil && !transportFleets[r.TransportFleet] {
			continue
		}
		if loadingFleets != nil && !loadingFleets[r.LoadingFleet] {
			continue
		}
		if loadingTags != nil && !loadingTags[r.LoadingTag] {
			continue
		}
		out = append(out, r)
	}
	return out
}

// toSet builds a membership set from an inclusion list. A nil return means
// the filter is inactive. Membership of "" is always false, so rows with a
// null value are dropped once the filter applies.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
