package schema

import (
	"bytes"
	"encoding/json"
	"time"
)

// MonthlyCount is one row of the cycles-by-month view.
type MonthlyCount struct {
	Period string // Calendar month, "YYYY-MM"
	Count  int    // Number of cycles started in the month
}

// CategoryCount is one row of the cycles-by-month-by-category view.
type CategoryCount struct {
	Period   string
	Category string
	Count    int
}

// ProductionRow is one row of a top-N consolidated production view.
// Category is either one of the top-N values of the dimension or OtherLabel.
type ProductionRow struct {
	Period    string
	Category  string
	TotalMass float64 // Summed mass in kilograms
	Count     int     // Number of cycles contributing to the sum
}

// ProductivityRow is one row of the monthly productivity view. The average
// rate is the mean of the daily tonnes-per-hour values of the month, not the
// monthly totals divided by monthly hours.
type ProductivityRow struct {
	Period           string
	TotalTonnes      float64
	AvgTonnesPerHour float64
	OperationalHours int // Sum of distinct operating hours over the month's days
	TotalCycles      int
	GrowthTonnesPct  float64 // Month-over-month growth of TotalTonnes, 0 for the first period
	GrowthRatePct    float64 // Month-over-month growth of AvgTonnesPerHour, 0 for the first period
}

// EquipmentDayRow is one row of the per-equipment daily productivity view.
type EquipmentDayRow struct {
	Day              string // Calendar day, "YYYY-MM-DD"
	Equipment        string // Loading equipment tag
	TotalTonnes      float64
	OperationalHours int // Distinct hours with at least one cycle
	TonnesPerHour    float64
	TotalCycles      int
	CyclesPerHour    float64
}

// CacheStatus is the read-only diagnostic of the dataset cache.
type CacheStatus struct {
	HasDataset         bool      `json:"has_dataset"`
	Valid              bool      `json:"valid"`
	CachedFingerprint  string    `json:"cached_fingerprint,omitempty"`
	CurrentFingerprint string    `json:"current_fingerprint"`
	LoadedAt           time.Time `json:"loaded_at,omitzero"`
	Records            int       `json:"records"`
	Sources            int       `json:"sources"`
}

// CacheClearResult reports the outcome of a cache eviction.
type CacheClearResult struct {
	HadData   bool      `json:"had_data"`
	Timestamp time.Time `json:"timestamp"`
}

// Attr is a single attribute-value pair of a projected result row.
type Attr struct {
	Key   string
	Value any
}

// Row is an ordered attribute-value record emitted by the result projector.
// Field order is part of the output contract, so Row marshals to a JSON
// object with keys in slice order instead of relying on struct reflection.
type Row []Attr

// MarshalJSON implements json.Marshaler preserving attribute order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys returns the attribute names in order. Used as table and CSV headers.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, a := range r {
		keys[i] = a.Key
	}
	return keys
}
