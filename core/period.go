package core

import "time"

// monthKey maps a timestamp to its calendar-month bucket, "YYYY-MM".
// Boundaries follow the naive calendar of the timestamp's own value; no
// timezone conversion is applied.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// dayKey maps a timestamp to its calendar-day bucket, "YYYY-MM-DD".
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// hourKey floors a timestamp to the hour. Counting distinct hour keys per
// day yields the operational hours used by the productivity views.
func hourKey(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}
