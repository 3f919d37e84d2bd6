package core

import (
	"math"
	"sort"
	"time"

	"github.com/oreops/haulstat/schema"
)

// dailyStat accumulates one calendar day of activity.
type dailyStat struct {
	month  string
	tonnes float64
	hours  map[time.Time]bool
	cycles int
}

// monthlyProductivity derives tonnes-per-hour productivity from timestamp
// density. For every calendar day it sums mass (converted to tonnes),
// counts distinct operating hours, and computes a daily rate; per month it
// then reports the tonnes total and the mean of the daily rates. Averaging
// daily rates instead of recomputing tonnes/hours from monthly totals is
// deliberate: it keeps a handful of very high-throughput days from
// dominating the monthly figure.
//
// Month-over-month growth is computed for both measures; the first period
// has no predecessor and reports 0, never NaN.
//
// Rows with a null mass or null input type are dropped first.
func monthlyProductivity(records []schema.Record) []schema.ProductivityRow {
	days := make(map[string]*dailyStat)
	for _, r := range records {
		if r.Mass == nil || r.InputType == "" {
			continue
		}
		k := dayKey(r.StartTime)
		d := days[k]
		if d == nil {
			d = &dailyStat{month: monthKey(r.StartTime), hours: make(map[time.Time]bool)}
			days[k] = d
		}
		d.tonnes += *r.Mass / 1000
		d.hours[hourKey(r.StartTime)] = true
		d.cycles++
	}
	if len(days) == 0 {
		return nil
	}

	// Roll the per-day stats up by month.
	type monthStat struct {
		tonnes     float64
		rateSum    float64
		rateDays   int
		hoursTotal int
		cycles     int
	}
	months := make(map[string]*monthStat)
	for _, d := range days {
		m := months[d.month]
		if m == nil {
			m = &monthStat{}
			months[d.month] = m
		}
		rate := 0.0
		if len(d.hours) > 0 {
			rate = d.tonnes / float64(len(d.hours))
		}
		m.tonnes += round2(d.tonnes)
		m.rateSum += round2(rate)
		m.rateDays++
		m.hoursTotal += len(d.hours)
		m.cycles += d.cycles
	}

	periods := make([]string, 0, len(months))
	for p := range months {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]schema.ProductivityRow, 0, len(periods))
	for i, p := range periods {
		m := months[p]
		row := schema.ProductivityRow{
			Period:           p,
			TotalTonnes:      round2(m.tonnes),
			AvgTonnesPerHour: round2(m.rateSum / float64(m.rateDays)),
			OperationalHours: m.hoursTotal,
			TotalCycles:      m.cycles,
		}
		if i > 0 {
			row.GrowthTonnesPct = pctChange(out[i-1].TotalTonnes, row.TotalTonnes)
			row.GrowthRatePct = pctChange(out[i-1].AvgTonnesPerHour, row.AvgTonnesPerHour)
		}
		out = append(out, row)
	}
	return out
}

// equipmentDailyProductivity reports per-equipment, per-day throughput.
// Rows with a null mass or a missing/placeholder equipment tag are dropped.
// Output is one row per (day, equipment), sorted by day then equipment; the
// view is intentionally not rolled up to months, since per-equipment daily
// variance is its analytical point.
func equipmentDailyProductivity(records []schema.Record) []schema.EquipmentDayRow {
	type key struct {
		day       string
		equipment string
	}
	type stat struct {
		tonnes float64
		hours  map[time.Time]bool
		cycles int
	}
	groups := make(map[key]*stat)
	for _, r := range records {
		if r.Mass == nil || isPlaceholder(r.LoadingTag) {
			continue
		}
		k := key{dayKey(r.StartTime), r.LoadingTag}
		s := groups[k]
		if s == nil {
			s = &stat{hours: make(map[time.Time]bool)}
			groups[k] = s
		}
		s.tonnes += *r.Mass / 1000
		s.hours[hourKey(r.StartTime)] = true
		s.cycles++
	}

	out := make([]schema.EquipmentDayRow, 0, len(groups))
	for k, s := range groups {
		hours := len(s.hours)
		row := schema.EquipmentDayRow{
			Day:              k.day,
			Equipment:        k.equipment,
			TotalTonnes:      round2(s.tonnes),
			OperationalHours: hours,
			TotalCycles:      s.cycles,
		}
		if hours > 0 {
			row.TonnesPerHour = round2(s.tonnes / float64(hours))
			row.CyclesPerHour = round1(float64(s.cycles) / float64(hours))
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Equipment < out[j].Equipment
	})
	return out
}

// pctChange computes the percentage growth from prev to curr, with 0 when
// there is no meaningful previous value.
func pctChange(prev, curr float64) float64 {
	if prev == 0 {
		return 0
	}
	return (curr - prev) / prev * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
