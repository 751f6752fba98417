package analysis

import (
	"time"

	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/stats"
)

// dayOrder fixes the Monday-first reporting order.
var dayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// HourCount is one hour-of-day bucket with its qualitative period label.
type HourCount struct {
	Hour   int
	Period string
	Count  int
}

// DayCount is one day-of-week bucket; zero-count days are omitted.
type DayCount struct {
	Day   string
	Count int
}

// MonthCount is one calendar-month bucket; zero-count months are omitted.
type MonthCount struct {
	Month time.Month
	Count int
}

// HourSeverity is the mean severity of records reported in one hour.
type HourSeverity struct {
	Hour int
	Mean float64
}

// TemporalReport covers when records were submitted and how severity moves
// across the day. Peak/low hour ties resolve first occurrence wins: hours are
// scanned in ascending order and only strict improvements replace the pick.
type TemporalReport struct {
	Hours  []HourCount  // ascending hour, present hours only
	Days   []DayCount   // Monday-first, zero days skipped
	Months []MonthCount // ascending month, present months only

	SeverityByHour []HourSeverity // ascending hour
	PeakHour       int
	PeakMean       float64
	LowHour        int
	LowMean        float64
}

// TimePeriod maps an hour of day to its fixed qualitative label.
func TimePeriod(hour int) string {
	switch {
	case hour >= 5 && hour < 8:
		return "early morning"
	case hour >= 8 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 14:
		return "noon"
	case hour >= 14 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 20:
		return "evening"
	default:
		return "night"
	}
}

// Temporal derives hour/day/month from record timestamps and groups counts
// and mean severity accordingly.
func Temporal(ds *dataset.Dataset) *TemporalReport {
	rep := &TemporalReport{}

	hourCounts := map[int]int{}
	dayCounts := map[string]int{}
	monthCounts := map[time.Month]int{}
	severity := map[int]*stats.Summary{}
	for _, r := range ds.Records {
		h := r.Timestamp.Hour()
		hourCounts[h]++
		dayCounts[r.Timestamp.Weekday().String()]++
		monthCounts[r.Timestamp.Month()]++
		if severity[h] == nil {
			severity[h] = &stats.Summary{}
		}
		severity[h].Add(r.Severity)
	}

	first := true
	for h := 0; h < 24; h++ {
		if hourCounts[h] > 0 {
			rep.Hours = append(rep.Hours, HourCount{Hour: h, Period: TimePeriod(h), Count: hourCounts[h]})
		}
		s := severity[h]
		if s == nil {
			continue
		}
		mean := s.Mean()
		rep.SeverityByHour = append(rep.SeverityByHour, HourSeverity{Hour: h, Mean: mean})
		if first || mean > rep.PeakMean {
			rep.PeakHour, rep.PeakMean = h, mean
		}
		if first || mean < rep.LowMean {
			rep.LowHour, rep.LowMean = h, mean
		}
		first = false
	}

	for _, day := range dayOrder {
		if n := dayCounts[day]; n > 0 {
			rep.Days = append(rep.Days, DayCount{Day: day, Count: n})
		}
	}
	for m := time.January; m <= time.December; m++ {
		if n := monthCounts[m]; n > 0 {
			rep.Months = append(rep.Months, MonthCount{Month: m, Count: n})
		}
	}
	return rep
}
