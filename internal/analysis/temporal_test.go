package analysis

import (
	"testing"
	"time"
)

func TestTimePeriodLabels(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "night"}, {4, "night"},
		{5, "early morning"}, {7, "early morning"},
		{8, "morning"}, {11, "morning"},
		{12, "noon"}, {13, "noon"},
		{14, "afternoon"}, {16, "afternoon"},
		{17, "evening"}, {19, "evening"},
		{20, "night"}, {23, "night"},
	}
	for _, c := range cases {
		if got := TimePeriod(c.hour); got != c.want {
			t.Fatalf("TimePeriod(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func ts(day, hour int) time.Time {
	// 2024-03-04 is a Monday.
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestTemporalCountsAndOrder(t *testing.T) {
	ds := makeDataset(t,
		makeRecord(recOpts{ts: ts(4, 8), severity: 2}),  // Monday
		makeRecord(recOpts{ts: ts(4, 8), severity: 4}),  // Monday
		makeRecord(recOpts{ts: ts(6, 20), severity: 9}), // Wednesday
	)
	rep := Temporal(ds)

	if len(rep.Hours) != 2 {
		t.Fatalf("hours = %#v", rep.Hours)
	}
	if rep.Hours[0].Hour != 8 || rep.Hours[0].Count != 2 || rep.Hours[0].Period != "morning" {
		t.Fatalf("hour 8 = %#v", rep.Hours[0])
	}
	if rep.Hours[1].Hour != 20 || rep.Hours[1].Period != "night" {
		t.Fatalf("hour 20 = %#v", rep.Hours[1])
	}

	// Monday-first order, Tuesday (zero) skipped entirely.
	if len(rep.Days) != 2 || rep.Days[0].Day != "Monday" || rep.Days[0].Count != 2 || rep.Days[1].Day != "Wednesday" {
		t.Fatalf("days = %#v", rep.Days)
	}

	if len(rep.Months) != 1 || rep.Months[0].Month != time.March || rep.Months[0].Count != 3 {
		t.Fatalf("months = %#v", rep.Months)
	}
}

func TestTemporalSeverityPeakAndLow(t *testing.T) {
	ds := makeDataset(t,
		makeRecord(recOpts{ts: ts(4, 8), severity: 2}),
		makeRecord(recOpts{ts: ts(4, 8), severity: 4}), // hour 8 mean 3
		makeRecord(recOpts{ts: ts(4, 14), severity: 9}),
		makeRecord(recOpts{ts: ts(4, 20), severity: 5}),
	)
	rep := Temporal(ds)
	if rep.PeakHour != 14 || !almostEqual(rep.PeakMean, 9, 1e-9) {
		t.Fatalf("peak = %d (%f)", rep.PeakHour, rep.PeakMean)
	}
	if rep.LowHour != 8 || !almostEqual(rep.LowMean, 3, 1e-9) {
		t.Fatalf("low = %d (%f)", rep.LowHour, rep.LowMean)
	}
}

// Equal means across hours: the first hour encountered (ascending scan) wins.
func TestTemporalSeverityTieFirstOccurrenceWins(t *testing.T) {
	ds := makeDataset(t,
		makeRecord(recOpts{ts: ts(4, 10), severity: 5}),
		makeRecord(recOpts{ts: ts(4, 15), severity: 5}),
		makeRecord(recOpts{ts: ts(4, 21), severity: 5}),
	)
	rep := Temporal(ds)
	if rep.PeakHour != 10 {
		t.Fatalf("peak tie = hour %d, want first occurrence 10", rep.PeakHour)
	}
	if rep.LowHour != 10 {
		t.Fatalf("low tie = hour %d, want first occurrence 10", rep.LowHour)
	}
}
