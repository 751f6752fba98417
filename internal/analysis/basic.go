package analysis

import (
	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/stats"
)

// Base numeric columns summarized by the basic report.
var basicColumns = []string{"severity", "sleep", "stress", "exercise", "age"}

// ColumnStats is the descriptive summary of one numeric column.
type ColumnStats struct {
	Name string
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// SymptomStats summarizes the per-record symptom lists.
type SymptomStats struct {
	MeanPerRecord float64
	MaxPerRecord  int
	ZeroRecords   int
	Top           []stats.Entry // up to 10, count descending, first-seen ties
}

// BasicReport covers the numeric columns and the symptom distribution.
type BasicReport struct {
	Columns  []ColumnStats
	Symptoms SymptomStats
}

// Basic computes mean/std/min/max for each base column, the symptom-count
// distribution, and the ten most frequent symptom tokens.
func Basic(ds *dataset.Dataset) *BasicReport {
	rep := &BasicReport{}

	for _, name := range basicColumns {
		s := stats.Summarize(numericColumn(ds, name))
		rep.Columns = append(rep.Columns, ColumnStats{
			Name: name,
			Mean: s.Mean(),
			Std:  s.Std(),
			Min:  s.Min(),
			Max:  s.Max(),
		})
	}

	var counts stats.Summary
	tokens := stats.NewCounter()
	for _, r := range ds.Records {
		counts.Add(float64(r.SymptomCount))
		if r.SymptomCount == 0 {
			rep.Symptoms.ZeroRecords++
		}
		for _, sym := range r.Symptoms {
			tokens.Add(sym)
		}
	}
	rep.Symptoms.MeanPerRecord = counts.Mean()
	rep.Symptoms.MaxPerRecord = int(counts.Max())
	rep.Symptoms.Top = tokens.Top(10)
	return rep
}

// numericColumn extracts one base column as a float slice.
func numericColumn(ds *dataset.Dataset, name string) []float64 {
	out := make([]float64, len(ds.Records))
	for i, r := range ds.Records {
		switch name {
		case "severity":
			out[i] = r.Severity
		case "sleep":
			out[i] = r.Sleep
		case "stress":
			out[i] = r.Stress
		case "exercise":
			out[i] = r.Exercise
		case "age":
			out[i] = r.Age
		case "symptom_count":
			out[i] = float64(r.SymptomCount)
		}
	}
	return out
}
