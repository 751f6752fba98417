package analysis

import (
	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/stats"
)

// FeatureNames fixes the feature order used everywhere: reports, CSV export,
// and importance ranking ties.
var FeatureNames = []string{
	"severity", "sleep", "stress", "exercise", "symptom_count", "age",
	"sleep_stress_ratio", "exercise_severity_ratio", "lifestyle_score",
}

// FeatureVector is the per-record input to the downstream clustering step.
// The 0.1 offsets and the /10 and /3 scalings are fixed policy.
type FeatureVector struct {
	Severity              float64
	Sleep                 float64
	Stress                float64
	Exercise              float64
	SymptomCount          float64
	Age                   float64
	SleepStressRatio      float64
	ExerciseSeverityRatio float64
	LifestyleScore        float64
}

// Derive builds the feature vector for one record.
func Derive(r dataset.Record) FeatureVector {
	return FeatureVector{
		Severity:              r.Severity,
		Sleep:                 r.Sleep,
		Stress:                r.Stress,
		Exercise:              r.Exercise,
		SymptomCount:          float64(r.SymptomCount),
		Age:                   r.Age,
		SleepStressRatio:      r.Sleep / (r.Stress + 0.1),
		ExerciseSeverityRatio: r.Exercise / (r.Severity + 0.1),
		LifestyleScore:        (r.Sleep + r.Exercise/10 - r.Stress) / 3,
	}
}

// Values returns the vector in FeatureNames order.
func (v FeatureVector) Values() []float64 {
	return []float64{
		v.Severity, v.Sleep, v.Stress, v.Exercise, v.SymptomCount, v.Age,
		v.SleepStressRatio, v.ExerciseSeverityRatio, v.LifestyleScore,
	}
}

// FeatureSummary is the descriptive summary of one feature column.
type FeatureSummary struct {
	Name     string
	Min      float64
	Max      float64
	Mean     float64
	Std      float64
	Variance float64
}

// FeaturesReport carries the derived vectors and their per-feature summaries.
type FeaturesReport struct {
	Vectors []FeatureVector
	Summary []FeatureSummary // FeatureNames order
}

// Features derives one vector per record and summarizes each feature column.
// The source dataset is left untouched; vectors are new values.
func Features(ds *dataset.Dataset) *FeaturesReport {
	rep := &FeaturesReport{Vectors: make([]FeatureVector, len(ds.Records))}
	for i, r := range ds.Records {
		rep.Vectors[i] = Derive(r)
	}
	for i, name := range FeatureNames {
		s := stats.Summarize(rep.Column(i))
		rep.Summary = append(rep.Summary, FeatureSummary{
			Name:     name,
			Min:      s.Min(),
			Max:      s.Max(),
			Mean:     s.Mean(),
			Std:      s.Std(),
			Variance: s.Variance(),
		})
	}
	return rep
}

// Column returns feature column i (FeatureNames order) across all vectors.
func (r *FeaturesReport) Column(i int) []float64 {
	out := make([]float64, len(r.Vectors))
	for j, v := range r.Vectors {
		out[j] = v.Values()[i]
	}
	return out
}
