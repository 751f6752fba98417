package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthsignal/symclust/internal/dataset"
)

// Report is one full analysis run over a dataset. Every reporter runs once,
// top to bottom, over the same immutable table.
type Report struct {
	RunID       string
	Dataset     string
	Path        string
	Rows        int
	Users       int
	From        time.Time
	To          time.Time
	GeneratedAt time.Time

	Basic          *BasicReport
	Demographics   *DemographicsReport
	Correlation    *CorrelationReport
	Temporal       *TemporalReport
	Features       *FeaturesReport
	Recommendation *Recommendation
}

// NextSteps is the fixed guidance epilogue appended to every report.
var NextSteps = []string{
	"Apply feature normalization before clustering",
	"Use K-means++ initialization for better results",
	"Validate clusters with silhouette analysis",
	"Test seasonal pattern recognition",
	"Evaluate rural-specific risk stratification",
}

// Run executes all reporters over the dataset and assembles the report.
func Run(ds *dataset.Dataset) *Report {
	from, to := ds.DateRange()
	rep := &Report{
		RunID:       uuid.NewString(),
		Dataset:     ds.Name,
		Path:        ds.Path,
		Rows:        ds.Len(),
		Users:       ds.UniqueUsers(),
		From:        from,
		To:          to,
		GeneratedAt: time.Now(),
	}
	rep.Basic = Basic(ds)
	rep.Demographics = Demographics(ds)
	rep.Correlation = Correlation(ds)
	rep.Temporal = Temporal(ds)
	rep.Features = Features(ds)
	rep.Recommendation = Recommend(rep.Features)
	return rep
}

// Summary is the machine-readable condensation of a report, written by
// `analyze --summary` as YAML.
type Summary struct {
	RunID       string    `yaml:"run_id"`
	Dataset     string    `yaml:"dataset"`
	Rows        int       `yaml:"rows"`
	Users       int       `yaml:"users"`
	From        time.Time `yaml:"from"`
	To          time.Time `yaml:"to"`
	GeneratedAt time.Time `yaml:"generated_at"`

	KMin              int      `yaml:"k_min"`
	KMax              int      `yaml:"k_max"`
	NormalizeFeatures []string `yaml:"normalize_features,omitempty"`

	Features []FeatureStat `yaml:"features"`
	Outliers []OutlierStat `yaml:"outliers,omitempty"`

	Importance []ImportanceStat `yaml:"importance"`

	NotablePairs []PairStat `yaml:"notable_correlations,omitempty"`
}

type FeatureStat struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
}

type OutlierStat struct {
	Name  string  `yaml:"name"`
	Count int     `yaml:"count"`
	Pct   float64 `yaml:"pct"`
}

type ImportanceStat struct {
	Name  string  `yaml:"name"`
	Score float64 `yaml:"score"`
}

type PairStat struct {
	A string  `yaml:"a"`
	B string  `yaml:"b"`
	R float64 `yaml:"r"`
}

// Summarize condenses the report for export and history storage.
func (r *Report) Summarize() *Summary {
	s := &Summary{
		RunID:             r.RunID,
		Dataset:           r.Dataset,
		Rows:              r.Rows,
		Users:             r.Users,
		From:              r.From,
		To:                r.To,
		GeneratedAt:       r.GeneratedAt,
		KMin:              r.Recommendation.KMin,
		KMax:              r.Recommendation.KMax,
		NormalizeFeatures: r.Recommendation.NormalizeFeatures,
	}
	for _, f := range r.Features.Summary {
		s.Features = append(s.Features, FeatureStat{
			Name: f.Name, Min: f.Min, Max: f.Max, Mean: f.Mean, Std: f.Std,
		})
	}
	for _, o := range r.Recommendation.Outliers {
		if o.Count == 0 {
			continue
		}
		s.Outliers = append(s.Outliers, OutlierStat{Name: o.Feature, Count: o.Count, Pct: o.Pct})
	}
	for _, im := range r.Recommendation.Importance {
		s.Importance = append(s.Importance, ImportanceStat{Name: im.Feature, Score: im.Score})
	}
	for _, p := range r.Correlation.Notable {
		s.NotablePairs = append(s.NotablePairs, PairStat{A: p.A, B: p.B, R: p.R})
	}
	return s
}
