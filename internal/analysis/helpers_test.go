package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/healthsignal/symclust/internal/dataset"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

type recOpts struct {
	user     string
	ts       time.Time
	severity float64
	sleep    float64
	stress   float64
	exercise float64
	age      float64
	gender   string
	history  string
	symptoms []string
}

func makeRecord(o recOpts) dataset.Record {
	if o.user == "" {
		o.user = "u1"
	}
	if o.ts.IsZero() {
		o.ts = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	}
	if o.gender == "" {
		o.gender = "female"
	}
	if o.history == "" {
		o.history = "none"
	}
	return dataset.Record{
		UserID:         o.user,
		Timestamp:      o.ts,
		Severity:       o.severity,
		Sleep:          o.sleep,
		Stress:         o.stress,
		Exercise:       o.exercise,
		Age:            o.age,
		Gender:         o.gender,
		MedicalHistory: o.history,
		Symptoms:       o.symptoms,
		SymptomCount:   len(o.symptoms),
	}
}

func makeDataset(t *testing.T, recs ...dataset.Record) *dataset.Dataset {
	t.Helper()
	return &dataset.Dataset{Name: "test.csv", Path: "test.csv", Records: recs}
}
