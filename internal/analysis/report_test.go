package analysis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/healthsignal/symclust/internal/dataset"
)

var e2eRows = []string{
	`userId,timestamp,symptoms,severity,sleep,stress,exercise,age,gender,medical_history`,
	`u1,2024-03-04T08:00:00Z,"[""headache"",""fever""]",2,8,4,30,24,female,none`,
	`u2,2024-03-05 14:30:00,"[""headache""]",4,6,6,10,25,male,diabetes`,
	`u3,2024-03-06 20:45:00,"[]",9,5,8,0,99,female,asthma`,
}

func loadE2E(t *testing.T) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synthetic.csv")
	if err := os.WriteFile(path, []byte(strings.Join(e2eRows, "\n")), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ds
}

func TestRunAssemblesAllSections(t *testing.T) {
	ds := loadE2E(t)
	rep := Run(ds)

	if rep.RunID == "" {
		t.Fatal("empty run id")
	}
	if rep.Dataset != "synthetic.csv" || rep.Rows != 3 || rep.Users != 3 {
		t.Fatalf("overview = %#v", rep)
	}
	if rep.From.Day() != 4 || rep.To.Day() != 6 {
		t.Fatalf("date range = %v to %v", rep.From, rep.To)
	}
	if rep.Basic == nil || rep.Demographics == nil || rep.Correlation == nil ||
		rep.Temporal == nil || rep.Features == nil || rep.Recommendation == nil {
		t.Fatal("missing section in report")
	}

	// Severities 2, 4, 9: mean 5, sample std sqrt(13), min 2, max 9.
	sev := rep.Basic.Columns[0]
	if sev.Name != "severity" {
		t.Fatalf("first column = %q", sev.Name)
	}
	if !almostEqual(sev.Mean, 5, 1e-9) || sev.Min != 2 || sev.Max != 9 {
		t.Fatalf("severity stats = %#v", sev)
	}
}

func TestRenderPrintsExactBasicStats(t *testing.T) {
	ds := loadE2E(t)
	rep := Run(ds)

	var b strings.Builder
	if err := Render(&b, rep, PlainStyles()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	// Direct computation over the 3 severities: mean 5.00, std 3.61, min 2.0, max 9.0.
	for _, want := range []string{
		"SEVERITY",
		"Mean: 5.00",
		"Std:  3.61",
		"Min:  2.0",
		"Max:  9.0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderSectionPresenceAndContent(t *testing.T) {
	ds := loadE2E(t)
	rep := Run(ds)

	var b strings.Builder
	if err := Render(&b, rep, PlainStyles()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"DATASET ANALYSIS REPORT",
		"BASIC STATISTICS",
		"DEMOGRAPHICS",
		"CORRELATIONS",
		"TEMPORAL PATTERNS",
		"CLUSTERING FEATURES",
		"CLUSTERING RECOMMENDATIONS",
		"NEXT STEPS",
		"headache: 2 occurrences",
		"16-25: 1 (33.3%)",
		"26-35: 1 (33.3%)",
		"65+: 1 (33.3%)",
		" 8:00 (morning): 1 records",
		"20:00 (night): 1 records",
		"Monday: 1 records",
		"Peak severity hour: 20:00 (avg: 9.00)",
		"Lowest severity hour: 8:00 (avg: 2.00)",
		// n=3: k_min=max(2,floor(sqrt(1.5)))=2, k_max=min(10,floor(sqrt(3)))=1.
		"Recommended K range: 2 to 1 (n=3)",
		"1. Apply feature normalization before clustering",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q in:\n%s", want, out)
		}
	}
}

func TestSummarizeCondensesReport(t *testing.T) {
	ds := loadE2E(t)
	rep := Run(ds)
	s := rep.Summarize()

	if s.RunID != rep.RunID || s.Dataset != rep.Dataset || s.Rows != 3 {
		t.Fatalf("summary header = %#v", s)
	}
	if s.KMin != rep.Recommendation.KMin || s.KMax != rep.Recommendation.KMax {
		t.Fatalf("summary k range = %d..%d", s.KMin, s.KMax)
	}
	if len(s.Features) != len(FeatureNames) {
		t.Fatalf("summary features = %d", len(s.Features))
	}
	if len(s.Importance) != len(FeatureNames) {
		t.Fatalf("summary importance = %d", len(s.Importance))
	}
	for _, o := range s.Outliers {
		if o.Count == 0 {
			t.Fatalf("zero-count outlier leaked into summary: %#v", s.Outliers)
		}
	}
}
