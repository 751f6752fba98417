package analysis

import "testing"

func TestAgeGroupBoundaries(t *testing.T) {
	cases := []struct {
		age   float64
		label string
		ok    bool
	}{
		{24, "16-25", true},
		{25, "26-35", true},
		{34, "26-35", true},
		{35, "36-45", true},
		{64, "56-65", true},
		{65, "65+", true},
		{99, "65+", true},
		{100, "", false},
		{-1, "", false},
	}
	for _, c := range cases {
		label, ok := AgeGroup(c.age)
		if label != c.label || ok != c.ok {
			t.Fatalf("AgeGroup(%v) = %q,%v, want %q,%v", c.age, label, ok, c.label, c.ok)
		}
	}
}

// The first bin starts at 0 but carries the inherited label "16-25". This
// test pins the mismatch so nobody "fixes" the label without noticing the
// bin edges stayed put.
func TestAgeGroupLabelCoversBinStartingAtZero(t *testing.T) {
	label, ok := AgeGroup(0)
	if !ok || label != "16-25" {
		t.Fatalf("AgeGroup(0) = %q,%v, want the 16-25 label", label, ok)
	}
	label, ok = AgeGroup(15)
	if !ok || label != "16-25" {
		t.Fatalf("AgeGroup(15) = %q,%v, want the 16-25 label", label, ok)
	}
}

func TestDemographicsDistribution(t *testing.T) {
	ds := makeDataset(t,
		makeRecord(recOpts{age: 24, gender: "female", history: "none"}),
		makeRecord(recOpts{age: 25, gender: "male", history: "diabetes"}),
		makeRecord(recOpts{age: 40, gender: "female", history: "diabetes"}),
		makeRecord(recOpts{age: 100, gender: "female", history: "asthma"}),
	)
	rep := Demographics(ds)

	if rep.Total != 4 {
		t.Fatalf("total = %d", rep.Total)
	}
	if len(rep.AgeGroups) != 6 {
		t.Fatalf("age groups = %d, want all six buckets", len(rep.AgeGroups))
	}
	byLabel := map[string]AgeBucket{}
	for _, g := range rep.AgeGroups {
		byLabel[g.Label] = g
	}
	if byLabel["16-25"].Count != 1 || byLabel["26-35"].Count != 1 || byLabel["36-45"].Count != 1 {
		t.Fatalf("age counts = %#v", rep.AgeGroups)
	}
	if byLabel["65+"].Count != 0 {
		t.Fatalf("65+ count = %d, want 0 (age 100 is out of all bins)", byLabel["65+"].Count)
	}
	if rep.Unbinned != 1 {
		t.Fatalf("unbinned = %d, want 1", rep.Unbinned)
	}
	if !almostEqual(byLabel["16-25"].Pct, 25, 1e-9) {
		t.Fatalf("16-25 pct = %f", byLabel["16-25"].Pct)
	}

	if len(rep.Genders) != 2 || rep.Genders[0].Value != "female" || rep.Genders[0].Count != 3 {
		t.Fatalf("genders = %#v", rep.Genders)
	}

	if rep.NoHistory != 1 || rep.WithHistory != 3 {
		t.Fatalf("history split = %d/%d", rep.NoHistory, rep.WithHistory)
	}
	if !almostEqual(rep.NoHistoryPct, 25, 1e-9) || !almostEqual(rep.WithHistoryPct, 75, 1e-9) {
		t.Fatalf("history pcts = %f/%f", rep.NoHistoryPct, rep.WithHistoryPct)
	}
	if len(rep.Conditions) != 2 || rep.Conditions[0].Value != "diabetes" || rep.Conditions[0].Count != 2 {
		t.Fatalf("conditions = %#v", rep.Conditions)
	}
	for _, c := range rep.Conditions {
		if c.Value == NoHistorySentinel {
			t.Fatalf("sentinel leaked into conditions: %#v", rep.Conditions)
		}
	}
}

func TestDemographicsConditionsCapAtTen(t *testing.T) {
	var recs []recOpts
	for i := 0; i < 12; i++ {
		recs = append(recs, recOpts{age: 30, history: string(rune('a' + i))})
	}
	ds := makeDataset(t)
	for _, o := range recs {
		ds.Records = append(ds.Records, makeRecord(o))
	}
	rep := Demographics(ds)
	if len(rep.Conditions) != 10 {
		t.Fatalf("conditions = %d, want capped at 10", len(rep.Conditions))
	}
}
