package analysis

import (
	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/stats"
)

// Age bins are right-open: [0,25) [25,35) [35,45) [45,55) [55,65) [65,100).
// The first label reads "16-25" even though its bin starts at 0; the label
// set is inherited as-is and intentionally left unchanged.
var (
	ageBinEdges  = []float64{0, 25, 35, 45, 55, 65, 100}
	ageBinLabels = []string{"16-25", "26-35", "36-45", "46-55", "56-65", "65+"}
)

// NoHistorySentinel marks records without a medical history.
const NoHistorySentinel = "none"

// AgeBucket is one age-group share, including zero-count buckets.
type AgeBucket struct {
	Label string
	Count int
	Pct   float64
}

// CategoryShare is one categorical value with its count and percentage.
type CategoryShare struct {
	Value string
	Count int
	Pct   float64
}

// DemographicsReport covers age, gender, and medical-history distributions.
type DemographicsReport struct {
	Total     int
	AgeGroups []AgeBucket // fixed label order, all six buckets present
	Unbinned  int         // ages outside every bin (e.g. 100+), surfaced not dropped

	Genders []CategoryShare // count descending, first-seen ties

	NoHistory      int
	WithHistory    int
	NoHistoryPct   float64
	WithHistoryPct float64
	Conditions     []CategoryShare // up to 10 most frequent non-"none" values
}

// AgeGroup maps an age to its bucket label. ok is false for ages outside
// every bin (age < 0 or age >= 100).
func AgeGroup(age float64) (label string, ok bool) {
	for i := 0; i < len(ageBinEdges)-1; i++ {
		if age >= ageBinEdges[i] && age < ageBinEdges[i+1] {
			return ageBinLabels[i], true
		}
	}
	return "", false
}

// Demographics computes the age, gender, and medical-history breakdowns.
func Demographics(ds *dataset.Dataset) *DemographicsReport {
	rep := &DemographicsReport{Total: ds.Len()}

	ageCounts := make(map[string]int, len(ageBinLabels))
	genders := stats.NewCounter()
	history := stats.NewCounter()
	for _, r := range ds.Records {
		if label, ok := AgeGroup(r.Age); ok {
			ageCounts[label]++
		} else {
			rep.Unbinned++
		}
		genders.Add(r.Gender)
		history.Add(r.MedicalHistory)
	}

	for _, label := range ageBinLabels {
		rep.AgeGroups = append(rep.AgeGroups, AgeBucket{
			Label: label,
			Count: ageCounts[label],
			Pct:   pct(ageCounts[label], rep.Total),
		})
	}

	for _, e := range genders.Top(0) {
		rep.Genders = append(rep.Genders, CategoryShare{
			Value: e.Value,
			Count: e.Count,
			Pct:   pct(e.Count, rep.Total),
		})
	}

	rep.NoHistory = history.Count(NoHistorySentinel)
	rep.WithHistory = rep.Total - rep.NoHistory
	rep.NoHistoryPct = pct(rep.NoHistory, rep.Total)
	rep.WithHistoryPct = pct(rep.WithHistory, rep.Total)
	for _, e := range history.Top(0) {
		if e.Value == NoHistorySentinel {
			continue
		}
		rep.Conditions = append(rep.Conditions, CategoryShare{
			Value: e.Value,
			Count: e.Count,
			Pct:   pct(e.Count, rep.Total),
		})
		if len(rep.Conditions) == 10 {
			break
		}
	}
	return rep
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
