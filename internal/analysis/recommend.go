package analysis

import (
	"math"
	"sort"

	"github.com/healthsignal/symclust/internal/stats"
)

// Heuristic constants for the clustering recommendations.
const (
	normalizeRangeLimit = 10    // (max-min) above this flags a feature for scaling
	tukeyFactor         = 1.5   // IQR multiplier for the outlier fences
	importanceOffset    = 0.001 // mean offset in the CV importance proxy
)

// OutlierCount is the Tukey-fence outlier tally for one feature.
type OutlierCount struct {
	Feature string
	Count   int
	Pct     float64
}

// ImportanceScore ranks a feature by coefficient of variation.
type ImportanceScore struct {
	Feature string
	Score   float64
}

// Recommendation is the heuristic guidance for the k-means step.
type Recommendation struct {
	Samples int
	KMin    int
	KMax    int

	NormalizeFeatures []string // features whose range exceeds the limit

	Outliers      []OutlierCount // FeatureNames order, zero counts included
	CleanOutliers bool           // no feature has any outlier

	Importance []ImportanceScore // descending, feature order breaks ties
}

// KRange recommends the cluster-count search range for n samples:
// k_min = max(2, floor(sqrt(n/2))), k_max = min(10, floor(sqrt(n))).
func KRange(n int) (kMin, kMax int) {
	kMin = int(math.Sqrt(float64(n) / 2))
	if kMin < 2 {
		kMin = 2
	}
	kMax = int(math.Sqrt(float64(n)))
	if kMax > 10 {
		kMax = 10
	}
	return kMin, kMax
}

// TukeyOutliers counts values outside [Q1-1.5*IQR, Q3+1.5*IQR], with
// quartiles computed by linear interpolation.
func TukeyOutliers(vals []float64) int {
	if len(vals) == 0 {
		return 0
	}
	q1 := stats.Quantile(vals, 0.25)
	q3 := stats.Quantile(vals, 0.75)
	iqr := q3 - q1
	lo := q1 - tukeyFactor*iqr
	hi := q3 + tukeyFactor*iqr
	count := 0
	for _, v := range vals {
		if v < lo || v > hi {
			count++
		}
	}
	return count
}

// Recommend derives the clustering guidance from the feature table.
func Recommend(fr *FeaturesReport) *Recommendation {
	n := len(fr.Vectors)
	rec := &Recommendation{Samples: n, CleanOutliers: true}
	rec.KMin, rec.KMax = KRange(n)

	for i, s := range fr.Summary {
		if s.Max-s.Min > normalizeRangeLimit {
			rec.NormalizeFeatures = append(rec.NormalizeFeatures, s.Name)
		}

		count := TukeyOutliers(fr.Column(i))
		if count > 0 {
			rec.CleanOutliers = false
		}
		rec.Outliers = append(rec.Outliers, OutlierCount{
			Feature: s.Name,
			Count:   count,
			Pct:     pct(count, n),
		})

		rec.Importance = append(rec.Importance, ImportanceScore{
			Feature: s.Name,
			Score:   s.Std / (s.Mean + importanceOffset),
		})
	}

	sort.SliceStable(rec.Importance, func(i, j int) bool {
		return rec.Importance[i].Score > rec.Importance[j].Score
	})
	return rec
}
