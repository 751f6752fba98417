package analysis

import (
	"math"

	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/stats"
)

// CorrelationColumns is the fixed column set for the pairwise matrix.
var CorrelationColumns = []string{"severity", "sleep", "stress", "exercise", "age", "symptom_count"}

// notableThreshold is the |r| cutoff for reporting a pair.
const notableThreshold = 0.3

// CorrPair is one reported correlation, upper triangle only.
type CorrPair struct {
	A string
	B string
	R float64
}

// CorrelationReport carries the full matrix plus the pairs worth mentioning.
type CorrelationReport struct {
	Matrix  *stats.Matrix
	Notable []CorrPair // |r| > 0.3, each unordered pair at most once
}

// Correlation computes the full Pearson matrix over CorrelationColumns and
// selects pairs with |r| strictly above the threshold. The whole matrix is
// retained for downstream use.
func Correlation(ds *dataset.Dataset) *CorrelationReport {
	cols := make([][]float64, len(CorrelationColumns))
	for i, name := range CorrelationColumns {
		cols[i] = numericColumn(ds, name)
	}
	m := stats.NewMatrix(CorrelationColumns, cols)

	rep := &CorrelationReport{Matrix: m}
	for i := 0; i < len(m.Columns); i++ {
		for j := i + 1; j < len(m.Columns); j++ {
			r := m.Values[i][j]
			if math.Abs(r) > notableThreshold {
				rep.Notable = append(rep.Notable, CorrPair{A: m.Columns[i], B: m.Columns[j], R: r})
			}
		}
	}
	return rep
}
