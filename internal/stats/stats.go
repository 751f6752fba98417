// Package stats holds the small set of descriptive-statistics primitives the
// reporters share: streaming summaries, interpolated quantiles, Pearson
// correlation, and order-preserving counting.
package stats

import (
	"math"
	"sort"
)

// Summary accumulates count/min/max and mean/std via Welford's method.
// Std is the sample standard deviation (n-1 denominator).
type Summary struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

// Add folds one value into the summary.
func (s *Summary) Add(x float64) {
	if s.n == 0 {
		s.min, s.max = x, x
	} else {
		if x < s.min {
			s.min = x
		}
		if x > s.max {
			s.max = x
		}
	}
	s.n++
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)
}

func (s *Summary) Count() int    { return s.n }
func (s *Summary) Mean() float64 { return s.mean }

func (s *Summary) Min() float64 {
	if s.n == 0 {
		return 0
	}
	return s.min
}

func (s *Summary) Max() float64 {
	if s.n == 0 {
		return 0
	}
	return s.max
}

// Std returns the sample standard deviation, 0 for fewer than two values.
func (s *Summary) Std() float64 {
	if s.n < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.n-1))
}

// Variance returns the sample variance, 0 for fewer than two values.
func (s *Summary) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

// Summarize folds a whole slice into a Summary.
func Summarize(vals []float64) Summary {
	var s Summary
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Quantile returns the q-quantile of vals using linear interpolation between
// closest ranks. vals need not be sorted; it is not modified.
func Quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	return quantileSorted(cp, q)
}

func quantileSorted(sorted []float64, q float64) float64 {
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Pearson computes the correlation coefficient of two equal-length columns.
// Degenerate input (mismatched or short lengths, zero variance) yields 0.
func Pearson(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}
	sx := Summarize(xs)
	sy := Summarize(ys)
	mx := sx.Mean()
	my := sy.Mean()
	var num, dx2, dy2 float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		num += dx * dy
		dx2 += dx * dx
		dy2 += dy * dy
	}
	denom := math.Sqrt(dx2 * dy2)
	if denom == 0 {
		return 0
	}
	r := num / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}

// Matrix is a symmetric Pearson correlation matrix over named columns.
type Matrix struct {
	Columns []string
	Values  [][]float64 // row-major, Values[i][j]
}

// NewMatrix computes the full pairwise matrix. The diagonal is 1.
func NewMatrix(names []string, cols [][]float64) *Matrix {
	n := len(names)
	m := &Matrix{Columns: names, Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Pearson(cols[i], cols[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

// Counter counts string occurrences, remembering first-seen order so that
// frequency ties resolve deterministically.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for v.
func (c *Counter) Add(v string) {
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

// Count returns the count for v.
func (c *Counter) Count(v string) int { return c.counts[v] }

// Len returns the number of distinct values seen.
func (c *Counter) Len() int { return len(c.order) }

// Entry is one counted value.
type Entry struct {
	Value string
	Count int
}

// Top returns up to n entries ordered by count descending; ties keep
// first-seen order.
func (c *Counter) Top(n int) []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Entry{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
