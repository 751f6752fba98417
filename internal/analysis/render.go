package analysis

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the renderer's lipgloss styles so --no-color can swap in
// zero-value styles without touching the section writers.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Warn    lipgloss.Style
	OK      lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")),
		Warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		OK:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
	}
}

// PlainStyles returns unstyled passthrough styles for --no-color or file
// output.
func PlainStyles() Styles { return Styles{} }

const sectionRule = "=================================================="

// Render writes the full report as sectioned console text, in the fixed
// order: overview, basic statistics, demographics, correlations, temporal
// patterns, clustering features, recommendations, next steps.
func Render(w io.Writer, r *Report, st Styles) error {
	var b strings.Builder

	section := func(name string) {
		b.WriteString("\n" + st.Section.Render(name) + "\n")
		b.WriteString(st.Dim.Render(sectionRule) + "\n")
	}

	b.WriteString(st.Title.Render("DATASET ANALYSIS REPORT") + "\n")
	b.WriteString(st.Dim.Render(sectionRule) + "\n")
	fmt.Fprintf(&b, "Dataset:   %s\n", r.Dataset)
	fmt.Fprintf(&b, "Run:       %s\n", r.RunID)
	fmt.Fprintf(&b, "Records:   %d\n", r.Rows)
	fmt.Fprintf(&b, "Users:     %d\n", r.Users)
	if !r.From.IsZero() {
		fmt.Fprintf(&b, "Range:     %s to %s\n",
			r.From.Format("2006-01-02 15:04:05"), r.To.Format("2006-01-02 15:04:05"))
	}

	section("BASIC STATISTICS")
	for _, c := range r.Basic.Columns {
		b.WriteString(st.Label.Render(strings.ToUpper(c.Name)) + "\n")
		fmt.Fprintf(&b, "  Mean: %.2f\n", c.Mean)
		fmt.Fprintf(&b, "  Std:  %.2f\n", c.Std)
		fmt.Fprintf(&b, "  Min:  %.1f\n", c.Min)
		fmt.Fprintf(&b, "  Max:  %.1f\n", c.Max)
	}
	b.WriteString(st.Label.Render("SYMPTOMS") + "\n")
	fmt.Fprintf(&b, "  Average symptoms per record: %.2f\n", r.Basic.Symptoms.MeanPerRecord)
	fmt.Fprintf(&b, "  Max symptoms in single record: %d\n", r.Basic.Symptoms.MaxPerRecord)
	fmt.Fprintf(&b, "  Records with no symptoms: %d\n", r.Basic.Symptoms.ZeroRecords)
	if len(r.Basic.Symptoms.Top) > 0 {
		b.WriteString("  Most common symptoms:\n")
		for _, e := range r.Basic.Symptoms.Top {
			fmt.Fprintf(&b, "    %s: %d occurrences\n", e.Value, e.Count)
		}
	}

	section("DEMOGRAPHICS")
	b.WriteString("Age distribution:\n")
	for _, g := range r.Demographics.AgeGroups {
		fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", g.Label, g.Count, g.Pct)
	}
	if r.Demographics.Unbinned > 0 {
		b.WriteString(st.Warn.Render(fmt.Sprintf("  unbinned ages: %d", r.Demographics.Unbinned)) + "\n")
	}
	b.WriteString("Gender distribution:\n")
	for _, g := range r.Demographics.Genders {
		fmt.Fprintf(&b, "  %s: %d (%.1f%%)\n", g.Value, g.Count, g.Pct)
	}
	b.WriteString("Medical history:\n")
	fmt.Fprintf(&b, "  No medical history: %d (%.1f%%)\n", r.Demographics.NoHistory, r.Demographics.NoHistoryPct)
	fmt.Fprintf(&b, "  With medical history: %d (%.1f%%)\n", r.Demographics.WithHistory, r.Demographics.WithHistoryPct)
	if len(r.Demographics.Conditions) > 0 {
		b.WriteString("  Most common conditions:\n")
		for _, c := range r.Demographics.Conditions {
			fmt.Fprintf(&b, "    %s: %d (%.1f%%)\n", c.Value, c.Count, c.Pct)
		}
	}

	section("CORRELATIONS")
	if len(r.Correlation.Notable) == 0 {
		b.WriteString(st.Dim.Render("No feature pairs with |r| > 0.3") + "\n")
	} else {
		b.WriteString("Feature correlations (|r| > 0.3):\n")
		for _, p := range r.Correlation.Notable {
			fmt.Fprintf(&b, "  %s ~ %s: %.3f\n", p.A, p.B, p.R)
		}
	}

	section("TEMPORAL PATTERNS")
	b.WriteString("Hours:\n")
	for _, h := range r.Temporal.Hours {
		fmt.Fprintf(&b, "  %2d:00 (%s): %d records\n", h.Hour, h.Period, h.Count)
	}
	b.WriteString("Days of week:\n")
	for _, d := range r.Temporal.Days {
		fmt.Fprintf(&b, "  %s: %d records\n", d.Day, d.Count)
	}
	if len(r.Temporal.Months) > 0 {
		b.WriteString("Months:\n")
		for _, m := range r.Temporal.Months {
			fmt.Fprintf(&b, "  %s: %d records\n", m.Month, m.Count)
		}
	}
	if len(r.Temporal.SeverityByHour) > 0 {
		b.WriteString("Severity patterns:\n")
		fmt.Fprintf(&b, "  Peak severity hour: %d:00 (avg: %.2f)\n", r.Temporal.PeakHour, r.Temporal.PeakMean)
		fmt.Fprintf(&b, "  Lowest severity hour: %d:00 (avg: %.2f)\n", r.Temporal.LowHour, r.Temporal.LowMean)
	}

	section("CLUSTERING FEATURES")
	for _, f := range r.Features.Summary {
		b.WriteString(st.Label.Render(f.Name) + "\n")
		fmt.Fprintf(&b, "  Range: [%.2f, %.2f]\n", f.Min, f.Max)
		fmt.Fprintf(&b, "  Mean ± Std: %.2f ± %.2f\n", f.Mean, f.Std)
		fmt.Fprintf(&b, "  Variance: %.3f\n", f.Variance)
	}

	section("CLUSTERING RECOMMENDATIONS")
	rec := r.Recommendation
	fmt.Fprintf(&b, "Recommended K range: %d to %d (n=%d)\n", rec.KMin, rec.KMax, rec.Samples)
	if len(rec.NormalizeFeatures) > 0 {
		b.WriteString(st.Warn.Render("Features needing normalization: "+strings.Join(rec.NormalizeFeatures, ", ")) + "\n")
	} else {
		b.WriteString(st.OK.Render("All features in reasonable ranges") + "\n")
	}
	if rec.CleanOutliers {
		b.WriteString(st.OK.Render("No significant outliers detected") + "\n")
	} else {
		b.WriteString("Outliers (Tukey fences, 1.5×IQR):\n")
		for _, o := range rec.Outliers {
			if o.Count == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %s: %d outliers (%.1f%%)\n", o.Feature, o.Count, o.Pct)
		}
	}
	b.WriteString("Feature importance (coefficient of variation):\n")
	for _, im := range rec.Importance {
		fmt.Fprintf(&b, "  %s: %.3f\n", im.Feature, im.Score)
	}

	section("NEXT STEPS")
	for i, step := range NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
