package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/healthsignal/symclust/internal/analysis"
	"github.com/healthsignal/symclust/internal/dataset"
	"github.com/healthsignal/symclust/internal/history"
)

var (
	anaOutputPath  string
	anaSummaryPath string
	anaSave        bool
	anaDBPath      string
	anaQuiet       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze symptom datasets and print a full report per file",
	Long: `Analyze runs every reporter over each dataset in sequence. With no
arguments the configured dataset list is used. A failure on one file is
reported and the loop continues with the next file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := args
		if len(files) == 0 && cfg != nil {
			files = cfg.Datasets
		}
		if len(files) == 0 {
			return fmt.Errorf("no datasets given and none configured")
		}

		var store *history.Store
		if anaSave {
			dbPath := anaDBPath
			if dbPath == "" && cfg != nil {
				dbPath = cfg.HistoryDB
			}
			if dbPath == "" {
				return fmt.Errorf("--save requires a history db path (--db or config history_db)")
			}
			s, err := history.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			store = s
			defer store.Close()
		}

		styles := analysis.DefaultStyles()
		if (cfg != nil && cfg.NoColor) || noColor || anaOutputPath != "" {
			styles = analysis.PlainStyles()
		}

		failures := 0
		total := len(files)
		for i, path := range files {
			if !anaQuiet && total > 1 {
				fmt.Printf("[%d/%d] Analyzing %s...\n", i+1, total, path)
			}
			if err := analyzeOne(cmd.Context(), path, styles, store); err != nil {
				failures++
				fmt.Fprintf(os.Stderr, "✗ Error analyzing %s: %v\n", path, err)
				continue
			}
		}
		if failures == total {
			return fmt.Errorf("all %d dataset(s) failed", total)
		}
		return nil
	},
}

func analyzeOne(ctx context.Context, path string, styles analysis.Styles, store *history.Store) error {
	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}
	rep := analysis.Run(ds)

	if anaOutputPath != "" {
		f, err := os.Create(outputPathFor(anaOutputPath, path))
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := analysis.Render(f, rep, analysis.PlainStyles()); err != nil {
			f.Close()
			return fmt.Errorf("write output: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	} else if !anaQuiet {
		if err := analysis.Render(os.Stdout, rep, styles); err != nil {
			return err
		}
	}

	if anaSummaryPath != "" {
		b, err := yaml.Marshal(rep.Summarize())
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		if err := os.WriteFile(outputPathFor(anaSummaryPath, path), b, 0o644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if store != nil {
		if err := store.Save(ctx, history.FromReport(rep)); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		if !anaQuiet {
			fmt.Printf("✓ Saved run %s for %s\n", rep.RunID, rep.Dataset)
		}
	}
	return nil
}

// outputPathFor disambiguates a fixed output path when several datasets are
// analyzed in one invocation by inserting the dataset base name.
func outputPathFor(out, datasetPath string) string {
	if !strings.Contains(out, "%s") {
		return out
	}
	base := datasetPath
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".csv")
	return fmt.Sprintf(out, base)
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "write the report to a file instead of stdout ('%s' expands to the dataset name)")
	analyzeCmd.Flags().StringVar(&anaSummaryPath, "summary", "", "write a YAML machine summary to this path ('%s' expands to the dataset name)")
	analyzeCmd.Flags().BoolVar(&anaSave, "save", false, "record the run in the history database")
	analyzeCmd.Flags().StringVar(&anaDBPath, "db", "", "history database path (overrides config)")
	analyzeCmd.Flags().BoolVar(&anaQuiet, "quiet", false, "suppress console report and progress")
}
