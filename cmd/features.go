package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/healthsignal/symclust/internal/analysis"
	"github.com/healthsignal/symclust/internal/dataset"
)

var featOutputPath string

var featuresCmd = &cobra.Command{
	Use:   "features <file>",
	Short: "Export the derived clustering feature vectors as CSV",
	Long: `Features derives one vector per record (base columns plus
sleep_stress_ratio, exercise_severity_ratio, lifestyle_score) and writes a
headered CSV, the hand-off artifact for the k-means training step.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		fr := analysis.Features(ds)

		out := os.Stdout
		if featOutputPath != "" {
			f, err := os.Create(featOutputPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		if err := w.Write(analysis.FeatureNames); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		row := make([]string, len(analysis.FeatureNames))
		for _, v := range fr.Vectors {
			for i, x := range v.Values() {
				row[i] = strconv.FormatFloat(x, 'f', -1, 64)
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("flush csv: %w", err)
		}
		if featOutputPath != "" {
			fmt.Printf("✓ Wrote %d feature vectors to %s\n", len(fr.Vectors), featOutputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
	featuresCmd.Flags().StringVarP(&featOutputPath, "output", "o", "", "write the feature CSV to a file instead of stdout")
}
