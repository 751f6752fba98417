package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthsignal/symclust/internal/history"
)

var (
	histDBPath  string
	histDataset string
	histLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved analysis runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := histDBPath
		if dbPath == "" && cfg != nil {
			dbPath = cfg.HistoryDB
		}
		if dbPath == "" {
			return fmt.Errorf("no history db path (--db or config history_db)")
		}
		store, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()

		runs, err := store.List(cmd.Context(), histDataset, histLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No saved runs.")
			return nil
		}

		st, err := store.Stats(cmd.Context(), dbPath)
		if err == nil {
			fmt.Printf("%d run(s) over %d dataset(s) in %s\n\n", st.TotalRuns, st.Datasets, st.Path)
		}
		for _, r := range runs {
			fmt.Printf("%s  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Dataset)
			fmt.Printf("  run %s: %d rows, %d users, k %d-%d, %d outlier(s)\n",
				r.ID, r.Rows, r.Users, r.KMin, r.KMax, r.OutlierTotal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&histDBPath, "db", "", "history database path (overrides config)")
	historyCmd.Flags().StringVar(&histDataset, "dataset", "", "only show runs for this dataset name")
	historyCmd.Flags().IntVar(&histLimit, "limit", 20, "maximum runs to list")
}
