package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-operator answer history",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events := st.EventRepo()
		stats, err := events.OperatorStats(ctx)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}
		sessions, err := events.SessionCount(ctx)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No drills recorded yet.")
			return nil
		}

		fmt.Printf("Drills: %d\n\n", sessions)

		ops := make([]string, 0, len(stats))
		for op := range stats {
			ops = append(ops, op)
		}
		sort.Strings(ops)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OP\tATTEMPTS\tCORRECT\tACCURACY\tAVG TIME")
		for _, op := range ops {
			s := stats[op]
			fmt.Fprintf(w, "%s\t%d\t%d\t%.0f%%\t%.1fs\n",
				s.Operator, s.Attempts, s.Correct, s.Accuracy()*100, s.MeanTimeMs/1000)
		}
		return w.Flush()
	},
}
