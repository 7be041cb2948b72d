package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/store"
)

var addCmd = &cobra.Command{
	Use:       "add (plus|minus|multiplication)",
	Short:     "Add a generator batch of facts to the catalog",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"plus", "minus", "multiplication"},
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

		var batch problem.Catalog
		switch args[0] {
		case "plus":
			batch = problem.AddAddition(nil)
		case "minus":
			batch = problem.AddSubtraction(nil)
		case "multiplication":
			batch = problem.AddMultiplication(nil)
		}

		if err := st.ProblemRepo().Append(ctx, batch); err != nil {
			return fmt.Errorf("append batch: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"operator": args[0],
			"count":    len(batch),
		}).Info("batch added")
		fmt.Printf("Added %d %s facts.\n", len(batch), args[0])
		return nil
	},
}
