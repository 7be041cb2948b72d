package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the catalog with the default one, discarding all history",
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

		catalog := problem.NewDefaultCatalog()
		if err := st.ProblemRepo().ReplaceAll(ctx, catalog); err != nil {
			return fmt.Errorf("replace catalog: %w", err)
		}

		logrus.WithField("count", len(catalog)).Info("catalog reset")
		fmt.Printf("Catalog reset to %d default facts.\n", len(catalog))
		return nil
	},
}
