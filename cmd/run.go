package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/store"
)

// runApp opens the store, loads the catalog, and launches the TUI. A store
// that has never held a catalog gets the default one first.
func runApp(cmd *cobra.Command) error {
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

	problems := st.ProblemRepo()

	count, err := problems.Count(ctx)
	if err != nil {
		return fmt.Errorf("count problems: %w", err)
	}
	if count == 0 {
		logrus.Info("empty store, seeding default catalog")
		if err := problems.ReplaceAll(ctx, problem.NewDefaultCatalog()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	catalog, err := problems.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	return app.Run(app.Options{
		Catalog:  catalog,
		Source:   resolveSource(cmd),
		Problems: problems,
		Events:   st.EventRepo(),
	})
}
