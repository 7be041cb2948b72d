package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/bank"
	"github.com/abhisek/mathdrill/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as a question bank JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		file, _ := cmd.Flags().GetString("file")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		catalog, err := st.ProblemRepo().LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		out := cmd.OutOrStdout()
		if file != "" {
			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("create %s: %w", file, err)
			}
			defer f.Close()
			out = f
		}

		if err := bank.Export(out, catalog); err != nil {
			return fmt.Errorf("export bank: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"count": len(catalog),
			"file":  file,
		}).Info("bank exported")
		return nil
	},
}

func init() {
	exportCmd.Flags().String("file", "", "Output path (default stdout)")
}
