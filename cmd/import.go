package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/bank"
	"github.com/abhisek/mathdrill/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a question bank JSON file into the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		file, _ := cmd.Flags().GetString("file")
		replace, _ := cmd.Flags().GetBool("replace")

		if file == "" {
			return fmt.Errorf("--file is required")
		}
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()

		catalog, err := bank.Import(f)
		if err != nil {
			return fmt.Errorf("import bank: %w", err)
		}

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
		if replace {
			err = problems.ReplaceAll(ctx, catalog)
		} else {
			err = problems.Append(ctx, catalog)
		}
		if err != nil {
			return fmt.Errorf("store bank: %w", err)
		}

		logrus.WithFields(logrus.Fields{
			"count":   len(catalog),
			"file":    file,
			"replace": replace,
		}).Info("bank imported")
		fmt.Printf("Imported %d facts from %s.\n", len(catalog), file)
		return nil
	},
}

func init() {
	importCmd.Flags().String("file", "", "Question bank JSON file to load")
	importCmd.Flags().Bool("replace", false, "Replace the stored catalog instead of appending")
}
