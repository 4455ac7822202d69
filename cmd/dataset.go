package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/db"
	"github.com/ziadkadry99/globe-explorer/internal/states"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and import the state dataset",
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		source, closeSource, err := datasetSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		ds, err := source.Load(context.Background())
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ABBR\tNAME\tCAPITAL\tLAT\tLON")
		for _, r := range ds.Records() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\n", r.Abbreviation, r.Name, r.Capital, r.Latitude, r.Longitude)
		}
		return w.Flush()
	},
}

var datasetImportCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Seed a SQLite database with state records",
	Long: `Reads records from the given YAML or JSON files (doublestar globs allowed),
or the built-in dataset when no files are given, and replaces the contents
of the SQLite database named by --db.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath == "" {
			return fmt.Errorf("--db is required")
		}

		var source states.Source = states.Embedded()
		if len(args) > 0 {
			source = states.FileSource{Patterns: args}
		}

		ctx := context.Background()
		ds, err := source.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading records: %w", err)
		}

		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		if err := states.SaveSQLite(ctx, database, ds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Imported %d states into %s\n", ds.Len(), dbPath)
		return nil
	},
}

func init() {
	datasetImportCmd.Flags().String("db", "", "SQLite database path")
	datasetCmd.AddCommand(datasetListCmd, datasetImportCmd)
	rootCmd.AddCommand(datasetCmd)
}
