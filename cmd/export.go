package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/embed"
	"github.com/ziadkadry99/globe-explorer/internal/explorer"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the self-contained embeddable globe widget",
	Long: `Generates a standalone HTML document that renders the globe with the
configured theme and dataset. The document loads three.js from a CDN and
needs no server. Use --output - to print it to stdout.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", embed.Filename, "output file, or - for stdout")
	exportCmd.Flags().Bool("copy", false, "also copy the document to the clipboard")
	exportCmd.Flags().StringSlice("theme", nil, "theme overrides as key=value, e.g. pinColor=#ff0000")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	overrides, _ := cmd.Flags().GetStringSlice("theme")
	t, err := applyThemeOverrides(cfg.Theme, overrides)
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
	app, err := explorer.New(ds, t, log)
	if err != nil {
		return err
	}

	var doc string
	if copyDoc, _ := cmd.Flags().GetBool("copy"); copyDoc {
		doc, err = app.Copy(explorer.SystemClipboard)
	} else {
		doc, err = app.Embed()
	}
	if err != nil {
		return fmt.Errorf("generating embed: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Widget written to %s (%d states)\n", output, ds.Len())
	return nil
}
