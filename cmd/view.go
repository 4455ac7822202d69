package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/explorer"
	"github.com/ziadkadry99/globe-explorer/internal/host/window"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the globe in a desktop window",
	Long:  `Opens an interactive window: drag to orbit, scroll to zoom and click a marker to select its state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		source, closeSource, err := datasetSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		ds, err := source.Load(context.Background())
		if err != nil {
			return fmt.Errorf("loading dataset: %w", err)
		}
		app, err := explorer.New(ds, cfg.Theme, log)
		if err != nil {
			return err
		}
		if selected, _ := cmd.Flags().GetString("selected"); selected != "" {
			if err := app.Select(selected); err != nil {
				return err
			}
		}

		return window.Run(app, window.Options{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
		})
	},
}

func init() {
	viewCmd.Flags().String("selected", "", "state to highlight at start")
	rootCmd.AddCommand(viewCmd)
}
