package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "globe",
	Short: "Interactive 3D globe of the United States",
	Long: `Globe renders the US states as markers on a rotating 3D globe. It serves
the explorer web app, exports a self-contained embeddable widget, renders
snapshots offscreen and opens a desktop viewer.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
