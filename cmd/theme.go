package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/config"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Edit the globe colors with an interactive editor",
	Long:  `Runs an interactive editor for the six theme colors and saves them to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if show, _ := cmd.Flags().GetBool("show"); show {
			for _, f := range theme.Fields {
				v, _ := cfg.Theme.Get(f.Key)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", f.Key, v)
			}
			return nil
		}
		return config.RunThemeWizard(cfg, cfgFile)
	},
}

func init() {
	themeCmd.Flags().Bool("show", false, "print the current theme and exit")
	rootCmd.AddCommand(themeCmd)
}
