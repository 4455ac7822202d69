package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/progress"
	"github.com/ziadkadry99/globe-explorer/internal/render"
	"github.com/ziadkadry99/globe-explorer/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render globe frames to PNG files",
	Long: `Mounts the globe offscreen and writes consecutive animation frames as
frame-0001.png, frame-0002.png, ... into the output directory.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().Int("width", 0, "frame width (overrides config)")
	snapshotCmd.Flags().Int("height", 0, "frame height (overrides config)")
	snapshotCmd.Flags().Int("frames", 0, "number of frames (overrides config)")
	snapshotCmd.Flags().String("selected", "", "state to highlight (defaults to the first)")
	snapshotCmd.Flags().String("output-dir", "", "output directory (overrides config)")
	snapshotCmd.Flags().StringSlice("theme", nil, "theme overrides as key=value")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	start := time.Now()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if v, _ := cmd.Flags().GetInt("width"); v > 0 {
		cfg.Snapshot.Width = v
	}
	if v, _ := cmd.Flags().GetInt("height"); v > 0 {
		cfg.Snapshot.Height = v
	}
	if v, _ := cmd.Flags().GetInt("frames"); v > 0 {
		cfg.Snapshot.Frames = v
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Snapshot.OutputDir = v
	}
	overrides, _ := cmd.Flags().GetStringSlice("theme")
	t, err := applyThemeOverrides(cfg.Theme, overrides)
	if err != nil {
		return err
	}
	selected, _ := cmd.Flags().GetString("selected")

	opts := snapshot.Options{
		Width:    cfg.Snapshot.Width,
		Height:   cfg.Snapshot.Height,
		Frames:   cfg.Snapshot.Frames,
		Selected: selected,
		Theme:    t,
		Logger:   log,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	source, closeSource, err := datasetSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	ds, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}
	if err := os.MkdirAll(cfg.Snapshot.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	reporter := progress.NewReporter("Rendering")
	reporter.Start(opts.Frames)
	err = snapshot.Run(ctx, ds, opts, func(frame int, c *render.Canvas) error {
		name := filepath.Join(cfg.Snapshot.OutputDir, fmt.Sprintf("frame-%04d.png", frame))
		if err := writePNG(name, c); err != nil {
			return err
		}
		reporter.Update(frame, filepath.Base(name))
		return nil
	})
	reporter.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %d frames to %s in %s\n", opts.Frames, cfg.Snapshot.OutputDir, time.Since(start).Round(time.Millisecond))
	return nil
}

func writePNG(path string, c *render.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := c.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
