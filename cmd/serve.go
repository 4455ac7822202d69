package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/globe-explorer/internal/server"
	"github.com/ziadkadry99/globe-explorer/internal/snapshot"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the globe explorer web server",
	Long: `Serves the explorer web app together with the state data API, the embed
generator and PNG snapshots. The port comes from --port, then the PORT
environment variable, then the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		port := cfg.Server.Port
		if p := os.Getenv("PORT"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("invalid PORT %q: %w", p, err)
			}
			port = n
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		source, closeSource, err := datasetSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		srv, err := server.New(server.Config{
			Port:      port,
			StaticDir: cfg.Server.StaticDir,
			AllowAll:  cfg.Server.AllowAllOrigins,
			Theme:     cfg.Theme,
			Snapshot: snapshot.Options{
				Width:  cfg.Snapshot.Width,
				Height: cfg.Snapshot.Height,
				Frames: cfg.Snapshot.Frames,
				Theme:  cfg.Theme,
			},
		}, source, log)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown")
			}
		}()

		log.Info().Str("version", Version).Int("port", port).Msg("globe server starting")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides PORT and config)")
	rootCmd.AddCommand(serveCmd)
}
