// Package snapshot renders globe frames offscreen by driving a session on
// a headless surface with the software canvas.
package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/host/headless"
	"github.com/ziadkadry99/globe-explorer/internal/render"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Limits on request-driven snapshots.
const (
	MaxSize   = 4096
	MaxFrames = 600
)

// ErrInvalidOptions is returned for sizes or frame counts out of range.
var ErrInvalidOptions = errors.New("invalid snapshot options")

// Options configure a snapshot run.
type Options struct {
	Width, Height int
	Frames        int
	// Selected is the highlighted record; empty selects the first record.
	Selected string
	Theme    theme.Config
	Logger   zerolog.Logger
}

// Validate checks sizes and frame count.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.Width > MaxSize || o.Height > MaxSize {
		return fmt.Errorf("size %dx%d: %w", o.Width, o.Height, ErrInvalidOptions)
	}
	if o.Frames < 1 || o.Frames > MaxFrames {
		return fmt.Errorf("frames %d: %w", o.Frames, ErrInvalidOptions)
	}
	return nil
}

// FrameFunc receives each rendered frame, numbered from 1.
type FrameFunc func(frame int, c *render.Canvas) error

// Run mounts a session for ds, renders opts.Frames frames and hands each to
// fn. The selection must name a record in ds.
func Run(ctx context.Context, ds *states.Dataset, opts Options, fn FrameFunc) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	selected := opts.Selected
	if selected == "" {
		if first, ok := ds.First(); ok {
			selected = first.Abbreviation
		}
	} else if _, err := ds.Lookup(selected); err != nil {
		return err
	}

	var canvas *render.Canvas
	scheduler := headless.NewScheduler()
	session, err := globe.Mount(headless.NewSurface(0, 0, opts.Width, opts.Height), globe.Params{
		Dataset:   ds,
		Theme:     opts.Theme,
		Selected:  selected,
		Scheduler: scheduler,
		NewRenderer: func(w, h int) (globe.Renderer, error) {
			c, err := render.New(w, h)
			canvas = c
			return c, err
		},
		Logger: opts.Logger,
	})
	if err != nil {
		return fmt.Errorf("mounting snapshot session: %w", err)
	}
	defer func() {
		if err := session.Dispose(); err != nil {
			opts.Logger.Warn().Err(err).Msg("snapshot teardown")
		}
	}()

	// Mount rendered frame 1; every Step renders the next.
	for frame := 1; ; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(frame, canvas); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if frame == opts.Frames {
			return nil
		}
		scheduler.Step()
	}
}
