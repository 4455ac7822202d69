// Package explorer is the host application around a globe session. It
// owns the dataset, the theme and the selection, and pushes them down to
// the session whenever they change.
package explorer

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/embed"
	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Clipboard writes text to a clipboard.
type Clipboard func(text string) error

// SystemClipboard writes to the OS clipboard.
var SystemClipboard Clipboard = clipboard.WriteAll

// ErrNotMounted is returned when an operation needs a live session.
var ErrNotMounted = errors.New("explorer is not mounted")

// Tooltip is what the host shows next to the hovered marker.
type Tooltip struct {
	Name    string
	Capital string
	X, Y    float64
}

// App holds the explorer state. It is not safe for concurrent use; like
// the session, it lives on the host's event loop.
type App struct {
	log      zerolog.Logger
	dataset  *states.Dataset
	theme    theme.Config
	selected string
	hovered  *globe.Hover

	session   *globe.Session
	surface   globe.Surface
	scheduler globe.FrameScheduler
	factory   globe.RendererFactory
}

var _ globe.EventSink = (*App)(nil)

// New creates an app for ds. The first record starts selected.
func New(ds *states.Dataset, t theme.Config, log zerolog.Logger) (*App, error) {
	if ds == nil {
		return nil, errors.New("dataset is required")
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	a := &App{
		log:     log.With().Str("component", "explorer").Logger(),
		dataset: ds,
		theme:   t,
	}
	if first, ok := ds.First(); ok {
		a.selected = first.Abbreviation
	}
	return a, nil
}

// Mount creates the session on surface, replacing any existing one. A
// surface that is not ready yet leaves the app unmounted without error.
func (a *App) Mount(surface globe.Surface, scheduler globe.FrameScheduler, factory globe.RendererFactory) error {
	if err := a.unmount(); err != nil {
		a.log.Warn().Err(err).Msg("disposing previous session")
	}
	a.surface, a.scheduler, a.factory = surface, scheduler, factory

	s, err := globe.Mount(surface, globe.Params{
		Dataset:     a.dataset,
		Theme:       a.theme,
		Selected:    a.selected,
		Sink:        a,
		Scheduler:   scheduler,
		NewRenderer: factory,
		Logger:      a.log,
	})
	if err != nil {
		return fmt.Errorf("mounting globe: %w", err)
	}
	if s == nil {
		a.log.Debug().Msg("surface not ready, globe not mounted")
	}
	a.session = s
	return nil
}

// Close disposes the session.
func (a *App) Close() error {
	return a.unmount()
}

func (a *App) unmount() error {
	if a.session == nil {
		return nil
	}
	err := a.session.Dispose()
	a.session = nil
	a.hovered = nil
	return err
}

// Session returns the live session, or nil when unmounted.
func (a *App) Session() *globe.Session { return a.session }

// Dataset returns the current dataset.
func (a *App) Dataset() *states.Dataset { return a.dataset }

// Theme returns the current theme.
func (a *App) Theme() theme.Config { return a.theme }

// Selected returns the selected record, if any.
func (a *App) Selected() (states.Record, bool) {
	r, err := a.dataset.Lookup(a.selected)
	return r, err == nil
}

// Select highlights the record with the given abbreviation.
func (a *App) Select(abbr string) error {
	r, err := a.dataset.Lookup(abbr)
	if err != nil {
		return err
	}
	a.OnSelect(r)
	return nil
}

// ChangeTheme replaces one color and rebinds the live session's materials.
// The scene is not rebuilt.
func (a *App) ChangeTheme(key theme.Key, value string) error {
	t, err := a.theme.With(key, value)
	if err != nil {
		return err
	}
	a.theme = t
	a.push()
	return nil
}

// SetDataset swaps the dataset. A mounted session is disposed and a new
// one mounted on the same surface. The selection is kept when the new
// dataset has it, otherwise the first record is selected.
func (a *App) SetDataset(ds *states.Dataset) error {
	if ds == nil {
		return errors.New("dataset is required")
	}
	a.dataset = ds
	a.hovered = nil
	if !ds.Contains(a.selected) {
		a.selected = ""
		if first, ok := ds.First(); ok {
			a.selected = first.Abbreviation
		}
	}
	if a.session == nil {
		return nil
	}
	return a.Mount(a.surface, a.scheduler, a.factory)
}

// Embed returns the standalone widget for the current theme and dataset.
func (a *App) Embed() (string, error) {
	return embed.Generate(a.theme, a.dataset.Records())
}

// Copy generates the embed and writes it to clip. A clipboard failure is
// logged and the document is still returned.
func (a *App) Copy(clip Clipboard) (string, error) {
	doc, err := a.Embed()
	if err != nil {
		return "", err
	}
	if err := clip(doc); err != nil {
		a.log.Error().Err(err).Msg("copying embed code to clipboard")
		return doc, nil
	}
	a.log.Info().Int("bytes", len(doc)).Msg("embed code copied to clipboard")
	return doc, nil
}

// Tooltip returns the hovered record's label and position.
func (a *App) Tooltip() (Tooltip, bool) {
	if a.hovered == nil {
		return Tooltip{}, false
	}
	return Tooltip{
		Name:    a.hovered.Record.Name,
		Capital: a.hovered.Record.Capital,
		X:       a.hovered.Position.X,
		Y:       a.hovered.Position.Y,
	}, true
}

// OnHover implements globe.EventSink.
func (a *App) OnHover(h *globe.Hover) {
	a.hovered = h
}

// OnSelect implements globe.EventSink.
func (a *App) OnSelect(r states.Record) {
	a.selected = r.Abbreviation
	a.log.Debug().Str("state", r.Abbreviation).Msg("selected")
	a.push()
}

func (a *App) push() {
	if a.session != nil {
		a.session.Update(a.theme, a.selected)
	}
}
