// Package window hosts a globe in a desktop window. Input is polled once
// per tick and frame callbacks run from the game loop.
package window

import (
	"errors"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/host/headless"
	"github.com/ziadkadry99/globe-explorer/internal/host/input"
	"github.com/ziadkadry99/globe-explorer/internal/render"
)

// Options configure the window.
type Options struct {
	Width, Height int
	Title         string
}

// App is mounted once the window's surface exists and closed when the
// window closes.
type App interface {
	Mount(surface globe.Surface, scheduler globe.FrameScheduler, factory globe.RendererFactory) error
	Close() error
}

// Run opens the window and blocks until it closes.
func Run(app App, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return errors.New("window size must be positive")
	}
	g := &game{
		surface:   headless.NewSurface(0, 0, opts.Width, opts.Height),
		scheduler: headless.NewScheduler(),
		width:     opts.Width,
		height:    opts.Height,
	}
	if err := app.Mount(g.surface, g.scheduler, g.newRenderer); err != nil {
		return err
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	runErr := ebiten.RunGame(g)
	return errors.Join(runErr, app.Close())
}

var _ input.Injector = (*headless.Surface)(nil)

type game struct {
	surface   *headless.Surface
	scheduler *headless.Scheduler
	tracker   input.Tracker

	canvas *render.Canvas
	img    *image.RGBA
	frame  *ebiten.Image

	width, height int
	resized       bool
}

func (g *game) newRenderer(width, height int) (globe.Renderer, error) {
	c, err := render.New(width, height)
	if err != nil {
		return nil, err
	}
	g.canvas = c
	return c, nil
}

func (g *game) Update() error {
	if g.resized {
		g.resized = false
		g.surface.Resize(g.width, g.height)
	}
	g.tracker.Apply(poll(g.width, g.height), g.surface)
	g.scheduler.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	src := g.canvas.Image()
	b := src.Bounds()
	if g.img == nil || g.img.Bounds() != b {
		g.img = image.NewRGBA(b)
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	draw.Draw(g.img, b, src, b.Min, draw.Src)
	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
}

// Layout tracks the window size. The resize is applied on the next Update
// so the session only sees it from the game loop.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}

func poll(width, height int) input.Snapshot {
	x, y := ebiten.CursorPosition()
	s := input.Snapshot{
		Cursor:  globe.Point{X: float64(x), Y: float64(y)},
		Inside:  ebiten.IsFocused() && x >= 0 && y >= 0 && x < width && y < height,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, input.Touch{ID: int(id), Pos: globe.Point{X: float64(tx), Y: float64(ty)}})
	}
	_, s.WheelY = ebiten.Wheel()
	return s
}
