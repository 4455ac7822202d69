package headless

import (
	"errors"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/scene"
)

// ErrRendererDisposed is returned by Render after Dispose.
var ErrRendererDisposed = errors.New("renderer disposed")

// Renderer records calls instead of drawing.
type Renderer struct {
	Width, Height int
	Renders       int
	Disposals     int
	// DisposeErr is returned from Dispose when set.
	DisposeErr error
	// DisposePanic makes Dispose panic with its value when set.
	DisposePanic any
}

// NewRenderer returns a recording renderer.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Factory returns a globe.RendererFactory handing out r.
func (r *Renderer) Factory() globe.RendererFactory {
	return func(width, height int) (globe.Renderer, error) {
		r.Width, r.Height = width, height
		return r, nil
	}
}

// SetSize implements globe.Renderer.
func (r *Renderer) SetSize(width, height int) {
	r.Width, r.Height = width, height
}

// Render implements globe.Renderer.
func (r *Renderer) Render(*scene.Scene, *scene.Camera) error {
	if r.Disposals > 0 {
		return ErrRendererDisposed
	}
	r.Renders++
	return nil
}

// Dispose implements globe.Renderer.
func (r *Renderer) Dispose() error {
	r.Disposals++
	if r.DisposePanic != nil {
		panic(r.DisposePanic)
	}
	return r.DisposeErr
}
