package globe

import (
	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
)

// Rect is the display surface's bounding box in client coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Point is a position in client coordinates (pixels, +Y down).
type Point struct {
	X, Y float64
}

// Surface is the host display region a session mounts into.
type Surface interface {
	// Rect returns the current bounding box. A zero-area rect means the
	// surface is not ready.
	Rect() Rect
	// Listen subscribes l to input and resize notifications. The returned
	// function unsubscribes.
	Listen(l SurfaceListener) (remove func())
}

// SurfaceListener receives host input. Coordinates are client-space.
type SurfaceListener interface {
	PointerMove(p Point)
	PointerLeave()
	PointerDown(p Point)
	PointerUp(p Point)
	// TouchStart, TouchMove and TouchEnd report the touches active after
	// the event.
	TouchStart(touches []Point)
	TouchMove(touches []Point)
	TouchEnd(touches []Point)
	Wheel(deltaY float64)
	Resize(width, height int)
}

// FrameHandle identifies a requested frame callback.
type FrameHandle uint64

// FrameScheduler runs callbacks at display refresh cadence.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameHandle
	CancelFrame(h FrameHandle)
}

// Renderer draws a scene from a camera onto the surface.
type Renderer interface {
	SetSize(width, height int)
	Render(s *scene.Scene, cam *scene.Camera) error
	Dispose() error
}

// RendererFactory creates a renderer sized to the surface at mount time.
type RendererFactory func(width, height int) (Renderer, error)

// Hover is a hovered record and the pointer position relative to the
// surface's top-left corner, for tooltip placement.
type Hover struct {
	Record   states.Record
	Position Point
}

// EventSink receives the session's upward events.
type EventSink interface {
	// OnHover is called with nil when nothing is hovered.
	OnHover(h *Hover)
	OnSelect(r states.Record)
}

type nopSink struct{}

func (nopSink) OnHover(*Hover)         {}
func (nopSink) OnSelect(states.Record) {}
