// Package headless provides an offscreen host for globe sessions: a surface
// whose input is injected programmatically and a frame scheduler that runs
// only when stepped. Polling hosts such as the desktop window reuse both as
// their event fan-out and frame queue.
package headless

import (
	"sync"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
)

// Surface is an in-memory display region.
type Surface struct {
	mu        sync.Mutex
	rect      globe.Rect
	next      int
	listeners map[int]globe.SurfaceListener
}

// NewSurface returns a surface of the given size with its top-left corner at
// (left, top).
func NewSurface(left, top float64, width, height int) *Surface {
	return &Surface{
		rect:      globe.Rect{Left: left, Top: top, Width: float64(width), Height: float64(height)},
		listeners: make(map[int]globe.SurfaceListener),
	}
}

// Rect implements globe.Surface.
func (s *Surface) Rect() globe.Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rect
}

// Listen implements globe.Surface.
func (s *Surface) Listen(l globe.SurfaceListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Listeners returns the number of attached listeners.
func (s *Surface) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

func (s *Surface) each(fn func(globe.SurfaceListener)) {
	s.mu.Lock()
	ls := make([]globe.SurfaceListener, 0, len(s.listeners))
	for i := 0; i < s.next; i++ {
		if l, ok := s.listeners[i]; ok {
			ls = append(ls, l)
		}
	}
	s.mu.Unlock()
	for _, l := range ls {
		fn(l)
	}
}

// Resize changes the surface size and notifies listeners.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	s.rect.Width, s.rect.Height = float64(width), float64(height)
	s.mu.Unlock()
	s.each(func(l globe.SurfaceListener) { l.Resize(width, height) })
}

// Move injects a pointer move at client coordinates (x, y).
func (s *Surface) Move(x, y float64) {
	s.each(func(l globe.SurfaceListener) { l.PointerMove(globe.Point{X: x, Y: y}) })
}

// Leave injects a pointer leave.
func (s *Surface) Leave() {
	s.each(func(l globe.SurfaceListener) { l.PointerLeave() })
}

// Press injects a pointer down.
func (s *Surface) Press(x, y float64) {
	s.each(func(l globe.SurfaceListener) { l.PointerDown(globe.Point{X: x, Y: y}) })
}

// Release injects a pointer up.
func (s *Surface) Release(x, y float64) {
	s.each(func(l globe.SurfaceListener) { l.PointerUp(globe.Point{X: x, Y: y}) })
}

// Drag presses at from, moves through steps evenly spaced points and
// releases at to.
func (s *Surface) Drag(from, to globe.Point, steps int) {
	s.Press(from.X, from.Y)
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		s.Move(from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f)
	}
	s.Release(to.X, to.Y)
}

// TouchStart injects a touch start with the given active touches.
func (s *Surface) TouchStart(touches ...globe.Point) {
	s.each(func(l globe.SurfaceListener) { l.TouchStart(touches) })
}

// TouchMove injects a touch move.
func (s *Surface) TouchMove(touches ...globe.Point) {
	s.each(func(l globe.SurfaceListener) { l.TouchMove(touches) })
}

// TouchEnd injects a touch end with the touches still active.
func (s *Surface) TouchEnd(touches ...globe.Point) {
	s.each(func(l globe.SurfaceListener) { l.TouchEnd(touches) })
}

// Wheel injects a wheel event.
func (s *Surface) Wheel(deltaY float64) {
	s.each(func(l globe.SurfaceListener) { l.Wheel(deltaY) })
}
