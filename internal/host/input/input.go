// Package input turns polled input state into surface events. Hosts that
// poll devices once per tick (rather than receive callbacks) feed a
// Snapshot per tick into a Tracker.
package input

import (
	"sort"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
)

// WheelLine is the deltaY reported for one notch of wheel movement.
const WheelLine = 100.0

// Touch is one active touch.
type Touch struct {
	ID  int
	Pos globe.Point
}

// Snapshot is the device state sampled in one tick.
type Snapshot struct {
	Cursor globe.Point
	// Inside reports whether the cursor is over the surface.
	Inside  bool
	Pressed bool
	Touches []Touch
	// WheelY is the vertical wheel movement in notches, positive away from
	// the user.
	WheelY float64
}

// Injector receives synthesized events. *headless.Surface implements it.
type Injector interface {
	Move(x, y float64)
	Leave()
	Press(x, y float64)
	Release(x, y float64)
	TouchStart(touches ...globe.Point)
	TouchMove(touches ...globe.Point)
	TouchEnd(touches ...globe.Point)
	Wheel(deltaY float64)
}

// Tracker remembers the previous snapshot and emits the differences.
type Tracker struct {
	prev Snapshot
}

// Apply emits the events that take the previous snapshot to s.
func (t *Tracker) Apply(s Snapshot, dst Injector) {
	sort.Slice(s.Touches, func(i, j int) bool { return s.Touches[i].ID < s.Touches[j].ID })
	touching := t.touches(s, dst)
	if !touching {
		t.pointer(s, dst)
	}
	if s.WheelY != 0 {
		dst.Wheel(-s.WheelY * WheelLine)
	}
	t.prev = s
}

// touches reports whether touch input was active this tick or the last.
func (t *Tracker) touches(s Snapshot, dst Injector) bool {
	prev := byID(t.prev.Touches)
	cur := byID(s.Touches)

	var kept []globe.Point
	ended, started, moved := false, false, false
	for _, tc := range t.prev.Touches {
		p, ok := cur[tc.ID]
		if !ok {
			ended = true
			continue
		}
		kept = append(kept, p)
		if p != tc.Pos {
			moved = true
		}
	}
	for _, tc := range s.Touches {
		if _, ok := prev[tc.ID]; !ok {
			started = true
		}
	}

	switch {
	case started:
		if ended {
			dst.TouchEnd(kept...)
		}
		dst.TouchStart(points(s.Touches)...)
	case ended:
		dst.TouchEnd(points(s.Touches)...)
	case moved:
		dst.TouchMove(points(s.Touches)...)
	}
	return len(s.Touches) > 0 || len(t.prev.Touches) > 0
}

func (t *Tracker) pointer(s Snapshot, dst Injector) {
	switch {
	case s.Inside && (!t.prev.Inside || s.Cursor != t.prev.Cursor):
		dst.Move(s.Cursor.X, s.Cursor.Y)
	case !s.Inside && t.prev.Inside:
		dst.Leave()
	}
	switch {
	case s.Pressed && !t.prev.Pressed && s.Inside:
		dst.Press(s.Cursor.X, s.Cursor.Y)
	case !s.Pressed && t.prev.Pressed:
		dst.Release(s.Cursor.X, s.Cursor.Y)
	}
}

func byID(ts []Touch) map[int]globe.Point {
	m := make(map[int]globe.Point, len(ts))
	for _, t := range ts {
		m[t.ID] = t.Pos
	}
	return m
}

func points(ts []Touch) []globe.Point {
	ps := make([]globe.Point, len(ts))
	for i, t := range ts {
		ps[i] = t.Pos
	}
	return ps
}
