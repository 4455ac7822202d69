package globe

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
)

// controller turns surface input into hover, select and orbit intents.
type controller struct {
	s *Session
}

var _ SurfaceListener = (*controller)(nil)

// NDC maps a client-space point to normalized device coordinates relative
// to rect: [-1,1] on both axes with +Y up.
func NDC(p Point, rect Rect) mgl64.Vec2 {
	if rect.Width <= 0 || rect.Height <= 0 {
		return mgl64.Vec2{}
	}
	x := (p.X-rect.Left)/rect.Width*2 - 1
	y := -((p.Y-rect.Top)/rect.Height*2 - 1)
	return mgl64.Vec2{x, y}
}

// Pick casts a ray through the client-space point p and returns the record
// owning the nearest marker primitive it hits.
func (s *Session) Pick(p Point) (states.Record, bool) {
	if s.state == StateDisposed {
		return states.Record{}, false
	}
	s.raycaster.SetFromCamera(NDC(p, s.surface.Rect()), s.camera)
	for _, hit := range s.raycaster.IntersectMeshes(s.markers.Meshes()) {
		if r, ok := s.recordFor(hit); ok {
			return r, true
		}
	}
	return states.Record{}, false
}

func (s *Session) recordFor(hit scene.Intersection) (states.Record, bool) {
	m, ok := s.markers.Owner(hit.Mesh)
	if !ok {
		return states.Record{}, false
	}
	r, err := s.dataset.Lookup(m.Key)
	if err != nil {
		return states.Record{}, false
	}
	return r, true
}

func (c *controller) hover(p Point) {
	r, ok := c.s.Pick(p)
	if !ok {
		c.s.sink.OnHover(nil)
		return
	}
	rect := c.s.surface.Rect()
	c.s.sink.OnHover(&Hover{
		Record:   r,
		Position: Point{X: p.X - rect.Left, Y: p.Y - rect.Top},
	})
}

func (c *controller) selectAt(p Point) {
	if r, ok := c.s.Pick(p); ok {
		c.s.sink.OnSelect(r)
	}
}

func (c *controller) PointerMove(p Point) {
	if c.s.controls.Dragging() {
		c.s.controls.Move(p)
	}
	c.hover(p)
}

func (c *controller) PointerLeave() {
	c.s.sink.OnHover(nil)
}

func (c *controller) PointerDown(p Point) {
	c.selectAt(p)
	c.s.controls.Start(p)
}

func (c *controller) PointerUp(Point) {
	c.s.controls.End()
}

func (c *controller) TouchStart(touches []Point) {
	if len(touches) != 1 {
		// A second finger cancels the one-finger orbit.
		c.s.controls.End()
		return
	}
	c.selectAt(touches[0])
	c.s.controls.Start(touches[0])
}

func (c *controller) TouchMove(touches []Point) {
	if len(touches) == 1 {
		c.s.controls.Move(touches[0])
	}
}

func (c *controller) TouchEnd(touches []Point) {
	if len(touches) == 0 {
		c.s.controls.End()
	}
}

func (c *controller) Wheel(deltaY float64) {
	c.s.controls.Dolly(deltaY)
}

func (c *controller) Resize(width, height int) {
	c.s.Resize(width, height)
}
