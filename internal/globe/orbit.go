package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ziadkadry99/globe-explorer/internal/scene"
)

// OrbitControls rotates and dollies a camera around a target in response to
// drag and wheel input. Panning is not supported.
type OrbitControls struct {
	Target        mgl64.Vec3
	RotateSpeed   float64
	ZoomSpeed     float64
	DampingFactor float64
	EnableDamping bool
	MinDistance   float64
	MaxDistance   float64

	// OnStart and OnEnd fire when a drag gesture begins and ends.
	OnStart func()
	OnEnd   func()

	cam      *scene.Camera
	height   func() float64
	dragging bool
	last     Point
	dTheta   float64
	dPhi     float64
	scale    float64
}

// NewOrbitControls binds controls to cam. height reports the viewport
// height in pixels, which converts drag distance into angles.
func NewOrbitControls(cam *scene.Camera, height func() float64) *OrbitControls {
	return &OrbitControls{
		Target:        cam.Target,
		RotateSpeed:   0.4,
		ZoomSpeed:     1,
		DampingFactor: 0.05,
		EnableDamping: true,
		MinDistance:   3,
		MaxDistance:   7,
		cam:           cam,
		height:        height,
		scale:         1,
	}
}

// Dragging reports whether a drag gesture is active.
func (c *OrbitControls) Dragging() bool { return c.dragging }

// Start begins a drag at p.
func (c *OrbitControls) Start(p Point) {
	c.last = p
	if c.dragging {
		return
	}
	c.dragging = true
	if c.OnStart != nil {
		c.OnStart()
	}
}

// Move continues a drag. It is ignored when no drag is active.
func (c *OrbitControls) Move(p Point) {
	if !c.dragging {
		return
	}
	h := c.height()
	if h <= 0 {
		return
	}
	dx, dy := p.X-c.last.X, p.Y-c.last.Y
	c.last = p
	c.dTheta -= 2 * math.Pi * dx / h * c.RotateSpeed
	c.dPhi -= 2 * math.Pi * dy / h * c.RotateSpeed
}

// End finishes the drag gesture.
func (c *OrbitControls) End() {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.OnEnd != nil {
		c.OnEnd()
	}
}

// Dolly zooms in for negative deltaY and out for positive deltaY.
func (c *OrbitControls) Dolly(deltaY float64) {
	s := math.Pow(0.95, c.ZoomSpeed)
	switch {
	case deltaY < 0:
		c.scale *= s
	case deltaY > 0:
		c.scale /= s
	}
}

// Update applies pending rotation and zoom to the camera. With damping
// enabled the pending motion decays over successive calls.
func (c *OrbitControls) Update() {
	const eps = 1e-6

	offset := c.cam.Position.Sub(c.Target)
	radius := offset.Len()
	if radius == 0 {
		return
	}
	theta := math.Atan2(offset.X(), offset.Z())
	phi := math.Acos(math.Max(-1, math.Min(1, offset.Y()/radius)))

	if c.EnableDamping {
		theta += c.dTheta * c.DampingFactor
		phi += c.dPhi * c.DampingFactor
	} else {
		theta += c.dTheta
		phi += c.dPhi
	}
	phi = math.Max(eps, math.Min(math.Pi-eps, phi))
	radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, radius*c.scale))

	sinPhi := math.Sin(phi)
	c.cam.Position = c.Target.Add(mgl64.Vec3{
		radius * sinPhi * math.Sin(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Cos(theta),
	})
	c.cam.Target = c.Target

	if c.EnableDamping {
		c.dTheta *= 1 - c.DampingFactor
		c.dPhi *= 1 - c.DampingFactor
	} else {
		c.dTheta, c.dPhi = 0, 0
	}
	c.scale = 1
}
