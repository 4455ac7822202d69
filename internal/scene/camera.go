package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// NewPerspectiveCamera returns a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{
		Target: mgl64.Vec3{0, 0, -1},
		Up:     mgl64.Vec3{0, 1, 0},
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetAspect updates the aspect ratio from a viewport size. Zero heights
// are ignored.
func (c *Camera) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// ViewMatrix transforms world space into camera space.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix transforms camera space into clip space.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ViewProjection is ProjectionMatrix × ViewMatrix.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// Project maps a world point to normalized device coordinates. The third
// component is depth; w is the clip-space w (negative behind the camera).
func (c *Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, w float64) {
	clip := c.ViewProjection().Mul4x1(p.Vec4(1))
	w = clip.W()
	if w == 0 {
		return mgl64.Vec3{}, 0
	}
	return clip.Vec3().Mul(1 / w), w
}

// Unproject maps normalized device coordinates back to world space.
func (c *Camera) Unproject(ndc mgl64.Vec3) mgl64.Vec3 {
	inv := c.ViewProjection().Inv()
	p := inv.Mul4x1(ndc.Vec4(1))
	return p.Vec3().Mul(1 / p.W())
}
