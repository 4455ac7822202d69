package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is a shape in local space that can be hit by a ray.
type Geometry interface {
	Resource
	// IntersectRay returns the smallest t >= 0 such that origin+t*dir lies
	// on the surface.
	IntersectRay(origin, dir mgl64.Vec3) (t float64, ok bool)
	// BoundingRadius is the radius of a sphere around the local origin
	// enclosing the shape.
	BoundingRadius() float64
}

// SphereGeometry is a sphere centered at the local origin.
type SphereGeometry struct {
	disposable
	Radius         float64
	WidthSegments  int
	HeightSegments int
}

// NewSphereGeometry returns a sphere of the given radius and tessellation.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *SphereGeometry {
	return &SphereGeometry{Radius: radius, WidthSegments: widthSegments, HeightSegments: heightSegments}
}

// BoundingRadius implements Geometry.
func (g *SphereGeometry) BoundingRadius() float64 { return g.Radius }

// IntersectRay implements Geometry.
func (g *SphereGeometry) IntersectRay(o, d mgl64.Vec3) (float64, bool) {
	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - g.Radius*g.Radius
	return nearestRoot(a, b, c, func(float64) bool { return true })
}

// ConeGeometry is a capped cone along the local Y axis with its apex at
// +Height/2 and its base disk at -Height/2.
type ConeGeometry struct {
	disposable
	Radius         float64
	Height         float64
	RadialSegments int
}

// NewConeGeometry returns a cone of the given base radius and height.
func NewConeGeometry(radius, height float64, radialSegments int) *ConeGeometry {
	return &ConeGeometry{Radius: radius, Height: height, RadialSegments: radialSegments}
}

// BoundingRadius implements Geometry.
func (g *ConeGeometry) BoundingRadius() float64 {
	return math.Hypot(g.Radius, g.Height/2)
}

// IntersectRay implements Geometry.
func (g *ConeGeometry) IntersectRay(o, d mgl64.Vec3) (float64, bool) {
	half := g.Height / 2
	k := g.Radius / g.Height
	k2 := k * k

	// Lateral surface: x² + z² = k²(half - y)², for y in [-half, half].
	h := half - o.Y()
	a := d.X()*d.X() + d.Z()*d.Z() - k2*d.Y()*d.Y()
	b := 2 * (o.X()*d.X() + o.Z()*d.Z() + k2*h*d.Y())
	c := o.X()*o.X() + o.Z()*o.Z() - k2*h*h
	inRange := func(t float64) bool {
		y := o.Y() + t*d.Y()
		return y >= -half && y <= half
	}
	best, hit := nearestRoot(a, b, c, inRange)

	// Base cap.
	if d.Y() != 0 {
		t := (-half - o.Y()) / d.Y()
		if t >= 0 {
			x := o.X() + t*d.X()
			z := o.Z() + t*d.Z()
			if x*x+z*z <= g.Radius*g.Radius && (!hit || t < best) {
				best, hit = t, true
			}
		}
	}
	return best, hit
}

// nearestRoot solves a·t² + b·t + c = 0 and returns the smallest
// non-negative root accepted by keep.
func nearestRoot(a, b, c float64, keep func(float64) bool) (float64, bool) {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return 0, false
		}
		t := -c / b
		if t >= 0 && keep(t) {
			return t, true
		}
		return 0, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	if t0 >= 0 && keep(t0) {
		return t0, true
	}
	if t1 >= 0 && keep(t1) {
		return t1, true
	}
	return 0, false
}
