package scene

import "github.com/go-gl/mathgl/mgl64"

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  mgl64.Vec3
}

// Direction returns the unit vector pointing from the surface to the light.
func (l *DirectionalLight) Direction() mgl64.Vec3 {
	if l.Position.Len() == 0 {
		return mgl64.Vec3{0, 1, 0}
	}
	return l.Position.Normalize()
}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     Color
	Intensity float64
}
