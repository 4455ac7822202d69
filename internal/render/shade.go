package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ziadkadry99/globe-explorer/internal/scene"
)

// shade evaluates a material's color for a surface normal under the
// scene's lights. Basic materials are unlit.
func shade(m scene.Material, normal mgl64.Vec3, s *scene.Scene) scene.Color {
	st := m.State()
	if _, ok := m.(*scene.BasicMaterial); ok {
		return st.Color.Clamp()
	}

	var light scene.Color
	for _, a := range s.Ambient {
		light = light.Add(a.Color.Scale(a.Intensity))
	}
	for _, d := range s.Directional {
		k := math.Max(0, normal.Dot(d.Direction()))
		light = light.Add(d.Color.Scale(d.Intensity * k))
	}

	return st.Color.Mul(light).Add(st.Emissive.Scale(st.EmissiveIntensity)).Clamp()
}
