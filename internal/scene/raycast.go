package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Intersection is a ray hit.
type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Mesh     *Mesh
}

// Raycaster casts rays from a camera through screen points.
type Raycaster struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	Near      float64
	Far       float64
}

// NewRaycaster returns a raycaster accepting hits at any distance.
func NewRaycaster() *Raycaster {
	return &Raycaster{Direction: mgl64.Vec3{0, 0, -1}, Far: math.Inf(1)}
}

// SetFromCamera aims the ray from the camera through ndc, a point in
// normalized device coordinates ([-1,1] on both axes, +Y up).
func (r *Raycaster) SetFromCamera(ndc mgl64.Vec2, cam *Camera) {
	r.Origin = cam.Position
	target := cam.Unproject(mgl64.Vec3{ndc.X(), ndc.Y(), 0.5})
	r.Direction = target.Sub(r.Origin).Normalize()
}

// IntersectMeshes tests every visible mesh and returns hits ordered by
// distance, nearest first.
func (r *Raycaster) IntersectMeshes(meshes []*Mesh) []Intersection {
	var hits []Intersection
	for _, m := range meshes {
		if !visible(m) {
			continue
		}
		hit, ok := m.Raycast(r.Origin, r.Direction)
		if !ok || hit.Distance < r.Near || hit.Distance > r.Far {
			continue
		}
		hits = append(hits, hit)
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func visible(m *Mesh) bool {
	for n := &m.Node; n != nil; n = n.parent {
		if !n.Visible {
			return false
		}
	}
	return true
}
