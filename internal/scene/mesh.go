package scene

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a node that renders a geometry with a material.
type Mesh struct {
	Node
	Geometry Geometry
	Material Material
}

// NewMesh returns a mesh at the local origin.
func NewMesh(name string, geometry Geometry, material Material) *Mesh {
	m := &Mesh{Geometry: geometry, Material: material}
	m.init(name)
	return m
}

// Resources returns the mesh's geometry and material.
func (m *Mesh) Resources() []Resource {
	return []Resource{m.Geometry, m.Material}
}

// Raycast intersects a world-space ray with the mesh. The returned
// distance is measured in world units from origin.
func (m *Mesh) Raycast(origin, dir mgl64.Vec3) (Intersection, bool) {
	world := m.WorldMatrix()
	inv := world.Inv()
	lo := inv.Mul4x1(origin.Vec4(1)).Vec3()
	ld := inv.Mul4x1(dir.Vec4(0)).Vec3()

	t, ok := m.Geometry.IntersectRay(lo, ld)
	if !ok {
		return Intersection{}, false
	}
	local := lo.Add(ld.Mul(t))
	point := world.Mul4x1(local.Vec4(1)).Vec3()
	return Intersection{
		Distance: point.Sub(origin).Len(),
		Point:    point,
		Mesh:     m,
	}, true
}
