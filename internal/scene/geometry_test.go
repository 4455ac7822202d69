package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereGeometry_IntersectRay(t *testing.T) {
	g := NewSphereGeometry(1, 8, 8)

	tHit, ok := g.IntersectRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	require.True(t, ok)
	assert.InDelta(t, 4, tHit, 1e-9)

	_, ok = g.IntersectRay(mgl64.Vec3{0, 2, 5}, mgl64.Vec3{0, 0, -1})
	assert.False(t, ok, "ray passes above the sphere")

	_, ok = g.IntersectRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1})
	assert.False(t, ok, "sphere is behind the ray")

	tHit, ok = g.IntersectRay(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
	require.True(t, ok, "origin inside the sphere hits the far wall")
	assert.InDelta(t, 1, tHit, 1e-9)
}

func TestConeGeometry_IntersectRay(t *testing.T) {
	g := NewConeGeometry(1, 2, 16)

	// Along the axis from above: hits the apex at y=1.
	tHit, ok := g.IntersectRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.InDelta(t, 4, tHit, 1e-9)

	// From below: hits the base cap at y=-1.
	tHit, ok = g.IntersectRay(mgl64.Vec3{0.2, -5, 0}, mgl64.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.InDelta(t, 4, tHit, 1e-9)

	// Horizontally through y=0 the radius is 0.5.
	tHit, ok = g.IntersectRay(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 4.5, tHit, 1e-9)

	// Near the apex the cone is thin; this ray misses.
	_, ok = g.IntersectRay(mgl64.Vec3{-5, 0.9, 0.2}, mgl64.Vec3{1, 0, 0})
	assert.False(t, ok)

	// The mirrored nappe above the apex must not count.
	_, ok = g.IntersectRay(mgl64.Vec3{-5, 2, 0}, mgl64.Vec3{1, 0, 0})
	assert.False(t, ok)
}

func TestMesh_RaycastHonorsTransform(t *testing.T) {
	m := NewMesh("ball", NewSphereGeometry(1, 8, 8), &BasicMaterial{})
	m.Position = mgl64.Vec3{3, 0, 0}
	m.SetScalar(2)

	hit, ok := m.Raycast(mgl64.Vec3{3, 0, 10}, mgl64.Vec3{0, 0, -1})
	require.True(t, ok)
	assert.InDelta(t, 8, hit.Distance, 1e-9)
	assert.InDelta(t, 2, hit.Point.Z(), 1e-9)

	_, ok = m.Raycast(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, -1})
	assert.False(t, ok)
}

func TestResource_DisposeIsIdempotent(t *testing.T) {
	g := NewSphereGeometry(1, 4, 4)
	assert.False(t, g.Disposed())
	require.NoError(t, g.Dispose())
	require.NoError(t, g.Dispose())
	assert.True(t, g.Disposed())
}

func TestMaterial_CloneIsIndependent(t *testing.T) {
	a := &StandardMaterial{MaterialState: MaterialState{Color: White}}
	b := a.Clone()
	b.State().Color = Color{R: 1}
	assert.Equal(t, White, a.Color)

	require.NoError(t, a.Dispose())
	assert.False(t, a.Clone().Disposed())
}
