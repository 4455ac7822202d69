package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCamera() *Camera {
	cam := NewPerspectiveCamera(45, 1, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 5}
	cam.Target = mgl64.Vec3{}
	return cam
}

func TestRaycaster_SetFromCameraCenter(t *testing.T) {
	rc := NewRaycaster()
	rc.SetFromCamera(mgl64.Vec2{0, 0}, testCamera())

	assertVecNear(t, mgl64.Vec3{0, 0, 5}, rc.Origin)
	assertVecNear(t, mgl64.Vec3{0, 0, -1}, rc.Direction)
}

func TestRaycaster_ProjectUnprojectRoundTrip(t *testing.T) {
	cam := testCamera()
	p := mgl64.Vec3{0.4, -0.3, 1}
	ndc, w := cam.Project(p)
	require.Greater(t, w, 0.0)

	rc := NewRaycaster()
	rc.SetFromCamera(mgl64.Vec2{ndc.X(), ndc.Y()}, cam)
	toPoint := p.Sub(rc.Origin).Normalize()
	assert.InDelta(t, 1, toPoint.Dot(rc.Direction), 1e-9)
}

func TestRaycaster_NearestFirst(t *testing.T) {
	far := NewMesh("far", NewSphereGeometry(0.5, 8, 8), &BasicMaterial{})
	near := NewMesh("near", NewSphereGeometry(0.5, 8, 8), &BasicMaterial{})
	near.Position = mgl64.Vec3{0, 0, 2}
	off := NewMesh("off", NewSphereGeometry(0.5, 8, 8), &BasicMaterial{})
	off.Position = mgl64.Vec3{3, 0, 0}

	rc := NewRaycaster()
	rc.SetFromCamera(mgl64.Vec2{0, 0}, testCamera())
	hits := rc.IntersectMeshes([]*Mesh{far, off, near})

	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Mesh)
	assert.Same(t, far, hits[1].Mesh)
	assert.InDelta(t, 2.5, hits[0].Distance, 1e-9)
}

func TestRaycaster_SkipsInvisibleSubtrees(t *testing.T) {
	group := NewNode("group")
	m := NewMesh("m", NewSphereGeometry(1, 8, 8), &BasicMaterial{})
	group.Add(m)
	group.Visible = false

	rc := NewRaycaster()
	rc.SetFromCamera(mgl64.Vec2{0, 0}, testCamera())
	assert.Empty(t, rc.IntersectMeshes([]*Mesh{m}))
}
