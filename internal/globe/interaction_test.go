package globe_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
)

func TestNDC(t *testing.T) {
	rect := globe.Rect{Left: 10, Top: 20, Width: 200, Height: 100}

	assert.Equal(t, mgl64.Vec2{-1, 1}, globe.NDC(globe.Point{X: 10, Y: 20}, rect))
	assert.Equal(t, mgl64.Vec2{1, -1}, globe.NDC(globe.Point{X: 210, Y: 120}, rect))
	assert.Equal(t, mgl64.Vec2{0, 0}, globe.NDC(globe.Point{X: 110, Y: 70}, rect))
	assert.Equal(t, mgl64.Vec2{}, globe.NDC(globe.Point{X: 5, Y: 5}, globe.Rect{}))
}

func TestHover_ReportsRecordAndPosition(t *testing.T) {
	f := mount(t)
	p := f.clientPoint(t, "NY")

	f.surface.Move(p.X, p.Y)

	h := f.sink.lastHover(t)
	require.NotNil(t, h)
	assert.Equal(t, "NY", h.Record.Abbreviation)
	assert.InDelta(t, p.X-10, h.Position.X, 1e-9)
	assert.InDelta(t, p.Y-20, h.Position.Y, 1e-9)
}

func TestHover_MissReportsNil(t *testing.T) {
	f := mount(t)
	f.surface.Move(11, 21)
	assert.Nil(t, f.sink.lastHover(t))
}

func TestHover_LeaveReportsNil(t *testing.T) {
	f := mount(t)
	p := f.clientPoint(t, "CA")
	f.surface.Move(p.X, p.Y)
	require.NotNil(t, f.sink.lastHover(t))

	f.surface.Leave()

	assert.Nil(t, f.sink.lastHover(t))
}

func TestPress_SelectsHitRecord(t *testing.T) {
	f := mount(t)
	p := f.clientPoint(t, "NY")

	f.surface.Press(p.X, p.Y)

	require.Len(t, f.sink.selects, 1)
	assert.Equal(t, "NY", f.sink.selects[0].Abbreviation)
}

func TestPress_MissDoesNotSelect(t *testing.T) {
	f := mount(t)
	f.surface.Press(11, 21)
	assert.Empty(t, f.sink.selects)
}

func TestTouch_SingleTouchSelects(t *testing.T) {
	f := mount(t)
	p := f.clientPoint(t, "CA")

	f.surface.TouchStart(p)

	require.Len(t, f.sink.selects, 1)
	assert.Equal(t, "CA", f.sink.selects[0].Abbreviation)
}

func TestTouch_MultiTouchDoesNotSelect(t *testing.T) {
	f := mount(t)
	p := f.clientPoint(t, "CA")

	f.surface.TouchStart(p, globe.Point{X: 300, Y: 300})

	assert.Empty(t, f.sink.selects)
	assert.True(t, f.session.AutoRotating())
}

func TestDrag_SuspendsAutoRotation(t *testing.T) {
	f := mount(t)
	require.True(t, f.session.AutoRotating())

	f.surface.Press(50, 50)
	f.surface.Move(120, 60)
	assert.False(t, f.session.AutoRotating())

	rotation := f.session.Globe().Rotation
	f.scheduler.Run(5)
	assert.Equal(t, rotation, f.session.Globe().Rotation)

	f.surface.Release(120, 60)
	assert.True(t, f.session.AutoRotating())

	f.scheduler.Step()
	assert.NotEqual(t, rotation, f.session.Globe().Rotation)
}

func TestDrag_OrbitsCamera(t *testing.T) {
	f := mount(t)
	before := f.session.Camera().Position

	f.surface.Drag(globe.Point{X: 100, Y: 300}, globe.Point{X: 400, Y: 300}, 5)
	f.scheduler.Run(10)

	after := f.session.Camera().Position
	assert.NotEqual(t, before, after)
	assert.InDelta(t, before.Len(), after.Len(), 1e-9)
}

func TestTouchDrag_SuspendsAutoRotation(t *testing.T) {
	f := mount(t)

	f.surface.TouchStart(globe.Point{X: 50, Y: 50})
	f.surface.TouchMove(globe.Point{X: 80, Y: 50})
	assert.False(t, f.session.AutoRotating())

	f.surface.TouchEnd()
	assert.True(t, f.session.AutoRotating())
}

func TestWheel_ZoomClampedToRange(t *testing.T) {
	f := mount(t)

	f.surface.Wheel(-1)
	f.scheduler.Step()
	assert.InDelta(t, 4.75, f.session.Camera().Position.Len(), 1e-9)

	for i := 0; i < 50; i++ {
		f.surface.Wheel(-1)
	}
	f.scheduler.Step()
	assert.InDelta(t, 3, f.session.Camera().Position.Len(), 1e-9)

	for i := 0; i < 50; i++ {
		f.surface.Wheel(1)
	}
	f.scheduler.Step()
	assert.InDelta(t, 7, f.session.Camera().Position.Len(), 1e-9)
}
