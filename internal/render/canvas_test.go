package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/host/headless"
	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

func testCamera() *scene.Camera {
	cam := scene.NewPerspectiveCamera(45, 1, 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 5}
	cam.Target = mgl64.Vec3{}
	return cam
}

func testScene() (*scene.Scene, *scene.Mesh, *scene.Mesh, *scene.Mesh) {
	s := scene.New()
	s.Ambient = []*scene.AmbientLight{{Color: scene.White, Intensity: 0.4}}
	s.Directional = []*scene.DirectionalLight{{Color: scene.White, Intensity: 1.15, Position: mgl64.Vec3{5, 3, 5}}}

	body := scene.NewMesh("body", scene.NewSphereGeometry(1.8, 8, 8),
		&scene.PhongMaterial{MaterialState: scene.MaterialState{Color: scene.ColorFromHex("#38bdf8"), Opacity: 1}})
	front := scene.NewMesh("front", scene.NewSphereGeometry(0.035, 8, 8),
		&scene.StandardMaterial{MaterialState: scene.MaterialState{Color: scene.White, Opacity: 1}})
	front.Position = mgl64.Vec3{0, 0, 1.92}
	back := scene.NewMesh("back", scene.NewSphereGeometry(0.035, 8, 8),
		&scene.StandardMaterial{MaterialState: scene.MaterialState{Color: scene.White, Opacity: 1}})
	back.Position = mgl64.Vec3{0, 0, -1.92}
	s.Add(back, body, front)
	return s, body, front, back
}

func near(t *testing.T, want, got color.Color, tol int) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	diff := func(a, b uint32) int {
		d := int(a>>8) - int(b>>8)
		if d < 0 {
			d = -d
		}
		return d
	}
	assert.LessOrEqual(t, diff(wr, gr), tol, "red")
	assert.LessOrEqual(t, diff(wg, gg), tol, "green")
	assert.LessOrEqual(t, diff(wb, gb), tol, "blue")
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(0, 10)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCanvas_DisposeIdempotent(t *testing.T) {
	c, err := New(16, 16)
	require.NoError(t, err)

	require.NoError(t, c.Dispose())
	require.NoError(t, c.Dispose())

	s, _, _, _ := testScene()
	assert.ErrorIs(t, c.Render(s, testCamera()), ErrDisposed)
	assert.ErrorIs(t, c.EncodePNG(&bytes.Buffer{}), ErrDisposed)
}

func TestCollect_CullsHiddenMarkers(t *testing.T) {
	c, err := New(64, 64)
	require.NoError(t, err)
	s, body, front, _ := testScene()

	items, err := c.collect(s, testCamera(), 64, 64)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Same(t, body, items[0].mesh)
	assert.Same(t, front, items[1].mesh)
	assert.InDelta(t, 32, items[1].px, 1e-9)
	assert.InDelta(t, 32, items[1].py, 1e-9)
}

func TestCollect_BackSideFirst(t *testing.T) {
	c, err := New(64, 64)
	require.NoError(t, err)
	s, _, _, _ := testScene()
	halo := scene.NewMesh("halo", scene.NewSphereGeometry(1.92, 8, 8),
		&scene.BasicMaterial{MaterialState: scene.MaterialState{Opacity: 0.2, Transparent: true, Side: scene.BackSide}})
	s.Add(halo)

	items, err := c.collect(s, testCamera(), 64, 64)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Same(t, halo, items[0].mesh)
}

func TestCollect_RejectsDisposedResources(t *testing.T) {
	c, err := New(16, 16)
	require.NoError(t, err)
	s, body, _, _ := testScene()
	require.NoError(t, body.Material.Dispose())

	_, err = c.collect(s, testCamera(), 16, 16)
	assert.ErrorIs(t, err, scene.ErrAlreadyDisposed)
}

func TestRender_BackgroundAndBody(t *testing.T) {
	c, err := New(100, 100)
	require.NoError(t, err)
	s, _, _, _ := testScene()
	s.Background = scene.Background{
		Inner: scene.ColorFromHex("#0f172a"),
		Outer: scene.ColorFromHex("#020617"),
	}

	require.NoError(t, c.Render(s, testCamera()))
	img := c.Image()

	near(t, color.RGBA{R: 2, G: 6, B: 23, A: 255}, img.At(99, 99), 4)
	r, g, b, _ := img.At(30, 40).RGBA()
	assert.Greater(t, b>>8, uint32(80), "body should be drawn over the backdrop")
	assert.Greater(t, b, r)
	assert.Greater(t, g, r)
}

func TestRender_MountedSession(t *testing.T) {
	ds, err := states.Embedded().Load(t.Context())
	require.NoError(t, err)

	var canvas *Canvas
	surface := headless.NewSurface(0, 0, 120, 80)
	sched := headless.NewScheduler()
	s, err := globe.Mount(surface, globe.Params{
		Dataset:   ds,
		Theme:     theme.Default(),
		Scheduler: sched,
		NewRenderer: func(w, h int) (globe.Renderer, error) {
			c, err := New(w, h)
			canvas = c
			return c, err
		},
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)
	defer s.Dispose()
	sched.Run(3)

	w, h := canvas.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 80, h)

	var buf bytes.Buffer
	require.NoError(t, canvas.EncodePNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))

	surface.Resize(60, 40)
	w, h = canvas.Size()
	assert.Equal(t, 60, w)
	assert.Equal(t, 40, h)
}
