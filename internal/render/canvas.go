// Package render draws globe scenes into an offscreen image with gogpu/gg.
//
// Spheres are drawn as shaded disks and cones as triangles, back to front.
// Small meshes hidden behind a larger opaque sphere are culled by casting a
// ray from the camera, so markers on the far side of the globe disappear
// the same way they do in a depth-buffered renderer.
package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"

	"github.com/ziadkadry99/globe-explorer/internal/globe"
	"github.com/ziadkadry99/globe-explorer/internal/scene"
)

// ErrDisposed is returned when drawing with a disposed canvas.
var ErrDisposed = errors.New("canvas disposed")

// ErrInvalidSize is returned for non-positive canvas dimensions.
var ErrInvalidSize = errors.New("invalid canvas size")

// Canvas is a software globe.Renderer.
type Canvas struct {
	dc       *gg.Context
	disposed bool
}

var _ globe.Renderer = (*Canvas)(nil)

// New returns a canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Canvas{dc: gg.NewContext(width, height)}, nil
}

// Factory is a globe.RendererFactory producing canvases.
func Factory(width, height int) (globe.Renderer, error) {
	return New(width, height)
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.dc.Width(), c.dc.Height()
}

// SetSize implements globe.Renderer. Non-positive sizes are ignored.
func (c *Canvas) SetSize(width, height int) {
	if c.disposed {
		return
	}
	_ = c.dc.Resize(width, height)
}

// Image returns the most recent frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the most recent frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.disposed {
		return ErrDisposed
	}
	return c.dc.EncodePNG(w)
}

// Dispose implements globe.Renderer. It is idempotent.
func (c *Canvas) Dispose() error {
	if c.disposed {
		return nil
	}
	c.disposed = true
	return c.dc.Close()
}

// Render implements globe.Renderer.
func (c *Canvas) Render(s *scene.Scene, cam *scene.Camera) error {
	if c.disposed {
		return ErrDisposed
	}
	w, h := float64(c.dc.Width()), float64(c.dc.Height())
	if err := c.background(s.Background, w, h); err != nil {
		return fmt.Errorf("drawing background: %w", err)
	}

	items, err := c.collect(s, cam, w, h)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := c.draw(it, s, cam); err != nil {
			return fmt.Errorf("drawing %s: %w", it.mesh.Name, err)
		}
	}
	return nil
}

func (c *Canvas) background(bg scene.Background, w, h float64) error {
	cx, cy := 0.2*w, 0.2*h
	brush := gg.NewRadialGradientBrush(cx, cy, 0, math.Hypot(w-cx, h-cy)).
		AddColorStop(0, bg.Inner.RGBA(1)).
		AddColorStop(1, bg.Outer.RGBA(1))
	c.dc.SetFillBrush(brush)
	c.dc.DrawRectangle(0, 0, w, h)
	return c.dc.Fill()
}

// item is a mesh prepared for drawing.
type item struct {
	mesh   *scene.Mesh
	center mgl64.Vec3 // world space
	scale  float64    // world scale of the mesh
	depth  float64    // view-space distance along the camera axis
	px, py float64    // projected center in pixels
	back   bool
}

func (c *Canvas) collect(s *scene.Scene, cam *scene.Camera, w, h float64) ([]item, error) {
	meshes := s.Meshes()
	view := cam.ViewMatrix()

	var items []item
	for _, m := range meshes {
		if !visible(m) {
			continue
		}
		if m.Geometry.Disposed() || m.Material.Disposed() {
			return nil, fmt.Errorf("%s: %w", m.Name, scene.ErrAlreadyDisposed)
		}
		world := m.WorldMatrix()
		center := world.Col(3).Vec3()
		depth := -view.Mul4x1(center.Vec4(1)).Z()
		if depth <= cam.Near {
			continue
		}
		ndc, _ := cam.Project(center)
		it := item{
			mesh:   m,
			center: center,
			scale:  world.Col(0).Vec3().Len(),
			depth:  depth,
			px:     (ndc.X() + 1) / 2 * w,
			py:     (1 - ndc.Y()) / 2 * h,
			back:   m.Material.State().Side == scene.BackSide,
		}
		if occluded(it, meshes, cam) {
			continue
		}
		items = append(items, it)
	}

	// Back faces first, then far to near.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].back != items[j].back {
			return items[i].back
		}
		return items[i].depth > items[j].depth
	})
	return items, nil
}

func visible(m *scene.Mesh) bool {
	for n := &m.Node; n != nil; n = n.Parent() {
		if !n.Visible {
			return false
		}
	}
	return true
}

// occluded reports whether a larger opaque sphere lies between the camera
// and the item's center.
func occluded(it item, meshes []*scene.Mesh, cam *scene.Camera) bool {
	toItem := it.center.Sub(cam.Position)
	dist := toItem.Len()
	if dist == 0 {
		return false
	}
	dir := toItem.Mul(1 / dist)
	size := it.mesh.Geometry.BoundingRadius() * it.scale
	for _, o := range meshes {
		if o == it.mesh || !isOccluder(o) {
			continue
		}
		if o.Geometry.BoundingRadius() <= size {
			continue
		}
		if hit, ok := o.Raycast(cam.Position, dir); ok && hit.Distance < dist-1e-9 {
			return true
		}
	}
	return false
}

func isOccluder(m *scene.Mesh) bool {
	if _, ok := m.Geometry.(*scene.SphereGeometry); !ok {
		return false
	}
	st := m.Material.State()
	return !st.Transparent && st.Side != scene.BackSide && visible(m)
}

func (c *Canvas) draw(it item, s *scene.Scene, cam *scene.Camera) error {
	focal := c.focal(cam)
	st := it.mesh.Material.State()
	alpha := 1.0
	if st.Transparent {
		alpha = st.Opacity
	}

	switch g := it.mesh.Geometry.(type) {
	case *scene.SphereGeometry:
		radius := g.Radius * it.scale
		return c.sphere(it, radius, radius*focal/it.depth, alpha, s, cam)
	case *scene.ConeGeometry:
		return c.cone(it, g, alpha, s, cam)
	}
	return nil
}

func (c *Canvas) sphere(it item, radius, r, alpha float64, s *scene.Scene, cam *scene.Camera) error {
	if _, unlit := it.mesh.Material.(*scene.BasicMaterial); unlit || len(s.Directional) == 0 {
		c.dc.SetFillBrush(gg.Solid(shade(it.mesh.Material, mgl64.Vec3{}, s).RGBA(alpha)))
		c.dc.DrawCircle(it.px, it.py, r)
		return c.dc.Fill()
	}

	toCam := cam.Position.Sub(it.center).Normalize()
	toLight := s.Directional[0].Direction()
	lit := toLight.Add(toCam)
	if lit.Len() < 1e-9 {
		lit = toCam
	}
	lit = lit.Normalize()
	// Limb normal on the side facing away from the light.
	dark := toLight.Mul(-1)
	dark = dark.Sub(toCam.Mul(dark.Dot(toCam)))
	if dark.Len() < 1e-9 {
		dark = cam.Up.Sub(toCam.Mul(cam.Up.Dot(toCam)))
	}
	dark = dark.Normalize()

	fx, fy := c.toPixel(it.center.Add(lit.Mul(radius)), cam)
	brush := gg.NewRadialGradientBrush(it.px, it.py, 0, r).
		SetFocus(fx, fy).
		AddColorStop(0, shade(it.mesh.Material, lit, s).RGBA(alpha)).
		AddColorStop(1, shade(it.mesh.Material, dark, s).RGBA(alpha))
	c.dc.SetFillBrush(brush)
	c.dc.DrawCircle(it.px, it.py, r)
	return c.dc.Fill()
}

func (c *Canvas) cone(it item, g *scene.ConeGeometry, alpha float64, s *scene.Scene, cam *scene.Camera) error {
	world := it.mesh.WorldMatrix()
	apex := world.Mul4x1(mgl64.Vec4{0, g.Height / 2, 0, 1}).Vec3()
	base := world.Mul4x1(mgl64.Vec4{0, -g.Height / 2, 0, 1}).Vec3()

	ax, ay := c.toPixel(apex, cam)
	bx, by := c.toPixel(base, cam)
	half := g.Radius * it.scale * c.focal(cam) / it.depth

	dx, dy := ax-bx, ay-by
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		// Viewed along its axis the cone is a disk.
		c.dc.SetFillBrush(gg.Solid(shade(it.mesh.Material, cam.Position.Sub(it.center).Normalize(), s).RGBA(alpha)))
		c.dc.DrawCircle(bx, by, half)
		return c.dc.Fill()
	}
	nx, ny := -dy/l*half, dx/l*half

	normal := cam.Position.Sub(it.center).Normalize()
	c.dc.SetFillBrush(gg.Solid(shade(it.mesh.Material, normal, s).RGBA(alpha)))
	c.dc.MoveTo(ax, ay)
	c.dc.LineTo(bx+nx, by+ny)
	c.dc.LineTo(bx-nx, by-ny)
	c.dc.ClosePath()
	return c.dc.Fill()
}

func (c *Canvas) toPixel(p mgl64.Vec3, cam *scene.Camera) (float64, float64) {
	ndc, _ := cam.Project(p)
	w, h := float64(c.dc.Width()), float64(c.dc.Height())
	return (ndc.X() + 1) / 2 * w, (1 - ndc.Y()) / 2 * h
}

// focal is the projection's focal length in pixels.
func (c *Canvas) focal(cam *scene.Camera) float64 {
	return float64(c.dc.Height()) / 2 / math.Tan(mgl64.DegToRad(cam.FOV)/2)
}
