// Package globe runs the interactive globe: a scene session bound to a host
// surface, pointer/touch picking, orbit controls and theme binding.
//
// A session is single-threaded. Frame callbacks, input events and Update
// calls must all arrive on the same goroutine (the host's event loop).
package globe

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/globe-explorer/internal/scene"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

// Camera and lighting defaults.
const (
	CameraFOV      = 45
	CameraNear     = 0.1
	CameraFar      = 1000
	CameraDistance = 5
)

// Params configure a session at mount time.
type Params struct {
	Dataset     *states.Dataset
	Theme       theme.Config
	Selected    string
	Sink        EventSink
	Scheduler   FrameScheduler
	NewRenderer RendererFactory
	Logger      zerolog.Logger
}

func (p Params) validate() error {
	switch {
	case p.Dataset == nil:
		return errors.New("dataset is required")
	case p.Scheduler == nil:
		return errors.New("frame scheduler is required")
	case p.NewRenderer == nil:
		return errors.New("renderer factory is required")
	}
	return nil
}

// Session owns the scene graph, camera, renderer and frame loop for one
// dataset on one surface.
type Session struct {
	id    string
	log   zerolog.Logger
	state State

	surface   Surface
	dataset   *states.Dataset
	sink      EventSink
	scheduler FrameScheduler
	renderer  Renderer

	scene     *scene.Scene
	camera    *scene.Camera
	globe     *scene.Node
	body      *scene.Mesh
	halo      *scene.Mesh
	markers   *scene.MarkerSet
	controls  *OrbitControls
	raycaster *scene.Raycaster

	autoRotate     bool
	frame          FrameHandle
	framePending   bool
	frames         uint64
	removeListener func()

	theme    theme.Config
	selected string
}

// Mount builds a session on surface and starts animating. A nil or
// zero-area surface is not an error: Mount returns (nil, nil) and the host
// should retry once the surface exists.
func Mount(surface Surface, p Params) (*Session, error) {
	if surface == nil {
		return nil, nil
	}
	rect := surface.Rect()
	if rect.Width <= 0 || rect.Height <= 0 {
		return nil, nil
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("mounting globe: %w", err)
	}

	width, height := int(rect.Width), int(rect.Height)
	renderer, err := p.NewRenderer(width, height)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	s := &Session{
		id:         uuid.New().String(),
		state:      StateUnmounted,
		surface:    surface,
		dataset:    p.Dataset,
		sink:       p.Sink,
		scheduler:  p.Scheduler,
		renderer:   renderer,
		raycaster:  scene.NewRaycaster(),
		autoRotate: true,
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	s.log = p.Logger.With().Str("component", "globe").Str("session", s.id).Logger()

	s.build(float64(width) / float64(height))
	s.state = StateMounted
	s.removeListener = surface.Listen(&controller{s: s})
	s.Update(p.Theme, p.Selected)

	s.log.Debug().
		Int("markers", s.markers.Len()).
		Int("width", width).
		Int("height", height).
		Msg("session mounted")

	s.state = StateAnimating
	s.tick()
	return s, nil
}

func (s *Session) build(aspect float64) {
	s.scene = scene.New()

	s.camera = scene.NewPerspectiveCamera(CameraFOV, aspect, CameraNear, CameraFar)
	s.camera.Position = mgl64.Vec3{0, 0, CameraDistance}
	s.camera.Target = mgl64.Vec3{}

	s.scene.Directional = append(s.scene.Directional, &scene.DirectionalLight{
		Color: scene.White, Intensity: 1.15, Position: mgl64.Vec3{5, 3, 5},
	})
	s.scene.Ambient = append(s.scene.Ambient, &scene.AmbientLight{
		Color: scene.White, Intensity: 0.4,
	})

	s.globe = scene.NewNode("globe")
	s.scene.Add(s.globe)

	s.body = scene.NewMesh("body",
		scene.NewSphereGeometry(scene.GlobeRadius, 72, 72),
		&scene.PhongMaterial{
			MaterialState: scene.MaterialState{EmissiveIntensity: 0.25, Opacity: 1},
			Shininess:     28,
			Specular:      scene.White,
		})
	s.halo = scene.NewMesh("halo",
		scene.NewSphereGeometry(scene.HaloRadius, 64, 64),
		&scene.BasicMaterial{MaterialState: scene.MaterialState{
			Opacity: 0.2, Transparent: true, Side: scene.BackSide,
		}})
	s.globe.Add(s.body, s.halo)

	s.markers = scene.BuildMarkers(s.dataset.Records(), scene.MarkerRadius, scene.White)
	s.globe.Add(s.markers.Group)

	s.controls = NewOrbitControls(s.camera, func() float64 { return s.surface.Rect().Height })
	s.controls.OnStart = func() { s.autoRotate = false }
	s.controls.OnEnd = func() { s.autoRotate = true }
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the lifecycle stage.
func (s *Session) State() State { return s.state }

// Dataset returns the dataset the markers were built from.
func (s *Session) Dataset() *states.Dataset { return s.dataset }

// Scene returns the scene graph.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Camera returns the session camera.
func (s *Session) Camera() *scene.Camera { return s.camera }

// Globe returns the rotating group holding body, halo and markers.
func (s *Session) Globe() *scene.Node { return s.globe }

// Markers returns the marker arena.
func (s *Session) Markers() *scene.MarkerSet { return s.markers }

// Controls returns the orbit controls.
func (s *Session) Controls() *OrbitControls { return s.controls }

// AutoRotating reports whether idle rotation is active.
func (s *Session) AutoRotating() bool { return s.autoRotate }

// Frames returns the number of frames rendered.
func (s *Session) Frames() uint64 { return s.frames }

// Handles returns the material handles theme binding writes to.
func (s *Session) Handles() Handles {
	return Handles{
		Background: &s.scene.Background,
		Body:       s.body.Material,
		Halo:       s.halo.Material,
		Markers:    s.markers,
	}
}

// Update re-applies theme binding for a new theme or selection without
// rebuilding geometry.
func (s *Session) Update(t theme.Config, selected string) {
	if s.state == StateDisposed {
		return
	}
	s.theme, s.selected = t, selected
	ApplyTheme(s.Handles(), t, selected)
}

// Resize matches the renderer and camera to a new surface size.
func (s *Session) Resize(width, height int) {
	if s.state == StateDisposed || width <= 0 || height <= 0 {
		return
	}
	s.renderer.SetSize(width, height)
	s.camera.SetAspect(width, height)
}

// tick is the frame callback. It renders one frame and only then requests
// the next, so callbacks never overlap.
func (s *Session) tick() {
	if s.state != StateAnimating {
		return
	}
	s.framePending = false

	if s.autoRotate {
		s.globe.RotateY(scene.AutoRotateStep)
	}
	s.controls.Update()
	if err := s.renderer.Render(s.scene, s.camera); err != nil {
		s.log.Warn().Err(err).Uint64("frame", s.frames).Msg("render failed")
	}
	s.frames++

	s.frame = s.scheduler.RequestFrame(s.tick)
	s.framePending = true
}

// Dispose stops the frame loop, detaches input, releases every graphics
// resource and clears the hover state. Release is best-effort: a failing
// resource does not stop the rest from being released, and all failures are
// returned joined. Dispose is idempotent.
func (s *Session) Dispose() error {
	if s == nil || s.state == StateDisposed {
		return nil
	}
	s.state = StateDisposed

	if s.framePending {
		s.scheduler.CancelFrame(s.frame)
		s.framePending = false
	}
	if s.removeListener != nil {
		s.removeListener()
		s.removeListener = nil
	}
	if s.controls.Dragging() {
		s.controls.OnEnd = nil
		s.controls.End()
	}

	err := releaseAll(s.resources())
	s.markers.Clear()
	s.globe.Clear()
	s.sink.OnHover(nil)

	ev := s.log.Debug()
	if err != nil {
		ev = s.log.Warn().Err(err)
	}
	ev.Uint64("frames", s.frames).Msg("session disposed")
	return err
}

type disposer interface {
	Dispose() error
}

func (s *Session) resources() []disposer {
	out := []disposer{s.renderer}
	for _, r := range s.markers.Resources() {
		out = append(out, r)
	}
	for _, r := range s.body.Resources() {
		out = append(out, r)
	}
	for _, r := range s.halo.Resources() {
		out = append(out, r)
	}
	return out
}

func releaseAll(rs []disposer) error {
	var errs []error
	for _, r := range rs {
		if err := release(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func release(r disposer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("releasing %T: panic: %v", r, p)
		}
	}()
	if err := r.Dispose(); err != nil {
		return fmt.Errorf("releasing %T: %w", r, err)
	}
	return nil
}
