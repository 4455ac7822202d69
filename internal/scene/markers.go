package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ziadkadry99/globe-explorer/internal/geo"
	"github.com/ziadkadry99/globe-explorer/internal/states"
)

// Globe layout shared by the live session and the embed generator.
const (
	GlobeRadius   = 1.8
	HaloRadius    = 1.92
	MarkerRadius  = 1.92
	PinBallRadius = 0.035
	PinConeRadius = 0.025
	PinConeHeight = 0.12
	// PinConeOffset is the distance from the ball center to the cone center
	// along the marker's inward axis.
	PinConeOffset = 0.08
	SelectedScale = 1.4
	// AutoRotateStep is the globe's rotation per frame in radians.
	AutoRotateStep = 0.002
	// PinEmissiveIntensity is the emissive strength of marker materials.
	PinEmissiveIntensity = 0.5
)

// Marker is one record's pin: a ball with an inverted cone below it whose
// apex points at the globe center.
type Marker struct {
	// Key is the record's normalized abbreviation. It is a lookup key, not
	// an owning reference.
	Key   string
	Group *Node
	Cone  *Mesh
	Ball  *Mesh
}

// Meshes returns both hit-testable primitives.
func (m *Marker) Meshes() []*Mesh { return []*Mesh{m.Cone, m.Ball} }

// SetColor sets color and emissive glow of both primitives.
func (m *Marker) SetColor(c Color) {
	for _, mesh := range m.Meshes() {
		st := mesh.Material.State()
		st.Color = c
		st.Emissive = c
	}
}

// Color returns the ball's current color.
func (m *Marker) Color() Color { return m.Ball.Material.State().Color }

// MarkerSet is the arena of markers for one dataset, keyed by abbreviation.
type MarkerSet struct {
	Group   *Node
	markers []*Marker
	byKey   map[string]*Marker
	owners  map[*Mesh]*Marker
}

// BuildMarkers creates one marker per record, placed radius units from the
// origin and facing it. Every primitive gets its own geometry and material.
func BuildMarkers(records []states.Record, radius float64, pinColor Color) *MarkerSet {
	set := &MarkerSet{
		Group:  NewNode("pins"),
		byKey:  make(map[string]*Marker, len(records)),
		owners: make(map[*Mesh]*Marker, 2*len(records)),
	}
	for _, r := range records {
		m := newMarker(r, radius, pinColor)
		set.markers = append(set.markers, m)
		set.byKey[m.Key] = m
		set.owners[m.Cone] = m
		set.owners[m.Ball] = m
		set.Group.Add(m.Group)
	}
	return set
}

func newMarker(r states.Record, radius float64, pinColor Color) *Marker {
	material := &StandardMaterial{
		MaterialState: MaterialState{
			Color:             pinColor,
			Emissive:          pinColor,
			EmissiveIntensity: PinEmissiveIntensity,
			Opacity:           1,
		},
		Roughness: 0.3,
		Metalness: 0.2,
	}

	cone := NewMesh("pin-cone", NewConeGeometry(PinConeRadius, PinConeHeight, 16), material)
	// Tip the cone's +Y apex onto +Z, the inward axis after LookAt.
	cone.RotateX(math.Pi / 2)
	cone.Position = mgl64.Vec3{0, 0, PinConeOffset}

	ball := NewMesh("pin-ball", NewSphereGeometry(PinBallRadius, 16, 16), material.Clone())

	group := NewNode("pin-" + r.Abbreviation)
	group.Add(cone, ball)
	group.Position = geo.Project(r.Latitude, r.Longitude, radius)
	group.LookAt(mgl64.Vec3{})

	return &Marker{Key: r.Key(), Group: group, Cone: cone, Ball: ball}
}

// Len returns the number of markers.
func (s *MarkerSet) Len() int { return len(s.markers) }

// Markers returns the markers in record order.
func (s *MarkerSet) Markers() []*Marker { return s.markers }

// Get returns the marker for an abbreviation, ignoring case.
func (s *MarkerSet) Get(abbr string) (*Marker, bool) {
	m, ok := s.byKey[states.NormalizeKey(abbr)]
	return m, ok
}

// Owner returns the marker a mesh belongs to.
func (s *MarkerSet) Owner(mesh *Mesh) (*Marker, bool) {
	m, ok := s.owners[mesh]
	return m, ok
}

// Meshes flattens every marker's primitives into one hit-target list.
func (s *MarkerSet) Meshes() []*Mesh {
	out := make([]*Mesh, 0, 2*len(s.markers))
	for _, m := range s.markers {
		out = append(out, m.Cone, m.Ball)
	}
	return out
}

// Resources enumerates every geometry and material owned by the set.
func (s *MarkerSet) Resources() []Resource {
	out := make([]Resource, 0, 4*len(s.markers))
	for _, m := range s.markers {
		out = append(out, m.Cone.Resources()...)
		out = append(out, m.Ball.Resources()...)
	}
	return out
}

// Clear detaches every marker and empties the arena.
func (s *MarkerSet) Clear() {
	s.Group.Clear()
	s.markers = nil
	s.byKey = map[string]*Marker{}
	s.owners = map[*Mesh]*Marker{}
}
