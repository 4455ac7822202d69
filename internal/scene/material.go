package scene

// Side selects which faces of a mesh are drawn.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// MaterialState holds the properties every material kind shares.
type MaterialState struct {
	disposable
	Color             Color
	Emissive          Color
	EmissiveIntensity float64
	Opacity           float64
	Transparent       bool
	Side              Side
}

// Material is the surface appearance of a mesh. Every mesh owns its own
// material instance so colors can be changed per mesh.
type Material interface {
	Resource
	State() *MaterialState
	Clone() Material
}

// PhongMaterial is a shiny surface lit with specular highlights.
type PhongMaterial struct {
	MaterialState
	Shininess float64
	Specular  Color
}

// State implements Material.
func (m *PhongMaterial) State() *MaterialState { return &m.MaterialState }

// Clone implements Material. The clone is not disposed.
func (m *PhongMaterial) Clone() Material {
	c := *m
	c.disposed = false
	return &c
}

// StandardMaterial is a physically based surface.
type StandardMaterial struct {
	MaterialState
	Roughness float64
	Metalness float64
}

// State implements Material.
func (m *StandardMaterial) State() *MaterialState { return &m.MaterialState }

// Clone implements Material. The clone is not disposed.
func (m *StandardMaterial) Clone() Material {
	c := *m
	c.disposed = false
	return &c
}

// BasicMaterial is unlit.
type BasicMaterial struct {
	MaterialState
}

// State implements Material.
func (m *BasicMaterial) State() *MaterialState { return &m.MaterialState }

// Clone implements Material. The clone is not disposed.
func (m *BasicMaterial) Clone() Material {
	c := *m
	c.disposed = false
	return &c
}
