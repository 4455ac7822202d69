// Package scene is a small retained-mode 3D scene graph: transform nodes,
// meshes with analytic ray intersection, a perspective camera and the
// globe's marker set.
package scene

// Background is the radial backdrop behind the scene: Inner at 20% of the
// width and height from the top-left corner, fading to Outer at the
// farthest corner.
type Background struct {
	Inner, Outer Color
}

// Scene is the root of a scene graph plus its lights and backdrop.
type Scene struct {
	Root        *Node
	Directional []*DirectionalLight
	Ambient     []*AmbientLight
	Background  Background
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{Root: NewNode("scene")}
}

// Add attaches objects to the scene root.
func (s *Scene) Add(objs ...Object) { s.Root.Add(objs...) }

// Meshes returns every mesh in the graph in depth-first order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	Walk(s.Root, func(o Object) {
		if m, ok := o.(*Mesh); ok {
			out = append(out, m)
		}
	})
	return out
}
