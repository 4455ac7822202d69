package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Object is anything that can be placed in the scene graph.
type Object interface {
	Base() *Node
}

// Node is a transform in the scene graph. The zero value is not usable;
// create nodes with NewNode.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
	Visible  bool

	parent   *Node
	children []Object
}

// NewNode returns an identity-transform node.
func NewNode(name string) *Node {
	n := &Node{}
	n.init(name)
	return n
}

func (n *Node) init(name string) {
	n.Name = name
	n.Rotation = mgl64.QuatIdent()
	n.Scale = mgl64.Vec3{1, 1, 1}
	n.Visible = true
}

// Base implements Object.
func (n *Node) Base() *Node { return n }

// Parent returns the enclosing node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children.
func (n *Node) Children() []Object { return n.children }

// Add attaches objects as children, detaching them from any previous parent.
func (n *Node) Add(objs ...Object) {
	for _, o := range objs {
		b := o.Base()
		if b.parent != nil {
			b.parent.Remove(o)
		}
		b.parent = n
		n.children = append(n.children, o)
	}
}

// Remove detaches obj if it is a direct child.
func (n *Node) Remove(obj Object) {
	b := obj.Base()
	for i, c := range n.children {
		if c.Base() == b {
			n.children = append(n.children[:i], n.children[i+1:]...)
			b.parent = nil
			return
		}
	}
}

// Clear detaches every child.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.Base().parent = nil
	}
	n.children = nil
}

// SetScalar sets a uniform scale.
func (n *Node) SetScalar(s float64) { n.Scale = mgl64.Vec3{s, s, s} }

// RotateX rotates the node about its local X axis.
func (n *Node) RotateX(angle float64) {
	n.Rotation = n.Rotation.Mul(mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})).Normalize()
}

// RotateY rotates the node about its local Y axis.
func (n *Node) RotateY(angle float64) {
	n.Rotation = n.Rotation.Mul(mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})).Normalize()
}

// LookAt orients the node so its local +Z axis points at target, expressed
// in the parent's coordinate space.
func (n *Node) LookAt(target mgl64.Vec3) {
	z := target.Sub(n.Position)
	if z.Len() == 0 {
		return
	}
	z = z.Normalize()
	up := mgl64.Vec3{0, 1, 0}
	x := up.Cross(z)
	if x.Len() < 1e-9 {
		// Looking straight up or down: nudge so the basis stays defined.
		z = mgl64.Vec3{z.X(), z.Y(), z.Z() + 1e-4}.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)
	n.Rotation = mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize()
}

// LocalMatrix composes translation, rotation and scale.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

// WorldMatrix returns the node's transform relative to the scene root.
func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return n.WorldMatrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
}

// Walk visits obj and all its descendants depth-first. Invisible subtrees
// are still visited.
func Walk(obj Object, fn func(Object)) {
	fn(obj)
	for _, c := range obj.Base().children {
		Walk(c, fn)
	}
}
