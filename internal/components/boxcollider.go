package components

import (
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("BoxCollider", func(p engine.Props) engine.Component {
		b := NewBoxCollider(p.Vector3("size", rl.Vector3{X: 1, Y: 1, Z: 1}))
		b.Offset = p.Vector3("offset", rl.Vector3{})
		return b
	})
}

// BoxCollider is an axis-aligned box. Rotation is ignored; size is scaled by
// the object's world scale.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter returns the world-space center of the box.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

// Bounds returns the world-space min and max corners.
func (b *BoxCollider) Bounds() (rl.Vector3, rl.Vector3) {
	c := b.GetCenter()
	half := rl.Vector3Scale(b.GetWorldSize(), 0.5)
	return rl.Vector3Subtract(c, half), rl.Vector3Add(c, half)
}
