package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component assignable to T, or the zero value.
// T may be a concrete pointer type or an interface embedding Component.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParent moves g under parent (nil detaches to the world root). With
// keepWorldPose the object stays where it is; otherwise its local transform is
// kept and reinterpreted relative to the new parent.
func (g *GameObject) SetParent(parent *GameObject, keepWorldPose bool) {
	if g.Parent == parent {
		return
	}
	var pos, rot rl.Vector3
	if keepWorldPose {
		pos, rot = g.WorldPosition(), g.WorldRotation()
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if parent != nil {
		parent.AddChild(g)
	}
	if !keepWorldPose {
		return
	}
	if parent == nil {
		g.Transform.Position = pos
		g.Transform.Rotation = rot
		return
	}
	g.Transform.Rotation = rl.Vector3Subtract(rot, parent.WorldRotation())
	g.Transform.Position = parent.InverseTransformPoint(pos)
}

// IsDescendantOf reports whether g is ancestor itself or sits below it.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if obj == ancestor {
			return true
		}
	}
	return false
}

// FindChild returns the first descendant with the given name (depth-first).
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(g.Parent.WorldRotation()))
	return rl.Vector3Add(parentPos, rotated)
}

// InverseTransformPoint converts a world-space point into g's local space.
func (g *GameObject) InverseTransformPoint(world rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(world, g.WorldPosition())
	local = rl.Vector3Transform(local, rl.MatrixTranspose(rotationMatrix(g.WorldRotation())))
	scale := g.WorldScale()
	if scale.X != 0 {
		local.X /= scale.X
	}
	if scale.Y != 0 {
		local.Y /= scale.Y
	}
	if scale.Z != 0 {
		local.Z /= scale.Z
	}
	return local
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// Forward is the world-space +Z axis of the object. Pitch (X) is applied
// before yaw (Y), so a positive pitch looks down.
func (g *GameObject) Forward() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{Z: 1}, rotationMatrix(g.WorldRotation()))
}

// Right is the world-space right-hand axis when looking along Forward with +Y up.
func (g *GameObject) Right() rl.Vector3 {
	return rl.Vector3Transform(rl.Vector3{X: -1}, rotationMatrix(g.WorldRotation()))
}

// rotationMatrix builds the X, then Y, then Z rotation used for all hierarchy math.
func rotationMatrix(rot rl.Vector3) rl.Matrix {
	rx := float32(float64(rot.X) * math.Pi / 180)
	ry := float32(float64(rot.Y) * math.Pi / 180)
	rz := float32(float64(rot.Z) * math.Pi / 180)
	return rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateX(rx), rl.MatrixRotateY(ry)), rl.MatrixRotateZ(rz))
}
