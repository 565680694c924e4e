package components

import (
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Camera", func(p engine.Props) engine.Component {
		c := NewCamera()
		c.FOV = p.Float("fov", c.FOV)
		c.Near = p.Float("near", c.Near)
		c.Far = p.Float("far", c.Far)
		return c
	})
}

// Camera renders from its object's world position along its Forward axis.
type Camera struct {
	engine.BaseComponent
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.05,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	eye := g.WorldPosition()
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, g.Forward()),
		Up:         rl.Vector3{Y: 1},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
