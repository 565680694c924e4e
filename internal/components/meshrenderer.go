package components

import (
	"fmt"
	"strings"

	"area51/internal/engine"
	"area51/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("MeshRenderer", func(p engine.Props) engine.Component {
		mesh, err := ParseMeshType(p.String("mesh", "cube"))
		if err != nil {
			logging.Logger.Warn().Err(err).Msg("MeshRenderer falls back to cube")
		}
		color, err := ParseColor(p.String("color", "White"))
		if err != nil {
			logging.Logger.Warn().Err(err).Msg("MeshRenderer falls back to white")
		}
		m := NewMeshRenderer(mesh, color, p.Vector3("size", rl.Vector3{X: 1, Y: 1, Z: 1}))
		m.Wires = p.Bool("wires", m.Wires)
		return m
	})
}

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

func ParseMeshType(s string) (MeshType, error) {
	switch strings.ToLower(s) {
	case "cube":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	case "plane":
		return MeshPlane, nil
	}
	return MeshCube, fmt.Errorf("unknown mesh %q", s)
}

var colorByName = map[string]rl.Color{
	"red":       rl.Red,
	"blue":      rl.Blue,
	"green":     rl.Green,
	"purple":    rl.Purple,
	"orange":    rl.Orange,
	"yellow":    rl.Yellow,
	"pink":      rl.Pink,
	"skyblue":   rl.SkyBlue,
	"lime":      rl.Lime,
	"magenta":   rl.Magenta,
	"white":     rl.White,
	"lightgray": rl.LightGray,
	"gray":      rl.Gray,
	"darkgray":  rl.DarkGray,
	"black":     rl.Black,
	"brown":     rl.Brown,
	"beige":     rl.Beige,
	"maroon":    rl.Maroon,
	"gold":      rl.Gold,
	"darkgreen": rl.DarkGreen,
}

// ParseColor accepts a raylib color name ("SkyBlue") or "#rrggbb[aa]".
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		var r, g, b uint8
		a := uint8(255)
		switch len(s) {
		case 7:
			if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
				return rl.NewColor(r, g, b, a), nil
			}
		case 9:
			if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err == nil {
				return rl.NewColor(r, g, b, a), nil
			}
		}
	}
	return rl.White, fmt.Errorf("unknown color %q", s)
}

// MeshRenderer draws a primitive at its object's world transform. Size is
// the full extent for cubes and planes; X is the radius for spheres.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wires    bool // outline edges so rotation is visible
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
		Wires:    true,
	}
}

// BoundingRadius is the radius of a sphere enclosing the mesh in world space.
func (m *MeshRenderer) BoundingRadius() float32 {
	s := m.GetGameObject().WorldScale()
	if m.MeshType == MeshSphere {
		return m.Size.X * max(s.X, s.Y, s.Z)
	}
	scaled := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}
	return rl.Vector3Length(scaled) / 2
}

// Draw must be called inside BeginMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	// Same X, then Y, then Z order as the transform hierarchy.
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, size, m.Color)
		if m.Wires {
			rl.DrawCubeWiresV(rl.Vector3{}, size, rl.Fade(rl.Black, 0.5))
		}
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, size.X, m.Color)
		if m.Wires {
			rl.DrawSphereWires(rl.Vector3{}, size.X*1.01, 8, 8, rl.Fade(rl.Black, 0.3))
		}
	case MeshPlane:
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
	rl.PopMatrix()
}
