package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Source is the device state an ActionMap polls each tick.
type Source interface {
	KeyDown(key int32) bool
	MouseButtonDown(button rl.MouseButton) bool
	// MouseDelta is the pointer motion since the last frame with +Y pointing up.
	MouseDelta() rl.Vector2
	WheelMove() float32
}

// RaylibSource reads the live window state. It needs an open raylib window.
type RaylibSource struct{}

func (RaylibSource) KeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (RaylibSource) MouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}

func (RaylibSource) MouseDelta() rl.Vector2 {
	d := rl.GetMouseDelta()
	// Screen space grows downwards.
	return rl.Vector2{X: d.X, Y: -d.Y}
}

func (RaylibSource) WheelMove() float32 { return rl.GetMouseWheelMove() }
