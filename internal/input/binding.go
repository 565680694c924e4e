package input

import (
	"fmt"
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type binding interface {
	read(src Source) rl.Vector2
}

type keyBinding struct{ keys []int32 }

func (b keyBinding) read(src Source) rl.Vector2 {
	for _, k := range b.keys {
		if src.KeyDown(k) {
			return rl.Vector2{X: 1}
		}
	}
	return rl.Vector2{}
}

type mouseButtonBinding struct{ buttons []rl.MouseButton }

func (b mouseButtonBinding) read(src Source) rl.Vector2 {
	for _, btn := range b.buttons {
		if src.MouseButtonDown(btn) {
			return rl.Vector2{X: 1}
		}
	}
	return rl.Vector2{}
}

// compositeBinding builds a 2D vector from four keys, normalized so diagonals
// are not faster than straight lines.
type compositeBinding struct {
	up, down, left, right int32
}

func (b compositeBinding) read(src Source) rl.Vector2 {
	var v rl.Vector2
	if src.KeyDown(b.up) {
		v.Y++
	}
	if src.KeyDown(b.down) {
		v.Y--
	}
	if src.KeyDown(b.right) {
		v.X++
	}
	if src.KeyDown(b.left) {
		v.X--
	}
	if l := float32(math.Hypot(float64(v.X), float64(v.Y))); l > 1 {
		v.X /= l
		v.Y /= l
	}
	return v
}

type mouseDeltaBinding struct{}

func (mouseDeltaBinding) read(src Source) rl.Vector2 { return src.MouseDelta() }

type mouseWheelBinding struct{}

func (mouseWheelBinding) read(src Source) rl.Vector2 { return rl.Vector2{X: src.WheelMove()} }

var keyByName = map[string]int32{
	"space":        rl.KeySpace,
	"escape":       rl.KeyEscape,
	"enter":        rl.KeyEnter,
	"tab":          rl.KeyTab,
	"backspace":    rl.KeyBackspace,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
	"f1":           rl.KeyF1,
	"f2":           rl.KeyF2,
	"f3":           rl.KeyF3,
}

func init() {
	for i := int32(0); i < 26; i++ {
		keyByName[strings.ToLower(string(rune('A'+i)))] = rl.KeyA + i
	}
	for i := int32(0); i < 10; i++ {
		keyByName[string(rune('0'+i))] = rl.KeyZero + i
	}
}

var mouseButtonByName = map[string]rl.MouseButton{
	"left":   rl.MouseButtonLeft,
	"right":  rl.MouseButtonRight,
	"middle": rl.MouseButtonMiddle,
}

// KeyCode resolves a key name such as "W", "Space" or "LeftShift".
func KeyCode(name string) (int32, error) {
	k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// MouseButtonCode resolves "left", "right" or "middle".
func MouseButtonCode(name string) (rl.MouseButton, error) {
	b, ok := mouseButtonByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	return b, nil
}
