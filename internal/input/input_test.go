package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	keys    map[int32]bool
	buttons map[rl.MouseButton]bool
	delta   rl.Vector2
	wheel   float32
}

func newFakeSource() *fakeSource {
	return &fakeSource{keys: map[int32]bool{}, buttons: map[rl.MouseButton]bool{}}
}

func (f *fakeSource) KeyDown(key int32) bool                { return f.keys[key] }
func (f *fakeSource) MouseButtonDown(b rl.MouseButton) bool { return f.buttons[b] }
func (f *fakeSource) MouseDelta() rl.Vector2                { return f.delta }
func (f *fakeSource) WheelMove() float32                    { return f.wheel }

type recorder struct{ got []CallbackContext }

func (r *recorder) handle(ctx CallbackContext) { r.got = append(r.got, ctx) }

func TestDefaultActionMapDefinesEveryAction(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)

	for _, name := range []string{ActionMove, ActionLook, ActionZoom, ActionJump, ActionCrouch, ActionRun, ActionPickUp, ActionThrow} {
		assert.NotNil(t, m.Action(name), name)
	}
	assert.Equal(t, KindVector2, m.Action(ActionMove).Kind)
	assert.Equal(t, KindAxis, m.Action(ActionZoom).Kind)
	assert.Equal(t, KindButton, m.Action(ActionJump).Kind)
}

func TestButtonPerformedOnPressCanceledOnRelease(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind(ActionCrouch, rec.handle))

	src := newFakeSource()
	src.keys[rl.KeyLeftControl] = true
	m.Update(src)
	m.Update(src) // held, no repeat
	src.keys[rl.KeyLeftControl] = false
	m.Update(src)

	require.Len(t, rec.got, 2)
	assert.True(t, rec.got[0].Performed())
	assert.Equal(t, float32(1), rec.got[0].ReadFloat())
	assert.True(t, rec.got[1].Canceled())
}

func TestAlternateKeysShareOneAction(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind(ActionCrouch, rec.handle))

	src := newFakeSource()
	src.keys[rl.KeyC] = true
	m.Update(src)
	src.keys[rl.KeyLeftControl] = true
	m.Update(src)

	assert.Len(t, rec.got, 1)
}

func TestCompositeIsNormalized(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind(ActionMove, rec.handle))

	src := newFakeSource()
	src.keys[rl.KeyW] = true
	src.keys[rl.KeyD] = true
	m.Update(src)

	require.Len(t, rec.got, 1)
	v := rec.got[0].ReadVector2()
	assert.InDelta(t, 0.7071, v.X, 1e-3)
	assert.InDelta(t, 0.7071, v.Y, 1e-3)

	src.keys[rl.KeyD] = false
	m.Update(src)
	require.Len(t, rec.got, 2)
	assert.Equal(t, rl.Vector2{Y: 1}, rec.got[1].ReadVector2())

	src.keys[rl.KeyW] = false
	m.Update(src)
	require.Len(t, rec.got, 3)
	assert.True(t, rec.got[2].Canceled())
	assert.Equal(t, rl.Vector2{}, rec.got[2].ReadVector2())
}

func TestLookFiresOnChangeOnly(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind(ActionLook, rec.handle))

	src := newFakeSource()
	src.delta = rl.Vector2{X: 3, Y: -1}
	m.Update(src)
	m.Update(src)
	src.delta = rl.Vector2{X: 1}
	m.Update(src)
	src.delta = rl.Vector2{}
	m.Update(src)
	m.Update(src)

	require.Len(t, rec.got, 3)
	assert.True(t, rec.got[0].Performed())
	assert.True(t, rec.got[1].Performed())
	assert.True(t, rec.got[2].Canceled())
}

func TestWheelAndMouseButton(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	zoom, throw := &recorder{}, &recorder{}
	require.NoError(t, m.Bind(ActionZoom, zoom.handle))
	require.NoError(t, m.Bind(ActionThrow, throw.handle))

	src := newFakeSource()
	src.wheel = -2
	src.buttons[rl.MouseButtonLeft] = true
	m.Update(src)

	require.Len(t, zoom.got, 1)
	assert.Equal(t, float32(-2), zoom.got[0].ReadFloat())
	require.Len(t, throw.got, 1)
	assert.True(t, throw.got[0].Performed())
}

func TestWheelFiresOnEveryNotch(t *testing.T) {
	m, err := DefaultActionMap()
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind(ActionZoom, rec.handle))

	src := newFakeSource()
	src.wheel = 1
	m.Update(src)
	m.Update(src)
	m.Update(src)
	src.wheel = 0
	m.Update(src)

	require.Len(t, rec.got, 4)
	for _, ctx := range rec.got[:3] {
		assert.True(t, ctx.Performed())
		assert.Equal(t, float32(1), ctx.ReadFloat())
	}
	assert.True(t, rec.got[3].Canceled())
}

func TestParseBindingsSkipsUnknownKeys(t *testing.T) {
	m, err := ParseBindings([]byte(`
actions:
  - name: Jump
    keys: [NoSuchKey, Space]
`))
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, m.Bind("Jump", rec.handle))
	assert.Equal(t, KindButton, m.Action("Jump").Kind)

	src := newFakeSource()
	src.keys[rl.KeySpace] = true
	m.Update(src)
	assert.Len(t, rec.got, 1)
}

func TestParseBindingsErrors(t *testing.T) {
	_, err := ParseBindings([]byte("actions: [[["))
	assert.Error(t, err)

	_, err = ParseBindings([]byte("actions:\n  - type: button\n"))
	assert.Error(t, err)

	_, err = ParseBindings([]byte("actions:\n  - name: X\n    type: trigger\n"))
	assert.Error(t, err)
}

func TestBindUnknownAction(t *testing.T) {
	m := NewActionMap()
	assert.Error(t, m.Bind("Missing", func(CallbackContext) {}))
}

func TestKeyCodeNames(t *testing.T) {
	k, err := KeyCode("w")
	require.NoError(t, err)
	assert.Equal(t, int32(rl.KeyW), k)

	k, err = KeyCode("LeftShift")
	require.NoError(t, err)
	assert.Equal(t, int32(rl.KeyLeftShift), k)

	k, err = KeyCode("7")
	require.NoError(t, err)
	assert.Equal(t, int32(rl.KeySeven), k)

	_, err = MouseButtonCode("side")
	assert.Error(t, err)
}
