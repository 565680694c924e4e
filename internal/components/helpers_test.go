package components

import (
	"testing"

	"area51/internal/engine"
	"area51/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// stubWorld serves collidables from the scene and answers raycasts with a
// canned hit, honouring the ignore list.
type stubWorld struct {
	scene *engine.Scene
	hit   *engine.RaycastResult
	rays  int
}

func (w *stubWorld) GetCollidableObjects() []*engine.GameObject { return w.scene.GameObjects }
func (w *stubWorld) SpawnObject(g *engine.GameObject)          { w.scene.AddGameObject(g) }
func (w *stubWorld) Destroy(g *engine.GameObject)              { w.scene.RemoveGameObject(g) }

func (w *stubWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore ...*engine.GameObject) (engine.RaycastResult, bool) {
	w.rays++
	if w.hit == nil || w.hit.Distance > maxDistance {
		return engine.RaycastResult{}, false
	}
	for _, ig := range ignore {
		if w.hit.GameObject.IsDescendantOf(ig) {
			return engine.RaycastResult{}, false
		}
	}
	return *w.hit, true
}

type testRig struct {
	scene      *engine.Scene
	world      *stubWorld
	player     *engine.GameObject
	cameraObj  *engine.GameObject
	holdPoint  *engine.GameObject
	mover      *CharacterController
	camera     *Camera
	controller *FPController
}

// newTestRig builds a player standing on a floor whose top is at y = 0.
func newTestRig(t *testing.T) *testRig {
	t.Helper()
	scene := engine.NewScene("test")
	world := &stubWorld{scene: scene}
	scene.World = world

	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	floor.AddComponent(NewBoxCollider(rl.Vector3{X: 50, Y: 1, Z: 50}))
	scene.AddGameObject(floor)

	settings := DefaultFPSettings()
	player := engine.NewGameObject("Player")
	player.Transform.Position = rl.Vector3{Y: settings.StandHeight / 2}
	mover := NewCharacterController()
	mover.Height = settings.StandHeight
	player.AddComponent(mover)
	controller := NewFPController(settings)
	player.AddComponent(controller)

	cameraObj := engine.NewGameObject(settings.CameraName)
	cameraObj.Transform.Position = rl.Vector3{Y: 0.7}
	camera := NewCamera()
	cameraObj.AddComponent(camera)
	player.AddChild(cameraObj)

	holdPoint := engine.NewGameObject(settings.HoldPointName)
	holdPoint.Transform.Position = rl.Vector3{Z: 2}
	cameraObj.AddChild(holdPoint)

	scene.AddGameObject(player)
	scene.AddGameObject(cameraObj)
	scene.AddGameObject(holdPoint)

	return &testRig{
		scene:      scene,
		world:      world,
		player:     player,
		cameraObj:  cameraObj,
		holdPoint:  holdPoint,
		mover:      mover,
		camera:     camera,
		controller: controller,
	}
}

// addCrate places a holdable crate at pos and points the stub raycast at it.
func (r *testRig) addCrate(pos rl.Vector3, follow FollowMode) (*engine.GameObject, *PickUpObject, *Rigidbody) {
	crate := engine.NewGameObject("Crate")
	crate.Tags = []string{"holdable"}
	crate.Transform.Position = pos
	rb := NewRigidbody()
	crate.AddComponent(rb)
	crate.AddComponent(NewBoxCollider(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))
	obj := NewPickUpObject()
	obj.Follow = follow
	crate.AddComponent(obj)
	r.scene.AddGameObject(crate)
	r.world.hit = &engine.RaycastResult{GameObject: crate, Point: pos, Distance: 1.5}
	return crate, obj, rb
}

func performed(action string, v rl.Vector2) input.CallbackContext {
	return input.NewContext(action, input.PhasePerformed, v)
}

func canceled(action string) input.CallbackContext {
	return input.NewContext(action, input.PhaseCanceled, rl.Vector2{})
}

func press(action string) input.CallbackContext {
	return performed(action, rl.Vector2{X: 1})
}
