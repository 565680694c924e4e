package world

import (
	"area51/internal/components"
	"area51/internal/config"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Player is the first-person rig: a body that moves and collides, a camera
// child at eye height and a hold point in front of the camera.
type Player struct {
	Body       *engine.GameObject
	Eye        *engine.GameObject
	HoldPoint  *engine.GameObject
	Mover      *components.CharacterController
	Controller *components.FPController
	Camera     *components.Camera
}

// SpawnPlayer builds the rig with its feet at spawn.Position and adds it to
// the world. It is started with the rest of the scene.
func (w *World) SpawnPlayer(spawn config.PlayerSpawn, settings components.FPSettings) *Player {
	body := engine.NewGameObject("Player")
	feet := vec3(spawn.Position)
	body.Transform.Position = rl.Vector3{X: feet.X, Y: feet.Y + settings.StandHeight/2, Z: feet.Z}

	mover := components.NewCharacterController()
	mover.Height = settings.StandHeight
	body.AddComponent(mover)
	controller := components.NewFPController(settings)
	body.AddComponent(controller)

	eye := engine.NewGameObject(settings.CameraName)
	eye.Transform.Position = rl.Vector3{Y: spawn.EyeHeight}
	cam := components.NewCamera()
	if spawn.FOV > 0 {
		cam.FOV = spawn.FOV
	}
	eye.AddComponent(cam)
	body.AddChild(eye)

	hold := engine.NewGameObject(settings.HoldPointName)
	hold.Transform.Position = rl.Vector3{Z: spawn.HoldDistance}
	eye.AddChild(hold)

	w.Add(body)
	return &Player{
		Body:       body,
		Eye:        eye,
		HoldPoint:  hold,
		Mover:      mover,
		Controller: controller,
		Camera:     cam,
	}
}
