package components

import (
	"math"

	"area51/internal/engine"
	"area51/internal/input"
	"area51/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSettings holds every tunable of FPController. Field tags match the
// "controller" section of the config file.
type FPSettings struct {
	WalkSpeed    float32 `mapstructure:"walkSpeed"`
	RunSpeed     float32 `mapstructure:"runSpeed"`
	CrouchSpeed  float32 `mapstructure:"crouchSpeed"`
	CrouchHeight float32 `mapstructure:"crouchHeight"`
	StandHeight  float32 `mapstructure:"standHeight"`

	Gravity          float32 `mapstructure:"gravity"` // negative is down
	GroundedVelocity float32 `mapstructure:"groundedVelocity"`
	JumpHeight       float32 `mapstructure:"jumpHeight"`
	JumpBoost        float32 `mapstructure:"jumpBoost"`

	LookSensitivity   float32 `mapstructure:"lookSensitivity"`
	VerticalLookLimit float32 `mapstructure:"verticalLookLimit"`

	ZoomedInFOV  float32 `mapstructure:"zoomedInFOV"`
	ZoomedOutFOV float32 `mapstructure:"zoomedOutFOV"`
	ZoomStep     float32 `mapstructure:"zoomStep"`
	ZoomEaseRate float32 `mapstructure:"zoomEaseRate"`
	RunFOVBoost  float32 `mapstructure:"runFOVBoost"`

	PickupRange      float32 `mapstructure:"pickupRange"`
	PickupTag        string  `mapstructure:"pickupTag"` // empty accepts any Holdable
	ThrowForce       float32 `mapstructure:"throwForce"`
	ThrowUpwardBoost float32 `mapstructure:"throwUpwardBoost"`

	CameraName    string `mapstructure:"cameraName"`
	HoldPointName string `mapstructure:"holdPointName"`
}

func DefaultFPSettings() FPSettings {
	return FPSettings{
		WalkSpeed:    5,
		RunSpeed:     15,
		CrouchSpeed:  3,
		CrouchHeight: 0.9,
		StandHeight:  1.8,

		Gravity:          -9.81,
		GroundedVelocity: -2,
		JumpHeight:       3,
		JumpBoost:        1,

		LookSensitivity:   0.1,
		VerticalLookLimit: 89,

		ZoomedInFOV:  10,
		ZoomedOutFOV: 100,
		ZoomStep:     2,
		ZoomEaseRate: 10,
		RunFOVBoost:  8,

		PickupRange:      3,
		ThrowForce:       10,
		ThrowUpwardBoost: 2,

		CameraName:    "Camera",
		HoldPointName: "HoldPoint",
	}
}

// FPController is the first-person player: planar movement with gravity and
// jumping through a CharacterController, mouse look split between body yaw and
// camera pitch, scroll zoom, crouch, run, and picking up, dropping and
// throwing Holdable objects. Input arrives through the On* callbacks; Update
// applies it once per tick.
type FPController struct {
	engine.BaseComponent
	FPSettings

	PickedUp engine.EventWithArg[*engine.GameObject]
	Dropped  engine.EventWithArg[*engine.GameObject]
	Thrown   engine.EventWithArg[*engine.GameObject]

	mover     *CharacterController
	cameraObj *engine.GameObject
	camera    *Camera
	holdPoint *engine.GameObject

	moveInput rl.Vector2
	lookInput rl.Vector2

	velocityY float32
	crouching bool
	running   bool
	moveSpeed float32
	targetFOV float32
	pitch     float32
	held      Holdable
}

func NewFPController(settings FPSettings) *FPController {
	return &FPController{
		FPSettings: settings,
		moveSpeed:  settings.WalkSpeed,
		targetFOV:  settings.ZoomedOutFOV,
	}
}

func (f *FPController) Start() {
	g := f.GetGameObject()
	f.mover = engine.GetComponent[*CharacterController](g)
	if f.mover == nil {
		logging.Logger.Warn().Str("object", g.Name).Msg("FPController without CharacterController, movement disabled")
	}

	f.cameraObj = g.FindChild(f.CameraName)
	if f.cameraObj != nil {
		f.camera = engine.GetComponent[*Camera](f.cameraObj)
		f.holdPoint = f.cameraObj.FindChild(f.HoldPointName)
		f.pitch = f.cameraObj.Transform.Rotation.X
	}
	if f.camera != nil {
		f.targetFOV = clamp(f.camera.FOV, f.ZoomedInFOV, f.ZoomedOutFOV)
	} else {
		logging.Logger.Warn().Str("object", g.Name).Str("camera", f.CameraName).Msg("FPController camera not found")
	}
	if f.holdPoint == nil {
		logging.Logger.Warn().Str("object", g.Name).Str("holdPoint", f.HoldPointName).Msg("FPController hold point not found, pickup disabled")
	}
	f.updateSpeed()
}

// OnMovement buffers the planar move vector (x strafe, y forward).
func (f *FPController) OnMovement(ctx input.CallbackContext) {
	f.moveInput = ctx.ReadVector2()
}

// OnLook buffers the look delta (x right, y up).
func (f *FPController) OnLook(ctx input.CallbackContext) {
	f.lookInput = ctx.ReadVector2()
}

// OnCrouch is hold-to-crouch. Only a real transition touches the mover.
func (f *FPController) OnCrouch(ctx input.CallbackContext) {
	want := f.crouching
	switch {
	case ctx.Performed():
		want = true
	case ctx.Canceled():
		want = false
	}
	if want == f.crouching {
		return
	}
	f.crouching = want

	if f.mover != nil {
		height := f.StandHeight
		if want {
			height = f.CrouchHeight
		}
		// Keep the feet where they are.
		g := f.GetGameObject()
		g.Transform.Position.Y += (height - f.mover.Height) / 2
		f.mover.Height = height
	}
	f.updateSpeed()
}

func (f *FPController) OnJump(ctx input.CallbackContext) {
	if !ctx.Performed() || f.mover == nil || !f.mover.IsGrounded() {
		return
	}
	v2 := -2 * f.Gravity * f.JumpHeight
	if v2 <= 0 {
		return
	}
	f.velocityY = float32(math.Sqrt(float64(v2))) * f.JumpBoost
}

func (f *FPController) OnRun(ctx input.CallbackContext) {
	switch {
	case ctx.Performed():
		f.running = true
	case ctx.Canceled():
		f.running = false
	}
	f.updateSpeed()
}

// OnZoom narrows the target FOV on scroll up and widens it on scroll down.
func (f *FPController) OnZoom(ctx input.CallbackContext) {
	s := ctx.ReadFloat()
	if !ctx.Performed() || s == 0 {
		return
	}
	f.targetFOV = clamp(f.targetFOV-s*f.ZoomStep, f.ZoomedInFOV, f.ZoomedOutFOV)
}

// OnPickUp grabs the Holdable under the crosshair, or drops the held one.
func (f *FPController) OnPickUp(ctx input.CallbackContext) {
	if !ctx.Performed() {
		return
	}
	if f.held != nil {
		f.Drop()
		return
	}
	if f.cameraObj == nil || f.holdPoint == nil {
		return
	}

	g := f.GetGameObject()
	if g.Scene == nil || g.Scene.World == nil {
		return
	}
	hit, ok := g.Scene.World.Raycast(f.cameraObj.WorldPosition(), f.cameraObj.Forward(), f.PickupRange, g)
	if !ok {
		return
	}
	if f.PickupTag != "" && !hit.GameObject.HasTag(f.PickupTag) {
		return
	}
	target := engine.GetComponent[Holdable](hit.GameObject)
	if target == nil || target.IsHeld() {
		return
	}

	target.PickUp(f.holdPoint)
	if !target.IsHeld() {
		return
	}
	f.held = target
	logging.Logger.Debug().Str("object", hit.GameObject.Name).Float32("distance", hit.Distance).Msg("picked up")
	f.PickedUp.Invoke(hit.GameObject)
}

// Drop releases the held object in place. No-op when nothing is held.
func (f *FPController) Drop() {
	if f.held == nil {
		return
	}
	obj := f.held.GetGameObject()
	f.held.Drop()
	f.held = nil
	logging.Logger.Debug().Str("object", obj.Name).Msg("dropped")
	f.Dropped.Invoke(obj)
}

// OnThrow launches the held object along the view direction.
func (f *FPController) OnThrow(ctx input.CallbackContext) {
	if !ctx.Performed() || f.held == nil {
		return
	}
	forward := rl.Vector3{Z: 1}
	if f.cameraObj != nil {
		forward = f.cameraObj.Forward()
	}
	impulse := rl.Vector3Add(
		rl.Vector3Scale(forward, f.ThrowForce),
		rl.Vector3{Y: f.ThrowUpwardBoost},
	)

	obj := f.held.GetGameObject()
	f.held.Throw(impulse)
	f.held = nil
	logging.Logger.Debug().Str("object", obj.Name).Float32("force", f.ThrowForce).Msg("thrown")
	f.Thrown.Invoke(obj)
}

func (f *FPController) Update(deltaTime float32) {
	f.move(deltaTime)
	f.look()
	f.ease(deltaTime)

	if f.held != nil && f.holdPoint != nil {
		f.held.Track(f.holdPoint.WorldPosition(), deltaTime)
	}
}

func (f *FPController) move(dt float32) {
	if f.mover == nil {
		return
	}
	g := f.GetGameObject()

	planar := rl.Vector3Add(
		rl.Vector3Scale(g.Right(), f.moveInput.X),
		rl.Vector3Scale(g.Forward(), f.moveInput.Y),
	)
	planar.Y = 0
	if planar.X != 0 || planar.Z != 0 {
		f.mover.Move(rl.Vector3Scale(planar, f.moveSpeed*dt))
	}

	if f.mover.IsGrounded() && f.velocityY < 0 {
		f.velocityY = f.GroundedVelocity
	}
	f.velocityY += f.Gravity * dt
	f.mover.Move(rl.Vector3{Y: f.velocityY * dt})
}

func (f *FPController) look() {
	if f.lookInput.X == 0 && f.lookInput.Y == 0 {
		return
	}
	g := f.GetGameObject()

	// Positive pitch looks down; raising the mouse must look up.
	f.pitch = clamp(f.pitch-f.lookInput.Y*f.LookSensitivity, -f.VerticalLookLimit, f.VerticalLookLimit)
	if f.cameraObj != nil {
		f.cameraObj.Transform.Rotation.X = f.pitch
	}
	// Yaw grows counter-clockwise seen from above, so turning right subtracts.
	g.Transform.Rotation.Y -= f.lookInput.X * f.LookSensitivity
}

func (f *FPController) ease(dt float32) {
	if f.camera == nil {
		return
	}
	target := f.targetFOV
	if f.running && !f.crouching && (f.moveInput.X != 0 || f.moveInput.Y != 0) {
		target = min(target+f.RunFOVBoost, f.ZoomedOutFOV)
	}
	t := clamp(dt*f.ZoomEaseRate, 0, 1)
	f.camera.FOV += (target - f.camera.FOV) * t
}

// updateSpeed picks the stance speed; crouching wins over running.
func (f *FPController) updateSpeed() {
	switch {
	case f.crouching:
		f.moveSpeed = f.CrouchSpeed
	case f.running:
		f.moveSpeed = f.RunSpeed
	default:
		f.moveSpeed = f.WalkSpeed
	}
}

func (f *FPController) IsCrouching() bool  { return f.crouching }
func (f *FPController) IsRunning() bool    { return f.running }
func (f *FPController) MoveSpeed() float32 { return f.moveSpeed }
func (f *FPController) TargetFOV() float32 { return f.targetFOV }
func (f *FPController) Pitch() float32     { return f.pitch }

// VerticalVelocity is the current vertical speed in units per second.
func (f *FPController) VerticalVelocity() float32 { return f.velocityY }

// IsGrounded reports the mover's grounded state.
func (f *FPController) IsGrounded() bool {
	return f.mover != nil && f.mover.IsGrounded()
}

// Held returns the object being carried, or nil.
func (f *FPController) Held() Holdable { return f.held }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
