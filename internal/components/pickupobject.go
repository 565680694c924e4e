package components

import (
	"fmt"

	"area51/internal/engine"
	"area51/internal/logging"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("PickUpObject", func(p engine.Props) engine.Component {
		o := NewPickUpObject()
		mode, err := ParseFollowMode(p.String("follow", o.Follow.String()))
		if err != nil {
			logging.Logger.Warn().Err(err).Msg("PickUpObject falls back to kinematic follow")
		}
		o.Follow = mode
		o.FollowGain = p.Float("followGain", o.FollowGain)
		o.MinFollowForce = p.Float("minFollowForce", o.MinFollowForce)
		o.MaxFollowForce = p.Float("maxFollowForce", o.MaxFollowForce)
		o.SnapDistance = p.Float("snapDistance", o.SnapDistance)
		return o
	})
}

// Holdable is anything the player can carry. Implementations own the
// physical side of being held; the controller only decides when.
type Holdable interface {
	engine.Component
	// PickUp attaches the object to holdPoint.
	PickUp(holdPoint *engine.GameObject)
	// Drop releases the object where it is, with gravity restored.
	Drop()
	// Throw drops the object and applies impulse to it.
	Throw(impulse rl.Vector3)
	// Track pulls a held object towards target. Called once per tick.
	Track(target rl.Vector3, deltaTime float32)
	IsHeld() bool
}

// FollowMode is how a held PickUpObject keeps up with the hold point.
type FollowMode int

const (
	// FollowKinematic parents the body to the hold point and freezes it.
	FollowKinematic FollowMode = iota
	// FollowSpring leaves the body dynamic and drives its velocity towards
	// the hold point, so it still collides and lags behind fast turns.
	FollowSpring
)

func (m FollowMode) String() string {
	if m == FollowSpring {
		return "spring"
	}
	return "kinematic"
}

func ParseFollowMode(s string) (FollowMode, error) {
	switch s {
	case "kinematic", "":
		return FollowKinematic, nil
	case "spring":
		return FollowSpring, nil
	}
	return FollowKinematic, fmt.Errorf("unknown follow mode %q", s)
}

// PickUpObject makes a rigid body Holdable.
type PickUpObject struct {
	engine.BaseComponent
	Follow FollowMode

	// Spring follow tuning: velocity = dir * clamp(dist*FollowGain, Min, Max).
	FollowGain     float32
	MinFollowForce float32
	MaxFollowForce float32
	SnapDistance   float32

	rb        *Rigidbody
	holdPoint *engine.GameObject
}

func NewPickUpObject() *PickUpObject {
	return &PickUpObject{
		Follow:         FollowKinematic,
		FollowGain:     12,
		MinFollowForce: 0.5,
		MaxFollowForce: 20,
		SnapDistance:   0.02,
	}
}

func (o *PickUpObject) Start() {
	o.body()
}

func (o *PickUpObject) body() *Rigidbody {
	if o.rb == nil {
		o.rb = engine.GetComponent[*Rigidbody](o.GetGameObject())
	}
	return o.rb
}

func (o *PickUpObject) IsHeld() bool { return o.holdPoint != nil }

func (o *PickUpObject) PickUp(holdPoint *engine.GameObject) {
	rb := o.body()
	if rb == nil || holdPoint == nil {
		return
	}
	g := o.GetGameObject()

	rb.UseGravity = false
	rb.Stop()
	rb.Wake()
	o.holdPoint = holdPoint

	if o.Follow == FollowKinematic {
		rb.IsKinematic = true
		g.SetParent(holdPoint, false)
		g.Transform.Position = rl.Vector3{}
		g.Transform.Rotation = rl.Vector3{}
	}
}

func (o *PickUpObject) Track(target rl.Vector3, deltaTime float32) {
	rb := o.body()
	if rb == nil || !o.IsHeld() {
		return
	}
	g := o.GetGameObject()

	if o.Follow == FollowKinematic {
		if g.Parent == o.holdPoint {
			g.Transform.Position = rl.Vector3{}
		} else {
			g.Transform.Position = target
		}
		return
	}

	offset := rl.Vector3Subtract(target, g.WorldPosition())
	dist := rl.Vector3Length(offset)
	rb.AngularVelocity = rl.Vector3{}
	if dist <= o.SnapDistance {
		rb.Velocity = rl.Vector3{}
		return
	}
	speed := clamp(dist*o.FollowGain, o.MinFollowForce, o.MaxFollowForce)
	rb.Velocity = rl.Vector3Scale(offset, speed/dist)
	rb.Wake()
}

func (o *PickUpObject) Drop() {
	rb := o.body()
	if rb == nil || !o.IsHeld() {
		return
	}
	g := o.GetGameObject()

	if g.Parent == o.holdPoint {
		g.SetParent(nil, true)
	}
	o.holdPoint = nil
	rb.IsKinematic = false
	rb.UseGravity = true
	rb.Wake()
}

func (o *PickUpObject) Throw(impulse rl.Vector3) {
	if !o.IsHeld() {
		return
	}
	o.Drop()
	o.body().AddForce(impulse, ForceImpulse)
}
