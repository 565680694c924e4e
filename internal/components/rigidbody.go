package components

import (
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("Rigidbody", func(p engine.Props) engine.Component {
		rb := NewRigidbody()
		rb.Mass = p.Float("mass", rb.Mass)
		rb.Bounciness = p.Float("bounciness", rb.Bounciness)
		rb.Friction = p.Float("friction", rb.Friction)
		rb.AngularDamping = p.Float("angularDamping", rb.AngularDamping)
		rb.UseGravity = p.Bool("useGravity", rb.UseGravity)
		rb.IsKinematic = p.Bool("isKinematic", rb.IsKinematic)
		rb.CanSleep = p.Bool("canSleep", rb.CanSleep)
		return rb
	})
}

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, object might sleep
	SleepAngularThreshold  = 1.0 // deg/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

// ForceMode selects how AddForce interprets its argument.
type ForceMode int

const (
	// ForceContinuous is a force in newtons, integrated over the next step.
	ForceContinuous ForceMode = iota
	// ForceImpulse changes momentum immediately (v += f / mass).
	ForceImpulse
	// ForceVelocityChange changes velocity immediately, ignoring mass.
	ForceVelocityChange
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Mass            float32
	Bounciness      float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32 // 0 = ice, 1 = stops immediately
	AngularDamping  float32 // how fast rotation slows down
	UseGravity      bool
	IsKinematic     bool // moves but doesn't get pushed by physics

	// Sleeping bodies skip simulation until woken.
	IsSleeping bool
	sleepTimer float32
	CanSleep   bool

	force rl.Vector3 // accumulated continuous force, cleared each step
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass:           1.0,
		Bounciness:     0.3,
		Friction:       0.1,
		AngularDamping: 0.98,
		UseGravity:     true,
		CanSleep:       true,
	}
}

// AddForce applies f according to mode and wakes the body. Kinematic bodies ignore forces.
func (r *Rigidbody) AddForce(f rl.Vector3, mode ForceMode) {
	if r.IsKinematic {
		return
	}
	switch mode {
	case ForceImpulse:
		r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(f, 1/r.mass()))
	case ForceVelocityChange:
		r.Velocity = rl.Vector3Add(r.Velocity, f)
	default:
		r.force = rl.Vector3Add(r.force, f)
	}
	r.Wake()
}

// ConsumeForce returns the acceleration from forces accumulated since the last
// step and clears them.
func (r *Rigidbody) ConsumeForce() rl.Vector3 {
	a := rl.Vector3Scale(r.force, 1/r.mass())
	r.force = rl.Vector3{}
	return a
}

// Stop clears linear and angular velocity along with pending forces.
func (r *Rigidbody) Stop() {
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
	r.force = rl.Vector3{}
}

func (r *Rigidbody) mass() float32 {
	if r.Mass <= 0 {
		return 1
	}
	return r.Mass
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		r.sleepTimer += deltaTime

		// Extra damping near rest to reduce jitter
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)
		r.AngularVelocity = rl.Vector3Scale(r.AngularVelocity, 0.9)

		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
			r.AngularVelocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
