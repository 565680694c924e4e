package physics

import (
	"area51/internal/components"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// restingSpeed is the normal speed below which a contact is treated as
// resting and its normal velocity is removed instead of bounced.
const restingSpeed = 0.5

// contact describes how to separate a from b: move a along Normal by Depth.
type contact struct {
	Normal rl.Vector3
	Depth  float32
}

type shape struct {
	box    *AABB
	center rl.Vector3
	radius float32
}

func shapeOf(g *engine.GameObject) (shape, bool) {
	if s := engine.GetComponent[*components.SphereCollider](g); s != nil {
		return shape{center: s.GetCenter(), radius: s.GetWorldRadius()}, true
	}
	if b := engine.GetComponent[*components.BoxCollider](g); b != nil {
		bounds := BoxBounds(b)
		return shape{box: &bounds, center: b.GetCenter()}, true
	}
	return shape{}, false
}

func findContact(a, b *engine.GameObject) (contact, bool) {
	sa, okA := shapeOf(a)
	sb, okB := shapeOf(b)
	if !okA || !okB {
		return contact{}, false
	}

	switch {
	case sa.box == nil && sb.box == nil:
		return sphereSphere(sa, sb)
	case sa.box == nil:
		return sphereBox(sa, *sb.box)
	case sb.box == nil:
		c, ok := sphereBox(sb, *sa.box)
		c.Normal = rl.Vector3Negate(c.Normal)
		return c, ok
	}

	mtv := sa.box.Resolve(*sb.box)
	depth := rl.Vector3Length(mtv)
	if depth < 1e-6 {
		return contact{}, false
	}
	return contact{Normal: rl.Vector3Scale(mtv, 1/depth), Depth: depth}, true
}

func sphereSphere(a, b shape) (contact, bool) {
	diff := rl.Vector3Subtract(a.center, b.center)
	dist := rl.Vector3Length(diff)
	minDist := a.radius + b.radius
	if dist >= minDist {
		return contact{}, false
	}
	if dist < 1e-6 {
		return contact{Normal: rl.Vector3{Y: 1}, Depth: minDist}, true
	}
	return contact{Normal: rl.Vector3Scale(diff, 1/dist), Depth: minDist - dist}, true
}

// sphereBox separates sphere a from box b.
func sphereBox(a shape, b AABB) (contact, bool) {
	closest := b.ClosestPoint(a.center)
	diff := rl.Vector3Subtract(a.center, closest)
	dist := rl.Vector3Length(diff)
	if dist >= a.radius {
		return contact{}, false
	}
	if dist > 1e-6 {
		return contact{Normal: rl.Vector3Scale(diff, 1/dist), Depth: a.radius - dist}, true
	}

	// Center inside the box: push the sphere's bounds out along the shallowest axis.
	d := a.radius * 2
	mtv := NewAABBFromCenter(a.center, rl.Vector3{X: d, Y: d, Z: d}).Resolve(b)
	depth := rl.Vector3Length(mtv)
	if depth < 1e-6 {
		return contact{}, false
	}
	return contact{Normal: rl.Vector3Scale(mtv, 1/depth), Depth: depth}, true
}

// resolveDynamicPair separates two simulated bodies, splitting the push by
// mass and exchanging an impulse along the contact normal.
func (p *PhysicsWorld) resolveDynamicPair(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA.IsSleeping && rbB.IsSleeping {
		return
	}

	c, ok := findContact(a, b)
	if !ok {
		return
	}
	p.recordCollision(a, b)

	massA, massB := bodyMass(rbA), bodyMass(rbB)
	totalMass := massA + massB
	translate(a, rl.Vector3Scale(c.Normal, c.Depth*massB/totalMass))
	translate(b, rl.Vector3Scale(c.Normal, -c.Depth*massA/totalMass))

	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, c.Normal)
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Bounciness + rbB.Bounciness) / 2
	if -velAlongNormal < restingSpeed {
		e = 0
	}
	j := -(1 + e) * velAlongNormal / (1/massA + 1/massB)

	impulse := rl.Vector3Scale(c.Normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/massA))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/massB))

	friction := (rbA.Friction + rbB.Friction) / 2 * p.frictionScale()
	applyFriction(rbA, c.Normal, friction)
	applyFriction(rbB, c.Normal, friction)
}

// resolveFixed pushes a dynamic body fully out of something that does not
// move in response: a static collider or a kinematic body.
func (p *PhysicsWorld) resolveFixed(obj, fixed *engine.GameObject) {
	c, ok := findContact(obj, fixed)
	if !ok {
		return
	}
	rb := engine.GetComponent[*components.Rigidbody](obj)
	p.recordCollision(obj, fixed)
	translate(obj, rl.Vector3Scale(c.Normal, c.Depth))

	var fixedVel rl.Vector3
	if frb := engine.GetComponent[*components.Rigidbody](fixed); frb != nil {
		fixedVel = frb.Velocity
	}
	relVel := rl.Vector3Subtract(rb.Velocity, fixedVel)
	velAlongNormal := rl.Vector3DotProduct(relVel, c.Normal)
	if velAlongNormal >= 0 {
		return
	}

	bounce := rb.Bounciness
	if -velAlongNormal < restingSpeed {
		bounce = 0
	}
	rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(c.Normal, -(1+bounce)*velAlongNormal))
	applyFriction(rb, c.Normal, rb.Friction*p.frictionScale())

	// Rolling friction when resting on the ground
	if c.Normal.Y > 0.5 {
		rb.AngularVelocity.X *= 1 - rb.Friction*0.5
		rb.AngularVelocity.Z *= 1 - rb.Friction*0.5
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		rollSphere(rb, c.Normal, sphere.GetWorldRadius())
	}
}

// frictionScale makes friction coefficients per 1/60 s regardless of step length.
func (p *PhysicsWorld) frictionScale() float32 {
	return p.stepTime * 60
}

// applyFriction scales the velocity component tangential to normal.
func applyFriction(rb *components.Rigidbody, normal rl.Vector3, friction float32) {
	vn := rl.Vector3Scale(normal, rl.Vector3DotProduct(rb.Velocity, normal))
	vt := rl.Vector3Subtract(rb.Velocity, vn)
	rb.Velocity = rl.Vector3Add(vn, rl.Vector3Scale(vt, 1-clamp(friction, 0, 1)))
}

// rollSphere sets the angular velocity of a sphere so it rolls without
// slipping over the contact surface.
func rollSphere(rb *components.Rigidbody, normal rl.Vector3, radius float32) {
	if radius <= 0 {
		return
	}
	const radToDeg = 57.29578
	spin := rl.Vector3Scale(rl.Vector3CrossProduct(normal, rb.Velocity), radToDeg/radius)
	rb.AngularVelocity = spin
}

func bodyMass(rb *components.Rigidbody) float32 {
	if rb.Mass <= 0 {
		return 1
	}
	return rb.Mass
}
