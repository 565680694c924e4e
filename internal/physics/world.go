// Package physics steps rigid bodies against box and sphere colliders and
// answers ray queries for gameplay code.
package physics

import (
	"area51/internal/components"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 5.0

// MaxStep is the longest single integration step. Longer frames are split so
// thrown objects do not tunnel through thin walls.
const MaxStep = 1.0 / 120.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(pos.X / CellSize),
		Y: int(pos.Y / CellSize),
		Z: int(pos.Z / CellSize),
	}
}

// CollisionPair represents two objects that are colliding
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent collision pair (lower UID first)
func makePair(a, b *engine.GameObject) CollisionPair {
	if a.UID > b.UID {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

// PhysicsWorld owns every object taking part in simulation. Bodies switch
// between dynamic and kinematic at runtime (picking up an object does this),
// so the split is decided per step rather than at registration.
type PhysicsWorld struct {
	Gravity rl.Vector3
	Objects []*engine.GameObject // objects with a Rigidbody
	Statics []*engine.GameObject // colliders without a Rigidbody (walls, floor)
	grid    map[CellKey][]*engine.GameObject

	// Collision tracking for callbacks
	activeCollisions  map[CollisionPair]bool
	currentCollisions map[CollisionPair]bool

	stepTime float32
}

func NewPhysicsWorld(gravity float32) *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{Y: gravity},
		Objects:           make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		grid:              make(map[CellKey][]*engine.GameObject),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
	}
}

// AddObject registers g. Objects with neither a Rigidbody nor a collider are
// ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	switch {
	case engine.GetComponent[*components.Rigidbody](g) != nil:
		p.Objects = append(p.Objects, g)
	case hasCollider(g):
		p.Statics = append(p.Statics, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			break
		}
	}
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			break
		}
	}
	for pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, pair)
		}
	}
}

// Collidables returns every registered object, bodies first.
func (p *PhysicsWorld) Collidables() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Statics))
	out = append(out, p.Objects...)
	return append(out, p.Statics...)
}

// DynamicObjectCount returns the number of bodies currently simulated.
func (p *PhysicsWorld) DynamicObjectCount() int {
	n := 0
	for _, obj := range p.Objects {
		if rb := engine.GetComponent[*components.Rigidbody](obj); !rb.IsKinematic {
			n++
		}
	}
	return n
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}

// Update advances the simulation by deltaTime, in steps no longer than MaxStep.
func (p *PhysicsWorld) Update(deltaTime float32) {
	for deltaTime > 0 {
		step := min(deltaTime, MaxStep)
		p.Step(step)
		deltaTime -= step
	}
}

// Step runs one integration and collision pass.
func (p *PhysicsWorld) Step(deltaTime float32) {
	p.stepTime = deltaTime
	p.currentCollisions = make(map[CollisionPair]bool)

	var dynamics, kinematics []*engine.GameObject
	for _, obj := range p.Objects {
		if !obj.Active {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb.IsKinematic {
			kinematics = append(kinematics, obj)
			continue
		}
		dynamics = append(dynamics, obj)
		p.integrate(obj, rb, deltaTime)
	}

	// Dynamic vs dynamic through the spatial grid
	p.rebuildGrid(dynamics)
	checked := make(map[CollisionPair]bool)
	for _, obj := range dynamics {
		for _, other := range p.getNeighborObjects(obj) {
			if obj == other {
				continue
			}
			pair := makePair(obj, other)
			if checked[pair] {
				continue
			}
			checked[pair] = true
			p.resolveDynamicPair(obj, other)
		}
	}

	// Kinematic bodies and statics push dynamics out without moving themselves.
	for _, obj := range dynamics {
		for _, kinematic := range kinematics {
			if hasCollider(kinematic) {
				p.resolveFixed(obj, kinematic)
			}
		}
		for _, static := range p.Statics {
			if static.Active {
				p.resolveFixed(obj, static)
			}
		}
	}

	p.dispatchCollisionCallbacks()
}

func (p *PhysicsWorld) integrate(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	accel := rb.ConsumeForce()
	if rb.IsSleeping {
		return
	}
	if rb.UseGravity {
		accel = rl.Vector3Add(accel, p.Gravity)
	}
	rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(accel, deltaTime))

	translate(obj, rl.Vector3Scale(rb.Velocity, deltaTime))
	obj.Transform.Rotation = rl.Vector3Add(
		obj.Transform.Rotation,
		rl.Vector3Scale(rb.AngularVelocity, deltaTime),
	)

	// Time-based so damping does not depend on frame rate
	damping := max(float32(1.0)-(1.0-rb.AngularDamping)*deltaTime*60, 0)
	rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, damping)

	rb.TrySleep(deltaTime)
}

// translate moves obj by a world-space offset, whatever its parent.
func translate(obj *engine.GameObject, delta rl.Vector3) {
	if obj.Parent == nil {
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, delta)
		return
	}
	world := rl.Vector3Add(obj.WorldPosition(), delta)
	obj.Transform.Position = obj.Parent.InverseTransformPoint(world)
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid(objects []*engine.GameObject) {
	for k := range p.grid {
		delete(p.grid, k)
	}
	for _, obj := range objects {
		cell := posToCell(obj.WorldPosition())
		p.grid[cell] = append(p.grid[cell], obj)
	}
}

// getNeighborObjects returns all objects in same cell and 26 neighboring cells
func (p *PhysicsWorld) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.WorldPosition())
	var neighbors []*engine.GameObject

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, p.grid[key]...)
			}
		}
	}
	return neighbors
}

// recordCollision marks a collision pair as active this frame and wakes
// sleeping bodies hit hard enough to matter.
func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject) {
	p.currentCollisions[makePair(a, b)] = true

	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil {
		return
	}

	// Micro-collisions must not wake settled stacks
	relSpeed := rl.Vector3Length(rl.Vector3Subtract(rbA.Velocity, rbB.Velocity))
	if relSpeed > components.SleepVelocityThreshold*2 {
		rbA.Wake()
		rbB.Wake()
	}
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for pair := range p.currentCollisions {
		if !p.activeCollisions[pair] {
			notifyCollisionEnter(pair.A, pair.B)
			notifyCollisionEnter(pair.B, pair.A)
		}
	}
	for pair := range p.activeCollisions {
		if !p.currentCollisions[pair] {
			notifyCollisionExit(pair.A, pair.B)
			notifyCollisionExit(pair.B, pair.A)
		}
	}
	p.activeCollisions = p.currentCollisions
}

func notifyCollisionEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}
