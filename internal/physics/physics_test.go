package physics

import (
	"testing"

	"area51/internal/components"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFloor(p *PhysicsWorld) *engine.GameObject {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 20, Y: 1, Z: 20}))
	p.AddObject(floor)
	return floor
}

func newBall(p *PhysicsWorld, pos rl.Vector3, radius float32) (*engine.GameObject, *components.Rigidbody) {
	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = pos
	rb := components.NewRigidbody()
	ball.AddComponent(rb)
	ball.AddComponent(components.NewSphereCollider(radius))
	p.AddObject(ball)
	return ball, rb
}

func newCrate(p *PhysicsWorld, pos rl.Vector3, size float32) (*engine.GameObject, *components.Rigidbody) {
	crate := engine.NewGameObject("Crate")
	crate.Transform.Position = pos
	rb := components.NewRigidbody()
	crate.AddComponent(rb)
	crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
	p.AddObject(crate)
	return crate, rb
}

type collisionCounter struct {
	engine.BaseComponent
	enters, exits int
}

func (c *collisionCounter) OnCollisionEnter(*engine.GameObject) { c.enters++ }
func (c *collisionCounter) OnCollisionExit(*engine.GameObject)  { c.exits++ }

func TestAABBResolve(t *testing.T) {
	a := NewAABBFromCenter(rl.Vector3{Y: 0.9}, rl.Vector3{X: 1, Y: 2, Z: 1})
	floor := NewAABBFromCenter(rl.Vector3{Y: -0.5}, rl.Vector3{X: 10, Y: 1, Z: 10})

	require.True(t, a.Intersects(floor))
	mtv := a.Resolve(floor)
	assert.InDelta(t, 0.1, mtv.Y, 1e-5)
	assert.Zero(t, mtv.X)
	assert.Zero(t, mtv.Z)

	touching := NewAABBFromCenter(rl.Vector3{Y: 1}, rl.Vector3{X: 1, Y: 2, Z: 1})
	assert.False(t, touching.Intersects(floor))
	assert.Equal(t, rl.Vector3{}, touching.Resolve(floor))
}

func TestAABBClosestPoint(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	assert.Equal(t, rl.Vector3{X: 1, Y: 0.5, Z: -1}, box.ClosestPoint(rl.Vector3{X: 5, Y: 0.5, Z: -3}))
	assert.True(t, box.Contains(rl.Vector3{X: 1}))
	assert.False(t, box.Contains(rl.Vector3{X: 1.01}))
}

func TestGravityOnlyWhenEnabled(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	falling, _ := newBall(p, rl.Vector3{Y: 10}, 0.25)
	floating, rb := newBall(p, rl.Vector3{X: 5, Y: 10}, 0.25)
	rb.UseGravity = false

	p.Update(0.5)

	assert.Less(t, falling.Transform.Position.Y, float32(9))
	assert.Equal(t, float32(10), floating.Transform.Position.Y)
	assert.Equal(t, rl.Vector3{}, rb.Velocity)
}

func TestKinematicBodiesAreNotIntegrated(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	held, rb := newCrate(p, rl.Vector3{Y: 3}, 0.5)
	rb.IsKinematic = true
	rb.Velocity = rl.Vector3{X: 4}

	p.Update(0.25)

	assert.Equal(t, rl.Vector3{Y: 3}, held.Transform.Position)
	assert.Zero(t, p.DynamicObjectCount())
}

func TestBallComesToRestOnFloor(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	newFloor(p)
	ball, rb := newBall(p, rl.Vector3{Y: 2}, 0.25)

	for range 240 {
		p.Update(1.0 / 60)
	}

	assert.InDelta(t, 0.25, ball.Transform.Position.Y, 0.01)
	assert.Less(t, rl.Vector3Length(rb.Velocity), float32(0.2))
}

func TestCrateLandsOnFloor(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	newFloor(p)
	crate, _ := newCrate(p, rl.Vector3{Y: 3}, 0.5)

	for range 240 {
		p.Update(1.0 / 60)
	}

	assert.InDelta(t, 0.25, crate.Transform.Position.Y, 0.01)
}

func TestImpulseLaunchesBody(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	ball, rb := newBall(p, rl.Vector3{Y: 5}, 0.25)
	rb.UseGravity = false

	rb.AddForce(rl.Vector3{Z: 10}, components.ForceImpulse)
	p.Update(0.5)

	assert.InDelta(t, 5, ball.Transform.Position.Z, 1e-3)
}

func TestContinuousForceAppliesForOneStep(t *testing.T) {
	p := NewPhysicsWorld(0)
	_, rb := newBall(p, rl.Vector3{}, 0.25)

	rb.AddForce(rl.Vector3{X: 120}, components.ForceContinuous)
	p.Step(1.0 / 120)
	assert.InDelta(t, 1, rb.Velocity.X, 1e-4)

	p.Step(1.0 / 120)
	assert.InDelta(t, 1, rb.Velocity.X, 1e-4)
}

func TestOverlappingBodiesSeparate(t *testing.T) {
	p := NewPhysicsWorld(0)
	a, _ := newBall(p, rl.Vector3{X: -0.1}, 0.5)
	b, rbB := newBall(p, rl.Vector3{X: 0.1}, 0.5)
	rbB.Mass = 3

	p.Step(1.0 / 120)

	gap := b.Transform.Position.X - a.Transform.Position.X
	assert.InDelta(t, 1, gap, 1e-4)
	// The heavier body moves less.
	assert.Less(t, b.Transform.Position.X-0.1, -0.1-a.Transform.Position.X)
}

func TestHeadOnImpulseExchange(t *testing.T) {
	p := NewPhysicsWorld(0)
	_, rbA := newCrate(p, rl.Vector3{X: -0.45}, 1)
	_, rbB := newCrate(p, rl.Vector3{X: 0.45}, 1)
	rbA.Bounciness, rbB.Bounciness = 1, 1
	rbA.Friction, rbB.Friction = 0, 0
	rbA.Velocity = rl.Vector3{X: 2}

	p.Step(1.0 / 120)

	assert.InDelta(t, 0, rbA.Velocity.X, 1e-3)
	assert.InDelta(t, 2, rbB.Velocity.X, 1e-3)
}

func TestKinematicBodyPushesDynamic(t *testing.T) {
	p := NewPhysicsWorld(0)
	held, rbHeld := newCrate(p, rl.Vector3{}, 1)
	rbHeld.IsKinematic = true
	ball, _ := newBall(p, rl.Vector3{X: 0.6}, 0.25)

	p.Step(1.0 / 120)

	assert.Equal(t, rl.Vector3{}, held.Transform.Position)
	assert.InDelta(t, 0.75, ball.Transform.Position.X, 1e-4)
}

func TestCollisionCallbacks(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	newFloor(p)
	ball, rb := newBall(p, rl.Vector3{Y: 0.26}, 0.25)
	rb.CanSleep = false
	counter := &collisionCounter{}
	ball.AddComponent(counter)

	for range 30 {
		p.Update(1.0 / 60)
	}
	assert.Equal(t, 1, counter.enters)

	ball.Transform.Position.Y = 20
	p.Step(1.0 / 120)
	assert.Equal(t, 1, counter.exits)
}

func TestRemoveObject(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	floor := newFloor(p)
	ball, _ := newBall(p, rl.Vector3{Y: 3}, 0.25)
	empty := engine.NewGameObject("Empty")
	p.AddObject(empty)

	assert.Len(t, p.Collidables(), 2)
	p.RemoveObject(floor)
	p.RemoveObject(ball)
	assert.Empty(t, p.Collidables())
}

func TestRaycastNearestHit(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	near, _ := newCrate(p, rl.Vector3{Z: 3}, 1)
	newCrate(p, rl.Vector3{Z: 6}, 1)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: 2}, 10)

	require.True(t, ok)
	assert.Same(t, near, hit.GameObject)
	assert.InDelta(t, 2.5, hit.Distance, 1e-4)
	assert.Equal(t, rl.Vector3{Z: -1}, hit.Normal)
	assert.InDelta(t, 2.5, hit.Point.Z, 1e-4)
}

func TestRaycastRangeAndMiss(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	newCrate(p, rl.Vector3{Z: 3}, 1)

	_, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 2)
	assert.False(t, ok, "out of range")

	_, ok = p.Raycast(rl.Vector3{}, rl.Vector3{X: 1}, 10)
	assert.False(t, ok, "wrong direction")

	_, ok = p.Raycast(rl.Vector3{}, rl.Vector3{}, 10)
	assert.False(t, ok, "zero direction")
}

func TestRaycastSphere(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	ball, _ := newBall(p, rl.Vector3{Y: 1, Z: 4}, 0.5)

	hit, ok := p.Raycast(rl.Vector3{Y: 1}, rl.Vector3{Z: 1}, 10)

	require.True(t, ok)
	assert.Same(t, ball, hit.GameObject)
	assert.InDelta(t, 3.5, hit.Distance, 1e-4)
	assert.InDelta(t, -1, hit.Normal.Z, 1e-4)
}

func TestRaycastIgnoresHierarchy(t *testing.T) {
	p := NewPhysicsWorld(-9.81)
	player := engine.NewGameObject("Player")
	visor, _ := newCrate(p, rl.Vector3{Z: 1}, 0.5)
	player.AddChild(visor)
	target, _ := newCrate(p, rl.Vector3{Z: 3}, 0.5)

	hit, ok := p.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 10, player)
	require.True(t, ok)
	assert.Same(t, target, hit.GameObject)

	target.Active = false
	_, ok = p.Raycast(rl.Vector3{}, rl.Vector3{Z: 1}, 10, player)
	assert.False(t, ok)
}
