package components

import (
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponent("CharacterController", func(p engine.Props) engine.Component {
		c := NewCharacterController()
		c.Height = p.Float("height", c.Height)
		c.Radius = p.Float("radius", c.Radius)
		c.StepHeight = p.Float("stepHeight", c.StepHeight)
		return c
	})
}

// CharacterController moves a box-shaped character through the world's box
// colliders with stair stepping. It has no velocity of its own; callers
// integrate gravity and pass displacements to Move.
type CharacterController struct {
	engine.BaseComponent

	Height     float32 // total height of the box; the object position is its center
	Radius     float32 // half-width on X and Z
	StepHeight float32 // max height of steps to climb

	isGrounded bool
	collisions int
}

// NewCharacterController creates a new character controller with defaults
func NewCharacterController() *CharacterController {
	return &CharacterController{
		Height:     1.8,
		Radius:     0.4,
		StepHeight: 0.4,
	}
}

// Move displaces the character by motion, sliding out of any box it ends up
// inside. Grounded state is recomputed for moves with a vertical component
// and left alone for purely planar ones. Returns the actual displacement.
func (c *CharacterController) Move(motion rl.Vector3) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	var colliders []*engine.GameObject
	if g.Scene != nil && g.Scene.World != nil {
		colliders = g.Scene.World.GetCollidableObjects()
	}

	originalPos := g.Transform.Position
	c.collisions = 0

	if motion.X != 0 || motion.Z != 0 {
		c.moveWithCollision(g, rl.Vector3{X: motion.X, Z: motion.Z}, colliders)
	}
	if motion.Y != 0 {
		c.isGrounded = false
		c.moveWithCollision(g, rl.Vector3{Y: motion.Y}, colliders)
	}

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

// moveWithCollision attempts to move and handles collision/stepping
func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []*engine.GameObject) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	charMin, charMax := c.bounds(g.Transform.Position)

	for _, other := range colliders {
		if other == g || !other.Active || other.IsDescendantOf(g) {
			continue
		}

		// Kinematic bodies (held objects, movers) never block the character.
		rb := engine.GetComponent[*Rigidbody](other)
		if rb != nil && rb.IsKinematic {
			continue
		}
		// Spring-held objects stay dynamic but are carried, not walked into.
		if h := engine.GetComponent[Holdable](other); h != nil && h.IsHeld() {
			continue
		}

		boxCol := engine.GetComponent[*BoxCollider](other)
		if boxCol == nil {
			continue
		}
		staticMin, staticMax := boxCol.Bounds()

		if !aabbOverlap(charMin, charMax, staticMin, staticMax) {
			continue
		}

		pushOut := calculatePushOut(charMin, charMax, staticMin, staticMax)
		c.collisions++

		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0
		if isHorizontalCollision && motion.Y == 0 {
			charFeetY := g.Transform.Position.Y - c.Height/2
			stepHeight := staticMax.Y - charFeetY

			if stepHeight > 0 && stepHeight <= c.StepHeight {
				testPos := g.Transform.Position
				testPos.Y += stepHeight + 0.01
				testMin, testMax := c.bounds(testPos)

				if !aabbOverlap(testMin, testMax, staticMin, staticMax) {
					g.Transform.Position = testPos
					c.isGrounded = true
					charMin, charMax = testMin, testMax
					continue
				}
			}
		}

		if pushOut.Y > 0 {
			c.isGrounded = true
		}
		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)
		charMin, charMax = c.bounds(g.Transform.Position)
	}
}

func (c *CharacterController) bounds(center rl.Vector3) (rl.Vector3, rl.Vector3) {
	half := rl.Vector3{X: c.Radius, Y: c.Height / 2, Z: c.Radius}
	return rl.Vector3Subtract(center, half), rl.Vector3Add(center, half)
}

// IsGrounded returns whether the last vertical move ended on something.
func (c *CharacterController) IsGrounded() bool {
	return c.isGrounded
}

// SetGrounded manually sets the grounded state
func (c *CharacterController) SetGrounded(grounded bool) {
	c.isGrounded = grounded
}

// Collisions is the number of boxes the last Move was pushed out of.
func (c *CharacterController) Collisions() int {
	return c.collisions
}

// Helper: check if two AABBs overlap. Touching faces do not count, so a
// character resting on a floor can walk without being pushed.
func aabbOverlap(aMin, aMax, bMin, bMax rl.Vector3) bool {
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y &&
		aMin.Z < bMax.Z && aMax.Z > bMin.Z
}

// Helper: calculate minimum push-out vector between two AABBs
func calculatePushOut(aMin, aMax, bMin, bMax rl.Vector3) rl.Vector3 {
	var push [3]float32
	aLo := [3]float32{aMin.X, aMin.Y, aMin.Z}
	aHi := [3]float32{aMax.X, aMax.Y, aMax.Z}
	bLo := [3]float32{bMin.X, bMin.Y, bMin.Z}
	bHi := [3]float32{bMax.X, bMax.Y, bMax.Z}

	best := -1
	var bestAbs float32
	for i := range 3 {
		down := aHi[i] - bLo[i] // push towards negative
		up := bHi[i] - aLo[i]   // push towards positive
		p, abs := up, up
		if down < up {
			p, abs = -down, down
		}
		if best < 0 || abs < bestAbs {
			best, bestAbs = i, abs
			push = [3]float32{}
			push[i] = p
		}
	}
	return rl.Vector3{X: push[0], Y: push[1], Z: push[2]}
}
