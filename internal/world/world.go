// Package world ties a scene to its physics simulation and renders it.
package world

import (
	"area51/internal/engine"
	"area51/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World is the running level: every GameObject lives in Scene, and those
// with colliders or rigid bodies are also registered with Physics. It is the
// engine.WorldAccess handed to components through Scene.World.
type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
}

func New(name string, gravity float32) *World {
	w := &World{
		Scene:   engine.NewScene(name),
		Physics: physics.NewPhysicsWorld(gravity),
	}
	w.Scene.World = w
	return w
}

// Add puts g and all of its descendants into the scene and physics world.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
	for _, child := range g.Children {
		w.Add(child)
	}
}

// SpawnObject adds g at runtime and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Add(g)
	startTree(g)
}

func startTree(g *engine.GameObject) {
	g.Start()
	for _, child := range g.Children {
		startTree(child)
	}
}

// Destroy removes g and its descendants from both the scene and physics.
func (w *World) Destroy(g *engine.GameObject) {
	var remove func(*engine.GameObject)
	remove = func(obj *engine.GameObject) {
		w.Physics.RemoveObject(obj)
		for _, child := range obj.Children {
			remove(child)
		}
	}
	remove(g)
	w.Scene.RemoveGameObject(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
}

func (w *World) GetCollidableObjects() []*engine.GameObject {
	return w.Physics.Collidables()
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore ...*engine.GameObject) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance, ignore...)
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update runs gameplay components first, then steps physics, so bodies
// driven by components this tick are integrated in the same frame.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Update(deltaTime)
}
