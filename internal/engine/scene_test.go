package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	require.Len(t, scene.GameObjects, 1)
	assert.Same(t, obj, scene.GameObjects[0])
	assert.Same(t, scene, obj.Scene)
	assert.Same(t, obj, scene.FindByUID(obj.UID))
	assert.Nil(t, scene.FindByUID(99999))
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	crate := NewGameObject("Crate")
	barrel := NewGameObject("Barrel")
	scene.AddGameObject(crate)
	scene.AddGameObject(barrel)

	scene.RemoveGameObject(crate)

	require.Len(t, scene.GameObjects, 1)
	assert.Same(t, barrel, scene.GameObjects[0])
	assert.Nil(t, scene.FindByUID(crate.UID))
	assert.Same(t, barrel, scene.FindByUID(barrel.UID))
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	player := NewGameObject("Player")
	camera := NewGameObject("Camera")
	holdPoint := NewGameObject("HoldPoint")
	player.AddChild(camera)
	camera.AddChild(holdPoint)
	scene.AddGameObject(player)
	scene.AddGameObject(camera)
	scene.AddGameObject(holdPoint)

	scene.RemoveGameObject(player)

	assert.Empty(t, scene.GameObjects)
	assert.Nil(t, scene.FindByUID(camera.UID))
	assert.Nil(t, scene.FindByUID(holdPoint.UID))
}

func TestSceneFindByNameAndTag(t *testing.T) {
	scene := NewScene("Test")
	crate := NewGameObject("Crate")
	crate.Tags = []string{"holdable", "wood"}
	ball := NewGameObject("Ball")
	ball.Tags = []string{"holdable"}
	wall := NewGameObject("Wall")
	scene.AddGameObject(crate)
	scene.AddGameObject(ball)
	scene.AddGameObject(wall)

	assert.Same(t, wall, scene.FindByName("Wall"))
	assert.Nil(t, scene.FindByName("DoesNotExist"))
	assert.Len(t, scene.FindByTag("holdable"), 2)
	assert.Len(t, scene.FindByTag("wood"), 1)
	assert.Empty(t, scene.FindByTag("nonexistent"))
}

func TestSceneZeroValueAdd(t *testing.T) {
	var scene Scene
	obj := NewGameObject("Test")

	scene.AddGameObject(obj)

	assert.Same(t, obj, scene.FindByUID(obj.UID))
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

func TestSceneStartAndUpdate(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Ticker")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Start()
	scene.Update(0.016)

	obj.Active = false
	scene.Update(0.016)

	assert.Equal(t, 1, comp.starts)
	assert.Equal(t, 1, comp.updates)
}
