package engine

// Component is behaviour attached to a GameObject. Start runs once before the
// first Update; Update runs every tick while the object is active.
type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// CollisionHandler components hear about contacts the physics world reports
// for their object: once when a contact begins and once when it ends.
type CollisionHandler interface {
	OnCollisionEnter(other *GameObject)
	OnCollisionExit(other *GameObject)
}

// BaseComponent is embedded by components to get the owner bookkeeping and
// no-op lifecycle methods.
type BaseComponent struct {
	owner *GameObject
}

func (b *BaseComponent) Start()                   {}
func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) { b.owner = g }
func (b *BaseComponent) GetGameObject() *GameObject  { return b.owner }
