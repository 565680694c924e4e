// Package input turns polled keyboard and mouse state into named actions with
// performed/canceled callbacks, delivered once per tick before gameplay runs.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Phase is the lifecycle stage an action callback is reporting.
type Phase int

const (
	PhaseDisabled Phase = iota
	PhasePerformed
	PhaseCanceled
)

func (p Phase) String() string {
	switch p {
	case PhasePerformed:
		return "performed"
	case PhaseCanceled:
		return "canceled"
	}
	return "disabled"
}

// Kind decides how an action reads its bindings.
type Kind string

const (
	KindButton  Kind = "button"
	KindAxis    Kind = "axis"
	KindVector2 Kind = "vector2"
)

// CallbackContext is handed to every action handler.
type CallbackContext struct {
	Action string
	Phase  Phase
	value  rl.Vector2
}

// NewContext builds a context by hand, mainly for driving handlers in tests.
func NewContext(action string, phase Phase, value rl.Vector2) CallbackContext {
	return CallbackContext{Action: action, Phase: phase, value: value}
}

func (c CallbackContext) Performed() bool { return c.Phase == PhasePerformed }
func (c CallbackContext) Canceled() bool  { return c.Phase == PhaseCanceled }

// ReadVector2 returns the action value; zero once canceled.
func (c CallbackContext) ReadVector2() rl.Vector2 { return c.value }

// ReadFloat returns the X component, which is where axis and button actions store their value.
func (c CallbackContext) ReadFloat() float32 { return c.value.X }

// Handler receives action callbacks.
type Handler func(ctx CallbackContext)

// Action is one named input with its bindings and subscribers.
type Action struct {
	Name     string
	Kind     Kind
	bindings []binding
	handlers []Handler
	value    rl.Vector2
	// perFrame actions read a fresh delta each tick (the mouse wheel), so every
	// non-zero sample is a new event even when it repeats the last one.
	perFrame bool
}

// AddHandler subscribes h to this action.
func (a *Action) AddHandler(h Handler) {
	if h == nil {
		return
	}
	a.handlers = append(a.handlers, h)
}

func (a *Action) dispatch(phase Phase) {
	ctx := CallbackContext{Action: a.Name, Phase: phase, value: a.value}
	for _, h := range a.handlers {
		h(ctx)
	}
}

// read samples all bindings; the binding with the largest magnitude wins.
func (a *Action) read(src Source) rl.Vector2 {
	var best rl.Vector2
	var bestLen float32
	for _, b := range a.bindings {
		v := b.read(src)
		if l := v.X*v.X + v.Y*v.Y; l > bestLen {
			best, bestLen = v, l
		}
	}
	return best
}

// update fires callbacks for transitions since the previous tick. Buttons
// report performed on press and canceled on release; value actions report
// performed whenever the value changes to something non-zero, per-frame
// actions on every non-zero tick.
func (a *Action) update(src Source) {
	next := a.read(src)
	prev := a.value
	a.value = next

	active := next.X != 0 || next.Y != 0
	wasActive := prev.X != 0 || prev.Y != 0

	switch {
	case active && a.Kind == KindButton && !wasActive:
		a.dispatch(PhasePerformed)
	case active && a.Kind != KindButton && (a.perFrame || next != prev):
		a.dispatch(PhasePerformed)
	case !active && wasActive:
		a.dispatch(PhaseCanceled)
	}
}
