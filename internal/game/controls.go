package game

import (
	"area51/internal/components"
	"area51/internal/input"
)

// bindController routes every gameplay action to its controller callback.
func bindController(actions *input.ActionMap, c *components.FPController) error {
	handlers := map[string]input.Handler{
		input.ActionMove:   c.OnMovement,
		input.ActionLook:   c.OnLook,
		input.ActionZoom:   c.OnZoom,
		input.ActionJump:   c.OnJump,
		input.ActionCrouch: c.OnCrouch,
		input.ActionRun:    c.OnRun,
		input.ActionPickUp: c.OnPickUp,
		input.ActionThrow:  c.OnThrow,
	}
	for name, h := range handlers {
		if err := actions.Bind(name, h); err != nil {
			return err
		}
	}
	return nil
}
