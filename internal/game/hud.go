package game

import (
	"fmt"

	"area51/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	hudText      = rl.NewColor(230, 230, 235, 255)
	hudPanel     = rl.NewColor(18, 18, 24, 200)
	hudAccent    = rl.NewColor(108, 99, 255, 255)
	hudCrosshair = rl.NewColor(255, 255, 255, 200)
)

func setupHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(hudPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(hudText))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(hudAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

// hudLines is the status readout for p.
func hudLines(p *world.Player) []string {
	c := p.Controller
	held := "-"
	if h := c.Held(); h != nil {
		held = h.GetGameObject().Name
	}
	state := "walking"
	switch {
	case c.IsCrouching():
		state = "crouching"
	case c.IsRunning():
		state = "running"
	}
	return []string{
		fmt.Sprintf("Speed: %.1f (%s)", c.MoveSpeed(), state),
		fmt.Sprintf("Grounded: %t", c.IsGrounded()),
		fmt.Sprintf("Pitch: %.0f", c.Pitch()),
		fmt.Sprintf("Holding: %s", held),
	}
}

func (g *Game) drawHUD() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-8, cy, cx+8, cy, hudCrosshair)
	rl.DrawLine(cx, cy-8, cx, cy+8, hudCrosshair)
	if g.Player.Controller.Held() != nil {
		rl.DrawCircleLines(cx, cy, 12, hudAccent)
	}

	lines := hudLines(g.Player)
	panel := rl.Rectangle{X: 10, Y: 10, Width: 260, Height: float32(52 + 22*len(lines))}
	gui.Panel(panel, "Player")
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: 20, Y: float32(40 + 22*i), Width: 240, Height: 20}, line)
	}

	c := g.Player.Controller
	fov := g.Player.Camera.FOV
	gui.ProgressBar(
		rl.Rectangle{X: 60, Y: float32(40 + 22*len(lines)), Width: 170, Height: 14},
		"FOV", fmt.Sprintf("%.0f", fov), fov, c.ZoomedInFOV, c.ZoomedOutFOV,
	)

	if g.DebugMode {
		drawn, culled := g.Renderer.Stats()
		rl.DrawFPS(10, int32(panel.Height)+20)
		rl.DrawText(fmt.Sprintf("Meshes: %d drawn, %d culled", drawn, culled), 10, int32(panel.Height)+45, 16, rl.Lime)
		rl.DrawText(fmt.Sprintf("Bodies: %d dynamic", g.World.Physics.DynamicObjectCount()), 10, int32(panel.Height)+65, 16, rl.Lime)
	}
}
