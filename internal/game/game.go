// Package game runs the first-person sandbox: it owns the window, the world
// and the input actions that drive the player.
package game

import (
	"fmt"

	"area51/internal/config"
	"area51/internal/engine"
	"area51/internal/input"
	"area51/internal/logging"
	"area51/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    *config.Config
	World     *world.World
	Player    *world.Player
	Actions   *input.ActionMap
	Renderer  *world.Renderer
	DebugMode bool

	frames uint64
}

// New loads the scene, spawns the player and wires the input actions to its
// controller. It does not touch the window, so it can run headless.
func New(cfg *config.Config) (*Game, error) {
	w := world.New("area51", cfg.Physics.Gravity)
	if err := w.LoadScene(cfg.Scene); err != nil {
		return nil, err
	}
	player := w.SpawnPlayer(cfg.Player, cfg.Controller)

	actions, err := loadActions(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	if err := bindController(actions, player.Controller); err != nil {
		return nil, fmt.Errorf("bind controls: %w", err)
	}

	g := &Game{
		Config:   cfg,
		World:    w,
		Player:   player,
		Actions:  actions,
		Renderer: world.NewRenderer(),
	}
	g.watchPlayer()
	w.Start()
	return g, nil
}

func loadActions(path string) (*input.ActionMap, error) {
	if path == "" {
		return input.DefaultActionMap()
	}
	return input.LoadBindings(path)
}

func (g *Game) watchPlayer() {
	c := g.Player.Controller
	c.PickedUp.AddListener(func(obj *engine.GameObject) {
		logging.Logger.Info().Str("object", obj.Name).Msg("holding")
	})
	c.Dropped.AddListener(func(obj *engine.GameObject) {
		logging.Logger.Info().Str("object", obj.Name).Msg("released")
	})
	c.Thrown.AddListener(func(obj *engine.GameObject) {
		logging.Logger.Info().Str("object", obj.Name).Msg("threw")
	})
}

// Tick polls src, dispatches the resulting actions and advances the world.
func (g *Game) Tick(deltaTime float32, src input.Source) {
	g.Actions.Update(src)
	g.World.Update(deltaTime)
	g.frames++
}

func (g *Game) Run() {
	wc := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(wc.Width), int32(wc.Height), wc.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(wc.TargetFPS))
	rl.DisableCursor()
	setupHUDStyle()

	logging.Logger.Info().
		Int("width", wc.Width).
		Int("height", wc.Height).
		Str("scene", g.World.Scene.Name).
		Msg("window open")

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyF1) {
			g.DebugMode = !g.DebugMode
		}
		g.Tick(rl.GetFrameTime(), input.RaylibSource{})
		g.Draw()
	}
	logging.Logger.Info().Uint64("frames", g.frames).Msg("window closed")
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	g.Renderer.Draw(g.World.Scene, g.Player.Camera)
	g.drawHUD()
	rl.EndDrawing()
}
