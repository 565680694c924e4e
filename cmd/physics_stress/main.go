// Drops a pile of crates and balls into the range and reports how long the
// physics steps take and how many bodies come to rest.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"area51/internal/components"
	"area51/internal/engine"
	"area51/internal/logging"
	"area51/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scene := flag.String("scene", "assets/scenes/range.yaml", "scene to drop bodies into")
	seconds := flag.Float64("seconds", 10, "simulated time per run")
	flag.Parse()

	logging.Setup("info", os.Stdout)

	for _, count := range []int{50, 100, 250, 500, 1000} {
		if err := run(*scene, count, float32(*seconds)); err != nil {
			logging.Logger.Fatal().Err(err).Msg("stress run")
		}
	}
}

func run(scenePath string, count int, seconds float32) error {
	w := world.New("stress", -9.81)
	if err := w.LoadScene(scenePath); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(42, uint64(count)))
	bodies := make([]*components.Rigidbody, 0, count)
	for i := range count {
		bodies = append(bodies, spawnBody(w, rng, i))
	}
	w.Start()

	const dt = float32(1.0 / 60)
	frames := int(seconds / dt)
	var worst time.Duration
	start := time.Now()
	for range frames {
		t := time.Now()
		w.Physics.Update(dt)
		worst = max(worst, time.Since(t))
	}
	total := time.Since(start)

	sleeping := 0
	for _, rb := range bodies {
		if rb.IsSleeping {
			sleeping++
		}
	}
	logging.Logger.Info().
		Int("bodies", count).
		Dur("avg", total/time.Duration(frames)).
		Dur("worst", worst).
		Int("sleeping", sleeping).
		Msg("stress run")
	return nil
}

func spawnBody(w *world.World, rng *rand.Rand, i int) *components.Rigidbody {
	g := engine.NewGameObject(fmt.Sprintf("Body_%d", i))
	g.Tags = []string{"holdable"}
	g.Transform.Position = rl.Vector3{
		X: rng.Float32()*20 - 10,
		Y: 1 + rng.Float32()*10,
		Z: rng.Float32()*20 - 10,
	}

	rb := components.NewRigidbody()
	rb.Mass = 0.5 + rng.Float32()*2
	g.AddComponent(rb)
	if i%2 == 0 {
		size := 0.3 + rng.Float32()*0.4
		g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size, Y: size, Z: size}))
	} else {
		g.AddComponent(components.NewSphereCollider(0.15 + rng.Float32()*0.2))
	}
	g.AddComponent(components.NewPickUpObject())
	w.Add(g)
	return rb
}
