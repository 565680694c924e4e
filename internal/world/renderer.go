package world

import (
	"area51/internal/components"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every MeshRenderer in a scene from a camera, skipping
// objects outside the view frustum.
type Renderer struct {
	Background rl.Color
	DrawGrid   bool

	drawn, culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.RayWhite, DrawGrid: true}
}

// Draw renders scene as seen by cam. Needs an open window.
func (r *Renderer) Draw(scene *engine.Scene, cam *components.Camera) {
	rl.ClearBackground(r.Background)
	if cam == nil {
		return
	}
	view := cam.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))

	rl.BeginMode3D(view)
	if r.DrawGrid {
		rl.DrawGrid(40, 1)
	}
	r.drawn, r.culled = drawVisible(scene, ExtractFrustum(view, aspect, cam.Near, cam.Far))
	rl.EndMode3D()
}

// Stats returns how many meshes the last Draw rendered and culled.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

func drawVisible(scene *engine.Scene, f Frustum) (drawn, culled int) {
	for _, m := range VisibleMeshes(scene, f) {
		m.Draw()
		drawn++
	}
	for _, g := range scene.GameObjects {
		if g.Active && engine.GetComponent[*components.MeshRenderer](g) != nil {
			culled++
		}
	}
	return drawn, culled - drawn
}

// VisibleMeshes returns the active MeshRenderers whose bounds touch f.
func VisibleMeshes(scene *engine.Scene, f Frustum) []*components.MeshRenderer {
	var out []*components.MeshRenderer
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		m := engine.GetComponent[*components.MeshRenderer](g)
		if m == nil {
			continue
		}
		if m.MeshType != components.MeshPlane && !f.ContainsSphere(g.WorldPosition(), m.BoundingRadius()) {
			continue
		}
		out = append(out, m)
	}
	return out
}
