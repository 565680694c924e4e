package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the camera's view volume as six inward-facing planes, each
// stored as (nx, ny, nz, d) with nx*x + ny*y + nz*z + d >= 0 inside.
type Frustum struct {
	planes [6]rl.Vector4
}

// ExtractFrustum derives the view volume of camera for a viewport of the
// given aspect ratio (width / height), cut at near and far.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := projection(camera, aspect, near, far)
	m := rl.MatrixMultiply(view, proj)

	// Clip-space rows of the combined matrix.
	x := rl.Vector4{X: m.M0, Y: m.M4, Z: m.M8, W: m.M12}
	y := rl.Vector4{X: m.M1, Y: m.M5, Z: m.M9, W: m.M13}
	z := rl.Vector4{X: m.M2, Y: m.M6, Z: m.M10, W: m.M14}
	w := rl.Vector4{X: m.M3, Y: m.M7, Z: m.M11, W: m.M15}

	// A point is visible when -w <= x,y,z <= w.
	var f Frustum
	for i, p := range [6]rl.Vector4{
		addRow(w, x), subRow(w, x),
		addRow(w, y), subRow(w, y),
		addRow(w, z), subRow(w, z),
	} {
		f.planes[i] = normalized(p)
	}
	return f
}

func projection(camera rl.Camera3D, aspect, near, far float32) rl.Matrix {
	if camera.Projection == rl.CameraOrthographic {
		top := camera.Fovy / 2
		right := top * aspect
		return rl.MatrixOrtho(-right, right, -top, top, near, far)
	}
	return rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
}

func addRow(a, b rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

func subRow(a, b rl.Vector4) rl.Vector4 {
	return rl.Vector4{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

// normalized scales p so its distance term is in world units.
func normalized(p rl.Vector4) rl.Vector4 {
	n := rl.Vector3Length(rl.Vector3{X: p.X, Y: p.Y, Z: p.Z})
	if n == 0 {
		return p
	}
	return rl.Vector4{X: p.X / n, Y: p.Y / n, Z: p.Z / n, W: p.W / n}
}

func signedDistance(p rl.Vector4, point rl.Vector3) float32 {
	return p.X*point.X + p.Y*point.Y + p.Z*point.Z + p.W
}

// ContainsSphere reports whether any part of the sphere is inside. It may
// keep a sphere near a frustum corner that is actually outside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if signedDistance(p, center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
