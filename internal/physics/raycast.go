package physics

import (
	"math"

	"area51/internal/components"
	"area51/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest hit within maxDistance. Objects listed in
// ignore and their descendants are skipped, as are inactive objects.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore ...*engine.GameObject) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit engine.RaycastResult
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Collidables() {
		if !obj.Active || ignored(obj, ignore) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(origin, direction, BoxBounds(box), maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.GetWorldRadius(), maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

func ignored(obj *engine.GameObject, ignore []*engine.GameObject) bool {
	for _, ig := range ignore {
		if ig != nil && obj.IsDescendantOf(ig) {
			return true
		}
	}
	return false
}

// raycastBox is a slab test. A ray starting inside the box reports the exit point.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (engine.RaycastResult, bool) {
	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face that was hit
	var normal rl.Vector3
	const epsilon = 0.001
	switch {
	case absf(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return engine.RaycastResult{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}
