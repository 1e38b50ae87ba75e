// Package hittable defines the scene-geometry surface: the Hittable and
// Material interfaces, the HitRecord they communicate through, and the
// axis-aligned bounding boxes used by the BVH.
package hittable

import (
	"math/rand"

	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// HitRecord describes where a ray struck a primitive.
//
// Invariants: N has unit length; N is oriented against the incoming ray
// (dot(ray.Direction, N) <= 0); T lies strictly within the query's
// (tMin, tMax) interval.
type HitRecord struct {
	P         vec3.Vec3
	N         vec3.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// FaceNormal orients outwardNormal (assumed unit length) against rIn,
// returning the adjusted normal and whether the hit is on the front face.
func FaceNormal(rIn vec3.Ray, outwardNormal vec3.Vec3) (vec3.Vec3, bool) {
	frontFace := rIn.Direction.Dot(outwardNormal) < 0
	if frontFace {
		return outwardNormal, true
	}
	return outwardNormal.Negate(), false
}

// Hittable is a scene entity that can be intersected by a ray and bounded
// by an axis-aligned box. Plane has no finite bounding box and reports ok=false.
type Hittable interface {
	Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox() (AABB, bool)
}

// ScatterResult is the outcome of a material scattering an incoming ray.
// Scattered is nil when the path terminates at this hit (absorbed or
// emissive surface); Emitted is added to the radiance estimate regardless.
type ScatterResult struct {
	Scattered   *vec3.Ray
	Attenuation rtcolor.Color
	Emitted     rtcolor.Color
}

// Material scatters an incoming ray at a hit point, given a per-goroutine
// random source for stochastic bounce directions.
type Material interface {
	Scatter(rIn vec3.Ray, rec HitRecord, rng *rand.Rand) ScatterResult
}

// AABB is an axis-aligned bounding box defined by component-wise min/max
// corners, with Min <= Max on every axis.
type AABB struct {
	Min, Max vec3.Vec3
}

// Union returns the smallest AABB enclosing both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Hit performs the slab test, reporting whether the ray's (tMin, tMax)
// interval intersects the box on every axis.
func (box AABB) Hit(r vec3.Ray, tMin, tMax float64) bool {
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	max := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for a := 0; a < 3; a++ {
		invD := 1.0 / dir[a]
		t0 := (min[a] - origin[a]) * invD
		t1 := (max[a] - origin[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
