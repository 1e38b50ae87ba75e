package hittable

import (
	"math"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Sphere is a ball of fixed radius centered at Center.
type Sphere struct {
	Center   vec3.Vec3
	Radius   float64
	Material Material
}

// Hit solves ||o + t*d - c||^2 = r^2 for t, returning the nearest root
// within (tMin, tMax).
func (s Sphere) Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) * 0.5 / a
	t2 := (-b + sqrtD) * 0.5 / a

	var t float64
	switch {
	case t1 > tMin && t1 < tMax:
		t = t1
	case t2 > tMin && t2 < tMax:
		t = t2
	default:
		return HitRecord{}, false
	}

	p := r.At(t)
	outwardNormal := p.Sub(s.Center).Scale(1 / s.Radius)
	n, frontFace := FaceNormal(r, outwardNormal)

	local := p.Sub(s.Center)
	theta := math.Acos(-local.Y)
	phi := math.Atan2(-local.Z, local.X) + math.Pi

	return HitRecord{
		P:         p,
		N:         n,
		T:         t,
		U:         phi / (2 * math.Pi),
		V:         theta / math.Pi,
		FrontFace: frontFace,
		Material:  s.Material,
	}, true
}

// BoundingBox returns the tight axis-aligned box around the sphere.
func (s Sphere) BoundingBox() (AABB, bool) {
	r := vec3.V3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}, true
}
