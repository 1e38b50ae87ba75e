package hittable

import "github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"

// Plane is an infinite axis-aligned surface. It has no finite bounding box
// and so is excluded from the BVH; the renderer tests it separately.
type Plane struct {
	Point    vec3.Vec3
	Normal   vec3.Vec3
	Material Material
}

// XYPlane returns a plane parallel to the XY axes at the given z.
func XYPlane(z float64, material Material) Plane {
	return Plane{Point: vec3.V3(0, 0, z), Normal: vec3.V3(0, 0, 1), Material: material}
}

// ZXPlane returns a plane parallel to the ZX axes at the given y.
func ZXPlane(y float64, material Material) Plane {
	return Plane{Point: vec3.V3(0, y, 0), Normal: vec3.V3(0, 1, 0), Material: material}
}

// YZPlane returns a plane parallel to the YZ axes at the given x.
func YZPlane(x float64, material Material) Plane {
	return Plane{Point: vec3.V3(x, 0, 0), Normal: vec3.V3(1, 0, 0), Material: material}
}

// Hit intersects the ray with the plane; rays nearly parallel to it
// (|d·n| < 1e-6) are treated as misses rather than a division blow-up.
func (p Plane) Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	den := r.Direction.Dot(p.Normal)
	if abs(den) < 1e-6 {
		return HitRecord{}, false
	}
	num := p.Point.Sub(r.Origin).Dot(p.Normal)
	t := num / den

	if t <= tMin || t >= tMax {
		return HitRecord{}, false
	}

	n := p.Normal
	if den >= 0 {
		n = n.Negate()
	}

	return HitRecord{
		P:         r.At(t),
		N:         n,
		T:         t,
		U:         0,
		V:         0,
		FrontFace: true,
		Material:  p.Material,
	}, true
}

// BoundingBox reports that an infinite plane has no finite bounds.
func (p Plane) BoundingBox() (AABB, bool) {
	return AABB{}, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
