package hittable

import "github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"

// UV is a 2D texture coordinate.
type UV struct {
	U, V float64
}

// Triangle is a flat triangular primitive with a precomputed face normal.
// UV1/UV2/UV3 are the per-vertex texture coordinates, interpolated by
// barycentric weight at the hit point; they default to the zero UV when a
// triangle (e.g. one produced by the OBJ loader) carries no mapping.
type Triangle struct {
	P1, P2, P3    vec3.Vec3
	UV1, UV2, UV3 UV
	Normal        vec3.Vec3
	Material      Material
}

// NewTriangle builds a Triangle, precomputing its face normal as
// normalize(cross(p2-p1, p3-p1)).
func NewTriangle(p1, p2, p3 vec3.Vec3, material Material) Triangle {
	n := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return Triangle{P1: p1, P2: p2, P3: p3, Normal: n, Material: material}
}

// WithUV returns a copy of t with the given per-vertex texture coordinates.
func (t Triangle) WithUV(uv1, uv2, uv3 UV) Triangle {
	t.UV1, t.UV2, t.UV3 = uv1, uv2, uv3
	return t
}

func sameSide(p1, p2, a, b vec3.Vec3) bool {
	cv1 := b.Sub(a).Cross(p1.Sub(a))
	cv2 := b.Sub(a).Cross(p2.Sub(a))
	return cv1.Dot(cv2) >= 0
}

// Hit intersects the ray with the triangle's plane, rejecting near-parallel
// rays (|d·n| < 1e-6), then tests containment via three same-side checks
// against each edge (the Blackpawn point-in-triangle test).
func (t Triangle) Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	den := r.Direction.Dot(t.Normal)
	if abs(den) < 1e-6 {
		return HitRecord{}, false
	}
	num := t.P1.Sub(r.Origin).Dot(t.Normal)
	tHit := num / den
	if tHit <= tMin || tHit >= tMax {
		return HitRecord{}, false
	}

	p := r.At(tHit)
	if !sameSide(p, t.P1, t.P2, t.P3) || !sameSide(p, t.P2, t.P3, t.P1) || !sameSide(p, t.P3, t.P1, t.P2) {
		return HitRecord{}, false
	}

	n := t.Normal
	if den >= 0 {
		n = n.Negate()
	}

	u, v := t.barycentricUV(p)

	return HitRecord{
		P:         p,
		N:         n,
		T:         tHit,
		U:         u,
		V:         v,
		FrontFace: den < 0,
		Material:  t.Material,
	}, true
}

// barycentricUV interpolates the triangle's per-vertex UVs at point p,
// assumed to lie in the triangle's plane.
func (t Triangle) barycentricUV(p vec3.Vec3) (float64, float64) {
	areaTotal := t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Dot(t.Normal)
	if abs(areaTotal) < 1e-12 {
		return 0, 0
	}
	w1 := t.P3.Sub(t.P2).Cross(p.Sub(t.P2)).Dot(t.Normal) / areaTotal
	w2 := t.P1.Sub(t.P3).Cross(p.Sub(t.P3)).Dot(t.Normal) / areaTotal
	w3 := 1 - w1 - w2
	return w1*t.UV1.U + w2*t.UV2.U + w3*t.UV3.U, w1*t.UV1.V + w2*t.UV2.V + w3*t.UV3.V
}

// BoundingBox returns the tight box over the triangle's three vertices.
func (t Triangle) BoundingBox() (AABB, bool) {
	min := t.P1.Min(t.P2).Min(t.P3)
	max := t.P1.Max(t.P2).Max(t.P3)
	return AABB{Min: min, Max: max}, true
}
