package hittable

import "github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"

// Quad is a planar quadrilateral built from two triangles sharing the
// p1-p3 diagonal.
type Quad struct {
	Triangle1, Triangle2 Triangle
}

// NewQuad builds a quad with a single material shared by both triangles.
func NewQuad(p1, p2, p3, p4 vec3.Vec3, material Material) Quad {
	return Quad{
		Triangle1: NewTriangle(p1, p2, p3, material),
		Triangle2: NewTriangle(p1, p3, p4, material),
	}
}

// Hit tests both triangles and returns whichever is nearer.
func (q Quad) Hit(r vec3.Ray, tMin, tMax float64) (HitRecord, bool) {
	hit1, ok1 := q.Triangle1.Hit(r, tMin, tMax)
	hit2, ok2 := q.Triangle2.Hit(r, tMin, tMax)

	switch {
	case !ok1 && !ok2:
		return HitRecord{}, false
	case !ok1:
		return hit2, true
	case !ok2:
		return hit1, true
	case hit1.T < hit2.T:
		return hit1, true
	default:
		return hit2, true
	}
}

// BoundingBox returns the union of both triangles' bounding boxes.
func (q Quad) BoundingBox() (AABB, bool) {
	bb1, _ := q.Triangle1.BoundingBox()
	bb2, _ := q.Triangle2.BoundingBox()
	return Union(bb1, bb2), true
}
