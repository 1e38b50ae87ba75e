// Package scene assembles primitives, materials, and a camera into a
// renderable scene, from either a hard-coded constructor or a loaded
// configuration and mesh file.
package scene

import (
	"math/rand"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/bvh"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/camera"
	rtcolor "github.com/droidkid/ray-tracing-weekend-go/pkg/color"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// Scene is the renderer-facing view of a built world: a BVH over bounded
// primitives, plus any unbounded primitives (planes) tested alongside it.
type Scene struct {
	tree   *bvh.Node
	planes []hittable.Plane
}

// Build separates objects into BVH-eligible (bounded) and plane (unbounded)
// primitives, then constructs the BVH over the former with the given leaf
// size (DefaultLeafSize when <1).
func Build(objects []hittable.Hittable, planes []hittable.Plane, leafSize int, rng *rand.Rand) *Scene {
	s := &Scene{planes: planes}
	if len(objects) > 0 {
		s.tree = bvh.Build(objects, leafSize, rng)
	}
	return s
}

// Hit tries the BVH first, then every plane, keeping whichever hit has the
// smaller t — planes have no finite AABB and so cannot live in the tree.
func (s *Scene) Hit(r vec3.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	var best hittable.HitRecord
	found := false

	if s.tree != nil {
		if rec, ok := s.tree.Hit(r, tMin, tMax); ok {
			best, found = rec, true
		}
	}

	for _, p := range s.planes {
		limit := tMax
		if found {
			limit = best.T
		}
		if rec, ok := p.Hit(r, tMin, limit); ok {
			if !found || rec.T < best.T {
				best, found = rec, true
			}
		}
	}

	return best, found
}

// Built is the result of constructing a named scene: its geometry plus the
// camera framing it and the background color it expects.
type Built struct {
	Scene      *Scene
	Camera     camera.Camera
	Background rtcolor.Color
}
