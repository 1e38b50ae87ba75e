// Package bvh implements the bounding volume hierarchy that accelerates
// ray/primitive queries over a scene's hittable list.
package bvh

import (
	"math/rand"
	"sort"

	"github.com/droidkid/ray-tracing-weekend-go/pkg/hittable"
	"github.com/droidkid/ray-tracing-weekend-go/pkg/vec3"
)

// leafEpsilon guards against shadow acne: scattered rays are tested
// against the leaf's primitives starting just past their own origin.
const leafEpsilon = 1e-4

// DefaultLeafSize is the maximum number of primitives held directly by a
// leaf node before the node is split further.
const DefaultLeafSize = 5

// Node is a binary tree node over a set of bounded hittables. An internal
// node has both Left and Right set and a Box enclosing their union; a leaf
// holds up to leafSize primitives directly and has nil children.
type Node struct {
	Box         hittable.AABB
	Left, Right *Node
	Objects     []hittable.Hittable
}

// Build constructs a BVH over objects using the given leaf size, splitting
// by sorting along a randomly chosen axis and dividing at the median. Every
// object must report a finite bounding box (BoundingBox ok=true); exclude
// unbounded primitives such as Plane before calling Build.
func Build(objects []hittable.Hittable, leafSize int, rng *rand.Rand) *Node {
	if leafSize < 1 {
		leafSize = DefaultLeafSize
	}
	return build(objects, leafSize, rng)
}

func build(objects []hittable.Hittable, leafSize int, rng *rand.Rand) *Node {
	axis := rng.Intn(3)
	sorted := make([]hittable.Hittable, len(objects))
	copy(sorted, objects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return boundingBoxMinComponent(sorted[i], axis) < boundingBoxMinComponent(sorted[j], axis)
	})

	if len(sorted) <= leafSize {
		return &Node{
			Box:     union(sorted),
			Objects: sorted,
		}
	}

	mid := len(sorted) / 2
	left := build(sorted[:mid], leafSize, rng)
	right := build(sorted[mid:], leafSize, rng)

	return &Node{
		Box:   hittable.Union(left.Box, right.Box),
		Left:  left,
		Right: right,
	}
}

func boundingBoxMinComponent(h hittable.Hittable, axis int) float64 {
	box, _ := h.BoundingBox()
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

func union(objects []hittable.Hittable) hittable.AABB {
	box, _ := objects[0].BoundingBox()
	for _, o := range objects[1:] {
		obox, _ := o.BoundingBox()
		box = hittable.Union(box, obox)
	}
	return box
}

// Hit queries the tree: if the node's own AABB is missed, there is no hit.
// A leaf scans its primitives directly (each tested with t_min=leafEpsilon
// to guard against shadow acne); an internal node recurses into both
// children and keeps whichever hit has the smaller t.
func (n *Node) Hit(r vec3.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	if n == nil || !n.Box.Hit(r, tMin, tMax) {
		return hittable.HitRecord{}, false
	}

	if n.Left == nil && n.Right == nil {
		var best hittable.HitRecord
		found := false
		for _, obj := range n.Objects {
			if rec, ok := obj.Hit(r, leafEpsilon, tMax); ok {
				if !found || rec.T < best.T {
					best = rec
					found = true
				}
			}
		}
		return best, found
	}

	leftHit, leftOK := n.Left.Hit(r, tMin, tMax)
	rightHit, rightOK := n.Right.Hit(r, tMin, tMax)

	switch {
	case !leftOK && !rightOK:
		return hittable.HitRecord{}, false
	case !leftOK:
		return rightHit, true
	case !rightOK:
		return leftHit, true
	case leftHit.T < rightHit.T:
		return leftHit, true
	default:
		return rightHit, true
	}
}

// BoundingBox returns the node's own AABB.
func (n *Node) BoundingBox() (hittable.AABB, bool) {
	if n == nil {
		return hittable.AABB{}, false
	}
	return n.Box, true
}
