package geometry

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// List is a flat, unordered group of shapes tested by linear scan. It backs
// compound primitives (Box, CappedCylinder) that wrap a handful of
// sub-shapes rather than needing their own BVH subtree.
type List struct {
	Shapes []core.Shape
	bbox   core.AABB
}

// NewList builds a List and precomputes the union bounding box of its
// members.
func NewList(shapes ...core.Shape) *List {
	box := core.EmptyAABB()
	for _, s := range shapes {
		box = box.Union(s.BoundingBox())
	}
	return &List{Shapes: shapes, bbox: box}
}

// Hit returns the closest hit among the list's members, per the rule that a
// primitive wrapping several sub-primitives reports whichever sub-hit is
// nearest.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	var closest core.Interaction
	hitAnything := false
	closestSoFar := tMax

	for _, s := range l.Shapes {
		if hit, ok := s.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}
	return closest, hitAnything
}

func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
