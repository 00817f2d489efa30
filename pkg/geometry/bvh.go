package geometry

import (
	"math/rand"

	"github.com/anthropic-exercise/pathtracer/pkg/core"
)

// BVHNode is either an interior node with two children or a leaf holding one
// or two primitives. The node's bounding box always encloses both children.
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []core.Shape // non-nil only for leaves
}

// BVH is a binary tree built once over a scene's primitives, never mutated
// during rendering.
type BVH struct {
	Root   *BVHNode
	Center core.Vec3 // center of the root bounding box
	Radius float64   // radius of a sphere around Center enclosing the root box
}

// NewBVH builds a BVH over shapes using a random splitting axis per node and
// select-k median partitioning, per the construction algorithm this renderer
// uses in place of a longest-axis sorted split.
func NewBVH(shapes []core.Shape, rng *rand.Rand) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	shapesCopy := make([]core.Shape, len(shapes))
	copy(shapesCopy, shapes)

	root := buildBVH(shapesCopy, rng)

	center := root.BoundingBox.Center()
	radius := root.BoundingBox.Max.Subtract(center).Length()

	return &BVH{Root: root, Center: center, Radius: radius}
}

func boundShapes(shapes []core.Shape) core.AABB {
	box := core.EmptyAABB()
	for _, s := range shapes {
		box = box.Union(s.BoundingBox())
	}
	return box
}

// buildBVH recursively partitions shapes[start:end] in place, returning a
// node spanning the slice. Base cases of size 1 and 2 become leaves directly;
// larger slices pick a random axis and partition around the median element
// using a select-k (nth-element) reorder rather than a full sort.
func buildBVH(shapes []core.Shape, rng *rand.Rand) *BVHNode {
	box := boundShapes(shapes)

	if len(shapes) <= 2 {
		return &BVHNode{BoundingBox: box, Shapes: shapes}
	}

	axis := rng.Intn(3)
	mid := len(shapes) / 2
	selectNth(shapes, mid, axis)

	left := buildBVH(shapes[:mid], rng)
	right := buildBVH(shapes[mid:], rng)

	return &BVHNode{BoundingBox: box, Left: left, Right: right}
}

func axisMin(box core.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// selectNth reorders shapes so the element at index k has an AABB-min along
// axis no greater than every element after it and no less than every element
// before it (the element itself need not be unique), using Hoare-style
// quickselect rather than a full sort.
func selectNth(shapes []core.Shape, k, axis int) {
	lo, hi := 0, len(shapes)-1
	for lo < hi {
		pivot := axisMin(shapes[(lo+hi)/2].BoundingBox(), axis)
		i, j := lo, hi
		for i <= j {
			for axisMin(shapes[i].BoundingBox(), axis) < pivot {
				i++
			}
			for axisMin(shapes[j].BoundingBox(), axis) > pivot {
				j--
			}
			if i <= j {
				shapes[i], shapes[j] = shapes[j], shapes[i]
				i++
				j--
			}
		}
		if k <= j {
			hi = j
		} else if k >= i {
			lo = i
		} else {
			return
		}
	}
}

// Hit queries the BVH for the closest interaction along ray within
// (tMin, tMax), testing the node's AABB via the slab method and recursing
// into whichever children the ray's box test admits.
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	if bvh.Root == nil {
		return core.Interaction{}, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (core.Interaction, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return core.Interaction{}, false
	}

	if node.Shapes != nil {
		var closest core.Interaction
		hitAnything := false
		closestSoFar := tMax

		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				hitAnything = true
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, hitAnything
	}

	leftHit, hitLeft := hitNode(node.Left, ray, tMin, tMax)
	bound := tMax
	if hitLeft {
		bound = leftHit.T
	}
	rightHit, hitRight := hitNode(node.Right, ray, tMin, bound)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements core.Shape so a BVH can itself be nested as a
// sub-primitive.
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.EmptyAABB()
	}
	return bvh.Root.BoundingBox
}
