package geometry

import "github.com/anthropic-exercise/pathtracer/pkg/core"

// NewBox returns an axis-aligned box spanning [min,max] as a nested List of
// six rectangles, per the rule that a primitive wrapping several
// sub-primitives reports the nearest sub-hit.
func NewBox(min, max core.Vec3, materialIndex int) *List {
	return NewList(
		NewRectXY(min.X, max.X, min.Y, max.Y, max.Z, materialIndex),
		NewFlipNormal(NewRectXY(min.X, max.X, min.Y, max.Y, min.Z, materialIndex)),

		NewRectXZ(min.X, max.X, min.Z, max.Z, max.Y, materialIndex),
		NewFlipNormal(NewRectXZ(min.X, max.X, min.Z, max.Z, min.Y, materialIndex)),

		NewRectYZ(min.Y, max.Y, min.Z, max.Z, max.X, materialIndex),
		NewFlipNormal(NewRectYZ(min.Y, max.Y, min.Z, max.Z, min.X, materialIndex)),
	)
}
