package core

import "math"

// ONB is an orthonormal basis built around a single axis (typically a
// surface normal), used to lift locally-sampled hemisphere directions into
// world space.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to axis.
func NewONB(axis Vec3) ONB {
	w := axis.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector expressed in the basis's local coordinates into
// world space.
func (b ONB) Local(v Vec3) Vec3 {
	return b.U.Multiply(v.X).Add(b.V.Multiply(v.Y)).Add(b.W.Multiply(v.Z))
}
