// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package math3d

import "math"

// Quat is a unit quaternion representing a rotation: (X,Y,Z) is the
// rotation axis scaled by sin(angle/2) and W is cos(angle/2).
// Quaternions here do not behave commutatively under Mul.
type Quat struct {
	X, Y, Z, W float32
}

// QIdentity is the identity rotation. It should never be mutated.
var QIdentity = Quat{0, 0, 0, 1}

// FromAxisAngle builds a unit quaternion rotating by angle radians about
// the given axis, which need not be pre-normalized.
func FromAxisAngle(axis Vec3, radians float32) Quat {
	a := axis.Normalize()
	half := radians * 0.5
	s := float32(math.Sin(float64(half)))
	return Quat{a.X * s, a.Y * s, a.Z * s, float32(math.Cos(float64(half)))}
}

// Mul returns the Hamilton product q*r: applying the result (as
// RotateByQuat does) rotates first by r, then by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Normalize returns a unit-length copy of q.
func (q Quat) Normalize() Quat {
	l := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if l < Epsilon {
		return q
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}
