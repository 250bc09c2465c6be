// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package math3d provides the 3-vector, quaternion, and color arithmetic
// the ray tracer needs: dot, cross, normalize, reflect, refract, rotation
// by quaternion, and linear-space color blending and quantisation.
package math3d

import "math"

// Epsilon is the tolerance used for parallelism and degeneracy checks
// throughout the intersection layer (spec: ray/primitive numerical policy).
const Epsilon = 1e-4

// HitEpsilon is the minimum forward ray parameter the sphere and triangle
// intersection tests accept as a real hit.
const HitEpsilon = 1e-5

// Vec3 is an ordered triple of 32-bit floats. It is also used as a point.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a short constructor, matching the teacher's terse helper naming.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v+a.
func (v Vec3) Add(a Vec3) Vec3 { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub returns v-a.
func (v Vec3) Sub(a Vec3) Vec3 { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul returns the component-wise product v*a.
func (v Vec3) Mul(a Vec3) Vec3 { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar dot product v·a.
func (v Vec3) Dot(a Vec3) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns v×a.
func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

// Length2 returns the squared length, avoiding a square root.
func (v Vec3) Length2() float32 { return v.Dot(v) }

// Length returns the Euclidean length.
func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.Length2()))) }

// Normalize returns a unit-length copy of v. The zero vector normalizes
// to itself rather than producing NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between v (t=0) and b (t=1).
func (v Vec3) Lerp(b Vec3, t float32) Vec3 {
	return v.Scale(1 - t).Add(b.Scale(t))
}

// Reflect reflects v about the unit normal n, i.e. v - 2*(v·n)*n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends v through a surface with unit normal n using a relative
// index of refraction eta (incident-over-transmitted), following GLSL's
// refract() semantics. It returns the zero vector on total internal
// reflection; callers must check that separately if they need to detect it.
func (v Vec3) Refract(n Vec3, eta float32) Vec3 {
	d := v.Dot(n)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vec3{}
	}
	return v.Scale(eta).Sub(n.Scale(eta*d + float32(math.Sqrt(float64(k)))))
}

// RotateByQuat rotates v by the unit quaternion q.
func (v Vec3) RotateByQuat(q Quat) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	s := q.W
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(s*s - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * s))
}

// Eq is exact (==) equality.
func (v Vec3) Eq(a Vec3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// ApproxEq is epsilon-approximate equality, used where direct comparison
// is unreliable due to floating point error.
func (v Vec3) ApproxEq(a Vec3) bool {
	return approxEq(v.X, a.X) && approxEq(v.Y, a.Y) && approxEq(v.Z, a.Z)
}

func approxEq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}
