// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"math"

	"github.com/galvanized/raytrace/math3d"
)

// Kind tags which variant a Primitive holds. The teacher dispatches ray
// casts through a map of shape-id to cast function
// (physics/caster.go: rayCastAlgorithms); this is a tagged variant
// dispatched with a switch instead, which is branch-predictable and does
// not need a function-pointer indirection per intersection test.
type Kind int

const (
	KindSphere Kind = iota
	KindBoundedPlane
	KindTriangle
)

// Sphere is a center and radius. Radius2 is cached at construction.
type Sphere struct {
	Center  math3d.Vec3
	Radius  float32
	Radius2 float32
}

// NewSphere builds a sphere, caching radius squared.
func NewSphere(center math3d.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius, Radius2: radius * radius}
}

// BoundedPlane is an anchor point Q with two (not necessarily orthonormal)
// in-plane basis vectors V and W, optional finite intervals along each
// basis vector, and a supplied (not derived) outward normal — the surface
// is one-sided for lighting purposes.
type BoundedPlane struct {
	Q, V, W    math3d.Vec3
	Normal     math3d.Vec3
	BoundV     bool
	V0, V1     float32
	BoundW     bool
	W0, W1     float32
}

// Triangle is three vertices with a cached face normal.
type Triangle struct {
	V0, V1, V2 math3d.Vec3
	Normal     math3d.Vec3
}

// NewTriangle builds a triangle, caching its face normal as
// normalize((v1-v0)x(v2-v0)).
func NewTriangle(v0, v1, v2 math3d.Vec3) Triangle {
	n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: n}
}

// Primitive is a tagged union over the three supported shapes.
type Primitive struct {
	Kind   Kind
	Sphere Sphere
	Plane  BoundedPlane
	Tri    Triangle
}

// NewSpherePrimitive wraps a Sphere as a Primitive.
func NewSpherePrimitive(s Sphere) Primitive { return Primitive{Kind: KindSphere, Sphere: s} }

// NewPlanePrimitive wraps a BoundedPlane as a Primitive.
func NewPlanePrimitive(p BoundedPlane) Primitive { return Primitive{Kind: KindBoundedPlane, Plane: p} }

// NewTrianglePrimitive wraps a Triangle as a Primitive.
func NewTrianglePrimitive(tr Triangle) Primitive { return Primitive{Kind: KindTriangle, Tri: tr} }

// Intersect dispatches to the shape-specific intersection test.
func (p Primitive) Intersect(r Ray) Hit {
	switch p.Kind {
	case KindSphere:
		return intersectSphere(p.Sphere, r)
	case KindBoundedPlane:
		return intersectBoundedPlane(p.Plane, r)
	case KindTriangle:
		return intersectTriangle(p.Tri, r)
	default:
		return Hit{}
	}
}

// intersectSphere implements the geometric solution: project the
// center-to-origin vector onto the ray, reject rays that miss the
// enclosing disc, then recover the two roots and pick the nearest
// forward one.
func intersectSphere(s Sphere, r Ray) Hit {
	l := s.Center.Sub(r.Origin)
	tca := l.Dot(r.Dir)
	if tca < 0 {
		return Hit{}
	}
	d2 := l.Dot(l) - tca*tca
	if d2 > s.Radius2 {
		return Hit{}
	}
	thc := float32(math.Sqrt(float64(s.Radius2 - d2)))
	t0, t1 := tca-thc, tca+thc
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	t := t0
	if t < 0 {
		t = t1
	}
	if t < math3d.HitEpsilon {
		return Hit{}
	}
	point := r.Origin.Add(r.Dir.Scale(t))
	normal := point.Sub(s.Center).Normalize()
	angle := incidenceAngle(r.Dir, normal)
	return Hit{
		Present:  true,
		Point:    point,
		Normal:   normal,
		Angle:    angle,
		Distance: point.Sub(r.Origin).Length(),
	}
}

// intersectBoundedPlane solves for the ray/plane intersection, then
// projects the hit point into the (possibly non-orthonormal) plane basis
// to test against any declared finite intervals.
func intersectBoundedPlane(p BoundedPlane, r Ray) Hit {
	denom := p.Normal.Dot(r.Dir)
	if denom > -math3d.Epsilon && denom < math3d.Epsilon {
		return Hit{}
	}
	t := p.Q.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= 0 {
		return Hit{}
	}
	point := r.Origin.Add(r.Dir.Scale(t))
	diff := point.Sub(p.Q)

	var tv, sw float32
	if p.BoundV || p.BoundW {
		tv = diff.Dot(p.V) / p.V.Dot(p.V)
		sw = diff.Dot(p.W) / p.W.Dot(p.W)
		if p.BoundV && (tv < p.V0 || tv > p.V1) {
			return Hit{}
		}
		if p.BoundW && (sw < p.W0 || sw > p.W1) {
			return Hit{}
		}
	}

	hit := Hit{
		Present:  true,
		Point:    point,
		Normal:   p.Normal,
		Angle:    incidenceAngle(r.Dir, p.Normal),
		Distance: point.Sub(r.Origin).Length(),
	}
	if p.BoundV && p.BoundW {
		hit.HasUV = true
		hit.U = (tv - p.V0) / (p.V1 - p.V0)
		hit.V = (sw - p.W0) / (p.W1 - p.W0)
	}
	return hit
}

// intersectTriangle is the Möller–Trumbore test.
func intersectTriangle(tr Triangle, r Ray) Hit {
	e1 := tr.V1.Sub(tr.V0)
	e2 := tr.V2.Sub(tr.V0)
	pv := r.Dir.Cross(e2)
	det := e1.Dot(pv)
	if det > -math3d.Epsilon && det < math3d.Epsilon {
		return Hit{}
	}
	invDet := 1 / det
	tv := r.Origin.Sub(tr.V0)
	u := tv.Dot(pv) * invDet
	if u < 0 || u > 1 {
		return Hit{}
	}
	qv := tv.Cross(e1)
	v := r.Dir.Dot(qv) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}
	}
	t := e2.Dot(qv) * invDet
	if t <= math3d.HitEpsilon {
		return Hit{}
	}
	point := r.Origin.Add(r.Dir.Scale(t))
	return Hit{
		Present:  true,
		Point:    point,
		Normal:   tr.Normal,
		Angle:    incidenceAngle(r.Dir, tr.Normal),
		Distance: point.Sub(r.Origin).Length(),
		HasUV:    true,
		U:        u,
		V:        v,
	}
}

func incidenceAngle(dir, normal math3d.Vec3) float32 {
	denom := dir.Length() * normal.Length()
	if denom < math3d.Epsilon {
		return 0
	}
	cos := dir.Dot(normal) / denom
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}
