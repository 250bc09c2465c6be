// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene holds the analytic primitives, the append-only scene
// description, the material and light tables, and the framebuffer — the
// data model a ray is cast against and the surface it shades into.
package scene

import "github.com/galvanized/raytrace/math3d"

// Ray is an origin point and a direction vector. Callers are responsible
// for normalizing the direction where normalization matters; perspective
// camera dispatch always normalizes before casting.
type Ray struct {
	Origin math3d.Vec3
	Dir    math3d.Vec3
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// Hit is a nearest-intersection record. Present reports whether a hit
// occurred; the remaining fields are only meaningful when Present is true.
type Hit struct {
	Present  bool
	Point    math3d.Vec3
	Normal   math3d.Vec3
	Angle    float32 // radians between ray direction and surface normal
	Distance float32
	HasUV    bool
	U, V     float32
}
