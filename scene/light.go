// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import "github.com/galvanized/raytrace/math3d"

// LightKind tags which light variant a Light holds.
type LightKind int

const (
	Ambient LightKind = iota
	Point
)

// Light is a tagged union over Ambient and Point lights.
type Light struct {
	Kind     LightKind
	Color    math3d.Color
	Strength float32

	// Point-only fields.
	Position   math3d.Vec3
	A0, A1, A2 float32 // quadratic attenuation coefficients
}

// NewAmbientLight builds an ambient light.
func NewAmbientLight(color math3d.Color, strength float32) Light {
	return Light{Kind: Ambient, Color: color, Strength: strength}
}

// NewPointLight builds a point light with quadratic attenuation
// 1/(a0 + a1*d + a2*d^2).
func NewPointLight(position math3d.Vec3, color math3d.Color, strength, a0, a1, a2 float32) Light {
	return Light{Kind: Point, Color: color, Strength: strength, Position: position, A0: a0, A1: a1, A2: a2}
}

// Attenuation returns the quadratic falloff factor for a point light at
// distance d. Ambient lights are never attenuated (callers should not
// call this for Ambient).
func (l Light) Attenuation(d float32) float32 {
	denom := l.A0 + l.A1*d + l.A2*d*d
	if denom < math3d.Epsilon {
		denom = math3d.Epsilon
	}
	return 1 / denom
}

// NewAreaLight is a builder, not a light kind of its own: it fabricates a
// density x density grid of Point lights spread over the rectangle defined
// by anchor q and in-plane vectors v, w, splitting the rectangle's total
// strength evenly across the grid so that denser sampling does not change
// the light's total power. It returns the batch to be added to a Scene via
// AddLights, mirroring the teacher's batch-spawn helpers that return a
// slice for the caller to bulk-register.
func NewAreaLight(q, v, w math3d.Vec3, color math3d.Color, strength float32, a0, a1, a2 float32, density int) []Light {
	if density < 1 {
		density = 1
	}
	n := density * density
	perLight := strength / float32(n)
	lights := make([]Light, 0, n)
	for i := 0; i < density; i++ {
		for j := 0; j < density; j++ {
			fu := (float32(i) + 0.5) / float32(density)
			fv := (float32(j) + 0.5) / float32(density)
			pos := q.Add(v.Scale(fu)).Add(w.Scale(fv))
			lights = append(lights, NewPointLight(pos, color, perLight, a0, a1, a2))
		}
	}
	return lights
}
