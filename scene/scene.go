// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/galvanized/raytrace/math3d"
)

// Scene is an append-only collection of primitives (each shaded with a
// material looked up by index), plus a list of lights. Once Seal has been
// called the scene is treated as read-only by the renderer; nothing in
// this package enforces that at the type level, matching the teacher's
// convention of documenting immutability rather than wrapping every field
// access (physics bodies and primitives are likewise "owned, don't mutate
// after handoff" by convention).
type Scene struct {
	materials     []Material
	primitives    []Primitive
	materialIndex []int
	lights        []Light
	sealed        bool
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// AddMaterial appends a material to the table and returns its index, for
// use with AddPrimitive.
func (s *Scene) AddMaterial(m Material) int {
	s.materials = append(s.materials, m)
	return len(s.materials) - 1
}

// AddPrimitive appends a primitive, associated with the material at
// materialIdx in the material table.
func (s *Scene) AddPrimitive(p Primitive, materialIdx int) {
	s.primitives = append(s.primitives, p)
	s.materialIndex = append(s.materialIndex, materialIdx)
}

// AddLight appends a single light.
func (s *Scene) AddLight(l Light) {
	s.lights = append(s.lights, l)
}

// AddLights appends a batch of lights, e.g. the grid an area-light
// builder produces.
func (s *Scene) AddLights(batch []Light) {
	s.lights = append(s.lights, batch...)
}

// Primitives returns a read-only view of the primitive list.
func (s *Scene) Primitives() []Primitive { return s.primitives }

// Lights returns a read-only view of the light list.
func (s *Scene) Lights() []Light { return s.lights }

// Materials returns a read-only view of the material table.
func (s *Scene) Materials() []Material { return s.materials }

// MaterialFor returns the material assigned to primitive index i.
func (s *Scene) MaterialFor(i int) Material {
	return s.materials[s.materialIndex[i]]
}

// ConfigError reports a configuration problem detected at Seal, before
// rendering starts (spec.md section 7).
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "raytrace: configuration error: " + e.Reason }

// Seal validates the scene's invariants — material indices in range,
// primitives and material_index the same length, no zero-radius spheres,
// no zero-area bounded planes, no zero-length basis vectors, no
// degenerate triangles — and marks it read-only for the renderer.
// Rendering must not start if Seal returns an error.
func (s *Scene) Seal() error {
	if len(s.primitives) != len(s.materialIndex) {
		return &ConfigError{Reason: fmt.Sprintf("primitive count %d != material index count %d", len(s.primitives), len(s.materialIndex))}
	}
	for i, idx := range s.materialIndex {
		if idx < 0 || idx >= len(s.materials) {
			return &ConfigError{Reason: fmt.Sprintf("primitive %d: material index %d out of range [0,%d)", i, idx, len(s.materials))}
		}
	}
	for i, p := range s.primitives {
		if err := validatePrimitive(p); err != nil {
			return &ConfigError{Reason: fmt.Sprintf("primitive %d: %s", i, err)}
		}
	}
	s.sealed = true
	return nil
}

// Sealed reports whether Seal has succeeded.
func (s *Scene) Sealed() bool { return s.sealed }

func validatePrimitive(p Primitive) error {
	switch p.Kind {
	case KindSphere:
		if p.Sphere.Radius <= 0 {
			return fmt.Errorf("non-positive sphere radius %v", p.Sphere.Radius)
		}
	case KindBoundedPlane:
		if p.Plane.V.Length2() < math3d.Epsilon*math3d.Epsilon {
			return fmt.Errorf("zero-length plane basis vector V")
		}
		if p.Plane.W.Length2() < math3d.Epsilon*math3d.Epsilon {
			return fmt.Errorf("zero-length plane basis vector W")
		}
		if p.Plane.Normal.Length2() < math3d.Epsilon*math3d.Epsilon {
			return fmt.Errorf("zero-length plane normal")
		}
		if p.Plane.V.Cross(p.Plane.W).Length2() < math3d.Epsilon*math3d.Epsilon {
			return fmt.Errorf("zero-area plane: basis vectors V and W are parallel")
		}
		if (p.Plane.BoundV && p.Plane.V1 <= p.Plane.V0) || (p.Plane.BoundW && p.Plane.W1 <= p.Plane.W0) {
			return fmt.Errorf("zero-area plane: empty bound interval")
		}
	case KindTriangle:
		area2 := p.Tri.V1.Sub(p.Tri.V0).Cross(p.Tri.V2.Sub(p.Tri.V0)).Length2()
		if area2 < math3d.Epsilon*math3d.Epsilon {
			return fmt.Errorf("zero-area triangle")
		}
	}
	return nil
}
