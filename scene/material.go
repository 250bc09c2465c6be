// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import "github.com/galvanized/raytrace/math3d"

// MaterialKind tags which shading model a Material uses.
type MaterialKind int

const (
	Phong MaterialKind = iota
	Reflective
	Refractive
	PBR
)

// Material is an immutable-after-insertion record describing how a
// surface shades. Fields not used by a given Kind are left at their
// documented defaults.
type Material struct {
	Kind MaterialKind

	Color         math3d.Color // base/albedo color. Default: white.
	Specular      float32      // Phong specular amount.
	Shininess     float32      // Phong exponent.
	MaxBounce     int          // per-material bounce budget; stored only, the shading evaluator's own depth budget bounds recursion.
	IOR           float32      // refractive index. Default: 1.3.
	Metallic      float32      // PBR metalness [0,1].
	Roughness     float32      // PBR roughness, clamped to [0.01,0.99].
	Anisotropy    float32      // PBR anisotropy [0,1].
	TangentRotate float32      // PBR tangent frame rotation, radians.
}

// defaultMaterial captures spec.md's documented defaults: color white,
// all numeric fields zero, ior 1.3.
func defaultMaterial() Material {
	return Material{Color: math3d.White, IOR: 1.3}
}

// NewPhongMaterial builds a Phong material, starting from the documented
// defaults and overriding the fields a Phong surface actually uses.
func NewPhongMaterial(color math3d.Color, specular, shininess float32) Material {
	m := defaultMaterial()
	m.Kind = Phong
	m.Color = color
	m.Specular = specular
	m.Shininess = shininess
	return m
}

// NewReflectiveMaterial builds a mirror material.
func NewReflectiveMaterial(color math3d.Color, maxBounce int) Material {
	m := defaultMaterial()
	m.Kind = Reflective
	m.Color = color
	m.MaxBounce = maxBounce
	return m
}

// NewRefractiveMaterial builds a dielectric material with the given
// refractive index.
func NewRefractiveMaterial(color math3d.Color, ior float32, maxBounce int) Material {
	m := defaultMaterial()
	m.Kind = Refractive
	m.Color = color
	m.IOR = ior
	m.MaxBounce = maxBounce
	return m
}

// NewPBRMaterial builds a Cook-Torrance microfacet material. Roughness is
// clamped to spec.md's documented [0.01,0.99] range.
func NewPBRMaterial(albedo math3d.Color, metallic, roughness, anisotropy, tangentRotate float32) Material {
	m := defaultMaterial()
	m.Kind = PBR
	m.Color = albedo
	m.Metallic = metallic
	if roughness < 0.01 {
		roughness = 0.01
	}
	if roughness > 0.99 {
		roughness = 0.99
	}
	m.Roughness = roughness
	m.Anisotropy = anisotropy
	m.TangentRotate = tangentRotate
	return m
}
