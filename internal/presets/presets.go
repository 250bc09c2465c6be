// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package presets loads named demo scenes from embedded YAML, the same
// way the teacher's load package deserializes asset/level data. They
// supplement spec.md's "scene builders are external" boundary
// (spec.md section 1's Non-goals): the scenes themselves are data, not
// Go builder code, so no core package depends on them.
//
// Grounded on original_source/src/presentation_scenes.rs's shading_scene
// and reflection_refraction_scene, translated into data rather than code.
package presets

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/scene"
)

//go:embed *.yaml
var files embed.FS

// Spec is the on-disk shape of a preset file.
type Spec struct {
	Name       string          `yaml:"name"`
	Camera     CameraSpec      `yaml:"camera"`
	SkyColor   [3]float32      `yaml:"sky_color"`
	Materials  []MaterialSpec  `yaml:"materials"`
	Primitives []PrimitiveSpec `yaml:"primitives"`
	Lights     []LightSpec     `yaml:"lights"`
}

// CameraSpec positions the camera used to render this preset.
type CameraSpec struct {
	Pos     [3]float32 `yaml:"pos"`
	Forward [3]float32 `yaml:"forward"`
	Right   [3]float32 `yaml:"right"`
}

// MaterialSpec is a named material, referenced by Primitives by name.
type MaterialSpec struct {
	Name          string     `yaml:"name"`
	Kind          string     `yaml:"kind"` // phong | reflective | refractive | pbr
	Color         [3]float32 `yaml:"color"`
	Specular      float32    `yaml:"specular"`
	Shininess     float32    `yaml:"shininess"`
	MaxBounce     int        `yaml:"max_bounce"`
	IOR           float32    `yaml:"ior"`
	Metallic      float32    `yaml:"metallic"`
	Roughness     float32    `yaml:"roughness"`
	Anisotropy    float32    `yaml:"anisotropy"`
	TangentRotate float32    `yaml:"tangent_rotate"`
}

// PrimitiveSpec is a tagged union over the three primitive kinds plus
// the material it is shaded with, by name.
type PrimitiveSpec struct {
	Kind     string     `yaml:"kind"` // sphere | plane | triangle
	Material string     `yaml:"material"`

	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`

	Q      [3]float32  `yaml:"q,flow"`
	V      [3]float32  `yaml:"v,flow"`
	W      [3]float32  `yaml:"w,flow"`
	Normal [3]float32  `yaml:"normal,flow"`
	BoundV *[2]float32 `yaml:"bound_v"`
	BoundW *[2]float32 `yaml:"bound_w"`

	V0 [3]float32 `yaml:"v0,flow"`
	V1 [3]float32 `yaml:"v1,flow"`
	V2 [3]float32 `yaml:"v2,flow"`
}

// LightSpec is a tagged union over ambient, point, and area lights.
type LightSpec struct {
	Kind     string     `yaml:"kind"` // ambient | point | area
	Color    [3]float32 `yaml:"color"`
	Strength float32    `yaml:"strength"`

	Position [3]float32 `yaml:"position"`
	A0       float32    `yaml:"a0"`
	A1       float32    `yaml:"a1"`
	A2       float32    `yaml:"a2"`

	Q       [3]float32 `yaml:"q,flow"`
	V       [3]float32 `yaml:"v,flow"`
	W       [3]float32 `yaml:"w,flow"`
	Density int        `yaml:"density"`
}

func vec(a [3]float32) math3d.Vec3 { return math3d.V3(a[0], a[1], a[2]) }
func col(a [3]float32) math3d.Color { return math3d.C(a[0], a[1], a[2]) }

// Names returns the embedded preset names, without the .yaml extension.
func Names() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("presets.Names: %w", err)
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		names = append(names, n[:len(n)-len(".yaml")])
	}
	return names, nil
}

// Load reads and parses the named preset's raw Spec, without building a
// Scene. Useful for tooling that wants to inspect a preset's shape.
func Load(name string) (*Spec, error) {
	raw, err := files.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("presets.Load: unknown preset %q: %w", name, err)
	}
	var s Spec
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("presets.Load: %s: %w", name, err)
	}
	return &s, nil
}

// Build loads the named preset and constructs a sealed Scene plus the
// camera and sky color it was authored with.
func Build(name string) (sc *scene.Scene, cam CameraSpec, sky math3d.Color, err error) {
	spec, err := Load(name)
	if err != nil {
		return nil, CameraSpec{}, math3d.Black, err
	}

	sc = scene.New()
	matIdx := make(map[string]int, len(spec.Materials))
	for _, m := range spec.Materials {
		idx, buildErr := addMaterial(sc, m)
		if buildErr != nil {
			return nil, CameraSpec{}, math3d.Black, fmt.Errorf("presets.Build: %s: material %q: %w", name, m.Name, buildErr)
		}
		matIdx[m.Name] = idx
	}

	for i, p := range spec.Primitives {
		idx, ok := matIdx[p.Material]
		if !ok {
			return nil, CameraSpec{}, math3d.Black, fmt.Errorf("presets.Build: %s: primitive %d references unknown material %q", name, i, p.Material)
		}
		prim, buildErr := buildPrimitive(p)
		if buildErr != nil {
			return nil, CameraSpec{}, math3d.Black, fmt.Errorf("presets.Build: %s: primitive %d: %w", name, i, buildErr)
		}
		sc.AddPrimitive(prim, idx)
	}

	for i, l := range spec.Lights {
		switch l.Kind {
		case "ambient":
			sc.AddLight(scene.NewAmbientLight(col(l.Color), l.Strength))
		case "point":
			sc.AddLight(scene.NewPointLight(vec(l.Position), col(l.Color), l.Strength, l.A0, l.A1, l.A2))
		case "area":
			sc.AddLights(scene.NewAreaLight(vec(l.Q), vec(l.V), vec(l.W), col(l.Color), l.Strength, l.A0, l.A1, l.A2, l.Density))
		default:
			return nil, CameraSpec{}, math3d.Black, fmt.Errorf("presets.Build: %s: light %d: unknown kind %q", name, i, l.Kind)
		}
	}

	if err := sc.Seal(); err != nil {
		return nil, CameraSpec{}, math3d.Black, fmt.Errorf("presets.Build: %s: %w", name, err)
	}
	return sc, spec.Camera, col(spec.SkyColor), nil
}

func addMaterial(sc *scene.Scene, m MaterialSpec) (int, error) {
	switch m.Kind {
	case "phong":
		return sc.AddMaterial(scene.NewPhongMaterial(col(m.Color), m.Specular, m.Shininess)), nil
	case "reflective":
		return sc.AddMaterial(scene.NewReflectiveMaterial(col(m.Color), m.MaxBounce)), nil
	case "refractive":
		return sc.AddMaterial(scene.NewRefractiveMaterial(col(m.Color), m.IOR, m.MaxBounce)), nil
	case "pbr":
		return sc.AddMaterial(scene.NewPBRMaterial(col(m.Color), m.Metallic, m.Roughness, m.Anisotropy, m.TangentRotate)), nil
	default:
		return 0, fmt.Errorf("unknown material kind %q", m.Kind)
	}
}

func buildPrimitive(p PrimitiveSpec) (scene.Primitive, error) {
	switch p.Kind {
	case "sphere":
		return scene.NewSpherePrimitive(scene.NewSphere(vec(p.Center), p.Radius)), nil
	case "plane":
		plane := scene.BoundedPlane{Q: vec(p.Q), V: vec(p.V), W: vec(p.W), Normal: vec(p.Normal)}
		if p.BoundV != nil {
			plane.BoundV, plane.V0, plane.V1 = true, p.BoundV[0], p.BoundV[1]
		}
		if p.BoundW != nil {
			plane.BoundW, plane.W0, plane.W1 = true, p.BoundW[0], p.BoundW[1]
		}
		return scene.NewPlanePrimitive(plane), nil
	case "triangle":
		return scene.NewTrianglePrimitive(scene.NewTriangle(vec(p.V0), vec(p.V1), vec(p.V2))), nil
	default:
		return scene.Primitive{}, fmt.Errorf("unknown primitive kind %q", p.Kind)
	}
}
