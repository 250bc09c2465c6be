// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shade"
)

// Camera maps pixel indices to rays and orchestrates the sampling
// strategy, splitting work across worker goroutines and composing the
// result into an owned framebuffer.
type Camera struct {
	Pos, Forward, Right math3d.Vec3
	Scene               *scene.Scene
	Options             Options
}

// NewCamera builds a camera looking along forward with right as the
// camera-space X axis; up is derived at render time as Right x Forward.
// Forward and Right are normalized.
func NewCamera(pos, forward, right math3d.Vec3, sc *scene.Scene, opts ...Opt) *Camera {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Camera{
		Pos:     pos,
		Forward: forward.Normalize(),
		Right:   right.Normalize(),
		Scene:   sc,
		Options: o,
	}
}

// basis is the per-render camera frame: position, forward/right/up, and
// the derived pinhole position used by perspective dispatch and by the
// PBR view vector regardless of projection mode.
type basis struct {
	P, F, R, U math3d.Vec3
	Pinhole    math3d.Vec3
	Opts       Options
}

func (c *Camera) basisFor(opts Options) basis {
	u := c.Right.Cross(c.Forward)
	return basis{
		P:       c.Pos,
		F:       c.Forward,
		R:       c.Right,
		U:       u,
		Pinhole: c.Pos.Sub(c.Forward.Scale(opts.PinholeDistance)),
		Opts:    opts,
	}
}

// primaryRay maps a centered pixel index (j,i) to a camera ray, per
// spec.md section 4.4: orthographic rays share a fixed direction F with
// an origin that walks the image plane; perspective rays originate at
// the pinhole and point toward the corresponding image-plane point.
func (b basis) primaryRay(j, i float32) scene.Ray {
	imagePoint := b.P.Add(b.U.Scale(i)).Add(b.R.Scale(j))
	if !b.Opts.Perspective {
		return scene.Ray{Origin: imagePoint, Dir: b.F}
	}
	dir := imagePoint.Sub(b.Pinhole).Normalize()
	return scene.Ray{Origin: b.Pinhole, Dir: dir}
}

// pixelXY converts a centered pixel index (j,i) to framebuffer
// coordinates, per spec.md section 4.4's mapping (j+W/2, -i+H/2).
func pixelXY(j, i int, w, h int) (int, int) {
	return j + w/2, -i + h/2
}

// Render runs the full pipeline: primary pass, then any requested
// anti-aliasing refinement, returning the final framebuffer and, when
// adaptive AA is enabled, a debug framebuffer marking the cells that
// received extra samples (spec.md section 6's aa_debug companion image).
func (c *Camera) Render() (fb *scene.Framebuffer, debug *scene.Framebuffer, err error) {
	if err := validateOptions(c.Options); err != nil {
		return nil, nil, err
	}

	ev := &shade.Evaluator{
		Scene:    c.Scene,
		SkyColor: c.Options.SkyColor,
		MaxDepth: c.Options.MaxBounces,
	}

	switch c.Options.AA {
	case AASupersample4x:
		wide := c.Options
		wide.Width *= 2
		wide.Height *= 2
		b := c.basisFor(wide)
		ev.EyePos = b.Pinhole
		wideFB := renderPrimary(b, ev, wide)
		return wideFB.ShrinkByTwo(), nil, nil

	case AAAdaptiveX, AAAdaptiveO:
		b := c.basisFor(c.Options)
		ev.EyePos = b.Pinhole
		primary := renderPrimary(b, ev, c.Options)
		refined, dbg := adaptiveRefine(b, ev, c.Options, primary, c.Options.AA)
		return refined, dbg, nil

	default:
		b := c.basisFor(c.Options)
		ev.EyePos = b.Pinhole
		return renderPrimary(b, ev, c.Options), nil, nil
	}
}

func validateOptions(o Options) error {
	if o.Width <= 0 || o.Height <= 0 {
		return &scene.ConfigError{Reason: "render width and height must be positive"}
	}
	return nil
}
