// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render orchestrates the camera's ray-per-pixel dispatch: the
// anti-aliasing strategy (none, 4x supersample, adaptive), the
// tile/band-parallel worker pool, and composing worker output into the
// framebuffer.
package render

import "github.com/galvanized/raytrace/math3d"

// AAMode selects an anti-aliasing strategy.
type AAMode int

const (
	AANone AAMode = iota
	AASupersample4x
	AAAdaptiveX
	AAAdaptiveO
)

func (m AAMode) String() string {
	switch m {
	case AANone:
		return "None"
	case AASupersample4x:
		return "Supersampling4x"
	case AAAdaptiveX:
		return "AdaptiveX"
	case AAAdaptiveO:
		return "AdaptiveO"
	default:
		return "Unknown"
	}
}

// Options configures a render. It follows the teacher's functional-options
// pattern (config.go: Attr func(*Config)) rather than a constructor with a
// long positional argument list.
type Options struct {
	Width, Height   int
	Perspective     bool
	PinholeDistance float32
	AA              AAMode
	MaxBounces      int
	Workers         int
	SkyColor        math3d.Color
	Bands           int
}

// Opt mutates an Options under construction.
type Opt func(*Options)

// DefaultOptions returns reasonable defaults so a render runs even if no
// option overrides are given, matching the teacher's configDefaults
// stance.
func DefaultOptions() Options {
	return Options{
		Width:           512,
		Height:          512,
		Perspective:     false,
		PinholeDistance: 1,
		AA:              AANone,
		MaxBounces:      4,
		Workers:         16,
		SkyColor:        math3d.Black,
		Bands:           16,
	}
}

// WithResolution sets the render width and height in pixels.
func WithResolution(w, h int) Opt {
	return func(o *Options) { o.Width, o.Height = w, h }
}

// WithPerspective enables perspective projection with the given pinhole
// distance. Smaller distances widen the field of view.
func WithPerspective(pinholeDistance float32) Opt {
	return func(o *Options) { o.Perspective = true; o.PinholeDistance = pinholeDistance }
}

// WithOrthographic selects orthographic projection (the default).
func WithOrthographic() Opt {
	return func(o *Options) { o.Perspective = false }
}

// WithAA sets the anti-aliasing strategy.
func WithAA(mode AAMode) Opt {
	return func(o *Options) { o.AA = mode }
}

// WithMaxBounces sets the recursion budget for mirror/refraction bounces.
func WithMaxBounces(n int) Opt {
	return func(o *Options) { o.MaxBounces = n }
}

// WithWorkers sets the number of worker goroutines. Band count is
// independent of worker count (see WithBands); worker count only bounds
// how many bands run concurrently.
func WithWorkers(n int) Opt {
	return func(o *Options) { o.Workers = n }
}

// WithBands sets the number of contiguous row bands the image is
// partitioned into. This is fixed regardless of worker count so that
// output is deterministic (spec.md section 5): changing worker count
// alone never changes the partition.
func WithBands(n int) Opt {
	return func(o *Options) { o.Bands = n }
}

// WithSkyColor sets the color returned for rays that escape the scene.
func WithSkyColor(c math3d.Color) Opt {
	return func(o *Options) { o.SkyColor = c }
}
