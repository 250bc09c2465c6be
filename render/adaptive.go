// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shade"
)

// jitterOffsets is the fixed 3x3 pattern minus its center, at fractional
// offsets of +/-0.25 around a marked pixel (spec.md section 4.4).
var jitterOffsets = [8][2]float32{
	{-0.25, -0.25}, {0, -0.25}, {0.25, -0.25},
	{-0.25, 0} /*      center      */, {0.25, 0},
	{-0.25, 0.25}, {0, 0.25}, {0.25, 0.25},
}

// jitterSamples is the number of extra rays adaptive AA casts per marked
// pixel, on top of the primary sample already in the framebuffer
// (spec.md section 4.4: nine rays total land on a marked pixel).
const jitterSamples = len(jitterOffsets)

// adaptiveRefine scans the primary framebuffer for pixels whose quantised
// color differs from a neighbor's, re-samples those pixels with eight
// fixed-offset rays, and blends the result with the sky color in
// proportion to how many of the nine total samples missed geometry. It
// returns the refined framebuffer and a debug framebuffer marking every
// refined pixel red on black, per spec.md section 6's aa_debug image.
func adaptiveRefine(b basis, ev *shade.Evaluator, opts Options, primary *scene.Framebuffer, mode AAMode) (*scene.Framebuffer, *scene.Framebuffer) {
	out := scene.NewFramebuffer(opts.Width, opts.Height)
	debug := scene.NewFramebuffer(opts.Width, opts.Height)
	debug.Clear(math3d.Black)

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			c := primary.Get(x, y)
			out.Set(x, y, c)
			if !needsRefinement(primary, x, y, mode) {
				continue
			}
			debug.Set(x, y, math3d.C(1, 0, 0))

			j, i := pixelJI(x, y, opts.Width, opts.Height)
			refined := refinePixel(b, ev, j, i)
			out.Set(x, y, refined)
		}
	}
	return out, debug
}

// pixelJI inverts pixelXY: given framebuffer coordinates it returns the
// centered ray-space pixel index the primary sample was cast at.
func pixelJI(x, y, w, h int) (int, int) {
	return x - w/2, h/2 - y
}

// neighborOffsets4 is the "X" mode's four diagonal neighbors.
var neighborOffsets4 = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// neighborOffsets8 is the "O" mode's full 3x3 ring (all eight surrounding
// neighbors), per spec.md section 4.4.
var neighborOffsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// needsRefinement reports whether (x,y) differs in quantised color from
// any of its neighbors: AAAdaptiveX compares the four diagonal
// neighbors, AAAdaptiveO compares the full eight-neighbor 3x3 ring.
func needsRefinement(fb *scene.Framebuffer, x, y int, mode AAMode) bool {
	center := fb.Get(x, y).Quantize()

	check := func(o [2]int) bool {
		nx, ny := x+o[0], y+o[1]
		if nx < 0 || nx >= fb.Width || ny < 0 || ny >= fb.Height {
			return false
		}
		return fb.Get(nx, ny).Quantize() != center
	}

	if mode == AAAdaptiveX {
		for _, o := range neighborOffsets4 {
			if check(o) {
				return true
			}
		}
		return false
	}
	for _, o := range neighborOffsets8 {
		if check(o) {
			return true
		}
	}
	return false
}

// refinePixel casts jitterSamples additional rays at fixed +/-0.25
// offsets around the pixel footprint of (j,i), averages the ones that
// land on geometry, and blends the result with the sky color weighted
// by how many of the nine total samples (primary plus jittered) missed.
func refinePixel(b basis, ev *shade.Evaluator, j, i int) math3d.Color {
	sum := math3d.Black
	hits := 0

	primaryColor, primaryHit := ev.ShadeDetailed(b.primaryRay(float32(j), float32(i)), ev.MaxDepth)
	if primaryHit {
		sum = sum.Add(primaryColor)
		hits++
	}

	for _, o := range jitterOffsets {
		r := b.primaryRay(float32(j)+o[0], float32(i)+o[1])
		c, hit := ev.ShadeDetailed(r, ev.MaxDepth)
		if hit {
			sum = sum.Add(c)
			hits++
		}
	}

	total := 1 + jitterSamples
	if hits == 0 {
		return ev.SkyColor
	}
	avgHit := sum.MulScalar(1 / float32(hits))
	weight := float32(hits) / float32(total)
	return avgHit.MulScalar(weight).Add(ev.SkyColor.MulScalar(1 - weight))
}
