// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"sync"

	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/scene"
	"github.com/galvanized/raytrace/shade"
)

// Grounded on eg/rt.go's rayTrace()/worker() dispatch: one goroutine per
// band, a sync.WaitGroup join, each worker producing its own ordered
// output sequence with no shared mutable state touched mid-render.
// Generalized from that file's per-row channel hand-out (whose join
// order depends on goroutine scheduling) to a fixed contiguous row-band
// partition, so the band order — and therefore the final byte
// sequence — is deterministic regardless of worker count, per spec.md
// section 5's ordering guarantee.

// centeredRange returns the n integers centered on zero that spec.md
// section 4.4 uses for pixel indices: -n/2+1 .. n/2 inclusive, ascending.
func centeredRange(n int) []int {
	out := make([]int, 0, n)
	for v := -n/2 + 1; v <= n/2; v++ {
		out = append(out, v)
	}
	return out
}

// band is a contiguous slice of the i (row) range handed to one worker.
type band struct {
	index int
	iVals []int
}

// partitionBands splits iVals into count contiguous bands, in order.
func partitionBands(iVals []int, count int) []band {
	if count < 1 {
		count = 1
	}
	if count > len(iVals) {
		count = len(iVals)
	}
	bands := make([]band, 0, count)
	base := len(iVals) / count
	rem := len(iVals) % count
	pos := 0
	for b := 0; b < count; b++ {
		size := base
		if b < rem {
			size++
		}
		bands = append(bands, band{index: b, iVals: iVals[pos : pos+size]})
		pos += size
	}
	return bands
}

// renderPrimary runs the primary (one-ray-per-pixel) pass across all
// bands and composes the results into a fresh framebuffer, cleared to
// the sky color before workers write (spec.md section 4.5).
func renderPrimary(b basis, ev *shade.Evaluator, opts Options) *scene.Framebuffer {
	fb := scene.NewFramebuffer(opts.Width, opts.Height)
	fb.Clear(opts.SkyColor)

	iVals := centeredRange(opts.Height)
	jVals := centeredRange(opts.Width)
	bands := partitionBands(iVals, opts.Bands)

	results := make([][]math3d.Color, len(bands))
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	wg.Add(len(bands))
	for _, bd := range bands {
		bd := bd
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[bd.index] = renderBand(b, ev, bd, jVals)
		}()
	}
	wg.Wait()

	for bi, bd := range bands {
		colors := results[bi]
		k := 0
		for _, i := range bd.iVals {
			for _, j := range jVals {
				x, y := pixelXY(j, i, opts.Width, opts.Height)
				fb.Set(x, y, colors[k])
				k++
			}
		}
	}
	return fb
}

// renderBand computes one band's pixels in row-major order (i ascending,
// then j ascending), matching spec.md section 5's ordering guarantee.
func renderBand(b basis, ev *shade.Evaluator, bd band, jVals []int) []math3d.Color {
	out := make([]math3d.Color, 0, len(bd.iVals)*len(jVals))
	for _, i := range bd.iVals {
		for _, j := range jVals {
			r := b.primaryRay(float32(j), float32(i))
			out = append(out, ev.Shade(r, ev.MaxDepth))
		}
	}
	return out
}
