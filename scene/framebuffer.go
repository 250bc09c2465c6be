// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/galvanized/raytrace/math3d"
)

// Framebuffer is a writable 2D grid of linear-space colors. Pixel (x,y)
// is addressed with y counted from the bottom, matching ray space's
// mathematical up; the buffer flips y internally so that ToBytes emits
// rows from the visual top-left, per spec.md's coordinate convention
// note: "all conversions pass through two helpers (ji<->xy) to keep the
// flip in one place."
type Framebuffer struct {
	Width, Height int
	pixels        []math3d.Color
	clearColor    math3d.Color
}

// NewFramebuffer allocates a width x height buffer initialized to
// (0,0,0).
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]math3d.Color, width*height),
	}
}

// rowMajorIndex converts a bottom-up (x,y) pixel coordinate into the
// buffer's internal top-down row-major index. This is the one place the
// y-flip happens.
func (f *Framebuffer) rowMajorIndex(x, y int) int {
	flippedY := f.Height - 1 - y
	return flippedY*f.Width + x
}

func (f *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Clear fills every pixel with color and records it as the clear color.
func (f *Framebuffer) Clear(color math3d.Color) {
	f.clearColor = color
	for i := range f.pixels {
		f.pixels[i] = color
	}
}

// ClearColor returns the color passed to the most recent Clear call.
func (f *Framebuffer) ClearColor() math3d.Color { return f.clearColor }

// Set writes a pixel. Out-of-bounds writes are silently ignored — ray
// traced coordinates can legitimately round to just past an edge.
func (f *Framebuffer) Set(x, y int, c math3d.Color) {
	if !f.inBounds(x, y) {
		return
	}
	f.pixels[f.rowMajorIndex(x, y)] = c
}

// Add accumulates a color onto the existing pixel value. Out-of-bounds
// writes are silently ignored.
func (f *Framebuffer) Add(x, y int, c math3d.Color) {
	if !f.inBounds(x, y) {
		return
	}
	i := f.rowMajorIndex(x, y)
	f.pixels[i] = f.pixels[i].Add(c)
}

// Blend mixes c into the existing pixel at the given alpha. Out-of-bounds
// writes are silently ignored.
func (f *Framebuffer) Blend(x, y int, c math3d.Color, alpha float32) {
	if !f.inBounds(x, y) {
		return
	}
	i := f.rowMajorIndex(x, y)
	f.pixels[i] = f.pixels[i].Blend(c, alpha)
}

// Get reads a pixel. Out-of-bounds reads are fatal (spec.md section 7) —
// unlike writes, a caller reading past the buffer has a programmer error,
// not a rounding artifact to absorb.
func (f *Framebuffer) Get(x, y int) math3d.Color {
	if !f.inBounds(x, y) {
		panic(fmt.Sprintf("raytrace: framebuffer read out of bounds: (%d,%d) in %dx%d", x, y, f.Width, f.Height))
	}
	return f.pixels[f.rowMajorIndex(x, y)]
}

// WriteByIndex writes directly into the internal top-down row-major array
// at index i, without the y-flip or the silent bounds handling of Set; an
// index outside the array panics.
func (f *Framebuffer) WriteByIndex(i int, c math3d.Color) {
	f.pixels[i] = c
}

// ShrinkByTwo returns a new framebuffer at floor(W/2) x floor(H/2),
// averaging each 2x2 block of the source. Odd trailing rows/columns are
// dropped, matching the floor semantics spec.md's data model specifies.
func (f *Framebuffer) ShrinkByTwo() *Framebuffer {
	nw, nh := f.Width/2, f.Height/2
	out := NewFramebuffer(nw, nh)
	out.clearColor = f.clearColor
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			sx, sy := x*2, y*2
			sum := f.Get(sx, sy).
				Add(f.Get(sx+1, sy)).
				Add(f.Get(sx, sy+1)).
				Add(f.Get(sx+1, sy+1))
			out.Set(x, y, sum.MulScalar(0.25))
		}
	}
	return out
}

// ToBytes quantises every pixel to three u8 channels and serializes them
// in row-major order from the visual top-left — the byte layout spec.md
// section 6 describes for the PNG encoder to consume directly. The
// internal array is already stored top-down (rowMajorIndex performs the
// y-flip on every write), so this is a direct linear walk.
func (f *Framebuffer) ToBytes() []byte {
	out := make([]byte, 0, f.Width*f.Height*3)
	for _, c := range f.pixels {
		q := c.Quantize()
		out = append(out, q[0], q[1], q[2])
	}
	return out
}
