// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/galvanized/raytrace/math3d"
)

func TestSetGetRoundTrips(t *testing.T) {
	f := NewFramebuffer(4, 4)
	c := math3d.C(0.2, 0.4, 0.6)
	f.Set(1, 2, c)
	got := f.Get(1, 2)
	wantQ, gotQ := c.Quantize(), got.Quantize()
	if wantQ != gotQ {
		t.Errorf("Get(1,2) quantized = %v, want %v", gotQ, wantQ)
	}
}

func TestShrinkByTwoConstantBuffer(t *testing.T) {
	f := NewFramebuffer(8, 6)
	c := math3d.C(0.5, 0.25, 0.75)
	f.Clear(c)
	shrunk := f.ShrinkByTwo()
	if shrunk.Width != 4 || shrunk.Height != 3 {
		t.Fatalf("shrunk dims = %dx%d, want 4x3", shrunk.Width, shrunk.Height)
	}
	want := c.Quantize()
	for y := 0; y < shrunk.Height; y++ {
		for x := 0; x < shrunk.Width; x++ {
			if got := shrunk.Get(x, y).Quantize(); got != want {
				t.Errorf("shrunk(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClearToBytes(t *testing.T) {
	f := NewFramebuffer(3, 2)
	c := math3d.C(0.1, 0.2, 0.3)
	f.Clear(c)
	b := f.ToBytes()
	if len(b) != 3*2*3 {
		t.Fatalf("len(bytes) = %d, want %d", len(b), 3*2*3)
	}
	want := c.Quantize()
	for i := 0; i < len(b); i += 3 {
		if b[i] != want[0] || b[i+1] != want[1] || b[i+2] != want[2] {
			t.Errorf("pixel at byte %d = (%d,%d,%d), want %v", i, b[i], b[i+1], b[i+2], want)
		}
	}
}

func TestOutOfBoundsWriteIsSilent(t *testing.T) {
	f := NewFramebuffer(2, 2)
	f.Set(10, 10, math3d.C(1, 1, 1))
	b := f.ToBytes()
	for _, v := range b {
		if v != 0 {
			t.Fatalf("out of bounds write leaked into buffer: %v", b)
		}
	}
}

func TestOutOfBoundsReadPanics(t *testing.T) {
	f := NewFramebuffer(2, 2)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on out of bounds read")
		}
	}()
	f.Get(10, 10)
}
