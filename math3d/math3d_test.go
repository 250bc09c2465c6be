// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package math3d

import (
	"math"
	"testing"
)

func TestRotateByQuatPreservesLength(t *testing.T) {
	axes := []Vec3{V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1), V3(1, 1, 1).Normalize()}
	angles := []float32{0.1, 1.0, float32(math.Pi / 2), float32(math.Pi)}
	u := V3(0.267261242, 0.534522484, 0.801783726) // unit vector

	for _, axis := range axes {
		for _, angle := range angles {
			q := FromAxisAngle(axis, angle)
			r := u.RotateByQuat(q)
			if math.Abs(float64(r.Length()-1)) > 1e-5 {
				t.Errorf("rotate(%v, axis=%v angle=%v): length %f, want 1", u, axis, angle, r.Length())
			}
		}
	}
}

func TestReflectIsInvolution(t *testing.T) {
	d := V3(0.5, -0.5, 0.7071).Normalize()
	n := V3(0, 1, 0)
	r := d.Reflect(n).Reflect(n)
	if !r.ApproxEq(d) {
		t.Errorf("reflect(reflect(d,n),n) = %v, want %v", r, d)
	}
}

func TestRefractUnitIndexIsIdentity(t *testing.T) {
	d := V3(0, 0, -1)
	n := V3(0, 0, 1)
	r := d.Refract(n, 1.0)
	if !r.ApproxEq(d) {
		t.Errorf("refract(d,n,1.0) = %v, want %v", r, d)
	}
}

func TestColorQuantizeSaturates(t *testing.T) {
	c := C(1.2, -0.1, 0.5)
	q := c.Quantize()
	if q[0] != 255 {
		t.Errorf("R quantized to %d, want 255", q[0])
	}
	if q[1] != 0 {
		t.Errorf("G quantized to %d, want 0", q[1])
	}
	if q[2] != 127 {
		t.Errorf("B quantized to %d, want 127", q[2])
	}
}

func TestColorBlend(t *testing.T) {
	a := C(1, 0, 0)
	b := C(0, 1, 0)
	got := a.Blend(b, 0.5)
	want := C(0.5, 0.5, 0)
	if !(math.Abs(float64(got.R-want.R)) < 1e-6 && math.Abs(float64(got.G-want.G)) < 1e-6) {
		t.Errorf("blend = %v, want %v", got, want)
	}
}
