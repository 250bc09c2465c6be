// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/galvanized/raytrace/math3d"
)

func TestSphereIntersectForward(t *testing.T) {
	s := NewSpherePrimitive(NewSphere(math3d.V3(0, 0, -100), 50))
	r := Ray{Origin: math3d.V3(0, 0, 0), Dir: math3d.V3(0, 0, -1)}
	h := s.Intersect(r)
	if !h.Present {
		t.Fatal("expected a hit")
	}
	if want := float32(50); !approxEqual(h.Distance, want, 1e-3) {
		t.Errorf("distance = %v, want %v", h.Distance, want)
	}
}

func TestSphereIntersectBehindRayMisses(t *testing.T) {
	s := NewSpherePrimitive(NewSphere(math3d.V3(0, 0, 100), 50))
	r := Ray{Origin: math3d.V3(0, 0, 0), Dir: math3d.V3(0, 0, -1)}
	if h := s.Intersect(r); h.Present {
		t.Fatalf("expected a miss, got hit at %v", h.Point)
	}
}

func TestSphereHitIsForwardOfOrigin(t *testing.T) {
	s := NewSpherePrimitive(NewSphere(math3d.V3(3, 5, -20), 7))
	dirs := []math3d.Vec3{
		math3d.V3(0, 0, -1),
		math3d.V3(0.1, 0.05, -1).Normalize(),
		math3d.V3(3, 5, -20).Normalize(),
	}
	for _, d := range dirs {
		r := Ray{Origin: math3d.V3(0, 0, 0), Dir: d}
		h := s.Intersect(r)
		if !h.Present {
			continue
		}
		fwd := h.Point.Sub(r.Origin).Dot(r.Dir)
		if fwd < -1e-5 {
			t.Errorf("hit %v is behind ray origin along dir %v", h.Point, d)
		}
	}
}

func TestBoundedPlaneRejectsOutsideInterval(t *testing.T) {
	p := NewPlanePrimitive(BoundedPlane{
		Q:      math3d.V3(-5, 0, -10),
		V:      math3d.V3(1, 0, 0),
		W:      math3d.V3(0, 1, 0),
		Normal: math3d.V3(0, 0, 1),
		BoundV: true, V0: 0, V1: 10,
		BoundW: true, W0: 0, W1: 10,
	})
	// ray through (-5,0,-10) i.e. tv=0 sw=0, on the boundary — should hit.
	onBoundary := Ray{Origin: math3d.V3(-5, 0, 0), Dir: math3d.V3(0, 0, -1)}
	if h := p.Intersect(onBoundary); !h.Present {
		t.Error("expected boundary hit")
	}
	// ray through (20,0,-10) -> tv = 25, outside [0,10] — should miss.
	outside := Ray{Origin: math3d.V3(20, 0, 0), Dir: math3d.V3(0, 0, -1)}
	if h := p.Intersect(outside); h.Present {
		t.Errorf("expected miss outside bound, got hit at %v", h.Point)
	}
}

func TestBoundedPlaneUV(t *testing.T) {
	p := NewPlanePrimitive(BoundedPlane{
		Q:      math3d.V3(0, 0, -10),
		V:      math3d.V3(10, 0, 0),
		W:      math3d.V3(0, 10, 0),
		Normal: math3d.V3(0, 0, 1),
		BoundV: true, V0: 0, V1: 1,
		BoundW: true, W0: 0, W1: 1,
	})
	r := Ray{Origin: math3d.V3(5, 5, 0), Dir: math3d.V3(0, 0, -1)}
	h := p.Intersect(r)
	if !h.Present || !h.HasUV {
		t.Fatal("expected a UV hit")
	}
	if !approxEqual(h.U, 0.5, 1e-3) || !approxEqual(h.V, 0.5, 1e-3) {
		t.Errorf("uv = (%v,%v), want (0.5,0.5)", h.U, h.V)
	}
}

func TestTriangleMollerTrumbore(t *testing.T) {
	tr := NewTrianglePrimitive(NewTriangle(
		math3d.V3(-1, -1, -5),
		math3d.V3(1, -1, -5),
		math3d.V3(0, 1, -5),
	))
	hitRay := Ray{Origin: math3d.V3(0, -0.5, 0), Dir: math3d.V3(0, 0, -1)}
	if h := tr.Intersect(hitRay); !h.Present {
		t.Error("expected a hit through the triangle interior")
	}
	missRay := Ray{Origin: math3d.V3(5, 5, 0), Dir: math3d.V3(0, 0, -1)}
	if h := tr.Intersect(missRay); h.Present {
		t.Errorf("expected a miss outside the triangle, got %v", h.Point)
	}
}

func TestSealRejectsOutOfRangeMaterialIndex(t *testing.T) {
	s := New()
	mat := s.AddMaterial(NewPhongMaterial(math3d.White, 0, 1))
	s.AddPrimitive(NewSpherePrimitive(NewSphere(math3d.V3(0, 0, 0), 1)), mat+1)
	if err := s.Seal(); err == nil {
		t.Fatal("expected a configuration error for an out of range material index")
	}
}

func TestSealRejectsNonPositiveRadius(t *testing.T) {
	s := New()
	mat := s.AddMaterial(NewPhongMaterial(math3d.White, 0, 1))
	s.AddPrimitive(NewSpherePrimitive(NewSphere(math3d.V3(0, 0, 0), 0)), mat)
	if err := s.Seal(); err == nil {
		t.Fatal("expected a configuration error for a non-positive radius")
	}
}

func approxEqual(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
