// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package shade

import (
	"github.com/galvanized/raytrace/math3d"
	"github.com/galvanized/raytrace/scene"
)

// ShadeDetailed is Shade plus whether the primary ray landed on any
// geometry at all, which the adaptive AA pass needs to decide how many
// of its nine samples actually hit something (spec.md section 4.4's
// "if fewer than 9 rays landed on geometry, blend the deficit with the
// sky color" rule).
func (e *Evaluator) ShadeDetailed(r scene.Ray, depth int) (math3d.Color, bool) {
	if depth == -1 {
		return e.SkyColor, false
	}
	_, _, found := e.nearestHit(r)
	return e.Shade(r, depth), found
}
