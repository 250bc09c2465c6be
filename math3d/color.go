// Copyright © 2024-2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package math3d

import "math"

// Color is a linear-space RGB triple. It is not clamped at construction;
// intermediate shading math may legitimately exceed [0,1] before the final
// gamma/clamp/quantise stage.
type Color struct {
	R, G, B float32
}

// C is a short constructor.
func C(r, g, b float32) Color { return Color{R: r, G: g, B: b} }

// White, Black are common constants used as defaults and masks.
var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color { return Color{c.R + o.R, c.G + o.G, c.B + o.B} }

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color { return Color{c.R - o.R, c.G - o.G, c.B - o.B} }

// Mul returns the channel-wise product.
func (c Color) Mul(o Color) Color { return Color{c.R * o.R, c.G * o.G, c.B * o.B} }

// MulScalar returns c scaled by s.
func (c Color) MulScalar(s float32) Color { return Color{c.R * s, c.G * s, c.B * s} }

// DivScalar returns c divided by s.
func (c Color) DivScalar(s float32) Color { return Color{c.R / s, c.G / s, c.B / s} }

// Blend mixes alpha of other with (1-alpha) of c: alpha*other + (1-alpha)*c.
func (c Color) Blend(other Color, alpha float32) Color {
	return c.MulScalar(1 - alpha).Add(other.MulScalar(alpha))
}

// Lerp linearly interpolates from c (t=0) to other (t=1).
func (c Color) Lerp(other Color, t float32) Color {
	return c.MulScalar(1 - t).Add(other.MulScalar(t))
}

// Gamma applies exponent 1/gamma per channel. Negative channels are
// clamped to zero first since fractional powers of negatives are undefined.
func (c Color) Gamma(gamma float32) Color {
	inv := 1 / gamma
	return Color{
		gammaChan(c.R, inv),
		gammaChan(c.G, inv),
		gammaChan(c.B, inv),
	}
}

func gammaChan(v, invGamma float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Pow(float64(v), float64(invGamma)))
}

// Clamp01 clamps every channel to [0,1].
func (c Color) Clamp01() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToVec3 reinterprets the color as a vector for shared arithmetic helpers.
func (c Color) ToVec3() Vec3 { return Vec3{c.R, c.G, c.B} }

// Quantize converts the (unclamped) color to saturating 8-bit channels,
// multiplying by 255 and clamping to [0,255] as spec.md's data model
// requires, without first calling Clamp01 (a value of 1.2 and a value of
// 4.0 both saturate to 255, they are not pre-normalized).
func (c Color) Quantize() [3]uint8 {
	return [3]uint8{quantizeChan(c.R), quantizeChan(c.G), quantizeChan(c.B)}
}

func quantizeChan(v float32) uint8 {
	scaled := v * 255
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled) // truncate, matching scenario 2's expected (229,25,25) for 0.9/0.1
}
