// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package geometry

import "github.com/chewxy/math32"

// Frustum describes a symmetric view frustum by its half-extents at the
// near plane (l, r, t, b) and its near/far distances.
type Frustum struct {
	L, R, T, B, N, F float32
}

// Plane is a half-space boundary a*x + b*y + c*z + d = 0, with points
// satisfying a*x+b*y+c*z+d > 0 considered inside.
type Plane struct {
	A, B, C, D float32
}

// FrustumPlanes derives the six inward-facing view-space clip planes of
// fru, in the order top, bottom, left, right, far, near. Each plane is
// normalized by dividing all four coefficients by the length of (a,b,c).
func FrustumPlanes(fru Frustum) [6]Plane {
	planes := [6]Plane{
		{0, -1 / fru.T, -1 / fru.N, 0},
		{0, 1 / fru.B, -1 / fru.N, 0},
		{1 / fru.L, 0, -1 / fru.N, 0},
		{-1 / fru.R, 0, -1 / fru.N, 0},
		{0, 0, 1, fru.F},
		{0, 0, -1, -fru.N},
	}
	for i, p := range planes {
		planes[i] = p.Normalized()
	}
	return planes
}

// Normalized returns p with its coefficients divided by the length of
// (a, b, c).
func (p Plane) Normalized() Plane {
	length := math32.Sqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	inv := 1 / length
	return Plane{p.A * inv, p.B * inv, p.C * inv, p.D * inv}
}
