// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package geometry

import "github.com/gogpu/cpuraster/vecmath"

// TriangleNormal returns the unit normal of the triangle (a, b, c),
// computed as the cross product of its two edges from a.
func TriangleNormal(a, b, c vecmath.Vector3) vecmath.Vector3 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return edge1.Cross(edge2).Normalize()
}

// Reflect returns the reflection of vector about surfaceNormal, which
// must be a unit vector.
func Reflect(surfaceNormal, vec vecmath.Vector3) vecmath.Vector3 {
	return vec.Sub(surfaceNormal.Scale(2 * vec.Dot(surfaceNormal))).Normalize()
}
