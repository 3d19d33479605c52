// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package scene

import "github.com/gogpu/cpuraster/vecmath"

// Mesh is a static collection of local-space vertex positions and UVs,
// grouped into faces. Each face is a flat list of (vertexIndex, uvIndex)
// pairs, one pair per polygon vertex, in winding order.
type Mesh struct {
	Vertices []vecmath.Vector3
	UVs      []vecmath.Vector2
	Faces    [][]int
}

// FaceVertexCount returns the number of polygon vertices encoded by face,
// given the fixed 2-ints-per-vertex (vertex index, uv index) layout.
func FaceVertexCount(face []int) int {
	return len(face) / 2
}

// FaceVertex returns the (vertex index, uv index) pair for the i-th
// polygon vertex of face.
func FaceVertex(face []int, i int) (vertexIndex, uvIndex int) {
	return face[i*2], face[i*2+1]
}
