// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package geometry

import "github.com/gogpu/cpuraster/vertex"

// CutHorizontal slices the convex polygon poly into two convex pieces at
// device-space height y, preserving winding order in both. A vertex with
// y >= device.y is emitted to bottom, y <= device.y to top (a vertex
// exactly at y is emitted to both, keeping the shared edge coincident).
// Each strict straddle of y between consecutive vertices produces one
// interpolated vertex, appended to both pieces, whose device.Y is snapped
// to exactly y so the rasterizer's exact-y comparisons hold downstream.
func CutHorizontal(poly []vertex.Vertex, y float32) (top, bottom []vertex.Vertex) {
	n := len(poly)
	if n == 0 {
		return nil, nil
	}

	for i := 0; i < n; i++ {
		cur := poly[i]
		curSign := y - cur.Device.Y

		switch {
		case curSign == 0:
			top = append(top, cur)
			bottom = append(bottom, cur)
		case curSign > 0:
			bottom = append(bottom, cur)
		default:
			top = append(top, cur)
		}

		next := poly[(i+1)%n]
		nextSign := y - next.Device.Y

		straddles := curSign != 0 && nextSign != 0 &&
			((curSign > 0) != (nextSign > 0))
		if straddles {
			edge := vertex.SetUpEdgeTracker(cur, next, vertex.AxisY)
			edge.TakeStep(curSign)
			interp := edge.Current
			interp.Device.Y = y

			top = append(top, interp)
			bottom = append(bottom, interp)
		}
	}

	return top, bottom
}
