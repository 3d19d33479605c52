// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/cpuraster/vecmath"

// Fragment is a single candidate pixel write produced by the rasterizer:
// a pixel position, a color, a depth to test against the target's depth
// buffer, and an opacity. Opacity is carried for completeness but not
// composited; SetFragment always overwrites.
type Fragment struct {
	Pixel   [2]int
	Color   vecmath.Vector3
	Depth   float32
	Opacity float32
}

// EPSILON is the float-comparison tolerance used when labeling triangle
// vertices by y-equality (the horizontal-cut path instead snaps the
// interpolated vertex's device.Y to the exact cut value).
const EPSILON = 0.001
