// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import "github.com/gogpu/cpuraster/buffer"

// SetFragment bounds-checks frag against colorBuf and depth-tests it
// against depthBuf. A fragment outside the target's bounds, or whose
// depth does not exceed the currently stored depth at its pixel, is
// dropped without writing. Opacity is not composited.
func SetFragment(frag Fragment, colorBuf, depthBuf *buffer.Buffer) {
	x, y := frag.Pixel[0], frag.Pixel[1]
	if x < 0 || x >= colorBuf.Width() || y < 0 || y >= colorBuf.Height() {
		return
	}

	stored := make([]float32, 1)
	depthBuf.Get(x, y, stored)
	if frag.Depth <= stored[0] {
		return
	}

	colorBuf.Set(x, y, []float32{frag.Color.X, frag.Color.Y, frag.Color.Z})
	depthBuf.Set(x, y, []float32{frag.Depth})
}
