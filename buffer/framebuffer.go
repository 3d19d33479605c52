// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package buffer

import "math"

// MinDepth is the sentinel depth value a FrameBuffer's depth channel is
// cleared to: any real incoming depth compares greater than it, so the
// first fragment written to a pixel always passes the depth test.
const MinDepth = -math.MaxFloat32

// FrameBuffer pairs a 3-channel color Buffer with a 1-channel depth
// Buffer of matching dimensions.
type FrameBuffer struct {
	Color *Buffer
	Depth *Buffer
}

// NewFrameBuffer allocates a FrameBuffer of the given dimensions: a
// 3-channel color buffer and a 1-channel depth buffer, both cleared.
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{
		Color: New(width, height, 3),
		Depth: New(width, height, 1),
	}
	fb.Clear([3]float32{0, 0, 0})
	return fb
}

// Width returns the framebuffer's width in pixels.
func (fb *FrameBuffer) Width() int { return fb.Color.Width() }

// Height returns the framebuffer's height in pixels.
func (fb *FrameBuffer) Height() int { return fb.Color.Height() }

// Clear resets the color buffer to clearColor and the depth buffer to
// MinDepth.
func (fb *FrameBuffer) Clear(clearColor [3]float32) {
	fb.Color.Clear(clearColor[:])
	fb.Depth.Clear([]float32{MinDepth})
}

// Resize reallocates both the color and depth buffers to the given
// dimensions. Contents are undefined after resize; callers should Clear.
func (fb *FrameBuffer) Resize(width, height int) {
	fb.Color.Resize(width, height)
	fb.Depth.Resize(width, height)
}
