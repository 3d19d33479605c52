// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/internal/rlog"
	"github.com/gogpu/cpuraster/pipeline"
	"github.com/gogpu/cpuraster/scene"
)

// ResolutionScales is the cycle of render-to-screen resolution ratios a
// host steps through, in order.
var ResolutionScales = [...]float32{0.125, 0.25, 0.5, 1.0, 2.0, 4.0}

// Compositor owns a screen-resolution FrameBuffer and a render-resolution
// FrameBuffer whose size is screen resolution scaled by the current
// entry of ResolutionScales. When the two match, RenderFrame rasterizes
// straight into the screen buffer; otherwise it rasterizes into the
// render buffer and blits the result into the screen buffer with
// bilinear resampling.
type Compositor struct {
	screen           *buffer.FrameBuffer
	render           *buffer.FrameBuffer
	screenW, screenH int
	scaleIndex       int
}

// NewCompositor allocates a Compositor for a screenWidth x screenHeight
// screen buffer, with the render buffer starting at ResolutionScales[scaleIndex].
func NewCompositor(screenWidth, screenHeight, scaleIndex int) *Compositor {
	c := &Compositor{
		screen:     buffer.NewFrameBuffer(screenWidth, screenHeight),
		screenW:    screenWidth,
		screenH:    screenHeight,
		scaleIndex: scaleIndex % len(ResolutionScales),
	}
	c.render = buffer.NewFrameBuffer(c.renderDims())
	return c
}

func (c *Compositor) renderDims() (int, int) {
	scale := ResolutionScales[c.scaleIndex]
	w := int(float32(c.screenW) * scale)
	h := int(float32(c.screenH) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Screen returns the screen-resolution FrameBuffer a host should present.
func (c *Compositor) Screen() *buffer.FrameBuffer { return c.screen }

// ResolutionScale returns the current render/screen resolution ratio.
func (c *Compositor) ResolutionScale() float32 { return ResolutionScales[c.scaleIndex] }

// SetResolutionScale jumps directly to the given index in ResolutionScales,
// resizing the render buffer accordingly.
func (c *Compositor) SetResolutionScale(index int) {
	n := len(ResolutionScales)
	c.scaleIndex = ((index % n) + n) % n
	c.render.Resize(c.renderDims())
	rlog.Logger().Info("compositor: resolution scale changed", "scale", c.ResolutionScale())
}

// CycleResolutionScale advances to the next entry of ResolutionScales,
// wrapping back to the first after the last.
func (c *Compositor) CycleResolutionScale() {
	c.SetResolutionScale(c.scaleIndex + 1)
}

// ResizeScreen reallocates the screen buffer to the given dimensions and
// resizes the render buffer to match the current resolution scale.
func (c *Compositor) ResizeScreen(width, height int) {
	c.screenW, c.screenH = width, height
	c.screen.Resize(width, height)
	c.render.Resize(c.renderDims())
	rlog.Logger().Info("compositor: screen resized", "width", width, "height", height)
}

// RenderFrame clears and renders camera/objects for one frame, producing
// the result in Screen(). clearColor is applied to both buffers before
// rendering.
func (c *Compositor) RenderFrame(camera scene.Camera, objects []scene.Object, clearColor [3]float32) {
	sameResolution := c.render.Width() == c.screen.Width() && c.render.Height() == c.screen.Height()

	if sameResolution {
		c.screen.Clear(clearColor)
		pipeline.RenderScene(camera, objects, c.screen)
		return
	}

	c.render.Clear(clearColor)
	pipeline.RenderScene(camera, objects, c.render)

	c.screen.Clear(clearColor)
	buffer.Blit(c.screen.Color, c.render.Color, 0, 0, 1, 1)
}
