// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/vertex"
)

// RasterizeLine draws a Bresenham-style walk from v0 to v1 with the given
// integer width, interpolating every Vertex attribute along the walk.
// width=1 produces a single-pixel-wide line; thickness grows by two
// pixels per additional unit of width.
func RasterizeLine(v0, v1 vertex.Vertex, width int, colorBuf, depthBuf *buffer.Buffer) {
	start, end := v0, v1

	steep := math32.Abs(end.Device.Y-start.Device.Y) > math32.Abs(end.Device.X-start.Device.X)
	if steep {
		start.Device.X, start.Device.Y = start.Device.Y, start.Device.X
		end.Device.X, end.Device.Y = end.Device.Y, end.Device.X
	}

	if start.Device.X > end.Device.X {
		start, end = end, start
	}

	edge := vertex.SetUpEdgeTracker(start, end, vertex.AxisX)

	curColumn := int(math32.Floor(start.Device.X))
	finalColumn := int(math32.Ceil(end.Device.X))
	thickness := 1 + (width-1)*2

	for curColumn < finalColumn {
		scanline := int(math32.Floor(edge.Current.Device.Y))

		for i := 0; i < thickness; i++ {
			shift := i + (1 - width)
			shiftedScanline := shift + scanline

			var pixel [2]int
			if steep {
				pixel = [2]int{shiftedScanline, curColumn}
			} else {
				pixel = [2]int{curColumn, shiftedScanline}
			}

			SetFragment(Fragment{
				Pixel:   pixel,
				Color:   edge.Current.Color.Clamp(0, 1),
				Depth:   edge.Current.Depth,
				Opacity: 1,
			}, colorBuf, depthBuf)
		}

		edge.TakeStep(1)
		curColumn++
	}
}
