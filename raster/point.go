// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/vertex"
)

// RasterizePoint fills a disc of integer radius centered on v's rounded
// device position into colorBuf/depthBuf, every pixel sharing v's color
// and depth.
func RasterizePoint(v vertex.Vertex, radius int, colorBuf, depthBuf *buffer.Buffer) {
	radiusSquared := float32(radius * radius)
	centerX := int(math32.Round(v.Device.X))
	centerY := int(math32.Round(v.Device.Y))

	startScanline := centerY - radius
	stopScanline := centerY + radius

	for scanline := startScanline; scanline < stopScanline; scanline++ {
		yIntercept := scanline
		if scanline < centerY {
			yIntercept++
		}

		yInterceptRelative := float32(yIntercept - centerY)
		rightInterceptRelative := math32.Sqrt(radiusSquared - yInterceptRelative*yInterceptRelative)
		leftIntercept := -rightInterceptRelative + float32(centerX)
		rightIntercept := rightInterceptRelative + float32(centerX)

		startColumn := int(math32.Floor(leftIntercept))
		stopColumn := int(math32.Ceil(rightIntercept))

		for column := startColumn; column < stopColumn; column++ {
			SetFragment(Fragment{
				Pixel:   [2]int{column, scanline},
				Color:   v.Color,
				Depth:   v.Depth,
				Opacity: 1,
			}, colorBuf, depthBuf)
		}
	}
}
