// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/geometry"
	"github.com/gogpu/cpuraster/vecmath"
	"github.com/gogpu/cpuraster/vertex"
)

// RasterizePolygon fills a convex, non-degenerate polygon with a
// consistent winding, given in device space with valid depth and uv. It
// horizontally cuts the polygon into flat-edged triangle pieces in
// ascending device y (lowest piece first) and rasterizes each piece in
// turn. texture may be nil, in
// which case each fragment is shaded from its interpolated vertex color
// instead of a texture sample.
func RasterizePolygon(vertices []vertex.Vertex, colorBuf, depthBuf, texture *buffer.Buffer) {
	heights := make([]float32, len(vertices))
	for i, v := range vertices {
		heights[i] = v.Device.Y
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	heights = dedupeSorted(heights)

	remaining := vertices
	for _, y := range heights {
		top, bottom := geometry.CutHorizontal(remaining, y)

		switch len(bottom) {
		case 4:
			rasterizeFlatTriangle(bottom[0], bottom[1], bottom[2], colorBuf, depthBuf, texture)
			rasterizeFlatTriangle(bottom[2], bottom[3], bottom[0], colorBuf, depthBuf, texture)
		case 3:
			rasterizeFlatTriangle(bottom[0], bottom[1], bottom[2], colorBuf, depthBuf, texture)
		}

		remaining = top
	}
}

func dedupeSorted(values []float32) []float32 {
	if len(values) == 0 {
		return values
	}
	out := values[:1]
	for _, v := range values[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// rasterizeFlatTriangle rasterizes a triangle with one horizontal edge,
// labeling its vertices into apex/left/right and scanning from the flat
// edge toward the apex.
func rasterizeFlatTriangle(v0, v1, v2 vertex.Vertex, colorBuf, depthBuf, texture *buffer.Buffer) {
	area := (v1.Device.Sub(v0.Device)).Cross(v2.Device.Sub(v0.Device))
	if math32.Abs(area)/2 < 0.5 {
		return
	}

	apex, left, right := labelTriangle(v0, v1, v2)
	if left.Device.X > right.Device.X {
		left, right = right, left
	}

	apexAboveOthers := apex.Device.Y > left.Device.Y

	var leftEdge, rightEdge vertex.EdgeTracker
	var deltaY float32
	var startScanline, stopScanline int

	if apexAboveOthers {
		deltaY = math32.Ceil(left.Device.Y) - left.Device.Y
		leftEdge = vertex.SetUpEdgeTracker(left, apex, vertex.AxisY)
		rightEdge = vertex.SetUpEdgeTracker(right, apex, vertex.AxisY)
		startScanline = int(math32.Ceil(left.Device.Y))
		stopScanline = int(math32.Ceil(apex.Device.Y))
	} else {
		deltaY = math32.Ceil(apex.Device.Y) - apex.Device.Y
		leftEdge = vertex.SetUpEdgeTracker(apex, left, vertex.AxisY)
		rightEdge = vertex.SetUpEdgeTracker(apex, right, vertex.AxisY)
		startScanline = int(math32.Ceil(apex.Device.Y))
		stopScanline = int(math32.Ceil(left.Device.Y))
	}

	leftEdge.TakeStep(deltaY)
	rightEdge.TakeStep(deltaY)

	var sample []float32
	if texture != nil {
		sample = make([]float32, texture.Channels())
	}

	for scanline := startScanline; scanline < stopScanline; scanline++ {
		column := int(math32.Floor(leftEdge.Current.Device.X))
		rightStop := int(math32.Floor(rightEdge.Current.Device.X))

		// A scanline with no columns to emit (e.g. at an apex where both
		// edges meet) has no width to set a scanline tracker up across.
		var scanlineEdge vertex.EdgeTracker
		if column < rightStop {
			deltaX := math32.Floor(leftEdge.Current.Device.X) - leftEdge.Current.Device.X
			scanlineEdge = vertex.SetUpEdgeTracker(leftEdge.Current, rightEdge.Current, vertex.AxisX)
			scanlineEdge.TakeStep(deltaX)
		}

		for column < rightStop {
			color := scanlineEdge.Current.Color
			if texture != nil {
				texture.SampleBilinear(
					clamp01(scanlineEdge.Current.UV.X),
					clamp01(scanlineEdge.Current.UV.Y),
					sample,
				)
				color = vec3FromSample(sample)
			}

			SetFragment(Fragment{
				Pixel:   [2]int{column, scanline},
				Color:   color,
				Depth:   scanlineEdge.Current.Depth,
				Opacity: 1,
			}, colorBuf, depthBuf)

			column++
			scanlineEdge.TakeStep(1)
		}

		leftEdge.TakeStep(1)
		rightEdge.TakeStep(1)
	}
}

func labelTriangle(v0, v1, v2 vertex.Vertex) (apex, left, right vertex.Vertex) {
	switch {
	case math32.Abs(v0.Device.Y-v1.Device.Y) < EPSILON:
		return v2, v0, v1
	case math32.Abs(v0.Device.Y-v2.Device.Y) < EPSILON:
		return v1, v0, v2
	default:
		return v0, v1, v2
	}
}

func vec3FromSample(sample []float32) vecmath.Vector3 {
	return vecmath.Vec3(sample[0], sample[1], sample[2])
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
