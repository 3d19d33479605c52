// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/vecmath"
	"github.com/gogpu/cpuraster/vertex"
)

func TestRasterizePointWritesCenter(t *testing.T) {
	color := buffer.New(20, 20, 3)
	depth := buffer.New(20, 20, 1)
	depth.Clear([]float32{buffer.MinDepth})

	v := vertex.Vertex{
		Device: vecmath.Vec2(10, 10),
		Depth:  1,
		Color:  vecmath.Vec3(1, 1, 1),
	}
	RasterizePoint(v, 3, color, depth)

	got := make([]float32, 3)
	color.Get(10, 10, got)
	if got[0] != 1 {
		t.Errorf("center pixel = %v, want written white", got)
	}
}

func TestRasterizePointStaysWithinBoundingBox(t *testing.T) {
	color := buffer.New(40, 40, 3)
	depth := buffer.New(40, 40, 1)
	depth.Clear([]float32{buffer.MinDepth})

	v := vertex.Vertex{
		Device: vecmath.Vec2(20, 20),
		Depth:  1,
		Color:  vecmath.Vec3(1, 1, 1),
	}
	RasterizePoint(v, 5, color, depth)

	far := make([]float32, 3)
	color.Get(0, 0, far)
	if far[0] != 0 {
		t.Errorf("far corner pixel = %v, want untouched", far)
	}
}
