// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/vecmath"
)

func quadMesh() *scene.Mesh {
	return &scene.Mesh{
		Vertices: []vecmath.Vector3{
			vecmath.Vec3(-1, -1, 0),
			vecmath.Vec3(1, -1, 0),
			vecmath.Vec3(1, 1, 0),
			vecmath.Vec3(-1, 1, 0),
		},
		UVs: []vecmath.Vector2{
			vecmath.Vec2(0, 0),
			vecmath.Vec2(1, 0),
			vecmath.Vec2(1, 1),
			vecmath.Vec2(0, 1),
		},
		Faces: [][]int{
			{0, 0, 1, 1, 2, 2, 3, 3},
		},
	}
}

func solidTexture() *buffer.Buffer {
	tex := buffer.New(2, 2, 3)
	tex.Clear([]float32{1, 1, 1})
	return tex
}

func TestRenderSceneDrawsFacingQuad(t *testing.T) {
	frame := buffer.NewFrameBuffer(64, 64)

	cam := scene.Camera{
		Pos:         vecmath.Vec3(0, 0, 5),
		Dir:         vecmath.Vec3(0, 0, -1),
		Up:          vecmath.Vec3(0, 1, 0),
		AspectRatio: 1,
		Near:        1,
		Far:         100,
	}

	obj := scene.Object{
		Scale:   vecmath.Vec3(1, 1, 1),
		Mesh:    quadMesh(),
		Texture: solidTexture(),
	}

	RenderScene(cam, []scene.Object{obj}, frame)

	center := make([]float32, 3)
	frame.Color.Get(32, 32, center)
	assert.Equal(t, float32(1), center[0], "expected the quad to be rasterized across the center pixel")
}

func TestRenderSceneDrawsFlatColoredQuadWithNoTexture(t *testing.T) {
	frame := buffer.NewFrameBuffer(64, 64)

	cam := scene.Camera{
		Pos:         vecmath.Vec3(0, 0, 5),
		Dir:         vecmath.Vec3(0, 0, -1),
		Up:          vecmath.Vec3(0, 1, 0),
		AspectRatio: 1,
		Near:        1,
		Far:         100,
	}

	obj := scene.Object{
		Scale: vecmath.Vec3(1, 1, 1),
		Mesh:  quadMesh(),
		Color: vecmath.Vec3(0, 0, 1),
	}

	RenderScene(cam, []scene.Object{obj}, frame)

	center := make([]float32, 3)
	frame.Color.Get(32, 32, center)
	assert.Equal(t, []float32{0, 0, 1}, center, "expected the textureless quad to be shaded from Object.Color")
}

func TestRenderSceneEmptyObjectListIsNoop(t *testing.T) {
	frame := buffer.NewFrameBuffer(8, 8)
	cam := scene.Camera{AspectRatio: 1, Near: 1, Far: 10, Dir: vecmath.Vec3(0, 0, -1), Up: vecmath.Vec3(0, 1, 0)}

	assert.NotPanics(t, func() {
		RenderScene(cam, nil, frame)
	})
}

func TestRenderSceneObjectBehindCameraProducesNoFragments(t *testing.T) {
	frame := buffer.NewFrameBuffer(16, 16)
	cam := scene.Camera{
		Pos:         vecmath.Vec3(0, 0, 5),
		Dir:         vecmath.Vec3(0, 0, -1),
		Up:          vecmath.Vec3(0, 1, 0),
		AspectRatio: 1,
		Near:        1,
		Far:         100,
	}

	obj := scene.Object{
		Translation: vecmath.Vec3(0, 0, 50), // behind the camera, outside the near/far range
		Scale:       vecmath.Vec3(1, 1, 1),
		Mesh:        quadMesh(),
		Texture:     solidTexture(),
	}

	assert.NotPanics(t, func() {
		RenderScene(cam, []scene.Object{obj}, frame)
	})

	center := make([]float32, 3)
	frame.Color.Get(8, 8, center)
	assert.Equal(t, float32(0), center[0])
}
