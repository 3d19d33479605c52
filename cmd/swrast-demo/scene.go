// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/vecmath"
)

// cubeMesh builds a unit cube centered on the origin, one quad face per
// side, each face carrying its own four UV corners so a single texture
// tiles identically across every side.
func cubeMesh() *scene.Mesh {
	v := []vecmath.Vector3{
		vecmath.Vec3(-0.5, -0.5, -0.5),
		vecmath.Vec3(0.5, -0.5, -0.5),
		vecmath.Vec3(0.5, 0.5, -0.5),
		vecmath.Vec3(-0.5, 0.5, -0.5),
		vecmath.Vec3(-0.5, -0.5, 0.5),
		vecmath.Vec3(0.5, -0.5, 0.5),
		vecmath.Vec3(0.5, 0.5, 0.5),
		vecmath.Vec3(-0.5, 0.5, 0.5),
	}
	uv := []vecmath.Vector2{
		vecmath.Vec2(0, 0),
		vecmath.Vec2(1, 0),
		vecmath.Vec2(1, 1),
		vecmath.Vec2(0, 1),
	}

	face := func(a, b, c, d int) []int {
		return []int{a, 0, b, 1, c, 2, d, 3}
	}

	return &scene.Mesh{
		Vertices: v,
		UVs:      uv,
		Faces: [][]int{
			face(4, 5, 6, 7), // +z
			face(1, 0, 3, 2), // -z
			face(0, 4, 7, 3), // -x
			face(5, 1, 2, 6), // +x
			face(3, 7, 6, 2), // +y
			face(0, 1, 5, 4), // -y
		},
	}
}

// checkerboardTexture builds an n x n two-color checkerboard whose
// alternating colors come from two points on the same HSV hue wheel,
// spaced 180 degrees apart so they read as clearly distinct tiles.
func checkerboardTexture(n, tiles int) *buffer.Buffer {
	tex := buffer.New(n, n, 3)
	a := colorful.Hsv(30, 0.65, 0.95)
	b := colorful.Hsv(210, 0.65, 0.35)

	tileSize := n / tiles
	if tileSize < 1 {
		tileSize = 1
	}

	px := make([]float32, 3)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			even := ((x/tileSize)+(y/tileSize))%2 == 0
			c := b
			if even {
				c = a
			}
			px[0], px[1], px[2] = float32(c.R), float32(c.G), float32(c.B)
			tex.Set(x, y, px)
		}
	}
	return tex
}

// demoObjects returns the fixed scene the render command draws: a single
// cube, turned by the given yaw and pitch, wrapped in the checkerboard
// texture.
func demoObjects(yaw, pitch float32) []scene.Object {
	return []scene.Object{
		{
			Translation: vecmath.Vec3(0, 0, 0),
			Yaw:         yaw,
			Pitch:       pitch,
			Scale:       vecmath.Vec3(1.5, 1.5, 1.5),
			Mesh:        cubeMesh(),
			Texture:     checkerboardTexture(64, 8),
		},
	}
}
