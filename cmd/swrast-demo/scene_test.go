// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckerboardTextureAlternatesTiles(t *testing.T) {
	tex := checkerboardTexture(16, 4)

	a := make([]float32, 3)
	b := make([]float32, 3)
	tex.Get(0, 0, a)
	tex.Get(4, 0, b)

	assert.NotEqual(t, a, b)
}

func TestCubeMeshHasSixQuadFaces(t *testing.T) {
	mesh := cubeMesh()

	assert.Len(t, mesh.Faces, 6)
	assert.Len(t, mesh.Vertices, 8)
	for _, face := range mesh.Faces {
		assert.Equal(t, 4, len(face)/2)
	}
}

func TestDemoObjectsProducesTexturedCube(t *testing.T) {
	objects := demoObjects(0, 0)

	assert.Len(t, objects, 1)
	assert.NotNil(t, objects[0].Mesh)
	assert.NotNil(t, objects[0].Texture)
}
