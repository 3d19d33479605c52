// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraFrustumMatchesAspectRatio(t *testing.T) {
	cam := Camera{AspectRatio: 2, Near: 1, Far: 10}
	fru := cam.Frustum()

	assert.Equal(t, float32(1), fru.L)
	assert.Equal(t, float32(1), fru.R)
	assert.Equal(t, float32(0.5), fru.T)
	assert.Equal(t, float32(0.5), fru.B)
	assert.Equal(t, float32(1), fru.N)
	assert.Equal(t, float32(10), fru.F)
}

func TestCameraYawPitchDoNotAffectFrustum(t *testing.T) {
	cam := Camera{AspectRatio: 2, Near: 1, Far: 10, Yaw: 1.2, Pitch: -0.4}

	assert.Equal(t, Camera{AspectRatio: 2, Near: 1, Far: 10}.Frustum(), cam.Frustum())
}
