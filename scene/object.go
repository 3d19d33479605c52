// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/vecmath"
)

// Object places a Mesh in the world with a translation, Euler-angle
// orientation and scale, and pairs it with the texture its faces sample.
// Texture may be nil, in which case faces are shaded with Color instead.
type Object struct {
	Translation      vecmath.Vector3
	Yaw, Pitch, Roll float32
	Scale            vecmath.Vector3

	Mesh    *Mesh
	Texture *buffer.Buffer
	Color   vecmath.Vector3
}
