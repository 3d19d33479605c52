// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/cpuraster/geometry"
	"github.com/gogpu/cpuraster/vecmath"
)

// Camera describes a perspective camera: position, facing direction and
// up vector, plus the aspect ratio and near/far clip distances that
// derive its view frustum. Yaw and Pitch are host-side orientation
// bookkeeping (e.g. mouse-look state driving Dir between frames); they
// are not consumed by Frustum or by the view matrix, which are built
// directly from Dir and Up.
type Camera struct {
	Pos vecmath.Vector3
	Dir vecmath.Vector3
	Up  vecmath.Vector3

	Yaw, Pitch float32

	AspectRatio float32
	Near        float32
	Far         float32
}

// Frustum derives the camera's symmetric view frustum. The virtual
// screen has height 1 and width AspectRatio, matching the pipeline's
// device-matrix convention.
func (c Camera) Frustum() geometry.Frustum {
	halfWidth := c.AspectRatio / 2
	halfHeight := float32(0.5)
	return geometry.Frustum{
		L: halfWidth,
		R: halfWidth,
		T: halfHeight,
		B: halfHeight,
		N: c.Near,
		F: c.Far,
	}
}
