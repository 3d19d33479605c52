// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/cpuraster/buffer"
	"github.com/gogpu/cpuraster/geometry"
	"github.com/gogpu/cpuraster/internal/rlog"
	"github.com/gogpu/cpuraster/raster"
	"github.com/gogpu/cpuraster/scene"
	"github.com/gogpu/cpuraster/vecmath"
	"github.com/gogpu/cpuraster/vertex"
)

// RenderScene draws every face of every object in objects, as seen by
// camera, into frame's color and depth buffers. Objects and meshes with
// no faces are legal no-ops; callers are expected to clear frame
// themselves before calling RenderScene if a fresh frame is wanted.
func RenderScene(camera scene.Camera, objects []scene.Object, frame *buffer.FrameBuffer) {
	view := vecmath.LookAt(camera.Pos, camera.Pos.Add(camera.Dir), camera.Up)

	width, height := float32(frame.Width()), float32(frame.Height())
	device := vecmath.Translation(vecmath.Vec3(width/2, height/2, 0)).
		Mul(vecmath.Scale4(vecmath.Vec3(width/camera.AspectRatio, height, 1)))

	frustumPlanes := geometry.FrustumPlanes(camera.Frustum())

	for _, obj := range objects {
		if obj.Mesh == nil {
			continue
		}

		local := vecmath.Translation(obj.Translation).
			Mul(vecmath.RotationY(obj.Yaw)).
			Mul(vecmath.RotationX(obj.Pitch)).
			Mul(vecmath.RotationZ(obj.Roll)).
			Mul(vecmath.Scale4(obj.Scale))

		for _, face := range obj.Mesh.Faces {
			renderFace(obj, face, local, view, device, camera.Near, frustumPlanes, frame)
		}
	}
}

func renderFace(
	obj scene.Object,
	face []int,
	local, view, device vecmath.Matrix4,
	near float32,
	frustumPlanes [6]geometry.Plane,
	frame *buffer.FrameBuffer,
) {
	count := scene.FaceVertexCount(face)
	if count < 3 {
		return
	}

	verts := make([]vertex.Vertex, count)
	for i := 0; i < count; i++ {
		vi, uvi := scene.FaceVertex(face, i)
		localPos := obj.Mesh.Vertices[vi]

		world := local.MulVec4(localPos.Vec4(1)).XYZ()
		viewPos := view.MulVec4(world.Vec4(1)).XYZ()

		verts[i] = vertex.Vertex{
			World: world,
			View:  viewPos,
			Cull:  viewPos,
			Color: obj.Color,
			UV:    obj.Mesh.UVs[uvi],
		}
	}

	for _, plane := range frustumPlanes {
		in, _ := geometry.ClipPolygon(verts, plane, geometry.DefaultEpsilon)
		verts = in
		if len(verts) < 3 {
			rlog.Logger().Debug("pipeline: face fully clipped against frustum plane")
			return
		}
	}

	for i := range verts {
		v := &verts[i]
		absZ := math32.Abs(v.View.Z)
		projected := vecmath.Vec3(
			(v.View.X/absZ)*near,
			(v.View.Y/absZ)*near,
			v.View.Z,
		)
		devicePos := device.MulVec4(projected.Vec4(1))

		v.Device = vecmath.Vec2(devicePos.X, devicePos.Y)
		v.Depth = devicePos.Z
		v.Cull = vecmath.Vec3(v.Device.X, v.Device.Y, 0)
	}

	raster.RasterizePolygon(verts, frame.Color, frame.Depth, obj.Texture)
}
