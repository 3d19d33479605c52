// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vertex

import "github.com/gogpu/cpuraster/vecmath"

// Vertex is the full attribute bundle carried through the transform and
// clip pipeline, and interpolated by EdgeTracker during rasterization.
type Vertex struct {
	// Device is the final 2D pixel-space position.
	Device vecmath.Vector2
	// Depth is the device-space depth used by the depth test.
	Depth float32
	// World, View and Cull hold the same point transformed into the
	// world, view and (rasterizer-specific) culling spaces respectively.
	World vecmath.Vector3
	View  vecmath.Vector3
	Cull  vecmath.Vector3
	Color vecmath.Vector3
	UV    vecmath.Vector2
}

// Axis names the device-space axis an EdgeTracker steps along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// EdgeTracker linearly interpolates every Vertex attribute along an edge.
// Current holds the present interpolated vertex; Increment holds the
// per-unit-step delta added to Current by TakeStep.
type EdgeTracker struct {
	Current   Vertex
	Increment Vertex
}

func deviceComponent(v Vertex, axis Axis) float32 {
	if axis == AxisY {
		return v.Device.Y
	}
	return v.Device.X
}

func scaleVertex(v Vertex, s float32) Vertex {
	return Vertex{
		Device: v.Device.Scale(s),
		Depth:  v.Depth * s,
		World:  v.World.Scale(s),
		View:   v.View.Scale(s),
		Cull:   v.Cull.Scale(s),
		Color:  v.Color.Scale(s),
		UV:     v.UV.Scale(s),
	}
}

func subVertex(a, b Vertex) Vertex {
	return Vertex{
		Device: a.Device.Sub(b.Device),
		Depth:  a.Depth - b.Depth,
		World:  a.World.Sub(b.World),
		View:   a.View.Sub(b.View),
		Cull:   a.Cull.Sub(b.Cull),
		Color:  a.Color.Sub(b.Color),
		UV:     a.UV.Sub(b.UV),
	}
}

func addVertex(a, b Vertex) Vertex {
	return Vertex{
		Device: a.Device.Add(b.Device),
		Depth:  a.Depth + b.Depth,
		World:  a.World.Add(b.World),
		View:   a.View.Add(b.View),
		Cull:   a.Cull.Add(b.Cull),
		Color:  a.Color.Add(b.Color),
		UV:     a.UV.Add(b.UV),
	}
}

// SetUpEdgeTracker builds an EdgeTracker whose current vertex is a and
// whose increment is (b-a)/delta, where delta is the difference between
// b's and a's device-space component along axis. It panics if delta is
// zero; callers (the rasterizer's triangle labeling and degeneracy guard)
// are responsible for guaranteeing a nonzero delta.
func SetUpEdgeTracker(a, b Vertex, axis Axis) EdgeTracker {
	delta := deviceComponent(b, axis) - deviceComponent(a, axis)
	if delta == 0 {
		panic("vertex: SetUpEdgeTracker delta is zero")
	}
	return EdgeTracker{
		Current:   a,
		Increment: scaleVertex(subVertex(b, a), 1/delta),
	}
}

// TakeStep advances e.Current by step * e.Increment across every attribute.
func (e *EdgeTracker) TakeStep(step float32) {
	e.Current = addVertex(e.Current, scaleVertex(e.Increment, step))
}

// InterpolateVertex returns the componentwise interpolation (1-t)*a + t*b
// across every attribute. t is expected to be in [0,1].
func InterpolateVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Device: a.Device.Lerp(b.Device, t),
		Depth:  a.Depth + t*(b.Depth-a.Depth),
		World:  a.World.Lerp(b.World, t),
		View:   a.View.Lerp(b.View, t),
		Cull:   a.Cull.Lerp(b.Cull, t),
		Color:  a.Color.Lerp(b.Color, t),
		UV:     a.UV.Lerp(b.UV, t),
	}
}
