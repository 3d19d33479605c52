// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vertex

import (
	"testing"

	"github.com/gogpu/cpuraster/vecmath"
)

func TestSetUpEdgeTrackerYAxis(t *testing.T) {
	a := Vertex{Device: vecmath.Vec2(0, 0), Depth: 0}
	b := Vertex{Device: vecmath.Vec2(10, 4), Depth: 8}

	e := SetUpEdgeTracker(a, b, AxisY)

	// delta_y = 4, so one full unit of y advances x by 10/4 = 2.5.
	if e.Increment.Device.X != 2.5 {
		t.Errorf("Increment.Device.X = %v, want 2.5", e.Increment.Device.X)
	}
	if e.Increment.Depth != 2 {
		t.Errorf("Increment.Depth = %v, want 2", e.Increment.Depth)
	}
}

func TestSetUpEdgeTrackerZeroDeltaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("SetUpEdgeTracker with zero delta did not panic")
		}
	}()
	a := Vertex{Device: vecmath.Vec2(0, 5)}
	b := Vertex{Device: vecmath.Vec2(10, 5)}
	SetUpEdgeTracker(a, b, AxisY)
}

func TestTakeStepAdvancesEveryAttribute(t *testing.T) {
	a := Vertex{
		Device: vecmath.Vec2(0, 0),
		Depth:  0,
		Color:  vecmath.Vec3(0, 0, 0),
	}
	b := Vertex{
		Device: vecmath.Vec2(4, 0),
		Depth:  8,
		Color:  vecmath.Vec3(1, 1, 1),
	}

	e := SetUpEdgeTracker(a, b, AxisX)
	e.TakeStep(1)

	want := vecmath.Vec2(1, 0)
	if e.Current.Device != want {
		t.Errorf("after one step Device = %v, want %v", e.Current.Device, want)
	}
	if e.Current.Depth != 2 {
		t.Errorf("after one step Depth = %v, want 2", e.Current.Depth)
	}

	e.TakeStep(3)
	want = vecmath.Vec2(4, 0)
	if e.Current.Device != want {
		t.Errorf("after four steps total Device = %v, want %v", e.Current.Device, want)
	}
}

func TestInterpolateVertexEndpoints(t *testing.T) {
	a := Vertex{Device: vecmath.Vec2(0, 0), Depth: 0, UV: vecmath.Vec2(0, 0)}
	b := Vertex{Device: vecmath.Vec2(10, 10), Depth: 1, UV: vecmath.Vec2(1, 1)}

	got0 := InterpolateVertex(a, b, 0)
	if got0.Device != a.Device {
		t.Errorf("InterpolateVertex(a,b,0) = %v, want %v", got0.Device, a.Device)
	}

	got1 := InterpolateVertex(a, b, 1)
	if got1.Device != b.Device {
		t.Errorf("InterpolateVertex(a,b,1) = %v, want %v", got1.Device, b.Device)
	}

	mid := InterpolateVertex(a, b, 0.5)
	want := vecmath.Vec2(5, 5)
	if mid.Device != want {
		t.Errorf("InterpolateVertex(a,b,0.5) = %v, want %v", mid.Device, want)
	}
	if mid.Depth != 0.5 {
		t.Errorf("InterpolateVertex(a,b,0.5).Depth = %v, want 0.5", mid.Depth)
	}
}
