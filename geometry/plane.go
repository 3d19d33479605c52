// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/cpuraster/vecmath"
	"github.com/gogpu/cpuraster/vertex"
)

// DefaultEpsilon is the classification tolerance used throughout the
// clipping routines in this package when a caller doesn't need a
// different one.
const DefaultEpsilon = 0.001

func (p Plane) normal() vecmath.Vector3 { return vecmath.Vec3(p.A, p.B, p.C) }

func (p Plane) signedDistance(v vecmath.Vector3) float32 {
	return p.normal().Dot(v) + p.D
}

// ClipPolygon clips the convex polygon poly (given as a closed vertex
// loop) against plane, classifying each vertex by the sign of
// plane(v.Cull) within epsilon. Vertices strictly inside are appended to
// in, vertices on the plane are appended to both, and vertices strictly
// outside are appended to out. Each strict crossing of an edge produces
// one interpolated vertex, computed by a parametric march along the edge
// in Cull space and interpolated across every Vertex attribute, appended
// to both lists.
func ClipPolygon(poly []vertex.Vertex, plane Plane, epsilon float32) (in, out []vertex.Vertex) {
	n := len(poly)
	if n == 0 {
		return nil, nil
	}

	norm := plane.normal()
	d := plane.D

	for i := 0; i < n; i++ {
		cur := poly[i]
		curDelta := norm.Dot(cur.Cull) + d
		curIn := curDelta > epsilon
		curOn := math32.Abs(curDelta) <= epsilon

		switch {
		case curOn:
			in = append(in, cur)
			out = append(out, cur)
		case curIn:
			in = append(in, cur)
		default:
			out = append(out, cur)
		}

		next := poly[(i+1)%n]
		nextDelta := norm.Dot(next.Cull) + d
		nextIn := nextDelta > epsilon
		nextOn := math32.Abs(nextDelta) <= epsilon

		crosses := !curOn && !nextOn && (curIn != nextIn)
		if crosses {
			edge := next.Cull.Sub(cur.Cull)
			totalLength := edge.Length()
			dir := edge.Scale(1 / totalLength)
			length := math32.Abs(curDelta / dir.Dot(norm))

			interp := vertex.InterpolateVertex(cur, next, length/totalLength)
			in = append(in, interp)
			out = append(out, interp)
		}
	}

	return in, out
}
