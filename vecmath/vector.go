// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vecmath

import (
	"github.com/chewxy/math32"
)

// Vector2 is a 2-component float32 vector.
type Vector2 struct {
	X, Y float32
}

// Vec2 constructs a Vector2 from its components.
func Vec2(x, y float32) Vector2 { return Vector2{x, y} }

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vector2) Scale(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Hadamard returns the componentwise product of v and w.
func (v Vector2) Hadamard(w Vector2) Vector2 { return Vector2{v.X * w.X, v.Y * w.Y} }

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float32 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar (z-component) 2D cross product v × w.
func (v Vector2) Cross(w Vector2) float32 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The result is undefined for a
// zero vector, matching the contract of every normalize() in the source
// this package is grounded on: callers must not normalize a zero vector.
func (v Vector2) Normalize() Vector2 { return v.Scale(1 / v.Length()) }

// Lerp returns the componentwise linear interpolation (1-t)*v + t*w.
func (v Vector2) Lerp(w Vector2, t float32) Vector2 {
	return Vector2{
		v.X + t*(w.X-v.X),
		v.Y + t*(w.Y-v.Y),
	}
}

// Vector3 is a 3-component float32 vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 constructs a Vector3 from its components.
func Vec3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

// Vec3Scalar returns a Vector3 with all three components set to s.
func Vec3Scalar(s float32) Vector3 { return Vector3{s, s, s} }

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by s.
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Hadamard returns the componentwise product of v and w.
func (v Vector3) Hadamard(w Vector3) Vector3 {
	return Vector3{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float32 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3D cross product v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length.
func (v Vector3) Normalize() Vector3 { return v.Scale(1 / v.Length()) }

// Lerp returns the componentwise linear interpolation (1-t)*v + t*w.
func (v Vector3) Lerp(w Vector3, t float32) Vector3 {
	return Vector3{
		v.X + t*(w.X-v.X),
		v.Y + t*(w.Y-v.Y),
		v.Z + t*(w.Z-v.Z),
	}
}

// Clamp returns v with each component clamped to [lo, hi].
func (v Vector3) Clamp(lo, hi float32) Vector3 {
	return Vector3{
		clampf32(v.X, lo, hi),
		clampf32(v.Y, lo, hi),
		clampf32(v.Z, lo, hi),
	}
}

// Vec4 returns v extended to a Vector4 with the given w component.
func (v Vector3) Vec4(w float32) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// Vector4 is a 4-component float32 vector, generally a homogeneous point or
// direction: Vec4 with w=1 is a point, w=0 is a direction.
type Vector4 struct {
	X, Y, Z, W float32
}

// Vec4 constructs a Vector4 from its components.
func Vec4(x, y, z, w float32) Vector4 { return Vector4{x, y, z, w} }

// XYZ returns the first three components of v.
func (v Vector4) XYZ() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Add returns v + w.
func (v Vector4) Add(w Vector4) Vector4 {
	return Vector4{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w.
func (v Vector4) Sub(w Vector4) Vector4 {
	return Vector4{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Scale returns v scaled by s.
func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and w.
func (v Vector4) Dot(w Vector4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// DegToRad converts an angle in degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}

func clampf32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
