// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vecmath implements the vector and matrix algebra the rasterizer
// depends on: Vector2/3/4, Matrix3/4, and the handful of constructors
// (translation, scale, axis rotation, look-at) the pipeline composes per
// frame.
//
// All values are float32. Angles are radians unless a function name says
// otherwise (DegToRad converts). Matrices are stored row-major; Mul applies
// the linear map to a column vector on the right, so composing transforms
// reads right-to-left the same way as the matrix-algebra convention it
// implements: (A.Mul(B)).MulVec4(v) == A.MulVec4(B.MulVec4(v)).
package vecmath
