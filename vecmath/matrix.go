// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vecmath

import "github.com/chewxy/math32"

// Matrix3 is a row-major 3x3 float32 matrix: mat[row][col].
type Matrix3 struct {
	mat [3][3]float32
}

// NewMatrix3 builds a Matrix3 from its elements in row-major order.
func NewMatrix3(e00, e01, e02, e10, e11, e12, e20, e21, e22 float32) Matrix3 {
	return Matrix3{[3][3]float32{
		{e00, e01, e02},
		{e10, e11, e12},
		{e20, e21, e22},
	}}
}

// Matrix3FromColumns builds a Matrix3 whose columns are c0, c1, c2.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return NewMatrix3(
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	)
}

// Zero3 returns the 3x3 zero matrix.
func Zero3() Matrix3 { return Matrix3{} }

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return NewMatrix3(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Col returns column i (0, 1 or 2) of m.
func (m Matrix3) Col(i int) Vector3 {
	return Vector3{m.mat[0][i], m.mat[1][i], m.mat[2][i]}
}

// MulVec3 applies m to the column vector v.
func (m Matrix3) MulVec3(v Vector3) Vector3 {
	return Vector3{
		v.X*m.mat[0][0] + v.Y*m.mat[0][1] + v.Z*m.mat[0][2],
		v.X*m.mat[1][0] + v.Y*m.mat[1][1] + v.Z*m.mat[1][2],
		v.X*m.mat[2][0] + v.Y*m.mat[2][1] + v.Z*m.mat[2][2],
	}
}

// Scale3 returns m with every element multiplied by s.
func (m Matrix3) Scale3(s float32) Matrix3 {
	return NewMatrix3(
		m.mat[0][0]*s, m.mat[0][1]*s, m.mat[0][2]*s,
		m.mat[1][0]*s, m.mat[1][1]*s, m.mat[1][2]*s,
		m.mat[2][0]*s, m.mat[2][1]*s, m.mat[2][2]*s,
	)
}

// Determinant returns the determinant of m.
func (m Matrix3) Determinant() float32 {
	return m.mat[0][0]*(m.mat[1][1]*m.mat[2][2]-m.mat[1][2]*m.mat[2][1]) -
		m.mat[0][1]*(m.mat[1][0]*m.mat[2][2]-m.mat[1][2]*m.mat[2][0]) +
		m.mat[0][2]*(m.mat[1][0]*m.mat[2][1]-m.mat[1][1]*m.mat[2][0])
}

// Cofactor returns the cofactor matrix of m.
func (m Matrix3) Cofactor() Matrix3 {
	return NewMatrix3(
		m.mat[1][1]*m.mat[2][2]-m.mat[1][2]*m.mat[2][1], m.mat[1][2]*m.mat[2][0]-m.mat[1][0]*m.mat[2][2], m.mat[1][0]*m.mat[2][1]-m.mat[1][1]*m.mat[2][0],
		m.mat[0][2]*m.mat[2][1]-m.mat[0][1]*m.mat[2][2], m.mat[0][0]*m.mat[2][2]-m.mat[0][2]*m.mat[2][0], m.mat[0][1]*m.mat[2][0]-m.mat[0][0]*m.mat[2][1],
		m.mat[0][1]*m.mat[1][2]-m.mat[0][2]*m.mat[1][1], m.mat[0][2]*m.mat[1][0]-m.mat[0][0]*m.mat[1][2], m.mat[0][0]*m.mat[1][1]-m.mat[0][1]*m.mat[1][0],
	)
}

// Adjugate returns the transposed cofactor matrix of m.
func (m Matrix3) Adjugate() Matrix3 {
	return m.Cofactor().Transpose()
}

// Inverse returns the inverse of m. It panics if m is singular.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		panic("vecmath: Matrix3 is singular")
	}
	return m.Adjugate().Scale3(1 / det)
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return NewMatrix3(
		m.mat[0][0], m.mat[1][0], m.mat[2][0],
		m.mat[0][1], m.mat[1][1], m.mat[2][1],
		m.mat[0][2], m.mat[1][2], m.mat[2][2],
	)
}

// Matrix4 is a row-major 4x4 float32 matrix: mat[row][col].
type Matrix4 struct {
	mat [4][4]float32
}

// NewMatrix4 builds a Matrix4 from its elements in row-major order.
func NewMatrix4(
	e00, e01, e02, e03,
	e10, e11, e12, e13,
	e20, e21, e22, e23,
	e30, e31, e32, e33 float32,
) Matrix4 {
	return Matrix4{[4][4]float32{
		{e00, e01, e02, e03},
		{e10, e11, e12, e13},
		{e20, e21, e22, e23},
		{e30, e31, e32, e33},
	}}
}

// Matrix4FromColumns builds a Matrix4 whose columns are c0..c3.
func Matrix4FromColumns(c0, c1, c2, c3 Vector4) Matrix4 {
	return NewMatrix4(
		c0.X, c1.X, c2.X, c3.X,
		c0.Y, c1.Y, c2.Y, c3.Y,
		c0.Z, c1.Z, c2.Z, c3.Z,
		c0.W, c1.W, c2.W, c3.W,
	)
}

// Zero4 returns the 4x4 zero matrix.
func Zero4() Matrix4 { return Matrix4{} }

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Col returns column i (0 through 3) of m.
func (m Matrix4) Col(i int) Vector4 {
	return Vector4{m.mat[0][i], m.mat[1][i], m.mat[2][i], m.mat[3][i]}
}

// MulVec4 applies m to the column vector v.
func (m Matrix4) MulVec4(v Vector4) Vector4 {
	return Vector4{
		m.mat[0][0]*v.X + m.mat[0][1]*v.Y + m.mat[0][2]*v.Z + m.mat[0][3]*v.W,
		m.mat[1][0]*v.X + m.mat[1][1]*v.Y + m.mat[1][2]*v.Z + m.mat[1][3]*v.W,
		m.mat[2][0]*v.X + m.mat[2][1]*v.Y + m.mat[2][2]*v.Z + m.mat[2][3]*v.W,
		m.mat[3][0]*v.X + m.mat[3][1]*v.Y + m.mat[3][2]*v.Z + m.mat[3][3]*v.W,
	}
}

// Mul returns the matrix product m * other, so that
// m.Mul(other).MulVec4(v) == m.MulVec4(other.MulVec4(v)).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return Matrix4FromColumns(
		m.MulVec4(other.Col(0)),
		m.MulVec4(other.Col(1)),
		m.MulVec4(other.Col(2)),
		m.MulVec4(other.Col(3)),
	)
}

// Truncated returns the upper-left 3x3 of m.
func (m Matrix4) Truncated() Matrix3 {
	return Matrix3FromColumns(
		m.Col(0).XYZ(),
		m.Col(1).XYZ(),
		m.Col(2).XYZ(),
	)
}

// Transpose returns the transpose of m.
func (m Matrix4) Transpose() Matrix4 {
	var t Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t.mat[i][j] = m.mat[j][i]
		}
	}
	return t
}

// Affine builds a Matrix4 from a 3x3 basis and a translation, placing the
// translation in the rightmost column (row-major, homogeneous w=1).
func Affine(basis Matrix3, translation Vector3) Matrix4 {
	return Matrix4FromColumns(
		basis.Col(0).Vec4(0),
		basis.Col(1).Vec4(0),
		basis.Col(2).Vec4(0),
		translation.Vec4(1),
	)
}

// Translation returns a Matrix4 that translates by v.
func Translation(v Vector3) Matrix4 {
	return NewMatrix4(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Scale4 returns a Matrix4 that scales by v componentwise.
func Scale4(v Vector3) Matrix4 {
	return NewMatrix4(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// RotationX returns a Matrix4 rotating theta radians about the X axis.
func RotationX(theta float32) Matrix4 {
	s, c := math32.Sin(theta), math32.Cos(theta)
	return NewMatrix4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a Matrix4 rotating theta radians about the Y axis.
func RotationY(theta float32) Matrix4 {
	s, c := math32.Sin(theta), math32.Cos(theta)
	return NewMatrix4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ returns a Matrix4 rotating theta radians about the Z axis.
func RotationZ(theta float32) Matrix4 {
	s, c := math32.Sin(theta), math32.Cos(theta)
	return NewMatrix4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// LookAt builds a view matrix for a camera at eye looking toward at, with
// the given up direction. The camera's local basis is right-handed with z
// pointing from at toward eye ("backwards"): forward is -z in view space.
// It panics if eye and at coincide or if up is parallel to the view
// direction, since either leaves the basis undefined.
func LookAt(eye, at, up Vector3) Matrix4 {
	back := eye.Sub(at)
	if back.Length() == 0 {
		panic("vecmath: LookAt eye and at coincide")
	}
	z := back.Normalize()
	right := up.Cross(z)
	if right.Length() == 0 {
		panic("vecmath: LookAt up is parallel to the view direction")
	}
	x := right.Normalize()
	y := z.Cross(x).Normalize()

	rotationTransposed := Matrix4FromColumns(
		x.Vec4(0),
		y.Vec4(0),
		z.Vec4(0),
		Vec4(0, 0, 0, 1),
	).Transpose()

	translationInv := Translation(eye.Scale(-1))

	return rotationTransposed.Mul(translationInv)
}
