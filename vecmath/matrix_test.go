// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vecmath

import "testing"

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	v := Vec4(1, 2, 3, 4)
	got := id.MulVec4(v)
	if got != v {
		t.Errorf("Identity4().MulVec4(v) = %v, want %v", got, v)
	}
}

func TestMatrix4MulAssociativity(t *testing.T) {
	a := Translation(Vec3(1, 2, 3))
	b := Scale4(Vec3(2, 2, 2))
	v := Vec4(1, 1, 1, 1)

	composed := a.Mul(b).MulVec4(v)
	sequential := a.MulVec4(b.MulVec4(v))

	if composed != sequential {
		t.Errorf("a.Mul(b).MulVec4(v) = %v, want %v", composed, sequential)
	}
}

func TestMatrix4Translation(t *testing.T) {
	m := Translation(Vec3(10, -5, 2))
	got := m.MulVec4(Vec4(1, 1, 1, 1))
	want := Vec4(11, -4, 3, 1)
	if got != want {
		t.Errorf("Translation().MulVec4() = %v, want %v", got, want)
	}
}

func TestMatrix4Scale4(t *testing.T) {
	m := Scale4(Vec3(2, 3, 4))
	got := m.MulVec4(Vec4(1, 1, 1, 1))
	want := Vec4(2, 3, 4, 1)
	if got != want {
		t.Errorf("Scale4().MulVec4() = %v, want %v", got, want)
	}
}

func TestMatrix4Transpose(t *testing.T) {
	m := NewMatrix4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	want := NewMatrix4(
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	)
	got := m.Transpose()
	if got != want {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
}

func TestMatrix4RotationZQuarterTurn(t *testing.T) {
	// A quarter turn about Z should carry the x axis onto the y axis.
	m := RotationZ(DegToRad(90))
	got := m.MulVec4(Vec4(1, 0, 0, 0))
	if absf32(got.X) > 1e-5 || absf32(got.Y-1) > 1e-5 {
		t.Errorf("RotationZ(90deg)*x = %v, want ~(0,1,0,0)", got)
	}
}

func TestMatrix4LookAtCameraLooksAtTarget(t *testing.T) {
	eye := Vec3(0, 0, 5)
	at := Vec3(0, 0, 0)
	up := Vec3(0, 1, 0)

	view := LookAt(eye, at, up)
	// The eye itself must land at the view-space origin.
	got := view.MulVec4(eye.Vec4(1))
	if absf32(got.X) > 1e-5 || absf32(got.Y) > 1e-5 || absf32(got.Z) > 1e-5 {
		t.Errorf("LookAt: eye in view space = %v, want origin", got)
	}

	// The target, further along -z from the eye, must land at negative z
	// in view space (camera looks down -z).
	target := view.MulVec4(at.Vec4(1))
	if target.Z >= 0 {
		t.Errorf("LookAt: target view-space z = %v, want negative", target.Z)
	}
}

func TestMatrix3Determinant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		want float32
	}{
		{"identity", Identity3(), 1},
		{"zero", Zero3(), 0},
		{
			"scale",
			NewMatrix3(
				2, 0, 0,
				0, 3, 0,
				0, 0, 4,
			),
			24,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Determinant()
			if got != tt.want {
				t.Errorf("Determinant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix3InverseRecoversIdentity(t *testing.T) {
	m := NewMatrix3(
		2, 0, 0,
		0, 4, 0,
		0, 0, 5,
	)
	inv := m.Inverse()
	got := inv.MulVec3(m.MulVec3(Vec3(1, 1, 1)))
	want := Vec3(1, 1, 1)
	if absf32(got.X-want.X) > 1e-5 || absf32(got.Y-want.Y) > 1e-5 || absf32(got.Z-want.Z) > 1e-5 {
		t.Errorf("Inverse() round-trip = %v, want %v", got, want)
	}
}

func TestMatrix3InverseNonDiagonalRecoversIdentity(t *testing.T) {
	// A matrix with off-diagonal terms in every row and column: a purely
	// diagonal test matrix can't exercise every cofactor term, since the
	// off-diagonal elements that feed them are all zero.
	m := NewMatrix3(
		2, 1, 1,
		1, 3, 2,
		1, 0, 1,
	)
	inv := m.Inverse()

	for _, v := range []Vector3{Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1), Vec3(1, 1, 1)} {
		got := inv.MulVec3(m.MulVec3(v))
		if absf32(got.X-v.X) > 1e-4 || absf32(got.Y-v.Y) > 1e-4 || absf32(got.Z-v.Z) > 1e-4 {
			t.Errorf("Inverse() round-trip of %v = %v, want %v", v, got, v)
		}
	}
}

func TestMatrix3InverseSingularPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Inverse() of singular matrix did not panic")
		}
	}()
	Zero3().Inverse()
}

func TestMatrix4Truncated(t *testing.T) {
	m := Affine(Identity3(), Vec3(9, 9, 9))
	got := m.Truncated()
	want := Identity3()
	if got != want {
		t.Errorf("Truncated() = %v, want %v", got, want)
	}
}
