/*
 * v3_test.go, part of gotraj.
 *
 * Copyright 2024 The gotraj developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"math"
	"testing"
)

func TestVecOps(Te *testing.T) {
	x := Vec{1, 0, 0}
	y := Vec{0, 1, 0}
	z := x.Cross(y)
	if z != (Vec{0, 0, 1}) {
		Te.Errorf("x cross y should be z, got %v", z)
	}
	if x.Dot(y) != 0 {
		Te.Error("x dot y should be 0")
	}
	v := Vec{3, 4, 0}
	if v.Norm() != 5 {
		Te.Errorf("wrong norm, got %v", v.Norm())
	}
	v.Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		Te.Errorf("normalized vector has norm %v", v.Norm())
	}
	w := x.Add(y).Sub(Vec{1, 0, 0})
	if w != y {
		Te.Errorf("add/sub roundtrip failed, got %v", w)
	}
	s := y.Scale(2.5)
	if s != (Vec{0, 2.5, 0}) {
		Te.Errorf("scale failed, got %v", s)
	}
}

func TestMatOps(Te *testing.T) {
	m := Mat{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}
	if m.At(1, 2) != 6 {
		Te.Error("At(1,2) should be 6")
	}
	//det by cofactor expansion: 1*(50-48)-4*(20-24)+7*(12-15) = -3
	if m.Det() != -3 {
		Te.Errorf("wrong determinant, got %v", m.Det())
	}
	v := m.MulVec(Vec{1, 1, 1})
	if v != (Vec{6, 15, 25}) {
		Te.Errorf("wrong matrix-vector product, got %v", v)
	}
	t := m.Transposed()
	if t.At(0, 1) != m.At(1, 0) || t.At(2, 0) != m.At(0, 2) {
		Te.Error("transpose is wrong")
	}
	//m^T*m should match multiplying the transpose explicitly
	mtm := m.TransposeMult(&m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			for k := 0; k < 3; k++ {
				want += t.At(i, k) * m.At(k, j)
			}
			if math.Abs(mtm.At(i, j)-want) > 1e-12 {
				Te.Errorf("TransposeMult differs at %d,%d: %v vs %v", i, j, mtm.At(i, j), want)
			}
		}
	}
}

func TestEigenSorted(Te *testing.T) {
	m := Mat{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
	}
	evals, evecs, err := m.EigenSorted()
	if err != nil {
		Te.Fatal(err)
	}
	want := Vec{3, 2, 1}
	for i := 0; i < 3; i++ {
		if math.Abs(evals[i]-want[i]) > 1e-10 {
			Te.Errorf("eigenvalue %d: got %v, want %v", i, evals[i], want[i])
		}
	}
	//the first eigenvector (largest eigenvalue) should be +-z
	r := evecs.Row(0)
	if math.Abs(math.Abs(r[2])-1) > 1e-10 || math.Abs(r[0]) > 1e-10 || math.Abs(r[1]) > 1e-10 {
		Te.Errorf("first eigenvector should be along z, got %v", r)
	}
	//eigenvectors should be unit length
	for i := 0; i < 3; i++ {
		if math.Abs(evecs.Row(i).Norm()-1) > 1e-10 {
			Te.Errorf("eigenvector %d is not unit length", i)
		}
	}
}
