/*
 * v3.go, part of gotraj.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Vec is a point or displacement in 3D Cartesian space.
type Vec [3]float64

// Add returns the elementwise sum v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns the elementwise difference v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v[0] * s, v[1] * s, v[2] * s}
}

// Neg negates v in place.
func (v *Vec) Neg() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
}

// Zero sets every component of v to 0.
func (v *Vec) Zero() {
	v[0] = 0
	v[1] = 0
	v[2] = 0
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Cross returns the cross product v x w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Norm returns the Euclidean norm of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize scales v in place to unit length. A vector with norm
// below the numerical-zero threshold is left unchanged.
func (v *Vec) Normalize() {
	n := v.Norm()
	if n <= appzero {
		return
	}
	b := 1.0 / n
	v[0] *= b
	v[1] *= b
	v[2] *= b
}

// Mat is a 3x3 matrix in row-major order, so M[i*3+j] is the element
// at row i, column j.
type Mat [9]float64

// At returns the element at row i, column j.
func (m *Mat) At(i, j int) float64 { return m[i*3+j] }

// Set puts val at row i, column j.
func (m *Mat) Set(i, j int, val float64) { m[i*3+j] = val }

// Row returns row i of m as a Vec.
func (m *Mat) Row(i int) Vec {
	return Vec{m[i*3], m[i*3+1], m[i*3+2]}
}

// MulVec returns the matrix-vector product m*v.
func (m *Mat) MulVec(v Vec) Vec {
	return Vec{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transposed returns the transpose of m.
func (m *Mat) Transposed() Mat {
	return Mat{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// TransposeMult returns the product of the transpose of m with n,
// i.e. m^T * n.
func (m *Mat) TransposeMult(n *Mat) Mat {
	var r Mat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i]*n[j] + m[i+3]*n[j+3] + m[i+6]*n[j+6]
		}
	}
	return r
}

// Det returns the determinant of m.
func (m *Mat) Det() float64 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(2, 1)*m.At(1, 2)) -
		m.At(1, 0)*(m.At(0, 1)*m.At(2, 2)-m.At(2, 1)*m.At(0, 2)) +
		m.At(2, 0)*(m.At(0, 1)*m.At(1, 2)-m.At(1, 1)*m.At(0, 2))
}

// EigenSorted diagonalizes the symmetric matrix m, returning the
// eigenvalues sorted in descending order and the corresponding unit
// eigenvectors as the rows of the returned matrix. Only the upper
// triangle of m is read; symmetry is the caller's responsibility.
// A failed factorization returns a non-nil error.
func (m *Mat) EigenSorted() (Vec, Mat, error) {
	var evals Vec
	var evecs Mat
	sym := mat.NewSymDense(3, []float64{
		m[0], m[1], m[2],
		m[1], m[4], m[5],
		m[2], m[5], m[8],
	})
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return evals, evecs, Error{string(ErrEigen), []string{"EigenSorted"}, true}
	}
	vals := eig.Values(nil) //gonum sorts these ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	for k := 0; k < 3; k++ {
		src := 2 - k
		evals[k] = vals[src]
		for i := 0; i < 3; i++ {
			evecs[k*3+i] = vecs.At(i, src)
		}
	}
	return evals, evecs, nil
}

//Errors

// Error is the v3 implementation of the gotraj error interface. It
// avoids importing the root package, which would be circular.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings
// of the error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics. It also satisfies the error
// interface, but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrEigen           = PanicMsg("gotraj/v3: can't obtain eigenvectors/eigenvalues of given matrix")
	ErrIndexOutOfRange = PanicMsg("gotraj/v3: index out of range")
)

// A convenience for error messages.
func (v Vec) String() string {
	return fmt.Sprintf("[%8.3f %8.3f %8.3f]", v[0], v[1], v[2])
}
