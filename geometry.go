/*
 * geometry.go, part of gotraj.
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

package traj

import (
	"math"

	v3 "github.com/rmera/gotraj/v3"
)

const degrad = math.Pi / 180.0

// centerOfMassRange returns the mass-weighted centroid of the atoms
// in [lo,hi). Falls back to the geometric center when the frame
// carries no masses or the total mass vanishes.
func (F *Frame) centerOfMassRange(lo, hi int) v3.Vec {
	if F.mass == nil {
		return F.geometricCenterRange(lo, hi)
	}
	var c v3.Vec
	sum := 0.0
	for i := lo; i < hi; i++ {
		m := F.mass[i]
		xidx := i * 3
		c[0] += F.x[xidx] * m
		c[1] += F.x[xidx+1] * m
		c[2] += F.x[xidx+2] * m
		sum += m
	}
	if sum < appzero {
		return F.geometricCenterRange(lo, hi)
	}
	return c.Scale(1.0 / sum)
}

func (F *Frame) geometricCenterRange(lo, hi int) v3.Vec {
	var c v3.Vec
	n := hi - lo
	if n <= 0 {
		return c
	}
	for i := lo; i < hi; i++ {
		xidx := i * 3
		c[0] += F.x[xidx]
		c[1] += F.x[xidx+1]
		c[2] += F.x[xidx+2]
	}
	return c.Scale(1.0 / float64(n))
}

// CenterOfMass returns the mass-weighted centroid of the masked
// atoms. Without mass information (or with vanishing total mass) it
// degrades to the geometric center.
func (F *Frame) CenterOfMass(mask Mask) (v3.Vec, error) {
	if mask.MaxIndex() >= F.natom {
		return v3.Vec{}, Error{MaskOutOfRange, []string{"CenterOfMass"}, false}
	}
	if F.mass == nil {
		return F.GeometricCenter(mask)
	}
	var c v3.Vec
	sum := 0.0
	for _, at := range mask {
		m := F.mass[at]
		xidx := at * 3
		c[0] += F.x[xidx] * m
		c[1] += F.x[xidx+1] * m
		c[2] += F.x[xidx+2] * m
		sum += m
	}
	if sum < appzero {
		return F.GeometricCenter(mask)
	}
	return c.Scale(1.0 / sum), nil
}

// GeometricCenter returns the unweighted centroid of the masked
// atoms, or the zero vector for an empty mask.
func (F *Frame) GeometricCenter(mask Mask) (v3.Vec, error) {
	if mask.MaxIndex() >= F.natom {
		return v3.Vec{}, Error{MaskOutOfRange, []string{"GeometricCenter"}, false}
	}
	var c v3.Vec
	if mask.Nselected() == 0 {
		return c, nil
	}
	for _, at := range mask {
		xidx := at * 3
		c[0] += F.x[xidx]
		c[1] += F.x[xidx+1]
		c[2] += F.x[xidx+2]
	}
	return c.Scale(1.0 / float64(mask.Nselected())), nil
}

// Translate displaces every atom of the frame by t.
func (F *Frame) Translate(t v3.Vec) {
	for i := 0; i < F.ncoord; i += 3 {
		F.x[i] += t[0]
		F.x[i+1] += t[1]
		F.x[i+2] += t[2]
	}
}

// NegTranslate displaces every atom of the frame by -t.
func (F *Frame) NegTranslate(t v3.Vec) {
	for i := 0; i < F.ncoord; i += 3 {
		F.x[i] -= t[0]
		F.x[i+1] -= t[1]
		F.x[i+2] -= t[2]
	}
}

// Rotate applies the rotation matrix U to every atom of the frame, in
// place. Applying the matrix returned by FitRMSD to the (by then
// origin-centered) frame superposes it onto the reference.
func (F *Frame) Rotate(U *v3.Mat) {
	for i := 0; i < F.ncoord; i += 3 {
		x := F.x[i]
		y := F.x[i+1]
		z := F.x[i+2]
		F.x[i] = x*U[0] + y*U[1] + z*U[2]
		F.x[i+1] = x*U[3] + y*U[4] + z*U[5]
		F.x[i+2] = x*U[6] + y*U[7] + z*U[8]
	}
}

// Center translates the whole frame so that the center (mass-weighted
// when useMass is true) of the masked atoms lands on the coordinate
// origin, or, when origin is false, on the box center (half of each
// box length).
func (F *Frame) Center(mask Mask, origin, useMass bool) error {
	var c v3.Vec
	var err error
	if useMass {
		c, err = F.CenterOfMass(mask)
	} else {
		c, err = F.GeometricCenter(mask)
	}
	if err != nil {
		return errDecorate(err, "Center")
	}
	if !origin {
		c[0] = F.box[0]/2.0 - c[0]
		c[1] = F.box[1]/2.0 - c[1]
		c[2] = F.box[2]/2.0 - c[2]
		F.Translate(c)
		return nil
	}
	F.NegTranslate(c)
	return nil
}

// CenterReference translates the whole frame so its overall center
// (mass-weighted when useMass is true) lands on the origin, and
// returns the translation that undoes the move. This prepares a
// reference structure for repeated superposition against it.
func (F *Frame) CenterReference(useMass bool) v3.Vec {
	var c v3.Vec
	if useMass {
		c = F.centerOfMassRange(0, F.natom)
	} else {
		c = F.geometricCenterRange(0, F.natom)
	}
	F.NegTranslate(c)
	return c
}

// ShiftToGeometricCenter translates the whole frame so its geometric
// center lands on the origin.
func (F *Frame) ShiftToGeometricCenter() {
	c := F.geometricCenterRange(0, F.natom)
	F.NegTranslate(c)
}

// SetAxisOfRotation translates the frame so atom a1 sits at the
// origin and returns the unit vector from there to atom a2. The
// returned axis and the new origin define the rotation axis through
// the two atoms.
func (F *Frame) SetAxisOfRotation(a1, a2 int) (v3.Vec, error) {
	if a1 < 0 || a1 >= F.natom || a2 < 0 || a2 >= F.natom {
		return v3.Vec{}, Error{MaskOutOfRange, []string{"SetAxisOfRotation"}, false}
	}
	p1 := F.XYZ(a1)
	axis := F.XYZ(a2).Sub(p1)
	F.NegTranslate(p1)
	axis.Normalize()
	return axis, nil
}

// CalculateInertia computes the inertia tensor of the masked atoms
// about their center of mass, plus that center. The frame must carry
// mass information.
func (F *Frame) CalculateInertia(mask Mask) (v3.Mat, v3.Vec, error) {
	var inertia v3.Mat
	if F.mass == nil {
		return inertia, v3.Vec{}, Error{NoMasses, []string{"CalculateInertia"}, false}
	}
	cxyz, err := F.CenterOfMass(mask)
	if err != nil {
		return inertia, v3.Vec{}, errDecorate(err, "CalculateInertia")
	}
	var ivec [6]float64 //xx, yy, zz, xy, xz, yz
	for _, at := range mask {
		xidx := at * 3
		m := F.mass[at]
		cx := F.x[xidx] - cxyz[0]
		cy := F.x[xidx+1] - cxyz[1]
		cz := F.x[xidx+2] - cxyz[2]
		ivec[0] += m * (cy*cy + cz*cz)
		ivec[1] += m * (cx*cx + cz*cz)
		ivec[2] += m * (cx*cx + cy*cy)
		ivec[3] -= m * cx * cy
		ivec[4] -= m * cx * cz
		ivec[5] -= m * cy * cz
	}
	inertia[0] = ivec[0]
	inertia[1] = ivec[3]
	inertia[2] = ivec[4]
	inertia[3] = ivec[3]
	inertia[4] = ivec[1]
	inertia[5] = ivec[5]
	inertia[6] = ivec[4]
	inertia[7] = ivec[5]
	inertia[8] = ivec[2]
	return inertia, cxyz, nil
}

// BoxToRecip builds the unit cell matrix from the frame's box
// lengths and angles and returns it together with the reciprocal
// (inverse) cell matrix and the cell volume. Rows of ucell are the
// a, b and c cell vectors.
func (F *Frame) BoxToRecip() (ucell, recip v3.Mat, volume float64) {
	ucell[0] = F.box[0]
	ucell[1] = 0.0
	ucell[2] = 0.0
	ucell[3] = F.box[1] * math.Cos(degrad*F.box[5])
	ucell[4] = F.box[1] * math.Sin(degrad*F.box[5])
	ucell[5] = 0.0
	ucell[6] = F.box[2] * math.Cos(degrad*F.box[4])
	ucell[7] = (F.box[1]*F.box[2]*math.Cos(degrad*F.box[3]) - ucell[6]*ucell[3]) / ucell[4]
	ucell[8] = math.Sqrt(F.box[2]*F.box[2] - ucell[6]*ucell[6] - ucell[7]*ucell[7])

	//cross products of the cell vectors give the reciprocal rows
	u23x := ucell[4]*ucell[8] - ucell[5]*ucell[7]
	u23y := ucell[5]*ucell[6] - ucell[3]*ucell[8]
	u23z := ucell[3]*ucell[7] - ucell[4]*ucell[6]
	u31x := ucell[7]*ucell[2] - ucell[8]*ucell[1]
	u31y := ucell[8]*ucell[0] - ucell[6]*ucell[2]
	u31z := ucell[6]*ucell[1] - ucell[7]*ucell[0]
	u12x := ucell[1]*ucell[5] - ucell[2]*ucell[4]
	u12y := ucell[2]*ucell[3] - ucell[0]*ucell[5]
	u12z := ucell[0]*ucell[4] - ucell[1]*ucell[3]
	volume = ucell[0]*u23x + ucell[1]*u23y + ucell[2]*u23z

	recip[0] = u23x / volume
	recip[1] = u23y / volume
	recip[2] = u23z / volume
	recip[3] = u31x / volume
	recip[4] = u31y / volume
	recip[5] = u31z / volume
	recip[6] = u12x / volume
	recip[7] = u12y / volume
	recip[8] = u12z / volume
	return ucell, recip, volume
}
