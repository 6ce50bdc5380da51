/*
 * rmsd.go, part of gotraj.
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

func normalize3(v []float64) {
	b := 1.0 / math.Sqrt(v[0]*v[0]+v[1]*v[1]+v[2]*v[2])
	v[0] *= b
	v[1] *= b
	v[2] *= b
}

// RMSD returns the minimum mass-weighted (or plain, when useMass is
// false) RMSD between the frame and ref after optimal rigid-body
// superposition. Both frames are translated to the origin as a side
// effect; see FitRMSD for the recoverable transformation.
func (F *Frame) RMSD(ref *Frame, useMass bool) (float64, error) {
	rms, _, _, _, err := F.FitRMSD(ref, useMass)
	return rms, err
}

// FitRMSD superposes the frame onto ref and returns the best-fit
// RMSD together with the transformation that reproduces the fit: the
// translation of this frame to the origin, the rotation, and the
// translation from the origin onto ref's original center, applied in
// that order. ref is translated to the origin as a side effect. The
// frames must have the same number of atoms.
func (F *Frame) FitRMSD(ref *Frame, useMass bool) (rms float64, U v3.Mat, trans, refTrans v3.Vec, err error) {
	if F.natom != ref.natom {
		err = Error{NatomMismatch, []string{"FitRMSD"}, false}
		rms = -1
		return
	}
	if useMass {
		refTrans = ref.centerOfMassRange(0, F.natom)
	} else {
		refTrans = ref.geometricCenterRange(0, F.natom)
	}
	ref.NegTranslate(refTrans)
	rms, U, trans, err = F.FitRMSDCenteredRef(ref, useMass)
	return
}

// RMSDCenteredRef is like RMSD but assumes ref has already been
// translated to the origin (for instance by CenterReference), which
// saves re-centering it against every frame of a trajectory. The atom
// counts are not compared.
func (F *Frame) RMSDCenteredRef(ref *Frame, useMass bool) (float64, error) {
	rms, _, _, err := F.FitRMSDCenteredRef(ref, useMass)
	return rms, err
}

// FitRMSDCenteredRef computes the best-fit RMSD of the frame against
// an origin-centered ref via the Kabsch algorithm, returning the
// optimal rotation and the translation of this frame to the origin
// (the frame is left translated there). A vanishing total weight
// returns -1 with an error; a failed diagonalization returns 0 with a
// non-critical error, so the two degeneracies stay distinguishable.
func (F *Frame) FitRMSDCenteredRef(ref *Frame, useMass bool) (float64, v3.Mat, v3.Vec, error) {
	var U v3.Mat
	var trans v3.Vec
	var totalMass float64
	if useMass && F.mass == nil {
		return -1, U, trans, Error{NoMasses, []string{"FitRMSDCenteredRef"}, false}
	}
	//rotation will occur around the geometric center/center of mass
	if useMass {
		for i := 0; i < F.natom; i++ {
			m := F.mass[i]
			totalMass += m
			trans[0] += F.x[i*3] * m
			trans[1] += F.x[i*3+1] * m
			trans[2] += F.x[i*3+2] * m
		}
	} else {
		totalMass = float64(F.natom)
		for ix := 0; ix < F.ncoord; ix += 3 {
			trans[0] += F.x[ix]
			trans[1] += F.x[ix+1]
			trans[2] += F.x[ix+2]
		}
	}
	if totalMass < appzero {
		return -1, U, trans, Error{ZeroWeight, []string{"FitRMSDCenteredRef"}, false}
	}
	trans[0] /= totalMass
	trans[1] /= totalMass
	trans[2] /= totalMass
	//shift to common center
	trans.Neg()
	F.Translate(trans)

	//Kabsch: U = [(RtR)^.5][R^-1]
	mwss := 0.0
	var rot v3.Mat
	atomMass := 1.0
	midx := 0
	//covariance of coords and reference, R = Xt * Ref
	for i := 0; i < F.ncoord; i += 3 {
		xt := F.x[i]
		yt := F.x[i+1]
		zt := F.x[i+2]
		xr := ref.x[i]
		yr := ref.x[i+1]
		zr := ref.x[i+2]
		if useMass {
			atomMass = F.mass[midx]
			midx++
		}
		mwss += atomMass * ((xt * xt) + (yt * yt) + (zt * zt) + (xr * xr) + (yr * yr) + (zr * zr))
		rot[0] += atomMass * xt * xr
		rot[1] += atomMass * xt * yr
		rot[2] += atomMass * xt * zr

		rot[3] += atomMass * yt * xr
		rot[4] += atomMass * yt * yr
		rot[5] += atomMass * yt * zr

		rot[6] += atomMass * zt * xr
		rot[7] += atomMass * zt * yr
		rot[8] += atomMass * zt * zr
	}
	mwss *= 0.5 //E0 = 0.5*Sum(xn^2+yn^2)

	rtr := rot.TransposeMult(&rot)
	evalue, evector, err := rtr.EigenSorted()
	if err != nil {
		return 0, U, trans, Error{EigenFailed, []string{"FitRMSDCenteredRef"}, false}
	}
	//a3 = a1 x a2
	evector[6] = (evector[1] * evector[5]) - (evector[2] * evector[4])
	evector[7] = (evector[2] * evector[3]) - (evector[0] * evector[5])
	evector[8] = (evector[0] * evector[4]) - (evector[1] * evector[3])
	//b = R . ak
	var b [9]float64
	b[0] = evector[0]*rot[0] + evector[1]*rot[3] + evector[2]*rot[6]
	b[1] = evector[0]*rot[1] + evector[1]*rot[4] + evector[2]*rot[7]
	b[2] = evector[0]*rot[2] + evector[1]*rot[5] + evector[2]*rot[8]
	normalize3(b[0:3])
	b[3] = evector[3]*rot[0] + evector[4]*rot[3] + evector[5]*rot[6]
	b[4] = evector[3]*rot[1] + evector[4]*rot[4] + evector[5]*rot[7]
	b[5] = evector[3]*rot[2] + evector[4]*rot[5] + evector[5]*rot[8]
	normalize3(b[3:6])
	b[6] = evector[6]*rot[0] + evector[7]*rot[3] + evector[8]*rot[6]
	b[7] = evector[6]*rot[1] + evector[7]*rot[4] + evector[8]*rot[7]
	b[8] = evector[6]*rot[2] + evector[7]*rot[5] + evector[8]*rot[8]
	normalize3(b[6:9])
	//b3 = b1 x b2
	var cp [3]float64
	cp[0] = (b[1] * b[5]) - (b[2] * b[4])
	cp[1] = (b[2] * b[3]) - (b[0] * b[5])
	cp[2] = (b[0] * b[4]) - (b[1] * b[3])
	sig3 := 1.0
	if (cp[0]*b[6] + cp[1]*b[7] + cp[2]*b[8]) < 0.0 {
		sig3 = -1.0
	}
	b[6] = cp[0]
	b[7] = cp[1]
	b[8] = cp[2]
	//U holds the best rotation
	U[0] = (evector[0] * b[0]) + (evector[3] * b[3]) + (evector[6] * b[6])
	U[1] = (evector[1] * b[0]) + (evector[4] * b[3]) + (evector[7] * b[6])
	U[2] = (evector[2] * b[0]) + (evector[5] * b[3]) + (evector[8] * b[6])

	U[3] = (evector[0] * b[1]) + (evector[3] * b[4]) + (evector[6] * b[7])
	U[4] = (evector[1] * b[1]) + (evector[4] * b[4]) + (evector[7] * b[7])
	U[5] = (evector[2] * b[1]) + (evector[5] * b[4]) + (evector[8] * b[7])

	U[6] = (evector[0] * b[2]) + (evector[3] * b[5]) + (evector[6] * b[8])
	U[7] = (evector[1] * b[2]) + (evector[4] * b[5]) + (evector[7] * b[8])
	U[8] = (evector[2] * b[2]) + (evector[5] * b[5]) + (evector[8] * b[8])

	//E = E0 - sqrt(mu1) - sqrt(mu2) - sig3*sqrt(mu3)
	rms := mwss - math.Sqrt(math.Abs(evalue[0])) -
		math.Sqrt(math.Abs(evalue[1])) -
		(sig3 * math.Sqrt(math.Abs(evalue[2])))
	if rms < 0 {
		rms = 0.0
	} else {
		rms = math.Sqrt((2.0 * rms) / totalMass)
	}
	return rms, U, trans, nil
}

// RMSDNoFit returns the RMSD between the frame and ref in their
// current positions, without superposition. The frames must have the
// same number of atoms.
func (F *Frame) RMSDNoFit(ref *Frame, useMass bool) (float64, error) {
	if F.natom != ref.natom {
		return -1, Error{NatomMismatch, []string{"RMSDNoFit"}, false}
	}
	if useMass && F.mass == nil {
		return -1, Error{NoMasses, []string{"RMSDNoFit"}, false}
	}
	rms := 0.0
	totalMass := 0.0
	atomMass := 1.0
	midx := 0
	for i := 0; i < F.ncoord; i += 3 {
		xx := ref.x[i] - F.x[i]
		yy := ref.x[i+1] - F.x[i+1]
		zz := ref.x[i+2] - F.x[i+2]
		if useMass {
			atomMass = F.mass[midx]
			midx++
		}
		totalMass += atomMass
		rms += atomMass * (xx*xx + yy*yy + zz*zz)
	}
	if totalMass < appzero {
		return -1, Error{ZeroWeight, []string{"RMSDNoFit"}, false}
	}
	if rms < 0 {
		return 0, nil
	}
	return math.Sqrt(rms / totalMass), nil
}

// DistRMSD returns the distance RMSD between the frame and ref: the
// RMS difference over all intramolecular pairwise distances, which
// measures similarity without any superposition at all. Both frames
// must have the same number of atoms, and at least two.
func (F *Frame) DistRMSD(ref *Frame) (float64, error) {
	if F.natom != ref.natom {
		return -1, Error{NatomMismatch, []string{"DistRMSD"}, false}
	}
	if F.natom < 2 {
		return -1, Error{NotEnoughAtoms, []string{"DistRMSD"}, false}
	}
	ndistances := float64((F.natom*F.natom - F.natom) / 2)
	rms := 0.0
	a10 := 0
	for atom1 := 0; atom1 < F.natom-1; atom1++ {
		a20 := a10 + 3
		for atom2 := atom1 + 1; atom2 < F.natom; atom2++ {
			x := F.x[a10] - F.x[a20]
			y := F.x[a10+1] - F.x[a20+1]
			z := F.x[a10+2] - F.x[a20+2]
			tgtDist := math.Sqrt(x*x + y*y + z*z)
			x = ref.x[a10] - ref.x[a20]
			y = ref.x[a10+1] - ref.x[a20+1]
			z = ref.x[a10+2] - ref.x[a20+2]
			refDist := math.Sqrt(x*x + y*y + z*z)
			diff := tgtDist - refDist
			rms += diff * diff
			a20 += 3
		}
		a10 += 3
	}
	return math.Sqrt(rms / ndistances), nil
}
