/*
 * rmsd_test.go, part of gotraj.
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
	"testing"

	v3 "github.com/rmera/gotraj/v3"
)

// an asymmetric 4-atom shape, so the fit is unique
func rmsdShape() *Frame {
	F := New(4)
	F.SetXYZ(0, v3.Vec{0, 0, 0})
	F.SetXYZ(1, v3.Vec{1.5, 0, 0})
	F.SetXYZ(2, v3.Vec{1.5, 1, 0})
	F.SetXYZ(3, v3.Vec{0.3, 0.5, 2})
	return F
}

func TestRMSDSelf(Te *testing.T) {
	F := rmsdShape()
	ref := rmsdShape()
	rms, err := F.RMSD(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-8 {
		Te.Errorf("self RMSD should be 0, got %v", rms)
	}
	F = rmsdShape()
	ref = rmsdShape()
	rms, err = F.RMSDNoFit(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-12 {
		Te.Errorf("self no-fit RMSD should be 0, got %v", rms)
	}
}

// A rigidly moved copy must fit back to zero, while the no-fit RMSD
// sees the displacement.
func TestRMSDRigidMotion(Te *testing.T) {
	F := rmsdShape()
	//rotate 90 degrees around z and translate
	for i := 0; i < F.Natoms(); i++ {
		p := F.XYZ(i)
		F.SetXYZ(i, v3.Vec{-p[1] + 5, p[0] - 3, p[2] + 1})
	}
	ref := rmsdShape()
	nofit, err := F.RMSDNoFit(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if nofit < 1 {
		Te.Errorf("no-fit RMSD should see the rigid motion, got %v", nofit)
	}
	rms, err := F.RMSD(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-8 {
		Te.Errorf("fitted RMSD of a rigid motion should be 0, got %v", rms)
	}
}

func TestFitRMSDTransform(Te *testing.T) {
	//two atoms on x: target shifted by +1, so the target's center
	//must be translated by (-0.5-1+0.5) = -1... checked via the
	//returned translations reproducing the fit
	F := New(2)
	F.SetXYZ(0, v3.Vec{1, 0, 0})
	F.SetXYZ(1, v3.Vec{2, 0, 0})
	ref := New(2)
	ref.SetXYZ(0, v3.Vec{0, 0, 0})
	ref.SetXYZ(1, v3.Vec{1, 0, 0})
	rms, _, trans, refTrans, err := F.FitRMSD(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-8 {
		Te.Errorf("RMSD should be 0, got %v", rms)
	}
	if trans != (v3.Vec{-1.5, 0, 0}) {
		Te.Errorf("wrong frame translation %v", trans)
	}
	if refTrans != (v3.Vec{0.5, 0, 0}) {
		Te.Errorf("wrong reference translation %v", refTrans)
	}
	//the frame was left at the origin by the fit
	g, _ := F.GeometricCenter(RangeMask(0, 2))
	if g.Norm() > 1e-12 {
		Te.Error("frame should end up centered at the origin")
	}
}

// Applying the rotation from the fit must actually superpose the
// frame onto the centered reference, atom by atom.
func TestFitRotateSuperposes(Te *testing.T) {
	F := rmsdShape()
	//rotate 90 degrees around z and translate
	for i := 0; i < F.Natoms(); i++ {
		p := F.XYZ(i)
		F.SetXYZ(i, v3.Vec{-p[1] + 5, p[0] - 3, p[2] + 1})
	}
	ref := rmsdShape()
	ref.CenterReference(false)
	rms, U, _, err := F.FitRMSDCenteredRef(ref, false)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-8 {
		Te.Errorf("fitted RMSD of a rigid motion should be 0, got %v", rms)
	}
	F.Rotate(&U)
	for i := 0; i < F.Natoms(); i++ {
		if d := F.XYZ(i).Sub(ref.XYZ(i)).Norm(); d > 1e-8 {
			Te.Errorf("atom %d off the reference by %v after the fit", i, d)
		}
	}
}

func TestRMSDMassWeighted(Te *testing.T) {
	F := rmsdShape()
	F.SetMasses([]float64{12, 1, 16, 1})
	ref := rmsdShape()
	ref.SetMasses([]float64{12, 1, 16, 1})
	ref.CenterReference(true)
	rms, err := F.RMSDCenteredRef(ref, true)
	if err != nil {
		Te.Fatal(err)
	}
	if rms > 1e-8 {
		Te.Errorf("mass-weighted self RMSD should be 0, got %v", rms)
	}
	G := rmsdShape() //no masses attached
	if _, err := G.RMSDCenteredRef(ref, true); err == nil {
		Te.Error("mass-weighting without masses should fail")
	}
}

func TestRMSDDegenerate(Te *testing.T) {
	F := New(2)
	F.SetMasses([]float64{0, 0})
	ref := New(2)
	rms, err := F.RMSDCenteredRef(ref, true)
	if err == nil {
		Te.Error("zero total weight should fail")
	}
	if rms != -1 {
		Te.Errorf("zero total weight should return -1, got %v", rms)
	}
	G := New(1)
	H := New(2)
	if _, err := G.RMSDNoFit(H, false); err == nil {
		Te.Error("mismatched atom counts should fail")
	}
	if _, _, _, _, err := G.FitRMSD(H, false); err == nil {
		Te.Error("mismatched atom counts should fail the fit too")
	}
}

func TestDistRMSD(Te *testing.T) {
	//three colinear atoms spaced 1 vs spaced 2: distance diffs are
	//1, 1 and 2, so DRMSD = sqrt((1+1+4)/3) = sqrt(2)
	F := New(3)
	F.SetXYZ(0, v3.Vec{0, 0, 0})
	F.SetXYZ(1, v3.Vec{1, 0, 0})
	F.SetXYZ(2, v3.Vec{2, 0, 0})
	ref := New(3)
	ref.SetXYZ(0, v3.Vec{0, 0, 0})
	ref.SetXYZ(1, v3.Vec{2, 0, 0})
	ref.SetXYZ(2, v3.Vec{4, 0, 0})
	drms, err := F.DistRMSD(ref)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(drms-math.Sqrt2) > 1e-12 {
		Te.Errorf("wrong DRMSD %v, want sqrt(2)", drms)
	}
	//it is invariant to rigid motion of either frame
	ref.Translate(v3.Vec{3, -2, 8})
	drms2, err := F.DistRMSD(ref)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(drms2-drms) > 1e-12 {
		Te.Error("DRMSD should be translation invariant")
	}
	one := New(1)
	if _, err := one.DistRMSD(one.Copy()); err == nil {
		Te.Error("DRMSD needs at least 2 atoms")
	}
}
