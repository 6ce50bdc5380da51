/*
 * radgyr.go, part of gotraj.
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

import "math"

// RadGyr returns the radius of gyration of the masked atoms of F,
// mass-weighted when useMass is true, together with the largest
// single-atom contribution (the weighted distance of the atom
// farthest from the center). An empty mask or vanishing total weight
// is an error.
func RadGyr(F *Frame, mask Mask, useMass bool) (rg, max float64, err error) {
	if mask.Nselected() == 0 {
		return 0, 0, Error{NotEnoughAtoms, []string{"RadGyr"}, false}
	}
	if mask.MaxIndex() >= F.Natoms() {
		return 0, 0, Error{MaskOutOfRange, []string{"RadGyr"}, false}
	}
	if useMass && !F.HasMass() {
		return 0, 0, Error{NoMasses, []string{"RadGyr"}, false}
	}
	var mid [3]float64
	var merr error
	if useMass {
		c, e := F.CenterOfMass(mask)
		mid, merr = [3]float64(c), e
	} else {
		c, e := F.GeometricCenter(mask)
		mid, merr = [3]float64(c), e
	}
	if merr != nil {
		return 0, 0, errDecorate(merr, "RadGyr")
	}
	sumDist2 := 0.0
	maxDist2 := 0.0
	total := 0.0
	for _, at := range mask {
		w := 1.0
		if useMass {
			w = F.Mass(at)
		}
		total += w
		xyz := F.XYZ(at)
		dx := xyz[0] - mid[0]
		dy := xyz[1] - mid[1]
		dz := xyz[2] - mid[2]
		dist2 := w * (dx*dx + dy*dy + dz*dz)
		sumDist2 += dist2
		if dist2 > maxDist2 {
			maxDist2 = dist2
		}
	}
	if total < appzero {
		return 0, 0, Error{ZeroWeight, []string{"RadGyr"}, false}
	}
	return math.Sqrt(sumDist2 / total), math.Sqrt(maxDist2), nil
}
