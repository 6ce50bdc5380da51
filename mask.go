/*
 * mask.go, part of gotraj.
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

// Mask is an ordered selection of 0-based atom indexes, used to
// gather or scatter a subset of a Frame's data. Iteration (ranging
// over the slice) yields the indexes in slice order; callers are
// expected to supply ascending order unless they are deliberately
// reordering atoms.
type Mask []int

// Nselected returns the number of selected atoms.
func (M Mask) Nselected() int { return len(M) }

// MaxIndex returns the largest atom index in the mask, or -1 for an
// empty mask. Note that for a non-ascending mask this is not the last
// element.
func (M Mask) MaxIndex() int {
	max := -1
	for _, i := range M {
		if i > max {
			max = i
		}
	}
	return max
}

// RangeMask returns a mask selecting the half-open index range
// [lo,hi). An empty or inverted range yields an empty mask.
func RangeMask(lo, hi int) Mask {
	if hi <= lo {
		return Mask{}
	}
	m := make(Mask, 0, hi-lo)
	for i := lo; i < hi; i++ {
		m = append(m, i)
	}
	return m
}
