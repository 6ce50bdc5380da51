/*
 * atom.go, part of gotraj.
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

/**Note: some functions here panic instead of returning errors. They are
 * "fundamental" functions: if something goes wrong there, the program is
 * most likely wrong and should crash. The panics relate to calling the
 * function on a nil object or accessing out-of-bounds fields.**/

// Atom holds the static per-atom data supplied by a topology: what is
// not expected to change along a trajectory.
type Atom struct {
	Name    string
	Id      int
	Molname string
	Molid   int
	Chain   string
	Mass    float64
	Charge  float64
	Symbol  string
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("attempted to copy a nil atom")
	}
	at := *A
	return &at
}

// Topology contains the static information about a molecular system:
// everything except coordinates, velocities and box.
type Topology struct {
	Atoms []*Atom
}

// NewTopology returns a Topology over the given atoms. It returns an
// error if the slice is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, Error{"supplied a nil atom slice", []string{"NewTopology"}, true}
	}
	return &Topology{Atoms: ats}, nil
}

// Atom returns the Atom corresponding to the index i of the Atom
// slice in the Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("topology: requested atom out of bounds")
	}
	return T.Atoms[i]
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Masses returns a slice with the mass of each atom, in order, and an
// error if any mass has not been assigned.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		at := T.Atom(i)
		if at.Mass == 0 {
			return nil, Error{ZeroMassInTop, []string{"Masses"}, true}
		}
		mass[i] = at.Mass
	}
	return mass, nil
}

// SomeAtoms returns a Topology with the atoms whose indexes are given
// in mask, in mask order. Changes to the returned atoms affect the
// original topology.
func (T *Topology) SomeAtoms(mask Mask) (*Topology, error) {
	if mask.MaxIndex() >= T.Len() {
		return nil, Error{MaskOutOfRange, []string{"SomeAtoms"}, true}
	}
	ret := make([]*Atom, 0, mask.Nselected())
	for _, i := range mask {
		ret = append(ret, T.Atoms[i])
	}
	return &Topology{Atoms: ret}, nil
}
