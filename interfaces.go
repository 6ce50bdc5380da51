/*
 * interfaces.go, part of gotraj.
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

// Traj is the interface for any trajectory source able to fill Frames
// one timestep at a time.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next fills output with the coordinates (and box, if present in
	//the frame record) of the next frame, discarding it if output is
	//nil.
	Next(output *Frame) error

	//Returns the number of atoms per frame.
	Len() int
}

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Masser can return a slice with the masses of each atom in the
// reference.
type Masser interface {

	//Returns a slice with the masses of all atoms.
	Masses() ([]float64, error)
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Err
	FileName() string
	Format() string
}

// LastFrameError has a useless method to distinguish the harmless
// end-of-trajectory condition from other TrajErrors, so it can be
// filtered in a type switch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just separates this interface from other TrajErrors
}
