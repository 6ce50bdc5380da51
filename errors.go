/*
 * errors.go, part of gotraj.
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

import "fmt"

// Err is the interface for errors that all packages in this library
// implement. The Decorate method allows adding and retrieving
// information from the error without changing its type or wrapping it
// around something else: each element of the decoration slice should
// be a function in the calling stack, optionally followed by relevant
// extra information ("FunctionName: extra info").
type Err interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the root-package implementation of Err. Precondition
// violations and numerical degeneracies are reported through values
// of this type; the failing operation leaves its receiver unmodified.
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
// of the error and return the resulting slice. An empty dec only
// returns the current decoration.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

// errDecorate asserts that err implements Err and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Err)
	if !ok {
		return fmt.Errorf("%s: %w", caller, err)
	}
	err2.Decorate(caller)
	return err2
}

// Recurring error messages.
const (
	NatomMismatch     = "frames have a different number of atoms"
	MaskTooLarge      = "mask selects more atoms than the frame's capacity"
	MaskOutOfRange    = "mask references an atom index out of range"
	MapSizeMismatch   = "atom map size does not match the input frame's atom count"
	MapOutOfRange     = "atom map references an atom index out of range"
	NilCoordinates    = "given nil coordinates"
	NoMasses          = "frame carries no mass information"
	DivByZero         = "detected divide by (near) zero"
	ZeroWeight        = "total weight is (near) zero"
	NotEnoughAtoms    = "not enough atoms for this operation"
	CRDTooLarge       = "float array holds more coordinates than the frame's capacity"
	MalformedCRD      = "float array length is inconsistent with its box value count"
	EigenFailed       = "eigendecomposition failed"
	ZeroMassInTop     = "not all masses in the topology have been assigned"
	NegativeAtomCount = "negative atom count"
)
