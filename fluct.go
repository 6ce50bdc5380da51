/*
 * fluct.go, part of gotraj.
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

// Fluct accumulates per-atom positional fluctuations over the frames
// of a trajectory, optionally reporting them as crystallographic
// B-factors. With a window size w > 0, a snapshot of the running
// fluctuations is taken every w frames, so the progression of the
// mobility over the trajectory can be followed; the sums themselves
// are cumulative and never reset.
type Fluct struct {
	sum     *Frame
	sum2    *Frame
	prod    *Frame //scratch for the squared coordinates
	n       int
	window  int
	wcount  int
	bfactor bool
	windows [][]float64
}

// NewFluct returns a fluctuation accumulator for frames of natoms
// atoms. window <= 0 disables windowed snapshots. When bfactor is
// true results are reported as B-factors, (8/3)*pi^2 times the
// squared fluctuation, instead of plain squared fluctuations.
func NewFluct(natoms, window int, bfactor bool) *Fluct {
	L := &Fluct{
		sum:     New(natoms),
		sum2:    New(natoms),
		prod:    New(natoms),
		window:  window,
		bfactor: bfactor,
	}
	return L
}

// AddFrame accumulates one frame. The frame's atom count must match
// the accumulator's.
func (L *Fluct) AddFrame(f *Frame) error {
	if f.Natoms() != L.sum.Natoms() {
		return Error{NatomMismatch, []string{"Fluct.AddFrame"}, false}
	}
	if err := L.sum.Add(f); err != nil {
		return errDecorate(err, "Fluct.AddFrame")
	}
	if err := L.prod.SetCoordinates(f); err != nil {
		return errDecorate(err, "Fluct.AddFrame")
	}
	if err := L.prod.Mul(f); err != nil {
		return errDecorate(err, "Fluct.AddFrame")
	}
	if err := L.sum2.Add(L.prod); err != nil {
		return errDecorate(err, "Fluct.AddFrame")
	}
	L.n++
	L.wcount++
	if L.window > 0 && L.wcount == L.window {
		L.windows = append(L.windows, L.calc())
		L.wcount = 0
	}
	return nil
}

// calc returns the current per-atom fluctuations from the running
// sums, without disturbing them.
func (L *Fluct) calc() []float64 {
	n := float64(L.n)
	avg := L.sum.Copy()
	avg2 := L.sum2.Copy()
	//the guards can't trip: n >= 1 whenever calc is reached
	avg.Divide(n)
	avg2.Divide(n)
	//var = <r^2> - <r>^2
	avg.Mul(avg)
	avg2.Sub(avg)
	natoms := avg2.Natoms()
	out := make([]float64, natoms)
	bfac := (8.0 / 3.0) * math.Pi * math.Pi
	for i := 0; i < natoms; i++ {
		xyz := avg2.XYZ(i)
		fluct := xyz[0] + xyz[1] + xyz[2]
		if fluct < 0 {
			fluct = 0
		}
		if L.bfactor {
			out[i] = fluct * bfac
		} else {
			out[i] = fluct
		}
	}
	return out
}

// Frames returns how many frames have been accumulated.
func (L *Fluct) Frames() int { return L.n }

// Results returns the windowed snapshots taken so far, one slice of
// per-atom values per completed window. Nil when windowing is off or
// no window has completed.
func (L *Fluct) Results() [][]float64 { return L.windows }

// Final returns the per-atom fluctuations over every accumulated
// frame. An accumulator that has seen no frames returns an error.
func (L *Fluct) Final() ([]float64, error) {
	if L.n == 0 {
		return nil, Error{NotEnoughAtoms, []string{"Fluct.Final"}, false}
	}
	return L.calc(), nil
}
