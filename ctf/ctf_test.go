/*
 * ctf_test.go, part of gotraj.
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

package ctf

import (
	"math"
	"path/filepath"
	"testing"

	traj "github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
)

func writeTestTraj(Te *testing.T, name string, nframes, natoms, nbox int) {
	w, err := NewWriter(name, natoms, nbox)
	if err != nil {
		Te.Fatal(err)
	}
	F := traj.New(natoms)
	for f := 0; f < nframes; f++ {
		for i := 0; i < natoms; i++ {
			F.SetXYZ(i, v3.Vec{float64(f), float64(i), 0.5})
		}
		if nbox > 0 {
			F.SetBox([6]float64{10, 10, 10, 90, 90, 90})
		}
		if err := w.WNext(F); err != nil {
			Te.Fatal(err)
		}
	}
	w.Close()
}

func readBack(Te *testing.T, name string, nframes, natoms, nbox int) {
	r, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	if r.Len() != natoms || r.NBox() != nbox {
		Te.Fatalf("header mismatch: %d atoms %d box", r.Len(), r.NBox())
	}
	F := traj.New(natoms)
	f := 0
	for ; ; f++ {
		err := r.Next(F)
		if err != nil {
			if _, ok := err.(traj.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		for i := 0; i < natoms; i++ {
			want := v3.Vec{float64(f), float64(i), 0.5}
			if F.XYZ(i).Sub(want).Norm() > 1e-6 {
				Te.Fatalf("frame %d atom %d: got %v want %v", f, i, F.XYZ(i), want)
			}
		}
		if nbox > 0 && math.Abs(F.Box()[0]-10) > 1e-6 {
			Te.Fatalf("frame %d: box lost, got %v", f, F.Box())
		}
	}
	if f != nframes {
		Te.Fatalf("read %d frames, want %d", f, nframes)
	}
	if r.Readable() {
		Te.Error("handle should be closed after the last frame")
	}
}

func TestRoundtrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"t.ctf", "t.ctf.gz", "t.ctf.raw", "t.zst"} {
		path := filepath.Join(dir, name)
		writeTestTraj(Te, path, 5, 7, 6)
		readBack(Te, path, 5, 7, 6)
	}
}

func TestRoundtripNoBox(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "nobox.ctf")
	writeTestTraj(Te, path, 3, 4, 0)
	readBack(Te, path, 3, 4, 0)
}

func TestSkipFrames(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "skip.ctf")
	writeTestTraj(Te, path, 4, 2, 0)
	r, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	//discard the first two frames with a nil output
	if err := r.Next(nil); err != nil {
		Te.Fatal(err)
	}
	if err := r.Next(nil); err != nil {
		Te.Fatal(err)
	}
	F := traj.New(2)
	if err := r.Next(F); err != nil {
		Te.Fatal(err)
	}
	if F.XYZ(0)[0] != 2 {
		Te.Errorf("expected frame 2 after two skips, got %v", F.XYZ(0))
	}
}

func TestWriterChecks(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "chk.ctf")
	w, err := NewWriter(path, 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if err := w.WNext(traj.New(5)); err == nil {
		Te.Error("wrong atom count should fail")
	}
	if err := w.WNext(nil); err == nil {
		Te.Error("nil frame should fail")
	}
	w.Close()
	if err := w.WNext(traj.New(3)); err == nil {
		Te.Error("writing after Close should fail")
	}
	if _, err := NewWriter(path, -1, 0); err == nil {
		Te.Error("negative atom count should fail")
	}
	if _, err := NewWriter(path, 1, 7); err == nil {
		Te.Error("more than 6 box scalars should fail")
	}
}
