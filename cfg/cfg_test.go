/*
 * cfg_test.go, part of gotraj.
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

package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

const goodCfg = `traj: md.ctf
masses: [12.011, 1.008, 1.008]
sel: [0, 3]
useMass: true
rmsd: true
radgyr: true
fluct: true
fluctWindow: 100
bfactor: true
out: run1
plot: true
`

func TestNew(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte(goodCfg), 0644); err != nil {
		Te.Fatal(err)
	}
	c, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Traj != "md.ctf" || !c.UseMass || !c.RMSD || !c.Fluct {
		Te.Error("fields not decoded correctly")
	}
	if len(c.Masses) != 3 || c.Masses[0] != 12.011 {
		Te.Error("masses not decoded correctly")
	}
	if c.Sel != [2]int{0, 3} || c.FluctWindow != 100 || c.Out != "run1" {
		Te.Error("numeric fields not decoded correctly")
	}
}

func TestCheck(Te *testing.T) {
	c := &Cfg{Traj: "a.ctf", RMSD: true}
	if err := c.Check(); err != nil {
		Te.Fatal(err)
	}
	if c.Out == "" {
		Te.Error("Check should fill the default output prefix")
	}
	bad := []*Cfg{
		{RMSD: true},                                   //no trajectory
		{Traj: "a.ctf"},                                //no analysis
		{Traj: "a.ctf", RMSD: true, Sel: [2]int{3, 1}}, //inverted range
		{Traj: "a.ctf", RMSD: true, UseMass: true},     //weighting without masses
		{Traj: "a.ctf", Fluct: true, FluctWindow: -1},  //negative window
	}
	for i, c := range bad {
		if err := c.Check(); err == nil {
			Te.Errorf("case %d should have failed Check", i)
		}
	}
}

func TestNewMissing(Te *testing.T) {
	if _, err := New(filepath.Join(Te.TempDir(), "nope.yaml")); err == nil {
		Te.Error("missing file should fail")
	}
}
