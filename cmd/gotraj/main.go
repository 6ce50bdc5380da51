/*
 * main.go, part of gotraj.
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

// The gotraj command runs RMSD, radius of gyration and fluctuation
// analyses over a ctf trajectory, driven by a YAML configuration
// file.
package main

import (
	"fmt"
	"log"
	"os"

	traj "github.com/rmera/gotraj"
	"github.com/rmera/gotraj/cfg"
	"github.com/rmera/gotraj/ctf"
	"github.com/rmera/gotraj/trajplot"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("The path of the configuration file must be specified in the arguments")
	}

	log.Printf("Reading configuration file `%s`\n", os.Args[1])
	c, err := cfg.New(os.Args[1])
	if err != nil {
		log.Fatal(fmt.Errorf("cfg.New: %w", err))
	}

	log.Printf("Opening trajectory `%s`\n", c.Traj)
	r, err := ctf.New(c.Traj)
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()
	natoms := r.Len()

	mask := traj.RangeMask(0, natoms)
	if c.Sel != [2]int{0, 0} {
		if c.Sel[1] > natoms {
			log.Fatalf("Sel range %v exceeds the trajectory's %d atoms", c.Sel, natoms)
		}
		mask = traj.RangeMask(c.Sel[0], c.Sel[1])
	}
	log.Printf("Analyzing %d of %d atoms\n", mask.Nselected(), natoms)

	full := traj.New(natoms)
	if len(c.Masses) > 0 {
		if err := full.SetMasses(c.Masses); err != nil {
			log.Fatalf("Masses: expected %d values, got %d", natoms, len(c.Masses))
		}
	}

	//the first frame is the reference for every fitted analysis
	if err := r.Next(full); err != nil {
		log.Fatal(err)
	}
	ref, err := traj.NewFromMask(full, mask)
	if err != nil {
		log.Fatal(err)
	}
	first := ref.Copy() //unmoved, for the no-fit RMSD
	ref.CenterReference(c.UseMass)

	sub := ref.Copy() //working frame for each trajectory frame
	var fluct *traj.Fluct
	if c.Fluct {
		fluct = traj.NewFluct(mask.Nselected(), c.FluctWindow, c.BFactor)
	}

	var frames []float64
	var rmsds, nofits, rgs, rgmaxs []float64
	nframe := 0
	for {
		err := r.Next(full)
		if _, ok := err.(traj.LastFrameError); ok {
			break
		}
		if err != nil {
			log.Fatal(err)
		}
		if err := sub.SetFrameMask(full, mask); err != nil {
			log.Fatal(err)
		}
		nframe++
		frames = append(frames, float64(nframe))
		if c.Radgyr {
			rg, max, err := traj.RadGyr(sub, traj.RangeMask(0, sub.Natoms()), c.UseMass)
			if err != nil {
				log.Fatal(err)
			}
			rgs = append(rgs, rg)
			rgmaxs = append(rgmaxs, max)
		}
		if c.NoFit {
			rms, err := sub.RMSDNoFit(first, c.UseMass)
			if err != nil {
				log.Fatal(err)
			}
			nofits = append(nofits, rms)
		}
		if c.RMSD {
			rms, U, _, err := sub.FitRMSDCenteredRef(ref, c.UseMass)
			if err != nil {
				log.Fatal(err)
			}
			rmsds = append(rmsds, rms)
			//superpose sub onto the reference so the fluctuations
			//below exclude global translation and rotation
			sub.Rotate(&U)
		}
		if c.Fluct {
			if err := fluct.AddFrame(sub); err != nil {
				log.Fatal(err)
			}
		}
	}
	log.Printf("Processed %d frames\n", nframe)
	if nframe == 0 {
		log.Fatal("Trajectory contains no frames beyond the reference")
	}

	if c.RMSD || c.NoFit {
		cols := [][]float64{}
		header := "#frame"
		if c.RMSD {
			cols = append(cols, rmsds)
			header += " rmsd"
		}
		if c.NoFit {
			cols = append(cols, nofits)
			header += " nofit"
		}
		name := c.Out + "_rmsd.dat"
		if err := writeData(name, header, frames, cols...); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", name)
		if c.Plot && c.RMSD {
			plotOrWarn(trajplot.TimeSeries(frames, rmsds, "Best-fit RMSD", "Frame", "RMSD", c.Out+"_rmsd.png"))
		}
	}
	if c.Radgyr {
		name := c.Out + "_radgyr.dat"
		if err := writeData(name, "#frame rg rgmax", frames, rgs, rgmaxs); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", name)
		if c.Plot {
			plotOrWarn(trajplot.TimeSeries(frames, rgs, "Radius of gyration", "Frame", "Rg", c.Out+"_radgyr.png"))
		}
	}
	if c.Fluct {
		vals, err := fluct.Final()
		if err != nil {
			log.Fatal(err)
		}
		ylabel := "Fluctuation"
		if c.BFactor {
			ylabel = "B-factor"
		}
		name := c.Out + "_fluct.dat"
		atoms := make([]float64, len(vals))
		for i := range atoms {
			atoms[i] = float64(i)
		}
		if err := writeData(name, "#atom "+ylabel, atoms, vals); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s\n", name)
		for w, win := range fluct.Results() {
			wname := fmt.Sprintf("%s_fluct_win%02d.dat", c.Out, w+1)
			if err := writeData(wname, "#atom "+ylabel, atoms, win); err != nil {
				log.Fatal(err)
			}
			log.Printf("Wrote %s\n", wname)
		}
		if c.Plot {
			plotOrWarn(trajplot.BFactors(vals, "Atomic fluctuations", ylabel, c.Out+"_fluct.png"))
		}
	}
	log.Println("Done")
}

// writeData writes x and the given columns as whitespace-separated
// text, one row per x value, with a comment header.
func writeData(name, header string, x []float64, cols ...[]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, header); err != nil {
		return err
	}
	for i := range x {
		if _, err := fmt.Fprintf(f, "%g", x[i]); err != nil {
			return err
		}
		for _, col := range cols {
			if _, err := fmt.Fprintf(f, " %g", col[i]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(f); err != nil {
			return err
		}
	}
	return nil
}

func plotOrWarn(err error) {
	if err != nil {
		log.Printf("Warning: %v", err)
	}
}
