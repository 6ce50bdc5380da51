/*
 * analyses_test.go, part of gotraj.
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

func TestRadGyr(Te *testing.T) {
	//two atoms at +-1 on x: every atom is 1 away from the center
	F := New(2)
	F.SetXYZ(0, v3.Vec{1, 0, 0})
	F.SetXYZ(1, v3.Vec{-1, 0, 0})
	rg, max, err := RadGyr(F, RangeMask(0, 2), false)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(rg-1) > 1e-12 || math.Abs(max-1) > 1e-12 {
		Te.Errorf("rg %v max %v, want 1 1", rg, max)
	}
	//weighting moves the center toward the heavy atom
	F.SetMasses([]float64{3, 1})
	rg, _, err = RadGyr(F, RangeMask(0, 2), true)
	if err != nil {
		Te.Fatal(err)
	}
	//com at 0.5: sqrt((3*0.25 + 1*2.25)/4) = sqrt(0.75)
	if math.Abs(rg-math.Sqrt(0.75)) > 1e-12 {
		Te.Errorf("weighted rg %v, want %v", rg, math.Sqrt(0.75))
	}
	if _, _, err := RadGyr(F, Mask{}, false); err == nil {
		Te.Error("empty mask should fail")
	}
}

func TestFluct(Te *testing.T) {
	//one atom alternating between x=0 and x=2 over an even number of
	//frames: mean 1, <x^2> 2, variance 1
	L := NewFluct(1, 0, false)
	F := New(1)
	for i := 0; i < 10; i++ {
		F.SetXYZ(0, v3.Vec{float64((i % 2) * 2), 0, 0})
		if err := L.AddFrame(F); err != nil {
			Te.Fatal(err)
		}
	}
	vals, err := L.Final()
	if err != nil {
		Te.Fatal(err)
	}
	if len(vals) != 1 || math.Abs(vals[0]-1) > 1e-12 {
		Te.Errorf("fluctuation = %v, want 1", vals)
	}
	if L.Frames() != 10 {
		Te.Errorf("frame count %d, want 10", L.Frames())
	}
}

func TestFluctBFactorAndWindows(Te *testing.T) {
	//a static atom has zero fluctuation, B-factor included
	L := NewFluct(2, 2, true)
	F := New(2)
	F.SetXYZ(0, v3.Vec{1, 2, 3})
	for i := 0; i < 4; i++ {
		//atom 1 moves along y between -1 and 1: variance 1
		F.SetXYZ(1, v3.Vec{0, float64((i%2)*2 - 1), 0})
		if err := L.AddFrame(F); err != nil {
			Te.Fatal(err)
		}
	}
	wins := L.Results()
	if len(wins) != 2 {
		Te.Fatalf("got %d windows, want 2", len(wins))
	}
	bfac := (8.0 / 3.0) * math.Pi * math.Pi
	for w, win := range wins {
		if math.Abs(win[0]) > 1e-10 {
			Te.Errorf("window %d: static atom has fluctuation %v", w, win[0])
		}
		if math.Abs(win[1]-bfac) > 1e-10 {
			Te.Errorf("window %d: moving atom B-factor %v, want %v", w, win[1], bfac)
		}
	}
	G := New(3)
	if err := L.AddFrame(G); err == nil {
		Te.Error("wrong atom count should fail")
	}
}

func TestGaussWeights(Te *testing.T) {
	for _, nq := range []int{1, 2, 3, 5, 7, 9, 12} {
		x, w, err := GaussWeights(nq)
		if err != nil {
			Te.Fatal(err)
		}
		if len(x) != nq || len(w) != nq {
			Te.Fatalf("nq=%d: wrong table sizes", nq)
		}
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		//the tabulated weights are rounded to 5 decimals
		if math.Abs(sum-1) > 1e-3 {
			Te.Errorf("nq=%d: weights sum to %v", nq, sum)
		}
	}
	if _, _, err := GaussWeights(4); err == nil {
		Te.Error("nq=4 is not a tabulated schedule")
	}
}

func TestTIIntegrate(Te *testing.T) {
	//constant dV/dl integrates to itself on [0,1] either way
	ti, err := NewTIGauss(3)
	if err != nil {
		Te.Fatal(err)
	}
	da, err := ti.Integrate([]float64{2, 2, 2})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(da-2) > 1e-3 {
		Te.Errorf("quadrature of a constant gave %v", da)
	}
	tr, err := NewTITrapezoid([]float64{0, 0.25, 0.5, 0.75, 1})
	if err != nil {
		Te.Fatal(err)
	}
	//dV/dl = l integrates to 0.5
	da, err = tr.Integrate([]float64{0, 0.25, 0.5, 0.75, 1})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(da-0.5) > 1e-12 {
		Te.Errorf("trapezoid of identity gave %v", da)
	}
	if _, err := tr.Integrate([]float64{1, 2}); err == nil {
		Te.Error("wrong number of averages should fail")
	}
	if _, err := NewTITrapezoid([]float64{0, 0}); err == nil {
		Te.Error("non-increasing lambdas should fail")
	}
}

func TestAvgSkipAndBootstrap(Te *testing.T) {
	data := []float64{100, 100, 1, 1, 1, 1}
	avg, err := AvgSkip(data, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if avg != 1 {
		Te.Errorf("AvgSkip gave %v, want 1", avg)
	}
	if _, err := AvgSkip(data, 6); err == nil {
		Te.Error("skipping everything should fail")
	}
	//bootstrap of a constant series: mean is the constant, sd 0
	flat := []float64{7, 7, 7, 7, 7, 7, 7, 7}
	mean, sd, err := Bootstrap(flat, 0, 50, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if mean != 7 || sd != 0 {
		Te.Errorf("bootstrap of constant gave mean %v sd %v", mean, sd)
	}
	//same seed, same resamples
	m1, s1, _ := Bootstrap(data, 3, 20, 42)
	m2, s2, _ := Bootstrap(data, 3, 20, 42)
	if m1 != m2 || s1 != s2 {
		Te.Error("seeded bootstrap should be reproducible")
	}
	if _, _, err := Bootstrap(nil, 1, 1, 0); err == nil {
		Te.Error("empty data should fail")
	}
}
