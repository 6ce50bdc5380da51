/*
 * plot.go, part of gotraj.
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

// Package trajplot produces quick-look plots for trajectory
// analyses.
package trajplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// TimeSeries plots ys against xs as a line and saves the result to
// filename. The format is taken from the file name extension (png,
// pdf, svg and a few others are supported by the backend).
func TimeSeries(xs, ys []float64, title, xlabel, ylabel, filename string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("trajplot: x and y series differ in length: %d vs %d", len(xs), len(ys))
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("trajplot: %w", err)
	}
	p.Add(line)
	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("trajplot: %w", err)
	}
	return nil
}

// BFactors plots per-atom values (fluctuations or B-factors) against
// the atom index and saves the result to filename.
func BFactors(vals []float64, title, ylabel, filename string) error {
	xs := make([]float64, len(vals))
	for i := range xs {
		xs[i] = float64(i)
	}
	return TimeSeries(xs, vals, title, "Atom", ylabel, filename)
}
