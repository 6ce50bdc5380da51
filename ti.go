/*
 * ti.go, part of gotraj.
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
	"math/rand"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// GaussWeights returns the abscissas and weights, on the [0,1]
// interval, of the nq-point Gaussian quadrature used for
// thermodynamic-integration free energies. Only the point counts
// traditionally tabulated for alchemical lambda schedules are
// supported: 1, 2, 3, 5, 7, 9 and 12.
func GaussWeights(nq int) (xval, wgt []float64, err error) {
	switch nq {
	case 1:
		xval = []float64{0.5}
		wgt = []float64{1.0}
	case 2:
		xval = []float64{0.21132, 0.78867}
		wgt = []float64{0.5, 0.5}
	case 3:
		xval = []float64{0.1127, 0.5, 0.88729}
		wgt = []float64{0.27777, 0.44444, 0.27777}
	case 5:
		xval = []float64{0.04691, 0.23076, 0.5, 0.76923, 0.95308}
		wgt = []float64{0.11846, 0.23931, 0.28444, 0.23931, 0.11846}
	case 7:
		xval = []float64{0.02544, 0.12923, 0.29707, 0.5, 0.70292, 0.87076, 0.97455}
		wgt = []float64{0.06474, 0.13985, 0.19091, 0.20897, 0.19091, 0.13985, 0.06474}
	case 9:
		xval = []float64{0.01592, 0.08198, 0.19331, 0.33787, 0.5,
			0.66213, 0.80669, 0.91802, 0.98408}
		wgt = []float64{0.04064, 0.09032, 0.13031, 0.15617, 0.16512,
			0.15617, 0.13031, 0.09032, 0.04064}
	case 12:
		xval = []float64{0.00922, 0.04794, 0.11505, 0.20634, 0.31608, 0.43738,
			0.56262, 0.68392, 0.79366, 0.88495, 0.95206, 0.99078}
		wgt = []float64{0.02359, 0.05347, 0.08004, 0.10158, 0.11675, 0.12457,
			0.12457, 0.11675, 0.10158, 0.08004, 0.05347, 0.02359}
	default:
		err = Error{"unsupported number of quadrature points", []string{"GaussWeights"}, false}
	}
	return xval, wgt, err
}

// TI integrates average dV/dlambda values over the alchemical
// coordinate to produce a free energy difference. With a supported
// quadrature point count the lambdas and weights come from
// GaussWeights; with arbitrary lambdas the curve is integrated with
// the trapezoid rule instead.
type TI struct {
	xval []float64
	wgt  []float64 //nil means trapezoid integration
}

// NewTIGauss returns a TI integrator over the nq-point Gaussian
// quadrature lambda schedule.
func NewTIGauss(nq int) (*TI, error) {
	xval, wgt, err := GaussWeights(nq)
	if err != nil {
		return nil, errDecorate(err, "NewTIGauss")
	}
	return &TI{xval: xval, wgt: wgt}, nil
}

// NewTITrapezoid returns a TI integrator over the given, strictly
// increasing lambda values, using the trapezoid rule.
func NewTITrapezoid(lambdas []float64) (*TI, error) {
	if len(lambdas) < 2 {
		return nil, Error{"need at least 2 lambda values", []string{"NewTITrapezoid"}, false}
	}
	for i := 1; i < len(lambdas); i++ {
		if lambdas[i] <= lambdas[i-1] {
			return nil, Error{"lambda values must be strictly increasing", []string{"NewTITrapezoid"}, false}
		}
	}
	x := make([]float64, len(lambdas))
	copy(x, lambdas)
	return &TI{xval: x}, nil
}

// Lambdas returns the integrator's lambda schedule.
func (ti *TI) Lambdas() []float64 {
	x := make([]float64, len(ti.xval))
	copy(x, ti.xval)
	return x
}

// Integrate returns the free energy difference from one average
// dV/dlambda value per lambda point, in schedule order.
func (ti *TI) Integrate(avgs []float64) (float64, error) {
	if len(avgs) != len(ti.xval) {
		return 0, Error{"one average per lambda point is needed", []string{"TI.Integrate"}, false}
	}
	if ti.wgt != nil {
		sum := 0.0
		for i, w := range ti.wgt {
			sum += w * avgs[i]
		}
		return sum, nil
	}
	return integrate.Trapezoidal(ti.xval, avgs), nil
}

// AvgSkip returns the average of data after discarding its first skip
// points, which is how convergence of a dV/dlambda time series is
// usually assessed. A negative skip counts as zero; skipping every
// point is an error.
func AvgSkip(data []float64, skip int) (float64, error) {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(data) {
		return 0, Error{"skipped all data points", []string{"AvgSkip"}, false}
	}
	return stat.Mean(data[skip:], nil), nil
}

// Bootstrap estimates the sampling error of the mean of data by
// resampling: nsamples resamples of npts points each are drawn with
// replacement, and the mean and standard deviation of the resample
// means are returned. npts < 1 defaults to 75% of the data size. The
// seed makes runs reproducible; pass a negative seed for an arbitrary
// one.
func Bootstrap(data []float64, npts, nsamples int, seed int64) (mean, sd float64, err error) {
	if len(data) == 0 || nsamples < 1 {
		return 0, 0, Error{"not enough data for bootstrap analysis", []string{"Bootstrap"}, false}
	}
	if npts < 1 {
		npts = int(0.75 * float64(len(data)))
		if npts < 1 {
			npts = 1
		}
	}
	var rng *rand.Rand
	if seed < 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	} else {
		rng = rand.New(rand.NewSource(seed))
	}
	means := make([]float64, nsamples)
	resample := make([]float64, npts)
	for s := 0; s < nsamples; s++ {
		for p := 0; p < npts; p++ {
			resample[p] = data[rng.Intn(len(data))]
		}
		means[s] = stat.Mean(resample, nil)
	}
	mean = stat.Mean(means, nil)
	sd = stat.StdDev(means, nil)
	return mean, sd, nil
}
