/*
 * cfg.go, part of gotraj.
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

// Package cfg reads the YAML configuration driving the gotraj
// command.
package cfg

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cfg is a structure containing the parameters specified in the
// configuration file. It can be instanced through the New function or
// by "hand". If it is instanced by hand, please use the Check method
// to verify that the Cfg meets the requirements.
type Cfg struct {
	// Traj is the ctf trajectory file to analyze.
	Traj string `yaml:"traj"`

	// Masses are the per-atom masses, in atom order. Leave empty for
	// unweighted analyses.
	Masses []float64 `yaml:"masses"`

	// Sel selects the half-open atom index range [Sel[0],Sel[1]) the
	// analyses run on. Both zero means every atom.
	Sel [2]int `yaml:"sel"`

	// UseMass mass-weights the RMSD, radius of gyration and centering
	// calculations. Requires Masses.
	UseMass bool `yaml:"useMass"`

	// RMSD enables the best-fit RMSD of each frame against the first.
	RMSD bool `yaml:"rmsd"`

	// NoFit also reports the RMSD without superposition.
	NoFit bool `yaml:"nofit"`

	// Radgyr enables the radius of gyration of each frame.
	Radgyr bool `yaml:"radgyr"`

	// Fluct enables per-atom positional fluctuations.
	Fluct bool `yaml:"fluct"`

	// FluctWindow takes fluctuation snapshots every this many frames.
	// Zero disables windowing.
	FluctWindow int `yaml:"fluctWindow"`

	// BFactor reports fluctuations as B-factors.
	BFactor bool `yaml:"bfactor"`

	// Out is the prefix for the output data files.
	Out string `yaml:"out"`

	// Plot writes a PNG plot next to each output data file.
	Plot bool `yaml:"plot"`
}

// New opens and decodes the specified configuration file. The file
// must be a YAML file. This function automatically calls the Check
// method to verify the integrity of the Cfg.
func New(path string) (*Cfg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Cfg
	r := bufio.NewReader(f)
	dec := yaml.NewDecoder(r)
	err = dec.Decode(&c)
	if err != nil {
		return nil, err
	}

	err = c.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}

	return &c, nil
}

// Check returns an error if a field doesn't meet the requirements.
func (c *Cfg) Check() error {
	if c.Traj == "" {
		return fmt.Errorf("Traj must be specified")
	}

	if c.Sel[0] < 0 || c.Sel[1] < c.Sel[0] {
		return fmt.Errorf("Sel must be a valid index range")
	}

	if c.UseMass && len(c.Masses) == 0 {
		return fmt.Errorf("UseMass requires Masses")
	}

	if c.FluctWindow < 0 {
		return fmt.Errorf("FluctWindow cannot be lower than 0")
	}

	if !c.RMSD && !c.NoFit && !c.Radgyr && !c.Fluct {
		return fmt.Errorf("at least one analysis must be enabled")
	}

	if c.Out == "" {
		c.Out = "gotraj"
	}

	return nil
}
