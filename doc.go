/*
 * doc.go, part of gotraj.
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

//Package traj provides the coordinate-frame data structure used in
//molecular-dynamics trajectory analysis, together with the structural
//alignment machinery built on it: mask-based subsetting and remapping
//of per-atom data, Kabsch best-fit superposition with RMSD, distance
//RMSD, inertia tensors, and the frame-consuming analyses (radius of
//gyration, positional fluctuations/B-factors, thermodynamic
//integration).
//
//A Frame owns its coordinate, velocity and mass buffers exclusively;
//copies are always deep. Nothing in the core performs I/O or uses
//concurrency primitives; distinct Frame instances are safe to use
//from distinct goroutines.
package traj
