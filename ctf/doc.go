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

// Package ctf implements the compressed trajectory format, a simple
// single-precision binary format for Cartesian MD trajectories. Each
// frame is a flat little-endian float32 record of natoms*3
// coordinates optionally followed by up to 6 box scalars, with the
// whole stream run through a general-purpose compressor chosen from
// the file name suffix: zstd by default and for ".zst"/".zstd" files,
// gzip for ".gz" and raw DEFLATE for ".raw".
package ctf
