/*
 * ctf.go, part of gotraj.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	traj "github.com/rmera/gotraj"
)

//zstd.Decoder has a Close without an error return, so it doesn't
//implement io.ReadCloser on its own.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (s zstdql) Close() error {
	s.closeql()
	return nil
}

func newCompressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case strings.HasSuffix(name, ".raw"):
		return flate.NewWriter(w, flate.BestCompression)
	default: //".ctf", ".zst", ".zstd" and anything else
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func newDecompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(name, ".raw"):
		return flate.NewReader(r), nil
	default:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdql{zr.Close, zr}, nil
	}
}

//Write!

// Writer writes frames to a ctf trajectory. Every frame must have
// the same number of atoms.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	nbox      int
	filename  string
	writeable bool
}

// NewWriter creates a ctf trajectory file for frames of natoms
// atoms, each carrying nbox box scalars (0 to 6). The compressor is
// picked from the file name suffix.
func NewWriter(name string, natoms, nbox int) (*Writer, error) {
	if natoms < 0 || nbox < 0 || nbox > 6 {
		return nil, Error{WrongFormat, name, []string{"NewWriter"}, true}
	}
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.h, err = newCompressor(name, W.f)
	if err != nil {
		W.f.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	W.natoms = natoms
	W.nbox = nbox
	W.filename = name
	W.writeable = true
	_, err = fmt.Fprintf(W.h, "** %d %d\n", natoms, nbox)
	if err != nil {
		W.Close()
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	return W, nil
}

// WNext writes the next frame of the trajectory. The frame's box is
// written only when the trajectory was created with box scalars.
func (W *Writer) WNext(F *traj.Frame) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if F == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	if F.Natoms() != W.natoms {
		return Error{fmt.Sprintf("%d atoms given, but %d expected", F.Natoms(), W.natoms), W.filename, []string{"WNext"}, true}
	}
	crd := F.ConvertToCRD(W.nbox)
	if err := binary.Write(W.h, binary.LittleEndian, crd); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

// Len returns the number of atoms per frame.
func (W *Writer) Len() int { return W.natoms }

// Close flushes the compressor and closes the file. The Writer can
// not be used after this call.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

//Read!

// Reader reads frames from a ctf trajectory. It implements
// traj.Traj.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	natoms   int
	nbox     int
	filename string
	readable bool
	record   []float32 //one frame's worth, reused across calls
}

// New opens a ctf trajectory for reading. The atom count and number
// of box scalars per frame come from the file's header.
func New(name string) (*Reader, error) {
	R := new(Reader)
	R.natoms = -1
	R.filename = name
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	R.z, err = newDecompressor(name, bufio.NewReader(R.f))
	if err != nil {
		R.f.Close()
		return nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
	}
	R.h = bufio.NewReader(R.z)
	str, err := R.h.ReadString('\n')
	if err != nil {
		return nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
	}
	var mark string
	if _, err = fmt.Sscanf(str, "%s %d %d", &mark, &R.natoms, &R.nbox); err != nil || mark != "**" {
		return nil, Error{WrongFormat + ": bad header line: " + str, name, []string{"New"}, true}
	}
	if R.natoms < 0 || R.nbox < 0 || R.nbox > 6 {
		return nil, Error{WrongFormat + ": bad header counts", name, []string{"New"}, true}
	}
	R.record = make([]float32, R.natoms*3+R.nbox)
	R.readable = true
	return R, nil
}

// Readable returns true if it is possible to call Next on the handle.
func (R *Reader) Readable() bool { return R.readable }

// Next puts the coordinates (and box, if present) for the next frame
// of the trajectory in F, which must have capacity for the
// trajectory's atoms. A nil F discards the frame. At the normal end
// of the trajectory the returned error implements
// traj.LastFrameError and is not an actual failure.
func (R *Reader) Next(F *traj.Frame) error {
	if !R.readable {
		return Error{TrajUnIniRead, R.filename, []string{"Next"}, true}
	}
	err := binary.Read(R.h, binary.LittleEndian, R.record)
	if err == io.EOF {
		R.Close()
		return newlastFrameError(R.filename, "Next")
	}
	if err != nil {
		//a partial record is a truncated file, not a normal end
		return Error{ReadError + ": " + err.Error(), R.filename, []string{"Next"}, true}
	}
	if F == nil {
		return nil
	}
	if err := F.SetFromCRD(R.record, R.nbox); err != nil {
		return Error{err.Error(), R.filename, []string{"Next"}, true}
	}
	return nil
}

// Len returns the number of atoms in each frame of the trajectory.
func (R *Reader) Len() int { return R.natoms }

// NBox returns the number of box scalars stored with each frame.
func (R *Reader) NBox() int { return R.nbox }

// Close closes the handle and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	R.z.Close()
	R.f.Close()
	R.readable = false
}

//Errors

// Error is the general structure for ctf trajectory errors. It
// fulfills traj.Err and traj.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ctf file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing trajectory was
// associated.
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "ctf") associated to
// the error.
func (err Error) Format() string { return "ctf" }

// Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Wrong format in the CTF file or frame"
)

//lastFrameError implements traj.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing, and tags the error as the
// normal end of a trajectory.
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "ctf" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
