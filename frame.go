/*
 * frame.go, part of gotraj.
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

	v3 "github.com/rmera/gotraj/v3"
)

const appzero float64 = 0.00000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Capacity grows by this fixed number of atoms whenever an append hits
//the current capacity, which amortizes streaming atom-by-atom reads.
const growIncrement = 500

// Frame holds one snapshot of a molecular system's Cartesian state:
// a resizable coordinate buffer, an optional velocity buffer of the
// same shape, optional per-atom masses, the 6-scalar box descriptor
// (three lengths and three angles, in degrees) and a temperature.
//
// A Frame owns its buffers exclusively; they are never shared between
// two Frame instances, and copying always deep-copies. Only the first
// Natoms()*3 entries of the coordinate/velocity buffers are
// meaningful.
type Frame struct {
	natom    int
	maxnatom int
	ncoord   int //always natom*3
	x        []float64
	v        []float64 //nil when the frame carries no velocities
	mass     []float64 //nil when the frame carries no masses
	box      [6]float64
	t        float64
}

// New returns a Frame sized for natoms atoms, with zeroed
// coordinates, no velocities, no masses, no box and zero temperature.
// Panics on a negative atom count.
func New(natoms int) *Frame {
	if natoms < 0 {
		panic(NegativeAtomCount)
	}
	F := &Frame{natom: natoms, maxnatom: natoms, ncoord: natoms * 3}
	if F.ncoord > 0 {
		F.x = make([]float64, F.ncoord)
	}
	return F
}

// NewFromAtoms is like New but also populates the per-atom masses
// from the given atom list, in list order.
func NewFromAtoms(atoms []*Atom) *Frame {
	F := New(len(atoms))
	if F.ncoord > 0 {
		F.mass = make([]float64, 0, F.natom)
		for _, at := range atoms {
			F.mass = append(F.mass, at.Mass)
		}
	}
	return F
}

// NewFromMask returns a Frame holding only the atoms of src selected
// by mask, in mask order. Coordinates are always copied; velocities
// are copied iff src has them, masses iff src has them. Box and
// temperature are copied verbatim. The mask must not reference atoms
// beyond src's atom count.
func NewFromMask(src *Frame, mask Mask) (*Frame, error) {
	if mask.MaxIndex() >= src.natom {
		return nil, Error{MaskOutOfRange, []string{"NewFromMask"}, false}
	}
	n := mask.Nselected()
	F := &Frame{natom: n, maxnatom: n, ncoord: n * 3, t: src.t, box: src.box}
	if F.ncoord == 0 {
		return F, nil
	}
	F.x = make([]float64, F.ncoord)
	if src.v != nil {
		F.v = make([]float64, F.ncoord)
	}
	if src.mass != nil {
		F.mass = make([]float64, 0, n)
	}
	for i, at := range mask {
		copy(F.x[i*3:i*3+3], src.x[at*3:at*3+3])
		if F.v != nil {
			copy(F.v[i*3:i*3+3], src.v[at*3:at*3+3])
		}
		if F.mass != nil {
			F.mass = append(F.mass, src.mass[at])
		}
	}
	return F, nil
}

// Copy returns a deep copy of the frame. The copy preserves the
// source's capacity, not just its atom count.
func (F *Frame) Copy() *Frame {
	C := &Frame{
		natom:    F.natom,
		maxnatom: F.maxnatom,
		ncoord:   F.ncoord,
		box:      F.box,
		t:        F.t,
	}
	if F.x != nil {
		C.x = make([]float64, F.maxnatom*3)
		copy(C.x, F.x[:F.ncoord])
	}
	if F.v != nil {
		C.v = make([]float64, F.maxnatom*3)
		copy(C.v, F.v[:F.ncoord])
	}
	if F.mass != nil {
		C.mass = make([]float64, len(F.mass))
		copy(C.mass, F.mass)
	}
	return C
}

// ---------- access ----------

// Natoms returns the number of atoms currently populated.
func (F *Frame) Natoms() int { return F.natom }

// Ncoord returns the number of populated coordinates (Natoms()*3).
func (F *Frame) Ncoord() int { return F.ncoord }

// MaxNatoms returns the allocated capacity, in atoms.
func (F *Frame) MaxNatoms() int { return F.maxnatom }

// HasVel returns whether the frame carries velocities.
func (F *Frame) HasVel() bool { return F.v != nil }

// HasMass returns whether the frame carries per-atom masses.
func (F *Frame) HasMass() bool { return F.mass != nil }

// Temperature returns the frame's temperature.
func (F *Frame) Temperature() float64 { return F.t }

// SetTemperature sets the frame's temperature.
func (F *Frame) SetTemperature(t float64) { F.t = t }

// Box returns the 6-scalar box descriptor: x, y, z lengths followed
// by alpha, beta, gamma angles in degrees. All zeros means no box.
func (F *Frame) Box() [6]float64 { return F.box }

// SetBox sets the box descriptor.
func (F *Frame) SetBox(box [6]float64) { F.box = box }

// XYZ returns the coordinates of atom i. Panics if out of range.
func (F *Frame) XYZ(i int) v3.Vec {
	if i < 0 || i >= F.natom {
		panic(v3.ErrIndexOutOfRange)
	}
	return v3.Vec{F.x[i*3], F.x[i*3+1], F.x[i*3+2]}
}

// SetXYZ sets the coordinates of atom i. Panics if out of range.
func (F *Frame) SetXYZ(i int, xyz v3.Vec) {
	if i < 0 || i >= F.natom {
		panic(v3.ErrIndexOutOfRange)
	}
	F.x[i*3] = xyz[0]
	F.x[i*3+1] = xyz[1]
	F.x[i*3+2] = xyz[2]
}

// Vel returns the velocity of atom i, or a zero vector for a frame
// without velocities. Panics if out of range.
func (F *Frame) Vel(i int) v3.Vec {
	if i < 0 || i >= F.natom {
		panic(v3.ErrIndexOutOfRange)
	}
	if F.v == nil {
		return v3.Vec{}
	}
	return v3.Vec{F.v[i*3], F.v[i*3+1], F.v[i*3+2]}
}

// Mass returns the mass of atom i. Panics if out of range or if the
// frame carries no masses.
func (F *Frame) Mass(i int) float64 {
	if i < 0 || i >= F.natom || F.mass == nil || i >= len(F.mass) {
		panic(v3.ErrIndexOutOfRange)
	}
	return F.mass[i]
}

// Masses returns a copy of the populated per-atom masses, or nil for
// a frame without them.
func (F *Frame) Masses() []float64 {
	if F.mass == nil {
		return nil
	}
	n := F.natom
	if n > len(F.mass) {
		n = len(F.mass)
	}
	m := make([]float64, n)
	copy(m, F.mass[:n])
	return m
}

// SetMasses attaches per-atom masses to the frame. The slice length
// must equal the current atom count.
func (F *Frame) SetMasses(mass []float64) error {
	if len(mass) != F.natom {
		return Error{NatomMismatch, []string{"SetMasses"}, false}
	}
	F.mass = make([]float64, len(mass))
	copy(F.mass, mass)
	return nil
}

// TotalMass returns the sum of the populated masses, or the atom
// count for a frame without mass information.
func (F *Frame) TotalMass() float64 {
	if F.mass == nil {
		return float64(F.natom)
	}
	t := 0.0
	for i := 0; i < F.natom; i++ {
		t += F.mass[i]
	}
	return t
}

// ---------- appends and reallocation ----------

func (F *Frame) reallocateX() {
	F.maxnatom += growIncrement
	newX := make([]float64, F.maxnatom*3)
	copy(newX, F.x[:F.ncoord])
	F.x = newX
}

// AddXYZ appends the given coordinates to the frame, growing the
// coordinate buffer by a fixed increment when capacity is exhausted.
// Velocity and mass buffers are not extended.
func (F *Frame) AddXYZ(xyz v3.Vec) {
	if F.natom >= F.maxnatom {
		F.reallocateX()
	}
	F.x[F.ncoord] = xyz[0]
	F.x[F.ncoord+1] = xyz[1]
	F.x[F.ncoord+2] = xyz[2]
	F.natom++
	F.ncoord += 3
}

// ---------- setup (re-use of an existing Frame) ----------

// SetupAtoms reconfigures the frame to represent n atoms with no mass
// or velocity information, reallocating coordinate storage only when
// n exceeds the current capacity. Coordinate contents are unspecified
// after this call.
func (F *Frame) SetupAtoms(n int) error {
	if n < 0 {
		return Error{NegativeAtomCount, []string{"SetupAtoms"}, false}
	}
	F.natom = n
	F.ncoord = n * 3
	if F.natom > F.maxnatom {
		F.x = make([]float64, F.ncoord)
		F.maxnatom = F.natom
	}
	F.mass = nil
	F.v = nil
	return nil
}

// SetupAtomsMass is like SetupAtoms but repopulates the masses from
// the given atom list. Mass storage is reallocated only when the
// coordinate buffer grew or masses were previously absent.
func (F *Frame) SetupAtomsMass(atoms []*Atom) error {
	reallocate := false
	F.natom = len(atoms)
	F.ncoord = F.natom * 3
	if F.natom > F.maxnatom {
		reallocate = true
		F.x = make([]float64, F.ncoord)
		F.maxnatom = F.natom
	}
	//an existing mass slice may be shorter than the capacity when the
	//frame was grown by appends, so the length check matters
	if reallocate || F.mass == nil || len(F.mass) < F.natom {
		F.mass = make([]float64, F.maxnatom)
	}
	for i, at := range atoms {
		F.mass[i] = at.Mass
	}
	F.v = nil
	return nil
}

// SetupAtomsVel is like SetupAtomsMass, and additionally allocates a
// zero-filled velocity buffer sized to capacity when wantVel is true
// and none exists (or reallocation occurred). When wantVel is false
// any velocity buffer is dropped.
func (F *Frame) SetupAtomsVel(atoms []*Atom, wantVel bool) error {
	reallocate := false
	F.natom = len(atoms)
	F.ncoord = F.natom * 3
	if F.natom > F.maxnatom {
		reallocate = true
		F.x = make([]float64, F.ncoord)
		F.maxnatom = F.natom
	}
	if wantVel {
		if reallocate || F.v == nil || len(F.v) < F.ncoord {
			//velocities might never be read in, so they start zeroed
			F.v = make([]float64, F.maxnatom*3)
		}
	} else {
		F.v = nil
	}
	if reallocate || F.mass == nil || len(F.mass) < F.natom {
		F.mass = make([]float64, F.maxnatom)
	}
	for i, at := range atoms {
		F.mass[i] = at.Mass
	}
	return nil
}

// SetupFromMask configures the frame to hold exactly mask.Nselected()
// atoms and populates the masses by indexing atoms through the mask.
// No velocity information. Memory is reallocated only on growth.
func (F *Frame) SetupFromMask(mask Mask, atoms []*Atom) error {
	if mask.MaxIndex() >= len(atoms) {
		return Error{MaskOutOfRange, []string{"SetupFromMask"}, false}
	}
	reallocate := false
	F.natom = mask.Nselected()
	F.ncoord = F.natom * 3
	if F.natom > F.maxnatom {
		reallocate = true
		F.x = make([]float64, F.ncoord)
		F.maxnatom = F.natom
	}
	if reallocate || F.mass == nil || len(F.mass) < F.natom {
		F.mass = make([]float64, F.maxnatom)
	}
	for i, at := range mask {
		F.mass[i] = atoms[at].Mass
	}
	return nil
}

// ---------- mask-based data transfer ----------

// SetCoordinatesByMask copies into this frame the coordinates
// selected by mask from the raw buffer xin (stride-3 per atom). The
// frame's atom count becomes mask.Nselected(). Nothing else is
// touched.
func (F *Frame) SetCoordinatesByMask(xin []float64, mask Mask) error {
	if xin == nil {
		return Error{NilCoordinates, []string{"SetCoordinatesByMask"}, false}
	}
	if mask.Nselected() > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetCoordinatesByMask"}, false}
	}
	if mask.MaxIndex()*3+3 > len(xin) {
		return Error{MaskOutOfRange, []string{"SetCoordinatesByMask"}, false}
	}
	F.natom = mask.Nselected()
	F.ncoord = F.natom * 3
	for i, at := range mask {
		copy(F.x[i*3:i*3+3], xin[at*3:at*3+3])
	}
	return nil
}

// SetCoordinatesMask copies coordinates, box and temperature from src
// into this frame based on the atoms selected by mask. The frame's
// atom count becomes mask.Nselected().
func (F *Frame) SetCoordinatesMask(src *Frame, mask Mask) error {
	if mask.Nselected() > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetCoordinatesMask"}, false}
	}
	if mask.MaxIndex() >= src.natom {
		return Error{MaskOutOfRange, []string{"SetCoordinatesMask"}, false}
	}
	F.natom = mask.Nselected()
	F.ncoord = F.natom * 3
	F.box = src.box
	F.t = src.t
	for i, at := range mask {
		copy(F.x[i*3:i*3+3], src.x[at*3:at*3+3])
	}
	return nil
}

// SetCoordinates copies only the coordinates from src into this
// frame. src's atom count must not exceed this frame's capacity.
func (F *Frame) SetCoordinates(src *Frame) error {
	if src.natom > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetCoordinates"}, false}
	}
	F.natom = src.natom
	F.ncoord = F.natom * 3
	copy(F.x[:F.ncoord], src.x[:F.ncoord])
	return nil
}

// SetFrameMask copies coordinates, masses, velocities (when both
// frames carry them), box and temperature from src based on the atoms
// selected by mask. Mass storage is allocated here if src has masses
// and this frame does not.
func (F *Frame) SetFrameMask(src *Frame, mask Mask) error {
	if mask.Nselected() > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetFrameMask"}, false}
	}
	if mask.MaxIndex() >= src.natom {
		return Error{MaskOutOfRange, []string{"SetFrameMask"}, false}
	}
	F.natom = mask.Nselected()
	F.ncoord = F.natom * 3
	F.box = src.box
	F.t = src.t
	if src.mass != nil && (F.mass == nil || len(F.mass) < F.natom) {
		F.mass = make([]float64, F.maxnatom)
	}
	copyVel := src.v != nil && F.v != nil
	for i, at := range mask {
		copy(F.x[i*3:i*3+3], src.x[at*3:at*3+3])
		if copyVel {
			copy(F.v[i*3:i*3+3], src.v[at*3:at*3+3])
		}
		if src.mass != nil {
			F.mass[i] = src.mass[at]
		}
	}
	return nil
}

// ---------- setup with atom mapping ----------

// SetCoordinatesByMap reorders the atoms of src into this frame
// following amap, where amap[i] is the src atom that becomes atom i
// here. The map is assumed complete (no -1 entries) and its length
// must equal src's atom count. Only coordinates are touched.
func (F *Frame) SetCoordinatesByMap(src *Frame, amap []int) error {
	if src.natom > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetCoordinatesByMap"}, false}
	}
	if len(amap) != src.natom {
		return Error{MapSizeMismatch, []string{"SetCoordinatesByMap"}, false}
	}
	for _, at := range amap {
		if at < 0 || at >= src.natom {
			return Error{MapOutOfRange, []string{"SetCoordinatesByMap"}, false}
		}
	}
	F.natom = src.natom
	F.ncoord = F.natom * 3
	for i, at := range amap {
		copy(F.x[i*3:i*3+3], src.x[at*3:at*3+3])
	}
	return nil
}

// SetReferenceByMap sets this frame to only the atoms of src whose
// map entry is not -1. The source read position advances by one atom
// for every map entry, mapped or not: entry i of the map decides
// whether src atom i is kept, and the map's values are otherwise
// unused. Output is written sequentially. Only coordinates are
// touched.
func (F *Frame) SetReferenceByMap(src *Frame, amap []int) error {
	if src.natom > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetReferenceByMap"}, false}
	}
	if len(amap) != src.natom {
		return Error{MapSizeMismatch, []string{"SetReferenceByMap"}, false}
	}
	xidx := 0
	for i, at := range amap {
		if at != -1 {
			copy(F.x[xidx:xidx+3], src.x[i*3:i*3+3])
			xidx += 3
		}
	}
	F.ncoord = xidx
	F.natom = xidx / 3
	return nil
}

// SetTargetByMap sets this frame to the atoms of src addressed by the
// values of amap, skipping -1 entries; unlike SetReferenceByMap, the
// source read position here is the map entry's value, so it only
// advances for mapped entries. Output is written sequentially. Only
// coordinates are touched.
func (F *Frame) SetTargetByMap(src *Frame, amap []int) error {
	if src.natom > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetTargetByMap"}, false}
	}
	if len(amap) != src.natom {
		return Error{MapSizeMismatch, []string{"SetTargetByMap"}, false}
	}
	for _, at := range amap {
		if at != -1 && (at < 0 || at >= src.natom) {
			return Error{MapOutOfRange, []string{"SetTargetByMap"}, false}
		}
	}
	xidx := 0
	for _, at := range amap {
		if at != -1 {
			copy(F.x[xidx:xidx+3], src.x[at*3:at*3+3])
			xidx += 3
		}
	}
	F.ncoord = xidx
	F.natom = xidx / 3
	return nil
}

// ---------- conversion to/from raw float arrays ----------

// SetFromCRD assigns to the frame from a single-precision coordinate
// array whose last nBox values, if any, are box scalars. The number
// of coordinates in the array must not exceed the frame's capacity.
func (F *Frame) SetFromCRD(crd []float32, nBox int) error {
	ncoord := len(crd) - nBox
	if nBox < 0 || ncoord < 0 || ncoord%3 != 0 {
		return Error{MalformedCRD, []string{"SetFromCRD"}, false}
	}
	if ncoord > F.maxnatom*3 {
		return Error{CRDTooLarge, []string{"SetFromCRD"}, false}
	}
	F.ncoord = ncoord
	F.natom = ncoord / 3
	for i := 0; i < ncoord; i++ {
		F.x[i] = float64(crd[i])
	}
	for i := 0; i < nBox; i++ {
		F.box[i] = float64(crd[ncoord+i])
	}
	return nil
}

// SetFromCRDMask is like SetFromCRD but takes from the array only the
// atoms selected by mask.
func (F *Frame) SetFromCRDMask(crd []float32, nBox int, mask Mask) error {
	if nBox < 0 || len(crd)-nBox < 0 || (len(crd)-nBox)%3 != 0 {
		return Error{MalformedCRD, []string{"SetFromCRDMask"}, false}
	}
	if mask.Nselected() > F.maxnatom {
		return Error{MaskTooLarge, []string{"SetFromCRDMask"}, false}
	}
	if mask.MaxIndex()*3+3 > len(crd)-nBox {
		return Error{MaskOutOfRange, []string{"SetFromCRDMask"}, false}
	}
	F.natom = mask.Nselected()
	F.ncoord = F.natom * 3
	for i, at := range mask {
		ia := at * 3
		F.x[i*3] = float64(crd[ia])
		F.x[i*3+1] = float64(crd[ia+1])
		F.x[i*3+2] = float64(crd[ia+2])
	}
	ncoord := len(crd) - nBox
	for i := 0; i < nBox; i++ {
		F.box[i] = float64(crd[ncoord+i])
	}
	return nil
}

// ConvertToCRD places the frame's coordinates, followed by the first
// nBox box scalars, into a single-precision array. The narrowing from
// double precision is by design.
func (F *Frame) ConvertToCRD(nBox int) []float32 {
	crd := make([]float32, 0, F.ncoord+nBox)
	for i := 0; i < F.ncoord; i++ {
		crd = append(crd, float32(F.x[i]))
	}
	for i := 0; i < nBox; i++ {
		crd = append(crd, float32(F.box[i]))
	}
	return crd
}

// ---------- basic arithmetic ----------

// ZeroCoords sets every populated coordinate to 0 without changing
// the atom count.
func (F *Frame) ZeroCoords() {
	for i := 0; i < F.ncoord; i++ {
		F.x[i] = 0
	}
}

// Add increments every coordinate of this frame by the corresponding
// coordinate of rhs. The atom counts must match.
func (F *Frame) Add(rhs *Frame) error {
	if F.natom != rhs.natom {
		return Error{NatomMismatch, []string{"Add"}, false}
	}
	for i := 0; i < F.ncoord; i++ {
		F.x[i] += rhs.x[i]
	}
	return nil
}

// Sub decrements every coordinate of this frame by the corresponding
// coordinate of rhs. The atom counts must match.
func (F *Frame) Sub(rhs *Frame) error {
	if F.natom != rhs.natom {
		return Error{NatomMismatch, []string{"Sub"}, false}
	}
	for i := 0; i < F.ncoord; i++ {
		F.x[i] -= rhs.x[i]
	}
	return nil
}

// Mul multiplies, elementwise, every coordinate of this frame by the
// corresponding coordinate of rhs. The atom counts must match.
func (F *Frame) Mul(rhs *Frame) error {
	if F.natom != rhs.natom {
		return Error{NatomMismatch, []string{"Mul"}, false}
	}
	for i := 0; i < F.ncoord; i++ {
		F.x[i] *= rhs.x[i]
	}
	return nil
}

// Divide divides every coordinate of the frame by divisor. A divisor
// within the numerical-zero threshold is an error and the frame is
// left unchanged.
func (F *Frame) Divide(divisor float64) error {
	if math.Abs(divisor) < appzero {
		return Error{DivByZero, []string{"Divide"}, false}
	}
	for i := 0; i < F.ncoord; i++ {
		F.x[i] /= divisor
	}
	return nil
}

// DivideFrame stores src's coordinates divided by divisor into this
// frame. Same zero-divisor guard as Divide; the atom counts must
// match.
func (F *Frame) DivideFrame(src *Frame, divisor float64) error {
	if math.Abs(divisor) < appzero {
		return Error{DivByZero, []string{"DivideFrame"}, false}
	}
	if F.natom != src.natom {
		return Error{NatomMismatch, []string{"DivideFrame"}, false}
	}
	for i := 0; i < F.ncoord; i++ {
		F.x[i] = src.x[i] / divisor
	}
	return nil
}

// AddByMask accumulates the atoms of src selected by mask into the
// first mask.Nselected() atoms of this frame, in mask order: the
// destination index is sequential, not the mask value. This matches
// the accumulation layout used by fluctuation analyses over masked
// subsets.
func (F *Frame) AddByMask(src *Frame, mask Mask) error {
	if mask.Nselected() > F.maxnatom {
		return Error{MaskTooLarge, []string{"AddByMask"}, false}
	}
	if mask.MaxIndex() >= src.natom {
		return Error{MaskOutOfRange, []string{"AddByMask"}, false}
	}
	xidx := 0
	for _, at := range mask {
		fidx := at * 3
		F.x[xidx] += src.x[fidx]
		F.x[xidx+1] += src.x[fidx+1]
		F.x[xidx+2] += src.x[fidx+2]
		xidx += 3
	}
	return nil
}

// Scale multiplies the x, y and z coordinates of every masked atom by
// the per-axis factors sx, sy and sz.
func (F *Frame) Scale(mask Mask, sx, sy, sz float64) error {
	if mask.MaxIndex() >= F.natom {
		return Error{MaskOutOfRange, []string{"Scale"}, false}
	}
	for _, at := range mask {
		xidx := at * 3
		F.x[xidx] *= sx
		F.x[xidx+1] *= sy
		F.x[xidx+2] *= sz
	}
	return nil
}
