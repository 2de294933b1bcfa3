// This file is part of sicxe.
//
// sicxe is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sicxe is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sicxe.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"fmt"

	"github.com/sicxe/sicxe/curated"
)

// NoCaller is the initial value of L. A return (RSUB) from the outermost
// routine sets PC to this value.
const NoCaller = 0xffffff

// HaltAddress is the value of PC that halts the machine.
const HaltAddress = NoCaller

// InvalidRegister is the pattern for errors raised when an instruction names
// a register that does not exist or cannot be used in that context.
const InvalidRegister = "registers: invalid register (%d)"

// Number identifies a register in a format 2 instruction.
type Number uint8

// List of valid register numbers.
const (
	A  Number = 0
	X  Number = 1
	L  Number = 2
	B  Number = 3
	S  Number = 4
	T  Number = 5
	F  Number = 6
	PC Number = 8
	SW Number = 9
)

var labels = map[Number]string{
	A: "A", X: "X", L: "L", B: "B", S: "S", T: "T", F: "F", PC: "PC", SW: "SW",
}

func (n Number) String() string {
	if l, ok := labels[n]; ok {
		return l
	}
	return fmt.Sprintf("R%d", uint8(n))
}

// File is the complete set of registers.
type File struct {
	A  Register
	X  Register
	L  Register
	B  Register
	S  Register
	T  Register
	PC Register
	SW Register
	F  float64
}

// NewFile is the preferred method of initialisation for File.
func NewFile() *File {
	f := &File{}
	f.Reset()
	return f
}

// Reset every register to its power-on value.
func (f *File) Reset() {
	f.A = NewRegister(0, "A")
	f.X = NewRegister(0, "X")
	f.L = NewRegister(NoCaller, "L")
	f.B = NewRegister(0, "B")
	f.S = NewRegister(0, "S")
	f.T = NewRegister(0, "T")
	f.PC = NewRegister(0, "PC")
	f.SW = NewRegister(0, "SW")
	f.F = 0
}

func (f *File) integer(n Number) (*Register, error) {
	switch n {
	case A:
		return &f.A, nil
	case X:
		return &f.X, nil
	case L:
		return &f.L, nil
	case B:
		return &f.B, nil
	case S:
		return &f.S, nil
	case T:
		return &f.T, nil
	case PC:
		return &f.PC, nil
	case SW:
		return &f.SW, nil
	}
	return nil, curated.Errorf(InvalidRegister, uint8(n))
}

// Get the value of an integer register. F is not an integer register and is
// an InvalidRegister error.
func (f *File) Get(n Number) (uint32, error) {
	r, err := f.integer(n)
	if err != nil {
		return 0, err
	}
	return r.Value(), nil
}

// Set the value of a register. Setting F stores the value as a float.
func (f *File) Set(n Number, v uint32) error {
	if n == F {
		f.F = float64(v)
		return nil
	}
	r, err := f.integer(n)
	if err != nil {
		return err
	}
	r.Load(v)
	return nil
}

// SetCondition stores the result of a comparison (-1, 0 or +1) in SW.
func (f *File) SetCondition(c int) {
	f.SW.Load(uint32(int32(c)))
}

// Condition returns SW as -1, 0 or +1.
func (f *File) Condition() int {
	s := f.SW.Signed()
	switch {
	case s < 0:
		return -1
	case s > 0:
		return 1
	}
	return 0
}

// Snapshot returns a copy of the register values.
func (f *File) Snapshot() Snapshot {
	return Snapshot{
		A:  f.A.Value(),
		X:  f.X.Value(),
		L:  f.L.Value(),
		B:  f.B.Value(),
		S:  f.S.Value(),
		T:  f.T.Value(),
		PC: f.PC.Value(),
		SW: f.SW.Value(),
		F:  f.F,
	}
}

func (f *File) String() string {
	return f.Snapshot().String()
}

// Snapshot is a copy of the register file at a moment in time.
type Snapshot struct {
	A  uint32
	X  uint32
	L  uint32
	B  uint32
	S  uint32
	T  uint32
	PC uint32
	SW uint32
	F  float64
}

func (s Snapshot) String() string {
	return fmt.Sprintf("A=%06X X=%06X L=%06X B=%06X S=%06X T=%06X PC=%06X SW=%06X F=%g",
		s.A, s.X, s.L, s.B, s.S, s.T, s.PC, s.SW, s.F)
}
