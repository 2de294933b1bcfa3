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

package instructions

import (
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
)

// TruncatedInstruction is the pattern for errors raised when there are not
// enough bytes to decode an instruction.
const TruncatedInstruction = "instructions: truncated instruction at %06X (need %d bytes, have %d)"

// FormatOf returns the format of the instruction beginning with b0. The
// second byte is only consulted for format 3/4 instructions.
func FormatOf(b0, b1 uint8) Format {
	f := Lookup(b0).Format
	if f == Format3 && b1&flagE == flagE {
		return Format4
	}
	return f
}

// Decoded is a single decoded instruction.
type Decoded struct {
	// the address of the first byte of the instruction
	Address uint32

	// the bytes of the instruction. the length of the slice is the length
	// of the format
	Bytes []uint8

	Defn   *Definition
	OpCode uint8
	Format Format

	// zero for format 1 and format 2 instructions
	Flags Flags
}

// Decode the instruction at the beginning of data. The address is the
// location of the first byte in memory and is needed for program counter
// relative addressing. Data longer than the instruction is ignored.
func Decode(data []uint8, address uint32) (Decoded, error) {
	if len(data) == 0 {
		return Decoded{}, curated.Errorf(TruncatedInstruction, address, 1, 0)
	}

	defn := Lookup(data[0])

	// formats 3 and 4 need the second byte to determine the length
	need := int(defn.Format)
	if need > len(data) {
		return Decoded{}, curated.Errorf(TruncatedInstruction, address, need, len(data))
	}

	format := defn.Format
	if format == Format3 && data[1]&flagE == flagE {
		format = Format4
	}
	if int(format) > len(data) {
		return Decoded{}, curated.Errorf(TruncatedInstruction, address, int(format), len(data))
	}

	ins := Decoded{
		Address: address,
		Bytes:   make([]uint8, format),
		Defn:    defn,
		OpCode:  data[0] & 0xfc,
		Format:  format,
	}
	copy(ins.Bytes, data)

	if format >= Format3 {
		ins.Flags = decodeFlags(data[0], data[1])
	}

	return ins, nil
}

// Len returns the length of the instruction in bytes.
func (ins Decoded) Len() int {
	return int(ins.Format)
}

// Next returns the address of the byte following the instruction. This is
// the value of PC while the instruction executes.
func (ins Decoded) Next() uint32 {
	return (ins.Address + uint32(ins.Format)) & registers.Mask
}

// Mnemonic of the instruction.
func (ins Decoded) Mnemonic() Mnemonic {
	if ins.Defn == nil {
		return Undefined
	}
	return ins.Defn.Mnemonic
}

// HasOperand is false for format 1, format 2 and RSUB.
func (ins Decoded) HasOperand() bool {
	return ins.Format >= Format3 && ins.Mnemonic() != RSUB
}

// Field returns the raw displacement (format 3) or address (format 4) field.
func (ins Decoded) Field() uint32 {
	switch ins.Format {
	case Format3:
		return uint32(ins.Bytes[1]&0x0f)<<8 | uint32(ins.Bytes[2])
	case Format4:
		return uint32(ins.Bytes[1]&0x0f)<<16 | uint32(ins.Bytes[2])<<8 | uint32(ins.Bytes[3])
	}
	return 0
}

// TargetAddress resolves the address of a format 3/4 instruction from the
// supplied values of the B and X registers. The result is truncated to 24
// bits. Format 1 and 2 instructions always return zero.
func (ins Decoded) TargetAddress(b, x uint32) uint32 {
	if ins.Format < Format3 {
		return 0
	}

	field := ins.Field()

	var ta uint32
	if ins.Flags.E {
		ta = field
	} else {
		disp := field
		if disp&0x800 == 0x800 {
			disp |= 0xfffff000
		}
		switch {
		case ins.Flags.P:
			ta = ins.Next() + disp
		case ins.Flags.B:
			ta = b + disp
		default:
			ta = field
		}
	}

	if ins.Flags.X {
		ta += x
	}

	return ta & registers.Mask
}

// Registers returns the two register nibbles of a format 2 instruction.
func (ins Decoded) Registers() (registers.Number, registers.Number) {
	if ins.Format != Format2 {
		return 0, 0
	}
	return registers.Number(ins.Bytes[1] >> 4), registers.Number(ins.Bytes[1] & 0x0f)
}

// String returns the instruction in assembler notation. The operand of a
// format 3/4 instruction is the raw field.
func (ins Decoded) String() string {
	s := strings.Builder{}

	if ins.Format == Format4 {
		s.WriteString("+")
	}
	s.WriteString(ins.Mnemonic().String())

	switch ins.Format {
	case Format2:
		r1, r2 := ins.Registers()
		switch ins.Mnemonic() {
		case CLEAR, TIXR:
			s.WriteString(fmt.Sprintf(" %s", r1))
		case SVC:
			s.WriteString(fmt.Sprintf(" %d", r1))
		case SHIFTL, SHIFTR:
			s.WriteString(fmt.Sprintf(" %s,%d", r1, r2+1))
		default:
			s.WriteString(fmt.Sprintf(" %s,%s", r1, r2))
		}
	case Format3, Format4:
		if !ins.HasOperand() {
			break
		}
		s.WriteString(" ")
		switch ins.Flags.AddressingMode() {
		case Immediate:
			s.WriteString("#")
		case Indirect:
			s.WriteString("@")
		}
		if ins.Format == Format4 {
			s.WriteString(fmt.Sprintf("%05X", ins.Field()))
		} else {
			s.WriteString(fmt.Sprintf("%03X", ins.Field()))
		}
		if ins.Flags.X {
			s.WriteString(",X")
		}
	}

	return s.String()
}

// Hex returns the bytes of the instruction as a string of hex digits.
func (ins Decoded) Hex() string {
	return fmt.Sprintf("%X", ins.Bytes)
}
