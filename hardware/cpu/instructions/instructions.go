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

import "fmt"

// Format of an instruction. The value is also the length of the
// instruction in bytes.
type Format int

// List of instruction formats.
const (
	Format1 Format = 1
	Format2 Format = 2
	Format3 Format = 3
	Format4 Format = 4
)

func (f Format) String() string {
	return fmt.Sprintf("format %d", int(f))
}

// AddressingMode describes how the operand of a format 3/4 instruction is
// found.
type AddressingMode int

// List of addressing modes.
const (
	// (n=1,i=1) or (n=0,i=0). operand is memory at the target address
	Simple AddressingMode = iota

	// (n=0,i=1). operand is the target address itself
	Immediate

	// (n=1,i=0). operand is memory at the address stored at the target
	// address
	Indirect
)

func (m AddressingMode) String() string {
	switch m {
	case Simple:
		return "Simple"
	case Immediate:
		return "Immediate"
	case Indirect:
		return "Indirect"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	Register
	Flow
	Subroutine
	Device
	System
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Register:
		return "Register"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Device:
		return "Device"
	case System:
		return "System"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode   uint8
	Mnemonic Mnemonic

	// Format1, Format2 or Format3. a Format3 definition is decoded as
	// Format4 when the e flag is set
	Format Format

	Effect EffectCategory
}

func (defn Definition) String() string {
	if defn.Mnemonic == Undefined {
		return "undefined instruction"
	}
	return fmt.Sprintf("%02X %s (%s) [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Format, defn.Effect)
}

// IsJump returns true if the instruction may change the program counter.
func (defn Definition) IsJump() bool {
	return defn.Effect == Flow || defn.Effect == Subroutine
}
