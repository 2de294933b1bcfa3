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

// Definitions is the SIC/XE instruction set.
var Definitions = []Definition{
	{OpCode: 0x18, Mnemonic: ADD, Format: Format3, Effect: Read},
	{OpCode: 0x58, Mnemonic: ADDF, Format: Format3, Effect: Read},
	{OpCode: 0x90, Mnemonic: ADDR, Format: Format2, Effect: Register},
	{OpCode: 0x40, Mnemonic: AND, Format: Format3, Effect: Read},
	{OpCode: 0xb4, Mnemonic: CLEAR, Format: Format2, Effect: Register},
	{OpCode: 0x28, Mnemonic: COMP, Format: Format3, Effect: Read},
	{OpCode: 0x88, Mnemonic: COMPF, Format: Format3, Effect: Read},
	{OpCode: 0xa0, Mnemonic: COMPR, Format: Format2, Effect: Register},
	{OpCode: 0x24, Mnemonic: DIV, Format: Format3, Effect: Read},
	{OpCode: 0x64, Mnemonic: DIVF, Format: Format3, Effect: Read},
	{OpCode: 0x9c, Mnemonic: DIVR, Format: Format2, Effect: Register},
	{OpCode: 0xc4, Mnemonic: FIX, Format: Format1, Effect: Register},
	{OpCode: 0xc0, Mnemonic: FLOAT, Format: Format1, Effect: Register},
	{OpCode: 0xf4, Mnemonic: HIO, Format: Format1, Effect: Device},
	{OpCode: 0x3c, Mnemonic: J, Format: Format3, Effect: Flow},
	{OpCode: 0x30, Mnemonic: JEQ, Format: Format3, Effect: Flow},
	{OpCode: 0x34, Mnemonic: JGT, Format: Format3, Effect: Flow},
	{OpCode: 0x38, Mnemonic: JLT, Format: Format3, Effect: Flow},
	{OpCode: 0x48, Mnemonic: JSUB, Format: Format3, Effect: Subroutine},
	{OpCode: 0x00, Mnemonic: LDA, Format: Format3, Effect: Read},
	{OpCode: 0x68, Mnemonic: LDB, Format: Format3, Effect: Read},
	{OpCode: 0x50, Mnemonic: LDCH, Format: Format3, Effect: Read},
	{OpCode: 0x70, Mnemonic: LDF, Format: Format3, Effect: Read},
	{OpCode: 0x08, Mnemonic: LDL, Format: Format3, Effect: Read},
	{OpCode: 0x6c, Mnemonic: LDS, Format: Format3, Effect: Read},
	{OpCode: 0x74, Mnemonic: LDT, Format: Format3, Effect: Read},
	{OpCode: 0x04, Mnemonic: LDX, Format: Format3, Effect: Read},
	{OpCode: 0xd0, Mnemonic: LPS, Format: Format3, Effect: System},
	{OpCode: 0x20, Mnemonic: MUL, Format: Format3, Effect: Read},
	{OpCode: 0x60, Mnemonic: MULF, Format: Format3, Effect: Read},
	{OpCode: 0x98, Mnemonic: MULR, Format: Format2, Effect: Register},
	{OpCode: 0xc8, Mnemonic: NORM, Format: Format1, Effect: Register},
	{OpCode: 0x44, Mnemonic: OR, Format: Format3, Effect: Read},
	{OpCode: 0xd8, Mnemonic: RD, Format: Format3, Effect: Device},
	{OpCode: 0xac, Mnemonic: RMO, Format: Format2, Effect: Register},
	{OpCode: 0x4c, Mnemonic: RSUB, Format: Format3, Effect: Subroutine},
	{OpCode: 0xa4, Mnemonic: SHIFTL, Format: Format2, Effect: Register},
	{OpCode: 0xa8, Mnemonic: SHIFTR, Format: Format2, Effect: Register},
	{OpCode: 0xf0, Mnemonic: SIO, Format: Format1, Effect: Device},
	{OpCode: 0xec, Mnemonic: SSK, Format: Format3, Effect: System},
	{OpCode: 0x0c, Mnemonic: STA, Format: Format3, Effect: Write},
	{OpCode: 0x78, Mnemonic: STB, Format: Format3, Effect: Write},
	{OpCode: 0x54, Mnemonic: STCH, Format: Format3, Effect: Write},
	{OpCode: 0x80, Mnemonic: STF, Format: Format3, Effect: Write},
	{OpCode: 0xd4, Mnemonic: STI, Format: Format3, Effect: System},
	{OpCode: 0x14, Mnemonic: STL, Format: Format3, Effect: Write},
	{OpCode: 0x7c, Mnemonic: STS, Format: Format3, Effect: Write},
	{OpCode: 0xe8, Mnemonic: STSW, Format: Format3, Effect: Write},
	{OpCode: 0x84, Mnemonic: STT, Format: Format3, Effect: Write},
	{OpCode: 0x10, Mnemonic: STX, Format: Format3, Effect: Write},
	{OpCode: 0x1c, Mnemonic: SUB, Format: Format3, Effect: Read},
	{OpCode: 0x5c, Mnemonic: SUBF, Format: Format3, Effect: Read},
	{OpCode: 0x94, Mnemonic: SUBR, Format: Format2, Effect: Register},
	{OpCode: 0xb0, Mnemonic: SVC, Format: Format2, Effect: System},
	{OpCode: 0xe0, Mnemonic: TD, Format: Format3, Effect: Device},
	{OpCode: 0xf8, Mnemonic: TIO, Format: Format1, Effect: Device},
	{OpCode: 0x2c, Mnemonic: TIX, Format: Format3, Effect: Read},
	{OpCode: 0xb8, Mnemonic: TIXR, Format: Format2, Effect: Register},
	{OpCode: 0xdc, Mnemonic: WD, Format: Format3, Effect: Device},
}

// table of definitions indexed by opcode>>2. populated by init() from the
// Definitions slice.
var lookup [64]*Definition

func init() {
	for i := range lookup {
		lookup[i] = &Definition{
			OpCode:   uint8(i << 2),
			Mnemonic: Undefined,
			Format:   Format3,
		}
	}
	for i := range Definitions {
		lookup[Definitions[i].OpCode>>2] = &Definitions[i]
	}
}

// Lookup returns the definition for the opcode. The low two bits of the
// value are ignored. Opcodes that are not in the instruction set return a
// format 3 definition with the Undefined mnemonic.
func Lookup(opcode uint8) *Definition {
	return lookup[opcode>>2]
}
