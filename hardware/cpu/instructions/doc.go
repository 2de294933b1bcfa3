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

// Package instructions defines the SIC/XE instruction set and decodes
// machine code into Decoded instructions.
//
// The opcode is the first byte of an instruction with the low two bits
// cleared. For formats 3 and 4 the low two bits are the n and i flags.
// Format 1 and format 2 instructions are identified by opcode alone. Every
// other opcode is format 3, or format 4 when the e flag (bit 4 of the second
// byte) is set.
//
// Decoding is pure. Decode() never touches the machine and the Decoded
// value is not changed once produced. The target address of a format 3/4
// instruction depends on the B and X registers and is resolved with
// Decoded.TargetAddress().
package instructions
