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

// Package registers implements the register file of the SIC/XE CPU.
//
// The integer registers (A, X, L, B, S, T, PC and SW) are 24 bits wide and
// are stored as uint32 values masked to 24 bits. F is stored as a float64;
// only its storage is modelled.
//
// Format 2 instructions name registers by number. The numbering is:
//
//	A=0 X=1 L=2 B=3 S=4 T=5 F=6 PC=8 SW=9
//
// SW holds the result of the last comparison as -1, 0 or +1, stored as the
// 24-bit two's complement of the value.
package registers
