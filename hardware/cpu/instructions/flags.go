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

import "strings"

// Flags are the six addressing bits of a format 3/4 instruction.
type Flags struct {
	N bool
	I bool
	X bool
	B bool
	P bool
	E bool
}

// flag bits in the second byte of a format 3/4 instruction
const (
	flagX = 0x80
	flagB = 0x40
	flagP = 0x20
	flagE = 0x10
)

func decodeFlags(b0, b1 uint8) Flags {
	return Flags{
		N: b0&0x02 == 0x02,
		I: b0&0x01 == 0x01,
		X: b1&flagX == flagX,
		B: b1&flagB == flagB,
		P: b1&flagP == flagP,
		E: b1&flagE == flagE,
	}
}

// AddressingMode classifies the n and i flags.
func (f Flags) AddressingMode() AddressingMode {
	switch {
	case !f.N && f.I:
		return Immediate
	case f.N && !f.I:
		return Indirect
	}
	return Simple
}

// String returns the flags in nixbpe order. Unset flags are shown as a dash.
func (f Flags) String() string {
	s := strings.Builder{}
	for _, v := range []struct {
		set bool
		c   byte
	}{
		{f.N, 'n'}, {f.I, 'i'}, {f.X, 'x'}, {f.B, 'b'}, {f.P, 'p'}, {f.E, 'e'},
	} {
		if v.set {
			s.WriteByte(v.c)
		} else {
			s.WriteByte('-')
		}
	}
	return s.String()
}
