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

import "fmt"

// Mask limits a value to the 24 bits of a register.
const Mask = 0xffffff

// signBit of a 24-bit value.
const signBit = 0x800000

// Signed interprets the low 24 bits of a value as a two's complement number.
func Signed(v uint32) int32 {
	v &= Mask
	if v&signBit == signBit {
		return int32(v) - 0x1000000
	}
	return int32(v)
}

// Compare two 24-bit values as signed numbers. Returns -1, 0 or +1.
func Compare(a, b uint32) int {
	sa := Signed(a)
	sb := Signed(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}

// Register is a 24-bit register.
type Register struct {
	value uint32
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint32, label string) Register {
	return Register{
		value: val & Mask,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%06X", r.label, r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint32 {
	return r.value
}

// Signed returns the current value of the register as a signed number.
func (r Register) Signed() int32 {
	return Signed(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&signBit == signBit
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register. The value is truncated to 24 bits.
func (r *Register) Load(val uint32) {
	r.value = val & Mask
}

// Add value to register, wrapping at 24 bits.
func (r *Register) Add(val uint32) {
	r.value = (r.value + val) & Mask
}
