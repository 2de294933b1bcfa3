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

package registers_test

import (
	"testing"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0x1ffffff, "A")
	test.ExpectEquality(t, r.Value(), uint32(0xffffff))
	test.ExpectEquality(t, r.Signed(), int32(-1))
	test.ExpectSuccess(t, r.IsNegative())
	test.ExpectEquality(t, r.String(), "A=FFFFFF")

	r.Add(1)
	test.ExpectSuccess(t, r.IsZero())

	r.Load(0x7fffff)
	test.ExpectFailure(t, r.IsNegative())
	test.ExpectEquality(t, r.Signed(), int32(0x7fffff))
}

func TestCompare(t *testing.T) {
	test.ExpectEquality(t, registers.Compare(0, 0), 0)
	test.ExpectEquality(t, registers.Compare(0x7fffff, 0), 1)
	test.ExpectEquality(t, registers.Compare(0x800000, 0), -1)
	test.ExpectEquality(t, registers.Compare(0x800000, 0x7fffff), -1)
	test.ExpectEquality(t, registers.Compare(0xffffff, 0), -1)
	test.ExpectEquality(t, registers.Compare(0xffffff, 0x800000), 1)
	test.ExpectEquality(t, registers.Compare(0x7fffff, 0x7fffff), 0)
}

func TestFile(t *testing.T) {
	f := registers.NewFile()
	test.ExpectEquality(t, f.L.Value(), uint32(registers.NoCaller))
	test.ExpectEquality(t, f.PC.Value(), uint32(0))

	test.ExpectSuccess(t, f.Set(registers.T, 0x123))
	v, err := f.Get(registers.T)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x123))

	test.ExpectSuccess(t, f.Set(registers.F, 7))
	test.ExpectEquality(t, f.F, 7.0)

	_, err = f.Get(registers.F)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))
	_, err = f.Get(7)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))
	err = f.Set(12, 0)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))

	for _, c := range []int{-1, 0, 1} {
		f.SetCondition(c)
		test.ExpectEquality(t, f.Condition(), c)
	}
	f.SetCondition(-1)
	test.ExpectEquality(t, f.SW.Value(), uint32(0xffffff))

	f.Reset()
	test.ExpectEquality(t, f.Snapshot(), registers.Snapshot{L: registers.NoCaller})
	test.ExpectEquality(t, registers.SW.String(), "SW")
	test.ExpectEquality(t, registers.Number(7).String(), "R7")
}
