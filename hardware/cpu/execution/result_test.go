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

package execution_test

import (
	"strings"
	"testing"

	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/test"
)

func TestResultString(t *testing.T) {
	ins, err := instructions.Decode([]uint8{0x4f, 0x00, 0x00}, 0x10)
	test.DemandSuccess(t, err)

	r := execution.Result{
		Step:        1,
		Instruction: ins,
		Executed:    true,
		Registers:   registers.Snapshot{L: registers.NoCaller, PC: registers.HaltAddress},
		Halted:      true,
	}
	test.ExpectSuccess(t, r.HasInstruction())

	s := r.String()
	test.ExpectSuccess(t, strings.Contains(s, "000010  4F0000    RSUB"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "halted"))

	r = execution.Result{
		Step:      2,
		Registers: registers.Snapshot{PC: 0x20},
		Halted:    true,
		Error:     "no instruction",
	}
	test.ExpectFailure(t, r.HasInstruction())
	test.ExpectSuccess(t, strings.HasSuffix(r.String(), "error: no instruction"))
	test.ExpectSuccess(t, strings.Contains(r.String(), "000020"))
}
