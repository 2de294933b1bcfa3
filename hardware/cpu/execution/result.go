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

package execution

import (
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
)

// Result of a single step of the machine.
type Result struct {
	// step number. the first step of a loaded program is step 1
	Step int

	// the instruction. only valid if Executed is true or Error is not empty
	Instruction instructions.Decoded

	// whether the instruction completed without error
	Executed bool

	// registers after the step
	Registers registers.Snapshot

	EffectiveAddress    uint32
	HasEffectiveAddress bool

	// the machine is halted after this step
	Halted bool

	// the error that halted the machine, if any
	Error string
}

// HasInstruction returns true if the step decoded an instruction.
func (r Result) HasInstruction() bool {
	return r.Instruction.Defn != nil
}

// String returns the result as a line suitable for an execution log.
func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%6d ", r.Step))

	if r.HasInstruction() {
		s.WriteString(fmt.Sprintf("%06X  %-8s  %-16s", r.Instruction.Address, r.Instruction.Hex(), r.Instruction.String()))
	} else {
		s.WriteString(fmt.Sprintf("%06X  %-8s  %-16s", r.Registers.PC, "", "-"))
	}

	if r.HasEffectiveAddress {
		s.WriteString(fmt.Sprintf("  ea=%06X", r.EffectiveAddress))
	}

	s.WriteString(fmt.Sprintf("  A=%06X X=%06X L=%06X PC=%06X SW=%06X",
		r.Registers.A, r.Registers.X, r.Registers.L, r.Registers.PC, r.Registers.SW))

	if r.Error != "" {
		s.WriteString("  error: ")
		s.WriteString(r.Error)
	} else if r.Halted {
		s.WriteString("  halted")
	}

	return s.String()
}
