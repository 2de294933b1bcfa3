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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/symbols"
)

// Entry is a disassembled instruction, formatted for display.
type Entry struct {
	// the decoded instruction
	Instruction instructions.Decoded

	// symbol at the address of the instruction, if any
	Location string

	Bytecode string
	Address  string
	Mnemonic string
	Operand  string

	// symbol at the target address of the instruction, if any
	Notes string
}

func newEntry(ins instructions.Decoded, symtab *symbols.Table) *Entry {
	e := &Entry{
		Instruction: ins,
		Bytecode:    ins.Hex(),
		Address:     fmt.Sprintf("%06X", ins.Address),
	}

	e.Mnemonic, e.Operand, _ = strings.Cut(ins.String(), " ")

	if symtab == nil {
		return e
	}

	if l, ok := symtab.ReverseSearch(ins.Address); ok {
		e.Location = l
	}

	if ta, ok := staticTarget(ins); ok {
		if l, ok := symtab.ReverseSearch(ta); ok {
			e.Notes = l
		}
	}

	return e
}

// staticTarget returns the target address of the instruction if it can be
// known without executing the program.
func staticTarget(ins instructions.Decoded) (uint32, bool) {
	if !ins.HasOperand() || ins.Flags.B || ins.Flags.X {
		return 0, false
	}
	if ins.Flags.AddressingMode() == instructions.Immediate && !ins.Flags.P {
		return 0, false
	}
	return ins.TargetAddress(0, 0), true
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", e.Address, e.Mnemonic))
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}
	if e.Notes != "" {
		s.WriteString(" ; ")
		s.WriteString(e.Notes)
	}
	return s.String()
}
