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
	"github.com/sicxe/sicxe/hardware"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/objectloader"
	"github.com/sicxe/sicxe/symbols"
)

// Disassembly of a loaded object program.
type Disassembly struct {
	// name of the program. empty if the program has no header
	Program string

	// entries in address order
	Entries []*Entry

	// symbols of the program. may be empty
	Symbols *symbols.Table

	fields fields
}

// NewDisassembly creates a disassembly from a list of instruction
// boundaries. The symbol table can be nil.
func NewDisassembly(ins []instructions.Decoded, symtab *symbols.Table) *Disassembly {
	if symtab == nil {
		symtab = symbols.NewTable()
	}

	dsm := &Disassembly{
		Symbols: symtab,
		Entries: make([]*Entry, 0, len(ins)),
	}

	for _, i := range ins {
		e := newEntry(i, symtab)
		dsm.fields.update(e)
		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm
}

// FromMachine disassembles the program currently loaded into the machine.
func FromMachine(m *hardware.Machine) *Disassembly {
	dsm := NewDisassembly(m.Instructions(), m.SymbolTable())
	if res := m.Result(); res != nil {
		dsm.Program = res.ProgramName
	}
	return dsm
}

// FromObject loads the object program into a fresh memory image and returns
// the disassembly along with the load result. Problems with the object
// program are recorded in the result and do not prevent the disassembly.
func FromObject(ld objectloader.Loader) (*Disassembly, *objectloader.Result, error) {
	mem := memory.NewMemory()
	symtab := symbols.NewTable()

	res, err := ld.Link(mem, symtab)
	if err != nil {
		return nil, nil, err
	}

	dsm := NewDisassembly(res.Instructions, symtab)
	dsm.Program = res.ProgramName

	return dsm, res, nil
}

// Search returns the entry for the instruction at the address.
func (dsm *Disassembly) Search(address uint32) (*Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Instruction.Address == address {
			return e, true
		}
		if e.Instruction.Address > address {
			break
		}
	}
	return nil, false
}
