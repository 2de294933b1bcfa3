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

package objectloader

import (
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/symbols"
)

// Section is a control section placed in memory.
type Section struct {
	Name string

	// the address the section was placed at
	LoadBase uint32
	Length   uint32

	// the start address given in the header record
	DeclaredStart uint32

	// names from the R records of the section
	References []string
}

func (s Section) String() string {
	return fmt.Sprintf("%-6s %06X-%06X (%06X bytes)", s.Name, s.LoadBase, s.LoadBase+s.Length, s.Length)
}

// Modification is an M record waiting to be applied by Relocate().
type Modification struct {
	Line    int
	Section string

	// absolute address of the first byte to modify
	Address uint32

	HalfBytes uint8
	Sign      byte
	Symbol    string
}

// Width returns the number of bytes affected by the modification.
func (m Modification) Width() int {
	return (int(m.HalfBytes) + 1) / 2
}

func (m Modification) String() string {
	return fmt.Sprintf("%06X %d%c%s", m.Address, m.HalfBytes, m.Sign, m.Symbol)
}

// Result of linking an object program.
type Result struct {
	// name of the first control section
	ProgramName string

	// declared start of the first control section
	StartAddress uint32

	// sum of the lengths of every control section
	Length uint32

	// initial value of PC
	FirstInstruction uint32

	Symbols       []symbols.Symbol
	Sections      []Section
	References    []string
	Modifications []Modification
	Instructions  []instructions.Decoded

	// a result with errors must not be executed
	Errors []error

	// problems that do not prevent execution
	Warnings []string

	// sha1 of the object program text
	Hash string

	// highest address written to plus one or the end of the last section,
	// whichever is greater
	extent uint32
}

// Unreliable returns true if there were errors during loading.
func (res *Result) Unreliable() bool {
	return len(res.Errors) > 0
}

// Extent returns the address following the last loaded byte.
func (res *Result) Extent() uint32 {
	return res.extent
}

func (res *Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: start=%06X length=%06X first=%06X", res.ProgramName, res.StartAddress, res.Length, res.FirstInstruction))
	if len(res.Errors) > 0 {
		s.WriteString(fmt.Sprintf(" [%d errors]", len(res.Errors)))
	}
	return s.String()
}
