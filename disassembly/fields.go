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

import "fmt"

type widths struct {
	location int
	bytecode int
	address  int
	mnemonic int
	operand  int
	notes    int
}

type format struct {
	location string
	bytecode string
	address  string
	mnemonic string
	operand  string
	notes    string
}

type fields struct {
	widths widths
	fmt    format
}

func (fld *fields) update(e *Entry) {
	fld.widths.location = max(fld.widths.location, len(e.Location))
	fld.widths.bytecode = max(fld.widths.bytecode, len(e.Bytecode))
	fld.widths.address = max(fld.widths.address, len(e.Address))
	fld.widths.mnemonic = max(fld.widths.mnemonic, len(e.Mnemonic))
	fld.widths.operand = max(fld.widths.operand, len(e.Operand))
	fld.widths.notes = max(fld.widths.notes, len(e.Notes))

	fld.fmt.location = fmt.Sprintf("%%-%ds", fld.widths.location)
	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.address = fmt.Sprintf("%%%ds", fld.widths.address)
	fld.fmt.mnemonic = fmt.Sprintf("%%-%ds", fld.widths.mnemonic)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
	fld.fmt.notes = fmt.Sprintf("%%-%ds", fld.widths.notes)
}

// Field identifies which part of the disassembly entry is of interest.
type Field int

// List of valid fields.
const (
	Location Field = iota
	Bytecode
	Address
	Mnemonic
	Operand
	Notes
)

// GetField returns the formatted field from the specified Entry. Fields are
// padded to the width of the widest field in the disassembly.
func (dsm *Disassembly) GetField(field Field, e *Entry) string {
	switch field {
	case Location:
		return fmt.Sprintf(dsm.fields.fmt.location, e.Location)
	case Bytecode:
		return fmt.Sprintf(dsm.fields.fmt.bytecode, e.Bytecode)
	case Address:
		return fmt.Sprintf(dsm.fields.fmt.address, e.Address)
	case Mnemonic:
		return fmt.Sprintf(dsm.fields.fmt.mnemonic, e.Mnemonic)
	case Operand:
		return fmt.Sprintf(dsm.fields.fmt.operand, e.Operand)
	case Notes:
		return fmt.Sprintf(dsm.fields.fmt.notes, e.Notes)
	}
	return ""
}
