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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Symbols  bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	if dsm.Program != "" {
		if _, err := io.WriteString(output, fmt.Sprintf("--- %s ---\n", dsm.Program)); err != nil {
			return err
		}
	}

	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}

	if attr.Symbols && dsm.Symbols.Len() > 0 {
		if _, err := io.WriteString(output, "\n"); err != nil {
			return err
		}
		dsm.Symbols.ListSymbols(output)
	}

	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	if e.Location != "" {
		s.WriteString(e.Location)
		s.WriteString("\n")
	}

	if attr.ByteCode {
		s.WriteString(dsm.GetField(Bytecode, e))
		s.WriteString(" ")
	}

	s.WriteString(dsm.GetField(Address, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(Mnemonic, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(Operand, e))

	if e.Notes != "" {
		s.WriteString(" ; ")
		s.WriteString(e.Notes)
	}

	line := strings.TrimRight(s.String(), " ")
	_, err := io.WriteString(output, line+"\n")
	return err
}
