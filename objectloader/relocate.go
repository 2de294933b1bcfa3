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
	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/symbols"
)

// UndefinedSymbol is the pattern for errors raised by modification records
// that name a symbol that is not in the symbol table.
const UndefinedSymbol = "objectloader: undefined symbol %s (line %d)"

// Relocate applies modification records to memory. The symbol table must be
// complete. Each call applies every modification again so a modification
// should only ever be passed to Relocate() once.
func Relocate(mem *memory.Memory, symtab *symbols.Table, mods []Modification) []error {
	var errs []error

	for _, m := range mods {
		v, ok := symtab.Search(m.Symbol)
		if !ok {
			errs = append(errs, curated.Errorf(UndefinedSymbol, m.Symbol, m.Line))
			continue
		}

		if err := relocate(mem, m, v); err != nil {
			errs = append(errs, malformed(m.Line, err))
		}
	}

	return errs
}

func relocate(mem *memory.Memory, m Modification, value uint32) error {
	w := m.Width()

	var original uint64
	for i := 0; i < w; i++ {
		b, err := mem.Read(m.Address + uint32(i))
		if err != nil {
			return err
		}
		original = original<<8 | uint64(b)
	}

	var result uint64
	if m.Sign == '-' {
		result = original - uint64(value)
	} else {
		result = original + uint64(value)
	}

	for i := w - 1; i >= 0; i-- {
		if err := mem.Write(m.Address+uint32(i), uint8(result)); err != nil {
			return err
		}
		result >>= 8
	}

	return nil
}
