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

package symbols

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sicxe/sicxe/curated"
)

// DuplicateSymbol is the pattern for errors raised when a name is defined
// more than once.
const DuplicateSymbol = "symbols: duplicate symbol %s (already at %06X)"

// Symbol associates a name with an absolute address.
type Symbol struct {
	Name    string
	Address uint32
}

func (s Symbol) String() string {
	return fmt.Sprintf("%06X -> %s", s.Address, s.Name)
}

// Table maps names to addresses. It also keeps track of the widest symbol
// in the table.
type Table struct {
	entries map[string]uint32

	// index of entries sorted by address. entries with the same address are
	// kept in the order they were added
	idx []Symbol

	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]uint32),
	}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, e := range t.idx {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}

// Add a new name to the table. The name is trimmed of surrounding spaces.
func (t *Table) Add(name string, address uint32) error {
	name = strings.TrimSpace(name)
	if a, ok := t.entries[name]; ok {
		return curated.Errorf(DuplicateSymbol, name, a)
	}

	t.entries[name] = address

	i := sort.Search(len(t.idx), func(i int) bool {
		return t.idx[i].Address > address
	})
	t.idx = append(t.idx, Symbol{})
	copy(t.idx[i+1:], t.idx[i:])
	t.idx[i] = Symbol{Name: name, Address: address}

	if len(name) > t.maxWidth {
		t.maxWidth = len(name)
	}

	return nil
}

// Search returns the address of the named symbol. Matching is case
// sensitive.
func (t *Table) Search(name string) (uint32, bool) {
	a, ok := t.entries[strings.TrimSpace(name)]
	return a, ok
}

// ReverseSearch returns the first symbol added for the address.
func (t *Table) ReverseSearch(address uint32) (string, bool) {
	i := sort.Search(len(t.idx), func(i int) bool {
		return t.idx[i].Address >= address
	})
	if i < len(t.idx) && t.idx[i].Address == address {
		return t.idx[i].Name, true
	}
	return "", false
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.idx)
}

// MaxWidth returns the length of the longest name in the table.
func (t *Table) MaxWidth() int {
	return t.maxWidth
}

// List returns a copy of the symbols sorted by address.
func (t *Table) List() []Symbol {
	l := make([]Symbol, len(t.idx))
	copy(l, t.idx)
	return l
}

// ListSymbols outputs every symbol in the table, sorted by address.
func (t *Table) ListSymbols(output io.Writer) {
	io.WriteString(output, "Symbols\n-------\n")
	io.WriteString(output, t.String())
}
