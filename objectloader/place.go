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

	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/symbols"
)

// place is the first pass of the load. control sections are allocated from
// the base address and text records are written to memory. modification
// records are collected but not applied.
func place(recs []any, mem *memory.Memory, symtab *symbols.Table, base uint32) *Result {
	res := &Result{}

	cursor := base
	res.extent = base

	var sec *Section
	var haveEntry bool

	for _, r := range recs {
		switch r := r.(type) {
		case header:
			res.Sections = append(res.Sections, Section{
				Name:          r.name,
				LoadBase:      cursor,
				Length:        r.length,
				DeclaredStart: r.start,
			})
			sec = &res.Sections[len(res.Sections)-1]

			if len(res.Sections) == 1 {
				res.ProgramName = r.name
				res.StartAddress = r.start
				res.FirstInstruction = cursor
			}

			if err := symtab.Add(r.name, cursor); err != nil {
				res.Errors = append(res.Errors, err)
			}

			cursor += r.length
			res.Length += r.length
			res.extent = max(res.extent, cursor)

		case define:
			if sec == nil {
				res.Errors = append(res.Errors, malformed(r.line, "no header record"))
				continue
			}
			for _, d := range r.defs {
				if err := symtab.Add(d.name, sec.LoadBase+d.offset); err != nil {
					res.Errors = append(res.Errors, err)
				}
			}

		case refer:
			if sec == nil {
				res.Errors = append(res.Errors, malformed(r.line, "no header record"))
				continue
			}
			sec.References = append(sec.References, r.names...)
			res.References = append(res.References, r.names...)

		case text:
			if sec == nil {
				res.Errors = append(res.Errors, malformed(r.line, "no header record"))
				continue
			}

			data := r.data
			if r.halfByte {
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: text record ends with an unpaired hex digit", r.line))
			}
			if len(data) < r.count {
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: text record has %d bytes, expected %d", r.line, len(data), r.count))
			} else if len(data) > r.count {
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: text record has %d bytes, ignoring %d", r.line, len(data), len(data)-r.count))
				data = data[:r.count]
			}

			var outside bool
			for i, b := range data {
				offset := r.offset + uint32(i)
				address := sec.LoadBase + offset
				if err := mem.Write(address, b); err != nil {
					res.Errors = append(res.Errors, malformed(r.line, err))
					break
				}
				res.extent = max(res.extent, address+1)
				if offset >= sec.Length && !outside {
					outside = true
					res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: byte at %06X is outside section %s", r.line, address, sec.Name))
				}
			}

		case modification:
			if sec == nil {
				res.Errors = append(res.Errors, malformed(r.line, "no header record"))
				continue
			}
			res.Modifications = append(res.Modifications, Modification{
				Line:      r.line,
				Section:   sec.Name,
				Address:   sec.LoadBase + r.offset,
				HalfBytes: r.halfBytes,
				Sign:      r.sign,
				Symbol:    r.symbol,
			})

		case end:
			if sec == nil {
				res.Errors = append(res.Errors, malformed(r.line, "no header record"))
				continue
			}
			if r.hasAddress && !haveEntry {
				haveEntry = true
				res.FirstInstruction = sec.LoadBase + r.address
			}
		}
	}

	return res
}
