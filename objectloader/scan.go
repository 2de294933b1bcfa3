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
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/memory"
)

// DefaultPadding is the list of padding markers in the format accepted by
// ParseMarkers().
const DefaultPadding = "F1 05 001000 454F46"

// Marker is a sequence of bytes that the boundary scan skips.
type Marker []uint8

func (m Marker) String() string {
	return fmt.Sprintf("%X", []uint8(m))
}

// ParseMarkers parses a space separated list of hex byte sequences.
func ParseMarkers(s string) ([]Marker, error) {
	var markers []Marker
	for _, f := range strings.Fields(s) {
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, fmt.Errorf("padding marker (%s): %w", f, err)
		}
		markers = append(markers, Marker(b))
	}
	return markers, nil
}

// DefaultMarkers returns the markers described by DefaultPadding.
func DefaultMarkers() []Marker {
	m, _ := ParseMarkers(DefaultPadding)
	return m
}

// Scan memory from address zero to the extent and list the instructions
// found. Unwritten bytes and padding markers are skipped.
func Scan(mem *memory.Memory, extent uint32, padding []Marker) []instructions.Decoded {
	var ins []instructions.Decoded

	extent = min(extent, memory.Size)

	address := uint32(0)
	for address < extent {
		b := mem.Peek(address, 4)

		if b[0] == memory.Unwritten {
			address++
			continue
		}

		if n := matchMarker(b, mem, address, extent, padding); n > 0 {
			address += uint32(n)
			continue
		}

		d, err := instructions.Decode(b, address)
		if err != nil {
			break
		}
		ins = append(ins, d)
		address += uint32(d.Len())
	}

	return ins
}

// returns the length of the first marker found at the address.
func matchMarker(b []uint8, mem *memory.Memory, address uint32, extent uint32, padding []Marker) int {
	for _, m := range padding {
		if len(m) == 0 || address+uint32(len(m)) > extent {
			continue
		}
		if len(m) > len(b) {
			b = mem.Peek(address, len(m))
		}
		if bytes.HasPrefix(b, m) {
			return len(m)
		}
	}
	return 0
}
