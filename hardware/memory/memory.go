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

package memory

import (
	"fmt"
	"strings"

	"github.com/sicxe/sicxe/curated"
)

// Size of the memory image in bytes.
const Size = 0x10000

// Unwritten is the value of every byte in a freshly reset memory image.
const Unwritten = 0xff

// WordSize is the number of bytes in a SIC/XE word.
const WordSize = 3

// MemoryFault is the pattern for errors raised by out-of-range accesses.
const MemoryFault = "memory: fault at address %06X"

// Memory is the SIC/XE memory image.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset fills the memory image with the Unwritten sentinel.
func (mem *Memory) Reset() {
	for i := range mem.data {
		mem.data[i] = Unwritten
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.data))
}

// the fault address is the first byte of the access that falls outside the
// image.
func check(address uint32, n int) error {
	if uint64(address)+uint64(n) > Size {
		if address < Size {
			return curated.Errorf(MemoryFault, Size)
		}
		return curated.Errorf(MemoryFault, address)
	}
	return nil
}

// Read a single byte.
func (mem *Memory) Read(address uint32) (uint8, error) {
	if err := check(address, 1); err != nil {
		return 0, err
	}
	return mem.data[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint32, data uint8) error {
	if err := check(address, 1); err != nil {
		return err
	}
	mem.data[address] = data
	return nil
}

// ReadWord reads three bytes as a big-endian 24-bit value.
func (mem *Memory) ReadWord(address uint32) (uint32, error) {
	if err := check(address, WordSize); err != nil {
		return 0, err
	}
	return uint32(mem.data[address])<<16 | uint32(mem.data[address+1])<<8 | uint32(mem.data[address+2]), nil
}

// WriteWord writes the low 24 bits of the value as three big-endian bytes.
func (mem *Memory) WriteWord(address uint32, data uint32) error {
	if err := check(address, WordSize); err != nil {
		return err
	}
	mem.data[address] = uint8(data >> 16)
	mem.data[address+1] = uint8(data >> 8)
	mem.data[address+2] = uint8(data)
	return nil
}

// Dump returns a copy of n bytes starting at address.
func (mem *Memory) Dump(address uint32, n int) ([]uint8, error) {
	if n < 0 {
		n = 0
	}
	if err := check(address, n); err != nil {
		return nil, err
	}
	d := make([]uint8, n)
	copy(d, mem.data[address:])
	return d, nil
}

// Peek returns up to n bytes starting at address without copying. Fewer
// than n bytes are returned when the end of the image is reached. The
// returned slice must not be modified.
func (mem *Memory) Peek(address uint32, n int) []uint8 {
	if address >= Size {
		return nil
	}
	end := uint64(address) + uint64(n)
	if end > Size {
		end = Size
	}
	return mem.data[address:end]
}

// Hexdump formats n bytes starting at address, sixteen to a line.
func (mem *Memory) Hexdump(address uint32, n int) (string, error) {
	d, err := mem.Dump(address, n)
	if err != nil {
		return "", err
	}

	s := strings.Builder{}
	for i := 0; i < len(d); i += 16 {
		s.WriteString(fmt.Sprintf("%06X |", address+uint32(i)))
		for j := i; j < i+16 && j < len(d); j++ {
			s.WriteString(fmt.Sprintf(" %02X", d[j]))
		}
		s.WriteString("\n")
	}
	return s.String(), nil
}
