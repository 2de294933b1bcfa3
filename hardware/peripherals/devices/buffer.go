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

package devices

import "io"

// Buffer is an in-memory Device. Bytes are read from the data supplied to
// NewBuffer() and bytes written are collected separately.
type Buffer struct {
	name    string
	data    []byte
	cursor  int
	written []byte

	// Ready is the value returned by ProbeReady()
	Ready bool
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
func NewBuffer(name string, data []byte) *Buffer {
	return &Buffer{
		name:  name,
		data:  data,
		Ready: true,
	}
}

// Name implements the Device interface.
func (buf *Buffer) Name() string {
	return buf.name
}

// ReadByte implements the Device interface.
func (buf *Buffer) ReadByte() (byte, error) {
	if buf.cursor >= len(buf.data) {
		return 0, io.EOF
	}
	b := buf.data[buf.cursor]
	buf.cursor++
	return b, nil
}

// WriteByte implements the Device interface.
func (buf *Buffer) WriteByte(b byte) error {
	buf.written = append(buf.written, b)
	return nil
}

// ProbeReady implements the Device interface.
func (buf *Buffer) ProbeReady() bool {
	return buf.Ready
}

// Close implements the Device interface. The read cursor is rewound. Written
// data is kept.
func (buf *Buffer) Close() error {
	buf.cursor = 0
	return nil
}

// Written returns the bytes written to the device.
func (buf *Buffer) Written() []byte {
	return buf.written
}
