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

import "fmt"

// DeviceUnavailable is the pattern for errors raised when a device cannot
// be opened for reading or writing.
const DeviceUnavailable = "devices: device %s unavailable: %v"

// Device is a named byte stream.
type Device interface {
	// Name of the device.
	Name() string

	// ReadByte returns the next byte from the device. io.EOF is returned
	// at the end of the stream.
	ReadByte() (byte, error)

	// WriteByte appends a byte to the device.
	WriteByte(b byte) error

	// ProbeReady returns true if the device is ready for reading or writing.
	ProbeReady() bool

	// Close releases any resources held by the device. The device can be
	// used again after a call to Close(). Cursors will start from the
	// beginning.
	Close() error
}

// Name returns the device name for the operand byte of an IO instruction.
func Name(operand uint8) string {
	return fmt.Sprintf("%02X", operand)
}
