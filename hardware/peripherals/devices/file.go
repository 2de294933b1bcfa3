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

import (
	"bufio"
	"errors"
	"os"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/logger"
)

// FileDevice is a Device backed by a file.
type FileDevice struct {
	name string
	path string

	// handles are opened on first use and kept until Close()
	rf     *os.File
	reader *bufio.Reader
	writer *os.File
}

// NewFileDevice is the preferred method of initialisation for the
// FileDevice type. The file is not opened until the device is used.
func NewFileDevice(name string, path string) *FileDevice {
	return &FileDevice{
		name: name,
		path: path,
	}
}

func (dev *FileDevice) String() string {
	return dev.name + " -> " + dev.path
}

// Name implements the Device interface.
func (dev *FileDevice) Name() string {
	return dev.name
}

// Path returns the path of the file backing the device.
func (dev *FileDevice) Path() string {
	return dev.path
}

// ReadByte implements the Device interface.
func (dev *FileDevice) ReadByte() (byte, error) {
	if dev.reader == nil {
		f, err := os.Open(dev.path)
		if err != nil {
			return 0, curated.Errorf(DeviceUnavailable, dev.name, err)
		}
		dev.rf = f
		dev.reader = bufio.NewReader(f)
		logger.Logf(logger.Allow, "devices", "%s: opened %s for reading", dev.name, dev.path)
	}
	return dev.reader.ReadByte()
}

// WriteByte implements the Device interface. Bytes are appended to the file
// as they are written.
func (dev *FileDevice) WriteByte(b byte) error {
	if dev.writer == nil {
		f, err := os.OpenFile(dev.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return curated.Errorf(DeviceUnavailable, dev.name, err)
		}
		dev.writer = f
		logger.Logf(logger.Allow, "devices", "%s: opened %s for writing", dev.name, dev.path)
	}
	if _, err := dev.writer.Write([]byte{b}); err != nil {
		return curated.Errorf(DeviceUnavailable, dev.name, err)
	}
	return nil
}

// ProbeReady implements the Device interface. A device is ready if it has
// already been opened or if the backing file exists.
func (dev *FileDevice) ProbeReady() bool {
	if dev.reader != nil || dev.writer != nil {
		return true
	}
	_, err := os.Stat(dev.path)
	return err == nil
}

// Close implements the Device interface.
func (dev *FileDevice) Close() error {
	var errs []error
	if dev.rf != nil {
		errs = append(errs, dev.rf.Close())
		dev.rf = nil
		dev.reader = nil
	}
	if dev.writer != nil {
		errs = append(errs, dev.writer.Close())
		dev.writer = nil
	}
	return errors.Join(errs...)
}
