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

package devices_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
	"github.com/sicxe/sicxe/test"
)

func TestName(t *testing.T) {
	test.ExpectEquality(t, devices.Name(0xf1), "F1")
	test.ExpectEquality(t, devices.Name(0x05), "05")
}

func TestFileDeviceRead(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "F1"), []byte("A"), 0o644))

	reg := devices.NewRegistry(dir)
	dev := reg.Get("F1")
	test.ExpectSuccess(t, dev.ProbeReady())

	b, err := dev.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, byte('A'))

	_, err = dev.ReadByte()
	test.ExpectEquality(t, err, io.EOF)

	// same device is returned while the registry holds it
	test.ExpectEquality(t, reg.Get("F1"), dev)

	// release forgets the cursor
	test.ExpectSuccess(t, reg.Release())
	b, err = reg.Get("F1").ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, byte('A'))
}

func TestFileDeviceWrite(t *testing.T) {
	dir := t.TempDir()
	reg := devices.NewRegistry(dir)

	dev := reg.Get("05")
	test.ExpectFailure(t, dev.ProbeReady())

	test.ExpectSuccess(t, dev.WriteByte('h'))
	test.ExpectSuccess(t, dev.WriteByte('i'))
	test.ExpectSuccess(t, dev.ProbeReady())
	test.ExpectSuccess(t, reg.Release())

	// writes append
	test.ExpectSuccess(t, reg.Get("05").WriteByte('!'))
	test.ExpectSuccess(t, reg.Release())

	data, err := os.ReadFile(filepath.Join(dir, "05"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(data), "hi!")
}

func TestUnavailable(t *testing.T) {
	reg := devices.NewRegistry(filepath.Join(t.TempDir(), "missing"))

	_, err := reg.Get("F1").ReadByte()
	test.ExpectSuccess(t, curated.Is(err, devices.DeviceUnavailable))

	err = reg.Get("F2").WriteByte(0)
	test.ExpectSuccess(t, curated.Is(err, devices.DeviceUnavailable))
}

func TestBuffer(t *testing.T) {
	reg := devices.NewRegistry(t.TempDir())
	buf := devices.NewBuffer("F1", []byte{0x41})
	reg.Attach(buf)

	dev := reg.Get("F1")
	b, err := dev.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, byte(0x41))
	_, err = dev.ReadByte()
	test.ExpectEquality(t, err, io.EOF)

	test.ExpectSuccess(t, dev.WriteByte(0x42))
	test.ExpectEquality(t, string(buf.Written()), "B")

	// attached devices survive release but are rewound
	test.ExpectSuccess(t, reg.Release())
	b, err = reg.Get("F1").ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, byte(0x41))

	test.ExpectEquality(t, len(reg.Names()), 1)
	test.ExpectSuccess(t, reg.Detach("F1"))
	test.ExpectEquality(t, len(reg.Names()), 0)
}
