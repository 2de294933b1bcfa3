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
	"errors"
	"path/filepath"
	"sort"

	"github.com/sicxe/sicxe/logger"
)

// Registry is the collection of devices used by a loaded program.
type Registry struct {
	dir     string
	devices map[string]Device

	// devices attached with Attach() survive a call to Release(). they are
	// closed but not forgotten
	attached map[string]bool
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. Devices that have not been attached are backed by files in the
// named directory.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:      dir,
		devices:  make(map[string]Device),
		attached: make(map[string]bool),
	}
}

// SetDirectory changes the directory used for new file devices.
func (reg *Registry) SetDirectory(dir string) {
	reg.dir = dir
}

// Directory returns the directory used for new file devices.
func (reg *Registry) Directory() string {
	return reg.dir
}

// Get returns the named device. A FileDevice is created if the device does
// not yet exist.
func (reg *Registry) Get(name string) Device {
	if dev, ok := reg.devices[name]; ok {
		return dev
	}
	dev := NewFileDevice(name, filepath.Join(reg.dir, name))
	reg.devices[name] = dev
	return dev
}

// Attach a device to the registry, replacing any existing device of the
// same name.
func (reg *Registry) Attach(dev Device) {
	if old, ok := reg.devices[dev.Name()]; ok && old != dev {
		if err := old.Close(); err != nil {
			logger.Logf(logger.Allow, "devices", "%s: %v", old.Name(), err)
		}
	}
	reg.devices[dev.Name()] = dev
	reg.attached[dev.Name()] = true
	logger.Logf(logger.Allow, "devices", "%s: attached", dev.Name())
}

// Detach removes an attached device from the registry. The device is closed.
func (reg *Registry) Detach(name string) error {
	dev, ok := reg.devices[name]
	if !ok {
		return nil
	}
	delete(reg.devices, name)
	delete(reg.attached, name)
	return dev.Close()
}

// Names returns the names of the devices currently in the registry.
func (reg *Registry) Names() []string {
	n := make([]string, 0, len(reg.devices))
	for k := range reg.devices {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// Release closes every device. Devices created by Get() are forgotten.
func (reg *Registry) Release() error {
	var errs []error
	for name, dev := range reg.devices {
		if err := dev.Close(); err != nil {
			errs = append(errs, err)
		}
		if !reg.attached[name] {
			delete(reg.devices, name)
		}
	}
	return errors.Join(errs...)
}
