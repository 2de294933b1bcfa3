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

package preferences

import (
	"fmt"

	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/objectloader"
	"github.com/sicxe/sicxe/paths"
	"github.com/sicxe/sicxe/prefs"
)

// default preference values.
const (
	DefaultStepLimit = 100000
	DefaultDeviceDir = "."
	DefaultBase      = 0
)

// Preferences defines and collates all the preference values used by the
// machine.
type Preferences struct {
	dsk *prefs.Disk

	// maximum number of steps before RunToHalt() gives up
	StepLimit prefs.Int

	// directory containing the files backing devices
	DeviceDir prefs.String

	// address of the first control section
	Base prefs.Int

	// padding markers in the format understood by objectloader.ParseMarkers()
	Padding prefs.String

	// echo the execution log
	TraceEcho prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("machine.steplimit :: %s\ndevices.directory :: %s\nloader.base :: %s\nloader.padding :: %s\ntrace.echo :: %s\n",
			&p.StepLimit, &p.DeviceDir, &p.Base, &p.Padding, &p.TraceEcho)
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with a specific file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := Defaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("machine.steplimit", &p.StepLimit); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("devices.directory", &p.DeviceDir); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("loader.base", &p.Base); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("loader.padding", &p.Padding); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("trace.echo", &p.TraceEcho); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// Defaults returns a Preferences instance with default values that is not
// associated with a file on disk.
func Defaults() *Preferences {
	p := &Preferences{}

	p.StepLimit.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("step limit must be positive")
		}
		return nil
	})
	p.Base.SetHookPre(func(v prefs.Value) error {
		if b := v.(int); b < 0 || b >= memory.Size {
			return fmt.Errorf("load base out of range (%#x)", b)
		}
		return nil
	})
	p.Padding.SetHookPre(func(v prefs.Value) error {
		_, err := objectloader.ParseMarkers(v.(string))
		return err
	})

	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.StepLimit.Set(DefaultStepLimit)
	_ = p.DeviceDir.Set(DefaultDeviceDir)
	_ = p.Base.Set(DefaultBase)
	_ = p.Padding.Set(objectloader.DefaultPadding)
	_ = p.TraceEcho.Set(false)
}

// Markers returns the padding markers.
func (p *Preferences) Markers() []objectloader.Marker {
	m, err := objectloader.ParseMarkers(p.Padding.String())
	if err != nil {
		return objectloader.DefaultMarkers()
	}
	return m
}

// Load preferences from disk. Does nothing if the preferences are not
// associated with a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save preferences to disk. Does nothing if the preferences are not
// associated with a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
