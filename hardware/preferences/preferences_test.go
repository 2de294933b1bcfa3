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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sicxe/sicxe/hardware/preferences"
	"github.com/sicxe/sicxe/prefs"
	"github.com/sicxe/sicxe/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.Defaults()
	test.ExpectEquality(t, p.StepLimit.Get().(int), 100000)
	test.ExpectEquality(t, p.DeviceDir.String(), ".")
	test.ExpectEquality(t, p.Base.Get().(int), 0)
	test.ExpectEquality(t, p.Padding.String(), "F1 05 001000 454F46")
	test.ExpectEquality(t, p.TraceEcho.Get().(bool), false)
	test.ExpectEquality(t, len(p.Markers()), 4)

	// no file so these do nothing
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
	test.ExpectSuccess(t, strings.Contains(p.String(), "machine.steplimit :: 100000"))
}

func TestValidation(t *testing.T) {
	p := preferences.Defaults()
	test.ExpectFailure(t, p.StepLimit.Set(0))
	test.ExpectFailure(t, p.Base.Set(0x10000))
	test.ExpectFailure(t, p.Padding.Set("F1 XYZ"))
	test.ExpectEquality(t, p.StepLimit.Get().(int), 100000)
	test.ExpectEquality(t, p.Padding.String(), "F1 05 001000 454F46")

	test.ExpectSuccess(t, p.Padding.Set(""))
	test.ExpectEquality(t, len(p.Markers()), 0)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.StepLimit.Set(50))
	test.ExpectSuccess(t, p.Base.Set("0x1000"))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "loader.base :: 4096\n"))

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.StepLimit.Get().(int), 50)
	test.ExpectEquality(t, q.Base.Get().(int), 0x1000)

	q.SetDefaults()
	test.ExpectEquality(t, q.StepLimit.Get().(int), 100000)
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("machine.steplimit::25; trace.echo::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StepLimit.Get().(int), 25)
	test.ExpectEquality(t, p.TraceEcho.Get().(bool), true)
}
