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

// Package prefs facilitates the storage of preferential values. Preference
// values are created with the types in this package (Bool, Int and String)
// and are associated with a key on a Disk instance:
//
//	var steps prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("machine.steplimit", &steps)
//	dsk.Load()
//
// The file on disk contains one "key :: value" line per preference. Keys
// from other Disk instances sharing the same file are preserved when saving.
//
// Values can be overridden for a single run from the command line with
// PushCommandLineStack(). The string is a list of key/value pairs separated
// by semi-colons:
//
//	machine.steplimit::500; trace.echo::true
//
// Overridden values are applied by the next call to Load() and are not
// written to disk unless Save() is called afterwards.
package prefs
