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

// Package preferences collates the preference values used by the machine.
// Values are stored in the preferences file in the sicxe resource directory
// and can be overridden from the command line with the prefs package.
//
//	machine.steplimit   maximum number of steps in a call to RunToHalt()
//	devices.directory   directory of the files backing devices
//	loader.base         address of the first control section
//	loader.padding      byte sequences skipped by the boundary scan
//	trace.echo          echo the execution log to the terminal
package preferences
