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

package hardware

// State of the Machine.
type State int

// List of valid machine states.
const (
	// nothing has been loaded
	Empty State = iota

	// a program has been loaded and has not yet been stepped
	Loaded

	// the program has been stepped at least once and has not halted
	Running

	// the program has halted. it will not run again until it is reloaded
	Halted

	// the program was loaded with errors and cannot be run
	Unreliable
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loaded:
		return "loaded"
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Unreliable:
		return "unreliable"
	}
	return "unknown state"
}
