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

// Package logger is the central log for the emulator. Log entries are made
// with the Log() and Logf() functions. Each entry has a tag, which is usually
// the name of the package making the entry, and a detail string.
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count.
//
// Every logging request takes a Permission argument. The Allow value is a
// good default; other implementations can be used to stop log entries being
// made in some contexts. For example, a loader that is being used to preview
// a file might not want to fill the log.
//
// Logger instances other than the central logger can be created with
// NewLogger(). This is mainly useful for testing.
package logger
