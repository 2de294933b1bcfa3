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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient way of handling "modes" on the command
// line, in addition to the flags of each mode.
//
// A mode is a word on the command line that selects a group of flags and
// behaviour. The sicxe front end has modes like RUN, STEP and DISASM:
//
//	sicxe disasm -bytecode prog.obj
//
// Modes are added with AddSubModes() and the first sub-mode is the default,
// used when the command line does not name a mode.
//
// Usage:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		steps := md.AddInt("steplimit", 100000, "maximum number of steps")
//		md.Parse()
//		...
//	}
//
// Sub-mode names are compared case-insensitively. The Path() function returns
// every mode encountered, separated by a slash.
package modalflag
