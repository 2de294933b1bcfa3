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

// Package disassembly produces a listing of a loaded object program. The
// listing is built from the instruction boundaries found by the loader and
// labelled with the symbols of the program.
//
// For quick disassemblies the FromObject() function can be used. Where a
// Machine has already been created, FromMachine() can be used instead.
//
// Target addresses that can be resolved without knowing the run-time value of
// the B register are annotated with the matching symbol, if there is one.
package disassembly
