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

// Package objectloader links SIC/XE object programs into the memory image of
// the machine.
//
// Object programs are text. Each line is a record and the first character
// of a line identifies the record type:
//
//	H  header. names a control section and gives its length
//	D  definitions of external symbols
//	R  references to external symbols
//	T  text. bytes to be placed in memory
//	M  modification. an address to be adjusted by the value of a symbol
//	E  end. optionally gives the address of the first instruction
//
// Fields are in fixed columns. Control sections are packed one after the
// other starting at the base address of the Loader.
//
// Loading happens in three separate passes. The place pass writes text
// records to memory and builds the symbol table. Relocate() applies the
// modification records once the symbol table is complete. Scan() walks the
// loaded memory and lists the instruction boundaries.
//
// Errors do not stop the load. Every problem is collected in the Result and
// a Result with errors should not be executed.
package objectloader
