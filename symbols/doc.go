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

// Package symbols keeps the global symbol table of a linked program. Every
// control section name and every externally defined name (D records) is
// entered with its absolute address once the section has been placed in
// memory.
//
// Names are unique. Adding a name a second time is a DuplicateSymbol error
// and the original entry is kept.
package symbols
