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

// Package memory implements the memory image of the SIC/XE machine. The
// image is a flat array of Size bytes. Bytes that have never been written
// hold the Unwritten sentinel.
//
// Every access is bounds checked. An address outside the image is a
// MemoryFault error carrying the address. Words are three bytes wide and
// big-endian.
package memory
