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

// Package devices implements the byte devices addressed by the TD, RD and
// WD instructions. A device is identified by a two character name formed
// from the operand byte of the instruction (eg. "F1" or "05").
//
// The default device is a FileDevice. It is backed by a file of the same
// name in the device directory. Read and write cursors persist across
// instructions for the lifetime of the device. Devices are collected in a
// Registry, which is owned by the machine and released whenever a new
// program is loaded.
//
// Any other implementation of the Device interface can be attached to the
// Registry. The Buffer type is an in-memory device.
package devices
