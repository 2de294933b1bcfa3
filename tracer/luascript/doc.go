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

// Package luascript implements an observer for the machine that passes the
// result of every step to a Lua function.
//
// The script should define a global function called on_step. The function
// receives a single table argument with the following fields:
//
//	step       number of the step since the program was loaded
//	address    address of the instruction
//	mnemonic   mnemonic of the instruction
//	bytes      the instruction as a string of hex digits
//	executed   true if the instruction completed
//	halted     true if the machine halted on this step
//	error      error that halted the machine. nil if there was no error
//	ea         effective address. nil if the instruction has none
//	regs       table of register values (A X L B S T PC SW)
//
// Optionally, the script can define on_halt, which receives the same table
// for the step that halted the machine.
//
// A global function called log is available to the script. It adds an entry
// to the central log under the "lua" tag.
//
// An error in a Lua function is logged and the script is disabled.
package luascript
