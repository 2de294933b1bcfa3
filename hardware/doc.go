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

// Package hardware is the base package for the SIC/XE emulation. The Machine
// type ties together the memory image, the register file and the devices
// (see the cpu package) with the symbol table and instruction list produced
// by the objectloader package.
//
// A Machine is created with NewMachine() and an object program is loaded
// with Load() or LoadFrom(). Execution proceeds one instruction at a time
// with Step() or until the machine halts with RunToHalt().
//
//	m, _ := hardware.NewMachine(nil)
//	res := m.Load(text)
//	if !res.Unreliable() {
//		steps, err := m.RunToHalt()
//	}
//
// The machine halts when PC reaches registers.HaltAddress, which is the
// initial value of L. In other words, an RSUB from the outermost routine
// halts the machine. Errors during execution also halt the machine.
//
// The result of every step is passed to the observers added with
// AddObserver().
package hardware
