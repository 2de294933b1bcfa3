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

// Package cpu executes decoded SIC/XE instructions against the state of the
// machine.
//
// Execution is a single function. The MachineState is passed explicitly and
// the CPU holds no state of its own:
//
//	st := cpu.NewMachineState(".")
//	ins, _ := instructions.Decode(st.Mem.Peek(pc, 4), pc)
//	st.Regs.PC.Load(ins.Next())
//	out, err := cpu.Execute(ins, st)
//	if err == nil && out.Jump {
//		st.Regs.PC.Load(out.PC)
//	}
//
// The caller is responsible for advancing PC past the instruction before
// calling Execute() and for applying any change of flow described by the
// Outcome.
//
// Only a subset of the instruction set is implemented. The remaining
// mnemonics return an UnknownMnemonic error and are never ignored.
package cpu
