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

package cpu_test

import (
	"testing"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
	"github.com/sicxe/sicxe/test"
)

// step pokes the instruction into memory at the address and executes it in
// the same way as the machine does.
func step(t *testing.T, st *cpu.MachineState, address uint32, code ...uint8) (cpu.Outcome, error) {
	t.Helper()

	for i, b := range code {
		test.DemandSuccess(t, st.Mem.Write(address+uint32(i), b))
	}

	ins, err := instructions.Decode(st.Mem.Peek(address, 4), address)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, ins.Len(), len(code))

	st.Regs.PC.Load(ins.Next())
	out, err := cpu.Execute(ins, st)
	if err == nil && out.Jump {
		st.Regs.PC.Load(out.PC)
	}
	return out, err
}

func TestProgramCounter(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())

	_, err := step(t, st, 0x100, 0xb4, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x102))

	_, err = step(t, st, 0x102, 0x01, 0x00, 0x03)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x105))

	_, err = step(t, st, 0x105, 0x01, 0x10, 0x00, 0x03)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x109))

	// RSUB sets PC to L
	st.Regs.L.Load(0x123)
	out, err := step(t, st, 0x109, 0x4f, 0x00, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Jump)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x123))
}

func TestRegisterInstructions(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())

	// CLEAR X
	st.Regs.X.Load(5)
	_, err := step(t, st, 0, 0xb4, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.X.Value(), uint32(0))

	// CLEAR F
	st.Regs.F = 1.5
	_, err = step(t, st, 0, 0xb4, 0x60)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.F, 0.0)

	// COMPR A,S
	st.Regs.A.Load(0x800000)
	st.Regs.S.Load(0)
	_, err = step(t, st, 0, 0xa0, 0x04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), -1)

	// COMPR A,F
	_, err = step(t, st, 0, 0xa0, 0x06)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))

	// COMPR A,7
	_, err = step(t, st, 0, 0xa0, 0x07)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))

	// TIXR T
	st.Regs.X.Load(0)
	st.Regs.T.Load(2)
	_, err = step(t, st, 0, 0xb8, 0x50)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.X.Value(), uint32(1))
	test.ExpectEquality(t, st.Regs.Condition(), -1)
	_, err = step(t, st, 0, 0xb8, 0x50)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), 0)

	// TIXR X
	st.Regs.X.Load(5)
	_, err = step(t, st, 0, 0xb8, 0x10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.X.Value(), uint32(6))
	test.ExpectEquality(t, st.Regs.Condition(), 0)

	// TIXR F leaves X unchanged
	_, err = step(t, st, 0, 0xb8, 0x60)
	test.ExpectSuccess(t, curated.Is(err, registers.InvalidRegister))
	test.ExpectEquality(t, st.Regs.X.Value(), uint32(6))
}

func TestLoads(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())
	test.DemandSuccess(t, st.Mem.WriteWord(0x30, 0x000040))
	test.DemandSuccess(t, st.Mem.WriteWord(0x40, 0xabcdef))

	// LDA 030 (simple)
	out, err := step(t, st, 0, 0x03, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0x40))
	test.ExpectSuccess(t, out.HasEffectiveAddress)
	test.ExpectEquality(t, out.EffectiveAddress, uint32(0x30))

	// LDA #030 (immediate)
	out, err = step(t, st, 0, 0x01, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0x30))
	test.ExpectFailure(t, out.HasEffectiveAddress)

	// LDA @030 (indirect)
	out, err = step(t, st, 0, 0x02, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0xabcdef))
	test.ExpectEquality(t, out.EffectiveAddress, uint32(0x40))

	// LDT pc relative with a negative displacement
	out, err = step(t, st, 0x100, 0x77, 0x2f, 0x3d)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.EffectiveAddress, uint32(0x40))
	test.ExpectEquality(t, st.Regs.T.Value(), uint32(0xabcdef))

	// LDCH 040 only changes the low byte of A
	st.Regs.A.Load(0x123456)
	_, err = step(t, st, 0, 0x53, 0x00, 0x40)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0x1234ab))

	// +LDA beyond the end of memory
	_, err = step(t, st, 0, 0x03, 0x1f, 0xff, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))
}

func TestStores(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())
	test.DemandSuccess(t, st.Mem.WriteWord(0x30, 0x000050))

	// STA 060
	st.Regs.A.Load(0xabcdef)
	_, err := step(t, st, 0, 0x0f, 0x00, 0x60)
	test.ExpectSuccess(t, err)
	w, _ := st.Mem.ReadWord(0x60)
	test.ExpectEquality(t, w, uint32(0xabcdef))

	// STA @030 stores at the address held at 030
	_, err = step(t, st, 0, 0x0e, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	w, _ = st.Mem.ReadWord(0x50)
	test.ExpectEquality(t, w, uint32(0xabcdef))

	// STA #030
	_, err = step(t, st, 0, 0x0d, 0x00, 0x30)
	test.ExpectSuccess(t, curated.Is(err, cpu.IllegalAddressing))

	// STL and STX
	st.Regs.L.Load(0x000111)
	st.Regs.X.Load(0x000222)
	_, err = step(t, st, 0, 0x17, 0x00, 0x70)
	test.ExpectSuccess(t, err)
	_, err = step(t, st, 0, 0x13, 0x00, 0x73)
	test.ExpectSuccess(t, err)
	w, _ = st.Mem.ReadWord(0x70)
	test.ExpectEquality(t, w, uint32(0x111))
	w, _ = st.Mem.ReadWord(0x73)
	test.ExpectEquality(t, w, uint32(0x222))

	// STCH BUFFER,X (base relative, indexed)
	st.Regs.A.Load(0x000041)
	st.Regs.B.Load(0x33)
	st.Regs.X.Load(2)
	out, err := step(t, st, 0, 0x57, 0xc0, 0x03)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out.EffectiveAddress, uint32(0x38))
	b, _ := st.Mem.Read(0x38)
	test.ExpectEquality(t, b, uint8(0x41))
	b, _ = st.Mem.Read(0x39)
	test.ExpectEquality(t, b, uint8(memory.Unwritten))
}

func TestCompareAndJump(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())
	test.DemandSuccess(t, st.Mem.WriteWord(0x30, 5))

	// COMP 030
	st.Regs.A.Load(5)
	_, err := step(t, st, 0, 0x2b, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), 0)

	// JEQ 200 taken
	out, err := step(t, st, 0x100, 0x33, 0x02, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, out.Jump)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x200))

	// JLT 200 not taken
	out, err = step(t, st, 0x100, 0x3b, 0x02, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, out.Jump)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x103))

	// COMP #6 then JLT taken
	_, err = step(t, st, 0, 0x29, 0x00, 0x06)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), -1)
	_, err = step(t, st, 0x100, 0x3b, 0x02, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x200))

	// J CLOOP with negative pc relative displacement
	_, err = step(t, st, 0x17, 0x3f, 0x2f, 0xec)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x06))

	// J @030 jumps to the address stored at 030
	_, err = step(t, st, 0x100, 0x3e, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(5))

	// indirect jump through an address outside memory
	_, err = step(t, st, 0x100, 0x3e, 0x1f, 0xff, 0xff)
	test.ExpectSuccess(t, curated.Is(err, memory.MemoryFault))

	// +JSUB 1000
	_, err = step(t, st, 0x000, 0x4b, 0x10, 0x10, 0x00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.L.Value(), uint32(4))
	test.ExpectEquality(t, st.Regs.PC.Value(), uint32(0x1000))
}

func TestDevices(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())
	buf := devices.NewBuffer("F1", []byte{0x41})
	st.Devices.Attach(buf)

	test.DemandSuccess(t, st.Mem.Write(0x30, 0xf1))
	test.DemandSuccess(t, st.Mem.Write(0x31, 0x05))

	// TD F1
	_, err := step(t, st, 0, 0xe3, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), 1)

	// TD 05 (no such file)
	_, err = step(t, st, 0, 0xe3, 0x00, 0x31)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.Condition(), 0)

	// RD F1 twice. the second read is at the end of the stream
	st.Regs.A.Load(0xffffff)
	_, err = step(t, st, 0, 0xdb, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0x41))
	_, err = step(t, st, 0, 0xdb, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, st.Regs.A.Value(), uint32(0))

	// RD 05 is fatal
	_, err = step(t, st, 0, 0xdb, 0x00, 0x31)
	test.ExpectSuccess(t, curated.Is(err, devices.DeviceUnavailable))

	// WD F1 writes the low byte of A
	st.Regs.A.Load(0x123442)
	_, err = step(t, st, 0, 0xdf, 0x00, 0x30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf.Written()), "B")
}

func TestUnknownMnemonic(t *testing.T) {
	st := cpu.NewMachineState(t.TempDir())

	// ADD has no semantics
	_, err := step(t, st, 0, 0x1b, 0x00, 0x00)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownMnemonic))

	// undefined opcode
	_, err = step(t, st, 0, 0xff, 0x00, 0x00)
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownMnemonic))
	test.ExpectEquality(t, err.Error(), "cpu: unknown mnemonic ??? at 000000")
}
