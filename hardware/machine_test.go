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

package hardware_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware"
	"github.com/sicxe/sicxe/hardware/cpu"
	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
	"github.com/sicxe/sicxe/hardware/preferences"
	"github.com/sicxe/sicxe/objectloader"
	"github.com/sicxe/sicxe/test"
)

// main routine saves L, calls RDREC and returns through the saved L. RDREC
// reads one byte from device F1 into BUF
const copyProgram = `HCOPY  000000000025
DRDREC 000010
T0000000A17201D4B1000003E2016
T00001009DB201057200E4F0000
T00002301F1
M00000405+RDREC
E000000
`

const rsubProgram = "HPROG  000000000003\nT000000034F0000\nE000000\n"

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestEmptyMachine(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.State(), hardware.Empty)

	_, err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.NotRunnable))

	_, err = m.RunToHalt()
	test.ExpectSuccess(t, curated.Is(err, hardware.NotRunnable))
}

func TestRSUBOnly(t *testing.T) {
	m := newMachine(t)

	var observed int
	m.AddObserver(hardware.ObserverFunc(func(_ execution.Result) {
		observed++
	}))

	res := m.Load(rsubProgram)
	test.DemandSuccess(t, !res.Unreliable())
	test.ExpectEquality(t, m.State(), hardware.Loaded)
	test.ExpectEquality(t, m.Registers().L, uint32(registers.NoCaller))

	results, err := m.RunToHalt()
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(results), 1)
	test.ExpectSuccess(t, results[0].Halted)
	test.ExpectSuccess(t, results[0].Executed)
	test.ExpectEquality(t, results[0].Instruction.Mnemonic(), instructions.RSUB)
	test.ExpectEquality(t, m.State(), hardware.Halted)
	test.ExpectEquality(t, m.Steps(), 1)
	test.ExpectEquality(t, observed, 1)

	// stepping a halted machine does nothing
	r, err := m.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, r.Halted)
	test.ExpectFailure(t, r.HasInstruction())
	test.ExpectEquality(t, m.Steps(), 1)
	test.ExpectEquality(t, observed, 1)
}

func TestCopyProgram(t *testing.T) {
	m := newMachine(t)

	res := m.Load(copyProgram)
	test.DemandSuccess(t, !res.Unreliable())
	test.ExpectEquality(t, res.ProgramName, "COPY")
	test.ExpectEquality(t, len(m.Instructions()), 6)

	in := devices.NewBuffer("F1", []byte("A"))
	m.Devices().Attach(in)

	results, err := m.RunToHalt()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 6)

	mnemonics := []instructions.Mnemonic{
		instructions.STL, instructions.JSUB, instructions.RD,
		instructions.STCH, instructions.RSUB, instructions.J,
	}
	for i, r := range results {
		test.ExpectEquality(t, r.Instruction.Mnemonic(), mnemonics[i], i)
		test.ExpectEquality(t, r.Step, i+1, i)
	}

	// JSUB target was relocated
	test.ExpectEquality(t, results[1].Registers.PC, uint32(0x10))
	test.ExpectEquality(t, results[1].Registers.L, uint32(0x07))

	test.ExpectSuccess(t, results[2].HasEffectiveAddress)
	test.ExpectEquality(t, results[2].EffectiveAddress, uint32(0x23))
	test.ExpectEquality(t, results[2].Registers.A, uint32(0x41))

	test.ExpectSuccess(t, results[5].Halted)
	test.ExpectEquality(t, results[5].Error, "")
	test.ExpectEquality(t, m.Registers().PC, uint32(registers.HaltAddress))

	d, err := m.Dump(0x20, 5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(d), "\xff\xff\xff\xf1A")
}

func TestDeviceCursorIsResetByLoad(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "F1"), []byte("AB"), 0o600))

	p := preferences.Defaults()
	test.DemandSuccess(t, p.DeviceDir.Set(dir))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)
	defer m.Close()

	for i := 0; i < 2; i++ {
		res := m.Load(copyProgram)
		test.DemandSuccess(t, !res.Unreliable())

		_, err := m.RunToHalt()
		test.DemandSuccess(t, err)

		d, err := m.Dump(0x24, 1)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, d[0], uint8('A'), i)
	}
}

func TestUnreliable(t *testing.T) {
	m := newMachine(t)

	res := m.Load("HPROG  000000000004\nT000000044B100000\nM00000105+NOWHER\nE000000\n")
	test.ExpectSuccess(t, res.Unreliable())
	test.ExpectEquality(t, m.State(), hardware.Unreliable)

	_, err := m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.NotRunnable))

	// loading a good program afterwards makes the machine runnable again
	res = m.Load(rsubProgram)
	test.ExpectFailure(t, res.Unreliable())
	test.ExpectEquality(t, m.State(), hardware.Loaded)
}

func TestNoInstructionAtAddress(t *testing.T) {
	m := newMachine(t)
	m.Load("HPROG  000000000003\nT000000033F0020\nE000000\n")

	r, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Registers.PC, uint32(0x20))
	test.ExpectEquality(t, m.State(), hardware.Running)

	r, err = m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.NoInstructionAtAddress))
	test.ExpectSuccess(t, r.Halted)
	test.ExpectInequality(t, r.Error, "")
	test.ExpectEquality(t, m.State(), hardware.Halted)
}

func TestStepLimit(t *testing.T) {
	p := preferences.Defaults()
	test.DemandSuccess(t, p.StepLimit.Set(10))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)
	defer m.Close()

	m.Load("HLOOP  000000000003\nT000000033F0000\nE000000\n")

	results, err := m.RunToHalt()
	test.ExpectSuccess(t, curated.Is(err, hardware.StepLimitExceeded))
	test.ExpectEquality(t, len(results), 10)
	test.ExpectEquality(t, m.State(), hardware.Running)
}

func TestExecutionErrorHalts(t *testing.T) {
	m := newMachine(t)
	m.Load("HPROG  000000000003\nT000000031B0000\nE000000\n")

	results, err := m.RunToHalt()
	test.ExpectSuccess(t, curated.Is(err, cpu.UnknownMnemonic))
	test.DemandEquality(t, len(results), 1)
	test.ExpectSuccess(t, results[0].Halted)
	test.ExpectFailure(t, results[0].Executed)
	test.ExpectEquality(t, results[0].Instruction.Mnemonic(), instructions.ADD)
	test.ExpectEquality(t, m.State(), hardware.Halted)
}

func TestLoadBaseFromPreferences(t *testing.T) {
	p := preferences.Defaults()
	test.DemandSuccess(t, p.Base.Set(0x100))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)
	defer m.Close()

	res := m.Load(rsubProgram)
	test.DemandSuccess(t, !res.Unreliable())
	test.ExpectEquality(t, m.Registers().PC, uint32(0x100))

	ins := m.Instructions()
	test.DemandEquality(t, len(ins), 1)
	test.ExpectEquality(t, ins[0].Address, uint32(0x100))

	sym := m.Symbols()
	test.DemandEquality(t, len(sym), 1)
	test.ExpectEquality(t, sym[0].Name, "PROG")
	test.ExpectEquality(t, sym[0].Address, uint32(0x100))
}

func TestLoaderFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prog.obj")
	test.DemandSuccess(t, os.WriteFile(pth, []byte(rsubProgram), 0o600))

	m := newMachine(t)

	res, err := m.LoadFrom(m.Loader(pth))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, res.Unreliable())

	_, err = m.LoadFrom(objectloader.NewLoader(filepath.Join(t.TempDir(), "missing.obj")))
	test.ExpectSuccess(t, curated.Is(err, objectloader.LoaderError))
	test.ExpectEquality(t, m.State(), hardware.Empty)
}
