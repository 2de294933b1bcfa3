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

package hardware

import (
	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu"
	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/logger"
)

// Sentinel error patterns.
const (
	NotRunnable            = "machine: not runnable (%s)"
	NoInstructionAtAddress = "machine: no instruction at address %06X"
	StepLimitExceeded      = "machine: step limit exceeded (%d steps)"
)

// Runnable returns true if the machine has a program that can be stepped.
func (m *Machine) Runnable() bool {
	return m.state == Loaded || m.state == Running
}

// Step executes the instruction at PC. The instruction is decoded from
// memory as it is now, so modified code is executed as modified. An error
// during execution halts the machine and is returned along with the result.
func (m *Machine) Step() (execution.Result, error) {
	switch m.state {
	case Empty, Unreliable:
		return execution.Result{}, curated.Errorf(NotRunnable, m.state)
	case Halted:
		return execution.Result{
			Step:      m.steps,
			Registers: m.st.Regs.Snapshot(),
			Halted:    true,
		}, nil
	}

	m.state = Running

	pc := m.st.Regs.PC.Value()
	if pc == registers.HaltAddress {
		return m.halt(execution.Result{Step: m.steps}, nil)
	}

	m.steps++
	res := execution.Result{Step: m.steps}

	if _, ok := m.boundaries[pc]; !ok {
		return m.halt(res, curated.Errorf(NoInstructionAtAddress, pc))
	}

	ins, err := instructions.Decode(m.st.Mem.Peek(pc, int(instructions.Format4)), pc)
	if err != nil {
		return m.halt(res, err)
	}
	res.Instruction = ins

	m.st.Regs.PC.Load(ins.Next())

	out, err := cpu.Execute(ins, m.st)
	if err != nil {
		return m.halt(res, err)
	}

	if out.Jump {
		m.st.Regs.PC.Load(out.PC)
	}

	res.Executed = true
	res.EffectiveAddress = out.EffectiveAddress
	res.HasEffectiveAddress = out.HasEffectiveAddress

	if m.st.Regs.PC.Value() == registers.HaltAddress {
		return m.halt(res, nil)
	}

	res.Registers = m.st.Regs.Snapshot()
	m.notify(res)

	return res, nil
}

func (m *Machine) halt(res execution.Result, err error) (execution.Result, error) {
	m.state = Halted

	res.Halted = true
	res.Registers = m.st.Regs.Snapshot()
	if err != nil {
		res.Error = err.Error()
		logger.Log(logger.Allow, "machine", err)
	} else {
		logger.Logf(logger.Allow, "machine", "halted after %d steps", m.steps)
	}

	m.notify(res)

	return res, err
}

func (m *Machine) notify(res execution.Result) {
	for _, o := range m.observers {
		o.Observe(res)
	}
}
