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

package cpu

import (
	"errors"
	"fmt"
	"io"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
)

// Sentinel error patterns.
const (
	UnknownMnemonic   = "cpu: unknown mnemonic %s at %06X"
	IllegalAddressing = "cpu: illegal addressing (%s) for %s at %06X"
)

// Outcome describes the effect of an instruction on the flow of the program
// and the memory address it accessed.
type Outcome struct {
	// if Jump is true then PC should be loaded with the PC field
	Jump bool
	PC   uint32

	// address of the memory operand. not valid for immediate operands or
	// for format 1 and 2 instructions
	EffectiveAddress    uint32
	HasEffectiveAddress bool
}

func (out Outcome) String() string {
	if out.Jump {
		return fmt.Sprintf("jump %06X", out.PC)
	}
	if out.HasEffectiveAddress {
		return fmt.Sprintf("ea %06X", out.EffectiveAddress)
	}
	return ""
}

// Execute a single instruction. PC must already point to the byte following
// the instruction.
func Execute(ins instructions.Decoded, st *MachineState) (Outcome, error) {
	ex := executor{ins: ins, st: st}
	if err := ex.execute(); err != nil {
		return Outcome{}, err
	}
	return ex.out, nil
}

type executor struct {
	ins instructions.Decoded
	st  *MachineState
	out Outcome
}

func (ex *executor) execute() error {
	regs := ex.st.Regs

	switch ex.ins.Mnemonic() {
	case instructions.RSUB:
		ex.jump(regs.L.Value())

	case instructions.CLEAR:
		r1, _ := ex.ins.Registers()
		return regs.Set(r1, 0)

	case instructions.COMPR:
		r1, r2 := ex.ins.Registers()
		a, err := regs.Get(r1)
		if err != nil {
			return err
		}
		b, err := regs.Get(r2)
		if err != nil {
			return err
		}
		regs.SetCondition(registers.Compare(a, b))

	case instructions.TIXR:
		r1, _ := ex.ins.Registers()
		if _, err := regs.Get(r1); err != nil {
			return err
		}
		regs.X.Add(1)

		// r1 is read after the increment. TIXR X always compares equal
		v, _ := regs.Get(r1)
		regs.SetCondition(registers.Compare(regs.X.Value(), v))

	case instructions.LDA:
		v, err := ex.operandWord()
		if err != nil {
			return err
		}
		regs.A.Load(v)

	case instructions.LDT:
		v, err := ex.operandWord()
		if err != nil {
			return err
		}
		regs.T.Load(v)

	case instructions.LDCH:
		v, err := ex.operandByte()
		if err != nil {
			return err
		}
		regs.A.Load(regs.A.Value()&^0xff | uint32(v))

	case instructions.STA:
		return ex.storeWord(regs.A.Value())

	case instructions.STL:
		return ex.storeWord(regs.L.Value())

	case instructions.STX:
		return ex.storeWord(regs.X.Value())

	case instructions.STCH:
		return ex.storeByte(uint8(regs.A.Value()))

	case instructions.COMP:
		v, err := ex.operandWord()
		if err != nil {
			return err
		}
		regs.SetCondition(registers.Compare(regs.A.Value(), v))

	case instructions.J:
		t, err := ex.target()
		if err != nil {
			return err
		}
		ex.jump(t)

	case instructions.JEQ:
		t, err := ex.target()
		if err != nil {
			return err
		}
		if regs.Condition() == 0 {
			ex.jump(t)
		}

	case instructions.JLT:
		t, err := ex.target()
		if err != nil {
			return err
		}
		if regs.Condition() < 0 {
			ex.jump(t)
		}

	case instructions.JSUB:
		t, err := ex.target()
		if err != nil {
			return err
		}
		regs.L.Load(ex.ins.Next())
		ex.jump(t)

	case instructions.TD:
		dev, err := ex.device()
		if err != nil {
			return err
		}
		if dev.ProbeReady() {
			regs.SetCondition(1)
		} else {
			regs.SetCondition(0)
		}

	case instructions.RD:
		dev, err := ex.device()
		if err != nil {
			return err
		}
		b, err := dev.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				if curated.Is(err, devices.DeviceUnavailable) {
					return err
				}
				return curated.Errorf(devices.DeviceUnavailable, dev.Name(), err)
			}
			b = 0
		}
		regs.A.Load(uint32(b))

	case instructions.WD:
		dev, err := ex.device()
		if err != nil {
			return err
		}
		if err := dev.WriteByte(uint8(regs.A.Value())); err != nil {
			if curated.Is(err, devices.DeviceUnavailable) {
				return err
			}
			return curated.Errorf(devices.DeviceUnavailable, dev.Name(), err)
		}

	default:
		return curated.Errorf(UnknownMnemonic, ex.ins.Mnemonic(), ex.ins.Address)
	}

	return nil
}

func (ex *executor) jump(pc uint32) {
	ex.out.Jump = true
	ex.out.PC = pc & registers.Mask
}

func (ex *executor) effective(address uint32) {
	ex.out.EffectiveAddress = address
	ex.out.HasEffectiveAddress = true
}

func (ex *executor) targetAddress() uint32 {
	return ex.ins.TargetAddress(ex.st.Regs.B.Value(), ex.st.Regs.X.Value())
}

// address of the memory operand for simple and indirect addressing.
func (ex *executor) operandAddress() (uint32, error) {
	ta := ex.targetAddress()
	if ex.ins.Flags.AddressingMode() == instructions.Indirect {
		a, err := ex.st.Mem.ReadWord(ta)
		if err != nil {
			return 0, err
		}
		ta = a
	}
	ex.effective(ta)
	return ta, nil
}

func (ex *executor) operandWord() (uint32, error) {
	if ex.ins.Flags.AddressingMode() == instructions.Immediate {
		return ex.targetAddress(), nil
	}
	a, err := ex.operandAddress()
	if err != nil {
		return 0, err
	}
	return ex.st.Mem.ReadWord(a)
}

func (ex *executor) operandByte() (uint8, error) {
	if ex.ins.Flags.AddressingMode() == instructions.Immediate {
		return uint8(ex.targetAddress()), nil
	}
	a, err := ex.operandAddress()
	if err != nil {
		return 0, err
	}
	return ex.st.Mem.Read(a)
}

func (ex *executor) storeAddress() (uint32, error) {
	if ex.ins.Flags.AddressingMode() == instructions.Immediate {
		return 0, curated.Errorf(IllegalAddressing, instructions.Immediate, ex.ins.Mnemonic(), ex.ins.Address)
	}
	return ex.operandAddress()
}

func (ex *executor) storeWord(v uint32) error {
	a, err := ex.storeAddress()
	if err != nil {
		return err
	}
	return ex.st.Mem.WriteWord(a, v)
}

func (ex *executor) storeByte(v uint8) error {
	a, err := ex.storeAddress()
	if err != nil {
		return err
	}
	return ex.st.Mem.Write(a, v)
}

// target of a jump instruction. the target address for simple and
// immediate addressing, the word stored at the target address for indirect.
func (ex *executor) target() (uint32, error) {
	ta := ex.targetAddress()
	if ex.ins.Flags.AddressingMode() == instructions.Indirect {
		a, err := ex.st.Mem.ReadWord(ta)
		if err != nil {
			return 0, err
		}
		ta = a
	}
	ex.effective(ta)
	return ta, nil
}

func (ex *executor) device() (devices.Device, error) {
	b, err := ex.operandByte()
	if err != nil {
		return nil, err
	}
	return ex.st.Devices.Get(devices.Name(b)), nil
}
