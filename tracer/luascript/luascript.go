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

package luascript

import (
	"fmt"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel error patterns.
const (
	ScriptError = "luascript: %v"
	NoStepFunc  = "luascript: script does not define %s()"
)

// names of the functions called by the observer.
const (
	stepFunc = "on_step"
	haltFunc = "on_halt"
)

// Tag used for entries in the central log.
const Tag = "lua"

// Script is an observer that calls Lua functions.
type Script struct {
	L *lua.LState

	onStep lua.LValue
	onHalt lua.LValue

	// disabled after the first error
	disabled bool
}

// NewScript loads the Lua script from the file.
func NewScript(filename string) (*Script, error) {
	return newScript(func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

// NewScriptFromString loads the Lua script from a string.
func NewScriptFromString(source string) (*Script, error) {
	return newScript(func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func newScript(load func(*lua.LState) error) (*Script, error) {
	scr := &Script{
		L: lua.NewState(),
	}

	scr.L.SetGlobal("log", scr.L.NewFunction(func(L *lua.LState) int {
		logger.Log(logger.Allow, Tag, L.CheckString(1))
		return 0
	}))

	if err := load(scr.L); err != nil {
		scr.L.Close()
		return nil, curated.Errorf(ScriptError, err)
	}

	scr.onStep = scr.L.GetGlobal(stepFunc)
	if scr.onStep.Type() != lua.LTFunction {
		scr.L.Close()
		return nil, curated.Errorf(NoStepFunc, stepFunc)
	}

	scr.onHalt = scr.L.GetGlobal(haltFunc)
	if scr.onHalt.Type() != lua.LTFunction {
		scr.onHalt = nil
	}

	return scr, nil
}

// Close the Lua state. The script should not be used after this.
func (scr *Script) Close() {
	scr.disabled = true
	scr.L.Close()
}

// Disabled returns true if the script has been disabled by an error.
func (scr *Script) Disabled() bool {
	return scr.disabled
}

// Get the value of a global variable in the script.
func (scr *Script) Get(name string) lua.LValue {
	return scr.L.GetGlobal(name)
}

// Observe implements the hardware.Observer interface.
func (scr *Script) Observe(res execution.Result) {
	if scr.disabled {
		return
	}

	tbl := scr.table(res)

	if err := scr.call(scr.onStep, tbl); err != nil {
		return
	}

	if res.Halted && scr.onHalt != nil {
		_ = scr.call(scr.onHalt, tbl)
	}
}

func (scr *Script) call(fn lua.LValue, tbl *lua.LTable) error {
	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, tbl)
	if err != nil {
		scr.disabled = true
		logger.Log(logger.Allow, Tag, curated.Errorf(ScriptError, err))
	}
	return err
}

func (scr *Script) table(res execution.Result) *lua.LTable {
	tbl := scr.L.NewTable()

	tbl.RawSetString("step", lua.LNumber(res.Step))
	tbl.RawSetString("executed", lua.LBool(res.Executed))
	tbl.RawSetString("halted", lua.LBool(res.Halted))

	if res.HasInstruction() {
		tbl.RawSetString("address", lua.LNumber(res.Instruction.Address))
		tbl.RawSetString("mnemonic", lua.LString(res.Instruction.Mnemonic().String()))
		tbl.RawSetString("bytes", lua.LString(res.Instruction.Hex()))
		tbl.RawSetString("instruction", lua.LString(res.Instruction.String()))
	}

	if res.Error != "" {
		tbl.RawSetString("error", lua.LString(res.Error))
	}

	if res.HasEffectiveAddress {
		tbl.RawSetString("ea", lua.LNumber(res.EffectiveAddress))
	}

	regs := scr.L.NewTable()
	regs.RawSetString("A", lua.LNumber(res.Registers.A))
	regs.RawSetString("X", lua.LNumber(res.Registers.X))
	regs.RawSetString("L", lua.LNumber(res.Registers.L))
	regs.RawSetString("B", lua.LNumber(res.Registers.B))
	regs.RawSetString("S", lua.LNumber(res.Registers.S))
	regs.RawSetString("T", lua.LNumber(res.Registers.T))
	regs.RawSetString("PC", lua.LNumber(res.Registers.PC))
	regs.RawSetString("SW", lua.LNumber(res.Registers.SW))
	tbl.RawSetString("regs", regs)

	return tbl
}

func (scr *Script) String() string {
	if scr.disabled {
		return fmt.Sprintf("%s (disabled)", Tag)
	}
	return Tag
}
