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
	"fmt"

	"github.com/sicxe/sicxe/hardware/cpu"
	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/hardware/cpu/instructions"
	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
	"github.com/sicxe/sicxe/hardware/preferences"
	"github.com/sicxe/sicxe/logger"
	"github.com/sicxe/sicxe/objectloader"
	"github.com/sicxe/sicxe/symbols"
)

// Observer is notified of the result of every step.
type Observer interface {
	Observe(res execution.Result)
}

// ObserverFunc allows an ordinary function to be used as an Observer.
type ObserverFunc func(res execution.Result)

// Observe implements the Observer interface.
func (f ObserverFunc) Observe(res execution.Result) {
	f(res)
}

// Machine is the SIC/XE computer.
type Machine struct {
	Prefs *preferences.Preferences

	st     *cpu.MachineState
	symtab *symbols.Table
	result *objectloader.Result

	// instruction boundaries found by the loader. the value is the index
	// into the instructions slice
	boundaries   map[uint32]int
	instructions []instructions.Decoded

	state State
	steps int

	observers []Observer
}

// NewMachine is the preferred method of initialisation for the Machine
// type. A nil prefs argument will use the default preference values.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.Defaults()
	}

	m := &Machine{
		Prefs:      prefs,
		st:         cpu.NewMachineState(prefs.DeviceDir.String()),
		symtab:     symbols.NewTable(),
		boundaries: make(map[uint32]int),
	}

	return m, nil
}

func (m *Machine) String() string {
	if m.result == nil {
		return fmt.Sprintf("machine: %s", m.state)
	}
	return fmt.Sprintf("machine: %s [%s] %s", m.state, m.result.ProgramName, m.st.Regs)
}

// Loader returns a loader for the named file using the load base and
// padding markers from the preferences.
func (m *Machine) Loader(filename string) objectloader.Loader {
	ld := objectloader.NewLoader(filename)
	m.configure(&ld)
	return ld
}

func (m *Machine) configure(ld *objectloader.Loader) {
	ld.Base = uint32(m.Prefs.Base.Get().(int))
	ld.Padding = m.Prefs.Markers()
}

// Load an object program from a string. The load base and padding markers
// are taken from the preferences.
func (m *Machine) Load(text string) *objectloader.Result {
	ld := objectloader.FromString(text)
	m.configure(&ld)

	// loading from a string can only fail if the hash is wrong and the
	// hash is not set
	res, err := m.LoadFrom(ld)
	if err != nil {
		logger.Log(logger.Allow, "machine", err)
		return &objectloader.Result{Errors: []error{err}}
	}
	return res
}

// LoadFrom loads the object program specified by the loader. The returned
// error is only for problems fetching the object program. Problems with the
// object program are in the Result.
func (m *Machine) LoadFrom(ld objectloader.Loader) (*objectloader.Result, error) {
	if err := m.st.Reset(); err != nil {
		logger.Logf(logger.Allow, "machine", "releasing devices: %v", err)
	}
	m.st.Devices.SetDirectory(m.Prefs.DeviceDir.String())

	m.symtab = symbols.NewTable()
	m.result = nil
	m.instructions = nil
	m.boundaries = make(map[uint32]int)
	m.steps = 0
	m.state = Empty

	res, err := ld.Link(m.st.Mem, m.symtab)
	if err != nil {
		return nil, err
	}

	m.result = res
	m.instructions = res.Instructions
	for i, ins := range m.instructions {
		m.boundaries[ins.Address] = i
	}

	m.st.Regs.PC.Load(res.FirstInstruction)

	if res.Unreliable() {
		m.state = Unreliable
	} else {
		m.state = Loaded
	}

	logger.Logf(logger.Allow, "machine", "%s loaded (%s)", res.ProgramName, m.state)

	return res, nil
}

// AddObserver adds an observer to the list of observers notified of every
// step.
func (m *Machine) AddObserver(o Observer) {
	m.observers = append(m.observers, o)
}

// State returns the current state of the machine.
func (m *Machine) State() State {
	return m.state
}

// Steps returns the number of steps since the program was loaded.
func (m *Machine) Steps() int {
	return m.steps
}

// Result returns the result of the most recent load. Returns nil if nothing
// has been loaded.
func (m *Machine) Result() *objectloader.Result {
	return m.result
}

// Registers returns a copy of the register values.
func (m *Machine) Registers() registers.Snapshot {
	return m.st.Regs.Snapshot()
}

// Dump returns a copy of n bytes of memory starting at the address.
func (m *Machine) Dump(from uint32, n int) ([]uint8, error) {
	return m.st.Mem.Dump(from, n)
}

// Hexdump returns n bytes of memory formatted for display.
func (m *Machine) Hexdump(from uint32, n int) (string, error) {
	return m.st.Mem.Hexdump(from, n)
}

// Instructions returns a copy of the instruction boundaries found when the
// program was loaded.
func (m *Machine) Instructions() []instructions.Decoded {
	l := make([]instructions.Decoded, len(m.instructions))
	copy(l, m.instructions)
	return l
}

// Symbols returns the symbol table sorted by address.
func (m *Machine) Symbols() []symbols.Symbol {
	return m.symtab.List()
}

// SymbolTable returns the symbol table of the loaded program.
func (m *Machine) SymbolTable() *symbols.Table {
	return m.symtab
}

// Devices returns the device registry. Devices attached to the registry
// survive a new load.
func (m *Machine) Devices() *devices.Registry {
	return m.st.Devices
}

// Close releases all devices.
func (m *Machine) Close() error {
	return m.st.Devices.Release()
}
