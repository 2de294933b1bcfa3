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
	"fmt"

	"github.com/sicxe/sicxe/hardware/cpu/registers"
	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
)

// MachineState is everything an instruction can change.
type MachineState struct {
	Regs    *registers.File
	Mem     *memory.Memory
	Devices *devices.Registry
}

// NewMachineState is the preferred method of initialisation for the
// MachineState type. File devices are created in the named directory.
func NewMachineState(deviceDir string) *MachineState {
	return &MachineState{
		Regs:    registers.NewFile(),
		Mem:     memory.NewMemory(),
		Devices: devices.NewRegistry(deviceDir),
	}
}

// Reset registers and memory. Devices are released.
func (st *MachineState) Reset() error {
	st.Regs.Reset()
	st.Mem.Reset()
	return st.Devices.Release()
}

func (st *MachineState) String() string {
	return fmt.Sprintf("%s [%s]", st.Regs, st.Mem)
}
