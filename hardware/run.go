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
	"github.com/sicxe/sicxe/hardware/cpu/execution"
)

// RunToHalt steps the machine until it halts. The number of steps is limited
// by the machine.steplimit preference. The results of every step are
// returned, including the step that caused an error.
func (m *Machine) RunToHalt() ([]execution.Result, error) {
	if m.state == Empty || m.state == Unreliable {
		return nil, curated.Errorf(NotRunnable, m.state)
	}

	limit := m.Prefs.StepLimit.Get().(int)

	var results []execution.Result
	for m.state != Halted {
		if len(results) >= limit {
			return results, curated.Errorf(StepLimitExceeded, limit)
		}

		res, err := m.Step()
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
