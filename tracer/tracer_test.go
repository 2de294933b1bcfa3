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

package tracer_test

import (
	"strings"
	"testing"

	"github.com/sicxe/sicxe/hardware"
	"github.com/sicxe/sicxe/test"
	"github.com/sicxe/sicxe/tracer"
)

func run(t *testing.T, tr *tracer.Tracer, program string) {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	defer m.Close()

	m.AddObserver(tr)
	res := m.Load(program)
	test.DemandSuccess(t, !res.Unreliable())

	_, err = m.RunToHalt()
	test.DemandSuccess(t, err)
}

func TestTrace(t *testing.T) {
	tr := tracer.NewTracer(0)
	run(t, tr, "HPROG  000000000003\nT000000034F0000\nE000000\n")

	lines := tr.Lines()
	test.DemandEquality(t, len(lines), 1)
	test.ExpectEquality(t, tr.Observed(), 1)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "     1 000000  4F0000    RSUB"), lines[0])
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "PC=FFFFFF SW=000000  halted"), lines[0])

	w := &test.CompareWriter{}
	tr.Write(w)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "trace:      1 000000"), w.String())
}

func TestLoop(t *testing.T) {
	tr := tracer.NewTracer(0)

	echo := &test.CompareWriter{}
	tr.SetEcho(echo)

	// CLEAR X; LDT #3; TIXR T; JLT back to TIXR; RSUB
	run(t, tr, "HLOOP  00000000000D\nT0000000DB410750003B8503B2FFB4F0000\nE000000\n")

	lines := tr.Lines()
	test.ExpectEquality(t, len(lines), 9)
	test.ExpectEquality(t, strings.Count(echo.String(), "trace: "), len(lines))

	w := &test.CompareWriter{}
	tr.Tail(w, 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "RSUB"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "X=000003"), w.String())
}

func TestDisabled(t *testing.T) {
	tr := tracer.NewTracer(10)
	tr.SetEnabled(false)
	run(t, tr, "HPROG  000000000003\nT000000034F0000\nE000000\n")

	test.ExpectEquality(t, len(tr.Lines()), 0)
	test.ExpectEquality(t, tr.Observed(), 1)

	tr.Clear()
	test.ExpectEquality(t, tr.Observed(), 0)
}
