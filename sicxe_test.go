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

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sicxe/sicxe/hardware"
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

// writes the program and a one byte device file to a temporary directory.
// returns the directory and the path of the program
func setup(t *testing.T, program string) (string, string) {
	t.Helper()
	dir := t.TempDir()

	obj := filepath.Join(dir, "prog.obj")
	test.DemandSuccess(t, os.WriteFile(obj, []byte(program), 0o600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "F1"), []byte("A"), 0o600))

	return dir, obj
}

func TestRun(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	w := &test.CompareWriter{}
	status := launch([]string{"RUN", "-prefsfile", prefsFile, "-devices", dir, obj}, nil, w)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "COPY halted after 6 steps"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "A=000041"), w.String())
}

func TestRunWithTraceAndDevice(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	in := filepath.Join(dir, "input.txt")
	test.DemandSuccess(t, os.WriteFile(in, []byte("Z"), 0o600))

	w := &test.CompareWriter{}
	status := launch([]string{"RUN", "-prefsfile", prefsFile, "-trace", "-device", "f1=" + in, obj}, nil, w)
	test.ExpectEquality(t, status, 0)
	test.ExpectEquality(t, strings.Count(w.String(), "trace: "), 6)
	test.ExpectSuccess(t, strings.Contains(w.String(), "A=00005A"), w.String())
}

func TestRunWithScript(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	scr := filepath.Join(dir, "trace.lua")
	test.DemandSuccess(t, os.WriteFile(scr, []byte("function on_step(r) end"), 0o600))

	w := &test.CompareWriter{}
	status := launch([]string{"RUN", "-prefsfile", prefsFile, "-devices", dir, "-script", scr, obj}, nil, w)
	test.ExpectEquality(t, status, 0, w.String())
}

func TestRunStepLimit(t *testing.T) {
	dir, obj := setup(t, "HLOOP  000000000003\nT000000033F0000\nE000000\n")
	prefsFile := filepath.Join(dir, "preferences")

	w := &test.CompareWriter{}
	status := launch([]string{"RUN", "-prefsfile", prefsFile, "-steplimit", "50", obj}, nil, w)
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "step limit exceeded (50 steps)"), w.String())
}

func TestUnreliableProgram(t *testing.T) {
	dir, obj := setup(t, "HPROG  000000000004\nT000000044B100000\nM00000105+NOWHER\nE000000\n")
	prefsFile := filepath.Join(dir, "preferences")

	w := &test.CompareWriter{}
	status := launch([]string{"RUN", "-prefsfile", prefsFile, obj}, nil, w)
	test.ExpectEquality(t, status, 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "undefined symbol NOWHER "), w.String())
}

func TestArguments(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, nil, w), 10)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-version"}, nil, w), 0)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "sicxe "), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"RUN"}, nil, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "object program required"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch([]string{"DISASM", "a", "b"}, nil, w), 20)
	test.ExpectSuccess(t, strings.Contains(w.String(), "too many arguments"), w.String())
}

func TestDisasm(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	w := &test.CompareWriter{}
	status := launch([]string{"DISASM", "-prefsfile", prefsFile, "-bytecode", obj}, nil, w)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "4B100010 000003 +JSUB 00010 ; RDREC"), w.String())
}

func TestSymbols(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	w := &test.CompareWriter{}
	status := launch([]string{"SYMBOLS", "-prefsfile", prefsFile, "-prefs", "loader.base::0x100", obj}, nil, w)
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "000100 -> COPY"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "000110 -> RDREC"), w.String())
}

func TestDump(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")
	graph := filepath.Join(dir, "graph.dot")

	w := &test.CompareWriter{}
	status := launch([]string{"DUMP", "-prefsfile", prefsFile, "-memviz", graph, "-from", "0x10", "-len", "9", obj}, nil, w)
	test.ExpectEquality(t, status, 0, w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "ProgramName"), w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "000010 | DB 20 10 57 20 0E 4F 00 00"), w.String())

	d, err := os.ReadFile(graph)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))
}

func TestStepLoop(t *testing.T) {
	dir, obj := setup(t, copyProgram)
	prefsFile := filepath.Join(dir, "preferences")

	// two steps, an unknown command, run to halt
	input := strings.NewReader("\ns\nx\nr\n")

	w := &test.CompareWriter{}
	status := launch([]string{"STEP", "-prefsfile", prefsFile, "-devices", dir, obj}, input, w)
	test.ExpectEquality(t, status, 0, w.String())
	test.ExpectSuccess(t, strings.Contains(w.String(), "halted after 6 steps"), w.String())
	test.ExpectEquality(t, strings.Count(w.String(), stepHelp), 2)
}

func TestStepQuit(t *testing.T) {
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	defer m.Close()
	m.Load(copyProgram)

	w := &test.CompareWriter{}
	keys := &lineReader{r: bufio.NewReader(strings.NewReader("\nq\n\n"))}
	test.ExpectSuccess(t, stepLoop(m, keys, w))
	test.ExpectEquality(t, m.Steps(), 1)
	test.ExpectEquality(t, m.State(), hardware.Running)
}
