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

//go:build !windows

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sicxe/sicxe/terminal/easyterm"
)

// newTerminalReader puts the terminal into cbreak mode so that each key is
// a command. the returned function restores the terminal.
func newTerminalReader(input io.Reader, output io.Writer) (keyReader, func(), error) {
	in, ok := input.(*os.File)
	if !ok {
		return nil, nil, fmt.Errorf("input is not a terminal")
	}
	out, ok := output.(*os.File)
	if !ok {
		out = os.Stdout
	}

	pt := &easyterm.Terminal{}
	if err := pt.Initialise(in, out); err != nil {
		return nil, nil, err
	}
	pt.CBreakMode()
	_ = pt.Flush()

	return &termReader{pt: pt}, pt.CleanUp, nil
}

// termReader suspends the process if the suspend key is read from the
// terminal.
type termReader struct {
	pt *easyterm.Terminal
}

func (tr *termReader) ReadKey() (byte, error) {
	for {
		k, err := tr.pt.ReadKey()
		if err != nil || k != easyterm.KeySuspend {
			return k, err
		}
		tr.pt.CanonicalMode()
		easyterm.SuspendProcess()
		tr.pt.CBreakMode()
	}
}
