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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sicxe/sicxe/hardware"
	"github.com/sicxe/sicxe/modalflag"
	"github.com/sicxe/sicxe/terminal/easyterm"
	"golang.org/x/term"
)

// keyReader returns a single key for every command in STEP mode.
type keyReader interface {
	ReadKey() (byte, error)
}

// lineReader is used when the input is not a terminal. every line is a
// command. an empty line is the same as pressing the return key.
type lineReader struct {
	r *bufio.Reader
}

func (lr *lineReader) ReadKey() (byte, error) {
	l, err := lr.r.ReadString('\n')
	if err != nil && l == "" {
		return 0, err
	}
	l = strings.TrimSpace(l)
	if l == "" {
		return easyterm.KeyLineFeed, nil
	}
	return l[0], nil
}

// isTerminal returns true if the reader is a terminal device.
func isTerminal(input io.Reader) bool {
	f, ok := input.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const stepHelp = "space/return: step   r: run to halt   q: quit"

func step(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, res, err := c.machine(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := reportLoad(output, res); err != nil {
		return err
	}

	var keys keyReader
	if isTerminal(input) {
		kr, cleanup, err := newTerminalReader(input, output)
		if err != nil {
			return err
		}
		defer cleanup()
		keys = kr
	} else {
		keys = &lineReader{r: bufio.NewReader(input)}
	}

	fmt.Fprintln(output, res)
	fmt.Fprintln(output, stepHelp)

	return stepLoop(m, keys, output)
}

func stepLoop(m *hardware.Machine, keys keyReader, output io.Writer) error {
	for m.State() != hardware.Halted {
		k, err := keys.ReadKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch k {
		case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyEOT:
			return nil

		case 'r', 'R':
			results, err := m.RunToHalt()
			for _, r := range results {
				fmt.Fprintln(output, r)
			}
			if err != nil {
				return err
			}

		case easyterm.KeySpace, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn, 's', 'S':
			r, err := m.Step()
			fmt.Fprintln(output, r)
			if err != nil {
				return err
			}

		default:
			fmt.Fprintln(output, stepHelp)
		}
	}

	fmt.Fprintf(output, "halted after %d steps\n", m.Steps())
	return nil
}
