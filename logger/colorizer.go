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

package logger

import (
	"io"
	"strings"

	"github.com/sicxe/sicxe/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. Entries from the
// tags listed in the Warn field are written with a yellow pen.
type Colorizer struct {
	out  io.Writer
	Warn []string
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer, warn ...string) Colorizer {
	return Colorizer{out: out, Warn: warn}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)

	pen := ""
	for _, w := range c.Warn {
		if strings.HasPrefix(s, w+": ") {
			pen = ansi.Pens["yellow"]
			break
		}
	}
	if strings.Contains(s, "error") {
		pen = ansi.DimPens["red"]
	}

	if pen == "" {
		return c.out.Write(p)
	}

	if _, err := io.WriteString(c.out, pen); err != nil {
		return 0, err
	}
	n, err = c.out.Write(p)
	if err != nil {
		return n, err
	}
	_, err = io.WriteString(c.out, ansi.NormalPen)

	return n, err
}
