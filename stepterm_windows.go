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

//go:build windows

package main

import (
	"bufio"
	"io"
)

// newTerminalReader falls back to line input. cbreak mode is not available.
func newTerminalReader(input io.Reader, _ io.Writer) (keyReader, func(), error) {
	return &lineReader{r: bufio.NewReader(input)}, func() {}, nil
}
