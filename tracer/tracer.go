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

package tracer

import (
	"io"
	"sync/atomic"

	"github.com/sicxe/sicxe/hardware/cpu/execution"
	"github.com/sicxe/sicxe/logger"
)

// DefaultLength is the number of lines kept in the execution log when no
// other value is specified.
const DefaultLength = 4096

// Tag used for every line of the execution log.
const Tag = "trace"

// Tracer records every step of the machine in an execution log.
type Tracer struct {
	log     *logger.Logger
	enabled atomic.Bool

	// number of steps observed, including those not logged
	observed int
}

// NewTracer is the preferred method of initialisation for the Tracer type.
// A length of zero or less uses DefaultLength.
func NewTracer(length int) *Tracer {
	if length <= 0 {
		length = DefaultLength
	}
	tr := &Tracer{
		log: logger.NewLogger(length),
	}
	tr.enabled.Store(true)
	return tr
}

// AllowLogging implements the logger.Permission interface.
func (tr *Tracer) AllowLogging() bool {
	return tr.enabled.Load()
}

// SetEnabled suspends or resumes the execution log.
func (tr *Tracer) SetEnabled(enabled bool) {
	tr.enabled.Store(enabled)
}

// SetEcho writes every new line of the execution log to io.Writer. A nil
// writer turns echoing off.
func (tr *Tracer) SetEcho(output io.Writer) {
	tr.log.SetEcho(output, false)
}

// Observe implements the hardware.Observer interface.
func (tr *Tracer) Observe(res execution.Result) {
	tr.observed++
	tr.log.Log(tr, Tag, res)
}

// Observed returns the number of steps seen by the tracer.
func (tr *Tracer) Observed() int {
	return tr.observed
}

// Write the execution log to io.Writer.
func (tr *Tracer) Write(output io.Writer) {
	tr.log.Write(output)
}

// Tail writes the last N lines of the execution log to io.Writer.
func (tr *Tracer) Tail(output io.Writer, number int) {
	tr.log.Tail(output, number)
}

// Clear the execution log.
func (tr *Tracer) Clear() {
	tr.log.Clear()
	tr.observed = 0
}

// Lines returns the execution log as a list of strings, without the tag.
func (tr *Tracer) Lines() []string {
	var l []string
	tr.log.BorrowLog(func(entries []logger.Entry) {
		l = make([]string, 0, len(entries))
		for _, e := range entries {
			l = append(l, e.Detail)
		}
	})
	return l
}
