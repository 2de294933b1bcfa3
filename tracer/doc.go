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

// Package tracer implements an observer for the machine that keeps an
// execution log. Every step of the machine is recorded as a single line
// under the "trace" tag.
//
// The execution log is kept separately from the central log so that a long
// run does not push other entries out of the central log. The trace can be
// echoed to an io.Writer as it is made.
//
// The Tracer type satisfies the logger.Permission interface. Tracing can be
// suspended with SetEnabled(false) without removing the observer from the
// machine.
package tracer
