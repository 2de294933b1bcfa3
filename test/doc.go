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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error when the expectation is not
// met but allow the test to continue. The Demand*() functions stop the test
// with a fatal error. Demands are useful when later tests depend on the
// value being correct, for example the length of a slice that is about to be
// indexed.
//
// Success and failure are interpreted according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is always a success. This is how errors work in Go and so the
// functions need to interpret it that way.
//
// CompareWriter, CappedWriter and RingWriter are implementations of
// io.Writer that are useful for capturing output.
package test
