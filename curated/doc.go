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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. It is similar to the
// Errorf() function in the fmt package, except that the first argument is a
// pattern rather than a format string.
//
// The pattern is kept with the error and is what the Is() and Has() functions
// test against. Packages that raise curated errors export the patterns they
// use as string constants. For example, the memory package declares:
//
//	const MemoryFault = "memory: fault at address %06X"
//
// and a caller can check for the error with:
//
//	if curated.Is(err, memory.MemoryFault) {
//		...
//	}
//
// Has() is the same as Is() except that it also looks at curated errors that
// have been used as values of the outer error. So, if an error is wrapped:
//
//	curated.Errorf("cpu: %v", err)
//
// then Has() will find the original pattern.
//
// The Error() function removes adjacent duplicate parts of the message, where
// parts are separated by ": ". This means that wrapping errors with the same
// prefix doesn't result in messages like "cpu: cpu: fault".
package curated
