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

package objectloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sicxe/sicxe/curated"
	"github.com/sicxe/sicxe/hardware/memory"
	"github.com/sicxe/sicxe/logger"
	"github.com/sicxe/sicxe/symbols"
)

// LoaderError is the pattern for errors raised when the object program
// cannot be fetched.
const LoaderError = "objectloader: %v"

// Loader specifies the object program to load and how to load it.
type Loader struct {
	// filename or URL of the object program. empty if the loader was
	// created with FromString()
	Filename string

	// expected hash of the object program. an empty string indicates that
	// the hash is unknown and need not be validated. after a call to Load()
	// the value will be the hash of the loaded data
	Hash string

	// the text of the object program
	Data []byte

	// address of the first control section
	Base uint32

	// byte sequences that are not instructions and are skipped by the
	// boundary scan
	Padding []Marker
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The filename can be a path or an http/https URL.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Padding:  DefaultMarkers(),
	}
}

// FromString creates a loader for an object program that is already in
// memory.
func FromString(text string) Loader {
	return Loader{
		Data:    []byte(text),
		Padding: DefaultMarkers(),
	}
}

// ShortName returns a shortened version of the loader filename.
func (ld Loader) ShortName() string {
	if ld.Filename == "" {
		return "(string)"
	}
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if the object program data is available.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the object program data. Loader filenames with a valid scheme will
// use that method to load the data. Currently supported schemes are HTTP and
// local files.
func (ld *Loader) Load() error {
	if len(ld.Data) == 0 {
		scheme := "file"
		if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
			scheme = u.Scheme
		}

		switch scheme {
		case "http", "https":
			resp, err := http.Get(ld.Filename)
			if err != nil {
				return curated.Errorf(LoaderError, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return curated.Errorf(LoaderError, fmt.Sprintf("%s: %s", ld.Filename, resp.Status))
			}

			ld.Data, err = io.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf(LoaderError, err)
			}

		case "file":
			var err error
			ld.Data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return curated.Errorf(LoaderError, err)
			}

		default:
			return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// Link the object program into memory and add its symbols to the table.
// Memory is expected to be freshly reset. The returned error is only for
// problems fetching the data. Problems with the object program itself are
// collected in the Result.
func (ld *Loader) Link(mem *memory.Memory, symtab *symbols.Table) (*Result, error) {
	if err := ld.Load(); err != nil {
		return nil, err
	}

	recs, errs := parse(string(ld.Data))

	res := place(recs, mem, symtab, ld.Base)
	res.Hash = ld.Hash
	res.Errors = append(errs, res.Errors...)
	res.Errors = append(res.Errors, Relocate(mem, symtab, res.Modifications)...)
	res.Instructions = Scan(mem, res.extent, ld.Padding)
	res.Symbols = symtab.List()

	for _, w := range res.Warnings {
		logger.Log(logger.Allow, "loader", w)
	}
	for _, err := range res.Errors {
		logger.Log(logger.Allow, "loader", err)
	}
	logger.Logf(logger.Allow, "loader", "%s: %d sections, %d instructions, %d errors",
		res.ProgramName, len(res.Sections), len(res.Instructions), len(res.Errors))

	return res, nil
}
