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
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/sicxe/sicxe/curated"
)

// MalformedRecord is the pattern for errors raised by records that cannot
// be parsed or placed.
const MalformedRecord = "objectloader: malformed record (line %d): %v"

// minimum lengths of each record type
const (
	minHeader       = 19
	minDefine       = 13
	minText         = 9
	minModification = 11
)

type header struct {
	line   int
	name   string
	start  uint32
	length uint32
}

type definition struct {
	name   string
	offset uint32
}

type define struct {
	line int
	defs []definition
}

type refer struct {
	line  int
	names []string
}

type text struct {
	line   int
	offset uint32
	count  int
	data   []uint8

	// the data ended with an unpaired hex digit
	halfByte bool
}

type modification struct {
	line      int
	offset    uint32
	halfBytes uint8
	sign      byte
	symbol    string
}

type end struct {
	line       int
	hasAddress bool
	address    uint32
}

func malformed(line int, detail any) error {
	return curated.Errorf(MalformedRecord, line, detail)
}

func hexField(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty field")
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad hex field (%s)", s)
	}
	return uint32(v), nil
}

// parse the object program into a list of records. lines that cannot be
// parsed are reported as errors and are otherwise ignored.
func parse(program string) ([]any, []error) {
	var recs []any
	var errs []error

	for i, l := range strings.Split(program, "\n") {
		line := i + 1
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}

		r, err := parseRecord(line, l)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recs = append(recs, r)
	}

	return recs, errs
}

func parseRecord(line int, l string) (any, error) {
	switch l[0] {
	case 'H':
		if len(l) < minHeader {
			return nil, malformed(line, "header record too short")
		}
		start, err := hexField(l[7:13])
		if err != nil {
			return nil, malformed(line, err)
		}
		length, err := hexField(l[13:19])
		if err != nil {
			return nil, malformed(line, err)
		}
		return header{
			line:   line,
			name:   strings.TrimSpace(l[1:7]),
			start:  start,
			length: length,
		}, nil

	case 'D':
		if len(l) < minDefine {
			return nil, malformed(line, "define record too short")
		}
		d := define{line: line}
		i := 1
		for ; i+12 <= len(l); i += 12 {
			offset, err := hexField(l[i+6 : i+12])
			if err != nil {
				return nil, malformed(line, err)
			}
			name := strings.TrimSpace(l[i : i+6])
			if name == "" {
				return nil, malformed(line, "empty symbol name")
			}
			d.defs = append(d.defs, definition{name: name, offset: offset})
		}
		if strings.TrimSpace(l[i:]) != "" {
			return nil, malformed(line, "incomplete definition")
		}
		return d, nil

	case 'R':
		r := refer{line: line}
		for i := 1; i < len(l); i += 6 {
			n := strings.TrimSpace(l[i:min(i+6, len(l))])
			if n != "" {
				r.names = append(r.names, n)
			}
		}
		return r, nil

	case 'T':
		if len(l) < minText {
			return nil, malformed(line, "text record too short")
		}
		offset, err := hexField(l[1:7])
		if err != nil {
			return nil, malformed(line, err)
		}
		count, err := hexField(l[7:9])
		if err != nil {
			return nil, malformed(line, err)
		}
		digits := strings.TrimSpace(l[9:])
		halfByte := len(digits)%2 == 1
		if halfByte {
			digits = digits[:len(digits)-1]
		}
		data, err := hex.DecodeString(digits)
		if err != nil {
			return nil, malformed(line, err)
		}
		return text{
			line:     line,
			offset:   offset,
			count:    int(count),
			data:     data,
			halfByte: halfByte,
		}, nil

	case 'M':
		if len(l) < minModification {
			return nil, malformed(line, "modification record too short")
		}
		offset, err := hexField(l[1:7])
		if err != nil {
			return nil, malformed(line, err)
		}
		hb, err := hexField(l[7:9])
		if err != nil {
			return nil, malformed(line, err)
		}
		if hb == 0 {
			return nil, malformed(line, "zero length modification")
		}
		sign := l[9]
		if sign != '+' && sign != '-' {
			return nil, malformed(line, fmt.Sprintf("bad sign (%c)", sign))
		}
		symbol := strings.TrimSpace(l[10:min(16, len(l))])
		if symbol == "" {
			return nil, malformed(line, "empty symbol name")
		}
		return modification{
			line:      line,
			offset:    offset,
			halfBytes: uint8(hb),
			sign:      sign,
			symbol:    symbol,
		}, nil

	case 'E':
		e := end{line: line}
		if len(l) > 1 && strings.TrimSpace(l[1:]) != "" {
			address, err := hexField(l[1:min(7, len(l))])
			if err != nil {
				return nil, malformed(line, err)
			}
			e.hasAddress = true
			e.address = address
		}
		return e, nil
	}

	return nil, malformed(line, fmt.Sprintf("unknown record type (%c)", l[0]))
}
