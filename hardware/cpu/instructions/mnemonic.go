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

package instructions

// Mnemonic is the closed set of SIC/XE instruction names.
type Mnemonic int

// List of mnemonics. Undefined is the mnemonic of every opcode that is not
// in the instruction set.
const (
	Undefined Mnemonic = iota
	ADD
	ADDF
	ADDR
	AND
	CLEAR
	COMP
	COMPF
	COMPR
	DIV
	DIVF
	DIVR
	FIX
	FLOAT
	HIO
	J
	JEQ
	JGT
	JLT
	JSUB
	LDA
	LDB
	LDCH
	LDF
	LDL
	LDS
	LDT
	LDX
	LPS
	MUL
	MULF
	MULR
	NORM
	OR
	RD
	RMO
	RSUB
	SHIFTL
	SHIFTR
	SIO
	SSK
	STA
	STB
	STCH
	STF
	STI
	STL
	STS
	STSW
	STT
	STX
	SUB
	SUBF
	SUBR
	SVC
	TD
	TIO
	TIX
	TIXR
	WD
)

var mnemonicNames = [...]string{
	Undefined: "???",
	ADD:       "ADD",
	ADDF:      "ADDF",
	ADDR:      "ADDR",
	AND:       "AND",
	CLEAR:     "CLEAR",
	COMP:      "COMP",
	COMPF:     "COMPF",
	COMPR:     "COMPR",
	DIV:       "DIV",
	DIVF:      "DIVF",
	DIVR:      "DIVR",
	FIX:       "FIX",
	FLOAT:     "FLOAT",
	HIO:       "HIO",
	J:         "J",
	JEQ:       "JEQ",
	JGT:       "JGT",
	JLT:       "JLT",
	JSUB:      "JSUB",
	LDA:       "LDA",
	LDB:       "LDB",
	LDCH:      "LDCH",
	LDF:       "LDF",
	LDL:       "LDL",
	LDS:       "LDS",
	LDT:       "LDT",
	LDX:       "LDX",
	LPS:       "LPS",
	MUL:       "MUL",
	MULF:      "MULF",
	MULR:      "MULR",
	NORM:      "NORM",
	OR:        "OR",
	RD:        "RD",
	RMO:       "RMO",
	RSUB:      "RSUB",
	SHIFTL:    "SHIFTL",
	SHIFTR:    "SHIFTR",
	SIO:       "SIO",
	SSK:       "SSK",
	STA:       "STA",
	STB:       "STB",
	STCH:      "STCH",
	STF:       "STF",
	STI:       "STI",
	STL:       "STL",
	STS:       "STS",
	STSW:      "STSW",
	STT:       "STT",
	STX:       "STX",
	SUB:       "SUB",
	SUBF:      "SUBF",
	SUBR:      "SUBR",
	SVC:       "SVC",
	TD:        "TD",
	TIO:       "TIO",
	TIX:       "TIX",
	TIXR:      "TIXR",
	WD:        "WD",
}

func (m Mnemonic) String() string {
	if m < 0 || int(m) >= len(mnemonicNames) {
		return mnemonicNames[Undefined]
	}
	return mnemonicNames[m]
}
