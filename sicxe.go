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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/k0kubun/pp/v3"
	"github.com/sicxe/sicxe/disassembly"
	"github.com/sicxe/sicxe/hardware"
	"github.com/sicxe/sicxe/hardware/peripherals/devices"
	"github.com/sicxe/sicxe/hardware/preferences"
	"github.com/sicxe/sicxe/logger"
	"github.com/sicxe/sicxe/modalflag"
	"github.com/sicxe/sicxe/objectloader"
	"github.com/sicxe/sicxe/prefs"
	"github.com/sicxe/sicxe/statsview"
	"github.com/sicxe/sicxe/tracer"
	"github.com/sicxe/sicxe/tracer/luascript"
	"github.com/sicxe/sicxe/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch the mode selected by the arguments. the return value is the exit
// status of the program.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "SYMBOLS", "DUMP")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "STEP":
		err = step(md, input, output)

	case "DISASM":
		err = disasm(md, output)

	case "SYMBOLS":
		err = listSymbols(md, output)

	case "DUMP":
		err = dump(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags shared by every mode that loads a program.
type common struct {
	log       *bool
	prefs     *string
	prefsFile *string
	steplimit *int
	devices   *string
	device    *string
}

func addCommon(md *modalflag.Modes) *common {
	return &common{
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:     md.AddString("prefs", "", "override preferences: \"key::value; key::value\""),
		prefsFile: md.AddString("prefsfile", "", "preferences file to use instead of the default"),
		steplimit: md.AddInt("steplimit", 0, "maximum number of steps before the run is abandoned"),
		devices:   md.AddString("devices", "", "directory in which device files are found"),
		device:    md.AddString("device", "", "attach device files: NAME=PATH[,NAME=PATH]"),
	}
}

// machine creates a Machine according to the common flags and loads the
// single remaining argument into it.
func (c *common) machine(md *modalflag.Modes, output io.Writer) (*hardware.Machine, *objectloader.Result, error) {
	if *c.log {
		logger.SetEcho(logger.NewColorizer(output, "loader", tracer.Tag), false)
	} else {
		logger.SetEcho(nil, false)
	}

	filename, err := programArg(md)
	if err != nil {
		return nil, nil, err
	}

	p, err := c.preferences()
	if err != nil {
		return nil, nil, err
	}

	m, err := hardware.NewMachine(p)
	if err != nil {
		return nil, nil, err
	}

	if *c.device != "" {
		for _, d := range strings.Split(*c.device, ",") {
			name, pth, ok := strings.Cut(strings.TrimSpace(d), "=")
			if !ok || name == "" || pth == "" {
				m.Close()
				return nil, nil, fmt.Errorf("device flag should be NAME=PATH (%s)", d)
			}
			m.Devices().Attach(devices.NewFileDevice(strings.ToUpper(name), pth))
		}
	}

	res, err := m.LoadFrom(m.Loader(filename))
	if err != nil {
		m.Close()
		return nil, nil, err
	}

	return m, res, nil
}

func (c *common) preferences() (*preferences.Preferences, error) {
	prefs.PushCommandLineStack(*c.prefs)

	var p *preferences.Preferences
	var err error
	if *c.prefsFile != "" {
		p, err = preferences.NewPreferencesFromFile(*c.prefsFile)
	} else {
		p, err = preferences.NewPreferences()
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}

	if err != nil {
		return nil, err
	}

	if *c.steplimit > 0 {
		if err := p.StepLimit.Set(*c.steplimit); err != nil {
			return nil, err
		}
	}
	if *c.devices != "" {
		if err := p.DeviceDir.Set(*c.devices); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("object program required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

func reportLoad(output io.Writer, res *objectloader.Result) error {
	for _, w := range res.Warnings {
		fmt.Fprintf(output, "! %v\n", w)
	}
	if res.Unreliable() {
		for _, e := range res.Errors {
			fmt.Fprintf(output, "* %v\n", e)
		}
		return fmt.Errorf("%s cannot be run (%d errors)", res.ProgramName, len(res.Errors))
	}
	return nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)
	trace := md.AddBool("trace", false, "write the execution log to stdout")
	script := md.AddString("script", "", "lua script to call for every step")
	stats := md.AddBool("statsview", false, "run stats server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(output, *statsAddr)
	}

	m, res, err := c.machine(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := reportLoad(output, res); err != nil {
		return err
	}

	if *trace || m.Prefs.TraceEcho.Get().(bool) {
		tr := tracer.NewTracer(0)
		tr.SetEcho(output)
		m.AddObserver(tr)
	}

	if *script != "" {
		scr, err := luascript.NewScript(*script)
		if err != nil {
			return err
		}
		defer scr.Close()
		m.AddObserver(scr)
	}

	results, err := m.RunToHalt()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s halted after %d steps\n", res.ProgramName, len(results))
	fmt.Fprintln(output, m.Registers())

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)
	bytecode := md.AddBool("bytecode", false, "including bytecode in disassembly")
	symbols := md.AddBool("symbols", false, "list symbols after the disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, res, err := c.machine(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	for _, e := range res.Errors {
		fmt.Fprintf(output, "! %v\n", e)
	}

	dsm := disassembly.FromMachine(m)
	return dsm.Write(output, disassembly.WriteAttr{ByteCode: *bytecode, Symbols: *symbols})
}

func listSymbols(md *modalflag.Modes, output io.Writer) error {
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

	for _, e := range res.Errors {
		fmt.Fprintf(output, "! %v\n", e)
	}

	fmt.Fprintln(output, res)
	fmt.Fprintln(output, "Sections\n--------")
	for _, s := range res.Sections {
		fmt.Fprintln(output, s)
	}
	fmt.Fprintln(output)
	m.SymbolTable().ListSymbols(output)

	return nil
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md)
	graph := md.AddString("memviz", "", "write a graph of the load result to the file (dot format)")
	from := md.AddString("from", "", "first address of memory to dump")
	length := md.AddInt("len", 0, "number of bytes of memory to dump")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, res, err := c.machine(md, output)
	if err != nil {
		return err
	}
	defer m.Close()

	pr := pp.New()
	pr.SetColoringEnabled(false)
	pr.SetOutput(output)
	if _, err := pr.Println(res); err != nil {
		return err
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		memviz.Map(f, res)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(output, "graph written to %s\n", *graph)
	}

	if *from != "" || *length > 0 {
		var addr uint32
		if len(res.Sections) > 0 {
			addr = res.Sections[0].LoadBase
		}
		if *from != "" {
			a, err := strconv.ParseUint(*from, 0, 32)
			if err != nil {
				return fmt.Errorf("from address: %w", err)
			}
			addr = uint32(a)
		}

		n := *length
		if n <= 0 {
			n = 16
		}

		s, err := m.Hexdump(addr, n)
		if err != nil {
			return err
		}
		fmt.Fprint(output, s)
	}

	return nil
}
