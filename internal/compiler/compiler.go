// Package compiler wires together the symbol table, block stack,
// error list, output buffers and dispatcher into the single per-file
// compile pass, and defines the five named compile modes the CLI
// exposes. Each call to Compile builds all of that state fresh, so
// nothing survives between compiles and nothing is shared across
// goroutines.
package compiler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Cosmic-crypto/a-compiler/internal/blockstack"
	"github.com/Cosmic-crypto/a-compiler/internal/buffers"
	"github.com/Cosmic-crypto/a-compiler/internal/dispatch"
	"github.com/Cosmic-crypto/a-compiler/internal/emit"
	"github.com/Cosmic-crypto/a-compiler/internal/errlist"
	"github.com/Cosmic-crypto/a-compiler/internal/logx"
	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
)

// Default capacities, advertised as lower bounds and enforced as hard
// ceilings at 10x by the packages that own them.
const (
	SymbolCapacity = 1024
	BlockCapacity  = 256
	ErrorCapacity  = 256
	FuncCapacity   = 512
)

// Mode names one of the five compile modes the CLI accepts, each
// pairing a dispatcher discipline with a C compiler flag set and
// whether the produced binary should be run immediately afterward.
type Mode struct {
	Name      string
	AutoClose bool
	Raw       bool
	GccFlags  []string
	RunAfter  bool
	LogMode   logx.Mode
}

// Modes is the fixed set of compile modes, keyed by the name passed on
// the command line.
var Modes = map[string]Mode{
	"optimized": {
		Name:      "optimized",
		AutoClose: true,
		Raw:       false,
		GccFlags:  []string{"-Ofast", "-w"},
		RunAfter:  false,
		LogMode:   logx.ModeNone,
	},
	"raw": {
		Name:      "raw",
		AutoClose: false,
		Raw:       true,
		GccFlags:  []string{"-O1", "-g"},
		RunAfter:  false,
		LogMode:   logx.ModeNone,
	},
	"debug": {
		Name:      "debug",
		AutoClose: true,
		Raw:       false,
		GccFlags:  []string{"-Ofast", "-g"},
		RunAfter:  true,
		LogMode:   logx.ModeMachine,
	},
	"debug_opt": {
		Name:      "debug_opt",
		AutoClose: true,
		Raw:       false,
		GccFlags:  []string{"-Ofast", "-g"},
		RunAfter:  true,
		LogMode:   logx.ModeHuman,
	},
	"debug_raw": {
		Name:      "debug_raw",
		AutoClose: false,
		Raw:       true,
		GccFlags:  []string{"-O1", "-g"},
		RunAfter:  true,
		LogMode:   logx.ModeHuman,
	},
}

// ModeNames returns the valid mode names, for usage text and flag
// validation.
func ModeNames() []string {
	names := make([]string, 0, len(Modes))
	for _, n := range []string{"optimized", "raw", "debug", "debug_opt", "debug_raw"} {
		names = append(names, n)
	}
	return names
}

// Result is the outcome of a single compile pass: the assembled C
// source and the accumulated error list. CSource is empty whenever
// Errors holds an error-severity record.
type Result struct {
	CSource string
	Errors  *errlist.List
}

// Compile runs src line by line through a freshly constructed
// dispatcher under mode, logging events to logw.
func Compile(mode Mode, src io.Reader, logw io.Writer) Result {
	symbols := symtab.New(SymbolCapacity)
	blocks := blockstack.New(BlockCapacity)
	errs := errlist.New(ErrorCapacity)
	bufs := buffers.New(FuncCapacity)
	logger := logx.New(logw, mode.LogMode)

	d := dispatch.New(dispatch.Options{AutoClose: mode.AutoClose, Raw: mode.Raw}, symbols, blocks, errs, bufs, logger)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		d.ProcessLine(line, scanner.Text())
	}
	d.Finish()

	cSource := ""
	if !errs.HasErrors() {
		cSource = emit.Assemble(bufs)
	}
	return Result{CSource: cSource, Errors: errs}
}

// ErrUnknownMode is returned by LookupMode for a name outside Modes.
type ErrUnknownMode struct{ Name string }

func (e *ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown compile mode %q", e.Name)
}

// LookupMode validates a mode name from the command line.
func LookupMode(name string) (Mode, error) {
	m, ok := Modes[name]
	if !ok {
		return Mode{}, &ErrUnknownMode{Name: name}
	}
	return m, nil
}
