// Package toolchain invokes the system C compiler over the emitted
// source and, for debug modes, runs the resulting binary. A non-zero
// exit from the compiled program is reported as a plain exit code,
// not wrapped as a Go error -- only a failure to launch the process at
// all is.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Cosmic-crypto/a-compiler/internal/compiler"
	"github.com/Cosmic-crypto/a-compiler/internal/logx"
)

// Paths names the on-disk artifacts a build produces, relative to a
// working directory chosen by the caller.
type Paths struct {
	CFile  string
	Binary string
}

// DefaultPaths returns the conventional output.c / program pair inside
// dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		CFile:  filepath.Join(dir, "output.c"),
		Binary: filepath.Join(dir, "program"),
	}
}

// CC is the C compiler binary invoked. It is a var, not a const, so
// tests and callers targeting cross compilers can override it.
var CC = "gcc"

// Build writes src to paths.CFile and compiles it to paths.Binary
// using mode's gcc flags, logging the invoked command line.
func Build(mode compiler.Mode, src string, paths Paths, logger *logx.Logger) error {
	if err := os.WriteFile(paths.CFile, []byte(src), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", paths.CFile, err)
	}

	args := append([]string{}, mode.GccFlags...)
	args = append(args, "-o", paths.Binary, paths.CFile)

	logger.Log(logx.Event{Category: logx.GccCmd, Message: fmt.Sprintf("%s %v", CC, args)})

	cmd := exec.Command(CC, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", CC, err)
	}
	return nil
}

// Run executes the built binary and reports its exit code. A non-zero
// exit is reported, not wrapped as a Go error: the caller decides what
// that means for acc's own exit status.
func Run(paths Paths, logger *logx.Logger) (int, error) {
	logger.Log(logx.Event{Category: logx.RunStart, Message: paths.Binary})

	cmd := exec.Command(paths.Binary)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	err := cmd.Run()

	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
		err = nil
	} else if err != nil {
		return 0, fmt.Errorf("running %s: %w", paths.Binary, err)
	}

	logger.Log(logx.Event{Category: logx.RunEnd, Message: fmt.Sprintf("exit code %d", code)})
	return code, err
}
