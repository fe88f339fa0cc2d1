// Command acc is the external entrypoint: it parses the mode argument,
// reads the input file, runs the translator, and -- on success --
// hands the emitted C off to the downstream toolchain.
//
// Named "acc" (A compiler-compiler) to avoid colliding with the C
// compiler it shells out to.
//
// Argument parsing uses one cli.App with a single Action; the source
// path and mode name are pulled off c.Args() as positionals rather
// than behind flags.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Cosmic-crypto/a-compiler/internal/compiler"
	"github.com/Cosmic-crypto/a-compiler/internal/errlist"
	"github.com/Cosmic-crypto/a-compiler/internal/logx"
	"github.com/Cosmic-crypto/a-compiler/internal/toolchain"
)

func main() {
	app := &cli.App{
		Name:        "acc",
		Usage:       "compile an A source file to a native executable",
		ArgsUsage:   "<input-file> [mode]",
		Description: "mode is one of optimized (default), raw, debug, debug_opt, debug_raw.",
		Action:      run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("usage: acc <input-file> [mode]", 1)
	}
	inputPath := c.Args().Get(0)
	modeName := c.Args().Get(1)
	if modeName == "" {
		modeName = "optimized"
	}

	mode, err := compiler.LookupMode(modeName)
	if err != nil {
		return cli.Exit(err, 1)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("opening %s: %w", inputPath, err), 1)
	}
	defer f.Close()

	result := compiler.Compile(mode, f, os.Stderr)

	records := result.Errors.Records()
	if result.Errors.HasErrors() {
		printSummary(mode, records)
		return cli.Exit("compile failed", 1)
	}
	if len(records) > 0 {
		printSummary(mode, records)
	}

	paths := toolchain.DefaultPaths(".")
	logger := logx.New(os.Stderr, mode.LogMode)
	if err := toolchain.Build(mode, result.CSource, paths, logger); err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Fprintf(os.Stdout, "Compiled: %s\n", paths.Binary)

	if mode.RunAfter {
		if _, err := toolchain.Run(paths, logger); err != nil {
			return cli.Exit(err, 1)
		}
	}

	return nil
}

func printSummary(mode compiler.Mode, records []errlist.Record) {
	plain := errlist.Summary(records)
	if plain == "" {
		return
	}
	if mode.LogMode == logx.ModeHuman {
		fmt.Fprint(os.Stderr, logx.RenderSummary(plain))
		return
	}
	fmt.Fprint(os.Stderr, plain)
}
