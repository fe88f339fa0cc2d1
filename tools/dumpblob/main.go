// Command dumpblob prints the runtime blob prepended to every emitted
// C file, for inspecting what the emitter's templates target without
// running a full compile.
package main

import (
	"fmt"
	"os"

	"github.com/Cosmic-crypto/a-compiler/internal/runtimeblob"
)

func main() {
	if _, err := os.Stdout.WriteString(runtimeblob.Source); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
