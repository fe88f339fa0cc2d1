// Package emit assembles the final C source: the fixed runtime blob,
// forward declarations for every user-defined function (so mutually
// recursive calls resolve regardless of definition order), each
// function's committed body, and the generated main wrapped around the
// main-body buffer. Assembly happens in one fixed pass at the end of a
// compile, never incrementally.
package emit

import (
	"fmt"
	"strings"

	"github.com/Cosmic-crypto/a-compiler/internal/buffers"
	"github.com/Cosmic-crypto/a-compiler/internal/runtimeblob"
)

// Assemble renders the complete C translation unit for bufs.
func Assemble(bufs *buffers.Buffers) string {
	var b strings.Builder

	b.WriteString(runtimeblob.Source)
	b.WriteString("\n")

	order := bufs.FunctionOrder()
	for _, name := range order {
		fmt.Fprintf(&b, "void %s(void);\n", name)
	}
	if len(order) > 0 {
		b.WriteString("\n")
	}

	for _, name := range order {
		fmt.Fprintf(&b, "void %s(void) {\n%s}\n\n", name, bufs.FunctionBody(name))
	}

	b.WriteString("int main(void) {\n")
	b.WriteString(bufs.MainBody())
	b.WriteString("    return 0;\n}\n")

	return b.String()
}
