package emit

import (
	"strings"
	"testing"

	"github.com/Cosmic-crypto/a-compiler/internal/buffers"
)

func TestAssembleWithNoFunctions(t *testing.T) {
	bufs := buffers.New(512)
	bufs.WriteString("int x = 1;\n")

	out := Assemble(bufs)
	if !strings.Contains(out, "int main(void) {") {
		t.Fatalf("Assemble() missing main: %q", out)
	}
	if !strings.Contains(out, "int x = 1;\n") {
		t.Fatalf("Assemble() missing main body: %q", out)
	}
	if !strings.Contains(out, "typedef struct {") {
		t.Fatalf("Assemble() missing runtime blob: %q", out)
	}
}

func TestAssembleForwardDeclaresFunctions(t *testing.T) {
	bufs := buffers.New(512)
	if err := bufs.StartFunction("greet"); err != nil {
		t.Fatalf("StartFunction: %v", err)
	}
	bufs.WriteString(`printf("hi\n");` + "\n")
	bufs.EndFunction()
	bufs.WriteString("greet();\n")

	out := Assemble(bufs)
	declIdx := strings.Index(out, "void greet(void);")
	defIdx := strings.Index(out, "void greet(void) {")
	mainIdx := strings.Index(out, "int main(void) {")
	if declIdx < 0 || defIdx < 0 || mainIdx < 0 {
		t.Fatalf("Assemble() missing expected pieces: %q", out)
	}
	if !(declIdx < defIdx && defIdx < mainIdx) {
		t.Fatalf("Assemble() ordered decl=%d def=%d main=%d, want decl < def < main", declIdx, defIdx, mainIdx)
	}
	if !strings.Contains(out, "greet();\n") {
		t.Fatalf("Assemble() missing call in main body: %q", out)
	}
}
