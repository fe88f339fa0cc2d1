package dispatch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Cosmic-crypto/a-compiler/internal/blockstack"
	"github.com/Cosmic-crypto/a-compiler/internal/buffers"
	"github.com/Cosmic-crypto/a-compiler/internal/emit"
	"github.com/Cosmic-crypto/a-compiler/internal/errlist"
	"github.com/Cosmic-crypto/a-compiler/internal/logx"
	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
)

func newDispatcher(opts Options) *Dispatcher {
	return New(opts, symtab.New(1024), blockstack.New(256), errlist.New(256), buffers.New(512), logx.New(&bytes.Buffer{}, logx.ModeNone))
}

func TestHandleDeclWithInitializer(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "int x = 5")
	if got, want := d.Buffers().MainBody(), "int x = 5;\n"; got != want {
		t.Fatalf("MainBody() = %q, want %q", got, want)
	}
	if v, ok := d.symbols.Lookup("x"); !ok || v.Type.String() != "int" {
		t.Fatalf("x not registered as int: %+v %v", v, ok)
	}
}

func TestHandleDeclDefaultInit(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "list items")
	if got, want := d.Buffers().MainBody(), "List items = new_list();\n"; got != want {
		t.Fatalf("MainBody() = %q, want %q", got, want)
	}
}

func TestHandlePrintInfersStringFormat(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, `string name = "bob"`)
	d.ProcessLine(2, "print(name)")
	body := d.Buffers().MainBody()
	if !strings.Contains(body, `printf("%s\n", name);`) {
		t.Fatalf("MainBody() = %q, want a %%s printf for name", body)
	}
}

func TestIfElifElsePreservesDisciplineAcrossChain(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "if x > 0:")
	d.ProcessLine(2, "  print(1)")
	d.ProcessLine(3, "elif x < 0:")
	d.ProcessLine(4, "  print(2)")
	d.ProcessLine(5, "else:")
	d.ProcessLine(6, "  print(3)")
	d.Finish()

	body := d.Buffers().MainBody()
	if !strings.Contains(body, "if (x > 0) {") {
		t.Fatalf("missing if-open in %q", body)
	}
	if !strings.Contains(body, "} else if (x < 0) {") {
		t.Fatalf("missing elif-chain in %q", body)
	}
	if !strings.Contains(body, "} else {") {
		t.Fatalf("missing else-chain in %q", body)
	}
	if d.errs.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.errs.Records())
	}
}

func TestAutoCloseOnDedent(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "if x > 0:")
	d.ProcessLine(2, "  int y = 1")
	d.ProcessLine(3, "int z = 2")
	d.Finish()

	body := d.Buffers().MainBody()
	wantOrder := []string{"if (x > 0) {", "int y = 1;", "}", "int z = 2;"}
	pos := 0
	for _, w := range wantOrder {
		idx := strings.Index(body[pos:], w)
		if idx < 0 {
			t.Fatalf("expected %q after position %d in %q", w, pos, body)
		}
		pos += idx + len(w)
	}
}

func TestForInOverListRewritesIndexing(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "list nums")
	d.ProcessLine(2, "for v in nums:")
	d.ProcessLine(3, "  print(v)")
	d.Finish()

	body := d.Buffers().MainBody()
	if !strings.Contains(body, "for (int i_idx = 0; i_idx < nums.size; i_idx++) { int v = nums.data[i_idx];") {
		t.Fatalf("MainBody() = %q, want a list-shaped for_in loop", body)
	}
}

func TestForInOverStringUsesTwoScopes(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, `string name = "bob"`)
	d.ProcessLine(2, "for c in name:")
	d.ProcessLine(3, "  print(c)")
	d.Finish()

	body := d.Buffers().MainBody()
	if strings.Count(body, "}") < 2 {
		t.Fatalf("MainBody() = %q, want two closing braces for the string for_in form", body)
	}
}

func TestFuncBodyIsRedirectedAndCommitted(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "func greet:")
	d.ProcessLine(2, "  print(1)")
	d.Finish()

	if !d.bufs.HasFunction("greet") {
		t.Fatalf("HasFunction(greet) = false")
	}
	fb := d.Buffers().FunctionBody("greet")
	if !strings.Contains(fb, `printf("%d\n", (int)(1));`) {
		t.Fatalf("FunctionBody(greet) = %q, want the print statement", fb)
	}
	if strings.Contains(fb, "}") {
		t.Fatalf("FunctionBody(greet) = %q, want no closing brace -- emit.Assemble supplies the function's single '}'", fb)
	}
	if strings.Contains(d.Buffers().MainBody(), "print") {
		t.Fatalf("MainBody() leaked function content: %q", d.Buffers().MainBody())
	}
}

func TestNestedFuncIsRejected(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "if x > 0:")
	d.ProcessLine(2, "  func inner:")
	d.ProcessLine(3, "    print(1)")
	d.Finish()

	if !d.errs.HasErrors() {
		t.Fatalf("expected an error for a func nested inside an if block")
	}
}

func TestBraceDisciplineWarnsWhenClosedWithEnd(t *testing.T) {
	d := newDispatcher(Options{AutoClose: false})
	d.ProcessLine(1, "if x > 0 {")
	d.ProcessLine(2, "print(1)")
	d.ProcessLine(3, "end")

	if got, want := d.errs.Count(errlist.SeverityWarning), 1; got != want {
		t.Fatalf("warning count = %d, want %d", got, want)
	}
}

func TestStrayEndIsAnError(t *testing.T) {
	d := newDispatcher(Options{AutoClose: false})
	d.ProcessLine(1, "end")
	if !d.errs.HasErrors() {
		t.Fatalf("expected an error for a stray 'end'")
	}
}

func TestAppendRewritesToListAppendCall(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "list nums")
	d.ProcessLine(2, "append(nums, 3)")
	body := d.Buffers().MainBody()
	if !strings.Contains(body, "list_append(&nums, 3);") {
		t.Fatalf("MainBody() = %q, want a list_append call", body)
	}
}

func TestCommentedLineIsIgnored(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "# just a comment")
	if d.Buffers().MainBody() != "" {
		t.Fatalf("MainBody() = %q, want empty for a comment-only line", d.Buffers().MainBody())
	}
}

func TestRawStatementDetectsFuncCall(t *testing.T) {
	var events bytes.Buffer
	d := New(Options{AutoClose: true}, symtab.New(1024), blockstack.New(256), errlist.New(256), buffers.New(512), logx.New(&events, logx.ModeMachine))
	d.ProcessLine(1, "func greet:")
	d.ProcessLine(2, "  print(1)")
	d.ProcessLine(3, "greet()")

	body := d.Buffers().MainBody()
	if !strings.Contains(body, "greet();") {
		t.Fatalf("MainBody() = %q, want the call statement", body)
	}
	if !strings.Contains(events.String(), "FUNC_CALL:3:greet()") {
		t.Fatalf("events = %q, want a FUNC_CALL event for greet() on line 3", events.String())
	}
}

func TestFuncEmitsBalancedBraces(t *testing.T) {
	d := newDispatcher(Options{AutoClose: true})
	d.ProcessLine(1, "func greet:")
	d.ProcessLine(2, "  print(\"hi\")")
	d.ProcessLine(3, "greet()")
	d.Finish()

	if d.errs.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.errs.Records())
	}

	out := emit.Assemble(d.Buffers())
	if got, want := strings.Count(out, "{"), strings.Count(out, "}"); got != want {
		t.Fatalf("Assemble() unbalanced braces: %d '{' vs %d '}' in %q", got, want, out)
	}
	if !strings.Contains(out, "void greet(void) {\nprintf(\"%s\\n\", \"hi\");\n}\n") {
		t.Fatalf("Assemble() = %q, want a single closing brace on greet's definition", out)
	}
}
