package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestModeNoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, ModeNone)
	l.Log(Event{Category: Stmt, Line: 1, Message: "hello"})
	if buf.Len() != 0 {
		t.Fatalf("ModeNone logger wrote %q, want nothing", buf.String())
	}
}

func TestMachineModeEscapesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, ModeMachine)
	l.Log(Event{Category: VarDecl, Line: 3, Message: "int x: declared", Snippet: "int x = 1;\n"})
	got := buf.String()
	if !strings.HasPrefix(got, "VAR_DECL:3:") {
		t.Fatalf("machine line = %q, want it to start with VAR_DECL:3:", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Fatalf("machine line did not escape embedded newline: %q", got)
	}
	if !strings.Contains(got, "int x\\: declared") {
		t.Fatalf("machine line did not escape embedded colon: %q", got)
	}
}

func TestHumanModeIncludesCategoryAndLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, ModeHuman)
	l.Log(Event{Category: BlockOpen, Line: 7, Message: "opened if"})
	got := buf.String()
	if !strings.Contains(got, "BLOCK_OPEN") || !strings.Contains(got, "line 7") {
		t.Fatalf("human line = %q, want it to mention BLOCK_OPEN and line 7", got)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	if got := RenderSummary(""); got != "" {
		t.Fatalf("RenderSummary(\"\") = %q, want empty", got)
	}
}
