package lexline

import (
	"testing"

	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
	"github.com/Cosmic-crypto/a-compiler/internal/types"
)

func TestIndentSpacesAndTabs(t *testing.T) {
	cases := map[string]int{
		"":          0,
		"x":         0,
		"    x":     4,
		"\tx":       4,
		"\t\tx":     8,
		"  \tx":     6,
	}
	for in, want := range cases {
		if got := Indent(in); got != want {
			t.Errorf("Indent(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestStripCommentGuardsStrings(t *testing.T) {
	got := StripComment(`print("a # b") # real comment`)
	want := `print("a # b") `
	if got != want {
		t.Fatalf("StripComment() = %q, want %q", got, want)
	}
}

func TestSubstituteTimeCallsGuardsStrings(t *testing.T) {
	got := SubstituteTimeCalls(`int t = time.now()`)
	want := `int t = (int)time(NULL)`
	if got != want {
		t.Fatalf("SubstituteTimeCalls() = %q, want %q", got, want)
	}

	got = SubstituteTimeCalls(`print("time.now()")`)
	want = `print("time.now()")`
	if got != want {
		t.Fatalf("SubstituteTimeCalls() inside a string literal = %q, want unchanged %q", got, want)
	}
}

func TestRewriteListIndex(t *testing.T) {
	tab := symtab.New(8)
	_ = tab.Register("L", types.List, false)
	_ = tab.Register("s", types.String, false)

	if got, want := RewriteListIndex("L[1]", tab), "L.data[1]"; got != want {
		t.Fatalf("RewriteListIndex(L[1]) = %q, want %q", got, want)
	}
	if got, want := RewriteListIndex("s[1]", tab), "s[1]"; got != want {
		t.Fatalf("RewriteListIndex(s[1]) = %q, want %q (strings are never rewritten)", got, want)
	}
	if got, want := RewriteListIndex(`print("L[1]")`, tab), `print("L[1]")`; got != want {
		t.Fatalf("RewriteListIndex inside a string literal = %q, want unchanged %q", got, want)
	}
}

func TestStripHeaderSuffix(t *testing.T) {
	body, brace := StripHeaderSuffix("x > 0 {")
	if body != "x > 0" || !brace {
		t.Fatalf("StripHeaderSuffix(brace) = %q, %v", body, brace)
	}
	body, brace = StripHeaderSuffix("x > 0:")
	if body != "x > 0" || brace {
		t.Fatalf("StripHeaderSuffix(colon) = %q, %v", body, brace)
	}
	body, brace = StripHeaderSuffix("x > 0")
	if body != "x > 0" || brace {
		t.Fatalf("StripHeaderSuffix(bare) = %q, %v", body, brace)
	}
}
