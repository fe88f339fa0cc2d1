// Package lexline holds the line-oriented lexical helpers the
// dispatcher runs over every source line before classification:
// indent measurement, comment stripping, the time/date/clock textual
// substitutions, and the list-indexing rewrite. All of the scanning
// helpers here guard against rewriting inside double-quoted string
// literals.
package lexline

import (
	"strings"

	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
	"github.com/Cosmic-crypto/a-compiler/internal/types"
)

// Indent counts leading whitespace width: a space counts 1, a tab
// counts 4.
func Indent(line string) int {
	n := 0
	for _, c := range line {
		switch c {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

// TrimCR strips a single trailing carriage return, for files with
// CRLF line endings.
func TrimCR(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// StripComment removes a '#' through end-of-line, but only when the
// '#' appears outside a double-quoted string literal.
func StripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

type timeReplacement struct{ from, to string }

// Order does not matter: none of these three share a prefix, so at
// most one can match at any position.
var timeReplacements = []timeReplacement{
	{"clock.now()", "((double)clock() / CLOCKS_PER_SEC)"},
	{"time.now()", "(int)time(NULL)"},
	{"date.now()", "(int)time(NULL)"},
}

// SubstituteTimeCalls rewrites time.now()/date.now()/clock.now() to
// their C equivalents, skipping any occurrence inside a string
// literal.
func SubstituteTimeCalls(line string) string {
	var out strings.Builder
	inString := false
	i := 0
	for i < len(line) {
		c := line[i]
		if c == '"' {
			inString = !inString
			out.WriteByte(c)
			i++
			continue
		}
		if !inString {
			matched := false
			for _, r := range timeReplacements {
				if strings.HasPrefix(line[i:], r.from) {
					out.WriteString(r.to)
					i += len(r.from)
					matched = true
					break
				}
			}
			if matched {
				continue
			}
		}
		out.WriteByte(c)
		i++
	}
	return out.String()
}

// RewriteListIndex rewrites V[ to V.data[ wherever V is a known
// list-typed identifier immediately preceding the bracket, skipping
// occurrences inside string literals. String-typed variables are
// deliberately not rewritten: indexing a string stays plain C array
// indexing.
func RewriteListIndex(expr string, tab *symtab.Table) string {
	var out strings.Builder
	inString := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c == '"' {
			inString = !inString
			out.WriteByte(c)
			continue
		}
		if !inString && c == '[' {
			if name := trailingIdentifier(out.String()); name != "" {
				if v, ok := tab.Lookup(name); ok && v.Type == types.List {
					out.WriteString(".data[")
					continue
				}
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}

func trailingIdentifier(s string) string {
	end := len(s)
	start := end
	for start > 0 && isIdentByte(s[start-1]) {
		start--
	}
	if start == end {
		return ""
	}
	if s[start] >= '0' && s[start] <= '9' {
		return "" // identifiers never start with a digit
	}
	return s[start:end]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// StripHeaderSuffix trims a block header's optional trailing brace or
// colon, reporting whether a brace was found. Trailing whitespace
// around the stripped suffix is also removed.
func StripHeaderSuffix(s string) (body string, hasBrace bool) {
	s = strings.TrimRight(s, " \t")
	if strings.HasSuffix(s, "{") {
		return strings.TrimRight(strings.TrimSuffix(s, "{"), " \t"), true
	}
	if strings.HasSuffix(s, ":") {
		return strings.TrimRight(strings.TrimSuffix(s, ":"), " \t"), false
	}
	return s, false
}

// FirstWord returns the leading run of ASCII letters in s, used to
// classify keyword-only statement forms like "else".
func FirstWord(s string) string {
	i := 0
	for i < len(s) && ((s[i] >= 'a' && s[i] <= 'z') || (s[i] >= 'A' && s[i] <= 'Z')) {
		i++
	}
	return s[:i]
}
