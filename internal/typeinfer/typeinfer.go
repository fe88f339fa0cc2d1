// Package typeinfer implements the small, local expression-type
// inference pass. It never descends
// into subexpressions or operators: callers only use its result to
// pick a print format or a for-in emission shape.
package typeinfer

import (
	"strings"

	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
	"github.com/Cosmic-crypto/a-compiler/internal/types"
)

// Infer classifies a trimmed expression string against a symbol
// table, following a fixed ordered rule list.
func Infer(expr string, tab *symtab.Table) types.SemanticType {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return types.Int
	}

	if strings.HasPrefix(expr, `"`) {
		return types.String
	}
	if expr == "true" || expr == "false" {
		return types.Bool
	}
	if strings.HasPrefix(expr, "(") && strings.Contains(expr, ",") {
		return types.Tuple
	}
	if strings.HasPrefix(expr, "[") {
		return types.List
	}
	if strings.HasPrefix(expr, "{") {
		return types.Dict
	}
	if isFloatLiteral(expr) {
		return types.Float
	}
	if isIntLiteral(expr) {
		return types.Int
	}

	ident := leadingIdentifier(expr)
	if ident != "" {
		if v, ok := tab.Lookup(ident); ok {
			if len(expr) > len(ident) && expr[len(ident)] == '[' {
				if v.Type == types.List || v.Type == types.String {
					return types.Int
				}
			}
			return v.Type
		}
	}

	return types.Int
}

// isIntLiteral reports whether expr is purely a (possibly signed)
// integer literal and nothing else.
func isIntLiteral(expr string) bool {
	i := 0
	if i < len(expr) && (expr[i] == '+' || expr[i] == '-') {
		i++
	}
	if i == len(expr) {
		return false
	}
	for ; i < len(expr); i++ {
		if expr[i] < '0' || expr[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatLiteral reports whether expr is purely a (possibly signed)
// floating literal containing exactly one '.'.
func isFloatLiteral(expr string) bool {
	i := 0
	if i < len(expr) && (expr[i] == '+' || expr[i] == '-') {
		i++
	}
	dotSeen := false
	digitSeen := false
	if i == len(expr) {
		return false
	}
	for ; i < len(expr); i++ {
		switch {
		case expr[i] == '.' && !dotSeen:
			dotSeen = true
		case expr[i] >= '0' && expr[i] <= '9':
			digitSeen = true
		default:
			return false
		}
	}
	return dotSeen && digitSeen
}

// leadingIdentifier returns the identifier token at the start of
// expr, or "" if expr doesn't start with one.
func leadingIdentifier(expr string) string {
	i := 0
	for i < len(expr) && isIdentByte(expr[i]) {
		i++
	}
	if i == 0 || (expr[0] >= '0' && expr[0] <= '9') {
		return ""
	}
	return expr[:i]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
