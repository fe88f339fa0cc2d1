// Package types describes the semantic type lattice used by the
// translator's symbol table and expression-type inference pass.
//
// This is a deliberately small lattice: A programs never carry
// user-defined types, so classification only needs to pick among the
// handful of shapes the emitter has a template for.
package types

// SemanticType enumerates the value shapes the translator can reason
// about. Unknown is what the symbol table reports for a name that has
// never been registered; expression inference falls back to Int, not
// Unknown.
type SemanticType int

const (
	Unknown SemanticType = iota
	Int
	Float
	Bool
	String
	List
	Dict
	Tuple
)

func (t SemanticType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case List:
		return "list"
	case Dict:
		return "dict"
	case Tuple:
		return "tuple"
	default:
		return "unknown"
	}
}

// CType returns the C type spelling the emitter should use for a
// declaration of this semantic type.
func (t SemanticType) CType() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "char*"
	case List:
		return "List"
	case Dict:
		return "Dict"
	case Tuple:
		return "Tuple"
	default:
		return "int"
	}
}

// ParseKeyword maps a declaration keyword (as it appears in A source,
// e.g. "list") to its semantic type. ok is false for anything that
// isn't one of the seven declarable keywords.
func ParseKeyword(word string) (SemanticType, bool) {
	switch word {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "bool":
		return Bool, true
	case "string":
		return String, true
	case "list":
		return List, true
	case "dict":
		return Dict, true
	case "tuple":
		return Tuple, true
	default:
		return Unknown, false
	}
}

// DefaultInit returns the C initializer text used when a declaration
// omits an explicit initializer, and whether that type should even be
// given one (bool and float are emitted uninitialized).
func (t SemanticType) DefaultInit() (string, bool) {
	switch t {
	case Int:
		return "0", true
	case String:
		return "NULL", true
	case List:
		return "new_list()", true
	case Dict:
		return "new_dict()", true
	case Tuple:
		return "new_tuple()", true
	default:
		return "", false
	}
}
