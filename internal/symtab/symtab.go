// Package symtab implements the translator's flat, single-scope symbol
// table. A programs have no block-scoped variables -- every name that
// has ever been declared stays visible and registration is idempotent:
// re-declaring a name just overwrites its type and const-ness in place.
package symtab

import (
	"fmt"

	"github.com/Cosmic-crypto/a-compiler/internal/types"
)

// ErrCapacity is returned by Register when the table is full and name
// has never been seen before.
type ErrCapacity struct {
	Name     string
	Capacity int
}

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("symbol table full (capacity %d): cannot register %q", e.Capacity, e.Name)
}

// Variable is one entry: a name, its semantic type, and whether it was
// declared const.
type Variable struct {
	Name  string
	Type  types.SemanticType
	Const bool
}

// Table is the flat, case-sensitive symbol table. The advertised
// capacity is a lower bound, not a hard ceiling: Table keeps
// growing via append past Capacity and only refuses registration once
// it hits capacity*overflowFactor.
const overflowFactor = 10

type Table struct {
	vars     map[string]*Variable
	order    []string
	capacity int
}

// New creates a table advertising the given capacity as its lower
// bound (>=1024 variables).
func New(capacity int) *Table {
	return &Table{
		vars:     make(map[string]*Variable, capacity),
		capacity: capacity,
	}
}

// Register records name with the given type and const flag. A
// re-registration of an existing name overwrites its type and const
// flag in place and never errors -- this is the "last writer wins"
// invariant from the data model.
func (t *Table) Register(name string, typ types.SemanticType, isConst bool) error {
	if v, ok := t.vars[name]; ok {
		v.Type = typ
		v.Const = isConst
		return nil
	}
	if len(t.order) >= t.capacity*overflowFactor {
		return &ErrCapacity{Name: name, Capacity: t.capacity * overflowFactor}
	}
	t.vars[name] = &Variable{Name: name, Type: typ, Const: isConst}
	t.order = append(t.order, name)
	return nil
}

// Lookup returns the variable registered under name, if any.
func (t *Table) Lookup(name string) (Variable, bool) {
	v, ok := t.vars[name]
	if !ok {
		return Variable{}, false
	}
	return *v, true
}

// TypeOf is a convenience wrapper returning Unknown for names that
// have never been registered.
func (t *Table) TypeOf(name string) types.SemanticType {
	if v, ok := t.vars[name]; ok {
		return v.Type
	}
	return types.Unknown
}

// Len reports how many distinct names are registered.
func (t *Table) Len() int { return len(t.order) }

// Names returns the registration order of names, for deterministic
// iteration in tests and debug tooling.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
