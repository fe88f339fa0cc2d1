// Package buffers owns the translator's two output buffers: the
// pending main body and the body of whichever function is currently
// active. Both grow on demand via bytes.Buffer and are concatenated in
// a fixed order only at the end, per the data model's "no interleaving
// occurs" invariant.
package buffers

import (
	"bytes"
	"fmt"
)

const overflowFactor = 10

// Buffers holds the main body, the in-progress function body (if any)
// and the committed bodies of functions already closed.
type Buffers struct {
	main        bytes.Buffer
	active      *bytes.Buffer
	funcBuf     *bytes.Buffer
	pendingName string

	funcOrder  []string
	funcBodies map[string]string
	knownFuncs map[string]bool

	funcCapacity int
}

// New creates an empty Buffers with the main body active, advertising
// funcCapacity as the lower bound on distinct function definitions
// (>=512).
func New(funcCapacity int) *Buffers {
	b := &Buffers{
		funcBodies:   make(map[string]string),
		knownFuncs:   make(map[string]bool),
		funcCapacity: funcCapacity,
	}
	b.active = &b.main
	return b
}

// WriteString appends to whichever buffer is currently active: the
// main body when no function is open, otherwise the body of the
// most-recently-started function.
func (b *Buffers) WriteString(s string) {
	b.active.WriteString(s)
}

// InFunction reports whether a function body is currently active.
func (b *Buffers) InFunction() bool { return b.funcBuf != nil }

// HasFunction reports whether a function named name has been started,
// including one whose body is still open.
func (b *Buffers) HasFunction(name string) bool { return b.knownFuncs[name] }

// ErrCapacity is returned by StartFunction once the number of
// committed function bodies would exceed the hard ceiling.
type ErrCapacity struct{ Capacity int }

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("function table full (capacity %d)", e.Capacity)
}

// StartFunction redirects subsequent WriteString calls to a fresh
// buffer for name, and marks name as defined immediately (so a
// function can even be referenced, in theory, before EndFunction).
func (b *Buffers) StartFunction(name string) error {
	if len(b.funcOrder)+1 > b.funcCapacity*overflowFactor {
		return &ErrCapacity{Capacity: b.funcCapacity * overflowFactor}
	}
	b.knownFuncs[name] = true
	buf := &bytes.Buffer{}
	b.funcBuf = buf
	b.active = buf
	b.pendingName = name
	return nil
}

// EndFunction commits the active function's body under its name and
// redirects subsequent writes back to the main body.
func (b *Buffers) EndFunction() {
	if b.funcBuf == nil {
		return
	}
	b.funcOrder = append(b.funcOrder, b.pendingName)
	b.funcBodies[b.pendingName] = b.funcBuf.String()
	b.funcBuf = nil
	b.pendingName = ""
	b.active = &b.main
}

// MainBody returns the accumulated main body text.
func (b *Buffers) MainBody() string { return b.main.String() }

// FunctionOrder returns function names in declaration order.
func (b *Buffers) FunctionOrder() []string {
	out := make([]string, len(b.funcOrder))
	copy(out, b.funcOrder)
	return out
}

// FunctionBody returns the committed body text for name.
func (b *Buffers) FunctionBody(name string) string { return b.funcBodies[name] }
