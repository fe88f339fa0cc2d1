// Package dispatch implements the statement dispatcher and its
// handlers: the per-line state machine that classifies a trimmed A
// source line, consults the symbol table, updates the block stack,
// logs a structured event, and appends generated C to whichever
// output buffer is currently active. Classification is one handler
// method per statement form, so adding a new form means adding a new
// method rather than threading a new case through shared logic.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/Cosmic-crypto/a-compiler/internal/blockstack"
	"github.com/Cosmic-crypto/a-compiler/internal/buffers"
	"github.com/Cosmic-crypto/a-compiler/internal/errlist"
	"github.com/Cosmic-crypto/a-compiler/internal/lexline"
	"github.com/Cosmic-crypto/a-compiler/internal/logx"
	"github.com/Cosmic-crypto/a-compiler/internal/symtab"
	"github.com/Cosmic-crypto/a-compiler/internal/typeinfer"
	"github.com/Cosmic-crypto/a-compiler/internal/types"
)

// Options configures how the dispatcher handles a compile: whether
// indent-discipline auto-close is enabled, and whether raw mode's
// stricter end-discipline default applies.
type Options struct {
	AutoClose bool
	Raw       bool
}

// Dispatcher is the owned, explicitly-threaded compilation context:
// no package-level mutable state. One Dispatcher handles exactly one compile.
type Dispatcher struct {
	opts    Options
	symbols *symtab.Table
	blocks  *blockstack.Stack
	errs    *errlist.List
	bufs    *buffers.Buffers
	logger  *logx.Logger
}

// New creates a Dispatcher over the given owned tables. The caller
// constructs the symbol table, block stack, error list, buffers and
// logger up front and passes them in explicitly.
func New(opts Options, symbols *symtab.Table, blocks *blockstack.Stack, errs *errlist.List, bufs *buffers.Buffers, logger *logx.Logger) *Dispatcher {
	return &Dispatcher{opts: opts, symbols: symbols, blocks: blocks, errs: errs, bufs: bufs, logger: logger}
}

// ProcessLine runs one source line (1-indexed by lineNum) through
// comment-stripping, the time-call substitution, auto-close, and
// statement classification/dispatch.
func (d *Dispatcher) ProcessLine(lineNum int, raw string) {
	raw = lexline.TrimCR(raw)
	noComment := lexline.StripComment(raw)
	indent := lexline.Indent(noComment)
	trimmed := strings.TrimSpace(noComment)
	if trimmed == "" {
		return
	}
	trimmed = lexline.SubstituteTimeCalls(trimmed)

	d.logger.Log(logx.Event{Category: logx.Parse, Line: lineNum, Message: trimmed})

	first := lexline.FirstWord(trimmed)
	d.autoCloseBefore(indent, first)

	switch {
	case trimmed == "end":
		d.handleEnd(lineNum)
	case trimmed[0] == '}':
		d.handleBraceClose(lineNum)
	case strings.HasPrefix(trimmed, "const "):
		d.handleDecl(trimmed, lineNum, true)
	case declKeyword(trimmed) != "":
		d.handleDecl(trimmed, lineNum, false)
	case strings.HasPrefix(trimmed, "print("):
		d.handlePrint(trimmed, lineNum)
	case strings.HasPrefix(trimmed, "if "):
		d.handleBlockOpen(blockstack.KindIf, "if ", trimmed, lineNum, indent)
	case strings.HasPrefix(trimmed, "elif "):
		d.handleElifElse(true, trimmed, lineNum)
	case first == "else":
		d.handleElifElse(false, trimmed, lineNum)
	case strings.HasPrefix(trimmed, "while "):
		d.handleBlockOpen(blockstack.KindWhile, "while ", trimmed, lineNum, indent)
	case strings.HasPrefix(trimmed, "for "):
		d.handleFor(trimmed, lineNum, indent)
	case strings.HasPrefix(trimmed, "func "):
		d.handleFunc(trimmed, lineNum, indent)
	case strings.HasPrefix(trimmed, "append("):
		d.handleAppend(trimmed, lineNum)
	case strings.HasPrefix(trimmed, "dset(") || strings.HasPrefix(trimmed, "dget("):
		d.handleRuntimeCall(trimmed, lineNum)
	default:
		d.handleRaw(trimmed, lineNum)
	}

	d.logger.Log(logx.Event{Category: logx.Emit, Line: lineNum, Message: "line processed"})
}

// Finish drains remaining auto-closable blocks and reports an error
// for anything left open that required explicit closure. Call once
// after the last input line.
func (d *Dispatcher) Finish() {
	for {
		top, ok := d.blocks.Top()
		if !ok {
			return
		}
		if d.opts.AutoClose && top.Discipline == blockstack.DisciplineIndent {
			popped, _ := d.blocks.Pop()
			d.closeBlock(popped, popped.Line)
			continue
		}
		d.errs.Add(errlist.SeverityError, top.Line, fmt.Sprintf("unclosed %s block starting at line %d requires an explicit closure", top.Kind, top.Line))
		d.blocks.Pop()
	}
}

// Errors exposes the accumulated error/warning list.
func (d *Dispatcher) Errors() *errlist.List { return d.errs }

// Buffers exposes the output buffers, for final assembly.
func (d *Dispatcher) Buffers() *buffers.Buffers { return d.bufs }

// --- auto-close -------------------------------------------------------

func (d *Dispatcher) autoCloseBefore(curIndent int, firstToken string) {
	if !d.opts.AutoClose {
		return
	}
	if firstToken == "elif" || firstToken == "else" {
		return
	}
	for {
		top, ok := d.blocks.Top()
		if !ok || top.Discipline != blockstack.DisciplineIndent || top.Indent < curIndent {
			return
		}
		popped, _ := d.blocks.Pop()
		d.closeBlock(popped, popped.Line)
	}
}

// closeBlock emits the block's closing brace(s) to whichever buffer is
// currently active. A func block is the one exception: its body gets
// no closing brace here -- emit.Assemble wraps the committed body in
// its own "void name(void) { ... }" and supplies that brace -- so
// closeBlock only commits the function body and redirects future
// writes back to main.
func (d *Dispatcher) closeBlock(b *blockstack.Block, eventLine int) {
	if b.Kind == blockstack.KindFunc {
		// emit.Assemble wraps the committed body in its own
		// "void name(void) { ... }" -- closing it here too would
		// double the brace.
		d.bufs.EndFunction()
	} else {
		d.bufs.WriteString(strings.Repeat("}\n", b.ScopesToClose))
	}
	d.logger.Log(logx.Event{Category: logx.BlockClose, Line: b.Line, Message: fmt.Sprintf("closed %s block", b.Kind)})
}

// --- end / brace close -------------------------------------------------

func (d *Dispatcher) handleEnd(lineNum int) {
	top, ok := d.blocks.Pop()
	if !ok {
		d.errs.Add(errlist.SeverityError, lineNum, "stray 'end' with no open block")
		return
	}
	if top.Discipline == blockstack.DisciplineBrace {
		d.errs.Add(errlist.SeverityWarning, top.Line, "block opened with '{' was closed with 'end'")
	}
	d.closeBlock(top, lineNum)
}

func (d *Dispatcher) handleBraceClose(lineNum int) {
	top, ok := d.blocks.Top()
	if !ok {
		d.errs.Add(errlist.SeverityError, lineNum, "stray '}' with no open block")
		return
	}
	if top.Discipline != blockstack.DisciplineBrace {
		d.errs.Add(errlist.SeverityWarning, top.Line, "block was closed with '}' but not opened with '{'")
	}
	d.blocks.Pop()
	d.closeBlock(top, lineNum)
}

// --- declarations ------------------------------------------------------

func declKeyword(trimmed string) string {
	for _, kw := range []string{"int ", "float ", "bool ", "string ", "list ", "dict ", "tuple "} {
		if strings.HasPrefix(trimmed, kw) {
			return strings.TrimSpace(kw)
		}
	}
	return ""
}

func (d *Dispatcher) handleDecl(trimmed string, lineNum int, isConst bool) {
	rest := trimmed
	if isConst {
		rest = strings.TrimSpace(strings.TrimPrefix(trimmed, "const"))
	}
	typeWord, remainder := splitFirstToken(rest)
	semtype, ok := types.ParseKeyword(typeWord)
	if !ok {
		d.errs.Add(errlist.SeverityError, lineNum, fmt.Sprintf("unknown type %q in declaration", typeWord))
		return
	}

	var name, expr string
	hasInit := false
	if eq := strings.IndexByte(remainder, '='); eq >= 0 {
		name = strings.TrimSpace(remainder[:eq])
		expr = strings.TrimSpace(remainder[eq+1:])
		hasInit = true
	} else {
		name = strings.TrimSpace(remainder)
	}
	if name == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "declaration missing a variable name")
		name = fmt.Sprintf("__err_var_%d", lineNum)
	}

	ctype := semtype.CType()
	constPrefix := ""
	if isConst {
		constPrefix = "const "
	}

	var line string
	if hasInit {
		line = fmt.Sprintf("%s%s %s = %s;\n", constPrefix, ctype, name, expr)
	} else if def, has := semtype.DefaultInit(); has {
		line = fmt.Sprintf("%s%s %s = %s;\n", constPrefix, ctype, name, def)
	} else {
		line = fmt.Sprintf("%s%s %s;\n", constPrefix, ctype, name)
	}

	if err := d.symbols.Register(name, semtype, isConst); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}

	d.logger.Log(logx.Event{Category: logx.VarDecl, Line: lineNum, Message: fmt.Sprintf("%s %s", semtype, name), Snippet: line})
	d.bufs.WriteString(line)
}

func splitFirstToken(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// --- print ---------------------------------------------------------------

func (d *Dispatcher) handlePrint(trimmed string, lineNum int) {
	open := strings.IndexByte(trimmed, '(')
	closeIdx := strings.LastIndexByte(trimmed, ')')
	if open < 0 || closeIdx <= open {
		d.errs.Add(errlist.SeverityError, lineNum, "print(...) is missing its parentheses")
		d.bufs.WriteString(`printf("\n");` + "\n")
		return
	}
	content := strings.TrimSpace(trimmed[open+1 : closeIdx])
	semtype := typeinfer.Infer(content, d.symbols)
	rewritten := lexline.RewriteListIndex(content, d.symbols)

	var line string
	switch semtype {
	case types.String:
		line = fmt.Sprintf(`printf("%%s\n", %s);`+"\n", rewritten)
	case types.Bool:
		line = fmt.Sprintf(`printf("%%s\n", (%s)?"true":"false");`+"\n", rewritten)
	case types.Float:
		line = fmt.Sprintf(`printf("%%f\n", %s);`+"\n", rewritten)
	case types.List:
		line = fmt.Sprintf("print_list(&%s);\n", rewritten)
	case types.Tuple:
		line = fmt.Sprintf("print_tuple(&%s);\n", rewritten)
	default:
		line = fmt.Sprintf(`printf("%%d\n", (int)(%s));`+"\n", rewritten)
	}

	d.logger.Log(logx.Event{Category: logx.Print, Line: lineNum, Message: fmt.Sprintf("print %s (%s)", content, semtype), Snippet: line})
	d.bufs.WriteString(line)
}

// --- if / elif / else / while -------------------------------------------

func (d *Dispatcher) disciplineFor(hasBrace bool) blockstack.Discipline {
	switch {
	case hasBrace:
		return blockstack.DisciplineBrace
	case d.opts.Raw:
		return blockstack.DisciplineEnd
	default:
		return blockstack.DisciplineIndent
	}
}

func (d *Dispatcher) handleBlockOpen(kind blockstack.Kind, prefix, trimmed string, lineNum, indent int) {
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
	cond, hasBrace := lexline.StripHeaderSuffix(body)
	cond = strings.TrimSpace(cond)

	if cond == "" {
		fallback := "1"
		if kind == blockstack.KindWhile {
			fallback = "0"
		}
		d.errs.Add(errlist.SeverityError, lineNum, fmt.Sprintf("%s is missing its condition", kind))
		cond = fallback
	}

	kw := "if"
	if kind == blockstack.KindWhile {
		kw = "while"
	}
	line := fmt.Sprintf("%s (%s) {\n", kw, cond)
	d.logger.Log(logx.Event{Category: logx.BlockOpen, Line: lineNum, Message: fmt.Sprintf("%s (%s)", kw, cond), Snippet: line})
	d.bufs.WriteString(line)

	err := d.blocks.Push(blockstack.Block{
		Indent:     indent,
		Line:       lineNum,
		Kind:       kind,
		Discipline: d.disciplineFor(hasBrace),
	})
	if err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}
}

func (d *Dispatcher) handleElifElse(isElif bool, trimmed string, lineNum int) {
	top, ok := d.blocks.Top()
	if !ok || (top.Kind != blockstack.KindIf && top.Kind != blockstack.KindElif) {
		kw := "else"
		if isElif {
			kw = "elif"
		}
		d.errs.Add(errlist.SeverityError, lineNum, fmt.Sprintf("%s without an enclosing if/elif", kw))
		return
	}

	var line string
	if isElif {
		body := strings.TrimSpace(strings.TrimPrefix(trimmed, "elif "))
		cond, _ := lexline.StripHeaderSuffix(body)
		cond = strings.TrimSpace(cond)
		if cond == "" {
			d.errs.Add(errlist.SeverityError, lineNum, "elif is missing its condition")
			cond = "1"
		}
		line = fmt.Sprintf("} else if (%s) {\n", cond)
		d.blocks.MutateTopKind(blockstack.KindElif)
	} else {
		line = "} else {\n"
		d.blocks.MutateTopKind(blockstack.KindElse)
	}

	d.logger.Log(logx.Event{Category: logx.BlockChain, Line: lineNum, Message: fmt.Sprintf("chained onto block opened at line %d", top.Line), Snippet: line})
	d.bufs.WriteString(line)
}

// --- for (to-form and in-form) -------------------------------------------

func (d *Dispatcher) handleFor(trimmed string, lineNum, indent int) {
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, "for "))
	body, hasBrace := lexline.StripHeaderSuffix(body)

	if idx := strings.Index(body, " in "); idx >= 0 && !strings.Contains(body[:idx], "=") {
		d.handleForIn(body, idx, lineNum, indent, hasBrace)
		return
	}
	d.handleForTo(body, lineNum, indent, hasBrace)
}

func (d *Dispatcher) handleForTo(body string, lineNum, indent int, hasBrace bool) {
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		d.errs.Add(errlist.SeverityError, lineNum, "for ... = ... to ... is missing '='")
		d.pushDummyFor(lineNum, indent, hasBrace)
		return
	}
	v := strings.TrimSpace(body[:eq])
	afterEq := body[eq+1:]

	var a, b, step string
	if pi := strings.Index(afterEq, " to("); pi >= 0 {
		a = strings.TrimSpace(afterEq[:pi])
		closeParen := strings.IndexByte(afterEq[pi:], ')')
		if closeParen < 0 {
			d.errs.Add(errlist.SeverityError, lineNum, "for ... to(step) is missing ')'")
			d.pushDummyFor(lineNum, indent, hasBrace)
			return
		}
		closeParen += pi
		step = strings.TrimSpace(afterEq[pi+4 : closeParen])
		b = strings.TrimSpace(afterEq[closeParen+1:])
	} else if ti := strings.Index(afterEq, " to "); ti >= 0 {
		a = strings.TrimSpace(afterEq[:ti])
		b = strings.TrimSpace(afterEq[ti+4:])
	} else {
		d.errs.Add(errlist.SeverityError, lineNum, "for ... = ... is missing 'to'")
		d.pushDummyFor(lineNum, indent, hasBrace)
		return
	}

	if v == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "for loop is missing its induction variable")
		v = fmt.Sprintf("__i_%d", lineNum)
	}
	if a == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "for loop is missing its start value")
		a = "0"
	}
	if b == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "for loop is missing its end value")
		b = "0"
	}

	var line string
	if step != "" {
		line = fmt.Sprintf("for (int %s = %s; %s <= %s; %s += %s) {\n", v, a, v, b, v, step)
	} else {
		line = fmt.Sprintf("for (int %s = %s; %s <= %s; %s++) {\n", v, a, v, b, v)
	}

	d.registerInductionVar(v, types.Int, lineNum)
	d.logger.Log(logx.Event{Category: logx.BlockOpen, Line: lineNum, Message: fmt.Sprintf("for %s = %s to %s", v, a, b), Snippet: line})
	d.bufs.WriteString(line)

	if err := d.blocks.Push(blockstack.Block{Indent: indent, Line: lineNum, Kind: blockstack.KindFor, Discipline: d.disciplineFor(hasBrace)}); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}
}

// registerInductionVar records a for-loop's induction variable,
// reporting a capacity-overflow error the same way handleDecl does
// rather than swallowing it.
func (d *Dispatcher) registerInductionVar(name string, typ types.SemanticType, lineNum int) {
	if err := d.symbols.Register(name, typ, false); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}
}

func (d *Dispatcher) pushDummyFor(lineNum, indent int, hasBrace bool) {
	d.bufs.WriteString("for (int __err = 0; __err <= 0; __err++) {\n")
	if err := d.blocks.Push(blockstack.Block{Indent: indent, Line: lineNum, Kind: blockstack.KindFor, Discipline: d.disciplineFor(hasBrace)}); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}
}

func (d *Dispatcher) handleForIn(body string, inIdx, lineNum, indent int, hasBrace bool) {
	v := strings.TrimSpace(body[:inIdx])
	e := strings.TrimSpace(body[inIdx+4:])
	if v == "" || e == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "for V in E is missing V or E")
		d.pushDummyFor(lineNum, indent, hasBrace)
		return
	}

	semtype := typeinfer.Infer(e, d.symbols)
	var line string
	scopes := 1
	switch semtype {
	case types.List, types.Tuple:
		line = fmt.Sprintf("for (int i_idx = 0; i_idx < %s.size; i_idx++) { int %s = %s.data[i_idx];\n", e, v, e)
		d.registerInductionVar(v, types.Int, lineNum)
	case types.Dict:
		line = fmt.Sprintf("for (int i_idx = 0; i_idx < %s.size; i_idx++) { char* %s = %s.keys[i_idx];\n", e, v, e)
		d.registerInductionVar(v, types.String, lineNum)
	case types.String:
		alias := fmt.Sprintf("__str_%d", lineNum)
		line = fmt.Sprintf("{ char* %s = %s;\nfor (int i_idx = 0; %s[i_idx]; i_idx++) { char %s = %s[i_idx];\n", alias, e, alias, v, alias)
		d.registerInductionVar(v, types.Int, lineNum)
		scopes = 2
	default:
		// Type could not be pinned down to a container or a declared
		// string, so the dereference gets a null guard rather than
		// trusting e to be a valid pointer.
		alias := fmt.Sprintf("__str_%d", lineNum)
		line = fmt.Sprintf("{ char* %s = %s;\nfor (int i_idx = 0; %s && %s[i_idx]; i_idx++) { char %s = %s[i_idx];\n", alias, e, alias, alias, v, alias)
		d.registerInductionVar(v, types.Int, lineNum)
		scopes = 2
	}

	d.logger.Log(logx.Event{Category: logx.ForIn, Line: lineNum, Message: fmt.Sprintf("for %s in %s (%s)", v, e, semtype), Snippet: line})
	d.bufs.WriteString(line)

	if err := d.blocks.Push(blockstack.Block{Indent: indent, Line: lineNum, Kind: blockstack.KindForIn, Discipline: d.disciplineFor(hasBrace), ScopesToClose: scopes}); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
	}
}

// --- func -----------------------------------------------------------------

func (d *Dispatcher) handleFunc(trimmed string, lineNum, indent int) {
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, "func "))
	body, hasBrace := lexline.StripHeaderSuffix(body)
	name := strings.TrimSpace(body)

	if name == "" {
		d.errs.Add(errlist.SeverityError, lineNum, "func is missing its name")
		name = fmt.Sprintf("__func_%d", lineNum)
	}
	if name == "main" {
		d.errs.Add(errlist.SeverityWarning, lineNum, "func main is reserved; the emitter synthesizes main itself")
		return
	}
	if d.bufs.HasFunction(name) {
		d.errs.Add(errlist.SeverityError, lineNum, fmt.Sprintf("duplicate function definition %q", name))
		name = fmt.Sprintf("%s__dup_%d", name, lineNum)
	}

	if err := d.blocks.Push(blockstack.Block{Indent: indent, Line: lineNum, Kind: blockstack.KindFunc, Discipline: d.disciplineFor(hasBrace)}); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
		return
	}
	if err := d.bufs.StartFunction(name); err != nil {
		d.errs.Add(errlist.SeverityError, lineNum, err.Error())
		return
	}

	d.logger.Log(logx.Event{Category: logx.FuncDecl, Line: lineNum, Message: fmt.Sprintf("func %s", name)})
}

// --- append / runtime calls -----------------------------------------------

func (d *Dispatcher) handleAppend(trimmed string, lineNum int) {
	open := strings.IndexByte(trimmed, '(')
	closeIdx := strings.LastIndexByte(trimmed, ')')
	if open < 0 || closeIdx <= open {
		d.errs.Add(errlist.SeverityError, lineNum, "append(...) is missing its parentheses")
		return
	}
	inside := trimmed[open+1 : closeIdx]
	comma := strings.IndexByte(inside, ',')
	if comma < 0 {
		d.errs.Add(errlist.SeverityError, lineNum, "append(list, value) is missing its value argument")
		return
	}
	listName := strings.TrimSpace(inside[:comma])
	value := strings.TrimSpace(inside[comma+1:])

	if v, ok := d.symbols.Lookup(listName); ok && v.Type != types.List {
		d.errs.Add(errlist.SeverityError, lineNum, fmt.Sprintf("append target %q is not a list", listName))
	}

	value = lexline.RewriteListIndex(value, d.symbols)
	line := fmt.Sprintf("list_append(&%s, %s);\n", listName, value)
	d.logger.Log(logx.Event{Category: logx.Stmt, Line: lineNum, Message: fmt.Sprintf("append(%s, %s)", listName, value), Snippet: line})
	d.bufs.WriteString(line)
}

func (d *Dispatcher) handleRuntimeCall(trimmed string, lineNum int) {
	rewritten := lexline.RewriteListIndex(trimmed, d.symbols)
	line := rewritten + ";\n"
	d.logger.Log(logx.Event{Category: logx.Stmt, Line: lineNum, Message: "runtime call", Snippet: line})
	d.bufs.WriteString(line)
}

// --- raw passthrough --------------------------------------------------------

func (d *Dispatcher) handleRaw(trimmed string, lineNum int) {
	rewritten := lexline.RewriteListIndex(trimmed, d.symbols)
	line := rewritten + ";\n"

	category := logx.Stmt
	if name, isCall := bareCallName(trimmed); isCall && d.bufs.HasFunction(name) {
		category = logx.FuncCall
	}
	d.logger.Log(logx.Event{Category: category, Line: lineNum, Message: trimmed, Snippet: line})
	d.bufs.WriteString(line)
}

// bareCallName reports the callee name if trimmed is exactly a
// no-argument call statement like "greet()".
func bareCallName(trimmed string) (string, bool) {
	if !strings.HasSuffix(trimmed, "()") {
		return "", false
	}
	name := trimmed[:len(trimmed)-2]
	if name == "" {
		return "", false
	}
	for i, c := range name {
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
		isDigit := c >= '0' && c <= '9'
		if i == 0 && !isLetter {
			return "", false
		}
		if i > 0 && !isLetter && !isDigit {
			return "", false
		}
	}
	return name, true
}

