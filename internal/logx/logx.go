// Package logx is the translator's structured event logger, run at
// one of two verbosities: a human mode that colorizes each event's
// category tag with lipgloss, and a machine mode that writes
// colon-delimited fields with embedded code snippets escaped.
package logx

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category identifies the kind of event being logged.
type Category string

const (
	VarDecl    Category = "VAR_DECL"
	BlockOpen  Category = "BLOCK_OPEN"
	BlockClose Category = "BLOCK_CLOSE"
	BlockChain Category = "BLOCK_CHAIN"
	FuncDecl   Category = "FUNC_DECL"
	FuncCall   Category = "FUNC_CALL"
	Print      Category = "PRINT"
	ForIn      Category = "FOR_IN"
	Stmt       Category = "STMT"
	Parse      Category = "PARSE"
	Emit       Category = "EMIT"
	GccCmd     Category = "GCC_CMD"
	RunStart   Category = "RUN_START"
	RunEnd     Category = "RUN_END"
	ErrorEvent Category = "ERROR"
	WarnEvent  Category = "WARNING"
)

// Mode selects a verbosity: None emits nothing, Machine emits
// colon-delimited lines, Human emits ANSI-colored prose.
type Mode int

const (
	ModeNone Mode = iota
	ModeMachine
	ModeHuman
)

// Event is one structured occurrence the dispatcher (or driver)
// reports.
type Event struct {
	Category Category
	Line     int
	Message  string
	Snippet  string // optional emitted code, escaped in machine mode
}

// Logger writes Events to w according to Mode.
type Logger struct {
	w    io.Writer
	mode Mode
}

// New creates a Logger writing to w at the given verbosity.
func New(w io.Writer, mode Mode) *Logger {
	return &Logger{w: w, mode: mode}
}

var categoryStyles = map[Category]lipgloss.Style{
	VarDecl:    lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	BlockOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	BlockClose: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	BlockChain: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	FuncDecl:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	FuncCall:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	Print:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ForIn:      lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
	Stmt:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Parse:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Emit:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	GccCmd:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	RunStart:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	RunEnd:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	ErrorEvent: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	WarnEvent:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
}

var defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func styleFor(c Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return defaultStyle
}

// Log writes ev according to the Logger's mode. It is a no-op under
// ModeNone.
func (l *Logger) Log(ev Event) {
	switch l.mode {
	case ModeHuman:
		l.logHuman(ev)
	case ModeMachine:
		l.logMachine(ev)
	}
}

func (l *Logger) logHuman(ev Event) {
	tag := styleFor(ev.Category).Render(fmt.Sprintf("[%s]", ev.Category))
	if ev.Line > 0 {
		fmt.Fprintf(l.w, "%s line %d: %s\n", tag, ev.Line, ev.Message)
	} else {
		fmt.Fprintf(l.w, "%s %s\n", tag, ev.Message)
	}
}

func (l *Logger) logMachine(ev Event) {
	fields := []string{string(ev.Category), fmt.Sprintf("%d", ev.Line), escape(ev.Message)}
	if ev.Snippet != "" {
		fields = append(fields, escape(ev.Snippet))
	}
	fmt.Fprintln(l.w, strings.Join(fields, ":"))
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ":", "\\:")
	return s
}

// RenderSummary renders the grouped error/warning report with
// lipgloss styling for human-facing output (the colored counterpart
// of errlist.Summary).
func RenderSummary(plain string) string {
	if plain == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(plain, "\n"), "\n")
	banner := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Render(lines[0])
	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	for _, line := range lines[1:] {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		if strings.Contains(line, "[error") {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
