// Package diag is the diagnostics collaborator's data shape: a
// Diagnostic record plus a Bag collector, adapted from the teacher's
// errors.Error / errors.ErrorList.
package diag

import (
	"fmt"
	"strings"

	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/sourcemap"
)

// Kind classifies a Diagnostic. Most kinds are parser-recovery notes,
// not fatal errors — the parser always finishes and returns an AST.
type Kind int

const (
	UnexpectedToken Kind = iota
	UnclosedBracket
	ImplicitInt                 // §6 Open Question 1: "T * x;" with T unknown, treated as a declaration
	UnrepresentableFloatLiteral // §6 Open Question 3: hex-float source asked for NaN
	LexicalError
	UnboundTemplate // quasiquote: a @name marker with no matching binding
	Other
)

func (k Kind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnclosedBracket:
		return "unclosed bracket"
	case ImplicitInt:
		return "implicit int"
	case UnrepresentableFloatLiteral:
		return "unrepresentable float literal"
	case LexicalError:
		return "lexical error"
	case UnboundTemplate:
		return "unbound template"
	default:
		return "error"
	}
}

// Diagnostic is one recorded problem, carrying enough of a span to
// render a caret once resolved against a sourcemap.Map.
type Diagnostic struct {
	Span     lexer.Span
	Kind     Kind
	Message  string
	Expected string // optional: what the parser was looking for
	Found    string // optional: what it found instead
}

func (d Diagnostic) String() string {
	if d.Expected != "" || d.Found != "" {
		return fmt.Sprintf("%s: %s (expected %s, found %s)", d.Kind, d.Message, d.Expected, d.Found)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Bag collects diagnostics produced over the course of one lex or
// parse operation. The zero value is ready to use.
type Bag struct {
	items []Diagnostic
}

// Add records a diagnostic.
func (b *Bag) Add(d Diagnostic) { b.items = append(b.items, d) }

// Addf is a convenience wrapper building Message with fmt.Sprintf.
func (b *Bag) Addf(span lexer.Span, kind Kind, format string, args ...any) {
	b.Add(Diagnostic{Span: span, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any diagnostic was recorded.
func (b *Bag) HasErrors() bool { return len(b.items) > 0 }

// Len reports the number of diagnostics recorded.
func (b *Bag) Len() int { return len(b.items) }

// All returns every diagnostic recorded, in the order added.
func (b *Bag) All() []Diagnostic { return b.items }

// FilterByKind returns only the diagnostics of the given kind.
func (b *Bag) FilterByKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range b.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Render formats every diagnostic as "file:line:col: kind: message",
// resolving spans against sm and source. Used by cmd/cparse; the core
// lexer and parser packages never format diagnostics themselves.
func (b *Bag) Render(sm *sourcemap.Map, source string) string {
	var sb strings.Builder
	for i, d := range b.items {
		if i > 0 {
			sb.WriteString("\n")
		}
		loc := sm.ResolveOffset(source, d.Span.Ctx, d.Span.Start)
		sb.WriteString(loc.String())
		sb.WriteString(": ")
		sb.WriteString(d.String())
	}
	return sb.String()
}
