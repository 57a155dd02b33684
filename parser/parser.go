// Package parser turns a balanced token tree into a C23 syntax tree.
// It is a recursive-descent, backtracking parser: productions that can
// read as more than one grammar rule are tried in turn, each attempt
// guarded by a checkpoint that rewinds both the token cursor and the
// symbol table on failure.
package parser

import (
	"fmt"

	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/symtab"
)

// ContextTweaker pre-populates the symbol table before the first token
// is consumed — the hook a caller uses to teach the parser about
// typedefs/enum constants defined in headers it never lexed itself.
type ContextTweaker func(t *symtab.Table)

// frame is one level of the token-tree cursor: the tokens at a single
// bracket-nesting depth, plus how far into them the parser has read.
type frame struct {
	tokens []lexer.BalancedToken
	pos    int
}

// Parser walks a lexer.BalancedTokenSequence and the symbol table in
// lockstep, emitting AST nodes and recording (never raising) errors.
type Parser struct {
	frames []frame
	table  *symtab.Table
	diags  *diag.Bag
	eoi    lexer.Span // end-of-input span of the outermost sequence, used for trailing EOF diagnostics
}

// New builds a Parser over the top-level token sequence. tweaker may
// be nil.
func New(seq *lexer.BalancedTokenSequence, tweaker ContextTweaker) *Parser {
	t := symtab.New()
	if tweaker != nil {
		tweaker(t)
	}
	p := &Parser{
		table: t,
		diags: &diag.Bag{},
		eoi:   seq.Eoi,
	}
	p.frames = []frame{{tokens: seq.Tokens, pos: 0}}
	if !seq.Closed {
		p.diags.Addf(seq.Eoi, diag.UnclosedBracket, "unclosed bracket at end of input")
	}
	return p
}

func (p *Parser) top() *frame { return &p.frames[len(p.frames)-1] }

// cur returns the next unconsumed token in the current frame, or nil
// at the end of the frame.
func (p *Parser) cur() *lexer.BalancedToken {
	f := p.top()
	if f.pos >= len(f.tokens) {
		return nil
	}
	return &f.tokens[f.pos]
}

// peekAt returns the token n positions ahead of cur (peekAt(0) == cur).
func (p *Parser) peekAt(n int) *lexer.BalancedToken {
	f := p.top()
	i := f.pos + n
	if i < 0 || i >= len(f.tokens) {
		return nil
	}
	return &f.tokens[i]
}

// advance consumes and returns the current token.
func (p *Parser) advance() *lexer.BalancedToken {
	f := p.top()
	if f.pos >= len(f.tokens) {
		return nil
	}
	tok := &f.tokens[f.pos]
	f.pos++
	return tok
}

// atEnd reports whether the current frame has no more tokens.
func (p *Parser) atEnd() bool { return p.cur() == nil }

// here returns a zero-width span at the current cursor position, used
// for diagnostics when there is no token to anchor to (end of frame).
func (p *Parser) here() lexer.Span {
	if t := p.cur(); t != nil {
		return lexer.Span{Start: t.Span.Start, End: t.Span.Start, Ctx: t.Span.Ctx}
	}
	if f := p.top(); len(f.tokens) > 0 {
		last := f.tokens[len(f.tokens)-1].Span
		return lexer.Span{Start: last.End, End: last.End, Ctx: last.Ctx}
	}
	return p.eoi
}

// atPunct reports whether the current token is the given punctuator.
func (p *Parser) atPunct(punct lexer.Punctuator) bool {
	t := p.cur()
	return t != nil && t.Kind == lexer.KindPunctuator && t.Punct == punct
}

// eatPunct consumes the current token if it is the given punctuator.
func (p *Parser) eatPunct(punct lexer.Punctuator) bool {
	if p.atPunct(punct) {
		p.advance()
		return true
	}
	return false
}

// expectPunct consumes the given punctuator or records a diagnostic
// and leaves the cursor unmoved.
func (p *Parser) expectPunct(punct lexer.Punctuator) bool {
	if p.eatPunct(punct) {
		return true
	}
	p.diags.Add(diag.Diagnostic{
		Span: p.here(), Kind: diag.UnexpectedToken,
		Message: fmt.Sprintf("expected %q", string(punct)),
		Expected: string(punct), Found: p.describeCur(),
	})
	return false
}

func (p *Parser) describeCur() string {
	t := p.cur()
	if t == nil {
		return "end of input"
	}
	switch t.Kind {
	case lexer.KindIdentifier:
		return t.Text
	case lexer.KindPunctuator:
		return string(t.Punct)
	default:
		return t.Kind.String()
	}
}

// atIdent reports whether the current token is an identifier, and if
// so returns its spelling.
func (p *Parser) atIdent() (string, bool) {
	t := p.cur()
	if t != nil && t.Kind == lexer.KindIdentifier {
		return t.Text, true
	}
	return "", false
}

// atKeyword reports whether the current token is an identifier
// spelled exactly kw (C keywords are ordinary identifiers in the
// lexer's balanced token tree; the parser recognizes them by text).
func (p *Parser) atKeyword(kw string) bool {
	t := p.cur()
	return t != nil && t.Kind == lexer.KindIdentifier && t.Text == kw
}

func (p *Parser) eatKeyword(kw string) bool {
	if p.atKeyword(kw) {
		p.advance()
		return true
	}
	return false
}

// enterGroup pushes a new frame over tok's bracketed contents. Callers
// must pair every enterGroup with leaveGroup, even on an error path —
// leaveGroup always succeeds since it just pops the frame stack.
func (p *Parser) enterGroup(tok *lexer.BalancedToken) {
	p.frames = append(p.frames, frame{tokens: tok.Group.Tokens, pos: 0})
}

// leaveGroup pops the innermost frame, reporting unconsumed trailing
// tokens (if any) as a diagnostic rather than silently dropping them.
func (p *Parser) leaveGroup() {
	f := p.top()
	if f.pos < len(f.tokens) {
		extra := f.tokens[f.pos]
		p.diags.Add(diag.Diagnostic{
			Span: extra.Span, Kind: diag.UnexpectedToken,
			Message: "unexpected trailing tokens", Found: p.describeCur(),
		})
	}
	p.frames = p.frames[:len(p.frames)-1]
}

// checkpoint is a speculative-parse savepoint covering both the token
// cursor and the symbol table.
type checkpoint struct {
	frameDepth int
	pos        int
	tableSnap  symtab.Snapshot
}

func (p *Parser) checkpoint() checkpoint {
	return checkpoint{
		frameDepth: len(p.frames),
		pos:        p.top().pos,
		tableSnap:  p.table.Snapshot(),
	}
}

// restore rewinds to a checkpoint taken at the same frame depth. It
// also truncates any frames pushed since (a speculative attempt that
// entered and failed inside a nested group rolls back that entry too).
func (p *Parser) restore(cp checkpoint) {
	p.frames = p.frames[:cp.frameDepth]
	p.top().pos = cp.pos
	p.table.Restore(cp.tableSnap)
}

// synchronizeStatement skips tokens in the current frame up to and
// including the next ";", or to the end of the frame if none is found
// (§4.4.5's declaration/statement synchronization point).
func (p *Parser) synchronizeStatement() {
	for {
		t := p.cur()
		if t == nil {
			return
		}
		if t.Kind == lexer.KindPunctuator && t.Punct == lexer.PunctSemicolon {
			p.advance()
			return
		}
		p.advance()
	}
}

// Diagnostics returns every diagnostic recorded during the parse.
func (p *Parser) Diagnostics() *diag.Bag { return p.diags }

// errorSpanFrom builds a span covering everything consumed since startTok,
// for attaching to an ast.Error placeholder.
func (p *Parser) errorSpanFrom(startTok *lexer.BalancedToken) lexer.Span {
	if startTok == nil {
		return p.here()
	}
	end := p.here()
	return lexer.Span{Start: startTok.Span.Start, End: end.Start, Ctx: startTok.Span.Ctx}
}
