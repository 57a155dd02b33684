package lexer

import (
	"strings"

	"github.com/ccparse/ccparse/sourcemap"
)

// ErrorKind classifies a LexError. Structural bracket mismatches are
// not lex errors (see BalancedTokenSequence.Closed); these are the
// kinds the scanner itself can detect.
type ErrorKind int

const (
	ErrUnterminatedLiteral ErrorKind = iota
	ErrInvalidEscape
	ErrStrayCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedLiteral:
		return "unterminated literal"
	case ErrInvalidEscape:
		return "invalid escape"
	case ErrStrayCharacter:
		return "stray character"
	default:
		return "lex error"
	}
}

// LexError is a non-fatal diagnostic produced while scanning. The
// lexer always still produces a token (possibly Unknown) alongside it.
type LexError struct {
	Span    Span
	Kind    ErrorKind
	Message string
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithQuasiQuote enables recognition of @name template markers
// (Kind: KindTemplate), used by the optional quasi-quote collaborator.
func WithQuasiQuote(enabled bool) Option {
	return func(l *Lexer) { l.quasiQuote = enabled }
}

// Lexer is a single-pass, hand-written, longest-match tokenizer with
// bracket matching built in: it emits a balanced token tree, not a
// flat stream.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte

	line        int // physical line, 1-based
	column      int // 1-based
	atLineStart bool

	sm  *sourcemap.Map
	ctx sourcemap.ContextId

	quasiQuote bool
	errors     []LexError
}

// New creates a Lexer over source, optionally named filename (used for
// the initial source-map context and in #line-less diagnostics).
func New(source string, filename *string, opts ...Option) *Lexer {
	name := ""
	if filename != nil {
		name = *filename
	}
	l := &Lexer{
		input:       source,
		line:        1,
		column:      0,
		atLineStart: true,
		sm:          sourcemap.New(name),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Lex is the library's top-level lexing operation: lex(source,
// filename) -> (tokens, source_map, errors).
func Lex(source string, filename *string, opts ...Option) (*BalancedTokenSequence, *sourcemap.Map, []LexError) {
	l := New(source, filename, opts...)
	seq := l.lexSequence(0)
	return seq, l.sm, l.errors
}

// SourceMap exposes the map being populated; useful when driving the
// lexer incrementally rather than through Lex.
func (l *Lexer) SourceMap() *sourcemap.Map { return l.sm }

func (l *Lexer) readChar() {
	l.position = l.readPosition
	l.readPosition++

	if l.position >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.position]

	if l.position == 0 {
		l.line = 1
		l.column = 1
		l.atLineStart = true
		return
	}
	prev := l.input[l.position-1]
	if prev == '\n' {
		l.line++
		l.column = 1
		l.atLineStart = true
	} else {
		l.column++
		if prev != ' ' && prev != '\t' && prev != '\r' {
			l.atLineStart = false
		}
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) peekCharAt(ahead int) byte {
	idx := l.readPosition - 1 + ahead
	if idx < 0 || idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func (l *Lexer) span(start int) Span {
	return Span{Start: start, End: l.position, Ctx: l.ctx}
}

func (l *Lexer) here() Span {
	return Span{Start: l.position, End: l.position, Ctx: l.ctx}
}

func (l *Lexer) addError(kind ErrorKind, sp Span, msg string) {
	l.errors = append(l.errors, LexError{Span: sp, Kind: kind, Message: msg})
}

// closerFor returns the closing byte for an opening bracket byte.
func closerFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	return 0
}

func groupKindFor(open byte) Kind {
	switch open {
	case '(':
		return KindParenthesized
	case '[':
		return KindBracketed
	case '{':
		return KindBraced
	}
	return KindUnknown
}

func isCloser(b byte) bool {
	return b == ')' || b == ']' || b == '}'
}

func isOpener(b byte) bool {
	return b == '(' || b == '[' || b == '{'
}

// lexSequence scans tokens until EOF or, when expectedCloser != 0,
// until that closing bracket is found. It implements the classification
// order from §4.2 at each position.
func (l *Lexer) lexSequence(expectedCloser byte) *BalancedTokenSequence {
	seq := &BalancedTokenSequence{}

	for {
		l.skipTrivia()

		if l.ch == 0 {
			seq.Closed = expectedCloser == 0
			seq.Eoi = l.here()
			return seq
		}

		if expectedCloser != 0 && l.ch == expectedCloser {
			l.readChar()
			seq.Closed = true
			seq.Eoi = l.here()
			return seq
		}

		if isCloser(l.ch) {
			if expectedCloser == 0 {
				// Nothing to close at the top level: the stray closer
				// is skipped over as an ordinary punctuator token.
				seq.Tokens = append(seq.Tokens, l.lexPunctuatorOrUnknown())
				continue
			}
			// Wrong-kind closer: stop here, unclosed, without
			// consuming it so the enclosing frame can examine it.
			seq.Closed = false
			seq.Eoi = l.here()
			return seq
		}

		if isOpener(l.ch) {
			seq.Tokens = append(seq.Tokens, l.lexGroup())
			continue
		}

		seq.Tokens = append(seq.Tokens, l.lexOne())
	}
}

func (l *Lexer) lexGroup() BalancedToken {
	start := l.position
	open := l.ch
	l.readChar()
	inner := l.lexSequence(closerFor(open))
	return BalancedToken{
		Kind:  groupKindFor(open),
		Span:  l.span(start),
		Group: inner,
	}
}

// skipTrivia consumes whitespace, comments, and preprocessor
// directives, updating line tracking and the source map. It never
// produces tokens or errors.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == '\v' || l.ch == '\f':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for {
				if l.ch == 0 {
					return
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
		case l.ch == '#' && l.atLineStart:
			l.skipDirective()
		default:
			return
		}
	}
}

// skipDirective handles a beginning-of-line '#': #pragma is skipped to
// end of line; #line N "file" rebases the source map; any other
// directive is skipped to end of line without effect.
func (l *Lexer) skipDirective() {
	lineStart := l.line
	l.readChar() // consume '#'
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}

	word := l.peekWord()
	switch word {
	case "line":
		l.consumeWord(len(word))
		l.handleLineDirective(lineStart + 1)
		return
	case "pragma":
		l.skipToEndOfLine()
		return
	default:
		// GNU allows `# 1 "file"` (no "line" keyword) from real
		// preprocessors; recognize a bare digit the same way.
		if len(word) > 0 && word[0] >= '0' && word[0] <= '9' {
			l.handleLineDirective(lineStart + 1)
			return
		}
		l.skipToEndOfLine()
	}
}

func (l *Lexer) peekWord() string {
	var b strings.Builder
	for i := 0; ; i++ {
		c := l.peekCharAt(i)
		if !isIdentContinue(rune(c)) {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (l *Lexer) consumeWord(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

func (l *Lexer) skipToEndOfLine() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// handleLineDirective parses the remainder of a `#line N "file"` (or
// GNU `# N "file"`) directive and interns a new source-map context.
func (l *Lexer) handleLineDirective(physicalLine int) {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	var numBuf strings.Builder
	for l.ch >= '0' && l.ch <= '9' {
		numBuf.WriteByte(l.ch)
		l.readChar()
	}
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	var filename *string
	if l.ch == '"' {
		start := l.position + 1
		l.readChar()
		for l.ch != '"' && l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		name := l.input[start:l.position]
		filename = &name
		if l.ch == '"' {
			l.readChar()
		}
	}
	l.skipToEndOfLine()

	n := parseDecimalInt(numBuf.String())
	lineOffset := physicalLine - n
	l.ctx = l.sm.InternContext(filename, lineOffset)
}

func parseDecimalInt(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// lexOne recognizes a single non-bracket, non-trivia token according
// to the classification order in §4.2.
func (l *Lexer) lexOne() BalancedToken {
	switch {
	case l.quasiQuote && l.ch == '@' && isIdentStart(rune(l.peekChar())):
		return l.lexTemplate()
	case isDigit(rune(l.ch)) || (l.ch == '.' && isDigit(rune(l.peekChar()))):
		return l.lexNumber()
	case l.ch == '\'':
		return l.lexChar(EncodingNone)
	case l.ch == '"':
		return l.lexString(EncodingNone)
	case l.ch == '`':
		return l.lexQuotedString()
	case isIdentStart(rune(l.ch)):
		return l.lexIdentOrPrefixedLiteral()
	default:
		return l.lexPunctuatorOrUnknown()
	}
}

func (l *Lexer) lexTemplate() BalancedToken {
	start := l.position
	l.readChar() // '@'
	nameStart := l.position
	for isIdentContinue(rune(l.ch)) {
		l.readChar()
	}
	return BalancedToken{
		Kind: KindTemplate,
		Span: l.span(start),
		Text: l.input[nameStart:l.position],
	}
}

func (l *Lexer) lexQuotedString() BalancedToken {
	start := l.position
	l.readChar() // opening `
	contentStart := l.position
	for l.ch != '`' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	content := l.input[contentStart:l.position]
	if l.ch == '`' {
		l.readChar()
	} else {
		l.addError(ErrUnterminatedLiteral, l.span(start), "unterminated quoted string")
	}
	return BalancedToken{Kind: KindQuotedString, Span: l.span(start), Text: content}
}

func (l *Lexer) lexPunctuatorOrUnknown() BalancedToken {
	start := l.position
	for _, p := range maximalMunchPunctuators {
		if l.matchLiteral(string(p)) {
			for range p {
				l.readChar()
			}
			return BalancedToken{Kind: KindPunctuator, Span: l.span(start), Punct: p}
		}
	}
	ch := l.ch
	l.readChar()
	l.addError(ErrStrayCharacter, l.span(start), "stray character in program")
	return BalancedToken{Kind: KindUnknown, Span: l.span(start), Text: string(rune(ch))}
}

func (l *Lexer) matchLiteral(s string) bool {
	if len(s) == 0 {
		return false
	}
	if l.ch != s[0] {
		return false
	}
	for i := 1; i < len(s); i++ {
		if l.peekCharAt(i) != s[i] {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool      { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool   { return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') }
func isIdentStart(r rune) bool { return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 127 }
func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
