package lexer

import (
	"fmt"
	"math/big"

	"github.com/ccparse/ccparse/sourcemap"
)

// Span is a byte range in the input buffer plus the source context it
// was scanned under. Spans are value-equal and cheap to copy.
type Span struct {
	Start int
	End   int
	Ctx   sourcemap.ContextId
}

// Contains reports whether s wholly contains other.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span covering both s and other. Ctx is
// taken from s; callers only union spans sharing a context.
func (s Span) Union(other Span) Span {
	u := s
	if other.Start < u.Start {
		u.Start = other.Start
	}
	if other.End > u.End {
		u.End = other.End
	}
	return u
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

// Kind tags a BalancedToken's variant.
type Kind int

const (
	KindIdentifier Kind = iota
	KindIntConstant
	KindFloatConstant
	KindCharConstant
	KindPredefinedConstant // true | false | nullptr
	KindStringLiteral
	KindQuotedString // backtick-delimited, verbatim, codegen extension
	KindTemplate     // @name, quasi-quote marker
	KindPunctuator
	KindParenthesized
	KindBracketed
	KindBraced
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindIntConstant:
		return "integer-constant"
	case KindFloatConstant:
		return "floating-constant"
	case KindCharConstant:
		return "character-constant"
	case KindPredefinedConstant:
		return "predefined-constant"
	case KindStringLiteral:
		return "string-literal"
	case KindQuotedString:
		return "quoted-string"
	case KindTemplate:
		return "template"
	case KindPunctuator:
		return "punctuator"
	case KindParenthesized:
		return "(...)"
	case KindBracketed:
		return "[...]"
	case KindBraced:
		return "{...}"
	default:
		return "unknown"
	}
}

// EncodingPrefix is the optional prefix on a character or string literal.
type EncodingPrefix int

const (
	EncodingNone EncodingPrefix = iota
	EncodingU8
	EncodingU
	EncodingCapitalU
	EncodingL
)

func (e EncodingPrefix) String() string {
	switch e {
	case EncodingU8:
		return "u8"
	case EncodingU:
		return "u"
	case EncodingCapitalU:
		return "U"
	case EncodingL:
		return "L"
	default:
		return ""
	}
}

// IntSuffix records the combination of integer-constant suffixes
// accepted in any order per C23: u/U, l/L, ll/LL, wb/WB (_BitInt).
type IntSuffix struct {
	Unsigned   bool
	Long       bool
	LongLong   bool
	BitPrecise bool // wb/WB, denotes a _BitInt(N)-width literal
}

// IntConstant is the payload of an integer-constant token. Value
// saturates into [-2^127, 2^127-1] on overflow, mirroring the
// original implementation's saturating behavior (see SPEC_FULL.md §6).
type IntConstant struct {
	Value     *big.Int
	Saturated bool
	Base      int // 8, 10, 16, or 2 (C23 0b/0B prefix)
	Suffix    IntSuffix
}

var (
	maxInt128 = func() *big.Int {
		v := new(big.Int).Lsh(big.NewInt(1), 127)
		return v.Sub(v, big.NewInt(1))
	}()
	minInt128 = new(big.Int).Neg(func() *big.Int {
		v := new(big.Int).Lsh(big.NewInt(1), 127)
		return v
	}())
)

// saturate clamps v into [minInt128, maxInt128], reporting whether
// clamping changed the value.
func saturate(v *big.Int) (*big.Int, bool) {
	if v.Cmp(maxInt128) > 0 {
		return new(big.Int).Set(maxInt128), true
	}
	if v.Cmp(minInt128) < 0 {
		return new(big.Int).Set(minInt128), true
	}
	return v, false
}

// FloatKind distinguishes the C23 floating-point suffix families.
type FloatKind int

const (
	FloatDouble FloatKind = iota
	FloatFloat            // f/F
	FloatLongDouble       // l/L
	FloatDecimal32        // df/DF
	FloatDecimal64        // dd/DD
	FloatDecimal128       // dl/DL
)

// FloatConstant is the payload of a floating-constant token. NaN from
// hex-float parsing is not representable: parsing saturates to the
// matching signed infinity instead (SPEC_FULL.md §6).
type FloatConstant struct {
	Value        float64
	Kind         FloatKind
	IsHex        bool
	WasNaN       bool // true if source asked for a NaN we can't represent
}

// CharConstant is the payload of a character-constant token.
type CharConstant struct {
	Encoding EncodingPrefix
	Values   []rune // usually len 1; multicharacter constants keep all of them
}

// StringPart is one physical string literal token prior to adjacent
// concatenation.
type StringPart struct {
	Span     Span
	Encoding EncodingPrefix
	Raw      string // lexeme including quotes
}

// StringLiteral is the payload of a (possibly concatenated) string
// literal. Per C semantics, adjacent string literals separated only by
// whitespace are concatenated into a single token.
type StringLiteral struct {
	Value    string // decoded, concatenated contents (no quotes)
	Encoding EncodingPrefix
	Parts    []StringPart
}

// Punctuator is the canonical spelling of a punctuator token, resolved
// by maximal munch.
type Punctuator string

const (
	PunctLBracket    Punctuator = "["
	PunctRBracket    Punctuator = "]"
	PunctLParen      Punctuator = "("
	PunctRParen      Punctuator = ")"
	PunctLBrace      Punctuator = "{"
	PunctRBrace      Punctuator = "}"
	PunctDot         Punctuator = "."
	PunctEllipsis    Punctuator = "..."
	PunctArrow       Punctuator = "->"
	PunctIncr        Punctuator = "++"
	PunctDecr        Punctuator = "--"
	PunctAmp         Punctuator = "&"
	PunctAndAnd      Punctuator = "&&"
	PunctAndEq       Punctuator = "&="
	PunctStar        Punctuator = "*"
	PunctStarEq      Punctuator = "*="
	PunctPlus        Punctuator = "+"
	PunctPlusEq      Punctuator = "+="
	PunctMinus       Punctuator = "-"
	PunctMinusEq     Punctuator = "-="
	PunctTilde       Punctuator = "~"
	PunctBang        Punctuator = "!"
	PunctNotEq       Punctuator = "!="
	PunctSlash       Punctuator = "/"
	PunctSlashEq     Punctuator = "/="
	PunctPercent     Punctuator = "%"
	PunctPercentEq   Punctuator = "%="
	PunctShl         Punctuator = "<<"
	PunctShlEq       Punctuator = "<<="
	PunctShr         Punctuator = ">>"
	PunctShrEq       Punctuator = ">>="
	PunctLt          Punctuator = "<"
	PunctGt          Punctuator = ">"
	PunctLe          Punctuator = "<="
	PunctGe          Punctuator = ">="
	PunctEqEq        Punctuator = "=="
	PunctOrOr        Punctuator = "||"
	PunctPipe        Punctuator = "|"
	PunctPipeEq      Punctuator = "|="
	PunctCaret       Punctuator = "^"
	PunctCaretEq     Punctuator = "^="
	PunctQuestion    Punctuator = "?"
	PunctColon       Punctuator = ":"
	PunctSemicolon   Punctuator = ";"
	PunctEq          Punctuator = "="
	PunctComma       Punctuator = ","
	PunctHash        Punctuator = "#"
	PunctHashHash    Punctuator = "##"
	PunctDigraphLB   Punctuator = "<:"
	PunctDigraphRB   Punctuator = ":>"
	PunctDigraphLBr  Punctuator = "<%"
	PunctDigraphRBr  Punctuator = "%>"
	PunctDigraphHash Punctuator = "%:"
	PunctDigraphHH   Punctuator = "%:%:"
)

// Note: "[[" / "]]" (C23 attribute delimiters) are not distinct
// punctuators here. "[[attr]]" lexes as an ordinary Bracketed group
// whose sole child token is itself a Bracketed group — the parser
// recognizes that shape as an attribute-specifier (§4.4.4).

// maximalMunchPunctuators lists candidate spellings longest-first so a
// scan can try them in order and take the first match.
var maximalMunchPunctuators = []Punctuator{
	"%:%:", "<<=", ">>=", "...",
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"*=", "/=", "%=", "+=", "-=", "&=", "^=", "|=", "##", "<:", ":>", "<%", "%>", "%:",
	"[", "]", "(", ")", "{", "}", ".", "&", "*", "+", "-", "~", "!",
	"/", "%", "<", ">", "^", "|", "?", ":", ";", "=", ",", "#",
}

// BalancedToken is the tagged variant emitted by the lexer. Exactly
// one payload field is meaningful, selected by Kind.
type BalancedToken struct {
	Kind Kind
	Span Span

	Text string // identifier / template name / unknown lexeme / raw quoted-string contents

	Int    IntConstant
	Float  FloatConstant
	Char   CharConstant
	String StringLiteral
	Punct  Punctuator

	Group *BalancedTokenSequence // set when Kind is Parenthesized/Bracketed/Braced
}

// BalancedTokenSequence is an ordered run of balanced tokens produced
// either at the top level or inside one bracket nesting.
type BalancedTokenSequence struct {
	Tokens []BalancedToken
	Closed bool // false if the matching closer was missing (recovery, not an error)
	Eoi    Span // end-of-input span; strictly after the last token's span end
}

// Len reports the number of tokens at this nesting level.
func (s *BalancedTokenSequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Tokens)
}
