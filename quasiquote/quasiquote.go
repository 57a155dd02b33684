// Package quasiquote implements @name template substitution over a
// lexer.BalancedTokenSequence: the optional collaborator that lets a
// caller build source text with holes, lex it once with
// lexer.WithQuasiQuote(true), and splice in already-computed values (or
// whole already-lexed token fragments) before handing the result to the
// parser. It is exercised end to end through parser.ParseFragment.
package quasiquote

import (
	"fmt"
	"math/big"

	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
)

// Value is bound to a @name marker in a call to Interpolate. Each
// implementation knows how to render itself as the token(s) spliced in
// at the marker's position.
type Value interface {
	quasiquoteTokens(at lexer.Span) []lexer.BalancedToken
}

type intValue struct{ v *big.Int }

// Int binds name to a single integer-constant token.
func Int(n int64) Value { return intValue{big.NewInt(n)} }

// BigInt binds name to a single integer-constant token carrying an
// arbitrary-precision value, for the cases Int's int64 can't reach.
func BigInt(v *big.Int) Value { return intValue{new(big.Int).Set(v)} }

func (iv intValue) quasiquoteTokens(at lexer.Span) []lexer.BalancedToken {
	return []lexer.BalancedToken{{
		Kind: lexer.KindIntConstant,
		Span: at,
		Text: iv.v.String(),
		Int:  lexer.IntConstant{Value: new(big.Int).Set(iv.v), Base: 10},
	}}
}

type stringValue struct{ s string }

// String binds name to a single string-literal token whose decoded
// value is s (the raw lexeme is reconstructed with escaping good enough
// for round-tripping through the parser, not for byte-exact printing).
func String(s string) Value { return stringValue{s} }

func (sv stringValue) quasiquoteTokens(at lexer.Span) []lexer.BalancedToken {
	raw := fmt.Sprintf("%q", sv.s)
	return []lexer.BalancedToken{{
		Kind: lexer.KindStringLiteral,
		Span: at,
		Text: raw,
		String: lexer.StringLiteral{
			Value: sv.s,
			Parts: []lexer.StringPart{{Span: at, Raw: raw}},
		},
	}}
}

type identValue struct{ name string }

// Ident binds name to a single identifier token spelled as ident,
// useful for splicing a variable or type name computed by the caller.
func Ident(ident string) Value { return identValue{ident} }

func (iv identValue) quasiquoteTokens(at lexer.Span) []lexer.BalancedToken {
	return []lexer.BalancedToken{{Kind: lexer.KindIdentifier, Span: at, Text: iv.name}}
}

type tokensValue struct{ tokens []lexer.BalancedToken }

// Tokens binds name to the contents of an already-lexed fragment,
// spliced in verbatim — the way the quote! macro's nested quote! calls
// splice a whole sub-expression into an enclosing template.
func Tokens(seq *lexer.BalancedTokenSequence) Value {
	if seq == nil {
		return tokensValue{}
	}
	return tokensValue{tokens: seq.Tokens}
}

func (tv tokensValue) quasiquoteTokens(lexer.Span) []lexer.BalancedToken { return tv.tokens }

// Interpolate walks seq (including every nested bracketed/parenthesized/
// braced group) and replaces each KindTemplate marker whose name is
// present in bindings with that Value's tokens. A marker with no
// binding is left as a diagnostic (Kind: UnboundTemplate) and dropped
// from the output, consistent with the rest of this module never
// aborting on a recoverable problem.
func Interpolate(seq *lexer.BalancedTokenSequence, bindings map[string]Value) (*lexer.BalancedTokenSequence, *diag.Bag) {
	bag := &diag.Bag{}
	out := interpolateSeq(seq, bindings, bag)
	return out, bag
}

func interpolateSeq(seq *lexer.BalancedTokenSequence, bindings map[string]Value, bag *diag.Bag) *lexer.BalancedTokenSequence {
	if seq == nil {
		return nil
	}
	out := make([]lexer.BalancedToken, 0, len(seq.Tokens))
	for _, tok := range seq.Tokens {
		switch tok.Kind {
		case lexer.KindTemplate:
			value, ok := bindings[tok.Text]
			if !ok {
				bag.Addf(tok.Span, diag.UnboundTemplate, "no binding for @%s", tok.Text)
				continue
			}
			out = append(out, value.quasiquoteTokens(tok.Span)...)
		case lexer.KindParenthesized, lexer.KindBracketed, lexer.KindBraced:
			child := tok
			child.Group = interpolateSeq(tok.Group, bindings, bag)
			out = append(out, child)
		default:
			out = append(out, tok)
		}
	}
	return &lexer.BalancedTokenSequence{Tokens: out, Closed: seq.Closed, Eoi: seq.Eoi}
}

// Quote lexes src with quasi-quote markers enabled and interpolates
// bindings into the result in one step, the Go equivalent of the
// original implementation's `quote!` macro.
func Quote(src string, bindings map[string]Value) (*lexer.BalancedTokenSequence, []lexer.LexError, *diag.Bag) {
	seq, _, lexErrs := lexer.Lex(src, nil, lexer.WithQuasiQuote(true))
	out, bag := Interpolate(seq, bindings)
	return out, lexErrs, bag
}
