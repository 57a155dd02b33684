package lexer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) *BalancedTokenSequence {
	t.Helper()
	seq, _, errs := Lex(src, nil)
	require.Empty(t, errs, "unexpected lex errors for %q", src)
	return seq
}

func TestLexer_BasicPunctuatorsAndIdentifiers(t *testing.T) {
	seq := lexAll(t, "int x = 1;")

	tests := []struct {
		kind Kind
		text string
	}{
		{KindIdentifier, "int"},
		{KindIdentifier, "x"},
		{KindPunctuator, "="},
		{KindIntConstant, "1"},
		{KindPunctuator, ";"},
	}

	require.Len(t, seq.Tokens, len(tests))
	for i, tt := range tests {
		tok := seq.Tokens[i]
		assert.Equal(t, tt.kind, tok.Kind, "token[%d]", i)
		switch tt.kind {
		case KindIdentifier:
			assert.Equal(t, tt.text, tok.Text, "token[%d]", i)
		case KindPunctuator:
			assert.Equal(t, Punctuator(tt.text), tok.Punct, "token[%d]", i)
		}
	}
	assert.True(t, seq.Closed)
}

func TestLexer_MaximalMunchOperators(t *testing.T) {
	seq := lexAll(t, "a <<= b >>= c ... d -> e ++ f -- g")
	var got []Punctuator
	for _, tok := range seq.Tokens {
		if tok.Kind == KindPunctuator {
			got = append(got, tok.Punct)
		}
	}
	assert.Equal(t, []Punctuator{
		PunctShlEq, PunctShrEq, PunctEllipsis, PunctArrow, PunctIncr, PunctDecr,
	}, got)
}

func TestLexer_BalancedBrackets(t *testing.T) {
	seq := lexAll(t, "f(a, b[1], {c});")
	require.Len(t, seq.Tokens, 3) // f, the "(...)" group, then ";"
	group := seq.Tokens[1]
	require.Equal(t, KindParenthesized, group.Kind)
	require.True(t, group.Group.Closed)

	// a , b [1] , { c }
	inner := group.Group.Tokens
	require.Len(t, inner, 6)
	assert.Equal(t, KindBracketed, inner[3].Kind)
	assert.True(t, inner[3].Group.Closed)
	assert.Equal(t, KindBraced, inner[5].Kind)
}

func TestLexer_UnclosedBracketRecoversWithoutFatalError(t *testing.T) {
	seq, _, errs := Lex("f(a, b", nil)
	assert.Empty(t, errs)
	require.Len(t, seq.Tokens, 2) // f, then the unclosed "(...)" group
	group := seq.Tokens[1]
	require.Equal(t, KindParenthesized, group.Kind)
	assert.False(t, group.Group.Closed)
	require.Len(t, group.Group.Tokens, 3) // a , b
}

func TestLexer_MismatchedCloserStopsInnerFrame(t *testing.T) {
	// "(a]" - the ']' doesn't close '(' so the inner sequence reports
	// unclosed without consuming the ']'; the enclosing level then
	// sees the stray ']' and skips it as an ordinary punctuator.
	seq := lexAll(t, "(a]")
	require.Len(t, seq.Tokens, 2)
	group := seq.Tokens[0]
	require.Equal(t, KindParenthesized, group.Kind)
	assert.False(t, group.Group.Closed)
	require.Len(t, group.Group.Tokens, 1)
	assert.Equal(t, PunctRBracket, seq.Tokens[1].Punct)
}

func TestLexer_AttributeBracketsNestAsOrdinaryGroups(t *testing.T) {
	seq := lexAll(t, "[[nodiscard]] int f(void);")
	require.NotEmpty(t, seq.Tokens)
	outer := seq.Tokens[0]
	require.Equal(t, KindBracketed, outer.Kind)
	require.Len(t, outer.Group.Tokens, 1)
	inner := outer.Group.Tokens[0]
	assert.Equal(t, KindBracketed, inner.Kind)
}

func TestLexer_IntegerConstants(t *testing.T) {
	cases := []struct {
		src  string
		base int
		want string
	}{
		{"42", 10, "42"},
		{"042", 8, "34"},
		{"0x2A", 16, "42"},
		{"0b101010", 2, "42"},
		{"0o52", 8, "42"},
		{"1'000'000", 10, "1000000"},
	}
	for _, c := range cases {
		seq := lexAll(t, c.src)
		require.Len(t, seq.Tokens, 1, c.src)
		tok := seq.Tokens[0]
		require.Equal(t, KindIntConstant, tok.Kind, c.src)
		assert.Equal(t, c.base, tok.Int.Base, c.src)
		want, ok := new(big.Int).SetString(c.want, 10)
		require.True(t, ok)
		assert.Equal(t, 0, tok.Int.Value.Cmp(want), "src=%s got=%s want=%s", c.src, tok.Int.Value, want)
	}
}

func TestLexer_IntegerSuffixGrid(t *testing.T) {
	cases := []struct {
		src  string
		want IntSuffix
	}{
		{"1u", IntSuffix{Unsigned: true}},
		{"1U", IntSuffix{Unsigned: true}},
		{"1l", IntSuffix{Long: true}},
		{"1LL", IntSuffix{LongLong: true}},
		{"1ull", IntSuffix{Unsigned: true, LongLong: true}},
		{"1LLU", IntSuffix{Unsigned: true, LongLong: true}},
		{"1wb", IntSuffix{BitPrecise: true}},
		{"1uwb", IntSuffix{Unsigned: true, BitPrecise: true}},
	}
	for _, c := range cases {
		seq := lexAll(t, c.src)
		require.Len(t, seq.Tokens, 1, c.src)
		assert.Equal(t, c.want, seq.Tokens[0].Int.Suffix, c.src)
	}
}

func TestLexer_IntegerOverflowSaturates(t *testing.T) {
	seq := lexAll(t, "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF")
	require.Len(t, seq.Tokens, 1)
	tok := seq.Tokens[0]
	assert.True(t, tok.Int.Saturated)
	assert.Equal(t, 0, tok.Int.Value.Cmp(maxInt128))
}

func TestLexer_FloatingConstants(t *testing.T) {
	seq := lexAll(t, "1.5 2. .25 1e10 1.5e-3f 0x1.8p3 3.14dd")
	require.Len(t, seq.Tokens, 7)
	for i, tok := range seq.Tokens {
		assert.Equal(t, KindFloatConstant, tok.Kind, "token[%d]", i)
	}
	assert.InDelta(t, 1.5, seq.Tokens[0].Float.Value, 1e-9)
	assert.InDelta(t, 2.0, seq.Tokens[1].Float.Value, 1e-9)
	assert.InDelta(t, 0.25, seq.Tokens[2].Float.Value, 1e-9)
	assert.InDelta(t, 1e10, seq.Tokens[3].Float.Value, 1)
	assert.Equal(t, FloatFloat, seq.Tokens[4].Float.Kind)
	assert.InDelta(t, 12.0, seq.Tokens[5].Float.Value, 1e-9) // 0x1.8p3 == 1.5 * 8
	assert.True(t, seq.Tokens[5].Float.IsHex)
	assert.Equal(t, FloatDecimal64, seq.Tokens[6].Float.Kind)
}

func TestLexer_StringLiteralConcatenation(t *testing.T) {
	seq := lexAll(t, `"foo" "bar" u8"baz"`)
	require.Len(t, seq.Tokens, 1)
	tok := seq.Tokens[0]
	require.Equal(t, KindStringLiteral, tok.Kind)
	assert.Equal(t, "foobarbaz", tok.String.Value)
	assert.Equal(t, EncodingNone, tok.String.Encoding)
	require.Len(t, tok.String.Parts, 3)
}

func TestLexer_EncodingPrefixedLiterals(t *testing.T) {
	seq := lexAll(t, `u8"x" u"y" U"z" L"w" L'c'`)
	require.Len(t, seq.Tokens, 5)
	assert.Equal(t, EncodingU8, seq.Tokens[0].String.Encoding)
	assert.Equal(t, EncodingU, seq.Tokens[1].String.Encoding)
	assert.Equal(t, EncodingCapitalU, seq.Tokens[2].String.Encoding)
	assert.Equal(t, EncodingL, seq.Tokens[3].String.Encoding)
	assert.Equal(t, KindCharConstant, seq.Tokens[4].Kind)
	assert.Equal(t, EncodingL, seq.Tokens[4].Char.Encoding)
}

func TestLexer_IdentifierNotConfusedWithPrefix(t *testing.T) {
	seq := lexAll(t, "u8identifier uVar U_THING")
	require.Len(t, seq.Tokens, 3)
	for i, tok := range seq.Tokens {
		assert.Equal(t, KindIdentifier, tok.Kind, "token[%d]", i)
	}
}

func TestLexer_CharacterEscapes(t *testing.T) {
	seq := lexAll(t, `'\n' '\x41' '\101' 'A'`)
	require.Len(t, seq.Tokens, 4)
	assert.Equal(t, []rune{'\n'}, seq.Tokens[0].Char.Values)
	assert.Equal(t, []rune{'A'}, seq.Tokens[1].Char.Values)
	assert.Equal(t, []rune{'A'}, seq.Tokens[2].Char.Values)
	assert.Equal(t, []rune{'A'}, seq.Tokens[3].Char.Values)
}

func TestLexer_UnterminatedCharLiteralRecovers(t *testing.T) {
	seq, _, errs := Lex("'a\nb", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrUnterminatedLiteral, errs[0].Kind)
	require.Len(t, seq.Tokens, 2) // the broken char literal, then identifier b
	assert.Equal(t, KindCharConstant, seq.Tokens[0].Kind)
	assert.Equal(t, KindIdentifier, seq.Tokens[1].Kind)
}

func TestLexer_PredefinedConstants(t *testing.T) {
	seq := lexAll(t, "true false nullptr truex")
	require.Len(t, seq.Tokens, 4)
	assert.Equal(t, KindPredefinedConstant, seq.Tokens[0].Kind)
	assert.Equal(t, KindPredefinedConstant, seq.Tokens[1].Kind)
	assert.Equal(t, KindPredefinedConstant, seq.Tokens[2].Kind)
	assert.Equal(t, KindIdentifier, seq.Tokens[3].Kind, "truex must not be split into true + x")
}

func TestLexer_LineDirectiveRebasesSourceMap(t *testing.T) {
	src := "int a;\n#line 100 \"other.c\"\nint b;\n"
	seq, sm, errs := Lex(src, nil)
	require.Empty(t, errs)
	require.Len(t, seq.Tokens, 6)
	bTok := seq.Tokens[4]
	loc := sm.Resolve(bTok.Span.Ctx, 3, 1)
	assert.Equal(t, "other.c", loc.File)
	assert.Equal(t, 100, loc.Line)
}

func TestLexer_LineCommentsAndBlockComments(t *testing.T) {
	seq := lexAll(t, "a // comment\nb /* block\ncomment */ c")
	require.Len(t, seq.Tokens, 3)
	for _, tok := range seq.Tokens {
		assert.Equal(t, KindIdentifier, tok.Kind)
	}
}

func TestLexer_QuasiQuoteTemplateMarker(t *testing.T) {
	seq, _, errs := Lex("@name + 1", nil, WithQuasiQuote(true))
	require.Empty(t, errs)
	require.Len(t, seq.Tokens, 3)
	assert.Equal(t, KindTemplate, seq.Tokens[0].Kind)
	assert.Equal(t, "name", seq.Tokens[0].Text)
}

func TestLexer_StrayCharacterIsNonFatal(t *testing.T) {
	seq, _, errs := Lex("a $ b", nil)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrStrayCharacter, errs[0].Kind)
	require.Len(t, seq.Tokens, 3)
	assert.Equal(t, KindUnknown, seq.Tokens[1].Kind)
}
