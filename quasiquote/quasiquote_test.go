package quasiquote

import (
	"math/big"
	"testing"

	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate_ReplacesTopLevelMarker(t *testing.T) {
	seq, _, lexErrs := lexer.Lex("int x = @v;", nil, lexer.WithQuasiQuote(true))
	require.Empty(t, lexErrs)

	out, bag := Interpolate(seq, map[string]Value{"v": Int(1)})
	require.False(t, bag.HasErrors())

	res := parser.ParseFragment(out, parser.RuleDeclaration, nil)
	require.False(t, res.Diags.HasErrors())
	decl := res.Node.(*ast.Declaration)
	require.Len(t, decl.Decls, 1)
	lit, ok := decl.Decls[0].Init.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(1), lit.Value.Value.Int64())
}

func TestInterpolate_ReplacesMarkerInsideNestedGroup(t *testing.T) {
	seq, _, lexErrs := lexer.Lex("int f(void) { return (@n); }", nil, lexer.WithQuasiQuote(true))
	require.Empty(t, lexErrs)

	out, bag := Interpolate(seq, map[string]Value{"n": Int(7)})
	require.False(t, bag.HasErrors())

	res := parser.Parse(out, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	fn := tu.Decls[0].(*ast.FunctionDefinition)
	ret := fn.Body.Items[0].(*ast.ReturnStatement)
	paren, ok := ret.Value.(*ast.ParenExpr)
	require.True(t, ok)
	lit, ok := paren.Inner.(*ast.IntLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(7), lit.Value.Value.Int64())
}

func TestInterpolate_SplicesTokensValueVerbatim(t *testing.T) {
	frag, _, lexErrs := lexer.Lex("1 + 2", nil)
	require.Empty(t, lexErrs)

	seq, _, lexErrs := lexer.Lex("int x = @expr;", nil, lexer.WithQuasiQuote(true))
	require.Empty(t, lexErrs)

	out, bag := Interpolate(seq, map[string]Value{"expr": Tokens(frag)})
	require.False(t, bag.HasErrors())

	res := parser.ParseFragment(out, parser.RuleDeclaration, nil)
	require.False(t, res.Diags.HasErrors())
	decl := res.Node.(*ast.Declaration)
	_, ok := decl.Decls[0].Init.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestInterpolate_UnboundMarkerRecordsDiagnosticAndDrops(t *testing.T) {
	seq, _, lexErrs := lexer.Lex("int x = @missing;", nil, lexer.WithQuasiQuote(true))
	require.Empty(t, lexErrs)

	out, bag := Interpolate(seq, map[string]Value{})
	require.Len(t, bag.All(), 1)
	assert.Equal(t, 4, len(out.Tokens)) // "int" "x" "=" ";" — the marker is dropped
}

func TestQuote_LexesAndInterpolatesInOneStep(t *testing.T) {
	out, lexErrs, bag := Quote("char *s = @name;", map[string]Value{"name": String("hello")})
	require.Empty(t, lexErrs)
	require.False(t, bag.HasErrors())

	res := parser.ParseFragment(out, parser.RuleDeclaration, nil)
	require.False(t, res.Diags.HasErrors())
	decl := res.Node.(*ast.Declaration)
	str, ok := decl.Decls[0].Init.(*ast.StringLiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "hello", str.Value.Value)
}

func TestBigInt_PreservesArbitraryPrecisionValue(t *testing.T) {
	huge := new(big.Int)
	huge.SetString("123456789012345678901234567890", 10)
	out, bag := Interpolate(mustLex(t, "long long x = @big;"), map[string]Value{"big": BigInt(huge)})
	require.False(t, bag.HasErrors())

	res := parser.ParseFragment(out, parser.RuleDeclaration, nil)
	require.False(t, res.Diags.HasErrors())
	decl := res.Node.(*ast.Declaration)
	lit := decl.Decls[0].Init.(*ast.IntLiteral)
	assert.Equal(t, huge.String(), lit.Value.Value.String())
}

func mustLex(t *testing.T, src string) *lexer.BalancedTokenSequence {
	t.Helper()
	seq, _, errs := lexer.Lex(src, nil, lexer.WithQuasiQuote(true))
	require.Empty(t, errs)
	return seq
}
