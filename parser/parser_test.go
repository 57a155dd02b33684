package parser

import (
	"testing"

	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/symtab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) *lexer.BalancedTokenSequence {
	t.Helper()
	seq, _, errs := lexer.Lex(src, nil)
	require.Empty(t, errs)
	return seq
}

func TestParse_SimpleVariableDeclaration(t *testing.T) {
	seq := lexAll(t, "int x = 1;")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	require.Len(t, tu.Decls, 1)
	decl := tu.Decls[0].(*ast.Declaration)
	assert.Equal(t, "int", decl.Specs.TypeSpec.String())
	require.Len(t, decl.Decls, 1)
}

func TestParse_FunctionDefinitionWithBody(t *testing.T) {
	seq := lexAll(t, "int add(int a, int b) { return a + b; }")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	require.Len(t, tu.Decls, 1)
	fn, ok := tu.Decls[0].(*ast.FunctionDefinition)
	require.True(t, ok)
	fd := fn.Decl.(*ast.FunctionDeclarator)
	assert.Len(t, fd.Params, 2)
	assert.Len(t, fn.Body.Items, 1)
}

func TestParse_TypedefMakesFollowingNameAType(t *testing.T) {
	seq := lexAll(t, "typedef int myint; myint x;")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	require.Len(t, tu.Decls, 2)
	second := tu.Decls[1].(*ast.Declaration)
	_, isTypedefIdent := second.Specs.TypeSpec.(*ast.TypeNameIdentifier)
	assert.True(t, isTypedefIdent)
}

func TestParse_PointerDeclaratorVersusMultiplicationDisambiguation(t *testing.T) {
	// "a" is an ordinary (non-typedef) name, so "a * b;" parses as a
	// multiplication expression-statement, not a declaration.
	seq := lexAll(t, "void f(void) { int a; int b; a * b; }")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	fn := tu.Decls[0].(*ast.FunctionDefinition)
	last := fn.Body.Items[len(fn.Body.Items)-1]
	exprStmt, ok := last.(*ast.ExpressionStatement)
	require.True(t, ok)
	_, isBinary := exprStmt.Expr.(*ast.BinaryExpr)
	assert.True(t, isBinary)
}

func TestParse_ImplicitIntDeclarationOpenQuestion(t *testing.T) {
	seq := lexAll(t, "void f(void) { Unknown * p; }")
	res := Parse(seq, nil)
	found := res.Diags.FilterByKind(diag.ImplicitInt)
	require.Len(t, found, 1)
	tu := res.Node.(*ast.TranslationUnit)
	fn := tu.Decls[0].(*ast.FunctionDefinition)
	last := fn.Body.Items[len(fn.Body.Items)-1]
	d, ok := last.(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "int", d.Specs.TypeSpec.String())
}

func TestParse_ContextTweakerSeedsTypedefBeforeFirstToken(t *testing.T) {
	seq := lexAll(t, "size_t n;")
	tweaker := func(tab *symtab.Table) { tab.AddTypedefName("size_t") }
	res := Parse(seq, tweaker)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	decl := tu.Decls[0].(*ast.Declaration)
	_, isType := decl.Specs.TypeSpec.(*ast.TypeNameIdentifier)
	assert.True(t, isType)
}

func TestParse_ExpressionPrecedenceNestsCorrectly(t *testing.T) {
	seq := lexAll(t, "void f(void) { int r; r = 1 + 2 * 3; }")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	fn := tu.Decls[0].(*ast.FunctionDefinition)
	last := fn.Body.Items[len(fn.Body.Items)-1].(*ast.ExpressionStatement)
	assign := last.Expr.(*ast.AssignExpr)
	bin := assign.Right.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Op)
	rhs := bin.Right.(*ast.BinaryExpr)
	assert.Equal(t, "*", rhs.Op)
}

func TestParse_StandardAttributeBodyIsUnparsed(t *testing.T) {
	seq := lexAll(t, "[[nodiscard]] int f(void);")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	decl := tu.Decls[0].(*ast.Declaration)
	require.Len(t, decl.Specs.Attributes, 1)
	assert.Equal(t, 1, decl.Specs.Attributes[0].Body.Len())
}

func TestParse_VendorAttributeNormalizesToSameNode(t *testing.T) {
	seq := lexAll(t, "__attribute__((unused)) int f(void);")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	decl := tu.Decls[0].(*ast.Declaration)
	require.Len(t, decl.Specs.Attributes, 1)
}

func TestParse_ErrorRecoveryProducesErrorNodeAndContinues(t *testing.T) {
	seq := lexAll(t, "void f(void) { 1 2; } int y;")
	res := Parse(seq, nil)
	assert.True(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	require.Len(t, tu.Decls, 2)
	_, ok := tu.Decls[1].(*ast.Declaration)
	assert.True(t, ok)
}

func TestParseFragment_ExpressionRule(t *testing.T) {
	seq := lexAll(t, "1 + 2")
	res := ParseFragment(seq, RuleExpression, nil)
	require.False(t, res.Diags.HasErrors())
	_, ok := res.Node.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParseFragment_TypeNameRule(t *testing.T) {
	seq := lexAll(t, "unsigned long")
	res := ParseFragment(seq, RuleTypeName, nil)
	require.False(t, res.Diags.HasErrors())
	typ, ok := res.Node.(*ast.TypeName)
	require.True(t, ok)
	assert.Equal(t, "unsigned long", typ.Specs.TypeSpec.String())
}

func TestParse_EnumConstantsRegisteredDuringSpecifierParse(t *testing.T) {
	seq := lexAll(t, "enum Color { RED, GREEN }; int x = RED;")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	decl := tu.Decls[1].(*ast.Declaration)
	init := decl.Decls[0].Init.(*ast.EnumConstantRef)
	assert.Equal(t, "RED", init.Name)
}

func TestParse_StructMemberNamespaceIsIndependent(t *testing.T) {
	seq := lexAll(t, "struct Point { int x; int y; };")
	res := Parse(seq, nil)
	require.False(t, res.Diags.HasErrors())
	tu := res.Node.(*ast.TranslationUnit)
	decl := tu.Decls[0].(*ast.Declaration)
	su := decl.Specs.TypeSpec.(*ast.StructOrUnionSpecifier)
	assert.Len(t, su.Fields, 2)
}
