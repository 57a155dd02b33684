package diag

import (
	"testing"

	"github.com/ccparse/ccparse/lexer"
	"github.com/ccparse/ccparse/sourcemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBag_AddAndFilter(t *testing.T) {
	var b Bag
	b.Addf(lexer.Span{Start: 0, End: 1}, UnexpectedToken, "expected %s", ";")
	b.Add(Diagnostic{Kind: ImplicitInt, Message: "implicit int"})

	require.Equal(t, 2, b.Len())
	assert.True(t, b.HasErrors())
	assert.Len(t, b.FilterByKind(ImplicitInt), 1)
}

func TestBag_RenderResolvesLineAndColumn(t *testing.T) {
	src := "int a\nbad ^ here\n"
	sm := sourcemap.New("t.c")

	var b Bag
	caret := 10 // points at '^' on line 2
	b.Add(Diagnostic{Span: lexer.Span{Start: caret, End: caret + 1, Ctx: 0}, Kind: UnexpectedToken, Message: "stray character"})

	out := b.Render(sm, src)
	assert.Contains(t, out, "t.c:2:")
	assert.Contains(t, out, "stray character")
}
