package ast

import (
	"testing"

	"github.com/ccparse/ccparse/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp(start, end int) lexer.Span { return lexer.Span{Start: start, End: end} }

func TestTranslationUnit_AcceptVisitsDeclsInOrder(t *testing.T) {
	a := NewVariableName(sp(0, 1), "a")
	b := NewVariableName(sp(2, 3), "b")
	decl1 := NewExpressionStatementAsDecl(t, a)
	decl2 := NewExpressionStatementAsDecl(t, b)
	tu := NewTranslationUnit(sp(0, 3), []ExternalDeclaration{decl1, decl2})

	var seen []string
	v := &recordingVisitor{onVariable: func(n *VariableName) bool {
		seen = append(seen, n.Name)
		return true
	}}
	tu.Accept(v)

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestVisitor_LocalPruneDoesNotStopSiblings(t *testing.T) {
	a := NewVariableName(sp(0, 1), "a")
	b := NewVariableName(sp(2, 3), "b")
	decl1 := NewExpressionStatementAsDecl(t, a)
	decl2 := NewExpressionStatementAsDecl(t, b)
	tu := NewTranslationUnit(sp(0, 3), []ExternalDeclaration{decl1, decl2})

	var seen []string
	v := &recordingVisitor{
		onNode: func(n Node) bool {
			// Prune descent into the first declaration only.
			if d, ok := n.(*Declaration); ok && d == decl1 {
				return false
			}
			return true
		},
		onVariable: func(n *VariableName) bool {
			seen = append(seen, n.Name)
			return true
		},
	}
	tu.Accept(v)

	// decl1's child (a) must NOT appear, but decl2's child (b) must.
	assert.Equal(t, []string{"b"}, seen)
}

func TestErrorNode_SatisfiesEveryMarkerInterface(t *testing.T) {
	e := NewError(sp(0, 1), "unexpected token")
	var _ ExternalDeclaration = e
	var _ Statement = e
	var _ Expression = e
	var _ Declarator = e
	var _ TypeSpecifier = e
	require.Equal(t, "<error: unexpected token>", e.String())
}

func TestIdentifierHooks_DispatchToSpecificMethod(t *testing.T) {
	label := NewLabelNameRef(sp(0, 1), "done")
	var got string
	v := &recordingVisitor{onLabel: func(n *LabelNameRef) bool {
		got = n.Name
		return true
	}}
	label.Accept(v)
	assert.Equal(t, "done", got)
}

// recordingVisitor is a minimal Visitor for assertions in these tests.
type recordingVisitor struct {
	BaseVisitor
	onNode     func(Node) bool
	onVariable func(*VariableName) bool
	onLabel    func(*LabelNameRef) bool
}

func (r *recordingVisitor) VisitNode(n Node) bool {
	if r.onNode != nil {
		return r.onNode(n)
	}
	return true
}

func (r *recordingVisitor) VisitVariableName(n *VariableName) bool {
	if r.onVariable != nil {
		return r.onVariable(n)
	}
	return true
}

func (r *recordingVisitor) VisitLabelName(n *LabelNameRef) bool {
	if r.onLabel != nil {
		return r.onLabel(n)
	}
	return true
}

// NewExpressionStatementAsDecl wraps a VariableName in a Declaration so
// tests can exercise TranslationUnit traversal without constructing a
// full DeclarationSpecifiers tree.
func NewExpressionStatementAsDecl(t *testing.T, name *VariableName) *Declaration {
	t.Helper()
	specs := &DeclarationSpecifiers{TypeSpec: NewBasicType(sp(0, 0), []string{"int"})}
	decl := NewPlainDeclarator(name.Span, name)
	init := NewInitDeclarator(name.Span, decl, nil)
	return NewDeclaration(name.Span, specs, []*InitDeclarator{init})
}
