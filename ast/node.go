// Package ast defines the C23 syntax tree produced by the parser: a
// family of tagged node types, each carrying a byte-offset Span, an
// Error variant at every level for parse recovery, and a Visitor with
// eight semantically distinct identifier hooks for the pretty-printer
// (external) to key off of.
package ast

import (
	"fmt"

	"github.com/ccparse/ccparse/lexer"
)

// Node is the interface every AST node implements.
type Node interface {
	GetKind() Kind
	GetSpan() lexer.Span
	GetChildren() []Node
	String() string
	Accept(v Visitor) bool
}

// ExternalDeclaration is a top-level translation-unit element:
// FunctionDefinition, Declaration, or Error.
type ExternalDeclaration interface {
	Node
	externalDeclarationNode()
}

// Statement is a statement-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is an expression-level node.
type Expression interface {
	Node
	expressionNode()
}

// Declarator is a declarator-chain node (pointer/array/function/plain).
type Declarator interface {
	Node
	declaratorNode()
}

// TypeSpecifier is a type-specifier node.
type TypeSpecifier interface {
	Node
	typeSpecifierNode()
}

// BaseNode carries the fields common to every concrete node.
type BaseNode struct {
	Kind Kind
	Span lexer.Span
}

func (b *BaseNode) GetKind() Kind         { return b.Kind }
func (b *BaseNode) GetSpan() lexer.Span   { return b.Span }
func (b *BaseNode) GetChildren() []Node   { return nil }
func (b *BaseNode) String() string        { return b.Kind.String() }

// Error is the reserved parse-recovery placeholder present at every
// level of the grammar (§3, §7): it carries the span of the tokens it
// replaced and an optional human-readable reason.
type Error struct {
	BaseNode
	Reason string
}

func NewError(span lexer.Span, reason string) *Error {
	return &Error{BaseNode: BaseNode{Kind: KindError, Span: span}, Reason: reason}
}

func (e *Error) String() string { return fmt.Sprintf("<error: %s>", e.Reason) }
func (e *Error) Accept(v Visitor) bool { return v.VisitNode(e) }

func (e *Error) externalDeclarationNode() {}
func (e *Error) statementNode()           {}
func (e *Error) expressionNode()          {}
func (e *Error) declaratorNode()          {}
func (e *Error) typeSpecifierNode()       {}

// TranslationUnit is the root node: an ordered sequence of external
// declarations.
type TranslationUnit struct {
	BaseNode
	Decls []ExternalDeclaration
}

func NewTranslationUnit(span lexer.Span, decls []ExternalDeclaration) *TranslationUnit {
	return &TranslationUnit{BaseNode: BaseNode{Kind: KindTranslationUnit, Span: span}, Decls: decls}
}

func (t *TranslationUnit) GetChildren() []Node {
	out := make([]Node, len(t.Decls))
	for i, d := range t.Decls {
		out[i] = d
	}
	return out
}

func (t *TranslationUnit) String() string { return fmt.Sprintf("translation-unit(%d decls)", len(t.Decls)) }

func (t *TranslationUnit) Accept(v Visitor) bool {
	cont := v.VisitNode(t)
	if cont {
		for _, d := range t.Decls {
			d.Accept(v)
		}
	}
	return cont
}
