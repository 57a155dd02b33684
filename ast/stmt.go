package ast

import (
	"fmt"

	"github.com/ccparse/ccparse/lexer"
)

// BlockItem is a single element of a compound statement's body: either
// a Statement or a Declaration (the grammar's declaration-or-statement
// alternative), modeled here as a plain Node since Declaration already
// implements both statementNode and externalDeclarationNode.
type BlockItem = Node

type CompoundStatement struct {
	BaseNode
	Items []BlockItem
}

func NewCompoundStatement(span lexer.Span, items []BlockItem) *CompoundStatement {
	return &CompoundStatement{BaseNode: BaseNode{Kind: KindCompoundStatement, Span: span}, Items: items}
}
func (n *CompoundStatement) String() string { return fmt.Sprintf("{%d items}", len(n.Items)) }
func (n *CompoundStatement) GetChildren() []Node {
	out := make([]Node, len(n.Items))
	copy(out, n.Items)
	return out
}
func (n *CompoundStatement) statementNode() {}
func (n *CompoundStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, it := range n.Items {
			it.Accept(v)
		}
	}
	return cont
}

type ExpressionStatement struct {
	BaseNode
	Expr Expression // nil for a bare ";" with no preceding expression
}

func NewExpressionStatement(span lexer.Span, expr Expression) *ExpressionStatement {
	return &ExpressionStatement{BaseNode: BaseNode{Kind: KindExpressionStatement, Span: span}, Expr: expr}
}
func (n *ExpressionStatement) String() string {
	if n.Expr == nil {
		return ";"
	}
	return fmt.Sprintf("%s;", n.Expr)
}
func (n *ExpressionStatement) GetChildren() []Node {
	if n.Expr == nil {
		return nil
	}
	return []Node{n.Expr}
}
func (n *ExpressionStatement) statementNode() {}
func (n *ExpressionStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont && n.Expr != nil {
		n.Expr.Accept(v)
	}
	return cont
}

type IfStatement struct {
	BaseNode
	Cond Expression
	Then Statement
	Else Statement // nil if no else-clause
}

func NewIfStatement(span lexer.Span, cond Expression, then, els Statement) *IfStatement {
	return &IfStatement{BaseNode: BaseNode{Kind: KindIfStatement, Span: span}, Cond: cond, Then: then, Else: els}
}
func (n *IfStatement) String() string {
	if n.Else == nil {
		return fmt.Sprintf("if (%s) %s", n.Cond, n.Then)
	}
	return fmt.Sprintf("if (%s) %s else %s", n.Cond, n.Then, n.Else)
}
func (n *IfStatement) GetChildren() []Node {
	out := []Node{n.Cond, n.Then}
	if n.Else != nil {
		out = append(out, n.Else)
	}
	return out
}
func (n *IfStatement) statementNode() {}
func (n *IfStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Cond.Accept(v)
		n.Then.Accept(v)
		if n.Else != nil {
			n.Else.Accept(v)
		}
	}
	return cont
}

type SwitchStatement struct {
	BaseNode
	Tag  Expression
	Body Statement
}

func NewSwitchStatement(span lexer.Span, tag Expression, body Statement) *SwitchStatement {
	return &SwitchStatement{BaseNode: BaseNode{Kind: KindSwitchStatement, Span: span}, Tag: tag, Body: body}
}
func (n *SwitchStatement) String() string      { return fmt.Sprintf("switch (%s) %s", n.Tag, n.Body) }
func (n *SwitchStatement) GetChildren() []Node { return []Node{n.Tag, n.Body} }
func (n *SwitchStatement) statementNode()      {}
func (n *SwitchStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Tag.Accept(v)
		n.Body.Accept(v)
	}
	return cont
}

// CaseStatement is "case expr: stmt"; DefaultStatement is "default: stmt".
type CaseStatement struct {
	BaseNode
	Value Expression
	Body  Statement
}

func NewCaseStatement(span lexer.Span, value Expression, body Statement) *CaseStatement {
	return &CaseStatement{BaseNode: BaseNode{Kind: KindCaseStatement, Span: span}, Value: value, Body: body}
}
func (n *CaseStatement) String() string      { return fmt.Sprintf("case %s: %s", n.Value, n.Body) }
func (n *CaseStatement) GetChildren() []Node { return []Node{n.Value, n.Body} }
func (n *CaseStatement) statementNode()      {}
func (n *CaseStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Value.Accept(v)
		n.Body.Accept(v)
	}
	return cont
}

type DefaultStatement struct {
	BaseNode
	Body Statement
}

func NewDefaultStatement(span lexer.Span, body Statement) *DefaultStatement {
	return &DefaultStatement{BaseNode: BaseNode{Kind: KindDefaultStatement, Span: span}, Body: body}
}
func (n *DefaultStatement) String() string      { return fmt.Sprintf("default: %s", n.Body) }
func (n *DefaultStatement) GetChildren() []Node { return []Node{n.Body} }
func (n *DefaultStatement) statementNode()      {}
func (n *DefaultStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Body.Accept(v)
	}
	return cont
}

type WhileStatement struct {
	BaseNode
	Cond Expression
	Body Statement
}

func NewWhileStatement(span lexer.Span, cond Expression, body Statement) *WhileStatement {
	return &WhileStatement{BaseNode: BaseNode{Kind: KindWhileStatement, Span: span}, Cond: cond, Body: body}
}
func (n *WhileStatement) String() string      { return fmt.Sprintf("while (%s) %s", n.Cond, n.Body) }
func (n *WhileStatement) GetChildren() []Node { return []Node{n.Cond, n.Body} }
func (n *WhileStatement) statementNode()      {}
func (n *WhileStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Cond.Accept(v)
		n.Body.Accept(v)
	}
	return cont
}

type DoWhileStatement struct {
	BaseNode
	Body Statement
	Cond Expression
}

func NewDoWhileStatement(span lexer.Span, body Statement, cond Expression) *DoWhileStatement {
	return &DoWhileStatement{BaseNode: BaseNode{Kind: KindDoWhileStatement, Span: span}, Body: body, Cond: cond}
}
func (n *DoWhileStatement) String() string      { return fmt.Sprintf("do %s while (%s);", n.Body, n.Cond) }
func (n *DoWhileStatement) GetChildren() []Node { return []Node{n.Body, n.Cond} }
func (n *DoWhileStatement) statementNode()      {}
func (n *DoWhileStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Body.Accept(v)
		n.Cond.Accept(v)
	}
	return cont
}

// ForStatement's Init is a Node because C99/C23 permit a declaration
// there as well as an expression-statement.
type ForStatement struct {
	BaseNode
	Init Node // *Declaration, *ExpressionStatement, or nil
	Cond Expression
	Post Expression
	Body Statement
}

func NewForStatement(span lexer.Span, init Node, cond, post Expression, body Statement) *ForStatement {
	return &ForStatement{BaseNode: BaseNode{Kind: KindForStatement, Span: span}, Init: init, Cond: cond, Post: post, Body: body}
}
func (n *ForStatement) String() string { return fmt.Sprintf("for (...) %s", n.Body) }
func (n *ForStatement) GetChildren() []Node {
	var out []Node
	if n.Init != nil {
		out = append(out, n.Init)
	}
	if n.Cond != nil {
		out = append(out, n.Cond)
	}
	if n.Post != nil {
		out = append(out, n.Post)
	}
	out = append(out, n.Body)
	return out
}
func (n *ForStatement) statementNode() {}
func (n *ForStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		if n.Init != nil {
			n.Init.Accept(v)
		}
		if n.Cond != nil {
			n.Cond.Accept(v)
		}
		if n.Post != nil {
			n.Post.Accept(v)
		}
		n.Body.Accept(v)
	}
	return cont
}

type GotoStatement struct {
	BaseNode
	Label *LabelNameRef
}

func NewGotoStatement(span lexer.Span, label *LabelNameRef) *GotoStatement {
	return &GotoStatement{BaseNode: BaseNode{Kind: KindGotoStatement, Span: span}, Label: label}
}
func (n *GotoStatement) String() string      { return fmt.Sprintf("goto %s;", n.Label) }
func (n *GotoStatement) GetChildren() []Node { return []Node{n.Label} }
func (n *GotoStatement) statementNode()      {}
func (n *GotoStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Label.Accept(v)
	}
	return cont
}

type ContinueStatement struct{ BaseNode }

func NewContinueStatement(span lexer.Span) *ContinueStatement {
	return &ContinueStatement{BaseNode{Kind: KindContinueStatement, Span: span}}
}
func (n *ContinueStatement) String() string        { return "continue;" }
func (n *ContinueStatement) statementNode()        {}
func (n *ContinueStatement) Accept(v Visitor) bool { return v.VisitNode(n) }

type BreakStatement struct{ BaseNode }

func NewBreakStatement(span lexer.Span) *BreakStatement {
	return &BreakStatement{BaseNode{Kind: KindBreakStatement, Span: span}}
}
func (n *BreakStatement) String() string        { return "break;" }
func (n *BreakStatement) statementNode()        {}
func (n *BreakStatement) Accept(v Visitor) bool { return v.VisitNode(n) }

type ReturnStatement struct {
	BaseNode
	Value Expression // nil for a bare "return;"
}

func NewReturnStatement(span lexer.Span, value Expression) *ReturnStatement {
	return &ReturnStatement{BaseNode: BaseNode{Kind: KindReturnStatement, Span: span}, Value: value}
}
func (n *ReturnStatement) String() string {
	if n.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", n.Value)
}
func (n *ReturnStatement) GetChildren() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}
func (n *ReturnStatement) statementNode() {}
func (n *ReturnStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont && n.Value != nil {
		n.Value.Accept(v)
	}
	return cont
}

type LabeledStatement struct {
	BaseNode
	Label *LabelNameRef
	Body  Statement
}

func NewLabeledStatement(span lexer.Span, label *LabelNameRef, body Statement) *LabeledStatement {
	return &LabeledStatement{BaseNode: BaseNode{Kind: KindLabeledStatement, Span: span}, Label: label, Body: body}
}
func (n *LabeledStatement) String() string      { return fmt.Sprintf("%s: %s", n.Label, n.Body) }
func (n *LabeledStatement) GetChildren() []Node { return []Node{n.Label, n.Body} }
func (n *LabeledStatement) statementNode()      {}
func (n *LabeledStatement) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Label.Accept(v)
		n.Body.Accept(v)
	}
	return cont
}

type NullStatement struct{ BaseNode }

func NewNullStatement(span lexer.Span) *NullStatement {
	return &NullStatement{BaseNode{Kind: KindNullStatement, Span: span}}
}
func (n *NullStatement) String() string        { return ";" }
func (n *NullStatement) statementNode()        {}
func (n *NullStatement) Accept(v Visitor) bool { return v.VisitNode(n) }
