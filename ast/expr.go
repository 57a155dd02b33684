package ast

import (
	"fmt"

	"github.com/ccparse/ccparse/lexer"
)

// IntLiteral, FloatLiteral, CharLiteral, StringLiteralExpr wrap the
// lexer's constant payloads as expression leaves.

type IntLiteral struct {
	BaseNode
	Value lexer.IntConstant
}

func NewIntLiteral(span lexer.Span, v lexer.IntConstant) *IntLiteral {
	return &IntLiteral{BaseNode: BaseNode{Kind: KindIntLiteral, Span: span}, Value: v}
}
func (n *IntLiteral) String() string        { return n.Value.Value.String() }
func (n *IntLiteral) expressionNode()       {}
func (n *IntLiteral) Accept(v Visitor) bool { return v.VisitNode(n) }

type FloatLiteral struct {
	BaseNode
	Value lexer.FloatConstant
}

func NewFloatLiteral(span lexer.Span, v lexer.FloatConstant) *FloatLiteral {
	return &FloatLiteral{BaseNode: BaseNode{Kind: KindFloatLiteral, Span: span}, Value: v}
}
func (n *FloatLiteral) String() string        { return fmt.Sprintf("%v", n.Value.Value) }
func (n *FloatLiteral) expressionNode()       {}
func (n *FloatLiteral) Accept(v Visitor) bool { return v.VisitNode(n) }

type CharLiteral struct {
	BaseNode
	Value lexer.CharConstant
}

func NewCharLiteral(span lexer.Span, v lexer.CharConstant) *CharLiteral {
	return &CharLiteral{BaseNode: BaseNode{Kind: KindCharLiteral, Span: span}, Value: v}
}
func (n *CharLiteral) String() string        { return fmt.Sprintf("%q", string(n.Value.Values)) }
func (n *CharLiteral) expressionNode()       {}
func (n *CharLiteral) Accept(v Visitor) bool { return v.VisitNode(n) }

type StringLiteralExpr struct {
	BaseNode
	Value lexer.StringLiteral
}

func NewStringLiteralExpr(span lexer.Span, v lexer.StringLiteral) *StringLiteralExpr {
	return &StringLiteralExpr{BaseNode: BaseNode{Kind: KindStringLiteral, Span: span}, Value: v}
}
func (n *StringLiteralExpr) String() string        { return fmt.Sprintf("%q", n.Value.Value) }
func (n *StringLiteralExpr) expressionNode()       {}
func (n *StringLiteralExpr) Accept(v Visitor) bool { return v.VisitNode(n) }

// ParenExpr is a parenthesized expression, kept as its own node (not
// collapsed) so the span and any attached attributes survive.
type ParenExpr struct {
	BaseNode
	Inner Expression
}

func NewParenExpr(span lexer.Span, inner Expression) *ParenExpr {
	return &ParenExpr{BaseNode: BaseNode{Kind: KindParenExpr, Span: span}, Inner: inner}
}
func (n *ParenExpr) String() string      { return fmt.Sprintf("(%s)", n.Inner) }
func (n *ParenExpr) GetChildren() []Node { return []Node{n.Inner} }
func (n *ParenExpr) expressionNode()     {}
func (n *ParenExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Inner.Accept(v)
	}
	return cont
}

// UnaryOp is the operator spelling of a UnaryExpr / PreIncDec node.
type UnaryOp string

const (
	UnaryAddr    UnaryOp = "&"
	UnaryDeref   UnaryOp = "*"
	UnaryPlus    UnaryOp = "+"
	UnaryMinus   UnaryOp = "-"
	UnaryBitNot  UnaryOp = "~"
	UnaryLogNot  UnaryOp = "!"
)

type UnaryExpr struct {
	BaseNode
	Op      UnaryOp
	Operand Expression
}

func NewUnaryExpr(span lexer.Span, op UnaryOp, operand Expression) *UnaryExpr {
	return &UnaryExpr{BaseNode: BaseNode{Kind: KindUnaryExpr, Span: span}, Op: op, Operand: operand}
}
func (n *UnaryExpr) String() string      { return fmt.Sprintf("%s%s", n.Op, n.Operand) }
func (n *UnaryExpr) GetChildren() []Node { return []Node{n.Operand} }
func (n *UnaryExpr) expressionNode()     {}
func (n *UnaryExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Operand.Accept(v)
	}
	return cont
}

// PreIncDec / PostIncDec are kept distinct from UnaryExpr since ++/--
// bind differently (and the teacher's own PostfixExpression keeps
// them separate from unary ops).
type PreIncDec struct {
	BaseNode
	Op      string // "++" or "--"
	Operand Expression
}

func NewPreIncDec(span lexer.Span, op string, operand Expression) *PreIncDec {
	return &PreIncDec{BaseNode: BaseNode{Kind: KindPreIncDec, Span: span}, Op: op, Operand: operand}
}
func (n *PreIncDec) String() string      { return fmt.Sprintf("%s%s", n.Op, n.Operand) }
func (n *PreIncDec) GetChildren() []Node { return []Node{n.Operand} }
func (n *PreIncDec) expressionNode()     {}
func (n *PreIncDec) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Operand.Accept(v)
	}
	return cont
}

type PostIncDec struct {
	BaseNode
	Op      string
	Operand Expression
}

func NewPostIncDec(span lexer.Span, op string, operand Expression) *PostIncDec {
	return &PostIncDec{BaseNode: BaseNode{Kind: KindPostIncDec, Span: span}, Op: op, Operand: operand}
}
func (n *PostIncDec) String() string      { return fmt.Sprintf("%s%s", n.Operand, n.Op) }
func (n *PostIncDec) GetChildren() []Node { return []Node{n.Operand} }
func (n *PostIncDec) expressionNode()     {}
func (n *PostIncDec) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Operand.Accept(v)
	}
	return cont
}

type BinaryExpr struct {
	BaseNode
	Op    string
	Left  Expression
	Right Expression
}

func NewBinaryExpr(span lexer.Span, op string, left, right Expression) *BinaryExpr {
	return &BinaryExpr{BaseNode: BaseNode{Kind: KindBinaryExpr, Span: span}, Op: op, Left: left, Right: right}
}
func (n *BinaryExpr) String() string      { return fmt.Sprintf("(%s %s %s)", n.Left, n.Op, n.Right) }
func (n *BinaryExpr) GetChildren() []Node { return []Node{n.Left, n.Right} }
func (n *BinaryExpr) expressionNode()     {}
func (n *BinaryExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Left.Accept(v)
		n.Right.Accept(v)
	}
	return cont
}

type AssignExpr struct {
	BaseNode
	Op    string // "=", "+=", "*=", ...
	Left  Expression
	Right Expression
}

func NewAssignExpr(span lexer.Span, op string, left, right Expression) *AssignExpr {
	return &AssignExpr{BaseNode: BaseNode{Kind: KindAssignExpr, Span: span}, Op: op, Left: left, Right: right}
}
func (n *AssignExpr) String() string      { return fmt.Sprintf("%s %s %s", n.Left, n.Op, n.Right) }
func (n *AssignExpr) GetChildren() []Node { return []Node{n.Left, n.Right} }
func (n *AssignExpr) expressionNode()     {}
func (n *AssignExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Left.Accept(v)
		n.Right.Accept(v)
	}
	return cont
}

type ConditionalExpr struct {
	BaseNode
	Cond Expression
	Then Expression
	Else Expression
}

func NewConditionalExpr(span lexer.Span, cond, then, els Expression) *ConditionalExpr {
	return &ConditionalExpr{BaseNode: BaseNode{Kind: KindConditionalExpr, Span: span}, Cond: cond, Then: then, Else: els}
}
func (n *ConditionalExpr) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", n.Cond, n.Then, n.Else)
}
func (n *ConditionalExpr) GetChildren() []Node { return []Node{n.Cond, n.Then, n.Else} }
func (n *ConditionalExpr) expressionNode()     {}
func (n *ConditionalExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Cond.Accept(v)
		n.Then.Accept(v)
		n.Else.Accept(v)
	}
	return cont
}

type CommaExpr struct {
	BaseNode
	Exprs []Expression
}

func NewCommaExpr(span lexer.Span, exprs []Expression) *CommaExpr {
	return &CommaExpr{BaseNode: BaseNode{Kind: KindCommaExpr, Span: span}, Exprs: exprs}
}
func (n *CommaExpr) String() string { return fmt.Sprintf("comma(%d)", len(n.Exprs)) }
func (n *CommaExpr) GetChildren() []Node {
	out := make([]Node, len(n.Exprs))
	for i, e := range n.Exprs {
		out[i] = e
	}
	return out
}
func (n *CommaExpr) expressionNode() {}
func (n *CommaExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, e := range n.Exprs {
			e.Accept(v)
		}
	}
	return cont
}

// CastExpr applies a parenthesized type-name to an operand.
type CastExpr struct {
	BaseNode
	Type    *TypeName
	Operand Expression
}

func NewCastExpr(span lexer.Span, typ *TypeName, operand Expression) *CastExpr {
	return &CastExpr{BaseNode: BaseNode{Kind: KindCastExpr, Span: span}, Type: typ, Operand: operand}
}
func (n *CastExpr) String() string      { return fmt.Sprintf("(%s)%s", n.Type, n.Operand) }
func (n *CastExpr) GetChildren() []Node { return []Node{n.Type, n.Operand} }
func (n *CastExpr) expressionNode()     {}
func (n *CastExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Type.Accept(v)
		n.Operand.Accept(v)
	}
	return cont
}

// CompoundLiteral is "(T){ initializer-list }".
type CompoundLiteral struct {
	BaseNode
	Type *TypeName
	Init *InitializerList
}

func NewCompoundLiteral(span lexer.Span, typ *TypeName, init *InitializerList) *CompoundLiteral {
	return &CompoundLiteral{BaseNode: BaseNode{Kind: KindCompoundLiteral, Span: span}, Type: typ, Init: init}
}
func (n *CompoundLiteral) String() string      { return fmt.Sprintf("(%s){%s}", n.Type, n.Init) }
func (n *CompoundLiteral) GetChildren() []Node { return []Node{n.Type, n.Init} }
func (n *CompoundLiteral) expressionNode()     {}
func (n *CompoundLiteral) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Type.Accept(v)
		n.Init.Accept(v)
	}
	return cont
}

// SizeofExpr / SizeofType / AlignofType: sizeof applies to either an
// unparenthesized expression or a parenthesized type-name; _Alignof
// always takes a parenthesized type-name.
type SizeofExpr struct {
	BaseNode
	Operand Expression
}

func NewSizeofExpr(span lexer.Span, operand Expression) *SizeofExpr {
	return &SizeofExpr{BaseNode: BaseNode{Kind: KindSizeofExpr, Span: span}, Operand: operand}
}
func (n *SizeofExpr) String() string      { return fmt.Sprintf("sizeof %s", n.Operand) }
func (n *SizeofExpr) GetChildren() []Node { return []Node{n.Operand} }
func (n *SizeofExpr) expressionNode()     {}
func (n *SizeofExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Operand.Accept(v)
	}
	return cont
}

type SizeofType struct {
	BaseNode
	Type *TypeName
}

func NewSizeofType(span lexer.Span, typ *TypeName) *SizeofType {
	return &SizeofType{BaseNode: BaseNode{Kind: KindSizeofType, Span: span}, Type: typ}
}
func (n *SizeofType) String() string      { return fmt.Sprintf("sizeof(%s)", n.Type) }
func (n *SizeofType) GetChildren() []Node { return []Node{n.Type} }
func (n *SizeofType) expressionNode()     {}
func (n *SizeofType) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Type.Accept(v)
	}
	return cont
}

type AlignofType struct {
	BaseNode
	Type *TypeName
}

func NewAlignofType(span lexer.Span, typ *TypeName) *AlignofType {
	return &AlignofType{BaseNode: BaseNode{Kind: KindAlignofType, Span: span}, Type: typ}
}
func (n *AlignofType) String() string      { return fmt.Sprintf("_Alignof(%s)", n.Type) }
func (n *AlignofType) GetChildren() []Node { return []Node{n.Type} }
func (n *AlignofType) expressionNode()     {}
func (n *AlignofType) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Type.Accept(v)
	}
	return cont
}

type CallExpr struct {
	BaseNode
	Callee Expression
	Args   []Expression
}

func NewCallExpr(span lexer.Span, callee Expression, args []Expression) *CallExpr {
	return &CallExpr{BaseNode: BaseNode{Kind: KindCallExpr, Span: span}, Callee: callee, Args: args}
}
func (n *CallExpr) String() string { return fmt.Sprintf("%s(%d args)", n.Callee, len(n.Args)) }
func (n *CallExpr) GetChildren() []Node {
	out := []Node{n.Callee}
	for _, a := range n.Args {
		out = append(out, a)
	}
	return out
}
func (n *CallExpr) expressionNode() {}
func (n *CallExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Callee.Accept(v)
		for _, a := range n.Args {
			a.Accept(v)
		}
	}
	return cont
}

type SubscriptExpr struct {
	BaseNode
	Array Expression
	Index Expression
}

func NewSubscriptExpr(span lexer.Span, array, index Expression) *SubscriptExpr {
	return &SubscriptExpr{BaseNode: BaseNode{Kind: KindSubscriptExpr, Span: span}, Array: array, Index: index}
}
func (n *SubscriptExpr) String() string      { return fmt.Sprintf("%s[%s]", n.Array, n.Index) }
func (n *SubscriptExpr) GetChildren() []Node { return []Node{n.Array, n.Index} }
func (n *SubscriptExpr) expressionNode()     {}
func (n *SubscriptExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Array.Accept(v)
		n.Index.Accept(v)
	}
	return cont
}

// MemberExpr is "a.b"; ArrowExpr is "a->b". Member names are visited
// through VisitMemberName, not VisitVariableName.
type MemberExpr struct {
	BaseNode
	Object Expression
	Member *MemberNameRef
}

func NewMemberExpr(span lexer.Span, object Expression, member *MemberNameRef) *MemberExpr {
	return &MemberExpr{BaseNode: BaseNode{Kind: KindMemberExpr, Span: span}, Object: object, Member: member}
}
func (n *MemberExpr) String() string      { return fmt.Sprintf("%s.%s", n.Object, n.Member) }
func (n *MemberExpr) GetChildren() []Node { return []Node{n.Object, n.Member} }
func (n *MemberExpr) expressionNode()     {}
func (n *MemberExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Object.Accept(v)
		n.Member.Accept(v)
	}
	return cont
}

type ArrowExpr struct {
	BaseNode
	Object Expression
	Member *MemberNameRef
}

func NewArrowExpr(span lexer.Span, object Expression, member *MemberNameRef) *ArrowExpr {
	return &ArrowExpr{BaseNode: BaseNode{Kind: KindArrowExpr, Span: span}, Object: object, Member: member}
}
func (n *ArrowExpr) String() string      { return fmt.Sprintf("%s->%s", n.Object, n.Member) }
func (n *ArrowExpr) GetChildren() []Node { return []Node{n.Object, n.Member} }
func (n *ArrowExpr) expressionNode()     {}
func (n *ArrowExpr) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Object.Accept(v)
		n.Member.Accept(v)
	}
	return cont
}

// GenericAssoc is one "type-name: expr" or "default: expr" arm of a
// _Generic selection.
type GenericAssoc struct {
	Type    *TypeName // nil for the "default" arm
	Result  Expression
}

// GenericSelection is a C11/C23 "_Generic(expr, ...)" expression.
type GenericSelection struct {
	BaseNode
	Controlling Expression
	Assocs      []GenericAssoc
}

func NewGenericSelection(span lexer.Span, ctrl Expression, assocs []GenericAssoc) *GenericSelection {
	return &GenericSelection{BaseNode: BaseNode{Kind: KindGenericSelection, Span: span}, Controlling: ctrl, Assocs: assocs}
}
func (n *GenericSelection) String() string { return fmt.Sprintf("_Generic(%s, ...)", n.Controlling) }
func (n *GenericSelection) GetChildren() []Node {
	out := []Node{n.Controlling}
	for _, a := range n.Assocs {
		if a.Type != nil {
			out = append(out, a.Type)
		}
		out = append(out, a.Result)
	}
	return out
}
func (n *GenericSelection) expressionNode() {}
func (n *GenericSelection) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Controlling.Accept(v)
		for _, a := range n.Assocs {
			if a.Type != nil {
				a.Type.Accept(v)
			}
			a.Result.Accept(v)
		}
	}
	return cont
}
