package ast

import "github.com/ccparse/ccparse/lexer"

// The eight identifier node kinds. All are leaves (no children); each
// Accept dispatches to its own Visitor hook rather than the generic
// VisitNode, per §4.5.

// VariableName is an identifier used as a primary expression referring
// to an object or function (an ordinary-namespace, non-enum-constant
// use).
type VariableName struct {
	BaseNode
	Name string
}

func NewVariableName(span lexer.Span, name string) *VariableName {
	return &VariableName{BaseNode: BaseNode{Kind: KindVariableName, Span: span}, Name: name}
}
func (n *VariableName) String() string       { return n.Name }
func (n *VariableName) expressionNode()      {}
func (n *VariableName) Accept(v Visitor) bool { return v.VisitVariableName(n) }

// TypeNameIdentifier is an identifier used where the parser has
// resolved it (via the symbol table) to a typedef name.
type TypeNameIdentifier struct {
	BaseNode
	Name string
}

func NewTypeNameIdentifier(span lexer.Span, name string) *TypeNameIdentifier {
	return &TypeNameIdentifier{BaseNode: BaseNode{Kind: KindTypeNameIdentifier, Span: span}, Name: name}
}
func (n *TypeNameIdentifier) String() string        { return n.Name }
func (n *TypeNameIdentifier) typeSpecifierNode()     {}
func (n *TypeNameIdentifier) Accept(v Visitor) bool  { return v.VisitTypeNameIdentifier(n) }

// EnumConstantRef is an identifier used as a primary expression that
// the symbol table resolved to an enum constant rather than a variable.
type EnumConstantRef struct {
	BaseNode
	Name string
}

func NewEnumConstantRef(span lexer.Span, name string) *EnumConstantRef {
	return &EnumConstantRef{BaseNode: BaseNode{Kind: KindEnumConstantName, Span: span}, Name: name}
}
func (n *EnumConstantRef) String() string       { return n.Name }
func (n *EnumConstantRef) expressionNode()      {}
func (n *EnumConstantRef) Accept(v Visitor) bool { return v.VisitEnumConstant(n) }

// LabelNameRef is an identifier used as the target of a goto
// statement.
type LabelNameRef struct {
	BaseNode
	Name string
}

func NewLabelNameRef(span lexer.Span, name string) *LabelNameRef {
	return &LabelNameRef{BaseNode: BaseNode{Kind: KindLabelName, Span: span}, Name: name}
}
func (n *LabelNameRef) String() string       { return n.Name }
func (n *LabelNameRef) Accept(v Visitor) bool { return v.VisitLabelName(n) }

// MemberNameRef is the right-hand identifier of a "." or "->"
// expression: a struct/union member name, looked up in its own
// per-type namespace rather than the ordinary-identifier namespace.
type MemberNameRef struct {
	BaseNode
	Name string
}

func NewMemberNameRef(span lexer.Span, name string) *MemberNameRef {
	return &MemberNameRef{BaseNode: BaseNode{Kind: KindMemberName, Span: span}, Name: name}
}
func (n *MemberNameRef) String() string       { return n.Name }
func (n *MemberNameRef) Accept(v Visitor) bool { return v.VisitMemberName(n) }

// StructNameRef is a struct/union tag name, which lives in the tag
// namespace distinct from ordinary identifiers and from enum tags.
type StructNameRef struct {
	BaseNode
	Name string
}

func NewStructNameRef(span lexer.Span, name string) *StructNameRef {
	return &StructNameRef{BaseNode: BaseNode{Kind: KindStructName, Span: span}, Name: name}
}
func (n *StructNameRef) String() string       { return n.Name }
func (n *StructNameRef) Accept(v Visitor) bool { return v.VisitStructName(n) }

// EnumNameRef is an enum tag name (tag namespace).
type EnumNameRef struct {
	BaseNode
	Name string
}

func NewEnumNameRef(span lexer.Span, name string) *EnumNameRef {
	return &EnumNameRef{BaseNode: BaseNode{Kind: KindEnumName, Span: span}, Name: name}
}
func (n *EnumNameRef) String() string       { return n.Name }
func (n *EnumNameRef) Accept(v Visitor) bool { return v.VisitEnumName(n) }

// EnumeratorName is the declaration site of one enumerator inside an
// enum-specifier body, as distinct from EnumConstantRef (a use site in
// an expression).
type EnumeratorName struct {
	BaseNode
	Name string
}

func NewEnumeratorName(span lexer.Span, name string) *EnumeratorName {
	return &EnumeratorName{BaseNode: BaseNode{Kind: KindEnumeratorName, Span: span}, Name: name}
}
func (n *EnumeratorName) String() string       { return n.Name }
func (n *EnumeratorName) Accept(v Visitor) bool { return v.VisitEnumeratorName(n) }
