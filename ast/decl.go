package ast

import (
	"fmt"
	"strings"

	"github.com/ccparse/ccparse/lexer"
)

// DeclarationSpecifiers collects the storage-class, type, and
// qualifier keywords preceding a declarator, plus any type-specifier
// nodes among them (at most one per C rules, enforced by the parser
// rather than this struct).
type DeclarationSpecifiers struct {
	StorageClass []string // typedef, extern, static, _Thread_local, auto, register, constexpr
	TypeQuals    []string // const, restrict, volatile, _Atomic
	FunctionSpec []string // inline, _Noreturn
	TypeSpec     TypeSpecifier
	Attributes   []*AttributeSpecifier
}

func (d *DeclarationSpecifiers) String() string {
	var parts []string
	parts = append(parts, d.StorageClass...)
	parts = append(parts, d.TypeQuals...)
	parts = append(parts, d.FunctionSpec...)
	if d.TypeSpec != nil {
		parts = append(parts, d.TypeSpec.String())
	}
	return strings.Join(parts, " ")
}

func (d *DeclarationSpecifiers) children() []Node {
	var out []Node
	if d.TypeSpec != nil {
		out = append(out, d.TypeSpec)
	}
	for _, a := range d.Attributes {
		out = append(out, a)
	}
	return out
}

// InitDeclarator pairs a declarator with its optional initializer.
type InitDeclarator struct {
	BaseNode
	Decl Declarator
	Init Node // Expression or *InitializerList, nil if absent
}

func NewInitDeclarator(span lexer.Span, decl Declarator, init Node) *InitDeclarator {
	return &InitDeclarator{BaseNode: BaseNode{Kind: KindInitDeclarator, Span: span}, Decl: decl, Init: init}
}
func (n *InitDeclarator) String() string {
	if n.Init == nil {
		return n.Decl.String()
	}
	return fmt.Sprintf("%s = %s", n.Decl, n.Init)
}
func (n *InitDeclarator) GetChildren() []Node {
	if n.Init == nil {
		return []Node{n.Decl}
	}
	return []Node{n.Decl, n.Init}
}
func (n *InitDeclarator) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Decl.Accept(v)
		if n.Init != nil {
			n.Init.Accept(v)
		}
	}
	return cont
}

// Declaration is an external or block-scope declaration: specifiers
// plus zero or more init-declarators ("int a, *b = &a;").
type Declaration struct {
	BaseNode
	Specs *DeclarationSpecifiers
	Decls []*InitDeclarator
}

func NewDeclaration(span lexer.Span, specs *DeclarationSpecifiers, decls []*InitDeclarator) *Declaration {
	return &Declaration{BaseNode: BaseNode{Kind: KindDeclaration, Span: span}, Specs: specs, Decls: decls}
}
func (n *Declaration) String() string {
	return fmt.Sprintf("%s %s;", n.Specs, n.Decls)
}
func (n *Declaration) GetChildren() []Node {
	out := n.Specs.children()
	for _, d := range n.Decls {
		out = append(out, d)
	}
	return out
}
func (n *Declaration) externalDeclarationNode() {}
func (n *Declaration) statementNode()           {}
func (n *Declaration) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, c := range n.Specs.children() {
			c.Accept(v)
		}
		for _, d := range n.Decls {
			d.Accept(v)
		}
	}
	return cont
}

// FunctionDefinition is a top-level function with a compound-statement
// body (never just a prototype — that's a Declaration instead).
type FunctionDefinition struct {
	BaseNode
	Specs *DeclarationSpecifiers
	Decl  Declarator
	Body  *CompoundStatement
}

func NewFunctionDefinition(span lexer.Span, specs *DeclarationSpecifiers, decl Declarator, body *CompoundStatement) *FunctionDefinition {
	return &FunctionDefinition{BaseNode: BaseNode{Kind: KindFunctionDefinition, Span: span}, Specs: specs, Decl: decl, Body: body}
}
func (n *FunctionDefinition) String() string { return fmt.Sprintf("%s %s %s", n.Specs, n.Decl, n.Body) }
func (n *FunctionDefinition) GetChildren() []Node {
	out := n.Specs.children()
	out = append(out, n.Decl, n.Body)
	return out
}
func (n *FunctionDefinition) externalDeclarationNode() {}
func (n *FunctionDefinition) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, c := range n.Specs.children() {
			c.Accept(v)
		}
		n.Decl.Accept(v)
		n.Body.Accept(v)
	}
	return cont
}

// Declarator variants ------------------------------------------------

// PlainDeclarator is a bare identifier declarator (the base case the
// pointer/array/function variants wrap).
type PlainDeclarator struct {
	BaseNode
	Name *VariableName
}

func NewPlainDeclarator(span lexer.Span, name *VariableName) *PlainDeclarator {
	return &PlainDeclarator{BaseNode: BaseNode{Kind: KindDeclarator, Span: span}, Name: name}
}
func (n *PlainDeclarator) String() string      { return n.Name.String() }
func (n *PlainDeclarator) GetChildren() []Node { return []Node{n.Name} }
func (n *PlainDeclarator) declaratorNode()     {}
func (n *PlainDeclarator) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Name.Accept(v)
	}
	return cont
}

// Pointer wraps an inner declarator with one level of pointer
// indirection plus its type qualifiers ("* const inner").
type Pointer struct {
	BaseNode
	Quals []string
	Inner Declarator
}

func NewPointer(span lexer.Span, quals []string, inner Declarator) *Pointer {
	return &Pointer{BaseNode: BaseNode{Kind: KindPointer, Span: span}, Quals: quals, Inner: inner}
}
func (n *Pointer) String() string {
	return fmt.Sprintf("*%s %s", strings.Join(n.Quals, " "), n.Inner)
}
func (n *Pointer) GetChildren() []Node { return []Node{n.Inner} }
func (n *Pointer) declaratorNode()     {}
func (n *Pointer) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Inner.Accept(v)
	}
	return cont
}

// ArrayDeclarator wraps an inner declarator with an array dimension;
// Size is nil for "[]" / "[*]" (unspecified/VLA-star).
type ArrayDeclarator struct {
	BaseNode
	Inner  Declarator
	Size   Expression
	Static bool
	Quals  []string
}

func NewArrayDeclarator(span lexer.Span, inner Declarator, size Expression, static bool, quals []string) *ArrayDeclarator {
	return &ArrayDeclarator{BaseNode: BaseNode{Kind: KindArrayDeclarator, Span: span}, Inner: inner, Size: size, Static: static, Quals: quals}
}
func (n *ArrayDeclarator) String() string {
	if n.Size == nil {
		return fmt.Sprintf("%s[]", n.Inner)
	}
	return fmt.Sprintf("%s[%s]", n.Inner, n.Size)
}
func (n *ArrayDeclarator) GetChildren() []Node {
	if n.Size == nil {
		return []Node{n.Inner}
	}
	return []Node{n.Inner, n.Size}
}
func (n *ArrayDeclarator) declaratorNode() {}
func (n *ArrayDeclarator) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Inner.Accept(v)
		if n.Size != nil {
			n.Size.Accept(v)
		}
	}
	return cont
}

// FunctionDeclarator wraps an inner declarator with a parameter list.
type FunctionDeclarator struct {
	BaseNode
	Inner    Declarator
	Params   []*Parameter
	Variadic bool
}

func NewFunctionDeclarator(span lexer.Span, inner Declarator, params []*Parameter, variadic bool) *FunctionDeclarator {
	return &FunctionDeclarator{BaseNode: BaseNode{Kind: KindFunctionDeclarator, Span: span}, Inner: inner, Params: params, Variadic: variadic}
}
func (n *FunctionDeclarator) String() string {
	return fmt.Sprintf("%s(%d params)", n.Inner, len(n.Params))
}
func (n *FunctionDeclarator) GetChildren() []Node {
	out := []Node{n.Inner}
	for _, p := range n.Params {
		out = append(out, p)
	}
	return out
}
func (n *FunctionDeclarator) declaratorNode() {}
func (n *FunctionDeclarator) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Inner.Accept(v)
		for _, p := range n.Params {
			p.Accept(v)
		}
	}
	return cont
}

// Parameter is one entry of a function-declarator's parameter-type-list.
type Parameter struct {
	BaseNode
	Specs *DeclarationSpecifiers
	Decl  Declarator // may be nil (abstract/unnamed parameter)
}

func NewParameter(span lexer.Span, specs *DeclarationSpecifiers, decl Declarator) *Parameter {
	return &Parameter{BaseNode: BaseNode{Kind: KindParameter, Span: span}, Specs: specs, Decl: decl}
}
func (n *Parameter) String() string {
	if n.Decl == nil {
		return n.Specs.String()
	}
	return fmt.Sprintf("%s %s", n.Specs, n.Decl)
}
func (n *Parameter) GetChildren() []Node {
	out := n.Specs.children()
	if n.Decl != nil {
		out = append(out, n.Decl)
	}
	return out
}
func (n *Parameter) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, c := range n.Specs.children() {
			c.Accept(v)
		}
		if n.Decl != nil {
			n.Decl.Accept(v)
		}
	}
	return cont
}

// AbstractDeclarator is a declarator with no identifier, used inside a
// TypeName (sizeof(int *), casts, parameter types).
type AbstractDeclarator struct {
	BaseNode
	// The parser does not construct this node: in an abstract
	// declarator the innermost Pointer/ArrayDeclarator/
	// FunctionDeclarator wraps a PlainDeclarator whose name is empty.
}

func NewAbstractDeclarator(span lexer.Span) *AbstractDeclarator {
	return &AbstractDeclarator{BaseNode: BaseNode{Kind: KindAbstractDeclarator, Span: span}}
}
func (n *AbstractDeclarator) String() string   { return "" }
func (n *AbstractDeclarator) declaratorNode()  {}
func (n *AbstractDeclarator) Accept(v Visitor) bool { return v.VisitNode(n) }

// TypeName is a specifier-qualifier-list plus an optional abstract
// declarator, used by casts, sizeof, _Alignof, and _Generic.
type TypeName struct {
	BaseNode
	Specs *DeclarationSpecifiers
	Decl  Declarator // nil, or an (Abstract)Declarator chain
}

func NewTypeName(span lexer.Span, specs *DeclarationSpecifiers, decl Declarator) *TypeName {
	return &TypeName{BaseNode: BaseNode{Kind: KindTypeName, Span: span}, Specs: specs, Decl: decl}
}
func (n *TypeName) String() string {
	if n.Decl == nil {
		return n.Specs.String()
	}
	return fmt.Sprintf("%s %s", n.Specs, n.Decl)
}
func (n *TypeName) GetChildren() []Node {
	out := n.Specs.children()
	if n.Decl != nil {
		out = append(out, n.Decl)
	}
	return out
}
func (n *TypeName) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, c := range n.Specs.children() {
			c.Accept(v)
		}
		if n.Decl != nil {
			n.Decl.Accept(v)
		}
	}
	return cont
}

// InitializerList is a brace-enclosed initializer, each entry
// optionally preceded by C99 designators (not separately modeled here;
// designator expressions, when present, are folded into Designators).
type InitializerItem struct {
	Designators []Node // MemberNameRef (for .field) or Expression (for [idx])
	Value       Node   // Expression or nested *InitializerList
}

type InitializerList struct {
	BaseNode
	Items []InitializerItem
}

func NewInitializerList(span lexer.Span, items []InitializerItem) *InitializerList {
	return &InitializerList{BaseNode: BaseNode{Kind: KindInitializerList, Span: span}, Items: items}
}
func (n *InitializerList) String() string { return fmt.Sprintf("{%d items}", len(n.Items)) }
func (n *InitializerList) GetChildren() []Node {
	var out []Node
	for _, it := range n.Items {
		out = append(out, it.Designators...)
		out = append(out, it.Value)
	}
	return out
}
func (n *InitializerList) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		for _, it := range n.Items {
			for _, d := range it.Designators {
				d.Accept(v)
			}
			it.Value.Accept(v)
		}
	}
	return cont
}

// Type specifiers -----------------------------------------------------

// BasicType is a keyword-built type specifier ("unsigned long long",
// "_Bool", "double", ...), recorded as the ordered list of keywords
// that made it up.
type BasicType struct {
	BaseNode
	Keywords []string
}

func NewBasicType(span lexer.Span, keywords []string) *BasicType {
	return &BasicType{BaseNode: BaseNode{Kind: KindBasicType, Span: span}, Keywords: keywords}
}
func (n *BasicType) String() string        { return strings.Join(n.Keywords, " ") }
func (n *BasicType) typeSpecifierNode()    {}
func (n *BasicType) Accept(v Visitor) bool { return v.VisitNode(n) }

// StructOrUnionSpecifier is a "struct tag { ... }" or "union tag"
// reference/definition. Tag is nil for anonymous struct/unions; Fields
// is nil when this is a forward reference rather than a definition.
type StructOrUnionSpecifier struct {
	BaseNode
	IsUnion bool
	Tag     *StructNameRef
	Fields  []*Declaration // nil => reference, non-nil (possibly empty) => definition
}

func NewStructOrUnionSpecifier(span lexer.Span, isUnion bool, tag *StructNameRef, fields []*Declaration) *StructOrUnionSpecifier {
	return &StructOrUnionSpecifier{BaseNode: BaseNode{Kind: KindStructOrUnionSpecifier, Span: span}, IsUnion: isUnion, Tag: tag, Fields: fields}
}
func (n *StructOrUnionSpecifier) String() string {
	kw := "struct"
	if n.IsUnion {
		kw = "union"
	}
	if n.Tag != nil {
		return fmt.Sprintf("%s %s", kw, n.Tag)
	}
	return kw
}
func (n *StructOrUnionSpecifier) GetChildren() []Node {
	var out []Node
	if n.Tag != nil {
		out = append(out, n.Tag)
	}
	for _, f := range n.Fields {
		out = append(out, f)
	}
	return out
}
func (n *StructOrUnionSpecifier) typeSpecifierNode() {}
func (n *StructOrUnionSpecifier) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		if n.Tag != nil {
			n.Tag.Accept(v)
		}
		for _, f := range n.Fields {
			f.Accept(v)
		}
	}
	return cont
}

// Enumerator is one "name" or "name = expr" entry in an enum-specifier
// body.
type Enumerator struct {
	BaseNode
	Name  *EnumeratorName
	Value Expression // nil if no "= expr"
}

func NewEnumerator(span lexer.Span, name *EnumeratorName, value Expression) *Enumerator {
	return &Enumerator{BaseNode: BaseNode{Kind: KindEnumerator, Span: span}, Name: name, Value: value}
}
func (n *Enumerator) String() string {
	if n.Value == nil {
		return n.Name.String()
	}
	return fmt.Sprintf("%s = %s", n.Name, n.Value)
}
func (n *Enumerator) GetChildren() []Node {
	if n.Value == nil {
		return []Node{n.Name}
	}
	return []Node{n.Name, n.Value}
}
func (n *Enumerator) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Name.Accept(v)
		if n.Value != nil {
			n.Value.Accept(v)
		}
	}
	return cont
}

// EnumSpecifier is "enum tag { enumerators }" or a reference to one.
type EnumSpecifier struct {
	BaseNode
	Tag        *EnumNameRef // nil for anonymous enums
	Underlying TypeSpecifier
	Values     []*Enumerator // nil => reference rather than definition
}

func NewEnumSpecifier(span lexer.Span, tag *EnumNameRef, underlying TypeSpecifier, values []*Enumerator) *EnumSpecifier {
	return &EnumSpecifier{BaseNode: BaseNode{Kind: KindEnumSpecifier, Span: span}, Tag: tag, Underlying: underlying, Values: values}
}
func (n *EnumSpecifier) String() string {
	if n.Tag != nil {
		return fmt.Sprintf("enum %s", n.Tag)
	}
	return "enum"
}
func (n *EnumSpecifier) GetChildren() []Node {
	var out []Node
	if n.Tag != nil {
		out = append(out, n.Tag)
	}
	if n.Underlying != nil {
		out = append(out, n.Underlying)
	}
	for _, e := range n.Values {
		out = append(out, e)
	}
	return out
}
func (n *EnumSpecifier) typeSpecifierNode() {}
func (n *EnumSpecifier) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		if n.Tag != nil {
			n.Tag.Accept(v)
		}
		if n.Underlying != nil {
			n.Underlying.Accept(v)
		}
		for _, e := range n.Values {
			e.Accept(v)
		}
	}
	return cont
}

// AtomicType is "_Atomic(type-name)" used as a type specifier (as
// opposed to the _Atomic qualifier keyword, tracked separately in
// DeclarationSpecifiers.TypeQuals).
type AtomicType struct {
	BaseNode
	Type *TypeName
}

func NewAtomicType(span lexer.Span, typ *TypeName) *AtomicType {
	return &AtomicType{BaseNode: BaseNode{Kind: KindAtomicType, Span: span}, Type: typ}
}
func (n *AtomicType) String() string        { return fmt.Sprintf("_Atomic(%s)", n.Type) }
func (n *AtomicType) GetChildren() []Node    { return []Node{n.Type} }
func (n *AtomicType) typeSpecifierNode()     {}
func (n *AtomicType) Accept(v Visitor) bool {
	cont := v.VisitNode(n)
	if cont {
		n.Type.Accept(v)
	}
	return cont
}

// AttributeSpecifier is a C23 "[[...]]" attribute list. Its body is
// kept as an unparsed token sequence (§4.4.4): attribute grammars are
// numerous and mostly implementation-defined, so the parser records
// the bracketed group verbatim rather than trying to interpret it.
type AttributeSpecifier struct {
	BaseNode
	Body *lexer.BalancedTokenSequence
}

func NewAttributeSpecifier(span lexer.Span, body *lexer.BalancedTokenSequence) *AttributeSpecifier {
	return &AttributeSpecifier{BaseNode: BaseNode{Kind: KindAttributeSpecifier, Span: span}, Body: body}
}
func (n *AttributeSpecifier) String() string        { return fmt.Sprintf("[[...%d tokens]]", n.Body.Len()) }
func (n *AttributeSpecifier) Accept(v Visitor) bool { return v.VisitNode(n) }
