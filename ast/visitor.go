package ast

// Visitor traverses a tree. Every method reports whether to descend
// into the node's children (false prunes that subtree early, the same
// early-termination contract as the teacher's Visitor.Visit).
//
// Identifier nodes are dispatched to one of eight semantically
// distinct hooks instead of the generic VisitNode: a pretty-printer or
// linter downstream needs to render/rename a variable differently from
// a struct tag or a label, even though all eight are spelled as a bare
// identifier in the source.
type Visitor interface {
	VisitNode(n Node) bool

	VisitVariableName(n *VariableName) bool
	VisitTypeNameIdentifier(n *TypeNameIdentifier) bool
	VisitEnumConstant(n *EnumConstantRef) bool
	VisitLabelName(n *LabelNameRef) bool
	VisitMemberName(n *MemberNameRef) bool
	VisitStructName(n *StructNameRef) bool
	VisitEnumName(n *EnumNameRef) bool
	VisitEnumeratorName(n *EnumeratorName) bool
}

// Walk visits node, then (if the visit wasn't pruned) its children.
// Each node type drives its own child traversal inside Accept; Walk is
// the entry point for code that only has a Node and wants the default
// traversal to happen.
func Walk(v Visitor, node Node) bool {
	if node == nil {
		return true
	}
	return node.Accept(v)
}

// BaseVisitor implements Visitor with every hook defaulting to "always
// descend"; embed it and override only the hooks you need.
type BaseVisitor struct{}

func (BaseVisitor) VisitNode(Node) bool                             { return true }
func (BaseVisitor) VisitVariableName(*VariableName) bool            { return true }
func (BaseVisitor) VisitTypeNameIdentifier(*TypeNameIdentifier) bool { return true }
func (BaseVisitor) VisitEnumConstant(*EnumConstantRef) bool         { return true }
func (BaseVisitor) VisitLabelName(*LabelNameRef) bool               { return true }
func (BaseVisitor) VisitMemberName(*MemberNameRef) bool             { return true }
func (BaseVisitor) VisitStructName(*StructNameRef) bool             { return true }
func (BaseVisitor) VisitEnumName(*EnumNameRef) bool                 { return true }
func (BaseVisitor) VisitEnumeratorName(*EnumeratorName) bool        { return true }

// MutatingVisitor extends Visitor with a Rewrite hook that returns a
// replacement for a node. No Accept method and no Walk in this package
// calls Rewrite, so the default traversal never substitutes nodes; a
// caller that wants replacements must call Rewrite itself.
type MutatingVisitor interface {
	Visitor
	// Rewrite returns a replacement for n, or nil to keep n.
	Rewrite(n Node) Node
}
