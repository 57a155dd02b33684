package parser

import (
	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
)

// ParseResult is the outcome of any entry point in this package: an
// AST (always non-nil, possibly containing Error placeholders) plus
// every diagnostic recorded along the way. Parsing is total — there is
// no failure case that omits the AST.
type ParseResult struct {
	Node  ast.Node
	Diags *diag.Bag
}

// Parse runs the full TranslationUnit grammar over tokens, the public
// entry point named in §6.
func Parse(tokens *lexer.BalancedTokenSequence, tweaker ContextTweaker) ParseResult {
	p := New(tokens, tweaker)
	tu := p.ParseTranslationUnit()
	return ParseResult{Node: tu, Diags: p.Diagnostics()}
}

// FragmentRule names one of the five grammar entry points
// parse_fragment can target, used by the quasiquote collaborator to
// re-parse a substituted attribute/expression token sequence without
// running the whole TranslationUnit grammar.
type FragmentRule int

const (
	RuleTranslationUnit FragmentRule = iota
	RuleStatement
	RuleExpression
	RuleTypeName
	RuleDeclaration
)

// ParseFragment parses tokens as the single named rule, with an
// optional ContextTweaker for the same reason Parse has one (a
// fragment reparsed mid-quasiquote may need the enclosing scope's
// typedefs to already be visible).
func ParseFragment(tokens *lexer.BalancedTokenSequence, rule FragmentRule, tweaker ContextTweaker) ParseResult {
	p := New(tokens, tweaker)
	var node ast.Node
	switch rule {
	case RuleTranslationUnit:
		node = p.ParseTranslationUnit()
	case RuleStatement:
		node = p.ParseStatement()
	case RuleExpression:
		node = p.ParseExpression()
	case RuleTypeName:
		if typ := p.parseTypeNameInline(); typ != nil {
			node = typ
		} else {
			span := p.here()
			node = ast.NewError(span, "expected type-name")
		}
	case RuleDeclaration:
		node = p.parseDeclarationStatement()
	default:
		node = ast.NewError(p.here(), "unknown fragment rule")
	}
	if !p.atEnd() {
		p.diags.Add(diag.Diagnostic{Span: p.here(), Kind: diag.UnexpectedToken, Message: "unexpected trailing tokens after fragment"})
	}
	return ParseResult{Node: node, Diags: p.Diagnostics()}
}
