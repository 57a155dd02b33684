package parser

import (
	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
)

// precedence classes, loosest to tightest, per §4.4.3. Assignment and
// the conditional operator are handled by dedicated functions above
// this table since they're right-associative and each has its own
// nesting rule against comma.
var binaryPrecedence = [][]lexer.Punctuator{
	{lexer.PunctOrOr},
	{lexer.PunctAndAnd},
	{lexer.PunctPipe},
	{lexer.PunctCaret},
	{lexer.PunctAmp},
	{lexer.PunctEqEq, lexer.PunctNotEq},
	{lexer.PunctLt, lexer.PunctGt, lexer.PunctLe, lexer.PunctGe},
	{lexer.PunctShl, lexer.PunctShr},
	{lexer.PunctPlus, lexer.PunctMinus},
	{lexer.PunctStar, lexer.PunctSlash, lexer.PunctPercent},
}

var assignmentOps = []lexer.Punctuator{
	lexer.PunctEq, lexer.PunctStarEq, lexer.PunctSlashEq, lexer.PunctPercentEq,
	lexer.PunctPlusEq, lexer.PunctMinusEq, lexer.PunctShlEq, lexer.PunctShrEq,
	lexer.PunctAndEq, lexer.PunctCaretEq, lexer.PunctPipeEq,
}

// ParseExpression parses a full comma-expression, the loosest-binding
// production in §4.4.3.
func (p *Parser) ParseExpression() ast.Expression {
	first := p.parseAssignment()
	if !p.atPunct(lexer.PunctComma) {
		return first
	}
	start := first.GetSpan()
	exprs := []ast.Expression{first}
	for p.eatPunct(lexer.PunctComma) {
		exprs = append(exprs, p.parseAssignment())
	}
	end := exprs[len(exprs)-1].GetSpan()
	return ast.NewCommaExpr(start.Union(end), exprs)
}

// parseAssignment binds tighter than comma, looser than conditional,
// and is right-associative.
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseConditional()
	for _, op := range assignmentOps {
		if p.atPunct(op) {
			tok := p.advance()
			right := p.parseAssignment()
			return ast.NewAssignExpr(left.GetSpan().Union(right.GetSpan()), string(tok.Punct), left, right)
		}
	}
	return left
}

// parseConditional handles "cond ? then : else", right-associative on
// the else-branch, looser than every binary operator.
func (p *Parser) parseConditional() ast.Expression {
	cond := p.parseBinary(0)
	if !p.eatPunct(lexer.PunctQuestion) {
		return cond
	}
	then := p.ParseExpression()
	p.expectPunct(lexer.PunctColon)
	els := p.parseAssignment()
	return ast.NewConditionalExpr(cond.GetSpan().Union(els.GetSpan()), cond, then, els)
}

// parseBinary implements precedence climbing over binaryPrecedence,
// left-associative at every level; level indexes into the table,
// looser levels first.
func (p *Parser) parseBinary(level int) ast.Expression {
	if level >= len(binaryPrecedence) {
		return p.parseCast()
	}
	left := p.parseBinary(level + 1)
	for {
		op, ok := p.matchAny(binaryPrecedence[level])
		if !ok {
			return left
		}
		tok := p.advance()
		_ = op
		right := p.parseBinary(level + 1)
		left = ast.NewBinaryExpr(left.GetSpan().Union(right.GetSpan()), string(tok.Punct), left, right)
	}
}

func (p *Parser) matchAny(ops []lexer.Punctuator) (lexer.Punctuator, bool) {
	t := p.cur()
	if t == nil || t.Kind != lexer.KindPunctuator {
		return "", false
	}
	for _, op := range ops {
		if t.Punct == op {
			return op, true
		}
	}
	return "", false
}

// parseCast handles "(type-name) expr" versus a parenthesized
// expression: both start identically, so the parser attempts the cast
// reading first (consulting the symbol table to know whether the
// parenthesized content is a type) and falls back to unary on failure.
func (p *Parser) parseCast() ast.Expression {
	if t := p.cur(); t != nil && t.Kind == lexer.KindParenthesized && p.groupStartsTypeName(t) {
		cp := p.checkpoint()
		tok := p.advance()
		p.enterGroup(tok)
		typ := p.parseTypeNameInline()
		ok := p.atEnd()
		p.leaveGroup()
		if ok && typ != nil {
			if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced {
				init := p.parseInitializerList(brace)
				return ast.NewCompoundLiteral(tok.Span.Union(init.GetSpan()), typ, init)
			}
			operand := p.parseCast()
			return ast.NewCastExpr(tok.Span.Union(operand.GetSpan()), typ, operand)
		}
		p.restore(cp)
	}
	return p.parseUnary()
}

// groupStartsTypeName is a cheap syntactic peek (not a full parse):
// true only if the first token inside the parenthesized group could
// begin a type-name, i.e. a type keyword or a name the symbol table
// currently classifies as a typedef.
func (p *Parser) groupStartsTypeName(t *lexer.BalancedToken) bool {
	if t.Group.Len() == 0 {
		return false
	}
	first := t.Group.Tokens[0]
	if first.Kind != lexer.KindIdentifier {
		return false
	}
	if isTypeKeyword(first.Text) {
		return true
	}
	return p.table.IsTypedefName(first.Text)
}

func (p *Parser) parseUnary() ast.Expression {
	if t := p.cur(); t != nil && t.Kind == lexer.KindPunctuator {
		switch t.Punct {
		case lexer.PunctAmp, lexer.PunctStar, lexer.PunctPlus, lexer.PunctMinus, lexer.PunctTilde, lexer.PunctBang:
			tok := p.advance()
			operand := p.parseCast()
			return ast.NewUnaryExpr(tok.Span.Union(operand.GetSpan()), ast.UnaryOp(tok.Punct), operand)
		case lexer.PunctIncr, lexer.PunctDecr:
			tok := p.advance()
			operand := p.parseUnary()
			return ast.NewPreIncDec(tok.Span.Union(operand.GetSpan()), string(tok.Punct), operand)
		}
	}
	if p.atKeyword("sizeof") {
		return p.parseSizeof()
	}
	if p.atKeyword("_Alignof") || p.atKeyword("alignof") {
		tok := p.advance()
		if t := p.cur(); t != nil && t.Kind == lexer.KindParenthesized {
			p.advance()
			p.enterGroup(t)
			typ := p.parseTypeNameInline()
			p.leaveGroup()
			if typ != nil {
				return ast.NewAlignofType(tok.Span.Union(t.Span), typ)
			}
		}
		return ast.NewError(tok.Span, "expected (type-name) after _Alignof")
	}
	return p.parsePostfix()
}

func (p *Parser) parseSizeof() ast.Expression {
	tok := p.advance() // "sizeof"
	if t := p.cur(); t != nil && t.Kind == lexer.KindParenthesized && p.groupStartsTypeName(t) {
		cp := p.checkpoint()
		paren := p.advance()
		p.enterGroup(paren)
		typ := p.parseTypeNameInline()
		ok := p.atEnd() && typ != nil
		p.leaveGroup()
		if ok {
			return ast.NewSizeofType(tok.Span.Union(paren.Span), typ)
		}
		p.restore(cp)
	}
	operand := p.parseUnary()
	return ast.NewSizeofExpr(tok.Span.Union(operand.GetSpan()), operand)
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		t := p.cur()
		if t == nil {
			return expr
		}
		switch {
		case t.Kind == lexer.KindBracketed:
			p.advance()
			p.enterGroup(t)
			index := p.ParseExpression()
			p.leaveGroup()
			expr = ast.NewSubscriptExpr(expr.GetSpan().Union(t.Span), expr, index)
		case t.Kind == lexer.KindParenthesized:
			p.advance()
			p.enterGroup(t)
			var args []ast.Expression
			for !p.atEnd() {
				args = append(args, p.parseAssignment())
				if !p.eatPunct(lexer.PunctComma) {
					break
				}
			}
			p.leaveGroup()
			expr = ast.NewCallExpr(expr.GetSpan().Union(t.Span), expr, args)
		case t.Kind == lexer.KindPunctuator && t.Punct == lexer.PunctDot:
			p.advance()
			member := p.parseMemberName()
			expr = ast.NewMemberExpr(expr.GetSpan().Union(member.GetSpan()), expr, member)
		case t.Kind == lexer.KindPunctuator && t.Punct == lexer.PunctArrow:
			p.advance()
			member := p.parseMemberName()
			expr = ast.NewArrowExpr(expr.GetSpan().Union(member.GetSpan()), expr, member)
		case t.Kind == lexer.KindPunctuator && (t.Punct == lexer.PunctIncr || t.Punct == lexer.PunctDecr):
			tok := p.advance()
			expr = ast.NewPostIncDec(expr.GetSpan().Union(tok.Span), string(tok.Punct), expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseMemberName() *ast.MemberNameRef {
	name, ok := p.atIdent()
	if !ok {
		span := p.here()
		p.diags.Add(diag.Diagnostic{Span: span, Kind: diag.UnexpectedToken, Message: "expected member name"})
		return ast.NewMemberNameRef(span, "")
	}
	tok := p.advance()
	return ast.NewMemberNameRef(tok.Span, name)
}

// parsePrimary resolves an identifier through the symbol table
// (§4.4.1): an enum constant if the table knows it as one, otherwise a
// plain variable reference.
func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	if t == nil {
		span := p.here()
		p.diags.Add(diag.Diagnostic{Span: span, Kind: diag.UnexpectedToken, Message: "expected expression"})
		return ast.NewError(span, "expected expression")
	}
	switch t.Kind {
	case lexer.KindIdentifier:
		if t.Text == "_Generic" {
			return p.parseGenericSelection()
		}
		p.advance()
		if p.table.IsEnumConstant(t.Text) {
			return ast.NewEnumConstantRef(t.Span, t.Text)
		}
		return ast.NewVariableName(t.Span, t.Text)
	case lexer.KindIntConstant:
		p.advance()
		return ast.NewIntLiteral(t.Span, t.Int)
	case lexer.KindFloatConstant:
		p.advance()
		if t.Float.WasNaN {
			p.diags.Addf(t.Span, diag.UnrepresentableFloatLiteral, "hex-float literal requests an unrepresentable NaN; saturated to infinity")
		}
		return ast.NewFloatLiteral(t.Span, t.Float)
	case lexer.KindCharConstant:
		p.advance()
		return ast.NewCharLiteral(t.Span, t.Char)
	case lexer.KindStringLiteral:
		p.advance()
		return ast.NewStringLiteralExpr(t.Span, t.String)
	case lexer.KindPredefinedConstant:
		p.advance()
		return ast.NewVariableName(t.Span, t.Text)
	case lexer.KindParenthesized:
		p.advance()
		p.enterGroup(t)
		inner := p.ParseExpression()
		p.leaveGroup()
		return ast.NewParenExpr(t.Span, inner)
	default:
		p.advance()
		span := t.Span
		p.diags.Add(diag.Diagnostic{Span: span, Kind: diag.UnexpectedToken, Message: "expected expression", Found: p.describeTok(t)})
		return ast.NewError(span, "unexpected token in expression position")
	}
}

// parseGenericSelection parses a C11/C23 "_Generic(expr, assoc, ...)"
// expression, where each assoc is "type-name: expr" or "default: expr".
func (p *Parser) parseGenericSelection() ast.Expression {
	kw := p.advance() // "_Generic"
	paren := p.cur()
	if paren == nil || paren.Kind != lexer.KindParenthesized {
		p.diags.Add(diag.Diagnostic{Span: p.here(), Kind: diag.UnexpectedToken, Message: "expected ( after _Generic"})
		return ast.NewError(kw.Span, "malformed _Generic")
	}
	p.advance()
	p.enterGroup(paren)
	ctrl := p.parseAssignment()
	var assocs []ast.GenericAssoc
	for p.eatPunct(lexer.PunctComma) {
		var assoc ast.GenericAssoc
		if p.eatKeyword("default") {
			assoc.Type = nil
		} else {
			assoc.Type = p.parseTypeNameInline()
		}
		p.expectPunct(lexer.PunctColon)
		assoc.Result = p.parseAssignment()
		assocs = append(assocs, assoc)
	}
	p.leaveGroup()
	return ast.NewGenericSelection(kw.Span.Union(paren.Span), ctrl, assocs)
}

// parseInitializerList parses a brace-enclosed initializer, including
// C99 designators ("[idx] =" and ".field =").
func (p *Parser) parseInitializerList(brace *lexer.BalancedToken) *ast.InitializerList {
	p.advance()
	p.enterGroup(brace)
	var items []ast.InitializerItem
	for !p.atEnd() {
		var item ast.InitializerItem
		for {
			if t := p.cur(); t != nil && t.Kind == lexer.KindBracketed {
				p.advance()
				p.enterGroup(t)
				idx := p.ParseExpression()
				p.leaveGroup()
				item.Designators = append(item.Designators, idx)
				continue
			}
			if p.eatPunct(lexer.PunctDot) {
				item.Designators = append(item.Designators, p.parseMemberName())
				continue
			}
			break
		}
		if len(item.Designators) > 0 {
			p.expectPunct(lexer.PunctEq)
		}
		if brace2 := p.cur(); brace2 != nil && brace2.Kind == lexer.KindBraced {
			item.Value = p.parseInitializerList(brace2)
		} else {
			item.Value = p.parseAssignment()
		}
		items = append(items, item)
		if !p.eatPunct(lexer.PunctComma) {
			break
		}
	}
	p.leaveGroup()
	return ast.NewInitializerList(brace.Span, items)
}

func (p *Parser) describeTok(t *lexer.BalancedToken) string {
	switch t.Kind {
	case lexer.KindIdentifier:
		return t.Text
	case lexer.KindPunctuator:
		return string(t.Punct)
	default:
		return t.Kind.String()
	}
}

// isTypeKeyword reports whether text is a C23 keyword that can start a
// type-specifier or qualifier (used to disambiguate cast/paren-expr
// and declaration/expression-statement without consulting the symbol
// table).
func isTypeKeyword(text string) bool {
	switch text {
	case "void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "_Bool", "bool", "_Complex",
		"const", "restrict", "volatile", "_Atomic",
		"struct", "union", "enum", "typeof", "typeof_unqual",
		"_Float16", "_Float128", "_BitInt":
		return true
	}
	return false
}
