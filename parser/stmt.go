package parser

import (
	"fmt"

	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
)

// ParseStatement parses one statement, dispatching on keyword or
// falling through to a labeled/expression/declaration statement.
func (p *Parser) ParseStatement() ast.Statement {
	start := p.here()
	if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced {
		return p.parseCompoundStatement(brace)
	}
	if name, ok := p.atIdent(); ok {
		switch name {
		case "if":
			return p.parseIfStatement()
		case "switch":
			return p.parseSwitchStatement()
		case "case":
			return p.parseCaseStatement()
		case "default":
			return p.parseDefaultStatement()
		case "while":
			return p.parseWhileStatement()
		case "do":
			return p.parseDoWhileStatement()
		case "for":
			return p.parseForStatement()
		case "goto":
			return p.parseGotoStatement()
		case "continue":
			tok := p.advance()
			p.expectPunct(lexer.PunctSemicolon)
			return ast.NewContinueStatement(tok.Span)
		case "break":
			tok := p.advance()
			p.expectPunct(lexer.PunctSemicolon)
			return ast.NewBreakStatement(tok.Span)
		case "return":
			return p.parseReturnStatement()
		}
		// labeled statement: IDENT ':' stmt, distinguished from an
		// expression-statement by lookahead at the following token.
		if next := p.peekAt(1); next != nil && next.Kind == lexer.KindPunctuator && next.Punct == lexer.PunctColon && !basicTypeKeywords[name] {
			tok := p.advance()
			p.advance() // ':'
			label := ast.NewLabelNameRef(tok.Span, name)
			body := p.ParseStatement()
			return ast.NewLabeledStatement(start.Union(body.GetSpan()), label, body)
		}
	}
	if p.looksLikeDeclaration() {
		return p.parseDeclarationStatement()
	}
	if p.looksLikeImplicitIntDeclaration() {
		return p.parseImplicitIntDeclaration()
	}
	return p.parseExpressionStatement()
}

// looksLikeImplicitIntDeclaration resolves the "T * x;" ambiguity
// (§9 Open Question 1) where T is an identifier the symbol table
// knows nothing about: grammatically this could be a multiplication
// expression-statement or a declaration of x as "T *x" with T assumed
// to mean int. This implementation chooses the declaration reading
// whenever the shape is exactly IDENT '*' IDENT followed by one of the
// tokens that can end a declarator (';', ',', '=').
func (p *Parser) looksLikeImplicitIntDeclaration() bool {
	name, ok := p.atIdent()
	if !ok {
		return false
	}
	// Already known as something: no ambiguity to resolve. A declared
	// variable in "a * b;" is unambiguously multiplication; a typedef
	// name there is handled by looksLikeDeclaration already.
	if p.table.IsTypedefName(name) || p.table.IsEnumConstant(name) || p.table.IsOrdinaryName(name) {
		return false
	}
	star := p.peekAt(1)
	if star == nil || star.Kind != lexer.KindPunctuator || star.Punct != lexer.PunctStar {
		return false
	}
	nameTok := p.peekAt(2)
	if nameTok == nil || nameTok.Kind != lexer.KindIdentifier {
		return false
	}
	term := p.peekAt(3)
	if term == nil || term.Kind != lexer.KindPunctuator {
		return false
	}
	return term.Punct == lexer.PunctSemicolon || term.Punct == lexer.PunctComma || term.Punct == lexer.PunctEq
}

// parseImplicitIntDeclaration consumes the type-specifier-shaped
// identifier as an implicit int (pre-C99 tolerance) and parses the
// remaining pointer declarator normally, recording a non-fatal
// ImplicitInt diagnostic.
func (p *Parser) parseImplicitIntDeclaration() *ast.Declaration {
	start := p.here()
	tTok := p.advance()
	p.diags.Add(diag.Diagnostic{
		Span: tTok.Span, Kind: diag.ImplicitInt,
		Message: fmt.Sprintf("%q is not a known type name; assuming implicit int", tTok.Text),
	})
	specs := &ast.DeclarationSpecifiers{TypeSpec: ast.NewBasicType(tTok.Span, []string{"int"})}
	decl := p.parseDeclarator()
	decls := p.finishInitDeclaratorList(decl, specs)
	if !p.expectPunct(lexer.PunctSemicolon) {
		p.synchronizeStatement()
	}
	return ast.NewDeclaration(start.Union(p.here()), specs, decls)
}

// looksLikeDeclaration peeks at the current token to decide whether a
// block-scope statement begins a declaration, per §4.4.1: true for any
// storage-class/qualifier/function-spec keyword, any basic-type
// keyword, struct/union/enum, or an identifier currently classified as
// a typedef name.
func (p *Parser) looksLikeDeclaration() bool {
	name, ok := p.atIdent()
	if !ok {
		return false
	}
	if storageClassKeywords[name] || typeQualKeywords[name] || functionSpecKeywords[name] || basicTypeKeywords[name] {
		return true
	}
	switch name {
	case "struct", "union", "enum", "typeof", "typeof_unqual":
		return true
	}
	return p.table.IsTypedefName(name)
}

func (p *Parser) parseDeclarationStatement() *ast.Declaration {
	start := p.here()
	attrs := p.parseAttributeSpecifiers()
	specs := p.parseDeclarationSpecifiers()
	specs.Attributes = append(specs.Attributes, attrs...)
	var decls []*ast.InitDeclarator
	if !p.atPunct(lexer.PunctSemicolon) {
		decl := p.parseDeclarator()
		decls = p.finishInitDeclaratorList(decl, specs)
	}
	if !p.expectPunct(lexer.PunctSemicolon) {
		p.synchronizeStatement()
	}
	return ast.NewDeclaration(start.Union(p.here()), specs, decls)
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	start := p.here()
	if p.eatPunct(lexer.PunctSemicolon) {
		return ast.NewNullStatement(start)
	}
	expr := p.ParseExpression()
	if !p.expectPunct(lexer.PunctSemicolon) {
		p.synchronizeStatement()
	}
	return ast.NewExpressionStatement(start.Union(expr.GetSpan()), expr)
}

// parseCompoundStatement parses a "{ ... }" block, pushing a new
// symbol-table scope for its duration (§4.3).
func (p *Parser) parseCompoundStatement(brace *lexer.BalancedToken) *ast.CompoundStatement {
	p.advance()
	p.enterGroup(brace)
	p.table.Push()
	var items []ast.Node
	for !p.atEnd() {
		items = append(items, p.ParseStatement())
	}
	p.table.Pop()
	p.leaveGroup()
	return ast.NewCompoundStatement(brace.Span, items)
}

func (p *Parser) parseIfStatement() *ast.IfStatement {
	kw := p.advance() // "if"
	cond := p.parseParenthesizedExpression()
	then := p.ParseStatement()
	var els ast.Statement
	if p.eatKeyword("else") {
		els = p.ParseStatement()
	}
	end := then.GetSpan()
	if els != nil {
		end = els.GetSpan()
	}
	return ast.NewIfStatement(kw.Span.Union(end), cond, then, els)
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	kw := p.advance() // "switch"
	tag := p.parseParenthesizedExpression()
	body := p.ParseStatement()
	return ast.NewSwitchStatement(kw.Span.Union(body.GetSpan()), tag, body)
}

func (p *Parser) parseCaseStatement() *ast.CaseStatement {
	kw := p.advance() // "case"
	value := p.parseConditional()
	p.expectPunct(lexer.PunctColon)
	body := p.ParseStatement()
	return ast.NewCaseStatement(kw.Span.Union(body.GetSpan()), value, body)
}

func (p *Parser) parseDefaultStatement() *ast.DefaultStatement {
	kw := p.advance() // "default"
	p.expectPunct(lexer.PunctColon)
	body := p.ParseStatement()
	return ast.NewDefaultStatement(kw.Span.Union(body.GetSpan()), body)
}

func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	kw := p.advance() // "while"
	cond := p.parseParenthesizedExpression()
	body := p.ParseStatement()
	return ast.NewWhileStatement(kw.Span.Union(body.GetSpan()), cond, body)
}

func (p *Parser) parseDoWhileStatement() *ast.DoWhileStatement {
	kw := p.advance() // "do"
	body := p.ParseStatement()
	p.eatKeyword("while")
	cond := p.parseParenthesizedExpression()
	p.expectPunct(lexer.PunctSemicolon)
	return ast.NewDoWhileStatement(kw.Span.Union(p.here()), body, cond)
}

func (p *Parser) parseForStatement() *ast.ForStatement {
	kw := p.advance() // "for"
	paren := p.cur()
	if paren == nil || paren.Kind != lexer.KindParenthesized {
		p.diags.Add(diag.Diagnostic{Span: p.here(), Kind: diag.UnexpectedToken, Message: "expected ( after for"})
		return ast.NewForStatement(kw.Span, nil, nil, nil, ast.NewNullStatement(kw.Span))
	}
	p.advance()
	p.enterGroup(paren)
	p.table.Push()
	var init ast.Node
	if !p.atPunct(lexer.PunctSemicolon) {
		if p.looksLikeDeclaration() {
			init = p.parseDeclarationStatement()
		} else {
			init = p.parseExpressionStatement()
		}
	} else {
		p.advance()
	}
	var cond ast.Expression
	if !p.atPunct(lexer.PunctSemicolon) {
		cond = p.ParseExpression()
	}
	p.expectPunct(lexer.PunctSemicolon)
	var post ast.Expression
	if !p.atEnd() {
		post = p.ParseExpression()
	}
	p.leaveGroup()
	body := p.ParseStatement()
	p.table.Pop()
	return ast.NewForStatement(kw.Span.Union(body.GetSpan()), init, cond, post, body)
}

func (p *Parser) parseGotoStatement() *ast.GotoStatement {
	kw := p.advance() // "goto"
	var label *ast.LabelNameRef
	if name, ok := p.atIdent(); ok {
		t := p.advance()
		label = ast.NewLabelNameRef(t.Span, name)
	} else {
		span := p.here()
		p.diags.Add(diag.Diagnostic{Span: span, Kind: diag.UnexpectedToken, Message: "expected label name after goto"})
		label = ast.NewLabelNameRef(span, "")
	}
	p.expectPunct(lexer.PunctSemicolon)
	return ast.NewGotoStatement(kw.Span.Union(label.Span), label)
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	kw := p.advance() // "return"
	var value ast.Expression
	if !p.atPunct(lexer.PunctSemicolon) {
		value = p.ParseExpression()
	}
	end := kw.Span
	if value != nil {
		end = value.GetSpan()
	}
	p.expectPunct(lexer.PunctSemicolon)
	return ast.NewReturnStatement(kw.Span.Union(end), value)
}

// parseParenthesizedExpression parses "( expr )" as used by if/switch/
// while/do-while conditions.
func (p *Parser) parseParenthesizedExpression() ast.Expression {
	paren := p.cur()
	if paren == nil || paren.Kind != lexer.KindParenthesized {
		span := p.here()
		p.diags.Add(diag.Diagnostic{Span: span, Kind: diag.UnexpectedToken, Message: "expected ("})
		return ast.NewError(span, "expected parenthesized condition")
	}
	p.advance()
	p.enterGroup(paren)
	expr := p.ParseExpression()
	p.leaveGroup()
	return expr
}
