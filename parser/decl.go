package parser

import (
	"github.com/ccparse/ccparse/ast"
	"github.com/ccparse/ccparse/diag"
	"github.com/ccparse/ccparse/lexer"
)

var storageClassKeywords = map[string]bool{
	"typedef": true, "extern": true, "static": true, "_Thread_local": true,
	"thread_local": true, "auto": true, "register": true, "constexpr": true,
}

var typeQualKeywords = map[string]bool{
	"const": true, "restrict": true, "volatile": true, "_Atomic": true,
}

var functionSpecKeywords = map[string]bool{
	"inline": true, "_Noreturn": true, "noreturn": true,
}

var basicTypeKeywords = map[string]bool{
	"void": true, "char": true, "short": true, "int": true, "long": true,
	"float": true, "double": true, "signed": true, "unsigned": true,
	"_Bool": true, "bool": true, "_Complex": true, "_Float16": true, "_Float128": true,
}

// ParseTranslationUnit parses the top-level sequence of external
// declarations (function definitions and declarations), recovering at
// statement boundaries on error.
func (p *Parser) ParseTranslationUnit() *ast.TranslationUnit {
	start := p.here()
	var decls []ast.ExternalDeclaration
	for !p.atEnd() {
		before := p.cur()
		d := p.parseExternalDeclaration()
		decls = append(decls, d)
		if _, isErr := d.(*ast.Error); isErr {
			// If the error path made no progress, force it so the loop
			// terminates instead of looping forever on the same token.
			if p.cur() == before {
				p.advance()
			}
		}
	}
	end := p.here()
	return ast.NewTranslationUnit(start.Union(end), decls)
}

// parseExternalDeclaration parses one FunctionDefinition or
// Declaration, distinguishing them by whether a declarator is
// followed by a compound-statement body.
func (p *Parser) parseExternalDeclaration() ast.ExternalDeclaration {
	startTok := p.cur()
	attrs := p.parseAttributeSpecifiers()
	specs := p.parseDeclarationSpecifiers()
	specs.Attributes = append(specs.Attributes, attrs...)

	if p.eatPunct(lexer.PunctSemicolon) {
		return ast.NewDeclaration(p.errorSpanFrom(startTok), specs, nil)
	}

	decl := p.parseDeclarator()
	if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced && isFunctionDeclarator(decl) {
		p.registerDeclaratorName(decl, specs)
		p.table.Push()
		p.declareParameters(decl)
		body := p.parseCompoundStatement(brace)
		p.table.Pop()
		return ast.NewFunctionDefinition(p.errorSpanFrom(startTok), specs, decl, body)
	}

	initDecls := p.finishInitDeclaratorList(decl, specs)
	if !p.expectPunct(lexer.PunctSemicolon) {
		p.synchronizeStatement()
	}
	return ast.NewDeclaration(p.errorSpanFrom(startTok), specs, initDecls)
}

// finishInitDeclaratorList parses the optional initializer on decl and
// any further comma-separated init-declarators, registering typedef
// names in the symbol table as soon as each is accepted (§4.4.2).
func (p *Parser) finishInitDeclaratorList(first ast.Declarator, specs *ast.DeclarationSpecifiers) []*ast.InitDeclarator {
	var out []*ast.InitDeclarator
	decl := first
	for {
		var init ast.Node
		if p.eatPunct(lexer.PunctEq) {
			if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced {
				init = p.parseInitializerList(brace)
			} else {
				init = p.parseAssignment()
			}
		}
		p.registerDeclaratorName(decl, specs)
		out = append(out, ast.NewInitDeclarator(decl.GetSpan(), decl, init))
		if !p.eatPunct(lexer.PunctComma) {
			break
		}
		decl = p.parseDeclarator()
	}
	return out
}

// registerDeclaratorName extracts the innermost name from decl and
// records it as a typedef name (if "typedef" is among the specifiers)
// or an ordinary name otherwise, implementing §4.4.2 / the shadowing
// rule of §4.3.
func (p *Parser) registerDeclaratorName(decl ast.Declarator, specs *ast.DeclarationSpecifiers) {
	name := innermostDeclaratorName(decl)
	if name == "" {
		return
	}
	isTypedef := false
	for _, sc := range specs.StorageClass {
		if sc == "typedef" {
			isTypedef = true
		}
	}
	if isTypedef {
		p.table.AddTypedefName(name)
	} else {
		p.table.AddOrdinaryName(name)
	}
}

func innermostDeclaratorName(decl ast.Declarator) string {
	switch d := decl.(type) {
	case *ast.PlainDeclarator:
		return d.Name.Name
	case *ast.Pointer:
		return innermostDeclaratorName(d.Inner)
	case *ast.ArrayDeclarator:
		return innermostDeclaratorName(d.Inner)
	case *ast.FunctionDeclarator:
		return innermostDeclaratorName(d.Inner)
	default:
		return ""
	}
}

func isFunctionDeclarator(decl ast.Declarator) bool {
	_, ok := decl.(*ast.FunctionDeclarator)
	return ok
}

// declareParameters adds every named parameter of a function
// declarator's parameter list as an ordinary name in the (already
// pushed) function-body scope.
func (p *Parser) declareParameters(decl ast.Declarator) {
	fd, ok := decl.(*ast.FunctionDeclarator)
	if !ok {
		return
	}
	for _, param := range fd.Params {
		if param.Decl != nil {
			if name := innermostDeclaratorName(param.Decl); name != "" {
				p.table.AddOrdinaryName(name)
			}
		}
	}
}

// parseDeclarationSpecifiers consumes storage-class/qualifier/
// function-spec keywords and at most one type-specifier, in any
// C-permitted order.
func (p *Parser) parseDeclarationSpecifiers() *ast.DeclarationSpecifiers {
	specs := &ast.DeclarationSpecifiers{}
	for {
		name, ok := p.atIdent()
		if !ok {
			break
		}
		switch {
		case storageClassKeywords[name]:
			specs.StorageClass = append(specs.StorageClass, name)
			p.advance()
		case typeQualKeywords[name] && !p.nextStartsAtomicTypeParen():
			specs.TypeQuals = append(specs.TypeQuals, name)
			p.advance()
		case functionSpecKeywords[name]:
			specs.FunctionSpec = append(specs.FunctionSpec, name)
			p.advance()
		case specs.TypeSpec == nil && p.atTypeSpecifierStart(name):
			specs.TypeSpec = p.parseTypeSpecifier()
		default:
			goto done
		}
	}
done:
	return specs
}

// nextStartsAtomicTypeParen distinguishes the _Atomic qualifier
// keyword from the _Atomic(type-name) type-specifier form: the latter
// is immediately followed by a parenthesized group.
func (p *Parser) nextStartsAtomicTypeParen() bool {
	if _, ok := p.atIdent(); !ok {
		return false
	}
	if p.cur().Text != "_Atomic" {
		return false
	}
	next := p.peekAt(1)
	return next != nil && next.Kind == lexer.KindParenthesized
}

func (p *Parser) atTypeSpecifierStart(name string) bool {
	if basicTypeKeywords[name] {
		return true
	}
	switch name {
	case "struct", "union", "enum", "_Atomic", "typeof", "typeof_unqual":
		return true
	}
	return p.table.IsTypedefName(name)
}

func (p *Parser) parseTypeSpecifier() ast.TypeSpecifier {
	name, _ := p.atIdent()
	switch {
	case name == "struct" || name == "union":
		return p.parseStructOrUnionSpecifier()
	case name == "enum":
		return p.parseEnumSpecifier()
	case name == "_Atomic":
		tok := p.advance()
		paren := p.advance() // parenthesized group, guaranteed by atTypeSpecifierStart's caller context
		p.enterGroup(paren)
		typ := p.parseTypeNameInline()
		p.leaveGroup()
		return ast.NewAtomicType(tok.Span.Union(paren.Span), typ)
	case basicTypeKeywords[name]:
		return p.parseBasicType()
	default:
		tok := p.advance()
		return ast.NewTypeNameIdentifier(tok.Span, name)
	}
}

// parseBasicType greedily consumes the run of basic-type keywords
// that make up one specifier ("unsigned long long int").
func (p *Parser) parseBasicType() *ast.BasicType {
	start := p.here()
	var kws []string
	for {
		name, ok := p.atIdent()
		if !ok || !basicTypeKeywords[name] {
			break
		}
		kws = append(kws, name)
		p.advance()
	}
	return ast.NewBasicType(start.Union(p.here()), kws)
}

func (p *Parser) parseStructOrUnionSpecifier() *ast.StructOrUnionSpecifier {
	kwTok := p.advance() // "struct" or "union"
	isUnion := kwTok.Text == "union"
	var tag *ast.StructNameRef
	if name, ok := p.atIdent(); ok && !basicTypeKeywords[name] {
		t := p.advance()
		tag = ast.NewStructNameRef(t.Span, name)
	}
	var fields []*ast.Declaration
	if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced {
		p.advance()
		p.enterGroup(brace)
		p.table.Push()
		for !p.atEnd() {
			if p.eatPunct(lexer.PunctSemicolon) {
				continue
			}
			fields = append(fields, p.parseMemberDeclaration())
		}
		p.table.Pop()
		p.leaveGroup()
		if fields == nil {
			fields = []*ast.Declaration{}
		}
	}
	return ast.NewStructOrUnionSpecifier(kwTok.Span, isUnion, tag, fields)
}

// parseMemberDeclaration parses one struct/union member declaration:
// specifiers followed by one or more (possibly bit-field) declarators.
func (p *Parser) parseMemberDeclaration() *ast.Declaration {
	start := p.here()
	specs := p.parseDeclarationSpecifiers()
	var decls []*ast.InitDeclarator
	if !p.atPunct(lexer.PunctSemicolon) {
		for {
			decl := p.parseDeclarator()
			if p.eatPunct(lexer.PunctColon) {
				p.parseAssignment() // bit-field width; width tracking is left to a future pass
			}
			decls = append(decls, ast.NewInitDeclarator(decl.GetSpan(), decl, nil))
			if !p.eatPunct(lexer.PunctComma) {
				break
			}
		}
	}
	p.expectPunct(lexer.PunctSemicolon)
	return ast.NewDeclaration(start.Union(p.here()), specs, decls)
}

func (p *Parser) parseEnumSpecifier() *ast.EnumSpecifier {
	kwTok := p.advance() // "enum"
	var tag *ast.EnumNameRef
	if name, ok := p.atIdent(); ok && !basicTypeKeywords[name] {
		t := p.advance()
		tag = ast.NewEnumNameRef(t.Span, name)
	}
	var underlying ast.TypeSpecifier
	if p.eatPunct(lexer.PunctColon) {
		underlying = p.parseTypeSpecifier()
	}
	var values []*ast.Enumerator
	if brace := p.cur(); brace != nil && brace.Kind == lexer.KindBraced {
		p.advance()
		p.enterGroup(brace)
		for !p.atEnd() {
			name, ok := p.atIdent()
			if !ok {
				break
			}
			t := p.advance()
			enumerator := ast.NewEnumeratorName(t.Span, name)
			p.table.AddEnumConstant(name)
			var value ast.Expression
			if p.eatPunct(lexer.PunctEq) {
				value = p.parseConditional()
			}
			values = append(values, ast.NewEnumerator(t.Span, enumerator, value))
			if !p.eatPunct(lexer.PunctComma) {
				break
			}
		}
		p.leaveGroup()
		if values == nil {
			values = []*ast.Enumerator{}
		}
	}
	return ast.NewEnumSpecifier(kwTok.Span, tag, underlying, values)
}

// parseDeclarator parses pointer* direct-declarator, building the
// wrapper chain from the outside in (so the innermost node is always
// the plain name, matching how array/function suffixes apply).
func (p *Parser) parseDeclarator() ast.Declarator {
	if p.atPunct(lexer.PunctStar) {
		tok := p.advance()
		var quals []string
		for {
			name, ok := p.atIdent()
			if !ok || !typeQualKeywords[name] {
				break
			}
			quals = append(quals, name)
			p.advance()
		}
		inner := p.parseDeclarator()
		return ast.NewPointer(tok.Span.Union(inner.GetSpan()), quals, inner)
	}
	return p.parseDirectDeclarator()
}

func (p *Parser) parseDirectDeclarator() ast.Declarator {
	var base ast.Declarator
	if t := p.cur(); t != nil && t.Kind == lexer.KindParenthesized {
		p.advance()
		p.enterGroup(t)
		base = p.parseDeclarator()
		p.leaveGroup()
	} else if name, ok := p.atIdent(); ok {
		t := p.advance()
		base = ast.NewPlainDeclarator(t.Span, ast.NewVariableName(t.Span, name))
	} else {
		span := p.here()
		base = ast.NewPlainDeclarator(span, ast.NewVariableName(span, ""))
	}
	return p.parseDeclaratorSuffixes(base)
}

func (p *Parser) parseDeclaratorSuffixes(base ast.Declarator) ast.Declarator {
	for {
		t := p.cur()
		if t == nil {
			return base
		}
		switch t.Kind {
		case lexer.KindBracketed:
			p.advance()
			p.enterGroup(t)
			static := p.eatKeyword("static")
			var quals []string
			for {
				name, ok := p.atIdent()
				if !ok || !typeQualKeywords[name] {
					break
				}
				quals = append(quals, name)
				p.advance()
			}
			var size ast.Expression
			if !p.atEnd() && !p.atPunct(lexer.PunctStar) {
				size = p.ParseExpression()
			} else if p.atPunct(lexer.PunctStar) {
				p.advance()
			}
			p.leaveGroup()
			base = ast.NewArrayDeclarator(base.GetSpan().Union(t.Span), base, size, static, quals)
		case lexer.KindParenthesized:
			p.advance()
			p.enterGroup(t)
			params, variadic := p.parseParameterList()
			p.leaveGroup()
			base = ast.NewFunctionDeclarator(base.GetSpan().Union(t.Span), base, params, variadic)
		default:
			return base
		}
	}
}

func (p *Parser) parseParameterList() ([]*ast.Parameter, bool) {
	var params []*ast.Parameter
	variadic := false
	if p.atEnd() {
		return params, variadic
	}
	if name, ok := p.atIdent(); ok && name == "void" && p.peekAt(1) == nil {
		p.advance()
		return params, variadic
	}
	for !p.atEnd() {
		if p.eatPunct(lexer.PunctEllipsis) {
			variadic = true
			break
		}
		start := p.here()
		specs := p.parseDeclarationSpecifiers()
		var decl ast.Declarator
		if !p.atEnd() && !p.atPunct(lexer.PunctComma) {
			decl = p.parseDeclarator()
		}
		params = append(params, ast.NewParameter(start.Union(p.here()), specs, decl))
		if !p.eatPunct(lexer.PunctComma) {
			break
		}
	}
	return params, variadic
}

// parseTypeNameInline parses a specifier-qualifier-list plus an
// optional abstract declarator; used for casts, sizeof/_Alignof
// operands, _Generic associations, and compound-literal types. Must be
// called with the parser already positioned inside the enclosing
// parenthesized group.
func (p *Parser) parseTypeNameInline() *ast.TypeName {
	start := p.here()
	specs := p.parseDeclarationSpecifiers()
	if specs.TypeSpec == nil {
		return nil
	}
	var decl ast.Declarator
	if !p.atEnd() {
		decl = p.parseDeclarator()
	}
	return ast.NewTypeName(start.Union(p.here()), specs, decl)
}

// parseAttributeSpecifiers consumes zero or more attribute-specifiers,
// both the C23 "[[...]]" standard form and the GNU "__attribute__((...))"
// vendor form, normalizing both into the same AttributeSpecifier node
// with an unparsed body (§4.4.4).
func (p *Parser) parseAttributeSpecifiers() []*ast.AttributeSpecifier {
	var out []*ast.AttributeSpecifier
	for {
		if outer := p.cur(); outer != nil && outer.Kind == lexer.KindBracketed &&
			outer.Group.Len() == 1 && outer.Group.Tokens[0].Kind == lexer.KindBracketed {
			p.advance()
			inner := outer.Group.Tokens[0]
			out = append(out, ast.NewAttributeSpecifier(outer.Span, inner.Group))
			continue
		}
		if p.atKeyword("__attribute__") {
			kw := p.advance()
			outer := p.cur()
			if outer == nil || outer.Kind != lexer.KindParenthesized ||
				outer.Group.Len() != 1 || outer.Group.Tokens[0].Kind != lexer.KindParenthesized {
				p.diags.Add(diag.Diagnostic{Span: kw.Span, Kind: diag.UnexpectedToken, Message: "expected ((...)) after __attribute__"})
				continue
			}
			p.advance()
			inner := outer.Group.Tokens[0]
			out = append(out, ast.NewAttributeSpecifier(kw.Span.Union(outer.Span), inner.Group))
			continue
		}
		return out
	}
}
