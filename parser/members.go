package parser

import "github.com/PalumboN/wollok-parser/ast"

// parseClassMember tries, in order, a field, a constructor, and a method,
// recovering a malformed member with classMemberSafewords.
func (p *Parser) parseClassMember() ast.Member {
	switch {
	case p.is("var") || p.is("const"):
		return p.parseField()
	case p.is("constructor"):
		return p.parseConstructor()
	case p.is("override") || p.is("method"):
		return p.parseMethod()
	default:
		return nil
	}
}

// parseGeneralMember is parseClassMember without `constructor` and with
// `fixture` and `test` added, used inside Singleton/Mixin/Describe bodies,
// which never declare constructors.
func (p *Parser) parseGeneralMember() ast.Member {
	switch {
	case p.is("var") || p.is("const"):
		return p.parseField()
	case p.is("fixture"):
		return p.parseFixture()
	case p.is("override") || p.is("method"):
		return p.parseMethod()
	case p.is("test") || p.is("only"):
		return p.parseTestAsMember()
	default:
		return nil
	}
}

func (p *Parser) parseField() *ast.Field {
	start := p.here()
	isReadOnly := p.is("const")
	p.advance() // consume var/const
	isProperty := p.accept("property")
	name := p.parseName()
	var value ast.Expression
	if p.accept("=") {
		value = p.parseExpression()
	}
	return &ast.Field{IsReadOnly: isReadOnly, IsProperty: isProperty, Name: name, Value: value, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseFixture() *ast.Fixture {
	start := p.here()
	p.expect("fixture")
	body := p.parseBracedBody()
	return &ast.Fixture{Body: body, SourceSpan: p.spanFrom(start)}
}

// methodNameTokens covers method declarations named by an operator
// symbol. Each entry is compared against a whole token, so the order here
// does not matter: the lexer's longest-match scan already delivers `===`
// as one token rather than `==` followed by `=`.
var methodNameTokens = []string{
	"===", "!==", "==", "!=", ">=", "<=", "<=>", "&&", "||",
	"+", "-", "*", "/", "%", "**", ">", "<",
}

func (p *Parser) parseMethodName() string {
	if p.isIdent() {
		return p.advance().Value
	}
	if op, ok := p.matchOps(methodNameTokens); ok {
		p.advance()
		return op
	}
	return p.advance().Value
}

// parseMethod parses `[override] method name(params) body`, where body is
// `= expr` (wrapped in a synthetic Return spanning exactly the
// expression), `native`, a brace block, or omitted entirely (an abstract
// method, MethodBody == nil).
func (p *Parser) parseMethod() *ast.Method {
	start := p.here()
	isOverride := p.accept("override")
	p.expect("method")
	name := p.parseMethodName()
	params := p.parseParameters()

	var body ast.MethodBody
	switch {
	case p.accept("native"):
		body = ast.NativeBody{}
	case p.accept("="):
		exprStart := p.here()
		expr := p.parseExpression()
		exprSpan := p.spanFrom(exprStart)
		body = &ast.Body{
			Sentences:  []ast.Sentence{&ast.Return{Value: expr, SourceSpan: exprSpan}},
			SourceSpan: exprSpan,
		}
	case p.is("{"):
		body = p.parseBracedBody()
	default:
		body = nil
	}

	return &ast.Method{
		IsOverride: isOverride,
		Name:       name,
		Parameters: params,
		Body:       body,
		SourceSpan: p.spanFrom(start),
	}
}

// parseTestAsMember parses a `test "..." body` declaration in member
// position (inside a Describe).
func (p *Parser) parseTestAsMember() *ast.Test {
	return p.parseTest()
}

// parseConstructor parses `constructor(params) [= (self|super)(args)] [Body]`.
// A missing body desugars to an empty Body at the constructor's own
// closing position.
func (p *Parser) parseConstructor() *ast.Constructor {
	start := p.here()
	p.expect("constructor")
	params := p.parseParameters()

	var baseCall *ast.BaseCall
	if p.accept("=") {
		callsSuper := p.is("super")
		p.advance() // consume self/super
		args := p.parseArguments()
		baseCall = &ast.BaseCall{CallsSuper: callsSuper, Args: args}
	}

	var body *ast.Body
	if p.is("{") {
		body = p.parseBracedBody()
	} else {
		here := p.here()
		body = &ast.Body{SourceSpan: ast.Span{Start: here, End: here, File: p.file}}
	}

	return &ast.Constructor{Parameters: params, BaseCall: baseCall, Body: body, SourceSpan: p.spanFrom(start)}
}
