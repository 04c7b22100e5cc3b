package parser

import (
	"strconv"

	"github.com/PalumboN/wollok-parser/ast"
	"github.com/PalumboN/wollok-parser/lexer"
)

// precedenceLevels is the infix operator table, ordered lowest (loosest
// binding) to highest (tightest binding). All eight levels are
// left-associative.
var precedenceLevels = [][]string{
	{"||", "or"},
	{"&&", "and"},
	{"===", "==", "!==", "!="},
	{">=", ">", "<=", "<"},
	{"?:", ">>>", ">>", ">..", "<>", "<=>", "<<<", "<<", "..<", "..", "->"},
	{"-", "+"},
	{"/", "*"},
	{"**", "%"},
}

var lazyOps = set("||", "or", "&&", "and")

var prefixOps = []string{"!", "-", "+", "not"}

var prefixMessage = map[string]string{
	"!": "negate", "not": "negate", "-": "invert", "+": "plus",
}

// matchOps reports whether the current token's text is one of ops —
// covering both symbol tokens ("!", "==") and keyword-shaped identifier
// tokens ("or", "and", "not") uniformly.
func (p *Parser) matchOps(ops []string) (string, bool) {
	t := p.current()
	if t.Type != lexer.Op && t.Type != lexer.Ident {
		return "", false
	}
	for _, o := range ops {
		if t.Value == o {
			return o, true
		}
	}
	return "", false
}

// parseExpression parses a full expression starting at the loosest
// (level 0) precedence.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseInfix(0)
}

func (p *Parser) parseInfix(level int) ast.Expression {
	if level >= len(precedenceLevels) {
		return p.parsePrefix()
	}
	start := p.here()
	left := p.parseInfix(level + 1)
	ops := precedenceLevels[level]
	for {
		op, ok := p.matchOps(ops)
		if !ok {
			break
		}
		p.advance()
		rhs := p.parseInfix(level + 1)
		var args []ast.Expression
		if lazyOps[op] {
			args = []ast.Expression{wrapInClosure(rhs)}
		} else {
			args = []ast.Expression{rhs}
		}
		left = &ast.Send{Receiver: left, Message: op, Args: args, SourceSpan: p.spanFrom(start)}
	}
	return left
}

// wrapInClosure builds the zero-parameter closure used to defer a lazy
// operator's right-hand side: `Closure{ sentences:[value] }`.
func wrapInClosure(expr ast.Expression) *ast.Literal {
	sp := expr.Span()
	body := &ast.Body{
		Sentences:  []ast.Sentence{&ast.ExpressionStatement{Expr: expr, SourceSpan: sp}},
		SourceSpan: sp,
	}
	method := &ast.Method{Name: "apply", Body: body, SourceSpan: sp}
	singleton := &ast.Singleton{Members: []ast.Member{method}, IsClosure: true, SourceSpan: sp}
	return &ast.Literal{Value: singleton, SourceSpan: sp}
}

// parsePrefix right-folds a stack of prefix operators onto a send chain.
func (p *Parser) parsePrefix() ast.Expression {
	if op, ok := p.matchOps(prefixOps); ok {
		start := p.here()
		p.advance()
		operand := p.parsePrefix()
		return &ast.Send{Receiver: operand, Message: prefixMessage[op], SourceSpan: p.spanFrom(start)}
	}
	return p.parseSendChain()
}

// parseSendChain folds `.name(args)` / `.name {closure}` segments
// left-associatively onto a primary expression.
func (p *Parser) parseSendChain() ast.Expression {
	start := p.here()
	expr := p.parsePrimary()
	for p.is(".") {
		p.advance()
		name := p.parseName()
		var args []ast.Expression
		switch {
		case p.is("("):
			args = p.parseArguments()
		case p.is("{"):
			args = []ast.Expression{p.parseClosureLiteral()}
		}
		expr = &ast.Send{Receiver: expr, Message: name, Args: args, SourceSpan: p.spanFrom(start)}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	start := p.here()
	tok := p.current()

	switch {
	case tok.Is("self"):
		p.advance()
		return &ast.Self{SourceSpan: p.spanFrom(start)}
	case tok.Is("super"):
		p.advance()
		args := p.parseArguments()
		return &ast.Super{Args: args, SourceSpan: p.spanFrom(start)}
	case tok.Is("if"):
		return p.parseIf()
	case tok.Is("new"):
		return p.parseNew()
	case tok.Is("throw"):
		p.advance()
		exc := p.parseExpression()
		return &ast.Throw{Exception: exc, SourceSpan: p.spanFrom(start)}
	case tok.Is("try"):
		return p.parseTry()
	case tok.Is("object"):
		singleton := p.parseObject()
		return &ast.Literal{Value: singleton, SourceSpan: singleton.SourceSpan}
	case tok.Is("null"):
		p.advance()
		return &ast.Literal{Value: nil, SourceSpan: p.spanFrom(start)}
	case tok.Is("true"):
		p.advance()
		return &ast.Literal{Value: true, SourceSpan: p.spanFrom(start)}
	case tok.Is("false"):
		p.advance()
		return &ast.Literal{Value: false, SourceSpan: p.spanFrom(start)}
	case tok.Type == lexer.Number:
		p.advance()
		v, _ := strconv.ParseFloat(tok.Value, 64)
		return &ast.Literal{Value: v, SourceSpan: p.spanFrom(start)}
	case tok.Type == lexer.String:
		p.advance()
		return &ast.Literal{Value: tok.Value, SourceSpan: p.spanFrom(start)}
	case tok.Is("["):
		return p.parseListLiteral()
	case tok.Is("#"):
		return p.parseSetLiteral()
	case tok.Is("{"):
		return p.parseClosureLiteral()
	case tok.Is("("):
		p.advance()
		inner := p.parseExpression()
		p.expect(")")
		return inner
	case p.isIdent():
		return p.parseReference()
	default:
		// Nothing recognizable in primary position; consume one token so
		// the cursor always makes progress and let the enclosing
		// entity/member recovery point classify the surrounding region.
		p.advance()
		return &ast.Reference{Name: tok.Value, SourceSpan: p.spanFrom(start)}
	}
}

func (p *Parser) parseIf() ast.Expression {
	start := p.here()
	p.expect("if")
	p.expect("(")
	cond := p.parseExpression()
	p.expect(")")
	then := p.parseInlineableBody()
	var els *ast.Body
	if p.accept("else") {
		els = p.parseInlineableBody()
	}
	return &ast.If{Condition: cond, Then: then, Else: els, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseTry() ast.Expression {
	start := p.here()
	p.expect("try")
	body := p.parseInlineableBody()
	var catches []*ast.Catch
	for p.is("catch") {
		catches = append(catches, p.parseCatch())
	}
	var always *ast.Body
	if p.accept("then") {
		p.expect("always")
		always = p.parseInlineableBody()
	}
	return &ast.Try{Body: body, Catches: catches, Always: always, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseCatch() *ast.Catch {
	start := p.here()
	p.expect("catch")
	pstart := p.here()
	name := p.parseName()
	param := &ast.Parameter{Name: name, SourceSpan: p.spanFrom(pstart)}
	var paramType *ast.Reference
	if p.accept(":") {
		paramType = p.parseQualifiedReference()
	}
	body := p.parseInlineableBody()
	return &ast.Catch{Parameter: param, ParameterType: paramType, Body: body, SourceSpan: p.spanFrom(start)}
}

// parseInlineableBody parses either a brace-delimited block or a single
// sentence implicitly wrapped into a one-sentence Body.
func (p *Parser) parseInlineableBody() *ast.Body {
	if p.is("{") {
		return p.parseBracedBody()
	}
	start := p.here()
	s := p.parseSentence()
	var sentences []ast.Sentence
	if s != nil {
		sentences = []ast.Sentence{s}
	}
	return &ast.Body{Sentences: sentences, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseBracedBody() *ast.Body {
	start := p.here()
	p.expect("{")
	var sentences []ast.Sentence
	for !p.is("}") && !p.isAtEnd() {
		for p.accept(";") {
		}
		if p.is("}") || p.isAtEnd() {
			break
		}
		s := p.parseSentence()
		if s == nil {
			break
		}
		sentences = append(sentences, s)
		for p.accept(";") {
		}
	}
	p.expect("}")
	return &ast.Body{Sentences: sentences, SourceSpan: p.spanFrom(start)}
}

// parseNew parses `new REF(args)`, or, when followed by one or more
// `with REF` clauses, desugars directly to an anonymous-singleton
// Literal.
func (p *Parser) parseNew() ast.Expression {
	start := p.here()
	p.expect("new")
	ref := p.parseQualifiedReference()
	args := p.parseArguments()

	if !p.is("with") {
		return &ast.New{Instantiated: ref, Args: args, SourceSpan: p.spanFrom(start)}
	}

	var mixins []*ast.Reference
	for p.accept("with") {
		mixins = append(mixins, p.parseQualifiedReference())
	}
	reverseRefs(mixins)

	singleton := &ast.Singleton{
		SuperclassRef: ref,
		SupercallArgs: args,
		Mixins:        mixins,
		SourceSpan:    p.spanFrom(start),
	}
	return &ast.Literal{Value: singleton, SourceSpan: p.spanFrom(start)}
}

func reverseRefs(refs []*ast.Reference) {
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
}

func (p *Parser) parseCommaExpressions(closer string) []ast.Expression {
	var args []ast.Expression
	for !p.is(closer) && !p.isAtEnd() {
		args = append(args, p.parseExpression())
		if !p.accept(",") {
			break
		}
	}
	return args
}

// parseListLiteral desugars `[e1, ..., en]` to New(wollok.lang.List, args).
func (p *Parser) parseListLiteral() ast.Expression {
	start := p.here()
	p.expect("[")
	args := p.parseCommaExpressions("]")
	p.expect("]")
	sp := p.spanFrom(start)
	return &ast.New{Instantiated: &ast.Reference{Name: "wollok.lang.List", SourceSpan: sp}, Args: args, SourceSpan: sp}
}

// parseSetLiteral desugars `#{e1, ..., en}` to New(wollok.lang.Set, args).
func (p *Parser) parseSetLiteral() ast.Expression {
	start := p.here()
	p.expect("#")
	p.expect("{")
	args := p.parseCommaExpressions("}")
	p.expect("}")
	sp := p.spanFrom(start)
	return &ast.New{Instantiated: &ast.Reference{Name: "wollok.lang.Set", SourceSpan: sp}, Args: args, SourceSpan: sp}
}

// parseClosureLiteral parses `{ p1, ..., pn => sentences }` or the
// zero-parameter form `{ sentences }`, desugaring to an anonymous
// Singleton with a single `apply` method and capturing the verbatim
// source between the braces as Code.
func (p *Parser) parseClosureLiteral() ast.Expression {
	start := p.here()
	p.expect("{")
	codeStartOffset := p.previous().Span.End.Offset

	save := p.pos
	var params []*ast.Parameter
	confirmedParams := true
	for !p.is("=>") && !p.is("}") && !p.isAtEnd() {
		if !p.isIdent() {
			confirmedParams = false
			break
		}
		pstart := p.here()
		name := p.advance().Value
		isVarArg := p.accept("...")
		params = append(params, &ast.Parameter{Name: name, IsVarArg: isVarArg, SourceSpan: p.spanFrom(pstart)})
		if p.accept(",") {
			continue
		}
		break
	}
	if confirmedParams && p.accept("=>") {
		// keep params, sentences start here
	} else {
		p.pos = save
		params = nil
	}

	bodyStart := p.here()
	var sentences []ast.Sentence
	for !p.is("}") && !p.isAtEnd() {
		for p.accept(";") {
		}
		if p.is("}") || p.isAtEnd() {
			break
		}
		s := p.parseSentence()
		if s == nil {
			break
		}
		sentences = append(sentences, s)
		for p.accept(";") {
		}
	}
	codeEndOffset := p.current().Span.Start.Offset
	body := &ast.Body{Sentences: sentences, SourceSpan: p.spanFrom2(bodyStart)}
	p.expect("}")

	code := ""
	if codeEndOffset >= codeStartOffset && codeEndOffset <= len(p.source) {
		code = p.source[codeStartOffset:codeEndOffset]
	}

	method := &ast.Method{Name: "apply", Parameters: params, Body: body, SourceSpan: body.SourceSpan}
	sp := p.spanFrom(start)
	singleton := &ast.Singleton{Members: []ast.Member{method}, IsClosure: true, Code: code, SourceSpan: sp}
	return &ast.Literal{Value: singleton, SourceSpan: sp}
}

// spanFrom2 is spanFrom, except that when no token has been consumed since
// start (e.g. an empty closure body), the span is the empty span at start
// instead of one ending before it begins.
func (p *Parser) spanFrom2(start ast.Position) ast.Span {
	end := start
	if p.pos > 0 {
		end = p.tokens[p.pos-1].Span.End
		if p.tokens[p.pos-1].Span.Start.Offset < start.Offset {
			end = start
		}
	}
	return ast.Span{Start: start, End: end, File: p.file}
}
