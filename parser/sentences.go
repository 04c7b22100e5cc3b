package parser

import "github.com/PalumboN/wollok-parser/ast"

// compoundOps maps a compound-assignment operator token to the message
// sent to the target's current value; "=" itself is handled separately
// since it needs no desugaring.
var compoundOps = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "%=": "%",
	"||=": "||", "&&=": "&&",
}

// parseSentence tries, in order, a local variable declaration, a return,
// an assignment (with compound-operator desugaring), and finally falls
// back to a bare expression statement.
func (p *Parser) parseSentence() ast.Sentence {
	switch {
	case p.is("var") || p.is("const"):
		return p.parseLocalVariable()
	case p.is("return"):
		return p.parseReturn()
	default:
		return p.parseAssignmentOrExpression()
	}
}

func (p *Parser) parseLocalVariable() ast.Sentence {
	start := p.here()
	isReadOnly := p.is("const")
	p.advance() // consume var/const
	name := p.parseName()
	var value ast.Expression
	if p.accept("=") {
		value = p.parseExpression()
	}
	return &ast.Variable{IsReadOnly: isReadOnly, Name: name, Value: value, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseReturn() ast.Sentence {
	start := p.here()
	p.expect("return")
	var value ast.Expression
	if !p.is("}") && !p.isAtEnd() && !p.atSentenceEnd() {
		value = p.parseExpression()
	}
	return &ast.Return{Value: value, SourceSpan: p.spanFrom(start)}
}

// atSentenceEnd is a light heuristic used only to decide whether a bare
// `return` has a following value on the same logical sentence; the
// grammar has no statement terminator token, so this just checks for a
// closing `}` or the end of input.
func (p *Parser) atSentenceEnd() bool {
	return p.is("}") || p.isAtEnd()
}

// parseAssignmentOrExpression parses an expression and, if followed by
// `=` or a compound-assignment operator, reinterprets it as an
// Assignment. Compound operators desugar to
// `Assignment(ref, Send(ref, op, [rhs]))`, aliasing the same *Reference
// value as both the Assignment's Target and the Send's Receiver (see
// ast.Assignment's doc comment); lazy operators (`||=`, `&&=`) wrap their
// right-hand side in a zero-parameter closure exactly as their infix
// counterparts do.
func (p *Parser) parseAssignmentOrExpression() ast.Sentence {
	start := p.here()
	expr := p.parseExpression()

	if p.is("=") {
		p.advance()
		ref, ok := expr.(*ast.Reference)
		if !ok {
			ref = &ast.Reference{SourceSpan: expr.Span()}
		}
		value := p.parseExpression()
		return &ast.Assignment{Target: ref, Value: value, SourceSpan: p.spanFrom(start)}
	}

	if op, ok := p.matchOps(compoundAssignOps); ok {
		p.advance()
		ref, isRef := expr.(*ast.Reference)
		if !isRef {
			ref = &ast.Reference{SourceSpan: expr.Span()}
		}
		rhs := p.parseExpression()
		message := compoundOps[op]
		var args []ast.Expression
		if lazyOps[message] {
			args = []ast.Expression{wrapInClosure(rhs)}
		} else {
			args = []ast.Expression{rhs}
		}
		send := &ast.Send{Receiver: ref, Message: message, Args: args, SourceSpan: p.spanFrom(start)}
		return &ast.Assignment{Target: ref, Value: send, SourceSpan: p.spanFrom(start)}
	}

	return &ast.ExpressionStatement{Expr: expr, SourceSpan: p.spanFrom(start)}
}

var compoundAssignOps = []string{"+=", "-=", "*=", "/=", "%=", "||=", "&&="}
