package parser

import (
	"strings"

	"github.com/PalumboN/wollok-parser/ast"
)

// expect consumes the current token if it matches s. It never aborts the
// parse on mismatch — only the five container-level recovery points
// are specified to resynchronize, so every deeper production is
// best-effort: it builds whatever tree it can from what's actually there.
func (p *Parser) expect(s string) {
	p.accept(s)
}

// parseName consumes a single identifier, returning its text.
func (p *Parser) parseName() string {
	if p.isIdent() {
		return p.advance().Value
	}
	return ""
}

// parseReference parses a single-identifier reference.
func (p *Parser) parseReference() *ast.Reference {
	start := p.here()
	name := p.parseName()
	return &ast.Reference{Name: name, SourceSpan: p.spanFrom(start)}
}

// parseQualifiedReference parses a dot-joined identifier path
// (FullyQualifiedReference), storing it as a single dotted name on one
// Reference node.
func (p *Parser) parseQualifiedReference() *ast.Reference {
	start := p.here()
	var parts []string
	parts = append(parts, p.parseName())
	for p.is(".") {
		save := p.pos
		p.advance() // consume '.'
		if !p.isIdent() {
			p.pos = save
			break
		}
		parts = append(parts, p.advance().Value)
	}
	return &ast.Reference{Name: strings.Join(parts, "."), SourceSpan: p.spanFrom(start)}
}

// parseParameters parses a parenthesized, comma-separated parameter list,
// where a trailing `...` marks a vararg parameter.
func (p *Parser) parseParameters() []*ast.Parameter {
	p.expect("(")
	var params []*ast.Parameter
	for !p.is(")") && !p.isAtEnd() {
		start := p.here()
		name := p.parseName()
		isVarArg := p.accept("...")
		params = append(params, &ast.Parameter{Name: name, IsVarArg: isVarArg, SourceSpan: p.spanFrom(start)})
		if !p.accept(",") {
			break
		}
	}
	p.expect(")")
	return params
}

// namedArgsAhead reports whether the argument list starting at the cursor
// uses the named form: a leading `name =`.
func (p *Parser) namedArgsAhead() bool {
	return p.isIdent() && p.peek().Is("=")
}

// parseArguments parses a parenthesized argument list, positional or
// named (the whole list is one or the other, chosen by looking at the
// first argument).
func (p *Parser) parseArguments() []ast.Expression {
	p.expect("(")
	var args []ast.Expression
	if !p.is(")") && !p.isAtEnd() {
		named := p.namedArgsAhead()
		for {
			if named {
				args = append(args, p.parseNamedArgument())
			} else {
				args = append(args, p.parseExpression())
			}
			if !p.accept(",") {
				break
			}
		}
	}
	p.expect(")")
	return args
}

func (p *Parser) parseNamedArgument() ast.Expression {
	start := p.here()
	name := p.parseName()
	p.expect("=")
	value := p.parseExpression()
	return &ast.NamedArgument{Name: name, Value: value, SourceSpan: p.spanFrom(start)}
}
