package parser

import "github.com/PalumboN/wollok-parser/ast"

// Safeword sets used to re-synchronize after a malformed child.
var (
	entitySafewords        = set("package", "class", "object", "mixin", "program", "describe", "test", "var", "const", "}")
	generalMemberSafewords = set("method", "fixture", "var", "const", "test", "describe", "}")
	classMemberSafewords   = set("method", "constructor", "var", "const", "}")
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func (p *Parser) atSafeword(words map[string]bool) bool {
	return words[p.current().Value] && (p.isIdent() || p.is("}"))
}

// skipToSafeword greedily consumes tokens — treating any `{ ... }` region
// as a single balanced unit so a malformed member can't derail an outer
// container's brace tracking — until the current token is about to match
// a safeword, or input ends. At least one token is always consumed.
func (p *Parser) skipToSafeword(words map[string]bool) ast.Span {
	start := p.here()
	p.advanceBalanced()
	for !p.isAtEnd() && !p.atSafeword(words) {
		p.advanceBalanced()
	}
	return ast.Span{Start: start, End: p.previous().Span.End, File: p.file}
}

// advanceBalanced consumes one token, or — if that token opens a brace —
// consumes up to and including its matching close brace.
func (p *Parser) advanceBalanced() {
	if p.is("{") {
		p.advance()
		depth := 1
		for depth > 0 && !p.isAtEnd() {
			switch {
			case p.is("{"):
				depth++
			case p.is("}"):
				depth--
			}
			p.advance()
		}
		return
	}
	p.advance()
}

// recoverEntity records a malformedEntity problem covering a skipped
// region at entity position.
func (p *Parser) recoverEntity() ast.Problem {
	return ast.Problem{Code: ast.MalformedEntity, Source: p.skipToSafeword(entitySafewords)}
}

// recoverMember records a malformedMember problem covering a skipped
// region, using the safeword set appropriate to the enclosing container.
func (p *Parser) recoverMember(words map[string]bool) ast.Problem {
	return ast.Problem{Code: ast.MalformedMember, Source: p.skipToSafeword(words)}
}
