// Package parser implements the recursive-descent, operator-precedence
// parser described by the language's grammar: lexical primitives and
// common constructs, the expression and sentence grammars, member and
// entity grammars, and the error-recovery discipline that lets a partial
// parse still yield a usable tree. Parse is a pure function of its inputs;
// nothing here is shared across calls.
package parser

import (
	"path"
	"strings"

	"github.com/PalumboN/wollok-parser/ast"
	"github.com/PalumboN/wollok-parser/lexer"
)

// Parser holds the token cursor for a single ParseFile call. It carries
// the originating file name explicitly rather than through any
// package-level state, per the language's own re-architecture note about
// avoiding a process-wide "current file" variable.
type Parser struct {
	file   string
	source string
	tokens []lexer.Token
	pos    int
}

// ParseFile parses source as a single compilation unit named fileName and
// returns the resulting Package. Every input yields a Package and the
// returned error is always nil: syntax problems are recovered and live in
// Package.ProblemsList, and an unterminated block comment simply ends the
// token stream at end of input.
func ParseFile(fileName, source string) (*ast.Package, error) {
	p := &Parser{
		file:   fileName,
		source: source,
		tokens: lexer.Tokenize(fileName, source),
	}
	return p.parseFile(), nil
}

func packageName(fileName string) string {
	base := path.Base(fileName)
	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	return base
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) previous() lexer.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) isAtEnd() bool {
	return p.current().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// is reports whether the current token's literal text is s (works for
// both keyword-shaped identifiers and operator/punctuation text).
func (p *Parser) is(s string) bool {
	return p.current().Is(s)
}

// accept consumes the current token and returns true if it matches s.
func (p *Parser) accept(s string) bool {
	if p.is(s) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) isIdent() bool {
	return p.current().Type == lexer.Ident
}

// here returns the start position of the current token: the start of the
// node about to be parsed, or the point used for an empty span when a node
// has no content of its own (e.g. a missing constructor body).
func (p *Parser) here() ast.Position {
	return p.current().Span.Start
}

func (p *Parser) spanFrom(start ast.Position) ast.Span {
	return ast.Span{Start: start, End: p.previous().Span.End, File: p.file}
}
