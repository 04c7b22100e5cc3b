// Package lexer turns UTF-8 source text into a flat token stream for the
// parser. It performs no grammar-level disambiguation: keywords are not a
// distinct lexical category (keyword-vs-identifier is a grammar-level
// decision, not a lexical one), and every run of operator/punctuation
// characters is tokenized by greedy longest-match against a fixed,
// descending-length-sorted table.
package lexer

import "github.com/PalumboN/wollok-parser/ast"

// TokenType classifies a Token. There is deliberately no per-keyword type:
// `var`, `class`, `self`, `or`, and any other identifier-shaped keyword all
// arrive as Ident, distinguished later by the text the parser reads —
// keyword-vs-identifier is a grammar-level decision, not a lexical one.
type TokenType int

const (
	EOF TokenType = iota
	Illegal
	Ident
	Number
	String
	Op
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Illegal:
		return "ILLEGAL"
	case Ident:
		return "IDENT"
	case Number:
		return "NUMBER"
	case String:
		return "STRING"
	case Op:
		return "OP"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit. Value is the decoded value for String
// tokens (quotes stripped, escapes resolved) and the verbatim source text
// for every other kind.
type Token struct {
	Type  TokenType
	Value string
	Span  ast.Span
}

// Is reports whether the token is an operator/punctuation token whose text
// equals s, or an identifier whose text equals s (covering keyword checks
// like tok.Is("class") and operator checks like tok.Is("===") uniformly).
func (t Token) Is(s string) bool {
	return (t.Type == Op || t.Type == Ident) && t.Value == s
}
