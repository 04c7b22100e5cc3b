// Package ast defines the untyped, unlinked abstract syntax tree produced by
// the parser. Every node carries a Span describing the byte range, and the
// 1-based line/column, it occupied in its originating file.
package ast

import "fmt"

// Position is a single point in a source file.
//
// Offset is a 0-based byte offset into the file's UTF-8 bytes. Line and
// Column are 1-based and counted by rune, not byte, so multi-byte UTF-8
// sequences never distort column numbers.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the source provenance attached to every AST node: the half-open
// byte range [Start.Offset, End.Offset) within File.
type Span struct {
	Start Position
	End   Position
	File  string
}

func (s Span) String() string {
	return fmt.Sprintf("%s:%s-%s", s.File, s.Start, s.End)
}

// Contains reports whether other is nested within s, per the span
// containment invariant: every child span lies within its parent's span.
func (s Span) Contains(other Span) bool {
	return s.Start.Offset <= other.Start.Offset && other.End.Offset <= s.End.Offset
}

// ProblemCode classifies a recoverable parse problem. These are the only
// two codes this core ever produces; everything else is a well-formed node.
type ProblemCode string

const (
	MalformedEntity ProblemCode = "malformedEntity"
	MalformedMember ProblemCode = "malformedMember"
)

// Problem is a recoverable parse error: a region of source that could not
// be matched against any legal production at the point it was encountered.
// Problems never carry message text — downstream tooling formats
// human-readable diagnostics from Code + Source.
type Problem struct {
	Code   ProblemCode
	Source Span
}
