package ast

// Node is implemented by every AST variant; it exposes the node's source
// provenance.
type Node interface {
	Span() Span
}

// Entity is a top-level or nested declaration that can itself contain
// entities or members: Package, Class, Singleton, Mixin, Program, Describe,
// Test, and the top-level form of Variable.
type Entity interface {
	Node
	entityNode()
}

// Member is a declaration inside an entity body: Field, Method,
// Constructor, Fixture, and Test (inside a Describe). Variable is not a
// Member; `var`/`const` declarations in member position parse as Field.
type Member interface {
	Node
	memberNode()
}

// Sentence is a statement-level node: Variable, Return, Assignment, or a
// bare Expression used in statement position.
type Sentence interface {
	Node
	sentenceNode()
}

// Expression is any value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Recoverable is implemented by the five entity/member containers whose
// grammar permits skipping malformed children: Package, Class, Singleton,
// Mixin, Describe. Problems collected during parsing of this container's
// direct children live in Problems(); well-formed children are never
// duplicated there.
type Recoverable interface {
	Node
	Problems() []Problem
}
