package ast

// Package is the root node produced by parsing a single file. Its Name is
// the file's basename with the first extension component stripped.
type Package struct {
	Name       string
	Imports    []*Import
	Members    []Entity
	ProblemsList []Problem
	SourceSpan Span
}

func (p *Package) Span() Span        { return p.SourceSpan }
func (p *Package) Problems() []Problem { return p.ProblemsList }
func (*Package) entityNode()         {}

// Import is a single `import` declaration. Reference is a dotted name
// (e.g. "a.b.c"), stored as a single Reference node.
type Import struct {
	Reference  *Reference
	IsGeneric  bool // true when the import ends in ".*"
	SourceSpan Span
}

func (i *Import) Span() Span { return i.SourceSpan }
func (*Import) entityNode()  {}

// Class declares a named class with an optional superclass and an ordered
// list of mixins. Mixins is stored in the reverse of surface-syntax order:
// `class C mixed with A and B` yields Mixins == [B, A].
type Class struct {
	Name          string
	SuperclassRef *Reference
	Mixins        []*Reference
	Members       []Member
	ProblemsList  []Problem
	SourceSpan    Span
}

func (c *Class) Span() Span          { return c.SourceSpan }
func (c *Class) Problems() []Problem { return c.ProblemsList }
func (*Class) entityNode()           {}

// Singleton is either a named top-level `object` declaration or an
// anonymous object literal (Name == nil), including the desugared form of
// `new X(...) with M` and closure literals (see ast.Literal).
type Singleton struct {
	Name          *string
	SuperclassRef *Reference
	SupercallArgs []Expression
	Mixins        []*Reference
	Members       []Member
	ProblemsList  []Problem
	SourceSpan    Span

	// IsClosure and Code are populated only when this Singleton was
	// produced by desugaring a closure literal `{ params => sentences }`;
	// Code holds the verbatim source substring between the braces,
	// captured at parse time because node construction has no other
	// access to the original input buffer.
	IsClosure bool
	Code      string
}

func (s *Singleton) Span() Span          { return s.SourceSpan }
func (s *Singleton) Problems() []Problem { return s.ProblemsList }
func (*Singleton) entityNode()           {}

// Mixin declares a reusable set of members, itself composable from other
// mixins (reverse surface order, as with Class.Mixins).
type Mixin struct {
	Name         string
	Mixins       []*Reference
	Members      []Member
	ProblemsList []Problem
	SourceSpan   Span
}

func (m *Mixin) Span() Span          { return m.SourceSpan }
func (m *Mixin) Problems() []Problem { return m.ProblemsList }
func (*Mixin) entityNode()           {}

// Program is a named entry-point block: `program main { ... }`.
type Program struct {
	Name       string
	Body       *Body
	SourceSpan Span
}

func (p *Program) Span() Span { return p.SourceSpan }
func (*Program) entityNode()  {}

// Describe is a test-suite container. Name retains its surrounding quotes.
type Describe struct {
	Name         string
	Members      []Member
	ProblemsList []Problem
	SourceSpan   Span
}

func (d *Describe) Span() Span          { return d.SourceSpan }
func (d *Describe) Problems() []Problem { return d.ProblemsList }
func (*Describe) entityNode()           {}

// Test is a single test declaration. Name retains its surrounding quotes.
// It is a Member when declared inside a Describe, and also satisfies
// Entity because a `test` at top level or directly inside a package is
// parsed as an entity of its own.
type Test struct {
	IsOnly     bool
	Name       string
	Body       *Body
	SourceSpan Span
}

func (t *Test) Span() Span { return t.SourceSpan }
func (*Test) entityNode()  {}
func (*Test) memberNode()  {}

// Variable is shared between the top-level (Entity) and local (Sentence)
// grammar positions — both surface forms have identical shape, so a single
// node type satisfies both interfaces.
type Variable struct {
	IsReadOnly bool
	Name       string
	Value      Expression // nil when uninitialized
	SourceSpan Span
}

func (v *Variable) Span() Span    { return v.SourceSpan }
func (*Variable) entityNode()     {}
func (*Variable) sentenceNode()   {}
