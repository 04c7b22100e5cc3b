package ast

// Self is the `self` primary expression.
type Self struct {
	SourceSpan Span
}

func (s *Self) Span() Span     { return s.SourceSpan }
func (*Self) expressionNode()  {}

// Super is the `super(args)` primary expression (a delegated call to the
// overridden method on the superclass, not to be confused with
// Constructor.BaseCall).
type Super struct {
	Args       []Expression
	SourceSpan Span
}

func (s *Super) Span() Span    { return s.SourceSpan }
func (*Super) expressionNode() {}

// Reference names a variable, parameter, class, or any other declared
// identifier. FullyQualifiedReference is represented the same way, with
// Name holding the dot-joined path (e.g. "wollok.lang.List").
type Reference struct {
	Name       string
	SourceSpan Span
}

func (r *Reference) Span() Span    { return r.SourceSpan }
func (*Reference) expressionNode() {}

// New is `new Ref(args)`. The `new Ref(args) with M1 with M2` surface form
// does not produce a New node: it desugars directly to a Literal wrapping
// an anonymous Singleton.
type New struct {
	Instantiated *Reference
	Args         []Expression
	SourceSpan   Span
}

func (n *New) Span() Span     { return n.SourceSpan }
func (*New) expressionNode()  {}

// If is `if (cond) then [else else]`; Then and Else are always populated
// as Body nodes even when the surface syntax supplied a single inlined
// sentence instead of a brace block.
type If struct {
	Condition  Expression
	Then       *Body
	Else       *Body // nil when no else clause was written
	SourceSpan Span
}

func (i *If) Span() Span    { return i.SourceSpan }
func (*If) expressionNode() {}

// Throw is `throw expr`.
type Throw struct {
	Exception  Expression
	SourceSpan Span
}

func (t *Throw) Span() Span    { return t.SourceSpan }
func (*Throw) expressionNode() {}

// Catch binds a caught exception to Parameter, optionally constrained to
// ParameterType, running Body on match.
type Catch struct {
	Parameter     *Parameter
	ParameterType *Reference // nil when untyped
	Body          *Body
	SourceSpan    Span
}

func (c *Catch) Span() Span    { return c.SourceSpan }
func (*Catch) expressionNode() {}

// Try is `try body (catch)* [then always body]`.
type Try struct {
	Body       *Body
	Catches    []*Catch
	Always     *Body // nil when no `then always` clause was written
	SourceSpan Span
}

func (t *Try) Span() Span    { return t.SourceSpan }
func (*Try) expressionNode() {}

// Literal wraps a scalar or object value. Value holds one of: nil (the
// `null` literal), bool, float64, string, or *Singleton (an anonymous
// singleton literal, a closure literal desugared to one, or the
// `new X(...) with M` desugared form). List and set literal syntax never
// reaches this node — both desugar straight to New.
type Literal struct {
	Value      any
	SourceSpan Span
}

func (l *Literal) Span() Span    { return l.SourceSpan }
func (*Literal) expressionNode() {}

// Send is a message-send expression `receiver.message(args)`. It is also
// the canonical form of every operator application — prefix, infix, and
// compound-assignment desugaring all bottom out in a Send.
type Send struct {
	Receiver   Expression
	Message    string
	Args       []Expression
	SourceSpan Span
}

func (s *Send) Span() Span    { return s.SourceSpan }
func (*Send) expressionNode() {}

// Body is an ordered list of sentences; it serves as the body of methods,
// closures, if/try branches, constructors and fixtures alike.
type Body struct {
	Sentences  []Sentence
	SourceSpan Span
}

func (b *Body) Span() Span    { return b.SourceSpan }
func (*Body) expressionNode() {}

// Parameter is a single entry in a parameter list. IsVarArg marks the
// trailing `name...` rest-parameter form.
type Parameter struct {
	Name       string
	IsVarArg   bool
	SourceSpan Span
}

func (p *Parameter) Span() Span    { return p.SourceSpan }
func (*Parameter) expressionNode() {}

// NamedArgument is `name = value` inside a named-argument list. It
// satisfies Expression so it can sit alongside plain positional
// expressions in an Args slice without a separate union type.
type NamedArgument struct {
	Name       string
	Value      Expression
	SourceSpan Span
}

func (n *NamedArgument) Span() Span    { return n.SourceSpan }
func (*NamedArgument) expressionNode() {}
