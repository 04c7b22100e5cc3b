package ast

// Field is a class/singleton/mixin-level variable. IsProperty is only
// meaningful when true and is otherwise ignored.
type Field struct {
	IsReadOnly bool
	IsProperty bool
	Name       string
	Value      Expression // nil when uninitialized
	SourceSpan Span
}

func (f *Field) Span() Span  { return f.SourceSpan }
func (*Field) memberNode()   {}

// NativeBody marks a method whose body is host-implemented, e.g.
// `method m() native`.
type NativeBody struct{}

func (NativeBody) isMethodBody() {}

// MethodBody is nil for an abstract method, a NativeBody{} value for a
// host-implemented one, or a *Body for a block/expression body.
type MethodBody interface {
	isMethodBody()
}

// Method declares a behavior. Name holds either an identifier or an
// operator symbol (e.g. "+", "==="). A method declared with `= expr`
// gets a synthetic one-sentence Body containing Return(expr) whose span
// equals the expression's own span (preserved verbatim from the source
// language).
type Method struct {
	IsOverride bool
	Name       string
	Parameters []*Parameter
	Body       MethodBody
	SourceSpan Span
}

func (m *Method) Span() Span { return m.SourceSpan }
func (*Method) memberNode()  {}

func (b *Body) isMethodBody() {}

// BaseCall is the `= self(...)` / `= super(...)` delegation clause of a
// constructor.
type BaseCall struct {
	CallsSuper bool
	Args       []Expression
}

// Constructor declares an instance-initialization routine. BaseCall is nil
// when no delegation clause was written. A missing body desugars to an
// empty Body spanning the constructor's own closing position.
type Constructor struct {
	Parameters []*Parameter
	BaseCall   *BaseCall
	Body       *Body
	SourceSpan Span
}

func (c *Constructor) Span() Span { return c.SourceSpan }
func (*Constructor) memberNode()  {}

// Fixture is a `fixture { ... }` setup block run before each test in its
// enclosing Describe.
type Fixture struct {
	Body       *Body
	SourceSpan Span
}

func (f *Fixture) Span() Span { return f.SourceSpan }
func (*Fixture) memberNode()  {}
