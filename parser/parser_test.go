package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PalumboN/wollok-parser/ast"
	"github.com/PalumboN/wollok-parser/lexer"
)

func newParser(src string) *Parser {
	return &Parser{file: "t.wlk", source: src, tokens: lexer.Tokenize("t.wlk", src)}
}

func parse(t *testing.T, src string) *ast.Package {
	t.Helper()
	pkg, err := ParseFile("t.wlk", src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	return pkg
}

// Scenario 1: method with expression body.
func TestMethodWithExpressionBody(t *testing.T) {
	pkg := parse(t, "class C { method m() = 1 + 2 }")
	class := pkg.Members[0].(*ast.Class)
	method := class.Members[0].(*ast.Method)
	if method.Name != "m" {
		t.Fatalf("got method name %q, want m", method.Name)
	}
	if len(method.Parameters) != 0 {
		t.Fatalf("got %d parameters, want 0", len(method.Parameters))
	}
	body := method.Body.(*ast.Body)
	if len(body.Sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(body.Sentences))
	}
	ret, ok := body.Sentences[0].(*ast.Return)
	if !ok {
		t.Fatalf("got %T, want *ast.Return", body.Sentences[0])
	}
	send := ret.Value.(*ast.Send)
	if send.Message != "+" {
		t.Errorf("got message %q, want +", send.Message)
	}
	if got := send.Receiver.(*ast.Literal).Value; got != 1.0 {
		t.Errorf("got receiver %v, want 1.0", got)
	}
	if got := send.Args[0].(*ast.Literal).Value; got != 2.0 {
		t.Errorf("got arg %v, want 2.0", got)
	}
	// The synthesized Return's span coincides with the expression's span.
	if ret.SourceSpan != send.SourceSpan {
		t.Errorf("Return span %v != expression span %v", ret.SourceSpan, send.SourceSpan)
	}
}

// Scenario 2: closure as argument.
func TestClosureAsArgument(t *testing.T) {
	p := newParser("xs.map { x => x * 2 }")
	expr := p.parseExpression()

	send := expr.(*ast.Send)
	if send.Message != "map" {
		t.Fatalf("got message %q, want map", send.Message)
	}
	if len(send.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(send.Args))
	}
	lit := send.Args[0].(*ast.Literal)
	singleton := lit.Value.(*ast.Singleton)
	if !singleton.IsClosure {
		t.Fatalf("expected closure singleton")
	}
	apply := singleton.Members[0].(*ast.Method)
	if len(apply.Parameters) != 1 || apply.Parameters[0].Name != "x" {
		t.Fatalf("got parameters %+v, want [x]", apply.Parameters)
	}
	body := apply.Body.(*ast.Body)
	inner := body.Sentences[0].(*ast.ExpressionStatement).Expr.(*ast.Send)
	if inner.Message != "*" {
		t.Errorf("got inner message %q, want *", inner.Message)
	}
}

// Scenario 3: anonymous singleton via `new ... with`.
func TestAnonymousSingletonViaNew(t *testing.T) {
	p := newParser("new A(1) with M1 with M2")
	expr := p.parseExpression()

	lit := expr.(*ast.Literal)
	singleton := lit.Value.(*ast.Singleton)
	if singleton.Name != nil {
		t.Fatalf("got name %v, want nil", singleton.Name)
	}
	if singleton.SuperclassRef.Name != "A" {
		t.Errorf("got superclass %q, want A", singleton.SuperclassRef.Name)
	}
	if len(singleton.SupercallArgs) != 1 {
		t.Fatalf("got %d supercall args, want 1", len(singleton.SupercallArgs))
	}
	if len(singleton.Mixins) != 2 || singleton.Mixins[0].Name != "M2" || singleton.Mixins[1].Name != "M1" {
		t.Fatalf("got mixins %+v, want [M2, M1]", singleton.Mixins)
	}
	if len(singleton.Members) != 0 {
		t.Errorf("got %d members, want 0", len(singleton.Members))
	}
}

// Scenario 4: list literal desugaring.
func TestListLiteralDesugaring(t *testing.T) {
	p := newParser("[1, 2, 3]")
	expr := p.parseExpression()

	n := expr.(*ast.New)
	if n.Instantiated.Name != "wollok.lang.List" {
		t.Errorf("got instantiated %q, want wollok.lang.List", n.Instantiated.Name)
	}
	if len(n.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(n.Args))
	}
}

// Scenario 5: operator precedence.
func TestOperatorPrecedence(t *testing.T) {
	p := newParser("1 + 2 * 3 ** 4 == 5")
	expr := p.parseExpression()

	eq := expr.(*ast.Send)
	if eq.Message != "==" {
		t.Fatalf("got top message %q, want ==", eq.Message)
	}
	plus := eq.Receiver.(*ast.Send)
	if plus.Message != "+" {
		t.Fatalf("got %q, want +", plus.Message)
	}
	times := plus.Args[0].(*ast.Send)
	if times.Message != "*" {
		t.Fatalf("got %q, want *", times.Message)
	}
	pow := times.Args[0].(*ast.Send)
	if pow.Message != "**" {
		t.Fatalf("got %q, want **", pow.Message)
	}
}

// Scenario 6: error recovery at entity level.
func TestErrorRecoveryAtEntityLevel(t *testing.T) {
	pkg := parse(t, "class A {} @bogus class B {}")
	if len(pkg.Members) != 2 {
		t.Fatalf("got %d members, want 2", len(pkg.Members))
	}
	if pkg.Members[0].(*ast.Class).Name != "A" || pkg.Members[1].(*ast.Class).Name != "B" {
		t.Fatalf("got members %+v", pkg.Members)
	}
	if len(pkg.ProblemsList) != 1 || pkg.ProblemsList[0].Code != ast.MalformedEntity {
		t.Fatalf("got problems %+v, want one malformedEntity", pkg.ProblemsList)
	}
}

func TestMixinReversal(t *testing.T) {
	pkg := parse(t, "class C mixed with A and B and C2 { }")
	class := pkg.Members[0].(*ast.Class)
	var names []string
	for _, m := range class.Mixins {
		names = append(names, m.Name)
	}
	want := []string{"C2", "B", "A"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("mixins mismatch (-want +got):\n%s", diff)
	}
}

func TestCompoundAssignmentDesugaring(t *testing.T) {
	p := newParser("x += 1")
	sentence := p.parseSentence()

	assign := sentence.(*ast.Assignment)
	send := assign.Value.(*ast.Send)
	if send.Message != "+" {
		t.Errorf("got message %q, want +", send.Message)
	}
	if send.Receiver != ast.Expression(assign.Target) {
		t.Errorf("expected Send.Receiver to alias Assignment.Target")
	}
}

func TestLazyOperatorThunking(t *testing.T) {
	p := newParser("x || y")
	expr := p.parseExpression()

	send := expr.(*ast.Send)
	if len(send.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(send.Args))
	}
	lit := send.Args[0].(*ast.Literal)
	singleton := lit.Value.(*ast.Singleton)
	apply := singleton.Members[0].(*ast.Method)
	if len(apply.Parameters) != 0 {
		t.Errorf("got %d parameters, want 0 (zero-parameter closure)", len(apply.Parameters))
	}
	body := apply.Body.(*ast.Body)
	if len(body.Sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(body.Sentences))
	}
}

func TestRecoveryPreservesSiblings(t *testing.T) {
	pkg := parse(t, "class C { method ok(){} garbage method ok2(){} }")
	class := pkg.Members[0].(*ast.Class)
	var names []string
	for _, m := range class.Members {
		names = append(names, m.(*ast.Method).Name)
	}
	want := []string{"ok", "ok2"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	if len(class.ProblemsList) != 1 || class.ProblemsList[0].Code != ast.MalformedMember {
		t.Fatalf("got problems %+v, want one malformedMember", class.ProblemsList)
	}
}

func TestMethodOperatorNameLongestMatch(t *testing.T) {
	pkg := parse(t, "class C { method === (x) { } }")
	class := pkg.Members[0].(*ast.Class)
	method := class.Members[0].(*ast.Method)
	if method.Name != "===" {
		t.Errorf("got method name %q, want ===", method.Name)
	}
}

func TestSpanWellFormedness(t *testing.T) {
	pkg := parse(t, "class C { var x = 1 + 2 method m() { return x } }")
	var walk func(sp ast.Span)
	walk = func(sp ast.Span) {
		if sp.Start.Offset > sp.End.Offset {
			t.Errorf("malformed span %v", sp)
		}
	}
	walk(pkg.SourceSpan)
	class := pkg.Members[0].(*ast.Class)
	walk(class.SourceSpan)
	for _, m := range class.Members {
		walk(m.Span())
	}
}
