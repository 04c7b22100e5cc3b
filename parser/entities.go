package parser

import (
	"github.com/PalumboN/wollok-parser/ast"
	"github.com/PalumboN/wollok-parser/lexer"
)

// parseFile is the top-level production: a Package whose name is derived
// from the originating file name, holding an import list followed by an
// arbitrary mix of entities. There are no enclosing braces.
func (p *Parser) parseFile() *ast.Package {
	start := p.here()
	name := packageName(p.file)

	var imports []*ast.Import
	var members []ast.Entity
	var problems []ast.Problem
	for !p.isAtEnd() {
		if p.is("import") {
			imports = append(imports, p.parseImport())
			continue
		}
		entity := p.parseEntity()
		if entity != nil {
			members = append(members, entity)
			continue
		}
		problems = append(problems, p.recoverEntity())
	}

	return &ast.Package{
		Name:         name,
		Imports:      imports,
		Members:      members,
		ProblemsList: problems,
		SourceSpan:   p.spanFrom(start),
	}
}

func (p *Parser) parseImport() *ast.Import {
	start := p.here()
	p.expect("import")
	ref := p.parseQualifiedReference()
	isGeneric := false
	if p.is(".") && p.peek().Is("*") {
		p.advance()
		p.advance()
		isGeneric = true
	}
	return &ast.Import{Reference: ref, IsGeneric: isGeneric, SourceSpan: p.spanFrom(start)}
}

// parseEntity dispatches on the keyword at the cursor, trying every
// entity alternative in turn; it returns nil when none matches so the
// caller can fall back to recoverEntity.
func (p *Parser) parseEntity() ast.Entity {
	switch {
	case p.is("package"):
		return p.parsePackage()
	case p.is("class"):
		return p.parseClass()
	case p.is("object"):
		return p.parseObject()
	case p.is("mixin"):
		return p.parseMixin()
	case p.is("program"):
		return p.parseProgram()
	case p.is("describe"):
		return p.parseDescribe()
	case p.is("test") || p.is("only"):
		return p.parseTest()
	case p.is("var") || p.is("const"):
		return p.parseTopLevelVariable()
	default:
		return nil
	}
}

func (p *Parser) parseTopLevelVariable() ast.Entity {
	return p.parseLocalVariable().(*ast.Variable)
}

func (p *Parser) parsePackage() *ast.Package {
	start := p.here()
	p.expect("package")
	name := p.parseName()
	p.expect("{")

	var imports []*ast.Import
	var members []ast.Entity
	var problems []ast.Problem
	for !p.is("}") && !p.isAtEnd() {
		if p.is("import") {
			imports = append(imports, p.parseImport())
			continue
		}
		entity := p.parseEntity()
		if entity != nil {
			members = append(members, entity)
			continue
		}
		problems = append(problems, p.recoverEntity())
	}
	p.expect("}")

	return &ast.Package{
		Name:         name,
		Imports:      imports,
		Members:      members,
		ProblemsList: problems,
		SourceSpan:   p.spanFrom(start),
	}
}

// parseMixinsClause parses the optional `mixed with REF (and REF)*`
// clause shared by class/object/mixin declarations, returning the
// references in reverse surface order.
func (p *Parser) parseMixinsClause() []*ast.Reference {
	if !p.accept("mixed") {
		return nil
	}
	p.expect("with")
	var refs []*ast.Reference
	refs = append(refs, p.parseQualifiedReference())
	for p.accept("and") {
		refs = append(refs, p.parseQualifiedReference())
	}
	reverseRefs(refs)
	return refs
}

func (p *Parser) parseClass() *ast.Class {
	start := p.here()
	p.expect("class")
	name := p.parseName()

	var superclass *ast.Reference
	if p.accept("inherits") {
		superclass = p.parseQualifiedReference()
	}
	mixins := p.parseMixinsClause()

	members, problems := p.parseClassBody()
	return &ast.Class{
		Name:          name,
		SuperclassRef: superclass,
		Mixins:        mixins,
		Members:       members,
		ProblemsList:  problems,
		SourceSpan:    p.spanFrom(start),
	}
}

func (p *Parser) parseClassBody() ([]ast.Member, []ast.Problem) {
	p.expect("{")
	var members []ast.Member
	var problems []ast.Problem
	for !p.is("}") && !p.isAtEnd() {
		m := p.parseClassMember()
		if m != nil {
			members = append(members, m)
			continue
		}
		problems = append(problems, p.recoverMember(classMemberSafewords))
	}
	p.expect("}")
	return members, problems
}

// parseObject parses a named `object N [inherits REF(args)] [mixed with
// …] { members }` or an anonymous `object [inherits …] { members }`
// declaration (Name left nil).
func (p *Parser) parseObject() *ast.Singleton {
	start := p.here()
	p.expect("object")

	var name *string
	if p.isIdent() && !p.is("inherits") && !p.is("mixed") {
		n := p.parseName()
		name = &n
	}

	var superclass *ast.Reference
	var supercallArgs []ast.Expression
	if p.accept("inherits") {
		superclass = p.parseQualifiedReference()
		if p.is("(") {
			supercallArgs = p.parseArguments()
		}
	}
	mixins := p.parseMixinsClause()

	members, problems := p.parseGeneralBody()
	return &ast.Singleton{
		Name:          name,
		SuperclassRef: superclass,
		SupercallArgs: supercallArgs,
		Mixins:        mixins,
		Members:       members,
		ProblemsList:  problems,
		SourceSpan:    p.spanFrom(start),
	}
}

func (p *Parser) parseGeneralBody() ([]ast.Member, []ast.Problem) {
	p.expect("{")
	var members []ast.Member
	var problems []ast.Problem
	for !p.is("}") && !p.isAtEnd() {
		m := p.parseGeneralMember()
		if m != nil {
			members = append(members, m)
			continue
		}
		problems = append(problems, p.recoverMember(generalMemberSafewords))
	}
	p.expect("}")
	return members, problems
}

func (p *Parser) parseMixin() *ast.Mixin {
	start := p.here()
	p.expect("mixin")
	name := p.parseName()
	mixins := p.parseMixinsClause()
	members, problems := p.parseGeneralBody()
	return &ast.Mixin{
		Name:         name,
		Mixins:       mixins,
		Members:      members,
		ProblemsList: problems,
		SourceSpan:   p.spanFrom(start),
	}
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.here()
	p.expect("program")
	name := p.parseName()
	body := p.parseBracedBody()
	return &ast.Program{Name: name, Body: body, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseDescribe() *ast.Describe {
	start := p.here()
	p.expect("describe")
	name := p.parseQuotedNameRaw()
	members, problems := p.parseGeneralBody()
	return &ast.Describe{Name: name, Members: members, ProblemsList: problems, SourceSpan: p.spanFrom(start)}
}

func (p *Parser) parseTest() *ast.Test {
	start := p.here()
	isOnly := p.accept("only")
	p.expect("test")
	name := p.parseQuotedNameRaw()
	body := p.parseBracedBody()
	return &ast.Test{IsOnly: isOnly, Name: name, Body: body, SourceSpan: p.spanFrom(start)}
}

// parseQuotedNameRaw consumes a string-literal token and returns its
// verbatim source text, quotes included, per the describe/test naming
// rule that the surrounding quotes are retained rather than stripped.
func (p *Parser) parseQuotedNameRaw() string {
	tok := p.current()
	if tok.Type != lexer.String {
		return ""
	}
	raw := p.source[tok.Span.Start.Offset:tok.Span.End.Offset]
	p.advance()
	return raw
}
