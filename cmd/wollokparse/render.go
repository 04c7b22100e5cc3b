package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/PalumboN/wollok-parser/ast"
)

func writeJSON(w io.Writer, pkg *ast.Package) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pkg)
}

// writeCBOR produces a deterministic CBOR encoding of the package — a
// compact binary alternative to the "tree"/"json" text formats, useful
// for feeding the AST to another tool without a JSON parse step.
func writeCBOR(w io.Writer, pkg *ast.Package) error {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("creating CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(pkg)
	if err != nil {
		return fmt.Errorf("CBOR encoding: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// recoveryKeywords are the entity/member keywords a malformed construct
// is most likely to have meant, used to power the "did you mean" hint
// attached to a recoverable problem.
var recoveryKeywords = []string{
	"package", "class", "object", "mixin", "program", "describe", "test",
	"var", "const", "method", "constructor", "fixture", "override",
}

// closestKeyword finds the recovery keyword nearest to word, or "" if
// word doesn't resemble any of them closely enough to be worth a hint.
func closestKeyword(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	best, bestDistance := "", -1
	for _, kw := range recoveryKeywords {
		if d := fuzzy.LevenshteinDistance(lower, kw); bestDistance < 0 || d < bestDistance {
			best, bestDistance = kw, d
		}
	}
	if bestDistance > len(best)/2 {
		return ""
	}
	return best
}

// firstWord extracts the first identifier-like run from a problem's
// skipped source region, for use as the fuzzy-match target — skipping
// any leading punctuation like the "@" in a stray "@bogus".
func firstWord(text string) string {
	isIdent := func(r rune) bool {
		return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
	}
	start := strings.IndexFunc(text, isIdent)
	if start < 0 {
		return ""
	}
	rest := text[start:]
	end := strings.IndexFunc(rest, func(r rune) bool { return !isIdent(r) })
	if end < 0 {
		return rest
	}
	return rest[:end]
}

// printTree renders a human-readable indented dump of the package. It is a
// plain type switch over the closed AST family rather than a generic
// reflection walk, matching how the tree itself is represented.
func printTree(w io.Writer, pkg *ast.Package) {
	fmt.Fprintf(w, "Package %s\n", pkg.Name)
	for _, imp := range pkg.Imports {
		fmt.Fprintf(w, "  import %s\n", imp.Reference.Name)
	}
	for _, e := range pkg.Members {
		printEntity(w, e, 1)
	}
}

func indent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
}

func printEntity(w io.Writer, e ast.Entity, depth int) {
	indent(w, depth)
	switch n := e.(type) {
	case *ast.Package:
		fmt.Fprintf(w, "package %s\n", n.Name)
		for _, m := range n.Members {
			printEntity(w, m, depth+1)
		}
	case *ast.Class:
		fmt.Fprintf(w, "class %s\n", n.Name)
		for _, m := range n.Members {
			printMember(w, m, depth+1)
		}
	case *ast.Singleton:
		name := "<anonymous>"
		if n.Name != nil {
			name = *n.Name
		}
		fmt.Fprintf(w, "object %s\n", name)
		for _, m := range n.Members {
			printMember(w, m, depth+1)
		}
	case *ast.Mixin:
		fmt.Fprintf(w, "mixin %s\n", n.Name)
		for _, m := range n.Members {
			printMember(w, m, depth+1)
		}
	case *ast.Program:
		fmt.Fprintf(w, "program %s\n", n.Name)
	case *ast.Describe:
		fmt.Fprintf(w, "describe %s\n", n.Name)
		for _, m := range n.Members {
			printMember(w, m, depth+1)
		}
	case *ast.Test:
		fmt.Fprintf(w, "test %s\n", n.Name)
	case *ast.Variable:
		fmt.Fprintf(w, "var %s\n", n.Name)
	default:
		fmt.Fprintf(w, "%T\n", n)
	}
}

// codeSnippet renders a problem's location in Rust/Clang style: a
// "--> line:column" pointer, the offending source line, and a caret under
// the column where the problem starts.
func codeSnippet(source string, p ast.Problem) string {
	lines := strings.Split(source, "\n")
	line := p.Source.Start.Line
	if line < 1 || line > len(lines) {
		return ""
	}
	lineContent := lines[line-1]
	column := p.Source.Start.Column

	var b strings.Builder
	fmt.Fprintf(&b, "  --> %d:%d\n", line, column)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", line, lineContent)
	b.WriteString("   | ")
	if column > 0 && column <= len(lineContent)+1 {
		b.WriteString(strings.Repeat(" ", column-1) + "^")
	}
	return b.String()
}

func printMember(w io.Writer, m ast.Member, depth int) {
	indent(w, depth)
	switch n := m.(type) {
	case *ast.Field:
		fmt.Fprintf(w, "field %s\n", n.Name)
	case *ast.Method:
		fmt.Fprintf(w, "method %s\n", n.Name)
	case *ast.Constructor:
		fmt.Fprintln(w, "constructor")
	case *ast.Fixture:
		fmt.Fprintln(w, "fixture")
	case *ast.Test:
		fmt.Fprintf(w, "test %s\n", n.Name)
	default:
		fmt.Fprintf(w, "%T\n", n)
	}
}
