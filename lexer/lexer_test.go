package lexer

import "testing"

func values(toks []Token) []string {
	var vals []string
	for _, t := range toks {
		if t.Type == EOF {
			break
		}
		vals = append(vals, t.Value)
	}
	return vals
}

func TestTokenizeIdentifiersAndKeywords(t *testing.T) {
	toks := Tokenize("t.wlk", "class var self")
	vals := values(toks)
	want := []string{"class", "var", "self"}
	if len(vals) != len(want) {
		t.Fatalf("got %v, want %v", vals, want)
	}
	for i, v := range want {
		if vals[i] != v {
			t.Errorf("token %d: got %q, want %q", i, vals[i], v)
		}
		if toks[i].Type != Ident {
			t.Errorf("token %d: got type %s, want IDENT", i, toks[i].Type)
		}
	}
}

func TestTokenizeNumber(t *testing.T) {
	toks := Tokenize("t.wlk", "42 3.14")
	if toks[0].Type != Number || toks[0].Value != "42" {
		t.Errorf("got %+v, want NUMBER 42", toks[0])
	}
	if toks[1].Type != Number || toks[1].Value != "3.14" {
		t.Errorf("got %+v, want NUMBER 3.14", toks[1])
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := Tokenize("t.wlk", `"a\nb\tc\"dA"`)
	if toks[0].Type != String {
		t.Fatalf("got type %s, want STRING", toks[0].Type)
	}
	want := "a\nb\tc\"dA"
	if toks[0].Value != want {
		t.Errorf("got %q, want %q", toks[0].Value, want)
	}
}

func TestTokenizeOperatorLongestMatch(t *testing.T) {
	toks := Tokenize("t.wlk", "a === b == c = d")
	ops := []string{"===", "==", "="}
	var got []string
	for _, tok := range toks {
		if tok.Type == Op {
			got = append(got, tok.Value)
		}
	}
	if len(got) != len(ops) {
		t.Fatalf("got %v, want %v", got, ops)
	}
	for i, o := range ops {
		if got[i] != o {
			t.Errorf("operator %d: got %q, want %q", i, got[i], o)
		}
	}
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks := Tokenize("t.wlk", "a // comment\nb /* block */ c")
	vals := values(toks)
	want := []string{"a", "b", "c"}
	if len(vals) != len(want) {
		t.Fatalf("got %v, want %v", vals, want)
	}
}

func TestSpanOffsetsAreByteBased(t *testing.T) {
	toks := Tokenize("t.wlk", "ñ x")
	// "ñ" is 2 bytes in UTF-8, so x's offset should be 3 (2 bytes + 1 space).
	if toks[1].Value != "x" {
		t.Fatalf("got %+v", toks[1])
	}
	if toks[1].Span.Start.Offset != 3 {
		t.Errorf("got offset %d, want 3", toks[1].Span.Start.Offset)
	}
	if toks[1].Span.Start.Column != 3 {
		t.Errorf("got column %d, want 3 (rune-counted)", toks[1].Span.Start.Column)
	}
}
