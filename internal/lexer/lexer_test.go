package lexer

import (
	"testing"

	"lumen/internal/intern"
	"lumen/internal/source"
	"lumen/internal/token"
)

func lexText(t *testing.T, text string) ([]token.Token, *intern.Pool) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.code", []byte(text))
	pool := intern.NewPool(token.ReservedTable())
	toks, err := Lex(fs.Get(id), pool)
	if err != nil {
		t.Fatalf("Lex(%q) error: %v", text, err)
	}
	return toks, pool
}

func TestEmptyInputYieldsOnlyEOF(t *testing.T) {
	toks, _ := lexText(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("tokens = %+v, want single EOF", toks)
	}
}

func TestWhitespaceAndCommentsYieldOnlyEOF(t *testing.T) {
	toks, _ := lexText(t, "   \n\t // a comment\n  // another\n")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("tokens = %+v, want single EOF", toks)
	}
}

func TestIntegerLiterals(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
		u    uint64
		i    int64
	}{
		{"123", token.LitUInt, 123, 0},
		{"-45", token.LitInt, 0, -45},
		{"0x1A", token.LitUInt, 26, 0},
		{"0Xff", token.LitUInt, 255, 0},
		{"0b1010", token.LitUInt, 10, 0},
	}
	for _, c := range cases {
		toks, _ := lexText(t, c.text)
		if len(toks) != 2 || toks[0].Kind != c.kind {
			t.Fatalf("lex(%q) = %+v, want single %v token", c.text, toks, c.kind)
		}
		if c.kind == token.LitUInt && toks[0].UInt != c.u {
			t.Fatalf("lex(%q).UInt = %d, want %d", c.text, toks[0].UInt, c.u)
		}
		if c.kind == token.LitInt && toks[0].Int != c.i {
			t.Fatalf("lex(%q).Int = %d, want %d", c.text, toks[0].Int, c.i)
		}
	}
}

func TestInvalidNumberLiterals(t *testing.T) {
	for _, text := range []string{"0xG", "0b2"} {
		fs := source.NewFileSet()
		id := fs.AddVirtual("t.code", []byte(text))
		pool := intern.NewPool(token.ReservedTable())
		_, err := Lex(fs.Get(id), pool)
		if err == nil {
			t.Fatalf("lex(%q): expected error, got none", text)
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	toks, _ := lexText(t, "123.456")
	if toks[0].Kind != token.LitFloat || toks[0].Float != 123.456 {
		t.Fatalf("lex(123.456) = %+v", toks[0])
	}
	toks, _ = lexText(t, "-0.5")
	if toks[0].Kind != token.LitFloat || toks[0].Float != -0.5 {
		t.Fatalf("lex(-0.5) = %+v", toks[0])
	}
}

func TestTrailingDotFloatIsNotAFloat(t *testing.T) {
	// Trailing-dot floats (e.g. "3.") are unsupported.
	// "3." lexes as UInt(3) followed by a '.' punctuator, not a float.
	toks, _ := lexText(t, "3.")
	if toks[0].Kind != token.LitUInt || toks[0].UInt != 3 {
		t.Fatalf("lex(3.)[0] = %+v, want UInt(3)", toks[0])
	}
	if toks[1].Kind != token.Dot {
		t.Fatalf("lex(3.)[1] = %+v, want Dot", toks[1])
	}
}

func TestStringEscapes(t *testing.T) {
	// source text: "escaped \" \n \t \\"
	src := `"escaped \" \n \t \\"`
	toks, _ := lexText(t, src)
	want := "escaped \" \n \t \\"
	if toks[0].Kind != token.LitString || toks[0].Text != want {
		t.Fatalf("lex(%q) = %+v, want Text=%q", src, toks[0], want)
	}
}

func TestUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.code", []byte(`"abc`))
	pool := intern.NewPool(token.ReservedTable())
	_, err := Lex(fs.Get(id), pool)
	if err == nil {
		t.Fatalf("expected UnclosedString error")
	}
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks, pool := lexText(t, "let x")
	if toks[0].Kind != token.KwLet {
		t.Fatalf("toks[0] = %+v, want KwLet", toks[0])
	}
	if toks[1].Kind != token.Identifier {
		t.Fatalf("toks[1] = %+v, want Identifier", toks[1])
	}
	if pool.Text(toks[1].Symbol) != "x" {
		t.Fatalf("symbol text = %q, want x", pool.Text(toks[1].Symbol))
	}
}

func TestLetStatementTokenSequence(t *testing.T) {
	toks, _ := lexText(t, "let x = 5;")
	wantKinds := []token.Kind{token.KwLet, token.Identifier, token.Eq, token.LitUInt, token.Semicolon, token.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("toks[%d].Kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestPunctuatorLongestMatch(t *testing.T) {
	toks, _ := lexText(t, "<<= >> >>=")
	wantKinds := []token.Kind{token.ShlEq, token.Shr, token.ShrEq, token.EOF}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("toks[%d].Kind = %v, want %v (%+v)", i, toks[i].Kind, k, toks)
		}
	}
}

func TestMultilineLineColumnTracking(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.code", []byte("let x = 1;\nlet y = 2;\n"))
	pool := intern.NewPool(token.ReservedTable())
	toks, err := Lex(fs.Get(id), pool)
	if err != nil {
		t.Fatalf("Lex error: %v", err)
	}
	// toks[5] is the second "let" keyword, on line 2.
	second := toks[5]
	start, _ := fs.Resolve(second.Span)
	if start.Line != 2 {
		t.Fatalf("second let: line = %d, want 2 (%+v)", start.Line, second)
	}
}
