package lexer

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func lexAll(t *testing.T, src string) ([]Token, error) {
	t.Helper()

	f, err := os.CreateTemp("", "xc-lex-*.x")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	r, err := NewReader(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	l := NewLexer(r, NewSymbolTable())

	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind() == EOF {
			return toks, nil
		}
	}
}

func kinds(toks []Token) string {
	var parts []string
	for _, t := range toks {
		parts = append(parts, t.Kind().String())
	}
	return strings.Join(parts, " ")
}

func TestBasicTokenLexing(t *testing.T) {
	toks, err := lexAll(t, "program { int x x = 3 }")
	if err != nil {
		t.Fatal(err)
	}

	want := "Program LeftBrace Int Identifier Identifier Assign INTeger RightBrace EOF"
	if got := kinds(toks); got != want {
		t.Errorf("Unexpected token kinds:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestLineComment(t *testing.T) {
	toks, err := lexAll(t, "program { // a comment\n int x\n}")
	if err != nil {
		t.Fatal(err)
	}

	want := "Program LeftBrace Int Identifier RightBrace EOF"
	if got := kinds(toks); got != want {
		t.Errorf("Unexpected token kinds:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestTwoCharOperatorAmbiguity(t *testing.T) {
	toks, err := lexAll(t, "<= < =")
	if err != nil {
		t.Fatal(err)
	}

	want := "LessEqual Less Assign EOF"
	if got := kinds(toks); got != want {
		t.Errorf("Unexpected token kinds:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestNumberLiteral(t *testing.T) {
	toks, err := lexAll(t, "07.5")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Kind() != NumberLit || toks[0].Lexeme() != "07.5" {
		t.Errorf("Unexpected result: %v", toks)
	}
}

func TestDateLiteralEdges(t *testing.T) {
	cases := []struct {
		src   string
		valid bool
	}{
		{"12~31~2024", true},
		{"13~01~2024", false},
		{"12~31~24", true},
		{"12~31~2", false},
	}

	for _, c := range cases {
		toks, err := lexAll(t, c.src)
		if c.valid {
			if err != nil {
				t.Errorf("%s: expected accept, got error: %v", c.src, err)
			} else if toks[0].Kind() != DateLit || toks[0].Lexeme() != c.src {
				t.Errorf("%s: unexpected token: %v", c.src, toks[0])
			}
		} else if err == nil {
			t.Errorf("%s: expected rejection, got tokens: %v", c.src, toks)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	if _, err := lexAll(t, "x = @"); err == nil {
		t.Error("Expected an illegal character error")
	}
}

func TestTokenEquals(t *testing.T) {
	toks, err := lexAll(t, "x = 3")
	if err != nil {
		t.Fatal(err)
	}

	a, b := toks[0], toks[0]
	if ok, msg := a.Equals(b, false); !ok {
		t.Errorf("Expected a token to equal itself, got: %s", msg)
	}

	moved := b
	moved.Left, moved.Right = b.Left+5, b.Right+5
	if ok, _ := a.Equals(moved, false); ok {
		t.Error("Expected tokens at different columns to compare unequal")
	}
	if ok, msg := a.Equals(moved, true); !ok {
		t.Errorf("Expected tokens at different columns to compare equal when ignorePosition is true, got: %s", msg)
	}

	other := toks[2] // the INTeger token
	if ok, _ := a.Equals(other, true); ok {
		t.Error("Expected tokens of different kind/lexeme to compare unequal")
	}
}

func TestLexerRoundTrip(t *testing.T) {
	src := "program { int x x = 3 }"

	toks, err := lexAll(t, src)
	if err != nil {
		t.Fatal(err)
	}

	var parts []string
	for _, tok := range toks {
		if tok.Kind() == EOF {
			break
		}
		parts = append(parts, tok.Lexeme())
	}
	rebuilt := strings.Join(parts, " ")

	retoks, err := lexAll(t, rebuilt)
	if err != nil {
		t.Fatal(err)
	}

	if fmt.Sprint(kinds(toks)) != fmt.Sprint(kinds(retoks)) {
		t.Errorf("Round trip produced a different token sequence:\n  %v\nvs\n  %v", toks, retoks)
	}
}
