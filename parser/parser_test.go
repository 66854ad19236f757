package parser

import (
	"os"
	"testing"

	"devt.de/xtc/xc/ast"
	"devt.de/xtc/xc/lexer"
)

func parseSrc(t *testing.T, src string) (*ast.Node, error) {
	t.Helper()

	f, err := os.CreateTemp("", "xc-parse-*.x")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	p, err := NewParser(f.Name())
	if err != nil {
		t.Fatal(err)
	}

	return p.Parse()
}

func tok(kind lexer.TokenKind, lexeme string) lexer.Token {
	return lexer.Token{Symbol: &lexer.Symbol{Lexeme: lexeme, Kind: kind}}
}

func idNode(name string) *ast.Node   { return ast.NewLeaf(ast.Id, tok(lexer.Identifier, name)) }
func intLit(lex string) *ast.Node    { return ast.NewLeaf(ast.IntLit, tok(lexer.INTeger, lex)) }
func numberLit(lex string) *ast.Node { return ast.NewLeaf(ast.NumberLit, tok(lexer.NumberLit, lex)) }
func dateLit(lex string) *ast.Node   { return ast.NewLeaf(ast.DateLit, tok(lexer.DateLit, lex)) }

func addOp(lexeme string, kind lexer.TokenKind, l, r *ast.Node) *ast.Node {
	return ast.NewOp(ast.AddOp, tok(kind, lexeme), l, r)
}
func relOp(lexeme string, kind lexer.TokenKind, l, r *ast.Node) *ast.Node {
	return ast.NewOp(ast.RelOp, tok(kind, lexeme), l, r)
}

func checkTree(t *testing.T, got, want *ast.Node) {
	t.Helper()
	// want is built from synthetic tokens carrying no real position, so the
	// comparison ignores position and checks shape/lexemes only.
	if ok, msg := want.Equals(got, true); !ok {
		t.Errorf("tree mismatch: %s\n  got:\n%s\n  want:\n%s", msg, got, want)
	}
}

func TestScenarioAssignment(t *testing.T) {
	got, err := parseSrc(t, "program { int x x = 3 }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Decl, ast.NewInner(ast.IntType), idNode("x")),
			ast.NewInner(ast.Assign, idNode("x"), intLit("3")),
		),
	)

	checkTree(t, got, want)
}

func TestScenarioIfElse(t *testing.T) {
	got, err := parseSrc(t, "program { boolean y if y then { return 1 } else { return 0 } }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Decl, ast.NewInner(ast.BoolType), idNode("y")),
			ast.NewInner(ast.If,
				idNode("y"),
				ast.NewInner(ast.Block, ast.NewInner(ast.Return, intLit("1"))),
				ast.NewInner(ast.Block, ast.NewInner(ast.Return, intLit("0"))),
			),
		),
	)

	checkTree(t, got, want)

	ifNode := got.Children[0].Children[1]
	if len(ifNode.Children) != 3 {
		t.Errorf("Expected If to have 3 children, got %d", len(ifNode.Children))
	}
}

func TestScenarioFunctionDecl(t *testing.T) {
	got, err := parseSrc(t, "program { int f(int a, int b) { return a + b } }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.FunctionDecl,
				ast.NewInner(ast.IntType), idNode("f"),
				ast.NewInner(ast.Formals,
					ast.NewInner(ast.Decl, ast.NewInner(ast.IntType), idNode("a")),
					ast.NewInner(ast.Decl, ast.NewInner(ast.IntType), idNode("b")),
				),
				ast.NewInner(ast.Block,
					ast.NewInner(ast.Return, addOp("+", lexer.Plus, idNode("a"), idNode("b"))),
				),
			),
		),
	)

	checkTree(t, got, want)
}

func TestScenarioNumberLiteral(t *testing.T) {
	got, err := parseSrc(t, "program { number pi pi = 3.14 }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Decl, ast.NewInner(ast.NumberType), idNode("pi")),
			ast.NewInner(ast.Assign, idNode("pi"), numberLit("3.14")),
		),
	)

	checkTree(t, got, want)
}

func TestScenarioDateLiteral(t *testing.T) {
	got, err := parseSrc(t, "program { date d d = 12~31~2024 }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Decl, ast.NewInner(ast.DateType), idNode("d")),
			ast.NewInner(ast.Assign, idNode("d"), dateLit("12~31~2024")),
		),
	)

	checkTree(t, got, want)
}

func TestScenarioDoUntil(t *testing.T) {
	got, err := parseSrc(t, "program { do { x = x - 1 } until x == 0 }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Doloop,
				ast.NewInner(ast.Block,
					ast.NewInner(ast.Assign, idNode("x"), addOp("-", lexer.Minus, idNode("x"), intLit("1"))),
				),
				relOp("==", lexer.Equal, idNode("x"), intLit("0")),
			),
		),
	)

	checkTree(t, got, want)
}

func TestEmptyProgram(t *testing.T) {
	got, err := parseSrc(t, "program { }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program, ast.NewInner(ast.Block))
	checkTree(t, got, want)
}

func TestForRequiresElse(t *testing.T) {
	_, err := parseSrc(t, "program { for x in [1, 2] { return x } }")
	if err == nil {
		t.Fatal("Expected a syntax error for a for-loop missing its else block")
	}
	if se, ok := err.(*SyntaxError); !ok || se.Expected != lexer.Else {
		t.Errorf("Expected a SyntaxError naming Else, got: %v", err)
	}
}

func TestForWithElse(t *testing.T) {
	got, err := parseSrc(t, "program { for x in [1, 2] { return x } else { return 0 } }")
	if err != nil {
		t.Fatal(err)
	}

	forNode := got.Children[0].Children[0]
	if forNode.Kind != ast.For || len(forNode.Children) != 4 {
		t.Fatalf("Expected a 4-child For node, got %v", forNode)
	}
}

func TestLeadingElseIsSyntaxError(t *testing.T) {
	_, err := parseSrc(t, "program { else { return 0 } }")
	if err == nil {
		t.Fatal("Expected a stray leading else to be a syntax error")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Errorf("Expected a *SyntaxError, got: %T", err)
	}
}

func TestMissingProgramKeyword(t *testing.T) {
	_, err := parseSrc(t, "{ }")

	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("Expected a *SyntaxError, got: %v", err)
	}
	if se.Expected != lexer.Program {
		t.Errorf("Expected the error to name Program, got %v", se.Expected)
	}
}

func TestNestedBlockAsStatement(t *testing.T) {
	got, err := parseSrc(t, "program { { int x } }")
	if err != nil {
		t.Fatal(err)
	}

	want := ast.NewInner(ast.Program,
		ast.NewInner(ast.Block,
			ast.NewInner(ast.Block, ast.NewInner(ast.Decl, ast.NewInner(ast.IntType), idNode("x"))),
		),
	)

	checkTree(t, got, want)
}

func TestCallExpression(t *testing.T) {
	got, err := parseSrc(t, "program { int x x = f(1, 2) }")
	if err != nil {
		t.Fatal(err)
	}

	call := got.Children[0].Children[1].Children[1]
	if call.Kind != ast.Call || len(call.Children) != 3 {
		t.Fatalf("Expected a 3-child Call node (Id + 2 args), got %v", call)
	}
}
