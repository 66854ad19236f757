/*
Package ast implements the tagged tree node algebra shared by the parser and
the layout engine: a discriminated node kind, an ordered list of children,
and - for leaves that derive from a token - the interned lexer symbol of
that token.
*/
package ast

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
	"devt.de/xtc/xc/config"
	"devt.de/xtc/xc/lexer"
)

/*
Kind is the closed set of AST node variants. The parser only ever produces
the first block below; the remaining variants are reserved for grammar
extensions the parser does not implement (see spec §3) and exist so that a
visitor surface can switch on them exhaustively.
*/
type Kind int

const (
	Program Kind = iota
	Block
	FunctionDecl
	Decl
	Formals
	ActualArgs
	Call
	IntType
	BoolType
	NumberType
	DateType
	If
	While
	For
	Doloop
	Return
	Assign
	List
	IntLit
	NumberLit
	DateLit
	Id
	RelOp
	AddOp
	MultOp

	// Reserved variants: never produced by this parser, kept so a visitor
	// can exhaustively switch over the whole family described by spec §3.
	Unless
	Switch
	SwitchBlock
	Case
	Default
	StringType
	CharType
	FloatType
	VoidType
	Scientific
)

var kindNames = [...]string{
	Program: "Program", Block: "Block", FunctionDecl: "FunctionDecl", Decl: "Decl",
	Formals: "Formals", ActualArgs: "ActualArgs", Call: "Call", IntType: "IntType",
	BoolType: "BoolType", NumberType: "NumberType", DateType: "DateType", If: "If",
	While: "While", For: "For", Doloop: "Doloop", Return: "Return", Assign: "Assign",
	List: "List", IntLit: "Int", NumberLit: "Number", DateLit: "Date", Id: "Id",
	RelOp: "RelOp", AddOp: "AddOp", MultOp: "MultOp", Unless: "Unless", Switch: "Switch",
	SwitchBlock: "SwitchBlock", Case: "Case", Default: "Default", StringType: "StringType",
	CharType: "CharType", FloatType: "FloatType", VoidType: "VoidType", Scientific: "Scientific",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

/*
leafKinds are the variants that carry a symbol: literals and identifiers,
which have no children, and the binary operators, which also have exactly
two children.
*/
var leafKinds = map[Kind]bool{
	IntLit: true, NumberLit: true, DateLit: true, Id: true,
	RelOp: true, AddOp: true, MultOp: true,
}

/*
Node is a single AST node: a kind tag, an ordered list of children, and -
for leaves carrying a token (literals, identifiers, and binary operators) -
the interned symbol of that token. Children are positional; their count and
order are dictated by the grammar in spec §6 and never named. There are no
parent links - all traversal is top-down.
*/
type Node struct {
	Kind     Kind
	Children []*Node
	Sym      *lexer.Symbol // set only for leaf/operator variants
	Tok      lexer.Token   // the token this node derives from, for position info
}

/*
NewInner creates a new non-leaf node with the given children.
*/
func NewInner(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

/*
NewLeaf creates a new leaf node carrying the interned symbol of tok.
*/
func NewLeaf(kind Kind, tok lexer.Token) *Node {
	return &Node{Kind: kind, Sym: tok.Symbol, Tok: tok}
}

/*
NewOp creates a new binary operator node (RelOp/AddOp/MultOp) carrying the
operator's symbol and exactly two children.
*/
func NewOp(kind Kind, tok lexer.Token, left, right *Node) *Node {
	return &Node{Kind: kind, Sym: tok.Symbol, Tok: tok, Children: []*Node{left, right}}
}

/*
IsLeaf reports whether this node's variant is one that carries a symbol
(see leafKinds; this includes the binary operator variants, which also
have children).
*/
func (n *Node) IsLeaf() bool {
	return leafKinds[n.Kind]
}

/*
Label returns the human-readable text the draw pass uses for a node: the
node kind's name, plus the lexeme for literal, identifier and binary
operator nodes.
*/
func (n *Node) Label() string {
	if n.Sym != nil {
		return fmt.Sprintf("%s(%s)", n.Kind, n.Sym.Lexeme)
	}
	return n.Kind.String()
}

/*
String renders a textual dump of the tree: one line per node, indented
proportionally to depth. This is the "pretty-printing textual dump"
collaborator mentioned in spec §1/§6 - provided here as a convenience for
callers (e.g. the CLI) rather than as a core subsystem.
*/
func (n *Node) String() string {
	var buf bytes.Buffer
	n.writeLevel(&buf, 0)
	return buf.String()
}

func (n *Node) writeLevel(buf *bytes.Buffer, depth int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", depth*config.Int(config.TabWidth)))
	buf.WriteString(n.Label())
	buf.WriteString("\n")

	for _, c := range n.Children {
		c.writeLevel(buf, depth+1)
	}
}

/*
Walk calls visit for every node in the tree rooted at n, in pre-order
(parent before children, children left-to-right).
*/
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

/*
Equals checks structural equality against another node: same kind, same
leaf symbol (if any), and recursively equal children. If ignorePosition is
false, leaf/operator nodes also compare the (line, column) of the token
they derive from. Used by parser tests to compare an actual AST against an
expected shape built from synthetic tokens that carry no real position.
*/
func (n *Node) Equals(other *Node, ignorePosition bool) (bool, string) {
	if n == nil || other == nil {
		if n == other {
			return true, ""
		}
		return false, "one side is nil"
	}

	if n.Kind != other.Kind {
		return false, fmt.Sprintf("kind differs: %v vs %v", n.Kind, other.Kind)
	}

	if (n.Sym == nil) != (other.Sym == nil) {
		return false, fmt.Sprintf("%v: symbol presence differs", n.Kind)
	}
	if n.Sym != nil && (n.Sym.Lexeme != other.Sym.Lexeme || n.Sym.Kind != other.Sym.Kind) {
		return false, fmt.Sprintf("%v: symbol differs: %v vs %v", n.Kind, n.Sym, other.Sym)
	}
	if n.Sym != nil && !ignorePosition {
		if n.Tok.Line != other.Tok.Line || n.Tok.Left != other.Tok.Left || n.Tok.Right != other.Tok.Right {
			return false, fmt.Sprintf("%v: token position differs: (Line %d, %d-%d) vs (Line %d, %d-%d)",
				n.Kind, n.Tok.Line, n.Tok.Left, n.Tok.Right, other.Tok.Line, other.Tok.Left, other.Tok.Right)
		}
	}

	if len(n.Children) != len(other.Children) {
		return false, fmt.Sprintf("%v: child count differs: %d vs %d", n.Kind, len(n.Children), len(other.Children))
	}

	for i, c := range n.Children {
		if ok, msg := c.Equals(other.Children[i], ignorePosition); !ok {
			return false, fmt.Sprintf("%v > %s", n.Kind, msg)
		}
	}

	return true, ""
}
