/*
Package parser implements the strict LL(1) recursive-descent parser for the
X language: one routine per grammar non-terminal, a single token of
lookahead, and no backtracking or error recovery - the first mismatch aborts
the parse.
*/
package parser

import (
	"devt.de/xtc/xc/ast"
	"devt.de/xtc/xc/lexer"
)

/*
startingDecl is the FIRST set of the D (declaration) production.
*/
var startingDecl = map[lexer.TokenKind]bool{
	lexer.Int: true, lexer.BOOLean: true, lexer.Number: true, lexer.DateType: true,
}

/*
startingStatement is the FIRST set of the S (statement) production. Else is
deliberately excluded: a bare statement can never begin with it, so a
leading else-block is rejected at the earliest possible point (see
DESIGN.md's resolution of the corresponding open question) rather than
being admitted into a Block's statement list and failing later.
*/
var startingStatement = map[lexer.TokenKind]bool{
	lexer.If: true, lexer.Doloop: true, lexer.For: true, lexer.While: true,
	lexer.Return: true, lexer.LeftBrace: true, lexer.Identifier: true,
}

var relationalOps = map[lexer.TokenKind]bool{
	lexer.Equal: true, lexer.NotEqual: true, lexer.Less: true,
	lexer.LessEqual: true, lexer.Greater: true, lexer.GreaterEqual: true,
}

var addingOps = map[lexer.TokenKind]bool{
	lexer.Plus: true, lexer.Minus: true, lexer.Or: true,
}

var multiplyingOps = map[lexer.TokenKind]bool{
	lexer.Multiply: true, lexer.Divide: true, lexer.And: true,
}

/*
Parser holds one token of lookahead over a Lexer and builds an ast.Node tree
from it. It is single-use: construct one per source file via NewParser.
*/
type Parser struct {
	lx  *lexer.Lexer
	tok lexer.Token
}

/*
NewParser opens path and primes the parser with its first token.
*/
func NewParser(path string) (*Parser, error) {
	r, err := lexer.NewReader(path)
	if err != nil {
		return nil, err
	}

	p := &Parser{lx: lexer.NewLexer(r, lexer.NewSymbolTable())}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

/*
Parse runs the parser to completion, returning the root Program node. A
non-nil error is always either the lexer's fatal error or a *SyntaxError.
*/
func (p *Parser) Parse() (*ast.Node, error) {
	prog, err := p.rProgram()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind() != lexer.EOF {
		return nil, p.syntaxError(lexer.EOF)
	}

	return prog, nil
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) syntaxError(expected lexer.TokenKind) error {
	return &SyntaxError{Found: p.tok, Expected: expected}
}

/*
expect consumes the current token if it has the given kind, or fails with a
syntax error naming that kind as the expectation.
*/
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	if p.tok.Kind() != kind {
		return lexer.Token{}, p.syntaxError(kind)
	}

	tok := p.tok
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}

	return tok, nil
}

// rProgram: 'program' BLOCK
func (p *Parser) rProgram() (*ast.Node, error) {
	if _, err := p.expect(lexer.Program); err != nil {
		return nil, err
	}

	block, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Program, block), nil
}

// rBlock: '{' D* S* '}'
func (p *Parser) rBlock() (*ast.Node, error) {
	if _, err := p.expect(lexer.LeftBrace); err != nil {
		return nil, err
	}

	var children []*ast.Node

	for startingDecl[p.tok.Kind()] {
		d, err := p.rDecl()
		if err != nil {
			return nil, err
		}
		children = append(children, d)
	}

	for startingStatement[p.tok.Kind()] {
		s, err := p.rStatement()
		if err != nil {
			return nil, err
		}
		children = append(children, s)
	}

	if _, err := p.expect(lexer.RightBrace); err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Block, children...), nil
}

// rDecl: TYPE NAME | TYPE NAME FUNHEAD BLOCK
func (p *Parser) rDecl() (*ast.Node, error) {
	typeNode, err := p.rType()
	if err != nil {
		return nil, err
	}

	idNode, err := p.rName()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind() != lexer.LeftParen {
		return ast.NewInner(ast.Decl, typeNode, idNode), nil
	}

	formals, err := p.rFunHead()
	if err != nil {
		return nil, err
	}

	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.FunctionDecl, typeNode, idNode, formals, body), nil
}

// rType: 'int' | 'boolean' | 'number' | 'date'
func (p *Parser) rType() (*ast.Node, error) {
	switch p.tok.Kind() {
	case lexer.Int:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewInner(ast.IntType), nil
	case lexer.BOOLean:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewInner(ast.BoolType), nil
	case lexer.Number:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewInner(ast.NumberType), nil
	case lexer.DateType:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewInner(ast.DateType), nil
	}

	return nil, p.syntaxError(lexer.Int)
}

// rFunHead: '(' ( D ( ',' D )* )? ')'
func (p *Parser) rFunHead() (*ast.Node, error) {
	if _, err := p.expect(lexer.LeftParen); err != nil {
		return nil, err
	}

	var formals []*ast.Node

	if startingDecl[p.tok.Kind()] {
		d, err := p.rDecl()
		if err != nil {
			return nil, err
		}
		formals = append(formals, d)

		for p.tok.Kind() == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			d, err := p.rDecl()
			if err != nil {
				return nil, err
			}
			formals = append(formals, d)
		}
	}

	if _, err := p.expect(lexer.RightParen); err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Formals, formals...), nil
}

/*
rStatement dispatches on the current token's kind to the alternative named
in the S production (see spec §6).
*/
func (p *Parser) rStatement() (*ast.Node, error) {
	switch p.tok.Kind() {
	case lexer.If:
		return p.rIfStatement()
	case lexer.While:
		return p.rWhileStatement()
	case lexer.For:
		return p.rForStatement()
	case lexer.Doloop:
		return p.rDoStatement()
	case lexer.Return:
		return p.rReturnStatement()
	case lexer.LeftBrace:
		return p.rBlock()
	case lexer.Identifier:
		return p.rAssignStatement()
	}

	return nil, p.syntaxError(lexer.Identifier)
}

// 'if' E 'then' BLOCK ('else' BLOCK)?
func (p *Parser) rIfStatement() (*ast.Node, error) {
	if err := p.advance(); err != nil { // 'if'
		return nil, err
	}

	cond, err := p.rExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.Then); err != nil {
		return nil, err
	}

	thenBlock, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{cond, thenBlock}

	if p.tok.Kind() == lexer.Else {
		if err := p.advance(); err != nil {
			return nil, err
		}

		elseBlock, err := p.rBlock()
		if err != nil {
			return nil, err
		}
		children = append(children, elseBlock)
	}

	return ast.NewInner(ast.If, children...), nil
}

// 'while' E BLOCK
func (p *Parser) rWhileStatement() (*ast.Node, error) {
	if err := p.advance(); err != nil { // 'while'
		return nil, err
	}

	cond, err := p.rExpr()
	if err != nil {
		return nil, err
	}

	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.While, cond, body), nil
}

// 'for' NAME 'in' LIST BLOCK 'else' BLOCK
func (p *Parser) rForStatement() (*ast.Node, error) {
	if err := p.advance(); err != nil { // 'for'
		return nil, err
	}

	idNode, err := p.rName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.In); err != nil {
		return nil, err
	}

	list, err := p.rList()
	if err != nil {
		return nil, err
	}

	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.Else); err != nil {
		return nil, err
	}

	elseBlock, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.For, idNode, list, body, elseBlock), nil
}

// 'do' BLOCK 'until' E
func (p *Parser) rDoStatement() (*ast.Node, error) {
	if err := p.advance(); err != nil { // 'do'
		return nil, err
	}

	body, err := p.rBlock()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.Until); err != nil {
		return nil, err
	}

	cond, err := p.rExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Doloop, body, cond), nil
}

// 'return' E
func (p *Parser) rReturnStatement() (*ast.Node, error) {
	if err := p.advance(); err != nil { // 'return'
		return nil, err
	}

	expr, err := p.rExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Return, expr), nil
}

// NAME '=' E
func (p *Parser) rAssignStatement() (*ast.Node, error) {
	idNode, err := p.rName()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}

	expr, err := p.rExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewInner(ast.Assign, idNode, expr), nil
}

// E: SE ( ('==' | '!=' | '<' | '<=' | '>' | '>=') SE )?
func (p *Parser) rExpr() (*ast.Node, error) {
	left, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}

	if !relationalOps[p.tok.Kind()] {
		return left, nil
	}

	opTok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	right, err := p.rSimpleExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewOp(ast.RelOp, opTok, left, right), nil
}

// SE: T ( ('+' | '-' | '|') T )*
func (p *Parser) rSimpleExpr() (*ast.Node, error) {
	left, err := p.rTerm()
	if err != nil {
		return nil, err
	}

	for addingOps[p.tok.Kind()] {
		opTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.rTerm()
		if err != nil {
			return nil, err
		}

		left = ast.NewOp(ast.AddOp, opTok, left, right)
	}

	return left, nil
}

// T: F ( ('*' | '/' | '&') F )*
func (p *Parser) rTerm() (*ast.Node, error) {
	left, err := p.rFactor()
	if err != nil {
		return nil, err
	}

	for multiplyingOps[p.tok.Kind()] {
		opTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.rFactor()
		if err != nil {
			return nil, err
		}

		left = ast.NewOp(ast.MultOp, opTok, left, right)
	}

	return left, nil
}

// F: '(' E ')' | NAME | INTEGER | NUMBERLIT | DATELIT | NAME '(' (E (',' E)*)? ')'
func (p *Parser) rFactor() (*ast.Node, error) {
	switch p.tok.Kind() {
	case lexer.LeftParen:
		if err := p.advance(); err != nil {
			return nil, err
		}

		e, err := p.rExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lexer.RightParen); err != nil {
			return nil, err
		}

		return e, nil

	case lexer.Identifier:
		idNode, err := p.rName()
		if err != nil {
			return nil, err
		}

		if p.tok.Kind() != lexer.LeftParen {
			return idNode, nil
		}

		if err := p.advance(); err != nil { // '('
			return nil, err
		}

		var args []*ast.Node

		if p.tok.Kind() != lexer.RightParen {
			e, err := p.rExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)

			for p.tok.Kind() == lexer.Comma {
				if err := p.advance(); err != nil {
					return nil, err
				}

				e, err := p.rExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, e)
			}
		}

		if _, err := p.expect(lexer.RightParen); err != nil {
			return nil, err
		}

		return ast.NewInner(ast.Call, append([]*ast.Node{idNode}, args...)...), nil

	case lexer.INTeger:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewLeaf(ast.IntLit, tok), nil

	case lexer.NumberLit:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewLeaf(ast.NumberLit, tok), nil

	case lexer.DateLit:
		tok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewLeaf(ast.DateLit, tok), nil
	}

	return nil, p.syntaxError(lexer.Identifier)
}

// LIST: '[' (F (',' F)*)? ']'
func (p *Parser) rList() (*ast.Node, error) {
	if _, err := p.expect(lexer.LeftBracket); err != nil {
		return nil, err
	}

	var factors []*ast.Node

	if p.tok.Kind() != lexer.RightBracket {
		f, err := p.rFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)

		for p.tok.Kind() == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}

			f, err := p.rFactor()
			if err != nil {
				return nil, err
			}
			factors = append(factors, f)
		}
	}

	if _, err := p.expect(lexer.RightBracket); err != nil {
		return nil, err
	}

	return ast.NewInner(ast.List, factors...), nil
}

// NAME: IDENT
func (p *Parser) rName() (*ast.Node, error) {
	tok, err := p.expect(lexer.Identifier)
	if err != nil {
		return nil, err
	}

	return ast.NewLeaf(ast.Id, tok), nil
}
