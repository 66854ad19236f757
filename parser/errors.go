package parser

import (
	"fmt"

	"devt.de/xtc/xc/lexer"
)

/*
SyntaxError is raised when the next token's kind is not in the FIRST/FOLLOW
set of the production currently being parsed. It carries the offending
token and the single kind that was expected - the parser does not attempt
error recovery and aborts the parse as soon as this is constructed.
*/
type SyntaxError struct {
	Found    lexer.Token
	Expected lexer.TokenKind
}

func (e *SyntaxError) Error() string {
	found := e.Found.Kind().String()
	if e.Found.Kind() != lexer.EOF {
		found = fmt.Sprintf("%s %q", found, e.Found.Lexeme())
	}

	return fmt.Sprintf("xc syntax error: Expected: %s (found %s at Line %d, Col %d)",
		e.Expected, found, e.Found.Line, e.Found.Left)
}
