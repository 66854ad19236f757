package lexer

import "fmt"

/*
Error is a fatal lexical diagnostic: an illegal character, a malformed
number/date literal, or an integer literal that overflows the host integer
range. It carries enough context (source name, offending text, position,
and the source line it occurred on) to print a single self-contained
diagnostic line, per spec §7.
*/
type Error struct {
	Source     string // Name the reader was opened with
	Detail     string // Human-readable description of the fault
	Text       string // The offending token text, if any
	Line       int    // 1-based line
	Col        int    // 1-based column
	SourceLine string // The full text of the offending source line
}

func (e *Error) Error() string {
	return fmt.Sprintf("xc lexical error in %s: %s %q (Line %d, Col %d)\n  %s",
		e.Source, e.Detail, e.Text, e.Line, e.Col, e.SourceLine)
}
