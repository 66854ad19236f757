package lexer

import (
	"bufio"
	"io"
	"os"
)

/*
RuneEOF is a special rune which represents the end of the input.
*/
const RuneEOF = -1

/*
Reader yields characters of a source file, tracking (line, column). Lines
are read lazily from the underlying file as they are consumed; end-of-line
is normalized to a single space character in the rune stream so that the
lexer never has to special-case newlines while scanning a token, while the
line number and in-line position are tracked separately from the rune
stream itself.
*/
type Reader struct {
	source  string
	scanner *bufio.Scanner
	file    *os.File

	line    string // Current logical line, with a trailing space standing in for the newline
	lineNo  int    // 1-based line number of 'line'
	col     int    // 0-based index into 'line' of the next rune to deliver
	atStart bool   // True before the first line has been pulled in
	done    bool   // True once the underlying file is exhausted
}

/*
NewReader opens a source file and returns a Reader over its contents.
*/
func NewReader(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return &Reader{
		source:  path,
		scanner: bufio.NewScanner(f),
		file:    f,
		atStart: true,
	}, nil
}

/*
Close releases the underlying file. Safe to call more than once.
*/
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

/*
Source returns the name this reader was opened with (used to label tokens
and diagnostics).
*/
func (r *Reader) Source() string {
	return r.source
}

/*
pullLine advances to the next line of the file, if any. Returns false once
the file is exhausted.
*/
func (r *Reader) pullLine() bool {
	if r.done {
		return false
	}

	if r.scanner.Scan() {
		r.line = r.scanner.Text() + " "
		r.lineNo++
		r.col = 0
		r.atStart = false
		return true
	}

	r.done = true
	r.Close()

	return false
}

/*
Peek returns the next rune without consuming it. Returns RuneEOF at the end
of input.
*/
func (r *Reader) Peek() rune {
	if r.atStart || r.col >= len(r.line) {
		if !r.pullLine() {
			return RuneEOF
		}
	}

	return rune(r.line[r.col])
}

/*
Next returns the next rune in the input and advances the position.
*/
func (r *Reader) Next() rune {
	ru := r.Peek()

	if ru == RuneEOF {
		return RuneEOF
	}

	r.col++

	return ru
}

/*
Pos returns the (line, column) of the next rune that Next() would return.
Column is 1-based.
*/
func (r *Reader) Pos() (line int, col int) {
	return r.lineNo, r.col + 1
}

/*
CurrentLine returns the text of the line currently being scanned, without
the synthesized trailing space - used to print source context in
diagnostics.
*/
func (r *Reader) CurrentLine() string {
	if len(r.line) == 0 {
		return ""
	}
	return r.line[:len(r.line)-1]
}

/*
PeekAt returns the rune n positions ahead of the next one (0 is equivalent
to Peek) without consuming anything. Two-character operators never span a
line break in the X grammar, so PeekAt never pulls a further line; it
returns RuneEOF if n would cross the current line's end.
*/
func (r *Reader) PeekAt(n int) rune {
	if r.atStart || r.col >= len(r.line) {
		if !r.pullLine() {
			return RuneEOF
		}
	}

	idx := r.col + n
	if idx < len(r.line) {
		return rune(r.line[idx])
	}

	return RuneEOF
}

/*
AtLineEnd reports whether the next rune is the synthetic space standing in
for the line's newline. Used by comment scanning to stop at end-of-line
without being confused by ordinary internal spaces.
*/
func (r *Reader) AtLineEnd() bool {
	if r.atStart || r.col >= len(r.line) {
		if !r.pullLine() {
			return true
		}
	}

	return r.col == len(r.line)-1
}

var _ io.Closer = (*Reader)(nil)
