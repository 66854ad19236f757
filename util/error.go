/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package util contains the ambient utility definitions shared across the xc
pipeline: fatal compile-time errors and level-based logging.
*/
package util

import (
	"fmt"

	"devt.de/xtc/xc/ast"
)

/*
CompileError is the single fatal error type produced anywhere in the
pipeline - lexing, parsing, or (in principle) layout. It names the source,
a stable error Type for equality checks, a human-readable Detail, and the
(line, column) of the offending token when one is available.
*/
type CompileError struct {
	Source string // path of the source file that was being processed
	Type   error  // error category, for equality checks
	Detail string // human-readable detail, e.g. the offending lexeme
	Node   *ast.Node
	Line   int
	Pos    int
}

/*
Compile error categories. Exactly one of these is the Type of any
CompileError the pipeline produces; see spec §7.
*/
var (
	ErrIO              = fmt.Errorf("I/O error")
	ErrIllegalChar      = fmt.Errorf("illegal character")
	ErrMalformedLiteral = fmt.Errorf("malformed literal")
	ErrSyntax           = fmt.Errorf("syntax error")
)

/*
NewCompileError creates a new CompileError rooted at the given AST node, if
one is available; node may be nil (the CLI passes nil for lexical, syntax
and I/O errors, none of which carries a node).
*/
func NewCompileError(source string, t error, detail string, node *ast.Node, line, pos int) error {
	return &CompileError{source, t, detail, node, line, pos}
}

/*
Error returns a human-readable string representation of this error,
matching the single diagnostic line format required by spec §7.
*/
func (ce *CompileError) Error() string {
	ret := fmt.Sprintf("xc error in %s: %v (%v)", ce.Source, ce.Type, ce.Detail)

	if ce.Line != 0 {
		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, ce.Line, ce.Pos)
	}

	return ret
}
