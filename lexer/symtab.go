package lexer

/*
Symbol is an interned (lexeme, kind) pair. For any given (lexeme, kind) there
is exactly one canonical *Symbol instance; equality of symbols can therefore
be checked by pointer identity.
*/
type Symbol struct {
	Lexeme string    // The literal substring of the source
	Kind   TokenKind // The token kind this symbol was interned under
}

/*
keywords maps reserved-word lexemes to their token kind. Pre-seeded into
every SymbolTable so that an identifier-shaped lexeme which happens to match
a keyword interns as the keyword instead of as an Identifier.
*/
var keywords = map[string]TokenKind{
	"program": Program,
	"if":      If,
	"then":    Then,
	"else":    Else,
	"while":   While,
	"for":     For,
	"in":      In,
	"do":      Doloop,
	"until":   Until,
	"return":  Return,
	"int":     Int,
	"boolean": BOOLean,
	"number":  Number,
	"date":    DateType,
}

/*
operators maps one- and two-character operator/punctuation lexemes to their
token kind. Pre-seeded; never grows at runtime. Two-character entries must
be tried before their one-character prefix (see lexOperator).
*/
var operators = map[string]TokenKind{
	"{": LeftBrace,
	"}": RightBrace,
	"(": LeftParen,
	")": RightParen,
	"[": LeftBracket,
	"]": RightBracket,
	",": Comma,
	"=": Assign,

	"==": Equal,
	"!=": NotEqual,
	"<":  Less,
	"<=": LessEqual,
	">":  Greater,
	">=": GreaterEqual,

	"+": Plus,
	"-": Minus,
	"|": Or,

	"*": Multiply,
	"/": Divide,
	"&": And,
}

/*
SymbolTable interns lexeme strings into unique symbols tagged with a token
kind. It is initialized once, pre-seeded with the reserved keywords and
operators, and is not mutated concurrently (the pipeline is single-threaded,
see spec §5).
*/
type SymbolTable struct {
	words    map[string]*Symbol // Keywords (pre-seeded) and identifiers (grown on first sight)
	ops      map[string]*Symbol // Operators and punctuation (pre-seeded only)
	literals map[string]*Symbol // Number/date/int literals (grown on first sight)
}

/*
NewSymbolTable creates a process-wide symbol table, pre-seeded with all
reserved keywords and operators.
*/
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		words:    make(map[string]*Symbol, len(keywords)),
		ops:      make(map[string]*Symbol, len(operators)),
		literals: make(map[string]*Symbol),
	}

	for lexeme, kind := range keywords {
		st.words[lexeme] = &Symbol{lexeme, kind}
	}

	for lexeme, kind := range operators {
		st.ops[lexeme] = &Symbol{lexeme, kind}
	}

	return st
}

/*
InternWord interns an identifier-shaped lexeme. If the lexeme is a reserved
keyword, the pre-seeded keyword symbol is returned; otherwise the lexeme is
interned (or looked up if already seen) under the Identifier kind.
*/
func (st *SymbolTable) InternWord(lexeme string) *Symbol {
	if sym, ok := st.words[lexeme]; ok {
		return sym
	}

	sym := &Symbol{lexeme, Identifier}
	st.words[lexeme] = sym

	return sym
}

/*
Operator looks up a pre-seeded operator/punctuation symbol by its exact
lexeme. It never creates a new entry - this is the "query only" behavior the
spec calls BogusToken: a failed lookup signals an unrecognized character
sequence rather than minting a new symbol.
*/
func (st *SymbolTable) Operator(lexeme string) (*Symbol, bool) {
	sym, ok := st.ops[lexeme]
	return sym, ok
}

/*
Literal interns a number, date, or plain integer literal under the given
kind. Literals are keyed by (lexeme, kind) since the same digit run can be
classified differently depending on context (e.g. "12" as INTeger vs. part
of a DateLit).
*/
func (st *SymbolTable) Literal(kind TokenKind, lexeme string) *Symbol {
	key := lexeme + "\x00" + kind.String()

	if sym, ok := st.literals[key]; ok {
		return sym
	}

	sym := &Symbol{lexeme, kind}
	st.literals[key] = sym

	return sym
}

/*
eofSymbol is the process-wide singleton for the terminating sentinel.
*/
var eofSymbol = &Symbol{"", EOF}
