package token

import "strconv"

// Kind is the lexical category of a token.
type Kind uint8

const (
	Illegal Kind = iota
	EOF

	// Identifiers + literals
	Ident
	Int

	// Operators
	Assign
	Plus
	Minus
	Bang
	Asterisk
	Slash
	LT
	GT
	EQ
	NotEq

	// Delimiters
	Comma
	Semicolon
	LParen
	RParen
	LBrace
	RBrace

	// Keywords
	Function
	Let
	True
	False
	If
	Else
	Return
)

var kindNames = [...]string{
	Illegal:   "ILLEGAL",
	EOF:       "EOF",
	Ident:     "IDENT",
	Int:       "INT",
	Assign:    "ASSIGN",
	Plus:      "PLUS",
	Minus:     "MINUS",
	Bang:      "BANG",
	Asterisk:  "ASTERISK",
	Slash:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NotEq:     "NOT_EQ",
	Comma:     "COMMA",
	Semicolon: "SEMICOLON",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	LBrace:    "LBRACE",
	RBrace:    "RBRACE",
	Function:  "FUNCTION",
	Let:       "LET",
	True:      "TRUE",
	False:     "FALSE",
	If:        "IF",
	Else:      "ELSE",
	Return:    "RETURN",
}

// spellings holds the literal of every kind without a payload.
var spellings = map[Kind]string{
	EOF:       "",
	Assign:    "=",
	Plus:      "+",
	Minus:     "-",
	Bang:      "!",
	Asterisk:  "*",
	Slash:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NotEq:     "!=",
	Comma:     ",",
	Semicolon: ";",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Function:  "fn",
	Let:       "let",
	True:      "true",
	False:     "false",
	If:        "if",
	Else:      "else",
	Return:    "return",
}

var keywords = map[string]Kind{
	"fn":     Function,
	"let":    Let,
	"true":   True,
	"false":  False,
	"if":     If,
	"else":   Else,
	"return": Return,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a lexical unit. Text carries the payload of Ident and Illegal
// tokens, Value the payload of Int tokens; both are zero otherwise, so
// tokens compare with ==.
type Token struct {
	Kind  Kind
	Text  string
	Value int64
}

// New returns a token of a kind that carries no payload.
func New(k Kind) Token { return Token{Kind: k} }

func NewIdent(name string) Token   { return Token{Kind: Ident, Text: name} }
func NewIllegal(text string) Token { return Token{Kind: Illegal, Text: text} }
func NewInt(v int64) Token         { return Token{Kind: Int, Value: v} }

// Literal returns the source spelling of the token.
func (t Token) Literal() string {
	switch t.Kind {
	case Ident, Illegal:
		return t.Text
	case Int:
		return strconv.FormatInt(t.Value, 10)
	default:
		return spellings[t.Kind]
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, Illegal, Int:
		return t.Kind.String() + "(" + t.Literal() + ")"
	default:
		return t.Kind.String()
	}
}

// LookupIdent classifies a word as a keyword or an identifier.
func LookupIdent(word string) Token {
	if k, ok := keywords[word]; ok {
		return New(k)
	}
	return NewIdent(word)
}
