package lexer

import (
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"

	"monkey-lang/impl/internal/token"
)

// Lexer turns source text into tokens on demand. It is single-pass: once a
// token has been produced the cursor never moves back.
type Lexer struct {
	input        string
	position     int  // byte offset of ch
	readPosition int  // byte offset of the rune after ch
	ch           rune // 0 once the input is exhausted

	reachedEOF bool
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Lex converts source into a flat token stream ending with a single EOF.
func Lex(src string) []token.Token {
	var out []token.Token
	for t := range New(src).All() {
		out = append(out, t)
	}
	return out
}

// All yields the remaining tokens up to and including one EOF token, then
// stops. Ranging over it a second time yields nothing.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for !l.reachedEOF {
			t := l.NextToken()
			l.reachedEOF = t.Kind == token.EOF
			if !yield(t) {
				return
			}
		}
	}
}

// NextToken returns the next token. After the input is exhausted it keeps
// returning EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQ)
		} else {
			tok = token.New(token.Assign)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NotEq)
		} else {
			tok = token.New(token.Bang)
		}
	case ';':
		tok = token.New(token.Semicolon)
	case '(':
		tok = token.New(token.LParen)
	case ')':
		tok = token.New(token.RParen)
	case ',':
		tok = token.New(token.Comma)
	case '+':
		tok = token.New(token.Plus)
	case '-':
		tok = token.New(token.Minus)
	case '*':
		tok = token.New(token.Asterisk)
	case '/':
		tok = token.New(token.Slash)
	case '<':
		tok = token.New(token.LT)
	case '>':
		tok = token.New(token.GT)
	case '{':
		tok = token.New(token.LBrace)
	case '}':
		tok = token.New(token.RBrace)
	case 0:
		return token.New(token.EOF)
	default:
		// Identifier and number readers leave ch on the first rune after
		// the run, so they return without the trailing readChar.
		switch {
		case isIdentStart(l.ch):
			return token.LookupIdent(l.readIdentifier())
		case unicode.IsDigit(l.ch):
			return l.readInt()
		}
		// Illegal text is the raw source bytes, even for invalid UTF-8.
		tok = token.NewIllegal(l.input[l.position:l.readPosition])
	}

	l.readChar()
	return tok
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.position = len(l.input)
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.ch != 0 && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentStart(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readInt() token.Token {
	start := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	run := l.input[start:l.position]
	v, err := strconv.ParseInt(run, 10, 64)
	if err != nil {
		return token.NewIllegal(run)
	}
	return token.NewInt(v)
}

// Identifiers are letters and underscores only; digits never continue one.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
