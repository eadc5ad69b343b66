package parser

import (
	"fmt"

	"monkey-lang/impl/internal/token"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// WrongToken: the peek token was not the kind the grammar requires.
	WrongToken ErrorKind = iota
	// TypeError: a literal's text could not be converted to its value.
	TypeError
	// PrefixParserNotFound: no expression starts with the current token.
	PrefixParserNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case WrongToken:
		return "wrong token"
	case TypeError:
		return "type error"
	case PrefixParserNotFound:
		return "prefix parser not found"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by ParseProgram. Which fields are set depends on Kind:
// WrongToken fills Received and Expected, TypeError fills Value and
// ExpectedType, PrefixParserNotFound fills Received.
type Error struct {
	Kind         ErrorKind
	Received     token.Token
	Expected     token.Kind
	Value        string
	ExpectedType string
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongToken:
		return fmt.Sprintf("wrong token: expected %s, got %s %q", e.Expected, e.Received.Kind, e.Received.Literal())
	case TypeError:
		return fmt.Sprintf("type error: cannot convert %q to %s", e.Value, e.ExpectedType)
	case PrefixParserNotFound:
		return fmt.Sprintf("no prefix parser for token %s %q", e.Received.Kind, e.Received.Literal())
	default:
		return e.Kind.String()
	}
}

func wrongToken(received token.Token, expected token.Kind) *Error {
	return &Error{Kind: WrongToken, Received: received, Expected: expected}
}

func typeError(value, expectedType string) *Error {
	return &Error{Kind: TypeError, Value: value, ExpectedType: expectedType}
}

func prefixParserNotFound(t token.Token) *Error {
	return &Error{Kind: PrefixParserNotFound, Received: t}
}
