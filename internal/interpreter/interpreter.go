// Package interpreter runs Monkey source through the lexer, parser and
// evaluator.
package interpreter

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"monkey-lang/impl/internal/evaluator"
	"monkey-lang/impl/internal/lexer"
	"monkey-lang/impl/internal/parser"
	"monkey-lang/impl/internal/token"
)

// Interpreter wires the pipeline stages together. The zero value is not
// usable; call New.
type Interpreter struct {
	log  logrus.FieldLogger
	eval *evaluator.Evaluator
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger traces pipeline stages and evaluator fallbacks to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(in *Interpreter) { in.log = log }
}

func New(opts ...Option) *Interpreter {
	in := &Interpreter{}
	for _, opt := range opts {
		opt(in)
	}
	if in.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		in.log = l
	}
	in.eval = evaluator.New(in.log)
	return in
}

var std = New()

// Tokens returns the raw token stream of src, ending with EOF.
func Tokens(src string) []token.Token { return lexer.Lex(src) }

// Parse runs the lexer and parser over src.
func Parse(src string) (*parser.Program, error) { return std.Parse(src) }

// Interpret runs src through the whole pipeline and returns its value.
func Interpret(src string) (evaluator.Object, error) { return std.Interpret(src) }

// Parse returns the AST of src. A failure wraps a *parser.Error.
func (in *Interpreter) Parse(src string) (*parser.Program, error) {
	start := time.Now()
	prog, err := parser.New(lexer.New(src).All()).ParseProgram()
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	in.log.WithFields(logrus.Fields{
		"statements": len(prog.Statements),
		"elapsed":    time.Since(start),
	}).Debug("parsed program")
	return prog, nil
}

// Interpret parses and evaluates src. Division by zero inside src panics.
func (in *Interpreter) Interpret(src string) (evaluator.Object, error) {
	prog, err := in.Parse(src)
	if err != nil {
		return nil, err
	}
	result := in.eval.Eval(prog)
	in.log.WithField("type", result.Type()).Debug("evaluated program")
	return result, nil
}
