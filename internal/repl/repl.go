// Package repl is a line-at-a-time shell over the interpreter.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"monkey-lang/impl/internal/evaluator"
	"monkey-lang/impl/internal/interpreter"
)

// Mode selects what the shell prints for each line.
type Mode string

const (
	ModeTokens Mode = "tokens"
	ModeAST    Mode = "ast"
	ModeEval   Mode = "eval"
)

const DefaultPrompt = ">> "

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeTokens, ModeAST, ModeEval:
		return m, nil
	default:
		return "", errors.Errorf("unknown mode %q, want one of tokens, ast, eval", s)
	}
}

type Config struct {
	Prompt string
	Mode   Mode
	// ShowPrompt is false when input is not a terminal.
	ShowPrompt bool
}

type REPL struct {
	cfg    Config
	interp *interpreter.Interpreter
	errOut *color.Color
}

func New(cfg Config, interp *interpreter.Interpreter) *REPL {
	if cfg.Mode == "" {
		cfg.Mode = ModeEval
	}
	if interp == nil {
		interp = interpreter.New()
	}
	return &REPL{cfg: cfg, interp: interp, errOut: color.New(color.FgRed)}
}

// Start reads lines from in until EOF, writing results to out. Errors in a
// line are reported and the loop continues; only I/O errors end it. Lines
// have no length limit.
func (r *REPL) Start(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		if r.cfg.ShowPrompt {
			fmt.Fprint(out, r.cfg.Prompt)
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read input")
		}
		if strings.TrimSpace(line) != "" {
			r.runLine(out, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
	}
}

func (r *REPL) runLine(out io.Writer, line string) {
	text, err := r.Line(line)
	if err != nil {
		r.printError(out, err)
		return
	}
	fmt.Fprintln(out, text)
}

// Line runs one line in the configured mode and returns what to print.
func (r *REPL) Line(line string) (text string, err error) {
	switch r.cfg.Mode {
	case ModeTokens:
		toks := interpreter.Tokens(line)
		parts := make([]string, len(toks))
		for i, t := range toks {
			parts[i] = t.String()
		}
		return strings.Join(parts, "\n"), nil
	case ModeAST:
		prog, err := r.interp.Parse(line)
		if err != nil {
			return "", err
		}
		return prog.String(), nil
	default:
		return r.eval(line)
	}
}

// eval turns a runtime panic (integer division by zero) into an error so a
// bad line does not end the session.
func (r *REPL) eval(line string) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			re, ok := rec.(runtime.Error)
			if !ok {
				panic(rec)
			}
			err = errors.Wrap(re, "eval")
		}
	}()
	v, err := r.interp.Interpret(line)
	if err != nil {
		return "", err
	}
	return evaluator.Format(v), nil
}

func (r *REPL) printError(out io.Writer, err error) {
	r.errOut.Fprint(out, monkeyFace)
	r.errOut.Fprintln(out, "Woops! We ran into some monkey business here!")
	fmt.Fprintf(out, "\t%s\n", err)
}
