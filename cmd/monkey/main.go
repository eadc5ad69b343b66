// Command monkey runs Monkey programs and an interactive shell.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"monkey-lang/impl/internal/evaluator"
	"monkey-lang/impl/internal/interpreter"
	"monkey-lang/impl/internal/repl"
)

// flag names
const (
	verboseFlagName = "verbose"
	promptFlagName  = "prompt"
	modeFlagName    = "mode"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:    verboseFlagName,
		Aliases: []string{"v"},
		Usage:   "log pipeline stages to stderr",
		EnvVars: []string{"MONKEY_VERBOSE"},
	}
	promptFlag = &cli.StringFlag{
		Name:    promptFlagName,
		Value:   repl.DefaultPrompt,
		Usage:   "prompt printed before each line when stdin is a terminal",
		EnvVars: []string{"MONKEY_PROMPT"},
	}
	modeFlag = &cli.StringFlag{
		Name:    modeFlagName,
		Value:   string(repl.ModeEval),
		Usage:   "what to print per line: tokens, ast or eval",
		EnvVars: []string{"MONKEY_MODE"},
	}
)

func newInterpreter(c *cli.Context) *interpreter.Interpreter {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.Bool(verboseFlagName) {
		log.SetLevel(logrus.DebugLevel)
	}
	return interpreter.New(interpreter.WithLogger(log))
}

func readSource(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", errors.Errorf("usage: %s %s <file>", c.App.Name, c.Command.Name)
	}
	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

func printTokens(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	for _, t := range interpreter.Tokens(src) {
		fmt.Fprintln(c.App.Writer, t)
	}
	return nil
}

func printAST(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	prog, err := newInterpreter(c).Parse(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, prog)
	return nil
}

func runProgram(c *cli.Context) error {
	src, err := readSource(c)
	if err != nil {
		return err
	}
	val, err := newInterpreter(c).Interpret(src)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, evaluator.Format(val))
	return nil
}

func startREPL(c *cli.Context) error {
	mode, err := repl.ParseMode(c.String(modeFlagName))
	if err != nil {
		return err
	}
	r := repl.New(repl.Config{
		Prompt:     c.String(promptFlagName),
		Mode:       mode,
		ShowPrompt: term.IsTerminal(int(os.Stdin.Fd())),
	}, newInterpreter(c))
	return r.Start(os.Stdin, c.App.Writer)
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "monkey",
		Usage:  "interpreter for the Monkey programming language",
		Writer: out,
		Flags:  []cli.Flag{verboseFlag, promptFlag, modeFlag},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "<file>",
				Action:    printTokens,
			},
			{
				Name:      "ast",
				Usage:     "print the parsed program of a file",
				ArgsUsage: "<file>",
				Action:    printAST,
			},
			{
				Name:      "run",
				Usage:     "evaluate a file and print its value",
				ArgsUsage: "<file>",
				Action:    runProgram,
			},
			{
				Name:   "repl",
				Usage:  "read and evaluate lines from stdin",
				Action: startREPL,
			},
		},
		Action: startREPL,
	}
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "[Error]", err)
		os.Exit(1)
	}
}
