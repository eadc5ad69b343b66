package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, cfg Config, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(cfg, nil).Start(strings.NewReader(input), &out))
	return out.String()
}

func TestEvalMode(t *testing.T) {
	out := run(t, Config{}, "5 + 5\n\n!true\nif (1 > 2) { 10 }\n")
	assert.Equal(t, "10\nfalse\nnull\n", out)
}

func TestASTMode(t *testing.T) {
	out := run(t, Config{Mode: ModeAST}, "a + b * c\nlet x = -y;\n")
	assert.Equal(t, "(a + (b * c))\nlet x = (-y);\n", out)
}

func TestTokensMode(t *testing.T) {
	out := run(t, Config{Mode: ModeTokens}, "let x = 5;\n")
	assert.Equal(t, "LET\nIDENT(x)\nASSIGN\nINT(5)\nSEMICOLON\nEOF\n", out)
}

func TestPromptIsPrintedPerLine(t *testing.T) {
	out := run(t, Config{Prompt: DefaultPrompt, ShowPrompt: true}, "1\n2\n")
	assert.Equal(t, ">> 1\n>> 2\n>> ", out)
}

func TestErrorsDoNotEndTheSession(t *testing.T) {
	out := run(t, Config{}, "let x 5;\n1 / 0\n3\n")
	assert.Equal(t, 2, strings.Count(out, "monkey business"))
	assert.Contains(t, out, "\tparse: wrong token: expected ASSIGN, got INT \"5\"\n")
	assert.Contains(t, out, "\teval: runtime error: integer divide by zero\n")
	assert.True(t, strings.HasSuffix(out, "3\n"))
}

func TestLine(t *testing.T) {
	r := New(Config{Mode: ModeEval}, nil)
	text, err := r.Line("if (10 > 1) { if (10 > 1) { return 10; } return 1; }")
	require.NoError(t, err)
	assert.Equal(t, "10", text)

	_, err = r.Line("(1")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"tokens": ModeTokens, "AST": ModeAST, "eval": ModeEval} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("bytecode")
	assert.Error(t, err)
}

func TestLongLinesDoNotEndTheSession(t *testing.T) {
	long := strings.Repeat("1 + ", 20000) + "1"
	require.Greater(t, len(long), 64*1024)
	out := run(t, Config{}, long+"\n2\n")
	assert.Equal(t, "20001\n2\n", out)
}

func TestLastLineWithoutNewline(t *testing.T) {
	out := run(t, Config{}, "1\r\n2 * 3")
	assert.Equal(t, "1\n6\n", out)
}
