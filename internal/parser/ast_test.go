package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"monkey-lang/impl/internal/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.NewIdent(name), Value: name}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.New(token.Let),
				Name:  ident("myVar"),
				Value: ident("anotherVar"),
			},
		},
	}
	assert.Equal(t, "let myVar = anotherVar;", program.String())
	assert.Equal(t, "let", program.TokenLiteral())
}

func TestNodeStrings(t *testing.T) {
	body := &BlockStatement{
		Token: token.New(token.LBrace),
		Statements: []Statement{
			&ReturnStatement{Token: token.New(token.Return), ReturnValue: ident("x")},
		},
	}
	testCases := []struct {
		name string
		node Node
		want string
	}{
		{"empty program", &Program{}, ""},
		{"boolean", &Boolean{Token: token.New(token.True), Value: true}, "true"},
		{"integer", &IntegerLiteral{Token: token.NewInt(5), Value: 5}, "5"},
		{"prefix", &PrefixExpression{Token: token.New(token.Bang), Operator: "!", Right: ident("a")}, "(!a)"},
		{
			"infix",
			&InfixExpression{Token: token.New(token.Plus), Left: ident("a"), Operator: "+", Right: ident("b")},
			"(a + b)",
		},
		{"return", body.Statements[0], "return x;"},
		{
			"if else",
			&IfExpression{Token: token.New(token.If), Condition: ident("c"), Consequence: body, Alternative: body},
			"ifc return x;else return x;",
		},
		{
			"function",
			&FunctionLiteral{Token: token.New(token.Function), Parameters: []*Identifier{ident("x"), ident("y")}, Body: body},
			"fn(x, y) return x;",
		},
		{
			"call",
			&CallExpression{Token: token.New(token.LParen), Function: ident("add"), Arguments: []Expr{ident("a"), ident("b")}},
			"add(a, b)",
		},
		{"empty expression", &EmptyExpression{Token: token.New(token.Let)}, ""},
		{"expression statement without expression", &ExpressionStatement{}, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}

func TestEqual(t *testing.T) {
	a := func() Node {
		return &Program{Statements: []Statement{
			&LetStatement{Token: token.New(token.Let), Name: ident("x"), Value: &IntegerLiteral{Token: token.NewInt(5), Value: 5}},
			&ExpressionStatement{Token: token.New(token.If), Expression: &IfExpression{
				Token:       token.New(token.If),
				Condition:   &Boolean{Token: token.New(token.True), Value: true},
				Consequence: &BlockStatement{Token: token.New(token.LBrace)},
			}},
		}}
	}
	assert.True(t, Equal(a(), a()))

	differentName := a().(*Program)
	differentName.Statements[0].(*LetStatement).Name = ident("y")
	assert.False(t, Equal(a(), differentName))

	withElse := a().(*Program)
	withElse.Statements[1].(*ExpressionStatement).Expression.(*IfExpression).Alternative = &BlockStatement{Token: token.New(token.LBrace)}
	assert.False(t, Equal(a(), withElse))

	assert.False(t, Equal(ident("x"), &IntegerLiteral{Token: token.NewInt(1), Value: 1}))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(ident("x"), nil))

	var nilIdent *Identifier
	assert.True(t, Equal(nilIdent, nilIdent))
	assert.False(t, Equal(nilIdent, ident("x")))
}

func TestEqualCallsAndFunctions(t *testing.T) {
	call := func(args ...Expr) Node {
		return &CallExpression{Token: token.New(token.LParen), Function: ident("f"), Arguments: args}
	}
	assert.True(t, Equal(call(ident("a")), call(ident("a"))))
	assert.False(t, Equal(call(ident("a")), call(ident("a"), ident("b"))))
	assert.False(t, Equal(call(ident("a")), call(ident("b"))))

	fn := func(params ...*Identifier) Node {
		return &FunctionLiteral{Token: token.New(token.Function), Parameters: params, Body: &BlockStatement{Token: token.New(token.LBrace)}}
	}
	assert.True(t, Equal(fn(ident("x")), fn(ident("x"))))
	assert.False(t, Equal(fn(ident("x")), fn(ident("y"))))
}

func TestStringsWithMissingChildren(t *testing.T) {
	var nilIdent *Identifier
	testCases := []struct {
		name string
		node Node
		want string
	}{
		{"let", &LetStatement{Token: token.New(token.Let)}, "let  = ;"},
		{"return", &ReturnStatement{Token: token.New(token.Return)}, "return ;"},
		{"prefix", &PrefixExpression{Operator: "-"}, "(-)"},
		{"prefix with nil pointer operand", &PrefixExpression{Operator: "-", Right: nilIdent}, "(-)"},
		{"infix", &InfixExpression{Operator: "+", Right: ident("b")}, "( + b)"},
		{"if", &IfExpression{Token: token.New(token.If)}, "if "},
		{"function", &FunctionLiteral{Token: token.New(token.Function), Parameters: []*Identifier{nil}}, "fn() "},
		{"call", &CallExpression{Arguments: []Expr{nil, ident("a")}}, "(, a)"},
		{"program with nil statement", &Program{Statements: []Statement{nil, &ExpressionStatement{Expression: ident("x")}}}, "x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, tc.want, tc.node.String())
			})
		})
	}
}

func TestEqualTreatsNilPointersAsAbsent(t *testing.T) {
	var nilProgram *Program
	var nilIdent *Identifier
	assert.True(t, Equal(nilProgram, nil))
	assert.True(t, Equal(nil, nilProgram))
	assert.True(t, Equal(nilProgram, nilIdent))
	assert.False(t, Equal(nilProgram, &Program{}))
	assert.False(t, Equal(&Program{}, nilProgram))

	let := func(name *Identifier) Node { return &LetStatement{Token: token.New(token.Let), Name: name} }
	assert.True(t, Equal(let(nil), let(nil)))
	assert.False(t, Equal(let(nil), let(ident("x"))))
	assert.False(t, Equal(let(ident("x")), let(nil)))
}
