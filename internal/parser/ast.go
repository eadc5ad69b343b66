package parser

import (
	"reflect"
	"strings"

	"monkey-lang/impl/internal/token"
)

// Node is implemented by every AST node. String renders the node in its
// canonical, fully parenthesized form.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a marker interface.
type Statement interface {
	Node
	isStatement()
}

// Expr is a marker interface for expressions.
type Expr interface {
	Node
	isExpr()
}

// Program is the root AST node.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string { return joinStatements(p.Statements) }

// Statements

type LetStatement struct {
	Token token.Token // let
	Name  *Identifier
	Value Expr
}

func (*LetStatement) isStatement()           {}
func (s *LetStatement) TokenLiteral() string { return s.Token.Literal() }
func (s *LetStatement) String() string {
	var b strings.Builder
	b.WriteString(s.TokenLiteral())
	b.WriteByte(' ')
	b.WriteString(str(s.Name))
	b.WriteString(" = ")
	b.WriteString(str(s.Value))
	b.WriteByte(';')
	return b.String()
}

type ReturnStatement struct {
	Token       token.Token // return
	ReturnValue Expr
}

func (*ReturnStatement) isStatement()           {}
func (s *ReturnStatement) TokenLiteral() string { return s.Token.Literal() }
func (s *ReturnStatement) String() string {
	var b strings.Builder
	b.WriteString(s.TokenLiteral())
	b.WriteByte(' ')
	b.WriteString(str(s.ReturnValue))
	b.WriteByte(';')
	return b.String()
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token // first token of the expression
	Expression Expr
}

func (*ExpressionStatement) isStatement()           {}
func (s *ExpressionStatement) TokenLiteral() string { return s.Token.Literal() }
func (s *ExpressionStatement) String() string       { return str(s.Expression) }

// BlockStatement is the body of if expressions and function literals.
type BlockStatement struct {
	Token      token.Token // {
	Statements []Statement
}

func (*BlockStatement) isStatement()           {}
func (s *BlockStatement) TokenLiteral() string { return s.Token.Literal() }
func (s *BlockStatement) String() string       { return joinStatements(s.Statements) }

// Identifiers and literals

type Identifier struct {
	Token token.Token
	Value string
}

func (*Identifier) isExpr()                {}
func (e *Identifier) TokenLiteral() string { return e.Token.Literal() }
func (e *Identifier) String() string       { return e.Value }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (*IntegerLiteral) isExpr()                {}
func (e *IntegerLiteral) TokenLiteral() string { return e.Token.Literal() }
func (e *IntegerLiteral) String() string       { return e.Token.Literal() }

type Boolean struct {
	Token token.Token
	Value bool
}

func (*Boolean) isExpr()                {}
func (e *Boolean) TokenLiteral() string { return e.Token.Literal() }
func (e *Boolean) String() string       { return e.Token.Literal() }

// Operators

type PrefixExpression struct {
	Token    token.Token // ! or -
	Operator string
	Right    Expr
}

func (*PrefixExpression) isExpr()                {}
func (e *PrefixExpression) TokenLiteral() string { return e.Token.Literal() }
func (e *PrefixExpression) String() string {
	return "(" + e.Operator + str(e.Right) + ")"
}

type InfixExpression struct {
	Token    token.Token // the operator
	Left     Expr
	Operator string
	Right    Expr
}

func (*InfixExpression) isExpr()                {}
func (e *InfixExpression) TokenLiteral() string { return e.Token.Literal() }
func (e *InfixExpression) String() string {
	return "(" + str(e.Left) + " " + e.Operator + " " + str(e.Right) + ")"
}

// IfExpression has a nil Alternative when there is no else branch.
type IfExpression struct {
	Token       token.Token // if
	Condition   Expr
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (*IfExpression) isExpr()                {}
func (e *IfExpression) TokenLiteral() string { return e.Token.Literal() }
func (e *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if")
	b.WriteString(str(e.Condition))
	b.WriteByte(' ')
	b.WriteString(str(e.Consequence))
	if e.Alternative != nil {
		b.WriteString("else ")
		b.WriteString(str(e.Alternative))
	}
	return b.String()
}

// Function literal and call

type FunctionLiteral struct {
	Token      token.Token // fn
	Parameters []*Identifier
	Body       *BlockStatement
}

func (*FunctionLiteral) isExpr()                {}
func (e *FunctionLiteral) TokenLiteral() string { return e.Token.Literal() }
func (e *FunctionLiteral) String() string {
	params := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		params[i] = str(p)
	}
	return e.TokenLiteral() + "(" + strings.Join(params, ", ") + ") " + str(e.Body)
}

type CallExpression struct {
	Token     token.Token // (
	Function  Expr
	Arguments []Expr
}

func (*CallExpression) isExpr()                {}
func (e *CallExpression) TokenLiteral() string { return e.Token.Literal() }
func (e *CallExpression) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = str(a)
	}
	return str(e.Function) + "(" + strings.Join(args, ", ") + ")"
}

// EmptyExpression stands in for an expression that carries no value. The
// parser never produces one.
type EmptyExpression struct {
	Token token.Token
}

func (*EmptyExpression) isExpr()                {}
func (e *EmptyExpression) TokenLiteral() string { return e.Token.Literal() }
func (*EmptyExpression) String() string         { return "" }

func joinStatements(stmts []Statement) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(str(s))
	}
	return b.String()
}

// str renders n, treating a missing child as empty.
func str(n Node) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

// isNil reports whether n is nil or a nil node pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
