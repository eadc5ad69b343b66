package evaluator

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"monkey-lang/impl/internal/parser"
)

// Evaluator reduces AST nodes to Objects. It holds no bindings, so one
// Evaluator can evaluate any number of programs.
type Evaluator struct {
	log logrus.FieldLogger
}

// New returns an Evaluator that reports nodes it cannot evaluate to log at
// debug level. A nil log discards those reports.
func New(log logrus.FieldLogger) *Evaluator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Evaluator{log: log}
}

// Eval evaluates node. Unsupported nodes and undefined operator/operand
// combinations yield Null. Integer arithmetic is int64 and wraps on
// overflow; division by zero panics with Go's runtime divide error.
func (ev *Evaluator) Eval(node parser.Node) Object {
	switch n := node.(type) {
	// Statements
	case *parser.Program:
		return ev.evalProgram(n)
	case *parser.BlockStatement:
		return ev.evalBlock(n)
	case *parser.ExpressionStatement:
		return ev.Eval(n.Expression)
	case *parser.ReturnStatement:
		return ReturnValue{Value: ev.Eval(n.ReturnValue)}

	// Expressions
	case *parser.IntegerLiteral:
		return Integer{Value: n.Value}
	case *parser.Boolean:
		return nativeBool(n.Value)
	case *parser.PrefixExpression:
		return evalPrefix(n.Operator, ev.Eval(n.Right))
	case *parser.InfixExpression:
		left := ev.Eval(n.Left)
		right := ev.Eval(n.Right)
		return evalInfix(n.Operator, left, right)
	case *parser.IfExpression:
		return ev.evalIf(n)

	default:
		// Bindings, identifiers, function literals and calls have no
		// evaluation rules yet.
		ev.log.WithField("node", fmt.Sprintf("%T", node)).Debug("no evaluation rule, yielding null")
		return null
	}
}

// evalProgram unwraps the first return marker it meets and stops there.
func (ev *Evaluator) evalProgram(p *parser.Program) Object {
	result := null
	for _, st := range p.Statements {
		result = ev.Eval(st)
		if rv, ok := result.(ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}

// evalBlock stops at a return marker but hands it up still wrapped, so
// the return escapes every enclosing block.
func (ev *Evaluator) evalBlock(b *parser.BlockStatement) Object {
	result := null
	for _, st := range b.Statements {
		result = ev.Eval(st)
		if _, ok := result.(ReturnValue); ok {
			return result
		}
	}
	return result
}

func (ev *Evaluator) evalIf(n *parser.IfExpression) Object {
	cond := ev.Eval(n.Condition)
	switch {
	case isTruthy(cond):
		return ev.Eval(n.Consequence)
	case n.Alternative != nil:
		return ev.Eval(n.Alternative)
	default:
		return null
	}
}

func evalPrefix(op string, right Object) Object {
	switch op {
	case "!":
		switch r := right.(type) {
		case Boolean:
			return nativeBool(!r.Value)
		case Null:
			return trueObj
		default:
			return falseObj
		}
	case "-":
		r, ok := right.(Integer)
		if !ok {
			return null
		}
		return Integer{Value: -r.Value}
	default:
		return null
	}
}

func evalInfix(op string, left, right Object) Object {
	switch l := left.(type) {
	case Integer:
		if r, ok := right.(Integer); ok {
			return evalIntegerInfix(op, l.Value, r.Value)
		}
	case Boolean:
		if r, ok := right.(Boolean); ok {
			return evalBooleanInfix(op, l.Value, r.Value)
		}
	}
	return null
}

func evalIntegerInfix(op string, l, r int64) Object {
	switch op {
	case "+":
		return Integer{Value: l + r}
	case "-":
		return Integer{Value: l - r}
	case "*":
		return Integer{Value: l * r}
	case "/":
		return Integer{Value: l / r}
	case "<":
		return nativeBool(l < r)
	case ">":
		return nativeBool(l > r)
	case "==":
		return nativeBool(l == r)
	case "!=":
		return nativeBool(l != r)
	default:
		return null
	}
}

func evalBooleanInfix(op string, l, r bool) Object {
	switch op {
	case "==":
		return nativeBool(l == r)
	case "!=":
		return nativeBool(l != r)
	default:
		return null
	}
}
