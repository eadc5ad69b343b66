package parser

// Equal reports whether two nodes have the same shape, tokens and values.
// Nodes of different variants are never equal. A nil interface and a nil
// node pointer both count as absent, so Equal((*Program)(nil), nil) holds.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch x := a.(type) {
	case *Program:
		y, ok := b.(*Program)
		return ok && statementsEqual(x.Statements, y.Statements)
	case *LetStatement:
		y, ok := b.(*LetStatement)
		return ok && x.Token == y.Token && Equal(x.Name, y.Name) && Equal(x.Value, y.Value)
	case *ReturnStatement:
		y, ok := b.(*ReturnStatement)
		return ok && x.Token == y.Token && Equal(x.ReturnValue, y.ReturnValue)
	case *ExpressionStatement:
		y, ok := b.(*ExpressionStatement)
		return ok && x.Token == y.Token && Equal(x.Expression, y.Expression)
	case *BlockStatement:
		y, ok := b.(*BlockStatement)
		return ok && x.Token == y.Token && statementsEqual(x.Statements, y.Statements)
	case *Identifier:
		y, ok := b.(*Identifier)
		return ok && x.Token == y.Token && x.Value == y.Value
	case *IntegerLiteral:
		y, ok := b.(*IntegerLiteral)
		return ok && x.Token == y.Token && x.Value == y.Value
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Token == y.Token && x.Value == y.Value
	case *PrefixExpression:
		y, ok := b.(*PrefixExpression)
		return ok && x.Token == y.Token && x.Operator == y.Operator && Equal(x.Right, y.Right)
	case *InfixExpression:
		y, ok := b.(*InfixExpression)
		return ok && x.Token == y.Token && x.Operator == y.Operator &&
			Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *IfExpression:
		y, ok := b.(*IfExpression)
		return ok && x.Token == y.Token && Equal(x.Condition, y.Condition) &&
			Equal(x.Consequence, y.Consequence) && Equal(x.Alternative, y.Alternative)
	case *FunctionLiteral:
		y, ok := b.(*FunctionLiteral)
		if !ok || x.Token != y.Token || len(x.Parameters) != len(y.Parameters) {
			return false
		}
		for i := range x.Parameters {
			if !Equal(x.Parameters[i], y.Parameters[i]) {
				return false
			}
		}
		return Equal(x.Body, y.Body)
	case *CallExpression:
		y, ok := b.(*CallExpression)
		if !ok || x.Token != y.Token || len(x.Arguments) != len(y.Arguments) || !Equal(x.Function, y.Function) {
			return false
		}
		for i := range x.Arguments {
			if !Equal(x.Arguments[i], y.Arguments[i]) {
				return false
			}
		}
		return true
	case *EmptyExpression:
		y, ok := b.(*EmptyExpression)
		return ok && x.Token == y.Token
	default:
		return false
	}
}

func statementsEqual(a, b []Statement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
