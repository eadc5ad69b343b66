package parser

import (
	"iter"
	"strconv"

	"monkey-lang/impl/internal/token"
)

type precedence int

// Precedence values (higher binds tighter)
const (
	precLowest precedence = iota
	precEquals            // ==
	precLessGreater       // > or <
	precSum               // +
	precProduct           // *
	precPrefix            // -x or !x
	precCall              // f(x)
)

var precedences = map[token.Kind]precedence{
	token.EQ:       precEquals,
	token.NotEq:    precEquals,
	token.LT:       precLessGreater,
	token.GT:       precLessGreater,
	token.Plus:     precSum,
	token.Minus:    precSum,
	token.Slash:    precProduct,
	token.Asterisk: precProduct,
	token.LParen:   precCall,
}

type (
	prefixParseFn func() (Expr, error)
	infixParseFn  func(left Expr) (Expr, error)
)

// Parser builds a Program from a token sequence using a two token window.
// A Parser parses one program; it is not safe for concurrent use.
type Parser struct {
	tokens iter.Seq[token.Token]
	next   func() (token.Token, bool)

	cur  token.Token
	peek token.Token
}

// New returns a parser reading from tokens, typically lexer.New(src).All().
// Once the sequence is exhausted the parser sees EOF.
func New(tokens iter.Seq[token.Token]) *Parser { return &Parser{tokens: tokens} }

// ParseProgram parses statements until EOF. The first error aborts parsing
// and no Program is returned.
func (p *Parser) ParseProgram() (*Program, error) {
	next, stop := iter.Pull(p.tokens)
	defer stop()
	p.next = next
	p.nextToken()
	p.nextToken()

	prog := &Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.nextToken()
	}
	return prog, nil
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	if t, ok := p.next(); ok {
		p.peek = t
	} else {
		p.peek = token.New(token.EOF)
	}
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

// expectPeek advances only if the peek token has kind k.
func (p *Parser) expectPeek(k token.Kind) error {
	if !p.peekIs(k) {
		return wrongToken(p.peek, k)
	}
	p.nextToken()
	return nil
}

func (p *Parser) peekPrecedence() precedence { return precedences[p.peek.Kind] }
func (p *Parser) curPrecedence() precedence  { return precedences[p.cur.Kind] }

// Statements

func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur.Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (*LetStatement, error) {
	stmt := &LetStatement{Token: p.cur}
	if err := p.expectPeek(token.Ident); err != nil {
		return nil, err
	}
	stmt.Name = &Identifier{Token: p.cur, Value: p.cur.Literal()}
	if err := p.expectPeek(token.Assign); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	p.skipSemicolon()
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (*ReturnStatement, error) {
	stmt := &ReturnStatement{Token: p.cur}
	p.nextToken()

	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.ReturnValue = value
	p.skipSemicolon()
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (*ExpressionStatement, error) {
	stmt := &ExpressionStatement{Token: p.cur}
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	stmt.Expression = expr
	p.skipSemicolon()
	return stmt, nil
}

// Semicolons terminate statements but are optional.
func (p *Parser) skipSemicolon() {
	if p.peekIs(token.Semicolon) {
		p.nextToken()
	}
}

func (p *Parser) parseBlockStatement() (*BlockStatement, error) {
	block := &BlockStatement{Token: p.cur}
	p.nextToken()
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}
	return block, nil
}

// Expressions

func (p *Parser) parseExpression(prec precedence) (Expr, error) {
	prefix := p.prefixParser(p.cur.Kind)
	if prefix == nil {
		return nil, prefixParserNotFound(p.cur)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.Semicolon) && prec < p.peekPrecedence() {
		infix := p.infixParser(p.peek.Kind)
		if infix == nil {
			return left, nil
		}
		p.nextToken()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}
	return left, nil
}

// prefixParser returns the handler for a token that starts an expression,
// or nil if none does.
func (p *Parser) prefixParser(k token.Kind) prefixParseFn {
	switch k {
	case token.Ident:
		return p.parseIdentifier
	case token.Int:
		return p.parseIntegerLiteral
	case token.True, token.False:
		return p.parseBoolean
	case token.LParen:
		return p.parseGroupedExpression
	case token.Bang, token.Minus:
		return p.parsePrefixExpression
	case token.If:
		return p.parseIfExpression
	case token.Function:
		return p.parseFunctionLiteral
	default:
		return nil
	}
}

// infixParser returns the handler for a token that continues an
// expression, or nil if none does.
func (p *Parser) infixParser(k token.Kind) infixParseFn {
	switch k {
	case token.Plus, token.Minus, token.Slash, token.Asterisk,
		token.EQ, token.NotEq, token.LT, token.GT:
		return p.parseInfixExpression
	case token.LParen:
		return p.parseCallExpression
	default:
		return nil
	}
}

func (p *Parser) parseIdentifier() (Expr, error) {
	return &Identifier{Token: p.cur, Value: p.cur.Literal()}, nil
}

func (p *Parser) parseIntegerLiteral() (Expr, error) {
	lit := p.cur.Literal()
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, typeError(lit, "integer")
	}
	return &IntegerLiteral{Token: p.cur, Value: v}, nil
}

func (p *Parser) parseBoolean() (Expr, error) {
	return &Boolean{Token: p.cur, Value: p.curIs(token.True)}, nil
}

func (p *Parser) parseGroupedExpression() (Expr, error) {
	p.nextToken()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parsePrefixExpression() (Expr, error) {
	expr := &PrefixExpression{Token: p.cur, Operator: p.cur.Literal()}
	p.nextToken()
	right, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

// parseInfixExpression parses the right operand at the operator's own
// precedence, which makes equal-precedence chains left-associative.
func (p *Parser) parseInfixExpression(left Expr) (Expr, error) {
	expr := &InfixExpression{Token: p.cur, Operator: p.cur.Literal(), Left: left}
	prec := p.curPrecedence()
	p.nextToken()
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}
	expr.Right = right
	return expr, nil
}

func (p *Parser) parseIfExpression() (Expr, error) {
	expr := &IfExpression{Token: p.cur}
	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}
	p.nextToken()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	expr.Condition = cond
	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}
	if expr.Consequence, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}

	if p.peekIs(token.Else) {
		p.nextToken()
		if err := p.expectPeek(token.LBrace); err != nil {
			return nil, err
		}
		if expr.Alternative, err = p.parseBlockStatement(); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) parseFunctionLiteral() (Expr, error) {
	lit := &FunctionLiteral{Token: p.cur}
	if err := p.expectPeek(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	lit.Parameters = params
	if err := p.expectPeek(token.LBrace); err != nil {
		return nil, err
	}
	if lit.Body, err = p.parseBlockStatement(); err != nil {
		return nil, err
	}
	return lit, nil
}

func (p *Parser) parseFunctionParameters() ([]*Identifier, error) {
	params := []*Identifier{}
	if p.peekIs(token.RParen) {
		p.nextToken()
		return params, nil
	}

	if err := p.expectPeek(token.Ident); err != nil {
		return nil, err
	}
	params = append(params, &Identifier{Token: p.cur, Value: p.cur.Literal()})
	for p.peekIs(token.Comma) {
		p.nextToken()
		if err := p.expectPeek(token.Ident); err != nil {
			return nil, err
		}
		params = append(params, &Identifier{Token: p.cur, Value: p.cur.Literal()})
	}

	if err := p.expectPeek(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCallExpression(fn Expr) (Expr, error) {
	expr := &CallExpression{Token: p.cur, Function: fn}
	args, err := p.parseExpressionList(token.RParen)
	if err != nil {
		return nil, err
	}
	expr.Arguments = args
	return expr, nil
}

// parseExpressionList parses comma separated expressions up to end. The
// current token is the opening delimiter.
func (p *Parser) parseExpressionList(end token.Kind) ([]Expr, error) {
	list := []Expr{}
	if p.peekIs(end) {
		p.nextToken()
		return list, nil
	}

	p.nextToken()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)
	for p.peekIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		if expr, err = p.parseExpression(precLowest); err != nil {
			return nil, err
		}
		list = append(list, expr)
	}

	if err := p.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}
