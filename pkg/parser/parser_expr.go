package parser

import (
	"strconv"
	"strings"

	"github.com/quarrydb/quarry/pkg/token"
)

// Operator precedence levels. Multiplicative operators bind tightest,
// then additive, then comparisons, then NOT / AND / OR.
const (
	precOr         = 1
	precAnd        = 2
	precComparison = 3
	precAdditive   = 4
	precMultiplic  = 5
)

// currentPrecedence returns the binding power of the current token as an
// infix operator, or 0 when it cannot continue an expression.
func (p *Parser) currentPrecedence() int {
	switch p.current().Type {
	case token.ASTERISK, token.SLASH, token.PERCENT:
		return precMultiplic
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.EQUALS, token.CARET, token.NE, token.LT, token.LE, token.GT, token.GE,
		token.LIKE, token.ILIKE, token.IS:
		return precComparison
	case token.NOT:
		// NOT LIKE is the only infix use of NOT
		if p.peek(1).Type == token.LIKE {
			return precComparison
		}
	case token.AND:
		return precAnd
	case token.OR:
		return precOr
	}
	return 0
}

// binaryOpForToken maps an operator token to its BinaryOpType.
func binaryOpForToken(t token.TokenType) (BinaryOpType, bool) {
	switch t {
	case token.PLUS:
		return OpPlus, true
	case token.MINUS:
		return OpMinus, true
	case token.ASTERISK:
		return OpMul, true
	case token.SLASH:
		return OpDiv, true
	case token.PERCENT:
		return OpMod, true
	case token.EQUALS:
		return OpEq, true
	case token.NE:
		return OpNeq, true
	case token.LT:
		return OpLt, true
	case token.LE:
		return OpLte, true
	case token.GT:
		return OpGt, true
	case token.GE:
		return OpGte, true
	case token.AND:
		return OpAnd, true
	case token.OR:
		return OpOr, true
	case token.LIKE:
		return OpLike, true
	case token.ILIKE:
		return OpILike, true
	}
	return 0, false
}

// ParseExpression parses a full expression from the current position.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.parseExpression(0)
}

// parseExpression implements precedence climbing: parse a primary, then
// fold in operators whose precedence exceeds the threshold. The recursive
// call passes the operator's own precedence, making operators of equal
// precedence left-associative.
func (p *Parser) parseExpression(minPrec int) (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		prec := p.currentPrecedence()
		if prec <= minPrec {
			break
		}

		// Postfix IS [NOT] NULL
		if p.check(token.IS) {
			p.advance()
			op := OpIsNull
			if p.match(token.NOT) {
				op = OpIsNotNull
			}
			if _, err := p.expect(token.NULL, "Expected NULL after IS"); err != nil {
				return nil, err
			}
			left = &UnaryExpr{Op: op, Operand: left}
			continue
		}

		op, err := p.consumeBinaryOp()
		if err != nil {
			return nil, err
		}

		right, err := p.parseExpression(prec)
		if err != nil {
			return nil, err
		}

		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// consumeBinaryOp consumes the operator at the current position. NOT LIKE
// spans two tokens.
func (p *Parser) consumeBinaryOp() (BinaryOpType, error) {
	tok := p.current()
	if tok.Type == token.NOT && p.peek(1).Type == token.LIKE {
		p.advance()
		p.advance()
		return OpNotLike, nil
	}
	op, ok := binaryOpForToken(tok.Type)
	if !ok {
		return 0, p.syntaxErrorf("unknown binary operator %s", tok.Type)
	}
	p.advance()
	return op, nil
}

// aggregateFuncs lists function names treated as aggregates.
var aggregateFuncs = map[string]bool{
	"COUNT": true,
	"SUM":   true,
	"AVG":   true,
	"MIN":   true,
	"MAX":   true,
}

// parsePrimary parses a primary expression: literals, column references,
// function calls, casts, unary operators and parenthesized expressions.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.current()

	switch tok.Type {
	case token.IDENT:
		p.advance()
		return p.parseIdentifierExpr(tok)

	case token.NUMBER:
		p.advance()
		// A dot makes it a double, otherwise an integer
		if strings.Contains(tok.Literal, ".") {
			v, err := strconv.ParseFloat(tok.Literal, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: tok.Pos, Message: strconv.Quote(tok.Literal) + " is not a valid number"}
			}
			return NewDoubleLiteral(v), nil
		}
		v, err := parseIntLiteral(tok)
		if err != nil {
			return nil, err
		}
		return NewIntegerLiteral(v), nil

	case token.STRING:
		p.advance()
		return NewTextLiteral(tok.Literal), nil

	case token.TRUE:
		p.advance()
		return NewBooleanLiteral(true), nil

	case token.FALSE:
		p.advance()
		return NewBooleanLiteral(false), nil

	case token.NULL:
		p.advance()
		return NewNullLiteral(), nil

	case token.MINUS:
		p.advance()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNeg, Operand: operand}, nil

	case token.NOT:
		p.advance()
		operand, err := p.parseExpression(precAnd)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Operand: operand}, nil

	case token.CAST:
		p.advance()
		return p.parseCastExpr()

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "Expected ')'"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, p.syntaxErrorf(errUnknownExprToken, tok.Literal)
}

// parseIdentifierExpr parses what follows an identifier: a function call,
// a qualified column reference, or a bare column reference.
func (p *Parser) parseIdentifierExpr(ident token.Token) (Expr, error) {
	if p.check(token.LPAREN) {
		return p.parseFuncCall(ident.Literal)
	}

	if p.match(token.DOT) {
		if p.match(token.ASTERISK) {
			return &ColumnRef{Name: "*", Table: ident.Literal}, nil
		}
		col, err := p.expect(token.IDENT, "Expected column name after '.'")
		if err != nil {
			return nil, err
		}
		return &ColumnRef{Name: col.Literal, Table: ident.Literal}, nil
	}

	return &ColumnRef{Name: ident.Literal}, nil
}

// parseFuncCall parses the argument list of a function invocation. The
// opening paren has not been consumed yet.
func (p *Parser) parseFuncCall(name string) (Expr, error) {
	p.advance() // consume '('

	call := &FuncCall{
		Name:        name,
		IsAggregate: aggregateFuncs[strings.ToUpper(name)],
	}

	if !p.check(token.RPAREN) {
		for {
			// COUNT(*) and friends
			if p.match(token.ASTERISK) {
				call.Args = append(call.Args, &ColumnRef{Name: "*"})
			} else {
				arg, err := p.parseExpression(0)
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
			}
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.expect(token.RPAREN, "Expected ')' after function arguments"); err != nil {
		return nil, err
	}
	return call, nil
}

// parseCastExpr parses CAST(expr AS type). The CAST keyword has been
// consumed.
func (p *Parser) parseCastExpr() (Expr, error) {
	if _, err := p.expect(token.LPAREN, "Expected '(' after CAST"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AS, "Expected AS in CAST expression"); err != nil {
		return nil, err
	}
	target, err := dataTypeFromToken(p.advance())
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "Expected ')' after CAST expression"); err != nil {
		return nil, err
	}
	return &CastExpr{Expr: expr, TargetType: target}, nil
}
