package parser

import "github.com/quarrydb/quarry/pkg/token"

// parseSelectStmt parses a SELECT statement. The SELECT keyword has been
// consumed.
//
//	SELECT [DISTINCT] projection, ... [FROM table [alias], ...]
//	[WHERE expr] [GROUP BY expr, ...] [HAVING expr]
//	[ORDER BY expr [ASC|DESC], ...] [LIMIT n] [OFFSET n]
func (p *Parser) parseSelectStmt() (*SelectStmt, error) {
	stmt := &SelectStmt{}

	if p.match(token.DISTINCT) {
		stmt.Distinct = true
	}

	// Projections
	for {
		if p.match(token.ASTERISK) {
			// The wildcard appears where an expression is expected but is
			// not one itself
			stmt.Projections = append(stmt.Projections, &ColumnRef{Name: "*"})
		} else {
			expr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			stmt.Projections = append(stmt.Projections, expr)
		}
		if !p.match(token.COMMA) {
			break
		}
	}

	// FROM clause
	if p.match(token.FROM) {
		for {
			tableTok, err := p.expect(token.IDENT, "Expected table name after FROM")
			if err != nil {
				return nil, err
			}
			ref := TableRef{Name: tableTok.Literal}
			if p.match(token.AS) {
				aliasTok, err := p.expect(token.IDENT, "Expected alias after AS")
				if err != nil {
					return nil, err
				}
				ref.Alias = aliasTok.Literal
			} else if p.check(token.IDENT) {
				ref.Alias = p.advance().Literal
			}
			stmt.From = append(stmt.From, ref)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	// WHERE clause
	if p.match(token.WHERE) {
		where, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	// GROUP BY clause
	if p.match(token.GROUP) {
		if _, err := p.expect(token.BY, "Expected BY after GROUP"); err != nil {
			return nil, err
		}
		for {
			expr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			stmt.GroupBy = append(stmt.GroupBy, expr)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	// HAVING clause
	if p.match(token.HAVING) {
		having, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.Having = having
	}

	// ORDER BY clause
	if p.match(token.ORDER) {
		if _, err := p.expect(token.BY, "Expected BY after ORDER"); err != nil {
			return nil, err
		}
		for {
			expr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			item := OrderByItem{Expr: expr, Asc: true}
			if p.match(token.DESC) {
				item.Asc = false
			} else {
				p.match(token.ASC)
			}
			stmt.OrderBy = append(stmt.OrderBy, item)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	// LIMIT and OFFSET clauses
	if p.match(token.LIMIT) {
		tok, err := p.expect(token.NUMBER, "Expected number after LIMIT")
		if err != nil {
			return nil, err
		}
		v, err := parseIntLiteral(tok)
		if err != nil {
			return nil, err
		}
		stmt.Limit = &v
	}
	if p.match(token.OFFSET) {
		tok, err := p.expect(token.NUMBER, "Expected number after OFFSET")
		if err != nil {
			return nil, err
		}
		v, err := parseIntLiteral(tok)
		if err != nil {
			return nil, err
		}
		stmt.Offset = &v
	}

	return stmt, nil
}
