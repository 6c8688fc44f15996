package parser

import "github.com/quarrydb/quarry/pkg/token"

// parseInsertStmt parses an INSERT statement. The INSERT keyword has been
// consumed; INTO is accepted but optional.
//
//	INSERT [INTO] table [(col, ...)] VALUES (expr, ...), (expr, ...), ...
func (p *Parser) parseInsertStmt() (*InsertStmt, error) {
	stmt := &InsertStmt{}

	p.match(token.INTO)

	tableTok, err := p.expect(token.IDENT, "Expected table name after INSERT")
	if err != nil {
		return nil, err
	}
	stmt.TableName = tableTok.Literal

	// Optional column list, followed by the VALUES keyword
	if p.match(token.LPAREN) {
		for {
			col, err := p.expect(token.IDENT, "Expected column name in INSERT")
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col.Literal)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RPAREN, "Expected ')' after column list in INSERT"); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.VALUES, "Expected VALUES keyword in INSERT"); err != nil {
		return nil, err
	}

	// One or more parenthesized value rows
	for {
		if _, err := p.expect(token.LPAREN, "Expected '(' before values list"); err != nil {
			return nil, err
		}
		var row []Expr
		for {
			expr, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			row = append(row, expr)
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RPAREN, "Expected ')' after values list"); err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, row)
		if !p.match(token.COMMA) {
			break
		}
	}

	return stmt, nil
}
