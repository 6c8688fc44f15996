package parser

import "github.com/quarrydb/quarry/pkg/token"

// parseDropStmt parses DROP for every supported object kind. The DROP
// keyword has been consumed; the object keyword selects the kind and
// one or more names follow, with optional CASCADE or RESTRICT.
func (p *Parser) parseDropStmt() (*DropStmt, error) {
	stmt := &DropStmt{}

	switch p.current().Type {
	case token.TABLE:
		stmt.ObjectType = ObjectTable
	case token.VIEW:
		stmt.ObjectType = ObjectView
	case token.INDEX:
		stmt.ObjectType = ObjectIndex
	case token.SCHEMA:
		stmt.ObjectType = ObjectSchema
	case token.TRIGGER:
		stmt.ObjectType = ObjectTrigger
	case token.SEQUENCE:
		stmt.ObjectType = ObjectSequence
	case token.COLLATION:
		stmt.ObjectType = ObjectCollation
	case token.DATABASE:
		stmt.ObjectType = ObjectDatabase
	case token.USER:
		stmt.ObjectType = ObjectUser
	case token.TYPE:
		stmt.ObjectType = ObjectDataType
	default:
		return nil, p.syntaxError(errUnknownDropKind)
	}
	p.advance()

	// DROP INDEX is always treated as concurrent; the other kinds take
	// an explicit CONCURRENTLY.
	if p.match(token.CONCURRENTLY) || stmt.ObjectType == ObjectIndex {
		stmt.Concurrently = true
	}

	var err error
	if stmt.IfExists, err = p.parseIfExists("DROP statement"); err != nil {
		return nil, err
	}

	for {
		nameTok, err := p.expect(token.IDENT, "Expected object name in DROP statement")
		if err != nil {
			return nil, err
		}
		stmt.Names = append(stmt.Names, nameTok.Literal)
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.match(token.CASCADE) {
		stmt.Cascade = true
	} else if p.match(token.RESTRICT) {
		stmt.Restrict = true
	}
	return stmt, nil
}
