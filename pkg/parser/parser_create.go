package parser

import (
	"strings"

	"github.com/quarrydb/quarry/pkg/token"
)

// parseCreateStmt dispatches on the object type of a CREATE statement.
// The CREATE keyword has been consumed; optional modifiers (TEMPORARY,
// UNIQUE, OR REPLACE, CONCURRENTLY) are skipped by lookahead so the
// object keyword decides the sub-parser.
func (p *Parser) parseCreateStmt() (Statement, error) {
	offset := 0
	for {
		t := p.peek(offset).Type
		if t == token.TEMPORARY || t == token.UNIQUE || t == token.OR ||
			t == token.REPLACE || t == token.CONCURRENTLY || t == token.RECURSIVE {
			offset++
			continue
		}
		break
	}

	switch p.peek(offset).Type {
	case token.TABLE:
		return p.parseCreateTableStmt()
	case token.SEQUENCE:
		return p.parseCreateSequenceStmt()
	case token.INDEX:
		return p.parseCreateIndexStmt()
	case token.TRIGGER:
		return p.parseCreateTriggerStmt()
	case token.SCHEMA:
		return p.parseCreateSchemaStmt()
	case token.COLLATION:
		return p.parseCreateCollationStmt()
	case token.DATABASE:
		return p.parseCreateDatabaseStmt()
	case token.ROLE:
		return p.parseCreateRoleStmt()
	case token.VIEW:
		return p.parseCreateViewStmt()
	}
	return nil, p.syntaxError(errUnknownCreateKind)
}

// parseColumnDef parses one column definition: name, type, and zero or
// more inline constraints.
func (p *Parser) parseColumnDef() (ColumnDef, error) {
	var def ColumnDef

	nameTok, err := p.expect(token.IDENT, "Expected column name in column definition")
	if err != nil {
		return def, err
	}
	def.Name = nameTok.Literal

	def.Type, err = dataTypeFromToken(p.advance())
	if err != nil {
		return def, err
	}

	for !p.check(token.COMMA) && !p.check(token.RPAREN) {
		switch {
		case p.match(token.NOT):
			if _, err := p.expect(token.NULL, "Expected NULL after NOT in column constraint"); err != nil {
				return def, err
			}
			def.NotNull = true
		case p.match(token.UNIQUE):
			def.Unique = true
		case p.match(token.PRIMARY):
			if _, err := p.expect(token.KEY, "Expected KEY after PRIMARY in column constraint"); err != nil {
				return def, err
			}
			def.PrimaryKey = true
		default:
			return def, p.syntaxError("Unknown column constraint in column definition")
		}
	}
	return def, nil
}

// parseColumnNameList parses a parenthesized comma-separated column list.
func (p *Parser) parseColumnNameList(context string) ([]string, error) {
	if _, err := p.expect(token.LPAREN, "Expected '(' in "+context); err != nil {
		return nil, err
	}
	var cols []string
	for {
		col, err := p.expect(token.IDENT, "Expected column name in "+context)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col.Literal)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.expect(token.RPAREN, "Expected ')' in "+context); err != nil {
		return nil, err
	}
	return cols, nil
}

// parseTableConstraint parses a table-level constraint, optionally named
// with a leading CONSTRAINT clause.
func (p *Parser) parseTableConstraint() (TableConstraint, error) {
	var constraint TableConstraint

	if p.match(token.CONSTRAINT) {
		nameTok, err := p.expect(token.IDENT, "Expected constraint name after CONSTRAINT")
		if err != nil {
			return constraint, err
		}
		constraint.Name = nameTok.Literal
	}

	switch p.current().Type {
	case token.PRIMARY:
		p.advance()
		if _, err := p.expect(token.KEY, "Expected KEY after PRIMARY in table constraint"); err != nil {
			return constraint, err
		}
		constraint.Type = ConstraintPrimaryKey
		cols, err := p.parseColumnNameList("PRIMARY KEY constraint")
		if err != nil {
			return constraint, err
		}
		constraint.Columns = cols

	case token.UNIQUE:
		p.advance()
		constraint.Type = ConstraintUnique
		cols, err := p.parseColumnNameList("UNIQUE constraint")
		if err != nil {
			return constraint, err
		}
		constraint.Columns = cols

	case token.FOREIGN:
		p.advance()
		if _, err := p.expect(token.KEY, "Expected KEY after FOREIGN in table constraint"); err != nil {
			return constraint, err
		}
		constraint.Type = ConstraintForeignKey
		constraint.FKMatch = FKMatchSimple
		constraint.FKUpdateAction = FKNoAction
		constraint.FKDeleteAction = FKNoAction

		cols, err := p.parseColumnNameList("FOREIGN KEY constraint")
		if err != nil {
			return constraint, err
		}
		constraint.Columns = cols

		if _, err := p.expect(token.REFERENCES, "Expected REFERENCES in FOREIGN KEY constraint"); err != nil {
			return constraint, err
		}
		tableTok, err := p.expect(token.IDENT, "Expected referenced table name in FOREIGN KEY constraint")
		if err != nil {
			return constraint, err
		}
		constraint.ForeignTable = tableTok.Literal

		foreignCols, err := p.parseColumnNameList("FOREIGN KEY references")
		if err != nil {
			return constraint, err
		}
		constraint.ForeignColumns = foreignCols

	case token.CHECK:
		p.advance()
		constraint.Type = ConstraintCheck
		if _, err := p.expect(token.LPAREN, "Expected '(' after CHECK in table constraint"); err != nil {
			return constraint, err
		}
		expr, err := p.parseExpression(0)
		if err != nil {
			return constraint, err
		}
		constraint.CheckExpr = expr
		if _, err := p.expect(token.RPAREN, "Expected ')' after CHECK expression in table constraint"); err != nil {
			return constraint, err
		}

	default:
		return constraint, p.syntaxError("Unknown table constraint type")
	}
	return constraint, nil
}

// isConstraintStart reports whether the current token begins a table
// constraint rather than a column definition.
func (p *Parser) isConstraintStart() bool {
	switch p.current().Type {
	case token.CONSTRAINT, token.PRIMARY, token.FOREIGN, token.CHECK, token.UNIQUE:
		return true
	}
	return false
}

// parseCreateTableStmt parses CREATE TABLE.
//
//	CREATE TABLE [IF NOT EXISTS] name ( element, ... )
//
// where each element is a column definition or a table constraint, mixed
// in any order.
func (p *Parser) parseCreateTableStmt() (*CreateTableStmt, error) {
	stmt := &CreateTableStmt{}

	if _, err := p.expect(token.TABLE, "Expected TABLE keyword after CREATE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE TABLE"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected table name after CREATE TABLE")
	if err != nil {
		return nil, err
	}
	stmt.TableName = nameTok.Literal

	if _, err := p.expect(token.LPAREN, "Expected '(' after table name in CREATE TABLE"); err != nil {
		return nil, err
	}

	first := true
	for !p.check(token.RPAREN) && !p.isEnd() {
		if !first {
			if _, err := p.expect(token.COMMA, "Expected ',' between table elements"); err != nil {
				return nil, err
			}
		}
		first = false

		if p.isConstraintStart() {
			constraint, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			stmt.Constraints = append(stmt.Constraints, constraint)
		} else {
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			stmt.Columns = append(stmt.Columns, col)
		}
	}

	if _, err := p.expect(token.RPAREN, "Expected ')' after column definitions in CREATE TABLE"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parseCreateRoleStmt parses CREATE ROLE with its unparenthesized WITH
// option list.
func (p *Parser) parseCreateRoleStmt() (*CreateRoleStmt, error) {
	stmt := &CreateRoleStmt{Inherit: true}

	if _, err := p.expect(token.ROLE, "Expected ROLE keyword after CREATE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE ROLE"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected role name after CREATE ROLE")
	if err != nil {
		return nil, err
	}
	stmt.RoleName = nameTok.Literal

	if !p.match(token.WITH) {
		return stmt, nil
	}

	for !p.check(token.SEMICOLON) && !p.isEnd() {
		switch p.current().Type {
		case token.LOGIN:
			stmt.Login = true
			p.advance()
		case token.NOLOGIN:
			stmt.Login = false
			p.advance()
		case token.SUPERUSER:
			stmt.Superuser = true
			p.advance()
		case token.NOSUPERUSER:
			stmt.Superuser = false
			p.advance()
		case token.CREATEDB:
			stmt.CreateDB = true
			p.advance()
		case token.NOCREATEDB:
			stmt.CreateDB = false
			p.advance()
		case token.CREATEROLE:
			stmt.CreateRole = true
			p.advance()
		case token.NOCREATEROLE:
			stmt.CreateRole = false
			p.advance()
		case token.INHERIT:
			stmt.Inherit = true
			p.advance()
		case token.NOINHERIT:
			stmt.Inherit = false
			p.advance()
		case token.VALID:
			p.advance()
			if _, err := p.expect(token.UNTIL, "Expected UNTIL after VALID in CREATE ROLE"); err != nil {
				return nil, err
			}
			tsTok, err := p.expect(token.STRING, "Expected timestamp string after VALID UNTIL in CREATE ROLE")
			if err != nil {
				return nil, err
			}
			stmt.ValidUntil = tsTok.Literal
		case token.PASSWORD:
			p.advance()
			if p.match(token.NULL) {
				stmt.Password = ""
				stmt.HasPassword = false
			} else {
				pwdTok, err := p.expect(token.STRING, "Expected password string after PASSWORD in CREATE ROLE")
				if err != nil {
					return nil, err
				}
				stmt.Password = pwdTok.Literal
				stmt.HasPassword = true
			}
		case token.CONNECTION:
			p.advance()
			if _, err := p.expect(token.LIMIT, "Expected LIMIT after CONNECTION in CREATE ROLE"); err != nil {
				return nil, err
			}
			limitTok := p.current()
			limit, err := p.parseSignedInt("Expected number after LIMIT in CREATE ROLE")
			if err != nil {
				return nil, err
			}
			if limit < -1 {
				return nil, &SyntaxError{Pos: limitTok.Pos, Message: "Connection limit cannot be less than -1 in CREATE ROLE"}
			}
			stmt.ConnLimit = &limit
		default:
			return nil, p.syntaxError("Unknown option in CREATE ROLE")
		}
	}
	return stmt, nil
}

// parseBooleanWord reads a TRUE/FALSE identifier or keyword value used by
// the key = value option syntax.
func (p *Parser) parseBooleanWord(context string) (bool, error) {
	tok := p.current()
	switch tok.Type {
	case token.TRUE:
		p.advance()
		return true, nil
	case token.FALSE:
		p.advance()
		return false, nil
	case token.IDENT:
		switch strings.ToUpper(tok.Literal) {
		case "TRUE":
			p.advance()
			return true, nil
		case "FALSE":
			p.advance()
			return false, nil
		}
	}
	return false, p.syntaxError("Expected TRUE or FALSE after '=' in " + context)
}

// parseCreateCollationStmt parses CREATE COLLATION with either a FROM
// clause copying an existing collation or a parenthesized option list.
func (p *Parser) parseCreateCollationStmt() (*CreateCollationStmt, error) {
	stmt := &CreateCollationStmt{Deterministic: true}

	if _, err := p.expect(token.COLLATION, "Expected COLLATION keyword after CREATE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE COLLATION"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected collation name after CREATE COLLATION")
	if err != nil {
		return nil, err
	}
	stmt.CollationName = nameTok.Literal

	if p.match(token.FROM) {
		fromTok, err := p.expect(token.IDENT, "Expected collation name after FROM in CREATE COLLATION")
		if err != nil {
			return nil, err
		}
		stmt.FromCollation = fromTok.Literal
		return stmt, nil
	}

	if p.match(token.LPAREN) {
		for {
			switch {
			case p.match(token.LOCALE):
				if _, err := p.expect(token.EQUALS, "Expected '=' after LOCALE in CREATE COLLATION"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.STRING, "Expected locale string after '=' in CREATE COLLATION")
				if err != nil {
					return nil, err
				}
				stmt.Locale = tok.Literal
			case p.match(token.DETERMINISTIC):
				if _, err := p.expect(token.EQUALS, "Expected '=' after DETERMINISTIC in CREATE COLLATION"); err != nil {
					return nil, err
				}
				v, err := p.parseBooleanWord("CREATE COLLATION")
				if err != nil {
					return nil, err
				}
				stmt.Deterministic = v
			case p.match(token.RULES):
				if _, err := p.expect(token.EQUALS, "Expected '=' after RULES in CREATE COLLATION"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.STRING, "Expected rules string after '=' in CREATE COLLATION")
				if err != nil {
					return nil, err
				}
				stmt.Rules = tok.Literal
			case p.match(token.PROVIDER):
				if _, err := p.expect(token.EQUALS, "Expected '=' after PROVIDER in CREATE COLLATION"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.STRING, "Expected provider string after '=' in CREATE COLLATION")
				if err != nil {
					return nil, err
				}
				stmt.Provider = tok.Literal
			default:
				return nil, p.syntaxError("Unknown option in CREATE COLLATION")
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RPAREN, "Expected ')' after options in CREATE COLLATION"); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseCreateDatabaseStmt parses CREATE DATABASE with its parenthesized
// key = value option list.
func (p *Parser) parseCreateDatabaseStmt() (*CreateDatabaseStmt, error) {
	stmt := &CreateDatabaseStmt{
		Owner:      "DEFAULT",
		Encoding:   "UTF-8",
		Tablespace: "qr_default",
		AllowConn:  true,
		ConnLimit:  -1,
	}

	if _, err := p.expect(token.DATABASE, "Expected DATABASE keyword after CREATE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE DATABASE"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected database name after CREATE DATABASE")
	if err != nil {
		return nil, err
	}
	stmt.Name = nameTok.Literal

	if p.match(token.LPAREN) {
		for {
			switch {
			case p.match(token.OWNER):
				if _, err := p.expect(token.EQUALS, "Expected '=' after OWNER in CREATE DATABASE"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.IDENT, "Expected owner name after '=' in CREATE DATABASE")
				if err != nil {
					return nil, err
				}
				stmt.Owner = tok.Literal
			case p.match(token.ENCODING):
				if _, err := p.expect(token.EQUALS, "Expected '=' after ENCODING in CREATE DATABASE"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.STRING, "Expected encoding string after '=' in CREATE DATABASE")
				if err != nil {
					return nil, err
				}
				stmt.Encoding = tok.Literal
			case p.match(token.TABLESPACE):
				if _, err := p.expect(token.EQUALS, "Expected '=' after TABLESPACE in CREATE DATABASE"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.IDENT, "Expected tablespace name after '=' in CREATE DATABASE")
				if err != nil {
					return nil, err
				}
				stmt.Tablespace = tok.Literal
			case p.match(token.ALLOW_CONNECTIONS):
				if _, err := p.expect(token.EQUALS, "Expected '=' after ALLOW_CONNECTIONS in CREATE DATABASE"); err != nil {
					return nil, err
				}
				v, err := p.parseBooleanWord("CREATE DATABASE")
				if err != nil {
					return nil, err
				}
				stmt.AllowConn = v
			case p.match(token.CONNECTION_LIMIT):
				if _, err := p.expect(token.EQUALS, "Expected '=' after CONNECTION_LIMIT in CREATE DATABASE"); err != nil {
					return nil, err
				}
				tok, err := p.expect(token.NUMBER, "Expected connection limit number after '=' in CREATE DATABASE")
				if err != nil {
					return nil, err
				}
				stmt.ConnLimit, err = parseIntLiteral(tok)
				if err != nil {
					return nil, err
				}
			default:
				return nil, p.syntaxError("Unknown option in CREATE DATABASE")
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		if _, err := p.expect(token.RPAREN, "Expected ')' after options in CREATE DATABASE"); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseCreateIndexStmt parses CREATE [UNIQUE] INDEX with its element
// list, partial-index predicate and tablespace.
func (p *Parser) parseCreateIndexStmt() (*CreateIndexStmt, error) {
	stmt := &CreateIndexStmt{}

	if p.match(token.UNIQUE) {
		stmt.Unique = true
	}
	if _, err := p.expect(token.INDEX, "Expected INDEX keyword in CREATE INDEX"); err != nil {
		return nil, err
	}
	if p.match(token.CONCURRENTLY) {
		stmt.Concurrently = true
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE INDEX"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected index name in CREATE INDEX")
	if err != nil {
		return nil, err
	}
	stmt.IndexName = nameTok.Literal

	if _, err := p.expect(token.ON, "Expected ON keyword in CREATE INDEX"); err != nil {
		return nil, err
	}
	if p.match(token.ONLY) {
		stmt.Only = true
	}
	tableTok, err := p.expect(token.IDENT, "Expected table name in CREATE INDEX")
	if err != nil {
		return nil, err
	}
	stmt.TableName = tableTok.Literal

	if p.match(token.USING) {
		methodTok, err := p.expect(token.IDENT, "Expected index method name after USING in CREATE INDEX")
		if err != nil {
			return nil, err
		}
		stmt.Method = methodTok.Literal
	}

	if _, err := p.expect(token.LPAREN, "Expected '(' before index columns in CREATE INDEX"); err != nil {
		return nil, err
	}
	for {
		elem, err := p.parseIndexElem()
		if err != nil {
			return nil, err
		}
		stmt.Elems = append(stmt.Elems, elem)
		if !p.match(token.COMMA) {
			break
		}
	}
	if _, err := p.expect(token.RPAREN, "Expected ')' after index columns in CREATE INDEX"); err != nil {
		return nil, err
	}

	if p.match(token.WHERE) {
		where, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.Where = where
	}

	if p.match(token.TABLESPACE) {
		tsTok, err := p.expect(token.IDENT, "Expected tablespace name after TABLESPACE in CREATE INDEX")
		if err != nil {
			return nil, err
		}
		stmt.Tablespace = tsTok.Literal
	}

	return stmt, nil
}

// parseIndexElem parses one index element: a bare column name or an
// expression, with optional collation, operator class, ordering and
// nulls placement.
func (p *Parser) parseIndexElem() (IndexElem, error) {
	var elem IndexElem

	expr, err := p.parseExpression(0)
	if err != nil {
		return elem, err
	}
	if ref, ok := expr.(*ColumnRef); ok && ref.Table == "" {
		elem.Name = ref.Name
	} else {
		elem.Expr = expr
	}

	if p.match(token.COLLATE) {
		collTok, err := p.expect(token.IDENT, "Expected collation name after COLLATE in index element")
		if err != nil {
			return elem, err
		}
		elem.Collation = collTok.Literal
	}

	// A trailing bare identifier names an operator class
	if p.check(token.IDENT) {
		elem.OpClass = p.advance().Literal
	}

	if p.match(token.ASC) {
		elem.Ordering = OrderAsc
	} else if p.match(token.DESC) {
		elem.Ordering = OrderDesc
	}

	if p.match(token.NULLS) {
		var nullsFirst bool
		switch {
		case p.match(token.FIRST):
			nullsFirst = true
		case p.match(token.LAST):
			nullsFirst = false
		default:
			return elem, p.syntaxError("Expected FIRST or LAST after NULLS in index element")
		}
		elem.NullsFirst = &nullsFirst
	}
	return elem, nil
}

// parseCreateTriggerStmt parses CREATE TRIGGER.
//
//	CREATE TRIGGER name {BEFORE|AFTER|INSTEAD OF} event [OR event ...]
//	[FOR EACH {ROW|STATEMENT}] [WHEN ( expr )] ON table
//	EXECUTE FUNCTION func [( args )]
func (p *Parser) parseCreateTriggerStmt() (*CreateTriggerStmt, error) {
	stmt := &CreateTriggerStmt{ForEach: TriggerForEachStatement}

	if _, err := p.expect(token.TRIGGER, "Expected TRIGGER keyword in CREATE TRIGGER"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected trigger name in CREATE TRIGGER")
	if err != nil {
		return nil, err
	}
	stmt.TriggerName = nameTok.Literal

	switch {
	case p.match(token.BEFORE):
		stmt.Timing = TriggerBefore
	case p.match(token.AFTER):
		stmt.Timing = TriggerAfter
	case p.match(token.INSTEAD):
		if _, err := p.expect(token.OF, "Expected OF after INSTEAD in CREATE TRIGGER"); err != nil {
			return nil, err
		}
		stmt.Timing = TriggerInsteadOf
	default:
		return nil, p.syntaxError("Expected trigger timing (BEFORE, AFTER, INSTEAD OF) in CREATE TRIGGER")
	}

	// Events, separated by OR
	for {
		switch {
		case p.match(token.INSERT):
			stmt.Events = append(stmt.Events, TriggerEventInsert)
		case p.match(token.UPDATE):
			stmt.Events = append(stmt.Events, TriggerEventUpdate)
			if p.match(token.OF) {
				for {
					colTok, err := p.expect(token.IDENT, "Expected column name after UPDATE OF in CREATE TRIGGER")
					if err != nil {
						return nil, err
					}
					stmt.UpdateOfColumns = append(stmt.UpdateOfColumns, colTok.Literal)
					if !p.match(token.COMMA) {
						break
					}
				}
			}
		case p.match(token.DELETE):
			stmt.Events = append(stmt.Events, TriggerEventDelete)
		case p.match(token.TRUNCATE):
			stmt.Events = append(stmt.Events, TriggerEventTruncate)
		default:
			return nil, p.syntaxError("Expected trigger event (INSERT, UPDATE, DELETE, TRUNCATE) in CREATE TRIGGER")
		}
		if !p.match(token.OR) {
			break
		}
	}

	if p.match(token.FOR) {
		if _, err := p.expect(token.EACH, "Expected EACH after FOR in CREATE TRIGGER"); err != nil {
			return nil, err
		}
		switch {
		case p.match(token.ROW):
			stmt.ForEach = TriggerForEachRow
		case p.match(token.STATEMENT):
			stmt.ForEach = TriggerForEachStatement
		default:
			return nil, p.syntaxError("Expected ROW or STATEMENT after EACH in CREATE TRIGGER")
		}
	}

	if p.match(token.WHEN) {
		if _, err := p.expect(token.LPAREN, "Expected '(' after WHEN in CREATE TRIGGER"); err != nil {
			return nil, err
		}
		when, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		stmt.When = when
		if _, err := p.expect(token.RPAREN, "Expected ')' after WHEN expression in CREATE TRIGGER"); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.ON, "Expected ON keyword in CREATE TRIGGER"); err != nil {
		return nil, err
	}
	tableTok, err := p.expect(token.IDENT, "Expected table name in CREATE TRIGGER")
	if err != nil {
		return nil, err
	}
	stmt.TableName = tableTok.Literal

	if _, err := p.expect(token.EXECUTE, "Expected EXECUTE keyword in CREATE TRIGGER"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.FUNCTION, "Expected FUNCTION keyword in CREATE TRIGGER"); err != nil {
		return nil, err
	}
	funcTok, err := p.expect(token.IDENT, "Expected function name in CREATE TRIGGER")
	if err != nil {
		return nil, err
	}
	stmt.FunctionName = funcTok.Literal

	if p.match(token.LPAREN) {
		if !p.check(token.RPAREN) {
			for {
				arg, err := p.parseExpression(0)
				if err != nil {
					return nil, err
				}
				stmt.FunctionArgs = append(stmt.FunctionArgs, arg)
				if !p.match(token.COMMA) {
					break
				}
			}
		}
		if _, err := p.expect(token.RPAREN, "Expected ')' after function arguments in CREATE TRIGGER"); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseCreateSequenceStmt parses CREATE SEQUENCE with its postfix option
// clauses. Numeric options accept a leading minus.
func (p *Parser) parseCreateSequenceStmt() (*CreateSequenceStmt, error) {
	stmt := &CreateSequenceStmt{StartValue: 1, IncrementBy: 1}

	if p.match(token.TEMPORARY) {
		stmt.Temporary = true
	}

	if _, err := p.expect(token.SEQUENCE, "Expected SEQUENCE keyword in CREATE SEQUENCE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE SEQUENCE"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected sequence name after CREATE SEQUENCE")
	if err != nil {
		return nil, err
	}
	stmt.SequenceName = nameTok.Literal

	for !p.check(token.SEMICOLON) && !p.isEnd() {
		switch p.current().Type {
		case token.INCREMENT:
			p.advance()
			if _, err := p.expect(token.BY, "Expected BY after INCREMENT in CREATE SEQUENCE"); err != nil {
				return nil, err
			}
			stmt.IncrementBy, err = p.parseSignedInt("Expected number after INCREMENT BY in CREATE SEQUENCE")
			if err != nil {
				return nil, err
			}
		case token.MINVALUE:
			p.advance()
			v, err := p.parseSignedInt("Expected number after MINVALUE in CREATE SEQUENCE")
			if err != nil {
				return nil, err
			}
			stmt.MinValue = &v
		case token.MAXVALUE:
			p.advance()
			v, err := p.parseSignedInt("Expected number after MAXVALUE in CREATE SEQUENCE")
			if err != nil {
				return nil, err
			}
			stmt.MaxValue = &v
		case token.CYCLE:
			p.advance()
			stmt.Cycle = true
		case token.START:
			p.advance()
			if _, err := p.expect(token.WITH, "Expected WITH after START in CREATE SEQUENCE"); err != nil {
				return nil, err
			}
			stmt.StartValue, err = p.parseSignedInt("Expected number after START WITH in CREATE SEQUENCE")
			if err != nil {
				return nil, err
			}
		case token.CACHE:
			p.advance()
			tok, err := p.expect(token.NUMBER, "Expected number after CACHE in CREATE SEQUENCE")
			if err != nil {
				return nil, err
			}
			v, err := parseIntLiteral(tok)
			if err != nil {
				return nil, err
			}
			stmt.CacheSize = &v
		case token.NO:
			p.advance()
			switch {
			case p.match(token.CYCLE):
				stmt.Cycle = false
			case p.match(token.MINVALUE):
				stmt.MinValue = nil
			case p.match(token.MAXVALUE):
				stmt.MaxValue = nil
			default:
				return nil, p.syntaxError("Expected CYCLE, MINVALUE, or MAXVALUE after NO in CREATE SEQUENCE")
			}
		case token.OWNED:
			p.advance()
			if _, err := p.expect(token.BY, "Expected BY after OWNED in CREATE SEQUENCE"); err != nil {
				return nil, err
			}
			if p.match(token.NONE) {
				stmt.Owner = nil
			} else {
				tableTok, err := p.expect(token.IDENT, "Expected table name after OWNED BY in CREATE SEQUENCE")
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.DOT, "Expected '.' between table and column name in OWNED BY in CREATE SEQUENCE"); err != nil {
					return nil, err
				}
				colTok, err := p.expect(token.IDENT, "Expected column name after '.' in OWNED BY in CREATE SEQUENCE")
				if err != nil {
					return nil, err
				}
				stmt.Owner = &SequenceOwner{Table: tableTok.Literal, Column: colTok.Literal}
			}
		default:
			return nil, p.syntaxError("Unknown option in CREATE SEQUENCE")
		}
	}
	return stmt, nil
}

// parseCreateViewStmt parses CREATE [OR REPLACE] [TEMPORARY] [RECURSIVE]
// VIEW name [( col, ... )] AS select.
func (p *Parser) parseCreateViewStmt() (*CreateViewStmt, error) {
	stmt := &CreateViewStmt{}

	if p.match(token.OR) {
		if _, err := p.expect(token.REPLACE, "Expected REPLACE after OR in CREATE VIEW"); err != nil {
			return nil, err
		}
		stmt.OrReplace = true
	}
	if p.match(token.TEMPORARY) {
		stmt.Temporary = true
	}
	if p.match(token.RECURSIVE) {
		stmt.Recursive = true
	}

	if _, err := p.expect(token.VIEW, "Expected VIEW keyword in CREATE VIEW"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT, "Expected view name in CREATE VIEW")
	if err != nil {
		return nil, err
	}
	stmt.ViewName = nameTok.Literal

	if p.check(token.LPAREN) {
		cols, err := p.parseColumnNameList("view column list")
		if err != nil {
			return nil, err
		}
		stmt.Columns = cols
	}

	if _, err := p.expect(token.AS, "Expected AS keyword in CREATE VIEW"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SELECT, "Expected SELECT after AS in CREATE VIEW"); err != nil {
		return nil, err
	}
	sel, err := p.parseSelectStmt()
	if err != nil {
		return nil, err
	}
	stmt.Select = sel

	return stmt, nil
}

// parseCreateSchemaStmt parses CREATE SCHEMA with optional AUTHORIZATION
// and nested schema elements (CREATE bodies without the CREATE keyword).
func (p *Parser) parseCreateSchemaStmt() (*CreateSchemaStmt, error) {
	stmt := &CreateSchemaStmt{}

	if _, err := p.expect(token.SCHEMA, "Expected SCHEMA keyword after CREATE"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfNotExists, err = p.parseIfNotExists("CREATE SCHEMA"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected schema name after CREATE SCHEMA")
	if err != nil {
		return nil, err
	}
	stmt.SchemaName = nameTok.Literal

	if p.match(token.AUTHORIZATION) {
		ownerTok, err := p.expect(token.IDENT, "Expected owner name after AUTHORIZATION in CREATE SCHEMA")
		if err != nil {
			return nil, err
		}
		stmt.Authorization = ownerTok.Literal
	}

	for !p.check(token.SEMICOLON) && !p.isEnd() {
		var (
			element SchemaElement
			err     error
		)
		switch p.current().Type {
		case token.TABLE:
			element, err = p.parseCreateTableStmt()
		case token.INDEX:
			element, err = p.parseCreateIndexStmt()
		case token.VIEW:
			element, err = p.parseCreateViewStmt()
		case token.SEQUENCE:
			element, err = p.parseCreateSequenceStmt()
		case token.TRIGGER:
			element, err = p.parseCreateTriggerStmt()
		default:
			return nil, p.syntaxError("Unknown schema element type in CREATE SCHEMA")
		}
		if err != nil {
			return nil, err
		}
		stmt.Elements = append(stmt.Elements, element)
	}
	return stmt, nil
}
