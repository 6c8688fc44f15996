package parser

import "github.com/quarrydb/quarry/pkg/token"

// parseAlterTableStmt parses ALTER TABLE with a comma-separated list of
// actions. The ALTER keyword has been consumed.
func (p *Parser) parseAlterTableStmt() (*AlterTableStmt, error) {
	stmt := &AlterTableStmt{}

	if _, err := p.expect(token.TABLE, "Expected TABLE keyword after ALTER"); err != nil {
		return nil, err
	}

	var err error
	if stmt.IfExists, err = p.parseIfExists("ALTER TABLE"); err != nil {
		return nil, err
	}

	nameTok, err := p.expect(token.IDENT, "Expected table name after ALTER TABLE")
	if err != nil {
		return nil, err
	}
	stmt.TableName = nameTok.Literal

	for {
		action, err := p.parseAlterTableAction()
		if err != nil {
			return nil, err
		}
		stmt.Actions = append(stmt.Actions, action)
		if !p.match(token.COMMA) {
			break
		}
	}
	return stmt, nil
}

func (p *Parser) parseAlterTableAction() (AlterAction, error) {
	switch {
	case p.match(token.ADD):
		return p.parseAddAction()
	case p.match(token.DROP):
		return p.parseDropAction()
	case p.match(token.ALTER):
		return p.parseAlterColumnAction()
	case p.match(token.RENAME):
		return p.parseRenameAction()
	case p.match(token.SET):
		return p.parseSetSchemaAction()
	case p.match(token.OWNER):
		return p.parseOwnerToAction()
	}
	return nil, p.syntaxError(errUnknownAction)
}

// parseAddAction parses ADD COLUMN and ADD CONSTRAINT.
func (p *Parser) parseAddAction() (AlterAction, error) {
	switch {
	case p.match(token.COLUMN):
		action := &AddColumnAction{}

		var err error
		if action.IfNotExists, err = p.parseIfNotExists("ADD COLUMN"); err != nil {
			return nil, err
		}

		nameTok, err := p.expect(token.IDENT, "Expected column name after ADD COLUMN")
		if err != nil {
			return nil, err
		}
		action.Column.Name = nameTok.Literal

		action.Column.Type, err = dataTypeFromToken(p.advance())
		if err != nil {
			return nil, err
		}

		for !p.check(token.COMMA) && !p.check(token.SEMICOLON) && !p.isEnd() {
			switch {
			case p.match(token.NOT):
				if _, err := p.expect(token.NULL, "Expected NULL after NOT in column constraint"); err != nil {
					return nil, err
				}
				action.Column.NotNull = true
			case p.match(token.UNIQUE):
				action.Column.Unique = true
			case p.match(token.PRIMARY):
				if _, err := p.expect(token.KEY, "Expected KEY after PRIMARY in column constraint"); err != nil {
					return nil, err
				}
				action.Column.PrimaryKey = true
			default:
				return nil, p.syntaxError("Unknown column constraint in ADD COLUMN")
			}
		}
		return action, nil

	case p.match(token.CONSTRAINT):
		action := &AddConstraintAction{}
		nameTok, err := p.expect(token.IDENT, "Expected column name after ADD CONSTRAINT")
		if err != nil {
			return nil, err
		}
		action.ColumnName = nameTok.Literal

		for !p.check(token.COMMA) && !p.check(token.SEMICOLON) && !p.isEnd() {
			switch {
			case p.match(token.NOT):
				if _, err := p.expect(token.NULL, "Expected NULL after NOT in constraint"); err != nil {
					return nil, err
				}
				action.NotNull = true
			case p.match(token.UNIQUE):
				action.Unique = true
			case p.match(token.PRIMARY):
				if _, err := p.expect(token.KEY, "Expected KEY after PRIMARY in constraint"); err != nil {
					return nil, err
				}
				action.PrimaryKey = true
			default:
				return nil, p.syntaxError("Unknown constraint in ADD CONSTRAINT")
			}
		}
		return action, nil
	}
	return nil, p.syntaxError("Expected COLUMN or CONSTRAINT after ADD in ALTER TABLE")
}

// parseDropAction parses DROP COLUMN and DROP CONSTRAINT.
func (p *Parser) parseDropAction() (AlterAction, error) {
	switch {
	case p.match(token.COLUMN):
		action := &DropColumnAction{}

		var err error
		if action.IfExists, err = p.parseIfExists("DROP COLUMN"); err != nil {
			return nil, err
		}

		nameTok, err := p.expect(token.IDENT, "Expected column name after DROP COLUMN")
		if err != nil {
			return nil, err
		}
		action.ColumnName = nameTok.Literal
		action.Cascade = p.match(token.CASCADE)
		return action, nil

	case p.match(token.CONSTRAINT):
		action := &DropConstraintAction{}

		var err error
		if action.IfExists, err = p.parseIfExists("DROP CONSTRAINT"); err != nil {
			return nil, err
		}

		nameTok, err := p.expect(token.IDENT, "Expected constraint name after DROP CONSTRAINT")
		if err != nil {
			return nil, err
		}
		action.ConstraintName = nameTok.Literal
		action.Cascade = p.match(token.CASCADE)
		return action, nil
	}
	return nil, p.syntaxError("Expected COLUMN or CONSTRAINT after DROP in ALTER TABLE")
}

// parseAlterColumnAction parses the ALTER COLUMN action family: TYPE,
// SET DEFAULT, SET NOT NULL, DROP DEFAULT, DROP NOT NULL.
func (p *Parser) parseAlterColumnAction() (AlterAction, error) {
	if _, err := p.expect(token.COLUMN, "Expected COLUMN after ALTER in ALTER TABLE"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT, "Expected column name after ALTER COLUMN")
	if err != nil {
		return nil, err
	}
	columnName := nameTok.Literal

	switch {
	case p.match(token.TYPE):
		action := &AlterColumnTypeAction{ColumnName: columnName}

		action.NewType, err = dataTypeFromToken(p.advance())
		if err != nil {
			return nil, err
		}
		if p.match(token.USING) {
			action.Using, err = p.parseExpression(0)
			if err != nil {
				return nil, err
			}
		}
		if p.match(token.COLLATE) {
			collTok, err := p.expect(token.IDENT, "Expected collation name after COLLATE")
			if err != nil {
				return nil, err
			}
			action.Collation = collTok.Literal
		}
		return action, nil

	case p.match(token.SET):
		switch {
		case p.match(token.DEFAULT):
			action := &AlterColumnDefaultAction{ColumnName: columnName}
			action.Default, err = p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			return action, nil
		case p.match(token.NOT):
			if _, err := p.expect(token.NULL, "Expected NULL after NOT in ALTER COLUMN"); err != nil {
				return nil, err
			}
			return &AlterColumnNotNullAction{ColumnName: columnName, SetNotNull: true}, nil
		}
		return nil, p.syntaxError("Expected DEFAULT or NOT NULL after SET in ALTER COLUMN")

	case p.match(token.DROP):
		switch {
		case p.match(token.DEFAULT):
			return &AlterColumnDefaultAction{ColumnName: columnName, Drop: true}, nil
		case p.match(token.NOT):
			if _, err := p.expect(token.NULL, "Expected NULL after NOT in ALTER COLUMN"); err != nil {
				return nil, err
			}
			return &AlterColumnNotNullAction{ColumnName: columnName, SetNotNull: false}, nil
		}
		return nil, p.syntaxError("Expected DEFAULT or NOT NULL after DROP in ALTER COLUMN")
	}
	return nil, p.syntaxError("Expected TYPE, SET, or DROP after ALTER COLUMN")
}

// parseRenameAction parses RENAME COLUMN, RENAME CONSTRAINT and the
// bare RENAME [TO] form that renames the table itself.
func (p *Parser) parseRenameAction() (AlterAction, error) {
	switch {
	case p.match(token.COLUMN):
		action := &RenameColumnAction{}
		oldTok, err := p.expect(token.IDENT, "Expected old column name after RENAME COLUMN")
		if err != nil {
			return nil, err
		}
		action.OldName = oldTok.Literal
		if _, err := p.expect(token.TO, "Expected TO after old column name in RENAME COLUMN"); err != nil {
			return nil, err
		}
		newTok, err := p.expect(token.IDENT, "Expected new column name after TO in RENAME COLUMN")
		if err != nil {
			return nil, err
		}
		action.NewName = newTok.Literal
		return action, nil

	case p.match(token.CONSTRAINT):
		action := &RenameConstraintAction{}
		oldTok, err := p.expect(token.IDENT, "Expected old constraint name after RENAME CONSTRAINT")
		if err != nil {
			return nil, err
		}
		action.OldName = oldTok.Literal
		if _, err := p.expect(token.TO, "Expected TO after old constraint name in RENAME CONSTRAINT"); err != nil {
			return nil, err
		}
		newTok, err := p.expect(token.IDENT, "Expected new constraint name after TO in RENAME CONSTRAINT")
		if err != nil {
			return nil, err
		}
		action.NewName = newTok.Literal
		return action, nil
	}

	// RENAME [TO] new_name renames the table
	p.match(token.TO)
	newTok, err := p.expect(token.IDENT, "Expected new table name after TO in RENAME TABLE")
	if err != nil {
		return nil, err
	}
	return &RenameTableAction{NewName: newTok.Literal}, nil
}

func (p *Parser) parseSetSchemaAction() (AlterAction, error) {
	if _, err := p.expect(token.SCHEMA, "Expected SCHEMA after SET in ALTER TABLE"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT, "Expected schema name after SET SCHEMA")
	if err != nil {
		return nil, err
	}
	return &SetSchemaAction{SchemaName: nameTok.Literal}, nil
}

func (p *Parser) parseOwnerToAction() (AlterAction, error) {
	if _, err := p.expect(token.TO, "Expected TO after OWNER in ALTER TABLE"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IDENT, "Expected new owner name after OWNER TO")
	if err != nil {
		return nil, err
	}
	return &OwnerToAction{NewOwner: nameTok.Literal}, nil
}
