package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/pkg/parser"
)

// alterActions parses an ALTER TABLE statement and returns its actions.
func alterActions(t *testing.T, sql string) []parser.AlterAction {
	t.Helper()
	stmt := parseOne(t, sql)
	alter, ok := stmt.(*parser.AlterTableStmt)
	require.True(t, ok)
	return alter.Actions
}

// ---------- ALTER TABLE Tests ----------

func TestAlterTableAddColumn(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ADD COLUMN IF NOT EXISTS age INTEGER NOT NULL UNIQUE")
	require.Len(t, actions, 1)

	add, ok := actions[0].(*parser.AddColumnAction)
	require.True(t, ok)
	assert.True(t, add.IfNotExists)
	assert.Equal(t, "age", add.Column.Name)
	assert.Equal(t, parser.TypeInteger, add.Column.Type)
	assert.True(t, add.Column.NotNull)
	assert.True(t, add.Column.Unique)
}

func TestAlterTableAddConstraint(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ADD CONSTRAINT email UNIQUE NOT NULL")
	require.Len(t, actions, 1)

	add, ok := actions[0].(*parser.AddConstraintAction)
	require.True(t, ok)
	assert.Equal(t, "email", add.ColumnName)
	assert.True(t, add.Unique)
	assert.True(t, add.NotNull)
	assert.False(t, add.PrimaryKey)
}

func TestAlterTableDropColumn(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users DROP COLUMN IF EXISTS age CASCADE")
	require.Len(t, actions, 1)

	drop, ok := actions[0].(*parser.DropColumnAction)
	require.True(t, ok)
	assert.True(t, drop.IfExists)
	assert.Equal(t, "age", drop.ColumnName)
	assert.True(t, drop.Cascade)
}

func TestAlterTableDropConstraint(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users DROP CONSTRAINT uq_email")
	require.Len(t, actions, 1)

	drop, ok := actions[0].(*parser.DropConstraintAction)
	require.True(t, ok)
	assert.Equal(t, "uq_email", drop.ConstraintName)
	assert.False(t, drop.Cascade)
}

func TestAlterColumnType(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ALTER COLUMN age TYPE BIGINT USING age + 0 COLLATE numeric")
	require.Len(t, actions, 1)

	alter, ok := actions[0].(*parser.AlterColumnTypeAction)
	require.True(t, ok)
	assert.Equal(t, "age", alter.ColumnName)
	assert.Equal(t, parser.TypeBigInt, alter.NewType)
	require.NotNil(t, alter.Using)
	assert.Equal(t, "numeric", alter.Collation)
}

func TestAlterColumnSetDefault(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ALTER COLUMN age SET DEFAULT 18")
	require.Len(t, actions, 1)

	def, ok := actions[0].(*parser.AlterColumnDefaultAction)
	require.True(t, ok)
	assert.False(t, def.Drop)
	require.NotNil(t, def.Default)
}

func TestAlterColumnDropDefault(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ALTER COLUMN age DROP DEFAULT")
	require.Len(t, actions, 1)

	def, ok := actions[0].(*parser.AlterColumnDefaultAction)
	require.True(t, ok)
	assert.True(t, def.Drop)
	assert.Nil(t, def.Default)
}

func TestAlterColumnNotNull(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users ALTER COLUMN age SET NOT NULL")
	set, ok := actions[0].(*parser.AlterColumnNotNullAction)
	require.True(t, ok)
	assert.True(t, set.SetNotNull)

	actions = alterActions(t, "ALTER TABLE users ALTER COLUMN age DROP NOT NULL")
	set, ok = actions[0].(*parser.AlterColumnNotNullAction)
	require.True(t, ok)
	assert.False(t, set.SetNotNull)
}

func TestAlterTableRenameColumn(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users RENAME COLUMN name TO full_name")
	rename, ok := actions[0].(*parser.RenameColumnAction)
	require.True(t, ok)
	assert.Equal(t, "name", rename.OldName)
	assert.Equal(t, "full_name", rename.NewName)
}

func TestAlterTableRenameConstraint(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users RENAME CONSTRAINT old TO new_name")
	rename, ok := actions[0].(*parser.RenameConstraintAction)
	require.True(t, ok)
	assert.Equal(t, "old", rename.OldName)
	assert.Equal(t, "new_name", rename.NewName)
}

func TestAlterTableRenameTable(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users RENAME TO people")
	rename, ok := actions[0].(*parser.RenameTableAction)
	require.True(t, ok)
	assert.Equal(t, "people", rename.NewName)

	// TO is optional
	actions = alterActions(t, "ALTER TABLE users RENAME people")
	rename, ok = actions[0].(*parser.RenameTableAction)
	require.True(t, ok)
	assert.Equal(t, "people", rename.NewName)
}

func TestAlterTableSetSchema(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users SET SCHEMA app")
	set, ok := actions[0].(*parser.SetSchemaAction)
	require.True(t, ok)
	assert.Equal(t, "app", set.SchemaName)
}

func TestAlterTableOwnerTo(t *testing.T) {
	actions := alterActions(t, "ALTER TABLE users OWNER TO bob")
	owner, ok := actions[0].(*parser.OwnerToAction)
	require.True(t, ok)
	assert.Equal(t, "bob", owner.NewOwner)
}

func TestAlterTableMultipleActions(t *testing.T) {
	stmt := parseOne(t, "ALTER TABLE IF EXISTS users ADD COLUMN age INTEGER, DROP COLUMN email, OWNER TO bob")
	alter := stmt.(*parser.AlterTableStmt)

	assert.True(t, alter.IfExists)
	require.Len(t, alter.Actions, 3)
	_, ok := alter.Actions[0].(*parser.AddColumnAction)
	assert.True(t, ok)
	_, ok = alter.Actions[1].(*parser.DropColumnAction)
	assert.True(t, ok)
	_, ok = alter.Actions[2].(*parser.OwnerToAction)
	assert.True(t, ok)
}

func TestAlterTableUnknownAction(t *testing.T) {
	_, err := parser.Parse("ALTER TABLE users FROBNICATE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ALTER TABLE action")
}
