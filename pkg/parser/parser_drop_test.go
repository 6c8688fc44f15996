package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/pkg/parser"
)

// ---------- DROP Tests ----------

func TestDropObjectKinds(t *testing.T) {
	tests := []struct {
		sql  string
		kind parser.ObjectType
	}{
		{"DROP TABLE t", parser.ObjectTable},
		{"DROP VIEW v", parser.ObjectView},
		{"DROP INDEX i", parser.ObjectIndex},
		{"DROP SCHEMA s", parser.ObjectSchema},
		{"DROP TRIGGER trg", parser.ObjectTrigger},
		{"DROP SEQUENCE seq", parser.ObjectSequence},
		{"DROP COLLATION c", parser.ObjectCollation},
		{"DROP DATABASE d", parser.ObjectDatabase},
		{"DROP USER u", parser.ObjectUser},
		{"DROP TYPE ty", parser.ObjectDataType},
	}
	for _, tt := range tests {
		stmt := parseOne(t, tt.sql)
		drop, ok := stmt.(*parser.DropStmt)
		require.True(t, ok, tt.sql)
		assert.Equal(t, tt.kind, drop.ObjectType, tt.sql)
		assert.Len(t, drop.Names, 1, tt.sql)
	}
}

func TestDropIfExists(t *testing.T) {
	stmt := parseOne(t, "DROP TABLE IF EXISTS t")
	drop := stmt.(*parser.DropStmt)
	assert.True(t, drop.IfExists)
}

func TestDropMultipleNames(t *testing.T) {
	stmt := parseOne(t, "DROP TABLE a, b, c CASCADE")
	drop := stmt.(*parser.DropStmt)

	assert.Equal(t, []string{"a", "b", "c"}, drop.Names)
	assert.True(t, drop.Cascade)
	assert.False(t, drop.Restrict)
}

func TestDropRestrict(t *testing.T) {
	stmt := parseOne(t, "DROP VIEW v RESTRICT")
	drop := stmt.(*parser.DropStmt)
	assert.True(t, drop.Restrict)
}

func TestDropIndexIsAlwaysConcurrent(t *testing.T) {
	stmt := parseOne(t, "DROP INDEX idx")
	drop := stmt.(*parser.DropStmt)
	assert.True(t, drop.Concurrently)

	stmt = parseOne(t, "DROP INDEX CONCURRENTLY idx")
	drop = stmt.(*parser.DropStmt)
	assert.True(t, drop.Concurrently)
}

func TestDropTableConcurrently(t *testing.T) {
	stmt := parseOne(t, "DROP TABLE CONCURRENTLY t")
	drop := stmt.(*parser.DropStmt)
	assert.True(t, drop.Concurrently)

	stmt = parseOne(t, "DROP TABLE t")
	drop = stmt.(*parser.DropStmt)
	assert.False(t, drop.Concurrently)
}

func TestDropUnknownObject(t *testing.T) {
	_, err := parser.Parse("DROP GADGET g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown object type in DROP statement")
}
