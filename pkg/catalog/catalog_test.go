package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/pkg/catalog"
	"github.com/quarrydb/quarry/pkg/parser"
)

func createTableStmt(t *testing.T, sql string) *parser.CreateTableStmt {
	t.Helper()
	stmts, err := parser.Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ct, ok := stmts[0].(*parser.CreateTableStmt)
	require.True(t, ok)
	return ct
}

func createSequenceStmt(t *testing.T, sql string) *parser.CreateSequenceStmt {
	t.Helper()
	stmts, err := parser.Parse(sql)
	require.NoError(t, err)
	cs, ok := stmts[0].(*parser.CreateSequenceStmt)
	require.True(t, ok)
	return cs
}

func TestCreateAndGetTable(t *testing.T) {
	c := catalog.New()
	stmt := createTableStmt(t, "CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL)")

	require.NoError(t, c.CreateTable(stmt))

	info, err := c.GetTable("users")
	require.NoError(t, err)
	assert.Equal(t, "users", info.Name)
	require.Len(t, info.Columns, 2)
	assert.True(t, info.Columns[0].PrimaryKey)
	assert.True(t, info.Columns[1].NotNull)
}

func TestCreateTableDuplicate(t *testing.T) {
	c := catalog.New()
	stmt := createTableStmt(t, "CREATE TABLE t (id INTEGER)")
	require.NoError(t, c.CreateTable(stmt))

	err := c.CreateTable(stmt)
	require.ErrorIs(t, err, catalog.ErrTableExists)

	// IF NOT EXISTS suppresses the error and keeps the original
	ine := createTableStmt(t, "CREATE TABLE IF NOT EXISTS t (other TEXT)")
	require.NoError(t, c.CreateTable(ine))

	info, err := c.GetTable("t")
	require.NoError(t, err)
	assert.Equal(t, "id", info.Columns[0].Name)
}

func TestDropTable(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.CreateTable(createTableStmt(t, "CREATE TABLE t (id INTEGER)")))

	require.NoError(t, c.DropTable("t", false))
	_, err := c.GetTable("t")
	require.ErrorIs(t, err, catalog.ErrTableNotFound)

	require.ErrorIs(t, c.DropTable("t", false), catalog.ErrTableNotFound)
	require.NoError(t, c.DropTable("t", true))
}

func TestListTablesSorted(t *testing.T) {
	c := catalog.New()
	for _, name := range []string{"zebra", "apple", "mango"} {
		require.NoError(t, c.CreateTable(createTableStmt(t, "CREATE TABLE "+name+" (id INTEGER)")))
	}
	assert.Equal(t, []string{"apple", "mango", "zebra"}, c.ListTables())
}

func TestCreateSequenceDefaultBounds(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.CreateSequence(createSequenceStmt(t, "CREATE SEQUENCE s")))

	info, err := c.GetSequence("s")
	require.NoError(t, err)
	assert.Equal(t, int64(1), info.Current)
	assert.Equal(t, int64(1), info.IncrementBy)
	assert.Equal(t, int64(1), info.MinValue)
	assert.Equal(t, int64(math.MaxInt64), info.MaxValue)
}

func TestCreateSequenceExplicitBounds(t *testing.T) {
	c := catalog.New()
	stmt := createSequenceStmt(t, "CREATE SEQUENCE s START WITH 100 INCREMENT BY -5 MINVALUE -100 MAXVALUE 100 CYCLE")
	require.NoError(t, c.CreateSequence(stmt))

	info, err := c.GetSequence("s")
	require.NoError(t, err)
	assert.Equal(t, int64(100), info.Current)
	assert.Equal(t, int64(-5), info.IncrementBy)
	assert.Equal(t, int64(-100), info.MinValue)
	assert.Equal(t, int64(100), info.MaxValue)
	assert.True(t, info.Cycle)
}

func TestDropSequence(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.CreateSequence(createSequenceStmt(t, "CREATE SEQUENCE s")))

	require.NoError(t, c.DropSequence("s", false))
	require.ErrorIs(t, c.DropSequence("s", false), catalog.ErrSequenceNotFound)
	require.NoError(t, c.DropSequence("s", true))
}

func TestSequenceDuplicate(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.CreateSequence(createSequenceStmt(t, "CREATE SEQUENCE s")))
	require.ErrorIs(t, c.CreateSequence(createSequenceStmt(t, "CREATE SEQUENCE s")), catalog.ErrSequenceExists)
	require.NoError(t, c.CreateSequence(createSequenceStmt(t, "CREATE SEQUENCE IF NOT EXISTS s")))
}
