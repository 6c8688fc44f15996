package parser_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/pkg/parser"
)

// ---------- CREATE TABLE Tests ----------

func TestCreateTableColumns(t *testing.T) {
	stmt := parseOne(t, `CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email VARCHAR UNIQUE
	)`)
	ct, ok := stmt.(*parser.CreateTableStmt)
	require.True(t, ok)

	assert.Equal(t, "users", ct.TableName)
	require.Len(t, ct.Columns, 3)

	assert.Equal(t, "id", ct.Columns[0].Name)
	assert.Equal(t, parser.TypeInteger, ct.Columns[0].Type)
	assert.True(t, ct.Columns[0].PrimaryKey)

	assert.Equal(t, parser.TypeText, ct.Columns[1].Type)
	assert.True(t, ct.Columns[1].NotNull)

	assert.Equal(t, parser.TypeVarchar, ct.Columns[2].Type)
	assert.True(t, ct.Columns[2].Unique)
}

func TestCreateTableIfNotExists(t *testing.T) {
	stmt := parseOne(t, "CREATE TABLE IF NOT EXISTS t (id INTEGER)")
	ct := stmt.(*parser.CreateTableStmt)
	assert.True(t, ct.IfNotExists)
}

func TestCreateTableConstraints(t *testing.T) {
	stmt := parseOne(t, `CREATE TABLE orders (
		id INTEGER,
		user_id INTEGER,
		PRIMARY KEY (id),
		CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES users (id),
		UNIQUE (id, user_id),
		CHECK (id > 0)
	)`)
	ct := stmt.(*parser.CreateTableStmt)

	require.Len(t, ct.Columns, 2)
	require.Len(t, ct.Constraints, 4)

	pk := ct.Constraints[0]
	assert.Equal(t, parser.ConstraintPrimaryKey, pk.Type)
	assert.Equal(t, []string{"id"}, pk.Columns)

	fk := ct.Constraints[1]
	assert.Equal(t, parser.ConstraintForeignKey, fk.Type)
	assert.Equal(t, "fk_user", fk.Name)
	assert.Equal(t, "users", fk.ForeignTable)
	assert.Equal(t, []string{"id"}, fk.ForeignColumns)

	uq := ct.Constraints[2]
	assert.Equal(t, parser.ConstraintUnique, uq.Type)
	assert.Equal(t, []string{"id", "user_id"}, uq.Columns)

	chk := ct.Constraints[3]
	assert.Equal(t, parser.ConstraintCheck, chk.Type)
	require.NotNil(t, chk.CheckExpr)
}

func TestCreateTableUnknownType(t *testing.T) {
	_, err := parser.Parse("CREATE TABLE t (id BLOB)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown data type")
}

// ---------- CREATE SEQUENCE Tests ----------

func TestCreateSequenceDefaults(t *testing.T) {
	stmt := parseOne(t, "CREATE SEQUENCE seq")
	cs, ok := stmt.(*parser.CreateSequenceStmt)
	require.True(t, ok)

	assert.Equal(t, "seq", cs.SequenceName)
	assert.Equal(t, int64(1), cs.StartValue)
	assert.Equal(t, int64(1), cs.IncrementBy)
	assert.Nil(t, cs.MinValue)
	assert.Nil(t, cs.MaxValue)
	assert.False(t, cs.Cycle)
}

func TestCreateSequenceOptions(t *testing.T) {
	stmt := parseOne(t, `CREATE TEMPORARY SEQUENCE seq
		INCREMENT BY -1 MINVALUE -100 MAXVALUE 100
		START WITH 50 CACHE 10 CYCLE OWNED BY users.id`)
	cs := stmt.(*parser.CreateSequenceStmt)

	assert.True(t, cs.Temporary)
	assert.Equal(t, int64(-1), cs.IncrementBy)
	require.NotNil(t, cs.MinValue)
	assert.Equal(t, int64(-100), *cs.MinValue)
	require.NotNil(t, cs.MaxValue)
	assert.Equal(t, int64(100), *cs.MaxValue)
	assert.Equal(t, int64(50), cs.StartValue)
	require.NotNil(t, cs.CacheSize)
	assert.Equal(t, int64(10), *cs.CacheSize)
	assert.True(t, cs.Cycle)
	require.NotNil(t, cs.Owner)
	assert.Equal(t, "users", cs.Owner.Table)
	assert.Equal(t, "id", cs.Owner.Column)
}

func TestCreateSequenceNoOptions(t *testing.T) {
	stmt := parseOne(t, "CREATE SEQUENCE seq MINVALUE 5 NO MINVALUE NO CYCLE OWNED BY NONE")
	cs := stmt.(*parser.CreateSequenceStmt)

	assert.Nil(t, cs.MinValue)
	assert.False(t, cs.Cycle)
	assert.Nil(t, cs.Owner)
}

// ---------- CREATE INDEX Tests ----------

func TestCreateIndex(t *testing.T) {
	stmt := parseOne(t, "CREATE UNIQUE INDEX CONCURRENTLY idx ON ONLY users USING btree (name DESC NULLS LAST, age) WHERE age > 0 TABLESPACE fast")
	ci, ok := stmt.(*parser.CreateIndexStmt)
	require.True(t, ok)

	assert.True(t, ci.Unique)
	assert.True(t, ci.Concurrently)
	assert.True(t, ci.Only)
	assert.Equal(t, "idx", ci.IndexName)
	assert.Equal(t, "users", ci.TableName)
	assert.Equal(t, "btree", ci.Method)
	assert.Equal(t, "fast", ci.Tablespace)
	require.NotNil(t, ci.Where)

	require.Len(t, ci.Elems, 2)
	first := ci.Elems[0]
	assert.Equal(t, "name", first.Name)
	assert.Equal(t, parser.OrderDesc, first.Ordering)
	require.NotNil(t, first.NullsFirst)
	assert.False(t, *first.NullsFirst)
}

func TestCreateIndexExpressionElement(t *testing.T) {
	stmt := parseOne(t, "CREATE INDEX idx ON t ((a + b))")
	ci := stmt.(*parser.CreateIndexStmt)

	require.Len(t, ci.Elems, 1)
	assert.Empty(t, ci.Elems[0].Name)
	require.NotNil(t, ci.Elems[0].Expr)
}

// ---------- CREATE VIEW Tests ----------

func TestCreateView(t *testing.T) {
	stmt := parseOne(t, "CREATE OR REPLACE TEMPORARY VIEW v (a, b) AS SELECT x, y FROM t")
	cv, ok := stmt.(*parser.CreateViewStmt)
	require.True(t, ok)

	assert.True(t, cv.OrReplace)
	assert.True(t, cv.Temporary)
	assert.Equal(t, "v", cv.ViewName)
	assert.Equal(t, []string{"a", "b"}, cv.Columns)
	require.NotNil(t, cv.Select)
	assert.Len(t, cv.Select.Projections, 2)
}

func TestCreateRecursiveView(t *testing.T) {
	stmt := parseOne(t, "CREATE RECURSIVE VIEW v AS SELECT 1")
	cv := stmt.(*parser.CreateViewStmt)
	assert.True(t, cv.Recursive)
}

// ---------- CREATE TRIGGER Tests ----------

func TestCreateTrigger(t *testing.T) {
	stmt := parseOne(t, `CREATE TRIGGER audit
		AFTER INSERT OR UPDATE OF name, email OR DELETE
		FOR EACH ROW WHEN (id > 0)
		ON users EXECUTE FUNCTION log_change('users', 1)`)
	ctr, ok := stmt.(*parser.CreateTriggerStmt)
	require.True(t, ok)

	assert.Equal(t, "audit", ctr.TriggerName)
	assert.Equal(t, parser.TriggerAfter, ctr.Timing)
	assert.Equal(t, []parser.TriggerEvent{
		parser.TriggerEventInsert, parser.TriggerEventUpdate, parser.TriggerEventDelete,
	}, ctr.Events)
	assert.Equal(t, []string{"name", "email"}, ctr.UpdateOfColumns)
	assert.Equal(t, parser.TriggerForEachRow, ctr.ForEach)
	require.NotNil(t, ctr.When)
	assert.Equal(t, "users", ctr.TableName)
	assert.Equal(t, "log_change", ctr.FunctionName)
	assert.Len(t, ctr.FunctionArgs, 2)
}

func TestCreateTriggerInsteadOf(t *testing.T) {
	stmt := parseOne(t, "CREATE TRIGGER trg INSTEAD OF INSERT ON v EXECUTE FUNCTION fn")
	ctr := stmt.(*parser.CreateTriggerStmt)

	assert.Equal(t, parser.TriggerInsteadOf, ctr.Timing)
	assert.Equal(t, parser.TriggerForEachStatement, ctr.ForEach, "STATEMENT is the default scope")
}

// ---------- CREATE DATABASE Tests ----------

func TestCreateDatabaseDefaults(t *testing.T) {
	stmt := parseOne(t, "CREATE DATABASE mydb")
	cd, ok := stmt.(*parser.CreateDatabaseStmt)
	require.True(t, ok)

	assert.Equal(t, "mydb", cd.Name)
	assert.Equal(t, "DEFAULT", cd.Owner)
	assert.Equal(t, "UTF-8", cd.Encoding)
	assert.Equal(t, "qr_default", cd.Tablespace)
	assert.True(t, cd.AllowConn)
	assert.Equal(t, int64(-1), cd.ConnLimit)
}

func TestCreateDatabaseOptions(t *testing.T) {
	stmt := parseOne(t, "CREATE DATABASE mydb (OWNER = bob, ENCODING = 'LATIN1', ALLOW_CONNECTIONS = FALSE, CONNECTION_LIMIT = 50)")
	cd := stmt.(*parser.CreateDatabaseStmt)

	assert.Equal(t, "bob", cd.Owner)
	assert.Equal(t, "LATIN1", cd.Encoding)
	assert.False(t, cd.AllowConn)
	assert.Equal(t, int64(50), cd.ConnLimit)
}

// ---------- CREATE COLLATION Tests ----------

func TestCreateCollationOptions(t *testing.T) {
	stmt := parseOne(t, "CREATE COLLATION IF NOT EXISTS nocase (LOCALE = 'en-US', DETERMINISTIC = FALSE, PROVIDER = 'icu')")
	cc, ok := stmt.(*parser.CreateCollationStmt)
	require.True(t, ok)

	assert.True(t, cc.IfNotExists)
	assert.Equal(t, "nocase", cc.CollationName)
	assert.Equal(t, "en-US", cc.Locale)
	assert.False(t, cc.Deterministic)
	assert.Equal(t, "icu", cc.Provider)
}

func TestCreateCollationFrom(t *testing.T) {
	stmt := parseOne(t, "CREATE COLLATION mine FROM other")
	cc := stmt.(*parser.CreateCollationStmt)

	assert.Equal(t, "other", cc.FromCollation)
	assert.True(t, cc.Deterministic, "deterministic defaults to true")
}

// ---------- CREATE ROLE Tests ----------

func TestCreateRoleOptions(t *testing.T) {
	stmt := parseOne(t, "CREATE ROLE admin WITH LOGIN SUPERUSER CREATEDB NOINHERIT PASSWORD 'secret' CONNECTION LIMIT 10 VALID UNTIL '2030-01-01'")
	cr, ok := stmt.(*parser.CreateRoleStmt)
	require.True(t, ok)

	assert.Equal(t, "admin", cr.RoleName)
	assert.True(t, cr.Login)
	assert.True(t, cr.Superuser)
	assert.True(t, cr.CreateDB)
	assert.False(t, cr.Inherit)
	assert.True(t, cr.HasPassword)
	assert.Equal(t, "secret", cr.Password)
	require.NotNil(t, cr.ConnLimit)
	assert.Equal(t, int64(10), *cr.ConnLimit)
	assert.Equal(t, "2030-01-01", cr.ValidUntil)
}

func TestCreateRolePasswordNull(t *testing.T) {
	stmt := parseOne(t, "CREATE ROLE reader WITH PASSWORD NULL")
	cr := stmt.(*parser.CreateRoleStmt)
	assert.False(t, cr.HasPassword)
	assert.Empty(t, cr.Password)
}

func TestCreateRoleDefaults(t *testing.T) {
	stmt := parseOne(t, "CREATE ROLE plain")
	cr := stmt.(*parser.CreateRoleStmt)
	assert.True(t, cr.Inherit, "roles inherit by default")
	assert.False(t, cr.Login)
	assert.Nil(t, cr.ConnLimit)
}

func TestCreateRoleConnectionLimitTooLow(t *testing.T) {
	_, err := parser.Parse("CREATE ROLE r WITH CONNECTION LIMIT -2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Connection limit cannot be less than -1")
}

// ---------- CREATE SCHEMA Tests ----------

func TestCreateSchemaWithElements(t *testing.T) {
	stmt := parseOne(t, `CREATE SCHEMA app AUTHORIZATION bob
		TABLE items (id INTEGER)
		VIEW v AS SELECT id FROM items`)
	cs, ok := stmt.(*parser.CreateSchemaStmt)
	require.True(t, ok)

	assert.Equal(t, "app", cs.SchemaName)
	assert.Equal(t, "bob", cs.Authorization)

	require.Len(t, cs.Elements, 2)
	table, ok := cs.Elements[0].(*parser.CreateTableStmt)
	require.True(t, ok)
	assert.Equal(t, "items", table.TableName)
	_, ok = cs.Elements[1].(*parser.CreateViewStmt)
	require.True(t, ok)
}

func TestCreateSchemaBare(t *testing.T) {
	stmt := parseOne(t, "CREATE SCHEMA app;")
	cs := stmt.(*parser.CreateSchemaStmt)
	assert.Empty(t, cs.Elements)
}

func TestCreateUnknownObject(t *testing.T) {
	_, err := parser.Parse("CREATE WIDGET w")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown object type in CREATE statement")
}

func TestCreateSequenceMaxValueRoundTrip(t *testing.T) {
	stmt := parseOne(t, "CREATE SEQUENCE s MAXVALUE 9223372036854775807")
	cs := stmt.(*parser.CreateSequenceStmt)
	require.NotNil(t, cs.MaxValue)
	assert.Equal(t, int64(math.MaxInt64), *cs.MaxValue)
}
