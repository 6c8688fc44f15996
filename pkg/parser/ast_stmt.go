package parser

// Statement represents a SQL statement.
type Statement interface {
	stmtNode()
}

// ---------- SELECT ----------

// OrderByItem is one ORDER BY entry.
type OrderByItem struct {
	Expr Expr
	Asc  bool
}

// SelectStmt represents a SELECT statement.
type SelectStmt struct {
	Distinct    bool
	Projections []Expr
	From        []TableRef
	Where       Expr
	GroupBy     []Expr
	Having      Expr
	OrderBy     []OrderByItem
	Limit       *int64
	Offset      *int64
}

func (*SelectStmt) stmtNode() {}

// ---------- INSERT ----------

// InsertStmt represents an INSERT statement with one or more value rows.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    [][]Expr
}

func (*InsertStmt) stmtNode() {}

// ---------- CREATE TABLE ----------

// ConstraintType identifies a table-level constraint kind.
type ConstraintType int

// Table constraint kinds.
const (
	ConstraintPrimaryKey ConstraintType = iota
	ConstraintForeignKey
	ConstraintUnique
	ConstraintCheck
)

func (t ConstraintType) String() string {
	switch t {
	case ConstraintPrimaryKey:
		return "PRIMARY KEY"
	case ConstraintForeignKey:
		return "FOREIGN KEY"
	case ConstraintUnique:
		return "UNIQUE"
	case ConstraintCheck:
		return "CHECK"
	}
	return "UNKNOWN"
}

// FKAction identifies a referential action for ON UPDATE / ON DELETE.
type FKAction byte

// Referential actions.
const (
	FKNoAction   FKAction = 'a'
	FKRestrict   FKAction = 'r'
	FKCascade    FKAction = 'c'
	FKSetNull    FKAction = 'n'
	FKSetDefault FKAction = 'd'
)

// FKMatchType identifies a foreign key MATCH clause.
type FKMatchType byte

// Foreign key match types.
const (
	FKMatchSimple  FKMatchType = 's'
	FKMatchFull    FKMatchType = 'f'
	FKMatchPartial FKMatchType = 'p'
)

// TableConstraint is a table-level constraint in a CREATE TABLE body.
// Columns is used by PRIMARY KEY, UNIQUE and FOREIGN KEY; the Foreign*
// and FK* fields only by FOREIGN KEY; CheckExpr only by CHECK.
type TableConstraint struct {
	Type    ConstraintType
	Name    string // optional constraint name
	Columns []string

	ForeignTable   string
	ForeignColumns []string
	FKMatch        FKMatchType
	FKUpdateAction FKAction
	FKDeleteAction FKAction

	CheckExpr Expr
}

// CreateTableStmt represents a CREATE TABLE statement.
type CreateTableStmt struct {
	TableName   string
	Columns     []ColumnDef
	Constraints []TableConstraint
	IfNotExists bool
	Tablespace  string
}

func (*CreateTableStmt) stmtNode() {}

// ---------- CREATE INDEX ----------

// OrderDirection is the sort direction of an index element.
type OrderDirection int

// Sort directions.
const (
	OrderAsc OrderDirection = iota
	OrderDesc
)

// IndexElem is one indexed column or expression. Exactly one of Name and
// Expr is set.
type IndexElem struct {
	Name       string
	Expr       Expr
	Collation  string
	OpClass    string
	Ordering   OrderDirection
	NullsFirst *bool // nil means the direction's default
}

// CreateIndexStmt represents a CREATE INDEX statement.
type CreateIndexStmt struct {
	IndexName    string
	TableName    string
	Unique       bool
	IfNotExists  bool
	Concurrently bool
	Only         bool
	Method       string // e.g. "btree", "hash"
	Elems        []IndexElem
	Where        Expr // partial index predicate
	Tablespace   string
}

func (*CreateIndexStmt) stmtNode() {}

// ---------- CREATE VIEW ----------

// CreateViewStmt represents a CREATE VIEW statement.
type CreateViewStmt struct {
	ViewName  string
	Temporary bool
	OrReplace bool
	Recursive bool
	Columns   []string
	Select    *SelectStmt
}

func (*CreateViewStmt) stmtNode() {}

// ---------- CREATE TRIGGER ----------

// TriggerTiming is when the trigger fires relative to the event.
type TriggerTiming int

// Trigger timings.
const (
	TriggerBefore TriggerTiming = iota
	TriggerAfter
	TriggerInsteadOf
)

// TriggerEvent is the statement kind that fires the trigger.
type TriggerEvent int

// Trigger events.
const (
	TriggerEventInsert TriggerEvent = iota
	TriggerEventUpdate
	TriggerEventDelete
	TriggerEventTruncate
)

// TriggerForEach is the trigger granularity.
type TriggerForEach int

// Trigger granularities.
const (
	TriggerForEachStatement TriggerForEach = iota
	TriggerForEachRow
)

// CreateTriggerStmt represents a CREATE TRIGGER statement.
type CreateTriggerStmt struct {
	TriggerName     string
	TableName       string
	Timing          TriggerTiming
	Events          []TriggerEvent
	UpdateOfColumns []string // for UPDATE OF col, col, ...
	FunctionName    string
	FunctionArgs    []Expr
	ForEach         TriggerForEach
	When            Expr
}

func (*CreateTriggerStmt) stmtNode() {}

// ---------- CREATE SEQUENCE ----------

// SequenceOwner names the table.column a sequence is owned by.
type SequenceOwner struct {
	Table  string
	Column string
}

// CreateSequenceStmt represents a CREATE SEQUENCE statement.
type CreateSequenceStmt struct {
	SequenceName string
	IfNotExists  bool
	Temporary    bool
	StartValue   int64
	IncrementBy  int64
	MinValue     *int64
	MaxValue     *int64
	Cycle        bool
	CacheSize    *int64
	Owner        *SequenceOwner // nil for OWNED BY NONE or absent
}

func (*CreateSequenceStmt) stmtNode() {}

// ---------- CREATE DATABASE ----------

// CreateDatabaseStmt represents a CREATE DATABASE statement.
type CreateDatabaseStmt struct {
	Name        string
	IfNotExists bool
	Owner       string
	Encoding    string
	Tablespace  string
	AllowConn   bool
	ConnLimit   int64 // -1 means no limit
}

func (*CreateDatabaseStmt) stmtNode() {}

// ---------- CREATE COLLATION ----------

// CreateCollationStmt represents a CREATE COLLATION statement.
type CreateCollationStmt struct {
	CollationName string
	IfNotExists   bool
	Locale        string
	Deterministic bool
	Provider      string // e.g. "icu", "libc"
	Version       string
	Rules         string
	FromCollation string // FROM existing_collation
}

func (*CreateCollationStmt) stmtNode() {}

// ---------- CREATE ROLE ----------

// CreateRoleStmt represents a CREATE ROLE statement.
type CreateRoleStmt struct {
	RoleName    string
	IfNotExists bool
	Superuser   bool
	CreateDB    bool
	CreateRole  bool
	Inherit     bool
	Login       bool
	ConnLimit   *int64
	ValidUntil  string
	Password    string
	HasPassword bool // distinguishes PASSWORD NULL / absent from PASSWORD ''
}

func (*CreateRoleStmt) stmtNode() {}

// ---------- CREATE SCHEMA ----------

// SchemaElement is a statement kind that may appear nested inside a
// CREATE SCHEMA body.
type SchemaElement interface {
	Statement
	schemaElement()
}

func (*CreateTableStmt) schemaElement()    {}
func (*CreateIndexStmt) schemaElement()    {}
func (*CreateViewStmt) schemaElement()     {}
func (*CreateSequenceStmt) schemaElement() {}
func (*CreateTriggerStmt) schemaElement()  {}

// CreateSchemaStmt represents a CREATE SCHEMA statement.
type CreateSchemaStmt struct {
	SchemaName    string
	IfNotExists   bool
	Authorization string
	Elements      []SchemaElement
}

func (*CreateSchemaStmt) stmtNode() {}

// ---------- DROP ----------

// ObjectType identifies the object kind of a DROP statement.
type ObjectType int

// Droppable object kinds.
const (
	ObjectTable ObjectType = iota
	ObjectView
	ObjectIndex
	ObjectSchema
	ObjectTrigger
	ObjectSequence
	ObjectCollation
	ObjectDatabase
	ObjectUser
	ObjectDataType
)

var objectTypeNames = map[ObjectType]string{
	ObjectTable:     "TABLE",
	ObjectView:      "VIEW",
	ObjectIndex:     "INDEX",
	ObjectSchema:    "SCHEMA",
	ObjectTrigger:   "TRIGGER",
	ObjectSequence:  "SEQUENCE",
	ObjectCollation: "COLLATION",
	ObjectDatabase:  "DATABASE",
	ObjectUser:      "USER",
	ObjectDataType:  "TYPE",
}

func (t ObjectType) String() string {
	if name, ok := objectTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// DropStmt represents a DROP statement over one or more named objects.
type DropStmt struct {
	ObjectType   ObjectType
	Names        []string
	IfExists     bool
	Cascade      bool
	Restrict     bool
	Concurrently bool // DROP INDEX CONCURRENTLY
}

func (*DropStmt) stmtNode() {}

// ---------- ALTER TABLE ----------

// AlterAction is one action in an ALTER TABLE action list.
type AlterAction interface {
	alterAction()
}

// AddColumnAction adds a column.
type AddColumnAction struct {
	Column      ColumnDef
	IfNotExists bool
}

// AddConstraintAction adds a column-targeted constraint.
type AddConstraintAction struct {
	ColumnName string
	NotNull    bool
	Unique     bool
	PrimaryKey bool
}

// DropColumnAction drops a column.
type DropColumnAction struct {
	ColumnName string
	IfExists   bool
	Cascade    bool
}

// DropConstraintAction drops a named constraint.
type DropConstraintAction struct {
	ConstraintName string
	IfExists       bool
	Cascade        bool
}

// AlterColumnTypeAction changes a column's type, with optional USING
// conversion expression and collation.
type AlterColumnTypeAction struct {
	ColumnName string
	NewType    DataType
	Using      Expr
	Collation  string
}

// AlterColumnDefaultAction sets or drops a column default.
type AlterColumnDefaultAction struct {
	ColumnName string
	Default    Expr
	Drop       bool // true for DROP DEFAULT
}

// AlterColumnNotNullAction sets or drops a NOT NULL constraint.
type AlterColumnNotNullAction struct {
	ColumnName string
	SetNotNull bool // false for DROP NOT NULL
}

// RenameColumnAction renames a column.
type RenameColumnAction struct {
	OldName string
	NewName string
}

// RenameTableAction renames the table itself.
type RenameTableAction struct {
	NewName string
}

// RenameConstraintAction renames a constraint.
type RenameConstraintAction struct {
	OldName string
	NewName string
}

// SetSchemaAction moves the table to another schema.
type SetSchemaAction struct {
	SchemaName string
}

// OwnerToAction changes the table owner.
type OwnerToAction struct {
	NewOwner string
}

func (*AddColumnAction) alterAction()          {}
func (*AddConstraintAction) alterAction()      {}
func (*DropColumnAction) alterAction()         {}
func (*DropConstraintAction) alterAction()     {}
func (*AlterColumnTypeAction) alterAction()    {}
func (*AlterColumnDefaultAction) alterAction() {}
func (*AlterColumnNotNullAction) alterAction() {}
func (*RenameColumnAction) alterAction()       {}
func (*RenameTableAction) alterAction()        {}
func (*RenameConstraintAction) alterAction()   {}
func (*SetSchemaAction) alterAction()          {}
func (*OwnerToAction) alterAction()            {}

// AlterTableStmt represents an ALTER TABLE statement.
type AlterTableStmt struct {
	TableName string
	IfExists  bool
	Actions   []AlterAction
}

func (*AlterTableStmt) stmtNode() {}
