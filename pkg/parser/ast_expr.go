package parser

// Expr represents an expression node. A nil Expr is a valid "absent"
// expression (e.g. a missing WHERE clause).
type Expr interface {
	exprNode()
}

// DataType enumerates the value types a literal or column can carry.
type DataType int

// DataType constants.
const (
	TypeNull DataType = iota
	TypeInteger
	TypeBigInt
	TypeText
	TypeBoolean
	TypeDouble
	TypeDate
	TypeTimestamp
	TypeVarchar
)

var dataTypeNames = map[DataType]string{
	TypeNull:      "NULL",
	TypeInteger:   "INTEGER",
	TypeBigInt:    "BIGINT",
	TypeText:      "TEXT",
	TypeBoolean:   "BOOLEAN",
	TypeDouble:    "DOUBLE",
	TypeDate:      "DATE",
	TypeTimestamp: "TIMESTAMP",
	TypeVarchar:   "VARCHAR",
}

func (t DataType) String() string {
	if name, ok := dataTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// typeNames maps SQL type names (uppercase) to data types. Several names
// are aliases for the same type.
var typeNames = map[string]DataType{
	"INT":     TypeInteger,
	"INTEGER": TypeInteger,
	"BIGINT":  TypeBigInt,
	"DOUBLE":  TypeDouble,
	"FLOAT":   TypeDouble,
	"REAL":    TypeDouble,
	"TEXT":    TypeText,
	"VARCHAR": TypeVarchar,
	"BOOLEAN": TypeBoolean,
	"BOOL":    TypeBoolean,
	"DATE":    TypeDate,
}

// ColumnRef refers to a column, optionally qualified by a table name.
// The projection wildcard is represented as a ColumnRef named "*".
type ColumnRef struct {
	Name  string
	Table string // empty when unqualified
}

func (*ColumnRef) exprNode() {}

// Literal is a typed constant value. Exactly one of the value fields is
// meaningful, selected by Type; a NULL literal carries none.
type Literal struct {
	Type   DataType
	Int    int64
	Float  float64
	Bool   bool
	String string
}

func (*Literal) exprNode() {}

// NewIntegerLiteral returns an INTEGER literal.
func NewIntegerLiteral(v int64) *Literal { return &Literal{Type: TypeInteger, Int: v} }

// NewBigIntLiteral returns a BIGINT literal.
func NewBigIntLiteral(v int64) *Literal { return &Literal{Type: TypeBigInt, Int: v} }

// NewDoubleLiteral returns a DOUBLE literal.
func NewDoubleLiteral(v float64) *Literal { return &Literal{Type: TypeDouble, Float: v} }

// NewBooleanLiteral returns a BOOLEAN literal.
func NewBooleanLiteral(v bool) *Literal { return &Literal{Type: TypeBoolean, Bool: v} }

// NewTextLiteral returns a TEXT literal.
func NewTextLiteral(v string) *Literal { return &Literal{Type: TypeText, String: v} }

// NewNullLiteral returns a NULL literal.
func NewNullLiteral() *Literal { return &Literal{Type: TypeNull} }

// BinaryOpType identifies a binary operator.
type BinaryOpType int

// Binary operators.
const (
	OpPlus BinaryOpType = iota
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
	OpLike
	OpILike
	OpNotLike
)

var binaryOpNames = map[BinaryOpType]string{
	OpPlus:    "+",
	OpMinus:   "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "%",
	OpEq:      "=",
	OpNeq:     "!=",
	OpLt:      "<",
	OpLte:     "<=",
	OpGt:      ">",
	OpGte:     ">=",
	OpAnd:     "AND",
	OpOr:      "OR",
	OpLike:    "LIKE",
	OpILike:   "ILIKE",
	OpNotLike: "NOT LIKE",
}

func (op BinaryOpType) String() string {
	if name, ok := binaryOpNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// BinaryExpr is a binary operation over two owned sub-expressions.
type BinaryExpr struct {
	Op    BinaryOpType
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryOpType identifies a unary operator.
type UnaryOpType int

// Unary operators.
const (
	OpNot UnaryOpType = iota
	OpIsNull
	OpIsNotNull
	OpNeg // unary minus
)

var unaryOpNames = map[UnaryOpType]string{
	OpNot:       "NOT",
	OpIsNull:    "IS NULL",
	OpIsNotNull: "IS NOT NULL",
	OpNeg:       "-",
}

func (op UnaryOpType) String() string {
	if name, ok := unaryOpNames[op]; ok {
		return name
	}
	return "UNKNOWN"
}

// UnaryExpr is a unary operation over one owned sub-expression.
type UnaryExpr struct {
	Op      UnaryOpType
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// FuncCall is a function invocation with ordered arguments.
type FuncCall struct {
	Name        string
	Args        []Expr
	IsAggregate bool
}

func (*FuncCall) exprNode() {}

// CastExpr converts a sub-expression to a target type.
type CastExpr struct {
	Expr       Expr
	TargetType DataType
}

func (*CastExpr) exprNode() {}

// TableRef names a table in a FROM clause, optionally aliased.
type TableRef struct {
	Name  string
	Alias string // empty when absent
}

// ColumnDef describes one column of a CREATE TABLE statement.
type ColumnDef struct {
	Name       string
	Type       DataType
	NotNull    bool
	PrimaryKey bool
	Unique     bool
}
