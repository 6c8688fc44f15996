// Package token defines the lexical tokens for the Quarry SQL dialect.
//
// Keyword lookup is case-insensitive: the lexer preserves the text as
// written and resolves the type through LookupIdent.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

//nolint:revive // TOKEN_* names are intentionally ALL_CAPS for SQL token conventions
const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67
	STRING // 'hello'

	// Symbols
	COMMA     // ,
	SEMICOLON // ;
	ASTERISK  // *
	DOT       // .
	EQUALS    // =
	LPAREN    // (
	RPAREN    // )
	PLUS      // +
	MINUS     // -
	SLASH     // /
	PERCENT   // %
	CARET     // ^
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=

	// Keywords (alphabetical)
	ADD
	AFTER
	ALLOW_CONNECTIONS
	ALTER
	AND
	AS
	ASC
	ATTACH
	AUTHORIZATION
	BEFORE
	BY
	CACHE
	CASCADE
	CAST
	CHECK
	COLLATE
	COLLATION
	COLUMN
	CONCURRENTLY
	CONNECTION
	CONNECTION_LIMIT
	CONSTRAINT
	CREATE
	CREATEDB
	CREATEROLE
	CYCLE
	DATABASE
	DEFAULT
	DELETE
	DESC
	DETACH
	DETERMINISTIC
	DISTINCT
	DROP
	EACH
	ENCODING
	EXECUTE
	EXISTS
	FALSE
	FIRST
	FOR
	FOREIGN
	FROM
	FUNCTION
	GROUP
	HAVING
	IF
	ILIKE
	INCREMENT
	INDEX
	INHERIT
	INSERT
	INSTEAD
	INTO
	IS
	KEY
	LAST
	LIKE
	LIMIT
	LOCALE
	LOGIN
	MAXVALUE
	MINVALUE
	NO
	NOCREATEDB
	NOCREATEROLE
	NOINHERIT
	NOLOGIN
	NONE
	NOSUPERUSER
	NOT
	NULL
	NULLS
	OF
	OFFSET
	ON
	ONLY
	OR
	ORDER
	OWNED
	OWNER
	PASSWORD
	PRIMARY
	PROVIDER
	RECURSIVE
	REFERENCES
	RENAME
	REPLACE
	RESTRICT
	ROLE
	ROW
	RULES
	SCHEMA
	SELECT
	SEQUENCE
	SET
	START
	STATEMENT
	SUPERUSER
	TABLE
	TABLESPACE
	TEMPORARY
	TO
	TRIGGER
	TRUE
	TRUNCATE
	TYPE
	UNIQUE
	UNTIL
	UPDATE
	USER
	USING
	VALID
	VALUES
	VIEW
	WHEN
	WHERE
	WITH
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	COMMA:     ",",
	SEMICOLON: ";",
	ASTERISK:  "*",
	DOT:       ".",
	EQUALS:    "=",
	LPAREN:    "(",
	RPAREN:    ")",
	PLUS:      "+",
	MINUS:     "-",
	SLASH:     "/",
	PERCENT:   "%",
	CARET:     "^",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",

	ADD:               "ADD",
	AFTER:             "AFTER",
	ALLOW_CONNECTIONS: "ALLOW_CONNECTIONS",
	ALTER:             "ALTER",
	AND:               "AND",
	AS:                "AS",
	ASC:               "ASC",
	ATTACH:            "ATTACH",
	AUTHORIZATION:     "AUTHORIZATION",
	BEFORE:            "BEFORE",
	BY:                "BY",
	CACHE:             "CACHE",
	CASCADE:           "CASCADE",
	CAST:              "CAST",
	CHECK:             "CHECK",
	COLLATE:           "COLLATE",
	COLLATION:         "COLLATION",
	COLUMN:            "COLUMN",
	CONCURRENTLY:      "CONCURRENTLY",
	CONNECTION:        "CONNECTION",
	CONNECTION_LIMIT:  "CONNECTION_LIMIT",
	CONSTRAINT:        "CONSTRAINT",
	CREATE:            "CREATE",
	CREATEDB:          "CREATEDB",
	CREATEROLE:        "CREATEROLE",
	CYCLE:             "CYCLE",
	DATABASE:          "DATABASE",
	DEFAULT:           "DEFAULT",
	DELETE:            "DELETE",
	DESC:              "DESC",
	DETACH:            "DETACH",
	DETERMINISTIC:     "DETERMINISTIC",
	DISTINCT:          "DISTINCT",
	DROP:              "DROP",
	EACH:              "EACH",
	ENCODING:          "ENCODING",
	EXECUTE:           "EXECUTE",
	EXISTS:            "EXISTS",
	FALSE:             "FALSE",
	FIRST:             "FIRST",
	FOR:               "FOR",
	FOREIGN:           "FOREIGN",
	FROM:              "FROM",
	FUNCTION:          "FUNCTION",
	GROUP:             "GROUP",
	HAVING:            "HAVING",
	IF:                "IF",
	ILIKE:             "ILIKE",
	INCREMENT:         "INCREMENT",
	INDEX:             "INDEX",
	INHERIT:           "INHERIT",
	INSERT:            "INSERT",
	INSTEAD:           "INSTEAD",
	INTO:              "INTO",
	IS:                "IS",
	KEY:               "KEY",
	LAST:              "LAST",
	LIKE:              "LIKE",
	LIMIT:             "LIMIT",
	LOCALE:            "LOCALE",
	LOGIN:             "LOGIN",
	MAXVALUE:          "MAXVALUE",
	MINVALUE:          "MINVALUE",
	NO:                "NO",
	NOCREATEDB:        "NOCREATEDB",
	NOCREATEROLE:      "NOCREATEROLE",
	NOINHERIT:         "NOINHERIT",
	NOLOGIN:           "NOLOGIN",
	NONE:              "NONE",
	NOSUPERUSER:       "NOSUPERUSER",
	NOT:               "NOT",
	NULL:              "NULL",
	NULLS:             "NULLS",
	OF:                "OF",
	OFFSET:            "OFFSET",
	ON:                "ON",
	ONLY:              "ONLY",
	OR:                "OR",
	ORDER:             "ORDER",
	OWNED:             "OWNED",
	OWNER:             "OWNER",
	PASSWORD:          "PASSWORD",
	PRIMARY:           "PRIMARY",
	PROVIDER:          "PROVIDER",
	RECURSIVE:         "RECURSIVE",
	REFERENCES:        "REFERENCES",
	RENAME:            "RENAME",
	REPLACE:           "REPLACE",
	RESTRICT:          "RESTRICT",
	ROLE:              "ROLE",
	ROW:               "ROW",
	RULES:             "RULES",
	SCHEMA:            "SCHEMA",
	SELECT:            "SELECT",
	SEQUENCE:          "SEQUENCE",
	SET:               "SET",
	START:             "START",
	STATEMENT:         "STATEMENT",
	SUPERUSER:         "SUPERUSER",
	TABLE:             "TABLE",
	TABLESPACE:        "TABLESPACE",
	TEMPORARY:         "TEMPORARY",
	TO:                "TO",
	TRIGGER:           "TRIGGER",
	TRUE:              "TRUE",
	TRUNCATE:          "TRUNCATE",
	TYPE:              "TYPE",
	UNIQUE:            "UNIQUE",
	UNTIL:             "UNTIL",
	UPDATE:            "UPDATE",
	USER:              "USER",
	USING:             "USING",
	VALID:             "VALID",
	VALUES:            "VALUES",
	VIEW:              "VIEW",
	WHEN:              "WHEN",
	WHERE:             "WHERE",
	WITH:              "WITH",
}

// keywords maps uppercase keyword strings to their token types. A few
// entries are aliases (ASCENDING, DESCENDING, TEMP) that resolve to the
// canonical keyword.
var keywords = map[string]TokenType{
	"ADD":               ADD,
	"AFTER":             AFTER,
	"ALLOW_CONNECTIONS": ALLOW_CONNECTIONS,
	"ALTER":             ALTER,
	"AND":               AND,
	"AS":                AS,
	"ASC":               ASC,
	"ASCENDING":         ASC,
	"ATTACH":            ATTACH,
	"AUTHORIZATION":     AUTHORIZATION,
	"BEFORE":            BEFORE,
	"BY":                BY,
	"CACHE":             CACHE,
	"CASCADE":           CASCADE,
	"CAST":              CAST,
	"CHECK":             CHECK,
	"COLLATE":           COLLATE,
	"COLLATION":         COLLATION,
	"COLUMN":            COLUMN,
	"CONCURRENTLY":      CONCURRENTLY,
	"CONNECTION":        CONNECTION,
	"CONNECTION_LIMIT":  CONNECTION_LIMIT,
	"CONSTRAINT":        CONSTRAINT,
	"CREATE":            CREATE,
	"CREATEDB":          CREATEDB,
	"CREATEROLE":        CREATEROLE,
	"CYCLE":             CYCLE,
	"DATABASE":          DATABASE,
	"DEFAULT":           DEFAULT,
	"DELETE":            DELETE,
	"DESC":              DESC,
	"DESCENDING":        DESC,
	"DETACH":            DETACH,
	"DETERMINISTIC":     DETERMINISTIC,
	"DISTINCT":          DISTINCT,
	"DROP":              DROP,
	"EACH":              EACH,
	"ENCODING":          ENCODING,
	"EXECUTE":           EXECUTE,
	"EXISTS":            EXISTS,
	"FALSE":             FALSE,
	"FIRST":             FIRST,
	"FOR":               FOR,
	"FOREIGN":           FOREIGN,
	"FROM":              FROM,
	"FUNCTION":          FUNCTION,
	"GROUP":             GROUP,
	"HAVING":            HAVING,
	"IF":                IF,
	"ILIKE":             ILIKE,
	"INCREMENT":         INCREMENT,
	"INDEX":             INDEX,
	"INHERIT":           INHERIT,
	"INSERT":            INSERT,
	"INSTEAD":           INSTEAD,
	"INTO":              INTO,
	"IS":                IS,
	"KEY":               KEY,
	"LAST":              LAST,
	"LIKE":              LIKE,
	"LIMIT":             LIMIT,
	"LOCALE":            LOCALE,
	"LOGIN":             LOGIN,
	"MAXVALUE":          MAXVALUE,
	"MINVALUE":          MINVALUE,
	"NO":                NO,
	"NOCREATEDB":        NOCREATEDB,
	"NOCREATEROLE":      NOCREATEROLE,
	"NOINHERIT":         NOINHERIT,
	"NOLOGIN":           NOLOGIN,
	"NONE":              NONE,
	"NOSUPERUSER":       NOSUPERUSER,
	"NOT":               NOT,
	"NULL":              NULL,
	"NULLS":             NULLS,
	"OF":                OF,
	"OFFSET":            OFFSET,
	"ON":                ON,
	"ONLY":              ONLY,
	"OR":                OR,
	"ORDER":             ORDER,
	"OWNED":             OWNED,
	"OWNER":             OWNER,
	"PASSWORD":          PASSWORD,
	"PRIMARY":           PRIMARY,
	"PROVIDER":          PROVIDER,
	"RECURSIVE":         RECURSIVE,
	"REFERENCES":        REFERENCES,
	"RENAME":            RENAME,
	"REPLACE":           REPLACE,
	"RESTRICT":          RESTRICT,
	"ROLE":              ROLE,
	"ROW":               ROW,
	"RULES":             RULES,
	"SCHEMA":            SCHEMA,
	"SELECT":            SELECT,
	"SEQUENCE":          SEQUENCE,
	"SET":               SET,
	"START":             START,
	"STATEMENT":         STATEMENT,
	"SUPERUSER":         SUPERUSER,
	"TABLE":             TABLE,
	"TABLESPACE":        TABLESPACE,
	"TEMP":              TEMPORARY,
	"TEMPORARY":         TEMPORARY,
	"TO":                TO,
	"TRIGGER":           TRIGGER,
	"TRUE":              TRUE,
	"TRUNCATE":          TRUNCATE,
	"TYPE":              TYPE,
	"UNIQUE":            UNIQUE,
	"UNTIL":             UNTIL,
	"UPDATE":            UPDATE,
	"USER":              USER,
	"USING":             USING,
	"VALID":             VALID,
	"VALUES":            VALUES,
	"VIEW":              VIEW,
	"WHEN":              WHEN,
	"WHERE":             WHERE,
	"WITH":              WITH,
}

// LookupIdent returns the token type for the given identifier.
// Keywords are matched case-insensitively; anything else is IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToUpper(ident)]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= ADD && t <= WITH
}

// IsOperator returns true if the token type is a symbol or operator.
func IsOperator(t TokenType) bool {
	return t >= COMMA && t <= GE
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
