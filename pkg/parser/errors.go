package parser

import (
	"fmt"

	"github.com/quarrydb/quarry/pkg/token"
)

// SyntaxError is the single error kind produced by the parser. It carries
// the human-readable expectation and the position of the token that
// violated it. The first SyntaxError aborts the whole parse; there is no
// recovery and no partial result.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	errUnknownStatement  = "unsupported statement type"
	errUnknownExprToken  = "unknown expression token %s"
	errInvalidNumber     = "invalid number literal %q"
	errUnknownDataType   = "unknown data type %s"
	errUnknownCreateKind = "unknown object type in CREATE statement"
	errUnknownDropKind   = "unknown object type in DROP statement"
	errUnknownAction     = "unknown ALTER TABLE action"
)
