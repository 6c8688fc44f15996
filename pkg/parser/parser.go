package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quarrydb/quarry/pkg/token"
)

// Parser parses SQL into an AST. The whole input is tokenized upfront and
// the parser walks the token buffer with an index cursor.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser creates a new parser for the given SQL input.
func NewParser(sql string) *Parser {
	return &Parser{tokens: Tokenize(sql)}
}

// Parse parses the input and returns all statements. The first syntax
// error aborts the parse and discards any statements accumulated so far.
func Parse(sql string) ([]Statement, error) {
	return NewParser(sql).Parse()
}

// Parse parses every statement in the token buffer.
func (p *Parser) Parse() ([]Statement, error) {
	var statements []Statement
	for !p.isEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		p.match(token.SEMICOLON)
	}
	return statements, nil
}

// ---------- Token Helpers ----------

// eofToken is returned past the end of the buffer.
var eofToken = token.Token{Type: token.EOF, Pos: token.Position{Line: -1, Column: -1}}

// current returns the current token without advancing.
func (p *Parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return eofToken
}

// peek returns the token at the given offset ahead without advancing.
func (p *Parser) peek(offset int) token.Token {
	if pos := p.pos + offset; pos < len(p.tokens) {
		return p.tokens[pos]
	}
	return eofToken
}

// advance returns the current token and moves past it.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.current().Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect consumes and returns the current token if it matches, otherwise
// fails with a SyntaxError carrying the message and the current position.
func (p *Parser) expect(t token.TokenType, msg string) (token.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, p.syntaxError(msg)
}

// isEnd returns true once the cursor reaches the EOF token.
func (p *Parser) isEnd() bool {
	return p.current().Type == token.EOF
}

// syntaxError builds a SyntaxError at the current token.
func (p *Parser) syntaxError(msg string) error {
	return &SyntaxError{Pos: p.current().Pos, Message: msg}
}

// syntaxErrorf builds a formatted SyntaxError at the current token.
func (p *Parser) syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.current().Pos, Message: fmt.Sprintf(format, args...)}
}

// ---------- Statement Dispatch ----------

func (p *Parser) parseStatement() (Statement, error) {
	switch {
	case p.match(token.SELECT):
		return p.parseSelectStmt()
	case p.match(token.INSERT):
		return p.parseInsertStmt()
	case p.match(token.CREATE):
		return p.parseCreateStmt()
	case p.match(token.DROP):
		return p.parseDropStmt()
	case p.match(token.ALTER):
		return p.parseAlterTableStmt()
	}
	return nil, p.syntaxError(errUnknownStatement)
}

// ---------- Shared Helpers ----------

// determineSign consumes an optional leading minus and returns -1 or 1.
func (p *Parser) determineSign() int64 {
	if p.match(token.MINUS) {
		return -1
	}
	return 1
}

// parseSignedInt parses an optionally negated integer option value.
func (p *Parser) parseSignedInt(msg string) (int64, error) {
	sign := p.determineSign()
	tok, err := p.expect(token.NUMBER, msg)
	if err != nil {
		return 0, err
	}
	v, err := parseIntLiteral(tok)
	if err != nil {
		return 0, err
	}
	return v * sign, nil
}

// parseIntLiteral converts a NUMBER token to int64, turning conversion
// failures into a SyntaxError at the token's position.
func parseIntLiteral(tok token.Token) (int64, error) {
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return 0, &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf(errInvalidNumber, tok.Literal)}
	}
	return v, nil
}

// dataTypeFromToken resolves a type-name token via the type lookup table.
func dataTypeFromToken(tok token.Token) (DataType, error) {
	if tok.Type == token.IDENT {
		if t, ok := typeNames[strings.ToUpper(tok.Literal)]; ok {
			return t, nil
		}
	}
	return TypeNull, &SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf(errUnknownDataType, tok.Literal)}
}

// parseIfNotExists consumes an optional IF NOT EXISTS clause.
func (p *Parser) parseIfNotExists(context string) (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	if _, err := p.expect(token.NOT, "Expected NOT after IF in "+context); err != nil {
		return false, err
	}
	if _, err := p.expect(token.EXISTS, "Expected EXISTS after NOT in "+context); err != nil {
		return false, err
	}
	return true, nil
}

// parseIfExists consumes an optional IF EXISTS clause.
func (p *Parser) parseIfExists(context string) (bool, error) {
	if !p.match(token.IF) {
		return false, nil
	}
	if _, err := p.expect(token.EXISTS, "Expected EXISTS after IF in "+context); err != nil {
		return false, err
	}
	return true, nil
}
