package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quarrydb/quarry/pkg/token"
)

func TestLookupIdentKeywords(t *testing.T) {
	assert.Equal(t, token.SELECT, token.LookupIdent("SELECT"))
	assert.Equal(t, token.SELECT, token.LookupIdent("select"))
	assert.Equal(t, token.SELECT, token.LookupIdent("SeLeCt"))
	assert.Equal(t, token.CREATE, token.LookupIdent("create"))
	assert.Equal(t, token.IDENT, token.LookupIdent("users"))
	assert.Equal(t, token.IDENT, token.LookupIdent("selection"))
}

func TestLookupIdentAliases(t *testing.T) {
	assert.Equal(t, token.ASC, token.LookupIdent("ASCENDING"))
	assert.Equal(t, token.DESC, token.LookupIdent("descending"))
	assert.Equal(t, token.TEMPORARY, token.LookupIdent("temp"))
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, token.IsKeyword(token.SELECT))
	assert.True(t, token.IsKeyword(token.WITH))
	assert.True(t, token.IsKeyword(token.ADD))
	assert.False(t, token.IsKeyword(token.IDENT))
	assert.False(t, token.IsKeyword(token.NUMBER))
	assert.False(t, token.IsKeyword(token.LPAREN))
}

func TestIsOperator(t *testing.T) {
	assert.True(t, token.IsOperator(token.PLUS))
	assert.True(t, token.IsOperator(token.EQUALS))
	assert.True(t, token.IsOperator(token.GE))
	assert.False(t, token.IsOperator(token.SELECT))
	assert.False(t, token.IsOperator(token.IDENT))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "SELECT", token.SELECT.String())
	assert.Equal(t, "IDENT", token.IDENT.String())
	assert.Equal(t, "EOF", token.EOF.String())
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, token.Position{Line: 1, Column: 0}.IsValid())
	assert.False(t, token.Position{Line: 0}.IsValid())
	assert.False(t, token.Position{Line: -1, Column: -1}.IsValid())
}
