package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/cli/commands"
	"github.com/quarrydb/quarry/internal/cli/config"
)

// runCommand executes a command with the given args and returns stdout.
func runCommand(t *testing.T, args []string, format string) (string, error) {
	t.Helper()

	cmd := commands.NewParseCommand()
	switch args[0] {
	case "lex":
		cmd = commands.NewLexCommand()
	case "version":
		cmd = commands.NewVersionCommand("0.1.0", "today", "abc123")
	}

	ctx := commands.WithSession(context.Background(),
		&config.Config{OutputFormat: format},
		slog.New(slog.DiscardHandler))
	cmd.SetContext(ctx)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args[1:])
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommandTableOutput(t *testing.T) {
	out, err := runCommand(t, []string{"parse", "SELECT id FROM users; DROP TABLE users"}, "table")
	require.NoError(t, err)

	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "DROP TABLE")
	assert.Contains(t, out, "users")
	assert.Contains(t, out, "(2 statements)")
}

func TestParseCommandJSONOutput(t *testing.T) {
	out, err := runCommand(t, []string{"parse", "CREATE TABLE t (id INTEGER)"}, "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"TableName": "t"`)
	assert.Contains(t, out, `"id"`)
}

func TestParseCommandSyntaxError(t *testing.T) {
	_, err := runCommand(t, []string{"parse", "SELECT * FROM;"}, "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestLexCommand(t *testing.T) {
	out, err := runCommand(t, []string{"lex", "SELECT 1"}, "table")
	require.NoError(t, err)

	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, "NUMBER")
	assert.Contains(t, out, "EOF")
}

func TestLexCommandJSON(t *testing.T) {
	out, err := runCommand(t, []string{"lex", "SELECT name"}, "json")
	require.NoError(t, err)

	assert.Contains(t, out, `"type": "IDENT"`)
	assert.Contains(t, out, `"literal": "name"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, []string{"version"}, "table")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "quarry 0.1.0"))
	assert.Contains(t, out, "abc123")
}
