package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/quarrydb/quarry/pkg/parser"
	"github.com/quarrydb/quarry/pkg/token"
)

// renderStatements writes a statement summary in the selected format.
func renderStatements(w io.Writer, stmts []parser.Statement, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stmts)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Statement", "Object", "Detail"})

	for i, stmt := range stmts {
		kind, object, detail := describeStatement(stmt)
		t.AppendRow(table.Row{i + 1, kind, object, detail})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d statements)\n", len(stmts))
	return nil
}

// describeStatement returns a one-line summary of a statement.
func describeStatement(stmt parser.Statement) (kind, object, detail string) {
	switch s := stmt.(type) {
	case *parser.SelectStmt:
		tables := make([]string, 0, len(s.From))
		for _, ref := range s.From {
			tables = append(tables, ref.Name)
		}
		return "SELECT", strings.Join(tables, ", "),
			fmt.Sprintf("%d projections", len(s.Projections))
	case *parser.InsertStmt:
		return "INSERT", s.TableName, fmt.Sprintf("%d rows", len(s.Values))
	case *parser.CreateTableStmt:
		return "CREATE TABLE", s.TableName,
			fmt.Sprintf("%d columns, %d constraints", len(s.Columns), len(s.Constraints))
	case *parser.CreateIndexStmt:
		return "CREATE INDEX", s.IndexName, "on " + s.TableName
	case *parser.CreateViewStmt:
		return "CREATE VIEW", s.ViewName, fmt.Sprintf("%d columns", len(s.Columns))
	case *parser.CreateTriggerStmt:
		return "CREATE TRIGGER", s.TriggerName, "on " + s.TableName
	case *parser.CreateSequenceStmt:
		return "CREATE SEQUENCE", s.SequenceName,
			fmt.Sprintf("start %d, increment %d", s.StartValue, s.IncrementBy)
	case *parser.CreateSchemaStmt:
		return "CREATE SCHEMA", s.SchemaName, fmt.Sprintf("%d elements", len(s.Elements))
	case *parser.CreateDatabaseStmt:
		return "CREATE DATABASE", s.Name, "encoding " + s.Encoding
	case *parser.CreateCollationStmt:
		return "CREATE COLLATION", s.CollationName, s.Locale
	case *parser.CreateRoleStmt:
		return "CREATE ROLE", s.RoleName, ""
	case *parser.AlterTableStmt:
		return "ALTER TABLE", s.TableName, fmt.Sprintf("%d actions", len(s.Actions))
	case *parser.DropStmt:
		return "DROP " + s.ObjectType.String(), strings.Join(s.Names, ", "), ""
	}
	return fmt.Sprintf("%T", stmt), "", ""
}

// tokenJSON is the JSON shape of one token.
type tokenJSON struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// renderTokens writes a token stream in the selected format.
func renderTokens(w io.Writer, tokens []token.Token, format string) error {
	if format == "json" {
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tokenJSON{
				Type:    tok.Type.String(),
				Literal: tok.Literal,
				Line:    tok.Pos.Line,
				Column:  tok.Pos.Column,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Type", "Literal", "Line", "Col"})

	for i, tok := range tokens {
		t.AppendRow(table.Row{i + 1, tok.Type.String(), tok.Literal, tok.Pos.Line, tok.Pos.Column})
	}
	t.Render()
	return nil
}
