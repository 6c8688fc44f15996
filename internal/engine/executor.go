// Package engine applies parsed statements to the session catalog.
// DDL statements mutate the catalog; DML and query statements are
// validated against it and accepted.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quarrydb/quarry/pkg/catalog"
	"github.com/quarrydb/quarry/pkg/parser"
)

// Executor walks parsed statements and keeps the catalog in sync.
type Executor struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// Config holds executor configuration.
type Config struct {
	// Catalog is the schema registry to operate on. A fresh one is
	// created when nil.
	Catalog *catalog.Catalog
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an executor.
func New(cfg Config) *Executor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.New()
	}
	return &Executor{catalog: cat, logger: logger}
}

// Catalog returns the executor's catalog.
func (e *Executor) Catalog() *catalog.Catalog {
	return e.catalog
}

// ExecuteSQL parses the input and executes every statement in order.
// The first parse or execution error aborts the run.
func (e *Executor) ExecuteSQL(ctx context.Context, sql string) error {
	stmts, err := parser.Parse(sql)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := e.Execute(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute applies a single statement.
func (e *Executor) Execute(ctx context.Context, stmt parser.Statement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s := stmt.(type) {
	case *parser.CreateTableStmt:
		e.logger.Debug("creating table", "table", s.TableName, "columns", len(s.Columns))
		return e.catalog.CreateTable(s)

	case *parser.CreateSequenceStmt:
		e.logger.Debug("creating sequence", "sequence", s.SequenceName)
		return e.catalog.CreateSequence(s)

	case *parser.CreateSchemaStmt:
		// Nested elements are applied in order; the schema itself has no
		// catalog representation yet.
		e.logger.Debug("creating schema", "schema", s.SchemaName, "elements", len(s.Elements))
		for _, element := range s.Elements {
			if err := e.Execute(ctx, element); err != nil {
				return err
			}
		}
		return nil

	case *parser.DropStmt:
		return e.executeDrop(s)

	case *parser.InsertStmt:
		return e.executeInsert(s)

	case *parser.SelectStmt, *parser.AlterTableStmt, *parser.CreateIndexStmt,
		*parser.CreateViewStmt, *parser.CreateTriggerStmt, *parser.CreateDatabaseStmt,
		*parser.CreateCollationStmt, *parser.CreateRoleStmt:
		// Parsed and accepted; no catalog effect.
		e.logger.Debug("accepted statement", "type", fmt.Sprintf("%T", stmt))
		return nil
	}
	return fmt.Errorf("unsupported statement type %T", stmt)
}

func (e *Executor) executeDrop(s *parser.DropStmt) error {
	switch s.ObjectType {
	case parser.ObjectTable:
		for _, name := range s.Names {
			e.logger.Debug("dropping table", "table", name)
			if err := e.catalog.DropTable(name, s.IfExists); err != nil {
				return err
			}
		}
	case parser.ObjectSequence:
		for _, name := range s.Names {
			e.logger.Debug("dropping sequence", "sequence", name)
			if err := e.catalog.DropSequence(name, s.IfExists); err != nil {
				return err
			}
		}
	default:
		e.logger.Debug("accepted drop", "object", s.ObjectType.String(), "names", s.Names)
	}
	return nil
}

// executeInsert validates an INSERT against the target table.
func (e *Executor) executeInsert(s *parser.InsertStmt) error {
	info, err := e.catalog.GetTable(s.TableName)
	if err != nil {
		return err
	}

	width := len(info.Columns)
	if len(s.Columns) > 0 {
		for _, col := range s.Columns {
			if !tableHasColumn(info, col) {
				return fmt.Errorf("column %s does not exist in table %s", col, s.TableName)
			}
		}
		width = len(s.Columns)
	}

	for i, row := range s.Values {
		if len(row) != width {
			return fmt.Errorf("row %d has %d values, expected %d", i+1, len(row), width)
		}
	}

	e.logger.Debug("accepted insert", "table", s.TableName, "rows", len(s.Values))
	return nil
}

func tableHasColumn(info *catalog.TableInfo, name string) bool {
	for _, col := range info.Columns {
		if col.Name == name {
			return true
		}
	}
	return false
}
