// Package catalog tracks the schema objects known to a session: tables
// and sequences created through the front end. It is an in-memory store
// guarded by a RWMutex so a REPL and background consumers can share it.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/quarrydb/quarry/pkg/parser"
)

// Sentinel errors returned by catalog operations.
var (
	ErrTableExists      = errors.New("table already exists")
	ErrTableNotFound    = errors.New("table not found")
	ErrSequenceExists   = errors.New("sequence already exists")
	ErrSequenceNotFound = errors.New("sequence not found")
)

// ColumnInfo describes one column of a registered table.
type ColumnInfo struct {
	Name       string
	Type       parser.DataType
	NotNull    bool
	PrimaryKey bool
	Unique     bool
}

// TableInfo describes a registered table.
type TableInfo struct {
	Name        string
	Columns     []ColumnInfo
	Constraints []parser.TableConstraint
}

// SequenceInfo describes a registered sequence and its current state.
type SequenceInfo struct {
	Name        string
	Current     int64
	IncrementBy int64
	MinValue    int64
	MaxValue    int64
	Cycle       bool
}

// Catalog is the in-memory schema registry.
type Catalog struct {
	mu        sync.RWMutex
	tables    map[string]*TableInfo
	sequences map[string]*SequenceInfo
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		tables:    make(map[string]*TableInfo),
		sequences: make(map[string]*SequenceInfo),
	}
}

// CreateTable registers a table from a parsed CREATE TABLE statement.
// With IfNotExists set, an existing table of the same name is left
// untouched and no error is returned.
func (c *Catalog) CreateTable(stmt *parser.CreateTableStmt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[stmt.TableName]; ok {
		if stmt.IfNotExists {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrTableExists, stmt.TableName)
	}

	info := &TableInfo{
		Name:        stmt.TableName,
		Constraints: stmt.Constraints,
	}
	for _, col := range stmt.Columns {
		info.Columns = append(info.Columns, ColumnInfo{
			Name:       col.Name,
			Type:       col.Type,
			NotNull:    col.NotNull,
			PrimaryKey: col.PrimaryKey,
			Unique:     col.Unique,
		})
	}
	c.tables[stmt.TableName] = info
	return nil
}

// GetTable returns the table with the given name.
func (c *Catalog) GetTable(name string) (*TableInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return info, nil
}

// DropTable removes a table. With ifExists set, dropping a missing table
// is not an error.
func (c *Catalog) DropTable(name string, ifExists bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[name]; !ok {
		if ifExists {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	delete(c.tables, name)
	return nil
}

// ListTables returns the registered table names in sorted order.
func (c *Catalog) ListTables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateSequence registers a sequence from a parsed CREATE SEQUENCE
// statement. MINVALUE defaults to 1 and MAXVALUE to the largest int64
// when not given.
func (c *Catalog) CreateSequence(stmt *parser.CreateSequenceStmt) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sequences[stmt.SequenceName]; ok {
		if stmt.IfNotExists {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrSequenceExists, stmt.SequenceName)
	}

	info := &SequenceInfo{
		Name:        stmt.SequenceName,
		Current:     stmt.StartValue,
		IncrementBy: stmt.IncrementBy,
		MinValue:    1,
		MaxValue:    math.MaxInt64,
		Cycle:       stmt.Cycle,
	}
	if stmt.MinValue != nil {
		info.MinValue = *stmt.MinValue
	}
	if stmt.MaxValue != nil {
		info.MaxValue = *stmt.MaxValue
	}
	c.sequences[stmt.SequenceName] = info
	return nil
}

// GetSequence returns the sequence with the given name.
func (c *Catalog) GetSequence(name string) (*SequenceInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.sequences[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSequenceNotFound, name)
	}
	return info, nil
}

// DropSequence removes a sequence. With ifExists set, dropping a missing
// sequence is not an error.
func (c *Catalog) DropSequence(name string, ifExists bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sequences[name]; !ok {
		if ifExists {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrSequenceNotFound, name)
	}
	delete(c.sequences, name)
	return nil
}

// ListSequences returns the registered sequence names in sorted order.
func (c *Catalog) ListSequences() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.sequences))
	for name := range c.sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
