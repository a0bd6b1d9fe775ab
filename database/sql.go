package database

import (
	"context"
	"database/sql"

	"github.com/quelgo/quel/cache"
	"github.com/quelgo/quel/utils"
)

// SQLDatabase implements Database for *sql.DB, preparing statements through
// an LRU cache keyed by the hash of the statement text.
type SQLDatabase struct {
	db    *sql.DB
	stmts *cache.StatementCache
}

func NewSQLDatabase(db *sql.DB) *SQLDatabase {
	return &SQLDatabase{db: db, stmts: cache.NewStatementCache(256)}
}

func (s *SQLDatabase) prepared(query string) (*sql.Stmt, error) {
	return s.stmts.GetOrPrepare(utils.Hash64(query), s.db, query)
}

// Query executes a query that returns rows.
func (s *SQLDatabase) Query(query string, args ...any) (Rows, error) {
	return s.QueryContext(context.Background(), query, args...)
}

// QueryContext executes a query with a context.
func (s *SQLDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	stmt, err := s.prepared(query)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return &SQLRows{rows: rows}, nil
}

// Exec executes a query without returning rows.
func (s *SQLDatabase) Exec(query string, args ...any) (Result, error) {
	return s.ExecContext(context.Background(), query, args...)
}

// ExecContext executes a query with a context, without returning rows.
func (s *SQLDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	stmt, err := s.prepared(query)
	if err != nil {
		return nil, err
	}
	return stmt.ExecContext(ctx, args...)
}

// PingContext verifies the connection to the database is alive.
func (s *SQLDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the cached statements and the database.
func (s *SQLDatabase) Close() error {
	_ = s.stmts.Close()
	return s.db.Close()
}

// SQLRows implements Rows for *sql.Rows.
type SQLRows struct {
	rows *sql.Rows
}

func (s *SQLRows) Next() bool { return s.rows.Next() }

func (s *SQLRows) Scan(dest ...any) error { return s.rows.Scan(dest...) }

func (s *SQLRows) Err() error { return s.rows.Err() }

func (s *SQLRows) Close() error { return s.rows.Close() }

func (s *SQLRows) Columns() ([]string, error) { return s.rows.Columns() }

var _ Database = (*SQLDatabase)(nil)
