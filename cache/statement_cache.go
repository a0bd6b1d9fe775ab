// Package cache holds the prepared-statement LRU used by the database/sql
// execution path.
package cache

import (
	"database/sql"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// StatementCache keeps prepared statements keyed by the hash of their SQL
// text, closing statements as they are evicted.
type StatementCache struct {
	cache *lru.Cache[uint64, *sql.Stmt]
	mu    sync.Mutex
}

func NewStatementCache(size int) *StatementCache {
	c, _ := lru.NewWithEvict(size, func(_ uint64, stmt *sql.Stmt) {
		if stmt != nil {
			stmt.Close()
		}
	})
	return &StatementCache{cache: c}
}

// Get returns the cached statement for key, if any.
func (s *StatementCache) Get(key uint64) (*sql.Stmt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Get(key)
}

// Put stores a prepared statement under key.
func (s *StatementCache) Put(key uint64, stmt *sql.Stmt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, stmt)
}

// GetOrPrepare returns the cached statement for key, preparing and caching
// it on a miss.
func (s *StatementCache) GetOrPrepare(key uint64, db *sql.DB, query string) (*sql.Stmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stmt, ok := s.cache.Get(key); ok {
		return stmt, nil
	}
	stmt, err := db.Prepare(query)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, stmt)
	return stmt, nil
}

// Len reports the number of cached statements.
func (s *StatementCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

// Close evicts and closes every cached statement.
func (s *StatementCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Purge()
	return nil
}
