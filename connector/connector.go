package connector

import (
	"context"
	"database/sql"

	"github.com/quelgo/quel/database"
	"github.com/quelgo/quel/dialect"
)

// Connection is an established database connection.
type Connection interface {
	DB() *sql.DB
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

// ConnectionStats reports connection pool usage.
type ConnectionStats struct {
	OpenConnections int
	InUse           int
	Idle            int
}
