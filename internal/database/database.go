package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Opener opens a request-scoped database handle. The caller owns the handle
// and must Close it.
type Opener func(ctx context.Context, dsn string) (*sql.DB, error)

// OpenDBWithDSN opens a MySQL handle for a single request and pings it so that
// bad credentials or an unreachable host surface here, not at query time.
func OpenDBWithDSN(ctx context.Context, dsn string) (*sql.DB, error) {
	// 1. Open the handle (this does not connect yet)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// 2. One request, one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Minute)

	// 3. Ping to force the connection and report errors strictly
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
