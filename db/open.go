// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/trivia-api/cliparse"
)

// Open connects to the configured database and verifies the connection.
// All three drivers accept $N placeholders, so handlers share one set of queries.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.DatabaseURL))
	case cliparse.DatabasePostgres:
		conn, err = sql.Open("postgres", cfg.DatabaseURL)
	case cliparse.DatabasePGX:
		var pgxCfg *pgx.ConnConfig
		pgxCfg, err = pgx.ParseConfig(cfg.DatabaseURL)
		if err == nil {
			conn = stdlib.OpenDB(*pgxCfg)
		}
	default:
		return nil, fmt.Errorf("%w: got %q", cliparse.ErrUnknownDatabase, cfg.DatabaseType)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DatabaseType, err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// One long-lived connection: SQLite serializes writers, and a :memory:
		// database lives and dies with its connection
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			conn.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// sqliteDSN adds the foreign_keys pragma to a SQLite URL. The driver applies
// _pragma parameters to every connection it opens, not just the first.
func sqliteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}

	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
