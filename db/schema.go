// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/trivia-api/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, databaseType string) error {
	schema := postgresSchema
	if databaseType == cliparse.DatabaseSQLite {
		schema = sqliteSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// One statement per entry; not every driver accepts multi-statement Exec
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id SERIAL PRIMARY KEY,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS question (
		id SERIAL PRIMARY KEY,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL REFERENCES category(id) ON DELETE CASCADE,
		difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_question_category ON question(category)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS question (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		category INTEGER NOT NULL REFERENCES category(id) ON DELETE CASCADE,
		difficulty INTEGER NOT NULL CHECK (difficulty BETWEEN 1 AND 5)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_question_category ON question(category)`,
}
