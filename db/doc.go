// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages the trivia schema.

# Drivers

Open picks a database/sql driver from the configured database type:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5 through its database/sql adapter

	conn, err := db.Open(ctx, cfg)

All queries use $N placeholders, which every driver above accepts.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - category: id and display label (type)
  - question: question text, answer, category reference, difficulty 1-5

	category 1──* question

Deleting a category cascades to its questions.

# Sample Data

Seed inserts six categories and a starter set of questions when the
category table is empty:

	nCats, nQuestions, err := db.Seed(ctx, conn)
*/
package db
