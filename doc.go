// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Trivia API server.

The trivia API serves a bank of questions grouped into categories, with
page-based listing, substring search and a random quiz picker.

# Starting the Server

The server requires a database URL from a flag, the environment, a .env
file or config.yaml:

	DATABASE_URL=trivia.db go run .

Or with flags:

	go run . serve -p 3318 -t postgres -d "postgres://..."

Load the sample data:

	go run . seed -d trivia.db

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - QUESTIONS_PER_PAGE (--page-size): page size (default: 10)
  - CORS_ORIGIN (--cors-origin): allowed origin (default: *)
  - APP_ENV (--env): "production" switches to JSON logs

# Architecture

  - handlers: HTTP request handlers (categories, questions, quizzes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, error envelopes, JSON helpers
  - models: Request/response types
  - db: Driver selection, schema creation and sample data
  - cliparse: Configuration parsing
  - logger: zap logger setup

See package documentation for each component.
*/
package main
