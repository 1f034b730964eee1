// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set register the flags and load afterwards:

	cliparse.RegisterFlags(cmd.PersistentFlags())
	cfg, err := cliparse.Load(cmd.Flags())

# CLI Flags

	-p, --port              Server port (default 3318)
	-d, --database-url      Database URL
	-t, --database-type     sqlite, postgres or pgx (default sqlite)
	--env                   Application environment
	--page-size             Questions per page (default 10)
	--cors-origin           Allowed CORS origin (default *)
	--max-open-conns        Pool size for PostgreSQL drivers
	--conn-max-lifetime     Connection lifetime for PostgreSQL drivers
	--config                Explicit config file

# Environment Variables

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	APP_ENV              → --env
	QUESTIONS_PER_PAGE   → --page-size
	CORS_ORIGIN          → --cors-origin
	DB_MAX_OPEN_CONNS    → --max-open-conns
	DB_CONN_MAX_LIFETIME → --conn-max-lifetime

CLI flags take precedence over environment variables, which take precedence
over config.yaml in the working directory or ./config.

# Validation

Load returns an error if DATABASE_URL is missing, the database type is not
supported, or the page size is below 1.
*/
package cliparse
