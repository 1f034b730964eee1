package cliparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabasePGX      = "pgx"
)

var (
	ErrMissingDatabaseURL = errors.New("database URL required (use -d or DATABASE_URL env)")
	ErrUnknownDatabase    = errors.New("database type must be one of: sqlite, postgres, pgx")
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	Env              string
	QuestionsPerPage int
	CORSOrigin       string
	MaxOpenConns     int
	ConnMaxLifetime  time.Duration
}

// RegisterFlags adds the server flags to fs. Values left unset fall back to
// the environment, then to config.yaml, then to the defaults below.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP("port", "p", 3318, "Server port")
	fs.StringP("database-url", "d", "", "Database URL")
	fs.StringP("database-type", "t", DatabaseSQLite, "Database type (sqlite, postgres or pgx)")
	fs.String("env", "local", "Application environment (local, production)")
	fs.Int("page-size", 10, "Questions per page")
	fs.String("cors-origin", "*", "Allowed CORS origin")
	fs.Int("max-open-conns", 10, "Maximum open database connections")
	fs.Duration("conn-max-lifetime", 30*time.Minute, "Maximum lifetime of a database connection")
	fs.String("config", "", "Path to a config file")
}

// ParseFlags parses args into a fresh flag set and loads the configuration
func ParseFlags(args []string) (Config, error) {
	fs := pflag.NewFlagSet("trivia", pflag.ContinueOnError)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Load(fs)
}

// Load resolves the configuration from already-parsed flags, environment
// variables and an optional config file.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	flagKeys := map[string]string{
		"port":                 "port",
		"database_url":         "database-url",
		"database_type":        "database-type",
		"env":                  "env",
		"questions_per_page":   "page-size",
		"cors_origin":          "cors-origin",
		"db_max_open_conns":    "max-open-conns",
		"db_conn_max_lifetime": "conn-max-lifetime",
	}
	for key, name := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("cors_origin", "CORS_ORIGIN")

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error loading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	cfg := Config{
		Port:             v.GetInt("port"),
		DatabaseURL:      v.GetString("database_url"),
		DatabaseType:     strings.ToLower(v.GetString("database_type")),
		Env:              v.GetString("env"),
		QuestionsPerPage: v.GetInt("questions_per_page"),
		CORSOrigin:       v.GetString("cors_origin"),
		MaxOpenConns:     v.GetInt("db_max_open_conns"),
		ConnMaxLifetime:  v.GetDuration("db_conn_max_lifetime"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required settings and value ranges
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres, DatabasePGX:
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownDatabase, c.DatabaseType)
	}
	if c.QuestionsPerPage < 1 {
		return errors.New("questions per page must be at least 1")
	}
	return nil
}
