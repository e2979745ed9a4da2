package datastore

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"todo-go-backend/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Supported database drivers
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS todo (
	id BIGINT PRIMARY KEY,
	todo TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL,
	status TEXT NOT NULL,
	category TEXT NOT NULL,
	due_date TEXT
)`

// NewDSN builds the connection string from config, unless one is set explicitly.
func NewDSN() string {
	db := config.C.Database
	if db.DSN != "" {
		return db.DSN
	}

	sslMode := db.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Addr + ":" + db.Port,
		Path:     "/" + db.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// NewClient opens the database configured in config.C.
func NewClient() (*sqlx.DB, error) {
	return NewClientWithDriver(config.C.Database.Driver, NewDSN())
}

// NewClientWithDriver opens dsn with the named driver.
func NewClientWithDriver(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case "", DriverPgx:
		return newPgxClient(dsn)
	case DriverPostgres:
		db, err := sqlx.Open(DriverPostgres, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		applyPoolLimits(db)
		return db, nil
	case DriverSQLite:
		db, err := sqlx.Open(DriverSQLite, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		// A single connection keeps an in-memory database alive and
		// serializes writers.
		db.SetMaxOpenConns(1)
		return db, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func newPgxClient(dsn string) (*sqlx.DB, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = 20
	if n := config.C.Database.MaxConns; n > 0 {
		poolConfig.MaxConns = n
	}
	poolConfig.MinConns = config.C.Database.MinConns
	poolConfig.MaxConnLifetime = time.Minute * 2
	if s := config.C.Database.ConnMaxLifetimeSeconds; s > 0 {
		poolConfig.MaxConnLifetime = time.Duration(s) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	return sqlx.NewDb(stdlib.OpenDBFromPool(pool), DriverPgx), nil
}

func applyPoolLimits(db *sqlx.DB) {
	if n := config.C.Database.MaxConns; n > 0 {
		db.SetMaxOpenConns(int(n))
	}
	if n := config.C.Database.MinConns; n > 0 {
		db.SetMaxIdleConns(int(n))
	}
	if s := config.C.Database.ConnMaxLifetimeSeconds; s > 0 {
		db.SetConnMaxLifetime(time.Duration(s) * time.Second)
	}
}

// CreateSchema creates the todo table when it does not exist.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}
