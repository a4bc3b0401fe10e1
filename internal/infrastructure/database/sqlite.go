package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig holds the SQLite connection parameters.
type DBConfig struct {
	// Path to the database file; ":memory:" gives an in-memory database.
	Path string

	// BusyTimeout is how long a write waits on the engine's lock before
	// failing. SQLite is a single-writer engine, conflicting writes are
	// serialized behind this.
	BusyTimeout time.Duration
}

// SQLiteDB wraps the shared database handle and its lifecycle.
// Constructed once at startup and injected where needed; there is no
// ambient global handle.
type SQLiteDB struct {
	DB     *sql.DB
	Config *DBConfig
}

// NewSQLiteDB creates the wrapper; the handle is opened by Connect.
func NewSQLiteDB(config *DBConfig) *SQLiteDB {
	if config.BusyTimeout <= 0 {
		config.BusyTimeout = 5 * time.Second
	}
	return &SQLiteDB{Config: config}
}

// buildDSN builds the driver DSN. Foreign-key enforcement is off by default
// in SQLite and must be switched on per session, so it is baked into the DSN.
func (d *SQLiteDB) buildDSN() string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", fmt.Sprintf("%d", d.Config.BusyTimeout.Milliseconds()))
	return fmt.Sprintf("file:%s?%s", d.Config.Path, params.Encode())
}

// Connect opens and verifies the database handle.
func (d *SQLiteDB) Connect(ctx context.Context) error {
	db, err := sql.Open("sqlite3", d.buildDSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	// One connection for the process lifetime: the engine serializes writers
	// anyway, and an in-memory database exists per connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	d.DB = db
	return nil
}

// Migrate creates the schema. The foreign keys here are defense-in-depth;
// the friendly integrity errors come from application-level pre-checks.
func (d *SQLiteDB) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS authors (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		bio        TEXT NOT NULL,
		creator_id TEXT NOT NULL REFERENCES users(id),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS books (
		id         TEXT PRIMARY KEY,
		author_id  TEXT NOT NULL REFERENCES authors(id),
		title      TEXT NOT NULL,
		pub_year   TEXT NOT NULL,
		genre      TEXT NOT NULL,
		creator_id TEXT NOT NULL REFERENCES users(id),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_books_author_id ON books(author_id);
	`

	if _, err := d.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (d *SQLiteDB) HealthCheck(ctx context.Context) error {
	if d.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (d *SQLiteDB) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
