package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"talent-bank/pkg/logging"
)

type DB struct {
	connection *sql.DB
	log        *logging.Logger
}

func NewDB(dataSourceName string, maxOpenConns int, log *logging.Logger) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	if maxOpenConns <= 0 {
		maxOpenConns = 25
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns / 2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{connection: db, log: log.With("component", "storage")}, nil
}

// Wrap adapts an already opened connection, mostly for tests.
func Wrap(conn *sql.DB, log *logging.Logger) *DB {
	return &DB{connection: conn, log: log.With("component", "storage")}
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		db.log.Error("closing database connection", "err", err)
	}
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

// inTx runs fn inside a transaction, rolling back on error.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
