// Package storage is the on-disk cache of raw FACEIT match payloads.
package storage

import (
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the payload cache.
type DB struct {
	conn *sql.DB
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// Open opens (or creates) the SQLite database at the given path and applies the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open db")
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty database.
		conn.SetMaxOpenConns(1)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "apply schema")
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "zstd encoder")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "zstd decoder")
	}
	return &DB{conn: conn, enc: enc, dec: dec}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	db.dec.Close()
	if err := db.enc.Close(); err != nil {
		db.conn.Close()
		return err
	}
	return db.conn.Close()
}
