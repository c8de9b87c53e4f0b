package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
)

// PayloadInfo describes one cached payload without its body.
type PayloadInfo struct {
	Key        string
	RawSize    int
	StoredSize int
	FetchedAt  time.Time
}

// CacheStats summarizes the cache contents.
type CacheStats struct {
	Entries     int
	RawBytes    int64
	StoredBytes int64
}

// GetPayload returns the decompressed body stored under key. ok is false on a miss.
func (db *DB) GetPayload(ctx context.Context, key string) (body []byte, ok bool, err error) {
	var stored []byte
	err = db.conn.QueryRowContext(ctx, "SELECT body FROM payloads WHERE key = ?", key).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "get payload %s", key)
	}
	body, err = db.dec.DecodeAll(stored, nil)
	if err != nil {
		return nil, false, errors.Wrapf(err, "decompress payload %s", key)
	}
	return body, true, nil
}

// PutPayload stores body under key, replacing any previous entry.
func (db *DB) PutPayload(ctx context.Context, key string, body []byte) error {
	stored := db.enc.EncodeAll(body, nil)
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO payloads(key, body, raw_size, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			body = excluded.body,
			raw_size = excluded.raw_size,
			fetched_at = excluded.fetched_at`,
		key, stored, len(body), time.Now().Unix(),
	)
	if err != nil {
		return errors.Wrapf(err, "put payload %s", key)
	}
	return nil
}

// ListPayloads returns every cached entry, most recently fetched first.
func (db *DB) ListPayloads(ctx context.Context) ([]PayloadInfo, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT key, raw_size, length(body), fetched_at
		FROM payloads
		ORDER BY fetched_at DESC, key`)
	if err != nil {
		return nil, errors.Wrap(err, "list payloads")
	}
	defer rows.Close()

	var out []PayloadInfo
	for rows.Next() {
		var p PayloadInfo
		var fetched int64
		if err := rows.Scan(&p.Key, &p.RawSize, &p.StoredSize, &fetched); err != nil {
			return nil, errors.Wrap(err, "scan payload")
		}
		p.FetchedAt = time.Unix(fetched, 0)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Stats returns entry count and byte totals.
func (db *DB) Stats(ctx context.Context) (CacheStats, error) {
	var s CacheStats
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(1), COALESCE(SUM(raw_size), 0), COALESCE(SUM(length(body)), 0)
		FROM payloads`).Scan(&s.Entries, &s.RawBytes, &s.StoredBytes)
	if err != nil {
		return CacheStats{}, errors.Wrap(err, "cache stats")
	}
	return s, nil
}
