// Package kv persists per-session JSON documents under fixed keys. It is the
// server-side analogue of a browser's local storage: one row per
// (session, key) pair, last write wins.
package kv

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, sessionID uuid.UUID, key string) ([]byte, error)
	Put(ctx context.Context, sessionID uuid.UUID, key string, value []byte) error
	Delete(ctx context.Context, sessionID uuid.UUID, key string) error
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, sessionID uuid.UUID, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM session_store WHERE session_id = $1 AND key = $2`,
		sessionID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, sessionID uuid.UUID, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO session_store (session_id, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (session_id, key)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		sessionID, key, value,
	)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID uuid.UUID, key string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM session_store WHERE session_id = $1 AND key = $2`,
		sessionID, key,
	)
	return err
}
