package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
)

// PgStore writes contacts straight into Postgres.
type PgStore struct {
	db *sql.DB
}

// NewPgStore opens the connection and bootstraps the schema.
func NewPgStore(conn string) (*PgStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure contacts schema: %w", err)
	}
	return NewPgStoreFromDB(db), nil
}

// NewPgStoreFromDB wraps an existing handle without touching the schema.
func NewPgStoreFromDB(db *sql.DB) *PgStore {
	return &PgStore{db: db}
}

// InsertContact stores one row.
func (s *PgStore) InsertContact(ctx context.Context, rec contact.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (id, fullname, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.Fullname, rec.Email, rec.Subject, rec.Message, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PgStore) Close() error {
	return s.db.Close()
}
