// Package store persists contact submissions.
package store

import (
	"context"
	"errors"
	"net/http"

	"github.com/zhouzirui/vitrine/backend/internal/config"
	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
)

// ErrNotConfigured means no contact backend was set up.
var ErrNotConfigured = errors.New("contact store not configured")

// ContactStore is insert-only.
type ContactStore interface {
	InsertContact(ctx context.Context, rec contact.Record) error
}

// New picks Supabase when its URL and key are set, then direct Postgres.
func New(cfg config.StoreConfig, httpClient *http.Client) (ContactStore, error) {
	switch {
	case cfg.SupabaseURL != "" && cfg.SupabaseKey != "":
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.SupabaseTable, httpClient), nil
	case cfg.DatabaseURL != "":
		return NewPgStore(cfg.DatabaseURL)
	default:
		return nil, ErrNotConfigured
	}
}
