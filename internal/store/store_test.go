package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/vitrine/backend/internal/config"
	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
)

func sampleRecord() contact.Record {
	return contact.Record{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Submission: contact.Submission{
			Fullname: "Alice Martin",
			Email:    "alice@example.ch",
			Subject:  "Devis",
			Message:  "Bonjour, je souhaite un site vitrine.",
		},
	}
}

func TestSupabaseStoreInsert(t *testing.T) {
	var rows []map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/contacts", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewSupabaseStore(srv.URL+"/", "service-key", "contacts", srv.Client())
	require.NoError(t, s.InsertContact(context.Background(), sampleRecord()))

	require.Len(t, rows, 1)
	assert.Equal(t, map[string]string{
		"fullname": "Alice Martin",
		"email":    "alice@example.ch",
		"subject":  "Devis",
		"message":  "Bonjour, je souhaite un site vitrine.",
	}, rows[0])
}

func TestSupabaseStoreSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","message":"relation \"public.contacts\" does not exist"}`))
	}))
	defer srv.Close()

	err := NewSupabaseStore(srv.URL, "k", "contacts", nil).InsertContact(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "42P01")
	assert.Contains(t, err.Error(), "does not exist")
}

func TestSupabaseStoreHonorsContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := NewSupabaseStore(srv.URL, "k", "contacts", srv.Client()).InsertContact(ctx, sampleRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewSelectsBackend(t *testing.T) {
	_, err := New(config.StoreConfig{}, nil)
	assert.ErrorIs(t, err, ErrNotConfigured)

	s, err := New(config.StoreConfig{
		SupabaseURL:   "https://project.supabase.co",
		SupabaseKey:   "k",
		SupabaseTable: "contacts",
		DatabaseURL:   "postgres://ignored",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SupabaseStore{}, s)
}

func TestPgStoreInsert(t *testing.T) {
	conn := os.Getenv("TEST_DATABASE_URL")
	if conn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	s, err := NewPgStore(conn)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.InsertContact(context.Background(), sampleRecord()))
}
