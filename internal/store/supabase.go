package store

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/supabase-community/postgrest-go"

	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
)

// SupabaseStore inserts rows through the Supabase REST (PostgREST) API.
type SupabaseStore struct {
	restURL string
	key     string
	table   string
	client  *http.Client
}

// NewSupabaseStore authenticates with the service role key.
func NewSupabaseStore(baseURL, key, table string, client *http.Client) *SupabaseStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &SupabaseStore{
		restURL: strings.TrimRight(baseURL, "/") + "/rest/v1",
		key:     key,
		table:   table,
		client:  client,
	}
}

// InsertContact posts one row. Only the form fields are sent; the table
// owns its id and timestamp defaults.
func (s *SupabaseStore) InsertContact(ctx context.Context, rec contact.Record) error {
	if s.client.Timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.client.Timeout)
			defer cancel()
		}
	}

	_, _, err := s.restClient(ctx).
		From(s.table).
		Insert([]contact.Submission{rec.Submission}, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("supabase insert into %s: %w", s.table, err)
	}
	return nil
}

// restClient is built per call: postgrest-go has no context parameter, so
// the context rides on the round tripper.
func (s *SupabaseStore) restClient(ctx context.Context) *postgrest.Client {
	c := postgrest.NewClient(s.restURL, "", map[string]string{
		"apikey":        s.key,
		"Authorization": "Bearer " + s.key,
	})
	if c.ClientError == nil {
		c.Transport.Parent = contextTransport{ctx: ctx, next: s.client.Transport}
	}
	return c
}

type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req.WithContext(t.ctx))
}
