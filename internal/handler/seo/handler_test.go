package seo

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/zhouzirui/vitrine/backend/internal/service/ai"
	seoservice "github.com/zhouzirui/vitrine/backend/internal/service/seo"
)

type stubGenerator struct {
	output string
	err    error
	calls  int
}

func (s *stubGenerator) Generate(_ context.Context, _ []*schema.Message, _ ai.Params) (string, error) {
	s.calls++
	return s.output, s.err
}

func setupRouter(gen *stubGenerator) *chi.Mux {
	r := chi.NewRouter()
	New(seoservice.NewService(gen, 60, nil), nil).RegisterRoutes(r)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-seo", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGenerateParsesBothLines(t *testing.T) {
	resp := post(setupRouter(&stubGenerator{output: "Titre: Foo\nDescription: Bar"}), `{"content":"Sites web IA"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"title":"Foo","description":"Bar"}`, resp.Body.String())
}

func TestGenerateDefaultsMissingDescription(t *testing.T) {
	resp := post(setupRouter(&stubGenerator{output: "Titre: Foo"}), `{"content":"Sites web IA"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"title":"Foo","description":"Description par défaut"}`, resp.Body.String())
}

func TestGenerateRejectsInvalidContent(t *testing.T) {
	for name, body := range map[string]string{
		"missing":    `{}`,
		"blank":      `{"content":"  "}`,
		"not string": `{"content":["a"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			gen := &stubGenerator{}
			resp := post(setupRouter(gen), body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.JSONEq(t, `{"title":"","description":"","error":"Content is required and must be a non-empty string"}`, resp.Body.String())
			assert.Zero(t, gen.calls)
		})
	}
}

func TestGenerateModelFailure(t *testing.T) {
	resp := post(setupRouter(&stubGenerator{err: errors.New("timeout")}), `{"content":"Sites web IA"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"title":"","description":"","error":"Erreur serveur lors de la génération SEO"}`, resp.Body.String())
}
