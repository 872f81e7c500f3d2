package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/vitrine/backend/internal/model/faq"
	"github.com/zhouzirui/vitrine/backend/pkg/utils"
)

// Handler exposes the FAQ list.
type Handler struct {
	faqs faq.Store
}

// New creates the FAQ handler.
func New(faqs faq.Store) *Handler {
	return &Handler{faqs: faqs}
}

// RegisterRoutes mounts the FAQ routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/faq", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.faqs.List())
}
