package seo

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/model/seo"
	seoService "github.com/zhouzirui/vitrine/backend/internal/service/seo"
	"github.com/zhouzirui/vitrine/backend/pkg/utils"
)

const (
	msgContentRequired = "Content is required and must be a non-empty string"
	msgServer          = "Erreur serveur lors de la génération SEO"
	msgUnavailable     = "Génération SEO indisponible"
)

// Handler serves the SEO metadata endpoint.
type Handler struct {
	seoSvc *seoService.Service
	logger *zap.Logger
}

// New creates the handler. A nil service makes the route answer 503.
func New(seoSvc *seoService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{seoSvc: seoSvc, logger: logger.Named("seo")}
}

// RegisterRoutes mounts the SEO route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-seo", h.handleGenerate)
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var payload seo.Request
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondJSON(w, http.StatusBadRequest, seo.Response{Error: msgContentRequired})
		return
	}

	if h.seoSvc == nil {
		utils.RespondJSON(w, http.StatusServiceUnavailable, seo.Response{Error: msgUnavailable})
		return
	}

	meta, err := h.seoSvc.Generate(r.Context(), payload.Content)
	if err != nil {
		if errors.Is(err, seoService.ErrContentRequired) {
			utils.RespondJSON(w, http.StatusBadRequest, seo.Response{Error: msgContentRequired})
			return
		}
		h.logger.Error("seo generation failed", zap.Error(err))
		utils.RespondJSON(w, http.StatusInternalServerError, seo.Response{Error: msgServer})
		return
	}

	utils.RespondJSON(w, http.StatusOK, seo.Response{Title: meta.Title, Description: meta.Description})
}
