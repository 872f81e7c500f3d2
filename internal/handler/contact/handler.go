package contact

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
	contactService "github.com/zhouzirui/vitrine/backend/internal/service/contact"
	"github.com/zhouzirui/vitrine/backend/pkg/utils"
)

const (
	msgInvalidData = "Invalid data"
	msgPersist     = "Erreur lors de l'enregistrement du message"
	msgUnavailable = "Formulaire de contact indisponible"
)

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Handler serves the contact form endpoint.
type Handler struct {
	contactSvc *contactService.Service
	logger     *zap.Logger
}

// New creates the handler. A nil service makes the route answer 503.
func New(contactSvc *contactService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{contactSvc: contactSvc, logger: logger.Named("contact")}
}

// RegisterRoutes mounts the contact route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload contact.Submission
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, msgInvalidData)
		return
	}

	if h.contactSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	_, err := h.contactSvc.Submit(r.Context(), payload)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.RespondJSON(w, http.StatusBadRequest, validationResponse{
				Error:  verr.Error(),
				Fields: verr.FieldMap(),
			})
		default:
			// only ErrPersist gets here, notification failures are not returned
			h.logger.Error("contact insert failed", zap.Error(err))
			utils.RespondError(w, http.StatusInternalServerError, msgPersist)
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
