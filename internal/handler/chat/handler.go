package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/model/chat"
	chatService "github.com/zhouzirui/vitrine/backend/internal/service/chat"
	"github.com/zhouzirui/vitrine/backend/pkg/utils"
)

const (
	msgQuestionMissing = "Question manquante"
	msgInternal        = "Erreur interne"
	msgUnavailable     = "Assistant indisponible"
)

// Handler serves the FAQ chatbot endpoint.
type Handler struct {
	chatSvc *chatService.Service
	logger  *zap.Logger
}

// New creates the handler. A nil service makes the route answer 503.
func New(chatSvc *chatService.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, logger: logger.Named("chatbot")}
}

// RegisterRoutes mounts the chatbot route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chatbot", h.handleAsk)
}

// handleAsk answers one visitor question.
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, msgQuestionMissing)
		return
	}

	if h.chatSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}

	answer, err := h.chatSvc.Answer(r.Context(), payload.Question)
	if err != nil {
		if errors.Is(err, chatService.ErrQuestionRequired) {
			utils.RespondError(w, http.StatusBadRequest, msgQuestionMissing)
			return
		}
		h.logger.Error("chatbot answer failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.Response{Answer: answer})
}
