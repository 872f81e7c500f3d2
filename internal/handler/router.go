package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/handler/chat"
	"github.com/zhouzirui/vitrine/backend/internal/handler/contact"
	"github.com/zhouzirui/vitrine/backend/internal/handler/faq"
	"github.com/zhouzirui/vitrine/backend/internal/handler/seo"
	middlewarePkg "github.com/zhouzirui/vitrine/backend/internal/middleware"
	faqModel "github.com/zhouzirui/vitrine/backend/internal/model/faq"
	chatService "github.com/zhouzirui/vitrine/backend/internal/service/chat"
	contactService "github.com/zhouzirui/vitrine/backend/internal/service/contact"
	seoService "github.com/zhouzirui/vitrine/backend/internal/service/seo"
)

// Services groups what the router needs. Nil services turn their routes into 503s.
type Services struct {
	FAQs    faqModel.Store
	Chat    *chatService.Service
	Contact *contactService.Service
	SEO     *seoService.Service
}

// NewRouter wires HTTP routes to core services.
func NewRouter(svcs Services, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		faq.New(svcs.FAQs).RegisterRoutes(api)
		chat.New(svcs.Chat, logger).RegisterRoutes(api)
		contact.New(svcs.Contact, logger).RegisterRoutes(api)
		seo.New(svcs.SEO, logger).RegisterRoutes(api)
	})

	return r
}
