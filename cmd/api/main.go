package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zhouzirui/vitrine/backend/internal/config"
	"github.com/zhouzirui/vitrine/backend/internal/handler"
	"github.com/zhouzirui/vitrine/backend/internal/model/faq"
	"github.com/zhouzirui/vitrine/backend/internal/notify"
	"github.com/zhouzirui/vitrine/backend/internal/service/ai"
	"github.com/zhouzirui/vitrine/backend/internal/service/chat"
	"github.com/zhouzirui/vitrine/backend/internal/service/contact"
	"github.com/zhouzirui/vitrine/backend/internal/service/seo"
	"github.com/zhouzirui/vitrine/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment", zap.Error(envErr))
	}

	faqStore := faq.NewMemoryStore(faq.Seed())
	svcs := handler.Services{FAQs: faqStore}

	generator, err := ai.NewGenerator(ctx, cfg.AI)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("language model credentials missing, chatbot and SEO routes disabled",
			zap.String("provider", cfg.AI.Provider))
	case err != nil:
		logger.Warn("failed to initialize language model, chatbot and SEO routes disabled", zap.Error(err))
	default:
		svcs.Chat = chat.NewService(generator, faqStore, cfg.AI.ChatMaxTokens, logger)
		svcs.SEO = seo.NewService(generator, cfg.AI.SEOMaxTokens, logger)
		logger.Info("language model initialized", zap.String("provider", cfg.AI.Provider))
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	contactStore, err := store.New(cfg.Store, httpClient)
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		logger.Warn("contact datastore not configured, contact route disabled")
	case err != nil:
		logger.Warn("failed to initialize contact datastore, contact route disabled", zap.Error(err))
	default:
		if closer, ok := contactStore.(io.Closer); ok {
			defer func() { _ = closer.Close() }()
		}

		var notifier notify.Notifier
		if cfg.Notify.SlackWebhookURL != "" {
			notifier = notify.NewSlackNotifier(cfg.Notify.SlackWebhookURL, httpClient)
		} else {
			logger.Info("SLACK_WEBHOOK_URL not set, contact notifications disabled")
		}
		svcs.Contact = contact.NewService(contactStore, notifier, logger)
	}

	router := handler.NewRouter(svcs, cfg.Server.AllowedOrigins, logger)

	startServer(ctx, cfg.Server, router, logger)
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("vitrine backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
