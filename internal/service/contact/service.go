package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhouzirui/vitrine/backend/internal/model/contact"
	"github.com/zhouzirui/vitrine/backend/internal/notify"
	"github.com/zhouzirui/vitrine/backend/internal/store"
)

// ErrPersist wraps datastore failures.
var ErrPersist = errors.New("failed to persist contact")

const notifyTimeout = 10 * time.Second

// Service validates, stores and announces contact submissions.
type Service struct {
	store    store.ContactStore
	notifier notify.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires the store and an optional notifier (nil disables it).
func NewService(s store.ContactStore, n notify.Notifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    s,
		notifier: n,
		logger:   logger.Named("contact"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit returns a *contact.ValidationError for bad input and an error
// wrapping ErrPersist when the insert fails. Webhook failures are logged
// and never returned.
func (s *Service) Submit(ctx context.Context, sub contact.Submission) (contact.Record, error) {
	if err := contact.Validate(sub); err != nil {
		return contact.Record{}, err
	}

	rec := contact.Record{
		ID:         uuid.NewString(),
		CreatedAt:  s.now(),
		Submission: sub,
	}

	if err := s.store.InsertContact(ctx, rec); err != nil {
		return contact.Record{}, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("contact stored", zap.String("id", rec.ID), zap.String("subject", rec.Subject))

	if s.notifier == nil {
		return rec, nil
	}

	// the row is already stored, a client disconnect must not cancel the notification
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(notifyCtx, sub); err != nil {
		s.logger.Warn("contact notification failed", zap.String("id", rec.ID), zap.Error(err))
	}
	return rec, nil
}
