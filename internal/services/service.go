package services

import (
	"context"
	"errors"
	"time"

	"github.com/anonto42/fb-post/backend/internal/events"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FeedService implements posting, commenting, reacting and the read views
// over a repositories.Store. It is safe for concurrent use.
type FeedService struct {
	store     repositories.Store
	users     *UserDirectory
	publisher events.Publisher
	logger    *zap.Logger
	validate  *validator.Validate
	now       func() time.Time
}

// NewFeedService creates a new FeedService. A nil publisher drops events and
// a nil logger discards logs.
func NewFeedService(store repositories.Store, users *UserDirectory, publisher events.Publisher, logger *zap.Logger) *FeedService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedService{
		store:     store,
		users:     users,
		publisher: publisher,
		logger:    logger,
		validate:  validator.New(),
		now:       time.Now,
	}
}

// publish records a committed mutation. A failed publish is logged and does
// not fail the already committed operation.
func (s *FeedService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish activity event",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}

// storeFailure logs and wraps an unexpected repository error
func (s *FeedService) storeFailure(op string, err error) error {
	s.logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return internal(op, err)
}

// inTransaction runs fn in one store transaction. Service errors raised by fn
// pass through; anything else (begin, commit) is wrapped as internal.
func (s *FeedService) inTransaction(ctx context.Context, op string, fn func(tx repositories.Store) error) error {
	err := s.store.Transaction(ctx, fn)
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	return s.storeFailure(op, err)
}
