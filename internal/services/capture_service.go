package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/credsink/credsink/internal/models"
	pkgauth "github.com/credsink/credsink/pkg/auth"
	pkglogger "github.com/credsink/credsink/pkg/logger"
)

// AttemptStore defines the Record Store operations the capture service needs
type AttemptStore interface {
	Insert(ctx context.Context, attempt *models.LoginAttempt) (*models.LoginAttempt, error)
	List(ctx context.Context, limit int) ([]*models.LoginAttempt, error)
	Purge(ctx context.Context) (int64, error)
}

// ClientContext carries the optional request metadata recorded alongside a
// submission. Absence of either field is not an error.
type ClientContext struct {
	IP        string
	UserAgent string
}

// SubmitAck is the acknowledgement returned for an accepted submission.
// It never carries the password or its hash.
type SubmitAck struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// CaptureConfig holds the tunables of the capture pipeline
type CaptureConfig struct {
	HashCost  int
	ListLimit int
}

// CaptureService turns inbound submissions into persisted attempt records and
// shapes what leaves the store. It performs no credential verification: every
// accepted submission is recorded with success=true, meaning "submission
// accepted", not "credentials correct".
type CaptureService struct {
	store  AttemptStore
	config CaptureConfig
	logger *slog.Logger
}

// NewCaptureService creates a new CaptureService
func NewCaptureService(store AttemptStore, config CaptureConfig, logger *slog.Logger) *CaptureService {
	if config.HashCost == 0 {
		config.HashCost = pkgauth.DefaultHashCost
	}
	if config.ListLimit == 0 {
		config.ListLimit = 50
	}
	return &CaptureService{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Submit validates the submission, derives the hashed password, and persists
// the record. A single persistence failure surfaces immediately; there is no
// retry policy.
func (s *CaptureService) Submit(ctx context.Context, email, password string, client ClientContext) (*SubmitAck, error) {
	if email == "" || password == "" {
		return nil, models.ErrValidation
	}

	// bcrypt is the one CPU-bound step; the per-request goroutine keeps it
	// from blocking other submissions.
	hashed, err := pkgauth.HashPassword(password, s.config.HashCost)
	if err != nil {
		s.logger.Error("password hashing failed", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	attempt := &models.LoginAttempt{
		Email:          email,
		Password:       password,
		HashedPassword: hashed,
		UserAgent:      client.UserAgent,
		IP:             client.IP,
		Success:        true,
	}

	stored, err := s.store.Insert(ctx, attempt)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return nil, models.ErrValidation
		}
		s.logger.Error("failed to persist login attempt",
			slog.String("email", pkglogger.SanitizedEmail(email)),
			slog.Any("error", err),
		)
		return nil, models.ErrStoreUnavailable
	}

	s.logger.Info("login attempt captured",
		slog.String("id", stored.ID),
		slog.String("email", pkglogger.SanitizedEmail(stored.Email)),
		slog.String("ip", stored.IP),
	)

	return &SubmitAck{
		ID:        stored.ID,
		Email:     stored.Email,
		Timestamp: stored.Timestamp,
	}, nil
}

// ListAttempts returns the most recent attempts, redacted and capped at the
// configured limit.
func (s *CaptureService) ListAttempts(ctx context.Context) ([]models.RedactedLoginAttempt, error) {
	attempts, err := s.store.List(ctx, s.config.ListLimit)
	if err != nil {
		s.logger.Error("failed to list login attempts", slog.Any("error", err))
		return nil, models.ErrStoreUnavailable
	}

	redacted := make([]models.RedactedLoginAttempt, 0, len(attempts))
	for _, a := range attempts {
		redacted = append(redacted, a.Redacted())
	}
	return redacted, nil
}

// PurgeAttempts removes every stored attempt and reports the count deleted.
// Purging an empty store succeeds with zero.
func (s *CaptureService) PurgeAttempts(ctx context.Context) (int64, error) {
	deleted, err := s.store.Purge(ctx)
	if err != nil {
		s.logger.Error("failed to purge login attempts", slog.Any("error", err))
		return 0, models.ErrStoreUnavailable
	}

	s.logger.Info("login attempts purged", slog.Int64("deleted", deleted))
	return deleted, nil
}
