package usecase

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// Cookie and header names of the double-submit CSRF protocol.
const (
	CsrfCookieName     = "pengu_csrf_token"
	CsrfRequestHeader  = "x-csrf-token"
	CsrfResponseHeader = "X-CSRF-Token"
)

// csrfTokenBytes is the entropy of a token: 32 random bytes, 64 hex chars.
const csrfTokenBytes = 32

// CsrfConfig holds token lifetime settings.
type CsrfConfig struct {
	// TokenTTL bounds how long a stored token stays consumable.
	TokenTTL time.Duration
	// UsedRetention is how long used tokens are kept for the sweep.
	UsedRetention time.Duration
}

// CsrfService issues and validates single-use anti-forgery tokens.
type CsrfService struct {
	logger *zap.Logger
	config CsrfConfig
	tokens repository.CsrfTokenRepository
}

// NewCsrfService creates a new CSRF token service.
func NewCsrfService(logger *zap.Logger, config CsrfConfig, tokens repository.CsrfTokenRepository) *CsrfService {
	if config.TokenTTL <= 0 {
		config.TokenTTL = time.Hour
	}
	if config.UsedRetention <= 0 {
		config.UsedRetention = 24 * time.Hour
	}
	return &CsrfService{
		logger: logger,
		config: config,
		tokens: tokens,
	}
}

// Generate produces a token from the crypto/rand source. There is no
// fallback to a non-cryptographic generator: a failed read is an error.
func (s *CsrfService) Generate() (string, error) {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate csrf token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue generates and persists a fresh unused token bound to the given
// user/session. Delivery (cookie + response header) is the caller's concern.
func (s *CsrfService) Issue(ctx context.Context, userID, sessionID *string) (*model.CsrfToken, error) {
	value, err := s.Generate()
	if err != nil {
		return nil, err
	}

	token := &model.CsrfToken{
		Token:     value,
		UserID:    userID,
		SessionID: sessionID,
		ExpiresAt: time.Now().Add(s.config.TokenTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, err
	}

	return token, nil
}

// ValidateDoubleSubmit compares the cookie-delivered token against the
// header-echoed token in constant time. Fails closed when either is absent.
func (s *CsrfService) ValidateDoubleSubmit(cookieValue, headerValue string) bool {
	if cookieValue == "" || headerValue == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieValue), []byte(headerValue)) == 1
}

// ValidateAndConsume resolves a token and marks it used in one conditional
// update. Errors carry the machine-readable CSRF codes; a second validation
// of the same token always fails as a replay, even under concurrency.
func (s *CsrfService) ValidateAndConsume(ctx context.Context, token string) error {
	record, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		return apperrors.Wrap(err, "csrf token lookup failed")
	}
	if record == nil {
		return apperrors.NewAppError(apperrors.ErrCsrfTokenNotFound, "csrf token not found", nil)
	}

	if record.Used {
		s.logReplay(record)
		return apperrors.NewAppError(apperrors.ErrCsrfTokenAlreadyUsed, "csrf token already used", nil)
	}

	if record.Expired(time.Now()) {
		// Opportunistic cleanup; the sweep catches anything missed here.
		if err := s.tokens.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn("Failed to delete expired csrf token", zap.Error(err))
		}
		return apperrors.NewAppError(apperrors.ErrCsrfTokenExpired, "csrf token expired", nil)
	}

	consumed, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return apperrors.Wrap(err, "csrf token consume failed")
	}
	if !consumed {
		// Lost a race against a concurrent request holding the same token.
		s.logReplay(record)
		return apperrors.NewAppError(apperrors.ErrCsrfTokenAlreadyUsed, "csrf token already used", nil)
	}

	return nil
}

func (s *CsrfService) logReplay(record *model.CsrfToken) {
	fields := []zap.Field{
		zap.String("token_prefix", model.Prefix(record.Token, 8)),
	}
	if record.UserID != nil {
		fields = append(fields, zap.String("user_id", *record.UserID))
	}
	s.logger.Warn("Suspected CSRF replay attack", fields...)
}

// CleanupStale deletes expired tokens and used tokens past retention,
// returning the number removed. Intended to run from an external schedule.
func (s *CsrfService) CleanupStale(ctx context.Context) (int64, error) {
	count, err := s.tokens.DeleteStale(ctx, time.Now(), s.config.UsedRetention)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("Swept stale csrf tokens", zap.Int64("deleted", count))
	}
	return count, nil
}
