package repository

import (
	"context"
	"time"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
)

// CsrfTokenRepository persists single-use anti-forgery tokens.
type CsrfTokenRepository interface {
	// Create stores a new unused token.
	Create(ctx context.Context, token *model.CsrfToken) error

	// FindByToken returns the record for a token value, or nil when absent.
	FindByToken(ctx context.Context, token string) (*model.CsrfToken, error)

	// Consume atomically flips an unused token to used. It returns false when
	// the token was already used or does not exist, so two concurrent
	// consumers can never both succeed.
	Consume(ctx context.Context, token string) (bool, error)

	// DeleteByToken removes a single token row.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteStale removes tokens that expired before now, plus used tokens
	// created more than usedRetention ago. Returns the number deleted.
	DeleteStale(ctx context.Context, now time.Time, usedRetention time.Duration) (int64, error)
}
