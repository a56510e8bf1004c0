package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

// csrfTokenRepository implements CsrfTokenRepository over GORM.
type csrfTokenRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCsrfTokenRepository creates a new CSRF token repository.
func NewCsrfTokenRepository(db *gorm.DB, logger *zap.Logger) repository.CsrfTokenRepository {
	return &csrfTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *csrfTokenRepository) Create(ctx context.Context, token *model.CsrfToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("failed to store csrf token: %w", err)
	}
	return nil
}

func (r *csrfTokenRepository) FindByToken(ctx context.Context, token string) (*model.CsrfToken, error) {
	var record model.CsrfToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up csrf token: %w", err)
	}
	return &record, nil
}

// Consume flips the token from unused to used in one conditional update.
// The used = false guard plus the affected-row count closes the race where
// two concurrent requests both read the token as unused: only one update
// can match.
func (r *csrfTokenRepository) Consume(ctx context.Context, token string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.CsrfToken{}).
		Where("token = ? AND used = ?", token, false).
		Update("used", true)
	if res.Error != nil {
		return false, fmt.Errorf("failed to consume csrf token: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *csrfTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.CsrfToken{}).Error; err != nil {
		return fmt.Errorf("failed to delete csrf token: %w", err)
	}
	return nil
}

// DeleteStale removes expired tokens and used tokens past the retention
// window. Run by the sweep binary on a schedule.
func (r *csrfTokenRepository) DeleteStale(ctx context.Context, now time.Time, usedRetention time.Duration) (int64, error) {
	cutoff := now.Add(-usedRetention)
	res := r.db.WithContext(ctx).
		Where("expires_at <= ? OR (used = ? AND created_at <= ?)", now, true, cutoff).
		Delete(&model.CsrfToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to sweep csrf tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}
