package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}
