package repository

import (
	"context"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
)

// AccountRepository exposes the account-wide operations that span the full
// table surface owned by a user.
type AccountRepository interface {
	// FindUserByID returns the user, or nil when absent.
	FindUserByID(ctx context.Context, id string) (*model.User, error)

	// EraseUser runs the full account erasure in one transaction: hard-delete
	// of personal rows, anonymization of community content to the sentinel,
	// tip redaction, then profile and user removal. Either every write
	// commits or none do.
	EraseUser(ctx context.Context, userID string) error

	// CollectExport gathers the user's data across every erased table into a
	// single consistent bundle, inside one read-only transaction.
	CollectExport(ctx context.Context, userID string) (*dto.ExportBundle, error)
}

// CommunityRepository reads community records for gate evaluation.
type CommunityRepository interface {
	FindByID(ctx context.Context, id string) (*model.Community, error)
}

// AuditLogRepository appends audit trail entries.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
}
