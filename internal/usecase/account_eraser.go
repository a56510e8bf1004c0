package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// AccountEraser performs irreversible self-service account deletion.
type AccountEraser struct {
	logger    *zap.Logger
	accounts  repository.AccountRepository
	auditLogs repository.AuditLogRepository
}

// NewAccountEraser creates a new account eraser.
func NewAccountEraser(
	logger *zap.Logger,
	accounts repository.AccountRepository,
	auditLogs repository.AuditLogRepository,
) *AccountEraser {
	return &AccountEraser{
		logger:    logger,
		accounts:  accounts,
		auditLogs: auditLogs,
	}
}

// DeleteAccount validates the typed confirmation phrase, then erases the
// account in one all-or-nothing transaction. The phrase check runs before
// anything touches the store, so a mismatch has zero side effects. The audit
// entry is written only after the transaction commits.
func (e *AccountEraser) DeleteAccount(ctx context.Context, userID, walletAddress, confirmationPhrase, clientIP string) (time.Time, error) {
	if confirmationPhrase != dto.ConfirmationPhrase {
		return time.Time{}, apperrors.NewAppError(
			apperrors.ErrConfirmationMismatch,
			"confirmation phrase does not match",
			nil,
		)
	}

	if err := e.accounts.EraseUser(ctx, userID); err != nil {
		e.logger.Error("Account erasure failed",
			zap.String("user_id_prefix", model.Prefix(userID, 8)),
			zap.Error(err))

		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// A referencing table is missing from the erase step list. Not
			// user-recoverable; the enumeration needs a code fix.
			return time.Time{}, apperrors.NewAppError(
				apperrors.ErrForeignKeyConstraint,
				"account deletion incomplete, contact support",
				err,
			)
		}
		return time.Time{}, apperrors.NewAppError(
			apperrors.ErrTransactionalFailure,
			"account deletion failed",
			err,
		)
	}

	deletedAt := time.Now().UTC()

	audit := &model.AuditLog{
		Action:       model.AuditActionAccountDeleted,
		ActorPrefix:  model.Prefix(userID, 8),
		WalletPrefix: model.Prefix(walletAddress, 8),
		IPAddress:    clientIP,
		Success:      true,
	}
	if err := e.auditLogs.Create(ctx, audit); err != nil {
		// The deletion already committed; a lost audit row must not fail it.
		e.logger.Warn("Failed to write deletion audit log", zap.Error(err))
	}

	e.logger.Info("Account deleted",
		zap.String("user_id_prefix", model.Prefix(userID, 8)),
		zap.String("wallet_prefix", model.Prefix(walletAddress, 8)),
		zap.String("client_ip", clientIP))

	return deletedAt, nil
}
