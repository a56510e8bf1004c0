package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

// DataExporter produces GDPR right-of-access bundles. It walks the same
// table list as the eraser, so the two flows cannot drift apart.
type DataExporter struct {
	logger   *zap.Logger
	accounts repository.AccountRepository
}

// NewDataExporter creates a new data exporter.
func NewDataExporter(logger *zap.Logger, accounts repository.AccountRepository) *DataExporter {
	return &DataExporter{
		logger:   logger,
		accounts: accounts,
	}
}

// Export collects the user's complete data bundle in one consistent snapshot.
func (e *DataExporter) Export(ctx context.Context, userID string) (*dto.ExportBundle, error) {
	bundle, err := e.accounts.CollectExport(ctx, userID)
	if err != nil {
		e.logger.Error("Data export failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}
	bundle.ExportID = uuid.NewString()

	e.logger.Info("Data export completed",
		zap.String("export_id", bundle.ExportID),
		zap.String("user_id", userID),
		zap.Int("content_tables", len(bundle.Content)),
		zap.Int("personal_tables", len(bundle.Personal)))

	return bundle, nil
}
