package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
)

// Migrate runs database migrations.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Session{},
		&model.RevokedSession{},
		&model.OAuthAccount{},
		&model.AuthAttempt{},
		&model.AuthNonce{},
		&model.CsrfToken{},
		&model.Post{},
		&model.Comment{},
		&model.PostEdit{},
		&model.Like{},
		&model.Reaction{},
		&model.Share{},
		&model.Bookmark{},
		&model.Follow{},
		&model.Friendship{},
		&model.Block{},
		&model.Message{},
		&model.MessageReaction{},
		&model.MessageReadReceipt{},
		&model.Notification{},
		&model.Community{},
		&model.CommunityMembership{},
		&model.ModeratorGrant{},
		&model.Report{},
		&model.MutedPhrase{},
		&model.HiddenToken{},
		&model.Tip{},
		&model.Activity{},
		&model.Streak{},
		&model.UserAchievement{},
		&model.Advertisement{},
		&model.AdInteraction{},
		&model.Upload{},
		&model.ContactSubmission{},
		&model.ProjectApplication{},
		&model.AdminAction{},
		&model.AuditLog{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM tags don't express.
func createCustomIndexes(db *gorm.DB) error {
	// The token sweep scans by expiry and by used+created; the validation
	// path is covered by the unique token index from the model tag.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_csrf_tokens_sweep ON csrf_tokens (used, expires_at)`).Error; err != nil {
		return err
	}

	return nil
}
