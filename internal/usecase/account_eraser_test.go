package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/SRHSoulja/pengubook-backend/internal/adapter/repository"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

func newEraserTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{},
		&model.Session{}, &model.RevokedSession{}, &model.OAuthAccount{},
		&model.AuthAttempt{}, &model.AuthNonce{}, &model.CsrfToken{},
		&model.Post{}, &model.Comment{}, &model.PostEdit{},
		&model.Like{}, &model.Reaction{}, &model.Share{}, &model.Bookmark{},
		&model.Follow{}, &model.Friendship{}, &model.Block{},
		&model.Message{}, &model.MessageReaction{}, &model.MessageReadReceipt{},
		&model.Notification{},
		&model.Community{}, &model.CommunityMembership{}, &model.ModeratorGrant{},
		&model.Report{}, &model.MutedPhrase{}, &model.HiddenToken{},
		&model.Tip{}, &model.Activity{}, &model.Streak{}, &model.UserAchievement{},
		&model.Advertisement{}, &model.AdInteraction{}, &model.Upload{},
		&model.ContactSubmission{}, &model.ProjectApplication{},
		&model.AdminAction{}, &model.AuditLog{},
	))

	return db
}

func newTestEraser(t *testing.T, db *gorm.DB) *AccountEraser {
	t.Helper()
	return NewAccountEraser(
		zap.NewNop(),
		adapterrepo.NewAccountRepository(db, zap.NewNop()),
		adapterrepo.NewAuditLogRepository(db),
	)
}

// seedDoomedUser creates a user whose data spans the hard-delete,
// anonymize and redact classes, together with a counterpart account the
// erasure must not disturb.
func seedDoomedUser(t *testing.T, db *gorm.DB) (doomed, other *model.User) {
	t.Helper()

	wallet := "0xdead000000000000000000000000000000000001"
	doomed = &model.User{ID: "doomed", Username: "doomed", WalletAddress: &wallet}
	other = &model.User{ID: "bystander", Username: "bystander"}
	require.NoError(t, db.Create(doomed).Error)
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&model.Profile{UserID: doomed.ID, Bio: "gm"}).Error)

	require.NoError(t, db.Create(&model.Post{ID: "p1", AuthorID: doomed.ID, Content: "first post"}).Error)
	require.NoError(t, db.Create(&model.Post{ID: "p2", AuthorID: other.ID, Content: "other post"}).Error)
	require.NoError(t, db.Create(&model.Comment{ID: "c1", PostID: "p2", AuthorID: doomed.ID, Content: "nice"}).Error)
	require.NoError(t, db.Create(&model.PostEdit{PostID: "p1", EditedBy: doomed.ID, PreviousContent: "draft"}).Error)

	require.NoError(t, db.Create(&model.Message{ID: "m1", ConversationID: "conv", SenderID: doomed.ID, Content: "hi"}).Error)
	require.NoError(t, db.Create(&model.Message{ID: "m2", ConversationID: "conv", SenderID: other.ID, Content: "hello"}).Error)
	require.NoError(t, db.Create(&model.Notification{UserID: doomed.ID, ActorID: other.ID, Type: "like"}).Error)
	require.NoError(t, db.Create(&model.Notification{UserID: other.ID, ActorID: doomed.ID, Type: "follow"}).Error)

	require.NoError(t, db.Create(&model.Follow{FollowerID: doomed.ID, FollowingID: other.ID}).Error)
	require.NoError(t, db.Create(&model.Follow{FollowerID: other.ID, FollowingID: doomed.ID}).Error)
	require.NoError(t, db.Create(&model.Like{UserID: doomed.ID, PostID: "p2"}).Error)

	require.NoError(t, db.Create(&model.Report{ReporterID: doomed.ID, TargetType: model.ReportTargetPost, TargetID: "p2"}).Error)
	require.NoError(t, db.Create(&model.Report{ReporterID: other.ID, TargetType: model.ReportTargetUser, TargetID: doomed.ID}).Error)
	require.NoError(t, db.Create(&model.Report{ReporterID: other.ID, TargetType: model.ReportTargetPost, TargetID: "p1"}).Error)

	require.NoError(t, db.Create(&model.AuthNonce{WalletAddress: wallet, Nonce: "n1", ExpiresAt: time.Now().Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&model.CsrfToken{Token: "tok-doomed", UserID: &doomed.ID, ExpiresAt: time.Now().Add(time.Hour)}).Error)

	require.NoError(t, db.Create(&model.Tip{
		SenderID:    doomed.ID,
		RecipientID: other.ID,
		Amount:      decimal.RequireFromString("1.5"),
		TokenSymbol: "PENGU",
		TxHash:      "0xabc",
		Message:     "thanks for the alpha",
	}).Error)

	require.NoError(t, db.Create(&model.Community{ID: "club", Name: "club", CreatorID: doomed.ID}).Error)

	return doomed, other
}

func TestDeleteAccount_ErasesAndAnonymizes(t *testing.T) {
	db := newEraserTestDB(t)
	eraser := newTestEraser(t, db)
	doomed, other := seedDoomedUser(t, db)

	deletedAt, err := eraser.DeleteAccount(context.Background(), doomed.ID, *doomed.WalletAddress, dto.ConfirmationPhrase, "127.0.0.1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), deletedAt, 5*time.Second)

	// The account and its profile are gone.
	var count int64
	db.Model(&model.User{}).Where("id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count, "user row must be deleted")
	db.Model(&model.Profile{}).Where("user_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count, "profile must be deleted")

	// Personal data is removed in both directions.
	db.Model(&model.Message{}).Where("sender_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Notification{}).Where("user_id = ? OR actor_id = ?", doomed.ID, doomed.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Follow{}).Where("follower_id = ? OR following_id = ?", doomed.ID, doomed.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.Like{}).Where("user_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.AuthNonce{}).Where("wallet_address = ?", *doomed.WalletAddress).Count(&count)
	assert.Zero(t, count)
	db.Model(&model.CsrfToken{}).Where("user_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)

	// Reports filed by the user and reports targeting the account are gone;
	// the report against the user's (now anonymized) post survives.
	db.Model(&model.Report{}).Count(&count)
	assert.Equal(t, int64(1), count)
	var survivingReport model.Report
	require.NoError(t, db.First(&survivingReport).Error)
	assert.Equal(t, model.ReportTargetPost, survivingReport.TargetType)
	assert.Equal(t, "p1", survivingReport.TargetID)

	// Community content survives under the sentinel identity.
	var post model.Post
	require.NoError(t, db.Where("id = ?", "p1").First(&post).Error)
	assert.Equal(t, model.SentinelUserID, post.AuthorID)
	assert.Equal(t, "first post", post.Content)

	var comment model.Comment
	require.NoError(t, db.Where("id = ?", "c1").First(&comment).Error)
	assert.Equal(t, model.SentinelUserID, comment.AuthorID)

	var edit model.PostEdit
	require.NoError(t, db.Where("post_id = ?", "p1").First(&edit).Error)
	assert.Equal(t, model.SentinelUserID, edit.EditedBy)

	var community model.Community
	require.NoError(t, db.Where("id = ?", "club").First(&community).Error)
	assert.Equal(t, model.SentinelUserID, community.CreatorID)

	// Tips keep the financial trail; only the message is redacted.
	var tip model.Tip
	require.NoError(t, db.Where("tx_hash = ?", "0xabc").First(&tip).Error)
	assert.Equal(t, model.RedactedTipMessage, tip.Message)
	assert.Equal(t, doomed.ID, tip.SenderID)
	assert.True(t, tip.Amount.Equal(decimal.RequireFromString("1.5")))

	// Bystander data is untouched.
	db.Model(&model.User{}).Where("id = ?", other.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	var otherPost model.Post
	require.NoError(t, db.Where("id = ?", "p2").First(&otherPost).Error)
	assert.Equal(t, other.ID, otherPost.AuthorID)
	db.Model(&model.Message{}).Where("sender_id = ?", other.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The sentinel exists and an audit entry was written.
	var sentinel model.User
	require.NoError(t, db.Where("id = ?", model.SentinelUserID).First(&sentinel).Error)
	assert.Equal(t, model.SentinelUsername, sentinel.Username)

	var audit model.AuditLog
	require.NoError(t, db.Where("action = ?", model.AuditActionAccountDeleted).First(&audit).Error)
	assert.True(t, audit.Success)
	assert.Equal(t, model.Prefix(doomed.ID, 8), audit.ActorPrefix)
}

func TestDeleteAccount_WrongPhraseHasNoSideEffects(t *testing.T) {
	db := newEraserTestDB(t)
	eraser := newTestEraser(t, db)
	doomed, _ := seedDoomedUser(t, db)

	for _, phrase := range []string{"", "delete my account", "DELETE MY ACCOUNT ", "DELETE ACCOUNT"} {
		_, err := eraser.DeleteAccount(context.Background(), doomed.ID, *doomed.WalletAddress, phrase, "127.0.0.1")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrConfirmationMismatch, apperrors.CodeOf(err))
	}

	var count int64
	db.Model(&model.User{}).Where("id = ?", doomed.ID).Count(&count)
	assert.Equal(t, int64(1), count, "user must survive a failed confirmation")
	db.Model(&model.Message{}).Where("sender_id = ?", doomed.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	db.Model(&model.AuditLog{}).Count(&count)
	assert.Zero(t, count, "no audit entry without a deletion")
}

func TestDeleteAccount_SentinelIsIdempotent(t *testing.T) {
	db := newEraserTestDB(t)
	eraser := newTestEraser(t, db)

	for _, id := range []string{"first", "second"} {
		require.NoError(t, db.Create(&model.User{ID: id, Username: id}).Error)
		require.NoError(t, db.Create(&model.Post{ID: "post-" + id, AuthorID: id, Content: "hi"}).Error)
	}

	_, err := eraser.DeleteAccount(context.Background(), "first", "", dto.ConfirmationPhrase, "")
	require.NoError(t, err)
	_, err = eraser.DeleteAccount(context.Background(), "second", "", dto.ConfirmationPhrase, "")
	require.NoError(t, err)

	var count int64
	db.Model(&model.User{}).Where("id = ?", model.SentinelUserID).Count(&count)
	assert.Equal(t, int64(1), count, "sentinel must be created exactly once")

	db.Model(&model.Post{}).Where("author_id = ?", model.SentinelUserID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestDeleteAccount_UserWithoutWallet(t *testing.T) {
	db := newEraserTestDB(t)
	eraser := newTestEraser(t, db)

	require.NoError(t, db.Create(&model.User{ID: "no-wallet", Username: "nowallet"}).Error)
	// A wallet-keyed row belonging to someone else must not be matched when
	// the deleted account has no wallet at all.
	require.NoError(t, db.Create(&model.AuthNonce{WalletAddress: "0xother", Nonce: "n", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	_, err := eraser.DeleteAccount(context.Background(), "no-wallet", "", dto.ConfirmationPhrase, "")
	require.NoError(t, err)

	var count int64
	db.Model(&model.AuthNonce{}).Count(&count)
	assert.Equal(t, int64(1), count, "foreign wallet rows must survive")
}

func TestDeleteAccount_UnknownUser(t *testing.T) {
	db := newEraserTestDB(t)
	eraser := newTestEraser(t, db)

	_, err := eraser.DeleteAccount(context.Background(), "ghost", "", dto.ConfirmationPhrase, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrTransactionalFailure, apperrors.CodeOf(err))
}
