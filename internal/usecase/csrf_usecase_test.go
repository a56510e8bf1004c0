package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/SRHSoulja/pengubook-backend/internal/adapter/repository"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

func newCsrfTestService(t *testing.T) (*CsrfService, repository.CsrfTokenRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.CsrfToken{}))

	tokens := adapterrepo.NewCsrfTokenRepository(db, zap.NewNop())
	service := NewCsrfService(zap.NewNop(), CsrfConfig{
		TokenTTL:      time.Hour,
		UsedRetention: 24 * time.Hour,
	}, tokens)

	return service, tokens, db
}

func TestCsrfService_Generate(t *testing.T) {
	service, _, _ := newCsrfTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := service.Generate()
		require.NoError(t, err)
		assert.Len(t, token, 64)
		assert.False(t, seen[token], "generated tokens must be unique")
		seen[token] = true
	}
}

func TestCsrfService_IssueAndConsume(t *testing.T) {
	service, tokens, _ := newCsrfTestService(t)
	ctx := context.Background()

	userID := "user-1"
	issued, err := service.Issue(ctx, &userID, nil)
	require.NoError(t, err)
	assert.Len(t, issued.Token, 64)
	assert.False(t, issued.Used)

	require.NoError(t, service.ValidateAndConsume(ctx, issued.Token))

	record, err := tokens.FindByToken(ctx, issued.Token)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Used)
}

func TestCsrfService_ConsumeTwiceFailsAsReplay(t *testing.T) {
	service, _, _ := newCsrfTestService(t)
	ctx := context.Background()

	issued, err := service.Issue(ctx, nil, nil)
	require.NoError(t, err)

	require.NoError(t, service.ValidateAndConsume(ctx, issued.Token))

	err = service.ValidateAndConsume(ctx, issued.Token)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCsrfTokenAlreadyUsed, apperrors.CodeOf(err))
}

func TestCsrfService_UnknownTokenRejected(t *testing.T) {
	service, _, _ := newCsrfTestService(t)

	err := service.ValidateAndConsume(context.Background(), "not-a-real-token")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCsrfTokenNotFound, apperrors.CodeOf(err))
}

func TestCsrfService_ExpiredTokenRejectedAndDeleted(t *testing.T) {
	service, tokens, _ := newCsrfTestService(t)
	ctx := context.Background()

	value, err := service.Generate()
	require.NoError(t, err)
	require.NoError(t, tokens.Create(ctx, &model.CsrfToken{
		Token:     value,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	err = service.ValidateAndConsume(ctx, value)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCsrfTokenExpired, apperrors.CodeOf(err))

	record, err := tokens.FindByToken(ctx, value)
	require.NoError(t, err)
	assert.Nil(t, record, "expired token should be deleted on rejection")
}

func TestCsrfService_ValidateDoubleSubmit(t *testing.T) {
	service, _, _ := newCsrfTestService(t)

	tests := []struct {
		name   string
		cookie string
		header string
		want   bool
	}{
		{"matching values", "abc123", "abc123", true},
		{"mismatched values", "abc123", "def456", false},
		{"empty cookie", "", "abc123", false},
		{"empty header", "abc123", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ValidateDoubleSubmit(tt.cookie, tt.header))
		})
	}
}

func TestCsrfService_CleanupStale(t *testing.T) {
	service, tokens, db := newCsrfTestService(t)
	ctx := context.Background()

	// Expired, never used.
	for i := 0; i < 3; i++ {
		value, err := service.Generate()
		require.NoError(t, err)
		require.NoError(t, tokens.Create(ctx, &model.CsrfToken{
			Token:     value,
			ExpiresAt: time.Now().Add(-time.Minute),
		}))
	}

	// Used long ago, past retention.
	for i := 0; i < 2; i++ {
		value, err := service.Generate()
		require.NoError(t, err)
		require.NoError(t, tokens.Create(ctx, &model.CsrfToken{
			Token:     value,
			ExpiresAt: time.Now().Add(time.Hour),
			Used:      true,
		}))
	}
	// gorm stamps created_at on insert, so backdate the used rows directly.
	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.
		Model(&model.CsrfToken{}).
		Where("used = ?", true).
		Update("created_at", stale).Error)

	// Live token that must survive the sweep.
	live, err := service.Issue(ctx, nil, nil)
	require.NoError(t, err)

	deleted, err := service.CleanupStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)

	record, err := tokens.FindByToken(ctx, live.Token)
	require.NoError(t, err)
	assert.NotNil(t, record)
}

func TestCsrfService_ConcurrentConsumeAdmitsExactlyOne(t *testing.T) {
	service, _, _ := newCsrfTestService(t)
	ctx := context.Background()

	issued, err := service.Issue(ctx, nil, nil)
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.ValidateAndConsume(ctx, issued.Token)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperrors.ErrCsrfTokenAlreadyUsed, apperrors.CodeOf(err))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one request may consume a token")
}
