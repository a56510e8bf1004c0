package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/SRHSoulja/pengubook-backend/internal/adapter/repository"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/csrf"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
)

func newCsrfTestHandler(t *testing.T) (*CsrfHandler, repository.CsrfTokenRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.CsrfToken{}))

	tokens := adapterrepo.NewCsrfTokenRepository(db, zap.NewNop())
	service := usecase.NewCsrfService(zap.NewNop(), usecase.CsrfConfig{
		TokenTTL:      time.Hour,
		UsedRetention: 24 * time.Hour,
	}, tokens)

	issuer := csrf.Config{
		Service:      service,
		Logger:       zap.NewNop(),
		Secure:       false,
		CookieMaxAge: 86400,
	}
	return NewCsrfHandler(issuer, zap.NewNop()), tokens
}

func TestCsrfHandler_IssueToken(t *testing.T) {
	handler, tokens := newCsrfTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/csrf/token", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.SetAuthUser(c, &auth.AuthUser{ID: "u1"})

	require.NoError(t, handler.IssueToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CsrfTokenResponse
	decodeJSON(t, rec, &resp)
	assert.Len(t, resp.Token, 64)

	// Delivered via header and cookie with the same value.
	assert.Equal(t, resp.Token, rec.Header().Get(usecase.CsrfResponseHeader))
	var cookieValue string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == usecase.CsrfCookieName {
			cookieValue = cookie.Value
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, 86400, cookie.MaxAge)
		}
	}
	assert.Equal(t, resp.Token, cookieValue)

	// Persisted server-side, bound to the caller.
	record, err := tokens.FindByToken(context.Background(), resp.Token)
	require.NoError(t, err)
	require.NotNil(t, record)
	require.NotNil(t, record.UserID)
	assert.Equal(t, "u1", *record.UserID)
	assert.False(t, record.Used)
}
