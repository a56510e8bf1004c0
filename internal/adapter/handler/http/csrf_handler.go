package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/csrf"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// CsrfHandler issues fresh CSRF tokens for clients that have none yet,
// for example right after login or when the cookie expired.
type CsrfHandler struct {
	issuer csrf.Config
	logger *zap.Logger
}

// NewCsrfHandler creates a new CSRF token handler.
func NewCsrfHandler(issuer csrf.Config, logger *zap.Logger) *CsrfHandler {
	return &CsrfHandler{issuer: issuer, logger: logger}
}

// IssueToken mints a token, persists it bound to the authenticated user,
// and delivers it through both the cookie and the response header.
func (h *CsrfHandler) IssueToken(c echo.Context) error {
	token, err := csrf.IssueToken(c, h.issuer)
	if err != nil {
		h.logger.Error("Failed to issue CSRF token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to issue CSRF token",
			Code:  apperrors.ErrInternal,
		})
	}

	return c.JSON(http.StatusOK, dto.CsrfTokenResponse{Token: token})
}
