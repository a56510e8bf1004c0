// Package csrf wraps mutating endpoints with double-submit plus single-use
// token verification. The decision logic lives in the usecase layer; this
// middleware only adapts echo's request/response types.
package csrf

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// Config holds the CSRF middleware configuration.
type Config struct {
	Service *usecase.CsrfService
	Logger  *zap.Logger
	// Secure marks the cookie Secure; enabled in production.
	Secure bool
	// CookieMaxAge is the cookie Max-Age in seconds.
	CookieMaxAge int
	// SkipPaths bypass CSRF checks entirely (e.g. webhook endpoints with
	// their own signature scheme).
	SkipPaths []string
}

// Middleware enforces the CSRF protocol on state-changing requests:
// safe methods pass through, everything else needs the cookie/header
// double-submit match and a successful single-use consume. After the
// wrapped handler runs, a fresh token is issued for the next request.
func Middleware(config Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if safeMethod(c.Request().Method) {
				return next(c)
			}

			path := c.Request().URL.Path
			for _, skip := range config.SkipPaths {
				if path == skip {
					return next(c)
				}
			}

			headerToken := c.Request().Header.Get(usecase.CsrfRequestHeader)
			cookieToken := ""
			if cookie, err := c.Cookie(usecase.CsrfCookieName); err == nil {
				cookieToken = cookie.Value
			}

			if headerToken == "" || cookieToken == "" {
				return reject(c, config.Logger, apperrors.ErrCsrfTokenMissing, "csrf token missing")
			}

			if !config.Service.ValidateDoubleSubmit(cookieToken, headerToken) {
				return reject(c, config.Logger, apperrors.ErrCsrfCookieMismatch, "csrf cookie mismatch")
			}

			if err := config.Service.ValidateAndConsume(c.Request().Context(), headerToken); err != nil {
				return reject(c, config.Logger, apperrors.CodeOf(err), "csrf validation failed")
			}

			// Rotate before the response body is written: the consumed token
			// is spent, so the client needs a replacement either way.
			c.Response().Before(func() {
				issueToken(c, config)
			})

			return next(c)
		}
	}
}

// IssueToken writes a fresh token for the caller: persisted server-side,
// delivered via the double-submit cookie and the response header.
func IssueToken(c echo.Context, config Config) (string, error) {
	var userID *string
	if user := auth.GetUser(c); user != nil {
		userID = &user.ID
	}

	token, err := config.Service.Issue(c.Request().Context(), userID, nil)
	if err != nil {
		return "", err
	}

	c.SetCookie(&http.Cookie{
		Name:     usecase.CsrfCookieName,
		Value:    token.Token,
		Path:     "/",
		MaxAge:   config.CookieMaxAge,
		HttpOnly: true,
		Secure:   config.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	c.Response().Header().Set(usecase.CsrfResponseHeader, token.Token)

	return token.Token, nil
}

func issueToken(c echo.Context, config Config) {
	if _, err := IssueToken(c, config); err != nil {
		config.Logger.Error("Failed to rotate csrf token", zap.Error(err))
	}
}

func safeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// reject answers 403 with a machine-readable code. The request is terminal;
// CSRF failures are never retried server-side.
func reject(c echo.Context, logger *zap.Logger, code, message string) error {
	logger.Warn("CSRF check rejected request",
		zap.String("path", c.Request().URL.Path),
		zap.String("method", c.Request().Method),
		zap.String("code", code),
		zap.String("remote_ip", c.RealIP()))

	return c.JSON(http.StatusForbidden, echo.Map{
		"error": message,
		"code":  code,
	})
}
