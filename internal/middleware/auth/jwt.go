package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthUser represents an authenticated user extracted from a JWT.
type AuthUser struct {
	ID            string `json:"id"`
	WalletAddress string `json:"wallet_address"`
	IsAdmin       bool   `json:"is_admin"`
}

// contextKey is used for storing the user in the echo context.
const userContextKey = "authenticated_user"

// JWTConfig holds the configuration for the JWT middleware.
type JWTConfig struct {
	Secret    string
	Logger    *zap.Logger
	SkipPaths []string // Paths to skip JWT validation
}

// JWTMiddleware creates a middleware that validates bearer tokens issued by
// the platform's auth service.
func JWTMiddleware(config JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, skipPath := range config.SkipPaths {
				if strings.HasPrefix(path, skipPath) {
					return next(c)
				}
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				config.Logger.Warn("Missing authorization header",
					zap.String("path", path),
					zap.String("method", c.Request().Method))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Authorization header required",
					"code":  "MISSING_AUTH_HEADER",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				config.Logger.Warn("Invalid authorization header format",
					zap.String("path", path))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid authorization header format. Expected: Bearer <token>",
					"code":  "INVALID_AUTH_FORMAT",
				})
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.Secret), nil
			})
			if err != nil || !token.Valid {
				config.Logger.Warn("Invalid JWT token",
					zap.String("path", path),
					zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid or expired token",
					"code":  "INVALID_TOKEN",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Invalid token claims",
					"code":  "INVALID_TOKEN",
				})
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"error": "Token missing subject",
					"code":  "INVALID_TOKEN",
				})
			}

			wallet, _ := claims["wallet_address"].(string)
			isAdmin, _ := claims["is_admin"].(bool)

			c.Set(userContextKey, &AuthUser{
				ID:            userID,
				WalletAddress: wallet,
				IsAdmin:       isAdmin,
			})

			return next(c)
		}
	}
}

// RequireAuth returns the authenticated user from the context, or writes a
// 401 response and returns an error.
func RequireAuth(c echo.Context) (*AuthUser, error) {
	user, ok := c.Get(userContextKey).(*AuthUser)
	if !ok || user == nil {
		return nil, c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Authentication required",
			"code":  "AUTH_REQUIRED",
		})
	}
	return user, nil
}

// GetUser returns the authenticated user from the context, or nil when the
// request is unauthenticated.
func GetUser(c echo.Context) *AuthUser {
	user, _ := c.Get(userContextKey).(*AuthUser)
	return user
}

// SetAuthUser places a user into the context. Exposed for handler tests.
func SetAuthUser(c echo.Context, user *AuthUser) {
	c.Set(userContextKey, user)
}
