package apperrors

// Common error codes.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrRateLimited     = "RATE_LIMITED"
)

// CSRF protection error codes. All map to HTTP 403.
const (
	ErrCsrfTokenMissing     = "TOKEN_MISSING"
	ErrCsrfTokenNotFound    = "TOKEN_NOT_FOUND"
	ErrCsrfTokenAlreadyUsed = "TOKEN_ALREADY_USED"
	ErrCsrfTokenExpired     = "TOKEN_EXPIRED"
	ErrCsrfCookieMismatch   = "COOKIE_MISMATCH"
)

// Account deletion error codes.
const (
	ErrConfirmationMismatch = "CONFIRMATION_MISMATCH"
	ErrForeignKeyConstraint = "FOREIGN_KEY_CONSTRAINT"
	ErrTransactionalFailure = "UNKNOWN_TRANSACTIONAL_FAILURE"
)
