package dto

import (
	"time"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
)

// ConfirmationPhrase must be supplied character-for-character to delete an
// account.
const ConfirmationPhrase = "DELETE MY ACCOUNT"

// DeleteAccountRequest is the body of the account deletion endpoint.
type DeleteAccountRequest struct {
	ConfirmationPhrase string `json:"confirmationPhrase" validate:"required"`
}

// DeleteAccountResponse is returned after a successful deletion.
type DeleteAccountResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	DeletedAt time.Time `json:"deletedAt"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
	// ExpectedPhrase is echoed on confirmation mismatch so clients can prompt
	// correctly.
	ExpectedPhrase string `json:"expectedPhrase,omitempty"`
}

// ExportBundle is the GDPR right-of-access document: the account itself plus
// every table the eraser enumerates, captured in one consistent snapshot.
type ExportBundle struct {
	// ExportID identifies this bundle in support conversations.
	ExportID   string         `json:"exportId"`
	ExportedAt time.Time      `json:"exportedAt"`
	User       *model.User    `json:"user"`
	Profile    *model.Profile `json:"profile,omitempty"`
	// Content holds anonymize-class records (posts, comments, edits, tips).
	Content map[string]any `json:"content"`
	// Personal holds hard-delete-class records keyed by table name.
	Personal map[string]any `json:"personal"`
}
