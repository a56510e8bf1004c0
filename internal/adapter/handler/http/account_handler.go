package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// AccountHandler serves the account lifecycle endpoints: GDPR deletion and
// data export.
type AccountHandler struct {
	eraser   *usecase.AccountEraser
	exporter *usecase.DataExporter
	logger   *zap.Logger
	validate *validator.Validate
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(eraser *usecase.AccountEraser, exporter *usecase.DataExporter, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		eraser:   eraser,
		exporter: exporter,
		logger:   logger,
		validate: validator.New(),
	}
}

// DeleteAccount irreversibly deletes the authenticated caller's account.
// The typed confirmation phrase is checked before anything touches the
// store; only a self-service path exists, no admin-on-behalf-of.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if user == nil {
		return err
	}

	var req dto.DeleteAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  apperrors.ErrInvalidArgument,
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:          "Confirmation phrase required",
			Code:           apperrors.ErrConfirmationMismatch,
			ExpectedPhrase: dto.ConfirmationPhrase,
		})
	}

	deletedAt, err := h.eraser.DeleteAccount(
		c.Request().Context(),
		user.ID,
		user.WalletAddress,
		req.ConfirmationPhrase,
		c.RealIP(),
	)
	if err != nil {
		code := apperrors.CodeOf(err)
		switch code {
		case apperrors.ErrConfirmationMismatch:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:          "Confirmation phrase does not match",
				Code:           code,
				ExpectedPhrase: dto.ConfirmationPhrase,
			})
		case apperrors.ErrForeignKeyConstraint:
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Account deletion failed",
				Details: "A data dependency was not covered by the deletion process. Please contact support.",
				Code:    code,
			})
		default:
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Account deletion failed",
				Details: err.Error(),
				Code:    apperrors.ErrTransactionalFailure,
			})
		}
	}

	return c.JSON(http.StatusOK, dto.DeleteAccountResponse{
		Success:   true,
		Message:   "Your account and personal data have been deleted",
		DeletedAt: deletedAt,
	})
}

// ExportAccount returns the caller's complete data bundle.
func (h *AccountHandler) ExportAccount(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if user == nil {
		return err
	}

	bundle, err := h.exporter.Export(c.Request().Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to export account data",
			zap.String("user_id", user.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export account data",
			Code:  apperrors.ErrInternal,
		})
	}

	return c.JSON(http.StatusOK, bundle)
}
