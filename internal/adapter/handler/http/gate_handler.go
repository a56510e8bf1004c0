package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/middleware/auth"
	"github.com/SRHSoulja/pengubook-backend/internal/usecase"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// GateHandler answers token-gate membership checks for communities.
type GateHandler struct {
	gate   *usecase.TokenGateService
	logger *zap.Logger
}

// NewGateHandler creates a new token gate handler.
func NewGateHandler(gate *usecase.TokenGateService, logger *zap.Logger) *GateHandler {
	return &GateHandler{gate: gate, logger: logger}
}

// CheckAccess reports whether the caller's wallet satisfies the community's
// gating rules. Ungated communities always allow.
func (h *GateHandler) CheckAccess(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if user == nil {
		return err
	}

	communityID := c.Param("id")
	result, err := h.gate.Check(c.Request().Context(), communityID, user.WalletAddress)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.ErrNotFound {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Community not found",
				Code:  apperrors.ErrNotFound,
			})
		}
		h.logger.Error("Token gate check failed",
			zap.String("community_id", communityID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Token gate check failed",
			Code:  apperrors.ErrInternal,
		})
	}

	return c.JSON(http.StatusOK, dto.GateCheckResponse{
		Allowed: result.Allowed,
		Reason:  result.Reason,
	})
}
