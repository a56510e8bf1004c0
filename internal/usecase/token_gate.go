package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/chain"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// TokenGateService evaluates community token gates against a wallet. The
// chain service is injected at construction; which implementation backs it
// (mock or rpc) is a configuration decision, not ambient state.
type TokenGateService struct {
	logger      *zap.Logger
	communities repository.CommunityRepository
	chain       chain.Service
}

// NewTokenGateService creates a new token gate service.
func NewTokenGateService(
	logger *zap.Logger,
	communities repository.CommunityRepository,
	chainService chain.Service,
) *TokenGateService {
	return &TokenGateService{
		logger:      logger,
		communities: communities,
		chain:       chainService,
	}
}

// Check evaluates every configured gate rule of the community for the
// wallet. Chain errors fail closed: the caller is denied with a distinct
// reason rather than admitted on an unverifiable claim.
func (s *TokenGateService) Check(ctx context.Context, communityID, wallet string) (*dto.GateCheckResponse, error) {
	community, err := s.communities.FindByID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if community == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "community not found", nil)
	}

	if !community.TokenGated() {
		return &dto.GateCheckResponse{Allowed: true}, nil
	}

	if wallet == "" {
		return &dto.GateCheckResponse{Allowed: false, Reason: "no wallet connected"}, nil
	}

	if community.GateTokenAddress != nil {
		balance, err := s.chain.TokenBalance(ctx, *community.GateTokenAddress, wallet)
		if err != nil {
			s.logger.Warn("Token balance check failed",
				zap.String("community_id", communityID),
				zap.Error(err))
			return &dto.GateCheckResponse{Allowed: false, Reason: "balance check unavailable"}, nil
		}
		if community.GateMinBalance != nil && balance.LessThan(*community.GateMinBalance) {
			return &dto.GateCheckResponse{Allowed: false, Reason: "insufficient token balance"}, nil
		}
	}

	if community.GateNFTAddress != nil {
		owns, err := s.chain.OwnsToken(ctx, *community.GateNFTAddress, wallet)
		if err != nil {
			s.logger.Warn("NFT ownership check failed",
				zap.String("community_id", communityID),
				zap.Error(err))
			return &dto.GateCheckResponse{Allowed: false, Reason: "ownership check unavailable"}, nil
		}
		if !owns {
			return &dto.GateCheckResponse{Allowed: false, Reason: "required NFT not held"}, nil
		}
	}

	return &dto.GateCheckResponse{Allowed: true}, nil
}
