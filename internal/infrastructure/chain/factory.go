// Package chain provides the mock and JSON-RPC implementations of the
// read-only chain interfaces, selected by configuration.
package chain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SRHSoulja/pengubook-backend/internal/config"
	domainchain "github.com/SRHSoulja/pengubook-backend/internal/domain/chain"
)

// Provider types selectable through configuration.
const (
	ProviderMock = "mock"
	ProviderRPC  = "rpc"
)

// NewService returns the chain service implementation selected by the
// chain.provider configuration key.
func NewService(cfg *config.ChainConfig, logger *zap.Logger) (domainchain.Service, error) {
	switch cfg.Provider {
	case ProviderMock, "":
		logger.Info("Using mock chain provider")
		return NewMockService(), nil
	case ProviderRPC:
		if cfg.RPCURL == "" {
			return nil, fmt.Errorf("chain provider rpc requires rpc_url")
		}
		logger.Info("Using JSON-RPC chain provider", zap.String("rpc_url", cfg.RPCURL))
		return NewRPCService(cfg.RPCURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unsupported chain provider: %s", cfg.Provider)
	}
}
