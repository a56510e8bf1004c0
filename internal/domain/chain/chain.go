// Package chain defines the read-only blockchain interfaces consumed by
// token gating. Implementations are selected by configuration at
// construction time; there is no package-level service instance.
package chain

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceReader reads ERC-20 token balances.
type BalanceReader interface {
	// TokenBalance returns the balance of wallet for the given token
	// contract, in whole-token units.
	TokenBalance(ctx context.Context, tokenAddress, wallet string) (decimal.Decimal, error)
}

// OwnershipChecker checks ERC-721 ownership.
type OwnershipChecker interface {
	// OwnsToken reports whether wallet holds at least one token of the given
	// NFT contract.
	OwnsToken(ctx context.Context, nftAddress, wallet string) (bool, error)
}

// Service combines the read-only chain capabilities the platform needs.
type Service interface {
	BalanceReader
	OwnershipChecker
}
