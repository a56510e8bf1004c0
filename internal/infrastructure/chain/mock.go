package chain

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// MockService is an in-memory chain backend for development and tests.
// Balances and holdings are keyed by lowercase contract/wallet pairs;
// unknown pairs read as zero / not held.
type MockService struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
	holdings map[string]bool
}

// NewMockService creates an empty mock chain service.
func NewMockService() *MockService {
	return &MockService{
		balances: make(map[string]decimal.Decimal),
		holdings: make(map[string]bool),
	}
}

// SetBalance fixes the balance returned for a token/wallet pair.
func (m *MockService) SetBalance(tokenAddress, wallet string, balance decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[pairKey(tokenAddress, wallet)] = balance
}

// SetHolding fixes whether a wallet holds an NFT of the given contract.
func (m *MockService) SetHolding(nftAddress, wallet string, owns bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holdings[pairKey(nftAddress, wallet)] = owns
}

func (m *MockService) TokenBalance(ctx context.Context, tokenAddress, wallet string) (decimal.Decimal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if balance, ok := m.balances[pairKey(tokenAddress, wallet)]; ok {
		return balance, nil
	}
	return decimal.Zero, nil
}

func (m *MockService) OwnsToken(ctx context.Context, nftAddress, wallet string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.holdings[pairKey(nftAddress, wallet)], nil
}

func pairKey(contract, wallet string) string {
	return strings.ToLower(contract) + ":" + strings.ToLower(wallet)
}
