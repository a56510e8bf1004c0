package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Function selectors of the contract reads the gate needs.
const (
	selectorBalanceOf = "0x70a08231" // balanceOf(address)
	selectorDecimals  = "0x313ce567" // decimals()
)

// RPCService reads contract state over Ethereum JSON-RPC. Only two calls are
// made: balanceOf for both ERC-20 and ERC-721 contracts, and decimals to
// scale ERC-20 amounts into whole-token units.
type RPCService struct {
	url    string
	client *http.Client
	logger *zap.Logger
	nextID atomic.Int64
}

// NewRPCService creates a JSON-RPC backed chain service.
func NewRPCService(url string, timeout time.Duration, logger *zap.Logger) *RPCService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RPCService{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int64  `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *RPCService) TokenBalance(ctx context.Context, tokenAddress, wallet string) (decimal.Decimal, error) {
	raw, err := s.ethCall(ctx, tokenAddress, selectorBalanceOf+addressWord(wallet))
	if err != nil {
		return decimal.Zero, fmt.Errorf("balanceOf call failed: %w", err)
	}
	balance, err := parseHexWord(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balanceOf result %q: %w", raw, err)
	}

	decimals, err := s.tokenDecimals(ctx, tokenAddress)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromBigInt(balance, -decimals), nil
}

func (s *RPCService) OwnsToken(ctx context.Context, nftAddress, wallet string) (bool, error) {
	raw, err := s.ethCall(ctx, nftAddress, selectorBalanceOf+addressWord(wallet))
	if err != nil {
		return false, fmt.Errorf("balanceOf call failed: %w", err)
	}
	balance, err := parseHexWord(raw)
	if err != nil {
		return false, fmt.Errorf("invalid balanceOf result %q: %w", raw, err)
	}
	return balance.Sign() > 0, nil
}

func (s *RPCService) tokenDecimals(ctx context.Context, tokenAddress string) (int32, error) {
	raw, err := s.ethCall(ctx, tokenAddress, selectorDecimals)
	if err != nil {
		return 0, fmt.Errorf("decimals call failed: %w", err)
	}
	value, err := parseHexWord(raw)
	if err != nil || !value.IsInt64() || value.Int64() > 77 {
		return 0, fmt.Errorf("invalid decimals result %q", raw)
	}
	return int32(value.Int64()), nil
}

func (s *RPCService) ethCall(ctx context.Context, to, data string) (string, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_call",
		Params: []any{
			map[string]string{"to": to, "data": data},
			"latest",
		},
		ID: s.nextID.Add(1),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("rpc endpoint returned status %d", resp.StatusCode)
	}

	var parsed rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("rpc error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	return parsed.Result, nil
}

// addressWord left-pads a hex wallet address to a 32-byte calldata word.
func addressWord(wallet string) string {
	address := strings.ToLower(strings.TrimPrefix(wallet, "0x"))
	if len(address) >= 64 {
		return address
	}
	return strings.Repeat("0", 64-len(address)) + address
}

func parseHexWord(raw string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(raw, "0x")
	if trimmed == "" {
		return big.NewInt(0), nil
	}
	value, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("not a hex quantity")
	}
	return value, nil
}
