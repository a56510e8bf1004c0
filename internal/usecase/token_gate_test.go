package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/SRHSoulja/pengubook-backend/internal/adapter/repository"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	chainProvider "github.com/SRHSoulja/pengubook-backend/internal/infrastructure/chain"
	"github.com/SRHSoulja/pengubook-backend/pkg/apperrors"
)

// failingChain errors on every read, standing in for an unreachable RPC node.
type failingChain struct{}

func (failingChain) TokenBalance(ctx context.Context, tokenAddress, wallet string) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("rpc node unreachable")
}

func (failingChain) OwnsToken(ctx context.Context, nftAddress, wallet string) (bool, error) {
	return false, errors.New("rpc node unreachable")
}

func newGateTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Community{}))
	return db
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestTokenGate_Check(t *testing.T) {
	db := newGateTestDB(t)
	wallet := "0xwallet000000000000000000000000000000001"
	token := "0xtoken0000000000000000000000000000000001"
	nft := "0xnft000000000000000000000000000000000001"

	require.NoError(t, db.Create(&model.Community{ID: "open", Name: "open", CreatorID: "u"}).Error)
	require.NoError(t, db.Create(&model.Community{
		ID: "holders", Name: "holders", CreatorID: "u",
		GateTokenAddress: strPtr(token), GateMinBalance: decPtr("100"),
	}).Error)
	require.NoError(t, db.Create(&model.Community{
		ID: "collectors", Name: "collectors", CreatorID: "u",
		GateNFTAddress: strPtr(nft),
	}).Error)
	require.NoError(t, db.Create(&model.Community{
		ID: "whales", Name: "whales", CreatorID: "u",
		GateTokenAddress: strPtr(token), GateMinBalance: decPtr("100"),
		GateNFTAddress: strPtr(nft),
	}).Error)

	mock := chainProvider.NewMockService()
	mock.SetBalance(token, wallet, decimal.RequireFromString("250"))
	mock.SetHolding(nft, wallet, true)

	gate := NewTokenGateService(zap.NewNop(), adapterrepo.NewCommunityRepository(db), mock)
	ctx := context.Background()

	tests := []struct {
		name        string
		communityID string
		wallet      string
		wantAllowed bool
		wantReason  string
	}{
		{"ungated community admits anyone", "open", "", true, ""},
		{"sufficient balance admitted", "holders", wallet, true, ""},
		{"nft holder admitted", "collectors", wallet, true, ""},
		{"both rules pass", "whales", wallet, true, ""},
		{"no wallet denied", "holders", "", false, "no wallet connected"},
		{"zero balance denied", "holders", "0xother", false, "insufficient token balance"},
		{"non-holder denied", "collectors", "0xother", false, "required NFT not held"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gate.Check(ctx, tt.communityID, tt.wallet)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, result.Allowed)
			assert.Equal(t, tt.wantReason, result.Reason)
		})
	}
}

func TestTokenGate_UnknownCommunity(t *testing.T) {
	db := newGateTestDB(t)
	gate := NewTokenGateService(zap.NewNop(), adapterrepo.NewCommunityRepository(db), chainProvider.NewMockService())

	_, err := gate.Check(context.Background(), "ghost", "0xwallet")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.CodeOf(err))
}

func TestTokenGate_ChainFailureFailsClosed(t *testing.T) {
	db := newGateTestDB(t)
	require.NoError(t, db.Create(&model.Community{
		ID: "gated", Name: "gated", CreatorID: "u",
		GateTokenAddress: strPtr("0xtoken"), GateMinBalance: decPtr("1"),
	}).Error)
	require.NoError(t, db.Create(&model.Community{
		ID: "nft-gated", Name: "nft-gated", CreatorID: "u",
		GateNFTAddress: strPtr("0xnft"),
	}).Error)

	gate := NewTokenGateService(zap.NewNop(), adapterrepo.NewCommunityRepository(db), failingChain{})
	ctx := context.Background()

	result, err := gate.Check(ctx, "gated", "0xwallet")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, "balance check unavailable", result.Reason)

	result, err = gate.Check(ctx, "nft-gated", "0xwallet")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, "ownership check unavailable", result.Reason)
}
