package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	dexkeeper "github.com/openalpha/dex/x/dex/keeper"
	dextypes "github.com/openalpha/dex/x/dex/types"
	tokenskeeper "github.com/openalpha/dex/x/tokens/keeper"
)

// testFixture wires a dex Keeper against a real tokens Keeper over one
// in-memory IAVL-backed multistore, built the same way an in-process
// keeper test harness is assembled at the app layer.
type testFixture struct {
	ctx    sdk.Context
	dex    *dexkeeper.Keeper
	tokens *tokenskeeper.Keeper
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	dexKey := storetypes.NewKVStoreKey("dex")
	tokensKey := storetypes.NewKVStoreKey("tokens")

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(dexKey, storetypes.StoreTypeIAVL, db)
	cms.MountStoreWithDB(tokensKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, cmtproto.Header{Time: time.Now(), Height: 1}, false, log.NewNopLogger())

	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	tokensK := tokenskeeper.NewKeeper(cdc, tokensKey, log.NewNopLogger())
	dexK := dexkeeper.NewKeeper(cdc, dexKey, tokensK, log.NewNopLogger())

	return &testFixture{ctx: ctx, dex: dexK, tokens: tokensK}
}

// issueToken issues a fresh token owned by owner with the given supply and
// returns its hash.
func (f *testFixture) issueToken(t *testing.T, owner, symbol string, supply uint64) dextypes.Hash {
	t.Helper()
	hash, err := f.tokens.Issue(f.ctx, owner, symbol, math.NewUint(supply))
	require.NoError(t, err)
	return hash
}

// fundAccount transfers amount of token from its issuer to account, so
// account has a free balance to place orders against.
func (f *testFixture) fundAccount(t *testing.T, issuer, account string, token dextypes.Hash, amount uint64) {
	t.Helper()
	if issuer == account {
		return
	}
	require.NoError(t, f.tokens.Transfer(f.ctx, issuer, account, token, math.NewUint(amount)))
}

func u(n uint64) math.Uint { return math.NewUint(n) }
