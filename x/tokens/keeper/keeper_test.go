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

	"github.com/openalpha/dex/x/tokens/keeper"
	"github.com/openalpha/dex/x/tokens/types"
)

// newTestKeeper builds a tokens Keeper over an in-memory IAVL store, the
// same shape used to assemble a keeper at the app layer.
func newTestKeeper(t *testing.T) (*keeper.Keeper, sdk.Context) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey("tokens")
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, cmtproto.Header{Time: time.Now(), Height: 1}, false, log.NewNopLogger())
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	return keeper.NewKeeper(cdc, storeKey, log.NewNopLogger()), ctx
}

// TestIssueCreditsOwner confirms the full supply lands in both the
// owner's balance and free balance on issue.
func TestIssueCreditsOwner(t *testing.T) {
	k, ctx := newTestKeeper(t)

	hash, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(1000))
	require.NoError(t, err)

	require.Equal(t, math.NewUint(1000), k.Balance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(1000), k.FreeBalance(ctx, "alice", hash))
	require.True(t, k.FrozenBalance(ctx, "alice", hash).IsZero())
}

// TestIssueRejectsDuplicateSymbol covers the symbol-uniqueness check.
func TestIssueRejectsDuplicateSymbol(t *testing.T) {
	k, ctx := newTestKeeper(t)

	_, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(1000))
	require.NoError(t, err)

	_, err = k.Issue(ctx, "bob", "GOLD", math.NewUint(500))
	require.ErrorIs(t, err, types.ErrSymbolTaken)
}

// TestIssueRejectsZeroSupply covers the nonzero-supply check on issue.
func TestIssueRejectsZeroSupply(t *testing.T) {
	k, ctx := newTestKeeper(t)
	_, err := k.Issue(ctx, "alice", "GOLD", math.ZeroUint())
	require.ErrorIs(t, err, types.ErrInvalidTotalSupply)
}

// TestIssuanceIDDeterministic covers the google/uuid wiring: the same
// hash always derives the same IssuanceID, and GetTokenByIssuanceID finds
// the token issued under it.
func TestIssuanceIDDeterministic(t *testing.T) {
	k, ctx := newTestKeeper(t)

	hash, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(1000))
	require.NoError(t, err)

	tok, found := k.GetToken(ctx, hash)
	require.True(t, found)
	require.Equal(t, types.IssuanceIDFor(hash), tok.IssuanceID)

	byID, found := k.GetTokenByIssuanceID(ctx, tok.IssuanceID)
	require.True(t, found)
	require.Equal(t, hash, byID.Hash)

	// Re-deriving from the same hash must yield the same UUID every time.
	require.Equal(t, types.IssuanceIDFor(hash), types.IssuanceIDFor(hash))
}

// TestFreezeUnfreezeConservation confirms balance = free + frozen holds
// across freeze/unfreeze, with no totals created or destroyed.
func TestFreezeUnfreezeConservation(t *testing.T) {
	k, ctx := newTestKeeper(t)
	hash, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(1000))
	require.NoError(t, err)

	require.NoError(t, k.Freeze(ctx, "alice", hash, math.NewUint(400)))
	require.Equal(t, math.NewUint(600), k.FreeBalance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(400), k.FrozenBalance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(1000), k.FreeBalance(ctx, "alice", hash).Add(k.FrozenBalance(ctx, "alice", hash)))

	require.NoError(t, k.Unfreeze(ctx, "alice", hash, math.NewUint(150)))
	require.Equal(t, math.NewUint(750), k.FreeBalance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(250), k.FrozenBalance(ctx, "alice", hash))
}

// TestFreezeRejectsInsufficientFree confirms freezing more than the free
// balance fails cleanly, with no partial state change.
func TestFreezeRejectsInsufficientFree(t *testing.T) {
	k, ctx := newTestKeeper(t)
	hash, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(100))
	require.NoError(t, err)

	err = k.Freeze(ctx, "alice", hash, math.NewUint(200))
	require.ErrorIs(t, err, types.ErrInsufficientFree)
	require.Equal(t, math.NewUint(100), k.FreeBalance(ctx, "alice", hash))
}

// TestTransferMovesBothBalances confirms both balance and free balance
// move together on transfer, preserving total supply across the two
// accounts.
func TestTransferMovesBothBalances(t *testing.T) {
	k, ctx := newTestKeeper(t)
	hash, err := k.Issue(ctx, "alice", "GOLD", math.NewUint(1000))
	require.NoError(t, err)

	require.NoError(t, k.Transfer(ctx, "alice", "bob", hash, math.NewUint(300)))

	require.Equal(t, math.NewUint(700), k.Balance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(700), k.FreeBalance(ctx, "alice", hash))
	require.Equal(t, math.NewUint(300), k.Balance(ctx, "bob", hash))
	require.Equal(t, math.NewUint(300), k.FreeBalance(ctx, "bob", hash))

	total := k.Balance(ctx, "alice", hash).Add(k.Balance(ctx, "bob", hash))
	require.Equal(t, math.NewUint(1000), total)
}

// TestOwnerOfUnknownToken covers the not-found path x/dex relies on via
// TokenKeeper.OwnerOf.
func TestOwnerOfUnknownToken(t *testing.T) {
	k, ctx := newTestKeeper(t)
	_, found := k.OwnerOf(ctx, types.Hash{})
	require.False(t, found)
}
