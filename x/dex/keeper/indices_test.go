package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openalpha/dex/x/dex/types"
)

// TestBookDepthOrdering exercises indices.go's btree-backed BookDepth:
// bids must read back high-to-low, asks low-to-high, regardless of the
// order price levels were inserted in.
func TestBookDepthOrdering(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	f.fundAccount(t, "alice", "carol", quote, 100)
	f.fundAccount(t, "alice", "dave", base, 100)

	_, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(5*priceFactor), u(1))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "carol", base, quote, types.OrderKindLimit, types.SideSell, u(4*priceFactor), u(1))
	require.NoError(t, err)

	_, _, err = f.dex.CreateOrder(f.ctx, "dave", base, quote, types.OrderKindLimit, types.SideBuy, u(1*priceFactor), u(1))
	require.NoError(t, err)

	pair, found := f.dex.FindTradePair(f.ctx, base, quote)
	require.True(t, found)

	bids, asks := f.dex.BookDepth(f.ctx, pair.Hash, 0)
	require.Len(t, bids, 1)
	require.Equal(t, u(1*priceFactor).String(), bids[0].Price)

	require.Len(t, asks, 3)
	require.Equal(t, u(3*priceFactor).String(), asks[0].Price)
	require.Equal(t, u(4*priceFactor).String(), asks[1].Price)
	require.Equal(t, u(5*priceFactor).String(), asks[2].Price)
}

// TestBookDepthLimit confirms depth bounds the number of levels returned
// per side.
func TestBookDepthLimit(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	f.fundAccount(t, "alice", "carol", quote, 100)

	_, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideSell, u(4*priceFactor), u(1))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "carol", base, quote, types.OrderKindLimit, types.SideSell, u(5*priceFactor), u(1))
	require.NoError(t, err)

	pair, found := f.dex.FindTradePair(f.ctx, base, quote)
	require.True(t, found)

	_, asks := f.dex.BookDepth(f.ctx, pair.Hash, 2)
	require.Len(t, asks, 2)
}
