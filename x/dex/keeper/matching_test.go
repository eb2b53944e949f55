package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/openalpha/dex/x/dex/types"
)

const priceFactor = 100_000_000 // 10^8

// setupPair issues base token B and quote token Q owned by maker, creates
// the trade pair, and funds taker with enough B and Q to place orders.
func setupPair(t *testing.T, f *testFixture, maker, taker string) (base, quote types.Hash) {
	t.Helper()
	base = f.issueToken(t, maker, "B", 2_000_000)
	quote = f.issueToken(t, maker, "Q", 2_000_000)
	f.fundAccount(t, maker, taker, base, 1_000_000)
	f.fundAccount(t, maker, taker, quote, 1_000_000)

	_, err := f.dex.CreateTradePair(f.ctx, maker, base, quote)
	require.NoError(t, err)
	return base, quote
}

// TestExactMatch: Alice sells 10 Q at price 2·10^8 (wants 20 B), Bob buys
// 10 Q at the same price (sells 20 B), and both orders fill exactly.
func TestExactMatch(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	price := u(2 * priceFactor)

	aliceHash, aliceStatus, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(10))
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusCreated, aliceStatus)

	bobHash, bobStatus, err := f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideBuy, price, u(20))
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusFilled, bobStatus)

	alice, found := f.dex.GetOrder(f.ctx, aliceHash)
	require.True(t, found)
	require.Equal(t, types.OrderStatusFilled, alice.Status)
	require.True(t, alice.RemainedSellAmount.IsZero())
	require.True(t, alice.RemainedBuyAmount.IsZero())

	bob, found := f.dex.GetOrder(f.ctx, bobHash)
	require.True(t, found)
	require.Equal(t, types.OrderStatusFilled, bob.Status)

	pair, found := f.dex.FindTradePair(f.ctx, base, quote)
	require.True(t, found)
	require.True(t, pair.HasLatestPrice)
	require.Equal(t, price, pair.LatestMatchedPrice)
}

// TestPartialFill: Bob only buys 4 Q worth (8 B) of Alice's resting 10 Q
// ask, leaving Alice partially filled.
func TestPartialFill(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	price := u(2 * priceFactor)

	aliceHash, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(10))
	require.NoError(t, err)

	bobHash, bobStatus, err := f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideBuy, price, u(8))
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusFilled, bobStatus)

	alice, found := f.dex.GetOrder(f.ctx, aliceHash)
	require.True(t, found)
	require.Equal(t, types.OrderStatusPartialFilled, alice.Status)
	require.Equal(t, u(6), alice.RemainedSellAmount)
	require.Equal(t, u(12), alice.RemainedBuyAmount)

	bob, found := f.dex.GetOrder(f.ctx, bobHash)
	require.True(t, found)
	require.True(t, bob.IsFinished())
}

// TestCancelUnfreezesRemainder: continuing from a partial fill, Alice
// cancels her partially filled order and gets her remaining 6 Q
// unfrozen; the price level empties.
func TestCancelUnfreezesRemainder(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	price := u(2 * priceFactor)

	aliceHash, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(10))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideBuy, price, u(8))
	require.NoError(t, err)

	freeBeforeCancel := f.tokens.FreeBalance(f.ctx, "alice", quote)

	require.NoError(t, f.dex.CancelOrder(f.ctx, "alice", aliceHash))

	alice, found := f.dex.GetOrder(f.ctx, aliceHash)
	require.True(t, found)
	require.Equal(t, types.OrderStatusCancelled, alice.Status)

	freeAfterCancel := f.tokens.FreeBalance(f.ctx, "alice", quote)
	require.Equal(t, freeBeforeCancel.Add(u(6)), freeAfterCancel)

	bids, asks := f.dex.BookDepth(f.ctx, (func() types.Hash {
		p, _ := f.dex.FindTradePair(f.ctx, base, quote)
		return p.Hash
	})(), 0)
	require.Empty(t, bids)
	require.Empty(t, asks)
}

// TestBestPricePriority: asks rest at 3, 4, 5 ·10^8 each for 1 Q; a taker
// buying 2 Q at a crossing price fills the two best levels and never
// touches the third.
func TestBestPricePriority(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "taker")
	f.fundAccount(t, "alice", "bob", quote, 100)
	f.fundAccount(t, "alice", "carol", quote, 100)

	h3, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)
	h4, _, err := f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideSell, u(4*priceFactor), u(1))
	require.NoError(t, err)
	h5, _, err := f.dex.CreateOrder(f.ctx, "carol", base, quote, types.OrderKindLimit, types.SideSell, u(5*priceFactor), u(1))
	require.NoError(t, err)

	_, _, err = f.dex.CreateOrder(f.ctx, "taker", base, quote, types.OrderKindLimit, types.SideBuy, u(10*priceFactor), u(20))
	require.NoError(t, err)

	o3, _ := f.dex.GetOrder(f.ctx, h3)
	o4, _ := f.dex.GetOrder(f.ctx, h4)
	o5, _ := f.dex.GetOrder(f.ctx, h5)
	require.True(t, o3.IsFinished())
	require.True(t, o4.IsFinished())
	require.False(t, o5.IsFinished())
	require.Equal(t, u(1), o5.RemainedSellAmount)
}

// TestTimePriorityWithinLevel: two asks rest at the same price; the one
// placed first is filled first.
func TestTimePriorityWithinLevel(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "taker")
	f.fundAccount(t, "alice", "bob", quote, 100)

	aliceHash, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)
	bobHash, _, err := f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)

	_, _, err = f.dex.CreateOrder(f.ctx, "taker", base, quote, types.OrderKindLimit, types.SideBuy, u(3*priceFactor), u(3))
	require.NoError(t, err)

	alice, _ := f.dex.GetOrder(f.ctx, aliceHash)
	bob, _ := f.dex.GetOrder(f.ctx, bobHash)
	require.True(t, alice.IsFinished())
	require.Equal(t, types.OrderStatusCreated, bob.Status)
}

// TestRoundingAlignment: an ask at a fractional price (1.5 quote per
// base) leaves no dust once a taker buys exactly the resting quantity.
func TestRoundingAlignment(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "taker")

	price := u(3 * priceFactor / 2) // 1.5 quote per base
	askHash, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(2))
	require.NoError(t, err)

	_, _, err = f.dex.CreateOrder(f.ctx, "taker", base, quote, types.OrderKindLimit, types.SideBuy, price, u(3))
	require.NoError(t, err)

	ask, found := f.dex.GetOrder(f.ctx, askHash)
	require.True(t, found)
	require.True(t, ask.IsFinished())
	require.True(t, ask.RemainedSellAmount.IsZero())
	require.True(t, ask.RemainedBuyAmount.IsZero())
}

// TestSelfTradePermitted confirms a maker's own resting order may cross
// with their own taker order; the engine does not reject or special-case
// it.
func TestSelfTradePermitted(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "alice")
	price := u(2 * priceFactor)

	makerHash, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(10))
	require.NoError(t, err)

	takerHash, takerStatus, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideBuy, price, u(20))
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusFilled, takerStatus)

	maker, _ := f.dex.GetOrder(f.ctx, makerHash)
	taker, _ := f.dex.GetOrder(f.ctx, takerHash)
	require.True(t, maker.IsFinished())
	require.True(t, taker.IsFinished())
}

// TestMarketOrderSweep exercises createMarketOrder's bounded recursive
// sweep across multiple resting price levels.
func TestMarketOrderSweep(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "taker")
	f.fundAccount(t, "alice", "bob", quote, 100)

	_, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(3*priceFactor), u(1))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideSell, u(4*priceFactor), u(1))
	require.NoError(t, err)

	takerHash, status, err := f.dex.CreateOrder(f.ctx, "taker", base, quote, types.OrderKindMarket, types.SideBuy, math.Uint{}, u(2))
	require.NoError(t, err)
	require.Equal(t, types.OrderStatusFilled, status)

	taker, found := f.dex.GetOrder(f.ctx, takerHash)
	require.True(t, found)
	require.True(t, taker.IsFinished())
}

// TestBoundsRejection confirms a price/amount pair that fails the
// round-trip check is rejected before any state mutation.
func TestBoundsRejection(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")

	// price=3, sellAmount=1 (Sell side): the counterparty amount 1*3/10^8
	// rounds to 0, and converting 0 back gives 0, not 1, so
	// EnsureCounterpartyAmountBounds's round-trip check rejects it.
	_, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, u(3), u(1))
	require.Error(t, err)
}

// TestMarketDataRollover: a single trade folds into the bucket at its
// block, then BeginBlock evicts that bucket once the rolling window of
// BlocksPerDay has fully elapsed. Eviction keys off the exact boundary
// block (current - BlocksPerDay), so advancing straight to that height
// is what triggers it under the per-block bucket storage.
func TestMarketDataRollover(t *testing.T) {
	f := newFixture(t)
	base, quote := setupPair(t, f, "alice", "bob")
	params := f.dex.GetParams(f.ctx)
	params.BlocksPerDay = 10
	f.dex.SetParams(f.ctx, params)

	price := u(5 * priceFactor)
	f.ctx = f.ctx.WithBlockHeight(100)
	_, _, err := f.dex.CreateOrder(f.ctx, "alice", base, quote, types.OrderKindLimit, types.SideSell, price, u(7))
	require.NoError(t, err)
	_, _, err = f.dex.CreateOrder(f.ctx, "bob", base, quote, types.OrderKindLimit, types.SideBuy, price, u(35))
	require.NoError(t, err)
	f.dex.EndBlock(f.ctx)

	pair, found := f.dex.FindTradePair(f.ctx, base, quote)
	require.True(t, found)
	require.Equal(t, u(7), pair.OneDayVolume)

	f.ctx = f.ctx.WithBlockHeight(110)
	f.dex.BeginBlock(f.ctx)

	pair, found = f.dex.FindTradePair(f.ctx, base, quote)
	require.True(t, found)
	require.True(t, pair.OneDayVolume.IsZero())
}
