package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

const testPriceFactor = 100_000_000

// TestEnsureBoundsRejectsOutOfRange covers the price/amount range check
// performed before an order is accepted.
func TestEnsureBoundsRejectsOutOfRange(t *testing.T) {
	maxPrice, maxAmount := math.NewUint(1000), math.NewUint(1000)

	require.NoError(t, EnsureBounds(math.NewUint(1), math.NewUint(1), maxPrice, maxAmount))
	require.Error(t, EnsureBounds(math.ZeroUint(), math.NewUint(1), maxPrice, maxAmount))
	require.Error(t, EnsureBounds(math.NewUint(1), math.ZeroUint(), maxPrice, maxAmount))
	require.Error(t, EnsureBounds(math.NewUint(1001), math.NewUint(1), maxPrice, maxAmount))
	require.Error(t, EnsureBounds(math.NewUint(1), math.NewUint(1001), maxPrice, maxAmount))
}

// TestEnsureCounterpartyAmountBoundsRoundTrip confirms a clean
// price/amount pair round-trips exactly.
func TestEnsureCounterpartyAmountBoundsRoundTrip(t *testing.T) {
	priceFactor := math.NewUint(testPriceFactor)
	maxAmount := math.NewUintFromString("340282366920938463463374607431768211455")

	counterparty, err := EnsureCounterpartyAmountBounds(SideSell, math.NewUint(2*testPriceFactor), math.NewUint(10), priceFactor, maxAmount)
	require.NoError(t, err)
	require.Equal(t, math.NewUint(20), counterparty)

	counterparty, err = EnsureCounterpartyAmountBounds(SideBuy, math.NewUint(2*testPriceFactor), math.NewUint(20), priceFactor, maxAmount)
	require.NoError(t, err)
	require.Equal(t, math.NewUint(10), counterparty)
}

// TestEnsureCounterpartyAmountBoundsRejectsLossy covers the case where
// price×amount doesn't divide cleanly by PriceFactor: the engine must
// reject rather than silently truncate.
func TestEnsureCounterpartyAmountBoundsRejectsLossy(t *testing.T) {
	priceFactor := math.NewUint(testPriceFactor)
	maxAmount := math.NewUintFromString("340282366920938463463374607431768211455")

	_, err := EnsureCounterpartyAmountBounds(SideSell, math.NewUint(3), math.NewUint(1), priceFactor, maxAmount)
	require.Error(t, err)
}

// TestQuoteBaseRoundTrip covers the conversion helpers directly.
func TestQuoteBaseRoundTrip(t *testing.T) {
	priceFactor := math.NewUint(testPriceFactor)
	price := math.NewUint(2 * testPriceFactor)

	quote := QuotePerBase(math.NewUint(10), price, priceFactor)
	require.Equal(t, math.NewUint(20), quote)

	base := BasePerQuote(quote, price, priceFactor)
	require.Equal(t, math.NewUint(10), base)
}
