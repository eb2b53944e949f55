package types

import "cosmossdk.io/math"

// QuotePerBase converts a base amount into quote units at price:
// quote = base × price / F.
func QuotePerBase(base, price, priceFactor math.Uint) math.Uint {
	return base.Mul(price).Quo(priceFactor)
}

// BasePerQuote converts a quote amount into base units at price:
// base = quote × F / price.
func BasePerQuote(quote, price, priceFactor math.Uint) math.Uint {
	return quote.Mul(priceFactor).Quo(price)
}

// EnsureBounds rejects an order whose price or sell amount falls outside
// (0, MaxPrice] / (0, MaxAmount].
func EnsureBounds(price, sellAmount, maxPrice, maxAmount math.Uint) error {
	if price.IsZero() || price.GT(maxPrice) {
		return ErrBoundsCheckFailed.Wrapf("price %s out of bounds (0, %s]", price, maxPrice)
	}
	if sellAmount.IsZero() || sellAmount.GT(maxAmount) {
		return ErrBoundsCheckFailed.Wrapf("amount %s out of bounds (0, %s]", sellAmount, maxAmount)
	}
	return nil
}

// EnsureCounterpartyAmountBounds derives the counterparty (buy/sell) amount
// implied by price and sellAmount, and rejects it if the conversion doesn't
// round-trip exactly or falls outside (0, maxAmount]. math.Uint is backed by
// big.Int, which gives a wide-integer intermediate domain without a separate
// 256-bit type: Mul never overflows before the following Quo.
func EnsureCounterpartyAmountBounds(side Side, price, sellAmount, priceFactor, maxAmount math.Uint) (math.Uint, error) {
	var counterparty math.Uint
	switch side {
	case SideBuy:
		counterparty = BasePerQuote(sellAmount, price, priceFactor)
		roundTrip := QuotePerBase(counterparty, price, priceFactor)
		if !roundTrip.Equal(sellAmount) {
			return math.ZeroUint(), ErrBoundsCheckFailed.Wrapf(
				"lossy buy conversion: sell_amount=%s price=%s round_trip=%s", sellAmount, price, roundTrip)
		}
	case SideSell:
		counterparty = QuotePerBase(sellAmount, price, priceFactor)
		roundTrip := BasePerQuote(counterparty, price, priceFactor)
		if !roundTrip.Equal(sellAmount) {
			return math.ZeroUint(), ErrBoundsCheckFailed.Wrapf(
				"lossy sell conversion: sell_amount=%s price=%s round_trip=%s", sellAmount, price, roundTrip)
		}
	default:
		return math.ZeroUint(), ErrBoundsCheckFailed.Wrap("invalid side")
	}

	if counterparty.IsZero() {
		return math.ZeroUint(), ErrBoundsCheckFailed.Wrap("counterparty amount is zero")
	}
	if counterparty.GT(maxAmount) {
		return math.ZeroUint(), ErrBoundsCheckFailed.Wrapf("counterparty amount %s exceeds max %s", counterparty, maxAmount)
	}
	return counterparty, nil
}
