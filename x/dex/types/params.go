package types

import "cosmossdk.io/math"

// Params holds the module's tunable configuration.
type Params struct {
	// PriceFactor scales the nominal price into an integer lattice: price × PriceFactor
	// gives integer units of quote per unit of base.
	PriceFactor math.Uint `json:"price_factor"`
	// BlocksPerDay bounds the rolling market-data window.
	BlocksPerDay uint32 `json:"blocks_per_day"`
	// OpenedOrdersArrayCap bounds the per-(account,pair) opened recency cache.
	OpenedOrdersArrayCap uint8 `json:"opened_orders_array_cap"`
	// ClosedOrdersArrayCap bounds the per-(account,pair) closed recency cache.
	ClosedOrdersArrayCap uint8 `json:"closed_orders_array_cap"`
	// MaxPrice is the inclusive upper bound on an order's price, enforced by EnsureBounds.
	MaxPrice math.Uint `json:"max_price"`
	// MaxAmount is the inclusive upper bound on an order's sell_amount / buy_amount.
	MaxAmount math.Uint `json:"max_amount"`
	// MaxMarketSweepLevels bounds the market order's recursive price-level sweep.
	MaxMarketSweepLevels uint32 `json:"max_market_sweep_levels"`
}

// DefaultParams returns the engine's default configuration.
func DefaultParams() Params {
	return Params{
		PriceFactor:          math.NewUint(100000000), // 10^8
		BlocksPerDay:         14400,                   // ~6s blocks
		OpenedOrdersArrayCap: 20,
		ClosedOrdersArrayCap: 20,
		MaxPrice:             math.NewUintFromString("340282366920938463463374607431768211455"), // max u128
		MaxAmount:            math.NewUintFromString("340282366920938463463374607431768211455"),
		MaxMarketSweepLevels: 32,
	}
}
