package types

import "cosmossdk.io/math"

// TradePair is a standing market for an unordered {base, quote} token pair
//.
type TradePair struct {
	Hash               Hash      `json:"hash"`
	Base               Hash      `json:"base"`
	Quote              Hash      `json:"quote"`
	LatestMatchedPrice math.Uint `json:"latest_matched_price"`
	HasLatestPrice     bool      `json:"has_latest_price"`
	OneDayVolume       math.Uint `json:"one_day_volume"`
	OneDayHigh         math.Uint `json:"one_day_high"`
	HasOneDayHigh      bool      `json:"has_one_day_high"`
	OneDayLow          math.Uint `json:"one_day_low"`
	HasOneDayLow       bool      `json:"has_one_day_low"`
}

// Order is a resting or historical limit/market order.
type Order struct {
	Hash               Hash        `json:"hash"`
	Base               Hash        `json:"base"`
	Quote              Hash        `json:"quote"`
	PairHash           Hash        `json:"pair_hash"`
	Owner              string      `json:"owner"`
	Price              math.Uint   `json:"price"`
	SellAmount         math.Uint   `json:"sell_amount"`
	BuyAmount          math.Uint   `json:"buy_amount"`
	RemainedSellAmount math.Uint   `json:"remained_sell_amount"`
	RemainedBuyAmount  math.Uint   `json:"remained_buy_amount"`
	Kind               OrderKind   `json:"kind"`
	Side               Side        `json:"side"`
	Status             OrderStatus `json:"status"`
	CreatedAtBlock     int64       `json:"created_at_block"`
}

// IsFinished reports whether the order can no longer match:
// cancelled, or filled with nothing left to receive.
func (o *Order) IsFinished() bool {
	if o.Status == OrderStatusCancelled {
		return true
	}
	return o.Status == OrderStatusFilled && o.RemainedBuyAmount.IsZero()
}

// ReserveToken is the token frozen against this order: a buy reserves
// base, a sell reserves quote.
func (o *Order) ReserveToken() Hash {
	if o.Side == SideBuy {
		return o.Base
	}
	return o.Quote
}

// Trade is an append-only fill record.
type Trade struct {
	Hash        Hash      `json:"hash"`
	Base        Hash      `json:"base"`
	Quote       Hash      `json:"quote"`
	PairHash    Hash      `json:"pair_hash"`
	Buyer       string    `json:"buyer"`
	Seller      string    `json:"seller"`
	Maker       Hash      `json:"maker"`
	Taker       Hash      `json:"taker"`
	TakerSide   Side      `json:"taker_side"`
	Price       math.Uint `json:"price"`
	BaseAmount  math.Uint `json:"base_amount"`
	QuoteAmount math.Uint `json:"quote_amount"`
	Block       int64     `json:"block"`
}

// PriceLevel is a node of the per-pair sentinel-linked price list.
// Price is Option<Price>-shaped: HasPrice discriminates the "None" case
// (the HEAD sentinel) the source expresses with Option, since Go has no
// first-class option type for a value type here. Prev/Next are NodeRefs,
// whose IsHead flag plays the same role for a neighbor.
//
// NodeRef identifies a neighboring node: either the HEAD sentinel (no
// price) or a priced node (BOTTOM, TOP, or a user level).
type NodeRef struct {
	IsHead bool      `json:"is_head"`
	Price  math.Uint `json:"price"`
}

type PriceLevel struct {
	PairHash   Hash      `json:"pair_hash"`
	Price      math.Uint `json:"price"`
	HasPrice   bool      `json:"has_price"` // false only for the HEAD sentinel
	Prev       NodeRef   `json:"prev"`
	Next       NodeRef   `json:"next"`
	BuyAmount  math.Uint `json:"buy_amount"`
	SellAmount math.Uint `json:"sell_amount"`
	Orders     []Hash    `json:"orders"`
}

// MarketDataBucket is the per-(pair,block) aggregate.
type MarketDataBucket struct {
	Volume  math.Uint `json:"volume"`
	High    math.Uint `json:"high"`
	HasHigh bool      `json:"has_high"`
	Low     math.Uint `json:"low"`
	HasLow  bool      `json:"has_low"`
}

// MarketDataRing is the per-pair rolling window of per-block highs/lows,
// bounded to Params.BlocksPerDay entries.
type MarketDataRing struct {
	HighSeries []OptionalPrice `json:"high_series"`
	LowSeries  []OptionalPrice `json:"low_series"`
}

// OptionalPrice is a JSON-friendly Option<Price>.
type OptionalPrice struct {
	Value math.Uint `json:"value"`
	Set   bool      `json:"set"`
}
