package types

const (
	// ModuleName is the name of the dex module.
	ModuleName = "dex"

	// StoreKey is the KVStore key used to fetch the module's store.
	StoreKey = ModuleName
)

// Store key prefixes. A single byte each, ahead of a variable-length key.
var (
	TradePairKeyPrefix      = []byte{0x01} // TradePairKeyPrefix + hash -> TradePair
	TradePairBaseQuoteIndex = []byte{0x02} // + base + quote -> trade pair hash
	OrderKeyPrefix          = []byte{0x03} // + order hash -> Order
	PriceLevelKeyPrefix     = []byte{0x04} // + pair hash + price -> PriceLevel
	TradeKeyPrefix          = []byte{0x05} // + trade hash -> Trade
	ParamsKey               = []byte{0x06}
	NonceKey                = []byte{0x07} // global monotonic nonce for order/trade hash derivation
	MarketBucketKeyPrefix   = []byte{0x08} // + pair hash + block number -> MarketDataBucket
	MarketSeriesKeyPrefix   = []byte{0x09} // + pair hash -> MarketDataRing

	AccountOrderIndexPrefix = []byte{0x10} // + account + seq -> order hash
	PairOrderIndexPrefix    = []byte{0x11} // + pair hash + seq -> order hash
	AccountOrderCounterKey  = []byte{0x12} // + account -> counter
	PairOrderCounterKey     = []byte{0x13} // + pair hash -> counter

	OpenedOrdersKeyPrefix = []byte{0x20} // + account + pair hash -> recency cache
	ClosedOrdersKeyPrefix = []byte{0x21} // + account + pair hash -> recency cache

	OrderTradeIndexPrefix    = []byte{0x30} // + order hash + seq -> trade hash
	AccountTradeIndexPrefix  = []byte{0x31} // + account + seq -> trade hash
	AcctPairTradeIndexPrefix = []byte{0x32} // + account + pair hash + seq -> trade hash
	PairTradeIndexPrefix     = []byte{0x33} // + pair hash + seq -> trade hash
	TradeIndexCounterPrefix  = []byte{0x34} // + index kind + key -> counter
)
