package types

// Event types and attribute keys emitted by the Msg handlers.
const (
	EventTypeTradePairCreated = "trade_pair_created"
	EventTypeOrderCreated     = "order_created"
	EventTypeTradeCreated     = "trade_created"
	EventTypeOrderCancelled   = "order_cancelled"

	AttributeKeyOwner     = "owner"
	AttributeKeyHash      = "hash"
	AttributeKeyBase      = "base"
	AttributeKeyQuote     = "quote"
	AttributeKeyOrderHash = "order_hash"
	AttributeKeyTradeHash = "trade_hash"
	AttributeKeyPrice     = "price"
	AttributeKeyBaseQty   = "base_amount"
	AttributeKeyQuoteQty  = "quote_amount"
)
