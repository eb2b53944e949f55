package types

const (
	EventTypeTokenIssued = "token_issued"
	EventTypeTransfer     = "token_transfer"
	EventTypeFreeze       = "token_freeze"
	EventTypeUnfreeze     = "token_unfreeze"

	AttributeKeyOwner   = "owner"
	AttributeKeySymbol  = "symbol"
	AttributeKeyHash    = "hash"
	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyToken      = "token"
	AttributeKeyAmount     = "amount"
	AttributeKeyIssuanceID = "issuance_id"
)
