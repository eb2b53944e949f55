package types

import (
	"cosmossdk.io/errors"
)

// Module error codes.
var (
	ErrBoundsCheckFailed           = errors.Register(ModuleName, 1, "price or amount out of range, or lossy price/amount conversion")
	ErrNumberCastError             = errors.Register(ModuleName, 2, "narrowing failure")
	ErrOverflowError               = errors.Register(ModuleName, 3, "nonce or index overflow")
	ErrNoMatchingTradePair         = errors.Register(ModuleName, 4, "no matching trade pair")
	ErrBaseEqualQuote              = errors.Register(ModuleName, 5, "base and quote token are the same")
	ErrTokenOwnerNotFound          = errors.Register(ModuleName, 6, "token owner not found")
	ErrSenderNotBaseOrQuoteOwner   = errors.Register(ModuleName, 7, "sender is not the owner of base or quote token")
	ErrTradePairExisted            = errors.Register(ModuleName, 8, "trade pair already exists")
	ErrNoMatchingOrder             = errors.Register(ModuleName, 9, "no matching order")
	ErrCanOnlyCancelOwnOrder       = errors.Register(ModuleName, 10, "can only cancel own order")
	ErrCanOnlyCancelNotFinished    = errors.Register(ModuleName, 11, "can only cancel a not-finished order")
	ErrOrderMatchGetPrice          = errors.Register(ModuleName, 12, "order match: could not read price level")
	ErrOrderMatchGetLinkedListItem = errors.Register(ModuleName, 13, "order match: could not read linked list item")
	ErrOrderMatchGetOrder          = errors.Register(ModuleName, 14, "order match: could not read order")
	ErrOrderMatchSubtract          = errors.Register(ModuleName, 15, "order match: remained amount subtraction underflowed")
	ErrOrderMatchOrderIsNotFinished = errors.Register(ModuleName, 16, "order match: order should be finished but is not")
)
