package types

import "cosmossdk.io/math"

// BottomSentinelPrice and TopSentinelPrice are the fixed prices of the
// BOTTOM and TOP sentinel levels. BOTTOM is price=min,
// TOP is price=max; every accepted order price lies strictly between
// them given Params.MaxPrice is always chosen below TopSentinelPrice.
var (
	BottomSentinelPrice = math.ZeroUint()
	// 2^256 - 1: larger than any price EnsureBounds can accept since
	// Params.MaxPrice is bounded well below the library's big.Int practical
	// range used elsewhere in the module.
	TopSentinelPrice = math.NewUintFromString("115792089237316195423570985008687907853269984665640564039457584007913129639935")
)
