package types

import (
	"cosmossdk.io/math"
	"github.com/google/uuid"

	dextypes "github.com/openalpha/dex/x/dex/types"
)

// IssuanceNamespace roots every token's IssuanceID in this chain's own
// UUID namespace, so a hash collision with another chain's token registry
// can never alias into the same issuance ID.
var IssuanceNamespace = uuid.MustParse("d7b9f0c4-5e3d-4f8b-9e9f-2a6f6f2e9a01")

// IssuanceIDFor deterministically derives a token's UUID from its hash.
func IssuanceIDFor(hash Hash) string {
	return uuid.NewSHA1(IssuanceNamespace, hash[:]).String()
}

// Hash reuses the dex module's opaque identifier type so a token's hash is
// directly usable as a dex TradePair's base/quote without conversion.
type Hash = dextypes.Hash

// HashFromBytes re-exports dextypes.HashFromBytes so callers never need to
// import the dex module directly just to derive a token hash.
func HashFromBytes(parts ...[]byte) Hash {
	return dextypes.HashFromBytes(parts...)
}

// Token is a user-issued asset.
type Token struct {
	Hash        Hash      `json:"hash"`
	Symbol      string    `json:"symbol"`
	Owner       string    `json:"owner"`
	TotalSupply math.Uint `json:"total_supply"`
	// IssuanceID is a UUIDv5 derived from Hash, namespaced to this chain.
	// It exists purely so off-chain indexers have a conventional UUID to
	// key on instead of the raw hash; every validator derives the same
	// value from the same Hash, so it never diverges across replay.
	IssuanceID string `json:"issuance_id"`
}
