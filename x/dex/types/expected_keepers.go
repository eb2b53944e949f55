package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TokenKeeper is the expected interface onto the external token ledger:
// owner_of / free_balance / freeze / unfreeze / transfer. Implemented by
// x/tokens, following the module-local "expected keeper" pattern for
// cross-module dependencies.
type TokenKeeper interface {
	OwnerOf(ctx sdk.Context, token Hash) (owner string, found bool)
	FreeBalance(ctx sdk.Context, account string, token Hash) math.Uint
	EnsureFreeBalance(ctx sdk.Context, account string, token Hash, amount math.Uint) error
	Freeze(ctx sdk.Context, account string, token Hash, amount math.Uint) error
	Unfreeze(ctx sdk.Context, account string, token Hash, amount math.Uint) error
	Transfer(ctx sdk.Context, from, to string, token Hash, amount math.Uint) error
}
