package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BeginBlock evicts day-old market data before any transaction in the
// block is processed. Block hooks never fail — they read with defaults
// and continue.
func (k *Keeper) BeginBlock(ctx sdk.Context) {
	k.OnInitializeMarketData(ctx, ctx.BlockHeight())
}

// EndBlock folds the block's trades into the rolling 24h window after
// every transaction has been applied.
func (k *Keeper) EndBlock(ctx sdk.Context) {
	k.OnFinalizeMarketData(ctx, ctx.BlockHeight())
}
