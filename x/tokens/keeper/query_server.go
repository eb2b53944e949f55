package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/tokens/types"
)

var _ types.QueryServer = (*Keeper)(nil)

func (k *Keeper) Token(ctx context.Context, req *types.QueryTokenRequest) (*types.QueryTokenResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	var hash types.Hash
	if err := hash.UnmarshalJSON([]byte(`"` + req.Hash + `"`)); err != nil {
		return nil, types.ErrTokenNotFound.Wrapf("%s", err)
	}
	tok, found := k.GetToken(sdkCtx, hash)
	if !found {
		return nil, types.ErrTokenNotFound
	}
	return &types.QueryTokenResponse{Token: tok}, nil
}

func (k *Keeper) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	var hash types.Hash
	if err := hash.UnmarshalJSON([]byte(`"` + req.Token + `"`)); err != nil {
		return nil, types.ErrTokenNotFound.Wrapf("%s", err)
	}
	return &types.QueryBalanceResponse{
		Free:   k.FreeBalance(sdkCtx, req.Account, hash).String(),
		Frozen: k.FrozenBalance(sdkCtx, req.Account, hash).String(),
	}, nil
}
