package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/tokens/types"
)

var _ types.MsgServer = (*msgServer)(nil)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m *msgServer) IssueToken(ctx context.Context, msg *types.MsgIssueToken) (*types.MsgIssueTokenResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	supplyInt, ok := math.NewIntFromString(msg.TotalSupply)
	if !ok || supplyInt.IsNegative() {
		return nil, types.ErrInvalidTotalSupply
	}
	supply := math.NewUintFromBigInt(supplyInt.BigInt())

	hash, err := m.Keeper.Issue(sdkCtx, msg.Owner, msg.Symbol, supply)
	if err != nil {
		return nil, err
	}

	return &types.MsgIssueTokenResponse{Hash: hash.String()}, nil
}
