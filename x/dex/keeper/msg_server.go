package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func parseHash(s string) (types.Hash, error) {
	var h types.Hash
	if err := h.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		return types.Hash{}, types.ErrBoundsCheckFailed.Wrapf("invalid hash %q: %s", s, err)
	}
	return h, nil
}

func (m msgServer) CreateTradePair(ctx context.Context, msg *types.MsgCreateTradePair) (*types.MsgCreateTradePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	base, err := parseHash(msg.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(msg.Quote)
	if err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	hash, err := m.Keeper.CreateTradePair(sdkCtx, msg.Sender, base, quote)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateTradePairResponse{Hash: hash.String()}, nil
}

func (m msgServer) CreateOrder(ctx context.Context, msg *types.MsgCreateOrder) (*types.MsgCreateOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	base, err := parseHash(msg.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(msg.Quote)
	if err != nil {
		return nil, err
	}
	sellAmountInt, ok := math.NewIntFromString(msg.SellAmount)
	if !ok || sellAmountInt.IsNegative() {
		return nil, types.ErrBoundsCheckFailed.Wrap("invalid sell_amount")
	}
	sellAmount := math.NewUintFromBigInt(sellAmountInt.BigInt())

	var price math.Uint
	if types.OrderKind(msg.Kind) == types.OrderKindLimit {
		priceInt, ok := math.NewIntFromString(msg.Price)
		if !ok || priceInt.IsNegative() {
			return nil, types.ErrBoundsCheckFailed.Wrap("invalid price")
		}
		price = math.NewUintFromBigInt(priceInt.BigInt())
	} else {
		price = math.ZeroUint()
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	hash, status, err := m.Keeper.CreateOrder(sdkCtx, msg.Sender, base, quote, types.OrderKind(msg.Kind), types.Side(msg.Side), price, sellAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateOrderResponse{Hash: hash.String(), Status: int32(status)}, nil
}

func (m msgServer) CancelOrder(ctx context.Context, msg *types.MsgCancelOrder) (*types.MsgCancelOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	orderHash, err := parseHash(msg.OrderHash)
	if err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := m.Keeper.CancelOrder(sdkCtx, msg.Sender, orderHash); err != nil {
		return nil, err
	}
	return &types.MsgCancelOrderResponse{}, nil
}
