package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

var _ types.QueryServer = (*Keeper)(nil)

func (k *Keeper) TradePair(c context.Context, req *types.QueryTradePairRequest) (*types.QueryTradePairResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	base, err := parseHash(req.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(req.Quote)
	if err != nil {
		return nil, err
	}
	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return nil, types.ErrNoMatchingTradePair
	}
	return &types.QueryTradePairResponse{TradePair: pair}, nil
}

func (k *Keeper) Order(c context.Context, req *types.QueryOrderRequest) (*types.QueryOrderResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	hash, err := parseHash(req.Hash)
	if err != nil {
		return nil, err
	}
	order, found := k.GetOrder(ctx, hash)
	if !found {
		return nil, types.ErrNoMatchingOrder
	}
	return &types.QueryOrderResponse{Order: order}, nil
}

func (k *Keeper) BestPrices(c context.Context, req *types.QueryBestPricesRequest) (*types.QueryBestPricesResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	base, err := parseHash(req.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(req.Quote)
	if err != nil {
		return nil, err
	}
	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return nil, types.ErrNoMatchingTradePair
	}

	resp := &types.QueryBestPricesResponse{}
	if bid, ok := k.BestOpposite(ctx, pair.Hash, types.SideSell); ok {
		resp.HasBestBid, resp.BestBid = true, bid.String()
	}
	if ask, ok := k.BestOpposite(ctx, pair.Hash, types.SideBuy); ok {
		resp.HasBestAsk, resp.BestAsk = true, ask.String()
	}
	return resp, nil
}

func (k *Keeper) RecentTrades(c context.Context, req *types.QueryRecentTradesRequest) (*types.QueryRecentTradesResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	base, err := parseHash(req.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(req.Quote)
	if err != nil {
		return nil, err
	}
	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return nil, types.ErrNoMatchingTradePair
	}
	return &types.QueryRecentTradesResponse{Trades: k.RecentTradesForPair(ctx, pair.Hash, req.Limit)}, nil
}

func (k *Keeper) OrderBookDepth(c context.Context, req *types.QueryOrderBookDepthRequest) (*types.QueryOrderBookDepthResponse, error) {
	ctx := sdk.UnwrapSDKContext(c)
	base, err := parseHash(req.Base)
	if err != nil {
		return nil, err
	}
	quote, err := parseHash(req.Quote)
	if err != nil {
		return nil, err
	}
	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return nil, types.ErrNoMatchingTradePair
	}
	bids, asks := k.BookDepth(ctx, pair.Hash, req.Depth)
	return &types.QueryOrderBookDepthResponse{Bids: bids, Asks: asks}, nil
}
