package keeper

import (
	"encoding/binary"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

// Trade registry: append-only trade_hash -> Trade, plus four
// monotonic indices: per order (maker and taker), per account (buyer and
// seller), per (account, pair), and per pair.

func tradeKey(hash types.Hash) []byte {
	return append(append([]byte{}, types.TradeKeyPrefix...), hash[:]...)
}

func (k *Keeper) SetTrade(ctx sdk.Context, trade *types.Trade) {
	k.store(ctx).Set(tradeKey(trade.Hash), marshalJSON(trade))
}

func (k *Keeper) GetTrade(ctx sdk.Context, hash types.Hash) (*types.Trade, bool) {
	bz := k.store(ctx).Get(tradeKey(hash))
	if bz == nil {
		return nil, false
	}
	var t types.Trade
	if err := json.Unmarshal(bz, &t); err != nil {
		return nil, false
	}
	return &t, true
}

func tradeIndexKey(prefix []byte, key string, idx uint64) []byte {
	k := append(append([]byte{}, prefix...), []byte(key)...)
	k = append(k, 0)
	idxBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idxBz, idx)
	return append(k, idxBz...)
}

func (k *Keeper) appendTradeIndex(ctx sdk.Context, prefix []byte, key string, tradeHash types.Hash) {
	store := k.store(ctx)
	counterKey := append(append([]byte{}, types.TradeIndexCounterPrefix...), append(append([]byte{}, prefix...), []byte(key)...)...)
	idx := k.nextCounter(ctx, counterKey)
	store.Set(tradeIndexKey(prefix, key, idx), tradeHash[:])
}

// IndexTrade records trade under every index: per order (maker and
// taker), per account (buyer and seller), per (account, pair), and per
// pair.
func (k *Keeper) IndexTrade(ctx sdk.Context, trade *types.Trade, maker, taker *types.Order) {
	k.appendTradeIndex(ctx, types.OrderTradeIndexPrefix, maker.Hash.String(), trade.Hash)
	k.appendTradeIndex(ctx, types.OrderTradeIndexPrefix, taker.Hash.String(), trade.Hash)

	k.appendTradeIndex(ctx, types.AccountTradeIndexPrefix, trade.Buyer, trade.Hash)
	k.appendTradeIndex(ctx, types.AccountTradeIndexPrefix, trade.Seller, trade.Hash)

	k.appendTradeIndex(ctx, types.AcctPairTradeIndexPrefix, trade.Buyer+":"+trade.PairHash.String(), trade.Hash)
	k.appendTradeIndex(ctx, types.AcctPairTradeIndexPrefix, trade.Seller+":"+trade.PairHash.String(), trade.Hash)

	k.appendTradeIndex(ctx, types.PairTradeIndexPrefix, trade.PairHash.String(), trade.Hash)
}

func (k *Keeper) tradesUnder(ctx sdk.Context, prefix []byte, key string, limit uint32) []*types.Trade {
	store := k.store(ctx)
	p := append(append([]byte{}, prefix...), []byte(key)...)
	p = append(p, 0)
	iter := storetypes.KVStorePrefixIterator(store, p)
	defer iter.Close()

	var hashes []types.Hash
	for ; iter.Valid(); iter.Next() {
		var h types.Hash
		copy(h[:], iter.Value())
		hashes = append(hashes, h)
	}
	// most recent first
	out := make([]*types.Trade, 0, len(hashes))
	for i := len(hashes) - 1; i >= 0 && (limit == 0 || uint32(len(out)) < limit); i-- {
		if t, found := k.GetTrade(ctx, hashes[i]); found {
			out = append(out, t)
		}
	}
	return out
}

// RecentTradesForPair returns the most recent trades for a pair, newest
// first, bounded by limit (0 meaning unbounded).
func (k *Keeper) RecentTradesForPair(ctx sdk.Context, pairHash types.Hash, limit uint32) []*types.Trade {
	return k.tradesUnder(ctx, types.PairTradeIndexPrefix, pairHash.String(), limit)
}
