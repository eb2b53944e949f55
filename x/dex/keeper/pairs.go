package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

func tradePairKey(hash types.Hash) []byte {
	return append(append([]byte{}, types.TradePairKeyPrefix...), hash[:]...)
}

// baseQuoteIndexKey is symmetric in base/quote so a lookup for either
// ordering of an unordered pair hits the same entry: only one TradePair
// exists for any unordered {base,quote}.
func baseQuoteIndexKey(base, quote types.Hash) []byte {
	a, b := base, quote
	if string(b[:]) < string(a[:]) {
		a, b = b, a
	}
	key := append(append([]byte{}, types.TradePairBaseQuoteIndex...), a[:]...)
	return append(key, b[:]...)
}

func (k *Keeper) SetTradePair(ctx sdk.Context, pair *types.TradePair) {
	store := k.store(ctx)
	store.Set(tradePairKey(pair.Hash), marshalJSON(pair))
	store.Set(baseQuoteIndexKey(pair.Base, pair.Quote), pair.Hash[:])
}

func (k *Keeper) GetTradePair(ctx sdk.Context, hash types.Hash) (*types.TradePair, bool) {
	bz := k.store(ctx).Get(tradePairKey(hash))
	if bz == nil {
		return nil, false
	}
	var p types.TradePair
	if err := json.Unmarshal(bz, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (k *Keeper) FindTradePair(ctx sdk.Context, base, quote types.Hash) (*types.TradePair, bool) {
	bz := k.store(ctx).Get(baseQuoteIndexKey(base, quote))
	if bz == nil {
		return nil, false
	}
	var hash types.Hash
	copy(hash[:], bz)
	return k.GetTradePair(ctx, hash)
}

func (k *Keeper) GetAllTradePairs(ctx sdk.Context) []*types.TradePair {
	store := k.store(ctx)
	iter := storetypes.KVStorePrefixIterator(store, types.TradePairKeyPrefix)
	defer iter.Close()

	var pairs []*types.TradePair
	for ; iter.Valid(); iter.Next() {
		var p types.TradePair
		if err := json.Unmarshal(iter.Value(), &p); err != nil {
			continue
		}
		pairs = append(pairs, &p)
	}
	return pairs
}
