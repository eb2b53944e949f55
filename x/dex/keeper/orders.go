package keeper

import (
	"encoding/binary"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

// Order registry: primary map plus per-account and per-pair monotonic
// indices, plus bounded "recently opened/closed" deques per (account,
// pair).

func orderKey(hash types.Hash) []byte {
	return append(append([]byte{}, types.OrderKeyPrefix...), hash[:]...)
}

func (k *Keeper) SetOrder(ctx sdk.Context, order *types.Order) {
	k.store(ctx).Set(orderKey(order.Hash), marshalJSON(order))
}

func (k *Keeper) GetOrder(ctx sdk.Context, hash types.Hash) (*types.Order, bool) {
	bz := k.store(ctx).Get(orderKey(hash))
	if bz == nil {
		return nil, false
	}
	var o types.Order
	if err := json.Unmarshal(bz, &o); err != nil {
		return nil, false
	}
	return &o, true
}

// ==== per-account / per-pair monotonic indices ====

func (k *Keeper) nextCounter(ctx sdk.Context, key []byte) uint64 {
	store := k.store(ctx)
	bz := store.Get(key)
	var n uint64
	if bz != nil {
		n = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, n+1)
	store.Set(key, next)
	return n
}

func accountOrderCounterKey(account string) []byte {
	return append(append([]byte{}, types.AccountOrderCounterKey...), []byte(account)...)
}

func pairOrderCounterKey(pairHash types.Hash) []byte {
	return append(append([]byte{}, types.PairOrderCounterKey...), pairHash[:]...)
}

func accountOrderIndexKey(account string, idx uint64) []byte {
	key := append(append([]byte{}, types.AccountOrderIndexPrefix...), []byte(account)...)
	key = append(key, 0)
	idxBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idxBz, idx)
	return append(key, idxBz...)
}

func pairOrderIndexKey(pairHash types.Hash, idx uint64) []byte {
	key := append(append([]byte{}, types.PairOrderIndexPrefix...), pairHash[:]...)
	idxBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idxBz, idx)
	return append(key, idxBz...)
}

// IndexOrder records order under its owner's and pair's monotonic indices.
func (k *Keeper) IndexOrder(ctx sdk.Context, order *types.Order) {
	store := k.store(ctx)
	accIdx := k.nextCounter(ctx, accountOrderCounterKey(order.Owner))
	store.Set(accountOrderIndexKey(order.Owner, accIdx), order.Hash[:])
	pairIdx := k.nextCounter(ctx, pairOrderCounterKey(order.PairHash))
	store.Set(pairOrderIndexKey(order.PairHash, pairIdx), order.Hash[:])
}

// ==== bounded recency caches ====

func recencyKey(prefix []byte, account string, pairHash types.Hash) []byte {
	key := append(append([]byte{}, prefix...), []byte(account)...)
	key = append(key, 0)
	return append(key, pairHash[:]...)
}

func (k *Keeper) getRecency(ctx sdk.Context, prefix []byte, account string, pairHash types.Hash) []types.Hash {
	bz := k.store(ctx).Get(recencyKey(prefix, account, pairHash))
	if bz == nil {
		return nil
	}
	var hashes []types.Hash
	if err := json.Unmarshal(bz, &hashes); err != nil {
		return nil
	}
	return hashes
}

func (k *Keeper) setRecency(ctx sdk.Context, prefix []byte, account string, pairHash types.Hash, hashes []types.Hash) {
	k.store(ctx).Set(recencyKey(prefix, account, pairHash), marshalJSON(hashes))
}

// pushRecency pushes hash to the front of the deque at prefix, capped at
// cap entries (popping the back on overflow), ignoring duplicate inserts.
func (k *Keeper) pushRecency(ctx sdk.Context, prefix []byte, account string, pairHash types.Hash, hash types.Hash, cap uint8) {
	cur := k.getRecency(ctx, prefix, account, pairHash)
	for _, h := range cur {
		if h == hash {
			return
		}
	}
	cur = append([]types.Hash{hash}, cur...)
	if len(cur) > int(cap) {
		cur = cur[:cap]
	}
	k.setRecency(ctx, prefix, account, pairHash, cur)
}

// removeRecency filters hash out of the deque at prefix.
func (k *Keeper) removeRecency(ctx sdk.Context, prefix []byte, account string, pairHash types.Hash, hash types.Hash) {
	cur := k.getRecency(ctx, prefix, account, pairHash)
	out := make([]types.Hash, 0, len(cur))
	for _, h := range cur {
		if h != hash {
			out = append(out, h)
		}
	}
	k.setRecency(ctx, prefix, account, pairHash, out)
}

// MarkOpened records order as freshly opened for its owner+pair.
func (k *Keeper) MarkOpened(ctx sdk.Context, order *types.Order) {
	params := k.GetParams(ctx)
	k.pushRecency(ctx, types.OpenedOrdersKeyPrefix, order.Owner, order.PairHash, order.Hash, params.OpenedOrdersArrayCap)
}

// MarkClosed moves order from the opened to the closed recency cache.
func (k *Keeper) MarkClosed(ctx sdk.Context, order *types.Order) {
	params := k.GetParams(ctx)
	k.removeRecency(ctx, types.OpenedOrdersKeyPrefix, order.Owner, order.PairHash, order.Hash)
	k.pushRecency(ctx, types.ClosedOrdersKeyPrefix, order.Owner, order.PairHash, order.Hash, params.ClosedOrdersArrayCap)
}

func (k *Keeper) OpenedOrders(ctx sdk.Context, account string, pairHash types.Hash) []types.Hash {
	return k.getRecency(ctx, types.OpenedOrdersKeyPrefix, account, pairHash)
}

func (k *Keeper) ClosedOrders(ctx sdk.Context, account string, pairHash types.Hash) []types.Hash {
	return k.getRecency(ctx, types.ClosedOrdersKeyPrefix, account, pairHash)
}
