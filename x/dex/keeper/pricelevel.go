package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

// Price-level storage: a per-pair doubly linked list of price levels,
// flat-mapped in the KVStore keyed by (pair, node) rather than relying on
// store iteration order. HEAD has no price; BOTTOM and TOP are real
// entries at types.BottomSentinelPrice / types.TopSentinelPrice.

func levelKey(pairHash types.Hash, ref types.NodeRef) []byte {
	key := append(append([]byte{}, types.PriceLevelKeyPrefix...), pairHash[:]...)
	if ref.IsHead {
		return append(key, 0x00)
	}
	key = append(key, 0x01)
	return append(key, []byte(ref.Price.String())...)
}

func headRef() types.NodeRef { return types.NodeRef{IsHead: true} }
func priceRef(p math.Uint) types.NodeRef { return types.NodeRef{Price: p} }

func refOf(lvl *types.PriceLevel) types.NodeRef {
	if !lvl.HasPrice {
		return headRef()
	}
	return priceRef(lvl.Price)
}

func (k *Keeper) GetLevel(ctx sdk.Context, pairHash types.Hash, ref types.NodeRef) (*types.PriceLevel, bool) {
	bz := k.store(ctx).Get(levelKey(pairHash, ref))
	if bz == nil {
		return nil, false
	}
	var lvl types.PriceLevel
	if err := json.Unmarshal(bz, &lvl); err != nil {
		return nil, false
	}
	return &lvl, true
}

func (k *Keeper) SetLevel(ctx sdk.Context, pairHash types.Hash, lvl *types.PriceLevel) {
	k.store(ctx).Set(levelKey(pairHash, refOf(lvl)), marshalJSON(lvl))
}

func (k *Keeper) deleteLevel(ctx sdk.Context, pairHash types.Hash, ref types.NodeRef) {
	k.store(ctx).Delete(levelKey(pairHash, ref))
}

// InitBookSentinels materializes BOTTOM, HEAD, TOP for a newly created pair;
// they are never removed. BOTTOM.Prev and TOP.Next are left zero-valued:
// the match loop never dereferences past either end, it only compares the
// opposite price against the bounding sentinel's own price.
func (k *Keeper) InitBookSentinels(ctx sdk.Context, pairHash types.Hash) {
	bottom := &types.PriceLevel{PairHash: pairHash, Price: types.BottomSentinelPrice, HasPrice: true, Next: headRef()}
	head := &types.PriceLevel{PairHash: pairHash, HasPrice: false, Prev: priceRef(types.BottomSentinelPrice), Next: priceRef(types.TopSentinelPrice)}
	top := &types.PriceLevel{PairHash: pairHash, Price: types.TopSentinelPrice, HasPrice: true, Prev: headRef()}
	k.SetLevel(ctx, pairHash, bottom)
	k.SetLevel(ctx, pairHash, head)
	k.SetLevel(ctx, pairHash, top)
}

// BestOpposite returns HEAD.prev for a Sell taker (best bid) and HEAD.next
// for a Buy taker (best ask). ok is false when the neighbor is the sentinel
// bounding that side, meaning no resting order exists there.
func (k *Keeper) BestOpposite(ctx sdk.Context, pairHash types.Hash, side types.Side) (price math.Uint, ok bool) {
	head, found := k.GetLevel(ctx, pairHash, headRef())
	if !found {
		return math.ZeroUint(), false
	}
	var ref types.NodeRef
	if side == types.SideSell {
		ref = head.Prev
	} else {
		ref = head.Next
	}
	if ref.IsHead {
		return math.ZeroUint(), false
	}
	if side == types.SideSell && ref.Price.Equal(types.BottomSentinelPrice) {
		return ref.Price, false
	}
	if side == types.SideBuy && ref.Price.Equal(types.TopSentinelPrice) {
		return ref.Price, false
	}
	return ref.Price, true
}

// Append inserts order_hash into the level at price, creating the level if
// it doesn't exist by splicing it into the list walked from the side's home
// sentinel.
func (k *Keeper) Append(ctx sdk.Context, pairHash types.Hash, price math.Uint, orderHash types.Hash, sellAmount, buyAmount math.Uint, side types.Side) error {
	if lvl, found := k.GetLevel(ctx, pairHash, priceRef(price)); found {
		lvl.Orders = append(lvl.Orders, orderHash)
		lvl.SellAmount = lvl.SellAmount.Add(sellAmount)
		lvl.BuyAmount = lvl.BuyAmount.Add(buyAmount)
		k.SetLevel(ctx, pairHash, lvl)
		return nil
	}

	start := headRef()
	if side == types.SideBuy {
		start = priceRef(types.BottomSentinelPrice)
	}
	cur, found := k.GetLevel(ctx, pairHash, start)
	if !found {
		return types.ErrOrderMatchGetLinkedListItem
	}

	for {
		nxt, found := k.GetLevel(ctx, pairHash, cur.Next)
		if !found {
			return types.ErrOrderMatchGetLinkedListItem
		}
		if nxt.HasPrice && nxt.Price.LT(price) {
			cur = nxt
			continue
		}
		newLvl := &types.PriceLevel{
			PairHash:   pairHash,
			Price:      price,
			HasPrice:   true,
			Prev:       refOf(cur),
			Next:       refOf(nxt),
			SellAmount: sellAmount,
			BuyAmount:  buyAmount,
			Orders:     []types.Hash{orderHash},
		}
		cur.Next = priceRef(price)
		nxt.Prev = priceRef(price)
		k.SetLevel(ctx, pairHash, cur)
		k.SetLevel(ctx, pairHash, nxt)
		k.SetLevel(ctx, pairHash, newLvl)
		return nil
	}
}

// Decrement subtracts from a level's aggregates, removing the level if it
// has emptied out entirely.
func (k *Keeper) Decrement(ctx sdk.Context, pairHash types.Hash, price math.Uint, deltaSell, deltaBuy math.Uint) error {
	lvl, found := k.GetLevel(ctx, pairHash, priceRef(price))
	if !found {
		return types.ErrOrderMatchGetPrice
	}
	if lvl.SellAmount.LT(deltaSell) || lvl.BuyAmount.LT(deltaBuy) {
		return types.ErrOrderMatchSubtract
	}
	lvl.SellAmount = lvl.SellAmount.Sub(deltaSell)
	lvl.BuyAmount = lvl.BuyAmount.Sub(deltaBuy)
	if lvl.SellAmount.IsZero() && lvl.BuyAmount.IsZero() && len(lvl.Orders) == 0 {
		return k.removeLevel(ctx, pairHash, lvl)
	}
	k.SetLevel(ctx, pairHash, lvl)
	return nil
}

// RemoveOrder removes orderHash from its level's FIFO and subtracts its
// remaining amounts, removing the level if the FIFO empties.
func (k *Keeper) RemoveOrder(ctx sdk.Context, pairHash types.Hash, price math.Uint, orderHash types.Hash, deltaSell, deltaBuy math.Uint) error {
	lvl, found := k.GetLevel(ctx, pairHash, priceRef(price))
	if !found {
		return types.ErrOrderMatchGetPrice
	}
	idx := -1
	for i, h := range lvl.Orders {
		if h == orderHash {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ErrOrderMatchGetOrder
	}
	lvl.Orders = append(lvl.Orders[:idx], lvl.Orders[idx+1:]...)
	if lvl.SellAmount.LT(deltaSell) || lvl.BuyAmount.LT(deltaBuy) {
		return types.ErrOrderMatchSubtract
	}
	lvl.SellAmount = lvl.SellAmount.Sub(deltaSell)
	lvl.BuyAmount = lvl.BuyAmount.Sub(deltaBuy)
	if len(lvl.Orders) == 0 {
		return k.removeLevel(ctx, pairHash, lvl)
	}
	k.SetLevel(ctx, pairHash, lvl)
	return nil
}

// removeLevel unlinks lvl from the list and discards it. Sentinels are
// never passed here.
func (k *Keeper) removeLevel(ctx sdk.Context, pairHash types.Hash, lvl *types.PriceLevel) error {
	prev, found := k.GetLevel(ctx, pairHash, lvl.Prev)
	if !found {
		return types.ErrOrderMatchGetLinkedListItem
	}
	next, found := k.GetLevel(ctx, pairHash, lvl.Next)
	if !found {
		return types.ErrOrderMatchGetLinkedListItem
	}
	prev.Next = lvl.Next
	next.Prev = lvl.Prev
	k.SetLevel(ctx, pairHash, prev)
	k.SetLevel(ctx, pairHash, next)
	k.deleteLevel(ctx, pairHash, refOf(lvl))
	return nil
}

// DrainFinished garbage-collects finished orders from the head of whatever
// level currently sits at best_opposite(side), removing empty levels as it
// goes, stopping at the first unfinished order or the bounding sentinel.
func (k *Keeper) DrainFinished(ctx sdk.Context, pairHash types.Hash, side types.Side) error {
	for {
		price, ok := k.BestOpposite(ctx, pairHash, side)
		if !ok {
			return nil
		}
		lvl, found := k.GetLevel(ctx, pairHash, priceRef(price))
		if !found || len(lvl.Orders) == 0 {
			return nil
		}
		head := lvl.Orders[0]
		order, found := k.GetOrder(ctx, head)
		if !found || !order.IsFinished() {
			return nil
		}
		lvl.Orders = lvl.Orders[1:]
		if len(lvl.Orders) == 0 {
			if err := k.removeLevel(ctx, pairHash, lvl); err != nil {
				return err
			}
			continue
		}
		k.SetLevel(ctx, pairHash, lvl)
	}
}
