package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/btree"

	"github.com/openalpha/dex/x/dex/types"
)

// depthItem orders price levels by price for btree traversal. The
// price-level linked list (pricelevel.go) is already sorted, but it is
// sorted in the direction each side's match loop needs to walk it, which
// is opposite for bids and asks; a btree gives one ascending-by-price
// index to read both sides out of without reversing either walk by hand.
type depthItem struct {
	price math.Uint
	lvl   *types.PriceLevel
}

func depthLess(a, b depthItem) bool {
	return a.price.LT(b.price)
}

// BookDepth walks the price-level list starting at (exclusive) HEAD toward
// BOTTOM for bids and toward TOP for asks, collects up to depth levels on
// each side into a btree keyed by price, then reads them back out in the
// order a depth chart wants: bids high-to-low, asks low-to-high.
func (k *Keeper) BookDepth(ctx sdk.Context, pairHash types.Hash, depth uint32) (bids, asks []types.DepthLevel) {
	bidTree := btree.NewG(32, depthLess)
	askTree := btree.NewG(32, depthLess)

	k.walkSide(ctx, pairHash, types.SideSell, depth, func(lvl *types.PriceLevel) {
		bidTree.ReplaceOrInsert(depthItem{price: lvl.Price, lvl: lvl})
	})
	k.walkSide(ctx, pairHash, types.SideBuy, depth, func(lvl *types.PriceLevel) {
		askTree.ReplaceOrInsert(depthItem{price: lvl.Price, lvl: lvl})
	})

	bidTree.Descend(func(it depthItem) bool {
		bids = append(bids, toDepthLevel(it.lvl))
		return true
	})
	askTree.Ascend(func(it depthItem) bool {
		asks = append(asks, toDepthLevel(it.lvl))
		return true
	})

	GetCollector().RecordBookDepth(pairHash.String(), "bid", len(bids))
	GetCollector().RecordBookDepth(pairHash.String(), "ask", len(asks))
	return bids, asks
}

// walkSide starts from HEAD and follows the neighbor BestOpposite(side)
// would read first, visiting up to depth non-sentinel levels.
func (k *Keeper) walkSide(ctx sdk.Context, pairHash types.Hash, side types.Side, depth uint32, visit func(*types.PriceLevel)) {
	head, found := k.GetLevel(ctx, pairHash, headRef())
	if !found {
		return
	}
	ref := head.Next
	if side == types.SideSell {
		ref = head.Prev
	}
	for count := uint32(0); depth == 0 || count < depth; count++ {
		if ref.IsHead {
			return
		}
		lvl, found := k.GetLevel(ctx, pairHash, ref)
		if !found {
			return
		}
		if ref.Price.Equal(types.BottomSentinelPrice) || ref.Price.Equal(types.TopSentinelPrice) {
			return
		}
		visit(lvl)
		if side == types.SideSell {
			ref = lvl.Prev
		} else {
			ref = lvl.Next
		}
	}
}

func toDepthLevel(lvl *types.PriceLevel) types.DepthLevel {
	return types.DepthLevel{
		Price:      lvl.Price.String(),
		SellAmount: lvl.SellAmount.String(),
		BuyAmount:  lvl.BuyAmount.String(),
		OrderCount: uint32(len(lvl.Orders)),
	}
}
