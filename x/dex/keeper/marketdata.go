package keeper

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/huandu/skiplist"

	"github.com/openalpha/dex/x/dex/types"
)

// priceOrder makes an ordered skiplist out of math.Uint prices so
// OnFinalizeMarketData can read the rolling window's max/min off the
// list's ends. Building the list still visits every entry of the
// BlocksPerDay-length series on each call.
var priceOrder = skiplist.LessThanFunc(func(lhs, rhs interface{}) int {
	a, b := lhs.(math.Uint), rhs.(math.Uint)
	switch {
	case a.LT(b):
		return -1
	case a.GT(b):
		return 1
	default:
		return 0
	}
})

// Market-data ring: a per-(pair, block) bucket accumulating volume/high/low,
// and a per-pair ring of the last BlocksPerDay buckets' highs and lows
// used to derive one_day_high / one_day_low.

func bucketKey(pairHash types.Hash, block int64) []byte {
	key := append(append([]byte{}, types.MarketBucketKeyPrefix...), pairHash[:]...)
	return append(key, blockBytes(block)...)
}

func seriesKey(pairHash types.Hash) []byte {
	return append(append([]byte{}, types.MarketSeriesKeyPrefix...), pairHash[:]...)
}

func (k *Keeper) GetBucket(ctx sdk.Context, pairHash types.Hash, block int64) (*types.MarketDataBucket, bool) {
	bz := k.store(ctx).Get(bucketKey(pairHash, block))
	if bz == nil {
		return nil, false
	}
	var b types.MarketDataBucket
	if err := json.Unmarshal(bz, &b); err != nil {
		return nil, false
	}
	return &b, true
}

func (k *Keeper) setBucket(ctx sdk.Context, pairHash types.Hash, block int64, b *types.MarketDataBucket) {
	k.store(ctx).Set(bucketKey(pairHash, block), marshalJSON(b))
}

func (k *Keeper) deleteBucket(ctx sdk.Context, pairHash types.Hash, block int64) {
	k.store(ctx).Delete(bucketKey(pairHash, block))
}

func (k *Keeper) GetSeries(ctx sdk.Context, pairHash types.Hash) types.MarketDataRing {
	bz := k.store(ctx).Get(seriesKey(pairHash))
	if bz == nil {
		return types.MarketDataRing{}
	}
	var r types.MarketDataRing
	if err := json.Unmarshal(bz, &r); err != nil {
		return types.MarketDataRing{}
	}
	return r
}

func (k *Keeper) setSeries(ctx sdk.Context, pairHash types.Hash, r types.MarketDataRing) {
	k.store(ctx).Set(seriesKey(pairHash), marshalJSON(r))
}

// SetTpMarketData folds a trade's price/volume into the current block's
// bucket and updates the pair's latest matched price.
func (k *Keeper) SetTpMarketData(ctx sdk.Context, pair *types.TradePair, price math.Uint, quoteVolume math.Uint) {
	block := ctx.BlockHeight()
	bucket, found := k.GetBucket(ctx, pair.Hash, block)
	if !found {
		bucket = &types.MarketDataBucket{}
	}
	bucket.Volume = bucket.Volume.Add(quoteVolume)
	if !bucket.HasHigh || price.GT(bucket.High) {
		bucket.High, bucket.HasHigh = price, true
	}
	if !bucket.HasLow || price.LT(bucket.Low) {
		bucket.Low, bucket.HasLow = price, true
	}
	k.setBucket(ctx, pair.Hash, block, bucket)

	pair.LatestMatchedPrice = price
	pair.HasLatestPrice = true
	k.SetTradePair(ctx, pair)
}

// OnInitializeMarketData evicts the day-old bucket and pops the front of
// each pair's rolling series.
func (k *Keeper) OnInitializeMarketData(ctx sdk.Context, blockNumber int64) {
	params := k.GetParams(ctx)
	blocksPerDay := int64(params.BlocksPerDay)
	if blockNumber <= blocksPerDay {
		return
	}
	evictBlock := blockNumber - blocksPerDay
	for _, pair := range k.GetAllTradePairs(ctx) {
		if bucket, found := k.GetBucket(ctx, pair.Hash, evictBlock); found {
			if pair.OneDayVolume.GTE(bucket.Volume) {
				pair.OneDayVolume = pair.OneDayVolume.Sub(bucket.Volume)
			} else {
				pair.OneDayVolume = math.ZeroUint()
			}
			k.deleteBucket(ctx, pair.Hash, evictBlock)
			k.SetTradePair(ctx, pair)
		}

		series := k.GetSeries(ctx, pair.Hash)
		if len(series.HighSeries) > 0 {
			series.HighSeries = series.HighSeries[1:]
		}
		if len(series.LowSeries) > 0 {
			series.LowSeries = series.LowSeries[1:]
		}
		k.setSeries(ctx, pair.Hash, series)
	}
}

// OnFinalizeMarketData appends the block's high/low onto the rolling
// series, recomputes one_day_high/low, and adds the block's volume into
// one_day_volume.
func (k *Keeper) OnFinalizeMarketData(ctx sdk.Context, blockNumber int64) {
	for _, pair := range k.GetAllTradePairs(ctx) {
		bucket, found := k.GetBucket(ctx, pair.Hash, blockNumber)
		var high, low types.OptionalPrice
		if found {
			high = types.OptionalPrice{Value: bucket.High, Set: bucket.HasHigh}
			low = types.OptionalPrice{Value: bucket.Low, Set: bucket.HasLow}
			pair.OneDayVolume = pair.OneDayVolume.Add(bucket.Volume)
		}

		series := k.GetSeries(ctx, pair.Hash)
		series.HighSeries = append(series.HighSeries, high)
		series.LowSeries = append(series.LowSeries, low)
		k.setSeries(ctx, pair.Hash, series)

		pair.OneDayHigh, pair.HasOneDayHigh = maxOptional(series.HighSeries)
		pair.OneDayLow, pair.HasOneDayLow = minOptional(series.LowSeries)
		k.SetTradePair(ctx, pair)
	}
}

func maxOptional(series []types.OptionalPrice) (math.Uint, bool) {
	sl := skiplist.New(priceOrder)
	for _, v := range series {
		if v.Set {
			sl.Set(v.Value, nil)
		}
	}
	if sl.Len() == 0 {
		return math.Uint{}, false
	}
	return sl.Back().Key().(math.Uint), true
}

func minOptional(series []types.OptionalPrice) (math.Uint, bool) {
	sl := skiplist.New(priceOrder)
	for _, v := range series {
		if v.Set {
			sl.Set(v.Value, nil)
		}
	}
	if sl.Len() == 0 {
		return math.Uint{}, false
	}
	return sl.Front().Key().(math.Uint), true
}
