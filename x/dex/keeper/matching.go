package keeper

import (
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

// uintToFloat64 renders amount for a metrics label/value; precision loss
// is acceptable since these feed a dashboard, never consensus state.
func uintToFloat64(amount math.Uint) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}

// CreateTradePair registers a standing market for an unordered {base,
// quote} token pair, requiring the sender to own one of the two tokens.
func (k *Keeper) CreateTradePair(ctx sdk.Context, sender string, base, quote types.Hash) (types.Hash, error) {
	if base == quote {
		return types.Hash{}, types.ErrBaseEqualQuote
	}
	baseOwner, found := k.tokenKeeper.OwnerOf(ctx, base)
	if !found {
		return types.Hash{}, types.ErrTokenOwnerNotFound
	}
	quoteOwner, found := k.tokenKeeper.OwnerOf(ctx, quote)
	if !found {
		return types.Hash{}, types.ErrTokenOwnerNotFound
	}
	if sender != baseOwner && sender != quoteOwner {
		return types.Hash{}, types.ErrSenderNotBaseOrQuoteOwner
	}
	if _, found := k.FindTradePair(ctx, base, quote); found {
		return types.Hash{}, types.ErrTradePairExisted
	}

	nonce := k.nextNonce(ctx)
	hash := types.HashFromBytes([]byte(sender), blockBytes(ctx.BlockHeight()), base[:], quote[:], nonceBytes(nonce))

	pair := &types.TradePair{Hash: hash, Base: base, Quote: quote}
	k.SetTradePair(ctx, pair)
	k.InitBookSentinels(ctx, hash)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTradePairCreated,
		sdk.NewAttribute(types.AttributeKeyOwner, sender),
		sdk.NewAttribute(types.AttributeKeyHash, hash.String()),
		sdk.NewAttribute(types.AttributeKeyBase, base.String()),
		sdk.NewAttribute(types.AttributeKeyQuote, quote.String()),
	))
	return hash, nil
}

// reserveToken returns the token an order of the given side freezes: a
// Buy reserves base and a Sell reserves quote. See DESIGN.md.
func reserveToken(side types.Side, base, quote types.Hash) types.Hash {
	if side == types.SideBuy {
		return base
	}
	return quote
}

func otherToken(token types.Hash, base, quote types.Hash) types.Hash {
	if token == base {
		return quote
	}
	return base
}

// CreateOrder places a limit or market order, returning the order's hash
// and its status once the match loop (and, for market orders,
// the bounded recursive sweep) has settled.
func (k *Keeper) CreateOrder(ctx sdk.Context, sender string, base, quote types.Hash, kind types.OrderKind, side types.Side, price, sellAmount math.Uint) (types.Hash, types.OrderStatus, error) {
	if kind == types.OrderKindMarket {
		return k.createMarketOrder(ctx, sender, base, quote, side, sellAmount, 0)
	}
	return k.createLimitOrder(ctx, sender, base, quote, side, price, sellAmount)
}

func (k *Keeper) createLimitOrder(ctx sdk.Context, sender string, base, quote types.Hash, side types.Side, price, sellAmount math.Uint) (types.Hash, types.OrderStatus, error) {
	params := k.GetParams(ctx)

	if err := types.EnsureBounds(price, sellAmount, params.MaxPrice, params.MaxAmount); err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}
	buyAmount, err := types.EnsureCounterpartyAmountBounds(side, price, sellAmount, params.PriceFactor, params.MaxAmount)
	if err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}

	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return types.Hash{}, types.OrderStatusUnspecified, types.ErrNoMatchingTradePair
	}

	reserve := reserveToken(side, base, quote)
	if err := k.tokenKeeper.EnsureFreeBalance(ctx, sender, reserve, sellAmount); err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}
	if err := k.tokenKeeper.Freeze(ctx, sender, reserve, sellAmount); err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}

	nonce := k.nextNonce(ctx)
	hash := types.HashFromBytes(base[:], quote[:], []byte(sender), marshalUint(price), marshalUint(sellAmount),
		marshalUint(buyAmount), []byte{byte(types.OrderKindLimit)}, []byte{byte(side)}, nonceBytes(nonce), blockBytes(ctx.BlockHeight()))

	order := &types.Order{
		Hash: hash, Base: base, Quote: quote, PairHash: pair.Hash, Owner: sender,
		Price: price, SellAmount: sellAmount, BuyAmount: buyAmount,
		RemainedSellAmount: sellAmount, RemainedBuyAmount: buyAmount,
		Kind: types.OrderKindLimit, Side: side, Status: types.OrderStatusCreated,
		CreatedAtBlock: ctx.BlockHeight(),
	}
	k.SetOrder(ctx, order)
	k.IndexOrder(ctx, order)
	k.MarkOpened(ctx, order)
	GetCollector().RecordOrder(pair.Hash.String(), side.String(), types.OrderKindLimit.String())

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOrderCreated,
		sdk.NewAttribute(types.AttributeKeyOwner, sender),
		sdk.NewAttribute(types.AttributeKeyBase, base.String()),
		sdk.NewAttribute(types.AttributeKeyQuote, quote.String()),
		sdk.NewAttribute(types.AttributeKeyOrderHash, hash.String()),
	))

	if err := k.matchLoop(ctx, pair, hash); err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}

	final, _ := k.GetOrder(ctx, hash)
	if !final.IsFinished() {
		if err := k.Append(ctx, pair.Hash, price, hash, final.RemainedSellAmount, final.RemainedBuyAmount, side); err != nil {
			return types.Hash{}, types.OrderStatusUnspecified, err
		}
	}
	return hash, final.Status, nil
}

// createMarketOrder reprices a market order against the current best
// opposite level and recurses on any leftover, bounded by
// MaxMarketSweepLevels.
func (k *Keeper) createMarketOrder(ctx sdk.Context, sender string, base, quote types.Hash, side types.Side, sellAmount math.Uint, depth uint32) (types.Hash, types.OrderStatus, error) {
	params := k.GetParams(ctx)
	if depth >= params.MaxMarketSweepLevels {
		return types.Hash{}, types.OrderStatusUnspecified, types.ErrNoMatchingOrder.Wrap("market sweep depth exceeded")
	}

	pair, found := k.FindTradePair(ctx, base, quote)
	if !found {
		return types.Hash{}, types.OrderStatusUnspecified, types.ErrNoMatchingTradePair
	}

	bestPrice, ok := k.BestOpposite(ctx, pair.Hash, side)
	if !ok {
		return types.Hash{}, types.OrderStatusUnspecified, types.ErrNoMatchingOrder
	}

	// A Buy's sellAmount is the quantity to buy; it is converted into the
	// reserve token at this level's price. A Sell's sellAmount already is
	// the reserve-token quantity.
	limitAmount := sellAmount
	if side == types.SideBuy {
		limitAmount = types.QuotePerBase(sellAmount, bestPrice, params.PriceFactor)
	}
	hash, status, err := k.createLimitOrder(ctx, sender, base, quote, side, bestPrice, limitAmount)
	if err != nil {
		return types.Hash{}, types.OrderStatusUnspecified, err
	}

	order, found := k.GetOrder(ctx, hash)
	if !found {
		return hash, status, nil
	}
	if order.IsFinished() || order.RemainedSellAmount.IsZero() {
		return hash, order.Status, nil
	}

	// Leftover quantity at this price level couldn't fill further here;
	// treat it as fully consumed at this price and sweep the next level.
	leftover := order.RemainedSellAmount
	if side == types.SideBuy {
		leftover = order.RemainedBuyAmount
	}
	order.SellAmount = order.SellAmount.Sub(order.RemainedSellAmount)
	order.BuyAmount = order.BuyAmount.Sub(order.RemainedBuyAmount)
	order.RemainedSellAmount = math.ZeroUint()
	order.RemainedBuyAmount = math.ZeroUint()
	order.Status = types.OrderStatusFilled
	k.SetOrder(ctx, order)
	if err := k.RemoveOrder(ctx, pair.Hash, bestPrice, order.Hash, math.ZeroUint(), math.ZeroUint()); err != nil {
		// order never rested on the book (fully matched inline); ignore.
		_ = err
	}
	k.MarkClosed(ctx, order)

	return k.createMarketOrder(ctx, sender, base, quote, side, leftover, depth+1)
}

// matchLoop walks the opposite side of the book against taker order o
// until prices stop crossing or o is filled.
func (k *Keeper) matchLoop(ctx sdk.Context, pair *types.TradePair, takerHash types.Hash) error {
	for {
		taker, found := k.GetOrder(ctx, takerHash)
		if !found {
			return types.ErrOrderMatchGetOrder
		}
		if taker.IsFinished() {
			return nil
		}

		oppPrice, ok := k.BestOpposite(ctx, pair.Hash, taker.Side)
		if !ok {
			return nil
		}
		if !priceMatches(taker.Price, taker.Side, oppPrice) {
			return nil
		}

		level, found := k.GetLevel(ctx, pair.Hash, priceRef(oppPrice))
		if !found {
			return types.ErrOrderMatchGetLinkedListItem
		}
		makers := append([]types.Hash{}, level.Orders...)

		filled := false
		for _, makerHash := range makers {
			taker, found = k.GetOrder(ctx, takerHash)
			if !found {
				return types.ErrOrderMatchGetOrder
			}
			if taker.IsFinished() {
				filled = true
				break
			}
			maker, found := k.GetOrder(ctx, makerHash)
			if !found {
				return types.ErrOrderMatchGetOrder
			}
			if maker.IsFinished() {
				continue
			}

			if err := k.settleFill(ctx, pair, taker, maker); err != nil {
				return err
			}

			taker, _ = k.GetOrder(ctx, takerHash)
			if taker.Status == types.OrderStatusFilled {
				filled = true
				break
			}
		}

		if err := k.DrainFinished(ctx, pair.Hash, taker.Side); err != nil {
			return err
		}
		if filled {
			return nil
		}
	}
}

func priceMatches(p math.Uint, side types.Side, levelPrice math.Uint) bool {
	if side == types.SideBuy {
		return p.GTE(levelPrice)
	}
	return p.LTE(levelPrice)
}

// settleFill executes a single maker/taker fill: computes the exchange
// quantities, moves tokens, updates both orders, records the trade, and
// folds the fill into market data and the price level's aggregates.
func (k *Keeper) settleFill(ctx sdk.Context, pair *types.TradePair, taker, maker *types.Order) error {
	params := k.GetParams(ctx)
	baseQty, quoteQty := calculateExAmount(maker, taker, params.PriceFactor)
	if baseQty.IsZero() || quoteQty.IsZero() {
		return types.ErrOrderMatchSubtract
	}

	var giveQty, haveQty math.Uint
	if taker.Side == types.SideBuy {
		giveQty, haveQty = baseQty, quoteQty
	} else {
		giveQty, haveQty = quoteQty, baseQty
	}
	giveToken := reserveToken(taker.Side, pair.Base, pair.Quote)
	haveToken := otherToken(giveToken, pair.Base, pair.Quote)

	if taker.Status == types.OrderStatusCreated {
		taker.Status = types.OrderStatusPartialFilled
	}
	if maker.Status == types.OrderStatusCreated {
		maker.Status = types.OrderStatusPartialFilled
	}

	if err := k.tokenKeeper.Unfreeze(ctx, taker.Owner, giveToken, giveQty); err != nil {
		return err
	}
	if err := k.tokenKeeper.Unfreeze(ctx, maker.Owner, haveToken, haveQty); err != nil {
		return err
	}
	if err := k.tokenKeeper.Transfer(ctx, taker.Owner, maker.Owner, giveToken, giveQty); err != nil {
		return err
	}
	if err := k.tokenKeeper.Transfer(ctx, maker.Owner, taker.Owner, haveToken, haveQty); err != nil {
		return err
	}

	if taker.RemainedSellAmount.LT(giveQty) || taker.RemainedBuyAmount.LT(haveQty) {
		return types.ErrOrderMatchSubtract
	}
	taker.RemainedSellAmount = taker.RemainedSellAmount.Sub(giveQty)
	taker.RemainedBuyAmount = taker.RemainedBuyAmount.Sub(haveQty)

	if maker.RemainedSellAmount.LT(haveQty) || maker.RemainedBuyAmount.LT(giveQty) {
		return types.ErrOrderMatchSubtract
	}
	maker.RemainedSellAmount = maker.RemainedSellAmount.Sub(haveQty)
	maker.RemainedBuyAmount = maker.RemainedBuyAmount.Sub(giveQty)

	if err := k.finishIfDone(ctx, taker); err != nil {
		return err
	}
	if err := k.finishIfDone(ctx, maker); err != nil {
		return err
	}

	k.SetOrder(ctx, taker)
	k.SetOrder(ctx, maker)

	buyOrder, sellOrder := maker, taker
	if maker.Side == types.SideBuy {
		buyOrder, sellOrder = maker, taker
	} else {
		buyOrder, sellOrder = taker, maker
	}
	// The economic buyer of base is whichever order's remaining *buy* want
	// is denominated in base, i.e. the Sell-side order, per the inverted
	// reservation convention; see DESIGN.md.
	buyerOwner, sellerOwner := sellOrder.Owner, buyOrder.Owner

	nonce := k.nextNonce(ctx)
	tradeHash := types.HashFromBytes(blockBytes(ctx.BlockHeight()), nonceBytes(nonce), maker.Hash[:],
		marshalUint(maker.RemainedSellAmount), []byte(maker.Owner), taker.Hash[:],
		marshalUint(taker.RemainedSellAmount), []byte(taker.Owner))

	trade := &types.Trade{
		Hash: tradeHash, Base: pair.Base, Quote: pair.Quote, PairHash: pair.Hash,
		Buyer: buyerOwner, Seller: sellerOwner, Maker: maker.Hash, Taker: taker.Hash,
		TakerSide: taker.Side, Price: maker.Price, BaseAmount: baseQty, QuoteAmount: quoteQty,
		Block: ctx.BlockHeight(),
	}
	k.SetTrade(ctx, trade)
	k.IndexTrade(ctx, trade, maker, taker)
	GetCollector().RecordTrade(pair.Hash.String(), uintToFloat64(baseQty))
	k.hub.broadcastTrade(trade)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTradeCreated,
		sdk.NewAttribute(types.AttributeKeyBase, pair.Base.String()),
		sdk.NewAttribute(types.AttributeKeyQuote, pair.Quote.String()),
		sdk.NewAttribute(types.AttributeKeyTradeHash, tradeHash.String()),
		sdk.NewAttribute(types.AttributeKeyPrice, maker.Price.String()),
		sdk.NewAttribute(types.AttributeKeyBaseQty, baseQty.String()),
		sdk.NewAttribute(types.AttributeKeyQuoteQty, quoteQty.String()),
	))

	k.SetTpMarketData(ctx, pair, maker.Price, quoteQty)

	// When this fill emptied the maker's level, finishIfDone has already
	// removed that level, so there is nothing left to decrement.
	if err := k.Decrement(ctx, pair.Hash, maker.Price, haveQty, giveQty); err != nil && err != types.ErrOrderMatchGetPrice {
		return err
	}
	return nil
}

// finishIfDone transitions order to Filled once its remaining buy want
// reaches zero, unfreezing and clearing any sell-side dust, and moves it
// to the closed recency cache.
func (k *Keeper) finishIfDone(ctx sdk.Context, order *types.Order) error {
	if !order.RemainedBuyAmount.IsZero() {
		return nil
	}
	order.Status = types.OrderStatusFilled
	if !order.RemainedSellAmount.IsZero() {
		dust := order.RemainedSellAmount
		reserve := reserveToken(order.Side, order.Base, order.Quote)
		if err := k.tokenKeeper.Unfreeze(ctx, order.Owner, reserve, dust); err != nil {
			return err
		}
		order.RemainedSellAmount = math.ZeroUint()
	}
	if err := k.RemoveOrder(ctx, order.PairHash, order.Price, order.Hash, math.ZeroUint(), math.ZeroUint()); err != nil {
		if err != types.ErrOrderMatchGetPrice && err != types.ErrOrderMatchGetOrder {
			return err
		}
		// order hadn't rested on the book yet (filled inline as taker); ignore.
	}
	k.MarkClosed(ctx, order)
	if !order.IsFinished() {
		return types.ErrOrderMatchOrderIsNotFinished
	}
	return nil
}

// calculateExAmount computes a fill's base/quote legs. Whichever side's
// remaining want is the tighter constraint is filled exactly on that
// leg; the other leg is derived from it and, when the derivation loses
// a fraction, rounded up by one so long as the order receiving that leg
// still wants more than the derived amount. This keeps a sequence of fills against
// the same resting order internally consistent even when the taker
// sweeps several price levels at different prices in one pass, since
// each fill is evaluated against the orders' then-current remainders
// rather than a precomputed total.
func calculateExAmount(maker, taker *types.Order, priceFactor math.Uint) (baseQty, quoteQty math.Uint) {
	var buyOrder, sellOrder *types.Order
	if maker.Side == types.SideBuy {
		buyOrder, sellOrder = maker, taker
	} else {
		buyOrder, sellOrder = taker, maker
	}
	price := maker.Price

	sellerBound := true
	if sellOrder.RemainedBuyAmount.LTE(buyOrder.RemainedSellAmount) {
		quoteQty = sellOrder.RemainedBuyAmount.Mul(priceFactor).Quo(price)
		if buyOrder.RemainedBuyAmount.LT(quoteQty) {
			sellerBound = false
		}
	} else {
		baseQty = buyOrder.RemainedBuyAmount.Mul(price).Quo(priceFactor)
		if sellOrder.RemainedBuyAmount.GTE(baseQty) {
			sellerBound = false
		}
	}

	if sellerBound {
		baseQty = sellOrder.RemainedBuyAmount
		quoteQty = baseQty.Mul(priceFactor).Quo(price)
		roundTrip := quoteQty.Mul(price).Quo(priceFactor)
		if !roundTrip.Equal(baseQty) && buyOrder.RemainedBuyAmount.GT(quoteQty) {
			quoteQty = quoteQty.Add(math.NewUint(1))
		}
		return baseQty, quoteQty
	}

	quoteQty = buyOrder.RemainedBuyAmount
	baseQty = quoteQty.Mul(price).Quo(priceFactor)
	roundTrip := baseQty.Mul(priceFactor).Quo(price)
	if !roundTrip.Equal(quoteQty) && sellOrder.RemainedBuyAmount.GT(baseQty) {
		baseQty = baseQty.Add(math.NewUint(1))
	}
	return baseQty, quoteQty
}

// CancelOrder cancels a resting order owned by sender, unfreezing its
// remaining reserve.
func (k *Keeper) CancelOrder(ctx sdk.Context, sender string, orderHash types.Hash) error {
	order, found := k.GetOrder(ctx, orderHash)
	if !found {
		return types.ErrNoMatchingOrder
	}
	if order.Owner != sender {
		return types.ErrCanOnlyCancelOwnOrder
	}
	if order.IsFinished() {
		return types.ErrCanOnlyCancelNotFinished
	}

	if err := k.RemoveOrder(ctx, order.PairHash, order.Price, order.Hash, order.RemainedSellAmount, order.RemainedBuyAmount); err != nil {
		return err
	}

	order.Status = types.OrderStatusCancelled
	k.SetOrder(ctx, order)
	k.MarkClosed(ctx, order)
	GetCollector().RecordCancel(order.PairHash.String())

	reserve := reserveToken(order.Side, order.Base, order.Quote)
	if err := k.tokenKeeper.Unfreeze(ctx, sender, reserve, order.RemainedSellAmount); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOrderCancelled,
		sdk.NewAttribute(types.AttributeKeyOwner, sender),
		sdk.NewAttribute(types.AttributeKeyOrderHash, orderHash.String()),
	))
	return nil
}
