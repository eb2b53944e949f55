package keeper

import (
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/dex/types"
)

// Keeper owns the per-pair order book, order/trade registries, and rolling
// market data described by the matching engine; it delegates all balance
// custody to an external TokenKeeper, never touching a balance itself
// outside of freeze/unfreeze/transfer calls.
type Keeper struct {
	cdc         codec.BinaryCodec
	storeKey    storetypes.StoreKey
	tokenKeeper types.TokenKeeper
	logger      log.Logger
	hub         *Hub
}

func NewKeeper(cdc codec.BinaryCodec, storeKey storetypes.StoreKey, tokenKeeper types.TokenKeeper, logger log.Logger) *Keeper {
	return &Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		tokenKeeper: tokenKeeper,
		logger:      logger.With("module", "x/dex"),
	}
}

func (k *Keeper) Logger() log.Logger {
	return k.logger
}

func (k *Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

// ==== Params ====

func (k *Keeper) SetParams(ctx sdk.Context, params types.Params) {
	bz, _ := json.Marshal(params)
	k.store(ctx).Set(types.ParamsKey, bz)
}

func (k *Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := k.store(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var p types.Params
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.DefaultParams()
	}
	return p
}

// ==== Global nonce (used in order/trade/pair hash derivation) ====

func (k *Keeper) nextNonce(ctx sdk.Context) uint64 {
	store := k.store(ctx)
	bz := store.Get(types.NonceKey)
	var nonce uint64
	if bz != nil {
		nonce = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, nonce+1)
	store.Set(types.NonceKey, next)
	return nonce
}

func nonceBytes(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func blockBytes(bn int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(bn))
	return bz
}

func marshalUint(amount math.Uint) []byte {
	bz, _ := amount.Marshal()
	return bz
}

func unmarshalUint(bz []byte) math.Uint {
	var amount math.Uint
	if err := amount.Unmarshal(bz); err != nil {
		return math.ZeroUint()
	}
	return amount
}

func marshalJSON(v interface{}) []byte {
	bz, _ := json.Marshal(v)
	return bz
}
