package keeper

import (
	"encoding/binary"
	"encoding/json"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openalpha/dex/x/tokens/types"
)

// Keeper manages the tokens module state: the registry of issued tokens and
// the three balance maps (balance, free balance, frozen balance).
// balance = free + frozen for every (account, token) pair at all times.
type Keeper struct {
	cdc      codec.BinaryCodec
	storeKey storetypes.StoreKey
	logger   log.Logger
}

func NewKeeper(cdc codec.BinaryCodec, storeKey storetypes.StoreKey, logger log.Logger) *Keeper {
	return &Keeper{
		cdc:      cdc,
		storeKey: storeKey,
		logger:   logger.With("module", "x/tokens"),
	}
}

func (k *Keeper) Logger() log.Logger {
	return k.logger
}

func (k *Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func tokenKey(hash types.Hash) []byte {
	return append(types.TokenKeyPrefix, hash[:]...)
}

func symbolKey(symbol string) []byte {
	return append(types.TokenBySymbolIndex, []byte(symbol)...)
}

func issuanceIDKey(issuanceID string) []byte {
	return append(append([]byte{}, types.TokenByIssuanceIDIndex...), []byte(issuanceID)...)
}

func balanceKey(prefix []byte, account string, token types.Hash) []byte {
	key := append(append([]byte{}, prefix...), []byte(account)...)
	key = append(key, 0)
	key = append(key, token[:]...)
	return key
}

// ==== Token registry ====

func (k *Keeper) SetToken(ctx sdk.Context, token *types.Token) {
	store := k.store(ctx)
	bz, _ := json.Marshal(token)
	store.Set(tokenKey(token.Hash), bz)
	store.Set(symbolKey(token.Symbol), token.Hash[:])
}

func (k *Keeper) GetToken(ctx sdk.Context, hash types.Hash) (*types.Token, bool) {
	bz := k.store(ctx).Get(tokenKey(hash))
	if bz == nil {
		return nil, false
	}
	var tok types.Token
	if err := json.Unmarshal(bz, &tok); err != nil {
		return nil, false
	}
	return &tok, true
}

func (k *Keeper) SymbolTaken(ctx sdk.Context, symbol string) bool {
	return k.store(ctx).Get(symbolKey(symbol)) != nil
}

// GetTokenByIssuanceID looks a token up by its UUID rather than its hash.
func (k *Keeper) GetTokenByIssuanceID(ctx sdk.Context, issuanceID string) (*types.Token, bool) {
	bz := k.store(ctx).Get(issuanceIDKey(issuanceID))
	if bz == nil {
		return nil, false
	}
	var hash types.Hash
	copy(hash[:], bz)
	return k.GetToken(ctx, hash)
}

// OwnerOf satisfies x/dex/types.TokenKeeper.
func (k *Keeper) OwnerOf(ctx sdk.Context, token types.Hash) (string, bool) {
	tok, found := k.GetToken(ctx, token)
	if !found {
		return "", false
	}
	return tok.Owner, true
}

// ==== Balances ====

func (k *Keeper) getAmount(ctx sdk.Context, prefix []byte, account string, token types.Hash) math.Uint {
	bz := k.store(ctx).Get(balanceKey(prefix, account, token))
	if bz == nil {
		return math.ZeroUint()
	}
	amt, err := unmarshalUint(bz)
	if err != nil {
		return math.ZeroUint()
	}
	return amt
}

func (k *Keeper) setAmount(ctx sdk.Context, prefix []byte, account string, token types.Hash, amount math.Uint) {
	k.store(ctx).Set(balanceKey(prefix, account, token), marshalUint(amount))
}

func (k *Keeper) Balance(ctx sdk.Context, account string, token types.Hash) math.Uint {
	return k.getAmount(ctx, types.BalanceKeyPrefix, account, token)
}

// FreeBalance satisfies x/dex/types.TokenKeeper.
func (k *Keeper) FreeBalance(ctx sdk.Context, account string, token types.Hash) math.Uint {
	return k.getAmount(ctx, types.FreeBalanceKeyPrefix, account, token)
}

func (k *Keeper) FrozenBalance(ctx sdk.Context, account string, token types.Hash) math.Uint {
	return k.getAmount(ctx, types.FreezedBalanceKeyPrefix, account, token)
}

// EnsureFreeBalance mirrors ensure_free_balance: the token must exist, the
// account must already hold some of it, and the free balance must cover
// amount. Satisfies x/dex/types.TokenKeeper.
func (k *Keeper) EnsureFreeBalance(ctx sdk.Context, account string, token types.Hash, amount math.Uint) error {
	if _, found := k.GetToken(ctx, token); !found {
		return types.ErrTokenNotFound
	}
	if k.store(ctx).Get(balanceKey(types.FreeBalanceKeyPrefix, account, token)) == nil {
		return types.ErrInsufficientFree.Wrap("account has never held this token")
	}
	if k.FreeBalance(ctx, account, token).LT(amount) {
		return types.ErrInsufficientFree
	}
	return nil
}

// checkEnough mirrors check_balance_enough: subtracts amount from the named
// balance if sufficient, without writing it back.
func (k *Keeper) checkEnough(ctx sdk.Context, prefix []byte, account string, token types.Hash, amount math.Uint, insufficient error) (math.Uint, error) {
	bal := k.getAmount(ctx, prefix, account, token)
	if bal.LT(amount) {
		return math.Uint{}, insufficient
	}
	return bal.Sub(amount), nil
}

// checkOverflow mirrors check_balance_overflow: adds amount to the named
// balance. It returns no error of its own; math.Uint's Add panics if the
// sum exceeds 256 bits.
func (k *Keeper) checkOverflow(ctx sdk.Context, prefix []byte, account string, token types.Hash, amount math.Uint) math.Uint {
	return k.getAmount(ctx, prefix, account, token).Add(amount)
}

// Issue creates a token and credits its entire supply to owner's balance and
// free balance, mirroring do_issue.
func (k *Keeper) Issue(ctx sdk.Context, owner string, symbol string, totalSupply math.Uint) (types.Hash, error) {
	if totalSupply.IsZero() {
		return types.Hash{}, types.ErrInvalidTotalSupply
	}
	if k.SymbolTaken(ctx, symbol) {
		return types.Hash{}, types.ErrSymbolTaken
	}

	nonce := k.nextNonce(ctx)
	hash := types.HashFromBytes([]byte(symbol), []byte(owner), nonceBytes(nonce))
	issuanceID := types.IssuanceIDFor(hash)

	tok := &types.Token{Hash: hash, Symbol: symbol, Owner: owner, TotalSupply: totalSupply, IssuanceID: issuanceID}
	k.SetToken(ctx, tok)
	k.store(ctx).Set(issuanceIDKey(issuanceID), hash[:])
	k.setAmount(ctx, types.BalanceKeyPrefix, owner, hash, totalSupply)
	k.setAmount(ctx, types.FreeBalanceKeyPrefix, owner, hash, totalSupply)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTokenIssued,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		sdk.NewAttribute(types.AttributeKeyHash, hash.String()),
		sdk.NewAttribute(types.AttributeKeyIssuanceID, issuanceID),
	))
	return hash, nil
}

// Transfer moves amount of token from -> to, mirroring do_transfer's
// balance and free-balance adjustment on both sides.
func (k *Keeper) Transfer(ctx sdk.Context, from, to string, token types.Hash, amount math.Uint) error {
	if _, found := k.GetToken(ctx, token); !found {
		return types.ErrTokenNotFound
	}
	newFromBalance, err := k.checkEnough(ctx, types.BalanceKeyPrefix, from, token, amount, types.ErrInsufficientFree)
	if err != nil {
		return err
	}
	newFromFree, err := k.checkEnough(ctx, types.FreeBalanceKeyPrefix, from, token, amount, types.ErrInsufficientFree)
	if err != nil {
		return err
	}
	newToBalance := k.checkOverflow(ctx, types.BalanceKeyPrefix, to, token, amount)
	newToFree := k.checkOverflow(ctx, types.FreeBalanceKeyPrefix, to, token, amount)

	if from != to {
		k.setAmount(ctx, types.BalanceKeyPrefix, from, token, newFromBalance)
		k.setAmount(ctx, types.FreeBalanceKeyPrefix, from, token, newFromFree)
		k.setAmount(ctx, types.BalanceKeyPrefix, to, token, newToBalance)
		k.setAmount(ctx, types.FreeBalanceKeyPrefix, to, token, newToFree)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransfer,
		sdk.NewAttribute(types.AttributeKeyFrom, from),
		sdk.NewAttribute(types.AttributeKeyTo, to),
		sdk.NewAttribute(types.AttributeKeyToken, token.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Freeze moves amount from free balance to frozen balance, mirroring
// do_freeze (called when an order reserves funds). Satisfies
// x/dex/types.TokenKeeper.
func (k *Keeper) Freeze(ctx sdk.Context, account string, token types.Hash, amount math.Uint) error {
	if _, found := k.GetToken(ctx, token); !found {
		return types.ErrTokenNotFound
	}
	newFree, err := k.checkEnough(ctx, types.FreeBalanceKeyPrefix, account, token, amount, types.ErrInsufficientFree)
	if err != nil {
		return err
	}
	newFrozen := k.checkOverflow(ctx, types.FreezedBalanceKeyPrefix, account, token, amount)

	k.setAmount(ctx, types.FreeBalanceKeyPrefix, account, token, newFree)
	k.setAmount(ctx, types.FreezedBalanceKeyPrefix, account, token, newFrozen)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFreeze,
		sdk.NewAttribute(types.AttributeKeyOwner, account),
		sdk.NewAttribute(types.AttributeKeyToken, token.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Unfreeze moves amount from frozen balance back to free balance, mirroring
// do_unfreeze (called when an order is cancelled or the remainder of a
// filled order is released). Satisfies x/dex/types.TokenKeeper.
func (k *Keeper) Unfreeze(ctx sdk.Context, account string, token types.Hash, amount math.Uint) error {
	if _, found := k.GetToken(ctx, token); !found {
		return types.ErrTokenNotFound
	}
	newFrozen, err := k.checkEnough(ctx, types.FreezedBalanceKeyPrefix, account, token, amount, types.ErrInsufficientFrozen)
	if err != nil {
		return err
	}
	newFree := k.checkOverflow(ctx, types.FreeBalanceKeyPrefix, account, token, amount)

	k.setAmount(ctx, types.FreezedBalanceKeyPrefix, account, token, newFrozen)
	k.setAmount(ctx, types.FreeBalanceKeyPrefix, account, token, newFree)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnfreeze,
		sdk.NewAttribute(types.AttributeKeyOwner, account),
		sdk.NewAttribute(types.AttributeKeyToken, token.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

func (k *Keeper) nextNonce(ctx sdk.Context) uint64 {
	store := k.store(ctx)
	bz := store.Get(types.NonceKeyFor())
	var nonce uint64
	if bz != nil {
		nonce = binary.BigEndian.Uint64(bz)
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, nonce+1)
	store.Set(types.NonceKeyFor(), next)
	return nonce
}

func nonceBytes(n uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, n)
	return bz
}

func marshalUint(amount math.Uint) []byte {
	bz, _ := amount.Marshal()
	return bz
}

func unmarshalUint(bz []byte) (math.Uint, error) {
	var amount math.Uint
	if err := amount.Unmarshal(bz); err != nil {
		return math.Uint{}, err
	}
	return amount, nil
}
