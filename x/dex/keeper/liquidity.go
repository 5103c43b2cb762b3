package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/dex/types"
)

// GetShares returns the LP share balance of provider in the given pool.
// A missing record reads as zero.
func (k Keeper) GetShares(ctx context.Context, poolID uint64, provider sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(SharesKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt()
	}
	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Sprintf("failed to unmarshal shares for pool %d: %v", poolID, err))
	}
	return shares
}

// SetShares writes the LP share balance of provider in the given pool.
// A zero balance deletes the record.
func (k Keeper) SetShares(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	key := SharesKey(poolID, provider)
	if shares.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := shares.Marshal()
	if err != nil {
		panic(fmt.Sprintf("failed to marshal shares for pool %d: %v", poolID, err))
	}
	store.Set(key, bz)
}

// Deposit adds liquidity to a pool. Both amounts are transferred in full;
// minted shares follow the minimum proportional rule
//
//	shares = min(amountA * totalShares / reserveA, amountB * totalShares / reserveB)
//
// so a lopsided deposit donates its excess to the pool.
func (k Keeper) Deposit(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("deposit amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !pool.ReserveA.IsPositive() || !pool.ReserveB.IsPositive() || !pool.TotalShares.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrapf("pool %d has empty reserves", poolID)
	}

	sharesFromA, err := SafeMulDiv(amountA, pool.TotalShares, pool.ReserveA)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("deposit share calculation: %v", err)
	}
	sharesFromB, err := SafeMulDiv(amountB, pool.TotalShares, pool.ReserveB)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("deposit share calculation: %v", err)
	}
	shares := math.MinInt(sharesFromA, sharesFromB)
	if !shares.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("deposit too small to mint shares")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(
		sdk.NewCoin(pool.TokenA, amountA),
		sdk.NewCoin(pool.TokenB, amountB),
	)
	if err := k.bankKeeper.SendCoins(sdkCtx, provider, k.moduleAddress, coins); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer deposit: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Add(amountA)
	pool.ReserveB = pool.ReserveB.Add(amountB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), fmt.Errorf("Deposit: save pool: %w", err)
	}
	k.SetShares(ctx, poolID, provider, k.GetShares(ctx, poolID, provider).Add(shares))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}

// Withdraw burns shares and pays out the proportional slice of both
// reserves, rounded down.
func (k Keeper) Withdraw(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidAmount.Wrap("shares to withdraw must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	held := k.GetShares(ctx, poolID, provider)
	if held.LT(shares) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientShares.Wrapf(
			"holding %s, requested %s", held, shares)
	}
	if !pool.TotalShares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInvalidPoolState.Wrapf("pool %d has no shares", poolID)
	}

	amountA, err := SafeMulDiv(shares, pool.ReserveA, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdraw calculation: %v", err)
	}
	amountB, err := SafeMulDiv(shares, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrOverflow.Wrapf("withdraw calculation: %v", err)
	}
	if amountA.IsZero() && amountB.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("withdrawal too small")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	var coins sdk.Coins
	if amountA.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if err := k.bankKeeper.SendCoins(sdkCtx, k.moduleAddress, provider, coins); err != nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer withdrawal: %v", err)
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), math.ZeroInt(), fmt.Errorf("Withdraw: save pool: %w", err)
	}
	k.SetShares(ctx, poolID, provider, held.Sub(shares))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return amountA, amountB, nil
}

// TransferLP moves LP shares between accounts without touching reserves.
func (k Keeper) TransferLP(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares math.Int) error {
	if shares.IsNil() || !shares.IsPositive() {
		return types.ErrInvalidAmount.Wrap("shares to transfer must be positive")
	}
	if _, err := k.GetPool(ctx, poolID); err != nil {
		return err
	}

	held := k.GetShares(ctx, poolID, from)
	if held.LT(shares) {
		return types.ErrInsufficientShares.Wrapf("holding %s, transferring %s", held, shares)
	}

	k.SetShares(ctx, poolID, from, held.Sub(shares))
	k.SetShares(ctx, poolID, to, k.GetShares(ctx, poolID, to).Add(shares))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransferShares,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(sdk.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, to.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
	return nil
}

// IterateSharesByPool walks every LP share record of a pool.
func (k Keeper) IterateSharesByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, SharesKeyByPoolPrefix(poolID))
	defer iterator.Close()

	prefixLen := len(SharesKeyByPoolPrefix(poolID))
	for ; iterator.Valid(); iterator.Next() {
		provider := sdk.AccAddress(iterator.Key()[prefixLen:])
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Sprintf("failed to unmarshal shares: %v", err))
		}
		if cb(provider, shares) {
			break
		}
	}
}
