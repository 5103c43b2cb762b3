package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/dex/types"
)

// CalculateSwapOutput computes the fee-inclusive constant-product output:
//
//	out = (in * (10000 - feeBps) * reserveOut) / (reserveIn * 10000 + in * (10000 - feeBps))
//
// All intermediates are arbitrary precision; the result truncates toward
// zero. The fee stays in the pool reserves.
func CalculateSwapOutput(amountIn, reserveIn, reserveOut math.Int, feeBps uint32) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pool reserves must be positive")
	}
	if feeBps >= 10_000 {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrapf("fee %d bps out of range", feeBps)
	}

	inAfterFee, err := SafeMul(amountIn, math.NewInt(int64(10_000-feeBps)))
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap input scaling: %v", err)
	}
	numerator, err := SafeMul(inAfterFee, reserveOut)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap numerator: %v", err)
	}
	scaledReserve, err := SafeMul(reserveIn, math.NewInt(10_000))
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap denominator: %v", err)
	}
	denominator, err := SafeAdd(scaledReserve, inAfterFee)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap denominator: %v", err)
	}
	amountOut, err := SafeQuo(numerator, denominator)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("swap division: %v", err)
	}

	if !amountOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("output amount too small")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}
	return amountOut, nil
}

// SwapExactIn trades amountIn of denomIn against the pool for the paired
// asset. The full input is added to the reserve; the implicit fee accrues
// to liquidity providers.
func (k Keeper) SwapExactIn(ctx context.Context, trader sdk.AccAddress, poolID uint64, denomIn string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmount.Wrap("swap amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	var reserveIn, reserveOut math.Int
	var denomOut string
	switch denomIn {
	case pool.TokenA:
		reserveIn, reserveOut, denomOut = pool.ReserveA, pool.ReserveB, pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut, denomOut = pool.ReserveB, pool.ReserveA, pool.TokenA
	default:
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrapf(
			"denom %s not in pool %d (%s/%s)", denomIn, poolID, pool.TokenA, pool.TokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	amountOut, err := CalculateSwapOutput(amountIn, reserveIn, reserveOut, params.SwapFeeBps)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Transfers first, state update after: a failed transfer leaves the
	// pool untouched.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.bankKeeper.SendCoins(sdkCtx, trader, k.moduleAddress, sdk.NewCoins(sdk.NewCoin(denomIn, amountIn))); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer input tokens: %v", err)
	}
	if err := k.bankKeeper.SendCoins(sdkCtx, k.moduleAddress, trader, sdk.NewCoins(sdk.NewCoin(denomOut, amountOut))); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("failed to transfer output tokens: %v", err)
	}

	if denomIn == pool.TokenA {
		pool.ReserveA = pool.ReserveA.Add(amountIn)
		pool.ReserveB = pool.ReserveB.Sub(amountOut)
	} else {
		pool.ReserveB = pool.ReserveB.Add(amountIn)
		pool.ReserveA = pool.ReserveA.Sub(amountOut)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), fmt.Errorf("SwapExactIn: save pool: %w", err)
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, denomIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, denomOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	return amountOut, nil
}

// SimulateSwap computes the output a swap would produce without executing it.
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, denomIn string, amountIn math.Int) (math.Int, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	var reserveIn, reserveOut math.Int
	switch denomIn {
	case pool.TokenA:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
	case pool.TokenB:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	default:
		return math.ZeroInt(), types.ErrInvalidTokenPair.Wrapf(
			"denom %s not in pool %d (%s/%s)", denomIn, poolID, pool.TokenA, pool.TokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return CalculateSwapOutput(amountIn, reserveIn, reserveOut, params.SwapFeeBps)
}
