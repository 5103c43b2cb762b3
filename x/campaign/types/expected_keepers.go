package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AMMKeeper is the constant-product pool surface the campaign engine
// consumes. The dex keeper satisfies it.
type AMMKeeper interface {
	// GetReserves returns a pool's reserves in canonical (TokenA, TokenB)
	// denom order.
	GetReserves(ctx context.Context, poolID uint64) (math.Int, math.Int, error)

	// PoolDenoms returns a pool's token denominations in canonical order.
	PoolDenoms(ctx context.Context, poolID uint64) (string, string, error)

	// SwapExactIn trades amountIn of denomIn for the paired asset using
	// the pool's fee-inclusive output formula.
	SwapExactIn(ctx context.Context, trader sdk.AccAddress, poolID uint64, denomIn string, amountIn math.Int) (math.Int, error)

	// Deposit adds both assets and mints LP units by the minimum
	// proportional rule.
	Deposit(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error)

	// Withdraw burns LP units for the proportional slice of both reserves.
	Withdraw(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error)

	// GetShares returns an address's LP balance in a pool.
	GetShares(ctx context.Context, poolID uint64, provider sdk.AccAddress) math.Int

	// TransferLP moves LP units between accounts without touching reserves.
	TransferLP(ctx context.Context, poolID uint64, from, to sdk.AccAddress, shares math.Int) error
}

// BankKeeper is the fungible-asset transfer surface the campaign engine
// consumes.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}
