package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/dex/types"
)

// RegisterInvariants registers all dex invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-reserves", PoolReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-shares", PoolSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
}

// AllInvariants runs all invariants of the dex module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = PoolSharesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return PositiveReservesInvariant(k)(ctx)
	}
}

// PoolReservesInvariant checks that the module account can cover every
// pool's recorded reserves. Multiple pools may share a denom, so the
// check sums reserves per denom before comparing.
func PoolReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		required := make(map[string]math.Int)
		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-reserves", err.Error()), true
		}
		for _, pool := range pools {
			for denom, amount := range map[string]math.Int{
				pool.TokenA: pool.ReserveA,
				pool.TokenB: pool.ReserveB,
			} {
				if cur, ok := required[denom]; ok {
					required[denom] = cur.Add(amount)
				} else {
					required[denom] = amount
				}
			}
		}

		moduleAddr := k.GetModuleAddress()
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < total reserves (%s)\n",
					denom, balance.Amount.String(), amount.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-reserves",
			fmt.Sprintf("found %d under-collateralized denoms\n%s", count, msg),
		), broken
	}
}

// PoolSharesInvariant checks that the sum of all LP positions in each
// pool equals the pool's total share supply.
func PoolSharesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pool-shares", err.Error()), true
		}
		for _, pool := range pools {
			sum := math.ZeroInt()
			k.IterateSharesByPool(ctx, pool.Id, func(_ sdk.AccAddress, shares math.Int) bool {
				sum = sum.Add(shares)
				return false
			})
			if !sum.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: position sum %s != total shares %s\n",
					pool.Id, sum.String(), pool.TotalShares.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-shares",
			fmt.Sprintf("found %d pools with mismatched shares\n%s", count, msg),
		), broken
	}
}

// PositiveReservesInvariant checks that no pool has a negative reserve or
// negative share supply.
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pools, err := k.GetAllPools(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "positive-reserves", err.Error()), true
		}
		for _, pool := range pools {
			if pool.ReserveA.IsNegative() || pool.ReserveB.IsNegative() || pool.TotalShares.IsNegative() {
				count++
				msg += fmt.Sprintf("pool %d: negative state (%s, %s, %s shares)\n",
					pool.Id, pool.ReserveA.String(), pool.ReserveB.String(), pool.TotalShares.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "positive-reserves",
			fmt.Sprintf("found %d pools with negative state\n%s", count, msg),
		), broken
	}
}
