package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// RegisterInvariants registers all campaign invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "position-sums", PositionSumsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reward-backing", RewardBackingInvariant(k))
}

// AllInvariants runs all invariants of the campaign module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PositionSumsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return RewardBackingInvariant(k)(ctx)
	}
}

// PositionSumsInvariant checks that every campaign's running totals match
// the sums over its live positions.
func PositionSumsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		err := k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
			liquiditySum := math.ZeroInt()
			weightSum := math.ZeroInt()
			iterErr := k.IteratePositions(ctx, campaign.Id, func(_ sdk.AccAddress, pos types.UserPosition) bool {
				liquiditySum = liquiditySum.Add(pos.Liquidity)
				weightSum = weightSum.Add(pos.Weight)
				return false
			})
			if iterErr != nil {
				count++
				msg += iterErr.Error() + "\n"
				return false
			}

			if !liquiditySum.Equal(campaign.TotalLiquidity) {
				count++
				msg += fmt.Sprintf("campaign %d: position liquidity sum %s != total %s\n",
					campaign.Id, liquiditySum, campaign.TotalLiquidity)
			}
			if !weightSum.Equal(campaign.TotalWeight) {
				count++
				msg += fmt.Sprintf("campaign %d: position weight sum %s != total %s\n",
					campaign.Id, weightSum, campaign.TotalWeight)
			}
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "position-sums", err.Error()), true
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "position-sums",
			fmt.Sprintf("found %d campaigns with mismatched totals\n%s", count, msg),
		), broken
	}
}

// RewardBackingInvariant checks that the module's reward-asset balance
// covers the sum of all outstanding reward and bonus pools.
func RewardBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.HasCoreConfig(ctx) {
			return sdk.FormatInvariant(types.ModuleName, "reward-backing", "not initialized"), false
		}
		cfg, err := k.GetCoreConfig(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reward-backing", err.Error()), true
		}

		committed := math.ZeroInt()
		err = k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
			committed = committed.Add(campaign.RewardPool).Add(campaign.BonusPool)
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reward-backing", err.Error()), true
		}

		balance := k.bankKeeper.GetBalance(ctx, k.moduleAddress, cfg.RewardDenom).Amount
		broken := balance.LT(committed)
		return sdk.FormatInvariant(
			types.ModuleName, "reward-backing",
			fmt.Sprintf("module balance %s, committed budgets %s", balance, committed),
		), broken
	}
}
