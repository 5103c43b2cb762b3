package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// Compound reinvests trading fees accrued on a campaign's staked LP into
// its reward pool. Callable by anyone.
//
// The staked LP is withdrawn and immediately redeposited; because fees
// accrue into reserves, the fresh mint exceeds the old holding by a
// fee-liquidity delta. That delta is withdrawn again, its proceeds
// converted to the reward asset, and the result credited to the reward
// pool.
func (k Keeper) Compound(ctx context.Context, campaignID uint32) (math.Int, error) {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return math.Int{}, err
	}
	campaign, err := k.GetCampaign(ctx, campaignID)
	if err != nil {
		return math.Int{}, err
	}

	staked := campaign.StakedLiquidity
	if !staked.IsPositive() {
		return math.ZeroInt(), nil
	}

	outA, outB, err := k.amm.Withdraw(ctx, k.moduleAddress, campaign.PoolId, staked)
	if err != nil {
		return math.Int{}, err
	}
	lpNew, err := k.amm.Deposit(ctx, k.moduleAddress, campaign.PoolId, outA, outB)
	if err != nil {
		return math.Int{}, err
	}
	if !lpNew.IsPositive() {
		return math.Int{}, types.ErrZeroLiquidity.Wrapf(
			"redeposit for campaign %d minted zero liquidity", campaignID)
	}

	feeLp := lpNew.Sub(staked)
	if !feeLp.IsPositive() {
		// No accrued fees; lpNew can undershoot staked by withdrawal
		// rounding, in which case the holding shrinks by that dust.
		campaign.StakedLiquidity = lpNew
		if err := k.SetCampaign(ctx, campaign); err != nil {
			return math.Int{}, err
		}
		return math.ZeroInt(), nil
	}

	feeA, feeB, err := k.amm.Withdraw(ctx, k.moduleAddress, campaign.PoolId, feeLp)
	if err != nil {
		return math.Int{}, err
	}
	denomA, denomB, err := k.amm.PoolDenoms(ctx, campaign.PoolId)
	if err != nil {
		return math.Int{}, err
	}

	// Convert all fee proceeds to the reward asset: the paired asset is
	// first swapped to stable on the campaign pool when it is neither
	// stable nor reward, then the stable total goes through the seed pool.
	harvested := math.ZeroInt()
	stableTotal := math.ZeroInt()
	for _, leg := range []struct {
		denom  string
		amount math.Int
	}{
		{denomA, feeA},
		{denomB, feeB},
	} {
		if !leg.amount.IsPositive() {
			continue
		}
		switch leg.denom {
		case cfg.RewardDenom:
			harvested = harvested.Add(leg.amount)
		case cfg.StableDenom:
			stableTotal = stableTotal.Add(leg.amount)
		default:
			out, err := k.amm.SwapExactIn(ctx, k.moduleAddress, campaign.PoolId, leg.denom, leg.amount)
			if err != nil {
				return math.Int{}, err
			}
			stableTotal = stableTotal.Add(out)
		}
	}
	if stableTotal.IsPositive() {
		out, err := k.amm.SwapExactIn(ctx, k.moduleAddress, cfg.SeedPoolId, cfg.StableDenom, stableTotal)
		if err != nil {
			return math.Int{}, err
		}
		harvested = harvested.Add(out)
	}

	campaign.RewardPool = campaign.RewardPool.Add(harvested)
	campaign.StakedLiquidity = lpNew.Sub(feeLp)
	if err := k.SetCampaign(ctx, campaign); err != nil {
		return math.Int{}, err
	}

	k.Logger(ctx).Info("campaign compounded",
		"campaign_id", campaignID,
		"fee_liquidity", feeLp.String(), "harvested", harvested.String())

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCompounded,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyFeeLiquidity, feeLp.String()),
			sdk.NewAttribute(types.AttributeKeyHarvested, harvested.String()),
		),
	)

	return harvested, nil
}
