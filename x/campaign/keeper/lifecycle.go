package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// orientedReserves returns a pool's reserves with the stable side first,
// plus the paired denom. Pools that don't carry the stable asset are
// rejected.
func (k Keeper) orientedReserves(ctx context.Context, poolID uint64, stableDenom string) (rStable, rOther math.Int, otherDenom string, err error) {
	denomA, denomB, err := k.amm.PoolDenoms(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, "", err
	}
	reserveA, reserveB, err := k.amm.GetReserves(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, "", err
	}

	switch stableDenom {
	case denomA:
		return reserveA, reserveB, denomB, nil
	case denomB:
		return reserveB, reserveA, denomA, nil
	default:
		return math.Int{}, math.Int{}, "", types.ErrInvalidAsset.Wrapf(
			"pool %d (%s/%s) does not carry %s", poolID, denomA, denomB, stableDenom)
	}
}

// orientDeposit maps (stable, other) amounts back to the pool's canonical
// (TokenA, TokenB) order.
func (k Keeper) orientDeposit(ctx context.Context, poolID uint64, stableDenom string, stableAmt, otherAmt math.Int) (math.Int, math.Int, error) {
	denomA, _, err := k.amm.PoolDenoms(ctx, poolID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if denomA == stableDenom {
		return stableAmt, otherAmt, nil
	}
	return otherAmt, stableAmt, nil
}

// InitCoreConfig writes the one-time engine configuration. The signer
// becomes the admin and their entire reward-asset balance is swept into
// the module account as the emission treasury.
func (k Keeper) InitCoreConfig(ctx context.Context, admin sdk.AccAddress, cfg types.CoreConfig) (math.Int, error) {
	if k.HasCoreConfig(ctx) {
		return math.Int{}, types.ErrAlreadyInitialized
	}

	denomA, denomB, err := k.amm.PoolDenoms(ctx, cfg.SeedPoolId)
	if err != nil {
		return math.Int{}, err
	}
	pair := map[string]bool{denomA: true, denomB: true}
	if !pair[cfg.StableDenom] || !pair[cfg.RewardDenom] {
		return math.Int{}, types.ErrInvalidAsset.Wrapf(
			"seed pool %d carries %s/%s, expected %s/%s",
			cfg.SeedPoolId, denomA, denomB, cfg.StableDenom, cfg.RewardDenom)
	}

	rStable, rReward, _, err := k.orientedReserves(ctx, cfg.SeedPoolId, cfg.StableDenom)
	if err != nil {
		return math.Int{}, err
	}
	if !rStable.IsPositive() || !rReward.IsPositive() {
		return math.Int{}, types.ErrArithmetic.Wrapf("seed pool %d is empty", cfg.SeedPoolId)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	swept := k.bankKeeper.GetBalance(sdkCtx, admin, cfg.RewardDenom).Amount
	if swept.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(cfg.RewardDenom, swept))
		if err := k.bankKeeper.SendCoins(sdkCtx, admin, k.moduleAddress, coins); err != nil {
			return math.Int{}, fmt.Errorf("sweep treasury: %w", err)
		}
	}

	if err := k.SetCoreConfig(ctx, cfg); err != nil {
		return math.Int{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeConfigInitialized,
			sdk.NewAttribute(types.AttributeKeyAdmin, cfg.Admin),
			sdk.NewAttribute(types.AttributeKeySeedPoolID, fmt.Sprintf("%d", cfg.SeedPoolId)),
			sdk.NewAttribute(types.AttributeKeyTreasurySwept, swept.String()),
		),
	)

	return swept, nil
}

// CreateCampaign opens a campaign on a pool. The sponsor's fee is zapped
// into the seed pool; the over-swapped reward asset, capped by the
// emission bound, becomes the campaign's reward pool.
func (k Keeper) CreateCampaign(
	ctx context.Context,
	creator sdk.AccAddress,
	fee math.Int,
	poolID uint64,
	unlockDuration uint32,
	targetLiquidity math.Int,
	bonusPool math.Int,
) (*types.Campaign, error) {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return nil, err
	}
	height := currentHeight(ctx)

	marker, err := k.GetMarker(ctx, poolID)
	if err != nil {
		return nil, err
	}
	if marker != nil && !marker.Expired(height) {
		return nil, types.ErrCampaignActive.Wrapf(
			"campaign %d blocks pool %d until height %d", marker.CampaignId, poolID, marker.EndHeight)
	}

	// The campaign pool must carry the stable asset so joins can zap
	// into it.
	if _, _, _, err := k.orientedReserves(ctx, poolID, cfg.StableDenom); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	feeCoins := sdk.NewCoins(sdk.NewCoin(cfg.StableDenom, fee))
	if err := k.bankKeeper.SendCoins(sdkCtx, creator, k.moduleAddress, feeCoins); err != nil {
		return nil, fmt.Errorf("pull sponsor fee: %w", err)
	}

	ru0, rf0, _, err := k.orientedReserves(ctx, cfg.SeedPoolId, cfg.StableDenom)
	if err != nil {
		return nil, err
	}
	if ru0.IsZero() {
		return nil, types.ErrArithmetic.Wrapf("seed pool %d has no stable reserve", cfg.SeedPoolId)
	}

	swapAmt, liqAmt, err := ComputeZapSplit(fee, ru0, cfg.SurplusBps)
	if err != nil {
		return nil, err
	}

	flashOut := math.ZeroInt()
	if swapAmt.IsPositive() {
		flashOut, err = k.amm.SwapExactIn(ctx, k.moduleAddress, cfg.SeedPoolId, cfg.StableDenom, swapAmt)
		if err != nil {
			return nil, err
		}
	}

	// The reward asset actually needed for a balanced deposit is
	// recomputed from post-swap reserves, not the frictionless estimate.
	surplus := flashOut
	if liqAmt.IsPositive() {
		ruSwap, rfSwap, _, err := k.orientedReserves(ctx, cfg.SeedPoolId, cfg.StableDenom)
		if err != nil {
			return nil, err
		}
		flashNeed, err := mulDiv(liqAmt, rfSwap, ruSwap)
		if err != nil {
			return nil, err
		}
		if !flashNeed.IsPositive() {
			return nil, types.ErrArithmetic.Wrapf(
				"required reward-asset deposit is non-positive for liquidity %s", liqAmt)
		}

		// The treasury covers any shortfall between swap output and the
		// balanced requirement; the bank transfer inside Deposit fails
		// the whole call when it cannot.
		if flashNeed.GTE(flashOut) {
			surplus = math.ZeroInt()
		} else {
			surplus = flashOut.Sub(flashNeed)
		}

		amtA, amtB, err := k.orientDeposit(ctx, cfg.SeedPoolId, cfg.StableDenom, liqAmt, flashNeed)
		if err != nil {
			return nil, err
		}
		lp, err := k.amm.Deposit(ctx, k.moduleAddress, cfg.SeedPoolId, amtA, amtB)
		if err != nil {
			return nil, err
		}
		if !lp.IsPositive() {
			return nil, types.ErrZeroLiquidity.Wrap("seed deposit minted zero liquidity")
		}
	}

	ru1, rf1, _, err := k.orientedReserves(ctx, cfg.SeedPoolId, cfg.StableDenom)
	if err != nil {
		return nil, err
	}
	rewardPool, err := ComputeEmissionCap(ru0, rf0, ru1, rf1, surplus)
	if err != nil {
		return nil, err
	}

	// Both budgets must already sit in the treasury.
	rewardBalance := k.bankKeeper.GetBalance(sdkCtx, k.moduleAddress, cfg.RewardDenom).Amount
	if rewardBalance.LT(rewardPool.Add(bonusPool)) {
		return nil, types.ErrInvalidAmount.Wrapf(
			"treasury %s cannot back reward %s plus bonus %s", rewardBalance, rewardPool, bonusPool)
	}

	id := k.GetNextCampaignID(ctx)
	endHeight := height + unlockDuration
	campaign := &types.Campaign{
		Id:              id,
		PoolId:          poolID,
		Duration:        unlockDuration,
		EndHeight:       endHeight,
		Creator:         creator.String(),
		TargetLiquidity: targetLiquidity,
		TotalLiquidity:  math.ZeroInt(),
		TotalWeight:     math.ZeroInt(),
		RewardPool:      rewardPool,
		BonusPool:       bonusPool,
		StakedLiquidity: math.ZeroInt(),
	}
	if err := k.SetCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	if err := k.SetMarker(ctx, poolID, types.ActiveCampaignMarker{
		CampaignId: id,
		EndHeight:  endHeight,
	}); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("campaign created",
		"campaign_id", id, "pool_id", poolID,
		"reward_pool", rewardPool.String(), "end_height", endHeight)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCampaignCreated,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyRewardPool, rewardPool.String()),
			sdk.NewAttribute(types.AttributeKeyBonusPool, bonusPool.String()),
			sdk.NewAttribute(types.AttributeKeyEndHeight, fmt.Sprintf("%d", endHeight)),
		),
	)

	return campaign, nil
}

// JoinCampaign stakes a depositor's stable amount into the campaign's
// pool: half is swapped into the paired asset, both halves deposited,
// and the minted LP units weighted by join rank and contribution.
func (k Keeper) JoinCampaign(ctx context.Context, depositor sdk.AccAddress, campaignID uint32, stableAmount math.Int) (*types.UserPosition, error) {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return nil, err
	}
	campaign, err := k.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	height := currentHeight(ctx)
	if height >= campaign.EndHeight {
		return nil, types.ErrCampaignEnded.Wrapf(
			"campaign %d ended at height %d", campaignID, campaign.EndHeight)
	}

	existing, err := k.GetPosition(ctx, campaignID, depositor)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, types.ErrPositionExists.Wrapf(
			"%s already joined campaign %d at rank %d", depositor, campaignID, existing.Rank)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(cfg.StableDenom, stableAmount))
	if err := k.bankKeeper.SendCoins(sdkCtx, depositor, k.moduleAddress, coins); err != nil {
		return nil, fmt.Errorf("pull deposit: %w", err)
	}

	half := stableAmount.QuoRaw(2)
	if !half.IsPositive() {
		return nil, types.ErrInvalidAmount.Wrapf("deposit %s too small to split", stableAmount)
	}
	swapOut, err := k.amm.SwapExactIn(ctx, k.moduleAddress, campaign.PoolId, cfg.StableDenom, half)
	if err != nil {
		return nil, err
	}

	remaining := stableAmount.Sub(half)
	amtA, amtB, err := k.orientDeposit(ctx, campaign.PoolId, cfg.StableDenom, remaining, swapOut)
	if err != nil {
		return nil, err
	}
	lp, err := k.amm.Deposit(ctx, k.moduleAddress, campaign.PoolId, amtA, amtB)
	if err != nil {
		return nil, err
	}
	if !lp.IsPositive() {
		return nil, types.ErrZeroLiquidity.Wrap("join deposit minted zero liquidity")
	}

	rank := k.NextRank(ctx, campaignID)
	weight, err := CampaignWeight(rank, lp, campaign.TargetLiquidity, cfg.Gamma)
	if err != nil {
		return nil, err
	}

	campaign.TotalLiquidity = campaign.TotalLiquidity.Add(lp)
	campaign.TotalWeight = campaign.TotalWeight.Add(weight)
	campaign.StakedLiquidity = campaign.StakedLiquidity.Add(lp)
	if err := k.SetCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	pos := &types.UserPosition{
		Liquidity:    lp,
		Weight:       weight,
		JoinedHeight: height,
		Rank:         rank,
	}
	if err := k.SetPosition(ctx, campaignID, depositor, pos); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCampaignJoined,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidity, lp.String()),
			sdk.NewAttribute(types.AttributeKeyWeight, weight.String()),
			sdk.NewAttribute(types.AttributeKeyRank, fmt.Sprintf("%d", rank)),
		),
	)

	return pos, nil
}

// Claim pays out a depositor's share of the reward and bonus pools and
// returns their LP units. Deleting the position is what makes the claim
// exactly-once.
func (k Keeper) Claim(ctx context.Context, depositor sdk.AccAddress, campaignID uint32) (reward, bonus, lpOut math.Int, err error) {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	campaign, err := k.GetCampaign(ctx, campaignID)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}

	pos, err := k.GetPosition(ctx, campaignID, depositor)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	if pos == nil || !pos.Weight.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrNothingToClaim.Wrapf(
			"%s has no claimable position in campaign %d", depositor, campaignID)
	}

	height := currentHeight(ctx)
	if height < campaign.EndHeight {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrTooEarly.Wrapf(
			"campaign %d unlocks at height %d, current %d", campaignID, campaign.EndHeight, height)
	}

	// The bonus verdict is frozen on the first claim so every claimant
	// sees the same eligibility.
	if !campaign.Settled {
		campaign.Settled = true
		campaign.BonusEligible = campaign.TotalLiquidity.GTE(campaign.TargetLiquidity)
	}

	if !campaign.TotalWeight.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrArithmetic.Wrapf(
			"campaign %d has positions but zero total weight", campaignID)
	}
	reward, err = mulDiv(campaign.RewardPool, pos.Weight, campaign.TotalWeight)
	if err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	bonus = math.ZeroInt()
	if campaign.BonusEligible {
		bonus, err = mulDiv(campaign.BonusPool, pos.Weight, campaign.TotalWeight)
		if err != nil {
			return math.Int{}, math.Int{}, math.Int{}, err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	payout := reward.Add(bonus)
	if payout.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(cfg.RewardDenom, payout))
		if err := k.bankKeeper.SendCoins(sdkCtx, k.moduleAddress, depositor, coins); err != nil {
			return math.Int{}, math.Int{}, math.Int{}, fmt.Errorf("pay reward: %w", err)
		}
	}

	// Redeposit rounding during compounds can shave LP dust off the
	// module's holdings; the last claimant absorbs it.
	lpOut = math.MinInt(pos.Liquidity, k.amm.GetShares(ctx, campaign.PoolId, k.moduleAddress))
	if lpOut.IsPositive() {
		if err := k.amm.TransferLP(ctx, campaign.PoolId, k.moduleAddress, depositor, lpOut); err != nil {
			return math.Int{}, math.Int{}, math.Int{}, err
		}
	}

	campaign.RewardPool = campaign.RewardPool.Sub(reward)
	campaign.BonusPool = campaign.BonusPool.Sub(bonus)
	campaign.TotalWeight = campaign.TotalWeight.Sub(pos.Weight)
	campaign.TotalLiquidity = campaign.TotalLiquidity.Sub(pos.Liquidity)
	campaign.StakedLiquidity = math.MaxInt(campaign.StakedLiquidity.Sub(pos.Liquidity), math.ZeroInt())
	if err := k.SetCampaign(ctx, campaign); err != nil {
		return math.Int{}, math.Int{}, math.Int{}, err
	}
	k.DeletePosition(ctx, campaignID, depositor)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimed,
			sdk.NewAttribute(types.AttributeKeyCampaignID, fmt.Sprintf("%d", campaignID)),
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
			sdk.NewAttribute(types.AttributeKeyBonus, bonus.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidity, lpOut.String()),
		),
	)

	return reward, bonus, lpOut, nil
}

// SetSurplusBps updates the zap over-swap parameter. Admin only.
func (k Keeper) SetSurplusBps(ctx context.Context, admin sdk.AccAddress, surplusBps uint32) error {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return err
	}
	if admin.String() != cfg.Admin {
		return types.ErrUnauthorized.Wrapf("%s is not the admin", admin)
	}
	if surplusBps >= types.WeightScale {
		return types.ErrParamOutOfRange.Wrapf(
			"surplus_bps must be below %d: %d", types.WeightScale, surplusBps)
	}

	cfg.SurplusBps = surplusBps
	if err := k.SetCoreConfig(ctx, cfg); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSurplusBpsSet,
			sdk.NewAttribute(types.AttributeKeyAdmin, cfg.Admin),
			sdk.NewAttribute(types.AttributeKeySurplusBps, fmt.Sprintf("%d", surplusBps)),
		),
	)
	return nil
}

// SetGamma updates the rank decay exponent. Admin only.
func (k Keeper) SetGamma(ctx context.Context, admin sdk.AccAddress, gamma uint32) error {
	cfg, err := k.GetCoreConfig(ctx)
	if err != nil {
		return err
	}
	if admin.String() != cfg.Admin {
		return types.ErrUnauthorized.Wrapf("%s is not the admin", admin)
	}
	if gamma == 0 {
		return types.ErrParamOutOfRange.Wrap("gamma must be positive")
	}

	cfg.Gamma = gamma
	if err := k.SetCoreConfig(ctx, cfg); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeGammaSet,
			sdk.NewAttribute(types.AttributeKeyAdmin, cfg.Admin),
			sdk.NewAttribute(types.AttributeKeyGamma, fmt.Sprintf("%d", gamma)),
		),
	)
	return nil
}
