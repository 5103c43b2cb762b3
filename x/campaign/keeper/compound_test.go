package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
	"github.com/flash-chain/flash/x/campaign/types"
)

func TestCompoundNoAccruedFees(t *testing.T) {
	f := setupEngine(t)
	ctx := f.ctx

	// stake the module into the campaign pool directly at an exactly
	// proportional ratio so the withdraw/redeposit round trip is lossless
	moduleAddr := f.k.GetModuleAddress()
	f.bank.FundAccount(moduleAddr, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(100_000)),
		sdk.NewCoin("uusdc", math.NewInt(100_000)),
	))
	lp, err := f.dex.Deposit(ctx, moduleAddr, f.poolID, math.NewInt(100_000), math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), lp)

	campaign := &types.Campaign{
		Id:              1,
		PoolId:          f.poolID,
		Duration:        50,
		EndHeight:       150,
		Creator:         testAddr("sponsor").String(),
		TargetLiquidity: math.NewInt(5000),
		TotalLiquidity:  lp,
		TotalWeight:     math.NewInt(100_000_000),
		RewardPool:      math.NewInt(1000),
		BonusPool:       math.ZeroInt(),
		StakedLiquidity: lp,
	}
	require.NoError(t, f.k.SetCampaign(ctx, campaign))

	// no trades happened, so the round trip mints back exactly what was
	// burned and nothing is harvested
	harvested, err := f.k.Compound(ctx, 1)
	require.NoError(t, err)
	require.True(t, harvested.IsZero())

	after, err := f.k.GetCampaign(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), after.StakedLiquidity)
	require.Equal(t, math.NewInt(1000), after.RewardPool)
	require.Equal(t, math.NewInt(100_000), f.dex.GetShares(ctx, f.poolID, moduleAddr))

	// compounding is idempotent while no fees accrue
	harvested, err = f.k.Compound(ctx, 1)
	require.NoError(t, err)
	require.True(t, harvested.IsZero())
}

func TestCompoundZeroStake(t *testing.T) {
	f := setupEngine(t)

	campaign := &types.Campaign{
		Id:              7,
		PoolId:          f.poolID,
		EndHeight:       150,
		Creator:         testAddr("sponsor").String(),
		TargetLiquidity: math.NewInt(5000),
		TotalLiquidity:  math.ZeroInt(),
		TotalWeight:     math.ZeroInt(),
		RewardPool:      math.ZeroInt(),
		BonusPool:       math.ZeroInt(),
		StakedLiquidity: math.ZeroInt(),
	}
	require.NoError(t, f.k.SetCampaign(f.ctx, campaign))

	harvested, err := f.k.Compound(f.ctx, 7)
	require.NoError(t, err)
	require.True(t, harvested.IsZero())
}

func TestCompoundUnknownCampaign(t *testing.T) {
	f := setupEngine(t)

	_, err := f.k.Compound(f.ctx, 99)
	require.ErrorIs(t, err, types.ErrCampaignNotFound)
}

// scriptedAMM drives Compound through the harvest branch, which a real
// constant-product round trip cannot reach inside a single block.
type scriptedAMM struct {
	seedPoolID uint64
	poolID     uint64

	withdrawals int
	swaps       []string
}

func (s *scriptedAMM) GetReserves(context.Context, uint64) (math.Int, math.Int, error) {
	return math.NewInt(1_000_000), math.NewInt(1_000_000), nil
}

func (s *scriptedAMM) PoolDenoms(_ context.Context, poolID uint64) (string, string, error) {
	if poolID == s.seedPoolID {
		return "uflash", "uusdc", nil
	}
	return "uatom", "uusdc", nil
}

func (s *scriptedAMM) SwapExactIn(_ context.Context, _ sdk.AccAddress, poolID uint64, denomIn string, amountIn math.Int) (math.Int, error) {
	s.swaps = append(s.swaps, denomIn)
	if poolID == s.seedPoolID {
		// 19 uusdc worth of fees buys 18 uflash
		return math.NewInt(18), nil
	}
	// 10 uatom converts to 9 uusdc
	return math.NewInt(9), nil
}

func (s *scriptedAMM) Deposit(context.Context, sdk.AccAddress, uint64, math.Int, math.Int) (math.Int, error) {
	// redeposit of the 100-unit stake mints 110: ten units of accrued fees
	return math.NewInt(110), nil
}

func (s *scriptedAMM) Withdraw(_ context.Context, _ sdk.AccAddress, _ uint64, shares math.Int) (math.Int, math.Int, error) {
	s.withdrawals++
	return shares, shares, nil
}

func (s *scriptedAMM) GetShares(context.Context, uint64, sdk.AccAddress) math.Int {
	return math.NewInt(110)
}

func (s *scriptedAMM) TransferLP(context.Context, uint64, sdk.AccAddress, sdk.AccAddress, math.Int) error {
	return nil
}

func TestCompoundHarvestsFees(t *testing.T) {
	amm := &scriptedAMM{seedPoolID: 1, poolID: 2}
	k, _, ctx := testkeeper.CampaignKeeperWithAMM(t, amm)

	require.NoError(t, k.SetCoreConfig(ctx, types.CoreConfig{
		Admin:       testAddr("admin").String(),
		RewardDenom: "uflash",
		StableDenom: "uusdc",
		SeedPoolId:  amm.seedPoolID,
		SurplusBps:  500,
		Gamma:       2,
	}))
	campaign := &types.Campaign{
		Id:              1,
		PoolId:          amm.poolID,
		EndHeight:       150,
		Creator:         testAddr("sponsor").String(),
		TargetLiquidity: math.NewInt(5000),
		TotalLiquidity:  math.NewInt(100),
		TotalWeight:     math.NewInt(100_000_000),
		RewardPool:      math.NewInt(1000),
		BonusPool:       math.ZeroInt(),
		StakedLiquidity: math.NewInt(100),
	}
	require.NoError(t, k.SetCampaign(ctx, campaign))

	// withdraw 100 -> redeposit mints 110 -> 10 LP of fees withdrawn as
	// 10 uatom + 10 uusdc; the uatom leg swaps to 9 uusdc and the 19
	// uusdc total buys 18 uflash through the seed pool
	harvested, err := k.Compound(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(18), harvested)

	after, err := k.GetCampaign(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1018), after.RewardPool)
	require.Equal(t, math.NewInt(100), after.StakedLiquidity)

	require.Equal(t, 2, amm.withdrawals)
	require.Equal(t, []string{"uatom", "uusdc"}, amm.swaps)
}
