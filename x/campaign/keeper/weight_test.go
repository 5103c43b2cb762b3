package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/flash-chain/flash/x/campaign/keeper"
)

func TestRankWeight(t *testing.T) {
	require.Equal(t, math.NewInt(100_000_000), keeper.RankWeight(1, 2))
	require.Equal(t, math.NewInt(25_000_000), keeper.RankWeight(2, 2))
	require.Equal(t, math.NewInt(11_111_111), keeper.RankWeight(3, 2))
	require.Equal(t, math.NewInt(1_000_000), keeper.RankWeight(10, 2))

	// gamma 1 decays linearly
	require.Equal(t, math.NewInt(50_000_000), keeper.RankWeight(2, 1))

	// rank 0 is invalid
	require.True(t, keeper.RankWeight(0, 2).IsZero())
}

func TestRankWeightSaturation(t *testing.T) {
	// rank^gamma beyond the base floors the weight to zero
	require.True(t, keeper.RankWeight(100_000, 2).IsZero())
	require.True(t, keeper.RankWeight(2, 30).IsZero())
	require.True(t, keeper.RankWeight(1_000_000_000_000, 5).IsZero())
}

func TestContributionWeight(t *testing.T) {
	// half the target scores half the scale
	require.Equal(t, math.NewInt(5000), keeper.ContributionWeight(math.NewInt(500), math.NewInt(1000)))

	// over-depositing caps at 100%
	require.Equal(t, math.NewInt(10_000), keeper.ContributionWeight(math.NewInt(5000), math.NewInt(1000)))

	require.True(t, keeper.ContributionWeight(math.ZeroInt(), math.NewInt(1000)).IsZero())
	require.True(t, keeper.ContributionWeight(math.NewInt(500), math.ZeroInt()).IsZero())
}

func TestCampaignWeightRankDecayDominates(t *testing.T) {
	// depositor A: rank 1, lp 1000 against target 1000
	weightA, err := keeper.CampaignWeight(1, math.NewInt(1000), math.NewInt(1000), 2)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000_000), weightA)

	// depositor B: rank 2, lp 500 against target 1000
	weightB, err := keeper.CampaignWeight(2, math.NewInt(500), math.NewInt(1000), 2)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(12_500_000), weightB)

	// rank decay compounds the contribution gap: 8x, not 2x
	require.True(t, weightA.GT(weightB.MulRaw(4)))
}

func TestCampaignWeightZeroRank(t *testing.T) {
	weight, err := keeper.CampaignWeight(0, math.NewInt(1000), math.NewInt(1000), 2)
	require.NoError(t, err)
	require.True(t, weight.IsZero())
}
