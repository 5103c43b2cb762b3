package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/flash-chain/flash/x/campaign/keeper"
	"github.com/flash-chain/flash/x/campaign/types"
)

func TestComputeZapSplit(t *testing.T) {
	// reserves 100 stable, fee 1000, surplus 500 bps:
	// s_min = floor(sqrt(100*1100)) - 100 = 331 - 100 = 231
	// extra = 1000*500/10000 = 50
	swap, liquidity, err := keeper.ComputeZapSplit(math.NewInt(1000), math.NewInt(100), 500)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(281), swap)
	require.Equal(t, math.NewInt(719), liquidity)
}

func TestComputeZapSplitZeroSurplus(t *testing.T) {
	swap, liquidity, err := keeper.ComputeZapSplit(math.NewInt(1000), math.NewInt(100), 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(231), swap)
	require.Equal(t, math.NewInt(769), liquidity)
}

func TestComputeZapSplitClampedToFee(t *testing.T) {
	// a near-100% surplus pushes the swap past the fee; everything swaps
	swap, liquidity, err := keeper.ComputeZapSplit(math.NewInt(1000), math.NewInt(100), 9999)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), swap)
	require.True(t, liquidity.IsZero())
}

func TestComputeZapSplitLargeReserve(t *testing.T) {
	// deep reserves make the break-even swap roughly half the fee
	swap, liquidity, err := keeper.ComputeZapSplit(math.NewInt(1000), math.NewInt(100_000_000), 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(499), swap)
	require.Equal(t, math.NewInt(501), liquidity)
}

func TestComputeZapSplitErrors(t *testing.T) {
	_, _, err := keeper.ComputeZapSplit(math.ZeroInt(), math.NewInt(100), 500)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, _, err = keeper.ComputeZapSplit(math.NewInt(1000), math.ZeroInt(), 500)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, _, err = keeper.ComputeZapSplit(math.NewInt(1000), math.NewInt(100), 10_000)
	require.ErrorIs(t, err, types.ErrParamOutOfRange)
}

func TestComputeZapSplitProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fee := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "fee"))
		reserve := math.NewInt(rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "reserve"))
		surplus := uint32(rapid.Int32Range(0, 9999).Draw(t, "surplus"))

		swap, liquidity, err := keeper.ComputeZapSplit(fee, reserve, surplus)
		require.NoError(t, err)

		// the split always partitions the fee exactly
		require.Equal(t, fee, swap.Add(liquidity))
		require.False(t, swap.IsNegative())
		require.False(t, liquidity.IsNegative())
		require.True(t, swap.LTE(fee))
	})
}
