package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/flash-chain/flash/x/campaign/keeper"
	"github.com/flash-chain/flash/x/campaign/types"
)

func TestComputeEmissionCap(t *testing.T) {
	// root = sqrt(400 * 25000 * 100000 / 100) = sqrt(1e10) = 100000
	// x_max = 100000 - 25000 = 75000
	cap, err := keeper.ComputeEmissionCap(
		math.NewInt(100), math.NewInt(100_000),
		math.NewInt(400), math.NewInt(25_000),
		math.NewInt(80_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(75_000), cap)

	// surplus below the bound passes through unchanged
	cap, err = keeper.ComputeEmissionCap(
		math.NewInt(100), math.NewInt(100_000),
		math.NewInt(400), math.NewInt(25_000),
		math.NewInt(50_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), cap)
}

func TestComputeEmissionCapZeroBudget(t *testing.T) {
	// unchanged reserves leave no room: root == rf1, x_max == 0
	cap, err := keeper.ComputeEmissionCap(
		math.NewInt(100), math.NewInt(100),
		math.NewInt(100), math.NewInt(100),
		math.NewInt(1_000_000))
	require.NoError(t, err)
	require.True(t, cap.IsZero())
}

func TestComputeEmissionCapEmptyPool(t *testing.T) {
	_, err := keeper.ComputeEmissionCap(
		math.ZeroInt(), math.NewInt(100),
		math.NewInt(100), math.NewInt(100),
		math.NewInt(100))
	require.ErrorIs(t, err, types.ErrArithmetic)
}

func TestComputeEmissionCapNegativeInput(t *testing.T) {
	_, err := keeper.ComputeEmissionCap(
		math.NewInt(100), math.NewInt(-1),
		math.NewInt(100), math.NewInt(100),
		math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestComputeEmissionCapProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ru0 := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(t, "ru0"))
		rf0 := math.NewInt(rapid.Int64Range(0, 1_000_000_000).Draw(t, "rf0"))
		ru1 := math.NewInt(rapid.Int64Range(0, 1_000_000_000).Draw(t, "ru1"))
		rf1 := math.NewInt(rapid.Int64Range(0, 1_000_000_000).Draw(t, "rf1"))
		surplus := math.NewInt(rapid.Int64Range(0, 1_000_000_000).Draw(t, "surplus"))

		cap, err := keeper.ComputeEmissionCap(ru0, rf0, ru1, rf1, surplus)
		require.NoError(t, err)

		// the cap never exceeds either bound
		require.True(t, cap.LTE(surplus))
		require.False(t, cap.IsNegative())

		// recompute x_max directly and confirm the clamp
		product := ru1.Mul(rf1).Mul(rf0).Quo(ru0)
		root := math.NewIntFromBigInt(product.BigInt().Sqrt(product.BigInt()))
		xMax := math.MaxInt(root.Sub(rf1), math.ZeroInt())
		require.True(t, cap.LTE(xMax))
	})
}
