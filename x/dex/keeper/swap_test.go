package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
	"github.com/flash-chain/flash/x/dex/keeper"
	"github.com/flash-chain/flash/x/dex/types"
)

func TestCalculateSwapOutput(t *testing.T) {
	// out = in*(10000-30)*rOut / (rIn*10000 + in*(10000-30))
	out, err := keeper.CalculateSwapOutput(
		math.NewInt(1000), math.NewInt(1_000_000), math.NewInt(1_000_000), 30)
	require.NoError(t, err)
	// 1000*9970*1e6 / (1e6*10000 + 1000*9970) = 9.97e12 / 1.000997e10 = 996
	require.Equal(t, math.NewInt(996), out)
}

func TestCalculateSwapOutputErrors(t *testing.T) {
	_, err := keeper.CalculateSwapOutput(math.ZeroInt(), math.NewInt(100), math.NewInt(100), 30)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = keeper.CalculateSwapOutput(math.NewInt(10), math.ZeroInt(), math.NewInt(100), 30)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = keeper.CalculateSwapOutput(math.NewInt(10), math.NewInt(100), math.NewInt(100), 10_000)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// input too small to buy a single unit
	_, err = keeper.CalculateSwapOutput(math.NewInt(1), math.NewInt(1_000_000), math.NewInt(10), 30)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCalculateSwapOutputProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := math.NewInt(rapid.Int64Range(1, 1_000_000_000).Draw(t, "in"))
		rIn := math.NewInt(rapid.Int64Range(1000, 1_000_000_000_000).Draw(t, "rIn"))
		rOut := math.NewInt(rapid.Int64Range(1000, 1_000_000_000_000).Draw(t, "rOut"))

		out, err := keeper.CalculateSwapOutput(in, rIn, rOut, 30)
		if err != nil {
			return
		}
		require.True(t, out.IsPositive())
		require.True(t, out.LT(rOut), "output must never drain the reserve")

		// constant product never decreases across a fee-inclusive swap
		before := rIn.Mul(rOut)
		after := rIn.Add(in).Mul(rOut.Sub(out))
		require.True(t, after.GTE(before))
	})
}

func TestSwapExactIn(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(1_000_000)),
	))
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	trader := testAddr("trader")
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1000))))

	out, err := k.SwapExactIn(ctx, trader, pool.Id, "uusdc", math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(996), out)

	require.Equal(t, math.ZeroInt(), bank.Balance(trader, "uusdc"))
	require.Equal(t, math.NewInt(996), bank.Balance(trader, "uflash"))

	updated, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_001_000), updated.ReserveB) // uusdc side
	require.Equal(t, math.NewInt(999_004), updated.ReserveA)   // uflash side
}

func TestSwapExactInWrongDenom(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(1_000_000)),
	))
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	trader := testAddr("trader")
	_, err = k.SwapExactIn(ctx, trader, pool.Id, "uatom", math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestSimulateSwapLeavesStateUntouched(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(1_000_000)),
	))
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	out, err := k.SimulateSwap(ctx, pool.Id, "uusdc", math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(996), out)

	unchanged, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), unchanged.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), unchanged.ReserveB)
}
