package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(4_000_000)),
	))
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Pools, 1)
	require.Len(t, exported.Shares, 1)
	require.Equal(t, pool.Id, exported.Shares[0].PoolId)
	require.Equal(t, creator.String(), exported.Shares[0].Provider)
	require.Equal(t, math.NewInt(2_000_000), exported.Shares[0].Shares)
	require.Equal(t, pool.Id+1, exported.NextPoolId)

	k2, _, ctx2 := testkeeper.DexKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	restored, err := k2.GetPool(ctx2, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool.ReserveA, restored.ReserveA)
	require.Equal(t, pool.ReserveB, restored.ReserveB)
	require.Equal(t, pool.TotalShares, restored.TotalShares)
	require.Equal(t, math.NewInt(2_000_000), k2.GetShares(ctx2, pool.Id, creator))

	byTokens, err := k2.GetPoolByTokens(ctx2, "uusdc", "uflash")
	require.NoError(t, err)
	require.Equal(t, pool.Id, byTokens.Id)
}
