package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
	"github.com/flash-chain/flash/x/dex/types"
)

func testAddr(seed string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, seed)
	return sdk.AccAddress(bz)
}

func TestCreatePool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(4_000_000)),
	))

	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(4_000_000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)

	// tokens reordered lexicographically, amounts follow
	require.Equal(t, "uflash", pool.TokenA)
	require.Equal(t, "uusdc", pool.TokenB)
	require.Equal(t, math.NewInt(4_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)

	// geometric mean: sqrt(4e6 * 1e6) = 2e6
	require.Equal(t, math.NewInt(2_000_000), pool.TotalShares)
	require.Equal(t, math.NewInt(2_000_000), k.GetShares(ctx, pool.Id, creator))

	// reserves moved into the module account
	require.Equal(t, math.ZeroInt(), bank.Balance(creator, "uusdc"))
	require.Equal(t, math.NewInt(1_000_000), bank.Balance(k.GetModuleAddress(), "uusdc"))
}

func TestCreatePoolDuplicatePair(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(2_000_000)),
		sdk.NewCoin("uflash", math.NewInt(2_000_000)),
	))

	_, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	// same pair in the opposite order is still a duplicate
	_, err = k.CreatePool(ctx, creator, "uflash", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestCreatePoolBelowMinLiquidity(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(10)),
		sdk.NewCoin("uflash", math.NewInt(10)),
	))

	// sqrt(10*10) = 10 < default min of 1000
	_, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCreatePoolValidation(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)
	creator := testAddr("creator")

	_, err := k.CreatePool(ctx, creator, "uusdc", "uusdc", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.CreatePool(ctx, creator, "uusdc", "uflash", math.ZeroInt(), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestGetPoolNotFound(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	_, err := k.GetPool(ctx, 42)
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetPoolByTokens(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(1_000_000)),
	))
	created, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	pool, err := k.GetPoolByTokens(ctx, "uusdc", "uflash")
	require.NoError(t, err)
	require.Equal(t, created.Id, pool.Id)

	pool, err = k.GetPoolByTokens(ctx, "uflash", "uusdc")
	require.NoError(t, err)
	require.Equal(t, created.Id, pool.Id)
}
