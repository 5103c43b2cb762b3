package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
	"github.com/flash-chain/flash/x/dex/keeper"
	"github.com/flash-chain/flash/x/dex/types"
)

func setupPool(t *testing.T) (keeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context, uint64) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	creator := testAddr("creator")
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
		sdk.NewCoin("uflash", math.NewInt(1_000_000)),
	))
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uflash", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	return k, bank, ctx, pool.Id
}

func TestDepositProportional(t *testing.T) {
	k, bank, ctx, poolID := setupPool(t)

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(100_000)),
		sdk.NewCoin("uflash", math.NewInt(100_000)),
	))

	shares, err := k.Deposit(ctx, provider, poolID, math.NewInt(100_000), math.NewInt(100_000))
	require.NoError(t, err)
	// exactly proportional to the 1:1 pool
	require.Equal(t, math.NewInt(100_000), shares)
	require.Equal(t, math.NewInt(100_000), k.GetShares(ctx, poolID, provider))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), pool.TotalShares)
}

func TestDepositLopsided(t *testing.T) {
	k, bank, ctx, poolID := setupPool(t)

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(200_000)),
		sdk.NewCoin("uflash", math.NewInt(100_000)),
	))

	// the smaller side bounds the mint; the excess uusdc is donated
	shares, err := k.Deposit(ctx, provider, poolID, math.NewInt(100_000), math.NewInt(200_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), shares)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_200_000), pool.ReserveB)
}

func TestWithdrawProportional(t *testing.T) {
	k, bank, ctx, poolID := setupPool(t)
	creator := testAddr("creator")

	amountA, amountB, err := k.Withdraw(ctx, creator, poolID, math.NewInt(250_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(250_000), amountA)
	require.Equal(t, math.NewInt(250_000), amountB)

	require.Equal(t, math.NewInt(750_000), k.GetShares(ctx, poolID, creator))
	require.Equal(t, math.NewInt(250_000), bank.Balance(creator, "uusdc"))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(750_000), pool.TotalShares)
}

func TestWithdrawMoreThanHeld(t *testing.T) {
	k, _, ctx, poolID := setupPool(t)

	stranger := testAddr("stranger")
	_, _, err := k.Withdraw(ctx, stranger, poolID, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestTransferLP(t *testing.T) {
	k, _, ctx, poolID := setupPool(t)
	creator := testAddr("creator")
	receiver := testAddr("receiver")

	err := k.TransferLP(ctx, poolID, creator, receiver, math.NewInt(400_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600_000), k.GetShares(ctx, poolID, creator))
	require.Equal(t, math.NewInt(400_000), k.GetShares(ctx, poolID, receiver))

	err = k.TransferLP(ctx, poolID, receiver, creator, math.NewInt(500_000))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestDepositRoundTrip(t *testing.T) {
	k, bank, ctx, poolID := setupPool(t)

	provider := testAddr("provider")
	bank.FundAccount(provider, sdk.NewCoins(
		sdk.NewCoin("uusdc", math.NewInt(50_000)),
		sdk.NewCoin("uflash", math.NewInt(50_000)),
	))

	shares, err := k.Deposit(ctx, provider, poolID, math.NewInt(50_000), math.NewInt(50_000))
	require.NoError(t, err)

	amountA, amountB, err := k.Withdraw(ctx, provider, poolID, shares)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), amountA)
	require.Equal(t, math.NewInt(50_000), amountB)
	require.Equal(t, math.ZeroInt(), k.GetShares(ctx, poolID, provider))
}
