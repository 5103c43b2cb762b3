package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	campaignkeeper "github.com/flash-chain/flash/x/campaign/keeper"
	campaigntypes "github.com/flash-chain/flash/x/campaign/types"
	dexkeeper "github.com/flash-chain/flash/x/dex/keeper"
	dextypes "github.com/flash-chain/flash/x/dex/types"
)

// CampaignKeeper creates a test keeper for the campaign module wired to a
// real dex keeper over a shared in-memory multistore.
func CampaignKeeper(t testing.TB) (campaignkeeper.Keeper, dexkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	k, dexK, bank, ctx := campaignKeeperWithAMM(t, nil)
	return k, dexK, bank, ctx
}

// CampaignKeeperWithAMM creates a campaign test keeper backed by the given
// AMM instead of the real dex keeper, for exercising paths a real
// constant-product pool cannot reach.
func CampaignKeeperWithAMM(t testing.TB, amm campaigntypes.AMMKeeper) (campaignkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	k, _, bank, ctx := campaignKeeperWithAMM(t, amm)
	return k, bank, ctx
}

func campaignKeeperWithAMM(t testing.TB, amm campaigntypes.AMMKeeper) (campaignkeeper.Keeper, dexkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	dexStoreKey := storetypes.NewKVStoreKey(dextypes.StoreKey)
	campaignStoreKey := storetypes.NewKVStoreKey(campaigntypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(dexStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(campaignStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	authority := authtypes.NewModuleAddress("gov").String()

	dexK := dexkeeper.NewKeeper(dexStoreKey, bank, authority)

	if amm == nil {
		amm = dexK
	}
	campaignK := campaignkeeper.NewKeeper(campaignStoreKey, bank, amm, authority)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, dexK.InitGenesis(ctx, *dextypes.DefaultGenesis()))
	require.NoError(t, campaignK.InitGenesis(ctx, *campaigntypes.DefaultGenesis()))

	return campaignK, dexK, bank, ctx
}
