package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/flash-chain/flash/testutil/keeper"
)

func TestGenesisRoundTripMidCampaign(t *testing.T) {
	f := setupEngine(t)
	ctx := f.ctx.WithBlockHeight(100)

	sponsor := testAddr("sponsor")
	alice := testAddr("alice")
	f.bank.FundAccount(sponsor, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1000))))
	f.bank.FundAccount(alice, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(10_000))))

	campaign, err := f.k.CreateCampaign(ctx, sponsor, math.NewInt(1000), f.poolID, 50, math.NewInt(5000), math.NewInt(10_000))
	require.NoError(t, err)
	pos, err := f.k.JoinCampaign(ctx, alice, campaign.Id, math.NewInt(10_000))
	require.NoError(t, err)

	exported, err := f.k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.NotNil(t, exported.Config)
	require.Len(t, exported.Campaigns, 1)
	require.Equal(t, uint64(1), exported.Campaigns[0].JoinCount)
	require.Len(t, exported.Positions, 1)
	require.Equal(t, alice.String(), exported.Positions[0].Depositor)
	require.Len(t, exported.Markers, 1)
	require.Equal(t, uint32(2), exported.NextCampaignId)

	k2, _, _, ctx2 := testkeeper.CampaignKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	restored, err := k2.GetCampaign(ctx2, campaign.Id)
	require.NoError(t, err)
	require.Equal(t, campaign.RewardPool, restored.RewardPool)
	require.Equal(t, pos.Liquidity, restored.TotalLiquidity)

	restoredPos, err := k2.GetPosition(ctx2, campaign.Id, alice)
	require.NoError(t, err)
	require.NotNil(t, restoredPos)
	require.Equal(t, pos.Weight, restoredPos.Weight)
	require.Equal(t, pos.Rank, restoredPos.Rank)

	// the join counter survives, so the next rank continues the sequence
	require.Equal(t, uint64(2), k2.NextRank(ctx2, campaign.Id))

	marker, err := k2.GetMarker(ctx2, f.poolID)
	require.NoError(t, err)
	require.NotNil(t, marker)
	require.Equal(t, campaign.EndHeight, marker.EndHeight)
}
