package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func validCampaign(id uint32) Campaign {
	return Campaign{
		Id:              id,
		PoolId:          2,
		Duration:        50,
		EndHeight:       150,
		Creator:         testSigner,
		TargetLiquidity: math.NewInt(5000),
		TotalLiquidity:  math.ZeroInt(),
		TotalWeight:     math.ZeroInt(),
		RewardPool:      math.NewInt(1000),
		BonusPool:       math.ZeroInt(),
		StakedLiquidity: math.ZeroInt(),
	}
}

func TestDefaultGenesis(t *testing.T) {
	gs := DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Nil(t, gs.Config)
	require.Equal(t, uint32(1), gs.NextCampaignId)
}

func TestGenesisValidate(t *testing.T) {
	gs := GenesisState{
		Config: &CoreConfig{
			Admin:       testSigner,
			RewardDenom: "uflash",
			StableDenom: "uusdc",
			SeedPoolId:  1,
			SurplusBps:  500,
			Gamma:       2,
		},
		Campaigns: []GenesisCampaign{
			{Campaign: validCampaign(1), JoinCount: 2},
			{Campaign: validCampaign(2)},
		},
		Positions: []GenesisPosition{
			{CampaignId: 1, Depositor: testSigner, Position: UserPosition{
				Liquidity: math.NewInt(4975), Weight: math.NewInt(99_500_000), JoinedHeight: 100, Rank: 1,
			}},
		},
		Markers: []GenesisMarker{
			{PoolId: 2, Marker: ActiveCampaignMarker{CampaignId: 2, EndHeight: 150}},
		},
		NextCampaignId: 3,
	}
	require.NoError(t, gs.Validate())
}

func TestGenesisValidateRejects(t *testing.T) {
	base := func() GenesisState {
		return GenesisState{
			Campaigns:      []GenesisCampaign{{Campaign: validCampaign(1)}},
			Markers:        []GenesisMarker{},
			NextCampaignId: 2,
		}
	}

	tests := []struct {
		name   string
		mutate func(gs *GenesisState)
	}{
		{"zero next id", func(gs *GenesisState) { gs.NextCampaignId = 0 }},
		{"duplicate campaign", func(gs *GenesisState) {
			gs.Campaigns = append(gs.Campaigns, GenesisCampaign{Campaign: validCampaign(1)})
		}},
		{"id not below next", func(gs *GenesisState) {
			gs.Campaigns = append(gs.Campaigns, GenesisCampaign{Campaign: validCampaign(2)})
		}},
		{"nil amount", func(gs *GenesisState) {
			gs.Campaigns[0].Campaign.RewardPool = math.Int{}
		}},
		{"negative pool", func(gs *GenesisState) {
			gs.Campaigns[0].Campaign.BonusPool = math.NewInt(-1)
		}},
		{"position dangling campaign", func(gs *GenesisState) {
			gs.Positions = append(gs.Positions, GenesisPosition{
				CampaignId: 9, Depositor: testSigner,
				Position: UserPosition{Liquidity: math.NewInt(1), Weight: math.ZeroInt(), Rank: 1},
			})
		}},
		{"position zero rank", func(gs *GenesisState) {
			gs.Positions = append(gs.Positions, GenesisPosition{
				CampaignId: 1, Depositor: testSigner,
				Position: UserPosition{Liquidity: math.NewInt(1), Weight: math.ZeroInt()},
			})
		}},
		{"duplicate position", func(gs *GenesisState) {
			pos := GenesisPosition{
				CampaignId: 1, Depositor: testSigner,
				Position: UserPosition{Liquidity: math.NewInt(1), Weight: math.ZeroInt(), Rank: 1},
			}
			gs.Positions = append(gs.Positions, pos, pos)
		}},
		{"marker zero pool", func(gs *GenesisState) {
			gs.Markers = append(gs.Markers, GenesisMarker{PoolId: 0, Marker: ActiveCampaignMarker{CampaignId: 1}})
		}},
		{"marker dangling campaign", func(gs *GenesisState) {
			gs.Markers = append(gs.Markers, GenesisMarker{PoolId: 2, Marker: ActiveCampaignMarker{CampaignId: 9}})
		}},
		{"bad config", func(gs *GenesisState) {
			gs.Config = &CoreConfig{}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := base()
			tc.mutate(&gs)
			require.Error(t, gs.Validate())
		})
	}
}
