package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// InitGenesis initializes the campaign module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if genState.Config != nil {
		if err := k.SetCoreConfig(ctx, *genState.Config); err != nil {
			return fmt.Errorf("init campaign genesis: %w", err)
		}
	}
	for _, gc := range genState.Campaigns {
		campaign := gc.Campaign
		if err := k.SetCampaign(ctx, &campaign); err != nil {
			return fmt.Errorf("init campaign genesis: campaign %d: %w", campaign.Id, err)
		}
		if gc.JoinCount > 0 {
			k.SetJoinCount(ctx, campaign.Id, gc.JoinCount)
		}
	}
	for _, gp := range genState.Positions {
		depositor, err := sdk.AccAddressFromBech32(gp.Depositor)
		if err != nil {
			return fmt.Errorf("init campaign genesis: depositor %q: %w", gp.Depositor, err)
		}
		pos := gp.Position
		if err := k.SetPosition(ctx, gp.CampaignId, depositor, &pos); err != nil {
			return fmt.Errorf("init campaign genesis: position in campaign %d: %w", gp.CampaignId, err)
		}
	}
	for _, gm := range genState.Markers {
		if err := k.SetMarker(ctx, gm.PoolId, gm.Marker); err != nil {
			return fmt.Errorf("init campaign genesis: marker for pool %d: %w", gm.PoolId, err)
		}
	}
	k.SetNextCampaignID(ctx, genState.NextCampaignId)
	return nil
}

// ExportGenesis returns the campaign module state as a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := types.DefaultGenesis()

	if k.HasCoreConfig(ctx) {
		cfg, err := k.GetCoreConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("export campaign genesis: %w", err)
		}
		genState.Config = &cfg
	}

	var posErr error
	err := k.IterateCampaigns(ctx, func(campaign types.Campaign) bool {
		genState.Campaigns = append(genState.Campaigns, types.GenesisCampaign{
			Campaign:  campaign,
			JoinCount: k.GetJoinCount(ctx, campaign.Id),
		})
		if campaign.Id >= genState.NextCampaignId {
			genState.NextCampaignId = campaign.Id + 1
		}
		posErr = k.IteratePositions(ctx, campaign.Id, func(depositor sdk.AccAddress, pos types.UserPosition) bool {
			genState.Positions = append(genState.Positions, types.GenesisPosition{
				CampaignId: campaign.Id,
				Depositor:  depositor.String(),
				Position:   pos,
			})
			return false
		})
		return posErr != nil
	})
	if err != nil {
		return nil, fmt.Errorf("export campaign genesis: %w", err)
	}
	if posErr != nil {
		return nil, fmt.Errorf("export campaign genesis: %w", posErr)
	}

	err = k.IterateMarkers(ctx, func(poolID uint64, marker types.ActiveCampaignMarker) bool {
		genState.Markers = append(genState.Markers, types.GenesisMarker{
			PoolId: poolID,
			Marker: marker,
		})
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("export campaign genesis: %w", err)
	}

	return genState, nil
}
