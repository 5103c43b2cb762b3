package types

import (
	"fmt"
)

// GenesisCampaign pairs a campaign record with its join counter for
// genesis import/export.
type GenesisCampaign struct {
	Campaign  Campaign `json:"campaign"`
	JoinCount uint64   `json:"join_count"`
}

// GenesisMarker pairs an active-campaign marker with the pool it is
// keyed by.
type GenesisMarker struct {
	PoolId uint64               `json:"pool_id"`
	Marker ActiveCampaignMarker `json:"marker"`
}

// GenesisPosition pairs a depositor's position with the campaign it
// belongs to.
type GenesisPosition struct {
	CampaignId uint32       `json:"campaign_id"`
	Depositor  string       `json:"depositor"`
	Position   UserPosition `json:"position"`
}

// GenesisState is the campaign module's genesis state.
type GenesisState struct {
	// Config is nil until InitCoreConfig has run.
	Config         *CoreConfig       `json:"config,omitempty"`
	Campaigns      []GenesisCampaign `json:"campaigns"`
	Positions      []GenesisPosition `json:"positions"`
	Markers        []GenesisMarker   `json:"markers"`
	NextCampaignId uint32            `json:"next_campaign_id"`
}

func (gs *GenesisState) Reset() { *gs = GenesisState{} }
func (gs *GenesisState) String() string {
	return fmt.Sprintf("GenesisState{%d campaigns}", len(gs.Campaigns))
}
func (*GenesisState) ProtoMessage() {}

// DefaultGenesis returns the default genesis state for the campaign module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Campaigns:      []GenesisCampaign{},
		Positions:      []GenesisPosition{},
		Markers:        []GenesisMarker{},
		NextCampaignId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return fmt.Errorf("invalid core config: %w", err)
		}
	}
	if gs.NextCampaignId == 0 {
		return fmt.Errorf("next campaign id must be positive")
	}

	seen := make(map[uint32]struct{}, len(gs.Campaigns))
	for _, gc := range gs.Campaigns {
		if err := gc.Campaign.Validate(); err != nil {
			return fmt.Errorf("invalid campaign %d: %w", gc.Campaign.Id, err)
		}
		if _, ok := seen[gc.Campaign.Id]; ok {
			return fmt.Errorf("duplicate campaign id %d", gc.Campaign.Id)
		}
		if gc.Campaign.Id >= gs.NextCampaignId {
			return fmt.Errorf("campaign id %d not below next campaign id %d",
				gc.Campaign.Id, gs.NextCampaignId)
		}
		seen[gc.Campaign.Id] = struct{}{}
	}

	type positionKey struct {
		campaignID uint32
		depositor  string
	}
	staked := make(map[positionKey]struct{}, len(gs.Positions))
	for _, gp := range gs.Positions {
		if _, ok := seen[gp.CampaignId]; !ok {
			return fmt.Errorf("position references unknown campaign %d", gp.CampaignId)
		}
		if gp.Depositor == "" {
			return fmt.Errorf("position depositor cannot be empty")
		}
		if err := gp.Position.Validate(); err != nil {
			return fmt.Errorf("invalid position in campaign %d: %w", gp.CampaignId, err)
		}
		key := positionKey{gp.CampaignId, gp.Depositor}
		if _, ok := staked[key]; ok {
			return fmt.Errorf("duplicate position for %s in campaign %d", gp.Depositor, gp.CampaignId)
		}
		staked[key] = struct{}{}
	}

	pools := make(map[uint64]struct{}, len(gs.Markers))
	for _, gm := range gs.Markers {
		if gm.PoolId == 0 {
			return fmt.Errorf("marker pool id cannot be zero")
		}
		if _, ok := pools[gm.PoolId]; ok {
			return fmt.Errorf("duplicate marker for pool %d", gm.PoolId)
		}
		if _, ok := seen[gm.Marker.CampaignId]; !ok {
			return fmt.Errorf("marker references unknown campaign %d", gm.Marker.CampaignId)
		}
		pools[gm.PoolId] = struct{}{}
	}
	return nil
}
