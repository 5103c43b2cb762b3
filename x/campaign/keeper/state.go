package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// GetCoreConfig returns the engine configuration, or ErrMissingConfig if
// InitCoreConfig has not run.
func (k Keeper) GetCoreConfig(ctx context.Context) (types.CoreConfig, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.CoreConfigKey)
	if bz == nil {
		return types.CoreConfig{}, types.ErrMissingConfig
	}
	var cfg types.CoreConfig
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.CoreConfig{}, fmt.Errorf("unmarshal core config: %w", err)
	}
	return cfg, nil
}

// SetCoreConfig validates and stores the engine configuration.
func (k Keeper) SetCoreConfig(ctx context.Context, cfg types.CoreConfig) error {
	if err := cfg.Validate(); err != nil {
		return types.ErrParamOutOfRange.Wrapf("invalid core config: %v", err)
	}
	bz, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal core config: %w", err)
	}
	k.getStore(ctx).Set(types.CoreConfigKey, bz)
	return nil
}

// HasCoreConfig reports whether the configuration record exists.
func (k Keeper) HasCoreConfig(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.CoreConfigKey)
}

// GetNextCampaignID returns the next campaign id and increments the
// counter. Ids start at 1.
func (k Keeper) GetNextCampaignID(ctx context.Context) uint32 {
	store := k.getStore(ctx)
	bz := store.Get(types.NextCampaignIDKey)

	var id uint32
	if bz == nil {
		id = 1
	} else {
		id = binary.BigEndian.Uint32(bz)
	}

	nextBz := make([]byte, 4)
	binary.BigEndian.PutUint32(nextBz, id+1)
	store.Set(types.NextCampaignIDKey, nextBz)

	return id
}

// SetNextCampaignID sets the campaign id counter.
func (k Keeper) SetNextCampaignID(ctx context.Context, id uint32) {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	k.getStore(ctx).Set(types.NextCampaignIDKey, bz)
}

// GetCampaign retrieves a campaign by id.
func (k Keeper) GetCampaign(ctx context.Context, campaignID uint32) (*types.Campaign, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.CampaignKey(campaignID))
	if bz == nil {
		return nil, types.ErrCampaignNotFound.Wrapf("campaign %d not found", campaignID)
	}
	var campaign types.Campaign
	if err := json.Unmarshal(bz, &campaign); err != nil {
		return nil, fmt.Errorf("unmarshal campaign %d: %w", campaignID, err)
	}
	return &campaign, nil
}

// SetCampaign saves a campaign record.
func (k Keeper) SetCampaign(ctx context.Context, campaign *types.Campaign) error {
	bz, err := json.Marshal(campaign)
	if err != nil {
		return fmt.Errorf("marshal campaign %d: %w", campaign.Id, err)
	}
	k.getStore(ctx).Set(types.CampaignKey(campaign.Id), bz)
	return nil
}

// IterateCampaigns walks all campaign records.
func (k Keeper) IterateCampaigns(ctx context.Context, cb func(campaign types.Campaign) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.CampaignKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var campaign types.Campaign
		if err := json.Unmarshal(iterator.Value(), &campaign); err != nil {
			return fmt.Errorf("unmarshal campaign: %w", err)
		}
		if cb(campaign) {
			break
		}
	}
	return nil
}

// GetPosition retrieves a depositor's position in a campaign, or nil if
// none exists.
func (k Keeper) GetPosition(ctx context.Context, campaignID uint32, depositor sdk.AccAddress) (*types.UserPosition, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PositionKey(campaignID, depositor))
	if bz == nil {
		return nil, nil
	}
	var pos types.UserPosition
	if err := json.Unmarshal(bz, &pos); err != nil {
		return nil, fmt.Errorf("unmarshal position: %w", err)
	}
	return &pos, nil
}

// SetPosition saves a depositor's position in a campaign.
func (k Keeper) SetPosition(ctx context.Context, campaignID uint32, depositor sdk.AccAddress, pos *types.UserPosition) error {
	bz, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("marshal position: %w", err)
	}
	k.getStore(ctx).Set(types.PositionKey(campaignID, depositor), bz)
	return nil
}

// DeletePosition removes a depositor's position. Deletion is what makes
// a claim exactly-once.
func (k Keeper) DeletePosition(ctx context.Context, campaignID uint32, depositor sdk.AccAddress) {
	k.getStore(ctx).Delete(types.PositionKey(campaignID, depositor))
}

// IteratePositions walks all positions of a campaign.
func (k Keeper) IteratePositions(ctx context.Context, campaignID uint32, cb func(depositor sdk.AccAddress, pos types.UserPosition) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := types.PositionKeyByCampaignPrefix(campaignID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		depositor := sdk.AccAddress(iterator.Key()[len(prefix):])
		var pos types.UserPosition
		if err := json.Unmarshal(iterator.Value(), &pos); err != nil {
			return fmt.Errorf("unmarshal position: %w", err)
		}
		if cb(depositor, pos) {
			break
		}
	}
	return nil
}

// GetMarker retrieves a pool's active-campaign marker, or nil if none.
func (k Keeper) GetMarker(ctx context.Context, poolID uint64) (*types.ActiveCampaignMarker, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.MarkerKey(poolID))
	if bz == nil {
		return nil, nil
	}
	var marker types.ActiveCampaignMarker
	if err := json.Unmarshal(bz, &marker); err != nil {
		return nil, fmt.Errorf("unmarshal marker for pool %d: %w", poolID, err)
	}
	return &marker, nil
}

// SetMarker records which campaign currently blocks a pool.
func (k Keeper) SetMarker(ctx context.Context, poolID uint64, marker types.ActiveCampaignMarker) error {
	bz, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("marshal marker for pool %d: %w", poolID, err)
	}
	k.getStore(ctx).Set(types.MarkerKey(poolID), bz)
	return nil
}

// IterateMarkers walks all active-campaign markers.
func (k Keeper) IterateMarkers(ctx context.Context, cb func(poolID uint64, marker types.ActiveCampaignMarker) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.MarkerKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		poolID := binary.BigEndian.Uint64(iterator.Key()[len(types.MarkerKeyPrefix):])
		var marker types.ActiveCampaignMarker
		if err := json.Unmarshal(iterator.Value(), &marker); err != nil {
			return fmt.Errorf("unmarshal marker: %w", err)
		}
		if cb(poolID, marker) {
			break
		}
	}
	return nil
}

// NextRank increments and returns a campaign's join counter. Ranks are
// 1-based and gapless because calls are serialized by the chain.
func (k Keeper) NextRank(ctx context.Context, campaignID uint32) uint64 {
	store := k.getStore(ctx)
	key := types.JoinCountKey(campaignID)

	var count uint64
	if bz := store.Get(key); bz != nil {
		count = binary.BigEndian.Uint64(bz)
	}
	count++

	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(key, bz)

	return count
}

// GetJoinCount returns a campaign's join counter without incrementing.
func (k Keeper) GetJoinCount(ctx context.Context, campaignID uint32) uint64 {
	bz := k.getStore(ctx).Get(types.JoinCountKey(campaignID))
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetJoinCount sets a campaign's join counter (genesis import).
func (k Keeper) SetJoinCount(ctx context.Context, campaignID uint32, count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.getStore(ctx).Set(types.JoinCountKey(campaignID), bz)
}
