package types

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// CampaignKeyPrefix is the prefix for campaign records
	CampaignKeyPrefix = []byte{0x01}

	// PositionKeyPrefix is the prefix for user position records
	PositionKeyPrefix = []byte{0x02}

	// MarkerKeyPrefix is the prefix for active-campaign markers, keyed
	// by pool
	MarkerKeyPrefix = []byte{0x03}

	// JoinCountKeyPrefix is the prefix for per-campaign join counters
	JoinCountKeyPrefix = []byte{0x04}

	// NextCampaignIDKey is the key for the campaign id counter
	NextCampaignIDKey = []byte{0x05}

	// CoreConfigKey is the key for the single configuration record
	CoreConfigKey = []byte{0x06}
)

func campaignIDBytes(campaignID uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, campaignID)
	return bz
}

// CampaignKey returns the store key for a campaign by ID
func CampaignKey(campaignID uint32) []byte {
	return append(CampaignKeyPrefix, campaignIDBytes(campaignID)...)
}

// PositionKey returns the store key for a depositor's position in a campaign
func PositionKey(campaignID uint32, depositor sdk.AccAddress) []byte {
	key := append(PositionKeyPrefix, campaignIDBytes(campaignID)...)
	return append(key, depositor.Bytes()...)
}

// PositionKeyByCampaignPrefix returns the prefix for all positions in a campaign
func PositionKeyByCampaignPrefix(campaignID uint32) []byte {
	return append(PositionKeyPrefix, campaignIDBytes(campaignID)...)
}

// MarkerKey returns the store key for a pool's active-campaign marker
func MarkerKey(poolID uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	return append(MarkerKeyPrefix, bz...)
}

// JoinCountKey returns the store key for a campaign's join counter
func JoinCountKey(campaignID uint32) []byte {
	return append(JoinCountKeyPrefix, campaignIDBytes(campaignID)...)
}
