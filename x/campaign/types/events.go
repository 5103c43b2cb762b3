package types

// Event types emitted by the campaign module
const (
	EventTypeConfigInitialized = "campaign_config_initialized"
	EventTypeCampaignCreated   = "campaign_created"
	EventTypeCampaignJoined    = "campaign_joined"
	EventTypeCompounded        = "campaign_compounded"
	EventTypeClaimed           = "campaign_claimed"
	EventTypeSurplusBpsSet     = "campaign_surplus_bps_set"
	EventTypeGammaSet          = "campaign_gamma_set"
)

// Event attribute keys
const (
	AttributeKeyCampaignID    = "campaign_id"
	AttributeKeyPoolID        = "pool_id"
	AttributeKeyCreator       = "creator"
	AttributeKeyDepositor     = "depositor"
	AttributeKeyCaller        = "caller"
	AttributeKeyAdmin         = "admin"
	AttributeKeyEndHeight     = "end_height"
	AttributeKeyRewardPool    = "reward_pool"
	AttributeKeyBonusPool     = "bonus_pool"
	AttributeKeyLiquidity     = "liquidity"
	AttributeKeyWeight        = "weight"
	AttributeKeyRank          = "rank"
	AttributeKeyReward        = "reward"
	AttributeKeyBonus         = "bonus"
	AttributeKeyFeeLiquidity  = "fee_liquidity"
	AttributeKeyHarvested     = "harvested"
	AttributeKeySurplusBps    = "surplus_bps"
	AttributeKeyGamma         = "gamma"
	AttributeKeySeedPoolID    = "seed_pool_id"
	AttributeKeyTreasurySwept = "treasury_swept"
)
