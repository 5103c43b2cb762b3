package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "campaign"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

const (
	// WeightScale is the contribution-weight denominator in basis points.
	WeightScale = 10_000

	// RankWeightBase is the numerator of the rank decay curve. A rank-1
	// depositor at full contribution scores exactly this value.
	RankWeightBase = 100_000_000
)

// CoreConfig is the engine's single configuration record. It is written
// once at initialization; only SurplusBps and Gamma may change afterwards,
// through admin-gated setters.
type CoreConfig struct {
	Admin       string `json:"admin"`
	RewardDenom string `json:"reward_denom"`
	StableDenom string `json:"stable_denom"`
	// SeedPoolId is the stable/reward pool every campaign's own zap runs
	// against.
	SeedPoolId uint64 `json:"seed_pool_id"`
	SurplusBps uint32 `json:"surplus_bps"`
	Gamma      uint32 `json:"gamma"`
}

func (c *CoreConfig) Reset()         { *c = CoreConfig{} }
func (c *CoreConfig) String() string { return fmt.Sprintf("CoreConfig{pool %d}", c.SeedPoolId) }
func (*CoreConfig) ProtoMessage()    {}

// Validate checks the internal consistency of the configuration record.
func (c CoreConfig) Validate() error {
	if c.Admin == "" {
		return fmt.Errorf("admin cannot be empty")
	}
	if c.RewardDenom == "" || c.StableDenom == "" {
		return fmt.Errorf("asset denoms cannot be empty")
	}
	if c.RewardDenom == c.StableDenom {
		return fmt.Errorf("reward and stable denoms must be different")
	}
	if c.SeedPoolId == 0 {
		return fmt.Errorf("seed pool id cannot be zero")
	}
	if c.SurplusBps >= WeightScale {
		return fmt.Errorf("surplus_bps must be below %d: %d", WeightScale, c.SurplusBps)
	}
	if c.Gamma == 0 {
		return fmt.Errorf("gamma must be positive")
	}
	return nil
}

// Campaign is one liquidity-mining campaign on a pool.
//
// TotalLiquidity and TotalWeight track the sums over all positions not
// yet claimed; claims decrement them together with RewardPool and
// BonusPool, so every claim pays against the remaining budget and the
// remaining weight.
type Campaign struct {
	Id         uint32 `json:"id"`
	PoolId     uint64 `json:"pool_id"`
	Duration   uint32 `json:"duration"`
	EndHeight  uint32 `json:"end_height"`
	Creator    string `json:"creator"`

	TargetLiquidity math.Int `json:"target_liquidity"`
	TotalLiquidity  math.Int `json:"total_liquidity"`
	TotalWeight     math.Int `json:"total_weight"`
	RewardPool      math.Int `json:"reward_pool"`
	BonusPool       math.Int `json:"bonus_pool"`
	// StakedLiquidity is the LP units the engine currently holds for this
	// campaign; the harvester compares it against a fresh mint to detect
	// accrued trading fees.
	StakedLiquidity math.Int `json:"staked_liquidity"`

	// Settled flips on the first claim; BonusEligible freezes the
	// target-reached check at that moment so later claimants see the
	// same verdict.
	Settled       bool `json:"settled"`
	BonusEligible bool `json:"bonus_eligible"`
}

func (c *Campaign) Reset()         { *c = Campaign{} }
func (c *Campaign) String() string { return fmt.Sprintf("Campaign{%d pool %d}", c.Id, c.PoolId) }
func (*Campaign) ProtoMessage()    {}

// Validate checks the internal consistency of a campaign record.
func (c Campaign) Validate() error {
	if c.Id == 0 {
		return fmt.Errorf("campaign id cannot be zero")
	}
	if c.PoolId == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	if c.Duration == 0 {
		return fmt.Errorf("duration must be positive")
	}
	for name, amount := range map[string]math.Int{
		"target_liquidity": c.TargetLiquidity,
		"total_liquidity":  c.TotalLiquidity,
		"total_weight":     c.TotalWeight,
		"reward_pool":      c.RewardPool,
		"bonus_pool":       c.BonusPool,
		"staked_liquidity": c.StakedLiquidity,
	} {
		if amount.IsNil() {
			return fmt.Errorf("%s cannot be nil", name)
		}
		if amount.IsNegative() {
			return fmt.Errorf("%s cannot be negative: %s", name, amount)
		}
	}
	return nil
}

// UserPosition is one depositor's stake in a campaign. Created on join,
// never mutated, deleted on claim.
type UserPosition struct {
	Liquidity    math.Int `json:"liquidity"`
	Weight       math.Int `json:"weight"`
	JoinedHeight uint32   `json:"joined_height"`
	// Rank is the 1-based join order within the campaign.
	Rank uint64 `json:"rank"`
}

func (p *UserPosition) Reset()         { *p = UserPosition{} }
func (p *UserPosition) String() string { return fmt.Sprintf("UserPosition{rank %d}", p.Rank) }
func (*UserPosition) ProtoMessage()    {}

// Validate checks the internal consistency of a position record.
func (p UserPosition) Validate() error {
	if p.Rank == 0 {
		return fmt.Errorf("rank cannot be zero")
	}
	if p.Liquidity.IsNil() || !p.Liquidity.IsPositive() {
		return fmt.Errorf("liquidity must be positive")
	}
	if p.Weight.IsNil() || p.Weight.IsNegative() {
		return fmt.Errorf("weight cannot be negative")
	}
	return nil
}

// ActiveCampaignMarker blocks a second campaign on a pool while one is
// still unexpired.
type ActiveCampaignMarker struct {
	CampaignId uint32 `json:"campaign_id"`
	EndHeight  uint32 `json:"end_height"`
}

func (m *ActiveCampaignMarker) Reset() { *m = ActiveCampaignMarker{} }
func (m *ActiveCampaignMarker) String() string {
	return fmt.Sprintf("ActiveCampaignMarker{%d until %d}", m.CampaignId, m.EndHeight)
}
func (*ActiveCampaignMarker) ProtoMessage() {}

// Expired reports whether the marker no longer blocks new campaigns at
// the given height.
func (m ActiveCampaignMarker) Expired(height uint32) bool {
	return height >= m.EndHeight
}
