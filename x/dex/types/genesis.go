package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisShares is one provider's LP balance in one pool.
type GenesisShares struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}

// GenesisState is the dex module's genesis state.
type GenesisState struct {
	Params     Params          `json:"params"`
	Pools      []Pool          `json:"pools"`
	Shares     []GenesisShares `json:"shares"`
	NextPoolId uint64          `json:"next_pool_id"`
}

func (gs *GenesisState) Reset()         { *gs = GenesisState{} }
func (gs *GenesisState) String() string { return fmt.Sprintf("GenesisState{%d pools}", len(gs.Pools)) }
func (*GenesisState) ProtoMessage()     {}

// DefaultGenesis returns the default genesis state for the dex module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Pools:      []Pool{},
		Shares:     []GenesisShares{},
		NextPoolId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid dex params: %w", err)
	}
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if _, ok := seen[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		seen[pool.Id] = struct{}{}
	}

	type shareKey struct {
		poolID   uint64
		provider string
	}
	held := make(map[shareKey]struct{}, len(gs.Shares))
	for _, s := range gs.Shares {
		if _, ok := seen[s.PoolId]; !ok {
			return fmt.Errorf("shares reference unknown pool %d", s.PoolId)
		}
		if s.Provider == "" {
			return fmt.Errorf("share provider cannot be empty")
		}
		if s.Shares.IsNil() || !s.Shares.IsPositive() {
			return fmt.Errorf("shares for pool %d must be positive", s.PoolId)
		}
		key := shareKey{s.PoolId, s.Provider}
		if _, ok := held[key]; ok {
			return fmt.Errorf("duplicate share entry for pool %d provider %s", s.PoolId, s.Provider)
		}
		held[key] = struct{}{}
	}
	return nil
}
