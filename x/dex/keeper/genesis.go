package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/dex/types"
)

// InitGenesis initializes the dex module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("init dex genesis: %w", err)
	}
	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return fmt.Errorf("init dex genesis: pool %d: %w", pool.Id, err)
		}
		k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id)
	}
	for _, s := range genState.Shares {
		provider, err := sdk.AccAddressFromBech32(s.Provider)
		if err != nil {
			return fmt.Errorf("init dex genesis: share provider %q: %w", s.Provider, err)
		}
		k.SetShares(ctx, s.PoolId, provider, s.Shares)
	}
	k.SetNextPoolID(ctx, genState.NextPoolId)
	return nil
}

// ExportGenesis returns the dex module state as a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("export dex genesis: %w", err)
	}
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("export dex genesis: %w", err)
	}

	nextID := uint64(1)
	shares := []types.GenesisShares{}
	for _, pool := range pools {
		if pool.Id >= nextID {
			nextID = pool.Id + 1
		}
		k.IterateSharesByPool(ctx, pool.Id, func(provider sdk.AccAddress, amount math.Int) bool {
			shares = append(shares, types.GenesisShares{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   amount,
			})
			return false
		})
	}

	return &types.GenesisState{
		Params:     params,
		Pools:      pools,
		Shares:     shares,
		NextPoolId: nextID,
	}, nil
}
