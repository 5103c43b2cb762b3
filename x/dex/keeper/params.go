package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flash-chain/flash/x/dex/types"
)

// GetParams returns the current dex module parameters, falling back to
// defaults when none are stored yet.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("failed to unmarshal dex params: %w", err)
	}
	return params, nil
}

// SetParams validates and stores the dex module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return types.ErrInvalidAmount.Wrapf("invalid params: %v", err)
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal dex params: %w", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}
