package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

// Keeper of the campaign store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	amm        types.AMMKeeper
	authority  string

	// moduleAddress holds the emission treasury, campaign reward budgets
	// and all staked LP units.
	moduleAddress sdk.AccAddress
}

// NewKeeper creates a new campaign Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	amm types.AMMKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:      key,
		bankKeeper:    bankKeeper,
		amm:           amm,
		authority:     authority,
		moduleAddress: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddress
}

// Logger returns a module-tagged logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the campaign module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// currentHeight returns the block height as the 32-bit unit campaign
// timing is denominated in.
func currentHeight(ctx context.Context) uint32 {
	return uint32(sdk.UnwrapSDKContext(ctx).BlockHeight())
}
