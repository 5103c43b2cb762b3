package types

import (
	"cosmossdk.io/errors"
)

// Campaign module sentinel errors
var (
	ErrAlreadyInitialized = errors.Register(ModuleName, 1, "core configuration already initialized")
	ErrMissingConfig      = errors.Register(ModuleName, 2, "core configuration not initialized")
	ErrArithmetic         = errors.Register(ModuleName, 3, "arithmetic fault")
	ErrParamOutOfRange    = errors.Register(ModuleName, 4, "parameter out of range")
	ErrTooEarly           = errors.Register(ModuleName, 5, "campaign not yet unlockable")
	ErrNothingToClaim     = errors.Register(ModuleName, 6, "nothing to claim")
	ErrUnauthorized       = errors.Register(ModuleName, 7, "unauthorized")
	ErrInvalidAsset       = errors.Register(ModuleName, 8, "pool assets do not match configured pair")
	ErrCampaignActive     = errors.Register(ModuleName, 9, "campaign already active for pool")
	ErrCampaignNotFound   = errors.Register(ModuleName, 10, "campaign not found")
	ErrCampaignEnded      = errors.Register(ModuleName, 11, "campaign already ended")
	ErrPositionExists     = errors.Register(ModuleName, 12, "depositor already joined campaign")
	ErrInvalidAmount      = errors.Register(ModuleName, 13, "invalid amount")
	ErrZeroLiquidity      = errors.Register(ModuleName, 14, "deposit minted zero liquidity")
	ErrInvalidAddress     = errors.Register(ModuleName, 15, "invalid address")
)
