package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrInvalidPoolId         = errors.Register(ModuleName, 1, "invalid pool id")
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrPoolAlreadyExists     = errors.Register(ModuleName, 3, "pool already exists")
	ErrInvalidTokenDenom     = errors.Register(ModuleName, 4, "invalid token denomination")
	ErrInvalidTokenPair      = errors.Register(ModuleName, 5, "invalid token pair")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInvalidAmount         = errors.Register(ModuleName, 7, "invalid amount")
	ErrInsufficientShares    = errors.Register(ModuleName, 8, "insufficient liquidity shares")
	ErrInvalidPoolState      = errors.Register(ModuleName, 9, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 10, "arithmetic overflow")
	ErrInvalidAddress        = errors.Register(ModuleName, 11, "invalid address")
)
