package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgCreatePool      = "create_pool"
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
	TypeMsgSwap            = "swap"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
	_ sdk.Msg = &MsgSwap{}
)

// MsgServer defines the message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// MsgCreatePool defines a message to create a new liquidity pool
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	TokenA  string   `json:"token_a"`
	TokenB  string   `json:"token_b"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

func (m *MsgCreatePool) Reset()         { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string { return fmt.Sprintf("MsgCreatePool{%s/%s}", m.TokenA, m.TokenB) }
func (*MsgCreatePool) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgCreatePool) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgCreatePool) Type() string { return TypeMsgCreatePool }

// GetSigners returns the expected signers for MsgCreatePool
func (m *MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// ValidateBasic performs basic validation of MsgCreatePool
func (m *MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %v", err)
	}
	if m.TokenA == "" || m.TokenB == "" {
		return ErrInvalidTokenDenom.Wrap("token denominations cannot be empty")
	}
	if m.TokenA == m.TokenB {
		return ErrInvalidTokenPair.Wrap("tokens must be different")
	}
	if err := sdk.ValidateDenom(m.TokenA); err != nil {
		return ErrInvalidTokenDenom.Wrapf("token_a: %v", err)
	}
	if err := sdk.ValidateDenom(m.TokenB); err != nil {
		return ErrInvalidTokenDenom.Wrapf("token_b: %v", err)
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_a must be positive")
	}
	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_b must be positive")
	}
	return nil
}

// MsgAddLiquidity defines a message to add liquidity to an existing pool
type MsgAddLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	AmountA  math.Int `json:"amount_a"`
	AmountB  math.Int `json:"amount_b"`
}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("MsgAddLiquidity{pool %d}", m.PoolId) }
func (*MsgAddLiquidity) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgAddLiquidity) Type() string { return TypeMsgAddLiquidity }

// GetSigners returns the expected signers for MsgAddLiquidity
func (m *MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs basic validation of MsgAddLiquidity
func (m *MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_a must be positive")
	}
	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_b must be positive")
	}
	return nil
}

// MsgRemoveLiquidity defines a message to burn pool shares for the
// underlying assets
type MsgRemoveLiquidity struct {
	Provider string   `json:"provider"`
	PoolId   uint64   `json:"pool_id"`
	Shares   math.Int `json:"shares"`
}

func (m *MsgRemoveLiquidity) Reset() { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string {
	return fmt.Sprintf("MsgRemoveLiquidity{pool %d}", m.PoolId)
}
func (*MsgRemoveLiquidity) ProtoMessage() {}

// Route implements the sdk.Msg interface
func (m MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgRemoveLiquidity) Type() string { return TypeMsgRemoveLiquidity }

// GetSigners returns the expected signers for MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(m.Provider)
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs basic validation of MsgRemoveLiquidity
func (m *MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return ErrInvalidAmount.Wrap("shares must be positive")
	}
	return nil
}

// MsgSwap defines a message to trade one pool asset for the other
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PoolId       uint64   `json:"pool_id"`
	TokenIn      string   `json:"token_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return fmt.Sprintf("MsgSwap{pool %d %s}", m.PoolId, m.TokenIn) }
func (*MsgSwap) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgSwap) Type() string { return TypeMsgSwap }

// GetSigners returns the expected signers for MsgSwap
func (m *MsgSwap) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// ValidateBasic performs basic validation of MsgSwap
func (m *MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return ErrInvalidAddress.Wrapf("invalid trader address: %v", err)
	}
	if m.PoolId == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if err := sdk.ValidateDenom(m.TokenIn); err != nil {
		return ErrInvalidTokenDenom.Wrapf("token_in: %v", err)
	}
	if m.AmountIn.IsNil() || !m.AmountIn.IsPositive() {
		return ErrInvalidAmount.Wrap("amount_in must be positive")
	}
	if m.MinAmountOut.IsNil() || m.MinAmountOut.IsNegative() {
		return ErrInvalidAmount.Wrap("min_amount_out cannot be negative")
	}
	return nil
}

// Response types

// MsgCreatePoolResponse defines the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}
