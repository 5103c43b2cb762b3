package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Event types emitted by the dex module
const (
	EventTypePoolCreated     = "dex_pool_created"
	EventTypeSwap            = "dex_swap"
	EventTypeAddLiquidity    = "dex_add_liquidity"
	EventTypeRemoveLiquidity = "dex_remove_liquidity"
	EventTypeTransferShares  = "dex_transfer_shares"
)

// Event attribute keys
const (
	AttributeKeyPoolID    = "pool_id"
	AttributeKeyCreator   = "creator"
	AttributeKeyProvider  = "provider"
	AttributeKeyTrader    = "trader"
	AttributeKeyTokenA    = "token_a"
	AttributeKeyTokenB    = "token_b"
	AttributeKeyTokenIn   = "token_in"
	AttributeKeyTokenOut  = "token_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyShares    = "shares"
)

// Pool is a constant-product liquidity pool. Tokens are ordered
// lexicographically so that (TokenA, TokenB) is canonical for a pair.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

func (p *Pool) Reset()         { *p = Pool{} }
func (p *Pool) String() string { return fmt.Sprintf("Pool{%d %s/%s}", p.Id, p.TokenA, p.TokenB) }
func (*Pool) ProtoMessage()    {}

// Validate checks the internal consistency of a pool record.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return fmt.Errorf("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return fmt.Errorf("pool tokens cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return fmt.Errorf("pool tokens must be different")
	}
	if p.TokenA > p.TokenB {
		return fmt.Errorf("pool tokens must be lexicographically ordered")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return fmt.Errorf("pool amounts cannot be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return fmt.Errorf("pool amounts cannot be negative")
	}
	return nil
}

// Params holds the dex module parameters.
type Params struct {
	// SwapFeeBps is the trading fee in basis points taken on every swap.
	// The fee stays in the pool reserves, accruing to liquidity providers.
	SwapFeeBps uint32 `json:"swap_fee_bps"`
	// MinLiquidity is the minimum number of shares a pool must mint at creation.
	MinLiquidity math.Int `json:"min_liquidity"`
}

// DefaultParams returns default parameters for the dex module
func DefaultParams() Params {
	return Params{
		SwapFeeBps:   30, // 0.3%
		MinLiquidity: math.NewInt(1000),
	}
}

// Validate checks the dex parameters.
func (p Params) Validate() error {
	if p.SwapFeeBps >= 10_000 {
		return fmt.Errorf("swap fee must be below 100%%: %d bps", p.SwapFeeBps)
	}
	if p.MinLiquidity.IsNil() || p.MinLiquidity.IsNegative() {
		return fmt.Errorf("min liquidity must be non-negative")
	}
	return nil
}
