package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/flash-chain/flash/x/campaign/types"
)

// ComputeEmissionCap bounds the reward asset a campaign may promise.
//
// Inputs are the seed pool's reserves before any campaign action
// (ru0, rf0) and after the campaign's swap and deposit (ru1, rf1),
// stable first, plus the realized reward-asset surplus.
//
//	root = floor(sqrt(ru1 * rf1 * rf0 / ru0))
//	xMax = max(root - rf1, 0)
//	cap  = min(surplus, xMax)
//
// root is the reward reserve level at which the pool's reward/stable
// price, scaled to the new stable reserve, equals its pre-campaign
// level; anything beyond xMax entering the reserve would push the price
// below where the campaign found it.
func ComputeEmissionCap(ru0, rf0, ru1, rf1, surplus math.Int) (math.Int, error) {
	for _, v := range []math.Int{ru0, rf0, ru1, rf1, surplus} {
		if v.IsNil() || v.IsNegative() {
			return math.Int{}, types.ErrInvalidAmount.Wrap("emission cap inputs must be non-negative")
		}
	}
	if ru0.IsZero() {
		return math.Int{}, types.ErrArithmetic.Wrap("pre-campaign stable reserve is zero")
	}

	product := new(big.Int).Mul(ru1.BigInt(), rf1.BigInt())
	product.Mul(product, rf0.BigInt())
	product.Quo(product, ru0.BigInt())
	root, err := checkedInt(product.Sqrt(product))
	if err != nil {
		return math.Int{}, err
	}

	xMax := root.Sub(rf1)
	if xMax.IsNegative() {
		xMax = math.ZeroInt()
	}
	return math.MinInt(surplus, xMax), nil
}
