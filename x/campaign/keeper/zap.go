package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/flash-chain/flash/x/campaign/types"
)

// ComputeZapSplit splits a stable-asset fee into the portion to swap into
// the reward asset and the portion to deposit as liquidity.
//
// The break-even swap size under a frictionless constant-product model is
//
//	sMin = floor(sqrt(rStable * (rStable + fee))) - rStable
//
// the unique size that leaves the remainder exactly matched to the
// post-swap reserve ratio. On top of that the split deliberately
// over-swaps by surplusBps of the fee; the excess reward asset bought is
// what funds the campaign's reward pool, subject to the emission cap.
func ComputeZapSplit(fee, rStable math.Int, surplusBps uint32) (swap math.Int, liquidity math.Int, err error) {
	if fee.IsNil() || !fee.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("fee must be positive")
	}
	if rStable.IsNil() || !rStable.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrInvalidAmount.Wrap("stable reserve must be positive")
	}
	if surplusBps >= types.WeightScale {
		return math.Int{}, math.Int{}, types.ErrParamOutOfRange.Wrapf(
			"surplus_bps must be below %d: %d", types.WeightScale, surplusBps)
	}

	// rStable * (rStable + fee) in arbitrary precision
	sum := new(big.Int).Add(rStable.BigInt(), fee.BigInt())
	product := sum.Mul(sum, rStable.BigInt())
	root, err := checkedInt(new(big.Int).Sqrt(product))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	sMin := root.Sub(rStable)
	if sMin.IsNegative() {
		sMin = math.ZeroInt()
	}

	extra, err := mulDiv(fee, math.NewInt(int64(surplusBps)), math.NewInt(types.WeightScale))
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	swap = math.MinInt(sMin.Add(extra), fee)
	liquidity = fee.Sub(swap)
	return swap, liquidity, nil
}
