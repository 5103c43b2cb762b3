package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/flash-chain/flash/x/campaign/types"
)

// Checked arithmetic for the campaign math kernels. Intermediates run in
// big.Int; results above 256 bits are an arithmetic fault rather than a
// silent truncation.

var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

func checkedInt(x *big.Int) (math.Int, error) {
	if x.CmpAbs(maxInt) >= 0 {
		return math.Int{}, types.ErrArithmetic.Wrap("result exceeds 256 bits")
	}
	return math.NewIntFromBigInt(x), nil
}

// mulDiv computes floor(a * b / c) with an arbitrary-precision
// intermediate. c must be positive.
func mulDiv(a, b, c math.Int) (math.Int, error) {
	if !c.IsPositive() {
		return math.Int{}, types.ErrArithmetic.Wrapf("division by non-positive %s", c)
	}
	out := new(big.Int).Mul(a.BigInt(), b.BigInt())
	out.Quo(out, c.BigInt())
	return checkedInt(out)
}

// isqrt returns the integer square root (floor) of a non-negative value.
func isqrt(x math.Int) (math.Int, error) {
	if x.IsNegative() {
		return math.Int{}, types.ErrArithmetic.Wrapf("square root of negative %s", x)
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(x.BigInt())), nil
}
