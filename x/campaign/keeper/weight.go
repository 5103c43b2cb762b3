package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/flash-chain/flash/x/campaign/types"
)

var (
	rankWeightBase = big.NewInt(types.RankWeightBase)
	weightScale    = math.NewInt(types.WeightScale)
)

// RankWeight maps a 1-based join rank to a decaying weight
//
//	floor(10^8 / rank^gamma)
//
// Rank 0 is invalid and scores zero. rank^gamma saturating past 10^8
// simply floors the quotient to zero, so no overflow guard is needed
// beyond capping the exponentiation itself.
func RankWeight(rank uint64, gamma uint32) math.Int {
	if rank == 0 {
		return math.ZeroInt()
	}
	if rank == 1 {
		return math.NewInt(types.RankWeightBase)
	}
	// rank >= 2 and gamma >= 27 means rank^gamma >= 2^27 > 10^8; skip
	// the exponentiation, which would otherwise be unbounded in size
	if gamma >= 27 {
		return math.ZeroInt()
	}

	power := new(big.Int).Exp(new(big.Int).SetUint64(rank), big.NewInt(int64(gamma)), nil)
	if power.Cmp(rankWeightBase) > 0 {
		return math.ZeroInt()
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(rankWeightBase, power))
}

// ContributionWeight scores a contribution against the per-depositor
// target in basis points, capped at 100%.
func ContributionWeight(contribution, target math.Int) math.Int {
	if contribution.IsNil() || target.IsNil() || !contribution.IsPositive() || !target.IsPositive() {
		return math.ZeroInt()
	}
	bps, err := mulDiv(contribution, weightScale, target)
	if err != nil {
		// only reachable past 256 bits of contribution; treat as fully
		// funded rather than failing the join
		return weightScale
	}
	return math.MinInt(weightScale, bps)
}

// CampaignWeight blends rank decay and contribution size into the single
// score used as a ratio of the campaign's total weight at claim time.
func CampaignWeight(rank uint64, contribution, target math.Int, gamma uint32) (math.Int, error) {
	rw := RankWeight(rank, gamma)
	cw := ContributionWeight(contribution, target)
	return mulDiv(rw, cw, weightScale)
}
