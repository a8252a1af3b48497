package generator

import (
	"math"

	"github.com/samber/lo"
)

// maxWeight caps subtree expectations so deep, wide trees stay finite.
const maxWeight = 1e18

// apportion splits total into one share per weight.
//
// Parts are visited in order. Each takes round(remaining * w / W), where W is
// the weight of the parts not yet visited, and the last part takes whatever
// remains, so the shares always sum to total. Negative or NaN weights count
// as zero; if every weight is zero the total is split evenly.
func apportion(total uint64, weights []float64) []uint64 {
	shares := make([]uint64, len(weights))
	if len(weights) == 0 {
		return shares
	}

	clean := lo.Map(weights, func(w float64, _ int) float64 {
		if !(w > 0) {
			return 0
		}
		return math.Min(w, maxWeight)
	})
	rest := lo.Sum(clean)
	if !(rest > 0) {
		return splitEvenly(total, len(weights))
	}

	remaining := total
	last := len(clean) - 1
	for i, w := range clean[:last] {
		if remaining == 0 {
			break
		}
		if w > 0 && rest > 0 {
			share := math.Round(float64(remaining) * (w / rest))
			if share >= float64(remaining) {
				shares[i] = remaining
			} else if share > 0 {
				shares[i] = uint64(share)
			}
		}
		remaining -= shares[i]
		rest -= w
	}
	shares[last] += remaining
	return shares
}

func splitEvenly(total uint64, n int) []uint64 {
	shares := make([]uint64, n)
	q, r := total/uint64(n), total%uint64(n)
	for i := range shares {
		shares[i] = q
		if uint64(i) < r {
			shares[i]++
		}
	}
	return shares
}
