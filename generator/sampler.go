package generator

import (
	"math"
	"math/rand/v2"
)

const (
	// Above this mean a normal distribution puts too much mass in its tails
	// relative to the spread we want, so counts come from a log-normal instead.
	logNormalThreshold = 10_000

	logNormalCV  = 2.0
	normalSpread = 0.2
)

// sampler draws per-directory counts from a node's private generator.
type sampler struct {
	rng *rand.Rand
}

// draw returns an unrounded, non-negative sample around mean.
func (s sampler) draw(mean float64) float64 {
	if !(mean > 0) {
		return 0
	}

	var x float64
	if mean > logNormalThreshold {
		sigma2 := math.Log1p(logNormalCV * logNormalCV)
		mu := math.Log(mean) - sigma2/2
		x = math.Exp(mu + math.Sqrt(sigma2)*s.rng.NormFloat64())
	} else {
		x = mean + normalSpread*mean*s.rng.NormFloat64()
	}

	if !(x > 0) {
		return 0
	}
	return x
}

// sample returns draw(mean) rounded to the nearest count.
func (s sampler) sample(mean float64) uint64 {
	return toCount(s.draw(mean))
}

// weight is a draw used only as a relative share in exact mode.
func (s sampler) weight(mean float64) float64 {
	return s.draw(mean)
}

func toCount(x float64) uint64 {
	x = math.Round(x)
	switch {
	case !(x > 0):
		return 0
	case x >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(x)
	}
}
