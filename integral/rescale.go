package integral

import (
	"math"

	"github.com/chebint/chebint/kernel"
)

// rescaler removes the two behaviors of the raw integral that a Chebyshev
// fit cannot absorb. The forward map
//
//	ξ = 1 - (X + 2^(1/q))^q
//
// compresses X ∈ (0, ∞) onto ξ ∈ [-1, 1], riding the x^q tail decay; its
// inverse χ(ξ) = (1-ξ)^(1/q) - 2^(1/q) generates sampling abscissas. When
// p < 0 the raw integral diverges like X^p at the origin, so reduce divides
// it by the matching leading term s^p + X^p and restore multiplies the
// fitted value back.
type rescaler struct {
	p, s float64

	// mapExp is the exponent of the ξ/χ pair. It equals q except for q = 0,
	// where the pair needs a strictly negative exponent; since the map is
	// applied consistently at build and query time, substituting -1 there
	// changes parameterization only, not results.
	mapExp float64

	// shift is 2^(1/mapExp), pinning χ(-1) = 0.
	shift float64

	// sp is s^p, the divisor offset of the singular reduction.
	sp float64

	singular bool
}

func newRescaler(par kernel.Params) rescaler {

	r := rescaler{p: par.P, s: par.S, mapExp: par.Q}
	if r.mapExp == 0 {
		r.mapExp = -1
	}
	r.shift = math.Pow(2, 1/r.mapExp)

	if r.singular = par.P < 0; r.singular {
		r.sp = math.Pow(par.S, par.P)
	}

	return r
}

// forward maps a query point X ∈ (0, ∞) to ξ ∈ [-1, 1]. It is computed as
// 1 - 2·(1 + X/shift)^mapExp, equal to 1 - (X + shift)^mapExp in exact
// arithmetic: the power has base ≥ 1 and a negative exponent, so it never
// exceeds 1 and ξ cannot round below -1, which the direct form does for
// fractional exponents (shift^mapExp is not exactly 2 in floats).
func (r rescaler) forward(x float64) float64 {
	return 1 - 2*math.Pow(1+x/r.shift, r.mapExp)
}

// inverse maps ξ ∈ [-1, 1) back to the query point χ(ξ), in the same
// parameterization as forward.
func (r rescaler) inverse(xi float64) float64 {
	return r.shift * (math.Pow((1-xi)/2, 1/r.mapExp) - 1)
}

// reduce divides the leading small-X singularity out of the raw value.
func (r rescaler) reduce(raw, x float64) float64 {
	if !r.singular {
		return raw
	}
	return raw / (r.sp + math.Pow(x, r.p))
}

// restore reconstructs the integral value from a fitted one; it inverts
// reduce.
func (r rescaler) restore(fitted, x float64) float64 {
	if !r.singular {
		return fitted
	}
	return fitted * (r.sp + math.Pow(x, r.p))
}
