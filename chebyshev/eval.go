package chebyshev

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when an evaluation point lies outside [-1, 1].
var ErrDomain = errors.New("chebyshev: evaluation point outside [-1, 1]")

// Func is a compiled evaluator bound to a fixed coefficient sequence.
type Func func(x float64) (float64, error)

// Eval evaluates the series Σ coeffs[k]·T_k(x) at x ∈ [-1, 1] with the
// backward Clenshaw recurrence b_k = a_k + 2x·b_{k+1} - b_{k+2}, returning
// a_0 + x·b_1 - b_2. The recurrence never forms individual T_k(x), which
// keeps high-degree evaluation numerically stable.
func Eval(coeffs []float64, x float64) (float64, error) {

	if len(coeffs) == 0 {
		panic(fmt.Errorf("cannot Eval: empty coefficient sequence"))
	}

	if !(x >= -1 && x <= 1) {
		return 0, fmt.Errorf("cannot Eval: x = %v: %w", x, ErrDomain)
	}

	return clenshaw(coeffs, x), nil
}

func clenshaw(a []float64, x float64) float64 {

	var b1, b2 float64
	x2 := 2 * x

	for k := len(a) - 1; k >= 1; k-- {
		b1, b2 = math.FMA(x2, b1, a[k]-b2), b1
	}

	return math.FMA(x, b1, a[0]-b2)
}

// Compile returns an evaluator specialized to the given coefficients: the
// sequence is copied once, short series run fully unrolled straight-line
// arithmetic and longer ones the fused-multiply-add loop. The compiled form
// performs the exact operation sequence of Eval and is therefore numerically
// identical to it; it exists purely to cut per-call overhead on hot paths.
func Compile(coeffs []float64) Func {

	if len(coeffs) == 0 {
		panic(fmt.Errorf("cannot Compile: empty coefficient sequence"))
	}

	core := compile(coeffs)

	return func(x float64) (float64, error) {
		if !(x >= -1 && x <= 1) {
			return 0, fmt.Errorf("cannot evaluate compiled series: x = %v: %w", x, ErrDomain)
		}
		return core(x), nil
	}
}

func compile(coeffs []float64) func(float64) float64 {

	a := make([]float64, len(coeffs))
	copy(a, coeffs)

	// Each unrolled body is the Clenshaw loop of clenshaw() written out for a
	// fixed length, with b2 = 0 steps simplified away.
	switch len(a) {
	case 1:
		c0 := a[0]
		return func(x float64) float64 {
			return c0
		}
	case 2:
		c0, c1 := a[0], a[1]
		return func(x float64) float64 {
			return math.FMA(x, c1, c0)
		}
	case 3:
		c0, c1, c2 := a[0], a[1], a[2]
		return func(x float64) float64 {
			b1 := math.FMA(2*x, c2, c1)
			return math.FMA(x, b1, c0-c2)
		}
	case 4:
		c0, c1, c2, c3 := a[0], a[1], a[2], a[3]
		return func(x float64) float64 {
			x2 := 2 * x
			b1, b2 := math.FMA(x2, c3, c2), c3
			b1, b2 = math.FMA(x2, b1, c1-b2), b1
			return math.FMA(x, b1, c0-b2)
		}
	case 5:
		c0, c1, c2, c3, c4 := a[0], a[1], a[2], a[3], a[4]
		return func(x float64) float64 {
			x2 := 2 * x
			b1, b2 := math.FMA(x2, c4, c3), c4
			b1, b2 = math.FMA(x2, b1, c2-b2), b1
			b1, b2 = math.FMA(x2, b1, c1-b2), b1
			return math.FMA(x, b1, c0-b2)
		}
	case 6:
		c0, c1, c2, c3, c4, c5 := a[0], a[1], a[2], a[3], a[4], a[5]
		return func(x float64) float64 {
			x2 := 2 * x
			b1, b2 := math.FMA(x2, c5, c4), c5
			b1, b2 = math.FMA(x2, b1, c3-b2), b1
			b1, b2 = math.FMA(x2, b1, c2-b2), b1
			b1, b2 = math.FMA(x2, b1, c1-b2), b1
			return math.FMA(x, b1, c0-b2)
		}
	case 7:
		c0, c1, c2, c3, c4, c5, c6 := a[0], a[1], a[2], a[3], a[4], a[5], a[6]
		return func(x float64) float64 {
			x2 := 2 * x
			b1, b2 := math.FMA(x2, c6, c5), c6
			b1, b2 = math.FMA(x2, b1, c4-b2), b1
			b1, b2 = math.FMA(x2, b1, c3-b2), b1
			b1, b2 = math.FMA(x2, b1, c2-b2), b1
			b1, b2 = math.FMA(x2, b1, c1-b2), b1
			return math.FMA(x, b1, c0-b2)
		}
	case 8:
		c0, c1, c2, c3, c4, c5, c6, c7 := a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7]
		return func(x float64) float64 {
			x2 := 2 * x
			b1, b2 := math.FMA(x2, c7, c6), c7
			b1, b2 = math.FMA(x2, b1, c5-b2), b1
			b1, b2 = math.FMA(x2, b1, c4-b2), b1
			b1, b2 = math.FMA(x2, b1, c3-b2), b1
			b1, b2 = math.FMA(x2, b1, c2-b2), b1
			b1, b2 = math.FMA(x2, b1, c1-b2), b1
			return math.FMA(x, b1, c0-b2)
		}
	default:
		return func(x float64) float64 {
			return clenshaw(a, x)
		}
	}
}
