// Package integral computes the staged integral transform
//
//	I_n(X) = ∫₀¹ wⁿ·K(wX) dw
//
// of a power-law kernel K against the monomial weight wⁿ. The expensive
// stage (Builder.Build) runs once per kernel parameterization: it removes
// the small-X singularity and the unbounded query domain through a
// rescaling, fits a Chebyshev approximation to what remains, and packages
// the coefficients into an immutable BoundEvaluator. The cheap stage
// (BoundEvaluator.Evaluate) then serves arbitrary query points through the
// Clenshaw recurrence.
package integral

import (
	"errors"
	"fmt"
	"math"

	"github.com/chebint/chebint/kernel"
	"github.com/chebint/chebint/quadrature"
)

var (
	// ErrUnsupportedKernel is returned at build time for kernel
	// parameterizations the staged scheme cannot serve: a tail exponent
	// q > 0 (the kernel grows without bound) or an order n with
	// n + p ≤ -1 (the raw integral diverges).
	ErrUnsupportedKernel = errors.New("integral: unsupported kernel parameterization")

	// ErrDomain is returned when a query point X ≤ 0 is evaluated.
	ErrDomain = errors.New("integral: query point outside (0, ∞)")
)

// Quadrature tolerances for the raw integral, tighter than the default
// fitting tolerance so that fitting error dominates over quadrature error.
const (
	quadAbsTol = 1e-14
	quadRelTol = 1e-12
)

// FirstIntegral is the transform I_n(X) = ∫₀¹ wⁿ·K(wX) dw for a fixed kernel
// and order n.
type FirstIntegral struct {
	Kernel kernel.Kernel
	Order  int
}

// Raw computes I_n(x) directly by adaptive quadrature. It is the reference
// the staged evaluator approximates, and the sampling source of the build
// phase; it is far too slow for inner-loop use.
func (fi FirstIntegral) Raw(x float64) (float64, error) {

	if !(x > 0) {
		return 0, fmt.Errorf("cannot Raw: X = %v: %w", x, ErrDomain)
	}

	n := float64(fi.Order)

	f := func(w float64) float64 {
		return math.Pow(w, n) * fi.Kernel.Eval(w*x)
	}

	v, err := quadrature.Integrate(f, 0, 1, quadAbsTol, quadRelTol)
	if err != nil {
		return 0, fmt.Errorf("cannot Raw at X = %v: %w", x, err)
	}

	return v, nil
}
