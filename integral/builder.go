package integral

import (
	"fmt"
	"math"
	"sync"

	"github.com/chebint/chebint/chebyshev"
	"github.com/chebint/chebint/kernel"
)

// DefaultTol is the default fitting tolerance of the build phase, well below
// float32 noise so the staged evaluator is indistinguishable from the raw
// integral in single-precision consumers.
const DefaultTol = 1e-9

// Builder runs the expensive stage. The zero value is ready to use.
type Builder struct {
	// Tol is the fitting tolerance. Zero means DefaultTol.
	Tol float64

	// MaxNodes caps the adaptive degree doubling of the fit. Zero means
	// chebyshev.DefaultMaxNodes.
	MaxNodes int

	// Concurrent bounds the number of simultaneous quadrature evaluations
	// while sampling the fit target. Values below 2 sample serially. The
	// built evaluator is independent of this setting.
	Concurrent int
}

// Build validates the kernel parameterization, fits the rescaled integral of
// order n and returns the evaluator bound to the resulting coefficients.
// This is the only place validation happens; the returned evaluator trusts
// its inputs.
func (b Builder) Build(k kernel.Kernel, n int) (*BoundEvaluator, error) {

	par := k.Params()

	switch {
	case par.Q > 0:
		return nil, fmt.Errorf("cannot Build: growing kernel q = %v: %w", par.Q, ErrUnsupportedKernel)
	case !(par.S > 0):
		return nil, fmt.Errorf("cannot Build: crossover scale s = %v: %w", par.S, ErrUnsupportedKernel)
	case n < 0:
		return nil, fmt.Errorf("cannot Build: negative order n = %d: %w", n, ErrUnsupportedKernel)
	case float64(n)+par.P <= -1:
		return nil, fmt.Errorf("cannot Build: divergent integral, n + p = %v ≤ -1: %w", float64(n)+par.P, ErrUnsupportedKernel)
	}

	fi := FirstIntegral{Kernel: k, Order: n}
	res := newRescaler(par)

	// The fitter has no error channel through the target function, so the
	// first quadrature failure is parked under a mutex (sampling may run
	// concurrently) and surfaced after fitting.
	var mu sync.Mutex
	var qerr error

	target := func(xi float64) float64 {

		mu.Lock()
		failed := qerr != nil
		mu.Unlock()
		if failed {
			return math.NaN()
		}

		x := res.inverse(xi)

		raw, err := fi.Raw(x)
		if err != nil {
			mu.Lock()
			if qerr == nil {
				qerr = err
			}
			mu.Unlock()
			return math.NaN()
		}

		return res.reduce(raw, x)
	}

	coeffs, err := chebyshev.FitWithParameters(target, chebyshev.Parameters{
		Tol:        b.tol(),
		MaxNodes:   b.MaxNodes,
		Concurrent: b.Concurrent,
	})

	if qerr != nil {
		return nil, fmt.Errorf("cannot Build (p=%v, q=%v, s=%v, n=%d): %w", par.P, par.Q, par.S, n, qerr)
	}

	if err != nil {
		return nil, fmt.Errorf("cannot Build (p=%v, q=%v, s=%v, n=%d): %w", par.P, par.Q, par.S, n, err)
	}

	return &BoundEvaluator{
		shape:  par,
		order:  n,
		coeffs: coeffs,
		eval:   chebyshev.Compile(coeffs),
		res:    res,
	}, nil
}

func (b Builder) tol() float64 {
	if b.Tol > 0 {
		return b.Tol
	}
	return DefaultTol
}

// Build is the package-level convenience form of Builder.Build with an
// explicit tolerance.
func Build(k kernel.Kernel, n int, tol float64) (*BoundEvaluator, error) {
	return Builder{Tol: tol}.Build(k, n)
}
