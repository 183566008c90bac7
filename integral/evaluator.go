package integral

import (
	"fmt"

	"github.com/chebint/chebint/chebyshev"
	"github.com/chebint/chebint/kernel"
)

// BoundEvaluator is the cheap stage: an immutable evaluator of the fitted
// integral, bound to one kernel parameterization and order. It owns its
// coefficient sequence and is safe for concurrent use without locking.
type BoundEvaluator struct {
	shape  kernel.Params
	order  int
	coeffs []float64
	eval   chebyshev.Func
	res    rescaler
}

// Evaluate returns the approximate value of I_n(X) for a query point X > 0,
// to within the tolerance the evaluator was built with.
func (e *BoundEvaluator) Evaluate(x float64) (float64, error) {

	if !(x > 0) {
		return 0, fmt.Errorf("cannot Evaluate: X = %v: %w", x, ErrDomain)
	}

	y, err := e.eval(e.res.forward(x))
	if err != nil {
		return 0, err
	}

	return e.res.restore(y, x), nil
}

// Shape returns the kernel parameters the evaluator is bound to.
func (e *BoundEvaluator) Shape() kernel.Params {
	return e.shape
}

// Order returns the integral order n.
func (e *BoundEvaluator) Order() int {
	return e.order
}

// Degree returns the degree of the fitted Chebyshev series.
func (e *BoundEvaluator) Degree() int {
	return len(e.coeffs) - 1
}

// Coefficients returns a copy of the fitted Chebyshev coefficients.
func (e *BoundEvaluator) Coefficients() []float64 {
	out := make([]float64, len(e.coeffs))
	copy(out, e.coeffs)
	return out
}

// Evaluate is the package-level convenience form of BoundEvaluator.Evaluate.
func Evaluate(e *BoundEvaluator, x float64) (float64, error) {
	return e.Evaluate(x)
}
