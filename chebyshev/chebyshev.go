// Package chebyshev provides adaptive Chebyshev series fitting of real
// functions on (-1, 1) and numerically stable evaluation of the resulting
// coefficient sequences through the Clenshaw recurrence.
package chebyshev

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/chebint/chebint/utils"
)

// ErrDivergence is returned by the fitter when doubling the node count up to
// the cap fails to meet the convergence test.
var ErrDivergence = errors.New("chebyshev: node doubling cap reached without convergence")

const (
	// StartNodes is the node count of the first fitting iteration.
	StartNodes = 10

	// DefaultMaxNodes caps the adaptive doubling at StartNodes << 10.
	DefaultMaxNodes = StartNodes << 10
)

// Parameters configures FitWithParameters.
type Parameters struct {
	// Tol is the fitting tolerance. Must be positive.
	Tol float64

	// MaxNodes caps the adaptive node doubling. Zero means DefaultMaxNodes.
	MaxNodes int

	// Concurrent bounds the number of simultaneous evaluations of the target
	// function while sampling. Values below 2 sample serially. The result is
	// independent of this setting.
	Concurrent int
}

// Fit returns the shortest Chebyshev coefficient sequence approximating f on
// (-1, 1) to within tol, using the default node cap and serial sampling.
func Fit(f func(float64) float64, tol float64) ([]float64, error) {
	return FitWithParameters(f, Parameters{Tol: tol})
}

// FitWithParameters samples f at first-kind Chebyshev node sets of increasing
// order, starting at StartNodes and doubling, until the three highest-order
// coefficients are all below p.Tol relative to the largest coefficient.
// Inspecting three trailing coefficients instead of one guards against an
// individual high-order coefficient happening to vanish. The accepted
// sequence is truncated after the last coefficient above p.Tol.
func FitWithParameters(f func(float64) float64, p Parameters) ([]float64, error) {

	if f == nil {
		panic(fmt.Errorf("cannot FitWithParameters: f is nil"))
	}

	if !(p.Tol > 0) {
		panic(fmt.Errorf("cannot FitWithParameters: tolerance %v is not positive", p.Tol))
	}

	maxNodes := p.MaxNodes
	if maxNodes == 0 {
		maxNodes = DefaultMaxNodes
	}

	for n := StartNodes; n <= maxNodes; n <<= 1 {

		xs := nodes(n)
		coeffs := coefficients(xs, sample(f, xs, p.Concurrent))

		if converged(coeffs, p.Tol) {
			return truncate(coeffs, p.Tol), nil
		}
	}

	return nil, fmt.Errorf("cannot FitWithParameters: tol=%v maxNodes=%d: %w", p.Tol, maxNodes, ErrDivergence)
}

// nodes returns the order-n first-kind Chebyshev nodes cos(π(k+0.5)/n).
func nodes(n int) (xs []float64) {
	xs = make([]float64, n)
	for k := range xs {
		xs[k] = math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
	}
	return
}

// sample evaluates f at each node, with at most `concurrent` simultaneous
// evaluations when concurrent > 1.
func sample(f func(float64) float64, xs []float64, concurrent int) (fi []float64) {

	fi = make([]float64, len(xs))

	if concurrent < 2 {
		for i, x := range xs {
			fi[i] = f(x)
		}
		return
	}

	if concurrent > len(xs) {
		concurrent = len(xs)
	}

	tasks := make(chan int)
	go func() {
		for i := range xs {
			tasks <- i
		}
		close(tasks)
	}()

	var wg sync.WaitGroup
	wg.Add(concurrent)
	for w := 0; w < concurrent; w++ {
		go func() {
			defer wg.Done()
			for i := range tasks {
				fi[i] = f(xs[i])
			}
		}()
	}
	wg.Wait()

	return
}

// coefficients converts node samples into Chebyshev coefficients through the
// type-II cosine sum, accumulating each T_j(x_i) with the three-term
// recurrence, then normalizes by 2/n and halves the zeroth coefficient.
func coefficients(xs, fi []float64) (coeffs []float64) {

	n := len(xs)
	coeffs = make([]float64, n)

	for i := 0; i < n; i++ {

		u := xs[i]
		tPrev, t := 1.0, u

		for j := 0; j < n; j++ {
			coeffs[j] += fi[i] * tPrev
			tPrev, t = t, 2*u*t-tPrev
		}
	}

	norm := 2 / float64(n)
	for j := range coeffs {
		coeffs[j] *= norm
	}
	coeffs[0] *= 0.5

	return
}

// converged reports whether the three highest-order coefficients are all
// below tol relative to the largest coefficient magnitude.
func converged(coeffs []float64, tol float64) bool {

	peak := utils.MaxAbs(coeffs)
	if peak == 0 {
		return true
	}

	return utils.MaxAbs(coeffs[len(coeffs)-3:]) < tol*peak
}

// truncate drops trailing coefficients with magnitude at most tol.
func truncate(coeffs []float64, tol float64) []float64 {

	last := 0
	for i, c := range coeffs {
		if math.Abs(c) > tol {
			last = i
		}
	}

	out := make([]float64, last+1)
	copy(out, coeffs[:last+1])
	return out
}
