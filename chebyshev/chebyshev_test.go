package chebyshev

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/chebint/chebint/utils/bignum"
)

// evalDirect sums Σ a_k·T_k(x) by forming each T_k explicitly; only usable at
// low degree, as a fit-independent reference.
func evalDirect(a []float64, x float64) (y float64) {
	tPrev, t := 1.0, x
	for _, c := range a {
		y += c * tPrev
		tPrev, t = t, 2*x*t-tPrev
	}
	return
}

func TestFitExp(t *testing.T) {

	coeffs, err := Fit(math.Exp, 1e-9)
	require.NoError(t, err)

	// The Chebyshev series of eˣ is I₀(1) + 2·Σ I_k(1)·T_k; with tolerance
	// 1e-9 the sequence must truncate after a₉ ≈ 1.1e-8 (a₁₀ ≈ 5.5e-10).
	require.Len(t, coeffs, 10)

	one := bignum.NewFloat(1, 96)
	want := make([]float64, 6)
	for k := range want {
		ik, _ := bignum.BesselI(k, one).Float64()
		if k == 0 {
			want[k] = ik
		} else {
			want[k] = 2 * ik
		}
	}

	require.Empty(t, cmp.Diff(want, coeffs[:6], cmpopts.EquateApprox(0, 1e-12)))
}

func TestFitReproducesKnownSeries(t *testing.T) {

	a := []float64{0.5, 0.25, -0.125, 0.0625, 0.03125, 0.015625}
	f := func(x float64) float64 { return evalDirect(a, x) }

	coeffs, err := Fit(f, 1e-9)
	require.NoError(t, err)
	require.Len(t, coeffs, len(a))
	require.Empty(t, cmp.Diff(a, coeffs, cmpopts.EquateApprox(0, 1e-13)))

	// The fit nodes are reconstruction points: evaluation there reproduces
	// the sampled values to floating-point precision.
	n := StartNodes
	for k := 0; k < n; k++ {
		x := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		y, err := Eval(coeffs, x)
		require.NoError(t, err)
		require.InDelta(t, f(x), y, 1e-13)
	}

	// At the interval endpoints the series collapses to the plain and
	// alternating coefficient sums.
	var sum, alt float64
	for k, c := range coeffs {
		sum += c
		if k%2 == 0 {
			alt += c
		} else {
			alt -= c
		}
	}

	y, err := Eval(coeffs, 1)
	require.NoError(t, err)
	require.InDelta(t, sum, y, 1e-14)

	y, err = Eval(coeffs, -1)
	require.NoError(t, err)
	require.InDelta(t, alt, y, 1e-14)
}

func TestCompiledMatchesGeneral(t *testing.T) {

	for n := 1; n <= 12; n++ {

		coeffs := make([]float64, n)
		for k := range coeffs {
			coeffs[k] = 1 / float64((k+1)*(k+1))
			if k%2 == 1 {
				coeffs[k] = -coeffs[k]
			}
		}

		compiled := Compile(coeffs)

		for i := -64; i <= 64; i++ {
			x := float64(i) / 64

			want, err := Eval(coeffs, x)
			require.NoError(t, err)

			got, err := compiled(x)
			require.NoError(t, err)

			// The compiled form runs the identical FMA sequence, so the
			// results must agree bit for bit, not merely approximately.
			require.Equal(t, want, got, "n=%d x=%v", n, x)
		}

		for _, x := range []float64{1 - 1e-15, -1 + 1e-15, 0} {
			want, _ := Eval(coeffs, x)
			got, _ := compiled(x)
			require.Equal(t, want, got)
		}
	}
}

func TestEvalDomain(t *testing.T) {

	coeffs := []float64{1, 0.5}
	compiled := Compile(coeffs)

	for _, x := range []float64{1.0000001, -1.0000001, 2, -2, math.NaN()} {
		_, err := Eval(coeffs, x)
		require.ErrorIs(t, err, ErrDomain)

		_, err = compiled(x)
		require.ErrorIs(t, err, ErrDomain)
	}

	for _, x := range []float64{1, -1, 0} {
		_, err := Eval(coeffs, x)
		require.NoError(t, err)
	}
}

func TestFitDivergence(t *testing.T) {

	sign := func(x float64) float64 { return math.Copysign(1, x) }

	_, err := FitWithParameters(sign, Parameters{Tol: 1e-9, MaxNodes: 1280})
	require.ErrorIs(t, err, ErrDivergence)
}

func TestFitZeroFunction(t *testing.T) {

	coeffs, err := Fit(func(float64) float64 { return 0 }, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, coeffs)
}

func TestConcurrentSamplingMatchesSerial(t *testing.T) {

	serial, err := Fit(math.Exp, 1e-9)
	require.NoError(t, err)

	concurrent, err := FitWithParameters(math.Exp, Parameters{Tol: 1e-9, Concurrent: 8})
	require.NoError(t, err)

	require.Equal(t, serial, concurrent)
}

func TestMisusePanics(t *testing.T) {
	require.Panics(t, func() { _, _ = Fit(nil, 1e-9) })
	require.Panics(t, func() { _, _ = Fit(math.Exp, 0) })
	require.Panics(t, func() { _, _ = Fit(math.Exp, -1e-9) })
	require.Panics(t, func() { _, _ = Eval(nil, 0) })
	require.Panics(t, func() { Compile(nil) })
}
