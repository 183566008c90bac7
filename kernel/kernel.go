// Package kernel defines power-law kernels: real functions behaving like x^p
// below a crossover scale s and like x^q above it. A kernel is a callable
// plus its three shape parameters; any function with known (p, q, s) can be
// adapted through Func.
package kernel

import (
	"math"
)

// Params holds the shape of a power-law kernel: the small-argument exponent
// P, the large-argument exponent Q and the crossover scale S. Kernels with
// Q > 0 grow without bound and are rejected at build time by package
// integral, which is the single place parameter validation happens.
type Params struct {
	P, Q, S float64
}

// Kernel is the capability required of a power-law kernel.
type Kernel interface {
	// Eval returns K(x).
	Eval(x float64) float64

	// Params returns the shape parameters of the kernel.
	Params() Params
}

// SmoothBroken is the rational broken power law
//
//	K(x) = x^p / (1 + (x/s)^(p-q)),
//
// which requires p > q to cross over from x^p to s^(p-q)·x^q.
type SmoothBroken Params

// Params implements Kernel.
func (k SmoothBroken) Params() Params { return Params(k) }

// Eval implements Kernel.
func (k SmoothBroken) Eval(x float64) float64 {
	return math.Pow(x, k.P) / (1 + math.Pow(x/k.S, k.P-k.Q))
}

// ExpRel is the exponentially switched power law
//
//	K(x) = x^p · exprel(-(x/s)^(p-q)),
//
// with the same asymptotics as SmoothBroken but an exponentially fast
// crossover.
type ExpRel Params

// Params implements Kernel.
func (k ExpRel) Params() Params { return Params(k) }

// Eval implements Kernel.
func (k ExpRel) Eval(x float64) float64 {
	return math.Pow(x, k.P) * Exprel(-math.Pow(x/k.S, k.P-k.Q))
}

// Exprel returns (e^z - 1)/z, computed through expm1 so that the z → 0 limit
// of 1 is reached without cancellation.
func Exprel(z float64) float64 {
	if z == 0 {
		return 1
	}
	return math.Expm1(z) / z
}

// Func adapts an arbitrary callable with known shape parameters.
type Func struct {
	Shape Params
	F     func(x float64) float64
}

// Params implements Kernel.
func (k Func) Params() Params { return k.Shape }

// Eval implements Kernel.
func (k Func) Eval(x float64) float64 { return k.F(x) }
