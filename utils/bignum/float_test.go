package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}

func TestPi(t *testing.T) {
	y, _ := Pi(53).Float64()
	require.Equal(t, math.Pi, y)
}

func TestBesselI(t *testing.T) {
	one := NewFloat(1, 96)

	// Reference values of I_k(1) to 16 digits.
	for _, tc := range []struct {
		k    int
		want float64
	}{
		{0, 1.2660658777520084},
		{1, 0.5651591039924850},
		{2, 0.1357476697670383},
		{3, 0.0221684249243319},
	} {
		y, _ := BesselI(tc.k, one).Float64()
		require.InDelta(t, tc.want, y, 1e-15)
	}
}
