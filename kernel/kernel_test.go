package kernel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmoothBrokenAsymptotics(t *testing.T) {
	k := SmoothBroken{P: -1, Q: -2, S: 1}

	// Below the crossover K ≈ x^p.
	x := 1e-8
	require.InEpsilon(t, math.Pow(x, -1), k.Eval(x), 1e-7)

	// Above the crossover K ≈ s^(p-q)·x^q.
	x = 1e8
	require.InEpsilon(t, math.Pow(x, -2), k.Eval(x), 1e-7)

	// The crossover scale rescales the tail amplitude.
	k = SmoothBroken{P: -1, Q: -2, S: 2}
	require.InEpsilon(t, 2*math.Pow(x, -2), k.Eval(x), 1e-7)
}

func TestExpRelAsymptotics(t *testing.T) {
	k := ExpRel{P: 0, Q: -2, S: 1}

	require.InEpsilon(t, 1.0, k.Eval(1e-8), 1e-7)
	require.InEpsilon(t, math.Pow(1e8, -2), k.Eval(1e8), 1e-7)
}

func TestExprel(t *testing.T) {
	require.Equal(t, 1.0, Exprel(0))
	require.InEpsilon(t, math.E-1, Exprel(1), 1e-15)

	// Near zero the defining quotient would cancel catastrophically; the
	// expm1 form must track the series 1 + z/2 + z²/6.
	z := 1e-10
	require.InDelta(t, 1+z/2, Exprel(z), 1e-16)
	z = -1e-12
	require.InDelta(t, 1+z/2, Exprel(z), 1e-16)
}

func TestFuncAdapter(t *testing.T) {
	k := Func{
		Shape: Params{P: 0, Q: -1, S: 3},
		F:     func(x float64) float64 { return 1 / (1 + x/3) },
	}

	require.Equal(t, Params{P: 0, Q: -1, S: 3}, k.Params())
	require.InEpsilon(t, 0.5, k.Eval(3), 1e-15)
}
