// Package bignum implements arbitrary-precision helpers over big.Float, used
// to produce reference values against which the float64 numerics are tested.
package bignum

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns π with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat returns x as a big.Float with prec bits of precision.
func NewFloat(x float64, prec uint) (y *big.Float) {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Cos is an iterative arbitrary precision computation of cos(x) with an error
// of ~(1/4)^k after k iterations.
// ref: Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric
// functions to high precision, 2018.
func Cos(x *big.Float) (cosx *big.Float) {
	tmp := new(big.Float)

	t := NewFloat(0.5, x.Prec())
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (x.Prec()>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, x.Prec())

	for i := uint(1); i < x.Prec()>>1; i++ { // (1/4)^k = (1/2)^(2*k)
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, x.Prec()))
	cosx.Sub(NewFloat(1.0, x.Prec()), cosx)
	return
}

// Log returns ln(x).
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x).
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// BesselI returns the modified Bessel function of the first kind I_k(x) for
// k ≥ 0 and x ≥ 0, by direct summation of the ascending series
// Σ_m (x/2)^(2m+k) / (m!·(m+k)!) until the terms fall below the working
// precision.
func BesselI(k int, x *big.Float) (sum *big.Float) {

	prec := x.Prec()

	xh := new(big.Float).Mul(x, NewFloat(0.5, prec))

	term := NewFloat(1, prec)
	for i := 1; i <= k; i++ {
		term.Mul(term, xh)
		term.Quo(term, NewFloat(float64(i), prec))
	}

	sum = new(big.Float).Set(term)

	xh2 := new(big.Float).Mul(xh, xh)
	eps := new(big.Float).SetMantExp(NewFloat(1, prec), -int(prec))
	tmp := new(big.Float)

	for m := 1; m < math.MaxInt32; m++ {
		term.Mul(term, xh2)
		term.Quo(term, NewFloat(float64(m), prec))
		term.Quo(term, NewFloat(float64(m+k), prec))
		sum.Add(sum, term)
		if term.Cmp(tmp.Mul(sum, eps)) <= 0 {
			break
		}
	}

	return
}
