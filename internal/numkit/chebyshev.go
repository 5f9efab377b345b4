package numkit

// ClenshawEval evaluates a Chebyshev series c[0..n] at normalized
// x in [-1,1] using Clenshaw's recurrence:
//
//	b_{n+1} = 0; b_n = 0
//	for k = n downto 1: b_{k-1} = c[k] + 2x*b_k - b_{k+1}
//	result = c[0] + x*b_1 - b_2
//
// Clenshaw's form is used instead of the naive power-series expansion
// because it stays numerically stable over the high-degree polynomials
// SPK Chebyshev records carry (§4.1 of the design spec); the teacher's
// own JPL-ephemeris reader instead recurs the T_i(x) polynomials
// directly (see DESIGN.md's C1 NumKit notes), which this
// evaluator generalizes for degrees where that direct recurrence loses
// precision.
func ClenshawEval(c []float64) func(x float64) float64 {
	return func(x float64) float64 {
		v, _ := clenshaw(c, x)
		return v
	}
}

// clenshaw runs Clenshaw's recurrence once and returns the two
// trailing b values (b1, b2) alongside the series value, so callers
// needing the derivative can reuse the recurrence state cheaply.
func clenshaw(c []float64, x float64) (value float64, trailing [2]float64) {
	n := len(c) - 1
	if n < 0 {
		return 0, trailing
	}
	var bk1, bk2 float64 // b_{k+1}, b_{k+2}
	for k := n; k >= 1; k-- {
		bk := c[k] + 2*x*bk1 - bk2
		bk2 = bk1
		bk1 = bk
	}
	value = c[0] + x*bk1 - bk2
	trailing = [2]float64{bk1, bk2}
	return value, trailing
}

// ClenshawEvalWithDerivative evaluates a Chebyshev series and its
// derivative with respect to the normalized variable x, both via
// Clenshaw recurrences. radius rescales the derivative from the
// normalized domain [-1,1] back to physical time: dValue/dt =
// dValue/dx / radius, per the ChebRecord convention in spec.md §4.3
// (x = (et-mid)/radius).
func ClenshawEvalWithDerivative(c []float64, x, radius float64) (value, deriv float64) {
	value, _ = clenshaw(c, x)
	deriv = clenshawDerivative(c, x)
	if radius != 0 {
		deriv /= radius
	}
	return value, deriv
}

// clenshawDerivative evaluates d/dx of the Chebyshev series using the
// derivative coefficient recurrence: the derivative of a degree-n
// Chebyshev series is itself expressible as a Clenshaw sum over the
// derivative polynomials T_i'(x), built here via the standard
// coefficient-differentiation recursion c'_k rather than a symbolic
// closed form, since SPK records only carry value coefficients.
func clenshawDerivative(c []float64, x float64) float64 {
	n := len(c) - 1
	if n < 1 {
		return 0
	}
	// Standard Chebyshev coefficient differentiation:
	//   d[n-1] = 2n*c[n]
	//   d[k]   = d[k+2] + 2(k+1)*c[k+1]   for k = n-2 downto 0
	//   d[0]  /= 2
	d := make([]float64, n) // degree n-1 derivative series, index 0..n-1
	d[n-1] = 2 * float64(n) * c[n]
	for k := n - 2; k >= 0; k-- {
		var dk2 float64
		if k+2 <= n-1 {
			dk2 = d[k+2]
		}
		d[k] = dk2 + 2*float64(k+1)*c[k+1]
	}
	d[0] /= 2
	val, _ := clenshaw(d, x)
	return val
}
