package numkit

import (
	"errors"
	"math"
)

// ErrBadBracket is returned when Brent is called on an interval whose
// endpoints do not bracket a sign change. It is an internal condition:
// callers treat it as "no root in this interval", not a propagated
// failure (spec.md §7, BadBracket).
var ErrBadBracket = errors.New("numkit: brent: interval endpoints have the same sign")

const brentMaxIter = 64

// Brent finds a root of f in [a,b] using Brent's method: inverse
// quadratic interpolation and the secant method, falling back to
// bisection whenever either would step outside the bracket or fails
// to shrink it. Terminates when the bracket width drops below tol or
// after brentMaxIter iterations, whichever comes first — 64 iterations
// is comfortably enough for the ~0.5s astronomical event tolerances
// this package is used for.
func Brent(f func(float64) float64, a, b, tol float64) (float64, error) {
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, ErrBadBracket
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	var d float64

	for i := 0; i < brentMaxIter && fb != 0 && math.Abs(b-a) > tol; i++ {
		var s float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			s = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant method.
			s = b - fb*(b-a)/(fb-fa)
		}

		cond1 := (s < (3*a+b)/4 || s > b) && (s < b || s > (3*a+b)/4)
		if a > b {
			cond1 = (s < (3*b+a)/4 || s > a) && (s < a || s > (3*b+a)/4)
		}
		useBisection := cond1 ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) ||
			(mflag && math.Abs(b-c) < tol) ||
			(!mflag && math.Abs(c-d) < tol)

		if useBisection {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs := f(s)
		d = c
		c, fc = b, fb

		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}

		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b, nil
}

// FindRoots subdivides [a,b] into steps equal sub-intervals, applies
// Brent to every sub-interval where f changes sign, and returns the
// deduplicated roots found (duplicates within 1e-6 of each other are
// collapsed to one).
func FindRoots(f func(float64) float64, a, b float64, steps int) []float64 {
	if steps < 1 {
		steps = 1
	}
	width := (b - a) / float64(steps)
	var roots []float64
	prevX, prevF := a, f(a)
	for i := 1; i <= steps; i++ {
		x := a + float64(i)*width
		fx := f(x)
		if prevF == 0 {
			roots = appendDedup(roots, prevX)
		} else if prevF*fx < 0 {
			r, err := Brent(f, prevX, x, 1e-9)
			if err == nil {
				roots = appendDedup(roots, r)
			}
		}
		prevX, prevF = x, fx
	}
	if prevF == 0 {
		roots = appendDedup(roots, prevX)
	}
	return roots
}

func appendDedup(roots []float64, r float64) []float64 {
	for _, existing := range roots {
		if math.Abs(existing-r) < 1e-6 {
			return roots
		}
	}
	return append(roots, r)
}
