package spk

// evalRecord evaluates one type-2 or type-3 segment at time et,
// returning position (km) and velocity (km/s). The directory
// (init, intlen, rsize, n) sits in the last four doubles of the
// segment's data; record i covers [init+i*intlen, init+(i+1)*intlen)
// and is normalized to x=(et-mid)/radius before Clenshaw evaluation
// (spec.md §4.3).
func (k *SpkKernel) evalRecord(seg SpkSegment, et float64) (StateVector, error) {
	data := k.buf[seg.ByteOffset : seg.ByteOffset+seg.ByteSize]
	nDoubles := len(data) / 8
	if nDoubles < 4 {
		return StateVector{}, ErrKernelParse("segment too small for a directory")
	}
	dir := k.order.f64Slice(data[len(data)-32:], 4)
	init, intlen, rsize, n := dir[0], dir[1], dir[2], int(dir[3])

	if et < seg.StartET || et > seg.EndET {
		return StateVector{}, &ErrOutOfRange{ET: et, Target: seg.Target, Center: seg.Center}
	}

	i := int((et - init) / intlen)
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}

	recordDoubles := int(rsize)
	recordOffset := i * recordDoubles * 8
	if recordOffset+recordDoubles*8 > len(data) {
		return StateVector{}, ErrKernelParse("chebyshev record out of segment bounds")
	}
	record := k.order.f64Slice(data[recordOffset:recordOffset+recordDoubles*8], recordDoubles)

	mid, radius := record[0], record[1]
	if radius <= 0 {
		return StateVector{}, ErrKernelParse("chebyshev record has non-positive radius")
	}
	x := (et - mid) / radius
	coeffs := record[2:]

	switch seg.DataType {
	case 2:
		degreePlus1 := (recordDoubles - 2) / 3
		return evalType2(coeffs, degreePlus1, x, radius), nil
	case 3:
		degreePlus1 := (recordDoubles - 2) / 6
		return evalType3(coeffs, degreePlus1, x), nil
	default:
		return StateVector{}, ErrKernelParse("unsupported data type in evalRecord")
	}
}

// evalType2 evaluates a position-only segment: velocity is the time
// derivative of the position polynomial.
func evalType2(coeffs []float64, n int, x, radius float64) StateVector {
	xs := coeffs[0*n : 1*n]
	ys := coeffs[1*n : 2*n]
	zs := coeffs[2*n : 3*n]

	px, vx := clenshawValueAndDeriv(xs, x, radius)
	py, vy := clenshawValueAndDeriv(ys, x, radius)
	pz, vz := clenshawValueAndDeriv(zs, x, radius)

	return StateVector{
		Position: Vec3{px, py, pz},
		Velocity: Vec3{vx, vy, vz},
	}
}

// evalType3 evaluates a position+velocity segment: the value of the
// second three coefficient arrays IS the velocity directly, not the
// derivative of the first three (spec.md §4.3, and the source's own
// convention flagged as an open question in §9 to cross-check against
// SPICE before trusting).
func evalType3(coeffs []float64, n int, x float64) StateVector {
	xp := coeffs[0*n : 1*n]
	yp := coeffs[1*n : 2*n]
	zp := coeffs[2*n : 3*n]
	xv := coeffs[3*n : 4*n]
	yv := coeffs[4*n : 5*n]
	zv := coeffs[5*n : 6*n]

	px := clenshawValue(xp, x)
	py := clenshawValue(yp, x)
	pz := clenshawValue(zp, x)
	vx := clenshawValue(xv, x)
	vy := clenshawValue(yv, x)
	vz := clenshawValue(zv, x)

	return StateVector{
		Position: Vec3{px, py, pz},
		Velocity: Vec3{vx, vy, vz},
	}
}

// clenshawValue and clenshawValueAndDeriv are local Clenshaw
// evaluators (mirroring internal/numkit's, duplicated here to avoid a
// dependency from spk on numkit — spk is meant to be usable
// standalone as a low-level kernel reader).
func clenshawValue(c []float64, x float64) float64 {
	n := len(c) - 1
	if n < 0 {
		return 0
	}
	var bk1, bk2 float64
	for k := n; k >= 1; k-- {
		bk := c[k] + 2*x*bk1 - bk2
		bk2 = bk1
		bk1 = bk
	}
	return c[0] + x*bk1 - bk2
}

func clenshawValueAndDeriv(c []float64, x, radius float64) (value, deriv float64) {
	value = clenshawValue(c, x)
	n := len(c) - 1
	if n < 1 {
		return value, 0
	}
	d := make([]float64, n)
	d[n-1] = 2 * float64(n) * c[n]
	for k := n - 2; k >= 0; k-- {
		var dk2 float64
		if k+2 <= n-1 {
			dk2 = d[k+2]
		}
		d[k] = dk2 + 2*float64(k+1)*c[k+1]
	}
	d[0] /= 2
	deriv = clenshawValue(d, x)
	if radius != 0 {
		deriv /= radius
	}
	return value, deriv
}
