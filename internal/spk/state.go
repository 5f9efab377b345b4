package spk

// State returns the position/velocity of target relative to center at
// ephemeris time et (seconds past J2000 TDB). It first looks for a
// direct segment; if the kernel has a direct (target,center) group but
// none of its segments covers et, it returns ErrOutOfRange. Otherwise
// it falls back to the chaining strategies in spec.md §4.3:
//
//	Moon rel. Earth:  (Moon,EMB)  - (Earth,EMB)
//	Earth rel. Moon:  negate the above
//	Sun  rel. Earth:  (Sun,SSB)   - ((EMB,SSB) - (Earth,EMB))
//	generic (A,B):    (A,SSB)     - (B,SSB)
func (k *SpkKernel) State(target, center int, et float64) (StateVector, error) {
	if target == center {
		return StateVector{}, nil
	}
	if seg, ok := k.directSegmentFor(target, center, et); ok {
		return k.evalRecord(seg, et)
	}
	if k.hasGroup(target, center) {
		return StateVector{}, &ErrOutOfRange{ET: et, Target: target, Center: center}
	}

	switch {
	case target == BodyMoon && center == BodyEarth:
		moon, err := k.directOrSSB(BodyMoon, BodyEMB, et)
		if err != nil {
			return StateVector{}, err
		}
		earth, err := k.directOrSSB(BodyEarth, BodyEMB, et)
		if err != nil {
			return StateVector{}, err
		}
		return moon.sub(earth), nil

	case target == BodyEarth && center == BodyMoon:
		s, err := k.State(BodyMoon, BodyEarth, et)
		if err != nil {
			return StateVector{}, err
		}
		return s.neg(), nil

	case target == BodySun && center == BodyEarth:
		sun, err := k.directOrSSB(BodySun, BodySSB, et)
		if err != nil {
			return StateVector{}, err
		}
		emb, err := k.directOrSSB(BodyEMB, BodySSB, et)
		if err != nil {
			return StateVector{}, err
		}
		earthRelEMB, err := k.directOrSSB(BodyEarth, BodyEMB, et)
		if err != nil {
			return StateVector{}, err
		}
		earth := emb.sub(earthRelEMB)
		return sun.sub(earth), nil

	default:
		a, errA := k.resolveToSSB(target, et)
		b, errB := k.resolveToSSB(center, et)
		if errA != nil || errB != nil {
			return StateVector{}, &ErrNoSegmentPath{Target: target, Center: center}
		}
		return a.sub(b), nil
	}
}

// directOrSSB fetches a single direct segment, reporting a group that
// exists but does not cover et as OutOfRange and a missing group as
// NoSegmentPath, instead of falling through to further chaining — used
// by the named chaining strategies above, each of which already names
// the exact pair it expects to find directly in the kernel.
func (k *SpkKernel) directOrSSB(target, center int, et float64) (StateVector, error) {
	if target == center {
		return StateVector{}, nil
	}
	if seg, ok := k.directSegmentFor(target, center, et); ok {
		return k.evalRecord(seg, et)
	}
	if k.hasGroup(target, center) {
		return StateVector{}, &ErrOutOfRange{ET: et, Target: target, Center: center}
	}
	return StateVector{}, &ErrNoSegmentPath{Target: target, Center: center}
}

// resolveToSSB returns body's state relative to the solar system
// barycenter, trying a direct segment first and, for Earth and the
// Moon specifically, the same EMB-mediated chaining State uses for
// them directly. It never calls State recursively, so it cannot
// participate in the infinite regress a naive "(A,SSB)-(B,SSB)"
// self-call would create when neither A nor B has direct SSB data.
func (k *SpkKernel) resolveToSSB(body int, et float64) (StateVector, error) {
	if body == BodySSB {
		return StateVector{}, nil
	}
	if seg, ok := k.directSegmentFor(body, BodySSB, et); ok {
		return k.evalRecord(seg, et)
	}
	switch body {
	case BodyEarth:
		emb, err := k.directOrSSB(BodyEMB, BodySSB, et)
		if err != nil {
			return StateVector{}, err
		}
		earthRelEMB, err := k.directOrSSB(BodyEarth, BodyEMB, et)
		if err != nil {
			return StateVector{}, err
		}
		return emb.sub(earthRelEMB), nil
	case BodyMoon:
		emb, err := k.directOrSSB(BodyEMB, BodySSB, et)
		if err != nil {
			return StateVector{}, err
		}
		moonRelEMB, err := k.directOrSSB(BodyMoon, BodyEMB, et)
		if err != nil {
			return StateVector{}, err
		}
		return emb.add(moonRelEMB), nil
	default:
		return StateVector{}, &ErrNoSegmentPath{Target: body, Center: BodySSB}
	}
}
