package bigint

// toShiftAmount decodes a shift count from a magnitude. ok is false
// when the amount cannot be represented: more than one digit, or a
// single digit beyond MaxLengthBits.
func toShiftAmount(x nat) (int, bool) {
	if len(x) > 1 {
		return 0, false
	}
	if len(x) == 0 {
		return 0, true
	}
	d := x[0]
	if uint64(d) > MaxLengthBits {
		return 0, false
	}
	return int(d), true
}

// Lsh returns x << y. A negative y shifts right instead.
func Lsh(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 || len(x.abs) == 0 {
		return x, nil
	}
	if y.neg {
		return rshByAbs(x, y.abs)
	}
	return lshByAbs(x, y.abs)
}

// Rsh returns x >> y, rounding toward negative infinity for negative
// x. A negative y shifts left instead.
func Rsh(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 || len(x.abs) == 0 {
		return x, nil
	}
	if y.neg {
		return lshByAbs(x, y.abs)
	}
	return rshByAbs(x, y.abs)
}

func lshByAbs(x *Int, y nat) (*Int, error) {
	shift, ok := toShiftAmount(y)
	if !ok {
		return nil, ErrShiftTooBig
	}
	ds, bs := shift/_W, uint(shift%_W)
	m := len(x.abs)
	rl := m + ds
	if bs != 0 && x.abs[m-1]>>(_W-bs) != 0 {
		// The top digit loses bits to the shift.
		rl++
	}
	if rl > MaxLength {
		return nil, ErrTooBig
	}
	return makeInt(x.neg, nat(nil).shl(x.abs, uint(shift))), nil
}

func rshByAbs(x *Int, y nat) (*Int, error) {
	shift, ok := toShiftAmount(y)
	if !ok {
		return rshByMax(x.neg), nil
	}
	ds, bs := shift/_W, uint(shift%_W)
	m := len(x.abs)
	rl := m - ds
	if rl <= 0 {
		return rshByMax(x.neg), nil
	}

	// A negative value rounds toward negative infinity: if any bit
	// shifted out of the magnitude is set, the magnitude is
	// incremented after the shift.
	mustRound := false
	if x.neg {
		if x.abs[ds]&(1<<bs-1) != 0 {
			mustRound = true
		} else {
			for i := 0; i < ds; i++ {
				if x.abs[i] != 0 {
					mustRound = true
					break
				}
			}
		}
	}

	z := make(nat, rl)
	if bs == 0 {
		copy(z, x.abs[ds:])
	} else {
		c := x.abs[ds] >> bs
		last := rl - 1
		for i := 0; i < last; i++ {
			d := x.abs[i+ds+1]
			z[i] = d<<(_W-bs)&_M | c
			c = d >> bs
		}
		z[last] = c
	}
	zn := z.norm()
	if mustRound {
		zn = nat(nil).addOne(zn)
	}
	return makeInt(x.neg, zn), nil
}

// rshByMax is the saturated right shift: 0 for non-negative values,
// -1 for negative ones.
func rshByMax(neg bool) *Int {
	if neg {
		return New(-1)
	}
	return &Int{}
}
