package bigint

// Bitwise operations treat values as infinite two's-complement bit
// strings. The magnitudes are combined per sign pair using the
// identity -x == ^(x-1), which reduces every case to AND/OR/XOR/ANDNOT
// on magnitudes plus the ±1 helpers.

// and sets z = x & y on magnitudes.
func (z nat) and(x, y nat) nat {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z = z.make(n)
	for i := 0; i < n; i++ {
		z[i] = x[i] & y[i]
	}
	return z.norm()
}

// andNot sets z = x &^ y on magnitudes.
func (z nat) andNot(x, y nat) nat {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z = z.make(len(x))
	for i := 0; i < n; i++ {
		z[i] = x[i] &^ y[i]
	}
	copy(z[n:], x[n:])
	return z.norm()
}

// or sets z = x | y on magnitudes.
func (z nat) or(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	for i := 0; i < len(y); i++ {
		z[i] = x[i] | y[i]
	}
	copy(z[len(y):], x[len(y):])
	return z.norm()
}

// xor sets z = x ^ y on magnitudes.
func (z nat) xor(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	for i := 0; i < len(y); i++ {
		z[i] = x[i] ^ y[i]
	}
	copy(z[len(y):], x[len(y):])
	return z.norm()
}

// And returns x & y.
func And(x, y *Int) (*Int, error) {
	if !x.neg && !y.neg {
		return makeInt(false, nat(nil).and(x.abs, y.abs)), nil
	}
	if x.neg && y.neg {
		// -x & -y == -(((x-1) | (y-1)) + 1)
		x1 := nat(nil).subOne(x.abs, len(x.abs)).norm()
		y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
		return checked(true, nat(nil).addOne(nat(nil).or(x1, y1)))
	}
	if x.neg {
		x, y = y, x
	}
	// x & -y == x &^ (y-1)
	y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
	return makeInt(false, nat(nil).andNot(x.abs, y1)), nil
}

// Or returns x | y.
func Or(x, y *Int) (*Int, error) {
	if !x.neg && !y.neg {
		return makeInt(false, nat(nil).or(x.abs, y.abs)), nil
	}
	if x.neg && y.neg {
		// -x | -y == -(((x-1) & (y-1)) + 1)
		x1 := nat(nil).subOne(x.abs, len(x.abs)).norm()
		y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
		return checked(true, nat(nil).addOne(nat(nil).and(x1, y1)))
	}
	if x.neg {
		x, y = y, x
	}
	// x | -y == -(((y-1) &^ x) + 1)
	y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
	return checked(true, nat(nil).addOne(nat(nil).andNot(y1, x.abs)))
}

// Xor returns x ^ y.
func Xor(x, y *Int) (*Int, error) {
	if !x.neg && !y.neg {
		return makeInt(false, nat(nil).xor(x.abs, y.abs)), nil
	}
	if x.neg && y.neg {
		// -x ^ -y == (x-1) ^ (y-1)
		x1 := nat(nil).subOne(x.abs, len(x.abs)).norm()
		y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
		return makeInt(false, nat(nil).xor(x1, y1)), nil
	}
	if x.neg {
		x, y = y, x
	}
	// x ^ -y == -(((y-1) ^ x) + 1)
	y1 := nat(nil).subOne(y.abs, len(y.abs)).norm()
	return checked(true, nat(nil).addOne(nat(nil).xor(y1, x.abs)))
}

// Not returns ^x, that is -(x+1).
func Not(x *Int) (*Int, error) {
	if x.neg {
		return makeInt(false, nat(nil).subOne(x.abs, len(x.abs)).norm()), nil
	}
	return checked(true, nat(nil).addOne(x.abs))
}
