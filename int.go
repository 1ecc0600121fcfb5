package bigint

// An Int is an arbitrary-precision signed integer in sign-magnitude
// form. The zero value is the number 0, ready to use. Values are
// immutable once returned: no operation modifies an Int it is given or
// has returned, so an Int may be shared freely, including across
// goroutines. A result is not always newly allocated: an operation may
// return one of its operands or share an operand's digits.
type Int struct {
	neg bool // sign; never true for zero
	abs nat  // magnitude, normalized
}

// makeInt wraps a normalized magnitude with a sign, canonicalizing the
// sign of zero to false.
func makeInt(neg bool, abs nat) *Int {
	if len(abs) == 0 {
		neg = false
	}
	return &Int{neg: neg, abs: abs}
}

// checked wraps makeInt with the digit-count limit.
func checked(neg bool, abs nat) (*Int, error) {
	if len(abs) > MaxLength {
		return nil, ErrTooBig
	}
	return makeInt(neg, abs), nil
}

// New returns the Int with value x.
func New(x int64) *Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = -u
	}
	return makeInt(neg, nat(nil).setUint64(u))
}

// NewUint64 returns the Int with value x.
func NewUint64(x uint64) *Int {
	return &Int{abs: nat(nil).setUint64(x)}
}

// NewFromBool returns 1 for true and 0 for false.
func NewFromBool(b bool) *Int {
	if b {
		return New(1)
	}
	return &Int{}
}

// NewFromString returns the value of s in the given radix. Radix 0
// auto-detects a 0x, 0o or 0b prefix and defaults to 10; explicit
// radix 16 also accepts an optional 0x prefix. Leading and trailing
// whitespace is ignored; a sign is only accepted for plain decimal
// numerals.
func NewFromString(s string, radix int) (*Int, error) {
	if radix != 0 && (radix < 2 || radix > MaxBase) {
		return nil, ErrBadRadix
	}
	x, err := parse(s, radix)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, syntaxError(s)
	}
	return x, nil
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero,
// or positive.
func (x *Int) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return len(x.abs) == 0
}

// IsInt64 reports whether x fits in an int64.
func (x *Int) IsInt64() bool {
	bl := x.abs.bitLen()
	return bl < 64 || bl == 64 && x.neg && !x.abs.stickyBelow(63)
}

// Int64 returns the int64 value of x; the result is undefined when
// !x.IsInt64().
func (x *Int) Int64() int64 {
	u := x.abs.low64()
	if x.neg {
		u = -u
	}
	return int64(u)
}

// IsUint64 reports whether x fits in a uint64.
func (x *Int) IsUint64() bool {
	return !x.neg && x.abs.bitLen() <= 64
}

// Uint64 returns the uint64 value of x; the result is undefined when
// !x.IsUint64().
func (x *Int) Uint64() uint64 {
	return x.abs.low64()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	r := x.abs.cmp(y.abs)
	if x.neg {
		r = -r
	}
	return r
}

// CmpAbs compares the magnitudes of x and y.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Big-vs-big comparison surface.
func Equal(x, y *Int) bool          { return x.Cmp(y) == 0 }
func NotEqual(x, y *Int) bool       { return x.Cmp(y) != 0 }
func Less(x, y *Int) bool           { return x.Cmp(y) < 0 }
func LessOrEqual(x, y *Int) bool    { return x.Cmp(y) <= 0 }
func Greater(x, y *Int) bool        { return x.Cmp(y) > 0 }
func GreaterOrEqual(x, y *Int) bool { return x.Cmp(y) >= 0 }

// Neg returns -x.
func Neg(x *Int) *Int {
	return makeInt(!x.neg, x.abs)
}

// Add returns x + y.
func Add(x, y *Int) (*Int, error) {
	if x.neg == y.neg {
		return checked(x.neg, nat(nil).add(x.abs, y.abs))
	}
	switch x.abs.cmp(y.abs) {
	case 1:
		return makeInt(x.neg, nat(nil).sub(x.abs, y.abs)), nil
	case -1:
		return makeInt(y.neg, nat(nil).sub(y.abs, x.abs)), nil
	}
	return &Int{}, nil
}

// Sub returns x - y.
func Sub(x, y *Int) (*Int, error) {
	return Add(x, Neg(y))
}

// Mul returns x * y.
func Mul(x, y *Int) (*Int, error) {
	if len(x.abs) == 0 {
		return x, nil
	}
	if len(y.abs) == 0 {
		return y, nil
	}
	rl := len(x.abs) + len(y.abs)
	if nlz30(x.abs[len(x.abs)-1])+nlz30(y.abs[len(y.abs)-1]) >= _W {
		rl--
	}
	if rl > MaxLength {
		return nil, ErrTooBig
	}
	return makeInt(x.neg != y.neg, nat(nil).mul(x.abs, y.abs)), nil
}

// Div returns the quotient x / y, truncated toward zero.
func Div(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, ErrDivByZero
	}
	neg := x.neg != y.neg
	if x.abs.cmp(y.abs) < 0 {
		return &Int{}, nil
	}
	if len(y.abs) == 1 && y.abs[0] <= _HM {
		if y.abs[0] == 1 {
			return makeInt(neg, x.abs), nil
		}
		q, _ := nat(nil).divModHalf(x.abs, y.abs[0])
		return makeInt(neg, q), nil
	}
	q, _ := divLarge(x.abs, y.abs, true, false)
	return makeInt(neg, q), nil
}

// Rem returns the remainder x % y; the result has the sign of x.
func Rem(x, y *Int) (*Int, error) {
	if len(y.abs) == 0 {
		return nil, ErrDivByZero
	}
	if x.abs.cmp(y.abs) < 0 {
		return x, nil
	}
	if len(y.abs) == 1 && y.abs[0] <= _HM {
		if y.abs[0] == 1 {
			return &Int{}, nil
		}
		_, r := nat(nil).divModHalf(x.abs, y.abs[0])
		return makeInt(x.neg, nat(nil).setWord(r)), nil
	}
	_, r := divLarge(x.abs, y.abs, false, true)
	return makeInt(x.neg, r), nil
}

// Exp returns x ** y by binary exponentiation over the bits of y,
// least significant first. The exponent must be non-negative; for bases
// other than 0, 1 and -1 it must also fit in a single digit.
func Exp(x, y *Int) (*Int, error) {
	if y.neg {
		return nil, ErrNegExponent
	}
	if len(y.abs) == 0 {
		return New(1), nil
	}
	if len(x.abs) == 0 {
		return x, nil // 0**y == 0 for y > 0
	}
	if len(x.abs) == 1 && x.abs[0] == 1 {
		// 1**y == 1; (-1)**y == ±1
		if x.neg && y.abs[0]&1 == 0 {
			return New(1), nil
		}
		return x, nil
	}
	if len(y.abs) > 1 {
		return nil, ErrExpTooBig
	}
	e := y.abs[0]
	if e == 1 {
		return x, nil
	}
	if uint64(e) >= MaxLengthBits {
		// |x| >= 2 here, so the result has at least e bits.
		return nil, ErrTooBig
	}
	neg := x.neg && e&1 == 1
	if len(x.abs) == 1 && x.abs[0] == 2 {
		// 2**e is a single bit.
		nd := int(e)/_W + 1
		if nd > MaxLength {
			return nil, ErrTooBig
		}
		z := make(nat, nd)
		z[nd-1] = 1 << (e % _W)
		return makeInt(neg, z), nil
	}

	var result nat
	running := x.abs
	if e&1 == 1 {
		result = x.abs
	}
	var err error
	for e >>= 1; e != 0; e >>= 1 {
		running, err = mulAbs(running, running)
		if err != nil {
			return nil, err
		}
		if e&1 == 1 {
			if result == nil {
				result = running
			} else {
				result, err = mulAbs(result, running)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return makeInt(neg, result), nil
}

// mulAbs multiplies two magnitudes, enforcing the digit-count limit
// before allocating.
func mulAbs(x, y nat) (nat, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}
	rl := len(x) + len(y)
	if nlz30(x[len(x)-1])+nlz30(y[len(y)-1]) >= _W {
		rl--
	}
	if rl > MaxLength {
		return nil, ErrTooBig
	}
	return nat(nil).mul(x, y), nil
}

// UnsignedRsh is not defined for arbitrary-precision integers and
// always fails.
func UnsignedRsh(x, y *Int) (*Int, error) {
	return nil, ErrUnsupported
}

// AsUintN returns x modulo 2**n, in [0, 2**n).
func AsUintN(n uint, x *Int) (*Int, error) {
	if x.neg {
		if n == 0 {
			return &Int{}, nil
		}
		// The result needs n bits.
		if n > _W*MaxLength {
			return nil, ErrTooBig
		}
		return makeInt(false, nat(nil).truncSubPow2(x.abs, n)), nil
	}
	if n >= uint(x.abs.bitLen()) {
		return x, nil
	}
	return makeInt(false, nat(nil).truncNBits(x.abs, n)), nil
}

// AsIntN returns the value congruent to x modulo 2**n that lies in
// [-2**(n-1), 2**(n-1)).
func AsIntN(n uint, x *Int) (*Int, error) {
	if n == 0 {
		return &Int{}, nil
	}
	if len(x.abs) == 0 {
		return x, nil
	}
	if uint(x.abs.bitLen()) < n {
		// x already fits n bits as a signed value.
		return x, nil
	}
	t := nat(nil).truncNBits(x.abs, n) // |x| mod 2**n
	half := nat(nil).pow2(n - 1)
	if x.neg {
		// The value is -t mod 2**n.
		if len(t) == 0 {
			return &Int{}, nil
		}
		if t.cmp(half) <= 0 {
			return makeInt(true, t), nil
		}
		return makeInt(false, nat(nil).truncSubPow2(t, n)), nil
	}
	if t.cmp(half) < 0 {
		return makeInt(false, t), nil
	}
	return makeInt(true, nat(nil).truncSubPow2(t, n)), nil
}

// Text returns the string representation of x in the given radix,
// 2 <= radix <= MaxBase.
func (x *Int) Text(radix int) (string, error) {
	if radix < 2 || radix > MaxBase {
		return "", ErrBadRadix
	}
	return itoa(x.abs, x.neg, radix), nil
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	return itoa(x.abs, x.neg, 10)
}
